// Package ui renders records for the terminal and drives the interactive
// create form.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmassara/pkmforge/internal/gamedata"
	"github.com/jmassara/pkmforge/internal/pkm"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))
)

var statNames = [6]string{"HP", "Atk", "Def", "Spe", "SpA", "SpD"}

// RenderRecord formats a decoded record for terminal display, resolving
// codes to display names where the tables know them.
func RenderRecord(r pkm.Record) string {
	var sb strings.Builder

	title := nameOrCode(gamedata.Species, r.Species)
	if r.Nickname != "" {
		title = fmt.Sprintf("%s (%s)", r.Nickname, title)
	}
	sb.WriteString(titleStyle.Render(title) + "\n\n")

	writeField(&sb, "Species", nameOrCode(gamedata.Species, r.Species))
	writeField(&sb, "Level", fmt.Sprintf("%d", r.Level))
	writeField(&sb, "EXP", fmt.Sprintf("%d", r.EXP))
	writeField(&sb, "Nature", nameOrCode(gamedata.Natures, uint16(r.Nature)))
	if r.StatNature != r.Nature {
		writeField(&sb, "Stat nature", nameOrCode(gamedata.Natures, uint16(r.StatNature)))
	}
	ability := nameOrCode(gamedata.Abilities, r.Ability)
	if r.CanGigantamax {
		ability += " [Gigantamax]"
	}
	writeField(&sb, "Ability", fmt.Sprintf("%s (slot %d)", ability, r.AbilityNumber))
	writeField(&sb, "Held item", nameOrCode(gamedata.Items, r.HeldItem))
	writeField(&sb, "Gender", genderName(r.Gender))
	if r.Form != 0 {
		writeField(&sb, "Form", fmt.Sprintf("%d", r.Form))
	}
	writeField(&sb, "Ball", nameOrCode(gamedata.BallItems, uint16(r.Ball)))
	writeField(&sb, "PID", fmt.Sprintf("0x%08X", r.PID))
	writeField(&sb, "Friendship", fmt.Sprintf("%d", r.Friendship))

	flags := make([]string, 0, 2)
	if r.IsEgg {
		flags = append(flags, "egg")
	}
	if r.IsNicknamed {
		flags = append(flags, "nicknamed")
	}
	if len(flags) > 0 {
		writeField(&sb, "Flags", strings.Join(flags, ", "))
	}

	sb.WriteString("\n")
	writeField(&sb, "IVs", statLine6(func(i int) string { return fmt.Sprintf("%d", r.IVs[i]) }))
	writeField(&sb, "EVs", statLine6(func(i int) string { return fmt.Sprintf("%d", r.EVs[i]) }))
	writeField(&sb, "Stats", statLine6(func(i int) string { return fmt.Sprintf("%d", r.Stats[i]) }))

	sb.WriteString("\n")
	for i, m := range r.Moves {
		if m == 0 {
			continue
		}
		writeField(&sb, fmt.Sprintf("Move %d", i+1),
			fmt.Sprintf("%s  PP %d", nameOrCode(gamedata.Moves, m), r.MovePP[i]))
	}

	sb.WriteString("\n")
	writeField(&sb, "Trainer", fmt.Sprintf("%s (%s)", r.OTName, genderName(r.OTGender)))
	writeField(&sb, "TID/SID", fmt.Sprintf("%d / %d", r.TID, r.SID))
	if r.HandlerName != "" {
		writeField(&sb, "Handler", r.HandlerName)
	}
	writeField(&sb, "Language", fmt.Sprintf("%d", r.Language))
	writeField(&sb, "Met", fmt.Sprintf("level %d, location %d", r.MetLevel, r.MetLocation))
	if r.EggLocation != 0 {
		writeField(&sb, "Egg location", fmt.Sprintf("%d", r.EggLocation))
	}

	return sb.String()
}

// RenderSuccess formats a success line.
func RenderSuccess(msg string) string {
	return successStyle.Render(msg)
}

// RenderError formats an error line.
func RenderError(msg string) string {
	return errorStyle.Render("ERROR: " + msg)
}

// RenderWarning formats a dimmed advisory line.
func RenderWarning(msg string) string {
	return dimStyle.Render(msg)
}

func writeField(sb *strings.Builder, label, value string) {
	sb.WriteString(labelStyle.Render(fmt.Sprintf("%-14s", label)) + " " + value + "\n")
}

// nameOrCode resolves a code against a table, falling back to the numeric
// code for values the table does not know (including the zero "none" code).
func nameOrCode(t *gamedata.Table, code uint16) string {
	if code == 0 {
		return "(none)"
	}
	name, err := t.NameFor(code)
	if err != nil {
		return fmt.Sprintf("#%d", code)
	}
	return fmt.Sprintf("%s (#%d)", name, code)
}

func genderName(g uint8) string {
	switch g {
	case 0:
		return "male"
	case 1:
		return "female"
	default:
		return "genderless"
	}
}

func statLine6(value func(i int) string) string {
	parts := make([]string, 6)
	for i := range parts {
		parts[i] = fmt.Sprintf("%s %s", statNames[i], value(i))
	}
	return strings.Join(parts, "  ")
}
