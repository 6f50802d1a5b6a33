package ui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/jmassara/pkmforge/internal/config"
	"github.com/jmassara/pkmforge/internal/gamedata"
	"github.com/jmassara/pkmforge/internal/pkm"
)

// FormValues holds the raw string state bound to the create form. Numeric
// fields stay strings until Record() parses them so the form can surface
// a per-field validation message instead of failing at the end.
type FormValues struct {
	Species     string
	Nickname    string
	Level       string
	EXP         string
	Nature      string
	Ability     string
	HeldItem    string
	Ball        string
	Gender      string
	Form        string
	PID         string
	TID         string
	SID         string
	OTName      string
	Language    string
	MetLevel    string
	MetLocation string
	EggLocation string
	IVs         string
	EVs         string
	Moves       [4]string
}

// NewFormValues seeds the form with the classic quick-start record,
// overridden by the configured trainer defaults.
func NewFormValues(defaults config.TrainerDefaults) *FormValues {
	v := &FormValues{
		Species:     "25",
		Nickname:    "Pikachu",
		Level:       "5",
		EXP:         "1000",
		Nature:      "15",
		Ability:     "0",
		HeldItem:    "0",
		Ball:        "4",
		Gender:      "0",
		Form:        "0",
		PID:         "0x12345678",
		TID:         "12345",
		SID:         "54321",
		OTName:      "Ash",
		Language:    "5",
		MetLevel:    "5",
		MetLocation: "30",
		EggLocation: "0",
		IVs:         "31,31,31,31,31,31",
		EVs:         "0,0,0,0,0,0",
		Moves:       [4]string{"5", "5", "5", "5"},
	}
	if defaults.TrainerName != "" {
		v.OTName = defaults.TrainerName
	}
	if defaults.TrainerID != 0 {
		v.TID = strconv.Itoa(int(defaults.TrainerID))
	}
	if defaults.SecretID != 0 {
		v.SID = strconv.Itoa(int(defaults.SecretID))
	}
	if defaults.Language != 0 {
		v.Language = strconv.Itoa(int(defaults.Language))
	}
	return v
}

// BuildRecordForm assembles the interactive create form over v.
func BuildRecordForm(v *FormValues) *huh.Form {
	identityGroup := huh.NewGroup(
		huh.NewSelect[string]().
			Title("Species").
			Options(selectOptions(gamedata.Species, false)...).
			Value(&v.Species),
		huh.NewInput().
			Title("Nickname").
			Description("Up to 12 characters.").
			CharLimit(12).
			Value(&v.Nickname),
		huh.NewSelect[string]().
			Title("Gender").
			Options(
				huh.NewOption("Male", "0"),
				huh.NewOption("Female", "1"),
				huh.NewOption("Genderless", "2"),
			).
			Value(&v.Gender),
		huh.NewInput().
			Title("Form").
			Validate(validateUint(8)).
			Value(&v.Form),
		huh.NewInput().
			Title("PID").
			Description("Hex (0x...) or decimal.").
			Validate(validateAddress).
			Value(&v.PID),
	)

	battleGroup := huh.NewGroup(
		huh.NewInput().
			Title("Level").
			Validate(validateUint(8)).
			Value(&v.Level),
		huh.NewInput().
			Title("EXP").
			Validate(validateUint(32)).
			Value(&v.EXP),
		huh.NewSelect[string]().
			Title("Nature").
			Options(selectOptions(gamedata.Natures, false)...).
			Value(&v.Nature),
		huh.NewSelect[string]().
			Title("Ability").
			Options(selectOptions(gamedata.Abilities, true)...).
			Value(&v.Ability),
		huh.NewSelect[string]().
			Title("Held item").
			Options(selectOptions(gamedata.Items, true)...).
			Value(&v.HeldItem),
		huh.NewInput().
			Title("IVs").
			Description("Six comma-separated values, 0-31 (HP,Atk,Def,Spe,SpA,SpD).").
			Validate(validateStatList(31)).
			Value(&v.IVs),
		huh.NewInput().
			Title("EVs").
			Description("Six comma-separated values, 0-255.").
			Validate(validateStatList(255)).
			Value(&v.EVs),
	)

	movesGroup := huh.NewGroup(
		huh.NewSelect[string]().
			Title("Move 1").
			Options(selectOptions(gamedata.Moves, true)...).
			Value(&v.Moves[0]),
		huh.NewSelect[string]().
			Title("Move 2").
			Options(selectOptions(gamedata.Moves, true)...).
			Value(&v.Moves[1]),
		huh.NewSelect[string]().
			Title("Move 3").
			Options(selectOptions(gamedata.Moves, true)...).
			Value(&v.Moves[2]),
		huh.NewSelect[string]().
			Title("Move 4").
			Options(selectOptions(gamedata.Moves, true)...).
			Value(&v.Moves[3]),
	)

	originGroup := huh.NewGroup(
		huh.NewInput().
			Title("Trainer name").
			CharLimit(12).
			Value(&v.OTName),
		huh.NewInput().
			Title("Trainer ID").
			Validate(validateUint(16)).
			Value(&v.TID),
		huh.NewInput().
			Title("Secret ID").
			Validate(validateUint(16)).
			Value(&v.SID),
		huh.NewInput().
			Title("Language").
			Validate(validateUint(16)).
			Value(&v.Language),
		huh.NewSelect[string]().
			Title("Ball").
			Options(selectOptions(gamedata.BallItems, false)...).
			Value(&v.Ball),
		huh.NewInput().
			Title("Met level").
			Description("0-127.").
			Validate(validateUint(7)).
			Value(&v.MetLevel),
		huh.NewInput().
			Title("Met location").
			Validate(validateUint(16)).
			Value(&v.MetLocation),
		huh.NewInput().
			Title("Egg location").
			Validate(validateUint(16)).
			Value(&v.EggLocation),
	)

	return huh.NewForm(identityGroup, battleGroup, movesGroup, originGroup)
}

// Record parses the form state into a record. Validation of code
// membership and field bounds happens again at encode time; this only
// converts the string fields.
func (v *FormValues) Record() (pkm.Record, error) {
	var r pkm.Record

	species, err := parseUint(v.Species, 16, "species")
	if err != nil {
		return r, err
	}
	r.Species = uint16(species)
	r.Nickname = strings.TrimSpace(v.Nickname)

	level, err := parseUint(v.Level, 8, "level")
	if err != nil {
		return r, err
	}
	r.Level = uint8(level)

	exp, err := parseUint(v.EXP, 32, "EXP")
	if err != nil {
		return r, err
	}
	r.EXP = uint32(exp)

	nature, err := parseUint(v.Nature, 8, "nature")
	if err != nil {
		return r, err
	}
	r.Nature = uint8(nature)
	r.StatNature = r.Nature

	ability, err := parseUint(v.Ability, 16, "ability")
	if err != nil {
		return r, err
	}
	r.Ability = uint16(ability)

	item, err := parseUint(v.HeldItem, 16, "held item")
	if err != nil {
		return r, err
	}
	r.HeldItem = uint16(item)

	ball, err := parseUint(v.Ball, 8, "ball")
	if err != nil {
		return r, err
	}
	r.Ball = uint8(ball)

	gender, err := parseUint(v.Gender, 8, "gender")
	if err != nil {
		return r, err
	}
	r.Gender = uint8(gender)

	form, err := parseUint(v.Form, 8, "form")
	if err != nil {
		return r, err
	}
	r.Form = uint8(form)

	pid, err := config.ParseAddress(v.PID)
	if err != nil {
		return r, fmt.Errorf("PID: %w", err)
	}
	if pid > 0xFFFFFFFF {
		return r, fmt.Errorf("PID: %#x does not fit in 32 bits", pid)
	}
	r.PID = uint32(pid)

	tid, err := parseUint(v.TID, 16, "trainer ID")
	if err != nil {
		return r, err
	}
	r.TID = uint16(tid)

	sid, err := parseUint(v.SID, 16, "secret ID")
	if err != nil {
		return r, err
	}
	r.SID = uint16(sid)
	r.OTName = strings.TrimSpace(v.OTName)

	lang, err := parseUint(v.Language, 16, "language")
	if err != nil {
		return r, err
	}
	r.Language = uint16(lang)

	metLevel, err := parseUint(v.MetLevel, 7, "met level")
	if err != nil {
		return r, err
	}
	r.MetLevel = uint8(metLevel)

	metLoc, err := parseUint(v.MetLocation, 16, "met location")
	if err != nil {
		return r, err
	}
	r.MetLocation = uint16(metLoc)

	eggLoc, err := parseUint(v.EggLocation, 16, "egg location")
	if err != nil {
		return r, err
	}
	r.EggLocation = uint16(eggLoc)

	ivs, err := parseStatList(v.IVs, "IVs")
	if err != nil {
		return r, err
	}
	for i, iv := range ivs {
		r.IVs[i] = uint8(iv)
	}

	evs, err := parseStatList(v.EVs, "EVs")
	if err != nil {
		return r, err
	}
	copy(r.EVs[:], evs)

	for i, m := range v.Moves {
		move, err := parseUint(m, 16, fmt.Sprintf("move %d", i+1))
		if err != nil {
			return r, err
		}
		r.Moves[i] = uint16(move)
	}

	r.IsNicknamed = r.Nickname != ""

	return r, nil
}

// selectOptions builds the select entries for a table, sorted by code.
// withNone replaces the zero code with a "(none)" entry for fields where
// zero means empty; tables like natures keep their real zero entry.
func selectOptions(t *gamedata.Table, withNone bool) []huh.Option[string] {
	codes := t.Codes()
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	opts := make([]huh.Option[string], 0, len(codes)+1)
	if withNone {
		opts = append(opts, huh.NewOption("(none)", "0"))
	}
	for _, code := range codes {
		if code == 0 && withNone {
			continue
		}
		name, err := t.NameFor(code)
		if err != nil {
			continue
		}
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s (#%d)", name, code), strconv.Itoa(int(code))))
	}
	return opts
}

func parseUint(s string, bits int, field string) (uint64, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, bits)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number in range", field, s)
	}
	return n, nil
}

// parseStatList parses six comma-separated stat values.
func parseStatList(s, field string) ([]uint16, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 6 {
		return nil, fmt.Errorf("%s: want 6 comma-separated values, got %d", field, len(parts))
	}
	values := make([]uint16, 6)
	for i, part := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(part), 10, 16)
		if err != nil {
			return nil, fmt.Errorf("%s: %q is not a number", field, part)
		}
		values[i] = uint16(n)
	}
	return values, nil
}

func validateUint(bits int) func(string) error {
	return func(s string) error {
		_, err := parseUint(s, bits, "value")
		return err
	}
}

func validateAddress(s string) error {
	_, err := config.ParseAddress(s)
	return err
}

func validateStatList(max uint16) func(string) error {
	return func(s string) error {
		values, err := parseStatList(s, "value")
		if err != nil {
			return err
		}
		for _, v := range values {
			if v > max {
				return fmt.Errorf("%d exceeds maximum %d", v, max)
			}
		}
		return nil
	}
}
