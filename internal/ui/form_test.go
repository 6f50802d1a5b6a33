package ui

import (
	"strings"
	"testing"

	"github.com/jmassara/pkmforge/internal/config"
	"github.com/jmassara/pkmforge/internal/gamedata"
)

func TestNewFormValuesDefaults(t *testing.T) {
	v := NewFormValues(config.TrainerDefaults{
		TrainerName: "Red",
		TrainerID:   111,
		SecretID:    222,
		Language:    2,
	})
	if v.OTName != "Red" || v.TID != "111" || v.SID != "222" || v.Language != "2" {
		t.Errorf("trainer defaults not applied: %+v", v)
	}
	if v.Species != "25" {
		t.Errorf("species default = %q, want 25", v.Species)
	}
}

func TestFormValuesRecord(t *testing.T) {
	v := NewFormValues(config.TrainerDefaults{})
	v.Nickname = "Sparky"
	v.PID = "0xCAFEF00D"
	v.IVs = "31,0,15,31,7,31"
	v.Moves = [4]string{"5", "7", "0", "0"}

	r, err := v.Record()
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if r.Species != 25 {
		t.Errorf("Species = %d, want 25", r.Species)
	}
	if r.Nickname != "Sparky" || !r.IsNicknamed {
		t.Errorf("nickname not carried: %q nicknamed=%v", r.Nickname, r.IsNicknamed)
	}
	if r.PID != 0xCAFEF00D {
		t.Errorf("PID = 0x%08X, want 0xCAFEF00D", r.PID)
	}
	if r.IVs != [6]uint8{31, 0, 15, 31, 7, 31} {
		t.Errorf("IVs = %v", r.IVs)
	}
	if r.Moves != [4]uint16{5, 7, 0, 0} {
		t.Errorf("Moves = %v", r.Moves)
	}
	if r.StatNature != r.Nature {
		t.Errorf("stat nature %d != nature %d", r.StatNature, r.Nature)
	}
}

func TestFormValuesRecordErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*FormValues)
	}{
		{"bad level", func(v *FormValues) { v.Level = "abc" }},
		{"level overflow", func(v *FormValues) { v.Level = "300" }},
		{"met level overflow", func(v *FormValues) { v.MetLevel = "128" }},
		{"short iv list", func(v *FormValues) { v.IVs = "31,31,31" }},
		{"bad pid", func(v *FormValues) { v.PID = "0xZZ" }},
		{"pid overflow", func(v *FormValues) { v.PID = "0x1FFFFFFFF" }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := NewFormValues(config.TrainerDefaults{})
			c.mutate(v)
			if _, err := v.Record(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestSelectOptionsSortedByCode(t *testing.T) {
	opts := selectOptions(gamedata.Natures, false)
	if len(opts) != gamedata.Natures.Len() {
		t.Fatalf("got %d options, want %d", len(opts), gamedata.Natures.Len())
	}
	if opts[0].Value != "0" || !strings.Contains(opts[0].Key, "Hardy") {
		t.Errorf("first option = %+v, want Hardy (#0)", opts[0])
	}
	if opts[15].Value != "15" || !strings.Contains(opts[15].Key, "Modest") {
		t.Errorf("option 15 = %+v, want Modest (#15)", opts[15])
	}
}

func TestSelectOptionsWithNone(t *testing.T) {
	opts := selectOptions(gamedata.Moves, true)
	if opts[0].Value != "0" || !strings.Contains(opts[0].Key, "none") {
		t.Errorf("first option = %+v, want (none)", opts[0])
	}
}

func TestValidateStatList(t *testing.T) {
	check := validateStatList(31)
	if err := check("31,31,31,31,31,31"); err != nil {
		t.Errorf("valid list rejected: %v", err)
	}
	if err := check("32,0,0,0,0,0"); err == nil {
		t.Error("out-of-range value accepted")
	}
	if err := check("1,2,3"); err == nil {
		t.Error("short list accepted")
	}
}
