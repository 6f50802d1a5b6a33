// Package pkm encodes and decodes the fixed 344-byte stored record for one
// game entity, including checksum computation and validation.
package pkm

import "fmt"

// ValidationError reports a field that is out of range or a code unknown to
// the field tables, detected at encode time.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("pkm: invalid %s: %s", e.Field, e.Reason)
}

// FormatError reports a buffer whose length is not RecordLen.
type FormatError struct {
	Length int
}

func (e FormatError) Error() string {
	return fmt.Sprintf("pkm: record is %d bytes, want %d", e.Length, RecordLen)
}

// ChecksumError reports a stored checksum that does not match the recomputed
// value.
type ChecksumError struct {
	Stored   uint16
	Computed uint16
}

func (e ChecksumError) Error() string {
	return fmt.Sprintf("pkm: checksum mismatch: stored 0x%04X, computed 0x%04X", e.Stored, e.Computed)
}

// CodeTable is the lookup surface the codec needs from a field table.
type CodeTable interface {
	Has(code uint16) bool
	Kind() string
}

// Codebook bundles the field tables Encode validates codes against. Balls
// is the ball subset of the item table.
type Codebook struct {
	Species   CodeTable
	Items     CodeTable
	Moves     CodeTable
	Abilities CodeTable
	Natures   CodeTable
	Balls     CodeTable
}

// Record is the structured form of one stored record. It is constructed
// transiently for Encode or produced by Decode; the byte buffer, not this
// struct, is the persistent form.
type Record struct {
	// Header fields. Both are zero for this record revision but are
	// preserved so arbitrary buffers survive a decode/encode cycle.
	EncryptionConstant uint32
	Sanity             uint16

	// Identity.
	Species uint16
	PID     uint32
	TID     uint16
	SID     uint16

	// Progression.
	EXP        uint32
	Level      uint8
	Friendship uint8
	HeldItem   uint16

	// Abilities and nature.
	Ability       uint16
	AbilityNumber uint8 // 0-7
	CanGigantamax bool
	Nature        uint8
	StatNature    uint8

	// Appearance.
	Gender uint8 // 0 male, 1 female, 2 genderless
	Form   uint8

	// Stat shaping.
	IVs         [6]uint8  // 0-31 each: HP, Atk, Def, Spe, SpA, SpD
	EVs         [6]uint16 // 0-255 each, wider than a byte so Encode can reject 256
	IsEgg       bool
	IsNicknamed bool
	Stats       [6]uint16 // computed battle stats, stored as-is

	// Move slots, in slot order 1-4.
	Moves     [4]uint16
	MovePP    [4]uint8
	MovePPUps [4]uint8

	// Display.
	Nickname    string
	OTName      string
	HandlerName string
	Language    uint16

	// Origin.
	MetLevel    uint8 // 0-127
	MetLocation uint16
	EggLocation uint16
	Ball        uint8
	OTGender    uint8 // 0-1
}

// validate checks the bounded fields and code memberships per the format's
// invariants. A code of zero means "none" for species, items, moves and
// abilities and is always accepted; nonzero codes must be in their table.
func (r *Record) validate(tables Codebook) error {
	if err := checkCode(tables.Species, r.Species, "species"); err != nil {
		return err
	}
	if err := checkCode(tables.Items, r.HeldItem, "held item"); err != nil {
		return err
	}
	if err := checkCode(tables.Balls, uint16(r.Ball), "ball"); err != nil {
		return err
	}
	if err := checkCode(tables.Abilities, r.Ability, "ability"); err != nil {
		return err
	}
	if !tables.Natures.Has(uint16(r.Nature)) {
		return ValidationError{Field: "nature", Reason: fmt.Sprintf("code %d not in %s table", r.Nature, tables.Natures.Kind())}
	}
	if !tables.Natures.Has(uint16(r.StatNature)) {
		return ValidationError{Field: "stat nature", Reason: fmt.Sprintf("code %d not in %s table", r.StatNature, tables.Natures.Kind())}
	}
	for i, m := range r.Moves {
		if err := checkCode(tables.Moves, m, fmt.Sprintf("move %d", i+1)); err != nil {
			return err
		}
	}
	for i, iv := range r.IVs {
		if iv > ivMax {
			return ValidationError{Field: fmt.Sprintf("IV %d", i+1), Reason: fmt.Sprintf("%d exceeds maximum %d", iv, ivMax)}
		}
	}
	for i, ev := range r.EVs {
		if ev > 255 {
			return ValidationError{Field: fmt.Sprintf("EV %d", i+1), Reason: fmt.Sprintf("%d exceeds maximum 255", ev)}
		}
	}
	if r.Gender > 2 {
		return ValidationError{Field: "gender", Reason: fmt.Sprintf("%d not in 0-2", r.Gender)}
	}
	if r.OTGender > 1 {
		return ValidationError{Field: "trainer gender", Reason: fmt.Sprintf("%d not in 0-1", r.OTGender)}
	}
	if r.AbilityNumber > 7 {
		return ValidationError{Field: "ability number", Reason: fmt.Sprintf("%d does not fit in 3 bits", r.AbilityNumber)}
	}
	if r.MetLevel > 127 {
		return ValidationError{Field: "met level", Reason: fmt.Sprintf("%d does not fit in 7 bits", r.MetLevel)}
	}
	return nil
}

func checkCode(table CodeTable, code uint16, field string) error {
	if code == 0 {
		// zero means none/empty and always round-trips
		return nil
	}
	if !table.Has(code) {
		return ValidationError{Field: field, Reason: fmt.Sprintf("code %d not in %s table", code, table.Kind())}
	}
	return nil
}
