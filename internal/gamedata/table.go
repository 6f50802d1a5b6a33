// Package gamedata holds the immutable code<->name lookup tables for the
// record revision: species, held items, natures, abilities and moves.
package gamedata

import (
	"fmt"
	"strings"
)

// NotFoundError reports a lookup miss in a Table, in either direction.
type NotFoundError struct {
	Table string
	Code  uint16
	Name  string
}

func (e NotFoundError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("gamedata: unknown %s name %q", e.Table, e.Name)
	}
	return fmt.Sprintf("gamedata: unknown %s code %d", e.Table, e.Code)
}

// Table is a bidirectional mapping between numeric codes and display names.
// Tables are built once at init and never mutated, so they are safe for
// concurrent lookups.
type Table struct {
	kind    string
	byCode  map[uint16]string
	byName  map[string]uint16
	maxCode uint16
}

// NewTable builds a Table from a code->name map. kind names the table in
// error messages ("species", "move", ...).
func NewTable(kind string, byCode map[uint16]string) *Table {
	t := &Table{
		kind:   kind,
		byCode: byCode,
		byName: make(map[string]uint16, len(byCode)),
	}
	for code, name := range byCode {
		t.byName[name] = code
		if code > t.maxCode {
			t.maxCode = code
		}
	}
	return t
}

// NameFor returns the display name for a code.
func (t *Table) NameFor(code uint16) (string, error) {
	name, ok := t.byCode[code]
	if !ok {
		return "", NotFoundError{Table: t.kind, Code: code}
	}
	return name, nil
}

// CodeFor returns the code for a display name.
func (t *Table) CodeFor(name string) (uint16, error) {
	code, ok := t.byName[name]
	if !ok {
		return 0, NotFoundError{Table: t.kind, Name: name}
	}
	return code, nil
}

// Has reports whether code is present in the table.
func (t *Table) Has(code uint16) bool {
	_, ok := t.byCode[code]
	return ok
}

// MaxCode returns the highest code in the table.
func (t *Table) MaxCode() uint16 { return t.maxCode }

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.byCode) }

// Kind returns the table's name as used in error messages.
func (t *Table) Kind() string { return t.kind }

// Codes returns all codes in the table in unspecified order.
func (t *Table) Codes() []uint16 {
	codes := make([]uint16, 0, len(t.byCode))
	for code := range t.byCode {
		codes = append(codes, code)
	}
	return codes
}

// BallItems maps ball item codes to display names and back.
var BallItems = NewTable("ball", Balls())

// Balls returns the subset of item codes usable as a capture ball. Balls
// are not a separate table in the game data; they are the items whose
// names contain "Ball".
func Balls() map[uint16]string {
	balls := make(map[uint16]string)
	for code, name := range itemNames {
		if strings.Contains(name, "Ball") {
			balls[code] = name
		}
	}
	return balls
}
