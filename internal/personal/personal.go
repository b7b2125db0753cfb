// Package personal loads per-species base data from YAML.
package personal

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/pkxcodec/pkx"
)

// ErrInvalidEntry is returned for a row that cannot be used.
var ErrInvalidEntry = errors.New("invalid personal entry")

// Entry is one row of the table, keyed by form-species index.
type Entry struct {
	Index uint16 `yaml:"index"`
	Name  string `yaml:"name"`

	// Base stats in HP, Atk, Def, Spe, SpA, SpD order.
	Base      []uint8  `yaml:"base"`
	Types     []uint8  `yaml:"types"`
	Abilities []uint16 `yaml:"abilities"` // slot 0, 1, hidden

	FormCount     uint8  `yaml:"form_count"`
	FormStatIndex uint16 `yaml:"form_stat_index"`
	GenderRatio   uint8  `yaml:"gender_ratio"`
	ExpType       uint8  `yaml:"exp_type"`
}

type document struct {
	Species []Entry `yaml:"species"`
}

// Table implements pkx.PersonalTable. Unknown indices answer with zero base
// stats, one form and no gender.
type Table struct {
	rows map[uint16]Entry
}

var _ pkx.PersonalTable = (*Table)(nil)

// Parse decodes a YAML personal table.
func Parse(r io.Reader) (*Table, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding personal table: %w", err)
	}

	t := &Table{rows: make(map[uint16]Entry, len(doc.Species))}
	for _, e := range doc.Species {
		if err := e.validate(); err != nil {
			return nil, err
		}
		if _, dup := t.rows[e.Index]; dup {
			return nil, fmt.Errorf("index %d listed twice: %w", e.Index, ErrInvalidEntry)
		}
		if e.FormCount == 0 {
			e.FormCount = 1
		}
		t.rows[e.Index] = e
	}
	return t, nil
}

// Load reads a personal table from path.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading personal table %s: %w", path, err)
	}
	t, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("personal table %s: %w", path, err)
	}
	return t, nil
}

func (e Entry) validate() error {
	if len(e.Base) != len(pkx.Stats) {
		return fmt.Errorf("index %d: %d base stats, want %d: %w", e.Index, len(e.Base), len(pkx.Stats), ErrInvalidEntry)
	}
	if len(e.Types) == 0 || len(e.Types) > 2 {
		return fmt.Errorf("index %d: %d types: %w", e.Index, len(e.Types), ErrInvalidEntry)
	}
	if len(e.Abilities) > 3 {
		return fmt.Errorf("index %d: %d abilities: %w", e.Index, len(e.Abilities), ErrInvalidEntry)
	}
	return nil
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Entry returns the row for formSpecies.
func (t *Table) Entry(formSpecies uint16) (Entry, bool) {
	e, ok := t.rows[formSpecies]
	return e, ok
}

func (t *Table) BaseStat(formSpecies uint16, s pkx.Stat) uint8 {
	e, ok := t.rows[formSpecies]
	if !ok || int(s) >= len(e.Base) {
		return 0
	}
	return e.Base[s]
}

func (t *Table) Type1(formSpecies uint16) pkx.Type {
	e, ok := t.rows[formSpecies]
	if !ok {
		return pkx.TypeNormal
	}
	return pkx.Type(e.Types[0])
}

// Type2 repeats Type1 for single-typed species.
func (t *Table) Type2(formSpecies uint16) pkx.Type {
	e, ok := t.rows[formSpecies]
	if !ok {
		return pkx.TypeNormal
	}
	return pkx.Type(e.Types[len(e.Types)-1])
}

func (t *Table) Ability(formSpecies uint16, slot uint8) uint16 {
	e, ok := t.rows[formSpecies]
	if !ok || int(slot) >= len(e.Abilities) {
		return 0
	}
	return e.Abilities[slot]
}

func (t *Table) FormCount(species uint16) uint8 {
	e, ok := t.rows[species]
	if !ok {
		return 1
	}
	return e.FormCount
}

func (t *Table) FormStatIndex(species uint16) uint16 { return t.rows[species].FormStatIndex }

func (t *Table) GenderRatio(formSpecies uint16) uint8 {
	e, ok := t.rows[formSpecies]
	if !ok {
		return pkx.RatioGenderless
	}
	return e.GenderRatio
}

func (t *Table) ExpType(formSpecies uint16) uint8 { return t.rows[formSpecies].ExpType }
