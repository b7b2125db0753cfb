package pkx

import (
	"errors"

	"github.com/udisondev/pkxcodec/internal/pidgen"
)

var (
	// ErrGeneration is returned for an unknown or unsupported generation tag.
	ErrGeneration = errors.New("unsupported generation")
	// ErrBufferSize is returned when a buffer matches neither the stored nor the
	// party length of its generation.
	ErrBufferSize = errors.New("invalid buffer size")
)

// PersonalTable answers per-species queries. formSpecies is the key returned by
// Entity.FormSpecies; species is the raw national dex number.
type PersonalTable interface {
	BaseStat(formSpecies uint16, s Stat) uint8
	Type1(formSpecies uint16) Type
	Type2(formSpecies uint16) Type
	// Ability returns the ability id in slot 0, 1 or 2 (hidden).
	Ability(formSpecies uint16, slot uint8) uint16
	FormCount(species uint16) uint8
	// FormStatIndex returns the row of the first alternate form, or 0 when all
	// forms share the base row.
	FormStatIndex(species uint16) uint16
	GenderRatio(formSpecies uint16) uint8
	ExpType(formSpecies uint16) uint8
}

// PIDRequest carries everything a PID generator must preserve.
type PIDRequest struct {
	Generation    Generation
	Species       uint16
	Form          uint16
	Gender        Gender
	GenderRatio   uint8
	Version       uint8
	Nature        Nature
	AbilityNumber uint8
	WantShiny     bool
	TSV           uint16
	CurrentPID    uint32
}

// PIDGenerator produces personality values for shiny toggling and nature
// changes on generations that derive nature from the PID.
type PIDGenerator interface {
	Generate(req PIDRequest) uint32
}

// noPersonal is used when no table is configured: every base stat is zero and
// every species has a single form.
type noPersonal struct{}

func (noPersonal) BaseStat(uint16, Stat) uint8  { return 0 }
func (noPersonal) Type1(uint16) Type            { return TypeNormal }
func (noPersonal) Type2(uint16) Type            { return TypeNormal }
func (noPersonal) Ability(uint16, uint8) uint16 { return 0 }
func (noPersonal) FormCount(uint16) uint8       { return 1 }
func (noPersonal) FormStatIndex(uint16) uint16  { return 0 }
func (noPersonal) GenderRatio(uint16) uint8     { return RatioGenderless }
func (noPersonal) ExpType(uint16) uint8         { return 0 }

// randomPIDs adapts pidgen to the generation rules: Gen 4 nature is PID%25,
// Gen 4/5 ability slot and gender are PID bits.
type randomPIDs struct {
	g *pidgen.Generator
}

// NewRandomPIDGenerator returns the default PID generator.
func NewRandomPIDGenerator() PIDGenerator {
	return randomPIDs{g: pidgen.New()}
}

func (r randomPIDs) Generate(req PIDRequest) uint32 {
	c := pidgen.Constraints{
		TSV:        req.TSV,
		Shift:      4,
		Shiny:      req.WantShiny,
		Nature:     -1,
		AbilityBit: -1,
	}
	switch req.Generation {
	case Gen4:
		c.Shift = 3
		c.Nature = int(req.Nature)
		c.AbilityBit = 0
		c.AbilityValue = abilityBitFor(req.AbilityNumber)
	case Gen5:
		c.Shift = 3
		if req.AbilityNumber != 4 {
			c.AbilityBit = 16
			c.AbilityValue = abilityBitFor(req.AbilityNumber)
		}
	}
	if req.Generation == Gen4 || req.Generation == Gen5 {
		c.GenderRatio = req.GenderRatio
		c.Female = req.Gender == GenderFemale
	}
	return r.g.Generate(c)
}

func abilityBitFor(number uint8) uint32 {
	if number == 2 {
		return 1
	}
	return 0
}
