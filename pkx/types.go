package pkx

import (
	"fmt"
	"strings"
)

// Generation selects a record layout.
type Generation uint8

const (
	Gen1 Generation = iota + 1
	Gen2
	_ // Gen 3 records are not supported
	Gen4
	Gen5
	Gen6
	Gen7
	GenLGPE
	Gen8
	Gen9
)

// Generations lists every supported layout in release order.
var Generations = []Generation{Gen1, Gen2, Gen4, Gen5, Gen6, Gen7, GenLGPE, Gen8, Gen9}

func (g Generation) String() string {
	switch g {
	case Gen1:
		return "1"
	case Gen2:
		return "2"
	case Gen4:
		return "4"
	case Gen5:
		return "5"
	case Gen6:
		return "6"
	case Gen7:
		return "7"
	case GenLGPE:
		return "lgpe"
	case Gen8:
		return "8"
	case Gen9:
		return "9"
	}
	return fmt.Sprintf("Generation(%d)", uint8(g))
}

// ParseGeneration accepts the names produced by Generation.String.
func ParseGeneration(s string) (Generation, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, g := range Generations {
		if g.String() == name {
			return g, nil
		}
	}
	return 0, fmt.Errorf("parse generation %q: %w", s, ErrGeneration)
}

// Stat indexes the six battle stats. The order matches on-disk stat arrays.
type Stat uint8

const (
	StatHP Stat = iota
	StatAtk
	StatDef
	StatSpe
	StatSpA
	StatSpD
)

// Stats lists every stat in storage order.
var Stats = [6]Stat{StatHP, StatAtk, StatDef, StatSpe, StatSpA, StatSpD}

func (s Stat) String() string {
	switch s {
	case StatHP:
		return "HP"
	case StatAtk:
		return "Atk"
	case StatDef:
		return "Def"
	case StatSpe:
		return "Spe"
	case StatSpA:
		return "SpA"
	case StatSpD:
		return "SpD"
	}
	return fmt.Sprintf("Stat(%d)", uint8(s))
}

// Gender of an entity.
type Gender uint8

const (
	GenderMale Gender = iota
	GenderFemale
	GenderGenderless
)

// Personal gender ratio markers.
const (
	RatioMaleOnly   = 0
	RatioFemaleOnly = 254
	RatioGenderless = 255
)

// Type is an elemental type index.
type Type uint8

const (
	TypeNormal Type = iota
	TypeFighting
	TypeFlying
	TypePoison
	TypeGround
	TypeRock
	TypeBug
	TypeGhost
	TypeSteel
	TypeFire
	TypeWater
	TypeGrass
	TypeElectric
	TypePsychic
	TypeIce
	TypeDragon
	TypeDark
	TypeFairy

	// TypeStellar is the Gen 9 tera-only type.
	TypeStellar Type = 99
	// TypeInvalid is returned where no type applies.
	TypeInvalid Type = 0xFF
)

// teraTypeUnset marks a tera override that defers to the original tera type.
const teraTypeUnset = 19

// Nature index 0..24. Nature/5 is the boosted stat, nature%5 the hindered one.
type Nature uint8

// NatureCount is the number of natures.
const NatureCount = 25

// Boosted returns the stat raised by the nature.
func (n Nature) Boosted() Stat { return Stat(n/5 + 1) }

// Hindered returns the stat lowered by the nature.
func (n Nature) Hindered() Stat { return Stat(n%5 + 1) }

// Neutral reports whether the nature changes no stat.
func (n Nature) Neutral() bool { return n/5 == n%5 }

// Date is a calendar date as stored in met/egg fields.
type Date struct {
	Year  int
	Month int
	Day   int
}

// IsZero reports whether no date is stored.
func (d Date) IsZero() bool { return d == Date{} }

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Memory is a trainer memory as stored from Gen 6 on. TextVar is the species,
// item or location id the memory text refers to.
type Memory struct {
	Intensity uint8
	Memory    uint8
	Feeling   uint8
	TextVar   uint16
}
