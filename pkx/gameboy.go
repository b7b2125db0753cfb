package pkx

import "github.com/udisondev/pkxcodec/internal/data"

// Game Boy records pack four 4-bit DVs into one big-endian word:
// Atk in bits 12-15, Def 8-11, Spe 4-7, Special 0-3. The HP DV is built from
// the low bit of each of the other four.
var gbHooks = hooks{
	ivOf:      gbIV,
	setIV:     setGBIV,
	genderOf:  gbGender,
	setGender: func(*Entity, Gender) {},
	natureOf:  gbNature,
	setNature: func(*Entity, Nature) {},
	statOf:    gbStat,
	hpTypeOf:  gbHPType,
	setHPType: setGBHPType,
	shinyOf:   gbShiny,
	setShiny:  setGBShiny,
}

const (
	dvShiny = 10
	dvMax   = 15
)

func dvShift(s Stat) uint {
	switch s {
	case StatAtk:
		return 12
	case StatDef:
		return 8
	case StatSpe:
		return 4
	}
	return 0
}

func (e *Entity) dvWord() uint16     { return uint16(e.get(e.lay.dv)) }
func (e *Entity) setDVWord(v uint16) { e.set(e.lay.dv, uint64(v)) }

func gbIV(e *Entity, s Stat) uint8 {
	dv := e.dvWord()
	if s != StatHP {
		return uint8(dv >> dvShift(s) & 0xF)
	}
	return uint8(dv>>12&1<<3 | dv>>8&1<<2 | dv>>4&1<<1 | dv&1)
}

func setGBIV(e *Entity, s Stat, v uint8) {
	v = min(v, dvMax)
	dv := e.dvWord()
	if s == StatHP {
		dv &^= 0x1111
		dv |= uint16(v>>3&1)<<12 | uint16(v>>2&1)<<8 | uint16(v>>1&1)<<4 | uint16(v&1)
		e.setDVWord(dv)
		return
	}
	sh := dvShift(s)
	dv = dv&^(0xF<<sh) | uint16(v)<<sh
	e.setDVWord(dv)
}

// gbGender: the Attack DV decides, against the upper nibble of the ratio.
func gbGender(e *Entity) Gender {
	ratio := e.personal.GenderRatio(e.FormSpecies())
	switch ratio {
	case RatioGenderless:
		return GenderGenderless
	case RatioFemaleOnly:
		return GenderFemale
	case RatioMaleOnly:
		return GenderMale
	}
	if gbIV(e, StatAtk) > ratio>>4 {
		return GenderMale
	}
	return GenderFemale
}

func gbNature(e *Entity) Nature { return Nature(e.Experience() % NatureCount) }

func gbStat(e *Entity, s Stat) uint16 {
	base := uint32(e.personal.BaseStat(e.FormSpecies(), s))
	dv := uint32(gbIV(e, s))
	ev := min(ceilSqrt(uint32(e.EV(s))), 255) / 4
	level := uint32(e.Level())

	calc := ((base+dv)*2 + ev) * level / 100
	if s == StatHP {
		return uint16(calc + level + 10)
	}
	return uint16(calc + 5)
}

// gen1Stat reads the single Special base for both special stats.
func gen1Stat(e *Entity, s Stat) uint16 {
	if s == StatSpD {
		s = StatSpA
	}
	return gbStat(e, s)
}

func ceilSqrt(v uint32) uint32 {
	var r uint32
	for r*r < v {
		r++
	}
	return r
}

func gbHPType(e *Entity) Type {
	return Type(4*(gbIV(e, StatAtk)&3)+gbIV(e, StatDef)&3) + TypeFighting
}

func setGBHPType(e *Entity, t Type) {
	idx := uint8(t - TypeFighting)
	setGBIV(e, StatAtk, gbIV(e, StatAtk)&^3|idx>>2)
	setGBIV(e, StatDef, gbIV(e, StatDef)&^3|idx&3)
}

// gbShiny uses the Gold/Silver rule.
func gbShiny(e *Entity) bool {
	return gbIV(e, StatDef) == dvShiny &&
		gbIV(e, StatSpe) == dvShiny &&
		gbIV(e, StatSpA) == dvShiny &&
		gbIV(e, StatAtk)&2 != 0
}

func setGBShiny(e *Entity, v bool) {
	if gbShiny(e) == v {
		return
	}
	if !v {
		setGBIV(e, StatAtk, gbIV(e, StatAtk)&^2)
		return
	}
	setGBIV(e, StatAtk, gbIV(e, StatAtk)|2)
	setGBIV(e, StatDef, dvShiny)
	setGBIV(e, StatSpe, dvShiny)
	setGBIV(e, StatSpA, dvShiny)
}

func gen1Species(e *Entity) uint16 { return data.Gen1ToNational(uint8(e.get(e.lay.species))) }

// setGen1Species stores the internal index and refreshes the type bytes from
// the personal table.
func setGen1Species(e *Entity, v uint16) {
	e.set(e.lay.species, uint64(data.NationalToGen1(v)))
	fs := e.FormSpecies()
	e.set(e.lay.gbTypes[0], uint64(data.Gen1TypeID(uint8(e.personal.Type1(fs)))))
	e.set(e.lay.gbTypes[1], uint64(data.Gen1TypeID(uint8(e.personal.Type2(fs)))))
}
