package pkx

import (
	"github.com/udisondev/pkxcodec/internal/data"
)

// hyperTrainBit maps Stat to its bit in the hyper training byte, which orders
// the stats HP, Atk, Def, SpA, SpD, Spe.
var hyperTrainBit = [6]uint8{0, 1, 2, 5, 3, 4}

// IV returns the individual value for s (0..31, or 0..15 DVs on Game Boy).
func (e *Entity) IV(s Stat) uint8 {
	if s > StatSpD {
		return 0
	}
	if e.lay.ivOf != nil {
		return e.lay.ivOf(e, s)
	}
	if !e.lay.iv32.present() {
		return 0
	}
	return e.buf.Packed5(e.lay.iv32.off, int(s))
}

func (e *Entity) SetIV(s Stat, v uint8) {
	if s > StatSpD {
		return
	}
	if e.lay.setIV != nil {
		e.lay.setIV(e, s, v)
		return
	}
	if !e.lay.iv32.present() {
		return
	}
	e.buf.SetPacked5(e.lay.iv32.off, int(s), v)
}

// IVs returns all six individual values in stat order.
func (e *Entity) IVs() [6]uint8 {
	var out [6]uint8
	for _, s := range Stats {
		out[s] = e.IV(s)
	}
	return out
}

// EV returns the effort value (stat experience on Game Boy).
func (e *Entity) EV(s Stat) uint16       { return uint16(e.get(e.lay.evs.at(int(s)))) }
func (e *Entity) SetEV(s Stat, v uint16) { e.set(e.lay.evs.at(int(s)), uint64(v)) }

// AV returns the Let's Go awakening value.
func (e *Entity) AV(s Stat) uint8       { return uint8(e.get(e.lay.avs.at(int(s)))) }
func (e *Entity) SetAV(s Stat, v uint8) { e.set(e.lay.avs.at(int(s)), uint64(v)) }

// ContestStat returns contest condition i: Cool, Beauty, Cute, Smart, Tough, Sheen.
func (e *Entity) ContestStat(i int) uint8       { return uint8(e.get(e.lay.contest.at(i))) }
func (e *Entity) SetContestStat(i int, v uint8) { e.set(e.lay.contest.at(i), uint64(v)) }

// HyperTrained reports whether s is treated as a perfect IV in stat formulas.
func (e *Entity) HyperTrained(s Stat) bool {
	if !e.lay.hyperTrain.present() || s > StatSpD {
		return false
	}
	return e.buf.Flag(e.lay.hyperTrain.off, uint(hyperTrainBit[s]))
}

func (e *Entity) SetHyperTrained(s Stat, v bool) {
	if !e.lay.hyperTrain.present() || s > StatSpD {
		return
	}
	e.buf.SetFlag(e.lay.hyperTrain.off, uint(hyperTrainBit[s]), v)
}

// FormSpecies resolves species and form to a personal table row. Forms past
// the species' form count, and species whose forms share the base row,
// resolve to the species itself.
func (e *Entity) FormSpecies() uint16 {
	species := e.Species()
	form := e.Form()
	if form == 0 || form >= uint16(e.personal.FormCount(species)) {
		return species
	}
	base := e.personal.FormStatIndex(species)
	if base == 0 {
		return species
	}
	return base + form - 1
}

func (e *Entity) growth() data.GrowthRate {
	return data.GrowthRate(e.personal.ExpType(e.FormSpecies()))
}

// Level derives the level from experience.
func (e *Entity) Level() uint8 {
	return uint8(data.GetLevelForExp(e.Experience(), e.growth()))
}

// SetLevel sets experience to the floor of level v and keeps stored level
// bytes in sync.
func (e *Entity) SetLevel(v uint8) {
	if v < 1 {
		v = 1
	}
	if v > data.MaxLevel {
		v = data.MaxLevel
	}
	e.SetExperience(data.GetExpForLevel(int(v), e.growth()))
	e.set(e.lay.boxLevel, uint64(v))
	e.SetPartyLevel(v)
}

// Stat computes the current value of s from base stats, IVs, EVs, level and
// nature.
func (e *Entity) Stat(s Stat) uint16 {
	if s > StatSpD {
		return 0
	}
	if e.lay.statOf != nil {
		return e.lay.statOf(e, s)
	}
	return e.standardStat(s, e.EV(s))
}

func (e *Entity) standardStat(s Stat, ev uint16) uint16 {
	base := uint32(e.personal.BaseStat(e.FormSpecies(), s))
	iv := uint32(e.IV(s))
	if e.HyperTrained(s) {
		iv = 31
	}
	level := uint32(e.Level())

	var calc uint32
	if s == StatHP {
		calc = 10 + (2*base+iv+uint32(ev)/4+100)*level/100
	} else {
		calc = 5 + (2*base+iv+uint32(ev)/4)*level/100
	}

	mult := uint32(10)
	nature := e.Nature()
	if nature.Boosted() == s {
		mult++
	}
	if nature.Hindered() == s {
		mult--
	}
	return uint16(calc * mult / 10)
}

// HPType returns the hidden power type derived from IV parity.
func (e *Entity) HPType() Type {
	if e.lay.hpTypeOf != nil {
		return e.lay.hpTypeOf(e)
	}
	return Type(data.HiddenPowerType(e.IVs()))
}

// SetHPType adjusts the low bit of each IV so HPType returns t. Normal, Fairy
// and anything past them are ignored.
func (e *Entity) SetHPType(t Type) {
	if t <= TypeNormal || t >= TypeFairy {
		return
	}
	if e.lay.setHPType != nil {
		e.lay.setHPType(e, t)
		return
	}
	row := data.HiddenPowerIVs[t-1]
	for _, s := range Stats {
		e.SetIV(s, e.IV(s)&0x1E+row[s])
	}
}

// UpdatePartyData rewrites the party-only level, stats and current HP from
// the stored fields. On stored-length records only the Game Boy level byte is
// refreshed.
func (e *Entity) UpdatePartyData() {
	level := e.Level()
	e.set(e.lay.boxLevel, uint64(level))
	if !e.party {
		return
	}
	for _, s := range Stats {
		e.SetPartyStat(s, e.Stat(s))
	}
	e.SetPartyLevel(level)
	e.SetPartyCurrentHP(e.Stat(StatHP))
}
