package pkx

// Ribbon identifies a ribbon or mark. Values follow the bit order of the Gen 8+
// ribbon area: 0..63 are the eight bytes at 0x34, marks from RibbonMarkMisty on
// continue at 0x40.
type Ribbon uint8

const (
	RibbonChampionKalos Ribbon = iota
	RibbonChampionG3Hoenn
	RibbonChampionSinnoh
	RibbonBestFriends
	RibbonTraining
	RibbonBattlerSkillful
	RibbonBattlerExpert
	RibbonEffort

	RibbonAlert
	RibbonShock
	RibbonDowncast
	RibbonCareless
	RibbonRelax
	RibbonSnooze
	RibbonSmile
	RibbonGorgeous

	RibbonRoyal
	RibbonGorgeousRoyal
	RibbonArtist
	RibbonFootprint
	RibbonRecord
	RibbonLegend
	RibbonCountry
	RibbonNational

	RibbonEarth
	RibbonWorld
	RibbonClassic
	RibbonPremier
	RibbonEvent
	RibbonBirthday
	RibbonSpecial
	RibbonSouvenir

	RibbonWishing
	RibbonChampionBattle
	RibbonChampionRegional
	RibbonChampionNational
	RibbonChampionWorld
	RibbonMemoryContest
	RibbonMemoryBattle
	RibbonChampionG6Hoenn

	RibbonContestStar
	RibbonMasterCoolness
	RibbonMasterBeauty
	RibbonMasterCuteness
	RibbonMasterCleverness
	RibbonMasterToughness
	RibbonChampionAlola
	RibbonBattleRoyale

	RibbonBattleTreeGreat
	RibbonBattleTreeMaster
	RibbonChampionGalar
	RibbonTowerMaster
	RibbonMasterRank
	RibbonMarkLunchtime
	RibbonMarkSleepyTime
	RibbonMarkDusk

	RibbonMarkDawn
	RibbonMarkCloudy
	RibbonMarkRainy
	RibbonMarkStormy
	RibbonMarkSnowy
	RibbonMarkBlizzard
	RibbonMarkDry
	RibbonMarkSandstorm

	RibbonMarkMisty
	RibbonMarkDestiny
	RibbonMarkFishing
	RibbonMarkCurry
	RibbonMarkUncommon
	RibbonMarkRare
	RibbonMarkRowdy
	RibbonMarkAbsentMinded

	RibbonMarkJittery
	RibbonMarkExcited
	RibbonMarkCharismatic
	RibbonMarkCalmness
	RibbonMarkIntense
	RibbonMarkZonedOut
	RibbonMarkJoyful
	RibbonMarkAngry

	RibbonMarkSmiley
	RibbonMarkTeary
	RibbonMarkUpbeat
	RibbonMarkPeeved
	RibbonMarkIntellectual
	RibbonMarkFerocious
	RibbonMarkCrafty
	RibbonMarkScowling

	RibbonMarkKindly
	RibbonMarkFlustered
	RibbonMarkPumpedUp
	RibbonMarkZeroEnergy
	RibbonMarkPrideful
	RibbonMarkUnsure
	RibbonMarkHumble
	RibbonMarkThorny

	RibbonMarkVigor
	RibbonMarkSlump

	RibbonCount
)

// ribbonTable places ribbon flags in a record. Ribbons below count are packed
// from base; ribbons from RibbonMarkMisty on are packed from extBase.
type ribbonTable struct {
	base, count       int
	extBase, extCount int
}

func (t ribbonTable) at(r Ribbon) field {
	i := int(r)
	switch {
	case i < t.count:
		return flag(t.base+i/8, uint8(i%8))
	case i >= int(RibbonMarkMisty) && i < int(RibbonMarkMisty)+t.extCount:
		i -= int(RibbonMarkMisty)
		return flag(t.extBase+i/8, uint8(i%8))
	}
	return field{}
}

// SupportsRibbon reports whether the generation stores r.
func (e *Entity) SupportsRibbon(r Ribbon) bool { return e.lay.ribbons.at(r).present() }

// Ribbon reports whether r is set. Unsupported ribbons read false.
func (e *Entity) Ribbon(r Ribbon) bool { return e.getFlag(e.lay.ribbons.at(r)) }

// SetRibbon sets or clears r. Unsupported ribbons are ignored.
func (e *Entity) SetRibbon(r Ribbon, v bool) { e.setFlag(e.lay.ribbons.at(r), v) }

// Ribbons lists every ribbon that is set.
func (e *Entity) Ribbons() []Ribbon {
	var out []Ribbon
	for r := range RibbonCount {
		if e.Ribbon(r) {
			out = append(out, r)
		}
	}
	return out
}

// RibbonContestCount is the number of Hoenn contest memory ribbons.
func (e *Entity) RibbonContestCount() uint8 { return uint8(e.get(e.lay.contestCount)) }

// SetRibbonContestCount also sets RibbonMemoryContest while the count is
// nonzero and clears it otherwise.
func (e *Entity) SetRibbonContestCount(v uint8) {
	if !e.lay.contestCount.present() {
		return
	}
	e.set(e.lay.contestCount, uint64(v))
	e.SetRibbon(RibbonMemoryContest, v != 0)
}

// RibbonBattleCount is the number of Hoenn battle memory ribbons.
func (e *Entity) RibbonBattleCount() uint8 { return uint8(e.get(e.lay.battleCount)) }

// SetRibbonBattleCount keeps RibbonMemoryBattle in step with the count.
func (e *Entity) SetRibbonBattleCount(v uint8) {
	if !e.lay.battleCount.present() {
		return
	}
	e.set(e.lay.battleCount, uint64(v))
	e.SetRibbon(RibbonMemoryBattle, v != 0)
}

// FavoriteRibbon is the ribbon shown next to the name, -1 for none.
func (e *Entity) FavoriteRibbon() int8     { return int8(e.get(e.lay.favRibbon)) }
func (e *Entity) SetFavoriteRibbon(v int8) { e.set(e.lay.favRibbon, uint64(uint8(v))) }
