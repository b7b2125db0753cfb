package pkx

// Move returns move slot i (0..3).
func (e *Entity) Move(i int) uint16              { return uint16(e.get(e.lay.moves.at(i))) }
func (e *Entity) SetMove(i int, v uint16)        { e.set(e.lay.moves.at(i), uint64(v)) }
func (e *Entity) PP(i int) uint8                 { return uint8(e.get(e.lay.pp.at(i))) }
func (e *Entity) SetPP(i int, v uint8)           { e.set(e.lay.pp.at(i), uint64(v)) }
func (e *Entity) PPUp(i int) uint8               { return uint8(e.get(e.lay.ppUps.at(i))) }
func (e *Entity) SetPPUp(i int, v uint8)         { e.set(e.lay.ppUps.at(i), uint64(v)) }
func (e *Entity) RelearnMove(i int) uint16       { return uint16(e.get(e.lay.relearn.at(i))) }
func (e *Entity) SetRelearnMove(i int, v uint16) { e.set(e.lay.relearn.at(i), uint64(v)) }

// MoveRecordFlag reports whether technical record index has been learned
// (Gen 8+).
func (e *Entity) MoveRecordFlag(index int) bool {
	if !e.lay.recordFlags.present() || index < 0 || index >= e.lay.recordFlagCount {
		return false
	}
	return e.buf.Flag(e.lay.recordFlags.off+index>>3, uint(index&7))
}

func (e *Entity) SetMoveRecordFlag(index int, v bool) {
	if !e.lay.recordFlags.present() || index < 0 || index >= e.lay.recordFlagCount {
		return
	}
	e.buf.SetFlag(e.lay.recordFlags.off+index>>3, uint(index&7), v)
}

// PartyLevel is the level cached in the party region (the stored level byte on
// Game Boy records).
func (e *Entity) PartyLevel() uint8     { return uint8(e.get(e.lay.partyLevel)) }
func (e *Entity) SetPartyLevel(v uint8) { e.set(e.lay.partyLevel, uint64(v)) }

// PartyStat returns the cached stat; 0 on stored-length records.
func (e *Entity) PartyStat(s Stat) uint16 { return uint16(e.get(e.lay.partyStats.at(int(s)))) }

func (e *Entity) SetPartyStat(s Stat, v uint16) {
	if e.lay.partyStats.merge && s == StatSpD {
		// SpA and SpD share one slot; SpA wins.
		return
	}
	e.set(e.lay.partyStats.at(int(s)), uint64(v))
}

func (e *Entity) PartyCurrentHP() uint16     { return uint16(e.get(e.lay.partyHP)) }
func (e *Entity) SetPartyCurrentHP(v uint16) { e.set(e.lay.partyHP, uint64(v)) }

// Status is the raw status condition word.
func (e *Entity) Status() uint32     { return uint32(e.get(e.lay.status)) }
func (e *Entity) SetStatus(v uint32) { e.set(e.lay.status, uint64(v)) }

func (e *Entity) DynamaxType() uint16     { return uint16(e.get(e.lay.dynamaxType)) }
func (e *Entity) SetDynamaxType(v uint16) { e.set(e.lay.dynamaxType, uint64(v)) }
