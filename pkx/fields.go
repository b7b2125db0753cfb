package pkx

// EncryptionConstant is the Gen 6+ cipher seed. Earlier generations key the
// cipher with the PID and return 0 here.
func (e *Entity) EncryptionConstant() uint32     { return uint32(e.get(e.lay.ec)) }
func (e *Entity) SetEncryptionConstant(v uint32) { e.set(e.lay.ec, uint64(v)) }

func (e *Entity) PID() uint32     { return uint32(e.get(e.lay.pid)) }
func (e *Entity) SetPID(v uint32) { e.set(e.lay.pid, uint64(v)) }

// Sanity is the Gen 4+ placeholder word next to the checksum.
func (e *Entity) Sanity() uint16     { return uint16(e.get(e.lay.sanity)) }
func (e *Entity) SetSanity(v uint16) { e.set(e.lay.sanity, uint64(v)) }

// Species returns the national dex number.
func (e *Entity) Species() uint16 {
	if e.lay.speciesOf != nil {
		return e.lay.speciesOf(e)
	}
	return uint16(e.get(e.lay.species))
}

func (e *Entity) SetSpecies(v uint16) {
	if e.lay.setSpecies != nil {
		e.lay.setSpecies(e, v)
		return
	}
	e.set(e.lay.species, uint64(v))
}

func (e *Entity) HeldItem() uint16     { return uint16(e.get(e.lay.heldItem)) }
func (e *Entity) SetHeldItem(v uint16) { e.set(e.lay.heldItem, uint64(v)) }

func (e *Entity) TID() uint16     { return uint16(e.get(e.lay.tid)) }
func (e *Entity) SetTID(v uint16) { e.set(e.lay.tid, uint64(v)) }
func (e *Entity) SID() uint16     { return uint16(e.get(e.lay.sid)) }
func (e *Entity) SetSID(v uint16) { e.set(e.lay.sid, uint64(v)) }

func (e *Entity) Experience() uint32     { return uint32(e.get(e.lay.exp)) }
func (e *Entity) SetExperience(v uint32) { e.set(e.lay.exp, uint64(v)) }

func (e *Entity) Ability() uint16     { return uint16(e.get(e.lay.ability)) }
func (e *Entity) SetAbility(v uint16) { e.set(e.lay.ability, uint64(v)) }

// AbilityNumber returns the ability slot as a bit: 1, 2 or 4 (hidden).
func (e *Entity) AbilityNumber() uint8 {
	if e.lay.abilityNumberOf != nil {
		return e.lay.abilityNumberOf(e)
	}
	return uint8(e.get(e.lay.abilityNumber))
}

func (e *Entity) SetAbilityNumber(v uint8) {
	if e.lay.setAbilityNumber != nil {
		e.lay.setAbilityNumber(e, v)
		return
	}
	e.set(e.lay.abilityNumber, uint64(v))
}

// SetAbilitySlot selects ability slot 0, 1 or 2 (hidden) and writes the ability
// id that slot holds in the personal table.
func (e *Entity) SetAbilitySlot(slot uint8) {
	if slot > 2 {
		return
	}
	e.SetAbilityNumber(1 << slot)
	e.SetAbility(e.personal.Ability(e.FormSpecies(), slot))
}

// Nature returns the nature used for stat calculation.
func (e *Entity) Nature() Nature {
	if e.lay.natureOf != nil {
		return e.lay.natureOf(e)
	}
	return Nature(e.get(e.lay.nature))
}

func (e *Entity) SetNature(v Nature) {
	if v >= NatureCount {
		return
	}
	if e.lay.setNature != nil {
		e.lay.setNature(e, v)
		return
	}
	e.set(e.lay.nature, uint64(v))
}

// OriginalNature differs from Nature only after a stat nature change (Gen 8+).
func (e *Entity) OriginalNature() Nature {
	if !e.lay.origNature.present() {
		return e.Nature()
	}
	return Nature(e.get(e.lay.origNature))
}

func (e *Entity) SetOriginalNature(v Nature) {
	if v >= NatureCount {
		return
	}
	e.set(e.lay.origNature, uint64(v))
}

func (e *Entity) Gender() Gender {
	if e.lay.genderOf != nil {
		return e.lay.genderOf(e)
	}
	return Gender(e.get(e.lay.gender))
}

func (e *Entity) SetGender(v Gender) {
	if e.lay.setGender != nil {
		e.lay.setGender(e, v)
		return
	}
	e.set(e.lay.gender, uint64(v))
}

func (e *Entity) Form() uint16     { return uint16(e.get(e.lay.form)) }
func (e *Entity) SetForm(v uint16) { e.set(e.lay.form, uint64(v)) }

func (e *Entity) Egg() bool                  { return e.getFlag(e.lay.egg) }
func (e *Entity) SetEgg(v bool)              { e.setFlag(e.lay.egg, v) }
func (e *Entity) Nicknamed() bool            { return e.getFlag(e.lay.nicknamed) }
func (e *Entity) SetNicknamed(v bool)        { e.setFlag(e.lay.nicknamed, v) }
func (e *Entity) FatefulEncounter() bool     { return e.getFlag(e.lay.fateful) }
func (e *Entity) SetFatefulEncounter(v bool) { e.setFlag(e.lay.fateful, v) }
func (e *Entity) Favorite() bool             { return e.getFlag(e.lay.favorite) }
func (e *Entity) SetFavorite(v bool)         { e.setFlag(e.lay.favorite, v) }
func (e *Entity) CanGigantamax() bool        { return e.getFlag(e.lay.canGiga) }
func (e *Entity) SetCanGigantamax(v bool)    { e.setFlag(e.lay.canGiga, v) }
func (e *Entity) Language() uint8            { return uint8(e.get(e.lay.language)) }
func (e *Entity) SetLanguage(v uint8)        { e.set(e.lay.language, uint64(v)) }
func (e *Entity) Version() uint8             { return uint8(e.get(e.lay.version)) }
func (e *Entity) SetVersion(v uint8)         { e.set(e.lay.version, uint64(v)) }
func (e *Entity) MarkValue() uint16          { return uint16(e.get(e.lay.markValue)) }
func (e *Entity) SetMarkValue(v uint16)      { e.set(e.lay.markValue, uint64(v)) }
func (e *Entity) MetLocation() uint16        { return uint16(e.get(e.lay.metLocation)) }
func (e *Entity) SetMetLocation(v uint16)    { e.set(e.lay.metLocation, uint64(v)) }
func (e *Entity) EggLocation() uint16        { return uint16(e.get(e.lay.eggLocation)) }
func (e *Entity) SetEggLocation(v uint16)    { e.set(e.lay.eggLocation, uint64(v)) }
func (e *Entity) MetLevel() uint8            { return uint8(e.get(e.lay.metLevel)) }
func (e *Entity) SetMetLevel(v uint8)        { e.set(e.lay.metLevel, uint64(v)) }
func (e *Entity) MetDate() Date              { return e.getDate(e.lay.metDate) }
func (e *Entity) SetMetDate(d Date)          { e.setDate(e.lay.metDate, d) }
func (e *Entity) EggDate() Date              { return e.getDate(e.lay.eggDate) }
func (e *Entity) SetEggDate(d Date)          { e.setDate(e.lay.eggDate, d) }
func (e *Entity) HeightScalar() uint8        { return uint8(e.get(e.lay.heightScalar)) }
func (e *Entity) SetHeightScalar(v uint8)    { e.set(e.lay.heightScalar, uint64(v)) }
func (e *Entity) WeightScalar() uint8        { return uint8(e.get(e.lay.weightScalar)) }
func (e *Entity) SetWeightScalar(v uint8)    { e.set(e.lay.weightScalar, uint64(v)) }
func (e *Entity) Scale() uint8               { return uint8(e.get(e.lay.scale)) }
func (e *Entity) SetScale(v uint8)           { e.set(e.lay.scale, uint64(v)) }
func (e *Entity) HomeTracker() uint64        { return e.get(e.lay.homeTracker) }
func (e *Entity) SetHomeTracker(v uint64)    { e.set(e.lay.homeTracker, v) }
func (e *Entity) DynamaxLevel() uint8        { return uint8(e.get(e.lay.dynamaxLevel)) }
func (e *Entity) SetDynamaxLevel(v uint8)    { e.set(e.lay.dynamaxLevel, uint64(v)) }
func (e *Entity) Fullness() uint8            { return uint8(e.get(e.lay.fullness)) }
func (e *Entity) SetFullness(v uint8)        { e.set(e.lay.fullness, uint64(v)) }
func (e *Entity) Enjoyment() uint8           { return uint8(e.get(e.lay.enjoyment)) }
func (e *Entity) SetEnjoyment(v uint8)       { e.set(e.lay.enjoyment, uint64(v)) }
func (e *Entity) BattleVersion() uint8       { return uint8(e.get(e.lay.battleVersion)) }
func (e *Entity) SetBattleVersion(v uint8)   { e.set(e.lay.battleVersion, uint64(v)) }
func (e *Entity) FormDuration() uint32       { return uint32(e.get(e.lay.formDuration)) }
func (e *Entity) SetFormDuration(v uint32)   { e.set(e.lay.formDuration, uint64(v)) }

// Ball returns the capture ball id.
func (e *Entity) Ball() uint8 {
	if e.lay.ballOf != nil {
		return e.lay.ballOf(e)
	}
	return uint8(e.get(e.lay.ball))
}

func (e *Entity) SetBall(v uint8) {
	if e.lay.setBall != nil {
		e.lay.setBall(e, v)
		return
	}
	e.set(e.lay.ball, uint64(v))
}

// OTGender is the original trainer's gender: 0 male, 1 female.
func (e *Entity) OTGender() uint8     { return uint8(e.get(e.lay.otGender)) }
func (e *Entity) SetOTGender(v uint8) { e.set(e.lay.otGender, uint64(v)) }

// PKRSDays is the low nibble of the Pokérus byte.
func (e *Entity) PKRSDays() uint8 { return uint8(e.get(e.lay.pkrs)) & 0x0F }

func (e *Entity) SetPKRSDays(v uint8) {
	cur := uint8(e.get(e.lay.pkrs))
	e.set(e.lay.pkrs, uint64(cur&0xF0|v&0x0F))
}

// PKRSStrain is the high nibble of the Pokérus byte.
func (e *Entity) PKRSStrain() uint8 { return uint8(e.get(e.lay.pkrs)) >> 4 }

func (e *Entity) SetPKRSStrain(v uint8) {
	cur := uint8(e.get(e.lay.pkrs))
	e.set(e.lay.pkrs, uint64(cur&0x0F|v<<4))
}

func (e *Entity) Nickname() string     { return e.getText(e.lay.nickname) }
func (e *Entity) SetNickname(v string) { e.setText(e.lay.nickname, v) }
func (e *Entity) OTName() string       { return e.getText(e.lay.otName) }
func (e *Entity) SetOTName(v string)   { e.setText(e.lay.otName, v) }
func (e *Entity) HTName() string       { return e.getText(e.lay.htName) }
func (e *Entity) SetHTName(v string)   { e.setText(e.lay.htName, v) }

// CurrentHandler is 0 while the original trainer holds the entity, 1 after a
// trade.
func (e *Entity) CurrentHandler() uint8     { return uint8(e.get(e.lay.currentHandler)) }
func (e *Entity) SetCurrentHandler(v uint8) { e.set(e.lay.currentHandler, uint64(v)) }

// HT fields describe the latest handler. Language and ID exist from Gen 8 on.
func (e *Entity) HTGender() Gender      { return Gender(e.get(e.lay.htGender)) }
func (e *Entity) SetHTGender(v Gender)  { e.set(e.lay.htGender, uint64(v)) }
func (e *Entity) HTLanguage() uint8     { return uint8(e.get(e.lay.htLanguage)) }
func (e *Entity) SetHTLanguage(v uint8) { e.set(e.lay.htLanguage, uint64(v)) }
func (e *Entity) HTID() uint16          { return uint16(e.get(e.lay.htID)) }
func (e *Entity) SetHTID(v uint16)      { e.set(e.lay.htID, uint64(v)) }

// OTMemory and HTMemory return the memory the entity keeps of each trainer.
func (e *Entity) OTMemory() Memory     { return e.getMemory(e.lay.otMemory) }
func (e *Entity) SetOTMemory(m Memory) { e.setMemory(e.lay.otMemory, m) }
func (e *Entity) HTMemory() Memory     { return e.getMemory(e.lay.htMemory) }
func (e *Entity) SetHTMemory(m Memory) { e.setMemory(e.lay.htMemory, m) }

func (e *Entity) OTFriendship() uint8     { return uint8(e.get(e.lay.otFriendship)) }
func (e *Entity) SetOTFriendship(v uint8) { e.set(e.lay.otFriendship, uint64(v)) }
func (e *Entity) HTFriendship() uint8     { return uint8(e.get(e.lay.htFriendship)) }
func (e *Entity) SetHTFriendship(v uint8) { e.set(e.lay.htFriendship, uint64(v)) }

// Friendship returns the friendship towards the current handler.
func (e *Entity) Friendship() uint8 {
	if e.CurrentHandler() == 1 {
		return e.HTFriendship()
	}
	return e.OTFriendship()
}

func (e *Entity) SetFriendship(v uint8) {
	if e.CurrentHandler() == 1 {
		e.SetHTFriendship(v)
	} else {
		e.SetOTFriendship(v)
	}
}

// TeraTypeOriginal returns the Gen 9 tera type the entity was obtained with.
func (e *Entity) TeraTypeOriginal() Type {
	if !e.lay.teraOriginal.present() {
		return TypeInvalid
	}
	return Type(e.get(e.lay.teraOriginal))
}

func (e *Entity) SetTeraTypeOriginal(v Type) { e.set(e.lay.teraOriginal, uint64(v)) }

// TeraTypeOverride returns the changed tera type, 19 when unchanged.
func (e *Entity) TeraTypeOverride() Type {
	if !e.lay.teraOverride.present() {
		return TypeInvalid
	}
	return Type(e.get(e.lay.teraOverride))
}

func (e *Entity) SetTeraTypeOverride(v Type) { e.set(e.lay.teraOverride, uint64(v)) }

// TeraType resolves the effective tera type.
func (e *Entity) TeraType() Type {
	if o := e.TeraTypeOverride(); o != teraTypeUnset && o != TypeInvalid {
		return o
	}
	return e.TeraTypeOriginal()
}

// SetTeraType writes the override, or clears it when v is the original type.
func (e *Entity) SetTeraType(v Type) {
	if v == e.TeraTypeOriginal() {
		e.SetTeraTypeOverride(teraTypeUnset)
		return
	}
	e.SetTeraTypeOverride(v)
}
