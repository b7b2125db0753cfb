package pkx

// Black/White and Black 2/White 2 (PK5).
var gen5Layout = &layout{
	gen:        Gen5,
	storedSize: 136,
	partySize:  220,

	blockSize:  32,
	indicators: []field{u32(0x64)},
	sanity:     u16(0x04),
	checksum:   u16(0x06),
	shinyShift: 3,

	checksumKeyed: true,

	pid:          u32(0x00),
	species:      u16(0x08),
	heldItem:     u16(0x0A),
	tid:          u16(0x0C),
	sid:          u16(0x0E),
	exp:          u32(0x10),
	otFriendship: u8(0x14),
	ability:      u8(0x15),
	markValue:    u8(0x16),
	language:     u8(0x17),
	evs:          arr(u8(0x18), 1, 6),
	contest:      arr(u8(0x1E), 1, 6),

	moves:     arr(u16(0x28), 2, 4),
	pp:        arr(u8(0x30), 1, 4),
	ppUps:     arr(u8(0x34), 1, 4),
	iv32:      u32(0x38),
	egg:       flag(0x3B, 6),
	nicknamed: flag(0x3B, 7),
	fateful:   flag(0x40, 0),
	gender:    bits(0x40, 0x03, 1),
	form:      bits(0x40, 0x1F, 3),
	nature:    u8(0x41),

	hiddenAbility: flag(0x42, 0),

	nickname: text(0x48, 11, 0xFFFF),
	version:  u8(0x5F),
	otName:   text(0x68, 8, 0xFFFF),

	eggDate:     u8(0x78),
	metDate:     u8(0x7B),
	eggLocation: u16(0x7E),
	metLocation: u16(0x80),
	pkrs:        u8(0x82),
	ball:        u8(0x83),
	metLevel:    bits(0x84, 0x7F, 0),
	otGender:    flag(0x84, 7),

	status:     u32(0x88).partyOnly(),
	partyLevel: u8(0x8C).partyOnly(),
	partyHP:    u16(0x8E).partyOnly(),
	partyStats: arr(u16(0x90).partyOnly(), 2, 6),

	hooks: hooks{
		abilityNumberOf:  gen5AbilityNumber,
		setAbilityNumber: setGen5AbilityNumber,
	},
}

// gen5AbilityNumber: the hidden ability flag wins, otherwise PID bit 16 picks
// the slot.
func gen5AbilityNumber(e *Entity) uint8 {
	if e.getFlag(e.lay.hiddenAbility) {
		return 4
	}
	return 1 << (e.PID() >> 16 & 1)
}

// setGen5AbilityNumber only toggles the hidden ability flag; the regular slot
// is fixed by the PID.
func setGen5AbilityNumber(e *Entity, v uint8) {
	e.setFlag(e.lay.hiddenAbility, v == 4)
}
