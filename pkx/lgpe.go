package pkx

// Let's Go Pikachu/Eevee (PB7). The contest block holds awakening values, and
// stats ignore EVs in favour of them.
var lgpeLayout = &layout{
	gen:        GenLGPE,
	storedSize: 232,
	partySize:  260,

	blockSize:  56,
	indicators: []field{u16(0xC8), u16(0x58)},
	sanity:     u16(0x04),
	checksum:   u16(0x06),
	shinyShift: 4,

	ec:            u32(0x00),
	species:       u16(0x08),
	heldItem:      u16(0x0A),
	tid:           u16(0x0C),
	sid:           u16(0x0E),
	exp:           u32(0x10),
	ability:       u8(0x14),
	abilityNumber: bits(0x15, 0x07, 0),
	favorite:      flag(0x15, 3),
	markValue:     u16(0x16),
	pid:           u32(0x18),
	nature:        u8(0x1C),
	fateful:       flag(0x1D, 0),
	gender:        bits(0x1D, 0x03, 1),
	form:          bits(0x1D, 0x1F, 3),
	evs:           arr(u8(0x1E), 1, 6),
	avs:           arr(u8(0x24), 1, 6),
	pkrs:          u8(0x2B),
	heightScalar:  u8(0x3A),
	weightScalar:  u8(0x3B),

	nickname:  text(0x40, 13, 0),
	moves:     arr(u16(0x5A), 2, 4),
	pp:        arr(u8(0x62), 1, 4),
	ppUps:     arr(u8(0x66), 1, 4),
	relearn:   arr(u16(0x6A), 2, 4),
	iv32:      u32(0x74),
	egg:       flag(0x77, 6),
	nicknamed: flag(0x77, 7),

	htName:         text(0x78, 13, 0),
	htGender:       u8(0x92),
	currentHandler: u8(0x93),
	htFriendship:   u8(0xA2),

	otName:       text(0xB0, 13, 0),
	otFriendship: u8(0xCA),
	eggDate:      u8(0xD1),
	metDate:      u8(0xD4),
	eggLocation:  u16(0xD8),
	metLocation:  u16(0xDA),
	ball:         u8(0xDC),
	metLevel:     bits(0xDD, 0x7F, 0),
	otGender:     flag(0xDD, 7),
	hyperTrain:   u8(0xDE),
	version:      u8(0xDF),
	language:     u8(0xE3),

	status:     u32(0xE8).partyOnly(),
	partyLevel: u8(0xEC).partyOnly(),
	partyHP:    u16(0xF0).partyOnly(),
	partyStats: arr(u16(0xF2).partyOnly(), 2, 6),

	hooks: hooks{
		statOf: lgpeStat,
	},
}

// lgpeStat is the standard formula without EVs, plus the awakening value.
func lgpeStat(e *Entity, s Stat) uint16 {
	return e.standardStat(s, 0) + uint16(e.AV(s))
}
