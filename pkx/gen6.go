package pkx

// X/Y and Omega Ruby/Alpha Sapphire (PK6). Same frame as Gen 7 with a one-byte
// marking field and no hyper training.
var gen6Layout = &layout{
	gen:        Gen6,
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
	abilityNumber: u8(0x15),
	pid:           u32(0x18),
	nature:        u8(0x1C),
	fateful:       flag(0x1D, 0),
	gender:        bits(0x1D, 0x03, 1),
	form:          bits(0x1D, 0x1F, 3),
	evs:           arr(u8(0x1E), 1, 6),
	contest:       arr(u8(0x24), 1, 6),
	markValue:     u8(0x2A),
	pkrs:          u8(0x2B),

	nickname:  text(0x40, 13, 0),
	moves:     arr(u16(0x5A), 2, 4),
	pp:        arr(u8(0x62), 1, 4),
	ppUps:     arr(u8(0x66), 1, 4),
	relearn:   arr(u16(0x6A), 2, 4),
	iv32:      u32(0x74),
	egg:       flag(0x77, 6),
	nicknamed: flag(0x77, 7),

	htName:         text(0x78, 13, 0),
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
	version:      u8(0xDF),
	language:     u8(0xE3),

	htGender:     u8(0x92),
	htMemory:     mem(0xA4, 0xA5, 0xA6, 0xA8),
	fullness:     u8(0xAE),
	enjoyment:    u8(0xAF),
	otMemory:     mem(0xCC, 0xCD, 0xD0, 0xCE),
	contestCount: u8(0x38),
	battleCount:  u8(0x39),

	ribbons: ribbonTable{base: 0x30, count: 46},

	status:     u32(0xE8).partyOnly(),
	partyLevel: u8(0xEC).partyOnly(),
	partyHP:    u16(0xF0).partyOnly(),
	partyStats: arr(u16(0xF2).partyOnly(), 2, 6),
}
