package pkx

// Scarlet/Violet (PK9).
var gen9Layout = &layout{
	gen:        Gen9,
	storedSize: 0x148,
	partySize:  0x158,

	blockSize:  0x50,
	indicators: []field{u16(0x70), u16(0xC0)},
	sanity:     u16(0x04),
	checksum:   u16(0x06),
	shinyShift: 4,

	ec:            u32(0x00),
	species:       u16(0x08),
	heldItem:      u16(0x0A),
	tid:           u16(0x0C),
	sid:           u16(0x0E),
	exp:           u32(0x10),
	ability:       u16(0x14),
	abilityNumber: bits(0x16, 0x07, 0),
	favorite:      flag(0x16, 3),
	canGiga:       flag(0x16, 4),
	markValue:     u16(0x18),
	pid:           u32(0x1C),
	origNature:    u8(0x20),
	nature:        u8(0x21),
	fateful:       flag(0x22, 0),
	gender:        bits(0x22, 0x03, 2),
	form:          u16(0x24),
	evs:           arr(u8(0x26), 1, 6),
	contest:       arr(u8(0x2C), 1, 6),
	pkrs:          u8(0x32),
	contestCount:  u8(0x3C),
	battleCount:   u8(0x3D),
	heightScalar:  u8(0x48),
	weightScalar:  u8(0x49),
	scale:         u8(0x4A),

	nickname:  text(0x58, 13, 0),
	moves:     arr(u16(0x72), 2, 4),
	pp:        arr(u8(0x7A), 1, 4),
	ppUps:     arr(u8(0x7E), 1, 4),
	relearn:   arr(u16(0x82), 2, 4),
	partyHP:   u16(0x8A),
	iv32:      u32(0x8C),
	egg:       flag(0x8F, 6),
	nicknamed: flag(0x8F, 7),

	teraOriginal: u8(0x94),
	teraOverride: u8(0x95),

	htName:         text(0xA8, 13, 0),
	currentHandler: u8(0xC4),
	htFriendship:   u8(0xC8),
	version:        u8(0xDE),
	language:       u8(0xE2),

	otName:       text(0xF8, 13, 0),
	otFriendship: u8(0x112),
	eggDate:      u8(0x119),
	metDate:      u8(0x11C),
	eggLocation:  u16(0x120),
	metLocation:  u16(0x122),
	ball:         u8(0x124),
	metLevel:     bits(0x125, 0x7F, 0),
	otGender:     flag(0x125, 7),
	hyperTrain:   u8(0x126),

	htGender:      u8(0xC2),
	htLanguage:    u8(0xC3),
	htID:          u16(0xC6),
	htMemory:      mem(0xC9, 0xCA, 0xCB, 0xCC),
	fullness:      u8(0xDC),
	enjoyment:     u8(0xDD),
	battleVersion: u8(0xDF),
	formDuration:  u32(0xE4),
	favRibbon:     u8(0xE8),
	otMemory:      mem(0x113, 0x114, 0x118, 0x116),

	ribbons: ribbonTable{base: 0x34, count: 64, extBase: 0x40, extCount: 34},

	recordFlags:     u8(0x127),
	recordFlagCount: 112,
	homeTracker:     u64(0x135),

	partyLevel:  u8(0x148).partyOnly(),
	partyStats:  arr(u16(0x14A).partyOnly(), 2, 6),
	dynamaxType: u16(0x156).partyOnly(),
}
