package pkx

// Gold/Silver/Crystal. Big-endian, unencrypted, no checksum. SpA and SpD
// share one DV and one stat experience word but have separate base stats.
var gen2Layout = &layout{
	gen:        Gen2,
	storedSize: 32,
	partySize:  48,

	species:  u8(0x00),
	heldItem: u8(0x01),
	moves:    arr(u8(0x02), 1, 4),
	tid:      u16be(0x06),
	exp:      u24be(0x08),
	evs:      arr(u16be(0x0B), 2, 5).merged(),
	dv:       u16be(0x15),
	pp:       arr(bits(0x17, 0x3F, 0), 1, 4),
	ppUps:    arr(bits(0x17, 0x03, 6), 1, 4),

	otFriendship: u8(0x1B),
	pkrs:         u8(0x1C),
	// Crystal caught data.
	metLevel:    bits(0x1D, 0x3F, 0),
	metLocation: bits(0x1E, 0x7F, 0),
	otGender:    flag(0x1E, 7),
	boxLevel:    u8(0x1F),
	partyLevel:  u8(0x1F),

	status:     u8(0x20).partyOnly(),
	partyHP:    u16be(0x22).partyOnly(),
	partyStats: arr(u16be(0x24).partyOnly(), 2, 6),

	hooks: gbHooks,
}
