package pkx

import "github.com/udisondev/pkxcodec/internal/data"

// Red/Blue/Yellow. Big-endian, unencrypted, no checksum. Species is the
// internal index, Special is a single stat.
var gen1Layout = &layout{
	gen:        Gen1,
	storedSize: 33,
	partySize:  44,

	species:  u8(0x00),
	partyHP:  u16be(0x01),
	boxLevel: u8(0x03),
	status:   u8(0x04),
	gbTypes:  [2]field{u8(0x05), u8(0x06)},
	moves:    arr(u8(0x08), 1, 4),
	tid:      u16be(0x0C),
	exp:      u24be(0x0E),
	evs:      arr(u16be(0x11), 2, 5).merged(),
	dv:       u16be(0x1B),
	pp:       arr(bits(0x1D, 0x3F, 0), 1, 4),
	ppUps:    arr(bits(0x1D, 0x03, 6), 1, 4),

	partyLevel: u8(0x21).partyOnly(),
	partyStats: arr(u16be(0x22).partyOnly(), 2, 5).merged(),

	hooks: gen1Hooks(),
}

func gen1Hooks() hooks {
	h := gbHooks
	h.speciesOf = gen1Species
	h.setSpecies = setGen1Species
	h.statOf = gen1Stat
	return h
}

// StoredTypes returns the two type bytes a Gen 1 record caches. Other
// generations and unknown type bytes return TypeInvalid.
func (e *Entity) StoredTypes() (Type, Type) {
	return e.storedType(0), e.storedType(1)
}

func (e *Entity) storedType(i int) Type {
	f := e.lay.gbTypes[i]
	if !f.present() {
		return TypeInvalid
	}
	t, ok := data.Gen1TypeFromID(uint8(e.get(f)))
	if !ok {
		return TypeInvalid
	}
	return Type(t)
}
