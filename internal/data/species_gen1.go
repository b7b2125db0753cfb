package data

// gen1Internal maps Red/Blue/Yellow internal species indices to national dex
// numbers. Zero marks an unused (MissingNo.) slot.
var gen1Internal = [191]uint8{
	0, 112, 115, 32, 35, 21, 100, 34, 80, 2, 103, 108, 102, 88, 94, 29,
	31, 104, 111, 131, 59, 151, 130, 90, 72, 92, 123, 120, 9, 127, 114, 0,
	0, 58, 95, 22, 16, 79, 64, 75, 113, 67, 122, 106, 107, 24, 47, 54,
	96, 76, 0, 126, 0, 125, 82, 109, 0, 56, 86, 50, 128, 0, 0, 0,
	83, 48, 149, 0, 0, 0, 84, 60, 124, 146, 144, 145, 132, 52, 98, 0,
	0, 0, 37, 38, 25, 26, 0, 0, 147, 148, 140, 141, 116, 117, 0, 0,
	27, 28, 138, 139, 39, 40, 133, 136, 135, 134, 66, 41, 23, 46, 61, 62,
	13, 14, 15, 0, 85, 57, 51, 49, 87, 0, 0, 10, 11, 12, 68, 0,
	55, 97, 42, 150, 143, 129, 0, 0, 89, 0, 99, 91, 0, 101, 36, 110,
	53, 105, 0, 93, 63, 65, 17, 18, 121, 1, 3, 73, 0, 118, 119, 0,
	0, 0, 0, 77, 78, 19, 20, 33, 30, 74, 137, 142, 0, 81, 0, 0,
	4, 7, 5, 8, 6, 0, 0, 0, 0, 43, 44, 45, 69, 70, 71,
}

// gen1National is the inverse of gen1Internal, filled in init.
var gen1National [152]uint8

func init() {
	for internal, national := range gen1Internal {
		if national != 0 {
			gen1National[national] = uint8(internal)
		}
	}
}

// Gen1ToNational converts an internal species index to its national dex number.
// Unused and out-of-range indices return 0.
func Gen1ToNational(internal uint8) uint16 {
	if int(internal) >= len(gen1Internal) {
		return 0
	}
	return uint16(gen1Internal[internal])
}

// NationalToGen1 converts a national dex number to the internal index.
// Species outside the first 151 return 0.
func NationalToGen1(national uint16) uint8 {
	if national == 0 || int(national) >= len(gen1National) {
		return 0
	}
	return gen1National[national]
}

// gen1TypeIDs maps the modern type order (Normal..Fairy) to the type bytes stored
// in Gen 1 records. Types that did not exist yet map to Normal.
var gen1TypeIDs = [18]uint8{
	0x00, // Normal
	0x01, // Fighting
	0x02, // Flying
	0x03, // Poison
	0x04, // Ground
	0x05, // Rock
	0x07, // Bug
	0x08, // Ghost
	0x00, // Steel
	0x14, // Fire
	0x15, // Water
	0x16, // Grass
	0x17, // Electric
	0x18, // Psychic
	0x19, // Ice
	0x1A, // Dragon
	0x00, // Dark
	0x00, // Fairy
}

// Gen1TypeID returns the Gen 1 type byte for a modern type index.
func Gen1TypeID(t uint8) uint8 {
	if int(t) >= len(gen1TypeIDs) {
		return 0
	}
	return gen1TypeIDs[t]
}

// Gen1TypeFromID converts a stored Gen 1 type byte back to the modern index.
func Gen1TypeFromID(id uint8) (uint8, bool) {
	if id == 0 {
		return 0, true
	}
	for t, v := range gen1TypeIDs {
		if v == id {
			return uint8(t), true
		}
	}
	return 0, false
}
