package crypto

import "fmt"

// BlockCount is the number of equal-size substructure blocks in a record.
const BlockCount = 4

// blockPosition lists, for each shuffle selector, which encrypted block lands in
// output slot 0..3 when decrypting. Selectors 24..31 repeat 0..7 so that a raw
// 5-bit selector never needs a modulo.
var blockPosition = [32 * BlockCount]uint8{
	0, 1, 2, 3, 0, 1, 3, 2, 0, 2, 1, 3, 0, 3, 1, 2,
	0, 2, 3, 1, 0, 3, 2, 1, 1, 0, 2, 3, 1, 0, 3, 2,
	2, 0, 1, 3, 3, 0, 1, 2, 2, 0, 3, 1, 3, 0, 2, 1,
	1, 2, 0, 3, 1, 3, 0, 2, 2, 1, 0, 3, 3, 1, 0, 2,
	2, 3, 0, 1, 3, 2, 0, 1, 1, 2, 3, 0, 1, 3, 2, 0,
	2, 1, 3, 0, 3, 1, 2, 0, 2, 3, 1, 0, 3, 2, 1, 0,

	0, 1, 2, 3, 0, 1, 3, 2, 0, 2, 1, 3, 0, 3, 1, 2,
	0, 2, 3, 1, 0, 3, 2, 1, 1, 0, 2, 3, 1, 0, 3, 2,
}

// blockPositionInvert maps a selector to the selector of its inverse permutation.
var blockPositionInvert [32]uint8

func init() {
	for sv := range 32 {
		var inv [BlockCount]uint8
		for slot := range BlockCount {
			inv[blockPosition[sv*BlockCount+slot]] = uint8(slot)
		}
		blockPositionInvert[sv] = uint8(findSelector(inv))
	}
}

func findSelector(perm [BlockCount]uint8) int {
	for sv := range 24 {
		if [BlockCount]uint8(blockPosition[sv*BlockCount:]) == perm {
			return sv
		}
	}
	panic(fmt.Sprintf("crypto: permutation %v missing from block table", perm))
}

// ShuffleSelector extracts the 5-bit block order selector from a seed.
func ShuffleSelector(seed uint32) uint8 {
	return uint8(seed >> 13 & 31)
}

// InvertSelector returns the selector that undoes sv.
func InvertSelector(sv uint8) uint8 {
	return blockPositionInvert[sv&31]
}

// Unshuffle reorders the four blocks at data[start:] into their canonical order
// (decrypt direction): output block i is input block blockPosition[sv*4+i].
func Unshuffle(data []byte, start, blockSize int, sv uint8) {
	region := data[start : start+BlockCount*blockSize]
	tmp := make([]byte, len(region))
	copy(tmp, region)
	base := int(sv&31) * BlockCount
	for i := range BlockCount {
		src := int(blockPosition[base+i]) * blockSize
		copy(region[i*blockSize:(i+1)*blockSize], tmp[src:src+blockSize])
	}
}

// Shuffle is the inverse of Unshuffle (encrypt direction).
func Shuffle(data []byte, start, blockSize int, sv uint8) {
	Unshuffle(data, start, blockSize, InvertSelector(sv))
}
