package crypto

import "encoding/binary"

const (
	lcgMul = 0x41C64E6D
	lcgAdd = 0x6073
)

// GameCrypt is the XOR stream cipher applied to entity records from the Nintendo
// DS era onward. The keystream is a linear congruential generator seeded with the
// record's plaintext seed (PID or encryption constant).
//
// Algorithm:
//   - seed = seed*0x41C64E6D + 0x6073 once per 16-bit word
//   - word ^= uint16(seed >> 16)
//
// The cipher is symmetric: running it twice over the same range with the same
// starting seed restores the input.
type GameCrypt struct {
	seed uint32
}

// NewGameCrypt creates a cipher positioned at the given seed.
func NewGameCrypt(seed uint32) *GameCrypt {
	return &GameCrypt{seed: seed}
}

// Next advances the generator and returns the 16-bit key for the next word.
func (gc *GameCrypt) Next() uint16 {
	gc.seed = gc.seed*lcgMul + lcgAdd
	return uint16(gc.seed >> 16)
}

// Seed returns the current generator state.
func (gc *GameCrypt) Seed() uint32 {
	return gc.seed
}

// XOR ciphers data in place, two bytes per generator step. A trailing odd byte
// is left untouched.
func (gc *GameCrypt) XOR(data []byte) {
	for i := 0; i+1 < len(data); i += 2 {
		w := binary.LittleEndian.Uint16(data[i:])
		binary.LittleEndian.PutUint16(data[i:], w^gc.Next())
	}
}

// CryptArray ciphers data[start:end] in place with a fresh keystream from seed.
func CryptArray(data []byte, seed uint32, start, end int) {
	NewGameCrypt(seed).XOR(data[start:end])
}
