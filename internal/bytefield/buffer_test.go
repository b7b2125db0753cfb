package bytefield

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer_LittleEndian(t *testing.T) {
	b := make(Buffer, 16)

	b.SetU16(0, 0x1234)
	b.SetU32(2, 0x89ABCDEF)
	b.SetU64(8, 0x0102030405060708)

	assert.Equal(t, []byte{0x34, 0x12}, []byte(b[0:2]))
	assert.Equal(t, uint16(0x1234), b.U16(0))
	assert.Equal(t, uint32(0x89ABCDEF), b.U32(2))
	assert.Equal(t, uint64(0x0102030405060708), b.U64(8))
	assert.Equal(t, uint8(0xEF), b.U8(2))
}

func TestBuffer_BigEndian(t *testing.T) {
	b := make(Buffer, 8)

	b.SetU16BE(0, 0xBEEF)
	b.SetU24BE(2, 0xFF123456)

	assert.Equal(t, []byte{0xBE, 0xEF, 0x12, 0x34, 0x56}, []byte(b[0:5]))
	assert.Equal(t, uint16(0xBEEF), b.U16BE(0))
	assert.Equal(t, uint32(0x123456), b.U24BE(2))
}

func TestBuffer_Uint(t *testing.T) {
	tests := []struct {
		name  string
		width int
		order binary.ByteOrder
		value uint64
	}{
		{"u8", 1, binary.LittleEndian, 0xAB},
		{"u16 le", 2, binary.LittleEndian, 0xABCD},
		{"u16 be", 2, binary.BigEndian, 0xABCD},
		{"u32 le", 4, binary.LittleEndian, 0xDEADBEEF},
		{"u64 be", 8, binary.BigEndian, 0x1122334455667788},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := make(Buffer, 10)
			b.PutUint(1, tt.width, tt.order, tt.value)
			assert.Equal(t, tt.value, b.Uint(1, tt.width, tt.order))
			assert.Zero(t, b[0], "byte before field must stay untouched")
		})
	}
}

func TestBuffer_FlagsAndBits(t *testing.T) {
	b := Buffer{0b1010_0000}

	assert.True(t, b.Flag(0, 7))
	assert.False(t, b.Flag(0, 6))

	b.SetFlag(0, 0, true)
	b.SetFlag(0, 7, false)
	assert.Equal(t, byte(0b0010_0001), b[0])

	// gender-style subfield: 2 bits at shift 1
	b.SetBits(0, 0x3, 1, 2)
	assert.Equal(t, uint8(2), b.Bits(0, 0x3, 1))
	assert.Equal(t, byte(0b0010_0101), b[0])

	// value wider than mask is truncated, neighbours untouched
	b.SetBits(0, 0x3, 1, 0xFF)
	assert.Equal(t, byte(0b0010_0111), b[0])
}

func TestBuffer_Packed5(t *testing.T) {
	b := make(Buffer, 4)
	b.SetU32(0, 1<<30|1<<31)

	for i := range 6 {
		b.SetPacked5(0, i, uint8(i*5+1))
	}
	for i := range 6 {
		assert.Equal(t, uint8(i*5+1), b.Packed5(0, i), "index %d", i)
	}
	assert.Equal(t, uint32(3), b.U32(0)>>30, "flag bits above the IVs must survive")

	b.SetPacked5(0, 2, 0x3F)
	assert.Equal(t, uint8(0x1F), b.Packed5(0, 2))
	assert.Equal(t, uint8(6), b.Packed5(0, 1))
	assert.Equal(t, uint8(16), b.Packed5(0, 3))
}

func TestBuffer_OutOfRangePanics(t *testing.T) {
	b := make(Buffer, 4)

	assert.Panics(t, func() { b.U32(1) })
	assert.Panics(t, func() { b.SetU16(3, 1) })
	assert.Panics(t, func() { b.U8(-1) })
	assert.Panics(t, func() { b.Packed5(0, 6) })
	assert.Panics(t, func() { b.Uint(0, 3, binary.LittleEndian) })
	assert.NotPanics(t, func() { b.U32(0) })
}

func TestBuffer_UTF16(t *testing.T) {
	b := make(Buffer, 26)

	b.SetUTF16(0, 13, 0, "Pikachu")
	assert.Equal(t, "Pikachu", b.UTF16(0, 13, 0))
	assert.Equal(t, []byte{'P', 0, 'i', 0}, []byte(b[0:4]))
	assert.Equal(t, uint16(0), b.U16(14), "terminator after 7 chars")

	b.SetUTF16(0, 13, 0, "Ab")
	assert.Equal(t, "Ab", b.UTF16(0, 13, 0))
	assert.Zero(t, b.U16(6), "tail of previous value must be cleared")
}

func TestBuffer_UTF16Truncates(t *testing.T) {
	b := make(Buffer, 8)

	b.SetUTF16(0, 4, 0xFFFF, "ABCDEFG")
	assert.Equal(t, "ABC", b.UTF16(0, 4, 0xFFFF))
	assert.Equal(t, uint16(0xFFFF), b.U16(6))
}

func TestBuffer_UTF16NonASCII(t *testing.T) {
	b := make(Buffer, 26)

	b.SetUTF16(0, 13, 0, "ピカチュウ")
	require.Equal(t, "ピカチュウ", b.UTF16(0, 13, 0))
	assert.Equal(t, uint16(0x30D4), b.U16(0))
}

func TestBuffer_UTF16Empty(t *testing.T) {
	b := make(Buffer, 4)
	assert.Equal(t, "", b.UTF16(0, 2, 0))

	b.SetUTF16(0, 2, 0, "")
	assert.Equal(t, "", b.UTF16(0, 2, 0))
}
