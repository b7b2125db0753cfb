// Package bytefield provides fixed-offset typed access to raw record buffers.
//
// All accessors panic when an offset falls outside the buffer: field tables are
// static, so an out-of-range access is a programming error, not bad input.
package bytefield

import (
	"encoding/binary"
	"fmt"
)

// Buffer is a fixed-size view over a record. Accessors never grow or
// reallocate the underlying slice.
type Buffer []byte

func (b Buffer) check(off, width int) {
	if off < 0 || off+width > len(b) {
		panic(fmt.Sprintf("bytefield: access [%d:%d] out of range (len=%d)", off, off+width, len(b)))
	}
}

// U8 reads a single byte.
func (b Buffer) U8(off int) uint8 {
	b.check(off, 1)
	return b[off]
}

// SetU8 writes a single byte.
func (b Buffer) SetU8(off int, v uint8) {
	b.check(off, 1)
	b[off] = v
}

// U16 reads a little-endian uint16.
func (b Buffer) U16(off int) uint16 {
	b.check(off, 2)
	return binary.LittleEndian.Uint16(b[off:])
}

// SetU16 writes a little-endian uint16.
func (b Buffer) SetU16(off int, v uint16) {
	b.check(off, 2)
	binary.LittleEndian.PutUint16(b[off:], v)
}

// U32 reads a little-endian uint32.
func (b Buffer) U32(off int) uint32 {
	b.check(off, 4)
	return binary.LittleEndian.Uint32(b[off:])
}

// SetU32 writes a little-endian uint32.
func (b Buffer) SetU32(off int, v uint32) {
	b.check(off, 4)
	binary.LittleEndian.PutUint32(b[off:], v)
}

// U64 reads a little-endian uint64.
func (b Buffer) U64(off int) uint64 {
	b.check(off, 8)
	return binary.LittleEndian.Uint64(b[off:])
}

// SetU64 writes a little-endian uint64.
func (b Buffer) SetU64(off int, v uint64) {
	b.check(off, 8)
	binary.LittleEndian.PutUint64(b[off:], v)
}

// U16BE reads a big-endian uint16 (Game Boy era records).
func (b Buffer) U16BE(off int) uint16 {
	b.check(off, 2)
	return binary.BigEndian.Uint16(b[off:])
}

// SetU16BE writes a big-endian uint16.
func (b Buffer) SetU16BE(off int, v uint16) {
	b.check(off, 2)
	binary.BigEndian.PutUint16(b[off:], v)
}

// U24BE reads a 3-byte big-endian value.
func (b Buffer) U24BE(off int) uint32 {
	b.check(off, 3)
	return uint32(b[off])<<16 | uint32(b[off+1])<<8 | uint32(b[off+2])
}

// SetU24BE writes the low 24 bits of v big-endian. Higher bits are dropped.
func (b Buffer) SetU24BE(off int, v uint32) {
	b.check(off, 3)
	b[off] = byte(v >> 16)
	b[off+1] = byte(v >> 8)
	b[off+2] = byte(v)
}

// Uint reads an unsigned integer of width 1, 2, 4 or 8 bytes in the given order.
func (b Buffer) Uint(off, width int, order binary.ByteOrder) uint64 {
	b.check(off, width)
	switch width {
	case 1:
		return uint64(b[off])
	case 2:
		return uint64(order.Uint16(b[off:]))
	case 4:
		return uint64(order.Uint32(b[off:]))
	case 8:
		return order.Uint64(b[off:])
	}
	panic(fmt.Sprintf("bytefield: unsupported width %d", width))
}

// PutUint writes the low width bytes of v in the given order.
func (b Buffer) PutUint(off, width int, order binary.ByteOrder, v uint64) {
	b.check(off, width)
	switch width {
	case 1:
		b[off] = byte(v)
	case 2:
		order.PutUint16(b[off:], uint16(v))
	case 4:
		order.PutUint32(b[off:], uint32(v))
	case 8:
		order.PutUint64(b[off:], v)
	default:
		panic(fmt.Sprintf("bytefield: unsupported width %d", width))
	}
}

// Flag reports whether bit (0..7) of the byte at off is set.
func (b Buffer) Flag(off int, bit uint) bool {
	b.check(off, 1)
	return b[off]>>(bit&7)&1 == 1
}

// SetFlag sets or clears bit (0..7) of the byte at off.
func (b Buffer) SetFlag(off int, bit uint, v bool) {
	b.check(off, 1)
	m := byte(1) << (bit & 7)
	if v {
		b[off] |= m
	} else {
		b[off] &^= m
	}
}

// Bits reads the subfield (byte >> shift) & mask.
func (b Buffer) Bits(off int, mask uint8, shift uint) uint8 {
	b.check(off, 1)
	return b[off] >> shift & mask
}

// SetBits replaces the subfield selected by mask<<shift, leaving the other bits
// of the byte untouched. Bits of v outside mask are dropped.
func (b Buffer) SetBits(off int, mask uint8, shift uint, v uint8) {
	b.check(off, 1)
	b[off] = b[off]&^(mask<<shift) | (v&mask)<<shift
}

// Packed5 reads the index-th 5-bit value from the little-endian uint32 at off.
func (b Buffer) Packed5(off, index int) uint8 {
	if index < 0 || index > 5 {
		panic(fmt.Sprintf("bytefield: packed5 index %d out of range", index))
	}
	return uint8(b.U32(off) >> (5 * uint(index)) & 0x1F)
}

// SetPacked5 writes the index-th 5-bit value. Bits 30 and 31 of the word are kept.
func (b Buffer) SetPacked5(off, index int, v uint8) {
	if index < 0 || index > 5 {
		panic(fmt.Sprintf("bytefield: packed5 index %d out of range", index))
	}
	shift := 5 * uint(index)
	w := b.U32(off)
	w = w&^(0x1F<<shift) | uint32(v&0x1F)<<shift
	b.SetU32(off, w)
}
