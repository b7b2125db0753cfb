package bytefield

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// UTF16 decodes a UTF-16LE string of at most maxChars code units starting at
// off. Decoding stops at the first terminator unit.
func (b Buffer) UTF16(off, maxChars int, terminator uint16) string {
	b.check(off, maxChars*2)
	n := 0
	for n < maxChars {
		if binary.LittleEndian.Uint16(b[off+2*n:]) == terminator {
			break
		}
		n++
	}
	if n == 0 {
		return ""
	}
	out, err := utf16le.NewDecoder().Bytes(b[off : off+2*n])
	if err != nil {
		// The decoder substitutes U+FFFD for bad surrogates and never fails on
		// well-sized input.
		panic(fmt.Sprintf("bytefield: decode utf16 at %d: %v", off, err))
	}
	return string(out)
}

// SetUTF16 encodes s as UTF-16LE into a field of maxChars code units. The value
// is truncated to leave room for the terminator; the rest of the field is zeroed.
func (b Buffer) SetUTF16(off, maxChars int, terminator uint16, s string) {
	b.check(off, maxChars*2)
	enc, err := utf16le.NewEncoder().Bytes([]byte(s))
	if err != nil {
		panic(fmt.Sprintf("bytefield: encode utf16 at %d: %v", off, err))
	}
	limit := 2 * (maxChars - 1)
	if len(enc) > limit {
		enc = enc[:limit]
		// Never leave half a surrogate pair at the end of the field.
		if len(enc) >= 2 && isHighSurrogate(binary.LittleEndian.Uint16(enc[len(enc)-2:])) {
			enc = enc[:len(enc)-2]
		}
	}
	field := b[off : off+2*maxChars]
	clear(field)
	copy(field, enc)
	binary.LittleEndian.PutUint16(field[len(enc):], terminator)
}

func isHighSurrogate(u uint16) bool {
	return u >= 0xD800 && u < 0xDC00
}
