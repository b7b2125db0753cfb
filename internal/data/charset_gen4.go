package data

// Gen4Terminator ends a Diamond/Pearl/Platinum/HGSS string.
const Gen4Terminator = 0xFFFF

// gen4Punct maps the Western punctuation block of the Gen 4 character table.
var gen4Punct = map[rune]uint16{
	' ': 0x01DE,
	'!': 0x01AB,
	'?': 0x01AC,
	',': 0x01AD,
	'.': 0x01AE,
	'…': 0x01AF,
	'/': 0x01B1,
	'‘': 0x01B2,
	'’': 0x01B3,
	'“': 0x01B4,
	'”': 0x01B5,
	'(': 0x01B9,
	')': 0x01BA,
	'♂': 0x01BB,
	'♀': 0x01BC,
	'+': 0x01BD,
	'-': 0x01BE,
}

// gen4Runes is the inverse of the encode table, filled in init.
var gen4Runes map[uint16]rune

func init() {
	gen4Runes = make(map[uint16]rune, len(gen4Punct)+62)
	for r, c := range gen4Punct {
		gen4Runes[c] = r
	}
	for i := range 10 {
		gen4Runes[0x0121+uint16(i)] = '0' + rune(i)
	}
	for i := range 26 {
		gen4Runes[0x012B+uint16(i)] = 'A' + rune(i)
		gen4Runes[0x0145+uint16(i)] = 'a' + rune(i)
	}
}

// Gen4Rune decodes one Gen 4 character code. Only the Western digit, letter and
// punctuation blocks are mapped; other codes report false.
func Gen4Rune(code uint16) (rune, bool) {
	r, ok := gen4Runes[code]
	return r, ok
}

// Gen4Code encodes r into the Gen 4 character table.
func Gen4Code(r rune) (uint16, bool) {
	switch {
	case r >= '0' && r <= '9':
		return 0x0121 + uint16(r-'0'), true
	case r >= 'A' && r <= 'Z':
		return 0x012B + uint16(r-'A'), true
	case r >= 'a' && r <= 'z':
		return 0x0145 + uint16(r-'a'), true
	}
	c, ok := gen4Punct[r]
	return c, ok
}
