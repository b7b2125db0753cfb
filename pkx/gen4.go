package pkx

import (
	"strings"
	"unicode/utf8"

	"github.com/udisondev/pkxcodec/internal/bytefield"
	"github.com/udisondev/pkxcodec/internal/data"
)

// Diamond/Pearl/Platinum and HeartGold/SoulSilver (PK4). Nature and ability
// slot are derived from the PID. Nickname and OT name use the game's own
// character table; see gen4Text.
var gen4Layout = &layout{
	gen:        Gen4,
	storedSize: 136,
	partySize:  236,

	blockSize:  32,
	indicators: []field{u32(0x64)},
	sanity:     u16(0x04),
	checksum:   u16(0x06),
	shinyShift: 3,

	checksumKeyed: true,

	pid:          u32(0x00),
	species:      u16(0x08),
	heldItem:     u16(0x0A),
	tid:          u16(0x0C),
	sid:          u16(0x0E),
	exp:          u32(0x10),
	otFriendship: u8(0x14),
	ability:      u8(0x15),
	markValue:    u8(0x16),
	language:     u8(0x17),
	evs:          arr(u8(0x18), 1, 6),
	contest:      arr(u8(0x1E), 1, 6),

	moves:     arr(u16(0x28), 2, 4),
	pp:        arr(u8(0x30), 1, 4),
	ppUps:     arr(u8(0x34), 1, 4),
	iv32:      u32(0x38),
	egg:       flag(0x3B, 6),
	nicknamed: flag(0x3B, 7),
	fateful:   flag(0x40, 0),
	gender:    bits(0x40, 0x03, 1),
	form:      bits(0x40, 0x1F, 3),
	version:   u8(0x5F),

	nickname: text4(0x48, 11),
	otName:   text4(0x68, 8),

	eggDate:     u8(0x78),
	metDate:     u8(0x7B),
	eggLocation: u16(0x7E),
	metLocation: u16(0x80),
	pkrs:        u8(0x82),
	metLevel:    bits(0x84, 0x7F, 0),
	otGender:    flag(0x84, 7),

	status:     u32(0x88).partyOnly(),
	partyLevel: u8(0x8C).partyOnly(),
	partyHP:    u16(0x8E).partyOnly(),
	partyStats: arr(u16(0x90).partyOnly(), 2, 6),

	hooks: hooks{
		natureOf:         gen4Nature,
		setNature:        setGen4Nature,
		abilityNumberOf:  gen4AbilityNumber,
		setAbilityNumber: func(*Entity, uint8) {},
		ballOf:           gen4Ball,
		setBall:          setGen4Ball,
	},
}

func text4(off, chars int) textField {
	return textField{off: off, chars: chars, term: data.Gen4Terminator, gen4: true}
}

// gen4Text decodes up to the terminator. Codes outside the mapped Western
// blocks decode as U+FFFD.
func gen4Text(b bytefield.Buffer, t textField) string {
	var sb strings.Builder
	for i := range t.chars {
		c := b.U16(t.off + 2*i)
		if c == t.term {
			break
		}
		r, ok := data.Gen4Rune(c)
		if !ok {
			r = utf8.RuneError
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// setGen4Text writes s, dropping runes the table cannot encode. One unit is kept
// for the terminator and the rest of the field is zeroed.
func setGen4Text(b bytefield.Buffer, t textField, s string) {
	n := 0
	for _, r := range s {
		if n == t.chars-1 {
			break
		}
		c, ok := data.Gen4Code(r)
		if !ok {
			continue
		}
		b.SetU16(t.off+2*n, c)
		n++
	}
	b.SetU16(t.off+2*n, t.term)
	for i := n + 1; i < t.chars; i++ {
		b.SetU16(t.off+2*i, 0)
	}
}

const (
	gen4BallDP   = 0x83
	gen4BallHGSS = 0x86
	ballPoke     = 4
	ballCherish  = 16
)

func gen4Nature(e *Entity) Nature { return Nature(e.PID() % NatureCount) }

// setGen4Nature rerolls the PID, keeping the shiny state.
func setGen4Nature(e *Entity, v Nature) {
	if e.Nature() == v {
		return
	}
	e.rerollPID(e.Shiny(), v)
}

func gen4AbilityNumber(e *Entity) uint8 { return 1 << (e.PID() & 1) }

// gen4Ball: HG/SS keep balls introduced after D/P in a second byte and store
// a Poké Ball placeholder in the original one.
func gen4Ball(e *Entity) uint8 {
	return max(e.buf.U8(gen4BallDP), e.buf.U8(gen4BallHGSS))
}

func setGen4Ball(e *Entity, v uint8) {
	if v <= ballCherish {
		e.buf.SetU8(gen4BallDP, v)
		e.buf.SetU8(gen4BallHGSS, 0)
		return
	}
	e.buf.SetU8(gen4BallDP, ballPoke)
	e.buf.SetU8(gen4BallHGSS, v)
}
