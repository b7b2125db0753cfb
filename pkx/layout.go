package pkx

import (
	"encoding/binary"
	"fmt"

	"github.com/udisondev/pkxcodec/internal/bytefield"
	"github.com/udisondev/pkxcodec/internal/crypto"
)

type fieldKind uint8

const (
	kindNone fieldKind = iota
	kindU8
	kindU16
	kindU32
	kindU64
	kindU16BE
	kindU24BE
	kindBits
)

// field describes where a value lives in a decrypted record. The zero field is
// absent: reads return zero and writes are dropped.
type field struct {
	kind  fieldKind
	off   int
	mask  uint8
	shift uint8
	// party fields exist only in party-length buffers.
	party bool
}

func u8(off int) field    { return field{kind: kindU8, off: off} }
func u16(off int) field   { return field{kind: kindU16, off: off} }
func u32(off int) field   { return field{kind: kindU32, off: off} }
func u64(off int) field   { return field{kind: kindU64, off: off} }
func u16be(off int) field { return field{kind: kindU16BE, off: off} }
func u24be(off int) field { return field{kind: kindU24BE, off: off} }

func bits(off int, mask, shift uint8) field {
	return field{kind: kindBits, off: off, mask: mask, shift: shift}
}

func flag(off int, bit uint8) field { return bits(off, 1, bit) }

func (f field) partyOnly() field {
	f.party = true
	return f
}

func (f field) present() bool { return f.kind != kindNone }

func (f field) width() int {
	switch f.kind {
	case kindU8, kindBits:
		return 1
	case kindU16, kindU16BE:
		return 2
	case kindU24BE:
		return 3
	case kindU32:
		return 4
	case kindU64:
		return 8
	}
	return 0
}

// fieldArray is count fields spaced stride bytes apart. With merge set, index 5
// (SpD) aliases index 4 (SpA): Game Boy records keep one Special value.
type fieldArray struct {
	first  field
	stride int
	count  int
	merge  bool
}

func arr(first field, stride, count int) fieldArray {
	return fieldArray{first: first, stride: stride, count: count}
}

func (a fieldArray) merged() fieldArray {
	a.merge = true
	return a
}

func (a fieldArray) at(i int) field {
	if a.merge && i == int(StatSpD) {
		i = int(StatSpA)
	}
	if i < 0 || i >= a.count {
		return field{}
	}
	f := a.first
	f.off += i * a.stride
	return f
}

// memoryFields locates one trainer memory. The member order differs between
// the Gen 6/7 and Gen 8+ frames.
type memoryFields struct {
	intensity, memory, feeling, textVar field
}

func mem(intensity, memory, feeling, textVar int) memoryFields {
	return memoryFields{
		intensity: u8(intensity),
		memory:    u8(memory),
		feeling:   u8(feeling),
		textVar:   u16(textVar),
	}
}

// textField is a string of chars 16-bit code units: UTF-16LE, or the Gen 4
// character table when gen4 is set.
type textField struct {
	off   int
	chars int
	term  uint16
	gen4  bool
}

func text(off, chars int, term uint16) textField {
	return textField{off: off, chars: chars, term: term}
}

func (t textField) present() bool { return t.chars > 0 }

// layout is the offset table and behaviour switches of one generation.
type layout struct {
	gen        Generation
	storedSize int
	partySize  int

	// Encryption. blockSize 0 means the record is stored in plaintext.
	blockSize  int
	indicators []field
	checksum   field
	sanity     field
	shinyShift uint

	// checksumKeyed records key the payload with the stored checksum instead of
	// the seed; the party tail is still keyed by the seed.
	checksumKeyed bool

	ec, pid, species, heldItem, tid, sid, exp field

	ability, abilityNumber, hiddenAbility field
	nature, origNature                    field
	gender, form, fateful                 field
	iv32, dv, egg, nicknamed              field
	language, version, markValue          field
	favorite, canGiga, pkrs               field

	ball, metLevel, otGender, metLocation, eggLocation field
	metDate, eggDate                                   field

	otFriendship, htFriendship, currentHandler field
	htGender, htLanguage, htID                 field
	otMemory, htMemory                         memoryFields
	fullness, enjoyment, battleVersion         field
	formDuration, favRibbon                    field

	heightScalar, weightScalar, scale field
	teraOriginal, teraOverride        field
	homeTracker, dynamaxLevel         field
	hyperTrain                        field
	contestCount, battleCount         field
	ribbons                           ribbonTable
	recordFlags                       field
	recordFlagCount                   int
	boxLevel                          field
	gbTypes                           [2]field

	evs, contest, avs           fieldArray
	moves, pp, ppUps, relearn   fieldArray
	partyStats                  fieldArray
	nickname, otName, htName    textField
	status, partyLevel, partyHP field
	dynamaxType                 field

	hooks
}

// hooks override generic field access where a generation derives a value
// instead of storing it. Nil hooks fall back to the field tables.
type hooks struct {
	speciesOf        func(e *Entity) uint16
	setSpecies       func(e *Entity, v uint16)
	natureOf         func(e *Entity) Nature
	setNature        func(e *Entity, v Nature)
	abilityNumberOf  func(e *Entity) uint8
	setAbilityNumber func(e *Entity, v uint8)
	genderOf         func(e *Entity) Gender
	setGender        func(e *Entity, v Gender)
	ivOf             func(e *Entity, s Stat) uint8
	setIV            func(e *Entity, s Stat, v uint8)
	statOf           func(e *Entity, s Stat) uint16
	hpTypeOf         func(e *Entity) Type
	setHPType        func(e *Entity, t Type)
	shinyOf          func(e *Entity) bool
	setShiny         func(e *Entity, v bool)
	ballOf           func(e *Entity) uint8
	setBall          func(e *Entity, v uint8)
}

// Sizes returns the stored and party buffer lengths for gen.
func Sizes(gen Generation) (stored, party int, err error) {
	l, err := layoutFor(gen)
	if err != nil {
		return 0, 0, err
	}
	return l.storedSize, l.partySize, nil
}

func layoutFor(gen Generation) (*layout, error) {
	switch gen {
	case Gen1:
		return gen1Layout, nil
	case Gen2:
		return gen2Layout, nil
	case Gen4:
		return gen4Layout, nil
	case Gen5:
		return gen5Layout, nil
	case Gen6:
		return gen6Layout, nil
	case Gen7:
		return gen7Layout, nil
	case GenLGPE:
		return lgpeLayout, nil
	case Gen8:
		return gen8Layout, nil
	case Gen9:
		return gen9Layout, nil
	}
	return nil, fmt.Errorf("layout for %s: %w", gen, ErrGeneration)
}

// isParty classifies a buffer length.
func (l *layout) isParty(n int) (bool, error) {
	switch n {
	case l.storedSize:
		return false, nil
	case l.partySize:
		return true, nil
	}
	return false, fmt.Errorf("gen %s: got %d bytes, want %d or %d: %w",
		l.gen, n, l.storedSize, l.partySize, ErrBufferSize)
}

// isEncrypted applies the indicator heuristic: a record is treated as
// encrypted only when every indicator word is nonzero.
func (l *layout) isEncrypted(b bytefield.Buffer) bool {
	if l.blockSize == 0 {
		return false
	}
	for _, f := range l.indicators {
		if b.Uint(f.off, f.width(), binary.LittleEndian) == 0 {
			return false
		}
	}
	return true
}

func (l *layout) computeChecksum(b bytefield.Buffer) uint16 {
	if !l.checksum.present() {
		return 0
	}
	return crypto.Checksum16(b[8:l.storedSize])
}

// decrypt runs the keystream over the payload and the party tail, then
// restores the canonical block order.
func (l *layout) decrypt(b bytefield.Buffer) {
	seed := b.U32(0)
	l.crypt(b, seed)
	crypto.Unshuffle(b, 8, l.blockSize, crypto.ShuffleSelector(seed))
}

// encrypt refreshes the checksum, reorders the blocks and applies the keystream.
// The checksum is written before ciphering so checksum-keyed records pick up
// the fresh value.
func (l *layout) encrypt(b bytefield.Buffer) {
	seed := b.U32(0)
	b.SetU16(l.checksum.off, l.computeChecksum(b))
	crypto.Shuffle(b, 8, l.blockSize, crypto.ShuffleSelector(seed))
	l.crypt(b, seed)
}

// payloadKey is the keystream seed for [8, storedSize).
func (l *layout) payloadKey(b bytefield.Buffer, seed uint32) uint32 {
	if l.checksumKeyed {
		return uint32(b.U16(l.checksum.off))
	}
	return seed
}

// crypt ciphers the payload and, on party buffers, the tail. Each region starts
// a fresh keystream.
func (l *layout) crypt(b bytefield.Buffer, seed uint32) {
	crypto.CryptArray(b, l.payloadKey(b, seed), 8, l.storedSize)
	if len(b) > l.storedSize {
		crypto.CryptArray(b, seed, l.storedSize, len(b))
	}
}
