package pkx

import (
	"bytes"
	"log/slog"

	"github.com/udisondev/pkxcodec/internal/bytefield"
)

// Entity is a decoded record bound to one generation layout. While an Entity
// exists its buffer is always decrypted. An Entity is not safe for concurrent
// use; independent entities may be used in parallel.
type Entity struct {
	buf      bytefield.Buffer
	lay      *layout
	party    bool
	personal PersonalTable
	pids     PIDGenerator
	log      *slog.Logger
}

// Option configures an Entity.
type Option func(*Entity)

// WithPersonal sets the personal data table used by derived values.
func WithPersonal(p PersonalTable) Option {
	return func(e *Entity) {
		if p != nil {
			e.personal = p
		}
	}
}

// WithPIDGenerator sets the generator used when a PID must be rerolled.
func WithPIDGenerator(g PIDGenerator) Option {
	return func(e *Entity) {
		if g != nil {
			e.pids = g
		}
	}
}

// WithLogger sets the logger for decode diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(e *Entity) {
		if l != nil {
			e.log = l
		}
	}
}

// New takes ownership of data and decodes it in place. The length selects the
// stored or party variant; encrypted input is decrypted. A checksum mismatch is
// not an error, see ChecksumValid.
func New(gen Generation, data []byte, opts ...Option) (*Entity, error) {
	l, err := layoutFor(gen)
	if err != nil {
		return nil, err
	}
	party, err := l.isParty(len(data))
	if err != nil {
		return nil, err
	}

	e := &Entity{
		buf:      data,
		lay:      l,
		party:    party,
		personal: noPersonal{},
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.pids == nil {
		e.pids = NewRandomPIDGenerator()
	}

	if l.isEncrypted(e.buf) {
		l.decrypt(e.buf)
	}
	if !e.ChecksumValid() {
		e.log.Debug("entity checksum mismatch",
			"gen", gen,
			"stored", e.Checksum(),
			"computed", e.ComputeChecksum())
	}
	return e, nil
}

// Generation returns the layout the entity was decoded with.
func (e *Entity) Generation() Generation { return e.lay.gen }

// Party reports whether the buffer is the party-length variant.
func (e *Entity) Party() bool { return e.party }

// Bytes returns the decrypted buffer. It aliases the entity's storage.
func (e *Entity) Bytes() []byte { return e.buf }

// Checksum returns the stored checksum field.
func (e *Entity) Checksum() uint16 { return uint16(e.get(e.lay.checksum)) }

// ComputeChecksum sums the payload words. Generations without a checksum
// return 0.
func (e *Entity) ComputeChecksum() uint16 { return e.lay.computeChecksum(e.buf) }

// ChecksumValid compares the stored and computed checksums.
func (e *Entity) ChecksumValid() bool { return e.Checksum() == e.ComputeChecksum() }

// RefreshChecksum writes the computed checksum into the record.
func (e *Entity) RefreshChecksum() { e.set(e.lay.checksum, uint64(e.ComputeChecksum())) }

// EncryptedCopy returns an encrypted copy of the record with a fresh checksum.
// The entity itself stays decrypted.
func (e *Entity) EncryptedCopy() []byte {
	e.RefreshChecksum()
	out := bytes.Clone(e.buf)
	if e.lay.blockSize > 0 {
		e.lay.encrypt(out)
	}
	return out
}

// Finalize refreshes the checksum, encrypts when asked and hands the buffer
// back. The entity must not be used afterwards.
func (e *Entity) Finalize(encrypt bool) []byte {
	e.RefreshChecksum()
	if encrypt && e.lay.blockSize > 0 {
		e.lay.encrypt(e.buf)
	}
	out := e.buf
	e.buf = nil
	return out
}

// IsEncrypted applies the generation's encryption heuristic to a raw buffer.
func IsEncrypted(gen Generation, data []byte) (bool, error) {
	l, err := checkedLayout(gen, data)
	if err != nil {
		return false, err
	}
	return l.isEncrypted(data), nil
}

// Encrypt encrypts data in place unless it already looks encrypted.
func Encrypt(gen Generation, data []byte) error {
	l, err := checkedLayout(gen, data)
	if err != nil {
		return err
	}
	if l.blockSize > 0 && !l.isEncrypted(data) {
		l.encrypt(data)
	}
	return nil
}

// Decrypt decrypts data in place unless it already looks decrypted.
func Decrypt(gen Generation, data []byte) error {
	l, err := checkedLayout(gen, data)
	if err != nil {
		return err
	}
	if l.isEncrypted(data) {
		l.decrypt(data)
	}
	return nil
}

func checkedLayout(gen Generation, data []byte) (*layout, error) {
	l, err := layoutFor(gen)
	if err != nil {
		return nil, err
	}
	if _, err := l.isParty(len(data)); err != nil {
		return nil, err
	}
	return l, nil
}

// get reads f, returning 0 for absent fields and for party fields of a
// stored-length record.
func (e *Entity) get(f field) uint64 {
	if f.kind == kindNone || f.party && !e.party {
		return 0
	}
	switch f.kind {
	case kindU8:
		return uint64(e.buf.U8(f.off))
	case kindU16:
		return uint64(e.buf.U16(f.off))
	case kindU32:
		return uint64(e.buf.U32(f.off))
	case kindU64:
		return e.buf.U64(f.off)
	case kindU16BE:
		return uint64(e.buf.U16BE(f.off))
	case kindU24BE:
		return uint64(e.buf.U24BE(f.off))
	case kindBits:
		return uint64(e.buf.Bits(f.off, f.mask, uint(f.shift)))
	}
	return 0
}

// set writes v into f, truncating to the field width. Absent fields ignore
// the write.
func (e *Entity) set(f field, v uint64) {
	if f.kind == kindNone || f.party && !e.party {
		return
	}
	switch f.kind {
	case kindU8:
		e.buf.SetU8(f.off, uint8(v))
	case kindU16:
		e.buf.SetU16(f.off, uint16(v))
	case kindU32:
		e.buf.SetU32(f.off, uint32(v))
	case kindU64:
		e.buf.SetU64(f.off, v)
	case kindU16BE:
		e.buf.SetU16BE(f.off, uint16(v))
	case kindU24BE:
		e.buf.SetU24BE(f.off, uint32(v))
	case kindBits:
		e.buf.SetBits(f.off, f.mask, uint(f.shift), uint8(v))
	}
}

func (e *Entity) getFlag(f field) bool { return e.get(f) != 0 }

func (e *Entity) setFlag(f field, v bool) {
	if v {
		e.set(f, 1)
	} else {
		e.set(f, 0)
	}
}

func (e *Entity) getText(t textField) string {
	if !t.present() {
		return ""
	}
	if t.gen4 {
		return gen4Text(e.buf, t)
	}
	return e.buf.UTF16(t.off, t.chars, t.term)
}

func (e *Entity) setText(t textField, s string) {
	if !t.present() {
		return
	}
	if t.gen4 {
		setGen4Text(e.buf, t, s)
		return
	}
	e.buf.SetUTF16(t.off, t.chars, t.term, s)
}

func (e *Entity) getDate(f field) Date {
	if !f.present() {
		return Date{}
	}
	y, m, d := e.buf.U8(f.off), e.buf.U8(f.off+1), e.buf.U8(f.off+2)
	if y == 0 && m == 0 && d == 0 {
		return Date{}
	}
	return Date{Year: 2000 + int(y), Month: int(m), Day: int(d)}
}

func (e *Entity) getMemory(m memoryFields) Memory {
	return Memory{
		Intensity: uint8(e.get(m.intensity)),
		Memory:    uint8(e.get(m.memory)),
		Feeling:   uint8(e.get(m.feeling)),
		TextVar:   uint16(e.get(m.textVar)),
	}
}

func (e *Entity) setMemory(f memoryFields, m Memory) {
	e.set(f.intensity, uint64(m.Intensity))
	e.set(f.memory, uint64(m.Memory))
	e.set(f.feeling, uint64(m.Feeling))
	e.set(f.textVar, uint64(m.TextVar))
}

func (e *Entity) setDate(f field, d Date) {
	if !f.present() {
		return
	}
	if d.IsZero() {
		e.buf.SetU8(f.off, 0)
		e.buf.SetU8(f.off+1, 0)
		e.buf.SetU8(f.off+2, 0)
		return
	}
	e.buf.SetU8(f.off, uint8(d.Year-2000))
	e.buf.SetU8(f.off+1, uint8(d.Month))
	e.buf.SetU8(f.off+2, uint8(d.Day))
}
