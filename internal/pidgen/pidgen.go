// Package pidgen generates personality values that satisfy shiny, nature,
// ability and gender constraints.
package pidgen

import (
	"math/rand/v2"
	"sync"
)

// Constraints restrict a generated PID.
type Constraints struct {
	// TSV is the trainer shiny value, already shifted by Shift.
	TSV   uint16
	Shift uint
	Shiny bool

	// Nature, when >= 0, requires PID % 25 == Nature.
	Nature int

	// AbilityBit, when >= 0, requires (PID >> AbilityBit) & 1 == AbilityValue.
	AbilityBit   int
	AbilityValue uint32

	// GenderRatio in 1..253 requires (PID & 0xFF < GenderRatio) == Female.
	GenderRatio uint8
	Female      bool
}

func (c Constraints) psv(pid uint32) uint16 {
	return uint16((pid>>16 ^ pid&0xFFFF) >> c.Shift)
}

func (c Constraints) accepts(pid uint32) bool {
	if (c.psv(pid) == c.TSV) != c.Shiny {
		return false
	}
	if c.Nature >= 0 && int(pid%25) != c.Nature {
		return false
	}
	if c.AbilityBit >= 0 && pid>>uint(c.AbilityBit)&1 != c.AbilityValue {
		return false
	}
	if c.GenderRatio > 0 && c.GenderRatio < 254 {
		if (pid&0xFF < uint32(c.GenderRatio)) != c.Female {
			return false
		}
	}
	return true
}

// Generator is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a generator seeded from the runtime source.
func New() *Generator {
	return NewSeeded(rand.Uint64())
}

// NewSeeded returns a deterministic generator.
func NewSeeded(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))}
}

// Generate returns a PID satisfying c. The search space is finite, so the call
// always returns: when gender, then nature and ability cannot be met together
// with the shiny requirement, those constraints are dropped in that order.
func (g *Generator) Generate(c Constraints) uint32 {
	g.mu.Lock()
	defer g.mu.Unlock()

	if pid, ok := g.search(c); ok {
		return pid
	}
	c.GenderRatio = 0
	if pid, ok := g.search(c); ok {
		return pid
	}
	c.Nature = -1
	c.AbilityBit = -1
	pid, _ := g.search(c)
	return pid
}

// search walks every low half-word from a random start. The high half is
// derived so the PSV equals the TSV (shiny) or a fixed different value.
func (g *Generator) search(c Constraints) (uint32, bool) {
	span := uint32(1) << c.Shift
	psvCount := uint32(0x10000) >> c.Shift
	target := uint32(c.TSV) & (psvCount - 1)
	if !c.Shiny {
		target = (uint32(c.TSV) + 1 + g.rng.Uint32N(psvCount-1)) % psvCount
	}
	low0 := g.rng.Uint32N(0x10000)
	r0 := g.rng.Uint32N(span)

	for i := range uint32(0x10000) {
		low := (low0 + i) & 0xFFFF
		for j := range span {
			r := (r0 + j) & (span - 1)
			high := low ^ (target<<c.Shift | r)
			pid := high<<16 | low
			if c.accepts(pid) {
				return pid, true
			}
		}
	}
	return 0, false
}
