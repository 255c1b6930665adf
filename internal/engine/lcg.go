// Package engine provides concrete pseudo-random algorithms satisfying the
// sampler generator contract. None of these are cryptographically secure;
// they exist for reproducible simulation work.
package engine

import "github.com/pappan12/DiceForge/internal/sampler"

// Knuth's MMIX linear congruential constants.
const (
	lcgMul uint64 = 0x5851f42d4c957f2d
	lcgInc uint64 = 0x14057b7ef767814f
)

// LCG64 is a 64-bit linear congruential generator using Knuth's MMIX
// constants. Seeds are expanded through splitmix64 so that nearby seeds do
// not start in nearby states.
type LCG64 struct {
	state uint64
}

var _ sampler.Engine[uint64] = (*LCG64)(nil)

// NewLCG64 returns a generator seeded with seed.
func NewLCG64(seed uint64) *LCG64 {
	g := &LCG64{}
	g.Reseed(seed)
	return g
}

// Generate returns the next raw 64-bit value.
func (g *LCG64) Generate() uint64 {
	g.state = g.state*lcgMul + lcgInc
	return g.state
}

// Reseed reinitializes the generator state from seed.
func (g *LCG64) Reseed(seed uint64) {
	g.state = splitmix64(seed)
}
