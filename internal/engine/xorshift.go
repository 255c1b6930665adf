package engine

import "github.com/pappan12/DiceForge/internal/sampler"

// Zero is a fixed point of the xorshift step, so a zero seed is replaced
// with this constant.
const xorshiftZeroSeed uint32 = 0x9e3779b9

// XorShift32 is Marsaglia's 13/17/5 xorshift over 32-bit state.
type XorShift32 struct {
	state uint32
}

var _ sampler.Engine[uint32] = (*XorShift32)(nil)

// NewXorShift32 returns a generator seeded with seed.
func NewXorShift32(seed uint32) *XorShift32 {
	g := &XorShift32{}
	g.Reseed(seed)
	return g
}

// Generate returns the next raw 32-bit value.
func (g *XorShift32) Generate() uint32 {
	x := g.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	g.state = x
	return x
}

// Reseed reinitializes the generator state from seed.
func (g *XorShift32) Reseed(seed uint32) {
	if seed == 0 {
		seed = xorshiftZeroSeed
	}
	g.state = seed
}
