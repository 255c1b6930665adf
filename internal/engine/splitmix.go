package engine

import "github.com/pappan12/DiceForge/internal/sampler"

const goldenGamma uint64 = 0x9e3779b97f4a7c15

// splitmix64 mixes x into a new 64-bit value, used both as a generator step
// and for seed expansion.
func splitmix64(x uint64) uint64 {
	x += goldenGamma
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// SplitMix64 is a counter-based generator: the state advances by the golden
// ratio increment and each output is the mixed counter.
type SplitMix64 struct {
	state uint64
}

var _ sampler.Engine[uint64] = (*SplitMix64)(nil)

// NewSplitMix64 returns a generator seeded with seed.
func NewSplitMix64(seed uint64) *SplitMix64 {
	g := &SplitMix64{}
	g.Reseed(seed)
	return g
}

// Generate returns the next raw 64-bit value.
func (g *SplitMix64) Generate() uint64 {
	g.state += goldenGamma
	x := g.state
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// Reseed reinitializes the generator state from seed.
func (g *SplitMix64) Reseed(seed uint64) {
	g.state = seed
}
