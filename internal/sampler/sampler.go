// Package sampler builds derived sampling operations (unit interval, ranged
// draws, weighted choice, shuffle) on top of a minimal generator contract.
// Concrete algorithms live elsewhere; this package only ever calls the two
// engine primitives.
package sampler

import (
	"errors"
	"math"
)

// Unsigned constrains the raw output width of a generator engine.
type Unsigned interface {
	~uint32 | ~uint64
}

// Engine is the minimal contract a concrete RNG algorithm must satisfy.
// Every derived operation in this package is built from these two primitives.
type Engine[T Unsigned] interface {
	// Generate returns the next raw value. Implementations must be able to
	// reach the full range [0, max of T].
	Generate() T
	// Reseed reinitializes all internal state from seed; all future output
	// is fully determined by it.
	Reseed(seed T)
}

// ErrBadRange reports out-of-order range bounds.
var ErrBadRange = errors.New("invalid range: max must be >= min")

// Generator wraps an Engine and provides the derived sampling operations.
// It holds no state of its own; sharing one across goroutines needs external
// locking, same as the underlying engine.
type Generator[T Unsigned] struct {
	engine Engine[T]
}

// New wraps a concrete engine.
func New[T Unsigned](e Engine[T]) *Generator[T] {
	return &Generator[T]{engine: e}
}

// Next returns the next raw value from the underlying engine.
func (g *Generator[T]) Next() T {
	return g.engine.Generate()
}

// NextUnit returns a uniform float64 in [0, 1).
// Dividing the raw value by the maximum of T can land exactly on 1.0, which
// would leak past the upper bound of downstream range mappings; such draws
// are rejected and resampled.
func (g *Generator[T]) NextUnit() float64 {
	maxT := float64(^T(0))
	x := 1.0
	for x == 1.0 {
		x = float64(g.engine.Generate()) / maxT
	}
	return x
}

// NextInRange returns a uniform integer in the inclusive range [min, max].
// When min == max it always returns min. The result is carried in an int64,
// so uint64 bounds above math.MaxInt64 wrap in the conversion; callers
// needing the full uint64 range should work with Next directly.
func (g *Generator[T]) NextInRange(min, max T) (int64, error) {
	if max < min {
		return 0, ErrBadRange
	}
	span := float64(max-min) + 1
	v := math.Floor(g.NextUnit() * span)
	// Rounding in the product can reach span itself for very large ranges;
	// clamp so the result never leaves [min, max].
	if v >= span {
		v = span - 1
	}
	return int64(v) + int64(min), nil
}

// NextInOpenRange returns a uniform float64 in the open interval (min, max).
// Unlike NextInRange the upper end is excluded: draws that scale to exactly
// max are rejected and resampled.
func (g *Generator[T]) NextInOpenRange(min, max float64) (float64, error) {
	if max <= min {
		return 0, ErrBadRange
	}
	x := max
	for x == max {
		x = (max-min)*g.NextUnit() + min
	}
	return x, nil
}

// ResetSeed reinitializes the engine from seed. Afterwards the generator
// behaves exactly as a freshly constructed one seeded with the same value.
func (g *Generator[T]) ResetSeed(seed T) {
	g.engine.Reseed(seed)
}
