package sampler

import (
	"errors"
	"sort"
)

var (
	// ErrEmptySequence reports a choice or shuffle over nothing.
	ErrEmptySequence = errors.New("sequence must have non-zero length")
	// ErrLengthMismatch reports weights that do not line up with the sequence.
	ErrLengthMismatch = errors.New("lengths of sequence and weights must be equal")
	// ErrNonPositiveTotal reports weights that sum to zero or less, leaving no
	// probability mass to draw from.
	ErrNonPositiveTotal = errors.New("sum of weights must be positive")
)

// Choice returns an element drawn uniformly at random from seq.
func Choice[T Unsigned, E any](g *Generator[T], seq []E) (E, error) {
	var zero E
	if len(seq) == 0 {
		return zero, ErrEmptySequence
	}
	i, err := g.NextInRange(0, T(len(seq)-1))
	if err != nil {
		return zero, err
	}
	return seq[i], nil
}

// WeightedChoice returns an element from seq with probability proportional to
// its weight. Weights need not be normalized; division by the total happens
// implicitly. An element with weight 0 is never selected.
func WeightedChoice[T Unsigned, E any](g *Generator[T], seq []E, weights []float64) (E, error) {
	var zero E
	if len(seq) != len(weights) {
		return zero, ErrLengthMismatch
	}
	if len(seq) == 0 {
		return zero, ErrEmptySequence
	}
	cum := make([]float64, len(weights))
	total := 0.0
	for i, w := range weights {
		total += w
		cum[i] = total
	}
	if total <= 0 {
		return zero, ErrNonPositiveTotal
	}
	u := g.NextUnit() * total
	// Upper bound over the cumulative array: the first index whose cumulative
	// weight strictly exceeds u. Equal adjacent entries (zero weights) resolve
	// to the earliest qualifying index, so probability mass never shifts
	// between neighbors.
	i := sort.Search(len(cum), func(i int) bool { return cum[i] > u })
	if i == len(cum) {
		i = len(cum) - 1
	}
	return seq[i], nil
}
