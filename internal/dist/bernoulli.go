package dist

import (
	"errors"
	"math"
)

// ErrInvalidProb reports a probability outside [0, 1].
var ErrInvalidProb = errors.New("invalid probability p; must be 0..1")

// Bernoulli is the distribution of a single success/failure trial with
// success probability p.
type Bernoulli struct {
	p float64
}

var _ Discrete = (*Bernoulli)(nil)

// NewBernoulli validates p and returns the distribution.
func NewBernoulli(p float64) (*Bernoulli, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, ErrInvalidProb
	}
	return &Bernoulli{p: p}, nil
}

func (b *Bernoulli) Variance() float64 { return b.p * (1 - b.p) }

func (b *Bernoulli) Expectation() float64 { return b.p }

func (b *Bernoulli) MinValue() int64 { return 0 }

func (b *Bernoulli) MaxValue() int64 { return 1 }

func (b *Bernoulli) PMF(k int64) float64 {
	switch k {
	case 0:
		return 1 - b.p
	case 1:
		return b.p
	}
	return 0
}

func (b *Bernoulli) CDF(k int64) float64 {
	switch {
	case k < 0:
		return 0
	case k == 0:
		return 1 - b.p
	}
	return 1
}
