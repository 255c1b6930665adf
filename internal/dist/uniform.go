package dist

import (
	"errors"
	"math"
)

// ErrInvalidSupport reports distribution bounds that are out of order or not
// finite.
var ErrInvalidSupport = errors.New("invalid support: max must be greater than min")

// Uniform is the continuous uniform distribution over [low, high].
type Uniform struct {
	low  float64
	high float64
}

var _ Continuous = (*Uniform)(nil)

// NewUniform validates the support and returns the distribution.
func NewUniform(low, high float64) (*Uniform, error) {
	if math.IsNaN(low) || math.IsNaN(high) || math.IsInf(low, 0) || math.IsInf(high, 0) || high <= low {
		return nil, ErrInvalidSupport
	}
	return &Uniform{low: low, high: high}, nil
}

func (u *Uniform) Variance() float64 {
	d := u.high - u.low
	return d * d / 12
}

func (u *Uniform) Expectation() float64 { return (u.low + u.high) / 2 }

func (u *Uniform) MinValue() float64 { return u.low }

func (u *Uniform) MaxValue() float64 { return u.high }

func (u *Uniform) PDF(x float64) float64 {
	if x < u.low || x > u.high {
		return 0
	}
	return 1 / (u.high - u.low)
}

func (u *Uniform) CDF(x float64) float64 {
	switch {
	case x < u.low:
		return 0
	case x > u.high:
		return 1
	}
	return (x - u.low) / (u.high - u.low)
}
