package dist

import (
	"errors"
	"math"
)

// ErrInvalidRate reports a non-positive or non-finite rate parameter.
var ErrInvalidRate = errors.New("invalid rate: must be positive and finite")

// Exponential is the exponential distribution with rate lambda.
type Exponential struct {
	lambda float64
}

var _ Continuous = (*Exponential)(nil)

// NewExponential validates the rate and returns the distribution.
func NewExponential(lambda float64) (*Exponential, error) {
	if math.IsNaN(lambda) || math.IsInf(lambda, 0) || lambda <= 0 {
		return nil, ErrInvalidRate
	}
	return &Exponential{lambda: lambda}, nil
}

func (e *Exponential) Variance() float64 { return 1 / (e.lambda * e.lambda) }

func (e *Exponential) Expectation() float64 { return 1 / e.lambda }

func (e *Exponential) MinValue() float64 { return 0 }

func (e *Exponential) MaxValue() float64 { return math.Inf(1) }

func (e *Exponential) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return e.lambda * math.Exp(-e.lambda*x)
}

func (e *Exponential) CDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return 1 - math.Exp(-e.lambda*x)
}
