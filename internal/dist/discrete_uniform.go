package dist

// DiscreteUniform is the uniform distribution over the integers
// [min, max], a fair die when min is 1.
type DiscreteUniform struct {
	min int64
	max int64
}

var _ Discrete = (*DiscreteUniform)(nil)

// NewDiscreteUniform validates the support and returns the distribution.
func NewDiscreteUniform(min, max int64) (*DiscreteUniform, error) {
	if max < min {
		return nil, ErrInvalidSupport
	}
	return &DiscreteUniform{min: min, max: max}, nil
}

func (d *DiscreteUniform) size() float64 { return float64(d.max-d.min) + 1 }

func (d *DiscreteUniform) Variance() float64 {
	n := d.size()
	return (n*n - 1) / 12
}

func (d *DiscreteUniform) Expectation() float64 {
	return (float64(d.min) + float64(d.max)) / 2
}

func (d *DiscreteUniform) MinValue() int64 { return d.min }

func (d *DiscreteUniform) MaxValue() int64 { return d.max }

func (d *DiscreteUniform) PMF(k int64) float64 {
	if k < d.min || k > d.max {
		return 0
	}
	return 1 / d.size()
}

func (d *DiscreteUniform) CDF(k int64) float64 {
	switch {
	case k < d.min:
		return 0
	case k > d.max:
		return 1
	}
	return (float64(k-d.min) + 1) / d.size()
}
