// Package dist defines the query contracts describing probability
// distributions, plus a few reference distributions implementing them.
//
// The contracts perform no computation and hold no state; every concrete
// distribution must keep support bounds, moments and probability functions
// mutually consistent (cdf non-decreasing, pdf integrating to 1 over the
// support).
package dist

// Continuous describes a probability law over a real interval.
type Continuous interface {
	// Variance returns the theoretical variance of the distribution.
	Variance() float64
	// Expectation returns the theoretical expectation value.
	Expectation() float64
	// MinValue returns the minimum possible value of the random variable.
	MinValue() float64
	// MaxValue returns the maximum possible value of the random variable.
	MaxValue() float64
	// PDF evaluates the probability density function at x.
	PDF(x float64) float64
	// CDF evaluates the cumulative distribution function at x, P(X <= x).
	CDF(x float64) float64
}

// Discrete describes a probability law over an integer support.
type Discrete interface {
	// Variance returns the theoretical variance of the distribution.
	Variance() float64
	// Expectation returns the theoretical expectation value.
	Expectation() float64
	// MinValue returns the smallest integer in the support.
	MinValue() int64
	// MaxValue returns the largest integer in the support.
	MaxValue() int64
	// PMF evaluates the probability mass function at k, P(X = k).
	PMF(k int64) float64
	// CDF evaluates the cumulative distribution function at k, P(X <= k).
	CDF(k int64) float64
}
