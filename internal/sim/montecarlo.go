// Package sim provides Monte Carlo trial running and summary statistics for
// sampled values.
package sim

import (
	"math"
	"sort"
)

// Stats summarizes simulation results.
type Stats struct {
	Mean   float64 `json:"mean"`
	Var    float64 `json:"var"`
	StdDev float64 `json:"std_dev"`
	P50    float64 `json:"p50"`
	P90    float64 `json:"p90"`
	P99    float64 `json:"p99"`
	// Raw samples if the caller needs histograms/exports.
	Samples []float64 `json:"-"`
}

// Summarize computes mean/variance/percentiles for the samples.
func Summarize(xs []float64) Stats {
	n := len(xs)
	if n == 0 {
		return Stats{}
	}
	var sum float64
	for _, v := range xs {
		sum += v
	}
	mean := sum / float64(n)

	// variance (population)
	var acc float64
	for _, v := range xs {
		d := v - mean
		acc += d * d
	}
	variance := acc / float64(n)

	cp := append([]float64(nil), xs...)
	sort.Float64s(cp)
	percentile := func(p float64) float64 {
		if n == 1 || p <= 0 {
			return cp[0]
		}
		if p >= 1 {
			return cp[n-1]
		}
		pos := p * float64(n-1)
		i := int(math.Floor(pos))
		f := pos - float64(i)
		if i+1 >= n {
			return cp[i]
		}
		return cp[i]*(1-f) + cp[i+1]*f
	}

	return Stats{
		Mean:    mean,
		Var:     variance,
		StdDev:  math.Sqrt(variance),
		P50:     percentile(0.50),
		P90:     percentile(0.90),
		P99:     percentile(0.99),
		Samples: xs,
	}
}

// RunTrials repeats fn and summarizes the collected samples. A non-positive
// trial count yields zero Stats.
func RunTrials(trials int, fn func() (float64, error)) (Stats, error) {
	if trials <= 0 {
		return Stats{}, nil
	}
	samples := make([]float64, trials)
	for i := range samples {
		v, err := fn()
		if err != nil {
			return Stats{}, err
		}
		samples[i] = v
	}
	return Summarize(samples), nil
}

// ChiSquareUniform returns the chi-square statistic of the observed counts
// against a uniform expectation over all bins.
func ChiSquareUniform(counts []int) float64 {
	if len(counts) == 0 {
		return 0
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return 0
	}
	expected := float64(total) / float64(len(counts))
	var chi float64
	for _, c := range counts {
		d := float64(c) - expected
		chi += d * d / expected
	}
	return chi
}
