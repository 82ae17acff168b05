package common

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Basic statistical functions shared across algorithms, using gonum for robustness

// Epsilon stabilizes denominators when normalizing near-silent curves
const Epsilon = 1e-8

// Mean calculates the arithmetic mean of a slice using gonum
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return stat.Mean(data, nil)
}

// Median calculates the median of a slice. For an even number of values the
// middle pair is averaged, matching the usual robust-statistics definition.
func Median(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2.0
	}
	return sorted[mid]
}

// Percentile calculates the p-th percentile (p between 0 and 1) using gonum
func Percentile(data []float64, p float64) float64 {
	if len(data) == 0 || p < 0 || p > 1 {
		return 0.0
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// Max returns the maximum value of a slice using gonum
func Max(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return floats.Max(data)
}

// NormalizeByMax scales data so the track-wide maximum maps to 1.0. The
// epsilon-stabilized denominator keeps an all-zero curve at zero instead of
// dividing by zero.
func NormalizeByMax(data []float64) []float64 {
	if len(data) == 0 {
		return []float64{}
	}

	denom := floats.Max(data) + Epsilon
	normalized := make([]float64, len(data))
	for i, val := range data {
		normalized[i] = val / denom
	}

	return normalized
}

// Gradient calculates the first derivative of a curve using central
// differences, with one-sided differences at the boundaries.
func Gradient(data []float64) []float64 {
	n := len(data)
	if n < 2 {
		return make([]float64, n)
	}

	gradient := make([]float64, n)
	gradient[0] = data[1] - data[0]
	gradient[n-1] = data[n-1] - data[n-2]
	for i := 1; i < n-1; i++ {
		gradient[i] = (data[i+1] - data[i-1]) / 2.0
	}

	return gradient
}

// PositivePart clamps negative values to zero
func PositivePart(data []float64) []float64 {
	result := make([]float64, len(data))
	for i, val := range data {
		result[i] = math.Max(0.0, val)
	}
	return result
}

// NegativePart returns the magnitude of negative values, zero elsewhere
func NegativePart(data []float64) []float64 {
	result := make([]float64, len(data))
	for i, val := range data {
		result[i] = math.Max(0.0, -val)
	}
	return result
}
