package peaks

import (
	"math"
	"sort"
)

// PeakPicker finds local maxima in a 1-D curve subject to three simultaneous
// constraints: a minimum height, a minimum prominence, and a minimum frame
// distance between surviving peaks. It is shared by the beat, cue, and phrase
// detection paths, which differ only in the curves they feed it.
type PeakPicker struct {
	minHeight     float64
	minDistance   int
	minProminence float64
}

// NewPeakPicker creates a new peak picker. minDistance is in frames; a value
// of zero or one disables distance pruning, and a zero minProminence disables
// the prominence filter.
func NewPeakPicker(minHeight float64, minDistance int, minProminence float64) *PeakPicker {
	return &PeakPicker{
		minHeight:     minHeight,
		minDistance:   minDistance,
		minProminence: minProminence,
	}
}

// FindPeaks returns the frame indices of all peaks satisfying the configured
// constraints, in ascending order. The result is deterministic for identical
// input; an empty curve yields an empty result.
func (pp *PeakPicker) FindPeaks(curve []float64) []int {
	candidates := localMaxima(curve)

	kept := candidates[:0]
	for _, p := range candidates {
		if curve[p] >= pp.minHeight {
			kept = append(kept, p)
		}
	}

	if pp.minProminence > 0 {
		prominences := Prominences(curve, kept)
		filtered := kept[:0]
		for i, p := range kept {
			if prominences[i] >= pp.minProminence {
				filtered = append(filtered, p)
			}
		}
		kept = filtered
	}

	return pp.pruneByDistance(curve, kept)
}

// localMaxima finds strict local maxima. A plateau counts as a single maximum
// at its center frame (rounding toward the earlier index) when the curve
// descends on both sides.
func localMaxima(curve []float64) []int {
	n := len(curve)
	if n < 3 {
		return []int{}
	}

	var maxima []int
	i := 1
	for i < n-1 {
		if curve[i] <= curve[i-1] {
			i++
			continue
		}

		// Walk to the right edge of a potential plateau
		j := i
		for j < n-1 && curve[j+1] == curve[i] {
			j++
		}

		if j < n-1 && curve[j+1] < curve[i] {
			maxima = append(maxima, (i+j)/2)
		}
		i = j + 1
	}

	return maxima
}

// Prominences calculates the prominence of each peak: the drop from the peak
// to the lowest saddle separating it from any taller point. The search on each
// side stops at the first sample exceeding the peak's own value, or at the
// curve boundary.
func Prominences(curve []float64, peakIndices []int) []float64 {
	prominences := make([]float64, len(peakIndices))

	for k, p := range peakIndices {
		height := curve[p]

		leftMin := height
		for i := p - 1; i >= 0; i-- {
			if curve[i] > height {
				break
			}
			if curve[i] < leftMin {
				leftMin = curve[i]
			}
		}

		rightMin := height
		for i := p + 1; i < len(curve); i++ {
			if curve[i] > height {
				break
			}
			if curve[i] < rightMin {
				rightMin = curve[i]
			}
		}

		prominences[k] = height - math.Max(leftMin, rightMin)
	}

	return prominences
}

// pruneByDistance enforces the minimum frame distance by repeatedly removing
// the weaker of any violating pair. Processing candidates from strongest to
// weakest (ties keep the earlier index) yields the same surviving set as
// iterative pairwise removal in any order.
func (pp *PeakPicker) pruneByDistance(curve []float64, candidates []int) []int {
	if pp.minDistance <= 1 || len(candidates) < 2 {
		result := make([]int, len(candidates))
		copy(result, candidates)
		return result
	}

	byValue := make([]int, len(candidates))
	copy(byValue, candidates)
	sort.SliceStable(byValue, func(a, b int) bool {
		if curve[byValue[a]] != curve[byValue[b]] {
			return curve[byValue[a]] > curve[byValue[b]]
		}
		return byValue[a] < byValue[b]
	})

	var kept []int
	for _, p := range byValue {
		ok := true
		for _, q := range kept {
			if abs(p-q) < pp.minDistance {
				ok = false
				break
			}
		}
		if ok {
			kept = append(kept, p)
		}
	}

	sort.Ints(kept)
	return kept
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
