package temporal

import (
	"math"

	"github.com/mixcue/mixcue/algorithms/common"
)

// TempoEstimation estimates a track's BPM from detected beat timestamps. The
// median inter-beat interval is robust to a single missed or spurious beat
// that would corrupt a mean, and the plausibility band rejects octave errors
// and double/half-rate detections before the median is taken.
type TempoEstimation struct {
	minInterval float64 // shortest plausible beat period in seconds
	maxInterval float64 // longest plausible beat period in seconds
}

// NewTempoEstimation creates a tempo estimator for the 60-200 BPM band
func NewTempoEstimation() *TempoEstimation {
	return &TempoEstimation{
		minInterval: 60.0 / 200.0,
		maxInterval: 60.0 / 60.0,
	}
}

// NewTempoEstimationRange creates a tempo estimator for a custom BPM band
func NewTempoEstimationRange(minBPM, maxBPM float64) *TempoEstimation {
	return &TempoEstimation{
		minInterval: 60.0 / maxBPM,
		maxInterval: 60.0 / minBPM,
	}
}

// EstimateBPM estimates tempo from an ordered sequence of beat timestamps in
// seconds, rounded to two decimal places. Fewer than two beats means the tempo
// is undefined and yields 0.0 rather than an error. When no interval falls in
// the plausible band, the median of all intervals is used instead so the
// estimate never fails outright.
func (te *TempoEstimation) EstimateBPM(beats []float64) float64 {
	if len(beats) < 2 {
		return 0.0
	}

	intervals := make([]float64, len(beats)-1)
	for i := range intervals {
		intervals[i] = beats[i+1] - beats[i]
	}

	kept := make([]float64, 0, len(intervals))
	for _, interval := range intervals {
		if interval >= te.minInterval && interval <= te.maxInterval {
			kept = append(kept, interval)
		}
	}
	if len(kept) == 0 {
		kept = intervals
	}

	median := common.Median(kept)
	if median <= 0 {
		return 0.0
	}

	return math.Round(6000.0/median) / 100.0
}
