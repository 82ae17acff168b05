package temporal

import (
	"math"

	"github.com/mixcue/mixcue/algorithms/common"
)

// Energy computes a sliding-window RMS energy curve over a decoded mono
// buffer. Window and hop are expressed in seconds so the resulting frame times
// are independent of the sample rate.
type Energy struct {
	windowSeconds float64
	hopSeconds    float64
	sampleRate    int
}

// NewEnergy creates a new energy curve calculator
func NewEnergy(windowSeconds, hopSeconds float64, sampleRate int) *Energy {
	return &Energy{
		windowSeconds: windowSeconds,
		hopSeconds:    hopSeconds,
		sampleRate:    sampleRate,
	}
}

// ComputeCurve calculates the RMS energy of each window, normalized by the
// track-wide maximum so values lie in [0, 1]. Returns the start time of each
// frame alongside the energies. A signal shorter than one window yields empty
// curves.
func (e *Energy) ComputeCurve(samples []float64) (times, energies []float64) {
	windowSamples := int(e.windowSeconds * float64(e.sampleRate))
	hopSamples := int(e.hopSeconds * float64(e.sampleRate))

	if len(samples) < windowSamples || windowSamples <= 0 || hopSamples <= 0 {
		return []float64{}, []float64{}
	}

	numFrames := (len(samples)-windowSamples)/hopSamples + 1
	times = make([]float64, 0, numFrames)
	energies = make([]float64, 0, numFrames)

	for i := 0; i+windowSamples <= len(samples); i += hopSamples {
		sumSquares := 0.0
		for j := i; j < i+windowSamples; j++ {
			sumSquares += samples[j] * samples[j]
		}

		times = append(times, float64(i)/float64(e.sampleRate))
		energies = append(energies, math.Sqrt(sumSquares/float64(windowSamples)))
	}

	return times, common.NormalizeByMax(energies)
}
