package spectral

import (
	"math"

	"github.com/mixcue/mixcue/algorithms/common"
)

// Flux computes spectral flux, a measure of frame-to-frame spectral change.
// Rising flux marks onsets, so the resulting curve can stand in for a model
// activation curve when no beat-detection model is available.
type Flux struct{}

// NewFlux creates a new spectral flux calculator
func NewFlux() *Flux {
	return &Flux{}
}

// Compute calculates spectral flux for a magnitude spectrogram, counting only
// positive (energy-increasing) changes. The result has one value per frame
// transition, i.e. one fewer than the number of input frames.
func (sf *Flux) Compute(magnitudes [][]float64) []float64 {
	if len(magnitudes) < 2 {
		return []float64{}
	}

	flux := make([]float64, len(magnitudes)-1)
	for t := 1; t < len(magnitudes); t++ {
		sum := 0.0
		for f := 0; f < len(magnitudes[t]) && f < len(magnitudes[t-1]); f++ {
			diff := magnitudes[t][f] - magnitudes[t-1][f]
			if diff > 0 {
				sum += diff * diff
			}
		}
		flux[t-1] = math.Sqrt(sum)
	}

	return flux
}

// OnsetStrength computes a max-normalized onset-strength curve directly from
// samples: Hann-windowed magnitude frames followed by positive spectral flux.
// The curve is suitable input for the same peak picker the beat path uses.
func (sf *Flux) OnsetStrength(signal []float64, windowSize, hopSize int) []float64 {
	frames := NewFFT().MagnitudeFrames(signal, windowSize, hopSize)
	return common.NormalizeByMax(sf.Compute(frames))
}
