package spectral

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// FFT provides Fast Fourier Transform functionality via mjibson/go-dsp
type FFT struct{}

// NewFFT creates a new FFT calculator
func NewFFT() *FFT {
	return &FFT{}
}

// Compute computes the FFT of a real signal. go-dsp handles all sizes,
// including non-power-of-2.
func (f *FFT) Compute(x []float64) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}
	return fft.FFTReal(x)
}

// Magnitude computes the single-sided magnitude spectrum of a real signal
func (f *FFT) Magnitude(x []float64) []float64 {
	if len(x) == 0 {
		return []float64{}
	}

	spectrum := fft.FFTReal(x)
	bins := len(x)/2 + 1

	magnitude := make([]float64, bins)
	for i := 0; i < bins; i++ {
		magnitude[i] = cmplx.Abs(spectrum[i])
	}
	return magnitude
}

// MagnitudeFrames slices a signal into Hann-windowed frames and returns the
// magnitude spectrum of each. This is the only place raw samples meet the
// frequency domain; everything downstream works on the returned matrix.
func (f *FFT) MagnitudeFrames(signal []float64, windowSize, hopSize int) [][]float64 {
	if len(signal) < windowSize || windowSize <= 0 || hopSize <= 0 {
		return [][]float64{}
	}

	window := hannWindow(windowSize)
	numFrames := (len(signal)-windowSize)/hopSize + 1

	frames := make([][]float64, 0, numFrames)
	buf := make([]float64, windowSize)
	for i := 0; i+windowSize <= len(signal); i += hopSize {
		for j := 0; j < windowSize; j++ {
			buf[j] = signal[i+j] * window[j]
		}
		frames = append(frames, f.Magnitude(buf))
	}

	return frames
}

func hannWindow(size int) []float64 {
	window := make([]float64, size)
	if size == 1 {
		window[0] = 1.0
		return window
	}
	for i := range window {
		window[i] = 0.5 * (1.0 - math.Cos(2.0*math.Pi*float64(i)/float64(size-1)))
	}
	return window
}
