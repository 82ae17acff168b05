package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/mixcue/mixcue/algorithms/spectral"
	"github.com/mixcue/mixcue/algorithms/temporal"
)

// CurvesFile is the JSON sidecar the CLI consumes. Each field is optional;
// commands derive what they can from what is present. Decoding and model
// inference happen upstream: `samples` is a decoded mono buffer, `activation`
// a beat model's output, and `features` a feature extractor's per-frame
// vectors.
type CurvesFile struct {
	SampleRate   int         `json:"sample_rate,omitempty"`
	Duration     float64     `json:"duration,omitempty"`
	Samples      []float64   `json:"samples,omitempty"`
	Activation   []float64   `json:"activation,omitempty"`
	EnergyTimes  []float64   `json:"energy_times,omitempty"`
	Energy       []float64   `json:"energy,omitempty"`
	FeatureTimes []float64   `json:"feature_times,omitempty"`
	Features     [][]float64 `json:"features,omitempty"`
}

func loadCurves(path string) (*CurvesFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read curves: %w", err)
	}

	var curves CurvesFile
	if err := json.Unmarshal(data, &curves); err != nil {
		return nil, fmt.Errorf("parse curves: %w", err)
	}

	if curves.Duration == 0 && curves.SampleRate > 0 && len(curves.Samples) > 0 {
		curves.Duration = float64(len(curves.Samples)) / float64(curves.SampleRate)
	}

	return &curves, nil
}

// activationCurve returns the model activation curve, falling back to a
// spectral-flux onset-strength curve computed from raw samples when no model
// output is present.
func (c *CurvesFile) activationCurve(hopSize int) ([]float64, error) {
	if len(c.Activation) > 0 {
		return c.Activation, nil
	}

	if len(c.Samples) > 0 {
		windowSize := viper.GetInt("onset.window_size")
		return spectral.NewFlux().OnsetStrength(c.Samples, windowSize, hopSize), nil
	}

	return nil, fmt.Errorf("curves file has neither activation nor samples")
}

// energyCurve returns the energy curve, computing it from raw samples when the
// sidecar carries none.
func (c *CurvesFile) energyCurve() (times, energy []float64, err error) {
	if len(c.Energy) > 0 {
		if len(c.EnergyTimes) != len(c.Energy) {
			return nil, nil, fmt.Errorf("energy_times length %d does not match energy length %d",
				len(c.EnergyTimes), len(c.Energy))
		}
		return c.EnergyTimes, c.Energy, nil
	}

	if len(c.Samples) > 0 && c.SampleRate > 0 {
		calc := temporal.NewEnergy(
			viper.GetFloat64("energy.window_seconds"),
			viper.GetFloat64("energy.hop_seconds"),
			c.SampleRate,
		)
		times, energy = calc.ComputeCurve(c.Samples)
		return times, energy, nil
	}

	return nil, nil, fmt.Errorf("curves file has neither energy curve nor samples")
}
