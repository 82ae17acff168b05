package detect

import (
	"fmt"

	"github.com/mixcue/mixcue/algorithms/common"
	"github.com/mixcue/mixcue/algorithms/temporal"
	"github.com/mixcue/mixcue/detect/config"
	"github.com/mixcue/mixcue/logging"
)

// DetectCues finds cue points from an RMS energy curve and a per-frame
// feature-vector sequence. The energy curve is re-normalized and aligned onto
// the feature time axis before the heuristics run, so the two inputs may use
// different native hops.
func DetectCues(energyTimes, energies, featureTimes []float64, features [][]float64, cfg config.CueConfig) ([]Event, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("cue config: %w", err)
	}

	if len(featureTimes) == 0 || len(features) == 0 {
		return []Event{}, nil
	}

	energy := common.NormalizeByMax(energies)
	aligned := common.ResampleToAxis(energyTimes, energy, featureTimes)
	novelty := temporal.NewNovelty().ComputeCurve(features)

	candidates := NewCandidateGenerator(cfg).Generate(featureTimes, aligned, novelty)
	events := SelectEvents(candidates, cfg.MinDistance, cfg.MaxCues)

	logging.Debug("cue detection completed", logging.Fields{
		"frames":     len(featureTimes),
		"candidates": len(candidates),
		"cues":       len(events),
	})

	return events, nil
}
