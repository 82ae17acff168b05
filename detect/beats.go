package detect

import (
	"fmt"

	"github.com/mixcue/mixcue/algorithms/peaks"
	"github.com/mixcue/mixcue/algorithms/temporal"
	"github.com/mixcue/mixcue/detect/config"
	"github.com/mixcue/mixcue/logging"
)

// DetectBeats turns a per-frame beat-activation curve into beat timestamps
// and a tempo estimate. The activation values are opaque model output; only
// their relative shape matters to the peak picker.
func DetectBeats(activation []float64, cfg config.BeatConfig) (*BeatSet, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("beat config: %w", err)
	}

	picker := peaks.NewPeakPicker(cfg.Height, cfg.MinDistanceFrames, cfg.Prominence)
	frames := picker.FindPeaks(activation)

	timeline := NewModelTimeline(cfg.HopSize, cfg.SampleRate)
	beats := timeline.FramesToTimes(frames)

	bpm := temporal.NewTempoEstimation().EstimateBPM(beats)

	logging.Debug("beat detection completed", logging.Fields{
		"frames": len(activation),
		"beats":  len(beats),
		"bpm":    bpm,
	})

	return &BeatSet{
		BPM:   bpm,
		Beats: beats,
		Bars:  BarCount(len(beats)),
	}, nil
}
