package detect

import (
	"fmt"

	"github.com/mixcue/mixcue/algorithms/common"
	"github.com/mixcue/mixcue/detect/config"
	"github.com/mixcue/mixcue/logging"
)

// DetectPhrases performs fallback structural segmentation from an energy curve
// alone, for tracks where no structure model output is available. duration is
// the track length in seconds; the final phrase runs from its start to the
// track end.
func DetectPhrases(times, energies []float64, duration float64, cfg config.PhraseConfig) ([]Phrase, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("phrase config: %w", err)
	}

	if len(times) == 0 || len(energies) == 0 {
		return []Phrase{}, nil
	}

	energy := common.NormalizeByMax(energies)
	candidates := NewPhraseGenerator(cfg).Generate(times, energy)
	events := SelectEvents(candidates, cfg.MinDistance, cfg.MaxPhrases)

	phrases := make([]Phrase, len(events))
	for i, ev := range events {
		phrase := Phrase{
			Time:  ev.Time,
			Label: string(ev.Type),
		}
		if i < len(events)-1 {
			phrase.Duration = events[i+1].Time - ev.Time
		} else if duration > ev.Time {
			phrase.Duration = duration - ev.Time
		}
		phrases[i] = phrase
	}

	logging.Debug("phrase segmentation completed", logging.Fields{
		"frames":     len(times),
		"candidates": len(candidates),
		"phrases":    len(phrases),
	})

	return phrases, nil
}
