package detect

import (
	"math"

	"github.com/mixcue/mixcue/algorithms/common"
	"github.com/mixcue/mixcue/algorithms/peaks"
	"github.com/mixcue/mixcue/detect/config"
)

// CandidateGenerator produces typed, scored cue candidates from aligned energy
// and novelty curves. Each rule is independent and may fire zero or more
// times; every fired candidate is emitted unfiltered, deduplication happens in
// SelectEvents.
type CandidateGenerator struct {
	cfg config.CueConfig
}

// NewCandidateGenerator creates a generator with the given cue configuration
func NewCandidateGenerator(cfg config.CueConfig) *CandidateGenerator {
	return &CandidateGenerator{cfg: cfg}
}

// Generate runs all cue heuristics over curves sharing the time axis `times`:
// intro (first significant energy), drop (quiet-to-loud transition weighted by
// novelty), breakdown (loud-to-quiet), section (novelty peak), and outro
// (energy stays low until the end).
func (g *CandidateGenerator) Generate(times, energy, novelty []float64) []Candidate {
	n := min(len(times), len(energy), len(novelty))
	times, energy, novelty = times[:n], energy[:n], novelty[:n]

	var candidates []Candidate

	if intro, ok := introCandidate(times, energy, g.cfg.IntroEnergy); ok {
		candidates = append(candidates, intro)
	}

	minDistFrames := int(g.cfg.MinDistance / g.cfg.HopSeconds)

	dropScore := make([]float64, n)
	breakdownScore := make([]float64, n)
	for i := g.cfg.TrailingFrames; i < n; i++ {
		prevMean := common.Mean(energy[i-g.cfg.TrailingFrames : i])
		curr := energy[i]

		if prevMean < g.cfg.LowEnergy && curr > g.cfg.HighEnergy {
			dropScore[i] = (curr - prevMean) * novelty[i]
		}
		if prevMean > g.cfg.HighEnergy && curr < g.cfg.LowEnergy {
			breakdownScore[i] = (prevMean - curr) * novelty[i]
		}
	}

	candidates = append(candidates, peakCandidates(times, dropScore, g.cfg.PeakHeight, minDistFrames,
		func(int) (CueType, string, bool) { return CueDrop, "Drop", true })...)

	candidates = append(candidates, peakCandidates(times, breakdownScore, g.cfg.PeakHeight, minDistFrames,
		func(int) (CueType, string, bool) { return CueBreakdown, "Breakdown", true })...)

	// Section boundaries: novelty peaks not already covered by another rule
	picker := peaks.NewPeakPicker(g.cfg.SectionNovelty, minDistFrames, 0)
	for _, p := range picker.FindPeaks(novelty) {
		if nearestCandidate(candidates, times[p]) < g.cfg.MinDistance {
			continue
		}
		candidates = append(candidates, Candidate{
			Time:  times[p],
			Type:  CueSection,
			Score: novelty[p] * 0.5,
			Label: "Section",
		})
	}

	if outro, ok := outroCandidate(times, energy, g.cfg.OutroEnergy, g.cfg.OutroRise); ok {
		candidates = append(candidates, outro)
	}

	return candidates
}

// PhraseGenerator produces fallback phrase candidates from an energy curve
// alone. It is the same peak-picking strategy as the cue rules with the energy
// derivative as the score curve and a different label mapping.
type PhraseGenerator struct {
	cfg config.PhraseConfig
}

// NewPhraseGenerator creates a generator with the given phrase configuration
func NewPhraseGenerator(cfg config.PhraseConfig) *PhraseGenerator {
	return &PhraseGenerator{cfg: cfg}
}

// Generate classifies energy-derivative peaks: rising edges become chorus or
// verse starts depending on the local energy, falling edges into low energy
// become bridges. Intro and outro use the same scans as the cue path.
func (g *PhraseGenerator) Generate(times, energy []float64) []Candidate {
	n := min(len(times), len(energy))
	times, energy = times[:n], energy[:n]

	var candidates []Candidate

	if intro, ok := introCandidate(times, energy, g.cfg.IntroEnergy); ok {
		candidates = append(candidates, intro)
	}

	hop := 1.0
	if n >= 2 {
		hop = times[1] - times[0]
	}
	minDistFrames := int(g.cfg.MinDistance / hop)

	gradient := common.Gradient(energy)
	rise := common.PositivePart(gradient)
	fall := common.NegativePart(gradient)

	candidates = append(candidates, peakCandidates(times, rise, g.cfg.EdgeHeight, minDistFrames,
		func(frame int) (CueType, string, bool) {
			if energy[frame] > g.cfg.HighEnergy {
				return CueChorus, "Chorus", true
			}
			return CueVerse, "Verse", true
		})...)

	candidates = append(candidates, peakCandidates(times, fall, g.cfg.EdgeHeight, minDistFrames,
		func(frame int) (CueType, string, bool) {
			if energy[frame] < g.cfg.LowEnergy {
				return CueBridge, "Bridge", true
			}
			return "", "", false
		})...)

	if outro, ok := outroCandidate(times, energy, g.cfg.OutroEnergy, g.cfg.OutroRise); ok {
		candidates = append(candidates, outro)
	}

	return candidates
}

// peakCandidates runs the shared peak picker over a score curve and maps each
// surviving frame to a candidate. classify may veto a frame by returning false.
func peakCandidates(times, score []float64, height float64, minDistFrames int, classify func(frame int) (CueType, string, bool)) []Candidate {
	picker := peaks.NewPeakPicker(height, minDistFrames, 0)

	var candidates []Candidate
	for _, p := range picker.FindPeaks(score) {
		cueType, label, ok := classify(p)
		if !ok {
			continue
		}
		candidates = append(candidates, Candidate{
			Time:  times[p],
			Type:  cueType,
			Score: score[p],
			Label: label,
		})
	}

	return candidates
}

// introCandidate marks the first frame whose energy exceeds the threshold
func introCandidate(times, energy []float64, threshold float64) (Candidate, bool) {
	for i, e := range energy {
		if e > threshold {
			return Candidate{Time: times[i], Type: CueIntro, Score: 1.0, Label: "Intro"}, true
		}
	}
	return Candidate{}, false
}

// outroCandidate scans backward through the second half of the track for the
// point where the mean energy from there to the end stays low while the
// preceding frame is still loud.
func outroCandidate(times, energy []float64, lowThreshold, riseThreshold float64) (Candidate, bool) {
	for i := len(energy) - 1; i > len(energy)/2; i-- {
		remaining := common.Mean(energy[i:])
		if remaining < lowThreshold && energy[i-1] > riseThreshold {
			return Candidate{Time: times[i], Type: CueOutro, Score: 0.8, Label: "Outro"}, true
		}
	}
	return Candidate{}, false
}

// nearestCandidate returns the smallest time distance from t to any candidate,
// or +Inf when there are none.
func nearestCandidate(candidates []Candidate, t float64) float64 {
	nearest := math.Inf(1)
	for _, c := range candidates {
		if d := math.Abs(c.Time - t); d < nearest {
			nearest = d
		}
	}
	return nearest
}
