package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mixcue/mixcue/detect/config"
)

func hopTimes(n int, hop float64) []float64 {
	times := make([]float64, n)
	for i := range times {
		times[i] = float64(i) * hop
	}
	return times
}

func ones(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1.0
	}
	return v
}

func findByType(candidates []Candidate, ct CueType) (Candidate, bool) {
	for _, c := range candidates {
		if c.Type == ct {
			return c, true
		}
	}
	return Candidate{}, false
}

func TestGenerateIntroAndDrop(t *testing.T) {
	// Quiet lead-in, a jump to high energy, then a fade-out
	energy := []float64{0, 0, 0, 0.05, 0.2, 0.6, 0.6, 0.05, 0.02}
	times := hopTimes(len(energy), 0.5)
	novelty := ones(len(energy))

	gen := NewCandidateGenerator(config.DefaultCueConfig())
	candidates := gen.Generate(times, energy, novelty)

	intro, ok := findByType(candidates, CueIntro)
	require.True(t, ok, "expected an intro candidate")
	assert.Equal(t, 2.0, intro.Time, "first frame with energy above 0.1 is index 4")
	assert.Equal(t, 1.0, intro.Score)

	drop, ok := findByType(candidates, CueDrop)
	require.True(t, ok, "expected a drop candidate")
	assert.Equal(t, 2.5, drop.Time, "drop lands on the 0.2 -> 0.6 transition")
	// Score is (current - trailing mean) * novelty = (0.6 - 0.05) * 1.0
	assert.InDelta(t, 0.55, drop.Score, 1e-9)
}

func TestGenerateOutro(t *testing.T) {
	energy := []float64{0, 0, 0, 0.05, 0.2, 0.6, 0.6, 0.05, 0.02}
	times := hopTimes(len(energy), 0.5)

	gen := NewCandidateGenerator(config.DefaultCueConfig())
	candidates := gen.Generate(times, energy, ones(len(energy)))

	outro, ok := findByType(candidates, CueOutro)
	require.True(t, ok, "expected an outro candidate")
	assert.Equal(t, 3.5, outro.Time)
	assert.Equal(t, 0.8, outro.Score)
}

func TestGenerateBreakdown(t *testing.T) {
	// Sustained high energy collapsing to near silence
	energy := []float64{0.9, 0.9, 0.9, 0.9, 0.9, 0.9, 0.1, 0.1, 0.1, 0.1}
	times := hopTimes(len(energy), 0.5)

	gen := NewCandidateGenerator(config.DefaultCueConfig())
	candidates := gen.Generate(times, energy, ones(len(energy)))

	breakdown, ok := findByType(candidates, CueBreakdown)
	require.True(t, ok, "expected a breakdown candidate")
	assert.Equal(t, 3.0, breakdown.Time)
	// (trailing mean - current) * novelty = (0.9 - 0.1) * 1.0
	assert.InDelta(t, 0.8, breakdown.Score, 1e-9)
}

func TestGenerateSectionSkipsCoveredFrames(t *testing.T) {
	// A single novelty spike far from any other candidate becomes a section
	n := 60
	times := hopTimes(n, 0.5)
	energy := make([]float64, n) // silent: no intro/drop/breakdown/outro
	novelty := make([]float64, n)
	novelty[40] = 1.0

	gen := NewCandidateGenerator(config.DefaultCueConfig())
	candidates := gen.Generate(times, energy, novelty)

	section, ok := findByType(candidates, CueSection)
	require.True(t, ok)
	assert.Equal(t, 20.0, section.Time)
	assert.InDelta(t, 0.5, section.Score, 1e-9, "section score is novelty * 0.5")

	// The same spike next to an intro candidate is suppressed
	energy[38] = 0.5 // intro fires at t=19.0
	candidates = gen.Generate(times, energy, novelty)
	_, ok = findByType(candidates, CueSection)
	assert.False(t, ok, "section within min distance of another candidate is skipped")
}

func TestGenerateSilentTrack(t *testing.T) {
	n := 40
	gen := NewCandidateGenerator(config.DefaultCueConfig())
	candidates := gen.Generate(hopTimes(n, 0.5), make([]float64, n), make([]float64, n))
	assert.Empty(t, candidates, "an all-zero track yields no candidates")
}
