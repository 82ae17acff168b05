package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mixcue/mixcue/detect/config"
)

func TestDetectBeatsRegularActivation(t *testing.T) {
	// Activation spikes every 50 frames = every 0.5s at the 10ms model hop
	activation := make([]float64, 3000)
	for i := 50; i < len(activation); i += 50 {
		activation[i] = 1.0
	}

	result, err := DetectBeats(activation, config.DefaultBeatConfig())
	require.NoError(t, err)

	require.Len(t, result.Beats, 59)
	assert.Equal(t, 120.0, result.BPM)
	assert.InDelta(t, 0.5, result.Beats[0], 1e-9)
	assert.InDelta(t, 1.0, result.Beats[1], 1e-9)
	assert.InDelta(t, float64(len(result.Beats))/4.0, result.Bars, 1e-12)

	for i := 1; i < len(result.Beats); i++ {
		assert.Greater(t, result.Beats[i], result.Beats[i-1])
	}
}

func TestDetectBeatsEmptyActivation(t *testing.T) {
	result, err := DetectBeats(nil, config.DefaultBeatConfig())
	require.NoError(t, err)
	assert.Empty(t, result.Beats)
	assert.Equal(t, 0.0, result.BPM)
	assert.Equal(t, 0.0, result.Bars)
}

func TestDetectBeatsBelowThreshold(t *testing.T) {
	// Activation never reaches the height threshold
	activation := make([]float64, 1000)
	for i := 100; i < len(activation); i += 100 {
		activation[i] = 0.05
	}

	result, err := DetectBeats(activation, config.DefaultBeatConfig())
	require.NoError(t, err)
	assert.Empty(t, result.Beats)
}

func TestDetectBeatsConfigError(t *testing.T) {
	cfg := config.DefaultBeatConfig()
	cfg.MinDistanceFrames = -1

	result, err := DetectBeats(nil, cfg)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "minimum distance")

	cfg = config.DefaultBeatConfig()
	cfg.SampleRate = 0
	_, err = DetectBeats(nil, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sample rate")
}
