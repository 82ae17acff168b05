package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModelTimeline(t *testing.T) {
	tl := NewModelTimeline(441, 44100)

	assert.InDelta(t, 0.01, tl.FrameToTime(1), 1e-12)
	assert.InDelta(t, 0.5, tl.FrameToTime(50), 1e-12)
	assert.Equal(t, 0.0, tl.FrameToTime(0))
}

func TestHopTimeline(t *testing.T) {
	tl := NewHopTimeline(0.5)

	times := tl.FramesToTimes([]int{0, 1, 4, 10})
	assert.Equal(t, []float64{0, 0.5, 2.0, 5.0}, times)
}

func TestFramesToTimesEmpty(t *testing.T) {
	tl := NewHopTimeline(0.5)
	assert.Empty(t, tl.FramesToTimes(nil))
}

func TestBarCount(t *testing.T) {
	assert.Equal(t, 0.0, BarCount(0))
	assert.Equal(t, 1.0, BarCount(4))
	assert.Equal(t, 14.75, BarCount(59))
}
