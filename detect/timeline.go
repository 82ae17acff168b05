package detect

// Timeline converts frame indices on a fixed analysis grid to timestamps in
// seconds. Frame i corresponds to time i * secondsPerFrame; the grid is fixed
// once a curve is produced.
type Timeline struct {
	secondsPerFrame float64
}

// NewModelTimeline builds a timeline for model-frame curves, where the hop is
// expressed in samples at a known sample rate.
func NewModelTimeline(hopSize, sampleRate int) Timeline {
	return Timeline{secondsPerFrame: float64(hopSize) / float64(sampleRate)}
}

// NewHopTimeline builds a timeline for curves whose hop is already in seconds
func NewHopTimeline(hopSeconds float64) Timeline {
	return Timeline{secondsPerFrame: hopSeconds}
}

// FrameToTime converts a frame index to seconds
func (t Timeline) FrameToTime(index int) float64 {
	return float64(index) * t.secondsPerFrame
}

// FramesToTimes converts a list of frame indices to seconds, preserving order
func (t Timeline) FramesToTimes(frames []int) []float64 {
	times := make([]float64, len(frames))
	for i, f := range frames {
		times[i] = t.FrameToTime(f)
	}
	return times
}

// BarCount returns the number of 4/4 bars covered by a beat count
func BarCount(beatCount int) float64 {
	return float64(beatCount) / 4.0
}
