package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedian(t *testing.T) {
	assert.Equal(t, 0.0, Median(nil))
	assert.Equal(t, 2.0, Median([]float64{3, 1, 2}))
	assert.Equal(t, 2.5, Median([]float64{4, 1, 2, 3}), "even count averages the middle pair")
}

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.InDelta(t, 2.0, Mean([]float64{1, 2, 3}), 1e-12)
}

func TestNormalizeByMax(t *testing.T) {
	normalized := NormalizeByMax([]float64{0, 1, 2})
	require.Len(t, normalized, 3)
	assert.Equal(t, 0.0, normalized[0])
	assert.InDelta(t, 0.5, normalized[1], 1e-6)
	assert.InDelta(t, 1.0, normalized[2], 1e-6)
}

func TestNormalizeByMaxSilent(t *testing.T) {
	normalized := NormalizeByMax([]float64{0, 0, 0})
	for _, v := range normalized {
		assert.Equal(t, 0.0, v)
	}
}

func TestGradient(t *testing.T) {
	assert.Equal(t, []float64{0}, Gradient([]float64{5}))

	gradient := Gradient([]float64{0, 1, 4})
	require.Len(t, gradient, 3)
	assert.Equal(t, 1.0, gradient[0], "one-sided at the left edge")
	assert.Equal(t, 2.0, gradient[1], "central difference")
	assert.Equal(t, 3.0, gradient[2], "one-sided at the right edge")
}

func TestPositiveNegativeParts(t *testing.T) {
	data := []float64{-1, 0, 2}
	assert.Equal(t, []float64{0, 0, 2}, PositivePart(data))
	assert.Equal(t, []float64{1, 0, 0}, NegativePart(data))
}

func TestResampleToAxis(t *testing.T) {
	srcTimes := []float64{0, 1, 2}
	srcValues := []float64{0, 10, 20}

	result := ResampleToAxis(srcTimes, srcValues, []float64{-1, 0.5, 2.5})
	require.Len(t, result, 3)
	assert.Equal(t, 0.0, result[0], "clamps before the source range")
	assert.InDelta(t, 5.0, result[1], 1e-12)
	assert.Equal(t, 20.0, result[2], "clamps after the source range")
}

func TestResampleToAxisDegenerate(t *testing.T) {
	result := ResampleToAxis(nil, nil, []float64{0, 1})
	assert.Equal(t, []float64{0, 0}, result)
}

func TestInterpolateArray(t *testing.T) {
	result := InterpolateArray([]float64{0, 2}, 3)
	assert.Equal(t, []float64{0, 1, 2}, result)

	assert.Empty(t, InterpolateArray(nil, 5))
	assert.Equal(t, []float64{1, 2}, InterpolateArray([]float64{1, 2}, 2))
}
