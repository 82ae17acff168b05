package common

// Interpolate performs linear interpolation at a fractional index
func Interpolate(data []float64, index float64) float64 {
	if len(data) == 0 {
		return 0.0
	}

	if index <= 0 {
		return data[0]
	}
	if index >= float64(len(data)-1) {
		return data[len(data)-1]
	}

	i := int(index)
	frac := index - float64(i)

	return data[i] + frac*(data[i+1]-data[i])
}

// ResampleToAxis linearly interpolates a curve sampled at srcTimes onto
// dstTimes. Curves produced with different native hops must share a time axis
// before they can be combined; this is the alignment step. Destination times
// outside the source range clamp to the nearest endpoint value.
func ResampleToAxis(srcTimes, srcValues, dstTimes []float64) []float64 {
	if len(srcTimes) == 0 || len(srcTimes) != len(srcValues) {
		return make([]float64, len(dstTimes))
	}

	result := make([]float64, len(dstTimes))
	for i, t := range dstTimes {
		result[i] = interpolateAt(srcTimes, srcValues, t)
	}

	return result
}

func interpolateAt(times, values []float64, t float64) float64 {
	n := len(times)
	if t <= times[0] {
		return values[0]
	}
	if t >= times[n-1] {
		return values[n-1]
	}

	// Binary search for the interval containing t
	lo, hi := 0, n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if times[mid] <= t {
			lo = mid
		} else {
			hi = mid
		}
	}

	span := times[hi] - times[lo]
	if span <= 0 {
		return values[lo]
	}

	frac := (t - times[lo]) / span
	return values[lo] + frac*(values[hi]-values[lo])
}

// InterpolateArray resamples a curve to a new length using linear interpolation
func InterpolateArray(data []float64, newLength int) []float64 {
	if len(data) == 0 || newLength <= 0 {
		return []float64{}
	}

	if newLength == len(data) {
		result := make([]float64, len(data))
		copy(result, data)
		return result
	}

	result := make([]float64, newLength)
	if newLength == 1 {
		result[0] = data[0]
		return result
	}

	ratio := float64(len(data)-1) / float64(newLength-1)
	for i := range result {
		result[i] = Interpolate(data, float64(i)*ratio)
	}

	return result
}
