package primitives

import "math"

// SampleCurve evaluates values at position in [0, 1] by piecewise-linear interpolation
// between evenly spaced samples. Positions outside [0, 1] clamp to the end samples.
func SampleCurve(values []float64, position float64) float64 {
	last := len(values) - 1
	idx := position * float64(last)
	if idx <= 0 {
		return values[0]
	}
	k := math.Floor(idx)
	i := int(k)
	if i >= last {
		return values[last]
	}
	f := idx - k
	return values[i] + f*(values[i+1]-values[i])
}

// ResampleCurve returns the prefix of a curve lasting oldDuration that covers only
// newDuration, resampled so that every output sample lies on the original curve.
// The first sample is always values[0]; the spacing is never coarser than the
// original's.
func ResampleCurve(values []float64, oldDuration, newDuration float64) []float64 {
	n := len(values)
	m := int(math.Ceil(newDuration/oldDuration*float64(n-1))) + 1
	if m < 1 {
		m = 1
	}
	out := make([]float64, m)
	if m == 1 {
		out[0] = values[0]
		return out
	}

	// Fractional index advance per output sample; exactly 1 for the identity and
	// exact-slice cases.
	step := (float64(n-1) * newDuration) / (float64(m-1) * oldDuration)
	for i := range out {
		idx := float64(i) * step
		lo := math.Floor(idx)
		k := int(lo)
		if k >= n-1 {
			out[i] = values[n-1]
			continue
		}
		f := idx - lo
		if f == 0 {
			out[i] = values[k]
			continue
		}
		out[i] = values[k] + f*(values[k+1]-values[k])
	}
	return out
}
