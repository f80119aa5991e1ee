// Package analysis inspects rendered parameter blocks in the frequency domain.
// A parameter that jumps between values produces broadband "zipper" energy;
// a smooth ramp does not.
package analysis

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/ktye/fft"
)

// Analyzer computes Hann-windowed magnitude spectra of a fixed size.
type Analyzer struct {
	size int
	fft  fft.FFT
	env  []float64
	buf  []complex128
}

// NewAnalyzer creates an Analyzer. size must be a power of two.
func NewAnalyzer(size int) (*Analyzer, error) {
	f, err := fft.New(size)
	if err != nil {
		return nil, fmt.Errorf("fft size %d: %w", size, err)
	}
	env := make([]float64, size)
	for i := range env {
		env[i] = (1 - math.Cos(2*math.Pi*float64(i)/float64(size))) / 2
	}
	return &Analyzer{
		size: size,
		fft:  f,
		env:  env,
		buf:  make([]complex128, size),
	}, nil
}

// Size returns the transform length.
func (a *Analyzer) Size() int {
	return a.size
}

// Magnitudes returns size/2+1 bin magnitudes of the last size samples,
// zero-padded at the front when fewer are given. The mean is removed first so
// the DC bin reflects only windowing leakage.
func (a *Analyzer) Magnitudes(samples []float64) []float64 {
	if len(samples) > a.size {
		samples = samples[len(samples)-a.size:]
	}
	mean := 0.0
	for _, x := range samples {
		mean += x
	}
	if len(samples) > 0 {
		mean /= float64(len(samples))
	}

	pad := a.size - len(samples)
	for i := range a.buf {
		x := 0.0
		if i >= pad {
			x = samples[i-pad] - mean
		}
		a.buf[i] = complex(x*a.env[i], 0)
	}
	a.buf = a.fft.Transform(a.buf)

	mags := make([]float64, a.size/2+1)
	for i := range mags {
		mags[i] = cmplx.Abs(a.buf[i]) / float64(a.size)
	}
	return mags
}

// HighFrequencyRatio returns the share of spectral energy at or above
// cutoffBin, ignoring DC. A silent or constant signal yields 0.
func (a *Analyzer) HighFrequencyRatio(samples []float64, cutoffBin int) float64 {
	mags := a.Magnitudes(samples)
	var total, high float64
	for i := 1; i < len(mags); i++ {
		e := mags[i] * mags[i]
		total += e
		if i >= cutoffBin {
			high += e
		}
	}
	if total == 0 {
		return 0
	}
	return high / total
}

// PeakBin returns the non-DC bin with the largest magnitude.
func (a *Analyzer) PeakBin(samples []float64) int {
	mags := a.Magnitudes(samples)
	peak := 1
	for i := 2; i < len(mags); i++ {
		if mags[i] > mags[peak] {
			peak = i
		}
	}
	return peak
}

// BinFrequency converts a bin index to Hz.
func (a *Analyzer) BinFrequency(bin int, sampleRate float64) float64 {
	return float64(bin) * sampleRate / float64(a.size)
}
