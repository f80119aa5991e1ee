package primitives

import (
	"slices"
	"testing"
)

func TestSampleCurve(t *testing.T) {
	values := []float64{0, 10, 30}
	tests := []struct {
		position float64
		want     float64
	}{
		{0, 0},
		{0.25, 5},
		{0.5, 10},
		{0.75, 20},
		{1, 30},
		{1.5, 30},
		{-1, 0},
	}
	for _, tt := range tests {
		if got := SampleCurve(values, tt.position); got != tt.want {
			t.Errorf("SampleCurve(%v) = %v want %v", tt.position, got, tt.want)
		}
	}
}

func TestResampleCurve(t *testing.T) {
	tests := []struct {
		name        string
		values      []float64
		oldDuration float64
		newDuration float64
		want        []float64
	}{
		{"exactly fits", []float64{6, 7, 8}, 6, 3, []float64{6, 7}},
		{"interpolated", []float64{6, 7, 8, 9}, 6, 3, []float64{6, 6.75, 7.5}},
		{"two values sliced", []float64{6, 8}, 2, 1, []float64{6, 7}},
		{"two values interpolated", []float64{6, 8}, 2, 1.5, []float64{6, 7.5}},
		{"three values interpolated", []float64{6, 7, 8}, 2, 1.5, []float64{6, 6.75, 7.5}},
		{"zero duration", []float64{6, 7, 8}, 2, 0, []float64{6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResampleCurve(tt.values, tt.oldDuration, tt.newDuration)
			if !slices.Equal(got, tt.want) {
				t.Errorf("got %v want %v", got, tt.want)
			}
		})
	}
}

func TestResampleCurveIdentity(t *testing.T) {
	curves := [][]float64{
		{1, 2},
		{0.1, 0.7, -3, 12.5},
		{5, 4, 3, 2, 1, 0, -1},
	}
	for _, values := range curves {
		for _, d := range []float64{0.3, 1, 2.7, 1000} {
			got := ResampleCurve(values, d, d)
			if !slices.Equal(got, values) {
				t.Errorf("ResampleCurve(%v, %v, %v) = %v", values, d, d, got)
			}
		}
	}
}

func TestResampleCurveExactSlice(t *testing.T) {
	values := []float64{1, 3, 2, 8, 5}
	// 4 intervals over 8s; 4s covers exactly two of them.
	got := ResampleCurve(values, 8, 4)
	if !slices.Equal(got, values[:3]) {
		t.Errorf("got %v want %v", got, values[:3])
	}
}

func TestResampleCurveDoesNotModifyInput(t *testing.T) {
	values := []float64{6, 7, 8, 9}
	ResampleCurve(values, 6, 3)
	if !slices.Equal(values, []float64{6, 7, 8, 9}) {
		t.Errorf("input modified: %v", values)
	}
}
