package builder

import (
	"math"
	"testing"

	"github.com/comalice/automationx"
)

func apply(tl *automationx.Timeline, events []Event) {
	for _, e := range events {
		tl.Add(e)
	}
}

func TestADSR(t *testing.T) {
	env := ADSR{Attack: 0.5, Decay: 0.3, Sustain: 0.5, Release: 1.5, Peak: 1, Floor: 0}
	tl := automationx.New(0)

	apply(tl, env.NoteOn(1, tl.Value(1)))
	if got := tl.Value(1.25); got != 0.5 {
		t.Errorf("mid-attack Value = %v, want 0.5", got)
	}
	if got := tl.Value(1.5); got != 1 {
		t.Errorf("peak Value = %v, want 1", got)
	}
	if got := tl.Value(1.5 + 0.3); math.Abs(got-(0.5+0.5*math.Exp(-3))) > 1e-12 {
		t.Errorf("after decay Value = %v, want ~sustain", got)
	}

	// release in the middle of the decay starts from the decayed value
	cur := tl.Value(1.6)
	apply(tl, env.NoteOff(1.6, cur))
	if got := tl.Value(1.6); got != cur {
		t.Errorf("Value at release = %v, want %v", got, cur)
	}
	if got := tl.Value(10); got > 1e-3 {
		t.Errorf("released Value = %v, want ~0", got)
	}

	// retrigger during release ramps from the current value
	cur = tl.Value(2)
	apply(tl, env.NoteOn(2, cur))
	if got := tl.Value(2); got != cur {
		t.Errorf("Value at retrigger = %v, want %v", got, cur)
	}
	if got := tl.Value(2.5); got != 1 {
		t.Errorf("retrigger peak = %v, want 1", got)
	}
}

func TestSweep(t *testing.T) {
	tl := automationx.New(0)
	apply(tl, Sweep(100, 400, 1, 2, true))
	if got := tl.Value(2); got != 200 {
		t.Errorf("exponential sweep midpoint = %v, want 200", got)
	}

	tl = automationx.New(0)
	apply(tl, Sweep(100, 400, 1, 2, false))
	if got := tl.Value(2); got != 250 {
		t.Errorf("linear sweep midpoint = %v, want 250", got)
	}
}

func TestLFOCurve(t *testing.T) {
	v := LFOCurve(5, 1, 0, 2)
	want := []float64{1, 2, 1, 0, 1}
	for i := range want {
		if math.Abs(v[i]-want[i]) > 1e-12 {
			t.Errorf("LFOCurve[%d] = %v, want %v", i, v[i], want[i])
		}
	}
	if _, err := automationx.NewSetValueCurve(v, 0, 1); err != nil {
		t.Errorf("LFOCurve should be a valid curve: %v", err)
	}
}

func TestSteps(t *testing.T) {
	tl := automationx.New(0)
	apply(tl, Steps([]float64{3, 1, 2}, 1, 0.5))
	for _, tt := range []struct{ at, want float64 }{{0.5, 0}, {1, 3}, {1.75, 1}, {2, 2}} {
		if got := tl.Value(tt.at); got != tt.want {
			t.Errorf("Value(%v) = %v, want %v", tt.at, got, tt.want)
		}
	}
}
