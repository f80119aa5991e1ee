package builder

import (
	"math"

	"github.com/comalice/automationx"
)

// Event shortcut
type Event = automationx.Event

// ADSR describes an attack/decay/sustain/release envelope. Times are seconds.
type ADSR struct {
	Attack  float64
	Decay   float64 // time for the decay to cover ~95% of the way to Sustain
	Sustain float64
	Release float64 // time for the release to cover ~95% of the way to Floor
	Peak    float64
	Floor   float64
}

// NoteOn returns the events that start the envelope at t from the value
// current at t. Anything scheduled from t on is cancelled and held first.
func (a ADSR) NoteOn(t, current float64) []Event {
	peakAt := t + a.Attack
	return []Event{
		automationx.CancelAndHold{CancelTime: t},
		automationx.SetValue{Value: current, StartTime: t},
		automationx.LinearRamp{Value: a.Peak, EndTime: peakAt},
		automationx.SetTarget{Target: a.Sustain, StartTime: peakAt, TimeConstant: timeConstant(a.Decay)},
	}
}

// NoteOff returns the events that release the envelope at t from the value
// current at t.
func (a ADSR) NoteOff(t, current float64) []Event {
	return []Event{
		automationx.CancelAndHold{CancelTime: t},
		automationx.SetValue{Value: current, StartTime: t},
		automationx.SetTarget{Target: a.Floor, StartTime: t, TimeConstant: timeConstant(a.Release)},
	}
}

// timeConstant converts a ~95% settle time into a SetTarget time constant.
func timeConstant(settle float64) float64 {
	if settle <= 0 {
		return math.SmallestNonzeroFloat64
	}
	return settle / 3
}

// Sweep moves from one value to another over [start, start+duration].
func Sweep(from, to, start, duration float64, exponential bool) []Event {
	var ramp Event = automationx.LinearRamp{Value: to, EndTime: start + duration}
	if exponential {
		ramp = automationx.ExponentialRamp{Value: to, EndTime: start + duration}
	}
	return []Event{automationx.SetValue{Value: from, StartTime: start}, ramp}
}

// LFOCurve returns n samples of cycles sine periods spanning [lo, hi],
// starting at the midpoint and rising. Use with SetValueCurve.
func LFOCurve(n int, cycles, lo, hi float64) []float64 {
	values := make([]float64, n)
	mid, amp := (lo+hi)/2, (hi-lo)/2
	for i := range values {
		phase := 0.0
		if n > 1 {
			phase = float64(i) / float64(n-1)
		}
		values[i] = mid + amp*math.Sin(2*math.Pi*cycles*phase)
	}
	return values
}

// Steps sets each value in turn, interval seconds apart, starting at start.
func Steps(values []float64, start, interval float64) []Event {
	events := make([]Event, len(values))
	for i, v := range values {
		events[i] = automationx.SetValue{Value: v, StartTime: start + float64(i)*interval}
	}
	return events
}
