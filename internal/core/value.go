package core

import (
	"math"

	"github.com/comalice/automationx/internal/primitives"
)

// Value evaluates the timeline at time. It never mutates or allocates.
//
// The governing event is the last one ordered at or before time, unless the next
// event is a ramp that has already started, in which case the ramp interpolates
// from its predecessor's value. A curve that is still playing always governs.
// Ramps and curves hold their final value; a SetTarget keeps decaying forever.
func (t *Timeline) Value(time float64) float64 {
	n := len(t.events)
	if n == 0 {
		return t.defaultValue
	}
	i := t.upperBound(time)

	if i > 0 {
		if c, ok := t.events[i-1].(primitives.SetValueCurve); ok && time < c.EndTime() {
			return curveValue(time, c)
		}
	}

	if i < n {
		switch r := t.events[i].(type) {
		case primitives.LinearRamp:
			if r.EffectiveStartTime <= time {
				return linearRampValue(time, t.rampOrigin(i), r)
			}
		case primitives.ExponentialRamp:
			if r.EffectiveStartTime <= time {
				return exponentialRampValue(time, t.rampOrigin(i), r)
			}
		}
	}

	return t.heldValue(i-1, time)
}

// heldValue returns what event j produces at time when nothing after it intervenes.
// Before the first event that is the default value.
func (t *Timeline) heldValue(j int, time float64) float64 {
	if j < 0 {
		return t.defaultValue
	}
	switch e := t.events[j].(type) {
	case primitives.SetValue:
		return e.Value
	case primitives.LinearRamp:
		return e.Value
	case primitives.ExponentialRamp:
		return e.Value
	case primitives.SetValueCurve:
		if time < e.EndTime() {
			return curveValue(time, e)
		}
		return e.Values[len(e.Values)-1]
	case primitives.SetTarget:
		return targetValue(time, t.heldValue(j-1, e.StartTime), e)
	default:
		return t.defaultValue
	}
}

// rampOrigin returns the value the ramp at index i starts from. A SetTarget
// predecessor contributes the value in force at its own start.
func (t *Timeline) rampOrigin(i int) float64 {
	if i == 0 {
		return t.defaultValue
	}
	if st, ok := t.events[i-1].(primitives.SetTarget); ok {
		return t.heldValue(i-2, st.StartTime)
	}
	return t.heldValue(i-1, t.extentEnd(i-1))
}

func rampFraction(time, from, to float64) float64 {
	f := (time - from) / (to - from)
	return min(max(f, 0), 1)
}

func linearRampValue(time, start float64, r primitives.LinearRamp) float64 {
	if time >= r.EndTime {
		return r.Value
	}
	f := rampFraction(time, r.EffectiveStartTime, r.EndTime)
	return start + f*(r.Value-start)
}

// exponentialRampValue is NaN or infinite when start is zero or its sign differs
// from the target's.
func exponentialRampValue(time, start float64, r primitives.ExponentialRamp) float64 {
	if time >= r.EndTime {
		return r.Value
	}
	f := rampFraction(time, r.EffectiveStartTime, r.EndTime)
	return start * math.Pow(r.Value/start, f)
}

func targetValue(time, start float64, e primitives.SetTarget) float64 {
	if time == e.StartTime {
		return start
	}
	return e.Target + (start-e.Target)*math.Exp((e.StartTime-time)/e.TimeConstant)
}

func curveValue(time float64, c primitives.SetValueCurve) float64 {
	return primitives.SampleCurve(c.Values, (time-c.StartTime)/c.Duration)
}
