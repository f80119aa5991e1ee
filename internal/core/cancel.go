package core

import (
	"slices"

	"github.com/comalice/automationx/internal/primitives"
)

// cancelScheduledValues drops every event at or after cancelTime, plus a curve
// that is still playing at cancelTime. Nothing replaces them.
func (t *Timeline) cancelScheduledValues(cancelTime float64) {
	i := slices.IndexFunc(t.events, func(e primitives.Event) bool {
		if c, ok := e.(primitives.SetValueCurve); ok {
			return c.EndTime() >= cancelTime
		}
		return primitives.EventTime(e) >= cancelTime
	})
	if i >= 0 {
		t.truncate(i)
	}
}

// cancelAndHold drops every event at or after cancelTime and then freezes
// whatever was in progress at cancelTime:
//   - a ramp ending later is cut to end at cancelTime on the value reached there
//   - a curve still playing is shortened and resampled
//   - a trailing SetTarget decay is pinned by a SetValue at cancelTime
func (t *Timeline) cancelAndHold(cancelTime float64) {
	i := t.lowerBound(cancelTime)

	// A ramp crossing the cut ends on its own value there. Events sitting at
	// cancelTime are cancelled and must not shape it.
	if i < len(t.events) {
		switch r := t.events[i].(type) {
		case primitives.LinearRamp:
			if r.EffectiveStartTime < cancelTime {
				held := linearRampValue(cancelTime, t.rampOrigin(i), r)
				t.truncate(i)
				t.events = append(t.events, primitives.LinearRamp{
					Value:              held,
					EndTime:            cancelTime,
					EffectiveStartTime: r.EffectiveStartTime,
				})
				return
			}
		case primitives.ExponentialRamp:
			if r.EffectiveStartTime < cancelTime {
				held := exponentialRampValue(cancelTime, t.rampOrigin(i), r)
				t.truncate(i)
				t.events = append(t.events, primitives.ExponentialRamp{
					Value:              held,
					EndTime:            cancelTime,
					EffectiveStartTime: r.EffectiveStartTime,
				})
				return
			}
		}
	}

	t.truncate(i)
	if len(t.events) == 0 {
		return
	}
	last := len(t.events) - 1
	switch l := t.events[last].(type) {
	case primitives.SetValueCurve:
		if l.EndTime() > cancelTime {
			duration := cancelTime - l.StartTime
			t.events[last] = primitives.SetValueCurve{
				Values:    primitives.ResampleCurve(l.Values, l.Duration, duration),
				StartTime: l.StartTime,
				Duration:  duration,
			}
		}
	case primitives.SetTarget:
		t.events = append(t.events, primitives.SetValue{Value: t.Value(cancelTime), StartTime: cancelTime})
	}
}
