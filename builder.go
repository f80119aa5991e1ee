package automationx

import (
	"errors"
	"fmt"
	"slices"
)

// ErrRejected is returned by Build when the timeline refuses a scheduled event.
var ErrRejected = errors.New("event rejected by timeline")

// ScheduleBuilder provides a fluent API for scheduling automation with the
// familiar *AtTime method names. The first invalid argument is remembered and
// reported by Build; later calls are ignored.
type ScheduleBuilder struct {
	defaultValue float64
	events       []Event
	err          error
}

// NewScheduleBuilder creates a builder for a parameter with defaultValue.
func NewScheduleBuilder(defaultValue float64) *ScheduleBuilder {
	return &ScheduleBuilder{defaultValue: defaultValue}
}

func (b *ScheduleBuilder) add(method string, e Event, err error) *ScheduleBuilder {
	if b.err != nil {
		return b
	}
	if err != nil {
		b.err = fmt.Errorf("%s (call %d): %w", method, len(b.events), err)
		return b
	}
	b.events = append(b.events, e)
	return b
}

func (b *ScheduleBuilder) SetValueAtTime(value, startTime float64) *ScheduleBuilder {
	e, err := NewSetValue(value, startTime)
	return b.add("SetValueAtTime", e, err)
}

func (b *ScheduleBuilder) LinearRampToValueAtTime(value, endTime float64) *ScheduleBuilder {
	e, err := NewLinearRamp(value, endTime)
	return b.add("LinearRampToValueAtTime", e, err)
}

func (b *ScheduleBuilder) ExponentialRampToValueAtTime(value, endTime float64) *ScheduleBuilder {
	e, err := NewExponentialRamp(value, endTime)
	return b.add("ExponentialRampToValueAtTime", e, err)
}

func (b *ScheduleBuilder) SetTargetAtTime(target, startTime, timeConstant float64) *ScheduleBuilder {
	e, err := NewSetTarget(target, startTime, timeConstant)
	return b.add("SetTargetAtTime", e, err)
}

func (b *ScheduleBuilder) SetValueCurveAtTime(values []float64, startTime, duration float64) *ScheduleBuilder {
	e, err := NewSetValueCurve(values, startTime, duration)
	return b.add("SetValueCurveAtTime", e, err)
}

func (b *ScheduleBuilder) CancelScheduledValues(cancelTime float64) *ScheduleBuilder {
	e, err := NewCancelScheduledValues(cancelTime)
	return b.add("CancelScheduledValues", e, err)
}

func (b *ScheduleBuilder) CancelAndHoldAtTime(cancelTime float64) *ScheduleBuilder {
	e, err := NewCancelAndHold(cancelTime)
	return b.add("CancelAndHoldAtTime", e, err)
}

// Events returns a copy of the scheduled events in call order.
func (b *ScheduleBuilder) Events() []Event {
	return slices.Clone(b.events)
}

// Build replays the scheduled events into a new timeline. It fails on the
// first invalid argument or the first event the timeline rejects.
func (b *ScheduleBuilder) Build() (*Timeline, error) {
	if b.err != nil {
		return nil, b.err
	}
	tl := New(b.defaultValue)
	for i, e := range b.events {
		if !tl.Add(e) {
			return nil, fmt.Errorf("event %d (%s at %g): %w", i, e.Type(), EventTime(e), ErrRejected)
		}
	}
	return tl, nil
}

// Script returns the scheduled events as a serializable script.
func (b *ScheduleBuilder) Script(id string) *Script {
	s := NewScript(id, b.defaultValue)
	for _, e := range b.events {
		s.Add(e)
	}
	return s
}
