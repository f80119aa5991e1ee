// Package core provides the timeline tier of the automation engine.
// This includes ordered event storage, insertion with cancellation, history
// compaction and evaluation.
// Dependencies: internal/primitives
// Stdlib-only implementation.

package core

import (
	"iter"
	"slices"

	"github.com/comalice/automationx/internal/primitives"
)

// Scheduler is the operation set shared by Timeline and its decorators.
type Scheduler interface {
	Add(e primitives.Event) bool
	Flush(time float64)
	Value(time float64) float64
	All() iter.Seq[primitives.Event]
}

// EventSource supplies events produced elsewhere (a control thread, a script player).
type EventSource interface {
	Events() <-chan primitives.Event
}

// Timeline is the ordered event list of one automated parameter.
// Events are kept sorted by primitives.EventTime; equal times keep insertion order.
// Not safe for concurrent use: one owner calls Add, Flush and Value.
type Timeline struct {
	defaultValue float64
	events       []primitives.Event
}

var _ Scheduler = (*Timeline)(nil)

// NewTimeline creates an empty timeline that evaluates to defaultValue until its
// first event.
func NewTimeline(defaultValue float64) *Timeline {
	return &Timeline{defaultValue: defaultValue}
}

// DefaultValue returns the value in force before any stored event.
func (t *Timeline) DefaultValue() float64 {
	return t.defaultValue
}

// Len returns the number of stored events.
func (t *Timeline) Len() int {
	return len(t.events)
}

// All yields the stored events in timeline order. Each call starts over from the
// current contents. The timeline must not be mutated during iteration.
func (t *Timeline) All() iter.Seq[primitives.Event] {
	return func(yield func(primitives.Event) bool) {
		for _, e := range t.events {
			if !yield(e) {
				return
			}
		}
	}
}

// Add schedules e. Value-producing events return false, leaving the timeline
// untouched, when they would overlap a curve or a curve would overlap them.
// Cancellation commands are executed and always return true.
func (t *Timeline) Add(e primitives.Event) bool {
	switch e := e.(type) {
	case primitives.CancelScheduledValues:
		t.cancelScheduledValues(e.CancelTime)
		return true
	case primitives.CancelAndHold:
		t.cancelAndHold(e.CancelTime)
		return true
	}
	return t.insert(e)
}

func (t *Timeline) insert(e primitives.Event) bool {
	time := primitives.EventTime(e)
	i := t.upperBound(time)

	if c, ok := e.(primitives.SetValueCurve); ok {
		if i > 0 && primitives.EventTime(t.events[i-1]) == time {
			return false
		}
		if i < len(t.events) && c.EndTime() > primitives.EventTime(t.events[i]) {
			return false
		}
	}
	if i > 0 {
		if prev, ok := t.events[i-1].(primitives.SetValueCurve); ok && prev.EndTime() > time {
			return false
		}
	}

	switch r := e.(type) {
	case primitives.LinearRamp:
		r.EffectiveStartTime = t.extentEnd(i - 1)
		e = r
	case primitives.ExponentialRamp:
		r.EffectiveStartTime = t.extentEnd(i - 1)
		e = r
	}

	t.events = slices.Insert(t.events, i, e)
	return true
}

// extentEnd returns the time event j stops shaping the value on its own:
// the end of a curve, the ordering time of anything else, 0 before the first event.
func (t *Timeline) extentEnd(j int) float64 {
	if j < 0 {
		return 0
	}
	if c, ok := t.events[j].(primitives.SetValueCurve); ok {
		return c.EndTime()
	}
	return primitives.EventTime(t.events[j])
}

// upperBound returns the index of the first event ordered strictly after time.
func (t *Timeline) upperBound(time float64) int {
	lo, hi := 0, len(t.events)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if primitives.EventTime(t.events[mid]) > time {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// lowerBound returns the index of the first event ordered at or after time.
func (t *Timeline) lowerBound(time float64) int {
	lo, hi := 0, len(t.events)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if primitives.EventTime(t.events[mid]) >= time {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// truncate drops events[i:].
func (t *Timeline) truncate(i int) {
	clear(t.events[i:])
	t.events = t.events[:i]
}

// Script exports the stored events as a script. Replaying it recomputes ramp
// start times from the replayed predecessors.
func (t *Timeline) Script(id string) primitives.Script {
	s := primitives.Script{ID: id, DefaultValue: t.defaultValue}
	for _, e := range t.events {
		s.Events = append(s.Events, primitives.ConfigOf(e))
	}
	return s
}
