// Package automationx schedules and evaluates parameter automation: a
// timeline of value changes, ramps, exponential approaches and sampled curves
// that defines a parameter's value at any time.
//
//	tl := automationx.New(1)
//	tl.Add(automationx.SetValue{Value: 0, StartTime: 0})
//	tl.Add(automationx.LinearRamp{Value: 1, EndTime: 2})
//	v := tl.Value(0.5) // 0.25
//
// Use package realtime to render a timeline in sample blocks.
package automationx

import (
	"github.com/comalice/automationx/internal/core"
	"github.com/comalice/automationx/internal/primitives"
)

type (
	Event     = primitives.Event
	EventType = primitives.EventType

	SetValue              = primitives.SetValue
	LinearRamp            = primitives.LinearRamp
	ExponentialRamp       = primitives.ExponentialRamp
	SetTarget             = primitives.SetTarget
	SetValueCurve         = primitives.SetValueCurve
	CancelAndHold         = primitives.CancelAndHold
	CancelScheduledValues = primitives.CancelScheduledValues

	Script      = primitives.Script
	EventConfig = primitives.EventConfig

	Timeline    = core.Timeline
	Scheduler   = core.Scheduler
	EventSource = core.EventSource
)

const (
	TypeSetValue              = primitives.TypeSetValue
	TypeLinearRamp            = primitives.TypeLinearRamp
	TypeExponentialRamp       = primitives.TypeExponentialRamp
	TypeSetTarget             = primitives.TypeSetTarget
	TypeSetValueCurve         = primitives.TypeSetValueCurve
	TypeCancelAndHold         = primitives.TypeCancelAndHold
	TypeCancelScheduledValues = primitives.TypeCancelScheduledValues
)

var (
	ErrNonFinite               = primitives.ErrNonFinite
	ErrNegativeTime            = primitives.ErrNegativeTime
	ErrCurveTooShort           = primitives.ErrCurveTooShort
	ErrNonPositiveDuration     = primitives.ErrNonPositiveDuration
	ErrNonPositiveTimeConstant = primitives.ErrNonPositiveTimeConstant
)

var (
	NewSetValue              = primitives.NewSetValue
	NewLinearRamp            = primitives.NewLinearRamp
	NewExponentialRamp       = primitives.NewExponentialRamp
	NewSetTarget             = primitives.NewSetTarget
	NewSetValueCurve         = primitives.NewSetValueCurve
	NewCancelAndHold         = primitives.NewCancelAndHold
	NewCancelScheduledValues = primitives.NewCancelScheduledValues

	EventTime     = primitives.EventTime
	SampleCurve   = primitives.SampleCurve
	ResampleCurve = primitives.ResampleCurve
	NewScript     = primitives.NewScript
)

// New creates an empty timeline that evaluates to defaultValue.
func New(defaultValue float64) *Timeline {
	return core.NewTimeline(defaultValue)
}

// NewFromScript validates and replays s. Events the timeline refused are
// returned alongside it.
func NewFromScript(s Script) (*Timeline, []Event, error) {
	return core.NewTimelineFromScript(s)
}
