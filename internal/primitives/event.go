// Event provides the immutable automation event variants.
//
// An Event is one of seven value types. Five of them produce values and are stored
// by a timeline; CancelAndHold and CancelScheduledValues are commands that are
// executed on insertion and never stored.
//
// # Immutability
//
// Event fields are exported for convenience in read-only contexts, but consumers MUST
// NOT modify them after construction. The only field the engine ever rewrites is a
// ramp's EffectiveStartTime, and it does so on its own copy during insertion.
package primitives

import "fmt"

// EventType tags an Event variant. The string forms match the script format.
type EventType string

const (
	TypeSetValue              EventType = "setValue"
	TypeLinearRamp            EventType = "linearRampToValue"
	TypeExponentialRamp       EventType = "exponentialRampToValue"
	TypeSetTarget             EventType = "setTarget"
	TypeSetValueCurve         EventType = "setValueCurve"
	TypeCancelAndHold         EventType = "cancelAndHold"
	TypeCancelScheduledValues EventType = "cancelScheduledValues"
)

// Event is the closed set of automation variants.
type Event interface {
	Type() EventType
	isEvent()
}

// SetValue jumps to Value at StartTime.
type SetValue struct {
	Value     float64
	StartTime float64
}

// LinearRamp interpolates linearly from the preceding value to Value, arriving at EndTime.
// EffectiveStartTime is fixed when the ramp is inserted into a timeline.
type LinearRamp struct {
	Value              float64
	EndTime            float64
	EffectiveStartTime float64
}

// ExponentialRamp interpolates exponentially from the preceding value to Value, arriving at EndTime.
type ExponentialRamp struct {
	Value              float64
	EndTime            float64
	EffectiveStartTime float64
}

// SetTarget decays exponentially toward Target from StartTime onwards.
type SetTarget struct {
	Target       float64
	StartTime    float64
	TimeConstant float64
}

// SetValueCurve plays Values evenly spread over [StartTime, StartTime+Duration).
type SetValueCurve struct {
	Values    []float64
	StartTime float64
	Duration  float64
}

// CancelAndHold cancels everything from CancelTime on while holding the value reached there.
type CancelAndHold struct {
	CancelTime float64
}

// CancelScheduledValues cancels everything from CancelTime on.
type CancelScheduledValues struct {
	CancelTime float64
}

func (SetValue) Type() EventType              { return TypeSetValue }
func (LinearRamp) Type() EventType            { return TypeLinearRamp }
func (ExponentialRamp) Type() EventType       { return TypeExponentialRamp }
func (SetTarget) Type() EventType             { return TypeSetTarget }
func (SetValueCurve) Type() EventType         { return TypeSetValueCurve }
func (CancelAndHold) Type() EventType         { return TypeCancelAndHold }
func (CancelScheduledValues) Type() EventType { return TypeCancelScheduledValues }

func (SetValue) isEvent()              {}
func (LinearRamp) isEvent()            {}
func (ExponentialRamp) isEvent()       {}
func (SetTarget) isEvent()             {}
func (SetValueCurve) isEvent()         {}
func (CancelAndHold) isEvent()         {}
func (CancelScheduledValues) isEvent() {}

// EndTime returns the time the curve stops playing.
func (c SetValueCurve) EndTime() float64 {
	return c.StartTime + c.Duration
}

// EventTime returns the time that orders e in a timeline.
func EventTime(e Event) float64 {
	switch e := e.(type) {
	case SetValue:
		return e.StartTime
	case LinearRamp:
		return e.EndTime
	case ExponentialRamp:
		return e.EndTime
	case SetTarget:
		return e.StartTime
	case SetValueCurve:
		return e.StartTime
	case CancelAndHold:
		return e.CancelTime
	case CancelScheduledValues:
		return e.CancelTime
	default:
		panic(fmt.Sprintf("primitives: unknown event type %T", e))
	}
}

// IsCommand reports whether e is a cancellation command rather than a stored event.
func IsCommand(e Event) bool {
	switch e.(type) {
	case CancelAndHold, CancelScheduledValues:
		return true
	default:
		return false
	}
}

// IsRamp reports whether e is a linear or exponential ramp.
func IsRamp(e Event) bool {
	switch e.(type) {
	case LinearRamp, ExponentialRamp:
		return true
	default:
		return false
	}
}
