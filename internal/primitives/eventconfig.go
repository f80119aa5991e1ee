// EventConfig is the flat, serializable form of an Event used by scripts.
//
// A single Time field carries the variant's ordering time (startTime, endTime or
// cancelTime) and Value carries either the value or the SetTarget target.
package primitives

import (
	"errors"
	"fmt"
	"slices"
)

// EventConfig describes one automation event in a script.
type EventConfig struct {
	Type         EventType `json:"type" yaml:"type"`
	Time         float64   `json:"time" yaml:"time"`
	Value        float64   `json:"value" yaml:"value"`
	TimeConstant float64   `json:"timeConstant,omitempty" yaml:"timeConstant,omitempty"`
	Duration     float64   `json:"duration,omitempty" yaml:"duration,omitempty"`
	Values       []float64 `json:"values,omitempty" yaml:"values,omitempty"`
}

// Event converts the config into an Event through the validating factories.
func (c EventConfig) Event() (Event, error) {
	switch c.Type {
	case TypeSetValue:
		return asEvent(NewSetValue(c.Value, c.Time))
	case TypeLinearRamp:
		return asEvent(NewLinearRamp(c.Value, c.Time))
	case TypeExponentialRamp:
		return asEvent(NewExponentialRamp(c.Value, c.Time))
	case TypeSetTarget:
		return asEvent(NewSetTarget(c.Value, c.Time, c.TimeConstant))
	case TypeSetValueCurve:
		return asEvent(NewSetValueCurve(c.Values, c.Time, c.Duration))
	case TypeCancelAndHold:
		return asEvent(NewCancelAndHold(c.Time))
	case TypeCancelScheduledValues:
		return asEvent(NewCancelScheduledValues(c.Time))
	case "":
		return nil, errors.New("event type is required")
	default:
		return nil, fmt.Errorf("invalid event type %q", c.Type)
	}
}

func asEvent[E Event](e E, err error) (Event, error) {
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Validate checks that the config describes a well-formed event.
func (c EventConfig) Validate() error {
	_, err := c.Event()
	return err
}

// ConfigOf returns the serializable form of e. A ramp's EffectiveStartTime is not
// carried; it is recomputed when the event is inserted again.
func ConfigOf(e Event) EventConfig {
	switch e := e.(type) {
	case SetValue:
		return EventConfig{Type: TypeSetValue, Time: e.StartTime, Value: e.Value}
	case LinearRamp:
		return EventConfig{Type: TypeLinearRamp, Time: e.EndTime, Value: e.Value}
	case ExponentialRamp:
		return EventConfig{Type: TypeExponentialRamp, Time: e.EndTime, Value: e.Value}
	case SetTarget:
		return EventConfig{Type: TypeSetTarget, Time: e.StartTime, Value: e.Target, TimeConstant: e.TimeConstant}
	case SetValueCurve:
		return EventConfig{Type: TypeSetValueCurve, Time: e.StartTime, Duration: e.Duration, Values: slices.Clone(e.Values)}
	case CancelAndHold:
		return EventConfig{Type: TypeCancelAndHold, Time: e.CancelTime}
	case CancelScheduledValues:
		return EventConfig{Type: TypeCancelScheduledValues, Time: e.CancelTime}
	default:
		panic(fmt.Sprintf("primitives: unknown event type %T", e))
	}
}
