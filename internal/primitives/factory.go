package primitives

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

var (
	ErrNonFinite               = errors.New("value is not finite")
	ErrNegativeTime            = errors.New("time is negative")
	ErrCurveTooShort           = errors.New("curve needs at least two values")
	ErrNonPositiveDuration     = errors.New("duration must be positive")
	ErrNonPositiveTimeConstant = errors.New("time constant must be positive")
)

func checkFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s %v: %w", name, v, ErrNonFinite)
	}
	return nil
}

func checkTime(name string, t float64) error {
	if err := checkFinite(name, t); err != nil {
		return err
	}
	if t < 0 {
		return fmt.Errorf("%s %v: %w", name, t, ErrNegativeTime)
	}
	return nil
}

// NewSetValue creates a SetValue event.
func NewSetValue(value, startTime float64) (SetValue, error) {
	if err := checkFinite("value", value); err != nil {
		return SetValue{}, err
	}
	if err := checkTime("startTime", startTime); err != nil {
		return SetValue{}, err
	}
	return SetValue{Value: value, StartTime: startTime}, nil
}

// NewLinearRamp creates a LinearRamp event ending at endTime.
func NewLinearRamp(value, endTime float64) (LinearRamp, error) {
	if err := checkFinite("value", value); err != nil {
		return LinearRamp{}, err
	}
	if err := checkTime("endTime", endTime); err != nil {
		return LinearRamp{}, err
	}
	return LinearRamp{Value: value, EndTime: endTime}, nil
}

// NewExponentialRamp creates an ExponentialRamp event ending at endTime.
// A zero or sign-flipping ramp is accepted; its evaluation yields whatever the
// arithmetic yields.
func NewExponentialRamp(value, endTime float64) (ExponentialRamp, error) {
	if err := checkFinite("value", value); err != nil {
		return ExponentialRamp{}, err
	}
	if err := checkTime("endTime", endTime); err != nil {
		return ExponentialRamp{}, err
	}
	return ExponentialRamp{Value: value, EndTime: endTime}, nil
}

// NewSetTarget creates a SetTarget event.
func NewSetTarget(target, startTime, timeConstant float64) (SetTarget, error) {
	if err := checkFinite("target", target); err != nil {
		return SetTarget{}, err
	}
	if err := checkTime("startTime", startTime); err != nil {
		return SetTarget{}, err
	}
	if err := checkFinite("timeConstant", timeConstant); err != nil {
		return SetTarget{}, err
	}
	if timeConstant <= 0 {
		return SetTarget{}, fmt.Errorf("timeConstant %v: %w", timeConstant, ErrNonPositiveTimeConstant)
	}
	return SetTarget{Target: target, StartTime: startTime, TimeConstant: timeConstant}, nil
}

// NewSetValueCurve creates a SetValueCurve event. values is copied.
func NewSetValueCurve(values []float64, startTime, duration float64) (SetValueCurve, error) {
	if len(values) < 2 {
		return SetValueCurve{}, fmt.Errorf("curve of %d values: %w", len(values), ErrCurveTooShort)
	}
	for i, v := range values {
		if err := checkFinite(fmt.Sprintf("values[%d]", i), v); err != nil {
			return SetValueCurve{}, err
		}
	}
	if err := checkTime("startTime", startTime); err != nil {
		return SetValueCurve{}, err
	}
	if err := checkFinite("duration", duration); err != nil {
		return SetValueCurve{}, err
	}
	if duration <= 0 {
		return SetValueCurve{}, fmt.Errorf("duration %v: %w", duration, ErrNonPositiveDuration)
	}
	return SetValueCurve{Values: slices.Clone(values), StartTime: startTime, Duration: duration}, nil
}

// NewCancelAndHold creates a CancelAndHold command.
func NewCancelAndHold(cancelTime float64) (CancelAndHold, error) {
	if err := checkTime("cancelTime", cancelTime); err != nil {
		return CancelAndHold{}, err
	}
	return CancelAndHold{CancelTime: cancelTime}, nil
}

// NewCancelScheduledValues creates a CancelScheduledValues command.
func NewCancelScheduledValues(cancelTime float64) (CancelScheduledValues, error) {
	if err := checkTime("cancelTime", cancelTime); err != nil {
		return CancelScheduledValues{}, err
	}
	return CancelScheduledValues{CancelTime: cancelTime}, nil
}
