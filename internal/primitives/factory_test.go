package primitives

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func TestFactoriesPopulateFields(t *testing.T) {
	sv, err := NewSetValue(2, 1)
	if err != nil || sv != (SetValue{Value: 2, StartTime: 1}) {
		t.Errorf("NewSetValue = %+v, %v", sv, err)
	}
	lr, err := NewLinearRamp(2, 1)
	if err != nil || lr != (LinearRamp{Value: 2, EndTime: 1}) {
		t.Errorf("NewLinearRamp = %+v, %v", lr, err)
	}
	er, err := NewExponentialRamp(2, 1)
	if err != nil || er != (ExponentialRamp{Value: 2, EndTime: 1}) {
		t.Errorf("NewExponentialRamp = %+v, %v", er, err)
	}
	st, err := NewSetTarget(2, 1, 3)
	if err != nil || st != (SetTarget{Target: 2, StartTime: 1, TimeConstant: 3}) {
		t.Errorf("NewSetTarget = %+v, %v", st, err)
	}
	ch, err := NewCancelAndHold(2)
	if err != nil || ch.CancelTime != 2 {
		t.Errorf("NewCancelAndHold = %+v, %v", ch, err)
	}
	cs, err := NewCancelScheduledValues(11)
	if err != nil || cs.CancelTime != 11 {
		t.Errorf("NewCancelScheduledValues = %+v, %v", cs, err)
	}
}

func TestNewSetValueCurveClonesValues(t *testing.T) {
	values := []float64{1, 2, 3}
	c, err := NewSetValueCurve(values, 1, 4)
	if err != nil {
		t.Fatal(err)
	}
	if c.StartTime != 1 || c.Duration != 4 || !slices.Equal(c.Values, values) {
		t.Fatalf("got %+v", c)
	}
	values[0] = 99
	if c.Values[0] != 1 {
		t.Error("curve shares its backing array with the caller")
	}
}

func TestFactoriesRejectMalformedInput(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"setValue NaN value", second(NewSetValue(nan, 1)), ErrNonFinite},
		{"setValue infinite time", second(NewSetValue(1, inf)), ErrNonFinite},
		{"setValue negative time", second(NewSetValue(1, -1)), ErrNegativeTime},
		{"linearRamp NaN value", second(NewLinearRamp(nan, 1)), ErrNonFinite},
		{"exponentialRamp negative time", second(NewExponentialRamp(1, -0.5)), ErrNegativeTime},
		{"setTarget zero time constant", second(NewSetTarget(1, 1, 0)), ErrNonPositiveTimeConstant},
		{"setTarget negative time constant", second(NewSetTarget(1, 1, -2)), ErrNonPositiveTimeConstant},
		{"setValueCurve empty", second(NewSetValueCurve(nil, 1, 1)), ErrCurveTooShort},
		{"setValueCurve single", second(NewSetValueCurve([]float64{1}, 1, 1)), ErrCurveTooShort},
		{"setValueCurve NaN sample", second(NewSetValueCurve([]float64{1, nan}, 1, 1)), ErrNonFinite},
		{"setValueCurve zero duration", second(NewSetValueCurve([]float64{1, 2}, 1, 0)), ErrNonPositiveDuration},
		{"cancelAndHold negative", second(NewCancelAndHold(-1)), ErrNegativeTime},
		{"cancelScheduledValues NaN", second(NewCancelScheduledValues(nan)), ErrNonFinite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.want) {
				t.Errorf("got %v want %v", tt.err, tt.want)
			}
		})
	}
}

func TestExponentialRampAcceptsZeroTarget(t *testing.T) {
	if _, err := NewExponentialRamp(0, 10); err != nil {
		t.Errorf("zero target rejected: %v", err)
	}
}

func second[T any](_ T, err error) error {
	return err
}
