package automationx_test

import (
	"errors"
	"math"
	"reflect"
	"slices"
	"testing"

	. "github.com/comalice/automationx"
)

func TestTimelineQuickStart(t *testing.T) {
	tl := New(1)
	tl.Add(SetValue{Value: 0, StartTime: 0})
	tl.Add(LinearRamp{Value: 1, EndTime: 2})

	if got := tl.Value(0.5); got != 0.25 {
		t.Errorf("Value(0.5) = %v, want 0.25", got)
	}
	if got := tl.Value(5); got != 1 {
		t.Errorf("Value(5) = %v, want 1", got)
	}
}

func TestScheduleBuilder(t *testing.T) {
	b := NewScheduleBuilder(0.5).
		SetValueAtTime(0, 0).
		LinearRampToValueAtTime(1, 1).
		ExponentialRampToValueAtTime(0.25, 2).
		SetTargetAtTime(0, 3, 0.5).
		SetValueCurveAtTime([]float64{0, 1, 0}, 5, 1).
		CancelAndHoldAtTime(3.5)

	tl, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if got := tl.Value(0.5); got != 0.5 {
		t.Errorf("Value(0.5) = %v, want 0.5", got)
	}
	if got, want := tl.Value(1.5), math.Pow(0.25, 0.5); got != want {
		t.Errorf("Value(1.5) = %v, want %v", got, want)
	}
	held := 0.25 * math.Exp(-1)
	if got := tl.Value(10); math.Abs(got-held) > 1e-12 {
		t.Errorf("Value(10) = %v, want held %v", got, held)
	}

	types := []EventType{}
	for e := range tl.All() {
		types = append(types, e.Type())
	}
	want := []EventType{TypeSetValue, TypeLinearRamp, TypeExponentialRamp, TypeSetTarget, TypeSetValue}
	if !slices.Equal(types, want) {
		t.Errorf("stored types = %v, want %v", types, want)
	}
	if got := len(b.Events()); got != 6 {
		t.Errorf("len(Events()) = %d, want 6", got)
	}
}

func TestScheduleBuilder_Errors(t *testing.T) {
	tests := []struct {
		name string
		b    *ScheduleBuilder
		want error
	}{
		{
			name: "negative time",
			b:    NewScheduleBuilder(0).SetValueAtTime(1, -1),
			want: ErrNegativeTime,
		},
		{
			name: "first error wins",
			b: NewScheduleBuilder(0).
				SetTargetAtTime(1, 1, 0).
				SetValueCurveAtTime([]float64{1}, 2, 1),
			want: ErrNonPositiveTimeConstant,
		},
		{
			name: "non finite",
			b:    NewScheduleBuilder(0).LinearRampToValueAtTime(math.Inf(1), 1),
			want: ErrNonFinite,
		},
		{
			name: "rejected inside curve",
			b: NewScheduleBuilder(0).
				SetValueCurveAtTime([]float64{0, 1}, 1, 2).
				SetValueAtTime(3, 2),
			want: ErrRejected,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl, err := tt.b.Build()
			if !errors.Is(err, tt.want) {
				t.Errorf("Build() error = %v, want %v", err, tt.want)
			}
			if tl != nil {
				t.Error("Build() returned a timeline on error")
			}
		})
	}
}

func TestScheduleBuilder_Script(t *testing.T) {
	b := NewScheduleBuilder(0.2).
		SetValueAtTime(1, 1).
		SetValueCurveAtTime([]float64{1, 2}, 2, 1).
		SetValueAtTime(4, 2.5)

	s := b.Script("gain")
	tl, rejected, err := NewFromScript(*s)
	if err != nil {
		t.Fatal(err)
	}
	if len(rejected) != 1 || !reflect.DeepEqual(rejected[0], Event(SetValue{Value: 4, StartTime: 2.5})) {
		t.Errorf("rejected = %#v", rejected)
	}
	if tl.Len() != 2 || tl.DefaultValue() != 0.2 {
		t.Errorf("Len() = %d DefaultValue() = %v", tl.Len(), tl.DefaultValue())
	}
}

func TestCurveHelpers(t *testing.T) {
	if got := SampleCurve([]float64{0, 10}, 0.25); got != 2.5 {
		t.Errorf("SampleCurve() = %v, want 2.5", got)
	}
	if got := ResampleCurve([]float64{6, 7, 8, 9}, 6, 3); !slices.Equal(got, []float64{6, 6.75, 7.5}) {
		t.Errorf("ResampleCurve() = %v, want [6 6.75 7.5]", got)
	}
	if got := EventTime(SetValueCurve{Values: []float64{0, 1}, StartTime: 3, Duration: 2}); got != 3 {
		t.Errorf("EventTime() = %v, want 3", got)
	}
}
