package extensibility

import (
	"testing"

	"github.com/comalice/automationx/internal/core"
	"github.com/comalice/automationx/internal/primitives"
)

func TestParseGuard(t *testing.T) {
	tests := []struct {
		expr    string
		wantErr bool
	}{
		{"value <= 1", false},
		{"time >= 0.5", false},
		{"value != 0", false},
		{"value<=1", true},
		{"gain <= 1", true},
		{"value ~ 1", true},
		{"value <= one", true},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			_, err := ParseGuard(tt.expr)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseGuard() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestExpressionGuard_Eval(t *testing.T) {
	tests := []struct {
		expr  string
		event primitives.Event
		want  bool
	}{
		{"value <= 1", primitives.SetValue{Value: 1}, true},
		{"value <= 1", primitives.LinearRamp{Value: 1.5, EndTime: 2}, false},
		{"value > 0", primitives.ExponentialRamp{Value: 0, EndTime: 2}, false},
		{"value < 1", primitives.SetTarget{Target: 0.5, StartTime: 1, TimeConstant: 1}, true},
		{"value <= 1", primitives.SetValueCurve{Values: []float64{0, 1, 2}, StartTime: 1, Duration: 1}, false},
		{"value >= 0", primitives.SetValueCurve{Values: []float64{0, 1, 2}, StartTime: 1, Duration: 1}, true},
		{"value == 0", primitives.CancelAndHold{CancelTime: 3}, true},
		{"time >= 2", primitives.LinearRamp{Value: 1, EndTime: 2}, true},
		{"time < 2", primitives.CancelScheduledValues{CancelTime: 3}, false},
	}
	for _, tt := range tests {
		g, err := ParseGuard(tt.expr)
		if err != nil {
			t.Fatal(err)
		}
		if got := g.Eval(tt.event); got != tt.want {
			t.Errorf("%s on %#v = %v, want %v", g, tt.event, got, tt.want)
		}
	}
}

func TestGuardedScheduler(t *testing.T) {
	tl := core.NewTimeline(0)
	s, err := NewGuardedScheduler(tl, "value >= 0", "value <= 1")
	if err != nil {
		t.Fatal(err)
	}
	if !s.Add(primitives.SetValue{Value: 0.5, StartTime: 1}) {
		t.Error("in-range event refused")
	}
	if s.Add(primitives.SetValue{Value: 2, StartTime: 2}) {
		t.Error("out-of-range event accepted")
	}
	if tl.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tl.Len())
	}
	if got := s.Value(3); got != 0.5 {
		t.Errorf("Value(3) = %v, want 0.5", got)
	}

	if _, err := NewGuardedScheduler(tl, "bogus"); err == nil {
		t.Error("expected parse error")
	}
}
