// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"

	"github.com/comalice/automationx/internal/core"
	"github.com/comalice/automationx/internal/primitives"
	"gopkg.in/yaml.v3"
)

// GenRampScript creates a script of n segments, one per second, alternating
// SetValue, linear ramp, exponential ramp and SetTarget.
func GenRampScript(n int) primitives.Script {
	if n < 1 {
		n = 1
	}
	s := primitives.NewScript(fmt.Sprintf("ramps_%d", n), 0.5)
	for i := 0; i < n; i++ {
		t := float64(i)
		v := 0.1 + float64(i%9)/10
		switch i % 4 {
		case 0:
			s.Add(primitives.SetValue{Value: v, StartTime: t})
		case 1:
			s.Add(primitives.LinearRamp{Value: v, EndTime: t})
		case 2:
			s.Add(primitives.ExponentialRamp{Value: v, EndTime: t})
		case 3:
			s.Add(primitives.SetTarget{Target: v, StartTime: t, TimeConstant: 0.25})
		}
	}
	return *s
}

// GenCurveScript creates a script of n back-to-back curves of size points each.
func GenCurveScript(n, size int) primitives.Script {
	s := primitives.NewScript(fmt.Sprintf("curves_%d_%d", n, size), 0)
	values := make([]float64, size)
	for i := range values {
		values[i] = float64(i) / float64(size-1)
	}
	for i := 0; i < n; i++ {
		s.Add(primitives.SetValueCurve{Values: values, StartTime: float64(i), Duration: 1})
	}
	return *s
}

// GenTimeline replays s into a fresh timeline.
func GenTimeline(s primitives.Script) *core.Timeline {
	tl, _, err := core.NewTimelineFromScript(s)
	if err != nil {
		panic(err)
	}
	return tl
}

// GenScriptYAML generates YAML bytes for a ramp script of n events.
func GenScriptYAML(n int) []byte {
	data, err := yaml.Marshal(GenRampScript(n))
	if err != nil {
		panic(err)
	}
	return data
}
