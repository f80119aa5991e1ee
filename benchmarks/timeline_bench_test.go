package benchmarks

import (
	"fmt"
	"testing"

	"github.com/comalice/automationx/internal/primitives"
)

func BenchmarkTimelineValue(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("events=%d", n), func(b *testing.B) {
			tl := GenTimeline(GenRampScript(n))
			span := float64(n)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				tl.Value(float64(i%1024) / 1024 * span)
			}
		})
	}
}

func BenchmarkTimelineValueCurve(b *testing.B) {
	tl := GenTimeline(GenCurveScript(100, 256))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tl.Value(float64(i%1024) / 1024 * 100)
	}
}

func BenchmarkTimelineAdd(b *testing.B) {
	for _, n := range []int{100, 1000} {
		b.Run(fmt.Sprintf("events=%d", n), func(b *testing.B) {
			script := GenRampScript(n)
			events, err := script.Decode()
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				tl := GenTimeline(*primitives.NewScript("empty", 0.5))
				for _, e := range events {
					tl.Add(e)
				}
			}
		})
	}
}

// BenchmarkTimelineAddOutOfOrder inserts each event before all existing ones.
func BenchmarkTimelineAddOutOfOrder(b *testing.B) {
	const n = 1000
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tl := GenTimeline(*primitives.NewScript("empty", 0))
		for j := n; j > 0; j-- {
			tl.Add(primitives.SetValue{Value: float64(j), StartTime: float64(j)})
		}
	}
}

func BenchmarkTimelineFlush(b *testing.B) {
	script := GenRampScript(1000)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		tl := GenTimeline(script)
		b.StartTimer()
		for t := 0.0; t < 1000; t += 10 {
			tl.Flush(t)
		}
	}
}

func BenchmarkTimelineCancelAndHold(b *testing.B) {
	script := GenRampScript(1000)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		tl := GenTimeline(script)
		b.StartTimer()
		tl.Add(primitives.CancelAndHold{CancelTime: 500.5})
	}
}
