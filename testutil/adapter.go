package testutil

import (
	"fmt"
	"math"

	"github.com/comalice/automationx"
	"github.com/comalice/automationx/realtime"
)

// Evaluator provides a common interface for direct timeline evaluation and
// block rendering. This allows running the same test suite on both.
type Evaluator interface {
	Schedule(e automationx.Event) error
	ValueAt(time float64) float64
}

// TimelineAdapter evaluates a timeline directly
type TimelineAdapter struct {
	tl *automationx.Timeline
}

// NewTimelineAdapter creates a new adapter over an empty timeline
func NewTimelineAdapter(defaultValue float64) *TimelineAdapter {
	return &TimelineAdapter{tl: automationx.New(defaultValue)}
}

func (a *TimelineAdapter) Schedule(e automationx.Event) error {
	if !a.tl.Add(e) {
		return fmt.Errorf("%s at %g: %w", e.Type(), automationx.EventTime(e), automationx.ErrRejected)
	}
	return nil
}

func (a *TimelineAdapter) ValueAt(time float64) float64 {
	return a.tl.Value(time)
}

// BlockAdapter renders a realtime.Param and reads values back from the
// rendered frames. Times are rounded to the nearest frame.
type BlockAdapter struct {
	param    *realtime.Param
	rendered []float64
	rejected []automationx.Event
}

// BlockConfig has frame times that are exact binary fractions.
var BlockConfig = realtime.Config{SampleRate: 8, BlockSize: 4}

// NewBlockAdapter creates a new adapter rendering with BlockConfig
func NewBlockAdapter(defaultValue float64) *BlockAdapter {
	a := &BlockAdapter{}
	a.param = realtime.NewParam(defaultValue, BlockConfig,
		realtime.WithLogger(nil),
		realtime.WithRejectHandler(func(e automationx.Event) { a.rejected = append(a.rejected, e) }),
	)
	return a
}

// Schedule queues e for the next rendered block. Events must be scheduled
// before the first ValueAt that reaches their time.
func (a *BlockAdapter) Schedule(e automationx.Event) error {
	return a.param.Schedule(e)
}

func (a *BlockAdapter) ValueAt(time float64) float64 {
	frame := int(math.Round(time * BlockConfig.SampleRate))
	for len(a.rendered) <= frame {
		a.rendered = append(a.rendered, a.param.Process()...)
	}
	return a.rendered[frame]
}

// Rejected returns the events the rendered timeline refused so far.
func (a *BlockAdapter) Rejected() []automationx.Event {
	return a.rejected
}

// AlmostEqual reports whether a and b differ by at most 1e-9, treating two
// NaNs as equal.
func AlmostEqual(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return math.Abs(a-b) <= 1e-9
}
