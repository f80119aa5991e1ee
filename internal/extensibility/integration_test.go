package extensibility

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/comalice/automationx/internal/core"
	"github.com/comalice/automationx/internal/primitives"
	"github.com/comalice/automationx/realtime"
)

func TestParamWithCustomExtensibility(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	guarded, err := NewGuardedScheduler(core.NewTimeline(0), "value <= 1")
	if err != nil {
		t.Fatal(err)
	}
	sched := NewLoggingScheduler(guarded, logger)

	ch := make(chan primitives.Event, 8)
	p := realtime.NewParam(0, realtime.Config{SampleRate: 8, BlockSize: 4},
		realtime.WithScheduler(sched),
		realtime.WithSource(NewChannelEventSource(ch)),
		realtime.WithLogger(logger),
	)

	ch <- primitives.SetValue{Value: 0, StartTime: 0}
	ch <- primitives.LinearRamp{Value: 1, EndTime: 1}
	ch <- primitives.SetValue{Value: 4, StartTime: 0.25}

	block := p.Process()
	if block[3] != 0.375 {
		t.Errorf("block[3] = %v, want 0.375", block[3])
	}
	if p.Rejected() != 1 {
		t.Errorf("Rejected() = %d, want 1", p.Rejected())
	}

	// cancel-and-hold from the control side freezes the ramp
	ch <- primitives.CancelAndHold{CancelTime: 0.75}
	p.Process()
	block = p.Process()
	for i, v := range block {
		if v != 0.75 {
			t.Errorf("block[%d] = %v, want held 0.75", i, v)
		}
	}

	out := buf.String()
	for _, want := range []string{"accepted=false", "realtime: rejected setValue", "cancelAndHold at 0.75"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}
