package extensibility

import (
	"time"

	"github.com/comalice/automationx/internal/primitives"
)

// ChannelEventSource is an EventSource implementation backed by a Go channel.
// Provides a simple way to feed events from a control goroutine into a Param.
type ChannelEventSource struct {
	ch chan primitives.Event
}

// Events returns the receive-only channel for events.
func (s *ChannelEventSource) Events() <-chan primitives.Event {
	return s.ch
}

// NewChannelEventSource creates a new ChannelEventSource with the given channel.
// The channel should be buffered if backpressure handling is needed.
func NewChannelEventSource(ch chan primitives.Event) *ChannelEventSource {
	return &ChannelEventSource{ch: ch}
}

// TimerEventSource emits one generated event per tick using time.Ticker.
// Useful for control-rate modulation such as an LFO retargeting a parameter.
type TimerEventSource struct {
	ch     chan primitives.Event
	gen    func(tick uint64) (primitives.Event, bool)
	ticker *time.Ticker
	stop   chan struct{}
}

// NewTimerEventSource creates a TimerEventSource calling gen every d. gen
// returns false to skip a tick.
func NewTimerEventSource(gen func(tick uint64) (primitives.Event, bool), d time.Duration) *TimerEventSource {
	t := &TimerEventSource{
		ch:     make(chan primitives.Event, 10),
		gen:    gen,
		ticker: time.NewTicker(d),
		stop:   make(chan struct{}),
	}
	go t.run()
	return t
}

func (t *TimerEventSource) run() {
	var tick uint64
	for {
		select {
		case <-t.ticker.C:
			e, ok := t.gen(tick)
			tick++
			if !ok {
				continue
			}
			select {
			case t.ch <- e:
			default:
				// drop if full
			}
		case <-t.stop:
			t.ticker.Stop()
			close(t.ch)
			return
		}
	}
}

// Events returns the event channel.
func (t *TimerEventSource) Events() <-chan primitives.Event {
	return t.ch
}

// Stop stops the ticker and closes the channel.
func (t *TimerEventSource) Stop() {
	close(t.stop)
}
