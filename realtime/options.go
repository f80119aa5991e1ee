package realtime

import (
	"io"
	"log"

	"github.com/comalice/automationx/internal/core"
	"github.com/comalice/automationx/internal/primitives"
)

// Option configures a Param.
type Option func(*Param)

// WithScheduler renders s instead of a fresh timeline, e.g. a logging decorator.
func WithScheduler(s core.Scheduler) Option {
	return func(p *Param) {
		p.scheduler = s
	}
}

// WithSource drains events from s at the start of every block.
func WithSource(s core.EventSource) Option {
	return func(p *Param) {
		p.source = s
	}
}

// WithLogger configures the logger used for rejected events. nil silences it.
func WithLogger(l *log.Logger) Option {
	return func(p *Param) {
		if l == nil {
			l = log.New(io.Discard, "", 0)
		}
		p.logger = l
	}
}

// WithRejectHandler is called with every event the timeline refuses.
func WithRejectHandler(fn func(primitives.Event)) Option {
	return func(p *Param) {
		p.onReject = fn
	}
}
