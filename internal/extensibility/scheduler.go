package extensibility

import (
	"iter"
	"log"
	"time"

	"github.com/comalice/automationx/internal/core"
	"github.com/comalice/automationx/internal/primitives"
)

// LoggingScheduler wraps a Scheduler and logs every mutation.
// Value is passed through unlogged since it runs once per frame.
type LoggingScheduler struct {
	inner  core.Scheduler
	logger *log.Logger
}

var _ core.Scheduler = (*LoggingScheduler)(nil)

// NewLoggingScheduler creates a LoggingScheduler wrapping inner. A nil logger
// uses the standard logger.
func NewLoggingScheduler(inner core.Scheduler, logger *log.Logger) *LoggingScheduler {
	if logger == nil {
		logger = log.Default()
	}
	return &LoggingScheduler{inner: inner, logger: logger}
}

// Add logs the event and whether the inner scheduler accepted it.
func (s *LoggingScheduler) Add(e primitives.Event) bool {
	start := time.Now()
	ok := s.inner.Add(e)
	if primitives.IsCommand(e) {
		s.logger.Printf("LOG: %s at %g completed in %v", e.Type(), primitives.EventTime(e), time.Since(start))
		return ok
	}
	s.logger.Printf("LOG: Add %s at %g accepted=%t", e.Type(), primitives.EventTime(e), ok)
	return ok
}

// Flush logs the flush time and how many events were dropped.
func (s *LoggingScheduler) Flush(t float64) {
	before := count(s.inner.All())
	s.inner.Flush(t)
	if dropped := before - count(s.inner.All()); dropped > 0 {
		s.logger.Printf("LOG: Flush at %g compacted %d events", t, dropped)
	}
}

// Value delegates to the inner scheduler.
func (s *LoggingScheduler) Value(t float64) float64 {
	return s.inner.Value(t)
}

// All delegates to the inner scheduler.
func (s *LoggingScheduler) All() iter.Seq[primitives.Event] {
	return s.inner.All()
}

func count(seq iter.Seq[primitives.Event]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}
