package core

import (
	"fmt"

	"github.com/comalice/automationx/internal/primitives"
)

// NewTimelineFromScript validates s and replays its events in order. Events the
// timeline refuses are returned in rejected; they are not an error.
func NewTimelineFromScript(s primitives.Script) (*Timeline, []primitives.Event, error) {
	if err := s.Validate(); err != nil {
		return nil, nil, fmt.Errorf("script %q: %w", s.ID, err)
	}
	events, err := s.Decode()
	if err != nil {
		return nil, nil, fmt.Errorf("script %q: %w", s.ID, err)
	}
	t := NewTimeline(s.DefaultValue)
	var rejected []primitives.Event
	for _, e := range events {
		if !t.Add(e) {
			rejected = append(rejected, e)
		}
	}
	return t, rejected, nil
}
