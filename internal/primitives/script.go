// Script is the top-level serializable description of one automated parameter:
// an identifier, the default value and the events to schedule, in order.
// Order matters: events with equal times are evaluated in insertion order and
// cancellation commands only affect what was scheduled before them.

package primitives

import (
	"errors"
	"fmt"
	"strings"
)

// Script defines a parameter automation script.
type Script struct {
	Version      string        `json:"version,omitempty" yaml:"version,omitempty"`
	ID           string        `json:"id" yaml:"id"`
	DefaultValue float64       `json:"defaultValue" yaml:"defaultValue"`
	Events       []EventConfig `json:"events" yaml:"events"`
}

// NewScript creates an empty script.
func NewScript(id string, defaultValue float64) *Script {
	return &Script{ID: id, DefaultValue: defaultValue}
}

// Add appends an event to the script.
func (s *Script) Add(e Event) *Script {
	s.Events = append(s.Events, ConfigOf(e))
	return s
}

// Validate validates the script:
// - Non-empty ID
// - Finite default value
// - Every event is well-formed
func (s *Script) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return errors.New("script ID is required")
	}
	if err := checkFinite("defaultValue", s.DefaultValue); err != nil {
		return err
	}
	for i, ec := range s.Events {
		if err := ec.Validate(); err != nil {
			return fmt.Errorf("event %d (%s) failed validation: %w", i, ec.Type, err)
		}
	}
	return nil
}

// Decode converts every event config into an Event.
func (s *Script) Decode() ([]Event, error) {
	events := make([]Event, 0, len(s.Events))
	for i, ec := range s.Events {
		e, err := ec.Event()
		if err != nil {
			return nil, fmt.Errorf("event %d (%s): %w", i, ec.Type, err)
		}
		events = append(events, e)
	}
	return events, nil
}
