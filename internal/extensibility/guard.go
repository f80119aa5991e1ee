package extensibility

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/comalice/automationx/internal/core"
	"github.com/comalice/automationx/internal/primitives"
)

// ExpressionGuard is a parsed condition like "value <= 1" or "time >= 0.5".
// Fields: value (every value an event produces), time (ordering time).
type ExpressionGuard struct {
	field string
	op    string
	limit float64
	src   string
}

// ParseGuard parses "field op number".
func ParseGuard(expr string) (ExpressionGuard, error) {
	parts := strings.Fields(expr)
	if len(parts) != 3 {
		return ExpressionGuard{}, fmt.Errorf("guard %q: want \"field op number\"", expr)
	}
	field, op, valStr := parts[0], parts[1], parts[2]
	switch field {
	case "value", "time":
	default:
		return ExpressionGuard{}, fmt.Errorf("guard %q: unknown field %q", expr, field)
	}
	switch op {
	case "==", "!=", ">", ">=", "<", "<=":
	default:
		return ExpressionGuard{}, fmt.Errorf("guard %q: unknown operator %q", expr, op)
	}
	limit, err := strconv.ParseFloat(valStr, 64)
	if err != nil {
		return ExpressionGuard{}, fmt.Errorf("guard %q: %w", expr, err)
	}
	return ExpressionGuard{field: field, op: op, limit: limit, src: expr}, nil
}

func (g ExpressionGuard) String() string { return g.src }

// Eval reports whether e satisfies the guard. Commands carry no value and
// always satisfy value guards.
func (g ExpressionGuard) Eval(e primitives.Event) bool {
	if g.field == "time" {
		return g.compare(primitives.EventTime(e))
	}
	switch e := e.(type) {
	case primitives.SetValue:
		return g.compare(e.Value)
	case primitives.LinearRamp:
		return g.compare(e.Value)
	case primitives.ExponentialRamp:
		return g.compare(e.Value)
	case primitives.SetTarget:
		return g.compare(e.Target)
	case primitives.SetValueCurve:
		for _, v := range e.Values {
			if !g.compare(v) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

func (g ExpressionGuard) compare(v float64) bool {
	switch g.op {
	case "==":
		return v == g.limit
	case "!=":
		return v != g.limit
	case ">":
		return v > g.limit
	case ">=":
		return v >= g.limit
	case "<":
		return v < g.limit
	case "<=":
		return v <= g.limit
	default:
		return false
	}
}

// GuardedScheduler refuses events that fail any of its guards before they
// reach the inner scheduler.
type GuardedScheduler struct {
	inner  core.Scheduler
	guards []ExpressionGuard
}

var _ core.Scheduler = (*GuardedScheduler)(nil)

// NewGuardedScheduler parses exprs and wraps inner.
func NewGuardedScheduler(inner core.Scheduler, exprs ...string) (*GuardedScheduler, error) {
	s := &GuardedScheduler{inner: inner}
	for _, expr := range exprs {
		g, err := ParseGuard(expr)
		if err != nil {
			return nil, err
		}
		s.guards = append(s.guards, g)
	}
	return s, nil
}

// Add returns false without touching the inner scheduler when a guard fails.
func (s *GuardedScheduler) Add(e primitives.Event) bool {
	for _, g := range s.guards {
		if !g.Eval(e) {
			return false
		}
	}
	return s.inner.Add(e)
}

func (s *GuardedScheduler) Flush(t float64)         { s.inner.Flush(t) }
func (s *GuardedScheduler) Value(t float64) float64 { return s.inner.Value(t) }

func (s *GuardedScheduler) All() iter.Seq[primitives.Event] { return s.inner.All() }
