package core

import "github.com/comalice/automationx/internal/primitives"

// Flush discards history that can no longer influence Value at or after time.
//
// The boundary is the last event ordered at or before time. Everything before it
// collapses into a single SetValue at the boundary's time carrying the value
// reached there; the SetValue is omitted when the boundary is itself a SetValue.
// The boundary and everything after it are kept unchanged.
func (t *Timeline) Flush(time float64) {
	b := t.upperBound(time) - 1
	if b <= 0 {
		return
	}

	boundary := t.events[b]
	keep := 0
	if _, ok := boundary.(primitives.SetValue); !ok {
		bt := primitives.EventTime(boundary)
		t.events[0] = primitives.SetValue{Value: t.Value(bt), StartTime: bt}
		keep = 1
	}

	n := copy(t.events[keep:], t.events[b:])
	t.truncate(keep + n)
}
