// Package primitives provides the foundational, zero-dependency data structures
// for the automation engine.
//
// This package and `internal/core` use ONLY the Go standard library. Adapters
// (stores, plotting, MIDI export) live in other packages and may import
// third-party modules.
//
// Core invariants:
//   - Events are immutable values once constructed (curve samples are cloned)
//   - The variant set is closed; every switch over it is exhaustive
//   - Numeric validation happens in the factories, never in the timeline
package primitives
