// Package realtime renders an automation timeline into fixed-size sample blocks.
//
// A Param owns one timeline and differs from calling Value directly in how
// events arrive:
//   - Events are batched and applied at block boundaries
//   - Deterministic event ordering via sequence numbers
//   - History is flushed at the start of every block
//   - Fixed block size (e.g., 128 frames at 48 kHz)
//
// # Example Usage
//
//	p := realtime.NewParam(1, realtime.Config{SampleRate: 48000, BlockSize: 128})
//	p.Schedule(automationx.SetValue{Value: 0, StartTime: 0})
//	p.Schedule(automationx.LinearRamp{Value: 1, EndTime: 0.5})
//	for range 10 {
//		block := p.Process()
//		_ = block
//	}
//
// # Rendering Rates
//
// ARate evaluates the timeline once per frame at frame/SampleRate.
// KRate evaluates it once per block at the block start time and repeats the value.
//
// # Event Ordering Guarantees
//
// Events are ordered deterministically using:
//  1. Priority (higher priority processed first)
//  2. Sequence number (FIFO for same priority)
//  3. Stable sorting (preserves relative order)
//
// Equal-time events are therefore inserted in submission order, which is the
// order the timeline uses to pick the later event at a tie.
//
// # Driving
//
// Process is normally called from the caller's render loop. Start runs the
// same loop on a wall-clock ticker at one block period and hands each block to
// a sink; Stop ends it.
package realtime
