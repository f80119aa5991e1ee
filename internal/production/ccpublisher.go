package production

import (
	"context"
	"math"

	"gitlab.com/gomidi/midi/v2"
)

// CCMessage is a MIDI Control Change message stamped with its timeline time.
type CCMessage struct {
	Time    float64
	Message midi.Message
}

// CCPublisher converts rendered parameter values into MIDI Control Change
// messages. Only changes of the 7-bit controller value are published.
// Non-blocking publish with drop on backpressure.
type CCPublisher struct {
	ch         chan<- CCMessage
	channel    uint8
	controller uint8
	lo, hi     float64
	last       int
	dropped    int
}

// NewCCPublisher maps values in [lo, hi] onto controller 0..127 on channel.
func NewCCPublisher(ch chan<- CCMessage, channel, controller uint8, lo, hi float64) *CCPublisher {
	return &CCPublisher{ch: ch, channel: channel, controller: controller, lo: lo, hi: hi, last: -1}
}

// ToCC scales v from [lo, hi] to a 7-bit controller value.
func ToCC(v, lo, hi float64) uint8 {
	if !(hi > lo) || math.IsNaN(v) {
		return 0
	}
	f := (v - lo) / (hi - lo)
	f = math.Min(math.Max(f, 0), 1)
	return uint8(math.Round(f * 127))
}

// PublishBlock publishes one message per controller value change in block.
// Frame i of the block is stamped start + i/sampleRate. It returns the number
// of messages handed to the channel.
func (p *CCPublisher) PublishBlock(ctx context.Context, start, sampleRate float64, block []float64) (int, error) {
	sent := 0
	for i, v := range block {
		cc := int(ToCC(v, p.lo, p.hi))
		if cc == p.last {
			continue
		}
		p.last = cc
		msg := CCMessage{
			Time:    start + float64(i)/sampleRate,
			Message: midi.ControlChange(p.channel, p.controller, uint8(cc)),
		}
		select {
		case p.ch <- msg:
			sent++
		case <-ctx.Done():
			return sent, ctx.Err()
		default:
			p.dropped++ // Non-blocking drop
		}
	}
	return sent, nil
}

// Dropped returns how many messages were discarded on backpressure.
func (p *CCPublisher) Dropped() int {
	return p.dropped
}

func (p *CCPublisher) Close() error {
	close(p.ch)
	return nil
}
