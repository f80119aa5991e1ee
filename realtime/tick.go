package realtime

import "github.com/comalice/automationx/internal/primitives"

// Process renders one block and advances the clock by BlockSize frames.
// The returned slice is reused by the next call.
func (p *Param) Process() []float64 {
	start := p.startFrame()

	// Phase 1: Collect queued and sourced events
	events := p.collectEvents()

	// Phase 2: Sort for deterministic order
	p.sortEvents(events)

	// Phase 3: Apply to the timeline in order
	rejected := p.applyEvents(events)

	// Phase 4: Drop history before the block start
	p.scheduler.Flush(p.frameTime(start))

	// Phase 5: Render
	p.render(start)

	p.batchMu.Lock()
	p.frame = start + uint64(p.cfg.BlockSize)
	p.blockNum++
	p.rejected += rejected
	p.batchMu.Unlock()

	return p.out
}

func (p *Param) startFrame() uint64 {
	p.batchMu.Lock()
	defer p.batchMu.Unlock()
	return p.frame
}

// collectEvents atomically retrieves and clears the event batch, then drains
// whatever the source has ready without blocking.
func (p *Param) collectEvents() []EventWithMeta {
	p.batchMu.Lock()
	defer p.batchMu.Unlock()

	events := p.eventBatch
	p.eventBatch = make([]EventWithMeta, 0, cap(p.eventBatch))

	if p.source == nil {
		return events
	}
	ch := p.source.Events()
	for len(events) < p.cfg.MaxEventsPerBlock {
		select {
		case e, ok := <-ch:
			if !ok {
				p.source = nil
				return events
			}
			events = append(events, EventWithMeta{Event: e, SequenceNum: p.sequenceNum})
			p.sequenceNum++
		default:
			return events
		}
	}
	return events
}

// applyEvents adds events to the timeline and returns how many were refused.
func (p *Param) applyEvents(events []EventWithMeta) uint64 {
	var rejected uint64
	for _, em := range events {
		if p.scheduler.Add(em.Event) {
			continue
		}
		rejected++
		p.logger.Printf("realtime: rejected %s at %g (seq %d)", em.Event.Type(), primitives.EventTime(em.Event), em.SequenceNum)
		if p.onReject != nil {
			p.onReject(em.Event)
		}
	}
	return rejected
}

func (p *Param) render(start uint64) {
	if p.cfg.Rate == KRate {
		v := p.clamp(p.scheduler.Value(p.frameTime(start)))
		for i := range p.out {
			p.out[i] = v
		}
		return
	}
	for i := range p.out {
		p.out[i] = p.clamp(p.scheduler.Value(p.frameTime(start + uint64(i))))
	}
}

func (p *Param) frameTime(frame uint64) float64 {
	return float64(frame) / p.cfg.SampleRate
}

func (p *Param) clamp(v float64) float64 {
	if p.cfg.MinValue < p.cfg.MaxValue {
		return min(max(v, p.cfg.MinValue), p.cfg.MaxValue)
	}
	return v
}
