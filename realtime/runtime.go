package realtime

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/comalice/automationx/internal/core"
	"github.com/comalice/automationx/internal/primitives"
)

// ErrQueueFull is returned by Schedule when the per-block batch is at capacity.
var ErrQueueFull = errors.New("event queue full")

// ErrRunning is returned by Start when the ticker loop is already running.
var ErrRunning = errors.New("param already running")

// Rate selects how often the timeline is sampled within a block.
type Rate int

const (
	// ARate samples every frame.
	ARate Rate = iota
	// KRate samples once per block.
	KRate
)

func (r Rate) String() string {
	if r == KRate {
		return "k-rate"
	}
	return "a-rate"
}

// Config configures a Param
type Config struct {
	SampleRate        float64 // frames per second (default: 48000)
	BlockSize         int     // frames per block (default: 128)
	Rate              Rate    // ARate or KRate
	MaxEventsPerBlock int     // batch capacity (default: 1000)
	// MinValue and MaxValue clamp rendered output when MinValue < MaxValue.
	MinValue float64
	MaxValue float64
}

func (c Config) withDefaults() Config {
	if c.SampleRate <= 0 {
		c.SampleRate = 48000
	}
	if c.BlockSize <= 0 {
		c.BlockSize = 128
	}
	if c.MaxEventsPerBlock <= 0 {
		c.MaxEventsPerBlock = 1000
	}
	return c
}

// Param renders one automated parameter block by block.
//
// Schedule, ScheduleWithPriority and the accessors are safe for concurrent use.
// Process must only be called from one goroutine at a time.
type Param struct {
	cfg       Config
	scheduler core.Scheduler
	source    core.EventSource
	logger    *log.Logger
	onReject  func(primitives.Event)

	// Event batching
	eventBatch  []EventWithMeta
	batchMu     sync.Mutex
	sequenceNum uint64

	// Counters, guarded by batchMu
	frame    uint64
	blockNum uint64
	rejected uint64

	out []float64

	// Ticker loop
	tickCancel context.CancelFunc
	stopped    chan struct{}
}

// NewParam creates a Param evaluating a fresh timeline with defaultValue.
func NewParam(defaultValue float64, cfg Config, opts ...Option) *Param {
	cfg = cfg.withDefaults()
	p := &Param{
		cfg:        cfg,
		scheduler:  core.NewTimeline(defaultValue),
		logger:     log.Default(),
		eventBatch: make([]EventWithMeta, 0, cfg.MaxEventsPerBlock),
		out:        make([]float64, cfg.BlockSize),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Schedule queues an event for the next block (thread-safe)
func (p *Param) Schedule(e primitives.Event) error {
	return p.ScheduleWithPriority(e, 0)
}

// ScheduleWithPriority queues an event with priority. Higher priorities are
// applied first within a block.
func (p *Param) ScheduleWithPriority(e primitives.Event, priority int) error {
	p.batchMu.Lock()
	defer p.batchMu.Unlock()

	if len(p.eventBatch) >= cap(p.eventBatch) {
		return ErrQueueFull
	}

	p.eventBatch = append(p.eventBatch, EventWithMeta{
		Event:       e,
		SequenceNum: p.sequenceNum,
		Priority:    priority,
	})
	p.sequenceNum++

	return nil
}

// Config returns the effective configuration.
func (p *Param) Config() Config {
	return p.cfg
}

// Scheduler returns the timeline the Param renders.
func (p *Param) Scheduler() core.Scheduler {
	return p.scheduler
}

// CurrentTime returns the start time of the next block in seconds.
func (p *Param) CurrentTime() float64 {
	p.batchMu.Lock()
	defer p.batchMu.Unlock()
	return p.frameTime(p.frame)
}

// BlockNumber returns the number of blocks rendered so far.
func (p *Param) BlockNumber() uint64 {
	p.batchMu.Lock()
	defer p.batchMu.Unlock()
	return p.blockNum
}

// Rejected returns how many scheduled events the timeline refused.
func (p *Param) Rejected() uint64 {
	p.batchMu.Lock()
	defer p.batchMu.Unlock()
	return p.rejected
}

// BlockDuration returns the wall-clock length of one block.
func (p *Param) BlockDuration() time.Duration {
	return time.Duration(float64(p.cfg.BlockSize) / p.cfg.SampleRate * float64(time.Second))
}

// Start renders one block per block period and passes it to sink until ctx is
// done or Stop is called. The slice handed to sink is reused by the next block.
// Once the loop has exited the Param can be started again.
func (p *Param) Start(ctx context.Context, sink func([]float64)) error {
	p.batchMu.Lock()
	if p.tickCancel != nil {
		p.batchMu.Unlock()
		return ErrRunning
	}
	tickCtx, cancel := context.WithCancel(ctx)
	stopped := make(chan struct{})
	p.tickCancel = cancel
	p.stopped = stopped
	p.batchMu.Unlock()

	go p.tickLoop(tickCtx, time.NewTicker(p.BlockDuration()), sink, stopped)
	return nil
}

// Stop ends the loop started by Start and waits for it to exit.
func (p *Param) Stop() {
	p.batchMu.Lock()
	cancel, stopped := p.tickCancel, p.stopped
	p.tickCancel = nil
	p.batchMu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-stopped
}

func (p *Param) tickLoop(ctx context.Context, ticker *time.Ticker, sink func([]float64), stopped chan struct{}) {
	defer close(stopped)
	defer func() {
		p.batchMu.Lock()
		if p.stopped == stopped {
			p.tickCancel = nil
		}
		p.batchMu.Unlock()
	}()
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						p.logger.Printf("realtime: block %d panicked: %v", p.BlockNumber(), r)
					}
				}()
				block := p.Process()
				if sink != nil {
					sink(block)
				}
			}()
		}
	}
}
