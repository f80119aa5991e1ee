package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/comalice/automationx/builder"
	"github.com/comalice/automationx/internal/analysis"
	"github.com/comalice/automationx/internal/core"
	"github.com/comalice/automationx/internal/extensibility"
	"github.com/comalice/automationx/internal/primitives"
	"github.com/comalice/automationx/internal/production"
	"github.com/comalice/automationx/realtime"
)

func main() {
	scriptPath := flag.String("script", "", "YAML automation script (default: built-in envelope)")
	sampleRate := flag.Float64("rate", 48000, "sample rate in Hz")
	blockSize := flag.Int("block", 128, "frames per block")
	duration := flag.Float64("duration", 2, "seconds to render")
	verbose := flag.Bool("v", false, "log timeline operations")
	cc := flag.Int("cc", -1, "MIDI controller number to publish (negative disables)")
	spectrum := flag.Bool("spectrum", false, "print a spectrum summary of the rendered signal")
	saveDir := flag.String("save", "", "directory to save the script to as YAML")
	lfo := flag.Float64("lfo", 0, "render live on the block clock, modulated by an LFO of this rate in Hz")
	var guards []string
	flag.Func("guard", `refuse events failing "field op number", e.g. "value <= 1" (repeatable)`, func(s string) error {
		if _, err := extensibility.ParseGuard(s); err != nil {
			return err
		}
		guards = append(guards, s)
		return nil
	})
	flag.Parse()

	script, err := loadScript(*scriptPath)
	if err != nil {
		log.Fatal(err)
	}

	if *saveDir != "" {
		store, err := production.NewYAMLStore(*saveDir)
		if err != nil {
			log.Fatal(err)
		}
		if err := store.Save(context.Background(), script); err != nil {
			log.Fatal(err)
		}
	}

	var logger *log.Logger
	if *verbose {
		logger = log.New(os.Stderr, "", log.Lmicroseconds)
	}
	sched, err := newScheduler(core.NewTimeline(script.DefaultValue), logger, guards...)
	if err != nil {
		log.Fatal(err)
	}
	rejected, err := replay(sched, script)
	if err != nil {
		log.Fatal(err)
	}

	opts := []realtime.Option{realtime.WithScheduler(sched)}
	var timer *extensibility.TimerEventSource
	if *lfo > 0 {
		period := time.Duration(float64(time.Second) / *lfo)
		timer = extensibility.NewTimerEventSource(lfoEvents(period, 0.2, 0.8), period/2)
		opts = append(opts, realtime.WithSource(timer))
	}
	param := realtime.NewParam(script.DefaultValue,
		realtime.Config{SampleRate: *sampleRate, BlockSize: *blockSize},
		opts...,
	)

	var publisher *production.CCPublisher
	var messages chan production.CCMessage
	if *cc >= 0 {
		messages = make(chan production.CCMessage, 4096)
		publisher = production.NewCCPublisher(messages, 0, uint8(*cc), 0, 1)
	}

	frames := int(*duration * *sampleRate)
	rendered := make([]float64, 0, frames+*blockSize)
	var mu sync.Mutex
	consume := func(block []float64) {
		mu.Lock()
		defer mu.Unlock()
		start := float64(len(rendered)) / *sampleRate
		if publisher != nil {
			if _, err := publisher.PublishBlock(context.Background(), start, *sampleRate, block); err != nil {
				log.Print(err)
			}
		}
		rendered = append(rendered, block...)
	}

	if timer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(*duration*float64(time.Second)))
		if err := param.Start(ctx, consume); err != nil {
			log.Fatal(err)
		}
		<-ctx.Done()
		cancel()
		param.Stop()
		timer.Stop()
	} else {
		for len(rendered) < frames {
			consume(param.Process())
		}
	}

	mu.Lock()
	defer mu.Unlock()
	frames = min(frames, len(rendered))
	rendered = rendered[:frames]

	fmt.Printf("%s: %d frames in %d blocks, %d events rejected\n",
		script.ID, frames, param.BlockNumber(), rejected+int(param.Rejected()))

	plotter := production.NewPlotter(72, 12)
	fmt.Println(plotter.Plot(rendered, "0s", fmt.Sprintf("%gs", *duration)))

	if publisher != nil {
		publisher.Close()
		n := 0
		for msg := range messages {
			if n < 8 {
				fmt.Printf("%8.4fs %s\n", msg.Time, msg.Message)
			}
			n++
		}
		fmt.Printf("%d CC messages, %d dropped\n", n, publisher.Dropped())
	}

	if *spectrum && len(rendered) >= 2 {
		printSpectrum(rendered, *sampleRate)
	}
}

// newScheduler wraps tl with optional logging and guards. Guards sit
// outermost so refused events are never logged as added.
func newScheduler(tl *core.Timeline, logger *log.Logger, guards ...string) (core.Scheduler, error) {
	var sched core.Scheduler = tl
	if logger != nil {
		sched = extensibility.NewLoggingScheduler(sched, logger)
	}
	if len(guards) > 0 {
		guarded, err := extensibility.NewGuardedScheduler(sched, guards...)
		if err != nil {
			return nil, err
		}
		sched = guarded
	}
	return sched, nil
}

// replay adds the script's events to sched and reports how many were refused.
func replay(sched core.Scheduler, s primitives.Script) (int, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	events, err := s.Decode()
	if err != nil {
		return 0, err
	}
	rejected := 0
	for _, e := range events {
		if !sched.Add(e) {
			log.Printf("script %s: rejected %s at %g", s.ID, e.Type(), primitives.EventTime(e))
			rejected++
		}
	}
	return rejected, nil
}

// lfoEvents alternates SetTarget approaches between lo and hi, one per half
// period, timed on the timeline clock.
func lfoEvents(period time.Duration, lo, hi float64) func(tick uint64) (primitives.Event, bool) {
	half := period.Seconds() / 2
	return func(tick uint64) (primitives.Event, bool) {
		target := hi
		if tick%2 == 1 {
			target = lo
		}
		return primitives.SetTarget{
			Target:       target,
			StartTime:    float64(tick+1) * half,
			TimeConstant: half / 3,
		}, true
	}
}

func loadScript(path string) (primitives.Script, error) {
	if path == "" {
		return envelopeScript(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return primitives.Script{}, err
	}
	return production.DecodeYAML(data)
}

// envelopeScript plays a note at 0.1s, releases it at 0.9s and retriggers at
// 1.2s while the release is still sounding.
func envelopeScript() primitives.Script {
	env := builder.ADSR{Attack: 0.05, Decay: 0.2, Sustain: 0.6, Release: 0.5, Peak: 1}
	s := primitives.NewScript("envelope", 0)

	// Replay against a scratch timeline so each gesture starts from the
	// value in force when it happens.
	tl := core.NewTimeline(0)
	add := func(events []primitives.Event) {
		for _, e := range events {
			tl.Add(e)
			s.Add(e)
		}
	}
	add(env.NoteOn(0.1, tl.Value(0.1)))
	add(env.NoteOff(0.9, tl.Value(0.9)))
	add(env.NoteOn(1.2, tl.Value(1.2)))
	add(env.NoteOff(1.6, tl.Value(1.6)))
	return *s
}

func printSpectrum(samples []float64, sampleRate float64) {
	size := 1
	for size*2 <= len(samples) && size < 8192 {
		size *= 2
	}
	a, err := analysis.NewAnalyzer(size)
	if err != nil {
		log.Fatal(err)
	}
	peak := a.PeakBin(samples[:size])
	fmt.Printf("spectrum (%d points): peak %.1f Hz, high-frequency ratio %.4f\n",
		size, a.BinFrequency(peak, sampleRate), a.HighFrequencyRatio(samples[:size], size/8))
}
