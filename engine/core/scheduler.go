package core

import (
	"context"
	"errors"
	"time"

	"github.com/hubastard/sprig/engine/profiler"
)

// Clock abstracts the monotonic time source so tests can step frames.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads time.Now.
var SystemClock Clock = systemClock{}

// Pacer blocks until the host is ready for the next frame. This is the only
// suspension point of the frame loop.
type Pacer interface {
	WaitFrame(ctx context.Context) error
}

// TickerPacer paces frames off a time.Ticker.
type TickerPacer struct {
	t *time.Ticker
}

func NewTickerPacer(interval time.Duration) *TickerPacer {
	return &TickerPacer{t: time.NewTicker(interval)}
}

func (p *TickerPacer) WaitFrame(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.t.C:
		return nil
	}
}

func (p *TickerPacer) Stop() { p.t.Stop() }

// SchedulerState is Stopped or Running.
type SchedulerState int

const (
	Stopped SchedulerState = iota
	Running
)

func (s SchedulerState) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// FrameFunc receives the real time elapsed since the previous tick.
type FrameFunc func(dt time.Duration)

// Scheduler drives frames with variable timestep. Tick is the trampoline a
// host calls once per frame; it does nothing while stopped.
type Scheduler struct {
	clock   Clock
	onFrame FrameFunc
	state   SchedulerState
	last    time.Time
	dt      time.Duration

	frames     uint64
	fpsFrames  int
	fpsElapsed time.Duration
	fps        float64
}

func NewScheduler(clock Clock, onFrame FrameFunc) *Scheduler {
	if clock == nil {
		clock = SystemClock
	}
	return &Scheduler{clock: clock, onFrame: onFrame}
}

func (s *Scheduler) State() SchedulerState { return s.state }

// Start records the frame clock baseline. Calling it while running is a
// no-op and keeps the existing baseline.
func (s *Scheduler) Start() {
	if s.state == Running {
		return
	}
	s.state = Running
	s.last = s.clock.Now()
	s.fpsFrames, s.fpsElapsed = 0, 0
	Logger().Info("frame loop started")
}

func (s *Scheduler) Stop() {
	if s.state == Stopped {
		return
	}
	s.state = Stopped
	Logger().Info("frame loop stopped", "frames", s.frames)
}

// Tick runs one frame if running and reports whether it did.
func (s *Scheduler) Tick() bool {
	if s.state != Running {
		return false
	}
	defer profiler.Start("scheduler.tick")()

	now := s.clock.Now()
	s.dt = now.Sub(s.last)
	s.last = now
	s.frames++
	s.countFPS(s.dt)

	if s.onFrame != nil {
		s.onFrame(s.dt)
	}
	return true
}

// Run ticks until the scheduler is stopped, ctx is done or the pacer
// reports the surface closed. The scheduler is Stopped when Run returns. A
// closed surface is not an error.
func (s *Scheduler) Run(ctx context.Context, p Pacer) error {
	defer s.Stop()
	for s.state == Running {
		if err := p.WaitFrame(ctx); err != nil {
			if errors.Is(err, ErrSurfaceClosed) {
				return nil
			}
			return err
		}
		s.Tick()
	}
	return nil
}

func (s *Scheduler) countFPS(dt time.Duration) {
	s.fpsFrames++
	s.fpsElapsed += dt
	if s.fpsElapsed >= time.Second {
		s.fps = float64(s.fpsFrames) / s.fpsElapsed.Seconds()
		s.fpsFrames, s.fpsElapsed = 0, 0
	}
}

// LastDelta is the dt passed to the most recent frame.
func (s *Scheduler) LastDelta() time.Duration { return s.dt }

// Frames counts ticks that ran since construction.
func (s *Scheduler) Frames() uint64 { return s.frames }

// FPS is measured over the last full second of running frames; zero until
// one second has elapsed.
func (s *Scheduler) FPS() float64 { return s.fps }
