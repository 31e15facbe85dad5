// Package headless provides an in-memory surface for servers, tests and
// machines without a display.
package headless

import (
	"context"
	"image"
	"sync"

	"github.com/hubastard/sprig/engine/core"
)

// Surface is a named core.PixelSurface that keeps the last presented frame.
// It is also a core.Pacer that never blocks, so a Scheduler.Run on it spins
// as fast as frames render until Close.
type Surface struct {
	mu     sync.Mutex
	name   string
	w, h   int
	frame  image.Image
	frames int
	closed bool
	onEv   func(core.Event)
}

func New(name string, w, h int) *Surface {
	return &Surface{name: name, w: w, h: h}
}

func (s *Surface) Name() string { return s.name }

func (s *Surface) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w, s.h
}

// SetEventCallback installs the receiver for resize and close events.
func (s *Surface) SetEventCallback(cb func(core.Event)) {
	s.mu.Lock()
	s.onEv = cb
	s.mu.Unlock()
}

// SetSize changes the surface bounds and emits core.EventResize.
func (s *Surface) SetSize(w, h int) {
	s.mu.Lock()
	s.w, s.h = w, h
	cb := s.onEv
	s.mu.Unlock()
	if cb != nil {
		cb(core.EventResize{W: w, H: h})
	}
}

func (s *Surface) Present(frame image.Image) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return core.ErrSurfaceClosed
	}
	s.frame = frame
	s.frames++
	return nil
}

// Frame returns the last presented frame, nil before the first one.
func (s *Surface) Frame() image.Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame
}

func (s *Surface) Frames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

// Close marks the surface closed and emits core.EventCloseRequested.
func (s *Surface) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	cb := s.onEv
	s.mu.Unlock()
	if cb != nil {
		cb(core.EventCloseRequested{})
	}
}

func (s *Surface) WaitFrame(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return core.ErrSurfaceClosed
	}
	return nil
}
