package headless

import (
	"context"
	"errors"
	"image"
	"testing"

	"github.com/hubastard/sprig/engine/core"
)

func TestPresentKeepsLastFrame(t *testing.T) {
	s := New("canvas", 4, 3)
	if s.Frame() != nil {
		t.Fatal("frame before Present")
	}
	a := image.NewRGBA(image.Rect(0, 0, 4, 3))
	b := image.NewRGBA(image.Rect(0, 0, 4, 3))
	_ = s.Present(a)
	_ = s.Present(b)
	if s.Frame() != image.Image(b) || s.Frames() != 2 {
		t.Errorf("Frame/Frames = %p/%d", s.Frame(), s.Frames())
	}
}

func TestSetSizeEmitsResize(t *testing.T) {
	s := New("canvas", 10, 10)
	var got []core.Event
	s.SetEventCallback(func(ev core.Event) { got = append(got, ev) })
	s.SetSize(20, 5)

	if w, h := s.Size(); w != 20 || h != 5 {
		t.Errorf("Size = %d,%d", w, h)
	}
	if len(got) != 1 || got[0] != core.Event(core.EventResize{W: 20, H: 5}) {
		t.Errorf("events = %#v", got)
	}
}

func TestCloseStopsPacing(t *testing.T) {
	s := New("canvas", 1, 1)
	var closes int
	s.SetEventCallback(func(ev core.Event) {
		if _, ok := ev.(core.EventCloseRequested); ok {
			closes++
		}
	})
	if err := s.WaitFrame(context.Background()); err != nil {
		t.Fatalf("WaitFrame before Close: %v", err)
	}
	s.Close()
	s.Close()
	if closes != 1 {
		t.Errorf("close events = %d", closes)
	}
	if err := s.WaitFrame(context.Background()); !errors.Is(err, core.ErrSurfaceClosed) {
		t.Errorf("WaitFrame = %v", err)
	}
	if err := s.Present(image.NewRGBA(image.Rect(0, 0, 1, 1))); !errors.Is(err, core.ErrSurfaceClosed) {
		t.Errorf("Present after Close = %v", err)
	}
}

func TestWaitFrameHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := New("canvas", 1, 1).WaitFrame(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("WaitFrame = %v", err)
	}
}
