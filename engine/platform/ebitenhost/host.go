// Package ebitenhost runs the engine inside an ebiten game loop. The host is
// a core.PixelSurface, so it pairs with the software backend: each frame the
// backend presents is blitted to the ebiten screen.
package ebitenhost

import (
	"image"
	"image/draw"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/hubastard/sprig/engine/core"
)

// Driver is the part of the engine the host drives once per ebiten update.
type Driver interface {
	HandleEvent(ev core.Event)
	Tick() bool
	Running() bool
}

type Host struct {
	mu    sync.Mutex
	name  string
	title string
	w, h  int
	pix   []byte // premultiplied RGBA, w*h*4
	drv   Driver

	keys   []ebiten.Key
	mx, my int
}

func New(name, title string, w, h int) *Host {
	return &Host{name: name, title: title, w: w, h: h}
}

// Attach sets the engine driven by Update. It must be called before Run.
func (h *Host) Attach(d Driver) { h.drv = d }

func (h *Host) Name() string { return h.name }

func (h *Host) Size() (int, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.w, h.h
}

// Present copies the frame into the pixel buffer uploaded on the next Draw.
func (h *Host) Present(frame image.Image) error {
	b := frame.Bounds()
	h.mu.Lock()
	defer h.mu.Unlock()
	if b.Dx() != h.w || b.Dy() != h.h {
		// stale size; the engine resizes before the next frame
		return nil
	}
	if len(h.pix) != h.w*h.h*4 {
		h.pix = make([]byte, h.w*h.h*4)
	}
	if rgba, ok := frame.(*image.RGBA); ok && rgba.Stride == 4*h.w {
		copy(h.pix, rgba.Pix)
		return nil
	}
	dst := &image.RGBA{Pix: h.pix, Stride: 4 * h.w, Rect: image.Rect(0, 0, h.w, h.h)}
	draw.Draw(dst, dst.Rect, frame, b.Min, draw.Src)
	return nil
}

// Run blocks in ebiten.RunGame until the window closes or the engine stops.
func (h *Host) Run() error {
	ebiten.SetWindowTitle(h.title)
	ebiten.SetWindowSize(h.w, h.h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	return ebiten.RunGame(h)
}

// Update implements ebiten.Game.
func (h *Host) Update() error {
	if h.drv == nil {
		return nil
	}
	if ebiten.IsWindowBeingClosed() {
		h.drv.HandleEvent(core.EventCloseRequested{})
		return ebiten.Termination
	}
	h.pollInput()
	h.drv.Tick()
	if !h.drv.Running() {
		return ebiten.Termination
	}
	return nil
}

func (h *Host) pollInput() {
	h.keys = inpututil.AppendJustPressedKeys(h.keys[:0])
	for _, k := range h.keys {
		if key := translateKey(k); key != core.KeyUnknown {
			h.drv.HandleEvent(core.EventKey{Key: key, Down: true, Mods: currentMods()})
		}
	}
	h.keys = inpututil.AppendJustReleasedKeys(h.keys[:0])
	for _, k := range h.keys {
		if key := translateKey(k); key != core.KeyUnknown {
			h.drv.HandleEvent(core.EventKey{Key: key, Down: false, Mods: currentMods()})
		}
	}

	mx, my := ebiten.CursorPosition()
	if mx != h.mx || my != h.my {
		h.mx, h.my = mx, my
		h.drv.HandleEvent(core.EventMouseMove{X: float32(mx), Y: float32(my)})
	}
	for eb, btn := range buttonTable {
		switch {
		case inpututil.IsMouseButtonJustPressed(eb):
			h.drv.HandleEvent(core.EventMouseButton{Button: btn, Down: true, X: float32(mx), Y: float32(my)})
		case inpututil.IsMouseButtonJustReleased(eb):
			h.drv.HandleEvent(core.EventMouseButton{Button: btn, Down: false, X: float32(mx), Y: float32(my)})
		}
	}
}

// Draw implements ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.pix) == 0 || screen.Bounds().Dx() != h.w || screen.Bounds().Dy() != h.h {
		return
	}
	screen.WritePixels(h.pix)
}

// Layout implements ebiten.Game. The logical screen tracks the window, and
// a change is forwarded as core.EventResize.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	h.mu.Lock()
	changed := outsideWidth != h.w || outsideHeight != h.h
	if changed {
		h.w, h.h = outsideWidth, outsideHeight
		h.pix = nil
	}
	h.mu.Unlock()
	if changed && h.drv != nil {
		h.drv.HandleEvent(core.EventResize{W: outsideWidth, H: outsideHeight})
	}
	return outsideWidth, outsideHeight
}
