// Package platform hosts the engine in a native GLFW window.
package platform

import (
	"context"
	"fmt"
	"image"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/hubastard/sprig/engine/core"
	glbackend "github.com/hubastard/sprig/engine/gfx/gl"
)

// GLFWWindow is a named core.GLSurface backed by a GLFW window with an
// OpenGL 3.3 core context. It is also a core.PixelSurface, so the software
// backend can present into it, and the frame loop's core.Pacer: WaitFrame
// polls native events and reports core.ErrSurfaceClosed once the user
// closes the window.
type GLFWWindow struct {
	w    *glfw.Window
	name string
	onEv func(core.Event)
	blit *glbackend.Blitter
}

// NewGLFWWindow must be called on the main thread before any GL calls.
func NewGLFWWindow(name string, cfg core.Config, onEvent func(core.Event)) (*GLFWWindow, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	// GL 3.3 core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 0)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window %q: %w", name, err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	gw := &GLFWWindow{w: win, name: name, onEv: onEvent}
	gw.blit = glbackend.NewBlitter(gw)

	// Callbacks -> translate to core.Event
	win.SetCloseCallback(func(*glfw.Window) { gw.emit(core.EventCloseRequested{}) })
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gw.emit(core.EventResize{W: w, H: h})
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		gw.emit(core.EventMouseMove{X: float32(x), Y: float32(y)})
	})
	win.SetMouseButtonCallback(func(w *glfw.Window, b glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		btn, ok := translateButton(b)
		if !ok {
			return
		}
		x, y := w.GetCursorPos()
		gw.emit(core.EventMouseButton{Button: btn, Down: action == glfw.Press, X: float32(x), Y: float32(y)})
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		k := translateKey(key)
		if k == core.KeyUnknown || action == glfw.Repeat {
			return
		}
		gw.emit(core.EventKey{Key: k, Down: action == glfw.Press, Mods: translateMods(mods)})
	})

	return gw, nil
}

func (g *GLFWWindow) emit(ev core.Event) {
	if g.onEv != nil {
		g.onEv(ev)
	}
}

// core.GLSurface impl
func (g *GLFWWindow) Name() string                         { return g.name }
func (g *GLFWWindow) Size() (int, int)                     { return g.w.GetFramebufferSize() }
func (g *GLFWWindow) SwapBuffers()                         { g.w.SwapBuffers() }
func (g *GLFWWindow) SetTitle(t string)                    { g.w.SetTitle(t) }
func (g *GLFWWindow) SetEventCallback(cb func(core.Event)) { g.onEv = cb }

func (g *GLFWWindow) MakeContextCurrent() error {
	g.w.MakeContextCurrent()
	if glfw.GetCurrentContext() != g.w {
		return fmt.Errorf("window %q: context not current", g.name)
	}
	return nil
}

// Present implements core.PixelSurface: the frame is drawn over the whole
// framebuffer and swapped.
func (g *GLFWWindow) Present(frame image.Image) error { return g.blit.Present(frame) }

// WaitFrame implements core.Pacer. Frame pacing itself comes from vsync in
// SwapBuffers.
func (g *GLFWWindow) WaitFrame(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	glfw.PollEvents()
	if g.w.ShouldClose() {
		return core.ErrSurfaceClosed
	}
	return nil
}

// Register adds the window to a surface registry under its name.
func (g *GLFWWindow) Register(s *core.Surfaces) error { return s.Register(g) }

func (g *GLFWWindow) Destroy() {
	g.blit.Release()
	g.w.Destroy()
	glfw.Terminate()
}

var keyTable = map[glfw.Key]core.Key{
	glfw.KeyW:           core.KeyW,
	glfw.KeyA:           core.KeyA,
	glfw.KeyS:           core.KeyS,
	glfw.KeyD:           core.KeyD,
	glfw.KeyQ:           core.KeyQ,
	glfw.KeyE:           core.KeyE,
	glfw.KeyR:           core.KeyR,
	glfw.KeyF:           core.KeyF,
	glfw.KeyP:           core.KeyP,
	glfw.KeySpace:       core.KeySpace,
	glfw.KeyEnter:       core.KeyEnter,
	glfw.KeyEscape:      core.KeyEscape,
	glfw.KeyTab:         core.KeyTab,
	glfw.KeyBackspace:   core.KeyBackspace,
	glfw.KeyUp:          core.KeyArrowUp,
	glfw.KeyDown:        core.KeyArrowDown,
	glfw.KeyLeft:        core.KeyArrowLeft,
	glfw.KeyRight:       core.KeyArrowRight,
	glfw.KeyLeftShift:   core.KeyShiftLeft,
	glfw.KeyLeftControl: core.KeyControlLeft,
	glfw.Key0:           core.KeyDigit0,
	glfw.Key1:           core.KeyDigit1,
	glfw.Key2:           core.KeyDigit2,
	glfw.Key3:           core.KeyDigit3,
}

func translateKey(k glfw.Key) core.Key {
	if key, ok := keyTable[k]; ok {
		return key
	}
	return core.KeyUnknown
}

func translateButton(b glfw.MouseButton) (core.MouseButton, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return core.MouseLeft, true
	case glfw.MouseButtonMiddle:
		return core.MouseMiddle, true
	case glfw.MouseButtonRight:
		return core.MouseRight, true
	default:
		return 0, false
	}
}

func translateMods(m glfw.ModifierKey) core.Mod {
	var out core.Mod
	if m&glfw.ModShift != 0 {
		out |= core.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= core.ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		out |= core.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= core.ModSuper
	}
	return out
}
