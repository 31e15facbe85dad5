// Package engine is the public face of sprig: a flat collection of colored
// quads drawn every frame onto a named surface by whichever backend could be
// acquired there.
//
// A host registers a surface, builds an Engine on it and forwards platform
// events through HandleEvent:
//
//	win, _ := platform.NewGLFWWindow("main", cfg, nil)
//	_ = win.Register(core.DefaultSurfaces)
//	eng, _ := engine.New("main", engine.Config{Config: cfg})
//	win.SetEventCallback(eng.HandleEvent)
//	if err := eng.Init(); err != nil { ... }
//	_ = eng.Run(ctx, win)
package engine

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"sync"
	"time"

	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/core"
	"github.com/hubastard/sprig/engine/gfx"
	glbackend "github.com/hubastard/sprig/engine/gfx/gl"
	"github.com/hubastard/sprig/engine/gfx/soft"
	"github.com/hubastard/sprig/engine/sprite"
)

// Config extends the window config with the engine's injection points. Zero
// values select the defaults.
type Config struct {
	core.Config

	// Surfaces resolves the surface name; core.DefaultSurfaces if nil.
	Surfaces core.SurfaceLookup
	// Clock feeds the frame scheduler; core.SystemClock if nil.
	Clock  core.Clock
	Logger *slog.Logger

	// Optional GLSL overrides for the accelerated backend.
	VertexShader   string
	FragmentShader string

	Accelerated gfx.Factory
	Fallback    gfx.Factory
}

// SpriteDesc describes a sprite to create.
type SpriteDesc struct {
	X, Y          float32
	Width, Height float32
	Color         colors.Color
}

// FrameFunc runs once per frame before render with the elapsed seconds.
type FrameFunc func(e *Engine, dt float64)

type Engine struct {
	cfg      Config
	name     string
	surfaces core.SurfaceLookup
	surface  core.Surface
	log      *slog.Logger

	backend gfx.Backend
	sprites *sprite.Registry
	input   *core.Input
	sched   *core.Scheduler
	layers  core.LayerStack
	onFrame FrameFunc
	stats   gfx.Statistics
	w, h    int

	resizeMu sync.Mutex
	resize   *core.EventResize
}

// New binds an engine to a registered surface. It fails with
// core.ErrSurfaceNotFound when no surface has that name. No graphics
// resources are touched until Init.
func New(surfaceName string, cfg Config) (*Engine, error) {
	surfaces := cfg.Surfaces
	if surfaces == nil {
		surfaces = core.DefaultSurfaces
	}
	sf, err := core.Resolve(surfaces, surfaceName)
	if err != nil {
		return nil, err
	}
	log := cfg.Logger
	if log == nil {
		log = core.Logger()
	}

	e := &Engine{
		cfg:      cfg,
		name:     surfaceName,
		surfaces: surfaces,
		surface:  sf,
		log:      log,
		sprites:  sprite.NewRegistry(),
		input:    core.NewInput(),
	}
	e.w, e.h = sf.Size()
	e.sched = core.NewScheduler(cfg.Clock, e.frame)
	return e, nil
}

// Init selects the backend once for the session: the accelerated one if it
// initializes, the software fallback otherwise. It returns an error only
// when both fail. Calling it again after success is a no-op.
func (e *Engine) Init() error {
	if e.backend != nil {
		return nil
	}
	sel := gfx.Selector{
		Accelerated:   e.acceleratedFactory(),
		Fallback:      e.fallbackFactory(),
		ForceFallback: e.cfg.ForceSoftware,
		Logger:        e.log,
	}
	b, err := sel.Acquire(e.surfaces, e.name)
	if err != nil {
		e.log.Error("engine init failed", "surface", e.name, "err", err)
		return fmt.Errorf("engine init: %w", err)
	}
	e.backend = b
	e.w, e.h = e.surface.Size()
	return nil
}

func (e *Engine) acceleratedFactory() gfx.Factory {
	if e.cfg.Accelerated != nil {
		return e.cfg.Accelerated
	}
	opts := []glbackend.Option{glbackend.WithClearColor(e.cfg.Clear())}
	if e.cfg.VertexShader != "" && e.cfg.FragmentShader != "" {
		opts = append(opts, glbackend.WithShaders(e.cfg.VertexShader, e.cfg.FragmentShader))
	}
	return glbackend.Factory(opts...)
}

func (e *Engine) fallbackFactory() gfx.Factory {
	if e.cfg.Fallback != nil {
		return e.cfg.Fallback
	}
	return soft.Factory(soft.WithClearColor(e.cfg.Clear()))
}

// BackendName is empty before Init.
func (e *Engine) BackendName() string {
	if e.backend == nil {
		return ""
	}
	return e.backend.Name()
}

// --- Sprites ---

func (e *Engine) CreateSprite(d SpriteDesc) sprite.Sprite {
	id := e.sprites.Create(d.X, d.Y, d.Width, d.Height, d.Color)
	s, _ := e.sprites.Get(id)
	return s
}

// MoveSprite and the other mutators ignore unknown ids; the result reports
// whether a sprite was changed.
func (e *Engine) MoveSprite(id sprite.ID, x, y float32) bool       { return e.sprites.MoveTo(id, x, y) }
func (e *Engine) SetSpriteColor(id sprite.ID, c colors.Color) bool { return e.sprites.SetColor(id, c) }
func (e *Engine) SetSpriteSize(id sprite.ID, w, h float32) bool    { return e.sprites.SetSize(id, w, h) }
func (e *Engine) GetSprite(id sprite.ID) (sprite.Sprite, bool)     { return e.sprites.Get(id) }
func (e *Engine) RemoveSprite(id sprite.ID) bool                   { return e.sprites.Remove(id) }
func (e *Engine) ClearSprites()                                    { e.sprites.Clear() }
func (e *Engine) SpriteCount() int                                 { return e.sprites.Len() }

// Sprites exposes the registry for helpers such as motion.Tweener.
func (e *Engine) Sprites() *sprite.Registry { return e.sprites }

// --- Lifecycle ---

// Start begins scheduling frames. It fails with core.ErrNotInitialized
// before a successful Init and is a no-op while running.
func (e *Engine) Start() error {
	if e.backend == nil {
		return core.ErrNotInitialized
	}
	e.sched.Start()
	return nil
}

// Stop is honored at the next tick; a frame already in flight completes.
func (e *Engine) Stop() { e.sched.Stop() }

func (e *Engine) Running() bool { return e.sched.State() == core.Running }

// Tick runs one frame if running. Hosts with their own loop call it once per
// frame; it reports whether a frame ran.
func (e *Engine) Tick() bool { return e.sched.Tick() }

// Run starts the engine if needed and ticks it at the pacer's rate until
// Stop, ctx cancellation or the surface closing.
func (e *Engine) Run(ctx context.Context, p core.Pacer) error {
	if err := e.Start(); err != nil {
		return err
	}
	return e.sched.Run(ctx, p)
}

// Shutdown stops the loop and releases the backend. The engine can be
// re-initialized afterwards.
func (e *Engine) Shutdown() {
	e.sched.Stop()
	if e.backend != nil {
		e.backend.Shutdown()
		e.backend = nil
	}
}

func (e *Engine) frame(dt time.Duration) {
	e.applyResize()
	secs := dt.Seconds()
	e.layers.Update(secs)
	if e.onFrame != nil {
		e.onFrame(e, secs)
	}
	if e.backend != nil {
		e.stats = e.backend.Render(e.sprites)
	}
}

// --- Hooks ---

// OnFrame sets the per-frame callback, replacing any previous one.
func (e *Engine) OnFrame(fn FrameFunc) { e.onFrame = fn }

// PushLayer appends a layer; layers update bottom to top before OnFrame.
func (e *Engine) PushLayer(l core.Layer) { e.layers.Push(l) }

// --- Input ---

// HandleEvent is the injection point for platform events. Input state is
// always updated; event layers then see the event top to bottom. A close
// request stops the loop and a resize is applied before the next render.
func (e *Engine) HandleEvent(ev core.Event) {
	e.input.Handle(ev)
	switch ev := ev.(type) {
	case core.EventResize:
		e.queueResize(ev)
	case core.EventCloseRequested:
		e.Stop()
	}
	e.layers.Dispatch(ev)
}

func (e *Engine) Input() *core.Input { return e.input }

func (e *Engine) IsKeyPressed(k core.Key) bool                 { return e.input.IsKeyPressed(k) }
func (e *Engine) MousePosition() (float32, float32)            { return e.input.MousePosition() }
func (e *Engine) IsMouseButtonPressed(b core.MouseButton) bool { return e.input.IsMouseButtonPressed(b) }

// --- Geometry ---

func (e *Engine) CanvasSize() (int, int) { return e.w, e.h }

// Resize re-reads the surface bounds and applies them now.
func (e *Engine) Resize() {
	w, h := e.surface.Size()
	e.resizeMu.Lock()
	e.resize = nil
	e.resizeMu.Unlock()
	e.applySize(w, h)
}

// queueResize may be called from any goroutine; the last size queued before
// a frame wins.
func (e *Engine) queueResize(ev core.EventResize) {
	e.resizeMu.Lock()
	e.resize = &ev
	e.resizeMu.Unlock()
}

func (e *Engine) applyResize() {
	e.resizeMu.Lock()
	ev := e.resize
	e.resize = nil
	e.resizeMu.Unlock()
	if ev != nil {
		e.applySize(ev.W, ev.H)
	}
}

func (e *Engine) applySize(w, h int) {
	e.w, e.h = w, h
	if e.backend != nil {
		e.backend.Resize(w, h)
	}
}

// --- Introspection ---

// Stats are the counts from the most recent frame.
func (e *Engine) Stats() gfx.Statistics { return e.stats }

func (e *Engine) FPS() float64             { return e.sched.FPS() }
func (e *Engine) Frames() uint64           { return e.sched.Frames() }
func (e *Engine) LastDelta() time.Duration { return e.sched.LastDelta() }

// Snapshot returns the last frame when the backend keeps one in memory (the
// software backend does), nil otherwise.
func (e *Engine) Snapshot() image.Image {
	if s, ok := e.backend.(gfx.Snapshotter); ok {
		return s.Snapshot()
	}
	return nil
}
