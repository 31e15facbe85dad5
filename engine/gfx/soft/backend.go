// Package soft is the software fallback backend. It rasterizes the same
// unit-quad pipeline on the CPU with gogpu/gg and presents frames to pixel
// surfaces.
package soft

import (
	"image"
	"io"

	"github.com/gogpu/gg"

	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/core"
	"github.com/hubastard/sprig/engine/gfx"
	"github.com/hubastard/sprig/engine/profiler"
	"github.com/hubastard/sprig/engine/scene"
	"github.com/hubastard/sprig/engine/sprite"
)

const Name = "software"

type Backend struct {
	clear   colors.Color
	surface core.Surface
	present core.PixelSurface // nil when the surface cannot take frames
	dc      *gg.Context
	proj    *scene.Projection
	w, h    int
	prog    program
	ready   bool
	stats   gfx.Statistics
}

type Option func(*Backend)

func WithClearColor(c colors.Color) Option {
	return func(b *Backend) { b.clear = c }
}

func New(opts ...Option) *Backend {
	b := &Backend{
		clear: core.DefaultClearColor,
		proj:  scene.NewProjection(0, 0),
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Factory adapts New for gfx.Selector.
func Factory(opts ...Option) gfx.Factory {
	return func() gfx.Backend { return New(opts...) }
}

func (b *Backend) Name() string { return Name }

// Init binds the backend to the named surface. Any surface will do; frames
// reach the screen only when it is a core.PixelSurface, otherwise they stay
// offscreen and are available through Snapshot.
func (b *Backend) Init(surfaces core.SurfaceLookup, name string) error {
	sf, err := core.Resolve(surfaces, name)
	if err != nil {
		return err
	}
	b.surface = sf
	b.present, _ = sf.(core.PixelSurface)

	w, h := sf.Size()
	b.dc = gg.NewContext(max(w, 1), max(h, 1))
	b.Resize(w, h)
	b.ready = true
	core.Logger().Debug("software context created", "surface", name, "w", w, "h", h, "presents", b.present != nil)
	return nil
}

// Resize to a degenerate size (a minimized window) keeps the pixmap;
// Render then skips frames until the surface has area again.
func (b *Backend) Resize(w, h int) {
	b.w, b.h = w, h
	b.proj.SetViewportPixels(w, h)
	if b.dc == nil || w <= 0 || h <= 0 {
		return
	}
	if err := b.dc.Resize(w, h); err != nil {
		core.Logger().Warn("software resize failed", "w", w, "h", h, "err", err)
	}
}

func (b *Backend) Projection() scene.Mat4 { return b.proj.Matrix() }

func (b *Backend) Render(sprites *sprite.Registry) gfx.Statistics {
	if !b.ready || b.w <= 0 || b.h <= 0 {
		return gfx.Statistics{}
	}
	defer profiler.Start("soft.render")()

	b.stats = gfx.Statistics{}
	b.dc.ClearWithColor(rgba(b.clear))
	b.prog.proj = b.proj.Matrix()

	sprites.Each(func(s sprite.Sprite) bool {
		b.prog.u = gfx.QuadUniforms(s)
		if err := b.drawQuad(); err != nil {
			core.Logger().Debug("software fill failed", "sprite", s.ID, "err", err)
		}
		b.stats.DrawCalls++
		b.stats.QuadCount++
		b.stats.IndexCount += gfx.IndsPerQuad
		return true
	})

	if b.present != nil {
		if err := b.present.Present(b.dc.Image()); err != nil {
			core.Logger().Warn("present failed", "surface", b.surface.Name(), "err", err)
		}
	}
	return b.stats
}

// drawQuad runs the vertex stage over the unit quad and fills both indexed
// triangles as a single path, so each sprite is one fill submission.
func (b *Backend) drawQuad() error {
	var px [gfx.VertsPerQuad][2]float64
	for i := range px {
		nx, ny := b.prog.vertex(i)
		x, y := b.proj.ToPixels(nx, ny)
		px[i] = [2]float64{float64(x), float64(y)}
	}
	for t := 0; t < gfx.IndsPerQuad; t += 3 {
		tri := gfx.QuadIndices[t : t+3]
		b.dc.MoveTo(px[tri[0]][0], px[tri[0]][1])
		b.dc.LineTo(px[tri[1]][0], px[tri[1]][1])
		b.dc.LineTo(px[tri[2]][0], px[tri[2]][1])
		b.dc.ClosePath()
	}
	c := rgba(b.prog.fragment())
	b.dc.SetRGBA(c.R, c.G, c.B, c.A)
	return b.dc.Fill()
}

// Snapshot returns a copy of the last rendered frame, or nil before Init.
func (b *Backend) Snapshot() image.Image {
	if b.dc == nil {
		return nil
	}
	return b.dc.Image()
}

// EncodePNG writes the last rendered frame as PNG.
func (b *Backend) EncodePNG(w io.Writer) error {
	if b.dc == nil {
		return core.ErrNotInitialized
	}
	return b.dc.EncodePNG(w)
}

func (b *Backend) Shutdown() {
	if b.dc != nil {
		_ = b.dc.Close()
		b.dc = nil
	}
	b.present = nil
	b.ready = false
}

func rgba(c colors.Color) gg.RGBA {
	return gg.RGBA{R: unit(c[0]), G: unit(c[1]), B: unit(c[2]), A: unit(c[3])}
}

func unit(v float32) float64 {
	return float64(min(max(v, 0), 1))
}
