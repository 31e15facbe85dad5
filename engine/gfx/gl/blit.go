package glbackend

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/hubastard/sprig/engine/core"
)

// Blitter puts CPU frames on a GL surface. Each frame is uploaded to a
// texture, copied to the default framebuffer and swapped. GL windows use it
// to act as a core.PixelSurface for the software backend.
type Blitter struct {
	drv     driver
	surface core.GLSurface
	tex     uint32
	fbo     uint32
	tw, th  int
	buf     *image.RGBA
	ready   bool
}

func NewBlitter(sf core.GLSurface) *Blitter {
	return &Blitter{drv: nativeDriver{}, surface: sf}
}

func (p *Blitter) init() error {
	name := p.surface.Name()
	if err := p.surface.MakeContextCurrent(); err != nil {
		return fmt.Errorf("make context current on %q: %v: %w", name, err, core.ErrContextUnavailable)
	}
	if err := p.drv.Init(); err != nil {
		return fmt.Errorf("load GL entry points: %v: %w", err, core.ErrContextUnavailable)
	}
	p.tex = p.drv.GenTexture()
	p.fbo = p.drv.GenFramebuffer()
	p.ready = true
	core.Logger().Debug("gl blitter ready", "surface", name)
	return nil
}

// Present uploads frame and shows it stretched over the whole surface.
// Empty frames are ignored.
func (p *Blitter) Present(frame image.Image) error {
	b := frame.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil
	}
	if !p.ready {
		if err := p.init(); err != nil {
			return err
		}
	}

	p.drv.TexImageRGBA(p.tex, int32(w), int32(h), p.pixels(frame))
	if w != p.tw || h != p.th {
		if !p.drv.AttachReadTexture(p.fbo, p.tex) {
			return fmt.Errorf("present on %q: framebuffer incomplete", p.surface.Name())
		}
		p.tw, p.th = w, h
	}
	dw, dh := p.surface.Size()
	p.drv.BlitToScreen(p.fbo, int32(w), int32(h), int32(dw), int32(dh))
	p.surface.SwapBuffers()
	return nil
}

// pixels returns tightly packed RGBA rows for frame, converting into a
// reused buffer when frame is not already laid out that way.
func (p *Blitter) pixels(frame image.Image) []uint8 {
	b := frame.Bounds()
	w, h := b.Dx(), b.Dy()
	if rgba, ok := frame.(*image.RGBA); ok && rgba.Stride == 4*w && b.Min == (image.Point{}) {
		return rgba.Pix[:4*w*h]
	}
	if p.buf == nil || p.buf.Rect.Dx() != w || p.buf.Rect.Dy() != h {
		p.buf = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	draw.Draw(p.buf, p.buf.Rect, frame, b.Min, draw.Src)
	return p.buf.Pix
}

// Release frees the texture and framebuffer. The surface's context must be
// current.
func (p *Blitter) Release() {
	if !p.ready {
		return
	}
	p.drv.DeleteFramebuffer(p.fbo)
	p.drv.DeleteTexture(p.tex)
	p.fbo, p.tex = 0, 0
	p.tw, p.th = 0, 0
	p.ready = false
}
