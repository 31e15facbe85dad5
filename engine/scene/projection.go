package scene

// Projection maps surface pixels to clip space: (0,0) is the top-left corner
// and (Width,Height) the bottom-right. Device pixel ratio is the caller's
// concern.
type Projection struct {
	Width, Height float32
	Near, Far     float32
	m             Mat4
	dirty         bool
}

func NewProjection(width, height int) *Projection {
	p := &Projection{Near: -1, Far: 1}
	p.SetViewportPixels(width, height)
	p.Recalculate()
	return p
}

func (p *Projection) SetViewportPixels(w, h int) {
	p.Width, p.Height = float32(w), float32(h)
	p.dirty = true
}

func (p *Projection) Matrix() Mat4 {
	if p.dirty {
		p.Recalculate()
	}
	return p.m
}

func (p *Projection) Recalculate() {
	if p.Width <= 0 || p.Height <= 0 {
		// degenerate surface; keep something invertible
		p.m = Identity()
		p.dirty = false
		return
	}
	p.m = Ortho(0, p.Width, p.Height, 0, p.Near, p.Far)
	p.dirty = false
}

// ToPixels converts normalized device coordinates back to surface pixels.
func (p *Projection) ToPixels(ndcX, ndcY float32) (float32, float32) {
	return (ndcX + 1) * 0.5 * p.Width, (1 - ndcY) * 0.5 * p.Height
}
