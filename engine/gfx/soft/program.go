package soft

import (
	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/gfx"
	"github.com/hubastard/sprig/engine/scene"
)

// program is the CPU side of the default shader pair. Its uniforms carry the
// same values the GL backend uploads under the names in package gfx.
type program struct {
	proj scene.Mat4
	u    gfx.Uniforms
}

// vertex returns unit-quad vertex i in clip space.
func (p *program) vertex(i int) (float32, float32) {
	return gfx.TransformVertex(p.proj, p.u, gfx.UnitQuad[2*i], gfx.UnitQuad[2*i+1])
}

func (p *program) fragment() colors.Color { return p.u.Color }
