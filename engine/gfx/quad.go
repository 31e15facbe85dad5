package gfx

import (
	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/scene"
	"github.com/hubastard/sprig/engine/sprite"
)

const (
	VertsPerQuad = 4
	IndsPerQuad  = 6
)

// UnitQuad is the single static geometry every sprite is drawn from:
// (0,0) top-left to (1,1) bottom-right, xy pairs.
var UnitQuad = [VertsPerQuad * 2]float32{
	0, 0,
	1, 0,
	1, 1,
	0, 1,
}

// QuadIndices split the unit quad into two triangles.
var QuadIndices = [IndsPerQuad]uint32{
	0, 1, 2,
	2, 3, 0,
}

// Uniform names shared by the GLSL program and the software vertex stage.
const (
	UniformProjection = "uProjection"
	UniformOffset     = "uOffset"
	UniformSize       = "uSize"
	UniformColor      = "uColor"
)

// Uniforms are the per-draw values for one sprite.
type Uniforms struct {
	Offset [2]float32
	Size   [2]float32
	Color  colors.Color
}

func QuadUniforms(s sprite.Sprite) Uniforms {
	return Uniforms{
		Offset: [2]float32{s.X, s.Y},
		Size:   [2]float32{s.Width, s.Height},
		Color:  s.Color,
	}
}

// TransformVertex is the vertex stage: scale the unit-quad vertex by size,
// translate by offset, then project. It mirrors the GLSL vertex shader.
func TransformVertex(proj scene.Mat4, u Uniforms, vx, vy float32) (float32, float32) {
	return proj.TransformPoint(vx*u.Size[0]+u.Offset[0], vy*u.Size[1]+u.Offset[1])
}
