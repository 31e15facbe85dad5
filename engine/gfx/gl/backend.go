// Package glbackend is the accelerated OpenGL 3.3 backend.
package glbackend

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/core"
	"github.com/hubastard/sprig/engine/gfx"
	"github.com/hubastard/sprig/engine/profiler"
	"github.com/hubastard/sprig/engine/scene"
	"github.com/hubastard/sprig/engine/sprite"
)

const Name = "opengl"

type Backend struct {
	drv     driver
	vertSrc string
	fragSrc string
	clear   colors.Color
	surface core.GLSurface
	proj    *scene.Projection
	w, h    int
	program uint32
	vao     uint32
	vbo     uint32
	ebo     uint32
	uProj   int32
	uOffset int32
	uSize   int32
	uColor  int32
	ready   bool
	stats   gfx.Statistics
}

type Option func(*Backend)

// WithShaders overrides the GLSL sources. They must declare the uniforms
// named in package gfx.
func WithShaders(vertex, fragment string) Option {
	return func(b *Backend) { b.vertSrc, b.fragSrc = vertex, fragment }
}

func WithClearColor(c colors.Color) Option {
	return func(b *Backend) { b.clear = c }
}

func withDriver(d driver) Option {
	return func(b *Backend) { b.drv = d }
}

func New(opts ...Option) *Backend {
	b := &Backend{
		drv:     nativeDriver{},
		vertSrc: DefaultVertexShader,
		fragSrc: DefaultFragmentShader,
		clear:   core.DefaultClearColor,
		proj:    scene.NewProjection(0, 0),
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

func (b *Backend) Init(surfaces core.SurfaceLookup, name string) error {
	sf, err := core.Resolve(surfaces, name)
	if err != nil {
		return err
	}
	glsf, ok := sf.(core.GLSurface)
	if !ok {
		return fmt.Errorf("surface %q has no GL support: %w", name, core.ErrContextUnavailable)
	}
	if err := glsf.MakeContextCurrent(); err != nil {
		return fmt.Errorf("make context current on %q: %v: %w", name, err, core.ErrContextUnavailable)
	}
	if err := b.drv.Init(); err != nil {
		return fmt.Errorf("load GL entry points: %v: %w", err, core.ErrContextUnavailable)
	}
	core.Logger().Debug("gl context acquired", "surface", name, "version", b.drv.Version())

	b.program, err = b.makeProgram(b.vertSrc, b.fragSrc)
	if err != nil {
		return err
	}
	b.uProj = b.drv.UniformLocation(b.program, gfx.UniformProjection)
	b.uOffset = b.drv.UniformLocation(b.program, gfx.UniformOffset)
	b.uSize = b.drv.UniformLocation(b.program, gfx.UniformSize)
	b.uColor = b.drv.UniformLocation(b.program, gfx.UniformColor)

	b.setupQuad()
	b.drv.EnableBlend(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	b.surface = glsf
	b.Resize(sf.Size())
	b.ready = true
	return nil
}

// setupQuad uploads the shared unit quad: 4 vertices, 6 indices.
func (b *Backend) setupQuad() {
	verts := gfx.UnitQuad
	inds := gfx.QuadIndices

	b.vao = b.drv.GenVertexArray()
	b.drv.BindVertexArray(b.vao)

	b.vbo = b.drv.GenBuffer()
	b.drv.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	b.drv.BufferFloats(gl.ARRAY_BUFFER, verts[:])

	b.ebo = b.drv.GenBuffer()
	b.drv.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	b.drv.BufferIndices(gl.ELEMENT_ARRAY_BUFFER, inds[:])

	// layout(location = 0) in vec2 aPos;
	const stride = 2 * 4 // bytes
	b.drv.VertexAttrib2f(0, stride, 0)

	b.drv.BindVertexArray(0)
	b.drv.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (b *Backend) Resize(w, h int) {
	b.w, b.h = w, h
	b.proj.SetViewportPixels(w, h)
	core.Logger().Debug("gl resize", "w", w, "h", h)
}

func (b *Backend) Projection() scene.Mat4 { return b.proj.Matrix() }

func (b *Backend) Render(sprites *sprite.Registry) gfx.Statistics {
	if !b.ready {
		return gfx.Statistics{}
	}
	defer profiler.Start("gl.render")()

	b.stats = gfx.Statistics{}
	b.drv.BindFramebuffer(0)
	b.drv.Viewport(0, 0, int32(b.w), int32(b.h))
	b.drv.Clear(b.clear[0], b.clear[1], b.clear[2], b.clear[3])

	b.drv.UseProgram(b.program)
	m := [16]float32(b.proj.Matrix())
	b.drv.UniformMatrix4(b.uProj, &m)
	b.drv.BindVertexArray(b.vao)

	sprites.Each(func(s sprite.Sprite) bool {
		u := gfx.QuadUniforms(s)
		b.drv.Uniform2f(b.uOffset, u.Offset[0], u.Offset[1])
		b.drv.Uniform2f(b.uSize, u.Size[0], u.Size[1])
		b.drv.Uniform4f(b.uColor, u.Color[0], u.Color[1], u.Color[2], u.Color[3])
		b.drv.DrawQuad(gfx.IndsPerQuad)
		b.stats.DrawCalls++
		b.stats.QuadCount++
		b.stats.IndexCount += gfx.IndsPerQuad
		return true
	})

	b.drv.BindVertexArray(0)
	b.drv.UseProgram(0)
	b.surface.SwapBuffers()
	return b.stats
}

func (b *Backend) Shutdown() {
	if b.ebo != 0 {
		b.drv.DeleteBuffer(b.ebo)
		b.ebo = 0
	}
	if b.vbo != 0 {
		b.drv.DeleteBuffer(b.vbo)
		b.vbo = 0
	}
	if b.vao != 0 {
		b.drv.DeleteVertexArray(b.vao)
		b.vao = 0
	}
	if b.program != 0 {
		b.drv.DeleteProgram(b.program)
		b.program = 0
	}
	b.ready = false
}

// --- Shader utilities ---

func (b *Backend) makeShader(src string, stage uint32) (uint32, error) {
	sh := b.drv.CreateShader(stage)
	b.drv.ShaderSource(sh, src)
	b.drv.CompileShader(sh)
	if !b.drv.ShaderCompiled(sh) {
		log := b.drv.ShaderInfoLog(sh)
		b.drv.DeleteShader(sh)
		return 0, &core.ShaderCompileError{Stage: stageName(stage), Log: log}
	}
	return sh, nil
}

func (b *Backend) makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := b.makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := b.makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		b.drv.DeleteShader(vs)
		return 0, err
	}
	prog := b.drv.CreateProgram()
	b.drv.AttachShader(prog, vs)
	b.drv.AttachShader(prog, fs)
	b.drv.LinkProgram(prog)
	linked := b.drv.ProgramLinked(prog)
	b.drv.DeleteShader(vs)
	b.drv.DeleteShader(fs)

	if !linked {
		log := b.drv.ProgramInfoLog(prog)
		b.drv.DeleteProgram(prog)
		return 0, &core.ShaderCompileError{Stage: "link", Log: log}
	}
	return prog, nil
}

func stageName(stage uint32) string {
	switch stage {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	default:
		return fmt.Sprintf("stage 0x%x", stage)
	}
}
