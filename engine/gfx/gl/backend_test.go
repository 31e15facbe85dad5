package glbackend

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/core"
	"github.com/hubastard/sprig/engine/gfx"
	"github.com/hubastard/sprig/engine/platform/headless"
	"github.com/hubastard/sprig/engine/sprite"
)

type drawRecord struct {
	offset, size [2]float32
	color        colors.Color
}

// fakeDriver records the GL traffic the backend generates.
type fakeDriver struct {
	initErr       error
	inits         int
	failStage     uint32 // compile fails for this stage
	failLink      bool
	next          uint32
	stages        map[uint32]uint32
	locs          map[string]int32
	deletedShader int
	blendSrc      uint32
	blendDst      uint32
	floats        []float32
	indices       []uint32
	viewport      [4]int32
	clears        int
	projUploads   int
	proj          [16]float32
	pending       drawRecord
	draws         []drawRecord
	indexCounts   []int32
	deleted       map[string]int
	uploads       [][]uint8
	texSize       [2]int32
	attaches      int
	incomplete    bool
	blits         []blitRecord
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		stages:  map[uint32]uint32{},
		locs:    map[string]int32{},
		deleted: map[string]int{},
	}
}

func (f *fakeDriver) id() uint32 { f.next++; return f.next }

func (f *fakeDriver) Init() error     { f.inits++; return f.initErr }
func (f *fakeDriver) Version() string { return "fake 3.3" }

func (f *fakeDriver) CreateShader(stage uint32) uint32 {
	sh := f.id()
	f.stages[sh] = stage
	return sh
}
func (f *fakeDriver) ShaderSource(uint32, string) {}
func (f *fakeDriver) CompileShader(uint32)        {}
func (f *fakeDriver) ShaderCompiled(sh uint32) bool {
	return f.stages[sh] != f.failStage
}
func (f *fakeDriver) ShaderInfoLog(uint32) string { return "0:1: syntax error" }
func (f *fakeDriver) DeleteShader(uint32)         { f.deletedShader++ }

func (f *fakeDriver) CreateProgram() uint32        { return f.id() }
func (f *fakeDriver) AttachShader(uint32, uint32)  {}
func (f *fakeDriver) LinkProgram(uint32)           {}
func (f *fakeDriver) ProgramLinked(uint32) bool    { return !f.failLink }
func (f *fakeDriver) ProgramInfoLog(uint32) string { return "link failed" }
func (f *fakeDriver) DeleteProgram(uint32)         { f.deleted["program"]++ }
func (f *fakeDriver) UseProgram(uint32)            {}
func (f *fakeDriver) UniformLocation(_ uint32, name string) int32 {
	loc := int32(len(f.locs) + 1)
	f.locs[name] = loc
	return loc
}

func (f *fakeDriver) GenVertexArray() uint32             { return f.id() }
func (f *fakeDriver) BindVertexArray(uint32)             {}
func (f *fakeDriver) DeleteVertexArray(uint32)           { f.deleted["vao"]++ }
func (f *fakeDriver) GenBuffer() uint32                  { return f.id() }
func (f *fakeDriver) BindBuffer(uint32, uint32)          {}
func (f *fakeDriver) DeleteBuffer(uint32)                { f.deleted["buffer"]++ }
func (f *fakeDriver) VertexAttrib2f(uint32, uint32, int) {}
func (f *fakeDriver) BufferFloats(_ uint32, data []float32) {
	f.floats = append([]float32(nil), data...)
}
func (f *fakeDriver) BufferIndices(_ uint32, data []uint32) {
	f.indices = append([]uint32(nil), data...)
}

func (f *fakeDriver) EnableBlend(src, dst uint32) { f.blendSrc, f.blendDst = src, dst }
func (f *fakeDriver) BindFramebuffer(uint32)      {}
func (f *fakeDriver) Viewport(x, y, w, h int32)   { f.viewport = [4]int32{x, y, w, h} }
func (f *fakeDriver) Clear(float32, float32, float32, float32) {
	f.clears++
}

func (f *fakeDriver) UniformMatrix4(loc int32, m *[16]float32) {
	if loc == f.locs[gfx.UniformProjection] {
		f.projUploads++
		f.proj = *m
	}
}

func (f *fakeDriver) Uniform2f(loc int32, x, y float32) {
	switch loc {
	case f.locs[gfx.UniformOffset]:
		f.pending.offset = [2]float32{x, y}
	case f.locs[gfx.UniformSize]:
		f.pending.size = [2]float32{x, y}
	}
}

func (f *fakeDriver) Uniform4f(loc int32, x, y, z, w float32) {
	if loc == f.locs[gfx.UniformColor] {
		f.pending.color = colors.Color{x, y, z, w}
	}
}

func (f *fakeDriver) DrawQuad(n int32) {
	f.draws = append(f.draws, f.pending)
	f.indexCounts = append(f.indexCounts, n)
}

type blitRecord struct {
	fb                     uint32
	srcW, srcH, dstW, dstH int32
}

func (f *fakeDriver) GenTexture() uint32       { return f.id() }
func (f *fakeDriver) DeleteTexture(uint32)     { f.deleted["texture"]++ }
func (f *fakeDriver) GenFramebuffer() uint32   { return f.id() }
func (f *fakeDriver) DeleteFramebuffer(uint32) { f.deleted["framebuffer"]++ }
func (f *fakeDriver) AttachReadTexture(_, _ uint32) bool {
	f.attaches++
	return !f.incomplete
}
func (f *fakeDriver) TexImageRGBA(_ uint32, w, h int32, pix []uint8) {
	f.uploads = append(f.uploads, append([]uint8(nil), pix...))
	f.texSize = [2]int32{w, h}
}
func (f *fakeDriver) BlitToScreen(fb uint32, srcW, srcH, dstW, dstH int32) {
	f.blits = append(f.blits, blitRecord{fb, srcW, srcH, dstW, dstH})
}

type fakeGLSurface struct {
	name       string
	w, h       int
	currentErr error
	swaps      int
}

func (s *fakeGLSurface) Name() string              { return s.name }
func (s *fakeGLSurface) Size() (int, int)          { return s.w, s.h }
func (s *fakeGLSurface) MakeContextCurrent() error { return s.currentErr }
func (s *fakeGLSurface) SwapBuffers()              { s.swaps++ }

type plainSurface struct{}

func (plainSurface) Name() string     { return "plain" }
func (plainSurface) Size() (int, int) { return 10, 10 }

func setup(t *testing.T, d *fakeDriver, opts ...Option) (*Backend, *fakeGLSurface, error) {
	t.Helper()
	reg := core.NewSurfaces()
	sf := &fakeGLSurface{name: "main", w: 800, h: 600}
	if err := reg.Register(sf); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register(plainSurface{}); err != nil {
		t.Fatal(err)
	}
	b := New(append([]Option{withDriver(d)}, opts...)...)
	return b, sf, b.Init(reg, "main")
}

func TestInitUploadsQuadAndBlend(t *testing.T) {
	d := newFakeDriver()
	_, _, err := setup(t, d)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if len(d.floats) != 8 || len(d.indices) != 6 {
		t.Errorf("uploaded %d floats, %d indices; want 8, 6", len(d.floats), len(d.indices))
	}
	if d.blendSrc != gl.SRC_ALPHA || d.blendDst != gl.ONE_MINUS_SRC_ALPHA {
		t.Errorf("blend = %#x/%#x", d.blendSrc, d.blendDst)
	}
	for _, name := range []string{gfx.UniformProjection, gfx.UniformOffset, gfx.UniformSize, gfx.UniformColor} {
		if _, ok := d.locs[name]; !ok {
			t.Errorf("uniform %s never looked up", name)
		}
	}
}

func TestInitErrors(t *testing.T) {
	tests := []struct {
		name    string
		driver  func() *fakeDriver
		surface string
		surfErr error
		want    error
		stage   string
	}{
		{"missing surface", newFakeDriver, "nope", nil, core.ErrSurfaceNotFound, ""},
		{"surface without gl", newFakeDriver, "plain", nil, core.ErrContextUnavailable, ""},
		{"make current fails", newFakeDriver, "main", errors.New("no display"), core.ErrContextUnavailable, ""},
		{"gl init fails", func() *fakeDriver {
			d := newFakeDriver()
			d.initErr = errors.New("no entry points")
			return d
		}, "main", nil, core.ErrContextUnavailable, ""},
		{"vertex compile", func() *fakeDriver {
			d := newFakeDriver()
			d.failStage = gl.VERTEX_SHADER
			return d
		}, "main", nil, core.ErrShaderCompile, "vertex"},
		{"fragment compile", func() *fakeDriver {
			d := newFakeDriver()
			d.failStage = gl.FRAGMENT_SHADER
			return d
		}, "main", nil, core.ErrShaderCompile, "fragment"},
		{"link", func() *fakeDriver {
			d := newFakeDriver()
			d.failLink = true
			return d
		}, "main", nil, core.ErrShaderCompile, "link"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := core.NewSurfaces()
			_ = reg.Register(&fakeGLSurface{name: "main", w: 1, h: 1, currentErr: tt.surfErr})
			_ = reg.Register(plainSurface{})

			b := New(withDriver(tt.driver()))
			err := b.Init(reg, tt.surface)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Init = %v, want %v", err, tt.want)
			}
			if tt.stage != "" {
				var sce *core.ShaderCompileError
				if !errors.As(err, &sce) || sce.Stage != tt.stage || sce.Log == "" {
					t.Errorf("ShaderCompileError = %+v, want stage %s with log", sce, tt.stage)
				}
			}
			if st := b.Render(sprite.NewRegistry()); st != (gfx.Statistics{}) {
				t.Errorf("failed backend rendered %+v", st)
			}
			b.Shutdown()
		})
	}
}

func TestHeadlessSurfaceFailsBeforeGL(t *testing.T) {
	reg := core.NewSurfaces()
	if err := reg.Register(headless.New("canvas", 64, 64)); err != nil {
		t.Fatal(err)
	}
	d := newFakeDriver()
	err := New(withDriver(d)).Init(reg, "canvas")
	if !errors.Is(err, core.ErrContextUnavailable) {
		t.Fatalf("Init = %v, want ErrContextUnavailable", err)
	}
	if d.inits != 0 || d.next != 0 {
		t.Errorf("driver touched: inits=%d objects=%d", d.inits, d.next)
	}
}

func TestFragmentFailureReleasesVertexShader(t *testing.T) {
	d := newFakeDriver()
	d.failStage = gl.FRAGMENT_SHADER
	if _, _, err := setup(t, d); err == nil {
		t.Fatal("Init succeeded")
	}
	// failed fragment + orphaned vertex
	if d.deletedShader != 2 {
		t.Errorf("deleted %d shaders, want 2", d.deletedShader)
	}
}

func TestRenderOneDrawPerSprite(t *testing.T) {
	d := newFakeDriver()
	b, sf, err := setup(t, d)
	if err != nil {
		t.Fatal(err)
	}
	reg := sprite.NewRegistry()
	reg.Create(10, 20, 32, 32, colors.Red)
	reg.Create(100, 100, 16, 8, colors.Green)
	reg.Create(400, 300, 64, 64, colors.Blue)

	st := b.Render(reg)
	if st.DrawCalls != 3 || st.QuadCount != 3 || st.IndexCount != 18 {
		t.Errorf("stats = %+v", st)
	}
	if len(d.draws) != 3 {
		t.Fatalf("draws = %d, want 3", len(d.draws))
	}
	for i, n := range d.indexCounts {
		if n != 6 {
			t.Errorf("draw %d used %d indices", i, n)
		}
	}
	want := []drawRecord{
		{[2]float32{10, 20}, [2]float32{32, 32}, colors.Red},
		{[2]float32{100, 100}, [2]float32{16, 8}, colors.Green},
		{[2]float32{400, 300}, [2]float32{64, 64}, colors.Blue},
	}
	for i := range want {
		if d.draws[i] != want[i] {
			t.Errorf("draw %d = %+v, want %+v", i, d.draws[i], want[i])
		}
	}
	if d.projUploads != 1 || d.clears != 1 || sf.swaps != 1 {
		t.Errorf("projUploads=%d clears=%d swaps=%d, want 1 each", d.projUploads, d.clears, sf.swaps)
	}
	if d.viewport != [4]int32{0, 0, 800, 600} {
		t.Errorf("viewport = %v", d.viewport)
	}
}

func TestResizeChangesProjection(t *testing.T) {
	d := newFakeDriver()
	b, _, err := setup(t, d)
	if err != nil {
		t.Fatal(err)
	}
	b.Resize(1024, 768)
	b.Render(sprite.NewRegistry())

	x, y := b.Projection().TransformPoint(1024, 768)
	if math.Abs(float64(x-1)) > 1e-5 || math.Abs(float64(y+1)) > 1e-5 {
		t.Errorf("bottom-right -> (%v,%v)", x, y)
	}
	if d.proj != [16]float32(b.Projection()) {
		t.Error("uploaded projection differs from Projection()")
	}
	if d.viewport != [4]int32{0, 0, 1024, 768} {
		t.Errorf("viewport = %v", d.viewport)
	}
}

func TestShutdownReleasesResources(t *testing.T) {
	d := newFakeDriver()
	b, _, err := setup(t, d)
	if err != nil {
		t.Fatal(err)
	}
	b.Shutdown()
	b.Shutdown()
	if d.deleted["program"] != 1 || d.deleted["vao"] != 1 || d.deleted["buffer"] != 2 {
		t.Errorf("deleted = %v", d.deleted)
	}
}
