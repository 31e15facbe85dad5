package glbackend

import (
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// driver is the slice of OpenGL the backend uses. nativeDriver forwards to
// go-gl; tests substitute a recorder.
type driver interface {
	Init() error
	Version() string

	CreateShader(stage uint32) uint32
	ShaderSource(sh uint32, src string)
	CompileShader(sh uint32)
	ShaderCompiled(sh uint32) bool
	ShaderInfoLog(sh uint32) string
	DeleteShader(sh uint32)

	CreateProgram() uint32
	AttachShader(prog, sh uint32)
	LinkProgram(prog uint32)
	ProgramLinked(prog uint32) bool
	ProgramInfoLog(prog uint32) string
	DeleteProgram(prog uint32)
	UseProgram(prog uint32)
	UniformLocation(prog uint32, name string) int32

	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)
	GenBuffer() uint32
	BindBuffer(target, buf uint32)
	BufferFloats(target uint32, data []float32)
	BufferIndices(target uint32, data []uint32)
	DeleteBuffer(buf uint32)
	VertexAttrib2f(loc, stride uint32, offset int)

	EnableBlend(src, dst uint32)
	BindFramebuffer(fb uint32)
	Viewport(x, y, w, h int32)
	Clear(r, g, b, a float32)

	UniformMatrix4(loc int32, m *[16]float32)
	Uniform2f(loc int32, x, y float32)
	Uniform4f(loc int32, x, y, z, w float32)
	DrawQuad(indexCount int32)

	GenTexture() uint32
	DeleteTexture(tex uint32)
	TexImageRGBA(tex uint32, w, h int32, pix []uint8)
	GenFramebuffer() uint32
	DeleteFramebuffer(fb uint32)
	AttachReadTexture(fb, tex uint32) bool
	BlitToScreen(fb uint32, srcW, srcH, dstW, dstH int32)
}

type nativeDriver struct{}

func (nativeDriver) Init() error { return gl.Init() }

func (nativeDriver) Version() string { return gl.GoStr(gl.GetString(gl.VERSION)) }

func (nativeDriver) CreateShader(stage uint32) uint32 { return gl.CreateShader(stage) }

func (nativeDriver) ShaderSource(sh uint32, src string) {
	if !strings.HasSuffix(src, "\x00") {
		src += "\x00"
	}
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
}

func (nativeDriver) CompileShader(sh uint32) { gl.CompileShader(sh) }

func (nativeDriver) ShaderCompiled(sh uint32) bool {
	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (nativeDriver) ShaderInfoLog(sh uint32) string {
	var logLen int32
	gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
	if logLen <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLen))
	gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00\n")
}

func (nativeDriver) DeleteShader(sh uint32) { gl.DeleteShader(sh) }

func (nativeDriver) CreateProgram() uint32 { return gl.CreateProgram() }

func (nativeDriver) AttachShader(prog, sh uint32) { gl.AttachShader(prog, sh) }

func (nativeDriver) LinkProgram(prog uint32) { gl.LinkProgram(prog) }

func (nativeDriver) ProgramLinked(prog uint32) bool {
	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (nativeDriver) ProgramInfoLog(prog uint32) string {
	var logLen int32
	gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
	if logLen <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLen))
	gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00\n")
}

func (nativeDriver) DeleteProgram(prog uint32) { gl.DeleteProgram(prog) }

func (nativeDriver) UseProgram(prog uint32) { gl.UseProgram(prog) }

func (nativeDriver) UniformLocation(prog uint32, name string) int32 {
	return gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
}

func (nativeDriver) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (nativeDriver) BindVertexArray(vao uint32) { gl.BindVertexArray(vao) }

func (nativeDriver) DeleteVertexArray(vao uint32) { gl.DeleteVertexArrays(1, &vao) }

func (nativeDriver) GenBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}

func (nativeDriver) BindBuffer(target, buf uint32) { gl.BindBuffer(target, buf) }

func (nativeDriver) BufferFloats(target uint32, data []float32) {
	gl.BufferData(target, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (nativeDriver) BufferIndices(target uint32, data []uint32) {
	gl.BufferData(target, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (nativeDriver) DeleteBuffer(buf uint32) { gl.DeleteBuffers(1, &buf) }

func (nativeDriver) VertexAttrib2f(loc, stride uint32, offset int) {
	gl.EnableVertexAttribArray(loc)
	gl.VertexAttribPointer(loc, 2, gl.FLOAT, false, int32(stride), gl.PtrOffset(offset))
}

func (nativeDriver) EnableBlend(src, dst uint32) {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(src, dst)
}

func (nativeDriver) BindFramebuffer(fb uint32) { gl.BindFramebuffer(gl.FRAMEBUFFER, fb) }

func (nativeDriver) Viewport(x, y, w, h int32) { gl.Viewport(x, y, w, h) }

func (nativeDriver) Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (nativeDriver) UniformMatrix4(loc int32, m *[16]float32) {
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}

func (nativeDriver) Uniform2f(loc int32, x, y float32) { gl.Uniform2f(loc, x, y) }

func (nativeDriver) Uniform4f(loc int32, x, y, z, w float32) { gl.Uniform4f(loc, x, y, z, w) }

func (nativeDriver) DrawQuad(indexCount int32) {
	gl.DrawElements(gl.TRIANGLES, indexCount, gl.UNSIGNED_INT, nil)
}

func (nativeDriver) GenTexture() uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	return tex
}

func (nativeDriver) DeleteTexture(tex uint32) { gl.DeleteTextures(1, &tex) }

func (nativeDriver) TexImageRGBA(tex uint32, w, h int32, pix []uint8) {
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, w, h, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (nativeDriver) GenFramebuffer() uint32 {
	var fb uint32
	gl.GenFramebuffers(1, &fb)
	return fb
}

func (nativeDriver) DeleteFramebuffer(fb uint32) { gl.DeleteFramebuffers(1, &fb) }

func (nativeDriver) AttachReadTexture(fb, tex uint32) bool {
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, fb)
	gl.FramebufferTexture2D(gl.READ_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, tex, 0)
	ok := gl.CheckFramebufferStatus(gl.READ_FRAMEBUFFER) == gl.FRAMEBUFFER_COMPLETE
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
	return ok
}

// BlitToScreen copies fb onto the default framebuffer, flipping rows so the
// top-down CPU frame lands upright.
func (nativeDriver) BlitToScreen(fb uint32, srcW, srcH, dstW, dstH int32) {
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, fb)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	gl.Viewport(0, 0, dstW, dstH)
	gl.BlitFramebuffer(0, 0, srcW, srcH, 0, dstH, dstW, 0, gl.COLOR_BUFFER_BIT, gl.NEAREST)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
}
