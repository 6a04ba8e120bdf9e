package renderer

import (
	"fmt"

	"github.com/Carmen-Shannon/trigl/engine/renderer/glctx"
)

// fakeGL is a recording glctx.Context for tests: object creation hands out
// sequential names, every call appends to the log, and shader compilation
// succeeds unless failCompile is set.
type fakeGL struct {
	nextName uint32

	calls []string

	failCompile bool
	failLink    bool

	drawElements []fakeDraw
	drawArrays   []fakeDraw

	clearColor [4]float32
	clears     int

	liveBuffers  map[uint32]bool
	livePrograms map[uint32]bool
	liveTextures map[uint32]bool

	uniformValues map[string][]float32
	uniforms      map[uint32]map[string]glctx.Uniform
	uniformNames  map[int32]string
	nextLocation  int32
}

type fakeDraw struct {
	mode   glctx.Enum
	count  int
	offset int
	first  int
}

var _ glctx.Context = (*fakeGL)(nil)

func newFakeGL() *fakeGL {
	return &fakeGL{
		liveBuffers:   make(map[uint32]bool),
		livePrograms:  make(map[uint32]bool),
		liveTextures:  make(map[uint32]bool),
		uniformValues: make(map[string][]float32),
		uniforms:      make(map[uint32]map[string]glctx.Uniform),
		uniformNames:  make(map[int32]string),
	}
}

func (f *fakeGL) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeGL) countCalls(prefix string) int {
	n := 0
	for _, c := range f.calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

func (f *fakeGL) name() uint32 {
	f.nextName++
	return f.nextName
}

func (f *fakeGL) CreateBuffer() glctx.Buffer {
	id := f.name()
	f.liveBuffers[id] = true
	return glctx.Buffer{Value: id}
}

func (f *fakeGL) DeleteBuffer(b glctx.Buffer) {
	delete(f.liveBuffers, b.Value)
}

func (f *fakeGL) BindBuffer(target glctx.Enum, b glctx.Buffer) {
	f.record("BindBuffer(%d,%d)", target, b.Value)
}

func (f *fakeGL) BufferData(target glctx.Enum, data []byte, usage glctx.Enum) {
	f.record("BufferData(%d,%d)", target, len(data))
}

func (f *fakeGL) BufferSubData(target glctx.Enum, offset int, data []byte) {
	f.record("BufferSubData(%d,%d,%d)", target, offset, len(data))
}

func (f *fakeGL) CreateTexture() glctx.Texture {
	id := f.name()
	f.liveTextures[id] = true
	return glctx.Texture{Value: id}
}

func (f *fakeGL) DeleteTexture(t glctx.Texture) {
	delete(f.liveTextures, t.Value)
}

func (f *fakeGL) ActiveTexture(unit glctx.Enum) {
	f.record("ActiveTexture(%d)", unit)
}

func (f *fakeGL) BindTexture(target glctx.Enum, t glctx.Texture) {
	f.record("BindTexture(%d,%d)", target, t.Value)
}

func (f *fakeGL) TexImage2D(target glctx.Enum, level int, internalFormat glctx.Enum, width, height int, format, ty glctx.Enum, data []byte) {
	f.record("TexImage2D(%d,%d,%dx%d)", target, level, width, height)
}

func (f *fakeGL) CompressedTexImage2D(target glctx.Enum, level int, internalFormat glctx.Enum, width, height int, data []byte) {
	f.record("CompressedTexImage2D(%d,%d,%dx%d)", target, level, width, height)
}

func (f *fakeGL) TexParameteri(target, pname glctx.Enum, param int)       {}
func (f *fakeGL) TexParameterf(target, pname glctx.Enum, param float32)   {}
func (f *fakeGL) GenerateMipmap(target glctx.Enum)                        { f.record("GenerateMipmap(%d)", target) }
func (f *fakeGL) PixelStorei(pname glctx.Enum, param int)                 {}

func (f *fakeGL) CreateFramebuffer() glctx.Framebuffer {
	return glctx.Framebuffer{Value: f.name()}
}

func (f *fakeGL) DeleteFramebuffer(fb glctx.Framebuffer) {}

func (f *fakeGL) BindFramebuffer(target glctx.Enum, fb glctx.Framebuffer) {
	f.record("BindFramebuffer(%d,%d)", target, fb.Value)
}

func (f *fakeGL) FramebufferTexture2D(target, attachment, texTarget glctx.Enum, t glctx.Texture, level int) {
}

func (f *fakeGL) CreateRenderbuffer() glctx.Renderbuffer {
	return glctx.Renderbuffer{Value: f.name()}
}

func (f *fakeGL) DeleteRenderbuffer(r glctx.Renderbuffer)                {}
func (f *fakeGL) BindRenderbuffer(target glctx.Enum, r glctx.Renderbuffer) {}
func (f *fakeGL) RenderbufferStorage(target, internalFormat glctx.Enum, width, height int) {
}
func (f *fakeGL) FramebufferRenderbuffer(target, attachment, rbTarget glctx.Enum, r glctx.Renderbuffer) {
}

func (f *fakeGL) CreateShader(ty glctx.Enum) glctx.Shader {
	return glctx.Shader{Value: f.name()}
}

func (f *fakeGL) ShaderSource(s glctx.Shader, src string) {}
func (f *fakeGL) CompileShader(s glctx.Shader)            {}

func (f *fakeGL) GetShaderi(s glctx.Shader, pname glctx.Enum) int {
	if pname == glctx.COMPILE_STATUS && f.failCompile {
		return 0
	}
	return 1
}

func (f *fakeGL) GetShaderInfoLog(s glctx.Shader) string { return "fake compile error" }
func (f *fakeGL) DeleteShader(s glctx.Shader)            {}

func (f *fakeGL) CreateProgram() glctx.Program {
	id := f.name()
	f.livePrograms[id] = true
	f.uniforms[id] = make(map[string]glctx.Uniform)
	return glctx.Program{Value: id}
}

func (f *fakeGL) AttachShader(p glctx.Program, s glctx.Shader) {}
func (f *fakeGL) LinkProgram(p glctx.Program)                  {}

func (f *fakeGL) GetProgrami(p glctx.Program, pname glctx.Enum) int {
	if pname == glctx.LINK_STATUS && f.failLink {
		return 0
	}
	return 1
}

func (f *fakeGL) GetProgramInfoLog(p glctx.Program) string { return "fake link error" }

func (f *fakeGL) UseProgram(p glctx.Program) {
	f.record("UseProgram(%d)", p.Value)
}

func (f *fakeGL) DeleteProgram(p glctx.Program) {
	delete(f.livePrograms, p.Value)
}

func (f *fakeGL) GetUniformLocation(p glctx.Program, name string) glctx.Uniform {
	if u, ok := f.uniforms[p.Value][name]; ok {
		return u
	}
	f.nextLocation++
	u := glctx.Uniform{Value: f.nextLocation}
	f.uniforms[p.Value][name] = u
	f.uniformNames[f.nextLocation] = name
	return u
}

func (f *fakeGL) GetAttribLocation(p glctx.Program, name string) glctx.Attrib {
	f.nextLocation++
	return glctx.Attrib{Value: f.nextLocation}
}

func (f *fakeGL) Uniform1i(u glctx.Uniform, v int) {
	f.uniformValues[f.uniformNames[u.Value]] = []float32{float32(v)}
}

func (f *fakeGL) Uniform1f(u glctx.Uniform, v float32) {
	f.uniformValues[f.uniformNames[u.Value]] = []float32{v}
}

func (f *fakeGL) Uniform2f(u glctx.Uniform, x, y float32) {
	f.uniformValues[f.uniformNames[u.Value]] = []float32{x, y}
}

func (f *fakeGL) Uniform3f(u glctx.Uniform, x, y, z float32) {
	f.uniformValues[f.uniformNames[u.Value]] = []float32{x, y, z}
}

func (f *fakeGL) Uniform4f(u glctx.Uniform, x, y, z, w float32) {
	f.uniformValues[f.uniformNames[u.Value]] = []float32{x, y, z, w}
}

func (f *fakeGL) Uniform1iv(u glctx.Uniform, v []int32) {}

func (f *fakeGL) Uniform1fv(u glctx.Uniform, v []float32) {
	f.uniformValues[f.uniformNames[u.Value]] = append([]float32(nil), v...)
}

func (f *fakeGL) Uniform2fv(u glctx.Uniform, v []float32) {
	f.uniformValues[f.uniformNames[u.Value]] = append([]float32(nil), v...)
}

func (f *fakeGL) Uniform3fv(u glctx.Uniform, v []float32) {
	f.uniformValues[f.uniformNames[u.Value]] = append([]float32(nil), v...)
}

func (f *fakeGL) Uniform4fv(u glctx.Uniform, v []float32) {
	f.uniformValues[f.uniformNames[u.Value]] = append([]float32(nil), v...)
}

func (f *fakeGL) UniformMatrix3fv(u glctx.Uniform, v []float32) {
	f.uniformValues[f.uniformNames[u.Value]] = append([]float32(nil), v...)
}

func (f *fakeGL) UniformMatrix4fv(u glctx.Uniform, v []float32) {
	f.uniformValues[f.uniformNames[u.Value]] = append([]float32(nil), v...)
}

func (f *fakeGL) EnableVertexAttribArray(a glctx.Attrib)  {}
func (f *fakeGL) DisableVertexAttribArray(a glctx.Attrib) {}
func (f *fakeGL) VertexAttribPointer(a glctx.Attrib, size int, ty glctx.Enum, normalized bool, stride, offset int) {
}

func (f *fakeGL) Viewport(x, y, w, h int) { f.record("Viewport(%d,%d,%d,%d)", x, y, w, h) }
func (f *fakeGL) Scissor(x, y, w, h int)  {}

func (f *fakeGL) ClearColor(r, g, b, a float32) {
	f.clearColor = [4]float32{r, g, b, a}
}

func (f *fakeGL) ClearDepth(d float32) {}
func (f *fakeGL) ClearStencil(s int)   {}

func (f *fakeGL) Clear(mask glctx.Enum) {
	f.clears++
	f.record("Clear(%#x)", mask)
}

func (f *fakeGL) Enable(capability glctx.Enum)  { f.record("Enable(%#x)", capability) }
func (f *fakeGL) Disable(capability glctx.Enum) { f.record("Disable(%#x)", capability) }

func (f *fakeGL) BlendEquation(mode glctx.Enum) { f.record("BlendEquation(%#x)", mode) }
func (f *fakeGL) BlendEquationSeparate(rgb, alpha glctx.Enum) {
	f.record("BlendEquationSeparate(%#x,%#x)", rgb, alpha)
}
func (f *fakeGL) BlendFunc(src, dst glctx.Enum) { f.record("BlendFunc(%#x,%#x)", src, dst) }
func (f *fakeGL) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha glctx.Enum) {
	f.record("BlendFuncSeparate(%#x,%#x,%#x,%#x)", srcRGB, dstRGB, srcAlpha, dstAlpha)
}

func (f *fakeGL) DepthFunc(fn glctx.Enum)            {}
func (f *fakeGL) DepthMask(flag bool)                { f.record("DepthMask(%v)", flag) }
func (f *fakeGL) ColorMask(r, g, b, a bool)          {}
func (f *fakeGL) CullFace(mode glctx.Enum)           {}
func (f *fakeGL) FrontFace(mode glctx.Enum)          { f.record("FrontFace(%#x)", mode) }
func (f *fakeGL) PolygonOffset(factor, units float32) {
	f.record("PolygonOffset(%v,%v)", factor, units)
}
func (f *fakeGL) LineWidth(w float32) { f.record("LineWidth(%v)", w) }

func (f *fakeGL) DrawArrays(mode glctx.Enum, first, count int) {
	f.drawArrays = append(f.drawArrays, fakeDraw{mode: mode, first: first, count: count})
	f.record("DrawArrays(%d,%d,%d)", mode, first, count)
}

func (f *fakeGL) DrawElements(mode glctx.Enum, count int, ty glctx.Enum, offset int) {
	f.drawElements = append(f.drawElements, fakeDraw{mode: mode, count: count, offset: offset})
	f.record("DrawElements(%d,%d,%d)", mode, count, offset)
}

func (f *fakeGL) GetInteger(pname glctx.Enum) int {
	switch pname {
	case glctx.MAX_TEXTURE_IMAGE_UNITS:
		return 8
	case glctx.MAX_VERTEX_TEXTURE_IMAGE_UNITS:
		return 4
	case glctx.MAX_TEXTURE_SIZE:
		return 4096
	case glctx.MAX_CUBE_MAP_TEXTURE_SIZE:
		return 4096
	case glctx.MAX_VERTEX_UNIFORM_VECTORS:
		return 256
	}
	return 0
}

func (f *fakeGL) GetString(pname glctx.Enum) string {
	if pname == glctx.EXTENSIONS {
		return "GL_OES_standard_derivatives GL_EXT_texture_filter_anisotropic"
	}
	return "fake"
}

func (f *fakeGL) GetError() glctx.Enum { return glctx.NO_ERROR }

func (f *fakeGL) GetShaderPrecisionFormat(shaderType, precisionType glctx.Enum) (int, int, int) {
	return -126, 127, 23
}
