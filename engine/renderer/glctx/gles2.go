package glctx

import (
	"fmt"
	"strings"

	gl "github.com/go-gl/gl/v3.1/gles2"
)

// Backend adapts the go-gl ES2 bindings to the Context interface. It must
// be created after a GL context is current on the calling thread (the
// window host arranges this) and driven only from that thread.
type Backend struct{}

var _ Context = (*Backend)(nil)

// NewBackend initializes the GL function pointers against the current
// context and returns the adapter.
//
// Returns:
//   - *Backend: the driver adapter
//   - error: when the bindings fail to initialize (no current context)
func NewBackend() (*Backend, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GL bindings: %w", err)
	}
	return &Backend{}, nil
}

func (*Backend) CreateBuffer() Buffer {
	var id uint32
	gl.GenBuffers(1, &id)
	return Buffer{Value: id}
}

func (*Backend) DeleteBuffer(b Buffer) {
	gl.DeleteBuffers(1, &b.Value)
}

func (*Backend) BindBuffer(target Enum, b Buffer) {
	gl.BindBuffer(uint32(target), b.Value)
}

func (*Backend) BufferData(target Enum, data []byte, usage Enum) {
	if len(data) == 0 {
		gl.BufferData(uint32(target), 0, nil, uint32(usage))
		return
	}
	gl.BufferData(uint32(target), len(data), gl.Ptr(data), uint32(usage))
}

func (*Backend) BufferSubData(target Enum, offset int, data []byte) {
	if len(data) == 0 {
		return
	}
	gl.BufferSubData(uint32(target), offset, len(data), gl.Ptr(data))
}

func (*Backend) CreateTexture() Texture {
	var id uint32
	gl.GenTextures(1, &id)
	return Texture{Value: id}
}

func (*Backend) DeleteTexture(t Texture) {
	gl.DeleteTextures(1, &t.Value)
}

func (*Backend) ActiveTexture(unit Enum) {
	gl.ActiveTexture(uint32(unit))
}

func (*Backend) BindTexture(target Enum, t Texture) {
	gl.BindTexture(uint32(target), t.Value)
}

func (*Backend) TexImage2D(target Enum, level int, internalFormat Enum, width, height int, format, ty Enum, data []byte) {
	var ptr = gl.Ptr(data)
	if len(data) == 0 {
		ptr = nil
	}
	gl.TexImage2D(uint32(target), int32(level), int32(internalFormat), int32(width), int32(height), 0, uint32(format), uint32(ty), ptr)
}

func (*Backend) CompressedTexImage2D(target Enum, level int, internalFormat Enum, width, height int, data []byte) {
	if len(data) == 0 {
		return
	}
	gl.CompressedTexImage2D(uint32(target), int32(level), uint32(internalFormat), int32(width), int32(height), 0, int32(len(data)), gl.Ptr(data))
}

func (*Backend) TexParameteri(target, pname Enum, param int) {
	gl.TexParameteri(uint32(target), uint32(pname), int32(param))
}

func (*Backend) TexParameterf(target, pname Enum, param float32) {
	gl.TexParameterf(uint32(target), uint32(pname), param)
}

func (*Backend) GenerateMipmap(target Enum) {
	gl.GenerateMipmap(uint32(target))
}

func (*Backend) PixelStorei(pname Enum, param int) {
	gl.PixelStorei(uint32(pname), int32(param))
}

func (*Backend) CreateFramebuffer() Framebuffer {
	var id uint32
	gl.GenFramebuffers(1, &id)
	return Framebuffer{Value: id}
}

func (*Backend) DeleteFramebuffer(f Framebuffer) {
	gl.DeleteFramebuffers(1, &f.Value)
}

func (*Backend) BindFramebuffer(target Enum, f Framebuffer) {
	gl.BindFramebuffer(uint32(target), f.Value)
}

func (*Backend) FramebufferTexture2D(target, attachment, texTarget Enum, t Texture, level int) {
	gl.FramebufferTexture2D(uint32(target), uint32(attachment), uint32(texTarget), t.Value, int32(level))
}

func (*Backend) CreateRenderbuffer() Renderbuffer {
	var id uint32
	gl.GenRenderbuffers(1, &id)
	return Renderbuffer{Value: id}
}

func (*Backend) DeleteRenderbuffer(r Renderbuffer) {
	gl.DeleteRenderbuffers(1, &r.Value)
}

func (*Backend) BindRenderbuffer(target Enum, r Renderbuffer) {
	gl.BindRenderbuffer(uint32(target), r.Value)
}

func (*Backend) RenderbufferStorage(target, internalFormat Enum, width, height int) {
	gl.RenderbufferStorage(uint32(target), uint32(internalFormat), int32(width), int32(height))
}

func (*Backend) FramebufferRenderbuffer(target, attachment, rbTarget Enum, r Renderbuffer) {
	gl.FramebufferRenderbuffer(uint32(target), uint32(attachment), uint32(rbTarget), r.Value)
}

func (*Backend) CreateShader(ty Enum) Shader {
	return Shader{Value: gl.CreateShader(uint32(ty))}
}

func (*Backend) ShaderSource(s Shader, src string) {
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(s.Value, 1, csources, nil)
	free()
}

func (*Backend) CompileShader(s Shader) {
	gl.CompileShader(s.Value)
}

func (*Backend) GetShaderi(s Shader, pname Enum) int {
	var v int32
	gl.GetShaderiv(s.Value, uint32(pname), &v)
	return int(v)
}

func (*Backend) GetShaderInfoLog(s Shader) string {
	var length int32
	gl.GetShaderiv(s.Value, gl.INFO_LOG_LENGTH, &length)
	if length == 0 {
		return ""
	}
	logText := strings.Repeat("\x00", int(length+1))
	gl.GetShaderInfoLog(s.Value, length, nil, gl.Str(logText))
	return strings.TrimRight(logText, "\x00")
}

func (*Backend) DeleteShader(s Shader) {
	gl.DeleteShader(s.Value)
}

func (*Backend) CreateProgram() Program {
	return Program{Value: gl.CreateProgram()}
}

func (*Backend) AttachShader(p Program, s Shader) {
	gl.AttachShader(p.Value, s.Value)
}

func (*Backend) LinkProgram(p Program) {
	gl.LinkProgram(p.Value)
}

func (*Backend) GetProgrami(p Program, pname Enum) int {
	var v int32
	gl.GetProgramiv(p.Value, uint32(pname), &v)
	return int(v)
}

func (*Backend) GetProgramInfoLog(p Program) string {
	var length int32
	gl.GetProgramiv(p.Value, gl.INFO_LOG_LENGTH, &length)
	if length == 0 {
		return ""
	}
	logText := strings.Repeat("\x00", int(length+1))
	gl.GetProgramInfoLog(p.Value, length, nil, gl.Str(logText))
	return strings.TrimRight(logText, "\x00")
}

func (*Backend) UseProgram(p Program) {
	gl.UseProgram(p.Value)
}

func (*Backend) DeleteProgram(p Program) {
	gl.DeleteProgram(p.Value)
}

func (*Backend) GetUniformLocation(p Program, name string) Uniform {
	return Uniform{Value: gl.GetUniformLocation(p.Value, gl.Str(name + "\x00"))}
}

func (*Backend) GetAttribLocation(p Program, name string) Attrib {
	return Attrib{Value: gl.GetAttribLocation(p.Value, gl.Str(name + "\x00"))}
}

func (*Backend) Uniform1i(u Uniform, v int) {
	gl.Uniform1i(u.Value, int32(v))
}

func (*Backend) Uniform1f(u Uniform, v float32) {
	gl.Uniform1f(u.Value, v)
}

func (*Backend) Uniform2f(u Uniform, x, y float32) {
	gl.Uniform2f(u.Value, x, y)
}

func (*Backend) Uniform3f(u Uniform, x, y, z float32) {
	gl.Uniform3f(u.Value, x, y, z)
}

func (*Backend) Uniform4f(u Uniform, x, y, z, w float32) {
	gl.Uniform4f(u.Value, x, y, z, w)
}

func (*Backend) Uniform1iv(u Uniform, v []int32) {
	if len(v) == 0 {
		return
	}
	gl.Uniform1iv(u.Value, int32(len(v)), &v[0])
}

func (*Backend) Uniform1fv(u Uniform, v []float32) {
	if len(v) == 0 {
		return
	}
	gl.Uniform1fv(u.Value, int32(len(v)), &v[0])
}

func (*Backend) Uniform2fv(u Uniform, v []float32) {
	if len(v) == 0 {
		return
	}
	gl.Uniform2fv(u.Value, int32(len(v)/2), &v[0])
}

func (*Backend) Uniform3fv(u Uniform, v []float32) {
	if len(v) == 0 {
		return
	}
	gl.Uniform3fv(u.Value, int32(len(v)/3), &v[0])
}

func (*Backend) Uniform4fv(u Uniform, v []float32) {
	if len(v) == 0 {
		return
	}
	gl.Uniform4fv(u.Value, int32(len(v)/4), &v[0])
}

func (*Backend) UniformMatrix3fv(u Uniform, v []float32) {
	if len(v) == 0 {
		return
	}
	gl.UniformMatrix3fv(u.Value, int32(len(v)/9), false, &v[0])
}

func (*Backend) UniformMatrix4fv(u Uniform, v []float32) {
	if len(v) == 0 {
		return
	}
	gl.UniformMatrix4fv(u.Value, int32(len(v)/16), false, &v[0])
}

func (*Backend) EnableVertexAttribArray(a Attrib) {
	gl.EnableVertexAttribArray(uint32(a.Value))
}

func (*Backend) DisableVertexAttribArray(a Attrib) {
	gl.DisableVertexAttribArray(uint32(a.Value))
}

func (*Backend) VertexAttribPointer(a Attrib, size int, ty Enum, normalized bool, stride, offset int) {
	gl.VertexAttribPointerWithOffset(uint32(a.Value), int32(size), uint32(ty), normalized, int32(stride), uintptr(offset))
}

func (*Backend) Viewport(x, y, w, h int) {
	gl.Viewport(int32(x), int32(y), int32(w), int32(h))
}

func (*Backend) Scissor(x, y, w, h int) {
	gl.Scissor(int32(x), int32(y), int32(w), int32(h))
}

func (*Backend) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (*Backend) ClearDepth(d float32) {
	gl.ClearDepthf(d)
}

func (*Backend) ClearStencil(s int) {
	gl.ClearStencil(int32(s))
}

func (*Backend) Clear(mask Enum) {
	gl.Clear(uint32(mask))
}

func (*Backend) Enable(capability Enum) {
	gl.Enable(uint32(capability))
}

func (*Backend) Disable(capability Enum) {
	gl.Disable(uint32(capability))
}

func (*Backend) BlendEquation(mode Enum) {
	gl.BlendEquation(uint32(mode))
}

func (*Backend) BlendEquationSeparate(rgb, alpha Enum) {
	gl.BlendEquationSeparate(uint32(rgb), uint32(alpha))
}

func (*Backend) BlendFunc(src, dst Enum) {
	gl.BlendFunc(uint32(src), uint32(dst))
}

func (*Backend) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha Enum) {
	gl.BlendFuncSeparate(uint32(srcRGB), uint32(dstRGB), uint32(srcAlpha), uint32(dstAlpha))
}

func (*Backend) DepthFunc(fn Enum) {
	gl.DepthFunc(uint32(fn))
}

func (*Backend) DepthMask(flag bool) {
	gl.DepthMask(flag)
}

func (*Backend) ColorMask(r, g, b, a bool) {
	gl.ColorMask(r, g, b, a)
}

func (*Backend) CullFace(mode Enum) {
	gl.CullFace(uint32(mode))
}

func (*Backend) FrontFace(mode Enum) {
	gl.FrontFace(uint32(mode))
}

func (*Backend) PolygonOffset(factor, units float32) {
	gl.PolygonOffset(factor, units)
}

func (*Backend) LineWidth(w float32) {
	gl.LineWidth(w)
}

func (*Backend) DrawArrays(mode Enum, first, count int) {
	gl.DrawArrays(uint32(mode), int32(first), int32(count))
}

func (*Backend) DrawElements(mode Enum, count int, ty Enum, offset int) {
	gl.DrawElementsWithOffset(uint32(mode), int32(count), uint32(ty), uintptr(offset))
}

func (*Backend) GetInteger(pname Enum) int {
	var v int32
	gl.GetIntegerv(uint32(pname), &v)
	return int(v)
}

func (*Backend) GetString(pname Enum) string {
	return gl.GoStr(gl.GetString(uint32(pname)))
}

func (*Backend) GetError() Enum {
	return Enum(gl.GetError())
}

func (*Backend) GetShaderPrecisionFormat(shaderType, precisionType Enum) (rangeMin, rangeMax, precision int) {
	var xrange [2]int32
	var prec int32
	gl.GetShaderPrecisionFormat(uint32(shaderType), uint32(precisionType), &xrange[0], &prec)
	return int(xrange[0]), int(xrange[1]), int(prec)
}
