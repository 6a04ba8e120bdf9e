// package glctx narrows the GPU API down to the operation set the renderer
// actually issues: an OpenGL-ES-2-class programmable pipeline. The renderer
// talks only to the Context interface; Backend adapts the real driver and
// tests substitute a recording fake.
package glctx

// Enum is a GL enumerant.
type Enum uint32

// Handle types. A zero Value is the null object for every handle kind;
// uniform and attribute locations use -1 as their invalid value, matching
// the driver convention.
type (
	Buffer       struct{ Value uint32 }
	Texture      struct{ Value uint32 }
	Framebuffer  struct{ Value uint32 }
	Renderbuffer struct{ Value uint32 }
	Program      struct{ Value uint32 }
	Shader       struct{ Value uint32 }
	Uniform      struct{ Value int32 }
	Attrib       struct{ Value int32 }
)

// Valid reports whether the buffer names a GPU object.
func (b Buffer) Valid() bool { return b.Value != 0 }

// Valid reports whether the texture names a GPU object.
func (t Texture) Valid() bool { return t.Value != 0 }

// Valid reports whether the framebuffer names a GPU object.
func (f Framebuffer) Valid() bool { return f.Value != 0 }

// Valid reports whether the renderbuffer names a GPU object.
func (r Renderbuffer) Valid() bool { return r.Value != 0 }

// Valid reports whether the program names a GPU object.
func (p Program) Valid() bool { return p.Value != 0 }

// Valid reports whether the shader names a GPU object.
func (s Shader) Valid() bool { return s.Value != 0 }

// Valid reports whether the uniform location was found at link time.
func (u Uniform) Valid() bool { return u.Value >= 0 }

// Valid reports whether the attribute location was found at link time.
func (a Attrib) Valid() bool { return a.Value >= 0 }

// GL enumerant values, as published by the Khronos ES 2.0 registry.
const (
	// Buffer targets and usage.
	ARRAY_BUFFER         Enum = 0x8892
	ELEMENT_ARRAY_BUFFER Enum = 0x8893
	STATIC_DRAW          Enum = 0x88E4
	DYNAMIC_DRAW         Enum = 0x88E8

	// Primitive modes.
	POINTS     Enum = 0x0000
	LINES      Enum = 0x0001
	LINE_STRIP Enum = 0x0003
	TRIANGLES  Enum = 0x0004

	// Data types.
	UNSIGNED_BYTE  Enum = 0x1401
	UNSIGNED_SHORT Enum = 0x1403
	FLOAT          Enum = 0x1406

	// Pixel formats.
	ALPHA           Enum = 0x1906
	RGB             Enum = 0x1907
	RGBA            Enum = 0x1908
	LUMINANCE       Enum = 0x1909
	LUMINANCE_ALPHA Enum = 0x190A

	// S3TC compressed formats (EXT_texture_compression_s3tc).
	COMPRESSED_RGBA_S3TC_DXT1 Enum = 0x83F1
	COMPRESSED_RGBA_S3TC_DXT3 Enum = 0x83F2
	COMPRESSED_RGBA_S3TC_DXT5 Enum = 0x83F3

	// Texture targets, units, and parameters.
	TEXTURE_2D                  Enum = 0x0DE1
	TEXTURE_CUBE_MAP            Enum = 0x8513
	TEXTURE_CUBE_MAP_POSITIVE_X Enum = 0x8515
	TEXTURE0                    Enum = 0x84C0
	TEXTURE_MAG_FILTER          Enum = 0x2800
	TEXTURE_MIN_FILTER          Enum = 0x2801
	TEXTURE_WRAP_S              Enum = 0x2802
	TEXTURE_WRAP_T              Enum = 0x2803
	TEXTURE_MAX_ANISOTROPY_EXT  Enum = 0x84FE
	REPEAT                      Enum = 0x2901
	CLAMP_TO_EDGE               Enum = 0x812F
	MIRRORED_REPEAT             Enum = 0x8370
	NEAREST                     Enum = 0x2600
	LINEAR                      Enum = 0x2601
	NEAREST_MIPMAP_NEAREST      Enum = 0x2700
	LINEAR_MIPMAP_NEAREST       Enum = 0x2701
	NEAREST_MIPMAP_LINEAR       Enum = 0x2702
	LINEAR_MIPMAP_LINEAR        Enum = 0x2703
	UNPACK_ALIGNMENT            Enum = 0x0CF5

	// Framebuffer and renderbuffer.
	FRAMEBUFFER              Enum = 0x8D40
	RENDERBUFFER             Enum = 0x8D41
	COLOR_ATTACHMENT0        Enum = 0x8CE0
	DEPTH_ATTACHMENT         Enum = 0x8D00
	STENCIL_ATTACHMENT       Enum = 0x8D20
	DEPTH_STENCIL_ATTACHMENT Enum = 0x821A
	DEPTH_COMPONENT16        Enum = 0x81A5
	DEPTH_STENCIL            Enum = 0x84F9
	FRAMEBUFFER_COMPLETE     Enum = 0x8CD5

	// Shaders.
	FRAGMENT_SHADER Enum = 0x8B30
	VERTEX_SHADER   Enum = 0x8B31
	COMPILE_STATUS  Enum = 0x8B81
	LINK_STATUS     Enum = 0x8B82

	// Capabilities and state.
	CULL_FACE           Enum = 0x0B44
	BLEND               Enum = 0x0BE2
	DEPTH_TEST          Enum = 0x0B71
	SCISSOR_TEST        Enum = 0x0C11
	POLYGON_OFFSET_FILL Enum = 0x8037

	// Depth functions.
	NEVER    Enum = 0x0200
	LESS     Enum = 0x0201
	EQUAL    Enum = 0x0202
	LEQUAL   Enum = 0x0203
	GREATER  Enum = 0x0204
	NOTEQUAL Enum = 0x0205
	GEQUAL   Enum = 0x0206
	ALWAYS   Enum = 0x0207

	// Face culling and winding.
	FRONT          Enum = 0x0404
	BACK           Enum = 0x0405
	FRONT_AND_BACK Enum = 0x0408
	CW             Enum = 0x0900
	CCW            Enum = 0x0901

	// Blending.
	FUNC_ADD                 Enum = 0x8006
	FUNC_SUBTRACT            Enum = 0x800A
	FUNC_REVERSE_SUBTRACT    Enum = 0x800B
	ZERO                     Enum = 0
	ONE                      Enum = 1
	SRC_COLOR                Enum = 0x0300
	ONE_MINUS_SRC_COLOR      Enum = 0x0301
	SRC_ALPHA                Enum = 0x0302
	ONE_MINUS_SRC_ALPHA      Enum = 0x0303
	DST_ALPHA                Enum = 0x0304
	ONE_MINUS_DST_ALPHA      Enum = 0x0305
	DST_COLOR                Enum = 0x0306
	ONE_MINUS_DST_COLOR      Enum = 0x0307
	SRC_ALPHA_SATURATE       Enum = 0x0308

	// Clear masks.
	DEPTH_BUFFER_BIT   Enum = 0x0100
	STENCIL_BUFFER_BIT Enum = 0x0400
	COLOR_BUFFER_BIT   Enum = 0x4000

	// Queries.
	VERSION                          Enum = 0x1F02
	EXTENSIONS                       Enum = 0x1F03
	MAX_TEXTURE_SIZE                 Enum = 0x0D33
	MAX_CUBE_MAP_TEXTURE_SIZE        Enum = 0x851C
	MAX_TEXTURE_IMAGE_UNITS          Enum = 0x8872
	MAX_VERTEX_TEXTURE_IMAGE_UNITS   Enum = 0x8B4C
	MAX_COMBINED_TEXTURE_IMAGE_UNITS Enum = 0x8B4D
	MAX_VERTEX_UNIFORM_VECTORS       Enum = 0x8DFB
	MAX_TEXTURE_MAX_ANISOTROPY_EXT   Enum = 0x84FF

	// Shader precision probing.
	LOW_FLOAT    Enum = 0x8DF0
	MEDIUM_FLOAT Enum = 0x8DF1
	HIGH_FLOAT   Enum = 0x8DF2

	NO_ERROR Enum = 0
)

// Context is the set of GPU operations the renderer needs, mirroring the
// OpenGL ES 2.0 entry points it maps to. Implementations must be driven
// from the thread owning the GL context.
type Context interface {
	// Buffers.
	CreateBuffer() Buffer
	DeleteBuffer(b Buffer)
	BindBuffer(target Enum, b Buffer)
	BufferData(target Enum, data []byte, usage Enum)
	BufferSubData(target Enum, offset int, data []byte)

	// Textures.
	CreateTexture() Texture
	DeleteTexture(t Texture)
	ActiveTexture(unit Enum)
	BindTexture(target Enum, t Texture)
	TexImage2D(target Enum, level int, internalFormat Enum, width, height int, format, ty Enum, data []byte)
	CompressedTexImage2D(target Enum, level int, internalFormat Enum, width, height int, data []byte)
	TexParameteri(target, pname Enum, param int)
	TexParameterf(target, pname Enum, param float32)
	GenerateMipmap(target Enum)
	PixelStorei(pname Enum, param int)

	// Framebuffers and renderbuffers.
	CreateFramebuffer() Framebuffer
	DeleteFramebuffer(f Framebuffer)
	BindFramebuffer(target Enum, f Framebuffer)
	FramebufferTexture2D(target, attachment, texTarget Enum, t Texture, level int)
	CreateRenderbuffer() Renderbuffer
	DeleteRenderbuffer(r Renderbuffer)
	BindRenderbuffer(target Enum, r Renderbuffer)
	RenderbufferStorage(target, internalFormat Enum, width, height int)
	FramebufferRenderbuffer(target, attachment, rbTarget Enum, r Renderbuffer)

	// Shaders and programs.
	CreateShader(ty Enum) Shader
	ShaderSource(s Shader, src string)
	CompileShader(s Shader)
	GetShaderi(s Shader, pname Enum) int
	GetShaderInfoLog(s Shader) string
	DeleteShader(s Shader)
	CreateProgram() Program
	AttachShader(p Program, s Shader)
	LinkProgram(p Program)
	GetProgrami(p Program, pname Enum) int
	GetProgramInfoLog(p Program) string
	UseProgram(p Program)
	DeleteProgram(p Program)

	// Uniforms and attributes.
	GetUniformLocation(p Program, name string) Uniform
	GetAttribLocation(p Program, name string) Attrib
	Uniform1i(u Uniform, v int)
	Uniform1f(u Uniform, v float32)
	Uniform2f(u Uniform, x, y float32)
	Uniform3f(u Uniform, x, y, z float32)
	Uniform4f(u Uniform, x, y, z, w float32)
	Uniform1iv(u Uniform, v []int32)
	Uniform1fv(u Uniform, v []float32)
	Uniform2fv(u Uniform, v []float32)
	Uniform3fv(u Uniform, v []float32)
	Uniform4fv(u Uniform, v []float32)
	UniformMatrix3fv(u Uniform, v []float32)
	UniformMatrix4fv(u Uniform, v []float32)
	EnableVertexAttribArray(a Attrib)
	DisableVertexAttribArray(a Attrib)
	VertexAttribPointer(a Attrib, size int, ty Enum, normalized bool, stride, offset int)

	// Fixed-function state.
	Viewport(x, y, w, h int)
	Scissor(x, y, w, h int)
	ClearColor(r, g, b, a float32)
	ClearDepth(d float32)
	ClearStencil(s int)
	Clear(mask Enum)
	Enable(capability Enum)
	Disable(capability Enum)
	BlendEquation(mode Enum)
	BlendEquationSeparate(rgb, alpha Enum)
	BlendFunc(src, dst Enum)
	BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha Enum)
	DepthFunc(fn Enum)
	DepthMask(flag bool)
	ColorMask(r, g, b, a bool)
	CullFace(mode Enum)
	FrontFace(mode Enum)
	PolygonOffset(factor, units float32)
	LineWidth(w float32)

	// Draws.
	DrawArrays(mode Enum, first, count int)
	DrawElements(mode Enum, count int, ty Enum, offset int)

	// Queries.
	GetInteger(pname Enum) int
	GetString(pname Enum) string
	GetError() Enum
	GetShaderPrecisionFormat(shaderType, precisionType Enum) (rangeMin, rangeMax, precision int)
}
