package renderer

import (
	"fmt"
	"log"
	"strings"
	"sync/atomic"

	"github.com/Carmen-Shannon/trigl/common"
	"github.com/Carmen-Shannon/trigl/engine/material"
	"github.com/Carmen-Shannon/trigl/engine/renderer/glctx"
)

// programCount is an atomic counter used to assign unique program ids.
var programCount atomic.Uint64

// Features is the feature vector that, together with the shader source
// hash, uniquely determines a compiled program. Two materials with equal
// features and sources share one Program. All fields are comparable so the
// struct itself serves as the packed cache key.
type Features struct {
	Map         bool
	EnvMap      bool
	LightMap    bool
	BumpMap     bool
	SpecularMap bool

	VertexColors material.VertexColorMode

	Fog    bool
	FogExp bool

	SizeAttenuation bool

	Skinning          bool
	MaxBones          int
	UseVertexTexture  bool
	BoneTextureWidth  int
	BoneTextureHeight int

	MorphTargets    bool
	MorphNormals    bool
	MaxMorphTargets int
	MaxMorphNormals int

	MaxDirLights   int
	MaxPointLights int
	MaxSpotLights  int
	MaxHemiLights  int

	MaxShadows       int
	ShadowMapEnabled bool
	ShadowMapSoft    bool
	ShadowMapDebug   bool
	ShadowMapCascade bool

	AlphaTest float32

	Metal      bool
	PerPixel   bool
	WrapAround bool

	DoubleSided bool
	FlipSided   bool

	GammaInput  bool
	GammaOutput bool
}

// programKey is the full cache key: the shader identity (a hash of the
// builtin name, or of the user sources) plus the feature vector.
type programKey struct {
	sourceHash uint64
	features   Features
}

// Program is a compiled and linked GPU program with its cached uniform and
// attribute locations, shared by refcount among materials whose keys match.
type Program struct {
	// ID is the unique numeric id assigned at creation.
	ID uint64

	// GL is the linked program object.
	GL glctx.Program

	// Uniforms maps uniform names to their locations; missing names carry
	// the invalid location.
	Uniforms map[string]glctx.Uniform

	// Attributes maps attribute names to their locations.
	Attributes map[string]glctx.Attrib

	key      programKey
	refCount int
}

// builtinUniformNames are the locations every program caches regardless of
// its declared uniform set.
var builtinUniformNames = []string{
	"projectionMatrix", "viewMatrix", "modelMatrix", "modelViewMatrix",
	"normalMatrix", "cameraPosition",
	"morphTargetInfluences", "boneGlobalMatrices",
}

// builtinAttributeNames are the attribute locations every program caches.
var builtinAttributeNames = []string{
	"position", "normal", "uv", "uv2", "color", "tangent",
	"lineDistance", "skinIndex", "skinWeight",
	"morphTarget0", "morphTarget1", "morphTarget2", "morphTarget3",
	"morphTarget4", "morphTarget5", "morphTarget6", "morphTarget7",
	"morphNormal0", "morphNormal1", "morphNormal2", "morphNormal3",
}

// programCache compiles and shares programs keyed by source hash plus
// feature vector.
type programCache struct {
	gl        glctx.Context
	precision string
	programs  map[programKey]*Program
}

func newProgramCache(gl glctx.Context, precision string) *programCache {
	return &programCache{
		gl:        gl,
		precision: precision,
		programs:  make(map[programKey]*Program),
	}
}

// acquire returns the cached program for (shaderID|sources, features),
// compiling on a miss. Compile or link failure logs the driver info-log and
// returns nil; the caller marks the material unusable until it is next
// flagged NeedsUpdate.
func (c *programCache) acquire(shaderID, vertexSource, fragmentSource string, features Features, uniforms map[string]*material.Uniform, attributes map[string]*material.CustomAttribute) *Program {
	var sourceHash uint64
	if shaderID != "" {
		sourceHash = common.HashString(shaderID)
	} else {
		sourceHash = common.HashString(vertexSource) ^ common.HashString(fragmentSource)
	}
	key := programKey{sourceHash: sourceHash, features: features}

	if p, ok := c.programs[key]; ok {
		p.refCount++
		return p
	}

	p := c.compile(key, vertexSource, fragmentSource, features, uniforms, attributes)
	if p == nil {
		return nil
	}
	c.programs[key] = p
	return p
}

// release drops one reference; the GPU program is deleted when the last
// holder lets go.
func (c *programCache) release(p *Program) {
	if p == nil {
		return
	}
	p.refCount--
	if p.refCount > 0 {
		return
	}
	delete(c.programs, p.key)
	c.gl.DeleteProgram(p.GL)
}

// size returns the number of live cached programs.
func (c *programCache) size() int {
	return len(c.programs)
}

func (c *programCache) compile(key programKey, vertexSource, fragmentSource string, features Features, uniforms map[string]*material.Uniform, attributes map[string]*material.CustomAttribute) *Program {
	gl := c.gl

	vs := c.compileShader(glctx.VERTEX_SHADER, c.vertexPreamble(features)+vertexSource)
	if !vs.Valid() {
		return nil
	}
	fs := c.compileShader(glctx.FRAGMENT_SHADER, c.fragmentPreamble(features)+fragmentSource)
	if !fs.Valid() {
		gl.DeleteShader(vs)
		return nil
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	// The shaders are owned by the program after linking.
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if gl.GetProgrami(prog, glctx.LINK_STATUS) == 0 {
		log.Printf("[renderer] program link failed: %s", gl.GetProgramInfoLog(prog))
		gl.DeleteProgram(prog)
		return nil
	}

	p := &Program{
		ID:         programCount.Add(1),
		GL:         prog,
		Uniforms:   make(map[string]glctx.Uniform),
		Attributes: make(map[string]glctx.Attrib),
		key:        key,
		refCount:   1,
	}

	for _, name := range builtinUniformNames {
		p.Uniforms[name] = gl.GetUniformLocation(prog, name)
	}
	for name := range uniforms {
		p.Uniforms[name] = gl.GetUniformLocation(prog, name)
	}
	for _, name := range builtinAttributeNames {
		p.Attributes[name] = gl.GetAttribLocation(prog, name)
	}
	for name := range attributes {
		p.Attributes[name] = gl.GetAttribLocation(prog, name)
	}

	return p
}

func (c *programCache) compileShader(ty glctx.Enum, source string) glctx.Shader {
	gl := c.gl
	s := gl.CreateShader(ty)
	gl.ShaderSource(s, source)
	gl.CompileShader(s)
	if gl.GetShaderi(s, glctx.COMPILE_STATUS) == 0 {
		kind := "vertex"
		if ty == glctx.FRAGMENT_SHADER {
			kind = "fragment"
		}
		log.Printf("[renderer] %s shader compile failed: %s", kind, gl.GetShaderInfoLog(s))
		gl.DeleteShader(s)
		return glctx.Shader{}
	}
	return s
}

// vertexPreamble assembles the #define block and global declarations
// prepended to every vertex shader.
func (c *programCache) vertexPreamble(f Features) string {
	var b strings.Builder

	fmt.Fprintf(&b, "precision %s float;\n", c.precision)

	c.writeSharedDefines(&b, f)

	if f.SizeAttenuation {
		b.WriteString("#define USE_SIZEATTENUATION\n")
	}
	if f.Skinning {
		b.WriteString("#define USE_SKINNING\n")
		fmt.Fprintf(&b, "#define MAX_BONES %d\n", f.MaxBones)
		if f.UseVertexTexture {
			b.WriteString("#define BONE_TEXTURE\n")
			fmt.Fprintf(&b, "#define N_BONE_PIXEL_X %d.0\n", f.BoneTextureWidth)
			fmt.Fprintf(&b, "#define N_BONE_PIXEL_Y %d.0\n", f.BoneTextureHeight)
		}
	}
	if f.MorphTargets {
		b.WriteString("#define USE_MORPHTARGETS\n")
	}
	if f.MorphNormals {
		b.WriteString("#define USE_MORPHNORMALS\n")
	}

	b.WriteString(`
uniform mat4 modelMatrix;
uniform mat4 modelViewMatrix;
uniform mat4 projectionMatrix;
uniform mat4 viewMatrix;
uniform mat3 normalMatrix;
uniform vec3 cameraPosition;
attribute vec3 position;
attribute vec3 normal;
attribute vec2 uv;
attribute vec2 uv2;
attribute vec3 color;
`)
	return b.String()
}

// fragmentPreamble assembles the #define block and global declarations
// prepended to every fragment shader.
func (c *programCache) fragmentPreamble(f Features) string {
	var b strings.Builder

	fmt.Fprintf(&b, "precision %s float;\n", c.precision)

	c.writeSharedDefines(&b, f)

	if f.AlphaTest > 0 {
		fmt.Fprintf(&b, "#define ALPHATEST %.3f\n", f.AlphaTest)
	}
	if f.Metal {
		b.WriteString("#define METAL\n")
	}

	b.WriteString(`
uniform mat4 viewMatrix;
uniform vec3 cameraPosition;
`)
	return b.String()
}

// writeSharedDefines emits the defines common to both shader stages.
func (c *programCache) writeSharedDefines(b *strings.Builder, f Features) {
	fmt.Fprintf(b, "#define MAX_DIR_LIGHTS %d\n", f.MaxDirLights)
	fmt.Fprintf(b, "#define MAX_POINT_LIGHTS %d\n", f.MaxPointLights)
	fmt.Fprintf(b, "#define MAX_SPOT_LIGHTS %d\n", f.MaxSpotLights)
	fmt.Fprintf(b, "#define MAX_HEMI_LIGHTS %d\n", f.MaxHemiLights)
	fmt.Fprintf(b, "#define MAX_SHADOWS %d\n", f.MaxShadows)

	if f.GammaInput {
		b.WriteString("#define GAMMA_INPUT\n")
	}
	if f.GammaOutput {
		b.WriteString("#define GAMMA_OUTPUT\n")
	}

	if f.Map {
		b.WriteString("#define USE_MAP\n")
	}
	if f.EnvMap {
		b.WriteString("#define USE_ENVMAP\n")
	}
	if f.LightMap {
		b.WriteString("#define USE_LIGHTMAP\n")
	}
	if f.BumpMap {
		b.WriteString("#define USE_BUMPMAP\n")
	}
	if f.SpecularMap {
		b.WriteString("#define USE_SPECULARMAP\n")
	}
	if f.VertexColors != material.VertexColorsNone {
		b.WriteString("#define USE_COLOR\n")
	}

	if f.Fog {
		b.WriteString("#define USE_FOG\n")
		if f.FogExp {
			b.WriteString("#define FOG_EXP2\n")
		}
	}

	if f.ShadowMapEnabled {
		b.WriteString("#define USE_SHADOWMAP\n")
		if f.ShadowMapSoft {
			b.WriteString("#define SHADOWMAP_SOFT\n")
		}
		if f.ShadowMapDebug {
			b.WriteString("#define SHADOWMAP_DEBUG\n")
		}
		if f.ShadowMapCascade {
			b.WriteString("#define SHADOWMAP_CASCADE\n")
		}
	}

	if f.PerPixel {
		b.WriteString("#define PHONG_PER_PIXEL\n")
	}
	if f.WrapAround {
		b.WriteString("#define WRAP_AROUND\n")
	}
	if f.DoubleSided {
		b.WriteString("#define DOUBLE_SIDED\n")
	}
	if f.FlipSided {
		b.WriteString("#define FLIP_SIDED\n")
	}
}
