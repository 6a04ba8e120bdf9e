package renderer

import (
	"strings"
	"testing"

	"github.com/Carmen-Shannon/trigl/engine/material"
	"github.com/Carmen-Shannon/trigl/engine/renderer/shaders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCache() (*programCache, *fakeGL) {
	gl := newFakeGL()
	return newProgramCache(gl, "highp"), gl
}

func TestProgramCacheHitAndRefcount(t *testing.T) {
	cache, _ := testCache()
	def := shaders.Lib("basic")
	features := Features{MaxDirLights: 1}

	p1 := cache.acquire("basic", def.VertexShader, def.FragmentShader, features, def.Uniforms(), nil)
	require.NotNil(t, p1)
	p2 := cache.acquire("basic", def.VertexShader, def.FragmentShader, features, def.Uniforms(), nil)
	assert.Same(t, p1, p2)
	assert.Equal(t, 2, p1.refCount)
	assert.Equal(t, 1, cache.size())

	// Different feature vector misses.
	p3 := cache.acquire("basic", def.VertexShader, def.FragmentShader, Features{MaxDirLights: 2}, def.Uniforms(), nil)
	assert.NotSame(t, p1, p3)
	assert.Equal(t, 2, cache.size())
}

func TestProgramCacheReleaseDeletesAtZero(t *testing.T) {
	cache, gl := testCache()
	def := shaders.Lib("basic")

	p := cache.acquire("basic", def.VertexShader, def.FragmentShader, Features{}, def.Uniforms(), nil)
	require.NotNil(t, p)
	cache.acquire("basic", def.VertexShader, def.FragmentShader, Features{}, def.Uniforms(), nil)

	cache.release(p)
	assert.True(t, gl.livePrograms[p.GL.Value], "still referenced")
	assert.Equal(t, 1, cache.size())

	cache.release(p)
	assert.False(t, gl.livePrograms[p.GL.Value])
	assert.Equal(t, 0, cache.size())
}

func TestUserShaderKeyedBySourceHash(t *testing.T) {
	cache, _ := testCache()

	p1 := cache.acquire("", "void main() { gl_Position = vec4(0.0); }", "void main() {}", Features{}, nil, nil)
	p2 := cache.acquire("", "void main() { gl_Position = vec4(1.0); }", "void main() {}", Features{}, nil, nil)
	require.NotNil(t, p1)
	require.NotNil(t, p2)
	assert.NotSame(t, p1, p2)

	p3 := cache.acquire("", "void main() { gl_Position = vec4(0.0); }", "void main() {}", Features{}, nil, nil)
	assert.Same(t, p1, p3)
}

func TestVertexPreambleDefines(t *testing.T) {
	cache, _ := testCache()
	pre := cache.vertexPreamble(Features{
		Map:             true,
		Fog:             true,
		FogExp:          true,
		Skinning:        true,
		MaxBones:        12,
		MorphTargets:    true,
		VertexColors:    material.VertexColorsVertex,
		MaxDirLights:    2,
		MaxPointLights:  3,
		DoubleSided:     true,
		GammaInput:      true,
	})

	for _, want := range []string{
		"precision highp float;",
		"#define USE_MAP",
		"#define USE_FOG",
		"#define FOG_EXP2",
		"#define USE_SKINNING",
		"#define MAX_BONES 12",
		"#define USE_MORPHTARGETS",
		"#define USE_COLOR",
		"#define MAX_DIR_LIGHTS 2",
		"#define MAX_POINT_LIGHTS 3",
		"#define DOUBLE_SIDED",
		"#define GAMMA_INPUT",
		"uniform mat4 modelViewMatrix;",
		"attribute vec3 position;",
	} {
		assert.Contains(t, pre, want)
	}
	assert.NotContains(t, pre, "#define USE_ENVMAP")
}

func TestFragmentPreambleAlphaTest(t *testing.T) {
	cache, _ := testCache()
	pre := cache.fragmentPreamble(Features{AlphaTest: 0.5})
	assert.Contains(t, pre, "#define ALPHATEST 0.500")

	pre = cache.fragmentPreamble(Features{})
	assert.NotContains(t, pre, "ALPHATEST")
}

func TestCompileFailureReturnsNil(t *testing.T) {
	cache, gl := testCache()
	gl.failCompile = true
	def := shaders.Lib("basic")
	p := cache.acquire("basic", def.VertexShader, def.FragmentShader, Features{}, def.Uniforms(), nil)
	assert.Nil(t, p)
	assert.Equal(t, 0, cache.size())

	gl.failCompile = false
	gl.failLink = true
	p = cache.acquire("basic", def.VertexShader, def.FragmentShader, Features{}, def.Uniforms(), nil)
	assert.Nil(t, p)
}

func TestBuiltinShaderLibComplete(t *testing.T) {
	for _, name := range []string{
		"basic", "lambert", "phong", "depth", "normal",
		"line_basic", "line_dashed", "particle_basic",
	} {
		def := shaders.Lib(name)
		require.NotNil(t, def, "missing builtin shader %q", name)
		assert.Equal(t, name, def.Name)
		assert.True(t, strings.Contains(def.VertexShader, "void main()"))
		assert.True(t, strings.Contains(def.FragmentShader, "void main()"))
		assert.NotNil(t, def.Uniforms())
	}
	assert.Nil(t, shaders.Lib("bogus"))
}
