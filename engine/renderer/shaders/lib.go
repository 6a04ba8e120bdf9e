package shaders

import (
	"github.com/Carmen-Shannon/trigl/engine/material"
	"github.com/Carmen-Shannon/trigl/engine/math3"
)

// ShaderDef is one built-in shader: a stable name (the program cache keys
// on it), a uniform-set factory, and the assembled GLSL bodies. The
// feature preamble is prepended at compile time.
type ShaderDef struct {
	Name           string
	Uniforms       func() map[string]*material.Uniform
	VertexShader   string
	FragmentShader string
}

// Lib returns the named built-in shader, or nil for unknown names.
// Available names: basic, lambert, phong, depth, normal, line_basic,
// line_dashed, particle_basic.
func Lib(name string) *ShaderDef {
	return shaderLib[name]
}

// CommonUniforms returns the uniform block shared by the mesh materials.
func CommonUniforms() map[string]*material.Uniform {
	return map[string]*material.Uniform{
		"diffuse":         {Kind: "c", Value: math3.Color{R: 1, G: 1, B: 1}},
		"opacity":         {Kind: "f", Value: float32(1)},
		"map":             {Kind: "t", Value: nil},
		"offsetRepeat":    {Kind: "v4", Value: math3.V4(0, 0, 1, 1)},
		"lightMap":        {Kind: "t", Value: nil},
		"specularMap":     {Kind: "t", Value: nil},
		"envMap":          {Kind: "t", Value: nil},
		"flipEnvMap":      {Kind: "f", Value: float32(-1)},
		"useRefract":      {Kind: "i", Value: 0},
		"combine":         {Kind: "i", Value: 0},
		"reflectivity":    {Kind: "f", Value: float32(1)},
		"refractionRatio": {Kind: "f", Value: float32(0.98)},
	}
}

// FogUniforms returns the fog uniform block.
func FogUniforms() map[string]*material.Uniform {
	return map[string]*material.Uniform{
		"fogDensity": {Kind: "f", Value: float32(0.00025)},
		"fogNear":    {Kind: "f", Value: float32(1)},
		"fogFar":     {Kind: "f", Value: float32(2000)},
		"fogColor":   {Kind: "c", Value: math3.Color{}},
	}
}

// LightUniforms returns the aggregated light uniform block; the renderer's
// light aggregation pass rewrites the array values every frame.
func LightUniforms() map[string]*material.Uniform {
	return map[string]*material.Uniform{
		"ambientLightColor": {Kind: "fv", Value: []float32{0, 0, 0}},

		"directionalLightDirection": {Kind: "fv", Value: []float32{}},
		"directionalLightColor":     {Kind: "fv", Value: []float32{}},

		"hemisphereLightPosition":    {Kind: "fv", Value: []float32{}},
		"hemisphereLightSkyColor":    {Kind: "fv", Value: []float32{}},
		"hemisphereLightGroundColor": {Kind: "fv", Value: []float32{}},

		"pointLightColor":    {Kind: "fv", Value: []float32{}},
		"pointLightPosition": {Kind: "fv", Value: []float32{}},
		"pointLightDistance": {Kind: "fv1", Value: []float32{}},

		"spotLightColor":     {Kind: "fv", Value: []float32{}},
		"spotLightPosition":  {Kind: "fv", Value: []float32{}},
		"spotLightDirection": {Kind: "fv", Value: []float32{}},
		"spotLightDistance":  {Kind: "fv1", Value: []float32{}},
		"spotLightAngleCos":  {Kind: "fv1", Value: []float32{}},
		"spotLightExponent":  {Kind: "fv1", Value: []float32{}},
	}
}

// ParticleUniforms returns the particle uniform block.
func ParticleUniforms() map[string]*material.Uniform {
	return map[string]*material.Uniform{
		"psColor": {Kind: "c", Value: math3.Color{R: 1, G: 1, B: 1}},
		"opacity": {Kind: "f", Value: float32(1)},
		"size":    {Kind: "f", Value: float32(1)},
		"scale":   {Kind: "f", Value: float32(1)},
		"map":     {Kind: "t", Value: nil},
	}
}

// merge folds the given uniform maps into one; later maps win on key
// collisions.
func merge(maps ...map[string]*material.Uniform) map[string]*material.Uniform {
	out := make(map[string]*material.Uniform)
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

var shaderLib = map[string]*ShaderDef{

	"basic": {
		Name: "basic",
		Uniforms: func() map[string]*material.Uniform {
			return merge(CommonUniforms(), FogUniforms())
		},
		VertexShader: Chunk("map_pars_vertex") +
			Chunk("lightmap_pars_vertex") +
			Chunk("envmap_pars_vertex") +
			Chunk("color_pars_vertex") +
			Chunk("morphtarget_pars_vertex") +
			Chunk("skinning_pars_vertex") + `
void main() {
` + Chunk("map_vertex") +
			Chunk("lightmap_vertex") +
			Chunk("color_vertex") + `
#if defined( USE_ENVMAP ) || defined( USE_SKINNING )
` + Chunk("defaultnormal_vertex") + `
#endif
` + Chunk("envmap_vertex") +
			Chunk("morphtarget_vertex") +
			Chunk("skinbase_vertex") +
			Chunk("skinning_vertex") +
			Chunk("default_vertex") + `
}
`,
		FragmentShader: `
uniform vec3 diffuse;
uniform float opacity;
` + Chunk("color_pars_fragment") +
			Chunk("map_pars_fragment") +
			Chunk("lightmap_pars_fragment") +
			Chunk("envmap_pars_fragment") +
			Chunk("fog_pars_fragment") +
			Chunk("specularmap_pars_fragment") + `
void main() {
	gl_FragColor = vec4( diffuse, opacity );
` + Chunk("map_fragment") +
			Chunk("alphatest_fragment") +
			Chunk("specularmap_fragment") +
			Chunk("lightmap_fragment") +
			Chunk("color_fragment") +
			Chunk("envmap_fragment") +
			Chunk("linear_to_gamma_fragment") +
			Chunk("fog_fragment") + `
}
`,
	},

	"lambert": {
		Name: "lambert",
		Uniforms: func() map[string]*material.Uniform {
			return merge(CommonUniforms(), FogUniforms(), LightUniforms(),
				map[string]*material.Uniform{
					"ambient":  {Kind: "c", Value: math3.Color{R: 1, G: 1, B: 1}},
					"emissive": {Kind: "c", Value: math3.Color{}},
					"wrapRGB":  {Kind: "v3", Value: math3.V3(1, 1, 1)},
				})
		},
		VertexShader: `
varying vec3 vLightFront;
#ifdef DOUBLE_SIDED
	varying vec3 vLightBack;
#endif
` + Chunk("map_pars_vertex") +
			Chunk("lightmap_pars_vertex") +
			Chunk("envmap_pars_vertex") +
			Chunk("lights_lambert_pars_vertex") +
			Chunk("color_pars_vertex") +
			Chunk("morphtarget_pars_vertex") +
			Chunk("skinning_pars_vertex") + `
void main() {
` + Chunk("map_vertex") +
			Chunk("lightmap_vertex") +
			Chunk("color_vertex") +
			Chunk("morphnormal_vertex") +
			Chunk("skinbase_vertex") +
			Chunk("skinnormal_vertex") +
			Chunk("defaultnormal_vertex") + `
#ifndef USE_ENVMAP
	vec4 mWorldPosition = modelMatrix * vec4( position, 1.0 );
#endif
` + Chunk("envmap_vertex") +
			Chunk("morphtarget_vertex") +
			Chunk("skinning_vertex") +
			Chunk("default_vertex") +
			Chunk("lights_lambert_vertex") + `
}
`,
		FragmentShader: `
uniform float opacity;
varying vec3 vLightFront;
#ifdef DOUBLE_SIDED
	varying vec3 vLightBack;
#endif
` + Chunk("color_pars_fragment") +
			Chunk("map_pars_fragment") +
			Chunk("lightmap_pars_fragment") +
			Chunk("envmap_pars_fragment") +
			Chunk("fog_pars_fragment") +
			Chunk("specularmap_pars_fragment") + `
void main() {
	gl_FragColor = vec4( vec3 ( 1.0 ), opacity );
` + Chunk("map_fragment") +
			Chunk("alphatest_fragment") +
			Chunk("specularmap_fragment") + `
#ifdef DOUBLE_SIDED
	if ( gl_FrontFacing )
		gl_FragColor.xyz *= vLightFront;
	else
		gl_FragColor.xyz *= vLightBack;
#else
	gl_FragColor.xyz *= vLightFront;
#endif
` + Chunk("lightmap_fragment") +
			Chunk("color_fragment") +
			Chunk("envmap_fragment") +
			Chunk("linear_to_gamma_fragment") +
			Chunk("fog_fragment") + `
}
`,
	},

	"phong": {
		Name: "phong",
		Uniforms: func() map[string]*material.Uniform {
			return merge(CommonUniforms(), FogUniforms(), LightUniforms(),
				map[string]*material.Uniform{
					"ambient":   {Kind: "c", Value: math3.Color{R: 1, G: 1, B: 1}},
					"emissive":  {Kind: "c", Value: math3.Color{}},
					"specular":  {Kind: "c", Value: math3.Color{R: 0.07, G: 0.07, B: 0.07}},
					"shininess": {Kind: "f", Value: float32(30)},
					"wrapRGB":   {Kind: "v3", Value: math3.V3(1, 1, 1)},
					"bumpMap":   {Kind: "t", Value: nil},
					"bumpScale": {Kind: "f", Value: float32(1)},
				})
		},
		VertexShader: `
varying vec3 vViewPosition;
varying vec3 vNormal;
` + Chunk("map_pars_vertex") +
			Chunk("lightmap_pars_vertex") +
			Chunk("envmap_pars_vertex") +
			Chunk("lights_phong_pars_vertex") +
			Chunk("color_pars_vertex") +
			Chunk("morphtarget_pars_vertex") +
			Chunk("skinning_pars_vertex") + `
void main() {
` + Chunk("map_vertex") +
			Chunk("lightmap_vertex") +
			Chunk("color_vertex") +
			Chunk("morphnormal_vertex") +
			Chunk("skinbase_vertex") +
			Chunk("skinnormal_vertex") +
			Chunk("defaultnormal_vertex") + `
	vNormal = transformedNormal;
	vec4 mWorldPosition = modelMatrix * vec4( position, 1.0 );
` + Chunk("morphtarget_vertex") +
			Chunk("skinning_vertex") +
			Chunk("default_vertex") + `
	vViewPosition = -mvPosition.xyz;
` + Chunk("lights_phong_vertex") + `
}
`,
		FragmentShader: `
uniform vec3 diffuse;
uniform float opacity;
uniform vec3 ambient;
uniform vec3 emissive;
uniform vec3 specular;
uniform float shininess;
` + Chunk("color_pars_fragment") +
			Chunk("map_pars_fragment") +
			Chunk("lightmap_pars_fragment") +
			Chunk("envmap_pars_fragment") +
			Chunk("fog_pars_fragment") +
			Chunk("lights_phong_pars_fragment") +
			Chunk("specularmap_pars_fragment") +
			Chunk("bumpmap_pars_fragment") + `
void main() {
	gl_FragColor = vec4( vec3 ( 1.0 ), opacity );
` + Chunk("map_fragment") +
			Chunk("alphatest_fragment") +
			Chunk("specularmap_fragment") +
			Chunk("lights_phong_fragment") +
			Chunk("lightmap_fragment") +
			Chunk("color_fragment") +
			Chunk("envmap_fragment") +
			Chunk("linear_to_gamma_fragment") +
			Chunk("fog_fragment") + `
}
`,
	},

	"depth": {
		Name: "depth",
		Uniforms: func() map[string]*material.Uniform {
			return map[string]*material.Uniform{
				"mNear":   {Kind: "f", Value: float32(1)},
				"mFar":    {Kind: "f", Value: float32(2000)},
				"opacity": {Kind: "f", Value: float32(1)},
			}
		},
		VertexShader: Chunk("morphtarget_pars_vertex") + `
void main() {
` + Chunk("morphtarget_vertex") + `
#ifndef USE_MORPHTARGETS
	vec3 morphed = position;
#endif
	gl_Position = projectionMatrix * modelViewMatrix * vec4( morphed, 1.0 );
}
`,
		FragmentShader: `
uniform float mNear;
uniform float mFar;
uniform float opacity;
void main() {
	float depth = gl_FragCoord.z / gl_FragCoord.w;
	float color = 1.0 - smoothstep( mNear, mFar, depth );
	gl_FragColor = vec4( vec3( color ), opacity );
}
`,
	},

	"normal": {
		Name: "normal",
		Uniforms: func() map[string]*material.Uniform {
			return map[string]*material.Uniform{
				"opacity": {Kind: "f", Value: float32(1)},
			}
		},
		VertexShader: `
varying vec3 vNormal;
` + Chunk("morphtarget_pars_vertex") + `
void main() {
	vNormal = normalMatrix * normal;
` + Chunk("morphtarget_vertex") + `
#ifndef USE_MORPHTARGETS
	vec3 morphed = position;
#endif
	gl_Position = projectionMatrix * modelViewMatrix * vec4( morphed, 1.0 );
}
`,
		FragmentShader: `
uniform float opacity;
varying vec3 vNormal;
void main() {
	gl_FragColor = vec4( 0.5 * normalize( vNormal ) + 0.5, opacity );
}
`,
	},

	"line_basic": {
		Name: "line_basic",
		Uniforms: func() map[string]*material.Uniform {
			return merge(FogUniforms(), map[string]*material.Uniform{
				"diffuse": {Kind: "c", Value: math3.Color{R: 1, G: 1, B: 1}},
				"opacity": {Kind: "f", Value: float32(1)},
			})
		},
		VertexShader: Chunk("color_pars_vertex") + `
void main() {
` + Chunk("color_vertex") + `
	gl_Position = projectionMatrix * modelViewMatrix * vec4( position, 1.0 );
}
`,
		FragmentShader: `
uniform vec3 diffuse;
uniform float opacity;
` + Chunk("color_pars_fragment") +
			Chunk("fog_pars_fragment") + `
void main() {
	gl_FragColor = vec4( diffuse, opacity );
` + Chunk("color_fragment") +
			Chunk("fog_fragment") + `
}
`,
	},

	"line_dashed": {
		Name: "line_dashed",
		Uniforms: func() map[string]*material.Uniform {
			return merge(FogUniforms(), map[string]*material.Uniform{
				"diffuse":   {Kind: "c", Value: math3.Color{R: 1, G: 1, B: 1}},
				"opacity":   {Kind: "f", Value: float32(1)},
				"scale":     {Kind: "f", Value: float32(1)},
				"dashSize":  {Kind: "f", Value: float32(1)},
				"totalSize": {Kind: "f", Value: float32(2)},
			})
		},
		VertexShader: `
attribute float lineDistance;
varying float vLineDistance;
uniform float scale;
` + Chunk("color_pars_vertex") + `
void main() {
` + Chunk("color_vertex") + `
	vLineDistance = scale * lineDistance;
	gl_Position = projectionMatrix * modelViewMatrix * vec4( position, 1.0 );
}
`,
		FragmentShader: `
uniform vec3 diffuse;
uniform float opacity;
uniform float dashSize;
uniform float totalSize;
varying float vLineDistance;
` + Chunk("color_pars_fragment") +
			Chunk("fog_pars_fragment") + `
void main() {
	if ( mod( vLineDistance, totalSize ) > dashSize ) {
		discard;
	}
	gl_FragColor = vec4( diffuse, opacity );
` + Chunk("color_fragment") +
			Chunk("fog_fragment") + `
}
`,
	},

	"particle_basic": {
		Name: "particle_basic",
		Uniforms: func() map[string]*material.Uniform {
			return merge(ParticleUniforms(), FogUniforms())
		},
		VertexShader: `
uniform float size;
uniform float scale;
` + Chunk("color_pars_vertex") + `
void main() {
` + Chunk("color_vertex") + `
	vec4 mvPosition = modelViewMatrix * vec4( position, 1.0 );
	#ifdef USE_SIZEATTENUATION
		gl_PointSize = size * ( scale / length( mvPosition.xyz ) );
	#else
		gl_PointSize = size;
	#endif
	gl_Position = projectionMatrix * mvPosition;
}
`,
		FragmentShader: `
uniform vec3 psColor;
uniform float opacity;
` + Chunk("color_pars_fragment") +
			Chunk("map_pars_fragment") +
			Chunk("fog_pars_fragment") + `
void main() {
	gl_FragColor = vec4( psColor, opacity );
#ifdef USE_MAP
	gl_FragColor = gl_FragColor * texture2D( map, gl_PointCoord );
#endif
` + Chunk("alphatest_fragment") +
			Chunk("color_fragment") +
			Chunk("fog_fragment") + `
}
`,
	},
}
