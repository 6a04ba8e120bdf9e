package material

import (
	"github.com/Carmen-Shannon/trigl/engine/math3"
	"github.com/Carmen-Shannon/trigl/engine/texture"
)

// MeshBasicMaterial is an unlit surface: a flat color, optionally modulated
// by diffuse, specular, light, and environment maps.
type MeshBasicMaterial struct {
	base Base

	// Color is the surface color.
	Color math3.Color

	// Map is the diffuse texture, or nil.
	Map *texture.Texture

	// LightMap is a pre-baked lighting texture read through UV layer 2.
	LightMap *texture.Texture

	// SpecularMap modulates environment map reflectivity per texel.
	SpecularMap *texture.Texture

	// EnvMap is a cube environment map, or nil.
	EnvMap *texture.Texture

	// Combine selects how EnvMap combines with the surface color.
	Combine EnvMapCombine

	// Reflectivity scales the environment contribution.
	Reflectivity float32

	// RefractionRatio feeds refraction-mode environment lookups.
	RefractionRatio float32

	// Fog applies scene fog to this material.
	Fog bool

	// Shading selects flat or smooth normals.
	Shading Shading

	// VertexColors selects face or vertex color input.
	VertexColors VertexColorMode

	// Wireframe draws edges instead of filled triangles.
	Wireframe          bool
	WireframeLinewidth float32

	// Skinning enables bone-weighted vertex transformation.
	Skinning bool

	// MorphTargets enables morph-influence blending.
	MorphTargets bool
}

// NewMeshBasicMaterial creates an unlit white material.
func NewMeshBasicMaterial() *MeshBasicMaterial {
	return &MeshBasicMaterial{
		base:               newBase(),
		Color:              math3.Color{R: 1, G: 1, B: 1},
		Reflectivity:       1,
		RefractionRatio:    0.98,
		Fog:                true,
		WireframeLinewidth: 1,
	}
}

func (m *MeshBasicMaterial) Base() *Base { return &m.base }

// MeshLambertMaterial is a diffuse-lit surface evaluated per vertex.
type MeshLambertMaterial struct {
	base Base

	Color    math3.Color
	Ambient  math3.Color
	Emissive math3.Color

	Map         *texture.Texture
	LightMap    *texture.Texture
	SpecularMap *texture.Texture
	EnvMap      *texture.Texture

	Combine         EnvMapCombine
	Reflectivity    float32
	RefractionRatio float32

	Fog          bool
	Shading      Shading
	VertexColors VertexColorMode

	Wireframe          bool
	WireframeLinewidth float32

	Skinning     bool
	MorphTargets bool
	MorphNormals bool

	// WrapAround softens the lighting terminator; WrapRGB weights it per
	// channel.
	WrapAround bool
	WrapRGB    math3.Vector3
}

// NewMeshLambertMaterial creates a white diffuse material.
func NewMeshLambertMaterial() *MeshLambertMaterial {
	return &MeshLambertMaterial{
		base:               newBase(),
		Color:              math3.Color{R: 1, G: 1, B: 1},
		Ambient:            math3.Color{R: 1, G: 1, B: 1},
		Reflectivity:       1,
		RefractionRatio:    0.98,
		Fog:                true,
		WireframeLinewidth: 1,
		WrapRGB:            math3.V3(1, 1, 1),
	}
}

func (m *MeshLambertMaterial) Base() *Base { return &m.base }

// MeshPhongMaterial is a specular-lit surface with optional bump mapping,
// evaluated per vertex or per pixel.
type MeshPhongMaterial struct {
	base Base

	Color    math3.Color
	Ambient  math3.Color
	Emissive math3.Color
	Specular math3.Color

	// Shininess is the specular exponent.
	Shininess float32

	Map         *texture.Texture
	LightMap    *texture.Texture
	SpecularMap *texture.Texture
	EnvMap      *texture.Texture

	// BumpMap perturbs normals via derivative sampling; BumpScale scales
	// the effect.
	BumpMap   *texture.Texture
	BumpScale float32

	Combine         EnvMapCombine
	Reflectivity    float32
	RefractionRatio float32

	Fog          bool
	Shading      Shading
	VertexColors VertexColorMode

	Wireframe          bool
	WireframeLinewidth float32

	Skinning     bool
	MorphTargets bool
	MorphNormals bool

	// Metal mixes the specular term into the diffuse color.
	Metal bool

	// PerPixel evaluates lighting in the fragment shader.
	PerPixel bool

	WrapAround bool
	WrapRGB    math3.Vector3
}

// NewMeshPhongMaterial creates a white phong material with a dark gray
// specular highlight.
func NewMeshPhongMaterial() *MeshPhongMaterial {
	return &MeshPhongMaterial{
		base:               newBase(),
		Color:              math3.Color{R: 1, G: 1, B: 1},
		Ambient:            math3.Color{R: 1, G: 1, B: 1},
		Specular:           math3.Color{R: 0.07, G: 0.07, B: 0.07},
		Shininess:          30,
		BumpScale:          1,
		Reflectivity:       1,
		RefractionRatio:    0.98,
		Fog:                true,
		PerPixel:           true,
		WireframeLinewidth: 1,
		WrapRGB:            math3.V3(1, 1, 1),
	}
}

func (m *MeshPhongMaterial) Base() *Base { return &m.base }

// MeshDepthMaterial visualizes eye-space depth as grayscale.
type MeshDepthMaterial struct {
	base Base

	Wireframe          bool
	WireframeLinewidth float32

	MorphTargets bool
}

// NewMeshDepthMaterial creates a depth-visualization material.
func NewMeshDepthMaterial() *MeshDepthMaterial {
	return &MeshDepthMaterial{base: newBase(), WireframeLinewidth: 1}
}

func (m *MeshDepthMaterial) Base() *Base { return &m.base }

// MeshNormalMaterial visualizes eye-space normals as RGB.
type MeshNormalMaterial struct {
	base Base

	Shading Shading

	Wireframe          bool
	WireframeLinewidth float32

	MorphTargets bool
}

// NewMeshNormalMaterial creates a normal-visualization material.
func NewMeshNormalMaterial() *MeshNormalMaterial {
	return &MeshNormalMaterial{base: newBase(), WireframeLinewidth: 1}
}

func (m *MeshNormalMaterial) Base() *Base { return &m.base }

// MeshFaceMaterial dispatches to a materials slice by each face's material
// index; the geometry group partitioning guarantees one slot per draw.
type MeshFaceMaterial struct {
	base Base

	// Materials are the slots face material indices select from.
	Materials []Material
}

// NewMeshFaceMaterial creates a per-face material dispatcher over slots.
func NewMeshFaceMaterial(slots ...Material) *MeshFaceMaterial {
	return &MeshFaceMaterial{base: newBase(), Materials: slots}
}

func (m *MeshFaceMaterial) Base() *Base { return &m.base }
