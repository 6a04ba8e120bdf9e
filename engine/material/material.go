// package material describes surface appearance as feature descriptors the
// renderer resolves to shader programs. The set of material kinds is closed;
// the renderer switches exhaustively on the concrete types.
package material

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// Side selects which triangle faces are rendered.
type Side int

const (
	SideFront Side = iota
	SideBack
	SideDouble
)

// Shading selects flat or smooth normal interpolation.
type Shading int

const (
	ShadingSmooth Shading = iota
	ShadingFlat
)

// VertexColorMode selects how vertex colors feed the shader.
type VertexColorMode int

const (
	VertexColorsNone VertexColorMode = iota
	VertexColorsFace
	VertexColorsVertex
)

// Blending selects the blend preset applied during the transparent pass.
type Blending int

const (
	BlendingNone Blending = iota
	BlendingNormal
	BlendingAdditive
	BlendingSubtractive
	BlendingMultiply
	BlendingCustom
)

// BlendEquation selects the blend operator for BlendingCustom.
type BlendEquation int

const (
	BlendEquationAdd BlendEquation = iota
	BlendEquationSubtract
	BlendEquationReverseSubtract
)

// BlendFactor selects a source or destination blend factor for
// BlendingCustom.
type BlendFactor int

const (
	BlendFactorZero BlendFactor = iota
	BlendFactorOne
	BlendFactorSrcColor
	BlendFactorOneMinusSrcColor
	BlendFactorSrcAlpha
	BlendFactorOneMinusSrcAlpha
	BlendFactorDstAlpha
	BlendFactorOneMinusDstAlpha
	BlendFactorDstColor
	BlendFactorOneMinusDstColor
	BlendFactorSrcAlphaSaturate
)

// EnvMapCombine selects how an environment map combines with the surface
// color.
type EnvMapCombine int

const (
	CombineMultiply EnvMapCombine = iota
	CombineMix
	CombineAdd
)

// materialCount is an atomic counter used to assign unique material ids.
var materialCount atomic.Uint64

// Base carries the state shared by every material kind: identity, blending
// and depth state, side selection, and the NeedsUpdate latch the program
// cache observes.
type Base struct {
	// ID is the unique numeric id assigned at creation.
	ID uint64

	// UUID is the stable string identifier assigned at creation.
	UUID string

	// Name is an optional human-readable label.
	Name string

	// Opacity in [0, 1] scales the fragment alpha of every material;
	// Transparent decides whether the object is drawn in the sorted
	// transparent pass.
	Opacity float32

	// Transparent routes the object through the back-to-front transparent
	// pass with its declared blending.
	Transparent bool

	// Blending selects the blend preset; BlendingCustom reads the
	// equation/factor fields below.
	Blending Blending

	BlendEquation BlendEquation
	BlendSrc      BlendFactor
	BlendDst      BlendFactor

	// DepthTest and DepthWrite control the depth unit for this material.
	DepthTest  bool
	DepthWrite bool

	// PolygonOffset biases depth values, e.g. for decals.
	PolygonOffset       bool
	PolygonOffsetFactor float32
	PolygonOffsetUnits  float32

	// AlphaTest discards fragments with alpha below this threshold;
	// zero disables the test.
	AlphaTest float32

	// Side selects front, back, or double-sided rendering.
	Side Side

	// Visible excludes the material's objects from drawing when false.
	Visible bool

	// NeedsUpdate asks the renderer to re-resolve the shader program. Set
	// after mutating any feature-affecting field.
	NeedsUpdate bool

	// Unusable marks a material whose program failed to compile; it is
	// skipped until the next NeedsUpdate.
	Unusable bool

	// GL holds the renderer-private program binding.
	GL any
}

// newBase returns a Base with the defaults every kind starts from.
func newBase() Base {
	return Base{
		ID:          materialCount.Add(1),
		UUID:        uuid.NewString(),
		Opacity:     1,
		Blending:    BlendingNormal,
		BlendSrc:    BlendFactorSrcAlpha,
		BlendDst:    BlendFactorOneMinusSrcAlpha,
		DepthTest:   true,
		DepthWrite:  true,
		Side:        SideFront,
		Visible:     true,
		NeedsUpdate: true,
	}
}

// Material is the closed set of material kinds. Base exposes the shared
// payload; the renderer type-switches on the concrete kind for everything
// else.
type Material interface {
	// Base returns the shared material payload.
	//
	// Returns:
	//   - *Base: the shared identity/blending/depth state
	Base() *Base
}

// Uniform is one declared shader uniform: a kind tag plus its current
// value. Kinds follow the shader library's single-letter convention:
// "i", "f", "v2", "v3", "v4", "c" (color), "m4", "t" (texture),
// "fv" (vec3 array), "fv1" (float array), "tv" (texture array),
// "m4v" (matrix array).
type Uniform struct {
	Kind  string
	Value any
}

// CustomAttribute is a user-declared per-vertex attribute for shader
// materials. Value is the flattened float32 data; ItemSize components per
// vertex.
type CustomAttribute struct {
	// ItemSize is the number of float32 components per vertex.
	ItemSize int

	// Value is the packed attribute data.
	Value []float32

	// NeedsUpdate requests a re-upload on next sync.
	NeedsUpdate bool

	// GL holds the renderer-private buffer handle.
	GL any
}
