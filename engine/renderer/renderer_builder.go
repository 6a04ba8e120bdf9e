package renderer

import (
	"github.com/Carmen-Shannon/trigl/engine/config"
	"github.com/Carmen-Shannon/trigl/engine/math3"
	"github.com/Carmen-Shannon/trigl/engine/renderer/glctx"
)

// RendererBuilderOption configures a Renderer during construction.
type RendererBuilderOption func(*rendererImpl)

// WithSize sets the initial drawing buffer size.
//
// Parameters:
//   - width, height: size in pixels
func WithSize(width, height int) RendererBuilderOption {
	return func(r *rendererImpl) {
		r.viewportWidth = width
		r.viewportHeight = height
	}
}

// WithClearColor sets the clear color and alpha.
//
// Parameters:
//   - color: clear color
//   - alpha: clear alpha
func WithClearColor(color math3.Color, alpha float32) RendererBuilderOption {
	return func(r *rendererImpl) {
		r.clearColor = color
		r.clearAlpha = alpha
	}
}

// WithPrecision requests a shader float precision ("lowp", "mediump",
// "highp"); the driver probe may downgrade it.
//
// Parameters:
//   - precision: requested precision level
func WithPrecision(precision string) RendererBuilderOption {
	return func(r *rendererImpl) {
		r.requestedPrecision = precision
	}
}

// WithMaxLights caps each light kind in the shader arrays.
//
// Parameters:
//   - n: the per-kind maximum
func WithMaxLights(n int) RendererBuilderOption {
	return func(r *rendererImpl) {
		r.maxLights = n
	}
}

// WithGamma selects gamma-corrected input colors and output conversion.
//
// Parameters:
//   - input: treat material/light colors as gamma-space
//   - output: convert the final fragment back to gamma-space
func WithGamma(input, output bool) RendererBuilderOption {
	return func(r *rendererImpl) {
		r.gammaInput = input
		r.gammaOutput = output
	}
}

// WithSortObjects toggles depth sorting of the draw lists.
//
// Parameters:
//   - sortObjects: true to sort
func WithSortObjects(sortObjects bool) RendererBuilderOption {
	return func(r *rendererImpl) {
		r.sortObjects = sortObjects
	}
}

// WithAutoClear configures the automatic clear at frame start.
//
// Parameters:
//   - clear: master switch
//   - color, depth, stencil: which planes the automatic clear touches
func WithAutoClear(clear, color, depth, stencil bool) RendererBuilderOption {
	return func(r *rendererImpl) {
		r.autoClear = clear
		r.autoClearColor = color
		r.autoClearDepth = depth
		r.autoClearStencil = stencil
	}
}

// WithMorphLimits caps the morph target and morph normal influence slots.
//
// Parameters:
//   - targets: max morph target slots (shader hard cap 8)
//   - normals: max morph normal slots (shader hard cap 4)
func WithMorphLimits(targets, normals int) RendererBuilderOption {
	return func(r *rendererImpl) {
		r.maxMorphTargets = targets
		r.maxMorphNormals = normals
	}
}

// WithConfig applies a loaded configuration wholesale.
//
// Parameters:
//   - cfg: the configuration to apply
func WithConfig(cfg *config.Config) RendererBuilderOption {
	return func(r *rendererImpl) {
		r.viewportWidth = cfg.Width
		r.viewportHeight = cfg.Height
		r.requestedPrecision = cfg.Precision
		r.clearColor = math3.ColorHex(cfg.ClearColor)
		r.clearAlpha = cfg.ClearAlpha
		r.maxLights = cfg.MaxLights
		r.gammaInput = cfg.GammaInput
		r.gammaOutput = cfg.GammaOutput
		r.maxMorphTargets = cfg.MaxMorphTargets
		r.maxMorphNormals = cfg.MaxMorphNormals
		r.maxBones = cfg.MaxBones
	}
}

// NewRenderer creates a Renderer over an initialized GPU context, probes
// driver capabilities, resolves the shader precision, and applies the
// initial GL state.
//
// Parameters:
//   - gl: the GPU context; must be current on the calling thread
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the configured renderer
func NewRenderer(gl glctx.Context, options ...RendererBuilderOption) Renderer {
	r := &rendererImpl{
		gl:                 gl,
		autoClear:          true,
		autoClearColor:     true,
		autoClearDepth:     true,
		autoClearStencil:   true,
		sortObjects:        true,
		maxLights:          4,
		maxMorphTargets:    8,
		maxMorphNormals:    4,
		maxBones:           50,
		clearAlpha:         0,
		viewportWidth:      800,
		viewportHeight:     600,
		requestedPrecision: config.PrecisionHigh,
		enabledAttributes:  make(map[int32]bool),
		newAttributes:      make(map[int32]bool),
	}
	for _, option := range options {
		option(r)
	}

	r.state = newGLState(gl)
	r.caps = probeCapabilities(gl)
	precision := resolvePrecision(gl, r.requestedPrecision)
	r.progs = newProgramCache(gl, precision)

	// Initial pipeline state.
	gl.ClearColor(r.clearColor.R, r.clearColor.G, r.clearColor.B, r.clearAlpha)
	gl.ClearDepth(1)
	gl.ClearStencil(0)
	gl.Enable(glctx.DEPTH_TEST)
	gl.DepthFunc(glctx.LEQUAL)
	gl.FrontFace(glctx.CCW)
	gl.CullFace(glctx.BACK)
	gl.Enable(glctx.CULL_FACE)
	gl.Enable(glctx.BLEND)
	gl.BlendEquation(glctx.FUNC_ADD)
	gl.BlendFunc(glctx.SRC_ALPHA, glctx.ONE_MINUS_SRC_ALPHA)
	gl.Viewport(r.viewportX, r.viewportY, r.viewportWidth, r.viewportHeight)

	return r
}
