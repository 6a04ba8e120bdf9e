package renderer

import (
	"github.com/Carmen-Shannon/trigl/engine/material"
	"github.com/Carmen-Shannon/trigl/engine/renderer/glctx"
)

// glState tracks the last value set for every piece of mutable pipeline
// state and emits a GPU call only when a setter actually changes it.
type glState struct {
	gl glctx.Context

	oldBlending      material.Blending
	oldBlendEquation material.BlendEquation
	oldBlendSrc      material.BlendFactor
	oldBlendDst      material.BlendFactor
	blendingInit     bool
	blendFuncInit    bool

	oldDepthTest   bool
	depthTestInit  bool
	oldDepthWrite  bool
	depthWriteInit bool

	oldPolygonOffset        bool
	oldPolygonOffsetFactor  float32
	oldPolygonOffsetUnits   float32
	polygonOffsetInit       bool
	polygonOffsetParamsInit bool

	oldDoubleSided bool
	oldFlipSided   bool
	sideInit       bool
	windingInit    bool

	oldLineWidth float32
}

func newGLState(gl glctx.Context) *glState {
	return &glState{gl: gl}
}

// reset forgets all cached values so the next setters re-emit
// unconditionally. Called when an external party may have touched the
// context.
func (s *glState) reset() {
	s.blendingInit = false
	s.blendFuncInit = false
	s.depthTestInit = false
	s.depthWriteInit = false
	s.polygonOffsetInit = false
	s.polygonOffsetParamsInit = false
	s.sideInit = false
	s.windingInit = false
	s.oldLineWidth = 0
}

// blendEquationEnum maps the material blend equation to its GL enum.
func blendEquationEnum(eq material.BlendEquation) glctx.Enum {
	switch eq {
	case material.BlendEquationSubtract:
		return glctx.FUNC_SUBTRACT
	case material.BlendEquationReverseSubtract:
		return glctx.FUNC_REVERSE_SUBTRACT
	}
	return glctx.FUNC_ADD
}

// blendFactorEnum maps the material blend factor to its GL enum.
func blendFactorEnum(f material.BlendFactor) glctx.Enum {
	switch f {
	case material.BlendFactorZero:
		return glctx.ZERO
	case material.BlendFactorOne:
		return glctx.ONE
	case material.BlendFactorSrcColor:
		return glctx.SRC_COLOR
	case material.BlendFactorOneMinusSrcColor:
		return glctx.ONE_MINUS_SRC_COLOR
	case material.BlendFactorSrcAlpha:
		return glctx.SRC_ALPHA
	case material.BlendFactorOneMinusSrcAlpha:
		return glctx.ONE_MINUS_SRC_ALPHA
	case material.BlendFactorDstAlpha:
		return glctx.DST_ALPHA
	case material.BlendFactorOneMinusDstAlpha:
		return glctx.ONE_MINUS_DST_ALPHA
	case material.BlendFactorDstColor:
		return glctx.DST_COLOR
	case material.BlendFactorOneMinusDstColor:
		return glctx.ONE_MINUS_DST_COLOR
	case material.BlendFactorSrcAlphaSaturate:
		return glctx.SRC_ALPHA_SATURATE
	}
	return glctx.ONE
}

// setBlending applies a blend preset, emitting GL calls only on change.
// Custom blending additionally applies the equation and factors.
func (s *glState) setBlending(blending material.Blending, eq material.BlendEquation, src, dst material.BlendFactor) {
	if !s.blendingInit || blending != s.oldBlending {
		gl := s.gl
		switch blending {
		case material.BlendingNone:
			gl.Disable(glctx.BLEND)
		case material.BlendingAdditive:
			gl.Enable(glctx.BLEND)
			gl.BlendEquation(glctx.FUNC_ADD)
			gl.BlendFunc(glctx.SRC_ALPHA, glctx.ONE)
		case material.BlendingSubtractive:
			gl.Enable(glctx.BLEND)
			gl.BlendEquation(glctx.FUNC_ADD)
			gl.BlendFunc(glctx.ZERO, glctx.ONE_MINUS_SRC_COLOR)
		case material.BlendingMultiply:
			gl.Enable(glctx.BLEND)
			gl.BlendEquation(glctx.FUNC_ADD)
			gl.BlendFunc(glctx.ZERO, glctx.SRC_COLOR)
		case material.BlendingCustom:
			gl.Enable(glctx.BLEND)
		default: // BlendingNormal
			gl.Enable(glctx.BLEND)
			gl.BlendEquationSeparate(glctx.FUNC_ADD, glctx.FUNC_ADD)
			gl.BlendFuncSeparate(glctx.SRC_ALPHA, glctx.ONE_MINUS_SRC_ALPHA, glctx.ONE, glctx.ONE_MINUS_SRC_ALPHA)
		}
		s.oldBlending = blending
		s.blendingInit = true
		s.blendFuncInit = false
	}

	if blending == material.BlendingCustom {
		if !s.blendFuncInit || eq != s.oldBlendEquation || src != s.oldBlendSrc || dst != s.oldBlendDst {
			s.gl.BlendEquation(blendEquationEnum(eq))
			s.gl.BlendFunc(blendFactorEnum(src), blendFactorEnum(dst))
			s.oldBlendEquation = eq
			s.oldBlendSrc = src
			s.oldBlendDst = dst
			s.blendFuncInit = true
		}
	}
}

// setDepthTest toggles the depth test.
func (s *glState) setDepthTest(enabled bool) {
	if s.depthTestInit && s.oldDepthTest == enabled {
		return
	}
	if enabled {
		s.gl.Enable(glctx.DEPTH_TEST)
	} else {
		s.gl.Disable(glctx.DEPTH_TEST)
	}
	s.oldDepthTest = enabled
	s.depthTestInit = true
}

// setDepthWrite toggles depth writes.
func (s *glState) setDepthWrite(enabled bool) {
	if s.depthWriteInit && s.oldDepthWrite == enabled {
		return
	}
	s.gl.DepthMask(enabled)
	s.oldDepthWrite = enabled
	s.depthWriteInit = true
}

// setPolygonOffset toggles and parameterizes depth biasing.
func (s *glState) setPolygonOffset(enabled bool, factor, units float32) {
	if !s.polygonOffsetInit || s.oldPolygonOffset != enabled {
		if enabled {
			s.gl.Enable(glctx.POLYGON_OFFSET_FILL)
		} else {
			s.gl.Disable(glctx.POLYGON_OFFSET_FILL)
		}
		s.oldPolygonOffset = enabled
		s.polygonOffsetInit = true
	}
	if enabled && (!s.polygonOffsetParamsInit || factor != s.oldPolygonOffsetFactor || units != s.oldPolygonOffsetUnits) {
		s.gl.PolygonOffset(factor, units)
		s.oldPolygonOffsetFactor = factor
		s.oldPolygonOffsetUnits = units
		s.polygonOffsetParamsInit = true
	}
}

// setMaterialFaces applies side selection: culling for single-sided
// materials and winding flip for mirrored transforms.
func (s *glState) setMaterialFaces(side material.Side, flipSided bool) {
	doubleSided := side == material.SideDouble
	if side == material.SideBack {
		flipSided = !flipSided
	}

	if !s.sideInit || s.oldDoubleSided != doubleSided {
		if doubleSided {
			s.gl.Disable(glctx.CULL_FACE)
		} else {
			s.gl.Enable(glctx.CULL_FACE)
		}
		s.oldDoubleSided = doubleSided
		s.sideInit = true
	}

	if !s.windingInit || s.oldFlipSided != flipSided {
		if flipSided {
			s.gl.FrontFace(glctx.CW)
		} else {
			s.gl.FrontFace(glctx.CCW)
		}
		s.oldFlipSided = flipSided
		s.windingInit = true
	}
}

// setLineWidth applies the rasterized line width.
func (s *glState) setLineWidth(width float32) {
	if width == s.oldLineWidth {
		return
	}
	s.gl.LineWidth(width)
	s.oldLineWidth = width
}
