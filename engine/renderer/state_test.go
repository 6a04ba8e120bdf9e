package renderer

import (
	"testing"

	"github.com/Carmen-Shannon/trigl/engine/material"
	"github.com/stretchr/testify/assert"
)

func TestStateBlendingEmitsOnlyOnChange(t *testing.T) {
	gl := newFakeGL()
	state := newGLState(gl)

	state.setBlending(material.BlendingNormal, 0, 0, 0)
	first := len(gl.calls)
	assert.Greater(t, first, 0)

	// Same mode again: no new GL calls.
	state.setBlending(material.BlendingNormal, 0, 0, 0)
	assert.Equal(t, first, len(gl.calls))

	state.setBlending(material.BlendingAdditive, 0, 0, 0)
	assert.Greater(t, len(gl.calls), first)
}

func TestStateCustomBlendingAppliesFactors(t *testing.T) {
	gl := newFakeGL()
	state := newGLState(gl)

	state.setBlending(material.BlendingCustom, material.BlendEquationAdd,
		material.BlendFactorOne, material.BlendFactorOne)
	assert.Contains(t, gl.calls, "BlendFunc(0x1,0x1)")

	// Changing only a factor re-emits the blend function.
	n := len(gl.calls)
	state.setBlending(material.BlendingCustom, material.BlendEquationAdd,
		material.BlendFactorSrcAlpha, material.BlendFactorOne)
	assert.Greater(t, len(gl.calls), n)
}

func TestStateDepthTogglesOnce(t *testing.T) {
	gl := newFakeGL()
	state := newGLState(gl)

	state.setDepthTest(true)
	state.setDepthWrite(false)
	n := len(gl.calls)

	state.setDepthTest(true)
	state.setDepthWrite(false)
	assert.Equal(t, n, len(gl.calls))

	state.setDepthWrite(true)
	assert.Equal(t, n+1, len(gl.calls))
}

func TestStatePolygonOffset(t *testing.T) {
	gl := newFakeGL()
	state := newGLState(gl)

	state.setPolygonOffset(true, 1, 2)
	assert.Contains(t, gl.calls, "PolygonOffset(1,2)")
	n := len(gl.calls)

	state.setPolygonOffset(true, 1, 2)
	assert.Equal(t, n, len(gl.calls))

	state.setPolygonOffset(true, 3, 2)
	assert.Contains(t, gl.calls, "PolygonOffset(3,2)")
}

func TestStateMaterialFaces(t *testing.T) {
	gl := newFakeGL()
	state := newGLState(gl)

	state.setMaterialFaces(material.SideDouble, false)
	assert.Contains(t, gl.calls, "Disable(0xb44)")

	state.setMaterialFaces(material.SideFront, false)
	assert.Contains(t, gl.calls, "Enable(0xb44)")

	// Back side flips the winding.
	state.setMaterialFaces(material.SideBack, false)
	assert.Contains(t, gl.calls, "FrontFace(0x900)")

	// A mirrored transform on a back-side material flips it back.
	state.setMaterialFaces(material.SideBack, true)
	assert.Contains(t, gl.calls, "FrontFace(0x901)")
}

func TestStateLineWidth(t *testing.T) {
	gl := newFakeGL()
	state := newGLState(gl)

	state.setLineWidth(2)
	n := len(gl.calls)
	state.setLineWidth(2)
	assert.Equal(t, n, len(gl.calls))
	state.setLineWidth(3)
	assert.Equal(t, n+1, len(gl.calls))
}

func TestStateResetForgetsCaches(t *testing.T) {
	gl := newFakeGL()
	state := newGLState(gl)

	state.setDepthTest(true)
	n := len(gl.calls)
	state.reset()
	state.setDepthTest(true)
	assert.Greater(t, len(gl.calls), n)
}
