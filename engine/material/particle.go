package material

import (
	"github.com/Carmen-Shannon/trigl/engine/math3"
	"github.com/Carmen-Shannon/trigl/engine/texture"
)

// ParticleBasicMaterial renders point sprites for particle systems.
type ParticleBasicMaterial struct {
	base Base

	Color math3.Color

	// Map is sampled across each point sprite, or nil.
	Map *texture.Texture

	// Size is the point size in pixels (or world units when SizeAttenuation
	// is set).
	Size float32

	// SizeAttenuation shrinks points with eye-space distance.
	SizeAttenuation bool

	VertexColors VertexColorMode

	Fog bool
}

// NewParticleBasicMaterial creates a white particle material.
func NewParticleBasicMaterial() *ParticleBasicMaterial {
	return &ParticleBasicMaterial{
		base:            newBase(),
		Color:           math3.Color{R: 1, G: 1, B: 1},
		Size:            1,
		SizeAttenuation: true,
		Fog:             true,
	}
}

func (m *ParticleBasicMaterial) Base() *Base { return &m.base }
