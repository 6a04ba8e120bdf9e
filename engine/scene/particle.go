package scene

import (
	"github.com/Carmen-Shannon/trigl/engine/geometry"
	"github.com/Carmen-Shannon/trigl/engine/material"
)

// Particle is a single billboarded point, rendered through the projector
// path (software projection) rather than the GPU point pipeline.
type Particle struct {
	Object3D

	Material material.Material
}

// NewParticle creates a particle with the given material.
func NewParticle(mat material.Material) *Particle {
	p := &Particle{Material: mat}
	initObject3D(p, &p.Object3D)
	return p
}

func (p *Particle) Base() *Object3D { return &p.Object3D }

// ParticleSystem draws a geometry's vertices as GPU point sprites in a
// single draw call.
type ParticleSystem struct {
	Object3D

	Geometry *geometry.Geometry

	Buffer *geometry.BufferGeometry

	Material material.Material

	// SortParticles re-sorts the vertex buffer back-to-front each frame so
	// blended sprites composite correctly.
	SortParticles bool
}

// NewParticleSystem creates a point system over geo. Frustum culling is
// off by default: particle clouds routinely exceed their initial bounds.
func NewParticleSystem(geo *geometry.Geometry, mat material.Material) *ParticleSystem {
	ps := &ParticleSystem{Geometry: geo, Material: mat}
	initObject3D(ps, &ps.Object3D)
	ps.FrustumCulled = false
	return ps
}

func (ps *ParticleSystem) Base() *Object3D { return &ps.Object3D }
