package scene

import (
	"github.com/Carmen-Shannon/trigl/engine/material"
	"github.com/Carmen-Shannon/trigl/engine/math3"
)

// SpriteAlignment anchors a sprite relative to its projected position.
type SpriteAlignment int

const (
	SpriteAlignCenter SpriteAlignment = iota
	SpriteAlignTopLeft
	SpriteAlignTopCenter
	SpriteAlignTopRight
	SpriteAlignCenterLeft
	SpriteAlignCenterRight
	SpriteAlignBottomLeft
	SpriteAlignBottomCenter
	SpriteAlignBottomRight
)

// Sprite is a screen-aligned quad. Sprites bypass the mesh pipeline; a
// renderer plugin or the projector consumes them.
type Sprite struct {
	Object3D

	Material material.Material

	// Alignment anchors the quad around the projected position.
	Alignment SpriteAlignment

	// SpriteRotation spins the quad in screen space, radians.
	SpriteRotation float32

	// UVOffset and UVScale window the sprite texture.
	UVOffset math3.Vector2
	UVScale  math3.Vector2
}

// NewSprite creates a center-aligned sprite.
func NewSprite(mat material.Material) *Sprite {
	s := &Sprite{
		Material: mat,
		UVScale:  math3.V2(1, 1),
	}
	initObject3D(s, &s.Object3D)
	return s
}

func (s *Sprite) Base() *Object3D { return &s.Object3D }

// Bone is a skeleton joint. Bones participate in the transform hierarchy
// but are never drawn and never enter the scene's render list.
type Bone struct {
	Object3D

	// SkinMatrix is the bone's contribution to skinning, refreshed from the
	// world matrix by the skin owner.
	SkinMatrix math3.Matrix4
}

// NewBone creates a bone.
func NewBone() *Bone {
	b := &Bone{SkinMatrix: math3.Identity4()}
	initObject3D(b, &b.Object3D)
	return b
}

func (b *Bone) Base() *Object3D { return &b.Object3D }
