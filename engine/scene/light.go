package scene

import (
	"github.com/Carmen-Shannon/trigl/engine/math3"
)

// LightNode is implemented by every light kind; the renderer aggregates
// them into shader uniforms each frame.
type LightNode interface {
	Node

	// LightBase returns the shared light payload.
	//
	// Returns:
	//   - *Light: the shared color state
	LightBase() *Light
}

// Light is the payload shared by every light kind.
type Light struct {
	Object3D

	// Color is the light color.
	Color math3.Color

	// OnlyShadow excludes the light from shading while keeping its shadow
	// contribution.
	OnlyShadow bool
}

func (l *Light) LightBase() *Light { return l }

// AmbientLight adds a constant color term to every lit surface.
type AmbientLight struct {
	Light
}

// NewAmbientLight creates an ambient light.
func NewAmbientLight(color math3.Color) *AmbientLight {
	l := &AmbientLight{}
	initObject3D(l, &l.Object3D)
	l.Color = color
	return l
}

func (l *AmbientLight) Base() *Object3D { return &l.Object3D }

// DirectionalLight shines from its position toward a target with no
// distance attenuation.
type DirectionalLight struct {
	Light

	// Intensity scales the light color.
	Intensity float32

	// Target is the node the light points at; nil aims at the origin.
	Target Node

	// Shadow camera parameters, consumed when CastShadow is set.
	ShadowCameraNear   float32
	ShadowCameraFar    float32
	ShadowCameraLeft   float32
	ShadowCameraRight  float32
	ShadowCameraTop    float32
	ShadowCameraBottom float32
	ShadowBias         float32
	ShadowDarkness     float32
	ShadowMapWidth     int
	ShadowMapHeight    int

	// ShadowCascade splits the shadow camera into distance bands.
	ShadowCascade       bool
	ShadowCascadeCount  int
	ShadowCascadeNearZ  [3]float32
	ShadowCascadeFarZ   [3]float32
	ShadowCascadeOffset math3.Vector3
}

// NewDirectionalLight creates a directional light.
func NewDirectionalLight(color math3.Color, intensity float32) *DirectionalLight {
	l := &DirectionalLight{
		Intensity:          intensity,
		ShadowCameraNear:   50,
		ShadowCameraFar:    5000,
		ShadowCameraLeft:   -500,
		ShadowCameraRight:  500,
		ShadowCameraTop:    500,
		ShadowCameraBottom: -500,
		ShadowDarkness:     0.5,
		ShadowMapWidth:     512,
		ShadowMapHeight:    512,
		ShadowCascadeCount: 2,
		ShadowCascadeNearZ: [3]float32{-1, 0.99, 0.998},
		ShadowCascadeFarZ:  [3]float32{0.99, 0.998, 1},
	}
	initObject3D(l, &l.Object3D)
	l.Color = color
	l.Position = math3.V3(0, 1, 0)
	return l
}

func (l *DirectionalLight) Base() *Object3D { return &l.Object3D }

// TargetPosition returns the world position the light points at.
func (l *DirectionalLight) TargetPosition() math3.Vector3 {
	if l.Target == nil {
		return math3.Vector3{}
	}
	return l.Target.Base().MatrixWorld.Position()
}

// PointLight emits in all directions from its position, attenuating
// linearly to zero at Distance (no attenuation when Distance is zero).
type PointLight struct {
	Light

	Intensity float32

	Distance float32
}

// NewPointLight creates a point light.
func NewPointLight(color math3.Color, intensity, distance float32) *PointLight {
	l := &PointLight{Intensity: intensity, Distance: distance}
	initObject3D(l, &l.Object3D)
	l.Color = color
	return l
}

func (l *PointLight) Base() *Object3D { return &l.Object3D }

// SpotLight emits a cone from its position toward a target, attenuating
// with distance and with angle from the cone axis.
type SpotLight struct {
	Light

	Intensity float32

	Distance float32

	// Angle is the cone half-angle in radians.
	Angle float32

	// Exponent shapes the falloff from the cone axis.
	Exponent float32

	// Target is the node the cone points at; nil aims at the origin.
	Target Node

	// Shadow camera parameters, consumed when CastShadow is set.
	ShadowCameraNear float32
	ShadowCameraFar  float32
	ShadowCameraFov  float32
	ShadowBias       float32
	ShadowDarkness   float32
	ShadowMapWidth   int
	ShadowMapHeight  int
}

// NewSpotLight creates a spot light.
func NewSpotLight(color math3.Color, intensity, distance, angle, exponent float32) *SpotLight {
	l := &SpotLight{
		Intensity:        intensity,
		Distance:         distance,
		Angle:            angle,
		Exponent:         exponent,
		ShadowCameraNear: 50,
		ShadowCameraFar:  5000,
		ShadowCameraFov:  50,
		ShadowDarkness:   0.5,
		ShadowMapWidth:   512,
		ShadowMapHeight:  512,
	}
	initObject3D(l, &l.Object3D)
	l.Color = color
	l.Position = math3.V3(0, 1, 0)
	return l
}

func (l *SpotLight) Base() *Object3D { return &l.Object3D }

// TargetPosition returns the world position the cone points at.
func (l *SpotLight) TargetPosition() math3.Vector3 {
	if l.Target == nil {
		return math3.Vector3{}
	}
	return l.Target.Base().MatrixWorld.Position()
}

// HemisphereLight blends a sky color from above with a ground color from
// below across each surface normal.
type HemisphereLight struct {
	Light

	// GroundColor lights surfaces facing away from the light direction;
	// the base Color is the sky side.
	GroundColor math3.Color

	Intensity float32
}

// NewHemisphereLight creates a hemisphere light.
func NewHemisphereLight(skyColor, groundColor math3.Color, intensity float32) *HemisphereLight {
	l := &HemisphereLight{GroundColor: groundColor, Intensity: intensity}
	initObject3D(l, &l.Object3D)
	l.Color = skyColor
	l.Position = math3.V3(0, 100, 0)
	return l
}

func (l *HemisphereLight) Base() *Object3D { return &l.Object3D }
