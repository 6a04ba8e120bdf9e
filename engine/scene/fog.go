package scene

import "github.com/Carmen-Shannon/trigl/engine/math3"

// FogSpec is either linear or exponential-squared fog.
type FogSpec interface {
	// FogColor returns the fog color, which the renderer also uses as the
	// implicit clear color match.
	//
	// Returns:
	//   - math3.Color: the fog color
	FogColor() math3.Color
}

// Fog fades linearly between Near and Far eye-space distances.
type Fog struct {
	Color math3.Color
	Near  float32
	Far   float32
}

// NewFog creates linear fog.
func NewFog(color math3.Color, near, far float32) *Fog {
	return &Fog{Color: color, Near: near, Far: far}
}

func (f *Fog) FogColor() math3.Color { return f.Color }

// FogExp2 thickens exponentially with the square of eye-space distance.
type FogExp2 struct {
	Color   math3.Color
	Density float32
}

// NewFogExp2 creates exponential-squared fog.
func NewFogExp2(color math3.Color, density float32) *FogExp2 {
	return &FogExp2{Color: color, Density: density}
}

func (f *FogExp2) FogColor() math3.Color { return f.Color }
