package material

import "github.com/Carmen-Shannon/trigl/engine/math3"

// LineBasicMaterial renders solid-colored line strips or segments.
type LineBasicMaterial struct {
	base Base

	Color math3.Color

	// Linewidth in pixels; driver support above 1 varies.
	Linewidth float32

	VertexColors VertexColorMode

	Fog bool
}

// NewLineBasicMaterial creates a white line material.
func NewLineBasicMaterial() *LineBasicMaterial {
	return &LineBasicMaterial{
		base:      newBase(),
		Color:     math3.Color{R: 1, G: 1, B: 1},
		Linewidth: 1,
		Fog:       true,
	}
}

func (m *LineBasicMaterial) Base() *Base { return &m.base }

// LineDashedMaterial renders dashed lines using the geometry's per-vertex
// line distances.
type LineDashedMaterial struct {
	base Base

	Color math3.Color

	Linewidth float32

	// Scale multiplies the line distance; DashSize and GapSize shape the
	// dash pattern in distance units.
	Scale    float32
	DashSize float32
	GapSize  float32

	VertexColors VertexColorMode

	Fog bool
}

// NewLineDashedMaterial creates a white dashed line material.
func NewLineDashedMaterial() *LineDashedMaterial {
	return &LineDashedMaterial{
		base:      newBase(),
		Color:     math3.Color{R: 1, G: 1, B: 1},
		Linewidth: 1,
		Scale:     1,
		DashSize:  3,
		GapSize:   1,
		Fog:       true,
	}
}

func (m *LineDashedMaterial) Base() *Base { return &m.base }
