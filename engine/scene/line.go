package scene

import (
	"github.com/Carmen-Shannon/trigl/engine/geometry"
	"github.com/Carmen-Shannon/trigl/engine/material"
)

// LineType selects how a Line's vertices connect.
type LineType int

const (
	// LineStrip connects consecutive vertices into one polyline.
	LineStrip LineType = iota

	// LinePieces draws each consecutive vertex pair as an isolated segment.
	LinePieces
)

// Line is a drawable polyline or segment soup over a geometry's vertex
// sequence.
type Line struct {
	Object3D

	Geometry *geometry.Geometry

	Buffer *geometry.BufferGeometry

	Material material.Material

	// Type selects strip or segment-pair connectivity.
	Type LineType
}

// NewLine creates a line strip over geo.
func NewLine(geo *geometry.Geometry, mat material.Material, lineType LineType) *Line {
	l := &Line{Geometry: geo, Material: mat, Type: lineType}
	initObject3D(l, &l.Object3D)
	return l
}

func (l *Line) Base() *Object3D { return &l.Object3D }
