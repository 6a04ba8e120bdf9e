package math3

import "github.com/chewxy/math32"

// Box3 is an axis-aligned bounding box.
type Box3 struct {
	Min, Max Vector3
}

// EmptyBox3 returns a box that contains nothing: Min at +Inf, Max at -Inf.
func EmptyBox3() Box3 {
	inf := math32.Inf(1)
	return Box3{
		Min: V3(inf, inf, inf),
		Max: V3(-inf, -inf, -inf),
	}
}

// IsEmpty reports whether the box contains no points.
func (b Box3) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z
}

// SetFromPoints shrink-wraps the box around points. An empty slice yields
// the empty box.
func (b *Box3) SetFromPoints(points []Vector3) {
	*b = EmptyBox3()
	for _, p := range points {
		b.ExpandByPoint(p)
	}
}

// ExpandByPoint grows the box to contain p.
func (b *Box3) ExpandByPoint(p Vector3) {
	b.Min = b.Min.Min(p)
	b.Max = b.Max.Max(p)
}

// ExpandByScalar grows the box by s on every side.
func (b *Box3) ExpandByScalar(s float32) {
	b.Min = b.Min.Sub(V3(s, s, s))
	b.Max = b.Max.Add(V3(s, s, s))
}

// ContainsPoint reports whether p lies inside or on the box.
func (b Box3) ContainsPoint(p Vector3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// IntersectsBox reports whether b and other overlap.
func (b Box3) IntersectsBox(other Box3) bool {
	return b.Max.X >= other.Min.X && b.Min.X <= other.Max.X &&
		b.Max.Y >= other.Min.Y && b.Min.Y <= other.Max.Y &&
		b.Max.Z >= other.Min.Z && b.Min.Z <= other.Max.Z
}

// Center returns the midpoint of the box.
func (b Box3) Center() Vector3 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Size returns the box extents along each axis.
func (b Box3) Size() Vector3 {
	if b.IsEmpty() {
		return Vector3{}
	}
	return b.Max.Sub(b.Min)
}
