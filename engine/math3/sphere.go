package math3

import "github.com/chewxy/math32"

// Sphere is a bounding sphere.
type Sphere struct {
	Center Vector3
	Radius float32
}

// SetFromPoints fits the sphere around points, centered at the centroid of
// their bounding box. An empty slice yields a zero sphere.
func (s *Sphere) SetFromPoints(points []Vector3) {
	var box Box3
	box.SetFromPoints(points)
	if box.IsEmpty() {
		*s = Sphere{}
		return
	}
	s.Center = box.Center()

	var maxRadiusSq float32
	for _, p := range points {
		maxRadiusSq = Max(maxRadiusSq, s.Center.DistanceToSq(p))
	}
	s.Radius = math32.Sqrt(maxRadiusSq)
}

// ContainsPoint reports whether p lies inside or on the sphere.
func (s Sphere) ContainsPoint(p Vector3) bool {
	return p.DistanceTo(s.Center) <= s.Radius
}

// IntersectsSphere reports whether s and other overlap.
func (s Sphere) IntersectsSphere(other Sphere) bool {
	sum := s.Radius + other.Radius
	return s.Center.DistanceToSq(other.Center) <= sum*sum
}

// ApplyMatrix4 returns the sphere transformed by m: the center is moved and
// the radius scaled by the largest axis scale of m.
func (s Sphere) ApplyMatrix4(m *Matrix4) Sphere {
	return Sphere{
		Center: s.Center.ApplyMatrix4(m),
		Radius: s.Radius * m.MaxScaleOnAxis(),
	}
}
