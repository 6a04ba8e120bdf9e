package math3

// Frustum is the six planes of a view volume, oriented so the positive
// half-space of every plane is inside.
type Frustum struct {
	Planes [6]Plane
}

// Frustum plane indices.
const (
	FrustumRight = iota
	FrustumLeft
	FrustumBottom
	FrustumTop
	FrustumFar
	FrustumNear
)

// SetFromMatrix extracts the six planes from a combined projection-view
// matrix using the Gribb/Hartmann row combinations, normalizing each plane.
func (f *Frustum) SetFromMatrix(m *Matrix4) {
	e := &m.El
	f.Planes[FrustumRight].SetComponents(e[3]-e[0], e[7]-e[4], e[11]-e[8], e[15]-e[12])
	f.Planes[FrustumLeft].SetComponents(e[3]+e[0], e[7]+e[4], e[11]+e[8], e[15]+e[12])
	f.Planes[FrustumBottom].SetComponents(e[3]+e[1], e[7]+e[5], e[11]+e[9], e[15]+e[13])
	f.Planes[FrustumTop].SetComponents(e[3]-e[1], e[7]-e[5], e[11]-e[9], e[15]-e[13])
	f.Planes[FrustumFar].SetComponents(e[3]-e[2], e[7]-e[6], e[11]-e[10], e[15]-e[14])
	f.Planes[FrustumNear].SetComponents(e[3]+e[2], e[7]+e[6], e[11]+e[10], e[15]+e[14])
	for i := range f.Planes {
		f.Planes[i].Normalize()
	}
}

// ContainsPoint reports whether p is inside all six planes.
func (f *Frustum) ContainsPoint(p Vector3) bool {
	for i := range f.Planes {
		if f.Planes[i].DistanceToPoint(p) < 0 {
			return false
		}
	}
	return true
}

// IntersectsSphere reports whether s is at least partially inside the
// frustum: the sphere is rejected as soon as it lies entirely behind any
// plane.
func (f *Frustum) IntersectsSphere(s Sphere) bool {
	for i := range f.Planes {
		if f.Planes[i].DistanceToPoint(s.Center) < -s.Radius {
			return false
		}
	}
	return true
}
