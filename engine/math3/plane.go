package math3

// Plane is the set of points satisfying Normal · p + Constant = 0.
type Plane struct {
	Normal   Vector3
	Constant float32
}

// SetComponents assigns the plane equation coefficients (x, y, z, w) without
// normalizing.
func (p *Plane) SetComponents(x, y, z, w float32) {
	p.Normal.Set(x, y, z)
	p.Constant = w
}

// Normalize rescales the plane so its normal has unit length.
func (p *Plane) Normalize() {
	inv := safeInv(p.Normal.Length())
	p.Normal = p.Normal.MulScalar(inv)
	p.Constant *= inv
}

// DistanceToPoint returns the signed distance from point to the plane.
func (p Plane) DistanceToPoint(point Vector3) float32 {
	return p.Normal.Dot(point) + p.Constant
}

// DistanceToSphere returns the signed distance from the sphere surface to
// the plane.
func (p Plane) DistanceToSphere(s Sphere) float32 {
	return p.DistanceToPoint(s.Center) - s.Radius
}
