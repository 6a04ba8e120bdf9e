package math3

// Triangle is three corner points.
type Triangle struct {
	A, B, C Vector3
}

// Normal returns the unit normal of the triangle (counter-clockwise
// winding), or the zero vector for a degenerate triangle.
func (t Triangle) Normal() Vector3 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)).Normalize()
}

// Area returns the surface area of the triangle.
func (t Triangle) Area() float32 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)).Length() * 0.5
}

// BarycoordFromPoint returns the barycentric coordinates of p with respect
// to the triangle. Degenerate triangles collapse to (-2, -1, -1), which
// fails every containment test.
func (t Triangle) BarycoordFromPoint(p Vector3) Vector3 {
	v0 := t.C.Sub(t.A)
	v1 := t.B.Sub(t.A)
	v2 := p.Sub(t.A)

	dot00 := v0.Dot(v0)
	dot01 := v0.Dot(v1)
	dot02 := v0.Dot(v2)
	dot11 := v1.Dot(v1)
	dot12 := v1.Dot(v2)

	denom := dot00*dot11 - dot01*dot01
	if denom == 0 {
		return V3(-2, -1, -1)
	}
	invDenom := 1 / denom
	u := (dot11*dot02 - dot01*dot12) * invDenom
	v := (dot00*dot12 - dot01*dot02) * invDenom
	return V3(1-u-v, v, u)
}

// ContainsPoint reports whether p (assumed coplanar) lies inside the
// triangle.
func (t Triangle) ContainsPoint(p Vector3) bool {
	bc := t.BarycoordFromPoint(p)
	return bc.X >= 0 && bc.Y >= 0 && bc.X+bc.Y <= 1
}
