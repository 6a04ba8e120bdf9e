package math3

import "github.com/chewxy/math32"

// Ray is a half-line from Origin along a normalized Direction.
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// NewRay constructs a Ray. The direction is expected to be normalized.
func NewRay(origin, direction Vector3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) Vector3 {
	return r.Origin.Add(r.Direction.MulScalar(t))
}

// DistanceToPoint returns the shortest distance from the ray to point. For
// points behind the origin the distance to the origin itself is returned.
func (r Ray) DistanceToPoint(point Vector3) float32 {
	directionDistance := point.Sub(r.Origin).Dot(r.Direction)
	if directionDistance < 0 {
		return r.Origin.DistanceTo(point)
	}
	return r.At(directionDistance).DistanceTo(point)
}

// ApplyMatrix4 returns the ray transformed by m. The direction is
// re-normalized, so parameter values do not carry across spaces with
// non-unit scale.
func (r Ray) ApplyMatrix4(m *Matrix4) Ray {
	origin := r.Origin.ApplyMatrix4(m)
	tip := r.Origin.Add(r.Direction).ApplyMatrix4(m)
	return Ray{Origin: origin, Direction: tip.Sub(origin).Normalize()}
}

// IntersectPlane returns the parameter t where the ray hits the plane.
// ok is false when the ray is parallel to (and off) the plane or the hit is
// behind the origin.
func (r Ray) IntersectPlane(p Plane) (t float32, ok bool) {
	denom := p.Normal.Dot(r.Direction)
	if denom == 0 {
		// Coplanar ray: report the origin itself.
		if p.DistanceToPoint(r.Origin) == 0 {
			return 0, true
		}
		return 0, false
	}
	t = -(r.Origin.Dot(p.Normal) + p.Constant) / denom
	if t < 0 {
		return 0, false
	}
	return t, true
}

// IntersectSphere returns the parameter t of the nearest forward
// intersection with s, or ok=false on a miss.
func (r Ray) IntersectSphere(s Sphere) (t float32, ok bool) {
	l := s.Center.Sub(r.Origin)
	tca := l.Dot(r.Direction)
	d2 := l.Dot(l) - tca*tca
	r2 := s.Radius * s.Radius
	if d2 > r2 {
		return 0, false
	}
	thc := math32.Sqrt(r2 - d2)
	t0 := tca - thc
	t1 := tca + thc
	if t1 < 0 {
		return 0, false
	}
	if t0 < 0 {
		return t1, true
	}
	return t0, true
}

// IntersectBox returns the parameter t where the ray enters the box, using
// the slab method. Infinities from zero direction components resolve
// correctly; a NaN arising from 0*Inf on a degenerate slab is rejected.
func (r Ray) IntersectBox(b Box3) (t float32, ok bool) {
	invDirX := 1 / r.Direction.X
	invDirY := 1 / r.Direction.Y
	invDirZ := 1 / r.Direction.Z

	var tmin, tmax float32
	if invDirX >= 0 {
		tmin = (b.Min.X - r.Origin.X) * invDirX
		tmax = (b.Max.X - r.Origin.X) * invDirX
	} else {
		tmin = (b.Max.X - r.Origin.X) * invDirX
		tmax = (b.Min.X - r.Origin.X) * invDirX
	}

	var tymin, tymax float32
	if invDirY >= 0 {
		tymin = (b.Min.Y - r.Origin.Y) * invDirY
		tymax = (b.Max.Y - r.Origin.Y) * invDirY
	} else {
		tymin = (b.Max.Y - r.Origin.Y) * invDirY
		tymax = (b.Min.Y - r.Origin.Y) * invDirY
	}

	if tmin > tymax || tymin > tmax {
		return 0, false
	}
	// These comparisons are written so that NaN (from 0 * Inf) fails them
	// and the other slab's bound is kept.
	if tymin > tmin || tmin != tmin {
		tmin = tymin
	}
	if tymax < tmax || tmax != tmax {
		tmax = tymax
	}

	var tzmin, tzmax float32
	if invDirZ >= 0 {
		tzmin = (b.Min.Z - r.Origin.Z) * invDirZ
		tzmax = (b.Max.Z - r.Origin.Z) * invDirZ
	} else {
		tzmin = (b.Max.Z - r.Origin.Z) * invDirZ
		tzmax = (b.Min.Z - r.Origin.Z) * invDirZ
	}

	if tmin > tzmax || tzmin > tmax {
		return 0, false
	}
	if tzmin > tmin || tmin != tmin {
		tmin = tzmin
	}
	if tzmax < tmax || tmax != tmax {
		tmax = tzmax
	}

	if tmax < 0 {
		return 0, false
	}
	if tmin >= 0 {
		return tmin, true
	}
	return tmax, true
}

// IntersectTriangle tests the ray against triangle (a, b, c) using the
// Möller-Trumbore construction. When backfaceCulling is set, hits on the
// back side (ray along the face normal) are rejected.
func (r Ray) IntersectTriangle(a, b, c Vector3, backfaceCulling bool) (t float32, ok bool) {
	edge1 := b.Sub(a)
	edge2 := c.Sub(a)
	normal := edge1.Cross(edge2)

	ddn := r.Direction.Dot(normal)
	var sign float32
	switch {
	case ddn > 0:
		if backfaceCulling {
			return 0, false
		}
		sign = 1
	case ddn < 0:
		sign = -1
		ddn = -ddn
	default:
		return 0, false
	}

	diff := r.Origin.Sub(a)
	ddQxE2 := sign * r.Direction.Dot(diff.Cross(edge2))
	if ddQxE2 < 0 {
		return 0, false
	}
	ddE1xQ := sign * r.Direction.Dot(edge1.Cross(diff))
	if ddE1xQ < 0 {
		return 0, false
	}
	if ddQxE2+ddE1xQ > ddn {
		return 0, false
	}

	qdn := -sign * diff.Dot(normal)
	if qdn < 0 {
		return 0, false
	}
	return qdn / ddn, true
}
