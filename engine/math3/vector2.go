package math3

import "github.com/chewxy/math32"

// Vector2 is a 2-component float32 vector, used for UV coordinates and
// screen-space positions.
type Vector2 struct {
	X, Y float32
}

// V2 constructs a Vector2 from its components.
func V2(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// Set assigns both components in place.
func (v *Vector2) Set(x, y float32) {
	v.X, v.Y = x, y
}

// Add returns v + w.
func (v Vector2) Add(w Vector2) Vector2 {
	return Vector2{v.X + w.X, v.Y + w.Y}
}

// Sub returns v - w.
func (v Vector2) Sub(w Vector2) Vector2 {
	return Vector2{v.X - w.X, v.Y - w.Y}
}

// MulScalar returns v scaled by s.
func (v Vector2) MulScalar(s float32) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

// DivScalar returns v divided by s, or the zero vector when s is zero.
func (v Vector2) DivScalar(s float32) Vector2 {
	return v.MulScalar(safeInv(s))
}

// Dot returns the dot product of v and w.
func (v Vector2) Dot(w Vector2) float32 {
	return v.X*w.X + v.Y*w.Y
}

// LengthSq returns the squared length of v.
func (v Vector2) LengthSq() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the length of v.
func (v Vector2) Length() float32 {
	return math32.Sqrt(v.LengthSq())
}

// DistanceTo returns the distance between v and w.
func (v Vector2) DistanceTo(w Vector2) float32 {
	return v.Sub(w).Length()
}

// Lerp returns the linear interpolation from v to w by factor t.
func (v Vector2) Lerp(w Vector2, t float32) Vector2 {
	return Vector2{v.X + (w.X-v.X)*t, v.Y + (w.Y-v.Y)*t}
}

// Equals reports whether v and w are exactly equal.
func (v Vector2) Equals(w Vector2) bool {
	return v.X == w.X && v.Y == w.Y
}
