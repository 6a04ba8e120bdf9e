package math3

import "github.com/chewxy/math32"

// Color is an RGB triple with float32 channels in [0, 1].
type Color struct {
	R, G, B float32
}

// ColorHex constructs a Color from a packed 0xRRGGBB value.
func ColorHex(hex uint32) Color {
	var c Color
	c.SetHex(hex)
	return c
}

// SetHex assigns the channels from a packed 0xRRGGBB value.
func (c *Color) SetHex(hex uint32) {
	c.R = float32((hex>>16)&255) / 255
	c.G = float32((hex>>8)&255) / 255
	c.B = float32(hex&255) / 255
}

// SetRGB assigns the three channels in place.
func (c *Color) SetRGB(r, g, b float32) {
	c.R, c.G, c.B = r, g, b
}

// Hex returns the packed 0xRRGGBB value of c.
func (c Color) Hex() uint32 {
	r := uint32(Clamp(c.R, 0, 1) * 255)
	g := uint32(Clamp(c.G, 0, 1) * 255)
	b := uint32(Clamp(c.B, 0, 1) * 255)
	return r<<16 | g<<8 | b
}

// MulScalar returns c with every channel scaled by s.
func (c Color) MulScalar(s float32) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Mul returns the channel-wise product of c and d.
func (c Color) Mul(d Color) Color {
	return Color{c.R * d.R, c.G * d.G, c.B * d.B}
}

// Add returns the channel-wise sum of c and d.
func (c Color) Add(d Color) Color {
	return Color{c.R + d.R, c.G + d.G, c.B + d.B}
}

// Lerp returns the linear interpolation from c to d by factor t.
func (c Color) Lerp(d Color, t float32) Color {
	return Color{
		c.R + (d.R-c.R)*t,
		c.G + (d.G-c.G)*t,
		c.B + (d.B-c.B)*t,
	}
}

// GammaToLinear returns c converted from gamma to linear space using the
// square approximation.
func (c Color) GammaToLinear() Color {
	return Color{c.R * c.R, c.G * c.G, c.B * c.B}
}

// LinearToGamma returns c converted from linear to gamma space using the
// square-root approximation.
func (c Color) LinearToGamma() Color {
	return Color{math32.Sqrt(c.R), math32.Sqrt(c.G), math32.Sqrt(c.B)}
}
