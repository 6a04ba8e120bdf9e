package texture

import (
	"sync/atomic"
)

// renderTargetCount is an atomic counter used to assign unique target ids.
var renderTargetCount atomic.Uint64

// RenderTarget is an off-screen framebuffer: a color attachment (2D or
// cube) plus an optional depth/stencil renderbuffer. The renderer creates
// the GPU objects lazily on first bind and keeps them in GL.
type RenderTarget struct {
	// ID is the unique numeric id assigned at creation.
	ID uint64

	// Width and Height are the attachment dimensions in pixels.
	Width, Height int

	WrapS, WrapT Wrapping

	MagFilter, MinFilter Filter

	Format Format

	Type DataType

	// DepthBuffer attaches a depth renderbuffer.
	DepthBuffer bool

	// StencilBuffer packs a stencil channel into the depth attachment.
	StencilBuffer bool

	// GenerateMipmaps regenerates the color attachment's mipmap chain after
	// rendering when the min filter needs one.
	GenerateMipmaps bool

	// Cube renders into a cube-map color attachment instead of a 2D one.
	Cube bool

	// ActiveCubeFace selects which cube face (+X..-Z as 0..5) receives
	// draws when Cube is set.
	ActiveCubeFace int

	// GL holds the renderer-private framebuffer state.
	GL any
}

// NewRenderTarget creates a render target with linear filtering, clamped
// wrap, RGBA color, and a depth buffer.
func NewRenderTarget(width, height int) *RenderTarget {
	return &RenderTarget{
		ID:              renderTargetCount.Add(1),
		Width:           width,
		Height:          height,
		WrapS:           WrapClampToEdge,
		WrapT:           WrapClampToEdge,
		MagFilter:       FilterLinear,
		MinFilter:       FilterLinear,
		Format:          FormatRGBA,
		Type:            TypeUnsignedByte,
		DepthBuffer:     true,
		StencilBuffer:   true,
		GenerateMipmaps: true,
	}
}
