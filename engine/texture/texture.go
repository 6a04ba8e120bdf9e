// package texture describes GPU texture sources and sampling state. Pixel
// decoding happens in the window host; the renderer consumes these
// descriptors and owns the GPU-side handles.
package texture

import (
	"fmt"
	"sync/atomic"

	"github.com/Carmen-Shannon/trigl/engine/math3"
	"github.com/google/uuid"
)

// Wrapping selects texture coordinate behavior outside [0, 1].
type Wrapping int

const (
	WrapRepeat Wrapping = iota
	WrapClampToEdge
	WrapMirroredRepeat
)

// Filter selects texture sampling behavior.
type Filter int

const (
	FilterNearest Filter = iota
	FilterNearestMipMapNearest
	FilterNearestMipMapLinear
	FilterLinear
	FilterLinearMipMapNearest
	FilterLinearMipMapLinear
)

// Format selects the pixel layout of a texture.
type Format int

const (
	FormatRGBA Format = iota
	FormatRGB
	FormatAlpha
	FormatLuminance
	FormatLuminanceAlpha

	// S3TC compressed formats, usable when the driver advertises the
	// compression extension.
	FormatRGBAS3TCDXT1
	FormatRGBAS3TCDXT3
	FormatRGBAS3TCDXT5
)

// Compressed reports whether the format is an S3TC block format.
func (f Format) Compressed() bool {
	switch f {
	case FormatRGBAS3TCDXT1, FormatRGBAS3TCDXT3, FormatRGBAS3TCDXT5:
		return true
	}
	return false
}

// DataType selects the channel storage type of a texture.
type DataType int

const (
	TypeUnsignedByte DataType = iota
	TypeFloat
	TypeUnsignedShort565
	TypeUnsignedShort4444
	TypeUnsignedShort5551
)

// Image is a decoded pixel buffer as produced by the window host's image
// loader. Pixels are tightly packed rows in the texture's Format.
type Image struct {
	Pixels []byte
	Width  int
	Height int
}

// Empty reports whether the image has no usable pixel data.
func (img *Image) Empty() bool {
	return img == nil || img.Width == 0 || img.Height == 0 || len(img.Pixels) == 0
}

// textureCount is an atomic counter used to assign unique texture ids.
var textureCount atomic.Uint64

// Texture is a 2D or cube texture descriptor. The renderer uploads it when
// NeedsUpdate is set and keeps its GPU handle in GL.
type Texture struct {
	// ID is the unique numeric id assigned at creation.
	ID uint64

	// UUID is the stable string identifier assigned at creation.
	UUID string

	// Name is an optional human-readable label.
	Name string

	// Image is the 2D pixel source. Nil for cube textures.
	Image *Image

	// CubeImages holds the six cube faces in order +X, -X, +Y, -Y, +Z, -Z.
	// All six are set for cube textures; all nil otherwise.
	CubeImages [6]*Image

	// Mipmaps holds pre-built mip levels for compressed formats, level 0
	// first.
	Mipmaps []Image

	WrapS, WrapT Wrapping

	MagFilter, MinFilter Filter

	Format Format

	Type DataType

	// Anisotropy is the requested anisotropic filtering level; clamped to
	// the driver maximum at upload.
	Anisotropy int

	// Offset and Repeat transform UV coordinates in the shader.
	Offset, Repeat math3.Vector2

	// GenerateMipmaps requests mipmap generation after upload for
	// power-of-two images.
	GenerateMipmaps bool

	// FlipY flips the image vertically during upload.
	FlipY bool

	// PremultiplyAlpha premultiplies during upload.
	PremultiplyAlpha bool

	// NeedsUpdate requests a (re-)upload on next use.
	NeedsUpdate bool

	// GL holds the renderer-private texture handle.
	GL any
}

// NewTexture creates a 2D texture over a decoded image with the usual
// defaults: clamped wrap, linear filtering with trilinear mipmaps, RGBA.
func NewTexture(img *Image) *Texture {
	return &Texture{
		ID:              textureCount.Add(1),
		UUID:            uuid.NewString(),
		Image:           img,
		WrapS:           WrapClampToEdge,
		WrapT:           WrapClampToEdge,
		MagFilter:       FilterLinear,
		MinFilter:       FilterLinearMipMapLinear,
		Format:          FormatRGBA,
		Type:            TypeUnsignedByte,
		Anisotropy:      1,
		Repeat:          math3.V2(1, 1),
		GenerateMipmaps: true,
		FlipY:           true,
		NeedsUpdate:     true,
	}
}

// NewCubeTexture creates a cube texture from six face images in the order
// +X, -X, +Y, -Y, +Z, -Z. A cube with any missing face is rejected.
//
// Returns:
//   - *Texture: the cube texture descriptor
//   - error: when any face is missing or empty
func NewCubeTexture(faces [6]*Image) (*Texture, error) {
	for i, f := range faces {
		if f.Empty() {
			return nil, fmt.Errorf("cube texture face %d is missing or empty", i)
		}
	}
	t := NewTexture(nil)
	t.CubeImages = faces
	return t, nil
}

// IsCube reports whether the texture is a cube map.
func (t *Texture) IsCube() bool {
	return t.CubeImages[0] != nil
}

// Ready reports whether the texture has decodable pixel data for every
// required face.
func (t *Texture) Ready() bool {
	if t.IsCube() {
		for _, f := range t.CubeImages {
			if f.Empty() {
				return false
			}
		}
		return true
	}
	return !t.Image.Empty()
}
