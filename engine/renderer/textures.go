package renderer

import (
	"log"

	"github.com/Carmen-Shannon/trigl/engine/renderer/glctx"
	"github.com/Carmen-Shannon/trigl/engine/texture"
)

// texBinding is the renderer-private GPU state of a Texture.
type texBinding struct {
	gl glctx.Texture
}

func wrappingEnum(w texture.Wrapping) glctx.Enum {
	switch w {
	case texture.WrapRepeat:
		return glctx.REPEAT
	case texture.WrapMirroredRepeat:
		return glctx.MIRRORED_REPEAT
	}
	return glctx.CLAMP_TO_EDGE
}

func filterEnum(f texture.Filter) glctx.Enum {
	switch f {
	case texture.FilterNearest:
		return glctx.NEAREST
	case texture.FilterNearestMipMapNearest:
		return glctx.NEAREST_MIPMAP_NEAREST
	case texture.FilterNearestMipMapLinear:
		return glctx.NEAREST_MIPMAP_LINEAR
	case texture.FilterLinearMipMapNearest:
		return glctx.LINEAR_MIPMAP_NEAREST
	case texture.FilterLinearMipMapLinear:
		return glctx.LINEAR_MIPMAP_LINEAR
	}
	return glctx.LINEAR
}

// filterFallback collapses mipmapped filters to their non-mipmapped
// equivalent for render targets and NPOT textures.
func filterFallback(f texture.Filter) glctx.Enum {
	if f == texture.FilterNearest || f == texture.FilterNearestMipMapNearest || f == texture.FilterNearestMipMapLinear {
		return glctx.NEAREST
	}
	return glctx.LINEAR
}

func formatEnum(f texture.Format) glctx.Enum {
	switch f {
	case texture.FormatRGB:
		return glctx.RGB
	case texture.FormatAlpha:
		return glctx.ALPHA
	case texture.FormatLuminance:
		return glctx.LUMINANCE
	case texture.FormatLuminanceAlpha:
		return glctx.LUMINANCE_ALPHA
	case texture.FormatRGBAS3TCDXT1:
		return glctx.COMPRESSED_RGBA_S3TC_DXT1
	case texture.FormatRGBAS3TCDXT3:
		return glctx.COMPRESSED_RGBA_S3TC_DXT3
	case texture.FormatRGBAS3TCDXT5:
		return glctx.COMPRESSED_RGBA_S3TC_DXT5
	}
	return glctx.RGBA
}

func typeEnum(t texture.DataType) glctx.Enum {
	if t == texture.TypeFloat {
		return glctx.FLOAT
	}
	return glctx.UNSIGNED_BYTE
}

func isPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}

// flipImageY returns the image rows in bottom-up order, matching the GL
// texture origin. ES2 has no unpack flip, so the flip happens on the CPU.
func flipImageY(img *texture.Image, bytesPerPixel int) []byte {
	stride := img.Width * bytesPerPixel
	if stride <= 0 || len(img.Pixels) < stride*img.Height {
		return img.Pixels
	}
	out := make([]byte, stride*img.Height)
	for row := 0; row < img.Height; row++ {
		copy(out[row*stride:(row+1)*stride], img.Pixels[(img.Height-1-row)*stride:])
	}
	return out
}

func bytesPerPixel(f texture.Format, t texture.DataType) int {
	channels := 4
	switch f {
	case texture.FormatRGB:
		channels = 3
	case texture.FormatAlpha, texture.FormatLuminance:
		channels = 1
	case texture.FormatLuminanceAlpha:
		channels = 2
	}
	if t == texture.TypeFloat {
		return channels * 4
	}
	return channels
}

// setTexture binds tex to the given texture unit, uploading or refreshing
// the GPU object first when NeedsUpdate is set. Textures with no usable
// pixel data bind the fallback white texture (logged once).
func (r *rendererImpl) setTexture(tex *texture.Texture, unit int) {
	gl := r.gl

	target := glctx.TEXTURE_2D
	if tex.IsCube() {
		target = glctx.TEXTURE_CUBE_MAP
	}

	if !tex.Ready() {
		if !r.loggedTextureNotReady {
			log.Printf("[renderer] texture %d has no pixel data, binding fallback", tex.ID)
			r.loggedTextureNotReady = true
		}
		gl.ActiveTexture(glctx.TEXTURE0 + glctx.Enum(unit))
		gl.BindTexture(glctx.TEXTURE_2D, r.fallbackTexture())
		return
	}

	tb, _ := tex.GL.(*texBinding)
	if tb == nil {
		tb = &texBinding{gl: gl.CreateTexture()}
		tex.GL = tb
		tex.NeedsUpdate = true
		r.info.Memory.Textures++
	}

	gl.ActiveTexture(glctx.TEXTURE0 + glctx.Enum(unit))
	gl.BindTexture(target, tb.gl)

	if tex.NeedsUpdate {
		r.uploadTexture(tex, target, tb)
		tex.NeedsUpdate = false
	}
}

func (r *rendererImpl) uploadTexture(tex *texture.Texture, target glctx.Enum, tb *texBinding) {
	gl := r.gl
	format := formatEnum(tex.Format)
	ty := typeEnum(tex.Type)
	bpp := bytesPerPixel(tex.Format, tex.Type)

	gl.PixelStorei(glctx.UNPACK_ALIGNMENT, 1)

	var width, height int
	if tex.IsCube() {
		width, height = tex.CubeImages[0].Width, tex.CubeImages[0].Height
	} else {
		width, height = tex.Image.Width, tex.Image.Height
	}
	powerOfTwo := isPowerOfTwo(width) && isPowerOfTwo(height)

	wrapS, wrapT := wrappingEnum(tex.WrapS), wrappingEnum(tex.WrapT)
	magFilter, minFilter := filterEnum(tex.MagFilter), filterEnum(tex.MinFilter)
	if !powerOfTwo {
		// NPOT textures must clamp and cannot mipmap under ES2.
		wrapS, wrapT = glctx.CLAMP_TO_EDGE, glctx.CLAMP_TO_EDGE
		magFilter, minFilter = filterFallback(tex.MagFilter), filterFallback(tex.MinFilter)
	}

	gl.TexParameteri(target, glctx.TEXTURE_WRAP_S, int(wrapS))
	gl.TexParameteri(target, glctx.TEXTURE_WRAP_T, int(wrapT))
	gl.TexParameteri(target, glctx.TEXTURE_MAG_FILTER, int(magFilter))
	gl.TexParameteri(target, glctx.TEXTURE_MIN_FILTER, int(minFilter))

	if r.caps.anisotropy && tex.Anisotropy > 1 {
		a := tex.Anisotropy
		if a > r.caps.maxAnisotropy {
			a = r.caps.maxAnisotropy
		}
		gl.TexParameterf(target, glctx.TEXTURE_MAX_ANISOTROPY_EXT, float32(a))
	}

	upload := func(faceTarget glctx.Enum, img *texture.Image) {
		pixels := img.Pixels
		if tex.FlipY && !tex.Format.Compressed() {
			pixels = flipImageY(img, bpp)
		}
		if tex.Format.Compressed() {
			if !r.caps.s3tc {
				log.Printf("[renderer] texture %d uses S3TC but the driver lacks the extension", tex.ID)
				return
			}
			gl.CompressedTexImage2D(faceTarget, 0, format, img.Width, img.Height, pixels)
		} else {
			gl.TexImage2D(faceTarget, 0, format, img.Width, img.Height, format, ty, pixels)
		}
	}

	if tex.IsCube() {
		for face, img := range tex.CubeImages {
			upload(glctx.TEXTURE_CUBE_MAP_POSITIVE_X+glctx.Enum(face), img)
		}
	} else if len(tex.Mipmaps) > 0 && tex.Format.Compressed() {
		for level, mip := range tex.Mipmaps {
			gl.CompressedTexImage2D(glctx.TEXTURE_2D, level, format, mip.Width, mip.Height, mip.Pixels)
		}
	} else {
		upload(glctx.TEXTURE_2D, tex.Image)
	}

	if tex.GenerateMipmaps && powerOfTwo && !tex.Format.Compressed() {
		gl.GenerateMipmap(target)
	}
}

// fallbackTexture lazily creates the 1x1 white texture bound in place of
// textures with no pixel data.
func (r *rendererImpl) fallbackTexture() glctx.Texture {
	if r.whiteTexture.Valid() {
		return r.whiteTexture
	}
	gl := r.gl
	r.whiteTexture = gl.CreateTexture()
	gl.BindTexture(glctx.TEXTURE_2D, r.whiteTexture)
	gl.TexParameteri(glctx.TEXTURE_2D, glctx.TEXTURE_WRAP_S, int(glctx.CLAMP_TO_EDGE))
	gl.TexParameteri(glctx.TEXTURE_2D, glctx.TEXTURE_WRAP_T, int(glctx.CLAMP_TO_EDGE))
	gl.TexParameteri(glctx.TEXTURE_2D, glctx.TEXTURE_MAG_FILTER, int(glctx.NEAREST))
	gl.TexParameteri(glctx.TEXTURE_2D, glctx.TEXTURE_MIN_FILTER, int(glctx.NEAREST))
	gl.TexImage2D(glctx.TEXTURE_2D, 0, glctx.RGBA, 1, 1, glctx.RGBA, glctx.UNSIGNED_BYTE, []byte{255, 255, 255, 255})
	return r.whiteTexture
}

// releaseTexture deletes the GPU object backing tex.
func (r *rendererImpl) releaseTexture(tex *texture.Texture) {
	if tb, ok := tex.GL.(*texBinding); ok {
		r.gl.DeleteTexture(tb.gl)
		tex.GL = nil
		r.info.Memory.Textures--
	}
}
