package renderer

import (
	"github.com/Carmen-Shannon/trigl/engine/renderer/glctx"
	"github.com/Carmen-Shannon/trigl/engine/texture"
)

// targetBinding is the renderer-private GPU state of a RenderTarget: the
// color texture, one framebuffer per face (six for cube targets), and the
// optional depth/stencil renderbuffer.
type targetBinding struct {
	colorTexture glctx.Texture
	framebuffers []glctx.Framebuffer
	renderbuffer glctx.Renderbuffer
}

// setRenderTarget binds target's framebuffer, creating the GPU objects on
// first use. A nil target binds the default framebuffer sized to the
// renderer viewport.
func (r *rendererImpl) setRenderTarget(target *texture.RenderTarget) {
	gl := r.gl

	if target == nil {
		if r.currentTarget != nil {
			gl.BindFramebuffer(glctx.FRAMEBUFFER, glctx.Framebuffer{})
			gl.Viewport(r.viewportX, r.viewportY, r.viewportWidth, r.viewportHeight)
			r.currentTarget = nil
		}
		return
	}

	tb, _ := target.GL.(*targetBinding)
	if tb == nil {
		tb = r.initRenderTarget(target)
	}

	face := 0
	if target.Cube {
		face = target.ActiveCubeFace
	}
	gl.BindFramebuffer(glctx.FRAMEBUFFER, tb.framebuffers[face])
	gl.Viewport(0, 0, target.Width, target.Height)
	r.currentTarget = target
}

func (r *rendererImpl) initRenderTarget(target *texture.RenderTarget) *targetBinding {
	gl := r.gl
	tb := &targetBinding{}

	texTarget := glctx.TEXTURE_2D
	faces := 1
	if target.Cube {
		texTarget = glctx.TEXTURE_CUBE_MAP
		faces = 6
	}

	format := formatEnum(target.Format)
	ty := typeEnum(target.Type)

	tb.colorTexture = gl.CreateTexture()
	gl.BindTexture(texTarget, tb.colorTexture)
	gl.TexParameteri(texTarget, glctx.TEXTURE_WRAP_S, int(wrappingEnum(target.WrapS)))
	gl.TexParameteri(texTarget, glctx.TEXTURE_WRAP_T, int(wrappingEnum(target.WrapT)))
	gl.TexParameteri(texTarget, glctx.TEXTURE_MAG_FILTER, int(filterFallback(target.MagFilter)))
	gl.TexParameteri(texTarget, glctx.TEXTURE_MIN_FILTER, int(filterEnum(target.MinFilter)))

	for face := 0; face < faces; face++ {
		imageTarget := texTarget
		if target.Cube {
			imageTarget = glctx.TEXTURE_CUBE_MAP_POSITIVE_X + glctx.Enum(face)
		}
		gl.TexImage2D(imageTarget, 0, format, target.Width, target.Height, format, ty, nil)
	}

	if target.DepthBuffer {
		tb.renderbuffer = gl.CreateRenderbuffer()
		gl.BindRenderbuffer(glctx.RENDERBUFFER, tb.renderbuffer)
		if target.StencilBuffer {
			gl.RenderbufferStorage(glctx.RENDERBUFFER, glctx.DEPTH_STENCIL, target.Width, target.Height)
		} else {
			gl.RenderbufferStorage(glctx.RENDERBUFFER, glctx.DEPTH_COMPONENT16, target.Width, target.Height)
		}
	}

	for face := 0; face < faces; face++ {
		fb := gl.CreateFramebuffer()
		gl.BindFramebuffer(glctx.FRAMEBUFFER, fb)
		attachTarget := texTarget
		if target.Cube {
			attachTarget = glctx.TEXTURE_CUBE_MAP_POSITIVE_X + glctx.Enum(face)
		}
		gl.FramebufferTexture2D(glctx.FRAMEBUFFER, glctx.COLOR_ATTACHMENT0, attachTarget, tb.colorTexture, 0)
		if target.DepthBuffer {
			if target.StencilBuffer {
				gl.FramebufferRenderbuffer(glctx.FRAMEBUFFER, glctx.DEPTH_STENCIL_ATTACHMENT, glctx.RENDERBUFFER, tb.renderbuffer)
			} else {
				gl.FramebufferRenderbuffer(glctx.FRAMEBUFFER, glctx.DEPTH_ATTACHMENT, glctx.RENDERBUFFER, tb.renderbuffer)
			}
		}
		tb.framebuffers = append(tb.framebuffers, fb)
	}

	gl.BindTexture(texTarget, glctx.Texture{})
	gl.BindRenderbuffer(glctx.RENDERBUFFER, glctx.Renderbuffer{})
	gl.BindFramebuffer(glctx.FRAMEBUFFER, glctx.Framebuffer{})

	target.GL = tb
	return tb
}

// updateRenderTargetMipmap regenerates the color attachment's mipmap chain
// after rendering, when the target asks for one.
func (r *rendererImpl) updateRenderTargetMipmap(target *texture.RenderTarget) {
	tb, _ := target.GL.(*targetBinding)
	if tb == nil {
		return
	}
	texTarget := glctx.TEXTURE_2D
	if target.Cube {
		texTarget = glctx.TEXTURE_CUBE_MAP
	}
	r.gl.BindTexture(texTarget, tb.colorTexture)
	r.gl.GenerateMipmap(texTarget)
	r.gl.BindTexture(texTarget, glctx.Texture{})
}

// targetNeedsMipmaps reports whether the target's min filter reads mip
// levels.
func targetNeedsMipmaps(target *texture.RenderTarget) bool {
	return target.GenerateMipmaps &&
		target.MinFilter != texture.FilterNearest &&
		target.MinFilter != texture.FilterLinear
}

// releaseRenderTarget deletes the GPU objects backing target.
func (r *rendererImpl) releaseRenderTarget(target *texture.RenderTarget) {
	tb, _ := target.GL.(*targetBinding)
	if tb == nil {
		return
	}
	gl := r.gl
	gl.DeleteTexture(tb.colorTexture)
	for _, fb := range tb.framebuffers {
		gl.DeleteFramebuffer(fb)
	}
	if tb.renderbuffer.Valid() {
		gl.DeleteRenderbuffer(tb.renderbuffer)
	}
	target.GL = nil
}
