package texture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func whitePixel() *Image {
	return &Image{Pixels: []byte{255, 255, 255, 255}, Width: 1, Height: 1}
}

func TestNewTextureDefaults(t *testing.T) {
	tex := NewTexture(whitePixel())
	assert.True(t, tex.NeedsUpdate)
	assert.True(t, tex.GenerateMipmaps)
	assert.True(t, tex.FlipY)
	assert.Equal(t, FormatRGBA, tex.Format)
	assert.False(t, tex.IsCube())
	assert.True(t, tex.Ready())
	assert.NotZero(t, tex.ID)
}

func TestTextureNotReady(t *testing.T) {
	assert.False(t, NewTexture(nil).Ready())
	assert.False(t, NewTexture(&Image{Width: 4, Height: 4}).Ready())
}

func TestNewCubeTextureRequiresAllFaces(t *testing.T) {
	var faces [6]*Image
	for i := range faces {
		faces[i] = whitePixel()
	}

	cube, err := NewCubeTexture(faces)
	require.NoError(t, err)
	assert.True(t, cube.IsCube())
	assert.True(t, cube.Ready())

	faces[3] = nil
	_, err = NewCubeTexture(faces)
	assert.Error(t, err)

	faces[3] = &Image{Width: 1, Height: 1}
	_, err = NewCubeTexture(faces)
	assert.Error(t, err, "an empty face is as bad as a missing one")
}

func TestFormatCompressed(t *testing.T) {
	assert.True(t, FormatRGBAS3TCDXT5.Compressed())
	assert.False(t, FormatRGBA.Compressed())
}

func TestNewRenderTargetDefaults(t *testing.T) {
	rt := NewRenderTarget(512, 256)
	assert.Equal(t, 512, rt.Width)
	assert.Equal(t, 256, rt.Height)
	assert.True(t, rt.DepthBuffer)
	assert.False(t, rt.Cube)
	assert.NotZero(t, rt.ID)
}
