package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, PrecisionHigh, cfg.Precision)
	assert.Equal(t, 4, cfg.MaxLights)
	assert.Equal(t, 8, cfg.MaxMorphTargets)
	assert.NoError(t, cfg.validate())
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "renderer.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
width = 1920
height = 1080
precision = "mediump"
vsync = false
clear_color = 0x203040
max_lights = 8
gamma_input = true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1920, cfg.Width)
	assert.Equal(t, 1080, cfg.Height)
	assert.Equal(t, PrecisionMedium, cfg.Precision)
	assert.False(t, cfg.Vsync)
	assert.Equal(t, uint32(0x203040), cfg.ClearColor)
	assert.Equal(t, 8, cfg.MaxLights)
	assert.True(t, cfg.GammaInput)

	// Untouched fields keep their defaults.
	assert.Equal(t, 8, cfg.MaxMorphTargets)
	assert.True(t, cfg.Stencil)
}

func TestLoadRejectsBadPrecision(t *testing.T) {
	path := filepath.Join(t.TempDir(), "renderer.toml")
	require.NoError(t, os.WriteFile(path, []byte(`precision = "ultra"`), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
