// package config holds the renderer and window host configuration,
// loadable from a TOML file and applied through the builder options.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Precision levels for shader float computation. The renderer downgrades
// automatically when the driver's float range is insufficient.
const (
	PrecisionLow    = "lowp"
	PrecisionMedium = "mediump"
	PrecisionHigh   = "highp"
)

// Config is the full renderer/window parameter set.
type Config struct {
	// Width and Height size the drawing buffer in pixels.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Precision selects the shader float precision: "lowp", "mediump", or
	// "highp".
	Precision string `toml:"precision"`

	// Alpha requests an alpha channel in the drawing buffer.
	Alpha bool `toml:"alpha"`

	// PremultipliedAlpha marks the drawing buffer as premultiplied for
	// compositing.
	PremultipliedAlpha bool `toml:"premultiplied_alpha"`

	// Antialias requests a multisampled drawing buffer.
	Antialias bool `toml:"antialias"`

	// Stencil requests a stencil channel.
	Stencil bool `toml:"stencil"`

	// PreserveDrawingBuffer keeps the buffer contents across presents.
	PreserveDrawingBuffer bool `toml:"preserve_drawing_buffer"`

	// Vsync synchronizes presents to the display refresh.
	Vsync bool `toml:"vsync"`

	// ClearColor is the packed 0xRRGGBB clear color; ClearAlpha its alpha.
	ClearColor uint32  `toml:"clear_color"`
	ClearAlpha float32 `toml:"clear_alpha"`

	// MaxLights caps each light kind in the aggregated shader arrays.
	MaxLights int `toml:"max_lights"`

	// GammaInput/GammaOutput move shading into linear space.
	GammaInput  bool `toml:"gamma_input"`
	GammaOutput bool `toml:"gamma_output"`

	// MaxMorphTargets and MaxMorphNormals cap the shader influence slots.
	MaxMorphTargets int `toml:"max_morph_targets"`
	MaxMorphNormals int `toml:"max_morph_normals"`

	// MaxBones caps the skinning matrix array.
	MaxBones int `toml:"max_bones"`
}

// Default returns the configuration every field falls back to.
func Default() *Config {
	return &Config{
		Width:           800,
		Height:          600,
		Precision:       PrecisionHigh,
		Alpha:           true,
		Antialias:       false,
		Stencil:         true,
		Vsync:           true,
		ClearColor:      0x000000,
		ClearAlpha:      0,
		MaxLights:       4,
		MaxMorphTargets: 8,
		MaxMorphNormals: 4,
		MaxBones:        50,
	}
}

// Load reads a TOML configuration file over the defaults.
//
// Parameters:
//   - path: the TOML file to read
//
// Returns:
//   - *Config: defaults overlaid with the file's values
//   - error: when the file is unreadable or malformed
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Precision {
	case PrecisionLow, PrecisionMedium, PrecisionHigh:
	default:
		return fmt.Errorf("invalid precision %q, want lowp, mediump, or highp", c.Precision)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", c.Width, c.Height)
	}
	if c.MaxLights < 0 {
		return fmt.Errorf("invalid max_lights %d", c.MaxLights)
	}
	return nil
}
