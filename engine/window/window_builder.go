package window

import "github.com/Carmen-Shannon/trigl/engine/config"

// WindowBuilderOption is a functional option for configuring an engineWindow.
// Use the With* functions to create options.
type WindowBuilderOption func(w *engineWindow)

// WithTitle sets the window title displayed in the title bar.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTitle(title string) WindowBuilderOption {
	return func(w *engineWindow) {
		w.title = title
	}
}

// WithSize sets the initial window size.
//
// Parameters:
//   - width, height: initial size in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithSize(width, height int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.width = width
		w.height = height
	}
}

// WithVsync toggles present synchronization to the display refresh.
//
// Parameters:
//   - vsync: true to synchronize
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithVsync(vsync bool) WindowBuilderOption {
	return func(w *engineWindow) {
		w.vsync = vsync
	}
}

// WithAntialias requests a multisampled framebuffer.
//
// Parameters:
//   - antialias: true to multisample
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithAntialias(antialias bool) WindowBuilderOption {
	return func(w *engineWindow) {
		w.antialias = antialias
	}
}

// WithStencil requests a stencil channel in the framebuffer.
//
// Parameters:
//   - stencil: true to allocate stencil bits
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithStencil(stencil bool) WindowBuilderOption {
	return func(w *engineWindow) {
		w.stencil = stencil
	}
}

// WithWindowConfig applies a loaded configuration's window fields.
//
// Parameters:
//   - cfg: the configuration to apply
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithWindowConfig(cfg *config.Config) WindowBuilderOption {
	return func(w *engineWindow) {
		w.width = cfg.Width
		w.height = cfg.Height
		w.vsync = cfg.Vsync
		w.antialias = cfg.Antialias
		w.stencil = cfg.Stencil
	}
}
