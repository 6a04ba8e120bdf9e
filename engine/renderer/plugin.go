package renderer

import (
	"github.com/Carmen-Shannon/trigl/engine/renderer/glctx"
	"github.com/Carmen-Shannon/trigl/engine/scene"
)

// Plugin is a render pass hook. Pre-plugins run after object
// initialization and before the render target is cleared; post-plugins run
// after the transparent pass. The plugin set is open (sprite batching,
// lens flares, post effects); the core ships none.
type Plugin interface {
	// Init is called once when the plugin is registered.
	//
	// Parameters:
	//   - r: the owning renderer
	//   - gl: the GPU context, valid for the renderer's lifetime
	Init(r Renderer, gl glctx.Context)

	// Render is called every frame at the plugin's position in the frame
	// sequence.
	//
	// Parameters:
	//   - s: the scene being rendered
	//   - camera: the active camera
	//   - viewportWidth, viewportHeight: current viewport in pixels
	Render(s *scene.Scene, camera scene.CameraNode, viewportWidth, viewportHeight int)
}

// Info carries the per-frame draw counters and lifetime memory counters.
// Render counters reset at the start of every frame.
type Info struct {
	Render struct {
		Calls     int
		Triangles int
		Points    int
		Vertices  int
	}
	Memory struct {
		Programs   int
		Geometries int
		Textures   int
	}
}
