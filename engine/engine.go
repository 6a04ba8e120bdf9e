// package engine is the top-level host: it wires the window, the GPU
// context, and the renderer together and drives the frame loop.
//
// The whole engine is single-threaded cooperative: the window's message
// loop, the tick callback, and the renderer all run on the one OS thread
// that owns the GL context.
package engine

import (
	"fmt"
	"time"

	"github.com/Carmen-Shannon/trigl/engine/profiler"
	"github.com/Carmen-Shannon/trigl/engine/renderer"
	"github.com/Carmen-Shannon/trigl/engine/renderer/glctx"
	"github.com/Carmen-Shannon/trigl/engine/scene"
	"github.com/Carmen-Shannon/trigl/engine/texture"
	"github.com/Carmen-Shannon/trigl/engine/window"
)

// engineImpl implements the Engine interface: one window, one renderer,
// one active scene and camera, driven by a cooperative frame loop.
type engineImpl struct {
	window   window.Window
	renderer renderer.Renderer

	scene  *scene.Scene
	camera scene.CameraNode
	target *texture.RenderTarget

	profiler         *profiler.Profiler
	profilingEnabled bool

	tickCallback func(deltaTime float32)

	lastFrame time.Time
}

// Engine is the main entry point: it owns the window and renderer and
// drives the frame loop on the GL thread.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Renderer returns the underlying renderer.
	//
	// Returns:
	//   - renderer.Renderer: the renderer instance
	Renderer() renderer.Renderer

	// SetScene sets the scene rendered each frame.
	//
	// Parameters:
	//   - s: the scene to render
	SetScene(s *scene.Scene)

	// SetCamera sets the camera the scene is rendered from.
	//
	// Parameters:
	//   - camera: the active camera
	SetCamera(camera scene.CameraNode)

	// SetRenderTarget routes frames into an off-screen target instead of
	// the window framebuffer.
	//
	// Parameters:
	//   - target: the render target, or nil for the framebuffer
	SetRenderTarget(target *texture.RenderTarget)

	// SetTickCallback registers the function called before each frame is
	// rendered. Use it for input handling and scene mutation; it runs on
	// the GL thread.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// Run drives the frame loop until the window closes: tick callback,
	// render, present. Blocks the calling thread.
	Run()

	// Close shuts the window down and releases platform resources.
	//
	// Returns:
	//   - error: error if close fails
	Close() error
}

var _ Engine = (*engineImpl)(nil)

// NewEngine creates a window with a current GL context, initializes the
// GPU bindings, and builds the renderer over them.
//
// Parameters:
//   - windowOptions: options forwarded to the window builder
//   - rendererOptions: options forwarded to the renderer builder
//
// Returns:
//   - Engine: the assembled engine
//   - error: when the window or GL bindings fail to initialize
func NewEngine(windowOptions []window.WindowBuilderOption, rendererOptions []renderer.RendererBuilderOption) (Engine, error) {
	win, err := window.NewWindow(windowOptions...)
	if err != nil {
		return nil, err
	}

	backend, err := glctx.NewBackend()
	if err != nil {
		win.Close()
		return nil, fmt.Errorf("failed to initialize GPU backend: %w", err)
	}

	opts := append([]renderer.RendererBuilderOption{
		renderer.WithSize(win.Width(), win.Height()),
	}, rendererOptions...)
	r := renderer.NewRenderer(backend, opts...)

	e := &engineImpl{
		window:    win,
		renderer:  r,
		profiler:  profiler.NewProfiler(),
		lastFrame: time.Now(),
	}

	win.SetResizeCallback(func(width, height int) {
		r.SetSize(width, height)
	})

	return e, nil
}

func (e *engineImpl) Window() window.Window                       { return e.window }
func (e *engineImpl) Renderer() renderer.Renderer                 { return e.renderer }
func (e *engineImpl) SetScene(s *scene.Scene)                     { e.scene = s }
func (e *engineImpl) SetCamera(camera scene.CameraNode)           { e.camera = camera }
func (e *engineImpl) SetRenderTarget(t *texture.RenderTarget)     { e.target = t }
func (e *engineImpl) SetTickCallback(cb func(deltaTime float32))  { e.tickCallback = cb }
func (e *engineImpl) EnableProfiler()                             { e.profilingEnabled = true }
func (e *engineImpl) DisableProfiler()                            { e.profilingEnabled = false }

func (e *engineImpl) Run() {
	e.window.SetUpdateCallback(func() {
		now := time.Now()
		deltaTime := float32(now.Sub(e.lastFrame).Seconds())
		e.lastFrame = now

		if e.tickCallback != nil {
			e.tickCallback(deltaTime)
		}
		if e.scene != nil && e.camera != nil {
			e.renderer.Render(e.scene, e.camera, e.target, false)
		}
		if e.profilingEnabled {
			info := e.renderer.Info()
			e.profiler.SetRenderStats(info.Render.Calls, info.Render.Triangles, info.Memory.Programs)
			e.profiler.Tick()
		}
	})
	e.window.ProcessMessages()
}

func (e *engineImpl) Close() error {
	return e.window.Close()
}
