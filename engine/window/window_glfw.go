package window

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"runtime"

	"github.com/Carmen-Shannon/trigl/engine/texture"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// glfwWindow holds the GLFW-specific window state.
type glfwWindow struct {
	parent  *engineWindow
	window  *glfw.Window
	running bool
}

// buttonMask maps a GLFW mouse button to the engine bitmask.
func buttonMask(button glfw.MouseButton) uint32 {
	switch button {
	case glfw.MouseButtonLeft:
		return 0x1
	case glfw.MouseButtonRight:
		return 0x2
	case glfw.MouseButtonMiddle:
		return 0x4
	}
	return 0
}

// newPlatformWindow creates the GLFW window with an OpenGL context and
// input callbacks, and stores it as the internal window. The context is
// made current on the calling thread, which is locked for its lifetime.
//
// GLFW reference: https://www.glfw.org/docs/latest/window_guide.html
// go-gl/glfw: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw
func newPlatformWindow(w *engineWindow) error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %v", err)
	}

	// An ES2-class context: a 2.1-compatible desktop context carries the
	// full ES2 operation set the renderer issues.
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	if w.antialias {
		glfw.WindowHint(glfw.Samples, 4)
	}
	if w.stencil {
		glfw.WindowHint(glfw.StencilBits, 8)
	}

	win, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("failed to create GLFW window: %v", err)
	}

	win.MakeContextCurrent()
	if w.vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	gw := &glfwWindow{
		parent:  w,
		window:  win,
		running: true,
	}
	w.internalWindow = gw

	// Register GLFW callbacks for input and window events.
	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetKeyCallback
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			gw.running = false
			win.SetShouldClose(true)
			return
		}
		w.modifiers = uint32(mods)
		ev := KeyEvent{KeyCode: uint32(key), Modifiers: uint32(mods)}
		switch action {
		case glfw.Press:
			if w.onKeyDown != nil {
				w.onKeyDown(ev)
			}
		case glfw.Repeat:
			if w.onKeyPress != nil {
				w.onKeyPress(ev)
			}
		case glfw.Release:
			if w.onKeyUp != nil {
				w.onKeyUp(ev)
			}
		}
	})

	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetScrollCallback
	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		if w.onScroll != nil {
			x, y := win.GetCursorPos()
			w.onScroll(MouseEvent{
				X:          int32(x),
				Y:          int32(y),
				Buttons:    w.buttons,
				Modifiers:  w.modifiers,
				WheelDelta: float32(yoff),
			})
		}
	})

	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetMouseButtonCallback
	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		mask := buttonMask(button)
		if mask == 0 {
			return
		}
		w.modifiers = uint32(mods)
		x, y := win.GetCursorPos()
		switch action {
		case glfw.Press:
			w.buttons |= mask
			if w.onMouseDown != nil {
				w.onMouseDown(MouseEvent{
					X:             int32(x),
					Y:             int32(y),
					Buttons:       w.buttons,
					Modifiers:     uint32(mods),
					ChangedButton: mask,
				})
			}
		case glfw.Release:
			w.buttons &^= mask
			if w.onMouseUp != nil {
				w.onMouseUp(MouseEvent{
					X:             int32(x),
					Y:             int32(y),
					Buttons:       w.buttons,
					Modifiers:     uint32(mods),
					ChangedButton: mask,
				})
			}
		}
	})

	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetCursorPosCallback
	win.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		x, y := int32(xpos), int32(ypos)
		var dx, dy int32
		if w.haveLastMouse {
			dx, dy = x-w.lastMouseX, y-w.lastMouseY
		}
		w.lastMouseX, w.lastMouseY = x, y
		w.haveLastMouse = true
		if w.onMouseMove != nil {
			w.onMouseMove(MouseEvent{
				X:         x,
				Y:         y,
				DeltaX:    dx,
				DeltaY:    dy,
				Buttons:   w.buttons,
				Modifiers: w.modifiers,
			})
		}
	})

	// Use framebuffer size callback for pixel-accurate resize events.
	// On high-DPI displays (e.g., macOS Retina), framebuffer size differs from window size.
	// The renderer requires pixel dimensions for correct viewport configuration.
	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetFramebufferSizeCallback
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.width = width
		w.height = height
		if w.onResize != nil {
			w.onResize(width, height)
		}
	})

	// Update stored dimensions to reflect actual framebuffer size (may differ from requested on high-DPI).
	fbWidth, fbHeight := win.GetFramebufferSize()
	w.width = fbWidth
	w.height = fbHeight

	return nil
}

// platformSwapBuffers presents the back buffer.
func platformSwapBuffers(w *engineWindow) {
	if w.internalWindow == nil {
		return
	}
	gw := w.internalWindow.(*glfwWindow)
	gw.window.SwapBuffers()
}

// platformIsRunningCheck returns whether the GLFW window is still active.
// Returns false if the internal window is nil, the running flag is cleared, or GLFW reports ShouldClose.
//
// Parameters:
//   - w: the engineWindow to check
//
// Returns:
//   - bool: true if the window is still running
func platformIsRunningCheck(w *engineWindow) bool {
	if w.internalWindow == nil {
		return false
	}
	gw := w.internalWindow.(*glfwWindow)
	return gw.running && !gw.window.ShouldClose()
}

// platformCloseWindow destroys the GLFW window and terminates the GLFW library.
// Returns an error if the internal window has not been initialized.
//
// Parameters:
//   - w: the engineWindow to close
//
// Returns:
//   - error: error if the window is not initialized
func platformCloseWindow(w *engineWindow) error {
	if w.internalWindow == nil {
		return fmt.Errorf("window is not initialized")
	}
	gw := w.internalWindow.(*glfwWindow)
	gw.running = false
	gw.window.SetShouldClose(true)
	gw.window.Destroy()
	glfw.Terminate()
	return nil
}

// platformProcessMessages polls GLFW for pending events without blocking.
//
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#PollEvents
func platformProcessMessages(w *engineWindow) bool {
	glfw.PollEvents()
	return platformIsRunningCheck(w)
}

// platformLoadImage decodes a PNG or JPEG file into tightly packed RGBA
// pixels.
func platformLoadImage(path string) (*texture.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image %q: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %q: %w", path, err)
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	return &texture.Image{
		Pixels: rgba.Pix,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}
