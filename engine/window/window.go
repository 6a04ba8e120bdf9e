// package window is the platform host: it owns the GL context and its
// window, pumps input events, presents frames, and decodes image files
// into the pixel buffers the texture descriptors consume.
package window

import (
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/trigl/engine/texture"
)

// MouseEvent carries one mouse action: screen coordinates, movement deltas
// since the previous event, the pressed-button bitmask (common.Button*),
// and the modifier bitmask (common.Mod*). Wheel events set WheelDelta;
// button events set ChangedButton.
type MouseEvent struct {
	X, Y           int32
	DeltaX, DeltaY int32
	Buttons        uint32
	Modifiers      uint32
	WheelDelta     float32
	ChangedButton  uint32
}

// KeyEvent carries one keyboard action: the key code (common.Key*) and the
// modifier bitmask.
type KeyEvent struct {
	KeyCode   uint32
	Modifiers uint32
}

// Window provides platform windowing, the GL context, and input event
// handling. Wraps platform-specific window implementations with a common
// interface.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the framebuffer is
	// resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetMouseMoveCallback sets the callback for mouse movement.
	//
	// Parameters:
	//   - callback: function receiving the event with position and deltas
	SetMouseMoveCallback(callback func(ev MouseEvent))

	// SetMouseDownCallback sets the callback for mouse button presses.
	//
	// Parameters:
	//   - callback: function receiving the event with ChangedButton set
	SetMouseDownCallback(callback func(ev MouseEvent))

	// SetMouseUpCallback sets the callback for mouse button releases.
	//
	// Parameters:
	//   - callback: function receiving the event with ChangedButton set
	SetMouseUpCallback(callback func(ev MouseEvent))

	// SetScrollCallback sets the callback for mouse wheel events.
	//
	// Parameters:
	//   - callback: function receiving the event with WheelDelta set
	SetScrollCallback(callback func(ev MouseEvent))

	// SetKeyDownCallback sets the callback for key press events.
	//
	// Parameters:
	//   - callback: function receiving the key event
	SetKeyDownCallback(callback func(ev KeyEvent))

	// SetKeyUpCallback sets the callback for key release events.
	//
	// Parameters:
	//   - callback: function receiving the key event
	SetKeyUpCallback(callback func(ev KeyEvent))

	// SetKeyPressCallback sets the callback for repeating key presses.
	//
	// Parameters:
	//   - callback: function receiving the key event
	SetKeyPressCallback(callback func(ev KeyEvent))

	// SwapBuffers presents the rendered frame.
	SwapBuffers()

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Calls the update callback each
	// iteration, then presents via SwapBuffers.
	ProcessMessages()

	// Width returns the current framebuffer width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current framebuffer height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, and event callbacks.
type engineWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// width and height are the current framebuffer size in pixels.
	width  int
	height int

	// vsync synchronizes presents to the display refresh.
	vsync bool

	// antialias requests a multisampled framebuffer.
	antialias bool

	// stencil requests a stencil channel.
	stencil bool

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	// lastMouseX/Y track the previous cursor position for movement deltas.
	lastMouseX, lastMouseY int32
	haveLastMouse          bool

	// buttons is the currently pressed mouse button bitmask.
	buttons uint32

	// modifiers is the most recent modifier bitmask seen.
	modifiers uint32

	onUpdate    func()
	onResize    func(width, height int)
	onMouseMove func(ev MouseEvent)
	onMouseDown func(ev MouseEvent)
	onMouseUp   func(ev MouseEvent)
	onScroll    func(ev MouseEvent)
	onKeyDown   func(ev KeyEvent)
	onKeyUp     func(ev KeyEvent)
	onKeyPress  func(ev KeyEvent)
}

var _ Window = &engineWindow{}

// NewWindow creates a new Window with an OpenGL context current on the
// calling thread. Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured window
//   - error: when the platform window or GL context can't be created
func NewWindow(options ...WindowBuilderOption) (Window, error) {
	w := &engineWindow{
		title:   "trigl",
		width:   800,
		height:  600,
		vsync:   true,
		stencil: true,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		return nil, fmt.Errorf("failed to create platform window: %w", err)
	}
	return w, nil
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetMouseMoveCallback(callback func(ev MouseEvent)) {
	w.onMouseMove = callback
}

func (w *engineWindow) SetMouseDownCallback(callback func(ev MouseEvent)) {
	w.onMouseDown = callback
}

func (w *engineWindow) SetMouseUpCallback(callback func(ev MouseEvent)) {
	w.onMouseUp = callback
}

func (w *engineWindow) SetScrollCallback(callback func(ev MouseEvent)) {
	w.onScroll = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(ev KeyEvent)) {
	w.onKeyDown = callback
}

func (w *engineWindow) SetKeyUpCallback(callback func(ev KeyEvent)) {
	w.onKeyUp = callback
}

func (w *engineWindow) SetKeyPressCallback(callback func(ev KeyEvent)) {
	w.onKeyPress = callback
}

func (w *engineWindow) SwapBuffers() {
	platformSwapBuffers(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}
		w.SwapBuffers()

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}

// LoadImage decodes a PNG or JPEG file into a tightly packed RGBA pixel
// buffer suitable for texture upload.
//
// Parameters:
//   - path: the image file to decode
//
// Returns:
//   - *texture.Image: decoded pixels, width, and height
//   - error: when the file is unreadable or not a supported format
func LoadImage(path string) (*texture.Image, error) {
	return platformLoadImage(path)
}
