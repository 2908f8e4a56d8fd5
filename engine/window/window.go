// Package window adapts a GLFW window to the camera engine: it records device events into an
// input.Frame and exposes the cursor grab and warp operations the arbiter needs.
package window

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-cameras/common"
	"github.com/Carmen-Shannon/oxy-cameras/engine/input"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// Window is a platform window that feeds camera input.
// It satisfies arbiter.Window so it can be handed straight to the engine.
type Window interface {
	// ID returns the identity cameras use to target this window.
	ID() common.WindowID

	// Size returns the logical window size.
	//
	// Returns:
	//   - mgl32.Vec2: width and height in screen coordinates
	Size() mgl32.Vec2

	// CursorPosition returns the cursor position with a top-left origin.
	//
	// Returns:
	//   - mgl32.Vec2: the cursor position
	//   - bool: false if the cursor is outside the window
	CursorPosition() (mgl32.Vec2, bool)

	// SetCursorPosition warps the cursor. The warp is not reported as mouse motion.
	//
	// Parameters:
	//   - p: the new position in screen coordinates
	SetCursorPosition(p mgl32.Vec2)

	// SetGrabMode locks (hides and confines) or releases the cursor.
	//
	// Parameters:
	//   - mode: the requested grab mode
	SetGrabMode(mode common.GrabMode)

	// GrabMode returns the current grab mode.
	GrabMode() common.GrabMode

	// Input returns the frame being recorded. It is valid inside the update callback and is
	// reset after the callback returns.
	//
	// Returns:
	//   - *input.Frame: this frame's device state
	Input() *input.Frame

	// SetUpdateCallback sets the function called once per message loop iteration after events
	// were polled.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the logical window size changes.
	//
	// Parameters:
	//   - callback: function receiving the new size
	SetResizeCallback(callback func(width, height int))

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor for the host renderer.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform surface descriptor, or nil if the window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning returns true if the window is still open.
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if the window was never initialized
	Close() error

	// ProcessMessages runs the message loop until the window closes.
	ProcessMessages()
}

// engineWindow is the implementation of the Window interface.
// The event handlers are platform independent; window_glfw.go calls them from GLFW callbacks.
type engineWindow struct {
	mu *sync.Mutex

	id    common.WindowID
	title string

	maxWidth  int
	maxHeight int
	minWidth  int
	minHeight int

	// width and height are the logical window size in screen coordinates.
	width  int
	height int

	// escapeCloses closes the window when Escape is pressed.
	escapeCloses bool

	frame      input.Frame
	lastCursor *mgl32.Vec2
	inside     bool
	grab       common.GrabMode
	lastTick   time.Time

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	onUpdate func()
	onResize func(width, height int)
}

var _ Window = &engineWindow{}

// NewWindow creates and spawns a Window with the specified options.
// Panics if the platform window cannot be created.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the spawned window
func NewWindow(options ...WindowBuilderOption) Window {
	w := newEngineWindow(options...)
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

// newEngineWindow applies defaults and options without touching the platform.
func newEngineWindow(options ...WindowBuilderOption) *engineWindow {
	w := &engineWindow{
		mu:           &sync.Mutex{},
		title:        "Cameras",
		maxWidth:     3840,
		maxHeight:    2160,
		minWidth:     320,
		minHeight:    200,
		width:        1280,
		height:       720,
		escapeCloses: true,
	}
	for _, opt := range options {
		opt(w)
	}
	return w
}

func (w *engineWindow) ID() common.WindowID {
	return w.id
}

func (w *engineWindow) Size() mgl32.Vec2 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return mgl32.Vec2{float32(w.width), float32(w.height)}
}

func (w *engineWindow) CursorPosition() (mgl32.Vec2, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.lastCursor == nil {
		return mgl32.Vec2{}, false
	}
	// A grabbed cursor keeps reporting its virtual position so wrap and center can track it.
	if !w.inside && w.grab == common.GrabNone {
		return mgl32.Vec2{}, false
	}
	return *w.lastCursor, true
}

func (w *engineWindow) SetCursorPosition(p mgl32.Vec2) {
	w.mu.Lock()
	w.lastCursor = &p
	w.mu.Unlock()
	platformSetCursorPosition(w, p)
}

func (w *engineWindow) SetGrabMode(mode common.GrabMode) {
	w.mu.Lock()
	changed := w.grab != mode
	w.grab = mode
	w.mu.Unlock()
	if changed {
		platformSetGrabMode(w, mode)
	}
}

func (w *engineWindow) GrabMode() common.GrabMode {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.grab
}

func (w *engineWindow) Input() *input.Frame {
	return &w.frame
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
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
		w.tick(time.Now())
		runtime.Gosched()
	}
}

// tick stamps the frame duration, runs the update callback and resets per-frame input.
func (w *engineWindow) tick(now time.Time) {
	if !w.lastTick.IsZero() {
		w.frame.DeltaTime = float32(now.Sub(w.lastTick).Seconds())
	}
	w.lastTick = now
	if w.onUpdate != nil {
		w.onUpdate()
	}
	w.frame.EndFrame()
}

// handleKey records a key transition. Repeats are ignored because held state is already set.
func (w *engineWindow) handleKey(key common.Key, pressed bool) {
	if pressed {
		w.frame.Keys.Press(key)
	} else {
		w.frame.Keys.Release(key)
	}
}

// handleMouseButton records a mouse button transition.
func (w *engineWindow) handleMouseButton(b common.MouseButton, pressed bool) {
	if pressed {
		w.frame.Mouse.Press(b)
	} else {
		w.frame.Mouse.Release(b)
	}
}

// handleCursorMove accumulates motion since the last known position.
func (w *engineWindow) handleCursorMove(p mgl32.Vec2) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.lastCursor != nil {
		w.frame.MouseMotion = w.frame.MouseMotion.Add(p.Sub(*w.lastCursor))
	}
	w.lastCursor = &p
}

// handleCursorEnter tracks whether the cursor is over the window.
func (w *engineWindow) handleCursorEnter(entered bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.inside = entered
}

// handleScroll records a vertical scroll delta.
func (w *engineWindow) handleScroll(y float32, unit input.ScrollUnit) {
	if y == 0 {
		return
	}
	w.frame.Scroll = append(w.frame.Scroll, input.ScrollEvent{Unit: unit, Y: y})
}

// handleResize stores the new logical size and notifies the resize callback.
func (w *engineWindow) handleResize(width, height int) {
	w.mu.Lock()
	w.width, w.height = width, height
	w.mu.Unlock()
	if w.onResize != nil {
		w.onResize(width, height)
	}
}

// handleFocusLost releases every held button so a drag cannot stay latched across focus changes.
func (w *engineWindow) handleFocusLost() {
	for _, b := range []common.MouseButton{common.MouseButtonLeft, common.MouseButtonRight, common.MouseButtonMiddle} {
		w.frame.Mouse.Release(b)
	}
	for _, k := range w.frame.Keys.Held() {
		w.frame.Keys.Release(k)
	}
}
