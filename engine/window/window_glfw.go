package window

import (
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/oxy-cameras/common"
	"github.com/Carmen-Shannon/oxy-cameras/engine/input"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// glfwWindow holds the GLFW-specific window state.
type glfwWindow struct {
	parent  *engineWindow
	window  *glfw.Window
	running bool
}

// newPlatformWindow creates the GLFW window and routes its callbacks into the engineWindow handlers.
//
// GLFW reference: https://www.glfw.org/docs/latest/input_guide.html
// go-gl/glfw: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw
func newPlatformWindow(w *engineWindow) error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// The host renders through WebGPU, so no OpenGL context is created.
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	win, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("failed to create GLFW window: %w", err)
	}
	win.SetSizeLimits(w.minWidth, w.minHeight, w.maxWidth, w.maxHeight)

	gw := &glfwWindow{
		parent:  w,
		window:  win,
		running: true,
	}
	w.internalWindow = gw

	// GLFW key and mouse button codes are the values common.Key and common.MouseButton use.
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press && w.escapeCloses {
			gw.running = false
			win.SetShouldClose(true)
			return
		}
		switch action {
		case glfw.Press:
			w.handleKey(common.Key(key), true)
		case glfw.Release:
			w.handleKey(common.Key(key), false)
		}
	})

	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		switch action {
		case glfw.Press:
			w.handleMouseButton(common.MouseButton(button), true)
		case glfw.Release:
			w.handleMouseButton(common.MouseButton(button), false)
		}
	})

	win.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		w.handleCursorMove(mgl32.Vec2{float32(xpos), float32(ypos)})
	})

	win.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		w.handleCursorEnter(entered)
	})

	// GLFW reports wheel notches and touchpad scrolling through the same callback in line units.
	win.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		w.handleScroll(float32(yoff), input.ScrollLine)
	})

	// Viewports live in screen coordinates, so the window size (not the framebuffer size) is tracked.
	win.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		w.handleResize(width, height)
	})

	win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if !focused {
			w.handleFocusLost()
		}
	})

	width, height := win.GetSize()
	w.handleResize(width, height)
	xpos, ypos := win.GetCursorPos()
	w.handleCursorMove(mgl32.Vec2{float32(xpos), float32(ypos)})
	w.handleCursorEnter(win.GetAttrib(glfw.Hovered) == glfw.True)

	return nil
}

// platformSetCursorPosition warps the GLFW cursor.
func platformSetCursorPosition(w *engineWindow, p mgl32.Vec2) {
	gw, ok := w.internalWindow.(*glfwWindow)
	if !ok {
		return
	}
	gw.window.SetCursorPos(float64(p.X()), float64(p.Y()))
}

// platformSetGrabMode maps GrabLocked to a disabled (hidden, unbounded) GLFW cursor.
//
// Reference: https://www.glfw.org/docs/latest/input_guide.html#cursor_mode
func platformSetGrabMode(w *engineWindow, mode common.GrabMode) {
	gw, ok := w.internalWindow.(*glfwWindow)
	if !ok {
		return
	}
	switch mode {
	case common.GrabLocked:
		gw.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	default:
		gw.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

// platformGetSurfaceDescriptor creates a wgpu.SurfaceDescriptor from the GLFW window through the
// wgpuglfw bridge.
//
// Reference: https://pkg.go.dev/github.com/cogentcore/webgpu/wgpuglfw#GetSurfaceDescriptor
func platformGetSurfaceDescriptor(w *engineWindow) *wgpu.SurfaceDescriptor {
	gw, ok := w.internalWindow.(*glfwWindow)
	if !ok {
		return nil
	}
	return wgpuglfw.GetSurfaceDescriptor(gw.window)
}

// platformIsRunningCheck returns whether the GLFW window is still active.
//
// Parameters:
//   - w: the engineWindow to check
//
// Returns:
//   - bool: true if the window is still running
func platformIsRunningCheck(w *engineWindow) bool {
	gw, ok := w.internalWindow.(*glfwWindow)
	if !ok {
		return false
	}
	return gw.running && !gw.window.ShouldClose()
}

// platformCloseWindow destroys the GLFW window and terminates the GLFW library.
//
// Parameters:
//   - w: the engineWindow to close
//
// Returns:
//   - error: error if the window is not initialized
func platformCloseWindow(w *engineWindow) error {
	gw, ok := w.internalWindow.(*glfwWindow)
	if !ok {
		return fmt.Errorf("window is not initialized")
	}
	gw.running = false
	gw.window.SetShouldClose(true)
	gw.window.Destroy()
	glfw.Terminate()
	w.internalWindow = nil
	return nil
}

// platformProcessMessages polls GLFW for pending events without blocking.
//
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#PollEvents
func platformProcessMessages(w *engineWindow) bool {
	glfw.PollEvents()
	return platformIsRunningCheck(w)
}
