package arbiter

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-cameras/common"
	"github.com/Carmen-Shannon/oxy-cameras/engine/camera"
	"github.com/Carmen-Shannon/oxy-cameras/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

func TestCursorWrapDuringOrbitDrag(t *testing.T) {
	cam := orbitCam(camera.WithViewport(common.NewRect(100, 100, 200, 200)))
	w := newWindow(0, mgl32.Vec2{150, 150})
	windows := NewWindows(w)
	var g CursorGrabber

	f := middlePress()
	g.Update(cam, f, windows)
	if w.grab != common.GrabLocked || !g.Dragging() {
		t.Fatalf("drag start should lock the cursor")
	}

	f.EndFrame()
	w.cursor = mgl32.Vec2{300, 150}
	g.Update(cam, f, windows)
	if w.cursor != (mgl32.Vec2{100, 150}) {
		t.Fatalf("cursor at the right edge should wrap to the left edge, got %v", w.cursor)
	}

	w.cursor = mgl32.Vec2{200, 99}
	g.Update(cam, f, windows)
	if w.cursor != (mgl32.Vec2{200, 300}) {
		t.Fatalf("cursor past the top edge should wrap to the bottom, got %v", w.cursor)
	}

	warps := len(w.warps)
	w.cursor = mgl32.Vec2{200, 200}
	g.Update(cam, f, windows)
	if len(w.warps) != warps {
		t.Fatalf("cursor inside the viewport should not be moved")
	}

	w.hasCursor = false
	g.Update(cam, f, windows)
	if w.cursor != (mgl32.Vec2{200, 200}) || len(w.warps) != warps+1 {
		t.Fatalf("missing cursor position should recenter")
	}

	f.Mouse.Release(common.MouseButtonMiddle)
	g.Update(cam, f, windows)
	if w.grab != common.GrabNone || g.Dragging() {
		t.Fatalf("drag end should release the cursor")
	}
}

func TestCursorCenterDuringFlyDrag(t *testing.T) {
	cam := camera.NewCamera(camera.WithFlyController(nil), camera.WithViewport(common.NewRect(0, 0, 400, 200)))
	w := newWindow(0, mgl32.Vec2{10, 10})
	windows := NewWindows(w)
	var g CursorGrabber

	f := middlePress()
	g.Update(cam, f, windows)
	if w.grab != common.GrabLocked || w.cursor != (mgl32.Vec2{200, 100}) {
		t.Fatalf("fly drag should lock and center, got %v %v", w.grab, w.cursor)
	}
	f.EndFrame()
	w.cursor = mgl32.Vec2{250, 90}
	g.Update(cam, f, windows)
	if w.cursor != (mgl32.Vec2{200, 100}) {
		t.Fatalf("fly drag should recenter every frame, got %v", w.cursor)
	}
}

func TestCursorNoWrapWhenDragStartedOutside(t *testing.T) {
	cam := orbitCam(camera.WithViewport(common.NewRect(100, 100, 200, 200)))
	w := newWindow(0, mgl32.Vec2{50, 50})
	windows := NewWindows(w)
	var g CursorGrabber

	f := middlePress()
	g.Update(cam, f, windows)
	f.EndFrame()
	w.cursor = mgl32.Vec2{350, 150}
	g.Update(cam, f, windows)
	if len(w.warps) != 0 {
		t.Fatalf("drag that started outside the viewport should not wrap")
	}
}

func TestCursorWrapDisabled(t *testing.T) {
	cam := camera.NewCamera(camera.WithOrbitController(camera.NewOrbitController(camera.WithWrapCursor(false))))
	w := newWindow(0, mgl32.Vec2{400, 300})
	windows := NewWindows(w)
	var g CursorGrabber
	f := middlePress()
	g.Update(cam, f, windows)
	if w.grab != common.GrabNone {
		t.Fatalf("cursor should not be locked without wrap")
	}
	f.EndFrame()
	w.cursor = mgl32.Vec2{800, 300}
	g.Update(cam, f, windows)
	if len(w.warps) != 0 {
		t.Fatalf("cursor should not wrap when disabled")
	}
}

func TestCursorReleaseWithoutActiveCamera(t *testing.T) {
	cam := orbitCam()
	w := newWindow(0, mgl32.Vec2{10, 10})
	var g CursorGrabber
	g.Update(cam, middlePress(), NewWindows(w))
	g.Update(nil, &input.Frame{}, NewWindows(w))
	if w.grab != common.GrabNone || g.Dragging() {
		t.Fatalf("losing the active camera should release the cursor")
	}
}
