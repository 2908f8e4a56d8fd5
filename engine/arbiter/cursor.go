package arbiter

import (
	"github.com/Carmen-Shannon/oxy-cameras/common"
	"github.com/Carmen-Shannon/oxy-cameras/engine/camera"
	"github.com/Carmen-Shannon/oxy-cameras/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// CursorGrabber locks, wraps and recenters the cursor while the active camera is dragged.
// Orbit cameras with cursor wrap enabled teleport the cursor to the opposite viewport edge when it
// reaches one; fly cameras with cursor grab enabled hold it at the viewport center.
type CursorGrabber struct {
	dragStart *mgl32.Vec2
	window    Window
}

// dragState is the active camera's drag gesture this frame.
type dragState struct {
	justPressed bool
	pressed     bool
	wrap        bool
	center      bool
}

func dragOf(cam camera.Camera, f *input.Frame) dragState {
	var d dragState
	switch cam.Mode() {
	case camera.ModeOrbit:
		o := cam.Orbit()
		b := o.Bindings()
		d.justPressed = b.DragJustPressed(f)
		d.pressed = b.DragPressed(f)
		d.wrap = o.WrapCursor() && d.pressed
	case camera.ModeFly:
		fl := cam.Fly()
		b := fl.RotateBinding()
		d.justPressed = b.JustPressed(f)
		d.pressed = b.Pressed(f)
		d.center = fl.GrabCursor() && d.pressed
	}
	return d
}

// Dragging reports whether a drag gesture is in progress.
func (g *CursorGrabber) Dragging() bool {
	return g.dragStart != nil
}

// Update applies this frame's cursor side effects for the active camera.
//
// Parameters:
//   - cam: the active camera, or nil if there is none
//   - f: this frame's input
//   - windows: render target windows
func (g *CursorGrabber) Update(cam camera.Camera, f *input.Frame, windows Windows) {
	if cam == nil {
		g.release()
		return
	}
	w, ok := windows[cam.Window()]
	if !ok {
		g.release()
		return
	}
	d := dragOf(cam, f)
	vp := cam.LogicalViewport(w.Size())

	switch {
	case d.justPressed:
		g.window = w
		g.dragStart = nil
		if p, ok := cursor(w); ok {
			g.dragStart = &p
		}
		if d.wrap || d.center {
			w.SetGrabMode(common.GrabLocked)
		}
		if d.center {
			setCursor(w, vp.Center())
		}
	case !d.pressed:
		g.release()
		return
	}

	if g.dragStart == nil || !vp.Contains(*g.dragStart) {
		return
	}
	if d.wrap {
		p, ok := cursor(w)
		if !ok {
			setCursor(w, vp.Center())
		} else if wrapped, moved := wrapInside(p, vp); moved {
			setCursor(w, wrapped)
		}
	}
	if d.center {
		setCursor(w, vp.Center())
	}
}

// release ends a drag and unlocks the cursor of the window it started in.
func (g *CursorGrabber) release() {
	if g.window != nil {
		g.window.SetGrabMode(common.GrabNone)
	}
	g.window = nil
	g.dragStart = nil
}

// wrapInside teleports p to the opposite edge of r on each axis where it reached an edge.
func wrapInside(p mgl32.Vec2, r common.Rect) (mgl32.Vec2, bool) {
	out := p
	for axis := range 2 {
		switch {
		case p[axis] <= r.Min[axis]:
			out[axis] = r.Max[axis]
		case p[axis] >= r.Max[axis]:
			out[axis] = r.Min[axis]
		}
	}
	return out, out != p
}
