// Package arbiter decides which camera owns user input each frame and drives the cursor
// grab, wrap and center side effects of camera drags.
package arbiter

import (
	"github.com/Carmen-Shannon/oxy-cameras/common"
	"github.com/Carmen-Shannon/oxy-cameras/engine/camera"
	"github.com/Carmen-Shannon/oxy-cameras/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// ActiveCamera describes the camera that receives input.
type ActiveCamera struct {
	Camera       camera.ID
	ViewportSize mgl32.Vec2
	WindowSize   mgl32.Vec2
	Window       common.WindowID
}

// Ownership says who may write the active camera.
type Ownership int

const (
	// Automatic lets the arbiter pick the active camera from input each frame.
	Automatic Ownership = iota
	// ManuallyOwned means the host set the active camera and the arbiter never overwrites it.
	ManuallyOwned
)

func (o Ownership) String() string {
	if o == ManuallyOwned {
		return "manual"
	}
	return "automatic"
}

// Arbiter holds the process-wide active camera.
type Arbiter struct {
	active    *ActiveCamera
	ownership Ownership
}

// NewArbiter creates an arbiter with no active camera in automatic mode.
func NewArbiter() *Arbiter {
	return &Arbiter{ownership: Automatic}
}

// Active returns the active camera. The bool is false until a camera was activated.
func (a *Arbiter) Active() (ActiveCamera, bool) {
	if a.active == nil {
		return ActiveCamera{}, false
	}
	return *a.active, true
}

// Ownership returns who currently writes the active camera.
func (a *Arbiter) Ownership() Ownership {
	return a.ownership
}

// TakeOwnership makes active the active camera and stops automatic arbitration until Release.
//
// Parameters:
//   - active: the camera the host wants to drive
func (a *Arbiter) TakeOwnership(active ActiveCamera) {
	a.active = &active
	a.ownership = ManuallyOwned
}

// Release hands the active camera back to automatic arbitration. The current camera stays active
// until the next activation.
func (a *Arbiter) Release() {
	a.ownership = Automatic
}

// Forget clears the active camera if it is id. Used when a camera is removed.
func (a *Arbiter) Forget(id camera.ID) {
	if a.active != nil && a.active.Camera == id {
		a.active = nil
	}
}

// Arbitrate picks the active camera from this frame's input. A camera is a candidate when it
// received an activation event (its drag gesture started, any scroll, or a fresh touch set) and
// the pointer lies strictly inside its viewport. The highest order wins; among equal orders the
// later camera in cams wins. Without a candidate the previous active camera is kept.
//
// Parameters:
//   - cams: cameras in registration order
//   - f: this frame's input
//   - windows: render target windows
//   - suppressed: true when a GUI layer owns the pointer this frame
//
// Returns:
//   - bool: true if the active camera was replaced
func (a *Arbiter) Arbitrate(cams []camera.Camera, f *input.Frame, windows Windows, suppressed bool) bool {
	if a.ownership == ManuallyOwned || suppressed {
		return false
	}

	var (
		winner ActiveCamera
		best   int
		found  bool
	)
	for _, cam := range cams {
		if !activated(cam, f) {
			continue
		}
		w, ok := windows[cam.Window()]
		if !ok {
			continue
		}
		p, ok := pointer(w, f)
		if !ok {
			continue
		}
		vp := cam.LogicalViewport(w.Size())
		if !vp.ContainsStrict(p) {
			continue
		}
		if order := cam.Order(); !found || order >= best {
			best = order
			found = true
			winner = ActiveCamera{
				Camera:       cam.ID(),
				ViewportSize: vp.Size(),
				WindowSize:   w.Size(),
				Window:       w.ID(),
			}
		}
	}
	if !found {
		return false
	}
	a.active = &winner
	return true
}

// CameraUnderCursor returns the highest-order camera whose viewport contains the cursor, without
// requiring an activation event.
//
// Parameters:
//   - cams: cameras in registration order
//   - windows: render target windows
//
// Returns:
//   - camera.ID: the camera under the cursor
//   - bool: false if no viewport contains the cursor
func CameraUnderCursor(cams []camera.Camera, windows Windows) (camera.ID, bool) {
	var (
		id    camera.ID
		best  int
		found bool
	)
	for _, cam := range cams {
		w, ok := windows[cam.Window()]
		if !ok {
			continue
		}
		p, ok := cursor(w)
		if !ok || !cam.LogicalViewport(w.Size()).ContainsStrict(p) {
			continue
		}
		if order := cam.Order(); !found || order >= best {
			id, best, found = cam.ID(), order, true
		}
	}
	return id, found
}

// activated reports whether cam received an activation event this frame.
func activated(cam camera.Camera, f *input.Frame) bool {
	if f.HasScroll() || f.AllTouchesJustPressed() {
		return cam.Mode() != camera.ModeNone
	}
	switch cam.Mode() {
	case camera.ModeOrbit:
		return cam.Orbit().Bindings().DragJustPressed(f)
	case camera.ModeFly:
		return cam.Fly().RotateBinding().JustPressed(f)
	}
	return false
}

// pointer returns the mouse cursor, or the first new touch when the window has no cursor.
func pointer(w Window, f *input.Frame) (mgl32.Vec2, bool) {
	if p, ok := cursor(w); ok {
		return p, true
	}
	if p, ok := f.FirstJustPressedTouch(); ok {
		return toTopLeft(w, p), true
	}
	return mgl32.Vec2{}, false
}
