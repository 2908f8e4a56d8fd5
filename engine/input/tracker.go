package input

import "github.com/go-gl/mathgl/mgl32"

// Deltas is the per-frame semantic input for the active camera, already gated by its control mode.
// Fields that do not apply to the mode are zero.
type Deltas struct {
	// Orbit is the mouse motion while the orbit gesture is held (orbit mode).
	Orbit mgl32.Vec2
	// Pan is the mouse motion while the pan gesture is held and orbit is not (orbit mode).
	Pan mgl32.Vec2
	// Rotate is the mouse motion while the rotate gesture is held (fly mode).
	Rotate mgl32.Vec2
	// ScrollLine is the summed line-unit scroll delta.
	ScrollLine float32
	// ScrollPixel is the summed pixel-unit scroll delta, pre-scaled by PixelScrollScale.
	ScrollPixel float32
	// OrbitButtonChanged is set when the orbit gesture was pressed or released this frame.
	OrbitButtonChanged bool
	// DragJustPressed is set when a mode drag gesture began this frame.
	DragJustPressed bool
}

// HasScroll reports whether the deltas carry a nonzero scroll amount.
func (d Deltas) HasScroll() bool {
	return d.ScrollLine != 0 || d.ScrollPixel != 0
}

// Tracker reduces a Frame into Deltas. It keeps the last result so later stages of the
// same tick can read it without recomputing.
type Tracker struct {
	last Deltas
}

// TrackOrbit reduces f for a camera in orbit mode.
//
// Parameters:
//   - f: this frame's input snapshot
//   - bindings: the camera's orbit and pan bindings
//
// Returns:
//   - Deltas: orbit, pan and scroll deltas
func (t *Tracker) TrackOrbit(f *Frame, bindings OrbitBindings) Deltas {
	var d Deltas
	if bindings.OrbitPressed(f) {
		d.Orbit = f.MouseMotion
	} else if bindings.PanPressed(f) {
		d.Pan = f.MouseMotion
	}
	d.ScrollLine, d.ScrollPixel = f.ScrollTotals()
	d.OrbitButtonChanged = bindings.OrbitJustPressed(f) || bindings.OrbitJustReleased(f)
	d.DragJustPressed = bindings.DragJustPressed(f)
	t.last = d
	return d
}

// TrackFly reduces f for a camera in fly mode.
//
// Parameters:
//   - f: this frame's input snapshot
//   - rotate: the camera's rotate binding
//
// Returns:
//   - Deltas: rotate and scroll deltas
func (t *Tracker) TrackFly(f *Frame, rotate Binding) Deltas {
	var d Deltas
	if rotate.Pressed(f) {
		d.Rotate = f.MouseMotion
	}
	d.ScrollLine, d.ScrollPixel = f.ScrollTotals()
	d.DragJustPressed = rotate.JustPressed(f)
	t.last = d
	return d
}

// Reset clears the stored deltas. Used when no camera is active this frame.
func (t *Tracker) Reset() {
	t.last = Deltas{}
}

// Last returns the deltas from the most recent Track call (zero after Reset).
func (t *Tracker) Last() Deltas {
	return t.last
}

// FocusTracker remembers whether a GUI layer wanted pointer/keyboard focus on the current and
// previous frames. Some toolkits report focus one frame late, so both are consulted.
type FocusTracker struct {
	prev bool
	curr bool
}

// Update shifts the current value into the previous slot and records the new one.
func (ft *FocusTracker) Update(wantsFocus bool) {
	ft.prev = ft.curr
	ft.curr = wantsFocus
}

// WantsFocus reports whether input should be ignored by the cameras this frame.
func (ft *FocusTracker) WantsFocus() bool {
	return ft.prev || ft.curr
}
