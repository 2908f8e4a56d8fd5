package input

import "github.com/Carmen-Shannon/oxy-cameras/common"

// Binding is a mouse button optionally gated by a held modifier key.
type Binding struct {
	// Button is the mouse button that drives the gesture.
	Button common.MouseButton
	// Modifier must be held for the gesture. common.KeyNone means no modifier.
	Modifier common.Key
}

// NewBinding creates a Binding without a modifier.
func NewBinding(button common.MouseButton) Binding {
	return Binding{Button: button, Modifier: common.KeyNone}
}

// WithModifier returns a copy of b gated by the given modifier key.
func (b Binding) WithModifier(key common.Key) Binding {
	b.Modifier = key
	return b
}

func (b Binding) modifierHeld(f *Frame) bool {
	return b.Modifier == common.KeyNone || f.Keys.Pressed(b.Modifier)
}

// modifierAbsent is true when b has no modifier or its modifier is not held.
func (b Binding) modifierAbsent(f *Frame) bool {
	return b.Modifier == common.KeyNone || !f.Keys.Pressed(b.Modifier)
}

// Pressed reports whether the button is held with its modifier.
func (b Binding) Pressed(f *Frame) bool {
	return b.modifierHeld(f) && f.Mouse.Pressed(b.Button)
}

// JustPressed reports whether the button went down this frame with its modifier held.
func (b Binding) JustPressed(f *Frame) bool {
	return b.modifierHeld(f) && f.Mouse.JustPressed(b.Button)
}

// JustReleased reports whether the button went up this frame with its modifier held.
func (b Binding) JustReleased(f *Frame) bool {
	return b.modifierHeld(f) && f.Mouse.JustReleased(b.Button)
}

// OrbitBindings pairs the orbit and pan gestures. Each gesture is suppressed while the
// other gesture's modifier is held, so both may share one mouse button.
type OrbitBindings struct {
	Orbit Binding
	Pan   Binding
}

// DefaultOrbitBindings orbits on the middle button and pans on Shift + middle.
func DefaultOrbitBindings() OrbitBindings {
	return OrbitBindings{
		Orbit: NewBinding(common.MouseButtonMiddle),
		Pan:   NewBinding(common.MouseButtonMiddle).WithModifier(common.KeyLeftShift),
	}
}

// OrbitPressed reports whether the orbit gesture is held.
func (o OrbitBindings) OrbitPressed(f *Frame) bool {
	return o.Orbit.Pressed(f) && o.Pan.modifierAbsent(f)
}

// OrbitJustPressed reports whether the orbit gesture began this frame.
func (o OrbitBindings) OrbitJustPressed(f *Frame) bool {
	return o.Orbit.JustPressed(f) && o.Pan.modifierAbsent(f)
}

// OrbitJustReleased reports whether the orbit gesture ended this frame.
func (o OrbitBindings) OrbitJustReleased(f *Frame) bool {
	return o.Orbit.JustReleased(f) && o.Pan.modifierAbsent(f)
}

// PanPressed reports whether the pan gesture is held.
func (o OrbitBindings) PanPressed(f *Frame) bool {
	return o.Pan.Pressed(f) && o.Orbit.modifierAbsent(f)
}

// PanJustPressed reports whether the pan gesture began this frame.
func (o OrbitBindings) PanJustPressed(f *Frame) bool {
	return o.Pan.JustPressed(f) && o.Orbit.modifierAbsent(f)
}

// PanJustReleased reports whether the pan gesture ended this frame.
func (o OrbitBindings) PanJustReleased(f *Frame) bool {
	return o.Pan.JustReleased(f) && o.Orbit.modifierAbsent(f)
}

// DragJustPressed reports whether either gesture began this frame.
func (o OrbitBindings) DragJustPressed(f *Frame) bool {
	return o.OrbitJustPressed(f) || o.PanJustPressed(f)
}

// DragPressed reports whether either gesture is held.
func (o OrbitBindings) DragPressed(f *Frame) bool {
	return o.OrbitPressed(f) || o.PanPressed(f)
}

// DragJustReleased reports whether either gesture ended this frame.
func (o OrbitBindings) DragJustReleased(f *Frame) bool {
	return o.OrbitJustReleased(f) || o.PanJustReleased(f)
}
