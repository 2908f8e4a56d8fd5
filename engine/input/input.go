// Package input holds the per-frame input snapshot consumed by the camera controls and reduces it
// into the semantic deltas each control mode understands.
package input

import (
	"github.com/Carmen-Shannon/oxy-cameras/common"
	"github.com/go-gl/mathgl/mgl32"
)

// PixelScrollScale converts pixel-unit scroll deltas into line-equivalent units.
const PixelScrollScale float32 = 0.005

// ButtonSet tracks held buttons plus the press/release edges of the current frame.
// The zero value is ready to use.
type ButtonSet[T comparable] struct {
	pressed      map[T]struct{}
	justPressed  map[T]struct{}
	justReleased map[T]struct{}
}

func (s *ButtonSet[T]) init() {
	if s.pressed == nil {
		s.pressed = make(map[T]struct{})
		s.justPressed = make(map[T]struct{})
		s.justReleased = make(map[T]struct{})
	}
}

// Press records b as held. The just-pressed edge is only set if b was not already held.
//
// Parameters:
//   - b: the button or key
func (s *ButtonSet[T]) Press(b T) {
	s.init()
	if _, ok := s.pressed[b]; !ok {
		s.justPressed[b] = struct{}{}
	}
	s.pressed[b] = struct{}{}
}

// Release records b as released. The just-released edge is only set if b was held.
//
// Parameters:
//   - b: the button or key
func (s *ButtonSet[T]) Release(b T) {
	s.init()
	if _, ok := s.pressed[b]; ok {
		delete(s.pressed, b)
		s.justReleased[b] = struct{}{}
	}
}

// Pressed reports whether b is currently held.
func (s *ButtonSet[T]) Pressed(b T) bool {
	_, ok := s.pressed[b]
	return ok
}

// JustPressed reports whether b went down this frame.
func (s *ButtonSet[T]) JustPressed(b T) bool {
	_, ok := s.justPressed[b]
	return ok
}

// JustReleased reports whether b went up this frame.
func (s *ButtonSet[T]) JustReleased(b T) bool {
	_, ok := s.justReleased[b]
	return ok
}

// Held returns the currently held buttons in unspecified order.
func (s *ButtonSet[T]) Held() []T {
	out := make([]T, 0, len(s.pressed))
	for b := range s.pressed {
		out = append(out, b)
	}
	return out
}

// clearEdges forgets this frame's press/release edges while keeping held state.
func (s *ButtonSet[T]) clearEdges() {
	clear(s.justPressed)
	clear(s.justReleased)
}

// ScrollUnit tags the unit of a scroll delta.
type ScrollUnit int

const (
	// ScrollLine is a notched wheel delta, one unit per notch.
	ScrollLine ScrollUnit = iota
	// ScrollPixel is a smooth (touchpad) delta in pixels.
	ScrollPixel
)

// ScrollEvent is one vertical scroll delta.
type ScrollEvent struct {
	Unit ScrollUnit
	Y    float32
}

// Touch is one active touch point.
type Touch struct {
	ID          uint64
	Position    mgl32.Vec2
	JustPressed bool
}

// Frame is the already-debounced device state for one tick.
// Hosts (or the glfw adapter in engine/window) fill it before Engine.Tick and call EndFrame afterwards.
type Frame struct {
	// Mouse holds mouse button state.
	Mouse ButtonSet[common.MouseButton]
	// Keys holds keyboard state.
	Keys ButtonSet[common.Key]
	// MouseMotion is the accumulated raw mouse motion delta this frame.
	MouseMotion mgl32.Vec2
	// Scroll lists this frame's scroll events in arrival order.
	Scroll []ScrollEvent
	// Touches lists all active touch points.
	Touches []Touch
	// DeltaTime is the frame duration in seconds.
	DeltaTime float32
}

// ScrollTotals sums this frame's scroll events by unit. Pixel deltas are scaled by PixelScrollScale.
//
// Returns:
//   - line: summed line-unit delta
//   - pixel: summed, scaled pixel-unit delta
func (f *Frame) ScrollTotals() (line, pixel float32) {
	for _, ev := range f.Scroll {
		switch ev.Unit {
		case ScrollPixel:
			pixel += ev.Y * PixelScrollScale
		default:
			line += ev.Y
		}
	}
	return line, pixel
}

// HasScroll reports whether any scroll event occurred this frame.
func (f *Frame) HasScroll() bool {
	return len(f.Scroll) > 0
}

// AllTouchesJustPressed reports whether at least one touch is active and every active touch began this frame.
func (f *Frame) AllTouchesJustPressed() bool {
	if len(f.Touches) == 0 {
		return false
	}
	for _, t := range f.Touches {
		if !t.JustPressed {
			return false
		}
	}
	return true
}

// FirstJustPressedTouch returns the position of the first touch that began this frame.
func (f *Frame) FirstJustPressedTouch() (mgl32.Vec2, bool) {
	for _, t := range f.Touches {
		if t.JustPressed {
			return t.Position, true
		}
	}
	return mgl32.Vec2{}, false
}

// EndFrame clears per-frame accumulators (edges, motion, scroll, touch edges) and keeps held state.
func (f *Frame) EndFrame() {
	f.Mouse.clearEdges()
	f.Keys.clearEdges()
	f.MouseMotion = mgl32.Vec2{}
	f.Scroll = f.Scroll[:0]
	for i := range f.Touches {
		f.Touches[i].JustPressed = false
	}
	f.DeltaTime = 0
}
