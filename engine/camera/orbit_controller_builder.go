package camera

import (
	"github.com/Carmen-Shannon/oxy-cameras/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// OrbitControllerOption is a functional option for configuring an OrbitController.
type OrbitControllerOption func(*OrbitController)

// WithFocus sets the initial orbit focus.
//
// Parameters:
//   - focus: the point to orbit around
//
// Returns:
//   - OrbitControllerOption: functional option to set the focus
func WithFocus(focus mgl32.Vec3) OrbitControllerOption {
	return func(o *OrbitController) {
		o.focus = focus
	}
}

// WithInitialYawPitch overrides the angles derived from the camera transform on initialization.
//
// Parameters:
//   - yaw: horizontal angle in radians
//   - pitch: vertical angle in radians
//
// Returns:
//   - OrbitControllerOption: functional option to preset the angles
func WithInitialYawPitch(yaw, pitch float32) OrbitControllerOption {
	return func(o *OrbitController) {
		o.SetYawPitch(yaw, pitch)
	}
}

// WithInitialRadius overrides the radius derived from the camera transform on initialization.
//
// Parameters:
//   - radius: orbit radius, clamped to at least common.MinRadius
//
// Returns:
//   - OrbitControllerOption: functional option to preset the radius
func WithInitialRadius(radius float32) OrbitControllerOption {
	return func(o *OrbitController) {
		o.SetRadius(radius)
	}
}

// WithOrbitSensitivity scales orbit motion.
func WithOrbitSensitivity(s float32) OrbitControllerOption {
	return func(o *OrbitController) {
		o.orbitSensitivity = s
	}
}

// WithPanSensitivity scales pan motion.
func WithPanSensitivity(s float32) OrbitControllerOption {
	return func(o *OrbitController) {
		o.panSensitivity = s
	}
}

// WithZoomSensitivity scales scroll zoom.
func WithZoomSensitivity(s float32) OrbitControllerOption {
	return func(o *OrbitController) {
		o.zoomSensitivity = s
	}
}

// WithOrbitBindings replaces the orbit and pan gestures.
//
// Parameters:
//   - bindings: the gestures to use
//
// Returns:
//   - OrbitControllerOption: functional option to set the bindings
func WithOrbitBindings(bindings input.OrbitBindings) OrbitControllerOption {
	return func(o *OrbitController) {
		o.bindings = bindings
	}
}

// WithZoomToMousePosition toggles zooming toward the point under the cursor.
func WithZoomToMousePosition(enabled bool) OrbitControllerOption {
	return func(o *OrbitController) {
		o.zoomToMousePosition = enabled
	}
}

// WithAutoDepth toggles moving the focus to the surface under the cursor when a gesture starts.
func WithAutoDepth(enabled bool) OrbitControllerOption {
	return func(o *OrbitController) {
		o.autoDepth = enabled
	}
}

// WithWrapCursor toggles wrapping the cursor at viewport edges while dragging.
func WithWrapCursor(enabled bool) OrbitControllerOption {
	return func(o *OrbitController) {
		o.wrapCursor = enabled
	}
}
