package camera

import (
	"github.com/Carmen-Shannon/oxy-cameras/common"
	"github.com/go-gl/mathgl/mgl32"
)

type CameraBuilderOption func(*cameraImpl)

// WithTransform sets the camera's initial placement.
//
// Parameters:
//   - t: the initial transform
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's transform
func WithTransform(t Transform) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.transform = t
	}
}

// WithLookAt places the camera at eye looking at target with +Y up.
//
// Parameters:
//   - eye: camera position
//   - target: point to look at
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's transform
func WithLookAt(eye, target mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.transform = LookAtTransform(eye, target, common.AxisY)
	}
}

// WithProjection sets the active projection.
//
// Parameters:
//   - p: the projection to use
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's projection
func WithProjection(p Projection) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.projection = p.Clone()
	}
}

// WithSavedProjection sets the projection SwitchProjection toggles to. When omitted, a default
// projection of the other kind is created.
//
// Parameters:
//   - p: the saved projection
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's saved projection
func WithSavedProjection(p Projection) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.saved = p.Clone()
	}
}

// WithViewport restricts the camera to a rectangle of its window, in logical pixels.
//
// Parameters:
//   - r: the viewport rectangle
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's viewport
func WithViewport(r common.Rect) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.viewport = &r
	}
}

// WithWindow sets the render target window.
func WithWindow(w common.WindowID) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.window = w
	}
}

// WithOrder sets the render order.
func WithOrder(order int) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.order = order
	}
}

// WithOrbitController attaches an orbit controller.
//
// Parameters:
//   - o: the controller; nil creates one with defaults
//
// Returns:
//   - CameraBuilderOption: a function that attaches the controller
func WithOrbitController(o *OrbitController) CameraBuilderOption {
	return func(c *cameraImpl) {
		if o == nil {
			o = NewOrbitController()
		}
		c.orbit = o
	}
}

// WithFlyController attaches a fly controller.
//
// Parameters:
//   - f: the controller; nil creates one with defaults
//
// Returns:
//   - CameraBuilderOption: a function that attaches the controller
func WithFlyController(f *FlyController) CameraBuilderOption {
	return func(c *cameraImpl) {
		if f == nil {
			f = NewFlyController()
		}
		c.fly = f
	}
}

// WithMode selects the initial control mode. It is ignored if the matching controller is missing.
//
// Parameters:
//   - m: ModeOrbit or ModeFly
//
// Returns:
//   - CameraBuilderOption: a function that sets the initial mode
func WithMode(m Mode) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.mode = m
	}
}
