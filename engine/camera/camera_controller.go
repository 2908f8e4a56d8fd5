package camera

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-cameras/common"
)

var (
	// ErrNoOrbitController is returned when an orbit operation targets a camera without an orbit controller.
	ErrNoOrbitController = errors.New("camera has no orbit controller")
	// ErrNoFlyController is returned when a fly operation targets a camera without a fly controller.
	ErrNoFlyController = errors.New("camera has no fly controller")
	// ErrOrbitNotInitialized is returned when switching to orbit mode before an orbit radius was ever established.
	ErrOrbitNotInitialized = errors.New("orbit controller was never initialized")
	// ErrDegenerateBounds is returned when framing bounds with no positive extent.
	ErrDegenerateBounds = errors.New("bounds are degenerate")
	// ErrFlyOrthographic is returned when giving a fly camera an orthographic projection.
	ErrFlyOrthographic = errors.New("fly mode requires a perspective projection")
	// ErrNoControls is returned when a control operation targets a camera with neither controller.
	ErrNoControls = errors.New("camera has no controllers")
)

// Mode is the control mode of a camera. Exactly one controller drives a camera at a time.
type Mode int

const (
	// ModeNone is a camera without controllers. It is never arbitrated.
	ModeNone Mode = iota
	ModeOrbit
	ModeFly
)

func (m Mode) String() string {
	switch m {
	case ModeOrbit:
		return "orbit"
	case ModeFly:
		return "fly"
	case ModeNone:
		return "none"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// SwitchToOrbit hands the camera from fly to orbit control. The orbit angles are taken from the
// current rotation and the focus is placed one radius ahead of the camera. A camera already in
// orbit mode is left unchanged.
//
// Returns:
//   - error: ErrNoOrbitController, or ErrOrbitNotInitialized if no orbit radius exists yet
func (c *cameraImpl) SwitchToOrbit() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.orbit == nil {
		return ErrNoOrbitController
	}
	if c.mode != ModeFly {
		return nil
	}
	if c.orbit.params == nil {
		return ErrOrbitNotInitialized
	}

	yaw, pitch, _ := common.EulerYXZ(c.transform.Rotation)
	c.orbit.params.yaw = yaw
	c.orbit.params.pitch = -pitch
	c.orbit.focus = c.transform.Translation.Add(c.transform.Forward().Mul(c.orbit.params.radius))
	c.mode = ModeOrbit
	c.updateMatrices()
	return nil
}

// SwitchToFly hands the camera from orbit to fly control. An orthographic camera is switched to
// its perspective projection first. A camera already in fly mode is left unchanged.
//
// Returns:
//   - error: ErrNoFlyController if the camera cannot fly
func (c *cameraImpl) SwitchToFly() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fly == nil {
		return ErrNoFlyController
	}
	if c.mode != ModeOrbit {
		return nil
	}
	if c.projection.Kind() == KindOrthographic {
		c.orbit.initialize(&c.transform, c.projection, true)
		c.swapProjection()
	}
	c.mode = ModeFly
	c.updateMatrices()
	return nil
}

// SwitchProjection toggles between the active and saved projection. It is only honored in orbit
// mode; in fly mode the call is ignored.
//
// Returns:
//   - error: ErrNoOrbitController if the camera has no orbit controller
func (c *cameraImpl) SwitchProjection() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.orbit == nil {
		return ErrNoOrbitController
	}
	if c.mode != ModeOrbit {
		return nil
	}
	c.orbit.initialize(&c.transform, c.projection, true)
	c.swapProjection()
	c.updateMatrices()
	return nil
}

// swapProjection places the camera for the incoming projection, then exchanges active and saved.
// The orbit controller must be initialized.
func (c *cameraImpl) swapProjection() {
	incoming := c.saved
	c.orbit.apply(&c.transform, incoming)
	c.saved = c.projection
	c.projection = incoming
}
