package camera

import (
	"github.com/Carmen-Shannon/oxy-cameras/common"
	"github.com/Carmen-Shannon/oxy-cameras/engine/input"
)

// FlyControllerOption is a functional option for configuring a FlyController.
type FlyControllerOption func(*FlyController)

// WithSpeed sets the initial movement speed, clamped to [MinFlySpeed, MaxFlySpeed].
//
// Parameters:
//   - speed: world units per second
//
// Returns:
//   - FlyControllerOption: functional option to set the speed
func WithSpeed(speed float32) FlyControllerOption {
	return func(f *FlyController) {
		f.speed = speed
	}
}

// WithMoveKeys replaces the six movement keys.
//
// Parameters:
//   - forward, backward, left, right, up, down: the keys for each direction
//
// Returns:
//   - FlyControllerOption: functional option to set the movement keys
func WithMoveKeys(forward, backward, left, right, up, down common.Key) FlyControllerOption {
	return func(f *FlyController) {
		f.keyForward, f.keyBackward = forward, backward
		f.keyLeft, f.keyRight = left, right
		f.keyUp, f.keyDown = up, down
	}
}

// WithRotateBinding replaces the mouse-look gesture.
func WithRotateBinding(b input.Binding) FlyControllerOption {
	return func(f *FlyController) {
		f.rotate = b
	}
}

// WithSpeedSensitivity scales how much scrolling changes the speed.
func WithSpeedSensitivity(s float32) FlyControllerOption {
	return func(f *FlyController) {
		f.speedSensitivity = s
	}
}

// WithMoveSensitivity scales translation.
func WithMoveSensitivity(s float32) FlyControllerOption {
	return func(f *FlyController) {
		f.moveSensitivity = s
	}
}

// WithRotateSensitivity scales mouse look.
func WithRotateSensitivity(s float32) FlyControllerOption {
	return func(f *FlyController) {
		f.rotateSensitivity = s
	}
}

// WithGrabCursor toggles holding the cursor at the viewport center during mouse look.
func WithGrabCursor(enabled bool) FlyControllerOption {
	return func(f *FlyController) {
		f.grabCursor = enabled
	}
}
