package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-cameras/common"
	"github.com/Carmen-Shannon/oxy-cameras/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	MinFlySpeed float32 = 0.05
	MaxFlySpeed float32 = 100
	// flySpeedStep is the fraction of the current speed one scroll line adds.
	flySpeedStep float32 = 0.1
)

// FlyController moves a camera freely with keyboard translation and mouse look.
type FlyController struct {
	speed float32

	keyForward  common.Key
	keyBackward common.Key
	keyLeft     common.Key
	keyRight    common.Key
	keyUp       common.Key
	keyDown     common.Key

	rotate input.Binding

	speedSensitivity  float32
	moveSensitivity   float32
	rotateSensitivity float32

	grabCursor bool
}

// NewFlyController creates a fly controller. Defaults: speed 1, E/D/S/F move forward/back/left/right,
// R/W move up/down, mouse look on the middle button, all sensitivities 1, cursor grab enabled.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - *FlyController: the new controller
func NewFlyController(options ...FlyControllerOption) *FlyController {
	f := &FlyController{
		speed:             1,
		keyForward:        common.KeyE,
		keyBackward:       common.KeyD,
		keyLeft:           common.KeyS,
		keyRight:          common.KeyF,
		keyUp:             common.KeyR,
		keyDown:           common.KeyW,
		rotate:            input.NewBinding(common.MouseButtonMiddle),
		speedSensitivity:  1,
		moveSensitivity:   1,
		rotateSensitivity: 1,
		grabCursor:        true,
	}
	for _, option := range options {
		option(f)
	}
	f.speed = clampSpeed(f.speed)
	return f
}

// Speed returns the movement speed in world units per second.
func (f *FlyController) Speed() float32 { return f.speed }

// SetSpeed sets the movement speed, clamped to [MinFlySpeed, MaxFlySpeed].
func (f *FlyController) SetSpeed(speed float32) { f.speed = clampSpeed(speed) }

// RotateBinding returns the mouse-look gesture.
func (f *FlyController) RotateBinding() input.Binding { return f.rotate }

// GrabCursor reports whether the cursor is held at the viewport center while looking around.
func (f *FlyController) GrabCursor() bool { return f.grabCursor }

func clampSpeed(s float32) float32 {
	return min(max(s, MinFlySpeed), MaxFlySpeed)
}

// update consumes one frame of input and moves transform.
//
// Parameters:
//   - in: this frame's input
//   - transform: the camera transform, updated in place
func (f *FlyController) update(in *FrameInput, transform *Transform) {
	d := in.Deltas
	if scroll := d.ScrollLine + d.ScrollPixel; scroll != 0 {
		f.speed = clampSpeed(f.speed + scroll*f.speedSensitivity*f.speed*flySpeedStep)
	}

	rotate := d.Rotate.Mul(f.rotateSensitivity)
	if rotate.Dot(rotate) > 0 && in.WindowSize.X() > 0 && in.WindowSize.Y() > 0 {
		yaw, pitch, _ := common.EulerYXZ(transform.Rotation)
		yaw -= rotate.X() / in.WindowSize.X() * math.Pi * 2
		pitch -= rotate.Y() / in.WindowSize.Y() * math.Pi
		transform.Rotation = mgl32.QuatRotate(yaw, common.AxisY).Mul(mgl32.QuatRotate(pitch, common.AxisX)).Normalize()
	}

	if in.Keys == nil {
		return
	}
	var dir mgl32.Vec3
	if in.Keys.Pressed(f.keyForward) {
		dir = dir.Add(transform.Forward())
	}
	if in.Keys.Pressed(f.keyBackward) {
		dir = dir.Add(transform.Back())
	}
	if in.Keys.Pressed(f.keyLeft) {
		dir = dir.Add(transform.Left())
	}
	if in.Keys.Pressed(f.keyRight) {
		dir = dir.Add(transform.Right())
	}
	if in.Keys.Pressed(f.keyUp) {
		dir = dir.Add(transform.Up())
	}
	if in.Keys.Pressed(f.keyDown) {
		dir = dir.Sub(transform.Up())
	}
	step := common.NormalizeOrZero(dir).Mul(f.speed * f.moveSensitivity * in.DeltaTime)
	transform.Translation = transform.Translation.Add(step)
}
