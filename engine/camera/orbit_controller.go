package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-cameras/common"
	"github.com/Carmen-Shannon/oxy-cameras/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// zoomStep is the fraction of the radius one scroll line moves the camera.
	zoomStep float32 = 0.2
	// nearZero guards divisions by direction cosines and lengths.
	nearZero float32 = 1e-6
)

// orbitParams is the spherical placement of an initialized orbit controller.
type orbitParams struct {
	yaw    float32
	pitch  float32
	radius float32
}

// pendingOrbit holds values set before the controller was initialized.
// They override the values derived from the transform on initialization.
type pendingOrbit struct {
	yaw    *float32
	pitch  *float32
	radius *float32
}

// OrbitController rotates, pans and zooms a camera around a focus point.
// Until the first update it is uninitialized and its yaw, pitch and radius are unknown; they are
// then derived from the camera's transform relative to the focus.
type OrbitController struct {
	focus mgl32.Vec3

	pending pendingOrbit
	params  *orbitParams

	orbitSensitivity float32
	panSensitivity   float32
	zoomSensitivity  float32

	bindings input.OrbitBindings

	zoomToMousePosition bool
	autoDepth           bool
	wrapCursor          bool

	isUpsideDown bool
	forceUpdate  bool
}

// NewOrbitController creates an uninitialized orbit controller. Defaults: focus at the origin,
// all sensitivities 1, orbit on the middle button, pan on Shift + middle, zoom-to-cursor,
// auto-depth and cursor wrap enabled.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - *OrbitController: the new controller
func NewOrbitController(options ...OrbitControllerOption) *OrbitController {
	o := &OrbitController{
		orbitSensitivity:    1,
		panSensitivity:      1,
		zoomSensitivity:     1,
		bindings:            input.DefaultOrbitBindings(),
		zoomToMousePosition: true,
		autoDepth:           true,
		wrapCursor:          true,
	}
	for _, option := range options {
		option(o)
	}
	return o
}

// Focus returns the point the camera orbits around.
func (o *OrbitController) Focus() mgl32.Vec3 { return o.focus }

// SetFocus moves the orbit focus. Call RequestUpdate for the transform to follow without input.
func (o *OrbitController) SetFocus(focus mgl32.Vec3) { o.focus = focus }

// Initialized reports whether yaw, pitch and radius are known.
func (o *OrbitController) Initialized() bool { return o.params != nil }

// Yaw returns the horizontal angle in radians. The bool is false while uninitialized.
func (o *OrbitController) Yaw() (float32, bool) {
	if o.params == nil {
		return 0, false
	}
	return o.params.yaw, true
}

// Pitch returns the vertical angle in radians. The bool is false while uninitialized.
func (o *OrbitController) Pitch() (float32, bool) {
	if o.params == nil {
		return 0, false
	}
	return o.params.pitch, true
}

// Radius returns the focus distance (orthographic scale). The bool is false while uninitialized.
func (o *OrbitController) Radius() (float32, bool) {
	if o.params == nil {
		return 0, false
	}
	return o.params.radius, true
}

// SetYawPitch sets both orbit angles. Before initialization the values are kept and override
// the angles derived from the transform.
//
// Parameters:
//   - yaw: horizontal angle in radians
//   - pitch: vertical angle in radians
func (o *OrbitController) SetYawPitch(yaw, pitch float32) {
	if o.params == nil {
		o.pending.yaw, o.pending.pitch = &yaw, &pitch
		return
	}
	o.params.yaw, o.params.pitch = yaw, pitch
}

// SetRadius sets the orbit radius, clamped to at least common.MinRadius. Before initialization the
// value is kept and overrides the derived radius.
//
// Parameters:
//   - radius: the new radius
func (o *OrbitController) SetRadius(radius float32) {
	radius = max(radius, common.MinRadius)
	if o.params == nil {
		o.pending.radius = &radius
		return
	}
	o.params.radius = radius
}

func (o *OrbitController) OrbitSensitivity() float32 { return o.orbitSensitivity }
func (o *OrbitController) PanSensitivity() float32   { return o.panSensitivity }
func (o *OrbitController) ZoomSensitivity() float32  { return o.zoomSensitivity }

// Bindings returns the orbit and pan gestures.
func (o *OrbitController) Bindings() input.OrbitBindings { return o.bindings }

func (o *OrbitController) ZoomToMousePosition() bool { return o.zoomToMousePosition }
func (o *OrbitController) AutoDepth() bool           { return o.autoDepth }

// WrapCursor reports whether the cursor is wrapped at viewport edges while dragging.
func (o *OrbitController) WrapCursor() bool { return o.wrapCursor }

// IsUpsideDown reports whether the camera's up vector pointed below the horizon when the orbit
// gesture last started or ended. Horizontal orbit motion is inverted while it is set.
func (o *OrbitController) IsUpsideDown() bool { return o.isUpsideDown }

// RequestUpdate makes the next update rewrite the transform even without input.
func (o *OrbitController) RequestUpdate() { o.forceUpdate = true }

// initialize derives the orbit parameters from transform once. Pending values override the
// derived ones. When apply is set the transform is rewritten from the new parameters.
//
// Parameters:
//   - transform: the camera transform
//   - projection: the camera projection
//   - apply: whether to write the orbit placement back to transform
//
// Returns:
//   - bool: true if this call initialized the controller
func (o *OrbitController) initialize(transform *Transform, projection Projection, apply bool) bool {
	if o.params != nil {
		return false
	}
	yaw, pitch, radius := FromTranslationAndFocus(transform.Translation, o.focus)
	if o.pending.yaw != nil {
		yaw = *o.pending.yaw
	}
	if o.pending.pitch != nil {
		pitch = *o.pending.pitch
	}
	if o.pending.radius != nil {
		radius = *o.pending.radius
	}
	o.pending = pendingOrbit{}
	o.params = &orbitParams{yaw: yaw, pitch: pitch, radius: radius}
	if apply {
		o.apply(transform, projection)
	}
	return true
}

// apply writes the orbit placement to transform.
func (o *OrbitController) apply(transform *Transform, projection Projection) {
	UpdateOrbitTransform(o.params.yaw, o.params.pitch, o.params.radius, o.focus, transform, projection)
}

// update consumes one frame of input. The controller must be initialized.
//
// Parameters:
//   - id: owning camera, keys the pivot table
//   - in: this frame's input
//   - transform: the camera transform before this frame's motion
//   - projection: the camera projection
//
// Returns:
//   - bool: true if yaw, pitch, radius or focus changed
func (o *OrbitController) update(id ID, in *FrameInput, transform Transform, projection Projection) bool {
	d := in.Deltas
	// Without a sampled pivot the camera turns and zooms about its focus.
	pivot, ok := in.pivot(id)
	if !ok {
		pivot = o.focus
	}
	if (o.autoDepth || o.zoomToMousePosition) && (d.DragJustPressed || d.HasScroll()) {
		if p, ok := o.samplePivot(in, transform, projection); ok {
			pivot = p
		} else {
			pivot = o.focus
		}
		in.setPivot(id, pivot)
	}

	orbit := d.Orbit.Mul(o.orbitSensitivity)
	pan := d.Pan.Mul(o.panSensitivity)
	scroll := (d.ScrollLine + d.ScrollPixel) * o.zoomSensitivity

	if d.OrbitButtonChanged {
		o.isUpsideDown = transform.Up().Y() <= 0
	}

	moved := false
	if orbit.Dot(orbit) > 0 && in.WindowSize.X() > 0 && in.WindowSize.Y() > 0 {
		deltaYaw := orbit.X() / in.WindowSize.X() * math.Pi * 2
		deltaPitch := orbit.Y() / in.WindowSize.Y() * math.Pi
		if o.isUpsideDown {
			deltaYaw = -deltaYaw
		}
		before := *o.params
		o.params.yaw -= deltaYaw
		o.params.pitch += deltaPitch

		if o.autoDepth {
			// Rotate the camera about the pivot instead of the focus, then re-derive the focus
			// along the new view direction at the unchanged radius.
			t := TransformFromOrbit(before.yaw, before.pitch, before.radius, o.focus)
			yawRot := mgl32.QuatRotate(-deltaYaw, common.AxisY)
			pitchRot := mgl32.QuatRotate(-deltaPitch, common.AxisX)
			pitchGlobal := t.Rotation.Mul(pitchRot).Mul(t.Rotation.Inverse())
			t.RotateAround(pivot, yawRot.Mul(pitchGlobal))
			o.focus = t.Translation.Add(t.Forward().Mul(o.params.radius))
		}
		moved = true
	}

	if pan.Dot(pan) > 0 && in.ViewportSize.X() > 0 && in.ViewportSize.Y() > 0 {
		multiplier := float32(1)
		switch p := projection.(type) {
		case *PerspectiveProjection:
			pan = mgl32.Vec2{
				pan.X() * p.Fov * p.Aspect / in.ViewportSize.X(),
				pan.Y() * p.Fov / in.ViewportSize.Y(),
			}
			multiplier = o.params.radius
		case *OrthographicProjection:
			w, h := p.Area()
			pan = mgl32.Vec2{pan.X() * w / in.ViewportSize.X(), pan.Y() * h / in.ViewportSize.Y()}
		}
		offset := transform.Right().Mul(-pan.X()).Add(transform.Up().Mul(pan.Y()))
		o.focus = o.focus.Add(offset.Mul(multiplier))
		moved = true
	}

	if scroll != 0 {
		oldRadius := o.params.radius
		newRadius := max(oldRadius-scroll*oldRadius*zoomStep, common.MinRadius)
		delta := newRadius - oldRadius
		o.params.radius = newRadius

		if o.zoomToMousePosition {
			o.zoomTowardPivot(pivot, delta, oldRadius, newRadius, transform, projection)
		}
		moved = true
	}
	return moved
}

// zoomTowardPivot shifts the focus so the point under the cursor stays put while zooming.
func (o *OrbitController) zoomTowardPivot(pivot mgl32.Vec3, delta, oldRadius, newRadius float32, transform Transform, projection Projection) {
	switch projection.(type) {
	case *PerspectiveProjection:
		toPivot := pivot.Sub(transform.Translation)
		if toPivot.Len() <= nearZero {
			return
		}
		dir := toPivot.Normalize()
		factor := transform.Forward().Dot(dir)
		if float32(math.Abs(float64(factor))) <= nearZero {
			return
		}
		position := transform.Translation.Add(dir.Mul(-delta / factor))
		o.focus = position.Add(transform.Forward().Mul(newRadius))
	case *OrthographicProjection:
		// Only the component of the focus-to-pivot offset in the view plane moves the focus.
		local := transform.Rotation.Inverse().Rotate(pivot.Sub(o.focus))
		local[2] = 0
		planar := transform.Rotation.Rotate(local)
		o.focus = o.focus.Add(planar.Mul(1 - newRadius/oldRadius))
	}
}

// samplePivot finds the world point under the cursor. With auto-depth enabled a surface hit also
// moves the focus onto the view axis at the hit depth.
//
// Returns:
//   - mgl32.Vec3: the pivot
//   - bool: false if no pivot could be determined
func (o *OrbitController) samplePivot(in *FrameInput, transform Transform, projection Projection) (mgl32.Vec3, bool) {
	if in.Raycaster == nil || !in.HasCursor {
		return mgl32.Vec3{}, false
	}
	ray, ok := in.Raycaster.ViewportToWorldRay(View{Transform: transform, Projection: projection, Viewport: in.Viewport}, in.Cursor)
	if !ok {
		return mgl32.Vec3{}, false
	}

	if hit, ok := in.Raycaster.NearestHit(ray); ok {
		if o.autoDepth {
			camT := transform
			_, ortho := projection.(*OrthographicProjection)
			if ortho {
				camT = TransformFromOrbit(o.params.yaw, o.params.pitch, o.params.radius, o.focus)
			}
			toHit := hit.Sub(camT.Translation)
			radius := common.MinRadius
			if dist := toHit.Len(); dist > nearZero {
				radius = max(dist*camT.Forward().Dot(toHit.Mul(1/dist)), common.MinRadius)
			}
			if !ortho {
				o.params.radius = radius
			}
			o.focus = camT.Translation.Add(camT.Forward().Mul(radius))
		}
		return hit, true
	}

	switch p := projection.(type) {
	case *PerspectiveProjection:
		factor := transform.Forward().Dot(ray.Direction)
		if float32(math.Abs(float64(factor))) < nearZero {
			return mgl32.Vec3{}, false
		}
		return transform.Translation.Add(ray.Direction.Mul(o.params.radius / factor)), true
	case *OrthographicProjection:
		return ray.At((p.Far - p.Near) / 2), true
	}
	return mgl32.Vec3{}, false
}
