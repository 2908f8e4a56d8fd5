package camera

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-cameras/common"
	"github.com/go-gl/mathgl/mgl32"
)

// ID identifies a camera. IDs are never reused within a process.
type ID uint64

func (id ID) String() string { return fmt.Sprintf("camera_%d", uint64(id)) }

// cameraCount is an atomic counter used to generate unique camera IDs.
var cameraCount atomic.Uint64

// FramingMargin scales the bounds diagonal to get the framing distance.
const FramingMargin float32 = 1.3

type cameraImpl struct {
	mu *sync.Mutex

	id ID

	transform  Transform
	projection Projection
	saved      Projection

	viewport *common.Rect
	window   common.WindowID
	order    int

	mode  Mode
	orbit *OrbitController
	fly   *FlyController

	viewMatrix           mgl32.Mat4
	projectionMatrix     mgl32.Mat4
	viewProjectionMatrix mgl32.Mat4
}

// Camera is a controllable viewport camera. It owns a transform, an active projection and a saved
// projection to toggle to, and is driven by at most one of its orbit and fly controllers at a time.
//
// Matrix getters are safe to call from a render goroutine. Controllers returned by Orbit and Fly
// must only be touched from the goroutine that runs Update.
type Camera interface {
	// ID returns the camera's unique identifier.
	ID() ID

	// Transform returns the camera's world placement.
	//
	// Returns:
	//   - Transform: the current transform
	Transform() Transform

	// SetTransform places the camera. An initialized orbit controller keeps its parameters;
	// call Orbit().RequestUpdate() to snap back onto the orbit.
	//
	// Parameters:
	//   - t: the new transform
	SetTransform(t Transform)

	// Projection returns a copy of the active projection.
	//
	// Returns:
	//   - Projection: the active projection
	Projection() Projection

	// SavedProjection returns a copy of the projection SwitchProjection toggles to.
	//
	// Returns:
	//   - Projection: the saved projection
	SavedProjection() Projection

	// SetProjection replaces the active projection. Fly cameras only accept perspective.
	//
	// Parameters:
	//   - p: the new projection
	//
	// Returns:
	//   - error: ErrFlyOrthographic if p is orthographic in fly mode
	SetProjection(p Projection) error

	// SetAspect updates the aspect ratio of both the active and saved projection.
	//
	// Parameters:
	//   - aspect: width / height
	SetAspect(aspect float32)

	// Viewport returns the explicit viewport. The bool is false when the camera covers its whole window.
	//
	// Returns:
	//   - common.Rect: the viewport in logical window pixels
	//   - bool: whether an explicit viewport is set
	Viewport() (common.Rect, bool)

	// SetViewport sets an explicit viewport in logical window pixels.
	SetViewport(r common.Rect)

	// ClearViewport makes the camera cover its whole window.
	ClearViewport()

	// LogicalViewport resolves the viewport against its window size.
	//
	// Parameters:
	//   - windowSize: logical size of the render target window
	//
	// Returns:
	//   - common.Rect: the explicit viewport, or the whole window
	LogicalViewport(windowSize mgl32.Vec2) common.Rect

	// Window returns the render target window.
	Window() common.WindowID

	// SetWindow changes the render target window.
	SetWindow(w common.WindowID)

	// Order returns the render order. Higher orders draw later and win arbitration ties.
	Order() int

	// SetOrder changes the render order.
	SetOrder(order int)

	// Mode returns which controller currently drives the camera.
	Mode() Mode

	// Orbit returns the orbit controller, or nil.
	Orbit() *OrbitController

	// Fly returns the fly controller, or nil.
	Fly() *FlyController

	// ViewMatrix returns the world-to-camera matrix.
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the active projection matrix.
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns ProjectionMatrix * ViewMatrix.
	ViewProjectionMatrix() mgl32.Mat4

	// SwitchToOrbit hands control from fly to orbit.
	SwitchToOrbit() error

	// SwitchToFly hands control from orbit to fly.
	SwitchToFly() error

	// SwitchProjection toggles between the active and saved projection in orbit mode.
	SwitchProjection() error

	// ApplyViewpoint snaps the camera orientation to v.
	//
	// Parameters:
	//   - v: the target viewpoint
	//
	// Returns:
	//   - error: ErrNoControls if the camera has no controllers
	ApplyViewpoint(v Viewpoint) error

	// Viewpoint classifies the current orientation.
	//
	// Returns:
	//   - Viewpoint: a canonical viewpoint, or a user viewpoint
	Viewpoint() Viewpoint

	// Frame moves the camera so bounds fit in view.
	//
	// Parameters:
	//   - bounds: world-space bounds to frame
	//
	// Returns:
	//   - error: ErrDegenerateBounds or ErrNoControls; the camera is left unmodified
	Frame(bounds common.AABB) error

	// Update initializes the orbit controller if needed, runs the active controller when in.Active
	// is set, and recomputes the matrices. Should be called once per frame.
	//
	// Parameters:
	//   - in: this frame's input; nil runs initialization and pending updates only
	Update(in *FrameInput)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a camera with a default perspective projection at the origin looking down -Z.
// Attach controllers with WithOrbitController and WithFlyController. A camera with an orbit
// controller starts in orbit mode unless WithMode says otherwise; a camera without controllers is
// never driven by input.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:         &sync.Mutex{},
		id:         ID(cameraCount.Add(1)),
		transform:  IdentityTransform(),
		projection: NewPerspective(),
		mode:       ModeNone,
	}
	for _, option := range options {
		option(c)
	}
	if c.saved == nil {
		c.saved = defaultCounterpart(c.projection)
	}
	if (c.mode == ModeOrbit && c.orbit == nil) || (c.mode == ModeFly && c.fly == nil) {
		c.mode = ModeNone
	}
	if c.mode == ModeNone {
		switch {
		case c.orbit != nil:
			c.mode = ModeOrbit
		case c.fly != nil:
			c.mode = ModeFly
		}
	}
	if c.mode == ModeFly && c.projection.Kind() == KindOrthographic {
		if c.saved.Kind() == KindPerspective {
			c.projection, c.saved = c.saved, c.projection
		} else {
			c.projection = defaultCounterpart(c.projection)
		}
	}
	c.updateMatrices()
	return c
}

func (c *cameraImpl) ID() ID {
	return c.id
}

func (c *cameraImpl) Transform() Transform {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.transform
}

func (c *cameraImpl) SetTransform(t Transform) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transform = t
	c.updateMatrices()
}

func (c *cameraImpl) Projection() Projection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projection.Clone()
}

func (c *cameraImpl) SavedProjection() Projection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saved.Clone()
}

func (c *cameraImpl) SetProjection(p Projection) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode == ModeFly && p.Kind() == KindOrthographic {
		return ErrFlyOrthographic
	}
	c.projection = p.Clone()
	c.updateMatrices()
	return nil
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.projection.SetAspect(aspect)
	c.saved.SetAspect(aspect)
	c.updateMatrices()
}

func (c *cameraImpl) Viewport() (common.Rect, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.viewport == nil {
		return common.Rect{}, false
	}
	return *c.viewport, true
}

func (c *cameraImpl) SetViewport(r common.Rect) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.viewport = &r
}

func (c *cameraImpl) ClearViewport() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.viewport = nil
}

func (c *cameraImpl) LogicalViewport(windowSize mgl32.Vec2) common.Rect {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.viewport == nil {
		return common.Rect{Max: windowSize}
	}
	return *c.viewport
}

func (c *cameraImpl) Window() common.WindowID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.window
}

func (c *cameraImpl) SetWindow(w common.WindowID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.window = w
}

func (c *cameraImpl) Order() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order
}

func (c *cameraImpl) SetOrder(order int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order = order
}

func (c *cameraImpl) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

func (c *cameraImpl) Orbit() *OrbitController {
	return c.orbit
}

func (c *cameraImpl) Fly() *FlyController {
	return c.fly
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) ApplyViewpoint(v Viewpoint) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	yaw, pitch := v.YawPitch()
	switch c.mode {
	case ModeOrbit:
		c.orbit.SetYawPitch(yaw, pitch)
		c.orbit.initialize(&c.transform, c.projection, false)
		c.orbit.apply(&c.transform, c.projection)
	case ModeFly:
		c.transform.Rotation = common.QuatFromYXZ(yaw, -pitch, 0).Normalize()
	default:
		return ErrNoControls
	}
	c.updateMatrices()
	return nil
}

func (c *cameraImpl) Viewpoint() Viewpoint {
	c.mu.Lock()
	defer c.mu.Unlock()
	return ViewpointFromTransform(c.transform)
}

// FramingTarget returns where a camera should aim to frame bounds.
//
// Parameters:
//   - bounds: world-space bounds
//
// Returns:
//   - center: the bounds center
//   - distance: FramingMargin times the bounds diagonal, at least common.MinRadius
//   - err: ErrDegenerateBounds if bounds have no positive extent
func FramingTarget(bounds common.AABB) (center mgl32.Vec3, distance float32, err error) {
	if bounds.IsDegenerate() {
		return mgl32.Vec3{}, 0, ErrDegenerateBounds
	}
	return bounds.Center(), max(FramingMargin*bounds.Extent().Len(), common.MinRadius), nil
}

func (c *cameraImpl) Frame(bounds common.AABB) error {
	center, distance, err := FramingTarget(bounds)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.mode {
	case ModeOrbit:
		c.orbit.SetFocus(center)
		c.orbit.SetRadius(distance)
		c.orbit.initialize(&c.transform, c.projection, false)
		c.orbit.apply(&c.transform, c.projection)
	case ModeFly:
		c.transform.Translation = center.Add(c.transform.Back().Mul(distance))
	default:
		return ErrNoControls
	}
	c.updateMatrices()
	return nil
}

func (c *cameraImpl) Update(in *FrameInput) {
	c.mu.Lock()
	defer c.mu.Unlock()
	active := in != nil && in.Active
	if c.orbit != nil {
		c.orbit.initialize(&c.transform, c.projection, c.mode == ModeOrbit)
	}
	switch c.mode {
	case ModeOrbit:
		moved := active && c.orbit.update(c.id, in, c.transform, c.projection)
		if moved || c.orbit.forceUpdate {
			c.orbit.apply(&c.transform, c.projection)
			c.orbit.forceUpdate = false
		}
	case ModeFly:
		if active {
			c.fly.update(in, &c.transform)
		}
	}
	c.updateMatrices()
}

// updateMatrices recomputes the cached matrices. Caller must hold c.mu.
func (c *cameraImpl) updateMatrices() {
	c.viewMatrix = c.transform.ViewMatrix()
	c.projectionMatrix = c.projection.Matrix()
	c.viewProjectionMatrix = c.projectionMatrix.Mul4(c.viewMatrix)
}
