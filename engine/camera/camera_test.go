package camera

import (
	"errors"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-cameras/common"
	"github.com/Carmen-Shannon/oxy-cameras/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

func newOrbitCamera(eye mgl32.Vec3, options ...OrbitControllerOption) Camera {
	return NewCamera(
		WithLookAt(eye, mgl32.Vec3{}),
		WithOrbitController(NewOrbitController(options...)),
		WithFlyController(nil),
	)
}

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()
	if c.Mode() != ModeNone {
		t.Fatalf("camera without controllers should have mode none, got %s", c.Mode())
	}
	if c.Projection().Kind() != KindPerspective || c.SavedProjection().Kind() != KindOrthographic {
		t.Fatalf("unexpected default projections %s / %s", c.Projection().Kind(), c.SavedProjection().Kind())
	}
	if _, ok := c.Viewport(); ok {
		t.Fatalf("default camera should cover its whole window")
	}
	vp := c.LogicalViewport(mgl32.Vec2{800, 600})
	if vp.Max != (mgl32.Vec2{800, 600}) || vp.Min != (mgl32.Vec2{}) {
		t.Fatalf("unexpected logical viewport %v", vp)
	}
	if NewCamera().ID() == c.ID() {
		t.Fatalf("camera IDs should be unique")
	}
}

func TestNewCameraModeSelection(t *testing.T) {
	c := NewCamera(WithOrbitController(nil), WithFlyController(nil))
	if c.Mode() != ModeOrbit {
		t.Fatalf("expected orbit mode by default, got %s", c.Mode())
	}
	c = NewCamera(WithFlyController(nil), WithMode(ModeOrbit))
	if c.Mode() != ModeFly {
		t.Fatalf("orbit mode without an orbit controller should fall back to fly, got %s", c.Mode())
	}
	c = NewCamera(WithFlyController(nil), WithProjection(NewOrthographic()))
	if c.Projection().Kind() != KindPerspective {
		t.Fatalf("fly camera must start perspective")
	}
}

func TestOrbitLazyInitialization(t *testing.T) {
	c := newOrbitCamera(mgl32.Vec3{0, 1.5, 5})
	if c.Orbit().Initialized() {
		t.Fatalf("orbit should be uninitialized before the first update")
	}
	c.Update(nil)
	r, ok := c.Orbit().Radius()
	if !ok {
		t.Fatalf("orbit should be initialized after update")
	}
	if !near(r, float32(math.Sqrt(27.25)), 1e-3) {
		t.Fatalf("expected radius 5.22, got %v", r)
	}
}

func TestOrbitPresetOverridesDerivedValues(t *testing.T) {
	c := newOrbitCamera(mgl32.Vec3{0, 0, 5}, WithInitialRadius(2), WithInitialYawPitch(0.5, 0.25))
	c.Update(nil)
	yaw, _ := c.Orbit().Yaw()
	pitch, _ := c.Orbit().Pitch()
	r, _ := c.Orbit().Radius()
	if yaw != 0.5 || pitch != 0.25 || r != 2 {
		t.Fatalf("presets not applied: yaw %v pitch %v radius %v", yaw, pitch, r)
	}
	want := TransformFromOrbit(0.5, 0.25, 2, mgl32.Vec3{})
	if !nearVec3(c.Transform().Translation, want.Translation, 1e-5) {
		t.Fatalf("transform not rewritten from presets: %v", c.Transform().Translation)
	}
}

func TestSwitchProjectionScenario(t *testing.T) {
	c := newOrbitCamera(mgl32.Vec3{0, 1.5, 5})
	original := *c.Projection().(*PerspectiveProjection)

	if err := c.SwitchProjection(); err != nil {
		t.Fatalf("switch projection: %v", err)
	}
	ortho, ok := c.Projection().(*OrthographicProjection)
	if !ok {
		t.Fatalf("expected orthographic projection, got %s", c.Projection().Kind())
	}
	if !near(ortho.Scale, 5.22, 1e-2) {
		t.Fatalf("expected scale equal to radius 5.22, got %v", ortho.Scale)
	}

	if err := c.SwitchProjection(); err != nil {
		t.Fatalf("switch projection back: %v", err)
	}
	persp, ok := c.Projection().(*PerspectiveProjection)
	if !ok {
		t.Fatalf("expected perspective projection back")
	}
	if *persp != original {
		t.Fatalf("perspective not restored exactly: %+v vs %+v", *persp, original)
	}
}

func TestModeExclusivity(t *testing.T) {
	c := newOrbitCamera(mgl32.Vec3{0, 2, 6})
	c.Update(nil)
	steps := []func() error{c.SwitchToFly, c.SwitchToFly, c.SwitchToOrbit, c.SwitchProjection, c.SwitchToFly, c.SwitchToOrbit, c.SwitchToOrbit}
	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if m := c.Mode(); m != ModeOrbit && m != ModeFly {
			t.Fatalf("step %d: camera left in mode %s", i, m)
		}
	}
}

func TestSwitchToFlyForcesPerspective(t *testing.T) {
	c := newOrbitCamera(mgl32.Vec3{0, 0, 5})
	if err := c.SwitchProjection(); err != nil {
		t.Fatalf("switch projection: %v", err)
	}
	if err := c.SwitchToFly(); err != nil {
		t.Fatalf("switch to fly: %v", err)
	}
	if c.Mode() != ModeFly || c.Projection().Kind() != KindPerspective {
		t.Fatalf("expected perspective fly, got %s %s", c.Mode(), c.Projection().Kind())
	}
	// Ignored in fly mode.
	if err := c.SwitchProjection(); err != nil {
		t.Fatalf("switch projection in fly mode: %v", err)
	}
	if c.Projection().Kind() != KindPerspective {
		t.Fatalf("projection changed in fly mode")
	}
	if err := c.SetProjection(NewOrthographic()); !errors.Is(err, ErrFlyOrthographic) {
		t.Fatalf("expected ErrFlyOrthographic, got %v", err)
	}
}

func TestSwitchToOrbitRequiresInitialization(t *testing.T) {
	c := NewCamera(
		WithLookAt(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}),
		WithOrbitController(nil),
		WithFlyController(nil),
		WithMode(ModeFly),
	)
	if err := c.SwitchToOrbit(); !errors.Is(err, ErrOrbitNotInitialized) {
		t.Fatalf("expected ErrOrbitNotInitialized, got %v", err)
	}
	if c.Mode() != ModeFly {
		t.Fatalf("failed switch should stay in fly mode")
	}

	c.Update(nil)
	if !nearVec3(c.Transform().Translation, mgl32.Vec3{0, 0, 5}, 1e-6) {
		t.Fatalf("initializing orbit in fly mode moved the camera")
	}
	if err := c.SwitchToOrbit(); err != nil {
		t.Fatalf("switch to orbit: %v", err)
	}
	if !nearVec3(c.Orbit().Focus(), mgl32.Vec3{}, 1e-4) {
		t.Fatalf("expected focus one radius ahead, got %v", c.Orbit().Focus())
	}
}

func TestSwitchToOrbitKeepsPlacement(t *testing.T) {
	c := newOrbitCamera(mgl32.Vec3{0, 0, 5})
	c.Update(nil)
	if err := c.SwitchToFly(); err != nil {
		t.Fatalf("switch to fly: %v", err)
	}
	fly := c.Transform()
	fly.Rotation = common.QuatFromYXZ(0.4, -0.3, 0)
	fly.Translation = mgl32.Vec3{2, 1, 3}
	c.SetTransform(fly)

	if err := c.SwitchToOrbit(); err != nil {
		t.Fatalf("switch to orbit: %v", err)
	}
	c.Orbit().RequestUpdate()
	c.Update(nil)
	got := c.Transform()
	if !nearVec3(got.Translation, fly.Translation, 1e-3) || !nearVec3(got.Forward(), fly.Forward(), 1e-3) {
		t.Fatalf("orbit handoff moved the camera: %v -> %v", fly, got)
	}
}

func TestMissingControllerErrors(t *testing.T) {
	c := NewCamera(WithFlyController(nil))
	if err := c.SwitchToOrbit(); !errors.Is(err, ErrNoOrbitController) {
		t.Fatalf("expected ErrNoOrbitController, got %v", err)
	}
	c = NewCamera(WithOrbitController(nil))
	if err := c.SwitchToFly(); !errors.Is(err, ErrNoFlyController) {
		t.Fatalf("expected ErrNoFlyController, got %v", err)
	}
	if err := NewCamera().ApplyViewpoint(Top); !errors.Is(err, ErrNoControls) {
		t.Fatalf("expected ErrNoControls, got %v", err)
	}
}

func TestFrameCubeOrbit(t *testing.T) {
	c := newOrbitCamera(mgl32.Vec3{3, 3, 3})
	cube := common.AABB{Min: mgl32.Vec3{-0.5, 0, -0.5}, Max: mgl32.Vec3{0.5, 1, 0.5}}
	if err := c.Frame(cube); err != nil {
		t.Fatalf("frame: %v", err)
	}
	if !nearVec3(c.Orbit().Focus(), mgl32.Vec3{0, 0.5, 0}, 1e-5) {
		t.Fatalf("expected focus (0, 0.5, 0), got %v", c.Orbit().Focus())
	}
	r, _ := c.Orbit().Radius()
	if !near(r, 2.25, 1e-2) {
		t.Fatalf("expected radius 2.25, got %v", r)
	}
	dist := c.Transform().Translation.Sub(c.Orbit().Focus()).Len()
	if !near(dist, r, 1e-3) {
		t.Fatalf("camera not placed at radius: %v", dist)
	}
}

func TestFrameDegenerateLeavesCamera(t *testing.T) {
	c := newOrbitCamera(mgl32.Vec3{3, 3, 3})
	before := c.Transform()
	if err := c.Frame(common.EmptyAABB()); !errors.Is(err, ErrDegenerateBounds) {
		t.Fatalf("expected ErrDegenerateBounds, got %v", err)
	}
	if c.Transform() != before || c.Orbit().Initialized() {
		t.Fatalf("degenerate frame modified the camera")
	}
}

func TestFrameFlyKeepsOrientation(t *testing.T) {
	c := NewCamera(WithFlyController(nil), WithTransform(Transform{Rotation: common.QuatFromYXZ(0.5, 0.2, 0)}))
	before := c.Transform()
	cube := common.AABB{Min: mgl32.Vec3{-1, -1, -1}, Max: mgl32.Vec3{1, 1, 1}}
	if err := c.Frame(cube); err != nil {
		t.Fatalf("frame: %v", err)
	}
	after := c.Transform()
	if after.Rotation != before.Rotation {
		t.Fatalf("frame reoriented a fly camera")
	}
	want := before.Back().Mul(1.3 * float32(math.Sqrt(12)))
	if !nearVec3(after.Translation, want, 1e-4) {
		t.Fatalf("expected %v, got %v", want, after.Translation)
	}
}

func TestViewpointFrontOnFlyCamera(t *testing.T) {
	for _, q := range []mgl32.Quat{common.QuatFromYXZ(1, 0.4, 0.2), common.QuatFromYXZ(-2.5, -1, 0), mgl32.QuatIdent()} {
		c := NewCamera(WithFlyController(nil), WithTransform(Transform{Translation: mgl32.Vec3{1, 2, 3}, Rotation: q}))
		if err := c.ApplyViewpoint(Front); err != nil {
			t.Fatalf("apply viewpoint: %v", err)
		}
		yaw, pitch, roll := common.EulerYXZ(c.Transform().Rotation)
		if !near(yaw, 0, 1e-5) || !near(pitch, 0, 1e-5) || !near(roll, 0, 1e-5) {
			t.Fatalf("expected identity rotation, got yaw %v pitch %v roll %v", yaw, pitch, roll)
		}
		if c.Viewpoint() != Front {
			t.Fatalf("expected front classification, got %s", c.Viewpoint())
		}
	}
}

func TestViewpointOnOrbitCamera(t *testing.T) {
	c := newOrbitCamera(mgl32.Vec3{0, 0, 4})
	for _, v := range []Viewpoint{Top, Bottom, Front, Back, Left, Right} {
		if err := c.ApplyViewpoint(v); err != nil {
			t.Fatalf("apply %s: %v", v, err)
		}
		if got := c.Viewpoint(); got != v {
			t.Fatalf("applied %s, classified as %s", v, got)
		}
		if d := c.Transform().Translation.Len(); !near(d, 4, 1e-3) {
			t.Fatalf("%s changed the orbit radius: %v", v, d)
		}
	}
}

func TestSetAspectUpdatesBothProjections(t *testing.T) {
	c := NewCamera(WithOrbitController(nil))
	c.SetAspect(2)
	if c.Projection().(*PerspectiveProjection).Aspect != 2 {
		t.Fatalf("active aspect not updated")
	}
	if c.SavedProjection().(*OrthographicProjection).Aspect != 2 {
		t.Fatalf("saved aspect not updated")
	}
}

func TestMatricesFollowTransform(t *testing.T) {
	c := newOrbitCamera(mgl32.Vec3{0, 0, 5})
	c.Update(nil)
	clip := c.ViewProjectionMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	ndc := clip.Vec3().Mul(1 / clip.W())
	if !near(ndc.X(), 0, 1e-5) || !near(ndc.Y(), 0, 1e-5) {
		t.Fatalf("focus should project to the viewport center, got %v", ndc)
	}
}

func TestForceUpdateUsesMutatedParameters(t *testing.T) {
	c := newOrbitCamera(mgl32.Vec3{0, 0, 5})
	c.Update(nil)
	c.Orbit().SetFocus(mgl32.Vec3{1, 0, 0})
	c.Update(nil)
	if !nearVec3(c.Transform().Translation, mgl32.Vec3{0, 0, 5}, 1e-5) {
		t.Fatalf("transform moved without a requested update")
	}
	c.Orbit().RequestUpdate()
	c.Update(nil)
	if !nearVec3(c.Transform().Translation, mgl32.Vec3{1, 0, 5}, 1e-4) {
		t.Fatalf("expected camera at (1, 0, 5), got %v", c.Transform().Translation)
	}
}

func TestInputIgnoredWhenInactive(t *testing.T) {
	c := newOrbitCamera(mgl32.Vec3{0, 0, 5})
	c.Update(nil)
	before := c.Transform()
	c.Update(&FrameInput{Deltas: input.Deltas{Orbit: mgl32.Vec2{50, 0}, ScrollLine: 1}, WindowSize: mgl32.Vec2{100, 100}})
	if c.Transform() != before {
		t.Fatalf("inactive camera moved")
	}
}
