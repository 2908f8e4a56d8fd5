package raycast

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-cameras/common"
	"github.com/Carmen-Shannon/oxy-cameras/engine/camera"
	"github.com/Carmen-Shannon/oxy-cameras/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/unixpickle/model3d/model3d"
)

// nearVec3 compares component-wise with an absolute tolerance.
func nearVec3(a, b mgl32.Vec3, eps float32) bool {
	for i := range a {
		if d := a[i] - b[i]; d > eps || d < -eps {
			return false
		}
	}
	return true
}

func frontView(p camera.Projection) camera.View {
	return camera.View{
		Transform:  camera.LookAtTransform(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}, common.AxisY),
		Projection: p,
		Viewport:   common.NewRect(0, 0, 200, 100),
	}
}

func TestViewportRayCenter(t *testing.T) {
	ray, ok := ViewportRay(frontView(camera.NewPerspective()), mgl32.Vec2{100, 50})
	if !ok {
		t.Fatalf("expected a ray")
	}
	if !nearVec3(ray.Direction, mgl32.Vec3{0, 0, -1}, 1e-4) {
		t.Fatalf("center ray should look down -Z, got %v", ray.Direction)
	}
	if !nearVec3(ray.Origin, mgl32.Vec3{0, 0, 4.9}, 1e-3) {
		t.Fatalf("ray should start on the near plane, got %v", ray.Origin)
	}
}

func TestViewportRayCorners(t *testing.T) {
	ray, _ := ViewportRay(frontView(camera.NewPerspective()), mgl32.Vec2{0, 0})
	if ray.Direction.X() >= 0 || ray.Direction.Y() <= 0 {
		t.Fatalf("top-left cursor should point up and left, got %v", ray.Direction)
	}

	ortho := camera.NewOrthographic()
	ortho.Aspect = 2
	ray, ok := ViewportRay(frontView(ortho), mgl32.Vec2{200, 100})
	if !ok {
		t.Fatalf("expected an orthographic ray")
	}
	if !nearVec3(ray.Direction, mgl32.Vec3{0, 0, -1}, 1e-4) {
		t.Fatalf("orthographic rays are parallel, got %v", ray.Direction)
	}
	if !mgl32.FloatEqualThreshold(ray.Origin.X(), 1, 1e-4) || !mgl32.FloatEqualThreshold(ray.Origin.Y(), -0.5, 1e-4) {
		t.Fatalf("bottom-right ray origin should sit on the area corner, got %v", ray.Origin)
	}
}

func TestViewportRayOffsetViewport(t *testing.T) {
	v := frontView(camera.NewPerspective())
	v.Viewport = common.NewRect(300, 200, 200, 100)
	ray, ok := ViewportRay(v, mgl32.Vec2{400, 250})
	if !ok || !nearVec3(ray.Direction, mgl32.Vec3{0, 0, -1}, 1e-4) {
		t.Fatalf("cursor at the viewport center should give the center ray, got %v", ray.Direction)
	}
}

func TestViewportRayEmptyViewport(t *testing.T) {
	v := frontView(camera.NewPerspective())
	v.Viewport = common.Rect{}
	if _, ok := ViewportRay(v, mgl32.Vec2{}); ok {
		t.Fatalf("empty viewport should not produce a ray")
	}
}

func TestMeshRaycasterNearestHit(t *testing.T) {
	mesh := model3d.NewMeshRect(model3d.XYZ(-0.5, -0.5, -0.5), model3d.XYZ(0.5, 0.5, 0.5))
	r := NewMeshRaycaster(mesh)
	hit, ok := r.NearestHit(common.Ray{Origin: mgl32.Vec3{0.1, 0.2, 5}, Direction: mgl32.Vec3{0, 0, -1}})
	if !ok || !nearVec3(hit, mgl32.Vec3{0.1, 0.2, 0.5}, 1e-4) {
		t.Fatalf("expected the front face, got %v %v", hit, ok)
	}
	if _, ok := r.NearestHit(common.Ray{Origin: mgl32.Vec3{0.1, 0.2, 5}, Direction: mgl32.Vec3{0, 0, 1}}); ok {
		t.Fatalf("ray pointing away should miss")
	}
	limited := NewMeshRaycaster(mesh, WithMaxDistance(2))
	if _, ok := limited.NearestHit(common.Ray{Origin: mgl32.Vec3{0.1, 0.2, 5}, Direction: mgl32.Vec3{0, 0, -1}}); ok {
		t.Fatalf("hit beyond the max distance should be ignored")
	}
}

func TestEmptyRaycaster(t *testing.T) {
	for _, r := range []*ColliderRaycaster{NewColliderRaycaster(nil), NewMeshRaycaster(model3d.NewMesh()), NewMeshRaycaster(nil)} {
		if _, ok := r.NearestHit(common.Ray{Direction: mgl32.Vec3{0, 0, -1}}); ok {
			t.Fatalf("empty raycaster should never hit")
		}
	}
}

func TestFromGraph(t *testing.T) {
	box := &common.AABB{Min: mgl32.Vec3{-1, -1, -1}, Max: mgl32.Vec3{1, 1, 1}}
	flat := &common.AABB{Min: mgl32.Vec3{-5, -5, 0}, Max: mgl32.Vec3{5, 5, 0}}
	g := scene.NewRegistry()
	child := g.Add(scene.Node{WorldTransform: mgl32.Translate3D(0, 0, -10), Bounds: box})
	parent := g.Add(scene.Node{WorldTransform: mgl32.Ident4(), Bounds: flat, Children: []scene.NodeID{child}})

	down := common.Ray{Origin: mgl32.Vec3{0.1, 0.2, 5}, Direction: mgl32.Vec3{0, 0, -1}}
	if _, ok := FromGraph(g, []scene.NodeID{parent}, false).NearestHit(down); ok {
		t.Fatalf("zero-volume bounds should not be pickable")
	}
	hit, ok := FromGraph(g, []scene.NodeID{parent}, true).NearestHit(down)
	if !ok || !nearVec3(hit, mgl32.Vec3{0.1, 0.2, -9}, 1e-4) {
		t.Fatalf("expected the child box front face, got %v %v", hit, ok)
	}
}

func TestPicksWithCamera(t *testing.T) {
	mesh := model3d.NewMeshRect(model3d.XYZ(-0.5, -0.5, -0.5), model3d.XYZ(0.5, 0.5, 0.5))
	r := NewMeshRaycaster(mesh)
	view := frontView(camera.NewPerspective())
	ray, ok := r.ViewportToWorldRay(view, mgl32.Vec2{103, 48})
	if !ok {
		t.Fatalf("expected a ray")
	}
	hit, ok := r.NearestHit(ray)
	if !ok || !mgl32.FloatEqualThreshold(hit.Z(), 0.5, 1e-3) {
		t.Fatalf("expected a hit on the front face, got %v %v", hit, ok)
	}
}
