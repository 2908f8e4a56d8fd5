// Package raycast is a reference implementation of the camera Raycaster collaborator: cursor
// rays are unprojected through the camera matrices and intersected with model3d colliders.
package raycast

import (
	"math"

	"github.com/Carmen-Shannon/oxy-cameras/common"
	"github.com/Carmen-Shannon/oxy-cameras/engine/camera"
	"github.com/Carmen-Shannon/oxy-cameras/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/unixpickle/model3d/model3d"
)

// ViewportRay unprojects a cursor position into a world-space ray. The ray starts on the near
// plane and points at the far plane, so it works for perspective and orthographic projections.
//
// Parameters:
//   - view: camera placement, projection and logical viewport
//   - cursor: cursor position in logical window pixels, top-left origin
//
// Returns:
//   - common.Ray: the world ray with a normalized direction
//   - bool: false if the viewport is empty or the camera matrices are singular
func ViewportRay(view camera.View, cursor mgl32.Vec2) (common.Ray, bool) {
	size := view.Viewport.Size()
	if size.X() <= 0 || size.Y() <= 0 || view.Projection == nil {
		return common.Ray{}, false
	}
	viewProj := view.Projection.Matrix().Mul4(view.Transform.ViewMatrix())
	if viewProj.Det() == 0 {
		return common.Ray{}, false
	}
	inv := viewProj.Inv()

	local := cursor.Sub(view.Viewport.Min)
	ndcX := local.X()/size.X()*2 - 1
	ndcY := 1 - local.Y()/size.Y()*2

	near := unproject(inv, ndcX, ndcY, -1)
	far := unproject(inv, ndcX, ndcY, 1)
	dir := far.Sub(near)
	if dir.Len() == 0 {
		return common.Ray{}, false
	}
	return common.Ray{Origin: near, Direction: dir.Normalize()}, true
}

func unproject(inv mgl32.Mat4, x, y, z float32) mgl32.Vec3 {
	p := inv.Mul4x1(mgl32.Vec4{x, y, z, 1})
	return p.Vec3().Mul(1 / p.W())
}

// ColliderRaycaster answers cursor-ray queries against a model3d collider.
type ColliderRaycaster struct {
	collider    model3d.Collider
	maxDistance float64
}

var _ camera.Raycaster = &ColliderRaycaster{}

// NewColliderRaycaster creates a raycaster over c. A nil collider never reports a hit.
//
// Parameters:
//   - c: the scene collider
//   - options: variadic list of RaycasterOption functions
//
// Returns:
//   - *ColliderRaycaster: the raycaster
func NewColliderRaycaster(c model3d.Collider, options ...RaycasterOption) *ColliderRaycaster {
	r := &ColliderRaycaster{
		collider:    c,
		maxDistance: math.Inf(1),
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// NewMeshRaycaster creates a raycaster over the triangles of mesh.
func NewMeshRaycaster(mesh *model3d.Mesh, options ...RaycasterOption) *ColliderRaycaster {
	if mesh == nil || len(mesh.TriangleSlice()) == 0 {
		return NewColliderRaycaster(nil, options...)
	}
	return NewColliderRaycaster(model3d.MeshToCollider(mesh), options...)
}

// FromGraph builds a raycaster whose surfaces are the world-space bounding boxes of the named
// entities and, with includeChildren, their descendants. Entities without bounds or with zero
// volume are skipped.
//
// Parameters:
//   - g: the scene graph
//   - ids: the entities to make pickable
//   - includeChildren: whether to descend into child lists
//   - options: variadic list of RaycasterOption functions
//
// Returns:
//   - *ColliderRaycaster: the raycaster
func FromGraph(g scene.Graph, ids []scene.NodeID, includeChildren bool, options ...RaycasterOption) *ColliderRaycaster {
	mesh := model3d.NewMesh()
	seen := make(map[scene.NodeID]struct{}, len(ids))
	var visit func(id scene.NodeID)
	visit = func(id scene.NodeID) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		n, ok := g.Node(id)
		if !ok {
			return
		}
		if b, ok := n.WorldBounds(); ok && hasVolume(b) {
			mesh.AddMesh(model3d.NewMeshRect(toCoord(b.Min), toCoord(b.Max)))
		}
		if includeChildren {
			for _, c := range n.Children {
				visit(c)
			}
		}
	}
	for _, id := range ids {
		visit(id)
	}
	return NewMeshRaycaster(mesh, options...)
}

// ViewportToWorldRay implements camera.Raycaster using ViewportRay.
func (r *ColliderRaycaster) ViewportToWorldRay(view camera.View, cursor mgl32.Vec2) (common.Ray, bool) {
	return ViewportRay(view, cursor)
}

// NearestHit implements camera.Raycaster.
func (r *ColliderRaycaster) NearestHit(ray common.Ray) (mgl32.Vec3, bool) {
	if r.collider == nil {
		return mgl32.Vec3{}, false
	}
	mr := &model3d.Ray{Origin: toCoord(ray.Origin), Direction: toCoord(ray.Direction)}
	hit, ok := r.collider.FirstRayCollision(mr)
	if !ok || hit.Scale < 0 {
		return mgl32.Vec3{}, false
	}
	if hit.Scale*mr.Direction.Norm() > r.maxDistance {
		return mgl32.Vec3{}, false
	}
	return fromCoord(mr.Origin.Add(mr.Direction.Scale(hit.Scale))), true
}

func hasVolume(b common.AABB) bool {
	e := b.Extent()
	return e.X() > 0 && e.Y() > 0 && e.Z() > 0
}

func toCoord(v mgl32.Vec3) model3d.Coord3D {
	return model3d.XYZ(float64(v.X()), float64(v.Y()), float64(v.Z()))
}

func fromCoord(c model3d.Coord3D) mgl32.Vec3 {
	return mgl32.Vec3{float32(c.X), float32(c.Y), float32(c.Z)}
}
