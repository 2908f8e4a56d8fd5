package camera

import (
	"github.com/Carmen-Shannon/oxy-cameras/common"
	"github.com/Carmen-Shannon/oxy-cameras/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// View is the read-only camera state a Raycaster needs to build a cursor ray.
type View struct {
	Transform  Transform
	Projection Projection
	// Viewport is the camera's logical viewport in window pixels.
	Viewport common.Rect
}

// Raycaster is the scene query collaborator used by zoom-to-cursor and auto-depth.
// The host guarantees every rendered surface is queryable.
type Raycaster interface {
	// ViewportToWorldRay builds the world-space ray under a cursor position.
	//
	// Parameters:
	//   - view: the camera placement, projection and viewport
	//   - cursor: cursor position in logical window pixels
	//
	// Returns:
	//   - common.Ray: the ray
	//   - bool: false if the cursor cannot be unprojected
	ViewportToWorldRay(view View, cursor mgl32.Vec2) (common.Ray, bool)

	// NearestHit returns the closest surface point along ray.
	//
	// Parameters:
	//   - ray: the query ray
	//
	// Returns:
	//   - mgl32.Vec3: the hit position
	//   - bool: false if nothing was hit
	NearestHit(ray common.Ray) (mgl32.Vec3, bool)
}

// PivotTable is the per-camera scratch anchor for zoom-to-cursor and auto-depth. It outlives a
// single frame so a pivot sampled when a gesture starts is reused while the gesture continues.
// The zero value is ready to use.
type PivotTable struct {
	points map[ID]mgl32.Vec3
}

// Get returns the last pivot sampled for id, or the origin if none was sampled.
func (pt *PivotTable) Get(id ID) mgl32.Vec3 {
	return pt.points[id]
}

// Lookup returns the last pivot sampled for id.
//
// Returns:
//   - mgl32.Vec3: the pivot
//   - bool: false if no pivot was stored for id
func (pt *PivotTable) Lookup(id ID) (mgl32.Vec3, bool) {
	p, ok := pt.points[id]
	return p, ok
}

// Set stores the pivot for id.
func (pt *PivotTable) Set(id ID, p mgl32.Vec3) {
	if pt.points == nil {
		pt.points = make(map[ID]mgl32.Vec3)
	}
	pt.points[id] = p
}

// Forget drops the pivot for a removed camera.
func (pt *PivotTable) Forget(id ID) {
	delete(pt.points, id)
}

// FrameInput carries everything one controller update consumes.
type FrameInput struct {
	// Active is true when this camera owns user input this frame.
	Active bool
	// Deltas is the mode-gated input reduction for this camera.
	Deltas input.Deltas
	// Keys is the keyboard state, used by fly movement.
	Keys *input.ButtonSet[common.Key]
	// DeltaTime is the frame duration in seconds.
	DeltaTime float32
	// WindowSize scales orbit/rotate motion. Zero means unknown and disables rotation.
	WindowSize mgl32.Vec2
	// ViewportSize scales panning. Zero means unknown and disables panning.
	ViewportSize mgl32.Vec2
	// Viewport is the camera's logical viewport rectangle.
	Viewport common.Rect
	// Cursor is the cursor position in logical window pixels, valid when HasCursor is set.
	Cursor    mgl32.Vec2
	HasCursor bool
	// Raycaster may be nil, in which case the orbit focus serves as the pivot.
	Raycaster Raycaster
	// Pivots may be nil, in which case pivots do not persist between frames.
	Pivots *PivotTable
}

func (in *FrameInput) pivot(id ID) (mgl32.Vec3, bool) {
	if in.Pivots == nil {
		return mgl32.Vec3{}, false
	}
	return in.Pivots.Lookup(id)
}

func (in *FrameInput) setPivot(id ID, p mgl32.Vec3) {
	if in.Pivots != nil {
		in.Pivots.Set(id, p)
	}
}
