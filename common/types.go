// package common contains common types that are used throughout the camera controls. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// WindowID identifies a host window (render target) that one or more cameras draw into.
type WindowID uint64

// GrabMode is the cursor grab state requested from the platform.
type GrabMode int

const (
	// GrabNone releases the cursor.
	GrabNone GrabMode = iota
	// GrabLocked locks the cursor to the window.
	GrabLocked
)

func (g GrabMode) String() string {
	switch g {
	case GrabLocked:
		return "locked"
	default:
		return "none"
	}
}

// Rect is an axis-aligned rectangle in logical window pixels with a top-left origin.
type Rect struct {
	// Min is the top-left corner.
	Min mgl32.Vec2
	// Max is the bottom-right corner.
	Max mgl32.Vec2
}

// NewRect creates a Rect from its origin and size.
//
// Parameters:
//   - x, y: top-left corner in logical pixels
//   - width, height: size in logical pixels
//
// Returns:
//   - Rect: the rectangle
func NewRect(x, y, width, height float32) Rect {
	return Rect{Min: mgl32.Vec2{x, y}, Max: mgl32.Vec2{x + width, y + height}}
}

// Size returns the width and height of the rectangle.
func (r Rect) Size() mgl32.Vec2 {
	return r.Max.Sub(r.Min)
}

// Center returns the center point of the rectangle.
func (r Rect) Center() mgl32.Vec2 {
	return r.Min.Add(r.Max).Mul(0.5)
}

// ContainsStrict reports whether p lies strictly inside the rectangle (edges excluded).
func (r Rect) ContainsStrict(p mgl32.Vec2) bool {
	return p.X() > r.Min.X() && p.X() < r.Max.X() && p.Y() > r.Min.Y() && p.Y() < r.Max.Y()
}

// Contains reports whether p lies inside the rectangle or on its edges.
func (r Rect) Contains(p mgl32.Vec2) bool {
	return p.X() >= r.Min.X() && p.X() <= r.Max.X() && p.Y() >= r.Min.Y() && p.Y() <= r.Max.Y()
}

// AABB is a world-space axis-aligned bounding box.
// The zero value is not an empty box; use EmptyAABB as the identity for Union.
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// EmptyAABB returns an inverted box (Min = +Inf, Max = -Inf) that contributes nothing to a Union.
func EmptyAABB() AABB {
	inf := float32(math.Inf(1))
	return AABB{
		Min: mgl32.Vec3{inf, inf, inf},
		Max: mgl32.Vec3{-inf, -inf, -inf},
	}
}

// Union returns the smallest box containing both a and b.
func (a AABB) Union(b AABB) AABB {
	var out AABB
	for i := range 3 {
		out.Min[i] = min(a.Min[i], b.Min[i])
		out.Max[i] = max(a.Max[i], b.Max[i])
	}
	return out
}

// Extent returns Max - Min. Components are negative for an empty box.
func (a AABB) Extent() mgl32.Vec3 {
	return a.Max.Sub(a.Min)
}

// Center returns the midpoint of the box.
func (a AABB) Center() mgl32.Vec3 {
	return a.Min.Add(a.Extent().Mul(0.5))
}

// IsDegenerate reports whether the box has no positive extent on any axis.
// A box built only from entities without bounds is degenerate.
func (a AABB) IsDegenerate() bool {
	e := a.Extent()
	return !(max(e[0], e[1], e[2]) > 0)
}

// Corners returns the eight corners of the box.
func (a AABB) Corners() [8]mgl32.Vec3 {
	var out [8]mgl32.Vec3
	for i := range 8 {
		for axis := range 3 {
			if i&(1<<axis) != 0 {
				out[i][axis] = a.Max[axis]
			} else {
				out[i][axis] = a.Min[axis]
			}
		}
	}
	return out
}

// Transformed returns the world-space box enclosing this box after applying m to every corner.
//
// Parameters:
//   - m: the affine world transform
//
// Returns:
//   - AABB: the enclosing world-space box
func (a AABB) Transformed(m mgl32.Mat4) AABB {
	out := EmptyAABB()
	for _, c := range a.Corners() {
		w := mgl32.TransformCoordinate(c, m)
		out = out.Union(AABB{Min: w, Max: w})
	}
	return out
}

// Ray is a half-line in world space. Direction is expected to be normalized.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}
