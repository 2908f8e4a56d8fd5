package common

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 20, 100, 50)
	if r.Size() != (mgl32.Vec2{100, 50}) || r.Center() != (mgl32.Vec2{60, 45}) {
		t.Fatalf("unexpected size %v center %v", r.Size(), r.Center())
	}
	tests := []struct {
		p              mgl32.Vec2
		strict, inside bool
	}{
		{mgl32.Vec2{50, 40}, true, true},
		{mgl32.Vec2{10, 40}, false, true},
		{mgl32.Vec2{110, 70}, false, true},
		{mgl32.Vec2{5, 40}, false, false},
		{mgl32.Vec2{50, 71}, false, false},
	}
	for _, tt := range tests {
		if got := r.ContainsStrict(tt.p); got != tt.strict {
			t.Fatalf("ContainsStrict(%v) = %v", tt.p, got)
		}
		if got := r.Contains(tt.p); got != tt.inside {
			t.Fatalf("Contains(%v) = %v", tt.p, got)
		}
	}
}

func TestAABBUnionAndDegenerate(t *testing.T) {
	empty := EmptyAABB()
	if !empty.IsDegenerate() {
		t.Fatalf("empty box should be degenerate")
	}
	point := AABB{Min: mgl32.Vec3{1, 1, 1}, Max: mgl32.Vec3{1, 1, 1}}
	if !point.IsDegenerate() {
		t.Fatalf("point box should be degenerate")
	}
	a := AABB{Min: mgl32.Vec3{0, 0, 0}, Max: mgl32.Vec3{1, 1, 1}}
	b := AABB{Min: mgl32.Vec3{-1, 0.5, 0}, Max: mgl32.Vec3{0, 2, 0.5}}
	u := empty.Union(a).Union(b)
	if u.Min != (mgl32.Vec3{-1, 0, 0}) || u.Max != (mgl32.Vec3{1, 2, 1}) {
		t.Fatalf("unexpected union %v", u)
	}
	if u.IsDegenerate() {
		t.Fatalf("union should not be degenerate")
	}
	if u.Center() != (mgl32.Vec3{0, 1, 0.5}) {
		t.Fatalf("unexpected center %v", u.Center())
	}
	flat := AABB{Min: mgl32.Vec3{0, 0, 0}, Max: mgl32.Vec3{1, 0, 1}}
	if flat.IsDegenerate() {
		t.Fatalf("a flat box still has extent")
	}
}

func TestAABBTransformed(t *testing.T) {
	a := AABB{Min: mgl32.Vec3{-0.5, -0.5, -0.5}, Max: mgl32.Vec3{0.5, 0.5, 0.5}}
	m := mgl32.Translate3D(0, 0.5, 0)
	got := a.Transformed(m)
	if !got.Min.ApproxEqual(mgl32.Vec3{-0.5, 0, -0.5}) || !got.Max.ApproxEqual(mgl32.Vec3{0.5, 1, 0.5}) {
		t.Fatalf("unexpected translated box %v", got)
	}

	rot := mgl32.HomogRotate3DY(mgl32.DegToRad(45))
	got = a.Transformed(rot)
	half := float32(0.70710677)
	if !got.Max.ApproxEqualThreshold(mgl32.Vec3{half, 0.5, half}, 1e-4) {
		t.Fatalf("rotated box should enclose all corners, got %v", got)
	}
}

func TestRayAt(t *testing.T) {
	r := Ray{Origin: mgl32.Vec3{1, 0, 0}, Direction: mgl32.Vec3{0, 0, -1}}
	if r.At(2) != (mgl32.Vec3{1, 0, -2}) {
		t.Fatalf("unexpected point %v", r.At(2))
	}
}

func TestGrabModeString(t *testing.T) {
	if GrabNone.String() == GrabLocked.String() {
		t.Fatalf("grab modes should have distinct names")
	}
}
