package scene

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-cameras/common"
	"github.com/go-gl/mathgl/mgl32"
)

func unitBox() *common.AABB {
	return &common.AABB{Min: mgl32.Vec3{-0.5, -0.5, -0.5}, Max: mgl32.Vec3{0.5, 0.5, 0.5}}
}

func TestUnionBoundsTransformsCorners(t *testing.T) {
	r := NewRegistry()
	id := r.Add(Node{WorldTransform: mgl32.Translate3D(2, 0, 0).Mul4(mgl32.Scale3D(2, 2, 2)), Bounds: unitBox()})
	b := UnionBounds(r, []NodeID{id}, false)
	if !b.Min.ApproxEqual(mgl32.Vec3{1, -1, -1}) || !b.Max.ApproxEqual(mgl32.Vec3{3, 1, 1}) {
		t.Fatalf("unexpected bounds %v", b)
	}
}

func TestUnionBoundsRotated(t *testing.T) {
	r := NewRegistry()
	id := r.Add(Node{WorldTransform: mgl32.HomogRotate3DY(mgl32.DegToRad(45)), Bounds: unitBox()})
	b := UnionBounds(r, []NodeID{id}, false)
	half := float32(0.70710677)
	if !mgl32.FloatEqualThreshold(b.Max.X(), half, 1e-4) || !mgl32.FloatEqualThreshold(b.Min.Z(), -half, 1e-4) {
		t.Fatalf("rotated box should enclose every corner, got %v", b)
	}
}

func TestUnionBoundsChildren(t *testing.T) {
	r := NewRegistry()
	child := r.Add(Node{WorldTransform: mgl32.Translate3D(0, 5, 0), Bounds: unitBox()})
	parent := r.Add(Node{WorldTransform: mgl32.Ident4(), Bounds: unitBox(), Children: []NodeID{child}})

	without := UnionBounds(r, []NodeID{parent}, false)
	if without.Max.Y() != 0.5 {
		t.Fatalf("children should be ignored, got %v", without)
	}
	with := UnionBounds(r, []NodeID{parent}, true)
	if with.Max.Y() != 5.5 || with.Min.Y() != -0.5 {
		t.Fatalf("children should be included, got %v", with)
	}
}

func TestUnionBoundsCycleAndMissing(t *testing.T) {
	r := NewRegistry()
	a := r.Add(Node{WorldTransform: mgl32.Ident4(), Bounds: unitBox()})
	b := r.Add(Node{WorldTransform: mgl32.Ident4(), Children: []NodeID{a}})
	r.SetChildren(a, b, 99)

	box := UnionBounds(r, []NodeID{a, 42}, true)
	if box.IsDegenerate() {
		t.Fatalf("expected the single bounded node")
	}
}

func TestUnionBoundsNothingIsDegenerate(t *testing.T) {
	r := NewRegistry(WithNodes(Node{WorldTransform: mgl32.Ident4()}))
	if !UnionBounds(r, []NodeID{1}, true).IsDegenerate() {
		t.Fatalf("a node without bounds should yield a degenerate box")
	}
	if !UnionBounds(r, nil, true).IsDegenerate() {
		t.Fatalf("no entities should yield a degenerate box")
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(WithNodes(Node{}, Node{}))
	if r.Count() != 2 {
		t.Fatalf("expected 2 seeded nodes, got %d", r.Count())
	}
	id := r.Add(Node{})
	if id != 3 {
		t.Fatalf("expected id 3, got %d", id)
	}
	r.Set(10, Node{})
	if next := r.Add(Node{}); next != 11 {
		t.Fatalf("expected id 11 after Set(10), got %d", next)
	}
	if !r.Remove(id) || r.Remove(id) {
		t.Fatalf("remove should succeed once")
	}
	if _, ok := r.Node(id); ok {
		t.Fatalf("removed node still present")
	}
	if r.SetChildren(id, 1) {
		t.Fatalf("SetChildren on a missing node should fail")
	}
	seen := 0
	r.Each(func(NodeID, Node) { seen++ })
	if seen != r.Count() {
		t.Fatalf("Each visited %d of %d", seen, r.Count())
	}
}
