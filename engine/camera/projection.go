package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ProjectionKind discriminates the two projection types.
type ProjectionKind int

const (
	KindPerspective ProjectionKind = iota
	KindOrthographic
)

func (k ProjectionKind) String() string {
	if k == KindOrthographic {
		return "orthographic"
	}
	return "perspective"
}

// Projection is either a *PerspectiveProjection or an *OrthographicProjection.
type Projection interface {
	// Kind returns the projection type.
	Kind() ProjectionKind

	// Matrix returns the OpenGL-convention (clip z in [-1, 1]) projection matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	Matrix() mgl32.Mat4

	// NearFar returns the clipping plane distances.
	//
	// Returns:
	//   - near, far: clipping distances
	NearFar() (near, far float32)

	// SetAspect updates the viewport aspect ratio (width / height).
	//
	// Parameters:
	//   - aspect: the new aspect ratio
	SetAspect(aspect float32)

	// Clone returns an independent copy.
	//
	// Returns:
	//   - Projection: the copy
	Clone() Projection
}

// PerspectiveProjection is a symmetric perspective frustum.
type PerspectiveProjection struct {
	// Fov is the vertical field of view in radians.
	Fov float32
	// Aspect is width / height.
	Aspect float32
	Near   float32
	Far    float32
}

// NewPerspective returns the default perspective projection (fov pi/4, aspect 1, near 0.1, far 1000).
func NewPerspective() *PerspectiveProjection {
	return &PerspectiveProjection{Fov: math.Pi / 4, Aspect: 1, Near: 0.1, Far: 1000}
}

func (p *PerspectiveProjection) Kind() ProjectionKind { return KindPerspective }

func (p *PerspectiveProjection) Matrix() mgl32.Mat4 {
	return mgl32.Perspective(p.Fov, p.Aspect, p.Near, p.Far)
}

func (p *PerspectiveProjection) NearFar() (near, far float32) { return p.Near, p.Far }

func (p *PerspectiveProjection) SetAspect(aspect float32) { p.Aspect = aspect }

func (p *PerspectiveProjection) Clone() Projection {
	cp := *p
	return &cp
}

// OrthographicProjection is a box projection. Its visible area is VerticalSize * Scale world units
// tall and Aspect times that wide; orbit zoom drives Scale.
type OrthographicProjection struct {
	// Scale multiplies the visible area. Orbit controls keep it equal to the orbit radius.
	Scale float32
	// VerticalSize is the visible height at Scale 1.
	VerticalSize float32
	// Aspect is width / height.
	Aspect float32
	Near   float32
	Far    float32
}

// NewOrthographic returns the default orthographic projection (vertical size 1, scale 1, near 0, far 1000).
func NewOrthographic() *OrthographicProjection {
	return &OrthographicProjection{Scale: 1, VerticalSize: 1, Aspect: 1, Near: 0, Far: 1000}
}

func (p *OrthographicProjection) Kind() ProjectionKind { return KindOrthographic }

// Area returns the visible width and height in world units.
func (p *OrthographicProjection) Area() (width, height float32) {
	height = p.VerticalSize * p.Scale
	return height * p.Aspect, height
}

func (p *OrthographicProjection) Matrix() mgl32.Mat4 {
	w, h := p.Area()
	return mgl32.Ortho(-w/2, w/2, -h/2, h/2, p.Near, p.Far)
}

func (p *OrthographicProjection) NearFar() (near, far float32) { return p.Near, p.Far }

func (p *OrthographicProjection) SetAspect(aspect float32) { p.Aspect = aspect }

func (p *OrthographicProjection) Clone() Projection {
	cp := *p
	return &cp
}

// defaultCounterpart returns the projection a camera toggles to when none was configured.
func defaultCounterpart(p Projection) Projection {
	var other Projection
	if p.Kind() == KindPerspective {
		other = NewOrthographic()
	} else {
		other = NewPerspective()
	}
	switch src := p.(type) {
	case *PerspectiveProjection:
		other.SetAspect(src.Aspect)
	case *OrthographicProjection:
		other.SetAspect(src.Aspect)
	}
	return other
}
