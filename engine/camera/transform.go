package camera

import (
	"github.com/Carmen-Shannon/oxy-cameras/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Transform is a camera's world placement. The camera looks down its local -Z axis with +Y up.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
}

// IdentityTransform returns a transform at the origin looking down -Z.
func IdentityTransform() Transform {
	return Transform{Rotation: mgl32.QuatIdent()}
}

// LookAtTransform returns a transform at eye oriented toward target with the given up vector.
//
// Parameters:
//   - eye: camera position
//   - target: point to look at
//   - up: world up direction
//
// Returns:
//   - Transform: the oriented transform
func LookAtTransform(eye, target, up mgl32.Vec3) Transform {
	f := target.Sub(eye).Normalize()
	r := f.Cross(up).Normalize()
	u := r.Cross(f)
	basis := mgl32.Mat4FromCols(r.Vec4(0), u.Vec4(0), f.Mul(-1).Vec4(0), mgl32.Vec4{0, 0, 0, 1})
	return Transform{Translation: eye, Rotation: mgl32.Mat4ToQuat(basis).Normalize()}
}

// Forward returns the local -Z axis in world space.
func (t Transform) Forward() mgl32.Vec3 { return t.Rotation.Rotate(common.AxisZ.Mul(-1)) }

// Back returns the local +Z axis in world space.
func (t Transform) Back() mgl32.Vec3 { return t.Rotation.Rotate(common.AxisZ) }

// Right returns the local +X axis in world space.
func (t Transform) Right() mgl32.Vec3 { return t.Rotation.Rotate(common.AxisX) }

// Left returns the local -X axis in world space.
func (t Transform) Left() mgl32.Vec3 { return t.Rotation.Rotate(common.AxisX.Mul(-1)) }

// Up returns the local +Y axis in world space.
func (t Transform) Up() mgl32.Vec3 { return t.Rotation.Rotate(common.AxisY) }

// RotateAround rotates the transform rigidly about a world-space point.
//
// Parameters:
//   - point: pivot in world space
//   - q: rotation to apply in world space
func (t *Transform) RotateAround(point mgl32.Vec3, q mgl32.Quat) {
	t.Translation = point.Add(q.Rotate(t.Translation.Sub(point)))
	t.Rotation = q.Mul(t.Rotation).Normalize()
}

// Matrix returns the local-to-world matrix.
func (t Transform) Matrix() mgl32.Mat4 {
	p := t.Translation
	return mgl32.Translate3D(p[0], p[1], p[2]).Mul4(t.Rotation.Normalize().Mat4())
}

// ViewMatrix returns the world-to-camera matrix.
func (t Transform) ViewMatrix() mgl32.Mat4 {
	p := t.Translation
	return t.Rotation.Normalize().Inverse().Mat4().Mul4(mgl32.Translate3D(-p[0], -p[1], -p[2]))
}
