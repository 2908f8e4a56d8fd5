package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// MinRadius is the smallest orbit radius (and framing distance) allowed. A radius of 0 collapses the orbit.
const MinRadius float32 = 0.05

// ApproxEpsilon is the fixed tolerance used by ApproxEqual for viewpoint classification.
const ApproxEpsilon float32 = 0.001

var (
	// AxisX is the world +X axis.
	AxisX = mgl32.Vec3{1, 0, 0}
	// AxisY is the world +Y axis.
	AxisY = mgl32.Vec3{0, 1, 0}
	// AxisZ is the world +Z axis.
	AxisZ = mgl32.Vec3{0, 0, 1}
)

// ApproxEqual reports whether a and b differ by less than ApproxEpsilon.
//
// Parameters:
//   - a, b: values to compare
//
// Returns:
//   - bool: true if |a - b| < ApproxEpsilon
func ApproxEqual(a, b float32) bool {
	return float32(math.Abs(float64(a-b))) < ApproxEpsilon
}

// QuatFromYXZ composes a rotation from Euler angles applied in Y (yaw), X (pitch), Z (roll) order:
// q = Ry(yaw) * Rx(pitch) * Rz(roll).
//
// Parameters:
//   - yaw: rotation around the world Y axis in radians
//   - pitch: rotation around the local X axis in radians
//   - roll: rotation around the local Z axis in radians
//
// Returns:
//   - mgl32.Quat: the composed rotation
func QuatFromYXZ(yaw, pitch, roll float32) mgl32.Quat {
	return mgl32.QuatRotate(yaw, AxisY).
		Mul(mgl32.QuatRotate(pitch, AxisX)).
		Mul(mgl32.QuatRotate(roll, AxisZ))
}

// EulerYXZ decomposes a rotation into the Y, X, Z Euler angles accepted by QuatFromYXZ.
// Pitch is in [-pi/2, pi/2]. At gimbal lock the roll is folded into the yaw.
//
// Parameters:
//   - q: the rotation (need not be normalized)
//
// Returns:
//   - yaw, pitch, roll: angles in radians
func EulerYXZ(q mgl32.Quat) (yaw, pitch, roll float32) {
	q = q.Normalize()
	w, x, y, z := float64(q.W), float64(q.V[0]), float64(q.V[1]), float64(q.V[2])

	// Rotation matrix terms, m[row][col].
	m02 := 2 * (x*z + w*y)
	m12 := 2 * (y*z - w*x)
	m22 := 1 - 2*(x*x+y*y)
	m10 := 2 * (x*y + w*z)
	m11 := 1 - 2*(x*x+z*z)

	sinPitch := math.Max(-1, math.Min(1, -m12))
	pitch = float32(math.Asin(sinPitch))
	if math.Abs(sinPitch) > 0.99999 {
		m00 := 1 - 2*(y*y+z*z)
		m20 := 2 * (x*z - w*y)
		return float32(math.Atan2(-m20, m00)), pitch, 0
	}
	yaw = float32(math.Atan2(m02, m22))
	roll = float32(math.Atan2(m10, m11))
	return yaw, pitch, roll
}

// NormalizeOrZero returns v scaled to unit length, or the zero vector when v has no length.
func NormalizeOrZero(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l < 1e-8 {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}
