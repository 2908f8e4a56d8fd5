package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-cameras/common"
	"github.com/go-gl/mathgl/mgl32"
)

// FromTranslationAndFocus derives orbit parameters from a camera position and its focus point.
// Yaw is measured in the horizontal plane from +Z toward +X. When the offset lies on the -Z axis
// (x == 0, z < 0) the yaw is pi; -pi describes the same placement.
//
// Parameters:
//   - translation: camera position
//   - focus: orbit focus point
//
// Returns:
//   - yaw, pitch: orbit angles in radians
//   - radius: distance to focus, at least common.MinRadius
func FromTranslationAndFocus(translation, focus mgl32.Vec3) (yaw, pitch, radius float32) {
	d := translation.Sub(focus)
	radius = max(d.Len(), common.MinRadius)
	x, y, z := float64(d[0]), float64(d[1]), float64(d[2])
	if x == 0 && z >= 0 {
		yaw = 0
	} else {
		cosYaw := math.Max(-1, math.Min(1, z/math.Sqrt(x*x+z*z)))
		yaw = float32(math.Acos(cosYaw))
		if x < 0 {
			yaw = -yaw
		}
	}
	sinPitch := math.Max(-1, math.Min(1, y/float64(radius)))
	pitch = float32(math.Asin(sinPitch))
	return yaw, pitch, radius
}

// TransformFromOrbit places a camera on the orbit sphere looking at focus.
//
// Parameters:
//   - yaw, pitch: orbit angles in radians
//   - radius: distance from focus
//   - focus: orbit focus point
//
// Returns:
//   - Transform: rotation Ry(yaw) * Rx(-pitch), positioned radius units behind focus
func TransformFromOrbit(yaw, pitch, radius float32, focus mgl32.Vec3) Transform {
	t := Transform{
		Rotation: mgl32.QuatRotate(yaw, common.AxisY).Mul(mgl32.QuatRotate(-pitch, common.AxisX)),
	}
	t.Translation = focus.Add(t.Back().Mul(radius))
	return t
}

// UpdateOrbitTransform writes the orbit placement to transform. For an orthographic projection the
// radius becomes the projection scale and the camera sits halfway between the clip planes so the
// focus is never clipped.
//
// Parameters:
//   - yaw, pitch: orbit angles in radians
//   - radius: orbit radius (orthographic scale)
//   - focus: orbit focus point
//   - transform: destination transform
//   - projection: the projection the transform is computed for; orthographic scale is updated
func UpdateOrbitTransform(yaw, pitch, radius float32, focus mgl32.Vec3, transform *Transform, projection Projection) {
	if p, ok := projection.(*OrthographicProjection); ok {
		p.Scale = radius
		radius = (p.Near + p.Far) / 2
	}
	*transform = TransformFromOrbit(yaw, pitch, radius, focus)
}
