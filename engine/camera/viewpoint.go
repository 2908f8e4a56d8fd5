package camera

import (
	"fmt"
	"math"

	"github.com/Carmen-Shannon/oxy-cameras/common"
)

// ViewpointKind names a canonical viewing direction.
type ViewpointKind int

const (
	ViewpointUser ViewpointKind = iota
	ViewpointTop
	ViewpointBottom
	ViewpointFront
	ViewpointBack
	ViewpointLeft
	ViewpointRight
)

var viewpointNames = map[ViewpointKind]string{
	ViewpointUser:   "user",
	ViewpointTop:    "top",
	ViewpointBottom: "bottom",
	ViewpointFront:  "front",
	ViewpointBack:   "back",
	ViewpointLeft:   "left",
	ViewpointRight:  "right",
}

func (k ViewpointKind) String() string {
	if n, ok := viewpointNames[k]; ok {
		return n
	}
	return fmt.Sprintf("ViewpointKind(%d)", int(k))
}

// Viewpoint is a canonical orientation or an arbitrary user yaw/pitch pair.
// Angles follow the orbit convention: positive pitch places the camera above the focus looking down.
type Viewpoint struct {
	Kind ViewpointKind
	// Yaw and Pitch are only meaningful for ViewpointUser.
	Yaw   float32
	Pitch float32
}

var (
	Top    = Viewpoint{Kind: ViewpointTop}
	Bottom = Viewpoint{Kind: ViewpointBottom}
	Front  = Viewpoint{Kind: ViewpointFront}
	Back   = Viewpoint{Kind: ViewpointBack}
	Left   = Viewpoint{Kind: ViewpointLeft}
	Right  = Viewpoint{Kind: ViewpointRight}
)

// canonicalViewpoints is the fixed yaw/pitch lookup, in match order.
var canonicalViewpoints = []struct {
	kind       ViewpointKind
	yaw, pitch float32
}{
	{ViewpointTop, 0, math.Pi / 2},
	{ViewpointBottom, 0, -math.Pi / 2},
	{ViewpointFront, 0, 0},
	{ViewpointBack, math.Pi, 0},
	{ViewpointLeft, -math.Pi / 2, 0},
	{ViewpointRight, math.Pi / 2, 0},
}

// UserViewpoint returns a non-canonical viewpoint.
func UserViewpoint(yaw, pitch float32) Viewpoint {
	return Viewpoint{Kind: ViewpointUser, Yaw: yaw, Pitch: pitch}
}

// YawPitch returns the orbit angles the viewpoint maps to.
//
// Returns:
//   - yaw, pitch: angles in radians
func (v Viewpoint) YawPitch() (yaw, pitch float32) {
	for _, c := range canonicalViewpoints {
		if c.kind == v.Kind {
			return c.yaw, c.pitch
		}
	}
	return v.Yaw, v.Pitch
}

func (v Viewpoint) String() string {
	if v.Kind == ViewpointUser {
		return fmt.Sprintf("user(yaw=%.3f, pitch=%.3f)", v.Yaw, v.Pitch)
	}
	return v.Kind.String()
}

// ViewpointFromYawPitch classifies an orientation. Angles within common.ApproxEpsilon of a canonical
// pair match it; Back also matches a yaw of -pi. Anything else is a user viewpoint.
//
// Parameters:
//   - yaw, pitch: orbit angles in radians
//
// Returns:
//   - Viewpoint: the classification
func ViewpointFromYawPitch(yaw, pitch float32) Viewpoint {
	for _, c := range canonicalViewpoints {
		if !common.ApproxEqual(pitch, c.pitch) {
			continue
		}
		if common.ApproxEqual(yaw, c.yaw) || (c.kind == ViewpointBack && common.ApproxEqual(yaw, -c.yaw)) {
			return Viewpoint{Kind: c.kind}
		}
	}
	return UserViewpoint(yaw, pitch)
}

// ViewpointFromTransform classifies a camera rotation. The Euler pitch is negated to match the
// orbit convention.
//
// Parameters:
//   - t: the camera transform
//
// Returns:
//   - Viewpoint: the classification
func ViewpointFromTransform(t Transform) Viewpoint {
	yaw, pitch, _ := common.EulerYXZ(t.Rotation)
	return ViewpointFromYawPitch(yaw, -pitch)
}
