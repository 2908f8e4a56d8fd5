package engine

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-cameras/engine/camera"
	"github.com/Carmen-Shannon/oxy-cameras/engine/scene"
)

// stage is the tick stage an event is handled in.
type stage int

const (
	// stageMode handles mode and projection switches.
	stageMode stage = iota
	// stagePlacement handles viewpoint snaps and frame requests.
	stagePlacement
)

// Event is a camera request queued with Send and handled during the next Tick.
// Every event names its target camera.
type Event interface {
	// Target returns the camera the event applies to.
	Target() camera.ID

	stage() stage
	apply(e *engine, cam camera.Camera) error
}

// SwitchToOrbitController hands a fly camera over to its orbit controller.
type SwitchToOrbitController struct {
	Camera camera.ID
}

func (ev SwitchToOrbitController) Target() camera.ID { return ev.Camera }
func (ev SwitchToOrbitController) stage() stage      { return stageMode }
func (ev SwitchToOrbitController) String() string {
	return fmt.Sprintf("SwitchToOrbitController(%s)", ev.Camera)
}

func (ev SwitchToOrbitController) apply(_ *engine, cam camera.Camera) error {
	return cam.SwitchToOrbit()
}

// SwitchToFlyController hands an orbit camera over to its fly controller.
type SwitchToFlyController struct {
	Camera camera.ID
}

func (ev SwitchToFlyController) Target() camera.ID { return ev.Camera }
func (ev SwitchToFlyController) stage() stage      { return stageMode }
func (ev SwitchToFlyController) String() string {
	return fmt.Sprintf("SwitchToFlyController(%s)", ev.Camera)
}

func (ev SwitchToFlyController) apply(_ *engine, cam camera.Camera) error {
	return cam.SwitchToFly()
}

// SwitchProjection toggles an orbit camera between its active and saved projection.
type SwitchProjection struct {
	Camera camera.ID
}

func (ev SwitchProjection) Target() camera.ID { return ev.Camera }
func (ev SwitchProjection) stage() stage      { return stageMode }
func (ev SwitchProjection) String() string {
	return fmt.Sprintf("SwitchProjection(%s)", ev.Camera)
}

func (ev SwitchProjection) apply(_ *engine, cam camera.Camera) error {
	return cam.SwitchProjection()
}

// ViewpointEvent snaps a camera to a canonical or user viewpoint.
type ViewpointEvent struct {
	Camera    camera.ID
	Viewpoint camera.Viewpoint
}

func (ev ViewpointEvent) Target() camera.ID { return ev.Camera }
func (ev ViewpointEvent) stage() stage      { return stagePlacement }
func (ev ViewpointEvent) String() string {
	return fmt.Sprintf("ViewpointEvent(%s, %s)", ev.Camera, ev.Viewpoint)
}

func (ev ViewpointEvent) apply(_ *engine, cam camera.Camera) error {
	return cam.ApplyViewpoint(ev.Viewpoint)
}

// FrameEvent moves a camera so the bounds of Entities fit in view.
type FrameEvent struct {
	Camera          camera.ID
	Entities        []scene.NodeID
	IncludeChildren bool
}

func (ev FrameEvent) Target() camera.ID { return ev.Camera }
func (ev FrameEvent) stage() stage      { return stagePlacement }
func (ev FrameEvent) String() string {
	return fmt.Sprintf("FrameEvent(%s, %d entities)", ev.Camera, len(ev.Entities))
}

func (ev FrameEvent) apply(e *engine, cam camera.Camera) error {
	if e.graph == nil {
		return ErrNoScene
	}
	return cam.Frame(scene.UnionBounds(e.graph, ev.Entities, ev.IncludeChildren))
}
