package engine

import (
	"log"

	"github.com/Carmen-Shannon/oxy-cameras/engine/arbiter"
	"github.com/Carmen-Shannon/oxy-cameras/engine/camera"
	"github.com/Carmen-Shannon/oxy-cameras/engine/scene"
	"github.com/Carmen-Shannon/oxy-cameras/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithLogger sets the logger warnings are written to. Defaults to log.Default().
//
// Parameters:
//   - l: the logger
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithLogger(l *log.Logger) EngineBuilderOption {
	return func(e *engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithStrict makes precondition violations panic instead of being logged.
// Use it in development builds to surface integration errors early.
//
// Parameters:
//   - strict: whether to panic on precondition violations
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithStrict(strict bool) EngineBuilderOption {
	return func(e *engine) {
		e.strict = strict
	}
}

// WithProfiling enables or disables tick profiling output.
//
// Parameters:
//   - enabled: if true, enables profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithWindow sets the platform window Run drives and registers it as a render target.
//
// Parameters:
//   - w: a spawned Window
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
		e.windows[w.ID()] = w
	}
}

// WithWindows registers render target windows.
//
// Parameters:
//   - windows: the windows
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindows(windows ...arbiter.Window) EngineBuilderOption {
	return func(e *engine) {
		for _, w := range windows {
			e.windows[w.ID()] = w
		}
	}
}

// WithCameras registers cameras in order.
//
// Parameters:
//   - cams: the cameras
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCameras(cams ...camera.Camera) EngineBuilderOption {
	return func(e *engine) {
		for _, cam := range cams {
			if e.indexOf(cam.ID()) < 0 {
				e.cameras = append(e.cameras, cam)
			}
		}
	}
}

// WithRaycaster sets the scene query used by zoom-to-cursor and auto-depth.
//
// Parameters:
//   - r: the raycaster
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRaycaster(r camera.Raycaster) EngineBuilderOption {
	return func(e *engine) {
		e.raycaster = r
	}
}

// WithScene sets the entity graph used by frame requests.
//
// Parameters:
//   - g: the scene graph
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithScene(g scene.Graph) EngineBuilderOption {
	return func(e *engine) {
		e.graph = g
	}
}

// WithGUIFocus sets the function Run polls each frame to learn whether a GUI layer wants the pointer.
//
// Parameters:
//   - focus: returns true while the GUI owns the pointer
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithGUIFocus(focus func() bool) EngineBuilderOption {
	return func(e *engine) {
		e.guiFocus = focus
	}
}
