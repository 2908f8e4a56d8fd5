// Package engine runs the per-frame camera pipeline: GUI focus, arbitration, input aggregation
// and cursor handling, queued mode and placement requests, then every camera controller.
package engine

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy-cameras/engine/arbiter"
	"github.com/Carmen-Shannon/oxy-cameras/engine/camera"
	"github.com/Carmen-Shannon/oxy-cameras/engine/input"
	"github.com/Carmen-Shannon/oxy-cameras/engine/profiler"
	"github.com/Carmen-Shannon/oxy-cameras/engine/scene"
	"github.com/Carmen-Shannon/oxy-cameras/engine/window"
)

var (
	// ErrCameraNotFound is reported when a request names a camera that is not registered.
	ErrCameraNotFound = errors.New("camera not found")
	// ErrNoScene is reported when a frame request arrives and no scene graph is attached.
	ErrNoScene = errors.New("no scene graph attached")
)

// engine implements the Engine interface.
type engine struct {
	mu *sync.Mutex

	logger *log.Logger
	strict bool

	cameras   []camera.Camera
	windows   arbiter.Windows
	raycaster camera.Raycaster
	graph     scene.Graph
	queue     []Event

	arbiter *arbiter.Arbiter
	grabber arbiter.CursorGrabber
	tracker input.Tracker
	focus   input.FocusTracker
	pivots  camera.PivotTable

	window   window.Window
	guiFocus func() bool

	profiler         *profiler.Profiler
	profilingEnabled bool
}

// Engine drives a set of cameras from per-frame input. All work happens inside Tick on the
// caller's goroutine; Send may be called from anywhere.
type Engine interface {
	// AddCamera registers a camera. Cameras are processed in registration order, which also
	// breaks arbitration ties toward the later camera.
	//
	// Parameters:
	//   - cam: the camera to register
	AddCamera(cam camera.Camera)

	// RemoveCamera unregisters a camera and forgets its pivot and active status.
	//
	// Parameters:
	//   - id: the camera to remove
	//
	// Returns:
	//   - error: ErrCameraNotFound if the camera is not registered
	RemoveCamera(id camera.ID) error

	// Camera looks up a registered camera.
	//
	// Returns:
	//   - camera.Camera: the camera
	//   - bool: false if the camera is not registered
	Camera(id camera.ID) (camera.Camera, bool)

	// Cameras returns the registered cameras in registration order.
	Cameras() []camera.Camera

	// AddWindow registers a render target window cameras can point at.
	//
	// Parameters:
	//   - w: the window
	AddWindow(w arbiter.Window)

	// SetRaycaster replaces the scene query used by zoom-to-cursor and auto-depth.
	SetRaycaster(r camera.Raycaster)

	// SetScene replaces the entity graph used by frame requests.
	SetScene(g scene.Graph)

	// Arbiter returns the active camera arbiter, for hosts that take manual ownership.
	Arbiter() *arbiter.Arbiter

	// Active returns the camera that currently receives input.
	//
	// Returns:
	//   - camera.Camera: the active camera
	//   - bool: false if no registered camera is active
	Active() (camera.Camera, bool)

	// CameraUnderCursor returns the highest-order camera whose viewport contains the cursor.
	CameraUnderCursor() (camera.ID, bool)

	// Send queues requests for the next Tick. Mode and projection switches are handled before
	// viewpoint snaps and frame requests; within a group requests keep their send order.
	//
	// Parameters:
	//   - events: the requests to queue
	Send(events ...Event)

	// Tick runs one frame of the camera pipeline.
	//
	// Parameters:
	//   - f: this frame's input
	//   - guiFocus: true when a GUI layer wants the pointer this frame
	Tick(f *input.Frame, guiFocus bool)

	// Run ticks the engine from the configured window's message loop until it closes.
	//
	// Returns:
	//   - error: error if no window was configured
	Run() error

	// EnableProfiler enables tick profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables tick profiling output.
	DisableProfiler()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine with the provided options.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		mu:      &sync.Mutex{},
		logger:  log.Default(),
		windows: make(arbiter.Windows),
		arbiter: arbiter.NewArbiter(),
	}
	for _, opt := range options {
		opt(e)
	}
	e.profiler = profiler.NewProfiler(profiler.WithLogger(e.logger))
	return e
}

func (e *engine) AddCamera(cam camera.Camera) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.indexOf(cam.ID()) >= 0 {
		return
	}
	e.cameras = append(e.cameras, cam)
}

func (e *engine) RemoveCamera(id camera.ID) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	i := e.indexOf(id)
	if i < 0 {
		return fmt.Errorf("remove %s: %w", id, ErrCameraNotFound)
	}
	e.cameras = append(e.cameras[:i], e.cameras[i+1:]...)
	e.pivots.Forget(id)
	e.arbiter.Forget(id)
	return nil
}

func (e *engine) Camera(id camera.ID) (camera.Camera, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if i := e.indexOf(id); i >= 0 {
		return e.cameras[i], true
	}
	return nil, false
}

func (e *engine) Cameras() []camera.Camera {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]camera.Camera(nil), e.cameras...)
}

func (e *engine) AddWindow(w arbiter.Window) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.windows[w.ID()] = w
}

func (e *engine) SetRaycaster(r camera.Raycaster) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.raycaster = r
}

func (e *engine) SetScene(g scene.Graph) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.graph = g
}

func (e *engine) Arbiter() *arbiter.Arbiter {
	return e.arbiter
}

func (e *engine) Active() (camera.Camera, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	cam := e.activeCamera()
	return cam, cam != nil
}

func (e *engine) CameraUnderCursor() (camera.ID, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return arbiter.CameraUnderCursor(e.cameras, e.windows)
}

func (e *engine) Send(events ...Event) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.queue = append(e.queue, events...)
}

func (e *engine) Tick(f *input.Frame, guiFocus bool) {
	start := e.profiler.Begin()

	e.mu.Lock()
	defer e.mu.Unlock()

	// GUI focus is tracked over two frames because some toolkits report it one frame late.
	e.focus.Update(guiFocus)

	e.arbiter.Arbitrate(e.cameras, f, e.windows, e.focus.WantsFocus())
	active := e.activeCamera()

	e.track(active, f)
	e.grabber.Update(active, f, e.windows)

	queue := e.queue
	e.queue = nil
	e.dispatch(queue, stageMode)
	e.dispatch(queue, stagePlacement)

	for _, cam := range e.cameras {
		cam.Update(e.frameInput(cam, f, cam == active))
	}

	if e.profilingEnabled {
		e.profiler.End(start)
	}
}

func (e *engine) Run() error {
	if e.window == nil {
		return errors.New("run: no window configured")
	}
	w := e.window
	w.SetUpdateCallback(func() {
		focus := false
		if e.guiFocus != nil {
			focus = e.guiFocus()
		}
		e.Tick(w.Input(), focus)
	})
	w.ProcessMessages()
	return nil
}

// EnableProfiler enables tick profiling output to the log.
func (e *engine) EnableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = true
}

// DisableProfiler disables tick profiling output.
func (e *engine) DisableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = false
}

// indexOf returns the registration index of id, or -1. Caller must hold e.mu.
func (e *engine) indexOf(id camera.ID) int {
	for i, cam := range e.cameras {
		if cam.ID() == id {
			return i
		}
	}
	return -1
}

// activeCamera resolves the arbiter's choice to a registered camera. Caller must hold e.mu.
func (e *engine) activeCamera() camera.Camera {
	active, ok := e.arbiter.Active()
	if !ok {
		return nil
	}
	if i := e.indexOf(active.Camera); i >= 0 {
		return e.cameras[i]
	}
	return nil
}

// track reduces this frame's input for the active camera's mode. The controller stage reads
// the result back through the tracker.
func (e *engine) track(active camera.Camera, f *input.Frame) {
	if active == nil {
		e.tracker.Reset()
		return
	}
	switch active.Mode() {
	case camera.ModeOrbit:
		e.tracker.TrackOrbit(f, active.Orbit().Bindings())
	case camera.ModeFly:
		e.tracker.TrackFly(f, active.Fly().RotateBinding())
	default:
		e.tracker.Reset()
	}
}

// dispatch handles the queued events of one stage in order. A failing event is logged and
// does not stop the rest of the batch.
func (e *engine) dispatch(queue []Event, s stage) {
	for _, ev := range queue {
		if ev.stage() != s {
			continue
		}
		if err := e.handle(ev); err != nil {
			if e.strict && errors.Is(err, camera.ErrOrbitNotInitialized) {
				panic(err)
			}
			e.logger.Printf("[Cameras] %v", err)
		}
	}
}

// handle applies one event to its target camera.
func (e *engine) handle(ev Event) error {
	i := e.indexOf(ev.Target())
	if i < 0 {
		return fmt.Errorf("%v: %w", ev, ErrCameraNotFound)
	}
	if err := ev.apply(e, e.cameras[i]); err != nil {
		return fmt.Errorf("%v: %w", ev, err)
	}
	return nil
}

// frameInput builds one camera's controller input. Sizes come from the live window so a resize
// is picked up without a new activation. The aspect ratio of both projections follows the viewport.
func (e *engine) frameInput(cam camera.Camera, f *input.Frame, active bool) *camera.FrameInput {
	in := &camera.FrameInput{
		Active:    active,
		Keys:      &f.Keys,
		DeltaTime: f.DeltaTime,
		Raycaster: e.raycaster,
		Pivots:    &e.pivots,
	}
	if active {
		in.Deltas = e.tracker.Last()
	}
	w, ok := e.windows[cam.Window()]
	if !ok {
		return in
	}
	in.WindowSize = w.Size()
	in.Viewport = cam.LogicalViewport(in.WindowSize)
	in.ViewportSize = in.Viewport.Size()
	in.Cursor, in.HasCursor = arbiter.Cursor(w)
	if in.ViewportSize.X() > 0 && in.ViewportSize.Y() > 0 {
		cam.SetAspect(in.ViewportSize.X() / in.ViewportSize.Y())
	}
	return in
}
