package window

import (
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-cameras/common"
	"github.com/Carmen-Shannon/oxy-cameras/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

func TestDefaultsAndOptions(t *testing.T) {
	w := newEngineWindow(WithID(3), WithWidth(800), WithHeight(600), WithTitle("t"), WithEscapeCloses(false))
	if w.ID() != 3 || w.Size() != (mgl32.Vec2{800, 600}) || w.title != "t" || w.escapeCloses {
		t.Fatalf("options not applied: %+v", w)
	}
	if w.IsRunning() {
		t.Fatalf("an unspawned window is not running")
	}
	if w.SurfaceDescriptor() != nil {
		t.Fatalf("an unspawned window has no surface")
	}
	if err := w.Close(); err == nil {
		t.Fatalf("closing an unspawned window should fail")
	}
}

func TestCursorMotionAccumulates(t *testing.T) {
	w := newEngineWindow()
	if _, ok := w.CursorPosition(); ok {
		t.Fatalf("no cursor before the first move")
	}
	w.handleCursorEnter(true)
	w.handleCursorMove(mgl32.Vec2{10, 10})
	w.handleCursorMove(mgl32.Vec2{15, 8})
	w.handleCursorMove(mgl32.Vec2{20, 12})
	if w.Input().MouseMotion != (mgl32.Vec2{10, 2}) {
		t.Fatalf("unexpected motion %v", w.Input().MouseMotion)
	}
	if p, ok := w.CursorPosition(); !ok || p != (mgl32.Vec2{20, 12}) {
		t.Fatalf("unexpected cursor %v %v", p, ok)
	}
}

func TestWarpIsNotMotion(t *testing.T) {
	w := newEngineWindow()
	w.handleCursorEnter(true)
	w.handleCursorMove(mgl32.Vec2{100, 100})
	w.SetCursorPosition(mgl32.Vec2{0, 100})
	w.handleCursorMove(mgl32.Vec2{0, 100})
	if w.Input().MouseMotion != (mgl32.Vec2{}) {
		t.Fatalf("warp leaked into motion: %v", w.Input().MouseMotion)
	}
}

func TestCursorOutsideWindow(t *testing.T) {
	w := newEngineWindow()
	w.handleCursorMove(mgl32.Vec2{5, 5})
	if _, ok := w.CursorPosition(); ok {
		t.Fatalf("cursor outside the window should not be reported")
	}
	w.SetGrabMode(common.GrabLocked)
	if _, ok := w.CursorPosition(); !ok {
		t.Fatalf("a grabbed cursor should keep reporting its position")
	}
	if w.GrabMode() != common.GrabLocked {
		t.Fatalf("grab mode not stored")
	}
}

func TestButtonsKeysAndScroll(t *testing.T) {
	w := newEngineWindow()
	w.handleMouseButton(common.MouseButtonMiddle, true)
	w.handleKey(common.KeyLeftShift, true)
	w.handleScroll(1, input.ScrollLine)
	w.handleScroll(0, input.ScrollLine)

	f := w.Input()
	if !f.Mouse.JustPressed(common.MouseButtonMiddle) || !f.Keys.Pressed(common.KeyLeftShift) {
		t.Fatalf("button and key not recorded")
	}
	if len(f.Scroll) != 1 {
		t.Fatalf("zero scroll should be dropped, got %d events", len(f.Scroll))
	}

	w.handleFocusLost()
	if f.Mouse.Pressed(common.MouseButtonMiddle) || f.Keys.Pressed(common.KeyLeftShift) {
		t.Fatalf("focus loss should release held input")
	}
}

func TestTickRunsCallbackAndResets(t *testing.T) {
	w := newEngineWindow()
	var seen []float32
	w.SetUpdateCallback(func() {
		seen = append(seen, w.Input().DeltaTime)
	})
	start := time.Unix(100, 0)
	w.handleMouseButton(common.MouseButtonLeft, true)
	w.tick(start)
	w.tick(start.Add(500 * time.Millisecond))

	if len(seen) != 2 || seen[0] != 0 || seen[1] != 0.5 {
		t.Fatalf("unexpected delta times %v", seen)
	}
	if w.Input().Mouse.JustPressed(common.MouseButtonLeft) || !w.Input().Mouse.Pressed(common.MouseButtonLeft) {
		t.Fatalf("tick should clear edges and keep held buttons")
	}
}

func TestResizeCallback(t *testing.T) {
	w := newEngineWindow()
	var got [2]int
	w.SetResizeCallback(func(width, height int) { got = [2]int{width, height} })
	w.handleResize(640, 480)
	if got != [2]int{640, 480} || w.Size() != (mgl32.Vec2{640, 480}) {
		t.Fatalf("resize not applied: %v %v", got, w.Size())
	}
}
