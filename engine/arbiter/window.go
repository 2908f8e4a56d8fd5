package arbiter

import (
	"github.com/Carmen-Shannon/oxy-cameras/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Window is the platform cursor and window-size collaborator for one render target.
// Positions are logical pixels with a top-left origin unless the window reports otherwise
// through a BottomLeftOrigin() bool method.
type Window interface {
	// ID returns the window identity cameras refer to.
	ID() common.WindowID

	// Size returns the logical size of the window.
	//
	// Returns:
	//   - mgl32.Vec2: width and height in logical pixels
	Size() mgl32.Vec2

	// CursorPosition returns the cursor position inside the window.
	//
	// Returns:
	//   - mgl32.Vec2: the cursor position
	//   - bool: false if the cursor is outside the window or unknown
	CursorPosition() (mgl32.Vec2, bool)

	// SetCursorPosition warps the cursor.
	//
	// Parameters:
	//   - p: the new cursor position
	SetCursorPosition(p mgl32.Vec2)

	// SetGrabMode locks or releases the cursor.
	//
	// Parameters:
	//   - mode: the requested grab mode
	SetGrabMode(mode common.GrabMode)
}

// bottomLeftOrigin is implemented by windows whose cursor Y axis points up.
type bottomLeftOrigin interface {
	BottomLeftOrigin() bool
}

// Windows resolves window identities to windows.
type Windows map[common.WindowID]Window

// NewWindows indexes windows by their ID.
func NewWindows(windows ...Window) Windows {
	ws := make(Windows, len(windows))
	for _, w := range windows {
		ws[w.ID()] = w
	}
	return ws
}

// Cursor returns the window cursor position in top-left coordinates, the convention viewports use.
//
// Parameters:
//   - w: the window
//
// Returns:
//   - mgl32.Vec2: the cursor position
//   - bool: false if the window reports no cursor
func Cursor(w Window) (mgl32.Vec2, bool) {
	return cursor(w)
}

// cursor returns the window cursor position in top-left coordinates.
func cursor(w Window) (mgl32.Vec2, bool) {
	p, ok := w.CursorPosition()
	if !ok {
		return p, false
	}
	return toTopLeft(w, p), true
}

// setCursor warps the cursor given a top-left position.
func setCursor(w Window, p mgl32.Vec2) {
	w.SetCursorPosition(toTopLeft(w, p))
}

// toTopLeft flips Y for bottom-left windows. The flip is its own inverse.
func toTopLeft(w Window, p mgl32.Vec2) mgl32.Vec2 {
	if bl, ok := w.(bottomLeftOrigin); ok && bl.BottomLeftOrigin() {
		return mgl32.Vec2{p.X(), w.Size().Y() - p.Y()}
	}
	return p
}
