package common

// Key is a virtual key code for cross-platform input handling.
// Values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
type Key int

// KeyNone marks an unset modifier binding.
const KeyNone Key = -1

const (
	KeySpace     Key = 32  // Spacebar (ASCII)
	KeyA         Key = 65  // A key (ASCII)
	KeyB         Key = 66  // B key (ASCII)
	KeyC         Key = 67  // C key (ASCII)
	KeyD         Key = 68  // D key (ASCII)
	KeyE         Key = 69  // E key (ASCII)
	KeyF         Key = 70  // F key (ASCII)
	KeyG         Key = 71  // G key (ASCII)
	KeyL         Key = 76  // L key (ASCII)
	KeyM         Key = 77  // M key (ASCII)
	KeyQ         Key = 81  // Q key (ASCII)
	KeyR         Key = 82  // R key (ASCII)
	KeyS         Key = 83  // S key (ASCII)
	KeyT         Key = 84  // T key (ASCII)
	KeyV         Key = 86  // V key (ASCII)
	KeyW         Key = 87  // W key (ASCII)
	KeyX         Key = 88  // X key (ASCII)
	KeyEsc       Key = 256 // Escape key (GLFW)
	KeyBackspace Key = 259 // Backspace key (GLFW)

	Key0 Key = 48 // 0 key (ASCII)
	Key1 Key = 49 // 1 key (ASCII)
	Key3 Key = 51 // 3 key (ASCII)
	Key7 Key = 55 // 7 key (ASCII)
	Key9 Key = 57 // 9 key (ASCII)
)

// Additional non-printable keys
const (
	KeyLeftShift    Key = 340 // Left Shift (GLFW)
	KeyLeftControl  Key = 341 // Left Control (GLFW)
	KeyLeftAlt      Key = 342 // Left Alt (GLFW)
	KeyRightShift   Key = 344 // Right Shift (GLFW)
	KeyRightControl Key = 345 // Right Control (GLFW)
)

// MouseButton is a mouse button code. Values match GLFW mouse button codes.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#MouseButton
type MouseButton int

const (
	MouseButtonLeft   MouseButton = 0
	MouseButtonRight  MouseButton = 1
	MouseButtonMiddle MouseButton = 2
)
