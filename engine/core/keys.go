package core

// Key is a physical key named after the DOM KeyboardEvent.code strings, so
// "KeyW" means the key in the W position regardless of layout.
type Key string

const (
	KeyUnknown Key = ""

	KeyW Key = "KeyW"
	KeyA Key = "KeyA"
	KeyS Key = "KeyS"
	KeyD Key = "KeyD"
	KeyQ Key = "KeyQ"
	KeyE Key = "KeyE"
	KeyR Key = "KeyR"
	KeyF Key = "KeyF"
	KeyP Key = "KeyP"

	KeySpace     Key = "Space"
	KeyEnter     Key = "Enter"
	KeyEscape    Key = "Escape"
	KeyTab       Key = "Tab"
	KeyBackspace Key = "Backspace"

	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"

	KeyShiftLeft   Key = "ShiftLeft"
	KeyControlLeft Key = "ControlLeft"

	KeyDigit0 Key = "Digit0"
	KeyDigit1 Key = "Digit1"
	KeyDigit2 Key = "Digit2"
	KeyDigit3 Key = "Digit3"
)

// MouseButton follows the DOM MouseEvent.button numbering.
type MouseButton int

const (
	MouseLeft   MouseButton = 0
	MouseMiddle MouseButton = 1
	MouseRight  MouseButton = 2
)
