package core

// Input holds level state for keys and mouse buttons plus the last mouse
// position in surface pixels. Writes are last-write-wins; there is no event
// queue and no edge detection.
type Input struct {
	keys           map[Key]bool
	buttons        map[MouseButton]bool
	mouseX, mouseY float32
}

func NewInput() *Input {
	return &Input{keys: map[Key]bool{}, buttons: map[MouseButton]bool{}}
}

// Handle applies a platform event; events that are not input are ignored.
func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		in.keys[e.Key] = e.Down
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
	case EventMouseButton:
		in.mouseX, in.mouseY = e.X, e.Y
		in.buttons[e.Button] = e.Down
	}
}

func (in *Input) OnKeyDown(k Key) { in.keys[k] = true }

func (in *Input) OnKeyUp(k Key) { in.keys[k] = false }

// OnMouseMove records the absolute cursor position in surface pixels.
func (in *Input) OnMouseMove(x, y float32) { in.mouseX, in.mouseY = x, y }

func (in *Input) OnMouseDown(b MouseButton) { in.buttons[b] = true }

func (in *Input) OnMouseUp(b MouseButton) { in.buttons[b] = false }

// IsKeyPressed reports the last recorded state; never-seen keys are up.
func (in *Input) IsKeyPressed(k Key) bool { return in.keys[k] }

func (in *Input) MousePosition() (float32, float32) { return in.mouseX, in.mouseY }

func (in *Input) IsMouseButtonPressed(b MouseButton) bool { return in.buttons[b] }

// Reset releases every key and button, e.g. when the surface loses focus.
func (in *Input) Reset() {
	clear(in.keys)
	clear(in.buttons)
}
