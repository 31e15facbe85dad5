package core

import "testing"

func TestKeyLevelState(t *testing.T) {
	in := NewInput()
	if in.IsKeyPressed(KeyW) {
		t.Fatal("unseen key reported pressed")
	}
	in.OnKeyDown(KeyW)
	if !in.IsKeyPressed(KeyW) {
		t.Error("KeyW not pressed after OnKeyDown")
	}
	in.OnKeyUp(KeyW)
	if in.IsKeyPressed(KeyW) {
		t.Error("KeyW pressed after OnKeyUp")
	}
}

func TestHandleEvents(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
		check  func(*Input) bool
	}{
		{
			"key down",
			[]Event{EventKey{Key: KeySpace, Down: true}},
			func(in *Input) bool { return in.IsKeyPressed(KeySpace) },
		},
		{
			"key down then up",
			[]Event{EventKey{Key: KeyArrowLeft, Down: true}, EventKey{Key: KeyArrowLeft}},
			func(in *Input) bool { return !in.IsKeyPressed(KeyArrowLeft) },
		},
		{
			"repeated down is idempotent",
			[]Event{EventKey{Key: KeyD, Down: true}, EventKey{Key: KeyD, Down: true}},
			func(in *Input) bool { return in.IsKeyPressed(KeyD) },
		},
		{
			"mouse move last wins",
			[]Event{EventMouseMove{X: 1, Y: 2}, EventMouseMove{X: 30, Y: 40}},
			func(in *Input) bool {
				x, y := in.MousePosition()
				return x == 30 && y == 40
			},
		},
		{
			"mouse button carries position",
			[]Event{EventMouseButton{Button: MouseRight, Down: true, X: 5, Y: 6}},
			func(in *Input) bool {
				x, y := in.MousePosition()
				return in.IsMouseButtonPressed(MouseRight) && !in.IsMouseButtonPressed(MouseLeft) && x == 5 && y == 6
			},
		},
		{
			"non-input events ignored",
			[]Event{EventResize{W: 10, H: 10}, EventCloseRequested{}},
			func(in *Input) bool { return !in.IsMouseButtonPressed(MouseLeft) },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewInput()
			for _, ev := range tt.events {
				in.Handle(ev)
			}
			if !tt.check(in) {
				t.Errorf("unexpected state after %v", tt.events)
			}
		})
	}
}

func TestMouseButtons(t *testing.T) {
	in := NewInput()
	in.OnMouseDown(MouseLeft)
	in.OnMouseDown(MouseMiddle)
	in.OnMouseUp(MouseLeft)
	if in.IsMouseButtonPressed(MouseLeft) {
		t.Error("left still pressed")
	}
	if !in.IsMouseButtonPressed(MouseMiddle) {
		t.Error("middle not pressed")
	}
	in.OnMouseMove(12.5, 99)
	if x, y := in.MousePosition(); x != 12.5 || y != 99 {
		t.Errorf("MousePosition = (%v,%v)", x, y)
	}
}

func TestReset(t *testing.T) {
	in := NewInput()
	in.OnKeyDown(KeyEnter)
	in.OnMouseDown(MouseLeft)
	in.Reset()
	if in.IsKeyPressed(KeyEnter) || in.IsMouseButtonPressed(MouseLeft) {
		t.Error("state survived Reset")
	}
}
