package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"campus-viewer/internal/terminal"
	"campus-viewer/internal/ui"
	"campus-viewer/internal/viewer"
)

// clickSlop is how far the pointer may move between press and release and still count as a click.
const clickSlop = 4

// input turns mouse and keyboard state into viewer actions: clicks pick rooms, drags orbit and pan,
// the wheel zooms and the overlay buttons toggle edit mode or reset.
type input struct {
	v       *viewer.Viewer
	overlay *ui.Overlay
	term    *terminal.Terminal

	pressAt  rl.Vector2
	tracking bool // left button went down over the scene
	dragging bool
}

func newInput(v *viewer.Viewer, overlay *ui.Overlay, term *terminal.Terminal) *input {
	return &input{v: v, overlay: overlay, term: term}
}

// Update reads this frame's input. Call once per frame, after the terminal has taken its keys.
func (in *input) Update() {
	w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	mouse := rl.GetMousePosition()
	in.overlay.Layout(w, h)
	in.overlay.Hover(mouse)

	if !in.term.IsOpen() {
		if rl.IsKeyPressed(rl.KeyE) {
			in.v.ToggleEditMode()
		}
		if rl.IsKeyPressed(rl.KeyR) {
			in.v.Reset()
		}
	}

	cam := in.v.Camera()
	fw, fh := float32(w), float32(h)

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		switch in.overlay.ButtonAt(mouse) {
		case &in.overlay.Edit:
			in.v.ToggleEditMode()
		case &in.overlay.Reset:
			in.v.Reset()
		default:
			in.pressAt = mouse
			in.tracking = true
			in.dragging = false
		}
	}
	if in.tracking && rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		if !in.dragging && rl.Vector2Distance(mouse, in.pressAt) >= clickSlop {
			in.dragging = true
		}
		if in.dragging {
			d := rl.GetMouseDelta()
			cam.Rotate(d.X, d.Y, fh)
		}
	}
	if in.tracking && rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		if !in.dragging {
			in.v.Click(mouse.X, mouse.Y, fw, fh)
		}
		in.tracking = false
		in.dragging = false
	}

	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		d := rl.GetMouseDelta()
		cam.Pan(d.X, d.Y, fh, in.v.Lens().FovY)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		cam.Zoom(wheel)
	}
}
