package graphics

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrNoWindow is returned when the display surface cannot be created.
var ErrNoWindow = errors.New("graphics: window could not be created")

// Window describes the display surface.
type Window struct {
	Title      string
	Width      int32
	Height     int32
	TargetFPS  int32
	Background rl.Color
}

// Run opens a resizable window and runs the main loop. Each frame it calls update (input, camera,
// pending model loads), then clears the screen and calls draw. setup, if set, runs once after the
// OpenGL context exists and before the first frame. ESC toggles the terminal; close via window button.
// Returns ErrNoWindow without running any callback if the window could not be created.
func Run(w Window, setup func() error, update, draw func()) error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(w.Width, w.Height, w.Title)
	if !rl.IsWindowReady() {
		return ErrNoWindow
	}
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull) // ESC is used to toggle terminal, not to quit
	rl.SetTargetFPS(w.TargetFPS)

	if setup != nil {
		if err := setup(); err != nil {
			return err
		}
	}

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(w.Background)
		draw()
		rl.EndDrawing()
	}
	return nil
}
