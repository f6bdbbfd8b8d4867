package debug

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"campus-viewer/internal/campus"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh FPS text every N frames to reduce allocations.
	updateInterval = 30
	// The overlay buttons occupy the top-right corner, so debug text starts below them.
	topOffset = 110
)

// Debug holds runtime debugging overlays: the FPS counter and a live camera pose readout
// used to pick room viewpoints in edit mode. All overlays are off by default.
type Debug struct {
	ShowFPS    bool
	ShowPose   bool
	font       rl.Font
	frameCount uint32
	fpsText    string
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether the FPS counter is drawn (top-right, green).
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowPose sets whether the camera eye/target readout is drawn (top-right, under FPS).
func (d *Debug) SetShowPose(show bool) {
	d.ShowPose = show
}

// SetFont sets the font used for debug text. Zero texture ID = use raylib default.
func (d *Debug) SetFont(font rl.Font) {
	d.font = font
}

// PoseText formats a camera pose the way it is written in the campus config.
func PoseText(p campus.Pose) (eye, target string) {
	eye = fmt.Sprintf("eye: [%.1f, %.1f, %.1f]", p.Eye.X, p.Eye.Y, p.Eye.Z)
	target = fmt.Sprintf("target: [%.1f, %.1f, %.1f]", p.Target.X, p.Target.Y, p.Target.Z)
	return eye, target
}

// Draw renders any enabled overlays. Call after the scene and UI in the draw loop.
func (d *Debug) Draw(pose campus.Pose) {
	d.frameCount++
	if d.ShowFPS && (d.fpsText == "" || d.frameCount%updateInterval == 0) {
		d.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
	}

	y := float32(topOffset)
	if d.ShowFPS {
		d.drawRight(d.fpsText, y)
		y += lineHeight
	}
	if d.ShowPose {
		eye, target := PoseText(pose)
		d.drawRight(eye, y)
		d.drawRight(target, y+lineHeight)
	}
}

func (d *Debug) drawRight(text string, y float32) {
	screenW := float32(rl.GetScreenWidth())
	if d.font.Texture.ID != 0 {
		w := rl.MeasureTextEx(d.font, text, fontSize, 1).X
		rl.DrawTextEx(d.font, text, rl.NewVector2(screenW-w-padding, y), fontSize, 1, rl.Green)
		return
	}
	w := float32(rl.MeasureText(text, fontSize))
	rl.DrawText(text, int32(screenW-w-padding), int32(y), fontSize, rl.Green)
}
