package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"campus-viewer/internal/viewer"
)

const (
	fontSize     = 20
	padding      = 10
	margin       = 20
	buttonWidth  = 200
	buttonHeight = 34
	buttonGap    = 6
	panelGap     = 8
)

// Button is a clickable rectangle with a label.
type Button struct {
	Label  string
	Bounds rl.Rectangle
	hover  bool
}

// Contains reports whether p is inside the button.
func (b *Button) Contains(p rl.Vector2) bool {
	return rl.CheckCollisionPointRec(p, b.Bounds)
}

// Overlay is the 2D layer over the scene: the edit mode and reset buttons at the top right,
// and the description and directions boxes at the bottom left.
// Text is drawn with the font set by SetFont, or raylib's default font.
type Overlay struct {
	Edit  Button
	Reset Button

	theme Theme
	font  rl.Font
}

// NewOverlay returns an overlay with both buttons in their initial state.
func NewOverlay(theme Theme) *Overlay {
	return &Overlay{
		Edit:  Button{Label: "Edit Mode: OFF"},
		Reset: Button{Label: "Reset View"},
		theme: theme,
	}
}

// SetFont sets the font used for all overlay text. Zero texture ID = use raylib default.
func (o *Overlay) SetFont(font rl.Font) {
	o.font = font
}

// Layout positions the buttons for a w×h screen. Call each frame before hit testing so
// window resizes are followed.
func (o *Overlay) Layout(w, h int32) {
	x := float32(w - margin - buttonWidth)
	o.Edit.Bounds = rl.NewRectangle(x, margin, buttonWidth, buttonHeight)
	o.Reset.Bounds = rl.NewRectangle(x, margin+buttonHeight+buttonGap, buttonWidth, buttonHeight)
}

// ButtonAt returns the button under p, or nil.
func (o *Overlay) ButtonAt(p rl.Vector2) *Button {
	for _, b := range []*Button{&o.Edit, &o.Reset} {
		if b.Contains(p) {
			return b
		}
	}
	return nil
}

// Hover marks the button under p for highlighted drawing.
func (o *Overlay) Hover(p rl.Vector2) {
	o.Edit.hover = o.Edit.Contains(p)
	o.Reset.hover = o.Reset.Contains(p)
}

// Draw draws the buttons, the room text (when visible) and a loading line while models are pending.
func (o *Overlay) Draw(editLabel string, panel viewer.Panel, pending int) {
	o.Edit.Label = editLabel
	o.drawButton(&o.Edit)
	o.drawButton(&o.Reset)

	screenH := float32(rl.GetScreenHeight())
	y := screenH - margin
	if panel.Visible {
		for _, text := range []string{panel.Directions, panel.Description} {
			y -= fontSize + 2*padding
			o.drawBox(text, margin, y)
			y -= panelGap
		}
	}
	if pending > 0 {
		y -= fontSize + 2*padding
		o.drawBox(fmt.Sprintf("Loading %d models...", pending), margin, y)
	}
}

func (o *Overlay) drawButton(b *Button) {
	bg := o.theme.ButtonBackground
	if b.hover {
		bg = o.theme.ButtonHover
	}
	rl.DrawRectangleRec(b.Bounds, bg)
	rl.DrawRectangleLinesEx(b.Bounds, 1, o.theme.ButtonText)
	w := o.measure(b.Label)
	x := b.Bounds.X + (b.Bounds.Width-w)/2
	y := b.Bounds.Y + (b.Bounds.Height-fontSize)/2
	o.text(b.Label, x, y, o.theme.ButtonText)
}

func (o *Overlay) drawBox(text string, x, y float32) {
	w := o.measure(text) + 2*padding
	rl.DrawRectangleRec(rl.NewRectangle(x, y, w, fontSize+2*padding), o.theme.PanelBackground)
	o.text(text, x+padding, y+padding, o.theme.PanelText)
}

func (o *Overlay) measure(text string) float32 {
	if o.font.Texture.ID != 0 {
		return rl.MeasureTextEx(o.font, text, fontSize, 1).X
	}
	return float32(rl.MeasureText(text, fontSize))
}

func (o *Overlay) text(text string, x, y float32, c rl.Color) {
	if o.font.Texture.ID != 0 {
		rl.DrawTextEx(o.font, text, rl.NewVector2(x, y), fontSize, 1, c)
		return
	}
	rl.DrawText(text, int32(x), int32(y), fontSize, c)
}
