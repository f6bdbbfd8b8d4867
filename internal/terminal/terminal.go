package terminal

import (
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"

	"campus-viewer/internal/commands"
)

const (
	BarHeight = 40
	prompt    = "> "
	fontSize  = 20
	padding   = 8
	// Number of log lines drawn above the input bar when the terminal is open.
	maxLinesOnScreen = 14
	lineHeight       = fontSize + 4
	maxLineChars     = 200
	maxHistory       = 50
)

var (
	// Reused every frame when drawing the terminal to avoid per-frame color allocations.
	barColor   = rl.NewColor(40, 40, 40, 255)
	lineColor  = rl.NewColor(80, 80, 80, 255)
	chatBg     = rl.NewColor(24, 24, 24, 240)
	logTextCol = rl.LightGray
)

// Log is where the terminal echoes input and reads the lines it shows.
type Log interface {
	Log(line string)
	Lines() []string
}

// Terminal is the input bar at the bottom of the screen with the recent log above it.
// It is shown/hidden with ESC. While open it captures the keyboard, so viewer shortcuts are off.
// Lines starting with "cmd " are parsed as subcommand + flags and executed via the command registry.
type Terminal struct {
	log      Log
	reg      *commands.Registry
	inputBuf string
	open     bool
	font     rl.Font
	history  []string
	recall   int
}

// New returns a new Terminal that logs lines and runs "cmd ..." through reg. It starts closed.
func New(log Log, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

// IsOpen returns true when the terminal is visible and capturing input.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// SetFont sets the font used to draw the terminal. Zero texture ID = use raylib default.
func (t *Terminal) SetFont(font rl.Font) {
	t.font = font
}

// Update handles ESC (toggle open/closed), and when open: typing, paste, history, backspace, enter.
// Call once per frame.
func (t *Terminal) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		t.open = !t.open
		// Drop the keys that were queued while closed.
		for rl.GetCharPressed() != 0 {
		}
	}
	if !t.open {
		return
	}
	// Paste: Ctrl+V (Windows/Linux) or Cmd+V (macOS)
	if rl.IsKeyPressed(rl.KeyV) && (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)) {
		if pasted := rl.GetClipboardText(); pasted != "" {
			t.inputBuf += pasted
		}
	} else {
		for {
			c := rl.GetCharPressed()
			if c == 0 {
				break
			}
			t.inputBuf += string(rune(c))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(t.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(t.inputBuf)
		t.inputBuf = t.inputBuf[:len(t.inputBuf)-size]
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		t.recallHistory(-1)
	}
	if rl.IsKeyPressed(rl.KeyDown) {
		t.recallHistory(1)
	}
	if (rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)) && t.inputBuf != "" {
		line := t.inputBuf
		t.inputBuf = ""
		t.submit(line)
	}
}

func (t *Terminal) submit(line string) {
	t.log.Log(prompt + line)
	t.history = append(t.history, line)
	if len(t.history) > maxHistory {
		t.history = t.history[len(t.history)-maxHistory:]
	}
	t.recall = len(t.history)

	args, isCmd := commands.Parse(line)
	if !isCmd {
		t.log.Log(`commands start with "cmd ", try: cmd help`)
		return
	}
	if err := t.reg.Execute(args); err != nil && !commands.Reported(err) {
		t.log.Log(err.Error())
	}
}

func (t *Terminal) recallHistory(step int) {
	if len(t.history) == 0 {
		return
	}
	t.recall = min(max(t.recall+step, 0), len(t.history))
	if t.recall == len(t.history) {
		t.inputBuf = ""
		return
	}
	t.inputBuf = t.history[t.recall]
}

// Draw draws the terminal bar at the bottom when open, and the recent log lines above it.
// Uses GetScreenWidth/GetScreenHeight so the bar matches the 2D overlay coordinate system.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := int(rl.GetScreenWidth())
	screenH := int(rl.GetScreenHeight())
	barY := screenH - BarHeight

	chatHeight := maxLinesOnScreen * lineHeight
	chatY := barY - chatHeight
	if chatY < 0 {
		chatHeight = barY
		chatY = 0
	}
	if chatHeight > 0 {
		rl.DrawRectangle(0, int32(chatY), int32(screenW), int32(chatHeight), chatBg)
	}
	lines := t.log.Lines()
	start := 0
	if len(lines) > maxLinesOnScreen {
		start = len(lines) - maxLinesOnScreen
	}
	for i := start; i < len(lines); i++ {
		y := chatY + (i-start)*lineHeight + padding
		line := lines[i]
		if len(line) > maxLineChars {
			line = line[:maxLineChars-3] + "..."
		}
		t.text(line, padding, y, logTextCol)
	}

	rl.DrawRectangle(0, int32(barY), int32(screenW), int32(BarHeight), barColor)
	rl.DrawRectangle(0, int32(barY), int32(screenW), 1, lineColor)
	t.text(prompt+t.inputBuf+"|", padding, barY+padding, rl.White)
}

func (t *Terminal) text(s string, x, y int, c rl.Color) {
	if t.font.Texture.ID != 0 {
		rl.DrawTextEx(t.font, s, rl.NewVector2(float32(x), float32(y)), fontSize, 1, c)
		return
	}
	rl.DrawText(s, int32(x), int32(y), fontSize, c)
}
