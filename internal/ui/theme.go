package ui

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"campus-viewer/internal/campus"
)

// Theme holds the colours of the overlay.
type Theme struct {
	PanelBackground  rl.Color
	PanelText        rl.Color
	ButtonBackground rl.Color
	ButtonHover      rl.Color
	ButtonText       rl.Color
}

// DefaultTheme is used for any colour missing from the campus config.
func DefaultTheme() Theme {
	return Theme{
		PanelBackground:  rl.NewColor(30, 30, 30, 220),
		PanelText:        rl.White,
		ButtonBackground: rl.NewColor(51, 51, 51, 230),
		ButtonHover:      rl.NewColor(74, 74, 74, 230),
		ButtonText:       rl.White,
	}
}

// ThemeFrom resolves the configured colours. Panels and buttons keep the default
// translucency so the scene stays visible behind them.
func ThemeFrom(c campus.ThemeConfig) Theme {
	t := DefaultTheme()
	set := func(dst *rl.Color, hex string) {
		if col, ok := ParseHexColor(hex); ok {
			col.A = dst.A
			*dst = col
		}
	}
	set(&t.PanelBackground, c.PanelBackground)
	set(&t.PanelText, c.PanelText)
	set(&t.ButtonBackground, c.ButtonBackground)
	set(&t.ButtonHover, c.ButtonHover)
	set(&t.ButtonText, c.ButtonText)
	return t
}

// ParseHexColor parses #RGB or #RRGGBB into rl.Color (alpha 255). Returns rl.Black and false on parse error.
func ParseHexColor(s string) (rl.Color, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 4 || s[0] != '#' {
		return rl.Black, false
	}
	hex := s[1:]
	var digits [6]uint8
	switch len(hex) {
	case 3:
		for i := 0; i < 3; i++ {
			d, ok := hexDigit(hex[i])
			if !ok {
				return rl.Black, false
			}
			digits[2*i], digits[2*i+1] = d, d
		}
	case 6:
		for i := 0; i < 6; i++ {
			d, ok := hexDigit(hex[i])
			if !ok {
				return rl.Black, false
			}
			digits[i] = d
		}
	default:
		return rl.Black, false
	}
	return rl.NewColor(digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5], 255), true
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
