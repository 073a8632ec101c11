// Package colors holds the ARGB color value that flows through theme
// pipelines and the few helpers widgets need to derive tints from it.
package colors

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a packed 0xAARRGGBB value. Being a plain integer it compares by
// value, which is what duplicate suppression relies on.
type Color uint32

// ErrInvalidColor is returned for strings that are not #RGB, #RRGGBB or
// #AARRGGBB.
var ErrInvalidColor = errors.New("invalid color")

const (
	Black       Color = 0xFF000000
	White       Color = 0xFFFFFFFF
	Transparent Color = 0x00000000
)

// RGB builds an opaque color.
func RGB(r, g, b uint8) Color {
	return ARGB(0xFF, r, g, b)
}

// ARGB builds a color from its channels.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

func (c Color) A() uint8 { return uint8(c >> 24) }
func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }

// ParseHex parses #RGB, #RRGGBB or #AARRGGBB (the leading # is optional).
func ParseHex(s string) (Color, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(raw) {
	case 3, 6:
		cf, err := colorful.Hex("#" + raw)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		r, g, b := cf.RGB255()
		return RGB(r, g, b), nil
	case 8:
		v, err := strconv.ParseUint(raw, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		return Color(v), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
}

// MustParseHex is ParseHex for compile-time constants.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats opaque colors as #RRGGBB and translucent ones as #AARRGGBB.
func (c Color) Hex() string {
	if c.A() == 0xFF {
		return fmt.Sprintf("#%02X%02X%02X", c.R(), c.G(), c.B())
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.A(), c.R(), c.G(), c.B())
}

func (c Color) String() string { return c.Hex() }

// AdjustAlpha scales the alpha channel by factor, clamped to [0, 1].
func AdjustAlpha(c Color, factor float64) Color {
	factor = math.Max(0, math.Min(1, factor))
	a := uint8(math.Round(float64(c.A()) * factor))
	return ARGB(a, c.R(), c.G(), c.B())
}

// WithAlpha replaces the alpha channel.
func (c Color) WithAlpha(a uint8) Color {
	return ARGB(a, c.R(), c.G(), c.B())
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R()) / 255,
		G: float64(c.G()) / 255,
		B: float64(c.B()) / 255,
	}
}

// Luminance returns the relative luminance of the RGB channels in [0, 1].
func (c Color) Luminance() float64 {
	r, g, b := c.colorful().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// IsLight reports whether dark content reads better than light content on c.
func IsLight(c Color) bool {
	return c.Luminance() > 0.179
}

// Over composites c onto an opaque background.
func (c Color) Over(bg Color) Color {
	if c.A() == 0xFF {
		return c
	}
	t := float64(c.A()) / 255
	r, g, b := bg.colorful().BlendRgb(c.colorful(), t).Clamped().RGB255()
	return RGB(r, g, b)
}

// Lipgloss returns the color for terminal rendering. Translucent colors are
// composited over black first; use Over for a specific background.
func (c Color) Lipgloss() lipgloss.Color {
	return lipgloss.Color(c.Over(Black).Hex())
}
