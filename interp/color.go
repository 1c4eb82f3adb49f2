package interp

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned when a hex color string cannot be parsed.
var ErrInvalidColor = errors.New("invalid hex color")

// Color is a straight (non premultiplied) RGBA color with channels in [0, 1].
type Color struct {
	R, G, B, A float64
}

var (
	Black = Color{R: 0, G: 0, B: 0, A: 1}
	White = Color{R: 1, G: 1, B: 1, A: 1}
	Clear = Color{}
)

// ColorFromRGBA converts any image color into a straight-alpha Color.
func ColorFromRGBA(c color.Color) Color {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		R: float64(nrgba.R) / 255,
		G: float64(nrgba.G) / 255,
		B: float64(nrgba.B) / 255,
		A: float64(nrgba.A) / 255,
	}
}

// NRGBA converts to an 8-bit straight-alpha color, clamping out of range channels.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}
}

// Colorful returns the RGB part as a colorful.Color.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// Hex formats the color as #rrggbbaa.
func (c Color) Hex() string {
	return fmt.Sprintf("%s%02x", c.Colorful().Clamped().Hex(), to8(c.A))
}

// ParseHexColor parses #rgb, #rrggbb or #rrggbbaa. Alpha defaults to 1.
func ParseHexColor(s string) (Color, error) {
	alpha := 1.0
	rgb := s
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:9], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w %q: %v", ErrInvalidColor, s, err)
		}
		alpha = float64(a) / 255
		rgb = s[:7]
	}

	cf, err := colorful.Hex(rgb)
	if err != nil {
		return Color{}, fmt.Errorf("%w %q: %v", ErrInvalidColor, s, err)
	}
	return Color{R: cf.R, G: cf.G, B: cf.B, A: alpha}, nil
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}
