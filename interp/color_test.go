package interp

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#fff", White},
		{"#000000", Black},
		{"#ff0000", Color{R: 1, A: 1}},
		{"#00ff0000", Color{G: 1}},
		{"#0000ffff", Color{B: 1, A: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseHexColorInvalid(t *testing.T) {
	for _, in := range []string{"", "fff", "#ff", "#gggggg", "#ffffffzz", "#ffffff0"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseHexColor(in)
			assert.ErrorIs(t, err, ErrInvalidColor)
		})
	}
}

func TestColorHex(t *testing.T) {
	assert.Equal(t, "#ffffffff", White.Hex())
	assert.Equal(t, "#00000000", Clear.Hex())
	assert.Equal(t, "#ff800000", Color{R: 1, G: 0.5}.Hex())
	assert.Equal(t, "#ffffffff", Color{R: 2, G: 1, B: 1.5, A: 3}.Hex(), "out of range channels are clamped")

	c, err := ParseHexColor("#3080ffc0")
	require.NoError(t, err)
	assert.Equal(t, "#3080ffc0", c.Hex())
}

func TestColorNRGBA(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 255, G: 128, B: 0, A: 255}, Color{R: 1, G: 0.5, A: 1}.NRGBA())
	assert.Equal(t, color.NRGBA{}, Color{R: -1, G: -0.5, B: -2}.NRGBA())

	back := ColorFromRGBA(color.NRGBA{R: 255, G: 0, B: 255, A: 255})
	assert.Equal(t, Color{R: 1, B: 1, A: 1}, back)
}
