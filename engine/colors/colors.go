package colors

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Color is RGBA with each channel in [0,1]. Values are never clamped; out of
// range channels are passed through to the backend untouched.
type Color [4]float32

var (
	White       = Color{1, 1, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Blue        = Color{0, 0, 1, 1}
	Yellow      = Color{1, 1, 0, 1}
	Magenta     = Color{1, 0, 1, 1}
	Cyan        = Color{0, 1, 1, 1}
	Gray        = Color{0.5, 0.5, 0.5, 1}
	DarkGray    = Color{0.08, 0.10, 0.12, 1}
	Transparent = Color{0, 0, 0, 0}
)

func (c Color) R() float32 { return c[0] }
func (c Color) G() float32 { return c[1] }
func (c Color) B() float32 { return c[2] }
func (c Color) A() float32 { return c[3] }

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// NRGBA converts to 8-bit non-premultiplied color, saturating out of range
// channels since image/color cannot represent them.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: to8(c[0]), G: to8(c[1]), B: to8(c[2]), A: to8(c[3])}
}

func to8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// FromHex builds an opaque color from a packed 0xRRGGBB value.
func FromHex(rgb uint32) Color {
	return Color{
		float32((rgb>>16)&0xFF) / 255,
		float32((rgb>>8)&0xFF) / 255,
		float32(rgb&0xFF) / 255,
		1,
	}
}

// FromHexRGBA builds a color from a packed 0xRRGGBBAA value.
func FromHexRGBA(rgba uint32) Color {
	return Color{
		float32((rgba>>24)&0xFF) / 255,
		float32((rgba>>16)&0xFF) / 255,
		float32((rgba>>8)&0xFF) / 255,
		float32(rgba&0xFF) / 255,
	}
}

// ParseHex accepts "#rrggbb", "#rrggbbaa" and the same forms without '#'.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parse hex color %q: %w", s, err)
	}
	switch len(h) {
	case 6:
		return FromHex(uint32(v)), nil
	case 8:
		return FromHexRGBA(uint32(v)), nil
	default:
		return Color{}, fmt.Errorf("parse hex color %q: want 6 or 8 digits", s)
	}
}

// Random returns an opaque color with uniformly random RGB channels.
func Random() Color {
	return Color{rand.Float32(), rand.Float32(), rand.Float32(), 1}
}

// RandomFrom is Random with a caller-owned source.
func RandomFrom(r *rand.Rand) Color {
	return Color{r.Float32(), r.Float32(), r.Float32(), 1}
}

// Lerp blends a toward b; t is clamped to [0,1].
func Lerp(a, b Color, t float32) Color {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	var out Color
	for i := range out {
		out[i] = a[i] + (b[i]-a[i])*t
	}
	return out
}
