package cosmo

import (
	"fmt"
	"image/color"
	"math"
)

var (
	White       = Color{1, 1, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Transparent = Color{}
)

// Color holds normalized channel values. Channels are allowed to leave
// [0,1] during blending and are clamped only when converted to a
// representable pixel, so overshooting lerp factors and emissive
// brightness never wrap or panic.
type Color struct {
	R, G, B, A float64
}

// RGB builds an opaque color from 8-bit channel values.
func RGB(r, g, b uint8) Color {
	const d = 1.0 / 255
	return Color{float64(r) * d, float64(g) * d, float64(b) * d, 1}
}

// HexColor parses "RGB", "RRGGBB" or "RRGGBBAA", with or without a
// leading "#".
func HexColor(x string) Color {
	if len(x) > 0 && x[0] == '#' {
		x = x[1:]
	}
	var r, g, b, a int
	a = 255
	switch len(x) {
	case 3:
		fmt.Sscanf(x, "%1x%1x%1x", &r, &g, &b)
		r = (r << 4) | r
		g = (g << 4) | g
		b = (b << 4) | b
	case 6:
		fmt.Sscanf(x, "%02x%02x%02x", &r, &g, &b)
	case 8:
		fmt.Sscanf(x, "%02x%02x%02x%02x", &r, &g, &b, &a)
	}
	const d = 1.0 / 255
	return Color{float64(r) * d, float64(g) * d, float64(b) * d, float64(a) * d}
}

// MakeColor converts a stdlib color.
func MakeColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	const d = 1.0 / 65535
	return Color{float64(r) * d, float64(g) * d, float64(b) * d, float64(a) * d}
}

func (a Color) Add(b Color) Color {
	return Color{a.R + b.R, a.G + b.G, a.B + b.B, a.A}
}

func (a Color) Sub(b Color) Color {
	return Color{a.R - b.R, a.G - b.G, a.B - b.B, a.A}
}

func (a Color) Mul(b Color) Color {
	return Color{a.R * b.R, a.G * b.G, a.B * b.B, a.A}
}

// MulScalar scales the color channels by t, leaving alpha alone.
// t may exceed 1; clamping happens at the NRGBA boundary.
func (a Color) MulScalar(t float64) Color {
	return Color{a.R * t, a.G * t, a.B * t, a.A}
}

// Lerp blends toward b by t. t is deliberately not clamped: overlay
// remaps routinely push it past 1 and rely on channel clamping at the
// representation boundary instead.
func (a Color) Lerp(b Color, t float64) Color {
	return Color{
		a.R + (b.R-a.R)*t,
		a.G + (b.G-a.G)*t,
		a.B + (b.B-a.B)*t,
		a.A + (b.A-a.A)*t}
}

func (a Color) Alpha(alpha float64) Color {
	return Color{a.R, a.G, a.B, alpha}
}

func (a Color) Min(b Color) Color {
	return Color{math.Min(a.R, b.R), math.Min(a.G, b.G), math.Min(a.B, b.B), math.Min(a.A, b.A)}
}

func (a Color) Max(b Color) Color {
	return Color{math.Max(a.R, b.R), math.Max(a.G, b.G), math.Max(a.B, b.B), math.Max(a.A, b.A)}
}

// NRGBA clamps each channel into [0,1] and converts to 8-bit, rounding
// to the nearest step. This is the single place where out-of-range
// channel values are resolved.
func (a Color) NRGBA() color.NRGBA {
	r := uint8(math.Round(Clamp(a.R, 0, 1) * 255))
	g := uint8(math.Round(Clamp(a.G, 0, 1) * 255))
	b := uint8(math.Round(Clamp(a.B, 0, 1) * 255))
	alpha := uint8(math.Round(Clamp(a.A, 0, 1) * 255))
	return color.NRGBA{r, g, b, alpha}
}
