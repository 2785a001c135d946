package flatgl

import (
	"fmt"
	"image/color"
	"math"
)

var (
	Transparent = Color{}
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}
)

// Color is an RGBA color with float64 components. Components are
// conventionally in [0, 1] but nothing in this package clamps them; the
// vertex stage forwards colors exactly as supplied.
type Color struct {
	R, G, B, A float64
}

// MakeColor converts a standard library color.
func MakeColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Color{}
	}
	// un-premultiply
	fa := float64(a) / 65535
	return Color{
		float64(r) / float64(a),
		float64(g) / float64(a),
		float64(b) / float64(a),
		fa}
}

// HexColor parses "#rgb", "#rrggbb" or "#rrggbbaa", with or without the
// leading '#'. Digits that fail to parse are read as zero.
func HexColor(x string) Color {
	if len(x) > 0 && x[0] == '#' {
		x = x[1:]
	}
	var r, g, b int
	a := 255
	switch len(x) {
	case 3:
		fmt.Sscanf(x, "%1x%1x%1x", &r, &g, &b)
		r = r*16 + r
		g = g*16 + g
		b = b*16 + b
	case 6:
		fmt.Sscanf(x, "%02x%02x%02x", &r, &g, &b)
	case 8:
		fmt.Sscanf(x, "%02x%02x%02x%02x", &r, &g, &b, &a)
	}
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, float64(a) / 255}
}

// NRGBA converts to a non-premultiplied 8-bit color, clamping to [0, 1].
func (a Color) NRGBA() color.NRGBA {
	c := a.Clamp()
	return color.NRGBA{
		uint8(c.R * 255),
		uint8(c.G * 255),
		uint8(c.B * 255),
		uint8(c.A * 255)}
}

func (a Color) Add(b Color) Color {
	return Color{a.R + b.R, a.G + b.G, a.B + b.B, a.A + b.A}
}

func (a Color) Sub(b Color) Color {
	return Color{a.R - b.R, a.G - b.G, a.B - b.B, a.A - b.A}
}

func (a Color) Mul(b Color) Color {
	return Color{a.R * b.R, a.G * b.G, a.B * b.B, a.A * b.A}
}

func (a Color) MulScalar(s float64) Color {
	return Color{a.R * s, a.G * s, a.B * s, a.A * s}
}

func (a Color) DivScalar(s float64) Color {
	return Color{a.R / s, a.G / s, a.B / s, a.A / s}
}

func (a Color) Lerp(b Color, t float64) Color {
	return a.Add(b.Sub(a).MulScalar(t))
}

func (a Color) Min(b Color) Color {
	return Color{
		math.Min(a.R, b.R),
		math.Min(a.G, b.G),
		math.Min(a.B, b.B),
		math.Min(a.A, b.A)}
}

func (a Color) Max(b Color) Color {
	return Color{
		math.Max(a.R, b.R),
		math.Max(a.G, b.G),
		math.Max(a.B, b.B),
		math.Max(a.A, b.A)}
}

// Alpha returns the color with its alpha replaced.
func (a Color) Alpha(alpha float64) Color {
	return Color{a.R, a.G, a.B, alpha}
}

// Clamp limits all components to [0, 1]. Callers that need clamped colors
// apply this themselves; the pipeline never does.
func (a Color) Clamp() Color {
	return a.Min(White).Max(Transparent)
}
