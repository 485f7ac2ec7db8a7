// Package images - pixel grid and picture operations.
package images

import (
	"fmt"
	"image/color"
)

// Pixel is one red/green/blue sample. Channels are stored as uint8, so a
// stored pixel is always within [0, 255].
type Pixel struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// Common colors.
var (
	Black = Pixel{R: 0, G: 0, B: 0}
	White = Pixel{R: 255, G: 255, B: 255}
)

// RGB creates a pixel from integer channel values, clamping each to [0, 255].
//
// Arguments:
// - r, g, b: Channel values; anything outside [0, 255] is clamped.
//
// Returns:
// - The clamped Pixel.
//
// @example
// p := RGB(300, 20, -5) // Pixel{R: 255, G: 20, B: 0}
func RGB(r, g, b int) Pixel {
	return Pixel{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b)}
}

// Average returns the mean of the three channels.
func (p Pixel) Average() float64 {
	return float64(int(p.R)+int(p.G)+int(p.B)) / 3.0
}

// Color converts the pixel to an opaque color.NRGBA.
func (p Pixel) Color() color.NRGBA {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: 255}
}

// String renders the pixel as "rgb(r,g,b)".
func (p Pixel) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", p.R, p.G, p.B)
}

// PixelFromColor converts any color.Color to a Pixel, dropping alpha.
func PixelFromColor(c color.Color) Pixel {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pixel{R: n.R, G: n.G, B: n.B}
}

// clampChannel restricts v to [0, 255].
func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// scaleChannel multiplies v by f, truncating toward zero before clamping.
func scaleChannel(v uint8, f float64) uint8 {
	return clampChannel(int(float64(v) * f))
}
