package images

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

// Map replaces every pixel p of g with fn(p), row by row.
func (g *Grid) Map(fn func(Pixel) Pixel) {
	for i, p := range g.pix {
		g.pix[i] = fn(p)
	}
}

// ZeroBlue sets the blue channel of every pixel to 0.
func (g *Grid) ZeroBlue() {
	g.Map(func(p Pixel) Pixel {
		p.B = 0
		return p
	})
}

// KeepOnlyBlue sets the red and green channels of every pixel to 0.
func (g *Grid) KeepOnlyBlue() {
	g.Map(func(p Pixel) Pixel {
		return Pixel{B: p.B}
	})
}

// KeepOnlyRed sets the green and blue channels of every pixel to 0.
func (g *Grid) KeepOnlyRed() {
	g.Map(func(p Pixel) Pixel {
		return Pixel{R: p.R}
	})
}

// KeepOnlyGreen sets the red and blue channels of every pixel to 0.
func (g *Grid) KeepOnlyGreen() {
	g.Map(func(p Pixel) Pixel {
		return Pixel{G: p.G}
	})
}

// Negate replaces every channel c with 255 - c.
func (g *Grid) Negate() {
	g.Map(func(p Pixel) Pixel {
		return Pixel{R: 255 - p.R, G: 255 - p.G, B: 255 - p.B}
	})
}

// Grayscale sets all three channels to the integer mean of the original
// channels.
func (g *Grid) Grayscale() {
	g.Map(func(p Pixel) Pixel {
		avg := uint8((int(p.R) + int(p.G) + int(p.B)) / 3)
		return Pixel{R: avg, G: avg, B: avg}
	})
}

// Sepia tints the grid brown. The branch taken depends on the pixel's
// original red value:
//   - red < 60: all channels x0.9
//   - red < 190: blue x0.8
//   - otherwise: blue x0.9
func (g *Grid) Sepia() {
	g.Map(func(p Pixel) Pixel {
		switch {
		case p.R < 60:
			return Pixel{R: scaleChannel(p.R, 0.9), G: scaleChannel(p.G, 0.9), B: scaleChannel(p.B, 0.9)}
		case p.R < 190:
			p.B = scaleChannel(p.B, 0.8)
		default:
			p.B = scaleChannel(p.B, 0.9)
		}
		return p
	})
}

// MoreRed warms the grid. The branch taken depends on the pixel's original
// blue value:
//   - blue < 100: red x1.1, green x1.05, blue x0.9
//   - blue < 200: green x0.9, blue x0.8
//   - otherwise: red x1.1
//
// Results are clamped to 255.
func (g *Grid) MoreRed() {
	g.Map(func(p Pixel) Pixel {
		switch {
		case p.B < 100:
			return Pixel{R: scaleChannel(p.R, 1.1), G: scaleChannel(p.G, 1.05), B: scaleChannel(p.B, 0.9)}
		case p.B < 200:
			p.G = scaleChannel(p.G, 0.9)
			p.B = scaleChannel(p.B, 0.8)
		default:
			p.R = scaleChannel(p.R, 1.1)
		}
		return p
	})
}

// FixUnderwater raises blue by 20 where blue exceeds green and lowers it by
// 20 elsewhere, clamped to [0, 255].
func (g *Grid) FixUnderwater() {
	g.Map(func(p Pixel) Pixel {
		if p.B > p.G {
			p.B = clampChannel(int(p.B) + 20)
		} else {
			p.B = clampChannel(int(p.B) - 20)
		}
		return p
	})
}

// ClearBlueOverValue sets blue to 0 wherever it is greater than v.
func (g *Grid) ClearBlueOverValue(v int) {
	g.Map(func(p Pixel) Pixel {
		if int(p.B) > v {
			p.B = 0
		}
		return p
	})
}

// SetRedToHalfValueInTopHalf halves the red channel of every pixel in rows
// [0, height/2).
func (g *Grid) SetRedToHalfValueInTopHalf() {
	for row := 0; row < g.height/2; row++ {
		for col := 0; col < g.width; col++ {
			p := g.at(row, col)
			p.R /= 2
			g.set(row, col, p)
		}
	}
}

// CountRedOverValue returns how many pixels have a red channel greater than v.
func (g *Grid) CountRedOverValue(v int) int {
	n := 0
	for _, p := range g.pix {
		if int(p.R) > v {
			n++
		}
	}
	return n
}

// AverageForColumn returns the mean of Pixel.Average over one column.
//
// Arguments:
// - col: The column index.
//
// Returns:
// - The mean brightness of the column.
// - ErrOutOfBounds if col is not a column of g or g has no rows.
func (g *Grid) AverageForColumn(col int) (float64, error) {
	if col < 0 || col >= g.width || g.height == 0 {
		return 0, errors.Wrapf(ErrOutOfBounds, "column %d in %dx%d grid", col, g.height, g.width)
	}
	values := make([]float64, g.height)
	for row := range values {
		values[row] = g.at(row, col).Average()
	}
	return stat.Mean(values, nil), nil
}

// ChannelStats holds the mean and standard deviation of one color channel.
type ChannelStats struct {
	Mean   float64 `json:"mean" yaml:"mean"`
	StdDev float64 `json:"std_dev" yaml:"std_dev"`
}

// Stats summarizes each channel of the grid. An empty grid yields zero
// values.
func (g *Grid) Stats() (red, green, blue ChannelStats) {
	if len(g.pix) == 0 {
		return
	}
	rs := make([]float64, len(g.pix))
	gs := make([]float64, len(g.pix))
	bs := make([]float64, len(g.pix))
	for i, p := range g.pix {
		rs[i], gs[i], bs[i] = float64(p.R), float64(p.G), float64(p.B)
	}
	summarize := func(xs []float64) ChannelStats {
		mean, std := stat.MeanStdDev(xs, nil)
		if len(xs) < 2 {
			std = 0
		}
		return ChannelStats{Mean: mean, StdDev: std}
	}
	return summarize(rs), summarize(gs), summarize(bs)
}
