package images

import (
	"github.com/pkg/errors"
)

// messageDarkDistance is how close to black a message pixel must be to count
// as "ink" when encoding.
const messageDarkDistance = 50

// Chromakey replaces every pixel whose color distance to key is below
// tolerance with the background pixel at the same position.
//
// The background must be at least as tall and wide as g; otherwise nothing
// is written and a wrapped ErrInvalidRegion is returned.
func (g *Grid) Chromakey(background *Grid, key Pixel, tolerance float32) error {
	if background == nil {
		return errors.Wrap(ErrInvalidRegion, "nil background grid")
	}
	if background.height < g.height || background.width < g.width {
		return errors.Wrapf(ErrInvalidRegion, "background %dx%d smaller than %dx%d grid",
			background.height, background.width, g.height, g.width)
	}
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			if ColorDistance(g.at(row, col), key) < tolerance {
				g.set(row, col, background.at(row, col))
			}
		}
	}
	return nil
}

// Encode hides a black-and-white message in the lowest bit of the red
// channel. Every red value is first made even; it is then made odd wherever
// the message pixel at the same position is dark.
//
// message must have the same dimensions as g.
func (g *Grid) Encode(message *Grid) error {
	if message == nil {
		return errors.Wrap(ErrInvalidDimensions, "nil message grid")
	}
	if message.height != g.height || message.width != g.width {
		return errors.Wrapf(ErrInvalidDimensions, "message %dx%d does not match %dx%d grid",
			message.height, message.width, g.height, g.width)
	}
	for i, p := range g.pix {
		p.R &^= 1
		if ColorDistance(message.pix[i], Black) < messageDarkDistance {
			p.R |= 1
		}
		g.pix[i] = p
	}
	return nil
}

// Decode extracts a message hidden by Encode: the result is black where the
// red channel is odd and white elsewhere. g is not modified.
func (g *Grid) Decode() *Grid {
	out := newGrid(g.height, g.width)
	for i, p := range g.pix {
		if p.R&1 == 1 {
			out.pix[i] = Black
		} else {
			out.pix[i] = White
		}
	}
	return out
}
