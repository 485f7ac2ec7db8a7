package images

import (
	"image"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidDimensions is returned when a grid would have a negative size
	// or is built from ragged rows.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidRegion is returned when a region or offset would read or write
	// outside a grid.
	ErrInvalidRegion = errors.New("invalid region")
)

// Grid is a fixed-size, row-major matrix of pixels.
//
// Coordinates are always (row, col): row is the vertical (y) index and col
// the horizontal (x) index, both 0-based. A grid owns its pixels; no method
// hands out a slice that aliases its storage.
type Grid struct {
	height int
	width  int
	pix    []Pixel
}

// NewGrid creates a black grid with the given dimensions.
//
// Arguments:
// - height: Number of rows, >= 0.
// - width: Number of columns, >= 0.
//
// Returns:
// - The new grid.
// - ErrInvalidDimensions if either dimension is negative.
func NewGrid(height, width int) (*Grid, error) {
	if height < 0 || width < 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "%dx%d", height, width)
	}
	return newGrid(height, width), nil
}

func newGrid(height, width int) *Grid {
	return &Grid{
		height: height,
		width:  width,
		pix:    make([]Pixel, height*width),
	}
}

// GridFromPixels builds a grid from a copy of rows. Every row must have the
// same length.
func GridFromPixels(rows [][]Pixel) (*Grid, error) {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}
	g := newGrid(height, width)
	for r, row := range rows {
		if len(row) != width {
			return nil, errors.Wrapf(ErrInvalidDimensions, "row %d has %d pixels, expected %d", r, len(row), width)
		}
		copy(g.pix[r*width:(r+1)*width], row)
	}
	return g, nil
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// InBounds reports whether (row, col) addresses a pixel of g.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// At returns the pixel at (row, col).
func (g *Grid) At(row, col int) (Pixel, error) {
	if !g.InBounds(row, col) {
		return Pixel{}, errors.Wrapf(ErrOutOfBounds, "(%d,%d) in %dx%d grid", row, col, g.height, g.width)
	}
	return g.at(row, col), nil
}

// Set replaces the pixel at (row, col).
func (g *Grid) Set(row, col int, p Pixel) error {
	if !g.InBounds(row, col) {
		return errors.Wrapf(ErrOutOfBounds, "(%d,%d) in %dx%d grid", row, col, g.height, g.width)
	}
	g.set(row, col, p)
	return nil
}

func (g *Grid) at(row, col int) Pixel {
	return g.pix[row*g.width+col]
}

func (g *Grid) set(row, col int, p Pixel) {
	g.pix[row*g.width+col] = p
}

// Fill sets every pixel to p.
func (g *Grid) Fill(p Pixel) {
	for i := range g.pix {
		g.pix[i] = p
	}
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	c := newGrid(g.height, g.width)
	copy(c.pix, g.pix)
	return c
}

// Equal reports whether g and o have the same dimensions and pixels.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.height != o.height || g.width != o.width {
		return false
	}
	for i := range g.pix {
		if g.pix[i] != o.pix[i] {
			return false
		}
	}
	return true
}

// Pixels returns a copy of the grid as nested rows, indexed [row][col].
func (g *Grid) Pixels() [][]Pixel {
	rows := make([][]Pixel, g.height)
	for r := range rows {
		rows[r] = make([]Pixel, g.width)
		copy(rows[r], g.pix[r*g.width:(r+1)*g.width])
	}
	return rows
}

// FromImage converts an image.Image to a grid. Alpha is discarded.
func FromImage(img image.Image) *Grid {
	bounds := img.Bounds()
	g := newGrid(bounds.Dy(), bounds.Dx())
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			g.set(row, col, PixelFromColor(img.At(bounds.Min.X+col, bounds.Min.Y+row)))
		}
	}
	return g
}

// ToImage converts the grid to an opaque image.RGBA with x = col, y = row.
func (g *Grid) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.width, g.height))
	for row := 0; row < g.height; row++ {
		off := row * img.Stride
		for col := 0; col < g.width; col++ {
			p := g.at(row, col)
			img.Pix[off+0] = p.R
			img.Pix[off+1] = p.G
			img.Pix[off+2] = p.B
			img.Pix[off+3] = 255
			off += 4
		}
	}
	return img
}
