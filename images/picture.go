package images

import "fmt"

// Picture is a pixel grid with a display/file name. All grid operations are
// available on a Picture through the embedded *Grid.
type Picture struct {
	*Grid
	// Name is the file or display name of the picture.
	Name string
}

// NewPicture creates a white picture with the given dimensions.
//
// Arguments:
// - height: Number of rows.
// - width: Number of columns.
//
// Returns:
// - The new picture.
// - ErrInvalidDimensions if either dimension is negative.
//
// @example
// canvas, err := NewPicture(480, 640)
func NewPicture(height, width int) (*Picture, error) {
	g, err := NewGrid(height, width)
	if err != nil {
		return nil, err
	}
	g.Fill(White)
	return &Picture{Grid: g}, nil
}

// NewPictureFromGrid wraps an existing grid. The picture takes ownership of g.
func NewPictureFromGrid(name string, g *Grid) *Picture {
	return &Picture{Grid: g, Name: name}
}

// Copy returns a deep copy of the picture.
func (p *Picture) Copy() *Picture {
	return &Picture{Grid: p.Grid.Clone(), Name: p.Name}
}

// ScaleByHalf returns a new picture half the height and width of p, sampled
// at even rows and columns. p is not modified.
func (p *Picture) ScaleByHalf() *Picture {
	return &Picture{Grid: p.Grid.ScaleByHalf(), Name: p.Name}
}

// String returns the picture's file name and dimensions.
func (p *Picture) String() string {
	return fmt.Sprintf("Picture, filename %s height %d width %d", p.Name, p.Height(), p.Width())
}
