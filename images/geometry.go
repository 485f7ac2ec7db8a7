package images

import (
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// CopyRegion copies the inclusive region of src into g so that the region's
// top-left corner lands at (destRow, destCol).
//
// Both the source region and its translated destination must lie inside
// their grids; otherwise nothing is written and a wrapped ErrInvalidRegion
// is returned. src may be g itself; the copy then reads from a snapshot.
//
// Arguments:
// - src: The grid to copy from.
// - region: The inclusive source rectangle.
// - destRow, destCol: Where region.StartRow/StartCol land in g.
//
// Returns:
// - error if the region or its destination is out of range.
//
// @example
// err := canvas.CopyRegion(tile, Region{StartRow: 16, EndRow: 255, EndCol: 255}, 0, 255)
func (g *Grid) CopyRegion(src *Grid, region Region, destRow, destCol int) error {
	if src == nil {
		return errors.Wrap(ErrInvalidRegion, "nil source grid")
	}
	if err := checkRegion(src, region, "source"); err != nil {
		return err
	}
	if err := checkRegion(g, region.Translate(destRow, destCol), "destination"); err != nil {
		return err
	}
	if src == g {
		src = g.Clone()
	}

	dr := destRow - region.StartRow
	dc := destCol - region.StartCol
	for row := region.StartRow; row <= region.EndRow; row++ {
		for col := region.StartCol; col <= region.EndCol; col++ {
			g.set(row+dr, col+dc, src.at(row, col))
		}
	}

	Logger().Debug("copied region", "region", region.String(), "dest_row", destRow, "dest_col", destCol)
	return nil
}

// CopyFrom copies as much of src as fits into g starting at
// (destRow, destCol). Rows and columns stop independently at whichever grid
// edge is reached first.
//
// Returns a wrapped ErrInvalidRegion for a negative offset.
func (g *Grid) CopyFrom(src *Grid, destRow, destCol int) error {
	if src == nil {
		return errors.Wrap(ErrInvalidRegion, "nil source grid")
	}
	if destRow < 0 || destCol < 0 {
		return errors.Wrapf(ErrInvalidRegion, "negative destination offset (%d,%d)", destRow, destCol)
	}
	if src == g {
		src = g.Clone()
	}

	for fromRow, toRow := 0, destRow; fromRow < src.height && toRow < g.height; fromRow, toRow = fromRow+1, toRow+1 {
		for fromCol, toCol := 0, destCol; fromCol < src.width && toCol < g.width; fromCol, toCol = fromCol+1, toCol+1 {
			g.set(toRow, toCol, src.at(fromRow, fromCol))
		}
	}
	return nil
}

// ScaleByHalf returns a new grid of half the height and width (integer
// division). Cell (r, c) takes the color of source cell (2r, 2c); there is
// no averaging. g is not modified.
func (g *Grid) ScaleByHalf() *Grid {
	dst := newGrid(g.height/2, g.width/2)
	for row := 0; row < dst.height; row++ {
		for col := 0; col < dst.width; col++ {
			dst.set(row, col, g.at(2*row, 2*col))
		}
	}
	return dst
}

// Interpolation selects the resampling kernel used by Resize.
type Interpolation string

const (
	// InterpolationNearest is nearest-neighbor sampling.
	InterpolationNearest Interpolation = "nearest"
	// InterpolationBilinear is bilinear interpolation.
	InterpolationBilinear Interpolation = "bilinear"
	// InterpolationBicubic is bicubic interpolation.
	InterpolationBicubic Interpolation = "bicubic"
	// InterpolationLanczos is Lanczos resampling with a=3.
	InterpolationLanczos Interpolation = "lanczos"
)

var interpolations = map[Interpolation]resize.InterpolationFunction{
	InterpolationNearest:  resize.NearestNeighbor,
	InterpolationBilinear: resize.Bilinear,
	InterpolationBicubic:  resize.Bicubic,
	InterpolationLanczos:  resize.Lanczos3,
}

// Resize returns a new grid resampled to height x width. g is not modified.
//
// Arguments:
// - height, width: The target size, both > 0.
// - interp: The resampling kernel; "" means Lanczos.
//
// Returns:
// - The resized grid.
// - error if the dimensions are not positive or interp is unknown.
//
// @example
// thumb, err := pic.Resize(120, 160, InterpolationBilinear)
func (g *Grid) Resize(height, width int, interp Interpolation) (*Grid, error) {
	if height <= 0 || width <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "resize to %dx%d", height, width)
	}
	if interp == "" {
		interp = InterpolationLanczos
	}
	fn, ok := interpolations[interp]
	if !ok {
		return nil, errors.Errorf("unknown interpolation %q", interp)
	}
	if g.height == 0 || g.width == 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "resize of empty %dx%d grid", g.height, g.width)
	}

	resized := resize.Resize(uint(width), uint(height), g.ToImage(), fn)
	return FromImage(resized), nil
}
