// Package images - Region definitions for grid operations.
package images

import (
	"fmt"
	"image"

	"github.com/pkg/errors"
)

// Region is a rectangle of grid cells with inclusive bounds on both axes:
// rows StartRow..EndRow and columns StartCol..EndCol.
type Region struct {
	StartRow int `json:"start_row" yaml:"start_row"`
	EndRow   int `json:"end_row" yaml:"end_row"`
	StartCol int `json:"start_col" yaml:"start_col"`
	EndCol   int `json:"end_col" yaml:"end_col"`
}

// RegionOf returns the region covering all of g.
func RegionOf(g *Grid) Region {
	return Region{StartRow: 0, EndRow: g.height - 1, StartCol: 0, EndCol: g.width - 1}
}

// Height returns the number of rows covered by the region.
func (r Region) Height() int {
	return r.EndRow - r.StartRow + 1
}

// Width returns the number of columns covered by the region.
func (r Region) Width() int {
	return r.EndCol - r.StartCol + 1
}

// Valid reports whether the region is non-empty and starts at non-negative
// coordinates.
func (r Region) Valid() bool {
	return r.StartRow >= 0 && r.StartCol >= 0 && r.EndRow >= r.StartRow && r.EndCol >= r.StartCol
}

// Within reports whether the region is valid and lies entirely inside a grid
// of the given size.
func (r Region) Within(height, width int) bool {
	return r.Valid() && r.EndRow < height && r.EndCol < width
}

// Translate returns the region moved so its top-left corner is at
// (row, col).
func (r Region) Translate(row, col int) Region {
	return Region{
		StartRow: row,
		EndRow:   row + r.Height() - 1,
		StartCol: col,
		EndCol:   col + r.Width() - 1,
	}
}

// Rect converts the region to an image.Rectangle (x = col, y = row) with
// the usual exclusive maximum.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.StartCol, r.StartRow, r.EndCol+1, r.EndRow+1)
}

// String renders the region as "rows a..b cols c..d".
func (r Region) String() string {
	return fmt.Sprintf("rows %d..%d cols %d..%d", r.StartRow, r.EndRow, r.StartCol, r.EndCol)
}

// checkRegion returns a wrapped ErrInvalidRegion unless r lies inside g.
func checkRegion(g *Grid, r Region, what string) error {
	if !r.Within(g.height, g.width) {
		return errors.Wrapf(ErrInvalidRegion, "%s %s outside %dx%d grid", what, r, g.height, g.width)
	}
	return nil
}
