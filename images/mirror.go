package images

import (
	"github.com/pkg/errors"
)

// MirrorVertical mirrors the grid about a vertical line through its center,
// copying the left half onto the right half. For odd widths the center
// column is unchanged.
func (g *Grid) MirrorVertical() {
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width/2; col++ {
			g.set(row, g.width-1-col, g.at(row, col))
		}
	}
}

// MirrorVerticalRightToLeft copies the right half of the grid onto the left
// half.
func (g *Grid) MirrorVerticalRightToLeft() {
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width/2; col++ {
			g.set(row, col, g.at(row, g.width-1-col))
		}
	}
}

// MirrorHorizontal mirrors the grid about a horizontal line through its
// center, copying the top half onto the bottom half.
func (g *Grid) MirrorHorizontal() {
	for row := 0; row < g.height/2; row++ {
		for col := 0; col < g.width; col++ {
			g.set(g.height-1-row, col, g.at(row, col))
		}
	}
}

// MirrorHorizontalBottomToTop copies the bottom half of the grid onto the
// top half.
func (g *Grid) MirrorHorizontalBottomToTop() {
	for row := 0; row < g.height/2; row++ {
		for col := 0; col < g.width; col++ {
			g.set(row, col, g.at(g.height-1-row, col))
		}
	}
}

// MirrorDiagonal reflects the top-left min(height, width) square about its
// main diagonal using a single row-major pass that copies (row, col) onto
// (col, row).
//
// Because every off-diagonal pair is visited twice, the second visit writes
// back the value the first visit just copied. The net effect is that the
// upper triangle (row < col) is copied onto the lower triangle and the upper
// triangle keeps its original colors.
func (g *Grid) MirrorDiagonal() {
	bound := min(g.height, g.width)
	for row := 0; row < bound; row++ {
		for col := 0; col < bound; col++ {
			g.set(col, row, g.at(row, col))
		}
	}
}

// Axis names the line a region is reflected about.
type Axis string

const (
	// AxisVertical reflects columns about a vertical line at the mirror point.
	AxisVertical Axis = "vertical"
	// AxisHorizontal reflects rows about a horizontal line at the mirror point.
	AxisHorizontal Axis = "horizontal"
)

// MirrorRegion copies every pixel of region to its reflection about the
// mirror point: for AxisVertical (row, col) goes to (row, 2*mirrorPoint-col),
// for AxisHorizontal (row, col) goes to (2*mirrorPoint-row, col).
//
// The region and its reflection must both lie inside g; otherwise nothing is
// written and a wrapped ErrInvalidRegion is returned. Pixels are processed
// row-major.
//
// Arguments:
// - region: The inclusive source window.
// - axis: AxisVertical or AxisHorizontal.
// - mirrorPoint: The column (vertical) or row (horizontal) of the axis.
//
// Returns:
// - error if the window or its reflection is out of range, or axis is unknown.
//
// @example
// err := pic.MirrorRegion(Region{StartRow: 27, EndRow: 96, StartCol: 13, EndCol: 275}, AxisVertical, 276)
func (g *Grid) MirrorRegion(region Region, axis Axis, mirrorPoint int) error {
	if err := checkRegion(g, region, "mirror window"); err != nil {
		return err
	}

	var reflected Region
	switch axis {
	case AxisVertical:
		reflected = Region{
			StartRow: region.StartRow,
			EndRow:   region.EndRow,
			StartCol: 2*mirrorPoint - region.EndCol,
			EndCol:   2*mirrorPoint - region.StartCol,
		}
	case AxisHorizontal:
		reflected = Region{
			StartRow: 2*mirrorPoint - region.EndRow,
			EndRow:   2*mirrorPoint - region.StartRow,
			StartCol: region.StartCol,
			EndCol:   region.EndCol,
		}
	default:
		return errors.Wrapf(ErrInvalidRegion, "unknown axis %q", axis)
	}
	if err := checkRegion(g, reflected, "reflection"); err != nil {
		return err
	}

	count := 0
	for row := region.StartRow; row <= region.EndRow; row++ {
		for col := region.StartCol; col <= region.EndCol; col++ {
			if axis == AxisVertical {
				g.set(row, 2*mirrorPoint-col, g.at(row, col))
			} else {
				g.set(2*mirrorPoint-row, col, g.at(row, col))
			}
			count++
		}
	}

	Logger().Debug("mirrored region", "region", region.String(), "axis", string(axis), "mirror_point", mirrorPoint, "count", count)
	return nil
}

// MirrorPreset is a named mirror window, usually tuned for one picture.
type MirrorPreset struct {
	Name        string `json:"name" yaml:"name"`
	Region      Region `json:"region" yaml:"region"`
	Axis        Axis   `json:"axis" yaml:"axis"`
	MirrorPoint int    `json:"mirror_point" yaml:"mirror_point"`
}

// Built-in presets for the sample pictures.
var (
	// TemplePreset completes the temple roof in temple.jpg.
	TemplePreset = MirrorPreset{
		Name:        "temple",
		Region:      Region{StartRow: 27, EndRow: 96, StartCol: 13, EndCol: 275},
		Axis:        AxisVertical,
		MirrorPoint: 276,
	}
	// ArmsPreset gives the snowman in snowman.jpg a second pair of arms.
	ArmsPreset = MirrorPreset{
		Name:        "arms",
		Region:      Region{StartRow: 159, EndRow: 193, StartCol: 105, EndCol: 292},
		Axis:        AxisHorizontal,
		MirrorPoint: 194,
	}
	// GullPreset duplicates the seagull in seagull.jpg.
	GullPreset = MirrorPreset{
		Name:        "gull",
		Region:      Region{StartRow: 234, EndRow: 319, StartCol: 237, EndCol: 343},
		Axis:        AxisVertical,
		MirrorPoint: 344,
	}
)

// DefaultMirrorPresets returns the built-in presets keyed by name.
func DefaultMirrorPresets() map[string]MirrorPreset {
	return map[string]MirrorPreset{
		TemplePreset.Name: TemplePreset,
		ArmsPreset.Name:   ArmsPreset,
		GullPreset.Name:   GullPreset,
	}
}

// ApplyPreset runs MirrorRegion with the preset's window.
func (g *Grid) ApplyPreset(p MirrorPreset) error {
	if err := g.MirrorRegion(p.Region, p.Axis, p.MirrorPoint); err != nil {
		return errors.Wrapf(err, "preset %q", p.Name)
	}
	return nil
}
