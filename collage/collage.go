package collage

import (
	"github.com/pkg/errors"

	"github.com/nvr-ai/picturelab/images"
)

// Loader loads a picture from a path.
type Loader interface {
	LoadPicture(path string) (*images.Picture, error)
}

// Saver persists a picture to a path.
type Saver interface {
	SavePicture(p *images.Picture, path string) error
}

// Builder assembles collages from a Config.
type Builder struct {
	loader Loader
	saver  Saver
}

// NewBuilder creates a builder. saver may be nil if no configuration passed
// to Build sets Output.
func NewBuilder(loader Loader, saver Saver) *Builder {
	return &Builder{loader: loader, saver: saver}
}

// Build creates the canvas, then for each tile loads a fresh copy of the
// source, applies its steps, and copies its region onto the canvas. If
// cfg.Output is set the result is saved there.
//
// Arguments:
// - cfg: The collage layout; it is validated first.
//
// Returns:
// - The finished canvas.
// - error naming the failing tile if any load, step, copy or save fails.
//
// @example
// b := NewBuilder(util.Codec{}, util.Codec{})
// pic, err := b.Build(DefaultConfig())
func (b *Builder) Build(cfg *Config) (*images.Picture, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	canvas, err := b.canvas(cfg.Canvas)
	if err != nil {
		return nil, errors.Wrap(err, "canvas")
	}

	for i, t := range cfg.Tiles {
		if err := b.place(canvas, t); err != nil {
			return nil, errors.Wrapf(err, "tile %d (%s)", i, t.Source)
		}
		images.Logger().Info("placed collage tile", "tile", i, "source", t.Source, "dest_row", t.DestRow, "dest_col", t.DestCol)
	}

	if cfg.Output != "" {
		if b.saver == nil {
			return nil, errors.Wrap(ErrInvalidConfig, "output set but builder has no saver")
		}
		canvas.Name = cfg.Output
		if err := b.saver.SavePicture(canvas, cfg.Output); err != nil {
			return nil, errors.Wrap(err, "save collage")
		}
	}
	return canvas, nil
}

func (b *Builder) canvas(c Canvas) (*images.Picture, error) {
	if c.Path != "" {
		return b.loader.LoadPicture(c.Path)
	}
	height, width, err := c.dimensions()
	if err != nil {
		return nil, err
	}
	return images.NewPicture(height, width)
}

func (b *Builder) place(canvas *images.Picture, t Tile) error {
	src, err := b.loader.LoadPicture(t.Source)
	if err != nil {
		return err
	}
	if err := images.ApplyAll(src.Grid, t.Steps); err != nil {
		return err
	}

	region := images.RegionOf(src.Grid)
	if t.Region != nil {
		region = *t.Region
	}
	return canvas.CopyRegion(src.Grid, region, t.DestRow, t.DestCol)
}
