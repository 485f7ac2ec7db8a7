// Package collage - builds a collage by placing filtered regions of source
// pictures onto a canvas.
package collage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/nvr-ai/picturelab/images"
)

// ErrInvalidConfig is returned when a collage configuration cannot be used.
var ErrInvalidConfig = errors.New("invalid collage config")

// maxConfigSize caps the size of configuration files read by LoadConfig.
const maxConfigSize = 1 << 20

// Canvas describes the picture tiles are placed on: an image file (Path),
// a blank white picture of a named size (Size, e.g. "vga"), or a blank white
// picture of Height x Width. The first one set wins.
type Canvas struct {
	Path   string `json:"path,omitempty" yaml:"path,omitempty"`
	Size   string `json:"size,omitempty" yaml:"size,omitempty"`
	Height int    `json:"height,omitempty" yaml:"height,omitempty"`
	Width  int    `json:"width,omitempty" yaml:"width,omitempty"`
}

// dimensions returns the blank canvas size for a canvas without a Path.
func (c Canvas) dimensions() (height, width int, err error) {
	if c.Size != "" {
		s, ok := images.SizeByName(c.Size)
		if !ok {
			return 0, 0, errors.Wrapf(ErrInvalidConfig, "unknown canvas size %q", c.Size)
		}
		return s.Height, s.Width, nil
	}
	if c.Height <= 0 || c.Width <= 0 {
		return 0, 0, errors.Wrap(ErrInvalidConfig, "canvas needs a path, a size or positive height and width")
	}
	return c.Height, c.Width, nil
}

// Tile is one placement: a source picture, the steps applied to it, the
// region copied out of it, and where that region lands on the canvas.
type Tile struct {
	Source  string         `json:"source" yaml:"source"`
	Steps   []images.Step  `json:"steps,omitempty" yaml:"steps,omitempty"`
	Region  *images.Region `json:"region,omitempty" yaml:"region,omitempty"`
	DestRow int            `json:"dest_row" yaml:"dest_row"`
	DestCol int            `json:"dest_col" yaml:"dest_col"`
}

// Config is a complete collage layout.
type Config struct {
	Canvas Canvas `json:"canvas" yaml:"canvas"`
	Tiles  []Tile `json:"tiles" yaml:"tiles"`
	// Output is where the finished collage is saved; empty means not saved.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
}

// DefaultConfig returns the classic four-quadrant collage: four copies of
// GeorgiaTech.jpg (unchanged, grayscale+sepia, negated, edge-detected and
// mirrored) placed on the 640x480.jpg canvas and saved as collage.jpg.
func DefaultConfig() *Config {
	region := &images.Region{StartRow: 16, EndRow: 255, StartCol: 0, EndCol: 255}
	return &Config{
		Canvas: Canvas{Path: "640x480.jpg"},
		Tiles: []Tile{
			{Source: "GeorgiaTech.jpg", Region: region, DestRow: 0, DestCol: 0},
			{
				Source:  "GeorgiaTech.jpg",
				Steps:   []images.Step{{Name: "grayscale"}, {Name: "sepia"}},
				Region:  region,
				DestRow: 0, DestCol: 255,
			},
			{
				Source:  "GeorgiaTech.jpg",
				Steps:   []images.Step{{Name: "negate"}},
				Region:  region,
				DestRow: 240, DestCol: 0,
			},
			{
				Source:  "GeorgiaTech.jpg",
				Steps:   []images.Step{{Name: "edgeDetection", Threshold: 25}, {Name: "mirrorVerticalRightToLeft"}},
				Region:  region,
				DestRow: 240, DestCol: 255,
			},
		},
		Output: "collage.jpg",
	}
}

// Validate checks everything that can be checked without loading pictures.
func (c *Config) Validate() error {
	if c.Canvas.Path == "" {
		if _, _, err := c.Canvas.dimensions(); err != nil {
			return err
		}
	}
	if len(c.Tiles) == 0 {
		return errors.Wrap(ErrInvalidConfig, "no tiles")
	}
	for i, t := range c.Tiles {
		if t.Source == "" {
			return errors.Wrapf(ErrInvalidConfig, "tile %d: empty source", i)
		}
		if t.Region != nil && !t.Region.Valid() {
			return errors.Wrapf(ErrInvalidConfig, "tile %d: bad region %s", i, t.Region)
		}
		if t.DestRow < 0 || t.DestCol < 0 {
			return errors.Wrapf(ErrInvalidConfig, "tile %d: negative destination (%d,%d)", i, t.DestRow, t.DestCol)
		}
		for j, s := range t.Steps {
			if !images.HasOperation(s.Name) {
				return errors.Wrapf(ErrInvalidConfig, "tile %d step %d: unknown operation %q", i, j, s.Name)
			}
		}
	}
	return nil
}

// LoadConfig reads a collage configuration from a .yaml, .yml or .json file
// and validates it. Relative source, canvas and output paths are resolved
// against the directory containing the file.
func LoadConfig(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yaml" && ext != ".yml" && ext != ".json" {
		return nil, errors.Wrapf(ErrInvalidConfig, "config file must be .yaml, .yml or .json, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, errors.Wrap(err, "stat config file")
	}
	if info.Size() > maxConfigSize {
		return nil, errors.Wrapf(ErrInvalidConfig, "config file too large: %d bytes (max %d)", info.Size(), maxConfigSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, errors.Wrap(err, "read config file")
	}

	cfg, err := ParseConfig(data, ext == ".json")
	if err != nil {
		return nil, err
	}
	cfg.resolvePaths(filepath.Dir(cleanPath))
	return cfg, nil
}

// ParseConfig decodes and validates a configuration held in memory.
func ParseConfig(data []byte, isJSON bool) (*Config, error) {
	var cfg Config
	if isJSON {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, errors.Wrap(err, "parse json config")
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, errors.Wrap(err, "parse yaml config")
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) resolvePaths(dir string) {
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}
	c.Canvas.Path = resolve(c.Canvas.Path)
	c.Output = resolve(c.Output)
	for i := range c.Tiles {
		c.Tiles[i].Source = resolve(c.Tiles[i].Source)
	}
}
