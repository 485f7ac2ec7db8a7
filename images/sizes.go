package images

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// AspectRatio names a width:height ratio such as "4:3".
type AspectRatio string

// Common aspect ratios.
const (
	AspectRatio43  AspectRatio = "4:3"
	AspectRatio169 AspectRatio = "16:9"
	AspectRatio54  AspectRatio = "5:4"
	AspectRatio11  AspectRatio = "1:1"
)

// Size is a named picture size, usable as a blank collage canvas.
type Size struct {
	Name        string      `json:"name" yaml:"name"`
	AspectRatio AspectRatio `json:"aspect_ratio" yaml:"aspect_ratio"`
	Height      int         `json:"height" yaml:"height"`
	Width       int         `json:"width" yaml:"width"`
}

// MegaPixels returns the pixel count in millions, rounded to two decimals.
func (s Size) MegaPixels() float64 {
	if s.Width <= 0 || s.Height <= 0 {
		return 0
	}
	mp := float64(s.Width*s.Height) / 1_000_000.0
	return math.Round(mp*100) / 100
}

// String renders the size as "vga (640x480, 0.31MP)".
func (s Size) String() string {
	return fmt.Sprintf("%s (%dx%d, %.2fMP)", s.Name, s.Width, s.Height, s.MegaPixels())
}

var sizes = map[string]Size{
	"qvga":   {Name: "qvga", AspectRatio: AspectRatio43, Height: 240, Width: 320},
	"vga":    {Name: "vga", AspectRatio: AspectRatio43, Height: 480, Width: 640},
	"svga":   {Name: "svga", AspectRatio: AspectRatio43, Height: 600, Width: 800},
	"xga":    {Name: "xga", AspectRatio: AspectRatio43, Height: 768, Width: 1024},
	"sxga":   {Name: "sxga", AspectRatio: AspectRatio54, Height: 1024, Width: 1280},
	"nhd":    {Name: "nhd", AspectRatio: AspectRatio169, Height: 360, Width: 640},
	"hd":     {Name: "hd", AspectRatio: AspectRatio169, Height: 720, Width: 1280},
	"fhd":    {Name: "fhd", AspectRatio: AspectRatio169, Height: 1080, Width: 1920},
	"4k":     {Name: "4k", AspectRatio: AspectRatio169, Height: 2160, Width: 3840},
	"square": {Name: "square", AspectRatio: AspectRatio11, Height: 512, Width: 512},
}

// SizeByName looks up a named size, ignoring case.
func SizeByName(name string) (Size, bool) {
	s, ok := sizes[strings.ToLower(name)]
	return s, ok
}

// Sizes returns every named size ordered by pixel count, then name.
func Sizes() []Size {
	all := make([]Size, 0, len(sizes))
	for _, s := range sizes {
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool {
		ai, aj := all[i].Width*all[i].Height, all[j].Width*all[j].Height
		if ai != aj {
			return ai < aj
		}
		return all[i].Name < all[j].Name
	})
	return all
}

// LargestSizeWithin returns the named size with the most pixels that fits
// inside height x width.
func LargestSizeWithin(height, width int) (Size, bool) {
	var best Size
	found := false
	for _, s := range Sizes() {
		if s.Height <= height && s.Width <= width {
			best, found = s, true
		}
	}
	return best, found
}
