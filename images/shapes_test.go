package images

import (
	"image"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestRegionSize(t *testing.T) {
	r := Region{StartRow: 16, EndRow: 255, StartCol: 0, EndCol: 255}
	assert.Equal(t, 240, r.Height())
	assert.Equal(t, 256, r.Width())
	assert.Equal(t, "rows 16..255 cols 0..255", r.String())
	assert.Equal(t, image.Rect(0, 16, 256, 256), r.Rect())
}

func TestRegionWithin(t *testing.T) {
	tests := []struct {
		name   string
		region Region
		want   bool
	}{
		{name: "whole grid", region: Region{EndRow: 3, EndCol: 4}, want: true},
		{name: "single cell", region: Region{StartRow: 3, EndRow: 3, StartCol: 4, EndCol: 4}, want: true},
		{name: "past bottom", region: Region{EndRow: 4, EndCol: 4}},
		{name: "past right", region: Region{EndRow: 3, EndCol: 5}},
		{name: "negative start", region: Region{StartRow: -1, EndRow: 2, EndCol: 2}},
		{name: "inverted columns", region: Region{EndRow: 2, StartCol: 3, EndCol: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.region.Within(4, 5))
		})
	}
}

func TestRegionTranslate(t *testing.T) {
	r := Region{StartRow: 2, EndRow: 4, StartCol: 1, EndCol: 6}
	moved := r.Translate(10, 20)
	assert.Equal(t, Region{StartRow: 10, EndRow: 12, StartCol: 20, EndCol: 25}, moved)
	assert.Equal(t, r.Height(), moved.Height())
	assert.Equal(t, r.Width(), moved.Width())
}

func TestRegionOf(t *testing.T) {
	g := patternGrid(t, 3, 7)
	r := RegionOf(g)
	assert.Equal(t, Region{EndRow: 2, EndCol: 6}, r)
	assert.NoError(t, checkRegion(g, r, "region"))

	err := checkRegion(g, r.Translate(1, 0), "region")
	assert.True(t, errors.Is(err, ErrInvalidRegion))
	assert.Contains(t, err.Error(), "3x7")
}
