package images

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyRegionReproducesSubGrid(t *testing.T) {
	src := patternGrid(t, 6, 6)
	dst, err := NewGrid(5, 5)
	require.NoError(t, err)
	dst.Fill(White)

	region := Region{StartRow: 1, EndRow: 3, StartCol: 2, EndCol: 4}
	require.NoError(t, dst.CopyRegion(src, region, 2, 1))

	for row := 0; row < dst.Height(); row++ {
		for col := 0; col < dst.Width(); col++ {
			inside := row >= 2 && row <= 4 && col >= 1 && col <= 3
			if inside {
				assert.Equal(t, src.at(row-2+1, col-1+2), dst.at(row, col), "(%d,%d)", row, col)
			} else {
				assert.Equal(t, White, dst.at(row, col), "(%d,%d) should be untouched", row, col)
			}
		}
	}
}

func TestCopyRegionRejectsOutOfRange(t *testing.T) {
	src := patternGrid(t, 4, 4)
	tests := []struct {
		name             string
		region           Region
		destRow, destCol int
	}{
		{name: "source past bottom", region: Region{StartRow: 2, EndRow: 4, StartCol: 0, EndCol: 1}},
		{name: "source negative", region: Region{StartRow: -1, EndRow: 1, StartCol: 0, EndCol: 1}},
		{name: "inverted region", region: Region{StartRow: 2, EndRow: 1, StartCol: 0, EndCol: 1}},
		{name: "destination past right", region: Region{StartRow: 0, EndRow: 1, StartCol: 0, EndCol: 1}, destCol: 3},
		{name: "destination negative", region: Region{StartRow: 0, EndRow: 1, StartCol: 0, EndCol: 1}, destRow: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst, err := NewGrid(4, 4)
			require.NoError(t, err)
			before := Checksum(dst)

			err = dst.CopyRegion(src, tt.region, tt.destRow, tt.destCol)
			assert.True(t, errors.Is(err, ErrInvalidRegion), "got %v", err)
			assert.Equal(t, before, Checksum(dst), "nothing may be written on error")
		})
	}
}

func TestCopyNilSource(t *testing.T) {
	g := patternGrid(t, 2, 2)
	before := Checksum(g)

	err := g.CopyRegion(nil, Region{EndRow: 1, EndCol: 1}, 0, 0)
	assert.True(t, errors.Is(err, ErrInvalidRegion))
	err = g.CopyFrom(nil, 0, 0)
	assert.True(t, errors.Is(err, ErrInvalidRegion))
	assert.Equal(t, before, Checksum(g))
}

func TestCopyRegionOntoItself(t *testing.T) {
	g := patternGrid(t, 3, 3)
	orig := g.Clone()
	require.NoError(t, g.CopyRegion(g, Region{StartRow: 0, EndRow: 1, StartCol: 0, EndCol: 1}, 1, 1))

	for row := 1; row <= 2; row++ {
		for col := 1; col <= 2; col++ {
			assert.Equal(t, orig.at(row-1, col-1), g.at(row, col))
		}
	}
}

func TestCopyFromClips(t *testing.T) {
	src := patternGrid(t, 2, 3)
	dst, err := NewGrid(3, 3)
	require.NoError(t, err)
	dst.Fill(White)

	require.NoError(t, dst.CopyFrom(src, 2, 1))

	want := gridFrom(t, [][]Pixel{
		{White, White, White},
		{White, White, White},
		{White, src.at(0, 0), src.at(0, 1)},
	})
	assertGridEqual(t, want, dst)
}

func TestCopyFromLargerDestination(t *testing.T) {
	src := patternGrid(t, 2, 2)
	dst, err := NewGrid(4, 4)
	require.NoError(t, err)

	require.NoError(t, dst.CopyFrom(src, 1, 1))
	assert.Equal(t, src.at(1, 1), dst.at(2, 2))
	assert.Equal(t, Black, dst.at(3, 3))
}

func TestCopyFromNegativeOffset(t *testing.T) {
	dst, err := NewGrid(2, 2)
	require.NoError(t, err)
	err = dst.CopyFrom(patternGrid(t, 2, 2), -1, 0)
	assert.True(t, errors.Is(err, ErrInvalidRegion))
}

func TestScaleByHalfSamplesEvenIndices(t *testing.T) {
	src := patternGrid(t, 4, 4)
	before := Checksum(src)

	half := src.ScaleByHalf()
	require.Equal(t, 2, half.Height())
	require.Equal(t, 2, half.Width())
	assert.Equal(t, src.at(0, 0), half.at(0, 0))
	assert.Equal(t, src.at(0, 2), half.at(0, 1))
	assert.Equal(t, src.at(2, 0), half.at(1, 0))
	assert.Equal(t, src.at(2, 2), half.at(1, 1))

	assert.Equal(t, before, Checksum(src), "receiver must not be modified")
}

func TestScaleByHalfOddDimensions(t *testing.T) {
	src := patternGrid(t, 5, 3)
	half := src.ScaleByHalf()
	assert.Equal(t, 2, half.Height())
	assert.Equal(t, 1, half.Width())
	assert.Equal(t, src.at(2, 0), half.at(1, 0))
}

func TestResize(t *testing.T) {
	src, err := NewGrid(4, 6)
	require.NoError(t, err)
	teal := Pixel{R: 0, G: 128, B: 128}
	src.Fill(teal)

	for _, interp := range []Interpolation{InterpolationNearest, InterpolationBilinear, ""} {
		t.Run(string(interp), func(t *testing.T) {
			out, err := src.Resize(2, 3, interp)
			require.NoError(t, err)
			assert.Equal(t, 2, out.Height())
			assert.Equal(t, 3, out.Width())
			assert.Equal(t, teal, out.at(1, 2))
		})
	}
}

func TestResizeErrors(t *testing.T) {
	src := patternGrid(t, 2, 2)

	_, err := src.Resize(0, 2, InterpolationNearest)
	assert.True(t, errors.Is(err, ErrInvalidDimensions))

	_, err = src.Resize(2, 2, Interpolation("sinc"))
	assert.Error(t, err)

	empty, _ := NewGrid(0, 0)
	_, err = empty.Resize(2, 2, InterpolationNearest)
	assert.True(t, errors.Is(err, ErrInvalidDimensions))
}
