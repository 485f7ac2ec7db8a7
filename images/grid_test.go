package images

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// patternGrid builds a height x width grid where every pixel is distinct for
// grids up to 16x16: R encodes the position, G the row and B the column.
func patternGrid(t testing.TB, height, width int) *Grid {
	t.Helper()
	g, err := NewGrid(height, width)
	require.NoError(t, err)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			g.set(row, col, Pixel{R: uint8(row*16 + col), G: uint8(row * 10), B: uint8(col * 10)})
		}
	}
	return g
}

// randomGrid builds a grid with pseudo-random colors from a fixed seed.
func randomGrid(t testing.TB, height, width int, seed int64) *Grid {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	g, err := NewGrid(height, width)
	require.NoError(t, err)
	for i := range g.pix {
		g.pix[i] = Pixel{R: uint8(rng.Intn(256)), G: uint8(rng.Intn(256)), B: uint8(rng.Intn(256))}
	}
	return g
}

// gridFrom builds a grid from literal rows.
func gridFrom(t testing.TB, rows [][]Pixel) *Grid {
	t.Helper()
	g, err := GridFromPixels(rows)
	require.NoError(t, err)
	return g
}

// assertGridEqual fails with a readable diff when want and got differ.
func assertGridEqual(t *testing.T, want, got *Grid) {
	t.Helper()
	require.Equal(t, want.Height(), got.Height(), "height")
	require.Equal(t, want.Width(), got.Width(), "width")
	if diff := cmp.Diff(want.Pixels(), got.Pixels()); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}
}

func TestNewGrid(t *testing.T) {
	tests := []struct {
		name          string
		height, width int
		wantErr       bool
	}{
		{name: "regular", height: 3, width: 4},
		{name: "empty", height: 0, width: 0},
		{name: "negative height", height: -1, width: 4, wantErr: true},
		{name: "negative width", height: 3, width: -4, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGrid(tt.height, tt.width)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidDimensions))
				assert.Nil(t, g)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.height, g.Height())
			assert.Equal(t, tt.width, g.Width())
		})
	}
}

func TestGridAtSetBounds(t *testing.T) {
	g, err := NewGrid(2, 3)
	require.NoError(t, err)

	require.NoError(t, g.Set(1, 2, White))
	p, err := g.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, White, p)

	for _, c := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		_, err := g.At(c[0], c[1])
		assert.True(t, errors.Is(err, ErrOutOfBounds), "At(%d,%d)", c[0], c[1])
		err = g.Set(c[0], c[1], White)
		assert.True(t, errors.Is(err, ErrOutOfBounds), "Set(%d,%d)", c[0], c[1])
	}
}

func TestGridFromPixelsRagged(t *testing.T) {
	_, err := GridFromPixels([][]Pixel{{Black, White}, {Black}})
	assert.True(t, errors.Is(err, ErrInvalidDimensions))
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := patternGrid(t, 3, 3)
	c := g.Clone()
	assert.True(t, g.Equal(c))

	c.set(0, 0, White)
	assert.False(t, g.Equal(c))
	assert.NotEqual(t, White, g.at(0, 0))
}

func TestGridPixelsIsACopy(t *testing.T) {
	g := patternGrid(t, 2, 2)
	rows := g.Pixels()
	rows[0][0] = White
	assert.NotEqual(t, White, g.at(0, 0))
}

func TestGridImageRoundTrip(t *testing.T) {
	g := patternGrid(t, 5, 7)
	img := g.ToImage()
	assert.Equal(t, image.Rect(0, 0, 7, 5), img.Bounds())
	// x is the column, y the row.
	assert.Equal(t, color.RGBA{R: g.at(3, 1).R, G: g.at(3, 1).G, B: g.at(3, 1).B, A: 255}, img.RGBAAt(1, 3))
	assertGridEqual(t, g, FromImage(img))
}

func TestFromImageNonZeroOrigin(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 20, 13, 22))
	img.SetNRGBA(10, 20, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	img.SetNRGBA(12, 21, color.NRGBA{R: 4, G: 5, B: 6, A: 255})

	g := FromImage(img)
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, Pixel{R: 1, G: 2, B: 3}, g.at(0, 0))
	assert.Equal(t, Pixel{R: 4, G: 5, B: 6}, g.at(1, 2))
}

func TestChecksum(t *testing.T) {
	empty, err := NewGrid(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "empty", Checksum(empty))

	g := patternGrid(t, 4, 4)
	sum := Checksum(g)
	assert.Equal(t, sum, Checksum(g.Clone()))

	g.set(2, 2, White)
	assert.NotEqual(t, sum, Checksum(g))

	// Same pixels, different shape.
	a := gridFrom(t, [][]Pixel{{Black, White}})
	b := gridFrom(t, [][]Pixel{{Black}, {White}})
	assert.NotEqual(t, Checksum(a), Checksum(b))
}

func TestRGBClamps(t *testing.T) {
	assert.Equal(t, Pixel{R: 255, G: 20, B: 0}, RGB(300, 20, -5))
}
