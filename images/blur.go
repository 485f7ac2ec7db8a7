package images

import (
	"sync"

	"github.com/pkg/errors"
)

// EdgeMode defines how Blur samples cells outside the grid.
//   - EdgeClamp repeats the edge cell.
//   - EdgeMirror reflects the coordinate without repeating the edge.
//   - EdgeWrap tiles the grid.
type EdgeMode int

const (
	EdgeClamp EdgeMode = iota
	EdgeMirror
	EdgeWrap
)

// parallelBlurRows is the grid height from which Blur splits each pass
// across goroutines.
const parallelBlurRows = 256

// Blur applies a separable box blur in place. Each output channel is the
// rounded mean of the (2*radius+1)^2 window around the cell.
//
// Both passes use a sliding window, so the cost per cell does not depend on
// radius. A radius of 0 leaves the grid unchanged.
//
// Arguments:
// - radius: Half the window size, >= 0.
// - edge: How cells past the border are sampled.
//
// Returns:
// - error if radius is negative.
//
// @example
// err := pic.Blur(2, EdgeMirror)
func (g *Grid) Blur(radius int, edge EdgeMode) error {
	if radius < 0 {
		return errors.Errorf("negative blur radius %d", radius)
	}
	if radius == 0 || g.height == 0 || g.width == 0 {
		return nil
	}

	tmp := make([]Pixel, len(g.pix))
	parallel := g.height >= parallelBlurRows

	// Rows: stride 1 within a line of width cells.
	forEachLine(g.height, parallel, func(row int) {
		start := row * g.width
		blurLine(g.pix[start:start+g.width], tmp[start:start+g.width], 1, g.width, radius, edge)
	})
	// Columns: stride width over height cells.
	forEachLine(g.width, parallel, func(col int) {
		blurLine(tmp[col:], g.pix[col:], g.width, g.height, radius, edge)
	})

	Logger().Debug("blurred grid", "radius", radius, "parallel", parallel)
	return nil
}

// blurLine box-blurs n cells of src spaced stride apart into dst.
func blurLine(src, dst []Pixel, stride, n, radius int, edge EdgeMode) {
	window := 2*radius + 1
	load := func(i int) Pixel {
		return src[mapCoord(i, n, edge)*stride]
	}

	var sumR, sumG, sumB int
	for d := -radius; d <= radius; d++ {
		p := load(d)
		sumR += int(p.R)
		sumG += int(p.G)
		sumB += int(p.B)
	}

	for i := 0; i < n; i++ {
		dst[i*stride] = Pixel{
			R: uint8((sumR + window/2) / window),
			G: uint8((sumG + window/2) / window),
			B: uint8((sumB + window/2) / window),
		}
		out, in := load(i-radius), load(i+radius+1)
		sumR += int(in.R) - int(out.R)
		sumG += int(in.G) - int(out.G)
		sumB += int(in.B) - int(out.B)
	}
}

// forEachLine calls fn for every line index in [0, n), splitting the work
// into chunks across goroutines when parallel is set.
func forEachLine(n int, parallel bool, fn func(int)) {
	if !parallel {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	chunk := chooseChunk(n)
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				fn(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// mapCoord maps i into [0, n) according to mode.
func mapCoord(i, n int, mode EdgeMode) int {
	switch mode {
	case EdgeMirror:
		if n == 1 {
			return 0
		}
		for i < 0 || i >= n {
			if i < 0 {
				i = -i - 1
			} else {
				i = 2*n - i - 1
			}
		}
		return i
	case EdgeWrap:
		i %= n
		if i < 0 {
			i += n
		}
		return i
	default:
		return min(max(i, 0), n-1)
	}
}

// chooseChunk picks how many lines each goroutine handles.
func chooseChunk(n int) int {
	switch {
	case n >= 2048:
		return 128
	case n >= 512:
		return 64
	default:
		return 32
	}
}
