package images

import "github.com/chewxy/math32"

// ColorDistance returns the Euclidean distance between two pixels over their
// red, green and blue differences.
//
// Arguments:
// - a, b: The pixels to compare.
//
// Returns:
// - A value in [0, ~441.7]; 0 means identical colors.
//
// @example
// d := ColorDistance(Pixel{R: 3, G: 4}, Black) // 5
func ColorDistance(a, b Pixel) float32 {
	dr := float32(int(a.R) - int(b.R))
	dg := float32(int(a.G) - int(b.G))
	db := float32(int(a.B) - int(b.B))
	return math32.Sqrt(dr*dr + dg*dg + db*db)
}

// EdgeDetection marks horizontal color changes. Each pixel except those in
// the last column is compared with its right neighbor; a distance strictly
// greater than threshold turns it white, anything else black. The last
// column is left as it was.
//
// Rows are processed left to right, so the right neighbor has not yet been
// overwritten when it is read.
func (g *Grid) EdgeDetection(threshold int) {
	limit := float32(threshold)
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width-1; col++ {
			if ColorDistance(g.at(row, col), g.at(row, col+1)) > limit {
				g.set(row, col, White)
			} else {
				g.set(row, col, Black)
			}
		}
	}
}

// EdgeDetectionBoth marks both horizontal and vertical color changes: a pixel
// turns white when the distance to its right neighbor or to the pixel below
// exceeds threshold, black otherwise. Pixels in the last column only look
// down, pixels in the last row only look right, and the bottom-right pixel
// is left as it was.
func (g *Grid) EdgeDetectionBoth(threshold int) {
	limit := float32(threshold)
	orig := g.Clone()
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			hasRight := col+1 < g.width
			hasBelow := row+1 < g.height
			if !hasRight && !hasBelow {
				continue
			}
			p := orig.at(row, col)
			edge := (hasRight && ColorDistance(p, orig.at(row, col+1)) > limit) ||
				(hasBelow && ColorDistance(p, orig.at(row+1, col)) > limit)
			if edge {
				g.set(row, col, White)
			} else {
				g.set(row, col, Black)
			}
		}
	}
}
