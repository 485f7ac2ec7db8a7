package images

import (
	"crypto/md5"
	"fmt"
)

// Checksum generates a deterministic checksum of a grid's dimensions and
// pixels, used to verify that an operation did or did not touch a grid.
//
// Arguments:
// - g: The grid to compute the checksum for.
//
// Returns:
// - A hex-encoded MD5 checksum string, or "empty" for a grid with no pixels.
//
// Example:
//
// ```go
//
//	before := Checksum(pic.Grid)
//	half := pic.ScaleByHalf()
//	fmt.Println(before == Checksum(pic.Grid)) // true
//
// ```
func Checksum(g *Grid) string {
	if g == nil || len(g.pix) == 0 {
		return "empty"
	}

	hash := md5.New()
	fmt.Fprintf(hash, "%dx%d:", g.height, g.width)
	buf := make([]byte, 0, len(g.pix)*3)
	for _, p := range g.pix {
		buf = append(buf, p.R, p.G, p.B)
	}
	hash.Write(buf)
	return fmt.Sprintf("%x", hash.Sum(nil))
}
