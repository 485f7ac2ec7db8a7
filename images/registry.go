package images

import (
	"sort"

	"github.com/pkg/errors"
)

// ErrUnknownOperation is returned by Apply for a name with no registered
// operation.
var ErrUnknownOperation = errors.New("unknown operation")

// Step names one in-place grid operation and its argument.
type Step struct {
	// Name is the registered operation name, e.g. "grayscale".
	Name string `json:"name" yaml:"name"`
	// Threshold is used by edgeDetection, edgeDetectionBoth and
	// clearBlueOverValue; other operations ignore it.
	Threshold int `json:"threshold,omitempty" yaml:"threshold,omitempty"`
	// Radius is used by blur.
	Radius int `json:"radius,omitempty" yaml:"radius,omitempty"`
}

// Operation is an in-place grid operation that can be named in
// configuration.
type Operation func(g *Grid, s Step) error

func simple(fn func(*Grid)) Operation {
	return func(g *Grid, _ Step) error {
		fn(g)
		return nil
	}
}

var operations = map[string]Operation{
	"zeroBlue":                    simple((*Grid).ZeroBlue),
	"keepOnlyBlue":                simple((*Grid).KeepOnlyBlue),
	"keepOnlyRed":                 simple((*Grid).KeepOnlyRed),
	"keepOnlyGreen":               simple((*Grid).KeepOnlyGreen),
	"negate":                      simple((*Grid).Negate),
	"grayscale":                   simple((*Grid).Grayscale),
	"sepia":                       simple((*Grid).Sepia),
	"moreRed":                     simple((*Grid).MoreRed),
	"fixUnderwater":               simple((*Grid).FixUnderwater),
	"mirrorVertical":              simple((*Grid).MirrorVertical),
	"mirrorVerticalRightToLeft":   simple((*Grid).MirrorVerticalRightToLeft),
	"mirrorHorizontal":            simple((*Grid).MirrorHorizontal),
	"mirrorHorizontalBottomToTop": simple((*Grid).MirrorHorizontalBottomToTop),
	"mirrorDiagonal":              simple((*Grid).MirrorDiagonal),
	"setRedToHalfValueInTopHalf":  simple((*Grid).SetRedToHalfValueInTopHalf),
	"edgeDetection": func(g *Grid, s Step) error {
		g.EdgeDetection(s.Threshold)
		return nil
	},
	"edgeDetectionBoth": func(g *Grid, s Step) error {
		g.EdgeDetectionBoth(s.Threshold)
		return nil
	},
	"clearBlueOverValue": func(g *Grid, s Step) error {
		g.ClearBlueOverValue(s.Threshold)
		return nil
	},
	"blur": func(g *Grid, s Step) error {
		return g.Blur(s.Radius, EdgeClamp)
	},
}

// Apply runs the operation named by s on g.
func Apply(g *Grid, s Step) error {
	op, ok := operations[s.Name]
	if !ok {
		return errors.Wrapf(ErrUnknownOperation, "%q", s.Name)
	}
	return op(g, s)
}

// ApplyAll runs steps in order, stopping at the first error.
func ApplyAll(g *Grid, steps []Step) error {
	for i, s := range steps {
		if err := Apply(g, s); err != nil {
			return errors.Wrapf(err, "step %d", i)
		}
	}
	return nil
}

// HasOperation reports whether name is a registered operation.
func HasOperation(name string) bool {
	_, ok := operations[name]
	return ok
}

// OperationNames returns the registered operation names, sorted.
func OperationNames() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
