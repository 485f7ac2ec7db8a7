package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/nvr-ai/picturelab/collage"
	"github.com/nvr-ai/picturelab/images"
	"github.com/nvr-ai/picturelab/util"
)

// stepList collects repeated -op flags.
type stepList []images.Step

func (s *stepList) String() string {
	names := make([]string, len(*s))
	for i, step := range *s {
		names[i] = step.Name
	}
	return strings.Join(names, ",")
}

func (s *stepList) Set(v string) error {
	if !images.HasOperation(v) {
		return errors.Errorf("unknown operation %q", v)
	}
	*s = append(*s, images.Step{Name: v})
	return nil
}

// regionFlag parses "startRow,endRow,startCol,endCol".
type regionFlag struct {
	region images.Region
	set    bool
}

func (r *regionFlag) String() string {
	if !r.set {
		return ""
	}
	return fmt.Sprintf("%d,%d,%d,%d", r.region.StartRow, r.region.EndRow, r.region.StartCol, r.region.EndCol)
}

func (r *regionFlag) Set(v string) error {
	parts := strings.Split(v, ",")
	if len(parts) != 4 {
		return errors.Errorf("region %q: want startRow,endRow,startCol,endCol", v)
	}
	vals := make([]int, 4)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return errors.Wrapf(err, "region %q", v)
		}
		vals[i] = n
	}
	r.region = images.Region{StartRow: vals[0], EndRow: vals[1], StartCol: vals[2], EndCol: vals[3]}
	r.set = true
	return nil
}

// ioFlags registers the -in, -out and -v flags shared by most commands.
func ioFlags(fs *flag.FlagSet) (in, out *string, verbose *bool) {
	in = fs.String("in", "", "Input picture path")
	out = fs.String("out", "", "Output picture path")
	verbose = fs.Bool("v", false, "Enable debug logging")
	return in, out, verbose
}

func requireFlags(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			return errors.Errorf("-%s is required", pairs[i])
		}
	}
	return nil
}

func runApply(args []string) error {
	fs := flag.NewFlagSet("apply", flag.ExitOnError)
	in, out, verbose := ioFlags(fs)
	var steps stepList
	fs.Var(&steps, "op", "Operation to apply (repeatable, applied in order)")
	threshold := fs.Int("threshold", 10, "Threshold for edgeDetection, edgeDetectionBoth and clearBlueOverValue")
	radius := fs.Int("radius", 1, "Radius for blur")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireFlags("in", *in, "out", *out); err != nil {
		return err
	}
	if len(steps) == 0 {
		return errors.New("at least one -op is required")
	}
	setupLogging(*verbose)

	pic, err := util.LoadPicture(*in)
	if err != nil {
		return err
	}
	for i := range steps {
		steps[i].Threshold = *threshold
		steps[i].Radius = *radius
	}
	if err := images.ApplyAll(pic.Grid, steps); err != nil {
		return err
	}
	return util.SavePicture(pic, *out)
}

func runMirror(args []string) error {
	fs := flag.NewFlagSet("mirror", flag.ExitOnError)
	in, out, verbose := ioFlags(fs)
	preset := fs.String("preset", "", "Built-in window: temple, arms or gull")
	var region regionFlag
	fs.Var(&region, "region", "Window as startRow,endRow,startCol,endCol (inclusive)")
	axis := fs.String("axis", string(images.AxisVertical), "Mirror axis: vertical or horizontal")
	point := fs.Int("point", 0, "Mirror point: column for a vertical axis, row for a horizontal one")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireFlags("in", *in, "out", *out); err != nil {
		return err
	}
	setupLogging(*verbose)

	var p images.MirrorPreset
	switch {
	case *preset != "":
		var ok bool
		p, ok = images.DefaultMirrorPresets()[*preset]
		if !ok {
			return errors.Errorf("unknown preset %q", *preset)
		}
	case region.set:
		p = images.MirrorPreset{Name: "custom", Region: region.region, Axis: images.Axis(*axis), MirrorPoint: *point}
	default:
		return errors.New("either -preset or -region is required")
	}

	pic, err := util.LoadPicture(*in)
	if err != nil {
		return err
	}
	if err := pic.ApplyPreset(p); err != nil {
		return err
	}
	return util.SavePicture(pic, *out)
}

func runScale(args []string) error {
	fs := flag.NewFlagSet("scale", flag.ExitOnError)
	in, out, verbose := ioFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireFlags("in", *in, "out", *out); err != nil {
		return err
	}
	setupLogging(*verbose)

	pic, err := util.LoadPicture(*in)
	if err != nil {
		return err
	}
	return util.SavePicture(pic.ScaleByHalf(), *out)
}

func runResize(args []string) error {
	fs := flag.NewFlagSet("resize", flag.ExitOnError)
	in, out, verbose := ioFlags(fs)
	height := fs.Int("height", 0, "Target height in pixels")
	width := fs.Int("width", 0, "Target width in pixels")
	interp := fs.String("interp", string(images.InterpolationLanczos), "Interpolation: nearest, bilinear, bicubic or lanczos")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireFlags("in", *in, "out", *out); err != nil {
		return err
	}
	setupLogging(*verbose)

	pic, err := util.LoadPicture(*in)
	if err != nil {
		return err
	}
	g, err := pic.Resize(*height, *width, images.Interpolation(*interp))
	if err != nil {
		return err
	}
	return util.SavePicture(images.NewPictureFromGrid(pic.Name, g), *out)
}

func runCopy(args []string) error {
	fs := flag.NewFlagSet("copy", flag.ExitOnError)
	in, out, verbose := ioFlags(fs)
	from := fs.String("from", "", "Picture to copy from")
	var region regionFlag
	fs.Var(&region, "region", "Source window as startRow,endRow,startCol,endCol; omit to copy as much as fits")
	row := fs.Int("row", 0, "Destination row")
	col := fs.Int("col", 0, "Destination column")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireFlags("in", *in, "out", *out, "from", *from); err != nil {
		return err
	}
	setupLogging(*verbose)

	dst, err := util.LoadPicture(*in)
	if err != nil {
		return err
	}
	src, err := util.LoadPicture(*from)
	if err != nil {
		return err
	}
	if region.set {
		err = dst.CopyRegion(src.Grid, region.region, *row, *col)
	} else {
		err = dst.CopyFrom(src.Grid, *row, *col)
	}
	if err != nil {
		return err
	}
	return util.SavePicture(dst, *out)
}

func runEncode(args []string) error {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	in, out, verbose := ioFlags(fs)
	message := fs.String("message", "", "Black and white message picture, same size as -in")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireFlags("in", *in, "out", *out, "message", *message); err != nil {
		return err
	}
	setupLogging(*verbose)

	pic, err := util.LoadPicture(*in)
	if err != nil {
		return err
	}
	msg, err := util.LoadPicture(*message)
	if err != nil {
		return err
	}
	if err := pic.Encode(msg.Grid); err != nil {
		return err
	}
	return util.SavePicture(pic, *out)
}

func runDecode(args []string) error {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	in, out, verbose := ioFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireFlags("in", *in, "out", *out); err != nil {
		return err
	}
	setupLogging(*verbose)

	pic, err := util.LoadPicture(*in)
	if err != nil {
		return err
	}
	return util.SavePicture(images.NewPictureFromGrid(pic.Name, pic.Decode()), *out)
}

func runCollage(args []string) error {
	fs := flag.NewFlagSet("collage", flag.ExitOnError)
	configPath := fs.String("config", "", "Collage layout (.yaml, .yml or .json); default is the four-quadrant GeorgiaTech collage")
	verbose := fs.Bool("v", false, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	setupLogging(*verbose)

	cfg := collage.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = collage.LoadConfig(*configPath); err != nil {
			return err
		}
	}

	pic, err := collage.NewBuilder(util.Codec{}, util.Codec{}).Build(cfg)
	if err != nil {
		return err
	}
	fmt.Println(pic)
	return nil
}

func runInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	in := fs.String("in", "", "Input picture path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireFlags("in", *in); err != nil {
		return err
	}

	pic, err := util.LoadPicture(*in)
	if err != nil {
		return err
	}
	red, green, blue := pic.Stats()
	w := os.Stdout
	fmt.Fprintln(w, pic)
	fmt.Fprintf(w, "checksum %s\n", images.Checksum(pic.Grid))
	if size, ok := images.LargestSizeWithin(pic.Height(), pic.Width()); ok {
		fmt.Fprintf(w, "largest named size %s\n", size)
	}
	fmt.Fprintf(w, "red   mean %.2f stddev %.2f\n", red.Mean, red.StdDev)
	fmt.Fprintf(w, "green mean %.2f stddev %.2f\n", green.Mean, green.StdDev)
	fmt.Fprintf(w, "blue  mean %.2f stddev %.2f\n", blue.Mean, blue.StdDev)
	return nil
}
