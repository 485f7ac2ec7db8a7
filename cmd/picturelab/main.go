// Command picturelab applies Picture Lab operations to image files.
//
// Usage:
//
//	picturelab apply   -in beach.jpg -out out.png -op negate -op grayscale
//	picturelab mirror  -in temple.jpg -out out.png -preset temple
//	picturelab mirror  -in pic.jpg -out out.png -region 10,50,0,99 -axis vertical -point 100
//	picturelab scale   -in caterpillar.jpg -out half.png
//	picturelab resize  -in caterpillar.jpg -out thumb.png -height 60 -width 80
//	picturelab copy    -in water.jpg -from caterpillar.jpg -region 5,63,24,100 -row 160 -col 200 -out out.png
//	picturelab encode  -in beach.jpg -message msg.png -out secret.png
//	picturelab decode  -in secret.png -out message.png
//	picturelab collage [-config collage.yaml]
//	picturelab info    -in beach.jpg
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/nvr-ai/picturelab/images"
)

// command is one picturelab subcommand.
type command struct {
	usage string
	run   func(args []string) error
}

var commands = map[string]command{
	"apply":   {usage: "apply named operations in order", run: runApply},
	"mirror":  {usage: "mirror a region about an axis", run: runMirror},
	"scale":   {usage: "scale a picture by half", run: runScale},
	"resize":  {usage: "resample a picture to a new size", run: runResize},
	"copy":    {usage: "copy a region of one picture into another", run: runCopy},
	"encode":  {usage: "hide a black and white message in a picture", run: runEncode},
	"decode":  {usage: "recover a message hidden with encode", run: runDecode},
	"collage": {usage: "build a collage from a layout file", run: runCollage},
	"info":    {usage: "print dimensions, checksum and channel statistics", run: runInfo},
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("picturelab: ")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	name := os.Args[1]
	cmd, ok := commands[name]
	if !ok {
		printUsage()
		log.Fatalf("unknown command %q", name)
	}
	if err := cmd.run(os.Args[2:]); err != nil {
		log.Fatalf("%s: %v", name, err)
	}
}

func printUsage() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(os.Stderr, "usage: picturelab <command> [flags]")
	fmt.Fprintln(os.Stderr)
	for _, name := range names {
		fmt.Fprintf(os.Stderr, "  %-8s %s\n", name, commands[name].usage)
	}
	fmt.Fprintln(os.Stderr)
	fmt.Fprintf(os.Stderr, "operations: %s\n", strings.Join(images.OperationNames(), ", "))
}

// setupLogging routes library logs to stderr. verbose enables debug output.
func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	images.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
