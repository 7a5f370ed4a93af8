package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds every command line flag.
type cliFlags struct {
	config        string
	output        string
	images        string
	workers       int
	maxImageWidth int
	subtitle      string
	quiet         bool
	verbose       bool
	inspect       bool
	version       bool

	// changed reports whether a flag was given explicitly, so config file
	// values are only overridden by flags the user set.
	changed func(name string) bool
}

// parseFlags parses args (without the program name) and returns the
// positional arguments.
func parseFlags(args []string, stderr io.Writer) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("htmldeck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &cliFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output .pptx file (default: input name with .pptx)")
	fs.StringVarP(&f.images, "images", "i", "", "chart image directory (default: images)")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")

	// Conversion flags
	fs.IntVarP(&f.workers, "workers", "w", 0, "slides laid out in parallel (0 = auto)")
	fs.IntVar(&f.maxImageWidth, "max-image-width", 0, "scale chart images wider than this many pixels (0 = keep)")
	fs.StringVar(&f.subtitle, "subtitle", "", "title slide subtitle when the deck has none")

	// Output mode flags
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show progress and debug details")
	fs.BoolVar(&f.inspect, "inspect", false, "print the extracted slides instead of converting")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: htmldeck [flags] [input.html|input.md|deck.pptx]\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if f.quiet && f.verbose {
		return nil, nil, fmt.Errorf("%w: --quiet and --verbose are mutually exclusive", errUsage)
	}
	if fs.NArg() > 1 {
		return nil, nil, fmt.Errorf("%w: expected at most one input, got %d", errUsage, fs.NArg())
	}

	f.changed = fs.Changed
	return f, fs.Args(), nil
}
