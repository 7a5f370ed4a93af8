// Command htmldeck converts HTML slide documents and Markdown decks into
// PowerPoint presentations.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/tsawler/htmldeck"
	"github.com/tsawler/htmldeck/internal/config"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns its exit code.
func run(args []string, stdout, stderr io.Writer) int {
	flags, positional, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		if !errors.Is(err, errUsage) {
			err = fmt.Errorf("%w: %v", errUsage, err)
		}
		fmt.Fprintln(stderr, "htmldeck:", err)
		return exitCodeFor(err)
	}

	if flags.version {
		fmt.Fprintf(stdout, "htmldeck %s\n", Version)
		return ExitSuccess
	}

	logger := newLogger(stderr, flags.verbose, flags.quiet)
	logger.Debug("runtime", "gomaxprocs", runtime.GOMAXPROCS(0))

	if err := execute(flags, positional, stdout, logger); err != nil {
		fmt.Fprintln(stderr, "htmldeck:", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// newLogger returns a text logger on w. Quiet shows errors only, verbose
// adds debug records.
func newLogger(w io.Writer, verbose, quiet bool) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// execute resolves the settings and runs the conversion or inspection.
func execute(flags *cliFlags, positional []string, stdout io.Writer, logger *slog.Logger) error {
	cfg, err := loadConfig(flags.config)
	if err != nil {
		return err
	}
	applyFlags(cfg, flags, positional)

	if flags.inspect {
		return inspect(stdout, cfg.Input)
	}

	if err := ensureImageDir(cfg.Images, logger); err != nil {
		return err
	}
	if cfg.Output == "" {
		cfg.Output = outputPath(cfg.Input)
	}

	conv := htmldeck.Open(cfg.Input).
		ImageDir(cfg.Images).
		Workers(cfg.Workers).
		MaxImageWidth(cfg.MaxImageWidth).
		Limits(cfg.Limits.Layout()).
		Logger(logger)
	if cfg.Subtitle != "" {
		conv = conv.Subtitle(cfg.Subtitle)
	}
	if cfg.BestMarker != "" {
		conv = conv.BestMarker(cfg.BestMarker)
	}

	res, err := conv.Convert(cfg.Output)
	if err != nil {
		return err
	}
	if !flags.quiet {
		fmt.Fprintf(stdout, "Wrote %s: %d slides, %d unresolved charts, %d warnings\n",
			res.Output, res.Slides, res.Unresolved, len(res.Warnings))
	}
	return nil
}

// loadConfig reads the named config file. Without a name, the default
// config is used when present.
func loadConfig(name string) (*config.Config, error) {
	if name != "" {
		return config.LoadConfig(name)
	}
	cfg, err := config.LoadConfig(config.DefaultName)
	if errors.Is(err, config.ErrConfigNotFound) {
		return config.DefaultConfig(), nil
	}
	return cfg, err
}

// applyFlags overrides config values with the flags the user set.
func applyFlags(cfg *config.Config, flags *cliFlags, positional []string) {
	if len(positional) > 0 {
		cfg.Input = positional[0]
	}
	if flags.changed("output") {
		cfg.Output = flags.output
	}
	if flags.changed("images") {
		cfg.Images = flags.images
	}
	if flags.changed("workers") {
		cfg.Workers = flags.workers
	}
	if flags.changed("max-image-width") {
		cfg.MaxImageWidth = flags.maxImageWidth
	}
	if flags.changed("subtitle") {
		cfg.Subtitle = flags.subtitle
	}
}

// outputPath replaces the input extension with .pptx.
func outputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".pptx"
}

// ensureImageDir creates a missing image directory so authors have a place
// to drop chart images.
func ensureImageDir(dir string, logger *slog.Logger) error {
	if dir == "" {
		return nil
	}
	info, err := os.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		return nil
	case err == nil:
		return fmt.Errorf("%w: image path %s is not a directory", errUsage, dir)
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("checking image directory: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating image directory: %w", err)
	}
	logger.Warn("created missing image directory; add chart images to it", "dir", dir)
	return nil
}
