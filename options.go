package htmldeck

import (
	"io"
	"log/slog"
	"runtime"

	"github.com/tsawler/htmldeck/htmldoc"
	"github.com/tsawler/htmldeck/layout"
)

// DefaultImageDir is where chart images are looked up when no directory is set.
const DefaultImageDir = "images"

// ConvertOptions holds configuration for a conversion.
type ConvertOptions struct {
	// Chart images
	imageDir      string
	maxImageWidth int // pixels; 0 keeps images at their size

	// Layout
	limits     layout.Limits
	subtitle   string
	bestMarker string

	// Processing
	workers int // 0 means GOMAXPROCS
	logger  *slog.Logger
}

// defaultOptions returns the default conversion options.
func defaultOptions() ConvertOptions {
	return ConvertOptions{
		imageDir:   DefaultImageDir,
		limits:     layout.DefaultLimits(),
		subtitle:   layout.DefaultSubtitle,
		bestMarker: htmldoc.BestScoreClass,
	}
}

// clone creates a copy of ConvertOptions.
func (o ConvertOptions) clone() ConvertOptions {
	return o
}

// workerCount returns the number of slides laid out at once.
func (o ConvertOptions) workerCount() int {
	if o.workers > 0 {
		return o.workers
	}
	return runtime.GOMAXPROCS(0)
}

// log returns the configured logger or one that discards everything.
func (o ConvertOptions) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
