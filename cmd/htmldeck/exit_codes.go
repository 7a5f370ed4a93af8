package main

import (
	"errors"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/tsawler/htmldeck"
	"github.com/tsawler/htmldeck/internal/config"
)

// Exit codes for the htmldeck CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or input format
	ExitIO      = 3 // Unreadable input, unwritable output
)

// errUsage marks command line misuse.
var errUsage = errors.New("invalid usage")

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, errUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, htmldeck.ErrUnsupportedFormat) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, htmldeck.ErrInput) ||
		errors.Is(err, htmldeck.ErrOutput) ||
		errors.Is(err, htmldeck.ErrNoInput) {
		return ExitIO
	}

	return ExitGeneral
}
