package htmldeck

import (
	"errors"
	"fmt"
)

// Sentinel errors for conversions.
var (
	// ErrInput indicates the slide document is unreadable, empty or not markup.
	ErrInput = errors.New("cannot read slide document")
	// ErrOutput indicates the presentation could not be written.
	ErrOutput = errors.New("cannot write presentation")
	// ErrNoInput indicates a Converter has neither a file nor a source.
	ErrNoInput = errors.New("no input specified")
	// ErrUnsupportedFormat indicates an input format that cannot be converted.
	ErrUnsupportedFormat = errors.New("unsupported input format")
)

// ConversionError records the step and file that failed. Err wraps one of
// the sentinel errors, so errors.Is(err, ErrInput) works through it.
type ConversionError struct {
	Op   string // "read", "parse", "layout" or "write"
	Path string // input or output file; empty for in-memory sources
	Err  error
}

func (e *ConversionError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// wrapError builds a ConversionError whose cause matches sentinel.
func wrapError(op, path string, sentinel, cause error) error {
	var err error
	switch {
	case cause == nil:
		err = sentinel
	case errors.Is(cause, sentinel):
		err = cause
	default:
		err = fmt.Errorf("%w: %w", sentinel, cause)
	}
	return &ConversionError{Op: op, Path: path, Err: err}
}
