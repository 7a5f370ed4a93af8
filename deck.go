// Package htmldeck provides a fluent API for converting HTML slide documents
// and Markdown decks into PowerPoint presentations.
//
// Basic usage:
//
//	res, err := htmldeck.Open("index.html").Convert("index.pptx")
//	if err != nil {
//	    // handle error
//	}
//	if len(res.Warnings) > 0 {
//	    log.Println("Warnings:", htmldeck.FormatWarnings(res.Warnings))
//	}
//
// With options:
//
//	res, err := htmldeck.Open("deck.md").
//	    ImageDir("charts").
//	    MaxImageWidth(1600).
//	    Workers(4).
//	    Convert("deck.pptx")
//
// The lower-level htmldoc, layout and pptx packages expose each stage of
// the pipeline on its own.
package htmldeck

import (
	"io"

	"github.com/tsawler/htmldeck/format"
	"github.com/tsawler/htmldeck/model"
)

// Warning is a non-fatal issue found while converting.
type Warning = model.Warning

// FormatWarnings renders warnings one per line.
func FormatWarnings(warnings []Warning) string {
	return model.FormatWarnings(warnings)
}

// Open returns a Converter for the deck at filename. The format is taken
// from the extension and, when that is unknown, from the content.
//
// Example:
//
//	res, err := htmldeck.Open("index.html").Convert("index.pptx")
func Open(filename string) *Converter {
	return &Converter{
		filename: filename,
		format:   format.Detect(filename),
		options:  defaultOptions(),
	}
}

// FromString returns a Converter for an in-memory document. HTML and
// Markdown are told apart by content.
//
// Example:
//
//	slides, err := htmldeck.FromString(`<div class="slide"><h1>Hi</h1></div>`).Slides()
func FromString(text string) *Converter {
	return FromBytes([]byte(text))
}

// FromBytes is like FromString for a byte slice. The slice is not copied.
func FromBytes(data []byte) *Converter {
	return &Converter{
		data:    data,
		hasData: true,
		options: defaultOptions(),
	}
}

// FromReader returns a Converter that reads its document from r when a
// terminal operation runs. A reader can only be consumed once.
func FromReader(r io.Reader) *Converter {
	return &Converter{
		src:     r,
		options: defaultOptions(),
	}
}

// Convert renders documentText, an HTML slide document, to outputPath using
// chart images from imageDir.
//
// Example:
//
//	res, err := htmldeck.Convert(html, "deck.pptx", "images")
func Convert(documentText, outputPath, imageDir string) (*Result, error) {
	return FromString(documentText).
		Format(format.HTML).
		ImageDir(imageDir).
		Convert(outputPath)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	slides := htmldeck.Must(htmldeck.Open("index.html").Slides())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
