// Package format provides input and output format detection for htmldeck.
package format

import (
	"archive/zip"
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Format represents a supported document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// HTML indicates an HTML slide document.
	HTML
	// Markdown indicates a Markdown deck with slides split by thematic breaks.
	Markdown
	// PPTX indicates a Microsoft PowerPoint (.pptx) presentation.
	PPTX
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case HTML:
		return "HTML"
	case Markdown:
		return "Markdown"
	case PPTX:
		return "PPTX"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case HTML:
		return ".html"
	case Markdown:
		return ".md"
	case PPTX:
		return ".pptx"
	default:
		return ""
	}
}

// IsInput reports whether a deck can be converted from the format.
func (f Format) IsInput() bool {
	return f == HTML || f == Markdown
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".html", ".htm", ".xhtml":
		return HTML
	case ".md", ".markdown":
		return Markdown
	case ".pptx":
		return PPTX
	default:
		return Unknown
	}
}

var zipMagic = []byte{0x50, 0x4B, 0x03, 0x04}

// DetectFromMagic guesses the format from the first bytes of a document.
// Markup is anything whose first non-blank byte opens a tag; other valid
// UTF-8 text is taken as Markdown. ZIP archives return Unknown; use
// DetectFromReader to look inside them.
func DetectFromMagic(data []byte) Format {
	if bytes.HasPrefix(data, zipMagic) {
		return Unknown
	}

	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return Unknown
	}
	if detectHTMLMagic(trimmed) {
		return HTML
	}
	if IsText(data) {
		return Markdown
	}
	return Unknown
}

// IsText reports whether data is UTF-8 without control characters other
// than whitespace.
func IsText(data []byte) bool {
	if !utf8.Valid(data) {
		return false
	}
	for _, b := range data {
		if b < 0x20 && b != '\t' && b != '\n' && b != '\r' && b != '\f' {
			return false
		}
	}
	return true
}

// detectHTMLMagic checks if whitespace-trimmed data looks like markup.
func detectHTMLMagic(data []byte) bool {
	if data[0] != '<' || len(data) < 2 {
		return false
	}
	// A tag, a doctype, a comment or an XML declaration.
	c := data[1]
	return c == '!' || c == '?' || c == '/' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// DetectFromReader inspects the content to determine format. It can tell a
// PPTX package from other ZIP archives.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	sample := make([]byte, 512)
	n, err := r.ReadAt(sample, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	magic := sample[:n]

	if bytes.HasPrefix(magic, zipMagic) {
		return detectZIPFormat(r, size)
	}

	// A full sample may end inside a multi-byte rune.
	if n == len(sample) {
		for i := 0; i < utf8.UTFMax-1 && !utf8.Valid(magic); i++ {
			magic = magic[:len(magic)-1]
		}
	}
	return DetectFromMagic(magic), nil
}

// detectZIPFormat reports PPTX for an OOXML package with a ppt/ part.
func detectZIPFormat(r io.ReaderAt, size int64) (Format, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, err
	}

	hasTypes := false
	hasPPT := false
	for _, f := range zr.File {
		switch {
		case f.Name == "[Content_Types].xml":
			hasTypes = true
		case strings.HasPrefix(f.Name, "ppt/"):
			hasPPT = true
		}
	}
	if hasTypes && hasPPT {
		return PPTX, nil
	}
	return Unknown, nil
}
