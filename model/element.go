package model

import (
	"fmt"
	"strings"
)

// ElementType represents the type of page element
type ElementType int

const (
	ElementTypeUnknown ElementType = iota
	ElementTypeShape
	ElementTypeTextBox
	ElementTypeTable
	ElementTypeImage
)

func (et ElementType) String() string {
	switch et {
	case ElementTypeShape:
		return "Shape"
	case ElementTypeTextBox:
		return "TextBox"
	case ElementTypeTable:
		return "Table"
	case ElementTypeImage:
		return "Image"
	default:
		return "Unknown"
	}
}

// Element is the interface for all page elements
type Element interface {
	Type() ElementType
	BoundingBox() BBox
}

// Placeholder is the presentation role of a text-bearing shape.
type Placeholder string

const (
	PlaceholderNone        Placeholder = ""
	PlaceholderTitle       Placeholder = "title"
	PlaceholderCenterTitle Placeholder = "ctrTitle"
	PlaceholderSubtitle    Placeholder = "subTitle"
)

// Color represents an RGB color
type Color struct {
	R, G, B uint8
}

// RGB returns a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex returns the color as six upper-case hex digits, e.g. "3498DB".
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// TextAlignment represents text alignment
type TextAlignment int

const (
	AlignLeft TextAlignment = iota
	AlignCenter
	AlignRight
)

// Anchor is the vertical anchoring of text inside its frame.
type Anchor int

const (
	AnchorTop Anchor = iota
	AnchorMiddle
	AnchorBottom
)

// TextStyle represents text styling
type TextStyle struct {
	Size  float64 // Points
	Bold  bool
	Color Color
}

// Run is a span of text with uniform style.
type Run struct {
	Text  string
	Style TextStyle
}

// Paragraph is one line-broken paragraph of a text frame.
type Paragraph struct {
	Runs      []Run
	Alignment TextAlignment
}

// Text returns the concatenated run text.
func (p Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// TextFrame holds the paragraphs drawn inside a shape.
type TextFrame struct {
	Paragraphs []Paragraph
	Anchor     Anchor
}

// NewTextFrame creates a frame with a single one-run paragraph.
func NewTextFrame(text string, style TextStyle, align TextAlignment) *TextFrame {
	return &TextFrame{
		Paragraphs: []Paragraph{{
			Runs:      []Run{{Text: text, Style: style}},
			Alignment: align,
		}},
	}
}

// AddParagraph appends a one-run paragraph.
func (f *TextFrame) AddParagraph(text string, style TextStyle, align TextAlignment) {
	f.Paragraphs = append(f.Paragraphs, Paragraph{
		Runs:      []Run{{Text: text, Style: style}},
		Alignment: align,
	})
}

// GetText joins the paragraphs with newlines.
func (f *TextFrame) GetText() string {
	if f == nil {
		return ""
	}
	lines := make([]string, len(f.Paragraphs))
	for i, p := range f.Paragraphs {
		lines[i] = p.Text()
	}
	return strings.Join(lines, "\n")
}

// Outline is the border of a shape.
type Outline struct {
	Color Color
	Width Length
}

// Shape represents a filled rectangle, optionally carrying text.
type Shape struct {
	Name        string
	BBox        BBox
	Fill        *Color
	Line        *Outline
	Text        *TextFrame
	Placeholder Placeholder
}

func (s *Shape) Type() ElementType { return ElementTypeShape }
func (s *Shape) BoundingBox() BBox { return s.BBox }
func (s *Shape) GetText() string   { return s.Text.GetText() }

// TextBox represents an unfilled text frame.
type TextBox struct {
	Name        string
	BBox        BBox
	Text        TextFrame
	Placeholder Placeholder
}

func (t *TextBox) Type() ElementType { return ElementTypeTextBox }
func (t *TextBox) BoundingBox() BBox { return t.BBox }
func (t *TextBox) GetText() string   { return t.Text.GetText() }

// Image represents an embedded image
type Image struct {
	Data   []byte
	Format ImageFormat
	BBox   BBox
	// Pixel dimensions of Data
	PixelWidth  int
	PixelHeight int
	// Source path and alt text if available
	Source  string
	AltText string
}

func (i *Image) Type() ElementType { return ElementTypeImage }
func (i *Image) BoundingBox() BBox { return i.BBox }

// ImageFormat represents image format
type ImageFormat int

const (
	ImageFormatUnknown ImageFormat = iota
	ImageFormatJPEG
	ImageFormatPNG
	ImageFormatGIF
	ImageFormatBMP
	ImageFormatTIFF
)

// Extension returns the file extension for the format, without a dot.
func (f ImageFormat) Extension() string {
	switch f {
	case ImageFormatJPEG:
		return "jpeg"
	case ImageFormatPNG:
		return "png"
	case ImageFormatGIF:
		return "gif"
	case ImageFormatBMP:
		return "bmp"
	case ImageFormatTIFF:
		return "tiff"
	default:
		return ""
	}
}

// ContentType returns the MIME type for the format.
func (f ImageFormat) ContentType() string {
	if ext := f.Extension(); ext != "" {
		return "image/" + ext
	}
	return "application/octet-stream"
}
