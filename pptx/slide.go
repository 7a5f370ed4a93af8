package pptx

import "strings"

// Slide is one slide read back from a package.
type Slide struct {
	Index    int         // zero-based position in the deck
	Title    string      // text of the first title placeholder
	Content  []TextBlock // text-bearing shapes, back to front
	Tables   []Table
	Pictures []Picture
}

// TextBlock is a shape with visible text.
type TextBlock struct {
	Name        string // cNvPr name
	Text        string // non-empty paragraphs joined by newlines
	Paragraphs  []Paragraph
	IsTitle     bool
	IsSubtitle  bool
	Placeholder string // placeholder type, empty for free shapes
	Fill        string // solid fill as RRGGBB, empty when unfilled
	X, Y        int    // EMUs
	Width       int
	Height      int
}

// Paragraph is a non-empty paragraph of a text block.
type Paragraph struct {
	Text      string
	Alignment string // l, ctr, r or empty
	Runs      []Run
}

// Run is a span of text with one set of properties.
type Run struct {
	Text     string
	Bold     bool
	FontSize int    // hundredths of a point
	Color    string // RRGGBB, empty when inherited
}

// Table is a table graphic frame.
type Table struct {
	Name    string
	Rows    [][]TableCell
	Columns int
	X, Y    int // EMUs
	Width   int
	Height  int
}

// TableCell is one cell of a Table.
type TableCell struct {
	Text string
	Fill string // solid fill as RRGGBB
}

// Picture is an embedded image and the package part holding its bytes.
type Picture struct {
	Name   string
	Descr  string // alt text
	Target string // package path, e.g. ppt/media/image1.png
	X, Y   int    // EMUs
	Width  int
	Height int
}

// Block returns the first text block with the given shape name.
func (s *Slide) Block(name string) (TextBlock, bool) {
	for _, b := range s.Content {
		if b.Name == name {
			return b, true
		}
	}
	return TextBlock{}, false
}

// Markdown renders the slide: the title as a heading, then text blocks,
// tables and pictures in that order.
func (s *Slide) Markdown() string {
	var sb strings.Builder

	if s.Title != "" {
		sb.WriteString("# " + s.Title + "\n\n")
	}
	for _, block := range s.Content {
		if block.IsTitle {
			continue
		}
		for _, para := range block.Paragraphs {
			sb.WriteString(para.Text + "\n\n")
		}
	}
	for _, table := range s.Tables {
		sb.WriteString(table.Markdown() + "\n")
	}
	for _, pic := range s.Pictures {
		sb.WriteString("![" + pic.Descr + "](" + pic.Target + ")\n\n")
	}
	return sb.String()
}

// Markdown renders the table with its first row as the header.
func (t *Table) Markdown() string {
	if len(t.Rows) == 0 {
		return ""
	}

	var sb strings.Builder
	writeRow := func(row []TableCell) {
		sb.WriteString("|")
		for _, cell := range row {
			sb.WriteString(" " + markdownCellEscaper.Replace(cell.Text) + " |")
		}
		sb.WriteString("\n")
	}

	writeRow(t.Rows[0])
	sb.WriteString("|" + strings.Repeat("---|", len(t.Rows[0])) + "\n")
	for _, row := range t.Rows[1:] {
		writeRow(row)
	}
	return sb.String()
}

var markdownCellEscaper = strings.NewReplacer("|", "\\|", "\r\n", " ", "\n", " ", "\r", " ")
