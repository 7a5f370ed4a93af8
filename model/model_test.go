package model

import "testing"

// ============================================================================
// Length Tests
// ============================================================================

func TestInches(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want Length
	}{
		{"zero", 0, 0},
		{"one inch", 1, 914400},
		{"half inch", 0.5, 457200},
		{"widescreen height", 7.5, 6858000},
		{"widescreen width", 13.333333333, 12192000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Inches(tt.in); got != tt.want {
				t.Errorf("Inches(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestPoints(t *testing.T) {
	if got := Points(1); got != 12700 {
		t.Errorf("Points(1) = %d, want 12700", got)
	}
	if got := Points(3); got != 38100 {
		t.Errorf("Points(3) = %d, want 38100", got)
	}
}

func TestLengthScale(t *testing.T) {
	track := Inches(9)
	tests := []struct {
		num, den int64
		want     Length
	}{
		{0, 100, 0},
		{100, 100, track},
		{50, 100, Inches(4.5)},
		{73, 100, Length(int64(track) * 73 / 100)},
		{1, 0, 0},
	}

	for _, tt := range tests {
		if got := track.Scale(tt.num, tt.den); got != tt.want {
			t.Errorf("Scale(%d, %d) = %d, want %d", tt.num, tt.den, got, tt.want)
		}
	}
}

func TestLengthInchesRoundTrip(t *testing.T) {
	if got := Inches(2.8).Inches(); got < 2.7999 || got > 2.8001 {
		t.Errorf("Inches(2.8).Inches() = %v", got)
	}
}

// ============================================================================
// BBox Tests
// ============================================================================

func TestBBoxEdges(t *testing.T) {
	bbox := NewBBox(10, 20, 100, 50)

	if bbox.Left() != 10 {
		t.Errorf("Left() = %v, want 10", bbox.Left())
	}
	if bbox.Right() != 110 {
		t.Errorf("Right() = %v, want 110", bbox.Right())
	}
	if bbox.Top() != 20 {
		t.Errorf("Top() = %v, want 20", bbox.Top())
	}
	if bbox.Bottom() != 70 {
		t.Errorf("Bottom() = %v, want 70", bbox.Bottom())
	}
}

func TestBBoxWithin(t *testing.T) {
	outer := NewBBox(0, 0, 100, 100)
	if !NewBBox(10, 10, 80, 80).Within(outer) {
		t.Error("expected inner box to be within outer")
	}
	if NewBBox(90, 90, 20, 20).Within(outer) {
		t.Error("expected overhanging box not to be within outer")
	}
	if !outer.Within(outer) {
		t.Error("a box should be within itself")
	}
	if NewBBox(-1, 0, 10, 10).Within(outer) {
		t.Error("expected box left of outer not to be within")
	}
}

// ============================================================================
// Element Tests
// ============================================================================

func TestElementTypeString(t *testing.T) {
	tests := []struct {
		et   ElementType
		want string
	}{
		{ElementTypeShape, "Shape"},
		{ElementTypeTextBox, "TextBox"},
		{ElementTypeTable, "Table"},
		{ElementTypeImage, "Image"},
		{ElementTypeUnknown, "Unknown"},
		{ElementType(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.et.String(); got != tt.want {
			t.Errorf("ElementType(%d).String() = %q, want %q", tt.et, got, tt.want)
		}
	}
}

func TestColorHex(t *testing.T) {
	if got := RGB(52, 152, 219).Hex(); got != "3498DB" {
		t.Errorf("Hex() = %q, want 3498DB", got)
	}
	if got := RGB(0, 0, 0).Hex(); got != "000000" {
		t.Errorf("Hex() = %q, want 000000", got)
	}
}

func TestTextFrame(t *testing.T) {
	style := TextStyle{Size: 12}
	frame := NewTextFrame("first", style, AlignCenter)
	frame.AddParagraph("second", style, AlignLeft)

	if got := frame.GetText(); got != "first\nsecond" {
		t.Errorf("GetText() = %q", got)
	}
	if frame.Paragraphs[0].Alignment != AlignCenter {
		t.Error("expected first paragraph centered")
	}

	var nilFrame *TextFrame
	if nilFrame.GetText() != "" {
		t.Error("nil frame should have empty text")
	}
}

func TestShapeAndTextBoxText(t *testing.T) {
	s := &Shape{Text: NewTextFrame("42", TextStyle{}, AlignCenter)}
	if s.GetText() != "42" {
		t.Errorf("Shape.GetText() = %q", s.GetText())
	}
	if (&Shape{}).GetText() != "" {
		t.Error("shape without frame should have empty text")
	}

	tb := &TextBox{Text: *NewTextFrame("title", TextStyle{}, AlignLeft)}
	if tb.GetText() != "title" || tb.Type() != ElementTypeTextBox {
		t.Errorf("TextBox = %q/%v", tb.GetText(), tb.Type())
	}
}

func TestImageFormat(t *testing.T) {
	tests := []struct {
		f    ImageFormat
		ext  string
		mime string
	}{
		{ImageFormatPNG, "png", "image/png"},
		{ImageFormatJPEG, "jpeg", "image/jpeg"},
		{ImageFormatGIF, "gif", "image/gif"},
		{ImageFormatUnknown, "", "application/octet-stream"},
	}

	for _, tt := range tests {
		if got := tt.f.Extension(); got != tt.ext {
			t.Errorf("Extension() = %q, want %q", got, tt.ext)
		}
		if got := tt.f.ContentType(); got != tt.mime {
			t.Errorf("ContentType() = %q, want %q", got, tt.mime)
		}
	}
}

// ============================================================================
// Table Tests
// ============================================================================

func TestNewTable(t *testing.T) {
	table := NewTable(3, 2)
	if len(table.Rows) != 3 || len(table.Columns) != 2 || len(table.Heights) != 3 {
		t.Fatalf("NewTable(3, 2) = %d rows, %d columns, %d heights", len(table.Rows), len(table.Columns), len(table.Heights))
	}
	for i, row := range table.Rows {
		if len(row) != 2 {
			t.Errorf("row %d has %d cells, want 2", i, len(row))
		}
	}
}

// ============================================================================
// Page and Document Tests
// ============================================================================

func TestPageElements(t *testing.T) {
	page := NewPage(Inches(13.333), Inches(7.5))
	page.AddElement(&TextBox{BBox: NewBBox(0, 0, 10, 10), Text: *NewTextFrame("hello", TextStyle{}, AlignLeft)})
	page.AddElement(NewTable(1, 1))
	page.AddElement(&Image{BBox: NewBBox(0, 100, 10, 10)})
	page.AddElement(&Shape{BBox: NewBBox(50, 50, 10, 10)})
	page.AddElement(&Shape{BBox: NewBBox(0, Inches(7), 10, Inches(1))})

	if n := len(Elements[*Table](page)); n != 1 {
		t.Errorf("Elements[*Table]() = %d, want 1", n)
	}
	if shapes := Elements[*Shape](page); len(shapes) != 2 || shapes[0].BBox.X != 50 {
		t.Errorf("Elements[*Shape]() = %+v", shapes)
	}
	if page.CountType(ElementTypeShape) != 2 || page.CountType(ElementTypeImage) != 1 {
		t.Errorf("CountType() shape=%d image=%d", page.CountType(ElementTypeShape), page.CountType(ElementTypeImage))
	}
	if page.Bounds().Width != Inches(13.333) {
		t.Errorf("Bounds().Width = %d", page.Bounds().Width)
	}

	over := page.Overflow()
	if len(over) != 1 || over[0].BoundingBox().Y != Inches(7) {
		t.Errorf("Overflow() = %+v, want the shape below the canvas", over)
	}
}

func TestDocumentPages(t *testing.T) {
	doc := NewDocument()
	doc.AddPage(NewPage(10, 10))
	doc.AddPage(NewPage(10, 10))

	if doc.PageCount() != 2 {
		t.Fatalf("PageCount() = %d, want 2", doc.PageCount())
	}
	for i, page := range doc.Pages {
		if page.Number != i+1 {
			t.Errorf("page %d numbered %d", i, page.Number)
		}
	}
	if doc.Metadata.Custom == nil {
		t.Error("NewDocument should initialise custom metadata")
	}
}

// ============================================================================
// Slide Record Tests
// ============================================================================

func TestNewSlideRecord(t *testing.T) {
	rec := NewSlideRecord()
	if rec.Paragraphs == nil || rec.Stats == nil || rec.BulletPoints == nil ||
		rec.Tables == nil || rec.HighlightBoxes == nil || rec.AlgorithmCards == nil ||
		rec.FeatureBars == nil || rec.ChartPlaceholders == nil {
		t.Fatal("NewSlideRecord should not leave any sequence nil")
	}
	if !rec.IsEmpty() {
		t.Error("new record should be empty")
	}

	rec.BulletPoints = append(rec.BulletPoints, "a", "b")
	rec.Stats = append(rec.Stats, StatCard{Number: "1", Label: "x"})
	if rec.BlockCount() != 3 {
		t.Errorf("BlockCount() = %d, want 3", rec.BlockCount())
	}
	if rec.IsEmpty() {
		t.Error("record with blocks should not be empty")
	}
}

func TestTableBlock(t *testing.T) {
	tb := TableBlock{Headers: []string{"a"}, Rows: [][]string{{"1"}, {"2"}}, Marked: []bool{false, true}}
	if !tb.IsRenderable() {
		t.Error("expected renderable table")
	}
	if tb.RowMarked(0) || !tb.RowMarked(1) || tb.RowMarked(7) {
		t.Error("RowMarked returned unexpected values")
	}
	if (&TableBlock{Rows: [][]string{{"1"}}}).IsRenderable() {
		t.Error("headerless table should not be renderable")
	}
}

// ============================================================================
// Warning Tests
// ============================================================================

func TestWarnings(t *testing.T) {
	warnings := []Warning{
		{Code: WarnImageMissing, Slide: 3, Message: "images/roc.png"},
		{Code: WarnTruncated, Message: "too many"},
	}

	if !warnings[0].IsResource() || warnings[1].IsResource() {
		t.Error("IsResource() mismatch")
	}
	got := FormatWarnings(warnings)
	want := "slide 3: image-missing: images/roc.png\ntruncated: too many"
	if got != want {
		t.Errorf("FormatWarnings() = %q, want %q", got, want)
	}
	if WarningCode(0).String() != "unknown" {
		t.Error("zero code should be unknown")
	}
}
