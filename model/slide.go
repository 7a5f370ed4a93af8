package model

// SlideRecord is the classified content of one slide fragment.
// Every slice is non-nil and keeps source document order.
type SlideRecord struct {
	Title             string
	Paragraphs        []string
	Stats             []StatCard
	BulletPoints      []string
	Tables            []TableBlock
	HighlightBoxes    []string
	AlgorithmCards    []AlgorithmCard
	FeatureBars       []FeatureBar
	ChartPlaceholders []string
}

// NewSlideRecord returns a record with every block sequence empty.
func NewSlideRecord() SlideRecord {
	return SlideRecord{
		Paragraphs:        make([]string, 0),
		Stats:             make([]StatCard, 0),
		BulletPoints:      make([]string, 0),
		Tables:            make([]TableBlock, 0),
		HighlightBoxes:    make([]string, 0),
		AlgorithmCards:    make([]AlgorithmCard, 0),
		FeatureBars:       make([]FeatureBar, 0),
		ChartPlaceholders: make([]string, 0),
	}
}

// IsEmpty reports whether the record carries no title and no blocks.
func (s *SlideRecord) IsEmpty() bool {
	return s.Title == "" && s.BlockCount() == 0
}

// BlockCount returns the total number of content blocks on the slide.
func (s *SlideRecord) BlockCount() int {
	return len(s.Paragraphs) + len(s.Stats) + len(s.BulletPoints) +
		len(s.Tables) + len(s.HighlightBoxes) + len(s.AlgorithmCards) +
		len(s.FeatureBars) + len(s.ChartPlaceholders)
}

// StatCard is a headline number with its caption.
type StatCard struct {
	Number string
	Label  string
}

// TableBlock is a header row plus data rows read from a table fragment.
// Rows may have more or fewer cells than Headers.
type TableBlock struct {
	Headers []string
	Rows    [][]string
	// Marked[i] is true when row i carried the best-result marker in its markup.
	Marked []bool
}

// IsRenderable reports whether the table has both headers and data rows.
func (t *TableBlock) IsRenderable() bool {
	return len(t.Headers) > 0 && len(t.Rows) > 0
}

// RowMarked reports whether row i was marked in the source.
func (t *TableBlock) RowMarked(i int) bool {
	return i >= 0 && i < len(t.Marked) && t.Marked[i]
}

// AlgorithmCard is a titled description card.
type AlgorithmCard struct {
	Title string
	Text  string
}

// FeatureBar is a labelled horizontal bar with a percentage fill.
type FeatureBar struct {
	Name  string
	Value string
	Width int // Percentage in [0,100]
}
