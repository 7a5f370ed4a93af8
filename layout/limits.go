package layout

// Limits caps how many blocks of each kind are placed on one slide.
// Blocks beyond a limit are dropped with a truncation warning.
type Limits struct {
	// Stats is the maximum number of statistic cards per slide
	// Default: 8
	Stats int

	// StatColumns is the maximum number of statistic cards per row
	// Default: 4
	StatColumns int

	// AlgorithmCards is the maximum number of algorithm cards per slide
	// Default: 4
	AlgorithmCards int

	// AlgorithmColumns is the number of algorithm cards per row
	// Default: 2
	AlgorithmColumns int

	// FeatureBars is the maximum number of feature bars per slide
	// Default: 5
	FeatureBars int

	// Bullets is the maximum number of bullet points per slide
	// Default: 8
	Bullets int

	// TableRows is the maximum number of data rows per table, header excluded
	// Default: 10
	TableRows int

	// Tables is the maximum number of tables per slide
	// Default: 1
	Tables int

	// HighlightBoxes is the maximum number of highlight boxes on a content slide
	// Default: 2
	HighlightBoxes int

	// TitleHighlightBoxes is the maximum number of highlight boxes on the title slide
	// Default: 1
	TitleHighlightBoxes int
}

// DefaultLimits returns the standard placement limits.
func DefaultLimits() Limits {
	return Limits{
		Stats:               8,
		StatColumns:         4,
		AlgorithmCards:      4,
		AlgorithmColumns:    2,
		FeatureBars:         5,
		Bullets:             8,
		TableRows:           10,
		Tables:              1,
		HighlightBoxes:      2,
		TitleHighlightBoxes: 1,
	}
}

// WithDefaults returns l with every non-positive field replaced by its
// default. Column counts must be at least one, so a zero limit cannot be
// used to disable a block kind.
func (l Limits) WithDefaults() Limits {
	d := DefaultLimits()
	pick := func(v, def int) int {
		if v <= 0 {
			return def
		}
		return v
	}
	return Limits{
		Stats:               pick(l.Stats, d.Stats),
		StatColumns:         pick(l.StatColumns, d.StatColumns),
		AlgorithmCards:      pick(l.AlgorithmCards, d.AlgorithmCards),
		AlgorithmColumns:    pick(l.AlgorithmColumns, d.AlgorithmColumns),
		FeatureBars:         pick(l.FeatureBars, d.FeatureBars),
		Bullets:             pick(l.Bullets, d.Bullets),
		TableRows:           pick(l.TableRows, d.TableRows),
		Tables:              pick(l.Tables, d.Tables),
		HighlightBoxes:      pick(l.HighlightBoxes, d.HighlightBoxes),
		TitleHighlightBoxes: pick(l.TitleHighlightBoxes, d.TitleHighlightBoxes),
	}
}
