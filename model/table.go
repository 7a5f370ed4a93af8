package model

// Table represents a table with cells organized in rows and columns
type Table struct {
	Name    string
	BBox    BBox
	Columns []Length // Column widths
	Rows    [][]Cell
	Heights []Length // Row heights
}

func (t *Table) Type() ElementType { return ElementTypeTable }
func (t *Table) BoundingBox() BBox { return t.BBox }

// NewTable creates a new table with given dimensions
func NewTable(rows, cols int) *Table {
	table := &Table{
		Rows:    make([][]Cell, rows),
		Columns: make([]Length, cols),
		Heights: make([]Length, rows),
	}
	for i := 0; i < rows; i++ {
		table.Rows[i] = make([]Cell, cols)
	}
	return table
}

// Cell represents a table cell
type Cell struct {
	Text     string
	IsHeader bool
	// Cell styling
	Style CellStyle
}

// CellStyle represents cell styling
type CellStyle struct {
	BackgroundColor Color
	TextStyle       TextStyle
	Alignment       TextAlignment
}
