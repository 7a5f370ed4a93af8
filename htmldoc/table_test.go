package htmldoc

import (
	"reflect"
	"strings"
	"testing"
)

func firstTable(t *testing.T, fragment string) ([]string, [][]string, []bool) {
	t.Helper()
	r, err := OpenReader(strings.NewReader(fragment))
	if err != nil {
		t.Fatalf("OpenReader() failed: %v", err)
	}
	table := findFirst(r.doc, isTag("table"))
	if table == nil {
		t.Fatal("no <table> found")
	}
	block := ExtractTable(table)
	return block.Headers, block.Rows, block.Marked
}

func TestExtractTable_HeadAndBody(t *testing.T) {
	headers, rows, marked := firstTable(t, `<table class="performance-table">
		<thead><tr><th>Model</th><th> Accuracy </th></tr></thead>
		<tbody>
			<tr><td>SVM</td><td>0.81</td></tr>
			<tr class="best-score"><td>XGBoost</td><td>0.94</td></tr>
			<tr></tr>
			<tr><td>KNN</td><td class="best-score">0.77</td></tr>
		</tbody>
	</table>`)

	if !reflect.DeepEqual(headers, []string{"Model", "Accuracy"}) {
		t.Errorf("Headers = %v", headers)
	}
	wantRows := [][]string{{"SVM", "0.81"}, {"XGBoost", "0.94"}, {"KNN", "0.77"}}
	if !reflect.DeepEqual(rows, wantRows) {
		t.Errorf("Rows = %v, want %v", rows, wantRows)
	}
	if !reflect.DeepEqual(marked, []bool{false, true, true}) {
		t.Errorf("Marked = %v", marked)
	}
}

func TestExtractTable_NoHead(t *testing.T) {
	headers, rows, _ := firstTable(t, `<table>
		<tr><th>A</th><th>B</th></tr>
		<tr><td>1</td><td>2</td></tr>
	</table>`)

	if len(headers) != 0 {
		t.Errorf("Headers = %v, want none without <thead>", headers)
	}
	// th cells in the body count as row cells
	if !reflect.DeepEqual(rows, [][]string{{"A", "B"}, {"1", "2"}}) {
		t.Errorf("Rows = %v", rows)
	}
}

func TestExtractTable_HeadOnly(t *testing.T) {
	headers, rows, _ := firstTable(t, `<table><thead><tr><th>X</th></tr></thead></table>`)

	if !reflect.DeepEqual(headers, []string{"X"}) {
		t.Errorf("Headers = %v", headers)
	}
	// Without a <tbody>, every row of the table is a data row, header row included.
	if !reflect.DeepEqual(rows, [][]string{{"X"}}) {
		t.Errorf("Rows = %v", rows)
	}
}

func TestExtractTable_RaggedRows(t *testing.T) {
	headers, rows, _ := firstTable(t, `<table>
		<thead><tr><th>a</th><th>b</th><th>c</th></tr></thead>
		<tbody>
			<tr><td>1</td><td>2</td><td>3</td><td>4</td><td>5</td></tr>
			<tr><td>only</td></tr>
		</tbody>
	</table>`)

	if len(headers) != 3 {
		t.Fatalf("Headers = %v", headers)
	}
	if len(rows[0]) != 5 || len(rows[1]) != 1 {
		t.Errorf("extraction should keep source cell counts, got %v", rows)
	}
}

func TestExtractTable_Nil(t *testing.T) {
	block := ExtractTable(nil)
	if block.IsRenderable() || block.Headers == nil || block.Rows == nil {
		t.Errorf("ExtractTable(nil) = %+v", block)
	}
}
