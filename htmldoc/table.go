package htmldoc

import (
	"golang.org/x/net/html"

	"github.com/tsawler/htmldeck/model"
)

// BestScoreClass is the class token that marks a best-result row.
const BestScoreClass = "best-score"

// ExtractTable reads a table element into a TableBlock.
//
// Headers come from the th cells of the first row in <thead>. Data rows come
// from <tbody> when present, otherwise from every row of the table. Rows
// without cells are dropped. It never fails: a table with no header row or no
// data rows yields a block that is not renderable.
func ExtractTable(table *html.Node) model.TableBlock {
	block := model.TableBlock{
		Headers: make([]string, 0),
		Rows:    make([][]string, 0),
		Marked:  make([]bool, 0),
	}
	if table == nil {
		return block
	}

	if thead := findFirst(table, isTag("thead")); thead != nil {
		if tr := findFirst(thead, isTag("tr")); tr != nil {
			for _, th := range findAll(tr, isTag("th")) {
				block.Headers = append(block.Headers, textContent(th))
			}
		}
	}

	body := findFirst(table, isTag("tbody"))
	if body == nil {
		body = table
	}

	for _, tr := range findAll(body, isTag("tr")) {
		cells := findAll(tr, isTag("td", "th"))
		if len(cells) == 0 {
			continue
		}
		row := make([]string, len(cells))
		marked := hasClass(tr, BestScoreClass)
		for i, c := range cells {
			row[i] = textContent(c)
			if hasClass(c, BestScoreClass) {
				marked = true
			}
		}
		block.Rows = append(block.Rows, row)
		block.Marked = append(block.Marked, marked)
	}

	return block
}
