package layout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tsawler/htmldeck/charts"
	"github.com/tsawler/htmldeck/model"
)

// Slide is one slide being laid out. The placement routines draw onto its
// page and record warnings against its index.
type Slide struct {
	Page     *model.Page
	Index    int // 0-based
	Warnings []model.Warning

	r     *Renderer
	names map[string]int
}

func (s *Slide) warn(code model.WarningCode, format string, args ...any) {
	s.Warnings = append(s.Warnings, model.Warning{
		Code:    code,
		Slide:   s.Index + 1,
		Message: fmt.Sprintf(format, args...),
	})
}

// truncate returns at most limit items, warning when some are dropped.
func truncate[T any](s *Slide, items []T, limit int, what string) []T {
	if len(items) <= limit {
		return items
	}
	s.warn(model.WarnTruncated, "%d %s, placed %d", len(items), what, limit)
	return items[:limit]
}

// name returns a shape name unique within the slide, e.g. "Stat Card 3".
func (s *Slide) name(kind string) string {
	if s.names == nil {
		s.names = make(map[string]int)
	}
	s.names[kind]++
	return fmt.Sprintf("%s %d", kind, s.names[kind])
}

func (s *Slide) addBox(kind string, bbox model.BBox, fill model.Color, line model.Outline, text *model.TextFrame) *model.Shape {
	shape := &model.Shape{
		Name: s.name(kind),
		BBox: bbox,
		Fill: &fill,
		Line: &line,
		Text: text,
	}
	if text != nil {
		text.Anchor = model.AnchorMiddle
	}
	s.Page.AddElement(shape)
	return shape
}

func (s *Slide) addText(kind string, bbox model.BBox, frame *model.TextFrame) *model.TextBox {
	tb := &model.TextBox{Name: s.name(kind), BBox: bbox, Text: *frame}
	s.Page.AddElement(tb)
	return tb
}

// gridRows returns the number of rows needed for n items in cols columns.
func gridRows(n, cols int) int {
	if n == 0 || cols <= 0 {
		return 0
	}
	return (n + cols - 1) / cols
}

// PlaceCharts embeds the image for each chart placeholder at a fixed width,
// keeping its aspect ratio. Placeholders without an image are skipped with a
// warning and do not move the cursor.
func (s *Slide) PlaceCharts(placeholders []string, c Cursor) Cursor {
	for _, ph := range placeholders {
		if s.r.Images == nil {
			s.warn(model.WarnImageMissing, "%s: no image directory", ph)
			continue
		}
		img, err := s.r.Images.Resolve(ph)
		if err != nil {
			code := model.WarnImageUnreadable
			if errors.Is(err, charts.ErrNotFound) {
				code = model.WarnImageMissing
			}
			s.warn(code, "%v", err)
			continue
		}

		placed := *img
		height := chartWidth
		if img.PixelWidth > 0 {
			height = chartWidth.Scale(int64(img.PixelHeight), int64(img.PixelWidth))
		}
		placed.BBox = model.NewBBox(chartLeft, c.Y, chartWidth, height)
		s.Page.AddElement(&placed)
		c = c.Advance(chartAdvance)
	}
	return c
}

// PlaceStats draws statistic cards in a grid of up to Limits.StatColumns
// columns. The cursor moves down one card height plus gutter per grid row.
func (s *Slide) PlaceStats(stats []model.StatCard, c Cursor) Cursor {
	stats = truncate(s, stats, s.r.Limits.Stats, "statistics")
	if len(stats) == 0 {
		return c
	}

	cols := min(s.r.Limits.StatColumns, len(stats))
	for i, st := range stats {
		row, col := i/cols, i%cols
		x := marginLeft + model.Length(col)*(statWidth+gutter)
		y := c.Y + model.Length(row)*(statHeight+gutter)

		frame := model.NewTextFrame(st.Number, style(sizeStatNumber, true, colorWhite), model.AlignCenter)
		frame.AddParagraph(st.Label, style(sizeSmall, false, colorWhite), model.AlignCenter)
		s.addBox("Stat Card", model.NewBBox(x, y, statWidth, statHeight), colorAccent,
			model.Outline{Color: colorAccentLine, Width: model.Points(1)}, frame)
	}

	return c.Advance(model.Length(gridRows(len(stats), cols)) * (statHeight + gutter))
}

// PlaceAlgorithmCards draws titled cards in a grid of Limits.AlgorithmColumns
// columns.
func (s *Slide) PlaceAlgorithmCards(cards []model.AlgorithmCard, c Cursor) Cursor {
	cards = truncate(s, cards, s.r.Limits.AlgorithmCards, "algorithm cards")
	if len(cards) == 0 {
		return c
	}

	cols := s.r.Limits.AlgorithmColumns
	for i, card := range cards {
		row, col := i/cols, i%cols
		x := marginLeft + model.Length(col)*(algoWidth+gutter)
		y := c.Y + model.Length(row)*(algoHeight+gutter)

		frame := model.NewTextFrame(card.Title, style(sizeCardTitle, true, colorText), model.AlignLeft)
		frame.AddParagraph(card.Text, style(sizeSmall, false, colorText), model.AlignLeft)
		s.addBox("Algorithm Card", model.NewBBox(x, y, algoWidth, algoHeight), colorCardFill,
			model.Outline{Color: colorCardLine, Width: model.Points(3)}, frame)
	}

	return c.Advance(model.Length(gridRows(len(cards), cols)) * (algoHeight + gutter))
}

// PlaceFeatureBars draws one horizontal bar per feature: a name label, a
// fixed-width track, a fill proportional to the bar's width and the value
// label right-aligned at the end of the fill.
func (s *Slide) PlaceFeatureBars(bars []model.FeatureBar, c Cursor) Cursor {
	bars = truncate(s, bars, s.r.Limits.FeatureBars, "feature bars")

	for i, bar := range bars {
		y := c.Y + model.Length(i)*(barHeight+barGap)

		s.addText("Feature Name", model.NewBBox(marginLeft, y, barNameWidth, barHeight),
			model.NewTextFrame(bar.Name, style(sizeBarName, true, colorText), model.AlignLeft))

		s.addBox("Bar Track", model.NewBBox(barLeft, y, barWidth, barHeight), colorTrackFill,
			model.Outline{Color: colorTrackLine}, nil)

		width := min(max(bar.Width, 0), 100)
		fill := barWidth.Scale(int64(width), 100)
		if fill > 0 {
			s.addBox("Bar Fill", model.NewBBox(barLeft, y, fill, barHeight), colorBarFill,
				model.Outline{Color: colorBarLine}, nil)
		}

		s.addText("Feature Value", model.NewBBox(barLeft+fill-barValueWidth, y, barValueWidth, barHeight),
			model.NewTextFrame(bar.Value, style(sizeSmall, false, colorWhite), model.AlignRight))
	}

	return c.Advance(model.Length(len(bars)) * (barHeight + barGap))
}

// PlaceBullets draws the bullet points as paragraphs of one text box. The
// cursor moves by a fixed block height whatever the number of points.
func (s *Slide) PlaceBullets(points []string, c Cursor) Cursor {
	points = truncate(s, points, s.r.Limits.Bullets, "bullet points")
	if len(points) == 0 {
		return c
	}

	frame := &model.TextFrame{}
	for _, pt := range points {
		frame.Paragraphs = append(frame.Paragraphs, model.Paragraph{
			Runs: []model.Run{
				{Text: BulletMarker, Style: style(sizeBullet, false, colorAccent)},
				{Text: pt, Style: style(sizeBullet, false, colorText)},
			},
			Alignment: model.AlignLeft,
		})
	}
	s.addText("Bullets", model.NewBBox(marginLeft, c.Y, contentWidth, bulletHeight), frame)

	return c.Advance(bulletAdvance)
}

// PlaceTables draws renderable tables. A table has one column per header:
// extra cells are dropped and short rows padded with empty cells. Tables
// without headers or rows are skipped with a warning.
func (s *Slide) PlaceTables(tables []model.TableBlock, c Cursor) Cursor {
	tables = truncate(s, tables, s.r.Limits.Tables, "tables")

	for i := range tables {
		tb := &tables[i]
		if !tb.IsRenderable() {
			s.warn(model.WarnTableSkipped, "table %d has %d headers and %d rows", i+1, len(tb.Headers), len(tb.Rows))
			continue
		}
		table := s.buildTable(tb, c)
		s.Page.AddElement(table)
		c = c.Advance(table.BBox.Height + gutter)
	}
	return c
}

func (s *Slide) buildTable(tb *model.TableBlock, c Cursor) *model.Table {
	rows := tb.Rows
	if len(rows) > s.r.Limits.TableRows {
		s.warn(model.WarnTruncated, "%d table rows, placed %d", len(rows), s.r.Limits.TableRows)
		rows = rows[:s.r.Limits.TableRows]
	}

	cols := len(tb.Headers)
	table := model.NewTable(len(rows)+1, cols)
	table.Name = s.name("Table")

	height := min(tableMaxHeight, model.Length(len(rows)+1)*tableRowHeight)
	table.BBox = model.NewBBox(marginLeft, c.Y, contentWidth, height)
	split(table.Columns, contentWidth)
	split(table.Heights, height)

	for j, h := range tb.Headers {
		table.Rows[0][j] = model.Cell{
			Text:     h,
			IsHeader: true,
			Style: model.CellStyle{
				BackgroundColor: colorTitle,
				TextStyle:       style(sizeSmall, true, colorWhite),
			},
		}
	}

	for i, row := range rows {
		fill := colorCardFill
		if i%2 == 1 {
			fill = colorWhite
		}
		if tb.RowMarked(i) || s.r.isBest(row) {
			fill = colorBestRow
		}
		for j := 0; j < cols; j++ {
			var text string
			if j < len(row) {
				text = row[j]
			}
			table.Rows[i+1][j] = model.Cell{
				Text: text,
				Style: model.CellStyle{
					BackgroundColor: fill,
					TextStyle:       style(sizeTableCell, false, colorText),
				},
			}
		}
	}

	return table
}

// split divides total evenly into parts, giving the remainder to the last.
func split(parts []model.Length, total model.Length) {
	if len(parts) == 0 {
		return
	}
	each := total / model.Length(len(parts))
	for i := range parts {
		parts[i] = each
	}
	parts[len(parts)-1] += total - each*model.Length(len(parts))
}

// PlaceHighlights draws up to limit full-width highlight banners.
func (s *Slide) PlaceHighlights(boxes []string, limit int, c Cursor) Cursor {
	boxes = truncate(s, boxes, limit, "highlight boxes")

	for _, text := range boxes {
		s.addBox("Highlight", model.NewBBox(marginLeft, c.Y, contentWidth, highlightHeight), colorHighlight,
			model.Outline{Color: colorHighLine},
			model.NewTextFrame(text, style(sizeHighlight, false, colorText), model.AlignLeft))
		c = c.Advance(highlightAdvance)
	}
	return c
}

// isBest reports whether the joined row text contains the best-result marker.
func (r *Renderer) isBest(row []string) bool {
	if r.BestMarker == "" {
		return false
	}
	return strings.Contains(strings.ToLower(strings.Join(row, " ")), strings.ToLower(r.BestMarker))
}
