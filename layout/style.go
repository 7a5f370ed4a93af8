package layout

import "github.com/tsawler/htmldeck/model"

// Palette.
var (
	colorWhite      = model.RGB(255, 255, 255)
	colorBlack      = model.RGB(0, 0, 0)
	colorText       = model.RGB(51, 51, 51)    // #333333
	colorTitle      = model.RGB(44, 62, 80)    // #2c3e50
	colorHeading    = model.RGB(52, 73, 94)    // #34495e
	colorAccent     = model.RGB(52, 152, 219)  // #3498db
	colorAccentLine = model.RGB(41, 128, 185)  // #2980b9
	colorCardFill   = model.RGB(248, 249, 250) // #f8f9fa
	colorCardLine   = model.RGB(23, 162, 184)  // #17a2b8
	colorTrackFill  = model.RGB(236, 240, 241) // #ecf0f1
	colorTrackLine  = model.RGB(189, 195, 199) // #bdc3c7
	colorBarFill    = model.RGB(231, 76, 60)   // #e74c3c
	colorBarLine    = model.RGB(192, 57, 43)   // #c0392b
	colorHighlight  = model.RGB(255, 243, 205) // #fff3cd
	colorHighLine   = model.RGB(255, 234, 167) // #ffeaa7
	colorBestRow    = model.RGB(212, 237, 218) // #d4edda
)

// Geometry, in inches from the top-left corner of a widescreen canvas.
var (
	marginLeft   = model.Inches(0.5)
	contentWidth = model.Inches(12)
	contentTop   = model.Inches(1.8)
	gutter       = model.Inches(0.3)

	titleBox = model.NewBBox(model.Inches(0.5), model.Inches(0.5), model.Inches(12), model.Inches(1))

	coverTitleBox     = model.NewBBox(model.Inches(1), model.Inches(1.5), model.Inches(11.33), model.Inches(1.5))
	coverSubtitleBox  = model.NewBBox(model.Inches(1), model.Inches(3), model.Inches(11.33), model.Inches(2))
	coverHighlightBox = model.NewBBox(model.Inches(2), model.Inches(5), model.Inches(9), model.Inches(1.5))

	counterBox = model.NewBBox(model.Inches(12), model.Inches(0.2), model.Inches(1), model.Inches(0.5))

	chartLeft    = model.Inches(2)
	chartWidth   = model.Inches(9)
	chartAdvance = model.Inches(3.5)

	statWidth  = model.Inches(2.8)
	statHeight = model.Inches(1.8)

	algoWidth  = model.Inches(5.5)
	algoHeight = model.Inches(2)

	barNameWidth  = model.Inches(1.5)
	barLeft       = model.Inches(2)
	barWidth      = model.Inches(9)
	barHeight     = model.Inches(0.5)
	barGap        = model.Inches(0.2)
	barValueWidth = model.Inches(0.5)

	bulletHeight  = model.Inches(3)
	bulletAdvance = model.Inches(3.5)

	tableRowHeight = model.Inches(0.5)
	tableMaxHeight = model.Inches(4)

	highlightHeight  = model.Inches(1)
	highlightAdvance = model.Inches(1.2)
)

// Type sizes in points.
const (
	sizeCoverTitle = 36
	sizeTitle      = 32
	sizeStatNumber = 28
	sizeSubtitle   = 18
	sizeCardTitle  = 16
	sizeBullet     = 16
	sizeBarName    = 14
	sizeHighlight  = 14
	sizeSmall      = 12
	sizeTableCell  = 10
)

// BulletMarker prefixes every bullet point.
const BulletMarker = "▶ "

// DefaultSubtitle is shown on the title slide when it has no paragraphs.
const DefaultSubtitle = "A presentation converted from HTML\n\nGenerated by htmldeck"

func style(size float64, bold bool, c model.Color) model.TextStyle {
	return model.TextStyle{Size: size, Bold: bold, Color: c}
}
