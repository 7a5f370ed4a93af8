package layout

import (
	"fmt"
	"strings"

	"github.com/tsawler/htmldeck/htmldoc"
	"github.com/tsawler/htmldeck/model"
)

// ImageSource loads the image for a chart placeholder.
// *charts.Resolver implements it.
type ImageSource interface {
	Resolve(placeholder string) (*model.Image, error)
}

// Renderer turns slide records into positioned pages.
type Renderer struct {
	Canvas Canvas
	Limits Limits

	// Images resolves chart placeholders; nil leaves every chart unresolved.
	Images ImageSource

	// Subtitle is shown on the title slide when it has no paragraphs.
	Subtitle string

	// BestMarker marks a table row as the best result when the row's text
	// contains it, ignoring case. Empty disables the text match; rows
	// marked in the markup are highlighted either way.
	BestMarker string
}

// NewRenderer returns a renderer with the default canvas, limits and subtitle.
func NewRenderer(images ImageSource) *Renderer {
	return &Renderer{
		Canvas:     DefaultCanvas,
		Limits:     DefaultLimits(),
		Images:     images,
		Subtitle:   DefaultSubtitle,
		BestMarker: htmldoc.BestScoreClass,
	}
}

// RenderSlide lays out the record at index (0-based) of a deck of total
// slides. The first slide uses the title layout, every other slide the
// content layout. Every slide gets a page counter.
func (r *Renderer) RenderSlide(index, total int, rec model.SlideRecord) (*model.Page, []model.Warning) {
	s := r.NewSlide(index)
	if index == 0 {
		s.renderTitle(rec)
	} else {
		s.renderContent(rec)
	}
	s.addCounter(total)

	return s.Page, s.Warnings
}

// renderTitle places the centered deck title, the subtitle and at most one
// highlight box.
func (s *Slide) renderTitle(rec model.SlideRecord) {
	title := s.addText("Title", coverTitleBox,
		model.NewTextFrame(rec.Title, style(sizeCoverTitle, true, colorTitle), model.AlignCenter))
	title.Placeholder = model.PlaceholderCenterTitle
	title.Text.Anchor = model.AnchorMiddle

	text := strings.Join(rec.Paragraphs, "\n")
	if text == "" {
		text = s.r.Subtitle
	}
	frame := &model.TextFrame{}
	for _, line := range strings.Split(text, "\n") {
		frame.AddParagraph(line, style(sizeSubtitle, false, colorText), model.AlignCenter)
	}
	sub := s.addText("Subtitle", coverSubtitleBox, frame)
	sub.Placeholder = model.PlaceholderSubtitle

	boxes := truncate(s, rec.HighlightBoxes, s.r.Limits.TitleHighlightBoxes, "highlight boxes")
	for _, box := range boxes {
		s.addBox("Highlight", coverHighlightBox, colorHighlight,
			model.Outline{Color: colorHighLine},
			model.NewTextFrame(box, style(sizeHighlight, false, colorText), model.AlignCenter))
	}
}

// renderContent places the title banner and runs the placement routines in
// their fixed order.
func (s *Slide) renderContent(rec model.SlideRecord) {
	title := s.addText("Title", titleBox,
		model.NewTextFrame(rec.Title, style(sizeTitle, true, colorHeading), model.AlignLeft))
	title.Placeholder = model.PlaceholderTitle

	c := At(contentTop)
	c = s.PlaceCharts(rec.ChartPlaceholders, c)
	c = s.PlaceStats(rec.Stats, c)
	c = s.PlaceAlgorithmCards(rec.AlgorithmCards, c)
	c = s.PlaceFeatureBars(rec.FeatureBars, c)
	c = s.PlaceBullets(rec.BulletPoints, c)
	c = s.PlaceTables(rec.Tables, c)
	s.PlaceHighlights(rec.HighlightBoxes, s.r.Limits.HighlightBoxes, c)
}

// addCounter draws the "i / n" page counter in the top-right corner.
func (s *Slide) addCounter(total int) {
	s.addBox("Slide Number", counterBox, colorBlack, model.Outline{Color: colorBlack},
		model.NewTextFrame(Counter(s.Index, total), style(sizeSmall, false, colorWhite), model.AlignCenter))
}

// Counter formats the page counter for the slide at index (0-based).
func Counter(index, total int) string {
	return fmt.Sprintf("%d / %d", index+1, total)
}

// NewSlide starts an empty page for the slide at index. RenderSlide uses
// it; it is exported for driving the placement routines one at a time.
func (r *Renderer) NewSlide(index int) *Slide {
	rr := *r
	rr.Limits = r.Limits.WithDefaults()
	if rr.Canvas.Width <= 0 || rr.Canvas.Height <= 0 {
		rr.Canvas = DefaultCanvas
	}

	page := model.NewPage(rr.Canvas.Width, rr.Canvas.Height)
	page.Number = index + 1
	return &Slide{Page: page, Index: index, r: &rr}
}
