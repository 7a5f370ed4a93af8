package htmldoc

import (
	"regexp"
	"strconv"

	"golang.org/x/net/html"

	"github.com/tsawler/htmldeck/model"
)

// widthPattern finds the percentage width in a bar's inline style.
var widthPattern = regexp.MustCompile(`width:\s*(\d+)%`)

// ClassifySlide builds the record for one slide element.
//
// Each block kind is collected by its own forward scan in document order, so
// a fragment nested inside another fragment is reported by both rules. Only
// plain paragraphs are filtered by their ancestors.
func ClassifySlide(slide *html.Node) model.SlideRecord {
	rec := model.NewSlideRecord()
	if slide == nil {
		return rec
	}

	if h := findFirst(slide, isTag("h1", "h2")); h != nil {
		rec.Title = textContent(h)
	}

	for _, card := range findAll(slide, FragmentStatCard.Matches) {
		number := findFirst(card, FragmentStatNumber.Matches)
		label := findFirst(card, FragmentStatLabel.Matches)
		if number == nil || label == nil {
			continue
		}
		rec.Stats = append(rec.Stats, model.StatCard{
			Number: textContent(number),
			Label:  textContent(label),
		})
	}

	for _, ul := range findAll(slide, FragmentBulletList.Matches) {
		for _, li := range findAll(ul, isTag("li")) {
			rec.BulletPoints = append(rec.BulletPoints, textContent(li))
		}
	}

	for _, table := range findAll(slide, FragmentPerformanceTable.Matches) {
		rec.Tables = append(rec.Tables, ExtractTable(table))
	}

	for _, box := range findAll(slide, FragmentHighlightBox.Matches) {
		if text := textContent(box); text != "" {
			rec.HighlightBoxes = append(rec.HighlightBoxes, text)
		}
	}

	for _, grid := range findAll(slide, FragmentAlgorithmGrid.Matches) {
		for _, card := range findAll(grid, FragmentAlgorithmCard.Matches) {
			rec.AlgorithmCards = append(rec.AlgorithmCards, model.AlgorithmCard{
				Title: textContent(findFirst(card, isTag("h4"))),
				Text:  textContent(findFirst(card, isTag("p"))),
			})
		}
	}

	for _, bar := range findAll(slide, FragmentFeatureBar.Matches) {
		name := findFirst(bar, FragmentFeatureName.Matches)
		fill := findFirst(bar, FragmentBarFill.Matches)
		if name == nil || fill == nil {
			continue
		}
		style, _ := getAttr(fill, "style")
		rec.FeatureBars = append(rec.FeatureBars, model.FeatureBar{
			Name:  textContent(name),
			Value: textContent(fill),
			Width: ParseWidth(style),
		})
	}

	for _, ph := range findAll(slide, FragmentChartPlaceholder.Matches) {
		rec.ChartPlaceholders = append(rec.ChartPlaceholders, textContent(ph))
	}

	rec.Paragraphs = append(rec.Paragraphs, paragraphs(slide)...)

	return rec
}

// ParseWidth extracts the bar percentage from an inline style. It returns 0
// when the style has no "width: N%" declaration and clamps values above 100.
func ParseWidth(style string) int {
	m := widthPattern.FindStringSubmatch(style)
	if m == nil {
		return 0
	}
	// Only an out-of-range error is possible for a run of ASCII digits.
	w, err := strconv.Atoi(m[1])
	if err != nil || w > 100 {
		return 100
	}
	return w
}

// paragraphs walks the slide and returns the text of every <p> that is not
// inside a stat card, highlight box or algorithm card.
func paragraphs(slide *html.Node) []string {
	var out []string
	var walk func(n *html.Node, owned bool)
	walk = func(n *html.Node, owned bool) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			childOwned := owned || ownsParagraphs(c)
			if c.Data == "p" && !owned {
				if text := textContent(c); text != "" {
					out = append(out, text)
				}
			}
			walk(c, childOwned)
		}
	}
	walk(slide, false)
	return out
}

// ownsParagraphs reports whether n is a fragment whose block already carries
// the text of the paragraphs inside it.
func ownsParagraphs(n *html.Node) bool {
	for _, s := range fragmentSpecs {
		if s.kind.excludesParagraphs() && s.kind.Matches(n) {
			return true
		}
	}
	return false
}
