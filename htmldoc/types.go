// Package htmldoc reads slide decks written as HTML.
//
// A deck is any HTML document whose slides are <div class="slide"> elements.
// Each slide is classified into a model.SlideRecord by looking at tag names,
// class tokens and containment only; layout and styling attributes are
// ignored except for the bar width of feature bars.
package htmldoc

import "golang.org/x/net/html"

// FragmentKind identifies the role a markup element plays in a slide.
type FragmentKind int

const (
	FragmentNone FragmentKind = iota
	FragmentSlide
	FragmentStatCard
	FragmentStatNumber
	FragmentStatLabel
	FragmentBulletList
	FragmentPerformanceTable
	FragmentHighlightBox
	FragmentAlgorithmGrid
	FragmentAlgorithmCard
	FragmentFeatureBar
	FragmentFeatureName
	FragmentBarFill
	FragmentChartPlaceholder
)

// fragmentSpec binds a kind to the tag and class token that select it.
type fragmentSpec struct {
	kind  FragmentKind
	tag   string
	class string
	name  string
}

var fragmentSpecs = []fragmentSpec{
	{FragmentSlide, "div", "slide", "slide"},
	{FragmentStatCard, "div", "stat-card", "stat-card"},
	{FragmentStatNumber, "span", "stat-number", "stat-number"},
	{FragmentStatLabel, "span", "stat-label", "stat-label"},
	{FragmentBulletList, "ul", "bullet-points", "bullet-points"},
	{FragmentPerformanceTable, "table", "performance-table", "performance-table"},
	{FragmentHighlightBox, "div", "highlight-box", "highlight-box"},
	{FragmentAlgorithmGrid, "div", "algorithm-grid", "algorithm-grid"},
	{FragmentAlgorithmCard, "div", "algorithm-card", "algorithm-card"},
	{FragmentFeatureBar, "div", "feature-bar", "feature-bar"},
	{FragmentFeatureName, "span", "feature-name", "feature-name"},
	{FragmentBarFill, "div", "bar-fill", "bar-fill"},
	{FragmentChartPlaceholder, "div", "chart-placeholder", "chart-placeholder"},
}

func (k FragmentKind) String() string {
	for _, s := range fragmentSpecs {
		if s.kind == k {
			return s.name
		}
	}
	return "none"
}

// Class returns the class token that selects the kind, or "" for FragmentNone.
func (k FragmentKind) Class() string {
	for _, s := range fragmentSpecs {
		if s.kind == k {
			return s.class
		}
	}
	return ""
}

// KindOf returns the fragment kind of n. Both the tag and the class token
// must match; a <span class="slide"> is not a slide.
func KindOf(n *html.Node) FragmentKind {
	if n == nil || n.Type != html.ElementNode {
		return FragmentNone
	}
	for _, s := range fragmentSpecs {
		if n.Data == s.tag && hasClass(n, s.class) {
			return s.kind
		}
	}
	return FragmentNone
}

// Matches reports whether n is selected by k. An element carrying several
// class tokens can match more than one kind.
func (k FragmentKind) Matches(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	for _, s := range fragmentSpecs {
		if s.kind == k {
			return n.Data == s.tag && hasClass(n, s.class)
		}
	}
	return false
}

// excludesParagraphs reports whether paragraphs inside a fragment of kind k
// are already owned by that fragment's block.
func (k FragmentKind) excludesParagraphs() bool {
	switch k {
	case FragmentStatCard, FragmentHighlightBox, FragmentAlgorithmCard:
		return true
	}
	return false
}
