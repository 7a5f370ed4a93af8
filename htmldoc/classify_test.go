package htmldoc

import (
	"reflect"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/tsawler/htmldeck/model"
)

// classify parses fragment and classifies its first slide.
func classify(t *testing.T, fragment string) model.SlideRecord {
	t.Helper()
	r, err := OpenReader(strings.NewReader(fragment))
	if err != nil {
		t.Fatalf("OpenReader() failed: %v", err)
	}
	if r.SlideCount() == 0 {
		t.Fatal("fragment has no slide")
	}
	rec, err := r.Slide(0)
	if err != nil {
		t.Fatalf("Slide(0) failed: %v", err)
	}
	return rec
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		html string
		want FragmentKind
	}{
		{`<div class="slide"></div>`, FragmentSlide},
		{`<div class="card stat-card wide"></div>`, FragmentStatCard},
		{`<span class="stat-number"></span>`, FragmentStatNumber},
		{`<ul class="bullet-points"></ul>`, FragmentBulletList},
		{`<div class="bar-fill"></div>`, FragmentBarFill},
		{`<span class="stat-card"></span>`, FragmentNone},
		{`<div class="stat-cards"></div>`, FragmentNone},
		{`<div></div>`, FragmentNone},
	}

	for _, tt := range tests {
		t.Run(tt.html, func(t *testing.T) {
			nodes, err := html.ParseFragment(strings.NewReader(tt.html), &html.Node{Type: html.ElementNode, Data: "body"})
			if err != nil || len(nodes) == 0 {
				t.Fatalf("ParseFragment() = %v, %v", nodes, err)
			}
			if got := KindOf(nodes[0]); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}

	if FragmentHighlightBox.String() != "highlight-box" || FragmentNone.String() != "none" {
		t.Error("FragmentKind.String() mismatch")
	}
	if FragmentChartPlaceholder.Class() != "chart-placeholder" {
		t.Errorf("Class() = %q", FragmentChartPlaceholder.Class())
	}
}

func TestClassify_Title(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{"h1", `<div class="slide"><h1> Demo </h1></div>`, "Demo"},
		{"h2 first", `<div class="slide"><h2>Sub</h2><h1>Main</h1></div>`, "Sub"},
		{"nested", `<div class="slide"><header><h2>Deep</h2></header></div>`, "Deep"},
		{"none", `<div class="slide"><h3>Not a title</h3></div>`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classify(t, tt.html).Title; got != tt.want {
				t.Errorf("Title = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassify_Stats(t *testing.T) {
	rec := classify(t, `<div class="slide">
		<div class="stat-card"><span class="stat-number"> 94% </span><span class="stat-label">Accuracy</span></div>
		<div class="stat-card"><span class="stat-number">12</span></div>
		<div class="stat-card"><span class="stat-label">Orphan label</span></div>
		<div class="stat-card"><div><span class="stat-number">3</span></div><span class="stat-label">Models</span></div>
	</div>`)

	want := []model.StatCard{
		{Number: "94%", Label: "Accuracy"},
		{Number: "3", Label: "Models"},
	}
	if !reflect.DeepEqual(rec.Stats, want) {
		t.Errorf("Stats = %+v, want %+v", rec.Stats, want)
	}
}

func TestClassify_Bullets(t *testing.T) {
	rec := classify(t, `<div class="slide">
		<ul class="bullet-points"><li>one</li><li> two </li></ul>
		<ul><li>ignored</li></ul>
		<ul class="bullet-points"><li>three</li></ul>
	</div>`)

	want := []string{"one", "two", "three"}
	if !reflect.DeepEqual(rec.BulletPoints, want) {
		t.Errorf("BulletPoints = %v, want %v", rec.BulletPoints, want)
	}
}

func TestClassify_HighlightBoxes(t *testing.T) {
	rec := classify(t, `<div class="slide">
		<div class="highlight-box"><p>Key finding</p></div>
		<div class="highlight-box">   </div>
		<p>Body text</p>
	</div>`)

	if !reflect.DeepEqual(rec.HighlightBoxes, []string{"Key finding"}) {
		t.Errorf("HighlightBoxes = %v", rec.HighlightBoxes)
	}
	if !reflect.DeepEqual(rec.Paragraphs, []string{"Body text"}) {
		t.Errorf("Paragraphs = %v, want [Body text]", rec.Paragraphs)
	}
}

func TestClassify_AlgorithmCards(t *testing.T) {
	rec := classify(t, `<div class="slide">
		<div class="algorithm-card"><h4>Outside grid</h4></div>
		<div class="algorithm-grid">
			<div class="algorithm-card"><h4>SVM</h4><p>Margin based</p><p>second</p></div>
			<div class="algorithm-card"><p>No title</p></div>
			<div class="algorithm-card"></div>
		</div>
	</div>`)

	want := []model.AlgorithmCard{
		{Title: "SVM", Text: "Margin based"},
		{Title: "", Text: "No title"},
		{Title: "", Text: ""},
	}
	if !reflect.DeepEqual(rec.AlgorithmCards, want) {
		t.Errorf("AlgorithmCards = %+v, want %+v", rec.AlgorithmCards, want)
	}
	if len(rec.Paragraphs) != 0 {
		t.Errorf("card paragraphs should not be plain paragraphs: %v", rec.Paragraphs)
	}
}

func TestClassify_FeatureBars(t *testing.T) {
	rec := classify(t, `<div class="slide">
		<div class="feature-bar"><span class="feature-name">Age</span><div class="bar-fill" style="width: 73%">0.73</div></div>
		<div class="feature-bar"><span class="feature-name">Income</span><div class="bar-fill">n/a</div></div>
		<div class="feature-bar"><span class="feature-name">Missing fill</span></div>
	</div>`)

	want := []model.FeatureBar{
		{Name: "Age", Value: "0.73", Width: 73},
		{Name: "Income", Value: "n/a", Width: 0},
	}
	if !reflect.DeepEqual(rec.FeatureBars, want) {
		t.Errorf("FeatureBars = %+v, want %+v", rec.FeatureBars, want)
	}
}

func TestParseWidth(t *testing.T) {
	tests := []struct {
		style string
		want  int
	}{
		{"width: 73%", 73},
		{"width:5%", 5},
		{"background: red; width:   100%;", 100},
		{"width: 250%", 100},
		{"width: 99999999999999999999999%", 100},
		{"width: 40px", 0},
		{"width: -5%", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			if got := ParseWidth(tt.style); got != tt.want {
				t.Errorf("ParseWidth(%q) = %d, want %d", tt.style, got, tt.want)
			}
		})
	}
}

func TestClassify_ChartPlaceholders(t *testing.T) {
	rec := classify(t, `<div class="slide">
		<div class="chart-placeholder"> [ROC Curve] </div>
		<div class="chart-placeholder">Confusion-Matrix</div>
	</div>`)

	want := []string{"[ROC Curve]", "Confusion-Matrix"}
	if !reflect.DeepEqual(rec.ChartPlaceholders, want) {
		t.Errorf("ChartPlaceholders = %v, want %v", rec.ChartPlaceholders, want)
	}
}

func TestClassify_ParagraphExclusion(t *testing.T) {
	rec := classify(t, `<div class="slide">
		<p>Intro</p>
		<div class="stat-card"><p>inside stat</p><span class="stat-number">1</span><span class="stat-label">x</span></div>
		<div class="highlight-box"><div><p>deep inside highlight</p></div></div>
		<div class="algorithm-grid"><div class="algorithm-card"><p>inside card</p></div></div>
		<div class="feature-bar"><p>inside feature bar</p></div>
		<div class="algorithm-grid"><p>grid note</p></div>
		<span class="stat-card"><p>span is not a stat card</p></span>
		<p>   </p>
		<p>Outro</p>
	</div>`)

	want := []string{"Intro", "inside feature bar", "grid note", "span is not a stat card", "Outro"}
	if !reflect.DeepEqual(rec.Paragraphs, want) {
		t.Errorf("Paragraphs = %v, want %v", rec.Paragraphs, want)
	}
}

func TestClassify_NestedFragmentsCountedTwice(t *testing.T) {
	rec := classify(t, `<div class="slide">
		<div class="highlight-box">
			Outer
			<div class="highlight-box">Inner</div>
		</div>
	</div>`)

	want := []string{"Outer Inner", "Inner"}
	if !reflect.DeepEqual(rec.HighlightBoxes, want) {
		t.Errorf("HighlightBoxes = %v, want %v", rec.HighlightBoxes, want)
	}
}

func TestClassify_EmptySlideHasNonNilSlices(t *testing.T) {
	rec := classify(t, `<div class="slide"></div>`)
	if rec.Paragraphs == nil || rec.Stats == nil || rec.Tables == nil || rec.FeatureBars == nil {
		t.Error("empty slide should have non-nil sequences")
	}
	if ClassifySlide(nil).Stats == nil {
		t.Error("nil slide should still produce a usable record")
	}
}
