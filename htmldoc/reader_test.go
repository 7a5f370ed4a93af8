package htmldoc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenReader_Head(t *testing.T) {
	html := `<!DOCTYPE html>
<html>
<head>
	<title>Quarterly   Review</title>
	<meta name="author" content="Test Author">
	<meta name="description" content="Model comparison">
	<meta name="Keywords" content="ml, metrics , , slides">
	<meta name="generator" content="deckgen">
</head>
<body>
	<div class="slide"><h1>One</h1></div>
</body>
</html>`

	r, err := OpenReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("OpenReader() failed: %v", err)
	}
	defer r.Close()

	if r.Title() != "Quarterly Review" {
		t.Errorf("Title() = %q, want 'Quarterly Review'", r.Title())
	}

	meta := r.Metadata()
	if meta.Author != "Test Author" {
		t.Errorf("Author = %q", meta.Author)
	}
	if meta.Subject != "Model comparison" {
		t.Errorf("Subject = %q", meta.Subject)
	}
	if len(meta.Keywords) != 3 || meta.Keywords[1] != "metrics" {
		t.Errorf("Keywords = %v, want [ml metrics slides]", meta.Keywords)
	}
	if meta.Creator != "deckgen" {
		t.Errorf("Creator = %q", meta.Creator)
	}
}

func TestOpenReader_InvalidHTML(t *testing.T) {
	// Even malformed HTML should parse (HTML parser is lenient)
	html := `<html><body><div class="slide"><p>unclosed paragraph`

	r, err := OpenReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("OpenReader() should handle malformed HTML: %v", err)
	}
	defer r.Close()

	if r.SlideCount() != 1 {
		t.Fatalf("SlideCount() = %d, want 1", r.SlideCount())
	}
	if got := r.Slides()[0].Paragraphs; len(got) != 1 || got[0] != "unclosed paragraph" {
		t.Errorf("Paragraphs = %v", got)
	}
}

func TestOpen_NotFound(t *testing.T) {
	_, err := Open("/nonexistent/file.html")
	if err == nil {
		t.Error("Open() expected error for nonexistent file")
	}
}

func TestOpen_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.html")
	if err := os.WriteFile(path, []byte(`<div class="slide"><h2>Hi</h2></div>`), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer r.Close()

	if r.SlideCount() != 1 {
		t.Errorf("SlideCount() = %d, want 1", r.SlideCount())
	}
}

func TestReader_SlidesInOrder(t *testing.T) {
	html := `<body>
	<div class="slide"><h1>First</h1></div>
	<section>
		<div class="slide"><h2>Second</h2></div>
	</section>
	<div class="slide"></div>
	<span class="slide">not a slide</span>
	<div class="slide extra"><h1>Fourth</h1></div>
</body>`

	r, err := OpenReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("OpenReader() failed: %v", err)
	}

	slides := r.Slides()
	want := []string{"First", "Second", "", "Fourth"}
	if len(slides) != len(want) {
		t.Fatalf("got %d slides, want %d", len(slides), len(want))
	}
	for i, title := range want {
		if slides[i].Title != title {
			t.Errorf("slide %d title = %q, want %q", i, slides[i].Title, title)
		}
	}
	if !slides[2].IsEmpty() {
		t.Error("slide without content should still be present and empty")
	}
}

func TestReader_SlideIndex(t *testing.T) {
	r, err := OpenReader(strings.NewReader(`<div class="slide"><h1>A</h1></div>`))
	if err != nil {
		t.Fatalf("OpenReader() failed: %v", err)
	}

	rec, err := r.Slide(0)
	if err != nil || rec.Title != "A" {
		t.Errorf("Slide(0) = %q, %v", rec.Title, err)
	}
	if _, err := r.Slide(1); err == nil {
		t.Error("Slide(1) expected out-of-range error")
	}
	if _, err := r.Slide(-1); err == nil {
		t.Error("Slide(-1) expected out-of-range error")
	}
}

func TestReader_NoSlides(t *testing.T) {
	r, err := OpenReader(strings.NewReader(`<html><body><p>plain page</p></body></html>`))
	if err != nil {
		t.Fatalf("OpenReader() failed: %v", err)
	}
	if r.SlideCount() != 0 || len(r.Slides()) != 0 {
		t.Errorf("expected no slides, got %d", r.SlideCount())
	}
}

func TestTextContent(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{"collapses whitespace", "<p>  a \n\t b  </p>", "a b"},
		{"skips script", "<p>keep<script>drop()</script> this</p>", "keep this"},
		{"br separates", "<p>one<br>two</p>", "one two"},
		{"nested inline", "<p><b>bold</b> and <i>italic</i></p>", "bold and italic"},
		{"nfc", "<p>Cafe\u0301</p>", "Caf\u00e9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := OpenReader(strings.NewReader(tt.html))
			if err != nil {
				t.Fatalf("OpenReader() failed: %v", err)
			}
			p := findFirst(r.doc, isTag("p"))
			if p == nil {
				t.Fatal("no <p> found")
			}
			if got := textContent(p); got != tt.want {
				t.Errorf("textContent() = %q, want %q", got, tt.want)
			}
		})
	}
}
