package pptx

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/tsawler/htmldeck/model"
)

// buildPackage zips parts in name order.
func buildPackage(t *testing.T, parts map[string]string) []byte {
	t.Helper()
	names := make([]string, 0, len(parts))
	for name := range parts {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("zip Create(%s): %v", name, err)
		}
		w.Write([]byte(parts[name]))
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip Close: %v", err)
	}
	return buf.Bytes()
}

func openErr(t *testing.T, data []byte) error {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.pptx")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	r, err := Open(path)
	if err == nil {
		r.Close()
	}
	return err
}

const (
	testPresentation = `<p:presentation xmlns:p="` + nsPresentationML + `" xmlns:r="` + nsRelationships + `">` +
		`<p:sldIdLst><p:sldId id="256" r:id="rId3"/><p:sldId id="257" r:id="rId2"/></p:sldIdLst>` +
		`<p:sldSz cx="9144000" cy="6858000"/></p:presentation>`
	testPresentationRels = `<Relationships xmlns="` + nsPackageRels + `">` +
		`<Relationship Id="rId2" Target="slides/slide1.xml"/>` +
		`<Relationship Id="rId3" Target="slides/slide2.xml"/></Relationships>`
)

func testSlide(title string) string {
	return `<p:sld xmlns:a="` + nsDrawingML + `" xmlns:p="` + nsPresentationML + `"><p:cSld><p:spTree>` +
		`<p:sp><p:nvSpPr><p:cNvPr id="2" name="Title 1"/><p:cNvSpPr/><p:nvPr><p:ph type="title"/></p:nvPr></p:nvSpPr>` +
		`<p:spPr/><p:txBody><a:bodyPr/><a:p><a:r><a:t>` + title + `</a:t></a:r></a:p></p:txBody></p:sp>` +
		`<p:sp><p:nvSpPr><p:cNvPr id="3" name="Empty"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr>` +
		`<p:spPr/><p:txBody><a:bodyPr/><a:p/></p:txBody></p:sp>` +
		`</p:spTree></p:cSld></p:sld>`
}

func TestOpen_SlideListOrder(t *testing.T) {
	data := buildPackage(t, map[string]string{
		"[Content_Types].xml":             `<Types/>`,
		"ppt/presentation.xml":            testPresentation,
		"ppt/_rels/presentation.xml.rels": testPresentationRels,
		"ppt/slides/slide1.xml":           testSlide("Listed second"),
		"ppt/slides/slide2.xml":           testSlide("Listed first"),
	})
	r := openDeck(t, data)

	if r.SlideCount() != 2 {
		t.Fatalf("SlideCount() = %d, want 2", r.SlideCount())
	}
	for i, want := range []string{"Listed first", "Listed second"} {
		s, err := r.Slide(i)
		if err != nil {
			t.Fatal(err)
		}
		if s.Title != want || s.Index != i {
			t.Errorf("slide %d = %q (index %d), want %q", i, s.Title, s.Index, want)
		}
		// Shapes without text are skipped.
		if len(s.Content) != 1 {
			t.Errorf("slide %d content = %+v", i, s.Content)
		}
	}

	// No document properties: empty metadata.
	if meta := r.Metadata(); meta.Title != "" || meta.Keywords != nil || !meta.CreationDate.IsZero() {
		t.Errorf("Metadata() = %+v", meta)
	}
	if w, h := r.SlideSize(); w != 9144000 || h != 6858000 {
		t.Errorf("SlideSize() = %d x %d", w, h)
	}
}

func TestOpen_Errors(t *testing.T) {
	base := map[string]string{
		"[Content_Types].xml":             `<Types/>`,
		"ppt/presentation.xml":            testPresentation,
		"ppt/_rels/presentation.xml.rels": testPresentationRels,
		"ppt/slides/slide1.xml":           testSlide("a"),
		"ppt/slides/slide2.xml":           testSlide("b"),
	}
	without := func(name string) map[string]string {
		parts := make(map[string]string, len(base))
		for k, v := range base {
			if k != name {
				parts[k] = v
			}
		}
		return parts
	}
	with := func(name, content string) map[string]string {
		parts := without(name)
		parts[name] = content
		return parts
	}

	tests := []struct {
		name    string
		data    func(t *testing.T) []byte
		wantErr error
	}{
		{"not a zip", func(*testing.T) []byte { return []byte("plain text") }, nil},
		{"no content types", func(t *testing.T) []byte { return buildPackage(t, without("[Content_Types].xml")) }, ErrMissingPart},
		{"no presentation", func(t *testing.T) []byte { return buildPackage(t, without("ppt/presentation.xml")) }, ErrMissingPart},
		{"dangling slide id", func(t *testing.T) []byte { return buildPackage(t, without("ppt/_rels/presentation.xml.rels")) }, ErrMissingPart},
		{"missing slide part", func(t *testing.T) []byte { return buildPackage(t, without("ppt/slides/slide2.xml")) }, ErrMissingPart},
		{"malformed slide", func(t *testing.T) []byte { return buildPackage(t, with("ppt/slides/slide1.xml", "<p:sld>")) }, nil},
		{"empty slide list", func(t *testing.T) []byte {
			return buildPackage(t, with("ppt/presentation.xml", `<p:presentation xmlns:p="`+nsPresentationML+`"/>`))
		}, ErrNoSlides},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := openErr(t, tt.data(t))
			if err == nil {
				t.Fatal("Open() expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Open() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestReader_Markdown(t *testing.T) {
	r := openDeck(t, writeDeck(t, samplePages(t), model.Metadata{}))

	md, err := r.Markdown()
	if err != nil {
		t.Fatalf("Markdown() failed: %v", err)
	}
	sections := strings.Split(md, "\n\n---\n\n")
	if len(sections) != 2 {
		t.Fatalf("sections = %d, want 2:\n%s", len(sections), md)
	}
	if sections[0] != "# Demo\n\nline one\n\nline two" {
		t.Errorf("cover section = %q", sections[0])
	}
	for _, want := range []string{
		"# Results",
		"94%",
		"| Model | Score |\n|---|---|\n| A | 0.9 |",
		"![[Chart: accuracy]](ppt/media/image1.png)",
	} {
		if !strings.Contains(sections[1], want) {
			t.Errorf("content section missing %q:\n%s", want, sections[1])
		}
	}
}

func TestReader_SlideRange(t *testing.T) {
	r := openDeck(t, writeDeck(t, samplePages(t), model.Metadata{}))
	for _, i := range []int{-1, 2} {
		if _, err := r.Slide(i); err == nil {
			t.Errorf("Slide(%d) expected error", i)
		}
	}
}

func TestReader_Close(t *testing.T) {
	r := openDeck(t, writeDeck(t, samplePages(t), model.Metadata{}))
	if _, err := r.Media("ppt/media/missing.png"); !errors.Is(err, ErrMissingPart) {
		t.Errorf("Media(missing) error = %v, want ErrMissingPart", err)
	}

	if err := r.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
	if _, err := r.Media("ppt/media/image1.png"); err == nil {
		t.Error("Media() after Close expected error")
	}
}

func TestTable_Markdown(t *testing.T) {
	table := Table{Rows: [][]TableCell{
		{{Text: "Name"}, {Text: "Notes"}},
		{{Text: "a|b"}, {Text: "two\nlines"}},
	}}
	want := "| Name | Notes |\n|---|---|\n| a\\|b | two lines |\n"
	if got := table.Markdown(); got != want {
		t.Errorf("Markdown() = %q, want %q", got, want)
	}
	if (&Table{}).Markdown() != "" {
		t.Error("empty table should render nothing")
	}
}
