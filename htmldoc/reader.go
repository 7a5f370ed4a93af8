package htmldoc

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/htmldeck/model"
)

// Reader provides access to the slides of an HTML deck.
type Reader struct {
	doc      *html.Node
	title    string
	metadata map[string]string
	slides   []*html.Node
}

// Open opens an HTML file for reading.
func Open(filename string) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f)
}

// OpenReader parses HTML from an io.Reader.
func OpenReader(r io.Reader) (*Reader, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	return FromNode(doc), nil
}

// FromNode wraps an already parsed document.
func FromNode(doc *html.Node) *Reader {
	reader := &Reader{
		doc:      doc,
		metadata: make(map[string]string),
	}

	reader.extractHead(doc)
	reader.slides = findAll(doc, FragmentSlide.Matches)

	return reader
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	// Nothing to close for HTML (no file handles kept)
	return nil
}

// extractHead extracts title and meta tags from the head element.
func (r *Reader) extractHead(n *html.Node) {
	if n.Type == html.ElementNode && n.Data == "head" {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "title":
				r.title = textContent(c)
			case "meta":
				name, content := "", ""
				for _, attr := range c.Attr {
					switch attr.Key {
					case "name", "property":
						name = strings.ToLower(attr.Val)
					case "content":
						content = attr.Val
					}
				}
				if name != "" && content != "" {
					r.metadata[name] = content
				}
			}
		}
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.extractHead(c)
	}
}

// SlideCount returns the number of slide elements in the document.
func (r *Reader) SlideCount() int {
	return len(r.slides)
}

// Slide classifies the slide at index (0-based).
func (r *Reader) Slide(index int) (model.SlideRecord, error) {
	if index < 0 || index >= len(r.slides) {
		return model.SlideRecord{}, fmt.Errorf("slide index %d out of range [0, %d)", index, len(r.slides))
	}
	return ClassifySlide(r.slides[index]), nil
}

// Slides classifies every slide in document order. A slide with no
// recognized content still yields a record.
func (r *Reader) Slides() []model.SlideRecord {
	records := make([]model.SlideRecord, len(r.slides))
	for i, n := range r.slides {
		records[i] = ClassifySlide(n)
	}
	return records
}

// Title returns the document <title>.
func (r *Reader) Title() string {
	return r.title
}

// Metadata returns document metadata.
func (r *Reader) Metadata() model.Metadata {
	meta := model.Metadata{
		Title:  r.title,
		Custom: make(map[string]string),
	}

	if author, ok := r.metadata["author"]; ok {
		meta.Author = author
	}
	if desc, ok := r.metadata["description"]; ok {
		meta.Subject = desc
	}
	if keywords, ok := r.metadata["keywords"]; ok {
		for _, kw := range strings.Split(keywords, ",") {
			if kw = strings.TrimSpace(kw); kw != "" {
				meta.Keywords = append(meta.Keywords, kw)
			}
		}
	}
	if generator, ok := r.metadata["generator"]; ok {
		meta.Creator = generator
	}

	return meta
}
