// Package mddoc turns a Markdown deck into an HTML slide document that the
// htmldoc package can classify.
//
// Slides are separated by thematic breaks (---). Inside a slide, top-level
// lists become bullet lists, tables become performance tables, block quotes
// become highlight boxes and a paragraph holding only a bracketed label,
// such as "[Accuracy Chart]", becomes a chart placeholder. Raw HTML passes
// through, so stat cards and feature bars can be written inline.
package mddoc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/htmldeck/internal/yamlutil"
)

var (
	// ErrConversion indicates the Markdown could not be rendered.
	ErrConversion = errors.New("markdown conversion failed")
	// ErrFrontMatter indicates a malformed YAML front matter block.
	ErrFrontMatter = errors.New("invalid front matter")
)

// Class tokens assigned to converted blocks.
const (
	classSlide       = "slide"
	classBullets     = "bullet-points"
	classTable       = "performance-table"
	classHighlight   = "highlight-box"
	classPlaceholder = "chart-placeholder"
)

var placeholderPattern = regexp.MustCompile(`^\[[^\[\]]+\]$`)

// FrontMatter is the optional YAML block at the top of a deck.
type FrontMatter struct {
	Title       string   `yaml:"title"`
	Author      string   `yaml:"author"`
	Description string   `yaml:"description"`
	Keywords    []string `yaml:"keywords"`
	Generator   string   `yaml:"generator"`
}

// Converter renders Markdown decks with goldmark.
type Converter struct {
	md goldmark.Markdown
}

// NewConverter creates a Converter with GFM extensions.
func NewConverter() *Converter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
		),
		goldmark.WithRendererOptions(
			gmhtml.WithUnsafe(), // Raw HTML blocks carry stat cards and feature bars
		),
	)
	return &Converter{md: md}
}

// Convert renders src into an HTML document tree with one
// <div class="slide"> per section.
func (c *Converter) Convert(ctx context.Context, src []byte) (*html.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fm, body, err := SplitFrontMatter(src)
	if err != nil {
		return nil, err
	}

	type result struct {
		html []byte
		err  error
	}
	done := make(chan result, 1)

	// goldmark has no context support.
	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert(body, &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrConversion, err)}
			return
		}
		done <- result{html: buf.Bytes()}
	}()

	var rendered []byte
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		if r.err != nil {
			return nil, r.err
		}
		rendered = r.html
	}

	bodyContext := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(bytes.NewReader(rendered), bodyContext)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConversion, err)
	}

	doc, bodyNode := newDocument(fm)
	for _, section := range splitSlides(nodes) {
		slide := element(atom.Div)
		setClass(slide, classSlide)
		for _, n := range section {
			decorate(n, false)
			slide.AppendChild(n)
		}
		bodyNode.AppendChild(slide)
	}
	return doc, nil
}

// ToHTML converts src and renders the resulting document.
func (c *Converter) ToHTML(ctx context.Context, src []byte) (string, error) {
	doc, err := c.Convert(ctx, src)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Render writes doc as HTML.
func Render(w io.Writer, doc *html.Node) error {
	return html.Render(w, doc)
}

var frontMatterKey = regexp.MustCompile(`^[A-Za-z_][\w-]*:`)

// SplitFrontMatter separates a leading YAML block from the Markdown body.
// The block must open with a "---" line directly followed by a "key:" line;
// any other leading "---" is an ordinary slide break.
func SplitFrontMatter(src []byte) (FrontMatter, []byte, error) {
	var fm FrontMatter

	text := strings.TrimPrefix(string(src), "\ufeff")
	lines := strings.SplitAfter(text, "\n")
	if len(lines) < 3 || strings.TrimRight(lines[0], "\r\n") != "---" ||
		!frontMatterKey.MatchString(lines[1]) {
		return fm, src, nil
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], "\r\n") != "---" {
			continue
		}
		block := strings.Join(lines[1:i], "")
		if err := yamlutil.UnmarshalStrict([]byte(block), &fm); err != nil {
			return FrontMatter{}, nil, fmt.Errorf("%w: %v", ErrFrontMatter, err)
		}
		return fm, []byte(strings.Join(lines[i+1:], "")), nil
	}
	return fm, nil, fmt.Errorf("%w: missing closing ---", ErrFrontMatter)
}

// splitSlides groups top-level nodes at <hr> boundaries, dropping sections
// that hold no element.
func splitSlides(nodes []*html.Node) [][]*html.Node {
	var (
		slides  [][]*html.Node
		current []*html.Node
	)
	flush := func() {
		for _, n := range current {
			if n.Type == html.ElementNode {
				slides = append(slides, current)
				break
			}
		}
		current = nil
	}

	for _, n := range nodes {
		if n.Type == html.ElementNode && n.DataAtom == atom.Hr {
			flush()
			continue
		}
		current = append(current, n)
	}
	flush()
	return slides
}

// decorate assigns slide classes to the blocks under n. Lists nested in
// another list keep their markup so their items are not counted twice.
func decorate(n *html.Node, inList bool) {
	if n.Type != html.ElementNode {
		return
	}

	switch n.DataAtom {
	case atom.Ul:
		if !inList {
			addClass(n, classBullets)
		}
		inList = true
	case atom.Ol:
		inList = true
	case atom.Table:
		addClass(n, classTable)
	case atom.Blockquote:
		n.Data, n.DataAtom = "div", atom.Div
		addClass(n, classHighlight)
	case atom.P:
		if placeholderPattern.MatchString(strings.TrimSpace(nodeText(n))) {
			n.Data, n.DataAtom = "div", atom.Div
			addClass(n, classPlaceholder)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		decorate(c, inList)
	}
}

// newDocument builds the html/head/body skeleton carrying the front matter.
func newDocument(fm FrontMatter) (doc, body *html.Node) {
	doc = &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html)
	head := element(atom.Head)
	body = element(atom.Body)
	doc.AppendChild(root)
	root.AppendChild(head)
	root.AppendChild(body)

	charset := element(atom.Meta)
	charset.Attr = []html.Attribute{{Key: "charset", Val: "utf-8"}}
	head.AppendChild(charset)

	if fm.Title != "" {
		title := element(atom.Title)
		title.AppendChild(&html.Node{Type: html.TextNode, Data: fm.Title})
		head.AppendChild(title)
	}
	for _, m := range []struct{ name, content string }{
		{"author", fm.Author},
		{"description", fm.Description},
		{"keywords", strings.Join(fm.Keywords, ", ")},
		{"generator", fm.Generator},
	} {
		if m.content == "" {
			continue
		}
		meta := element(atom.Meta)
		meta.Attr = []html.Attribute{{Key: "name", Val: m.name}, {Key: "content", Val: m.content}}
		head.AppendChild(meta)
	}
	return doc, body
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a}
}

func setClass(n *html.Node, class string) {
	n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: class})
}

// addClass appends a class token, keeping any the author wrote.
func addClass(n *html.Node, class string) {
	for i, a := range n.Attr {
		if a.Key == "class" {
			n.Attr[i].Val = strings.TrimSpace(a.Val + " " + class)
			return
		}
	}
	setClass(n, class)
}

func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(nodeText(c))
	}
	return sb.String()
}
