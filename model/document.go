package model

import "time"

// Document is a laid-out deck: metadata plus one page per slide.
type Document struct {
	Metadata Metadata
	Pages    []*Page
}

// Metadata holds the document properties written to docProps.
type Metadata struct {
	Title        string
	Author       string
	Subject      string
	Keywords     []string
	Creator      string
	CreationDate time.Time
	Custom       map[string]string
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{
		Metadata: Metadata{Custom: make(map[string]string)},
	}
}

// AddPage appends page and numbers it from 1.
func (d *Document) AddPage(page *Page) {
	page.Number = len(d.Pages) + 1
	d.Pages = append(d.Pages, page)
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int {
	return len(d.Pages)
}
