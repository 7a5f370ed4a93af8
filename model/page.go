package model

// Page is one slide canvas. Elements are drawn back to front.
type Page struct {
	Number   int // 1-indexed
	Width    Length
	Height   Length
	Elements []Element
}

// NewPage returns an empty page of the given size.
func NewPage(width, height Length) *Page {
	return &Page{Width: width, Height: height}
}

// AddElement appends elem on top of the existing elements.
func (p *Page) AddElement(elem Element) {
	p.Elements = append(p.Elements, elem)
}

// Bounds returns the canvas rectangle.
func (p *Page) Bounds() BBox {
	return BBox{Width: p.Width, Height: p.Height}
}

// CountType returns the number of elements of the given type.
func (p *Page) CountType(t ElementType) int {
	n := 0
	for _, elem := range p.Elements {
		if elem.Type() == t {
			n++
		}
	}
	return n
}

// Overflow returns the elements that do not fit inside the canvas.
func (p *Page) Overflow() []Element {
	var out []Element
	bounds := p.Bounds()
	for _, elem := range p.Elements {
		if !elem.BoundingBox().Within(bounds) {
			out = append(out, elem)
		}
	}
	return out
}

// Elements returns the elements of p with concrete type T, in drawing
// order.
func Elements[T Element](p *Page) []T {
	var out []T
	for _, elem := range p.Elements {
		if e, ok := elem.(T); ok {
			out = append(out, e)
		}
	}
	return out
}
