package layout

import "github.com/tsawler/htmldeck/model"

// Canvas is the size of every slide in a deck.
type Canvas struct {
	Width  model.Length
	Height model.Length
}

// DefaultCanvas is the 16:9 widescreen slide, 13.333in x 7.5in.
var DefaultCanvas = Canvas{Width: 12192000, Height: 6858000}

// Cursor is the vertical offset at which the next block is placed. It is a
// value: routines return the advanced cursor instead of mutating shared state.
type Cursor struct {
	Y model.Length
}

// At returns a cursor at y.
func At(y model.Length) Cursor {
	return Cursor{Y: y}
}

// Advance returns the cursor moved down by d.
func (c Cursor) Advance(d model.Length) Cursor {
	return Cursor{Y: c.Y + d}
}
