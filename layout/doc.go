// Package layout places classified slide content onto fixed-size canvases.
//
// Layout is a single forward pass per slide. A Cursor holding the current
// vertical offset is threaded through the placement routines, each of which
// draws its blocks below the cursor and returns the advanced cursor. The
// routines always run in the same order (charts, statistics, algorithm
// cards, feature bars, bullets, tables, highlight boxes); a routine with
// nothing to place returns the cursor unchanged, so the position of a block
// depends only on the blocks that precede it in that order.
//
// Each placement routine caps the number of blocks it draws (see Limits) and
// reports dropped blocks as warnings rather than errors.
//
// Slides render independently of each other: a Renderer holds no per-slide
// state and may be shared by concurrent goroutines.
package layout
