package model

import "math"

// Length is a distance in English Metric Units (EMU).
type Length int64

// Unit conversions.
const (
	EMUPerInch  Length = 914400
	EMUPerPoint Length = 12700
)

// Inches converts inches to a Length, rounded to the nearest EMU.
func Inches(in float64) Length {
	return Length(math.Round(in * float64(EMUPerInch)))
}

// Points converts typographic points to a Length.
func Points(pt float64) Length {
	return Length(math.Round(pt * float64(EMUPerPoint)))
}

// Inches returns the length in inches.
func (l Length) Inches() float64 {
	return float64(l) / float64(EMUPerInch)
}

// Scale returns l multiplied by num/den using integer arithmetic.
func (l Length) Scale(num, den int64) Length {
	if den == 0 {
		return 0
	}
	return Length(int64(l) * num / den)
}

// BBox represents a bounding box anchored at its top-left corner.
type BBox struct {
	X      Length // Left
	Y      Length // Top
	Width  Length
	Height Length
}

// NewBBox creates a bounding box from coordinates
func NewBBox(x, y, width, height Length) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge X coordinate
func (b BBox) Left() Length {
	return b.X
}

// Right returns the right edge X coordinate
func (b BBox) Right() Length {
	return b.X + b.Width
}

// Top returns the top edge Y coordinate
func (b BBox) Top() Length {
	return b.Y
}

// Bottom returns the bottom edge Y coordinate
func (b BBox) Bottom() Length {
	return b.Y + b.Height
}

// Within reports whether b lies entirely inside other.
func (b BBox) Within(other BBox) bool {
	return b.Left() >= other.Left() && b.Right() <= other.Right() &&
		b.Top() >= other.Top() && b.Bottom() <= other.Bottom()
}
