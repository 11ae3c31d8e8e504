package model

// Position represents a placed rectangle on a slide, in inches from the
// top-left corner. Positions are assigned by the layout stage; elements
// fresh from a reader carry none.
type Position struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Right returns the right edge X coordinate
func (p Position) Right() float64 {
	return p.X + p.Width
}

// Bottom returns the bottom edge Y coordinate
func (p Position) Bottom() float64 {
	return p.Y + p.Height
}

// Overlaps checks if two placed rectangles intersect
func (p Position) Overlaps(other Position) bool {
	return p.X < other.Right() && other.X < p.Right() &&
		p.Y < other.Bottom() && other.Y < p.Bottom()
}

// Size represents an element's natural dimensions in inches, before layout.
// Scale is a multiplier applied on top; zero means unscaled.
type Size struct {
	Width  float64
	Height float64
	Scale  float64
}
