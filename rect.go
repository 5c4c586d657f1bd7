package sdlkit

import "github.com/veandco/go-sdl2/sdl"

// Rect is an axis-aligned rectangle with a position and size, in the
// floating-point coordinates SDL's float-rect draw calls use.
type Rect struct {
	X, Y, W, H float32
}

// NewRect creates a rectangle from position and size.
func NewRect(x, y, w, h float32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// SDL converts the rectangle to the native SDL representation.
func (r Rect) SDL() sdl.FRect {
	return sdl.FRect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// CenteredIn returns a rectangle of the same size centered in an area of
// the given dimensions. Sizes larger than the area yield negative origins.
func (r Rect) CenteredIn(w, h int32) Rect {
	return Rect{
		X: (float32(w) - r.W) / 2,
		Y: (float32(h) - r.H) / 2,
		W: r.W,
		H: r.H,
	}
}
