// Package core provides fundamental types and utilities shared by the engine
// and the platform. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

// Box is an axis-aligned bounding box in world units, stored as a center and
// half extents. World coordinates grow right (+x) and up (+y).
type Box struct {
	CX, CY float64 // Center
	HW, HH float64 // Half width, half height
}

// NewBox creates a box of the given full size centered at (cx, cy).
func NewBox(cx, cy, w, h float64) Box {
	return Box{CX: cx, CY: cy, HW: w / 2, HH: h / 2}
}

// SquareBox creates a size×size box centered at (cx, cy).
func SquareBox(cx, cy, size float64) Box {
	return NewBox(cx, cy, size, size)
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 { return b.CX - b.HW }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.CX + b.HW }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.CY - b.HH }

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 { return b.CY + b.HH }

// Overlaps reports whether two boxes intersect.
// Boxes that only share an edge do not overlap.
func (b Box) Overlaps(other Box) bool {
	if b.Right() <= other.Left() || other.Right() <= b.Left() {
		return false
	}
	if b.Top() <= other.Bottom() || other.Top() <= b.Bottom() {
		return false
	}
	return true
}

// Bounded is anything that occupies a box in the world.
type Bounded interface {
	Bounds() Box
}

// FirstOverlap returns the index of the first item, in slice order, whose
// bounds overlap box, or -1 if none does. Slice order decides which entity
// absorbs a hit when several overlap.
func FirstOverlap[T Bounded](box Box, items []T) int {
	for i, item := range items {
		if box.Overlaps(item.Bounds()) {
			return i
		}
	}
	return -1
}

// AnyOverlap reports whether box overlaps any of the given boxes.
func AnyOverlap(box Box, boxes []Box) bool {
	for _, other := range boxes {
		if box.Overlaps(other) {
			return true
		}
	}
	return false
}

// Bounds lets a bare Box be used with FirstOverlap.
func (b Box) Bounds() Box { return b }

// Rect represents an integer rectangle on a Screen, used by renderers.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
