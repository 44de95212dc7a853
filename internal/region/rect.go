package region

import (
	"fmt"
	"image"
)

// Rect is a field region in page pixel coordinates. Corners may be given in any order.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// RectFrom builds a Rect from the 4-integer form used by template files.
func RectFrom(c [4]int) Rect {
	return Rect{X1: c[0], Y1: c[1], X2: c[2], Y2: c[3]}
}

// Normalize reorders the corners so that X1 <= X2 and Y1 <= Y2.
func (r Rect) Normalize() Rect {
	return Rect{
		X1: min(r.X1, r.X2),
		Y1: min(r.Y1, r.Y2),
		X2: max(r.X1, r.X2),
		Y2: max(r.Y1, r.Y2),
	}
}

// Empty reports a zero-width or zero-height region.
func (r Rect) Empty() bool {
	n := r.Normalize()
	return n.X1 == n.X2 || n.Y1 == n.Y2
}

// Bounds converts the normalized rect to an image.Rectangle.
func (r Rect) Bounds() image.Rectangle {
	n := r.Normalize()
	return image.Rect(n.X1, n.Y1, n.X2, n.Y2)
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.X1, r.Y1, r.X2, r.Y2)
}
