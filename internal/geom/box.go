package geom

import "cogentcore.org/core/math32"

// Box is an axis-aligned bounding box. The zero Box is not empty; use EmptyBox
// as the starting point when accumulating points.
type Box = math32.Box3

// EmptyBox returns a box that contains nothing; expanding it by a point or a box yields that operand.
func EmptyBox() Box {
	return math32.B3Empty()
}
