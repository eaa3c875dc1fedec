package canvas

import (
	"fmt"

	"github.com/Faultbox/paintbox/pkg/math"
)

// Region is the part of an object's bounds the pointer is over.
type Region uint8

// Regions in resolution order. Corners win over edges, edges over the body.
const (
	RegionNone Region = iota
	RegionNW
	RegionNE
	RegionSW
	RegionSE
	RegionN
	RegionS
	RegionW
	RegionE
	RegionBody

	regionCount
)

var regionNames = [regionCount]string{
	RegionNone: "none",
	RegionNW:   "nw",
	RegionNE:   "ne",
	RegionSW:   "sw",
	RegionSE:   "se",
	RegionN:    "n",
	RegionS:    "s",
	RegionW:    "w",
	RegionE:    "e",
	RegionBody: "body",
}

// String returns the region name.
func (r Region) String() string {
	if r >= regionCount {
		return fmt.Sprintf("region(%d)", r)
	}
	return regionNames[r]
}

// hitboxes are the four resize strips around b. Each spans its full edge
// and extends margin/2 to either side of it.
type hitboxes struct {
	top, bottom, left, right math.Rect
}

func resizeHitboxes(b math.Rect, margin float32) hitboxes {
	half := margin / 2
	return hitboxes{
		top:    math.Rect{X: b.X, Y: b.Y - half, W: b.W, H: margin},
		bottom: math.Rect{X: b.X, Y: b.Y + b.H - half, W: b.W, H: margin},
		left:   math.Rect{X: b.X - half, Y: b.Y, W: margin, H: b.H},
		right:  math.Rect{X: b.X + b.W - half, Y: b.Y, W: margin, H: b.H},
	}
}

// ResolveRegion classifies p against bounds b with a hitbox margin given in
// world units. Exactly one region is returned.
func ResolveRegion(b math.Rect, p math.Vec2, margin float32) Region {
	h := resizeHitboxes(b, margin)
	top, bottom := h.top.Contains(p), h.bottom.Contains(p)
	left, right := h.left.Contains(p), h.right.Contains(p)

	switch {
	case top && left:
		return RegionNW
	case top && right:
		return RegionNE
	case bottom && left:
		return RegionSW
	case bottom && right:
		return RegionSE
	case top:
		return RegionN
	case bottom:
		return RegionS
	case left:
		return RegionW
	case right:
		return RegionE
	case b.Contains(p):
		return RegionBody
	default:
		return RegionNone
	}
}

// Deform applies a world-space drag delta d to b. Corners move two edges,
// edges move one, Body translates. Width and height may go negative while
// dragging past the opposite edge.
func (r Region) Deform(b math.Rect, d math.Vec2) math.Rect {
	moveTop := func() { b.Y += d.Y; b.H -= d.Y }
	moveBottom := func() { b.H += d.Y }
	moveLeft := func() { b.X += d.X; b.W -= d.X }
	moveRight := func() { b.W += d.X }

	switch r {
	case RegionNone:
	case RegionNW:
		moveTop()
		moveLeft()
	case RegionNE:
		moveTop()
		moveRight()
	case RegionSW:
		moveBottom()
		moveLeft()
	case RegionSE:
		moveBottom()
		moveRight()
	case RegionN:
		moveTop()
	case RegionS:
		moveBottom()
	case RegionW:
		moveLeft()
	case RegionE:
		moveRight()
	case RegionBody:
		b.X += d.X
		b.Y += d.Y
	default:
		panic(fmt.Sprintf("canvas: invalid region %d", r))
	}
	return b
}

// Cursor returns the pointer shape that advertises the region's drag action.
func (r Region) Cursor() Cursor {
	switch r {
	case RegionNone:
		return CursorDefault
	case RegionNW, RegionSE:
		return CursorResizeNWSE
	case RegionNE, RegionSW:
		return CursorResizeNESW
	case RegionN, RegionS:
		return CursorResizeNS
	case RegionW, RegionE:
		return CursorResizeEW
	case RegionBody:
		return CursorResizeAll
	default:
		panic(fmt.Sprintf("canvas: invalid region %d", r))
	}
}
