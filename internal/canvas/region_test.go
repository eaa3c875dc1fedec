package canvas

import (
	"testing"

	"github.com/Faultbox/paintbox/pkg/math"
)

func TestResolveRegion(t *testing.T) {
	b := math.Rect{X: 0, Y: 0, W: 100, H: 100}
	const margin = 10

	tests := []struct {
		name string
		p    math.Vec2
		want Region
	}{
		// Left edge midpoint is an edge, not a corner.
		{"left edge", math.Vec2{X: 0, Y: 50}, RegionW},
		{"nw corner", math.Vec2{X: 0, Y: 0}, RegionNW},
		{"ne corner", math.Vec2{X: 100, Y: 0}, RegionNE},
		{"sw corner", math.Vec2{X: 0, Y: 100}, RegionSW},
		{"se corner", math.Vec2{X: 100, Y: 100}, RegionSE},
		{"top", math.Vec2{X: 50, Y: -4}, RegionN},
		{"bottom", math.Vec2{X: 50, Y: 104}, RegionS},
		{"right", math.Vec2{X: 105, Y: 50}, RegionE},
		{"body", math.Vec2{X: 50, Y: 50}, RegionBody},
		{"just inside strip", math.Vec2{X: 4, Y: 50}, RegionW},
		{"just past strip", math.Vec2{X: 6, Y: 50}, RegionBody},
		{"outside", math.Vec2{X: 200, Y: 200}, RegionNone},
		// Strips span the edge only, not the diagonal beyond the corner.
		{"beyond corner", math.Vec2{X: -5, Y: -5}, RegionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveRegion(b, tt.p, margin); got != tt.want {
				t.Errorf("ResolveRegion(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

// Sweeping a grid around the rectangle hits every region, and each point
// matches the predicate of exactly the region returned.
func TestResolveRegionExhaustive(t *testing.T) {
	b := math.Rect{X: 10, Y: 20, W: 60, H: 40}
	const margin = 8
	h := resizeHitboxes(b, margin)

	seen := map[Region]bool{}
	for x := float32(-10); x <= 90; x += 0.5 {
		for y := float32(0); y <= 80; y += 0.5 {
			p := math.Vec2{X: x, Y: y}
			got := ResolveRegion(b, p, margin)
			seen[got] = true

			top, bottom := h.top.Contains(p), h.bottom.Contains(p)
			left, right := h.left.Contains(p), h.right.Contains(p)
			matches := map[Region]bool{
				RegionNW:   top && left,
				RegionNE:   top && right && !left,
				RegionSW:   bottom && left && !top,
				RegionSE:   bottom && right && !top && !left,
				RegionN:    top && !left && !right,
				RegionS:    bottom && !top && !left && !right,
				RegionW:    left && !top && !bottom,
				RegionE:    right && !top && !bottom && !left,
				RegionBody: !top && !bottom && !left && !right && b.Contains(p),
			}
			matches[RegionNone] = true
			for r, ok := range matches {
				if r != RegionNone && ok {
					matches[RegionNone] = false
				}
			}

			n := 0
			for _, ok := range matches {
				if ok {
					n++
				}
			}
			if n != 1 || !matches[got] {
				t.Fatalf("point %v: got %v, predicates %v", p, got, matches)
			}
		}
	}
	for r := Region(0); r < regionCount; r++ {
		if !seen[r] {
			t.Errorf("region %v never produced", r)
		}
	}
}

func TestRegionDeform(t *testing.T) {
	b := math.Rect{X: 10, Y: 10, W: 100, H: 50}
	d := math.Vec2{X: 5, Y: -3}

	tests := []struct {
		r    Region
		want math.Rect
	}{
		{RegionNone, b},
		{RegionNW, math.Rect{X: 15, Y: 7, W: 95, H: 53}},
		{RegionNE, math.Rect{X: 10, Y: 7, W: 105, H: 53}},
		{RegionSW, math.Rect{X: 15, Y: 10, W: 95, H: 47}},
		{RegionSE, math.Rect{X: 10, Y: 10, W: 105, H: 47}},
		{RegionN, math.Rect{X: 10, Y: 7, W: 100, H: 53}},
		{RegionS, math.Rect{X: 10, Y: 10, W: 100, H: 47}},
		{RegionW, math.Rect{X: 15, Y: 10, W: 95, H: 50}},
		{RegionE, math.Rect{X: 10, Y: 10, W: 105, H: 50}},
		{RegionBody, math.Rect{X: 15, Y: 7, W: 100, H: 50}},
	}
	for _, tt := range tests {
		if got := tt.r.Deform(b, d); got != tt.want {
			t.Errorf("%v.Deform() = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestRegionCursor(t *testing.T) {
	want := map[Region]Cursor{
		RegionNone: CursorDefault,
		RegionNW:   CursorResizeNWSE,
		RegionSE:   CursorResizeNWSE,
		RegionNE:   CursorResizeNESW,
		RegionSW:   CursorResizeNESW,
		RegionN:    CursorResizeNS,
		RegionS:    CursorResizeNS,
		RegionW:    CursorResizeEW,
		RegionE:    CursorResizeEW,
		RegionBody: CursorResizeAll,
	}
	for r := Region(0); r < regionCount; r++ {
		if got := r.Cursor(); got != want[r] {
			t.Errorf("%v.Cursor() = %v, want %v", r, got, want[r])
		}
	}
}

func TestInvalidRegionPanics(t *testing.T) {
	for name, f := range map[string]func(){
		"Deform": func() { regionCount.Deform(math.Rect{}, math.Vec2{}) },
		"Cursor": func() { regionCount.Cursor() },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			f()
		})
	}
}
