package camera

import (
	"testing"

	"github.com/Faultbox/paintbox/pkg/math"
)

func approx(a, b float32) bool {
	d := a - b
	return d < 1e-3 && d > -1e-3
}

func approxVec(a, b math.Vec2) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y)
}

func TestScreenWorldRoundTrip(t *testing.T) {
	c := New(math.Vec2{X: 100, Y: 50}, 0.01, 20)
	c.SetViewport(800, 600)
	c.Zoom = 2.5

	points := []math.Vec2{{}, {X: 400, Y: 300}, {X: 13, Y: 587}}
	for _, p := range points {
		got := c.WorldToScreen(c.ScreenToWorld(p))
		if !approxVec(got, p) {
			t.Errorf("round trip of %v = %v", p, got)
		}
	}

	// Offset maps to Target.
	if got := c.ScreenToWorld(c.Offset); !approxVec(got, c.Target) {
		t.Errorf("ScreenToWorld(offset) = %v, want %v", got, c.Target)
	}
}

func TestViewMatrixMatchesWorldToScreen(t *testing.T) {
	c := New(math.Vec2{X: -20, Y: 35}, 0.01, 20)
	c.SetViewport(1024, 768)
	c.Zoom = 0.75

	p := math.Vec2{X: 123, Y: -45}
	got := c.ViewMatrix().TransformVec2(p)
	want := c.WorldToScreen(p)
	if !approxVec(got, want) {
		t.Errorf("ViewMatrix() * %v = %v, want %v", p, got, want)
	}
}

func TestApplyWheel(t *testing.T) {
	c := New(math.Vec2{}, 0.01, 20)

	c.ApplyWheel(1)
	if !approx(c.Zoom, 1.05) {
		t.Errorf("one notch up: zoom = %v, want 1.05", c.Zoom)
	}

	c.Zoom = 1
	c.ApplyWheel(0)
	if c.Zoom != 1 {
		t.Errorf("no wheel: zoom = %v, want 1", c.Zoom)
	}
}

func TestApplyWheelClampsToMinZoom(t *testing.T) {
	c := New(math.Vec2{}, 0.01, 20)

	// A delta of -20 would zero the zoom, -40 would flip its sign.
	for _, wheel := range []float32{-20, -40, -1} {
		c.Zoom = 1
		c.ApplyWheel(wheel)
		if c.Zoom < c.MinZoom {
			t.Errorf("ApplyWheel(%v): zoom = %v below min %v", wheel, c.Zoom, c.MinZoom)
		}
	}

	c.Zoom = 0.01
	for i := 0; i < 100; i++ {
		c.ApplyWheel(-5)
	}
	if c.Zoom != 0.01 {
		t.Errorf("zoom = %v, want clamped 0.01", c.Zoom)
	}
}

func TestPan(t *testing.T) {
	c := New(math.Vec2{X: 10, Y: 10}, 0.01, 20)
	c.SetViewport(800, 600)
	c.Zoom = 2

	under := c.ScreenToWorld(math.Vec2{X: 300, Y: 200})
	c.Pan(math.Vec2{X: 40, Y: -20})

	// Target moves by -delta/zoom.
	if want := (math.Vec2{X: -10, Y: 20}); !approxVec(c.Target, want) {
		t.Errorf("Target = %v, want %v", c.Target, want)
	}
	// The world point stays under the pointer.
	if got := c.ScreenToWorld(math.Vec2{X: 340, Y: 180}); !approxVec(got, under) {
		t.Errorf("point under pointer = %v, want %v", got, under)
	}
}

func TestIdentityMapsOriginToZero(t *testing.T) {
	c := Identity(math.Vec2{X: 100, Y: -50})
	if got := c.WorldToScreen(math.Vec2{X: 100, Y: -50}); got != (math.Vec2{}) {
		t.Errorf("WorldToScreen(origin) = %v, want zero", got)
	}
	if got := c.WorldToScreen(math.Vec2{X: 110, Y: -40}); got != (math.Vec2{X: 10, Y: 10}) {
		t.Errorf("WorldToScreen = %v, want (10, 10)", got)
	}
}
