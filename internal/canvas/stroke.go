package canvas

import (
	"github.com/Faultbox/paintbox/pkg/math"
)

// Stroke is a freehand polyline. Color and Weight are fixed when capture
// starts; Points grows one sample per frame while the draw button is held.
type Stroke struct {
	Points []math.Vec2
	Color  Color
	Weight float32
}

// Append adds a sample. Consecutive duplicates are kept.
func (s *Stroke) Append(p math.Vec2) {
	s.Points = append(s.Points, p)
}

// Bounds returns the envelope of the points.
func (s Stroke) Bounds() math.Rect {
	return math.Bounds(s.Points)
}

// SetBounds remaps every point so the envelope becomes b:
//
//	p' = (p - old.Min) * (b.Size / old.Size) + b.Min
//
// A zero extent on an axis cannot be scaled; points collapse onto b's
// min edge on that axis.
func (s *Stroke) SetBounds(b math.Rect) {
	if len(s.Points) == 0 {
		return
	}
	old := s.Bounds()
	var scale math.Vec2
	if old.W != 0 {
		scale.X = b.W / old.W
	}
	if old.H != 0 {
		scale.Y = b.H / old.H
	}
	oldMin, newMin := old.Min(), b.Min()
	for i, p := range s.Points {
		s.Points[i] = p.Sub(oldMin).Mul(scale).Add(newMin)
	}
}

// Segments calls fn for every consecutive pair of points. Strokes with fewer
// than two points have no segments.
func (s Stroke) Segments(fn func(a, b math.Vec2)) {
	for i := 0; i+1 < len(s.Points); i++ {
		fn(s.Points[i], s.Points[i+1])
	}
}
