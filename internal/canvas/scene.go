package canvas

import (
	"github.com/tidwall/rtree"
	"go.uber.org/zap"

	"github.com/Faultbox/paintbox/internal/logger"
	"github.com/Faultbox/paintbox/pkg/math"
)

// IndexThreshold is the object count from which hit tests go through a
// spatial index instead of a linear scan.
const IndexThreshold = 64

// Scene is the ordered list of objects. Index 0 is painted first, the last
// object is on top.
type Scene struct {
	objects []*Object

	index      rtree.RTreeG[int]
	indexDirty bool
}

// Len returns the number of objects.
func (s *Scene) Len() int {
	return len(s.objects)
}

// At returns the object at paint index i.
func (s *Scene) At(i int) *Object {
	return s.objects[i]
}

// Objects returns the objects in paint order. The slice must not be
// modified.
func (s *Scene) Objects() []*Object {
	return s.objects
}

// Append adds o on top of the scene.
func (s *Scene) Append(o *Object) {
	s.objects = append(s.objects, o)
	s.indexDirty = true
	logger.Debug("object appended",
		zap.Int("index", len(s.objects)-1),
		zap.Stringer("kind", o.Kind),
		zap.String("name", o.Name()))
}

// Remove unloads the object at i and deletes it, shifting later objects
// down by one.
func (s *Scene) Remove(i int) {
	o := s.objects[i]
	logger.Info("removing object", zap.Int("index", i), zap.String("name", o.Name()))
	o.Unload()
	copy(s.objects[i:], s.objects[i+1:])
	s.objects[len(s.objects)-1] = nil
	s.objects = s.objects[:len(s.objects)-1]
	s.indexDirty = true
}

// MoveUp swaps the object at i with the one painted after it. It reports
// false when i is already on top.
func (s *Scene) MoveUp(i int) bool {
	if i < 0 || i >= len(s.objects)-1 {
		return false
	}
	s.objects[i], s.objects[i+1] = s.objects[i+1], s.objects[i]
	s.indexDirty = true
	return true
}

// MoveDown swaps the object at i with the one painted before it. It reports
// false when i is already at the bottom.
func (s *Scene) MoveDown(i int) bool {
	if i <= 0 || i >= len(s.objects) {
		return false
	}
	s.objects[i], s.objects[i-1] = s.objects[i-1], s.objects[i]
	s.indexDirty = true
	return true
}

// Clear unloads and removes every object.
func (s *Scene) Clear() {
	if len(s.objects) > 0 {
		logger.Info("clearing scene", zap.Int("objects", len(s.objects)))
	}
	for i, o := range s.objects {
		o.Unload()
		s.objects[i] = nil
	}
	s.objects = s.objects[:0]
	s.indexDirty = true
}

// Touch marks object geometry as changed so the hit index is rebuilt.
func (s *Scene) Touch() {
	s.indexDirty = true
}

// HitTest finds the topmost object whose bounds or resize hitboxes contain
// p. margin is the hitbox size in world units. It returns -1 and RegionNone
// when nothing is hit.
func (s *Scene) HitTest(p math.Vec2, margin float32) (int, Region) {
	if len(s.objects) < IndexThreshold {
		for i := len(s.objects) - 1; i >= 0; i-- {
			if r := ResolveRegion(s.objects[i].Bounds(), p, margin); r != RegionNone {
				return i, r
			}
		}
		return -1, RegionNone
	}

	s.rebuildIndex()

	// Any object with a non-None region has bounds within margin/2 of p.
	// The slack absorbs float32 rounding in the hitbox edges.
	half := float64(margin/2) + 1e-3
	lo := [2]float64{float64(p.X) - half, float64(p.Y) - half}
	hi := [2]float64{float64(p.X) + half, float64(p.Y) + half}

	best, region := -1, RegionNone
	s.index.Search(lo, hi, func(_, _ [2]float64, i int) bool {
		if i <= best {
			return true
		}
		if r := ResolveRegion(s.objects[i].Bounds(), p, margin); r != RegionNone {
			best, region = i, r
		}
		return true
	})
	return best, region
}

func (s *Scene) rebuildIndex() {
	if !s.indexDirty {
		return
	}
	s.index = rtree.RTreeG[int]{}
	for i, o := range s.objects {
		b := o.Bounds()
		// Resizing can leave negative sizes; the index wants min <= max.
		r := math.RectFromPoints(b.Min(), b.Max())
		s.index.Insert(
			[2]float64{float64(r.X), float64(r.Y)},
			[2]float64{float64(r.X + r.W), float64(r.Y + r.H)},
			i,
		)
	}
	s.indexDirty = false
}
