package core

import "github.com/go-monte/pathtracer/internal/vecmath"

// World is the flat scene container: a list of primitives plus their
// combined bounding box. Rendering wraps a World in a BVH; tests use
// the flat list directly to validate BVH/brute-force equivalence.
type World struct {
	Shapes []Hittable
	bounds AABB
}

// NewWorld builds a World from a slice of primitives, computing the
// union bounding box once.
func NewWorld(shapes []Hittable) *World {
	w := &World{Shapes: shapes}
	if len(shapes) > 0 {
		bounds := shapes[0].BoundingBox()
		for _, s := range shapes[1:] {
			bounds = bounds.Union(s.BoundingBox())
		}
		w.bounds = bounds
	}
	return w
}

// BoundingBox implements Hittable.
func (w *World) BoundingBox() AABB {
	return w.bounds
}

// Hit implements Hittable via brute-force linear scan, shrinking the
// search interval as closer hits are found. This is the reference
// traversal BVH results must match.
func (w *World) Hit(ray vecmath.Ray, rayT vecmath.Interval) (HitRecord, bool) {
	var closest HitRecord
	hitAnything := false
	closestSoFar := rayT.Max

	for _, shape := range w.Shapes {
		if hit, ok := shape.Hit(ray, vecmath.NewInterval(rayT.Min, closestSoFar)); ok {
			hitAnything = true
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, hitAnything
}

// BuildBVH wraps the world's shapes in a BVH for accelerated traversal.
func (w *World) BuildBVH() *BVHNode {
	return NewBVH(w.Shapes)
}
