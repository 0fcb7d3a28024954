package core

import (
	"math/rand"
	"sort"

	"github.com/go-monte/pathtracer/internal/vecmath"
)

// BVHNode is a node of the bounding volume hierarchy: either a leaf
// wrapping a single Hittable, or an internal node wrapping two
// children and their combined bounding box.
type BVHNode struct {
	left, right Hittable
	box         AABB
}

// NewBVH builds a BVH over the given slice of primitives using the
// default package-level random source for axis selection. It copies
// the slice first so the caller's ordering is never mutated.
func NewBVH(shapes []Hittable) *BVHNode {
	return NewBVHSeeded(shapes, rand.New(rand.NewSource(rand.Int63())))
}

// NewBVHSeeded builds a BVH using rng for per-node axis selection, so
// callers (and tests) can get a reproducible tree shape.
func NewBVHSeeded(shapes []Hittable, rng *rand.Rand) *BVHNode {
	cp := make([]Hittable, len(shapes))
	copy(cp, shapes)
	return buildBVH(cp, rng)
}

// buildBVH recursively partitions a mutable slice of primitives per
// spec: single item is a leaf, two items become a sorted pair, larger
// slices are sorted along a uniformly random axis and split at the
// midpoint.
func buildBVH(shapes []Hittable, rng *rand.Rand) *BVHNode {
	switch len(shapes) {
	case 1:
		box := shapes[0].BoundingBox()
		return &BVHNode{left: shapes[0], right: shapes[0], box: box}
	case 2:
		axis := rng.Intn(3)
		if boxMin(shapes[0], axis) > boxMin(shapes[1], axis) {
			shapes[0], shapes[1] = shapes[1], shapes[0]
		}
		box := shapes[0].BoundingBox().Union(shapes[1].BoundingBox())
		return &BVHNode{left: shapes[0], right: shapes[1], box: box}
	default:
		axis := rng.Intn(3)
		sort.Slice(shapes, func(i, j int) bool {
			return boxMin(shapes[i], axis) < boxMin(shapes[j], axis)
		})
		mid := len(shapes) / 2
		left := buildBVH(shapes[:mid], rng)
		right := buildBVH(shapes[mid:], rng)
		return &BVHNode{left: left, right: right, box: left.BoundingBox().Union(right.BoundingBox())}
	}
}

func boxMin(h Hittable, axis int) float64 {
	box := h.BoundingBox()
	switch axis {
	case 0:
		return box.X.Min
	case 1:
		return box.Y.Min
	default:
		return box.Z.Min
	}
}

// BoundingBox implements Hittable.
func (n *BVHNode) BoundingBox() AABB {
	return n.box
}

// Hit implements Hittable. Traversal tightens rayT.Max to the left
// subtree's hit distance before testing the right subtree, then
// returns the right hit if present, else the left — equivalent to
// choosing the smaller t because the right subtree's search window was
// already clipped to it.
func (n *BVHNode) Hit(ray vecmath.Ray, rayT vecmath.Interval) (HitRecord, bool) {
	if !n.box.Hit(ray, rayT) {
		return HitRecord{}, false
	}

	leftHit, hitLeft := n.left.Hit(ray, rayT)

	rightT := rayT
	if hitLeft {
		rightT.Max = leftHit.T
	}
	rightHit, hitRight := n.right.Hit(ray, rightT)

	if hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}
