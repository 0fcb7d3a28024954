package core

import (
	"math"

	"github.com/go-monte/pathtracer/internal/vecmath"
)

// AABB is an axis-aligned bounding box represented as one interval per
// axis.
type AABB struct {
	X, Y, Z vecmath.Interval
}

// NewAABB builds an AABB from two opposite corner points.
func NewAABB(a, b vecmath.Vec3) AABB {
	return AABB{
		X: orderedInterval(a.X, b.X),
		Y: orderedInterval(a.Y, b.Y),
		Z: orderedInterval(a.Z, b.Z),
	}.Pad()
}

// NewAABBFromPoints builds the tightest AABB containing all given points.
func NewAABBFromPoints(points ...vecmath.Vec3) AABB {
	if len(points) == 0 {
		return AABB{X: vecmath.EmptyInterval(), Y: vecmath.EmptyInterval(), Z: vecmath.EmptyInterval()}
	}
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		min = vecmath.New(math.Min(min.X, p.X), math.Min(min.Y, p.Y), math.Min(min.Z, p.Z))
		max = vecmath.New(math.Max(max.X, p.X), math.Max(max.Y, p.Y), math.Max(max.Z, p.Z))
	}
	return NewAABB(min, max)
}

func orderedInterval(a, b float64) vecmath.Interval {
	if a <= b {
		return vecmath.NewInterval(a, b)
	}
	return vecmath.NewInterval(b, a)
}

// axisInterval returns the interval of the box along the given axis
// (0=X, 1=Y, 2=Z).
func (b AABB) axisInterval(axis int) vecmath.Interval {
	switch axis {
	case 0:
		return b.X
	case 1:
		return b.Y
	default:
		return b.Z
	}
}

// Pad expands any axis narrower than 1e-4 so that degenerate, planar
// boxes (e.g. an axis-aligned quad) remain hittable by the slab test.
func (b AABB) Pad() AABB {
	const minSize = 1e-4
	pad := func(i vecmath.Interval) vecmath.Interval {
		if i.Size() < minSize {
			return i.Expand(minSize)
		}
		return i
	}
	return AABB{X: pad(b.X), Y: pad(b.Y), Z: pad(b.Z)}
}

// Union returns the smallest AABB containing both boxes.
func (b AABB) Union(o AABB) AABB {
	return AABB{X: b.X.Union(o.X), Y: b.Y.Union(o.Y), Z: b.Z.Union(o.Z)}
}

// Hit tests whether ray intersects the box for some t in rayT, using
// the branchless slab method.
func (b AABB) Hit(ray vecmath.Ray, rayT vecmath.Interval) bool {
	origin := [3]float64{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}
	dir := [3]float64{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}

	tMin, tMax := rayT.Min, rayT.Max

	for axis := 0; axis < 3; axis++ {
		ax := b.axisInterval(axis)
		invD := 1.0 / dir[axis]

		t0 := (ax.Min - origin[axis]) * invD
		t1 := (ax.Max - origin[axis]) * invD

		if invD < 0 {
			t0, t1 = t1, t0
		}

		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}

		if tMax <= tMin {
			return false
		}
	}

	return true
}

// Center returns the midpoint of the box.
func (b AABB) Center() vecmath.Vec3 {
	return vecmath.New(
		(b.X.Min+b.X.Max)/2,
		(b.Y.Min+b.Y.Max)/2,
		(b.Z.Min+b.Z.Max)/2,
	)
}

// Min returns the minimum corner of the box.
func (b AABB) Min() vecmath.Vec3 {
	return vecmath.New(b.X.Min, b.Y.Min, b.Z.Min)
}

// Max returns the maximum corner of the box.
func (b AABB) Max() vecmath.Vec3 {
	return vecmath.New(b.X.Max, b.Y.Max, b.Z.Max)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the greatest extent.
func (b AABB) LongestAxis() int {
	sx, sy, sz := b.X.Size(), b.Y.Size(), b.Z.Size()
	if sx > sy && sx > sz {
		return 0
	}
	if sy > sz {
		return 1
	}
	return 2
}
