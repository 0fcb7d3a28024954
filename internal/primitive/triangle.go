package primitive

import (
	"math"

	"github.com/go-monte/pathtracer/internal/core"
	"github.com/go-monte/pathtracer/internal/vecmath"
)

// Triangle is a single triangle, optionally inheriting its material
// from a containing Mesh when Material is nil.
type Triangle struct {
	V0, V1, V2 vecmath.Vec3
	Material   core.Material // nil defers to the containing Mesh's default

	normal vecmath.Vec3
	bbox   core.AABB
}

// NewTriangle creates a triangle from three vertices and an optional
// material (pass nil to defer to a containing mesh's default).
func NewTriangle(v0, v1, v2 vecmath.Vec3, mat core.Material) *Triangle {
	e1 := v1.Sub(v0)
	e2 := v2.Sub(v0)
	return &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: mat,
		normal:   e1.Cross(e2).Normalize(),
		bbox:     core.NewAABBFromPoints(v0, v1, v2),
	}
}

// hitWithCull is the Möller–Trumbore core shared by Hit; cull selects
// between the one-sided (backface-culling) and two-sided determinant
// test.
func (t *Triangle) hitWithCull(ray vecmath.Ray, rayT vecmath.Interval, cull bool) (core.HitRecord, bool) {
	const epsilon = 2.220446049250313e-16 // machine epsilon, per spec default

	e1 := t.V1.Sub(t.V0)
	e2 := t.V2.Sub(t.V0)

	p := ray.Direction.Cross(e2)
	det := e1.Dot(p)

	if cull {
		if det < epsilon {
			return core.HitRecord{}, false
		}
	} else {
		if math.Abs(det) < epsilon {
			return core.HitRecord{}, false
		}
	}

	inv := 1.0 / det
	tv := ray.Origin.Sub(t.V0)
	u := inv * tv.Dot(p)
	if u < 0 || u > 1 {
		return core.HitRecord{}, false
	}

	q := tv.Cross(e1)
	v := inv * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return core.HitRecord{}, false
	}

	tParam := inv * e2.Dot(q)
	if !rayT.Contains(tParam) {
		return core.HitRecord{}, false
	}

	rec := core.HitRecord{
		T:        tParam,
		P:        ray.At(tParam),
		U:        u,
		V:        v,
		Material: t.Material,
	}
	rec.SetFaceNormal(ray, t.normal)
	return rec, true
}

// Hit implements core.Hittable, using the two-sided (non-culling)
// determinant test.
func (t *Triangle) Hit(ray vecmath.Ray, rayT vecmath.Interval) (core.HitRecord, bool) {
	return t.hitWithCull(ray, rayT, false)
}

// BoundingBox implements core.Hittable.
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}

// Normal returns the triangle's precomputed, normalized face normal.
func (t *Triangle) Normal() vecmath.Vec3 {
	return t.normal
}
