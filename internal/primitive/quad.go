package primitive

import (
	"math"

	"github.com/go-monte/pathtracer/internal/core"
	"github.com/go-monte/pathtracer/internal/vecmath"
)

// Quad is a planar, parallelogram-shaped surface defined by a corner
// and two edge vectors.
type Quad struct {
	Q        vecmath.Vec3 // anchor corner
	U, V     vecmath.Vec3 // edge vectors
	Material core.Material

	normal vecmath.Vec3
	d      float64
	w      vecmath.Vec3
}

// NewQuad creates a quad from an anchor corner and two edge vectors.
func NewQuad(q, u, v vecmath.Vec3, mat core.Material) *Quad {
	cross := u.Cross(v)
	normal := cross.Normalize()
	return &Quad{
		Q:        q,
		U:        u,
		V:        v,
		Material: mat,
		normal:   normal,
		d:        normal.Dot(q),
		w:        cross.Div(cross.Dot(cross)),
	}
}

// Hit implements core.Hittable.
func (q *Quad) Hit(ray vecmath.Ray, rayT vecmath.Interval) (core.HitRecord, bool) {
	denom := ray.Direction.Dot(q.normal)
	if math.Abs(denom) < 1e-8 {
		return core.HitRecord{}, false
	}

	t := (q.d - ray.Origin.Dot(q.normal)) / denom
	if !rayT.Contains(t) {
		return core.HitRecord{}, false
	}

	p := ray.At(t)
	h := p.Sub(q.Q)
	alpha := q.w.Dot(h.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(h))

	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return core.HitRecord{}, false
	}

	rec := core.HitRecord{
		T:        t,
		P:        p,
		U:        alpha,
		V:        beta,
		Material: q.Material,
	}
	rec.SetFaceNormal(ray, q.normal)
	return rec, true
}

// BoundingBox implements core.Hittable. AABB.Pad() (via core.NewAABB)
// takes care of the zero-extent axis a planar quad always has.
func (q *Quad) BoundingBox() core.AABB {
	return core.NewAABBFromPoints(q.Q, q.Q.Add(q.U), q.Q.Add(q.V), q.Q.Add(q.U).Add(q.V))
}
