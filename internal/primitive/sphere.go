// Package primitive implements the analytic and triangle-mesh shapes
// the renderer intersects rays against: Sphere, Quad, Triangle and the
// Mesh wrapper that collects triangles under their own BVH.
package primitive

import (
	"math"

	"github.com/go-monte/pathtracer/internal/core"
	"github.com/go-monte/pathtracer/internal/vecmath"
)

// Sphere is centered at Center with the given Radius.
type Sphere struct {
	Center   vecmath.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a sphere.
func NewSphere(center vecmath.Vec3, radius float64, mat core.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

// Hit implements core.Hittable.
func (s *Sphere) Hit(ray vecmath.Ray, rayT vecmath.Interval) (core.HitRecord, bool) {
	oc := ray.Origin.Sub(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	h := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return core.HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-h - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (-h + sqrtD) / a
		if !rayT.Surrounds(root) {
			return core.HitRecord{}, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Sub(s.Center).Div(s.Radius)

	u, v := sphereUV(outwardNormal)

	rec := core.HitRecord{
		T:        root,
		P:        point,
		U:        u,
		V:        v,
		Material: s.Material,
	}
	rec.SetFaceNormal(ray, outwardNormal)
	return rec, true
}

// sphereUV maps a unit-sphere point to (u,v) via
// u = (atan2(-z,x)+pi)/2pi, v = acos(-y)/pi.
func sphereUV(p vecmath.Vec3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}

// BoundingBox implements core.Hittable.
func (s *Sphere) BoundingBox() core.AABB {
	r := vecmath.New(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Sub(r), s.Center.Add(r))
}
