package core

import (
	"math/rand"

	"github.com/go-monte/pathtracer/internal/vecmath"
)

// HitRecord describes a single ray/surface intersection. It is produced
// fresh per hit, never stored by the surface itself.
type HitRecord struct {
	P         vecmath.Vec3 // world-space hit point
	Normal    vecmath.Vec3 // surface normal, oriented against the ray
	T         float64      // ray parameter at the hit
	U, V      float64      // surface UV coordinates, in [0,1] for well-formed hits
	FrontFace bool         // true iff the ray hit the outward-facing side
	Material  Material     // material to scatter against; nil is not a valid hit
}

// SetFaceNormal orients Normal against the incoming ray and records
// which side was hit, maintaining the invariant Normal·ray.Direction < 0.
func (h *HitRecord) SetFaceNormal(ray vecmath.Ray, outwardNormal vecmath.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Hittable is anything a ray can intersect: primitives, meshes, BVH
// nodes and the flat World container all implement it.
type Hittable interface {
	Hit(ray vecmath.Ray, rayT vecmath.Interval) (HitRecord, bool)
	BoundingBox() AABB
}

// ScatterResult is the outcome of a material scattering a ray off a
// surface. Scattered is only meaningful when Material.Scatter's second
// return is true.
type ScatterResult struct {
	Attenuation vecmath.Vec3
	Scattered   vecmath.Ray
}

// Material is the scatter contract every BSDF implements. A false
// second return means the path terminates (absorption or pure
// emission); Attenuation is still meaningful in that case — zero for
// absorption, the emitted radiance for an emissive surface.
type Material interface {
	Scatter(rayIn vecmath.Ray, hit HitRecord, rng *rand.Rand) (ScatterResult, bool)
}
