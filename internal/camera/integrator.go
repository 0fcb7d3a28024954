package camera

import (
	"math"
	"math/rand"

	"github.com/go-monte/pathtracer/internal/core"
	"github.com/go-monte/pathtracer/internal/vecmath"
)

var (
	skyHorizon = vecmath.New(1.0, 1.0, 1.0)
	skyZenith  = vecmath.New(0.5, 0.7, 1.0)
)

// hitMin is the lower bound on the ray-t search interval; it keeps a
// scattered ray from re-hitting its own origin due to floating-point
// self-intersection (shadow acne).
const hitMin = 0.001

// RayColor recursively traces r against world, terminating at depth
// zero, a miss (sky), or a material that declines to scatter. It never
// errors — numerical degeneracies are absorbed locally by the callee
// materials and primitives.
func RayColor(r vecmath.Ray, depth int, world core.Hittable, rng *rand.Rand) vecmath.Vec3 {
	if depth <= 0 {
		return vecmath.Vec3{}
	}

	rec, ok := world.Hit(r, vecmath.NewInterval(hitMin, math.Inf(1)))
	if !ok {
		return sky(r)
	}

	result, scattered := rec.Material.Scatter(r, rec, rng)
	if !scattered {
		return result.Attenuation
	}
	return result.Attenuation.MulVec(RayColor(result.Scattered, depth-1, world, rng))
}

// sky returns the linear blend between the horizon and zenith colors
// used when a ray escapes the scene.
func sky(r vecmath.Ray) vecmath.Vec3 {
	unitDir := r.Direction.Normalize()
	a := 0.5 * (unitDir.Y + 1)
	return skyHorizon.Mul(1 - a).Add(skyZenith.Mul(a))
}
