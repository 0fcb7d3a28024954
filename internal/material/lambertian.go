package material

import (
	"math/rand"

	"github.com/go-monte/pathtracer/internal/core"
	"github.com/go-monte/pathtracer/internal/vecmath"
)

// Lambertian is a perfectly diffuse surface: the scattered direction is
// drawn from normal + a random unit vector, and the attenuation is the
// texture sampled at the hit.
type Lambertian struct {
	Tex Texture
}

// NewLambertian creates a Lambertian material from a texture.
func NewLambertian(tex Texture) *Lambertian {
	return &Lambertian{Tex: tex}
}

// NewLambertianColor is a convenience constructor taking a solid color.
func NewLambertianColor(c vecmath.Vec3) *Lambertian {
	return NewLambertian(NewSolid(c))
}

// Scatter implements core.Material.
func (l *Lambertian) Scatter(rayIn vecmath.Ray, hit core.HitRecord, rng *rand.Rand) (core.ScatterResult, bool) {
	direction := hit.Normal.Add(vecmath.RandomUnitVector(rng))

	// A near-zero scatter direction (unit vector landing almost exactly
	// opposite the normal) would produce NaNs downstream; fall back to
	// the normal itself.
	if direction.NearZero() {
		direction = hit.Normal
	}

	return core.ScatterResult{
		Attenuation: l.Tex.Value(hit.U, hit.V, hit.P),
		Scattered:   vecmath.NewRay(hit.P, direction),
	}, true
}
