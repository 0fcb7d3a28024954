package material

import (
	"math"
	"math/rand"

	"github.com/go-monte/pathtracer/internal/core"
	"github.com/go-monte/pathtracer/internal/vecmath"
)

// Dielectric is a transparent material (glass, water) that either
// reflects or refracts the incoming ray, chosen stochastically by the
// Schlick approximation to the Fresnel reflectance.
type Dielectric struct {
	RefractionIndex float64
}

// NewDielectric creates a dielectric of the given index of refraction.
func NewDielectric(ior float64) *Dielectric {
	return &Dielectric{RefractionIndex: ior}
}

var white = vecmath.New(1, 1, 1)

// Scatter implements core.Material.
func (d *Dielectric) Scatter(rayIn vecmath.Ray, hit core.HitRecord, rng *rand.Rand) (core.ScatterResult, bool) {
	refractionRatio := d.RefractionIndex
	if hit.FrontFace {
		refractionRatio = 1.0 / d.RefractionIndex
	}

	unitDir := rayIn.Direction.Normalize()
	cosTheta := math.Min(-unitDir.Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction vecmath.Vec3
	if cannotRefract || Reflectance(cosTheta, refractionRatio) > rng.Float64() {
		direction = vecmath.Reflect(unitDir, hit.Normal)
	} else {
		direction = vecmath.Refract(unitDir, hit.Normal, refractionRatio)
	}

	return core.ScatterResult{
		Attenuation: white,
		Scattered:   vecmath.NewRay(hit.P, direction),
	}, true
}

// Reflectance computes the Schlick approximation to Fresnel
// reflectance for the given cosine and index-of-refraction ratio.
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
