package material

import (
	"math/rand"

	"github.com/go-monte/pathtracer/internal/core"
	"github.com/go-monte/pathtracer/internal/vecmath"
)

// Emissive is a light-emitting material: it never scatters, and its
// attenuation return value is the emitted radiance instead of a
// reflectance, which the integrator must not treat as a bounce.
type Emissive struct {
	Color    vecmath.Vec3
	Strength float64
}

// NewEmissive creates an emissive material with the given color and
// strength multiplier.
func NewEmissive(color vecmath.Vec3, strength float64) *Emissive {
	return &Emissive{Color: color, Strength: strength}
}

// Scatter implements core.Material. It always terminates the path,
// returning color*strength as the emitted radiance.
func (e *Emissive) Scatter(rayIn vecmath.Ray, hit core.HitRecord, rng *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{Attenuation: e.Color.Mul(e.Strength)}, false
}
