package material

import (
	"math/rand"

	"github.com/go-monte/pathtracer/internal/core"
	"github.com/go-monte/pathtracer/internal/vecmath"
)

// Metal is a specular reflector perturbed by a fuzz factor: 0 is a
// perfect mirror, 1 is very rough.
type Metal struct {
	Albedo vecmath.Vec3
	Fuzz   float64
}

// NewMetal creates a metal material, clamping fuzz to [0,1].
func NewMetal(albedo vecmath.Vec3, fuzz float64) *Metal {
	if fuzz < 0 {
		fuzz = 0
	}
	if fuzz > 1 {
		fuzz = 1
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter implements core.Material. The reflected ray is perturbed by
// fuzz·random-unit-vector and absorbed if it points back into the
// surface; the positivity test intentionally uses the perturbed
// direction against the geometric normal, matching the source this
// renderer is modeled on (see DESIGN.md).
func (m *Metal) Scatter(rayIn vecmath.Ray, hit core.HitRecord, rng *rand.Rand) (core.ScatterResult, bool) {
	reflected := vecmath.Reflect(rayIn.Direction.Normalize(), hit.Normal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(vecmath.RandomUnitVector(rng).Mul(m.Fuzz))
	}

	scattered := vecmath.NewRay(hit.P, reflected)
	if scattered.Direction.Dot(hit.Normal) <= 0 {
		return core.ScatterResult{}, false
	}

	return core.ScatterResult{Attenuation: m.Albedo, Scattered: scattered}, true
}
