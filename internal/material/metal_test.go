package material

import (
	"math/rand"
	"testing"

	"github.com/go-monte/pathtracer/internal/core"
	"github.com/go-monte/pathtracer/internal/vecmath"
)

func TestMetalZeroFuzzIsPerfectMirror(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	m := NewMetal(vecmath.New(0.8, 0.8, 0.8), 0)

	hit := core.HitRecord{P: vecmath.New(0, 0, 0), Normal: vecmath.New(0, 1, 0)}
	rayIn := vecmath.NewRay(vecmath.New(-1, 1, 0), vecmath.New(1, -1, 0))

	result, ok := m.Scatter(rayIn, hit, rng)
	if !ok {
		t.Fatalf("Scatter returned ok=false for a mirror reflection that should be valid")
	}
	want := vecmath.Reflect(rayIn.Direction.Normalize(), hit.Normal)
	if result.Scattered.Direction != want {
		t.Errorf("reflected direction = %v, want %v", result.Scattered.Direction, want)
	}
}

func TestMetalFuzzClampedToUnitRange(t *testing.T) {
	m := NewMetal(vecmath.New(1, 1, 1), 5)
	if m.Fuzz != 1 {
		t.Errorf("Fuzz = %v, want clamped to 1", m.Fuzz)
	}
	m2 := NewMetal(vecmath.New(1, 1, 1), -5)
	if m2.Fuzz != 0 {
		t.Errorf("Fuzz = %v, want clamped to 0", m2.Fuzz)
	}
}

func TestMetalAbsorbsWhenScatteredIntoSurface(t *testing.T) {
	// A grazing ray with high fuzz should sometimes be absorbed
	// (scattered direction dotted with the normal goes non-positive).
	rng := rand.New(rand.NewSource(99))
	m := NewMetal(vecmath.New(1, 1, 1), 1.0)
	hit := core.HitRecord{P: vecmath.New(0, 0, 0), Normal: vecmath.New(0, 1, 0)}
	rayIn := vecmath.NewRay(vecmath.New(-1, 0.01, 0), vecmath.New(1, -0.01, 0))

	sawAbsorb := false
	for i := 0; i < 500; i++ {
		_, ok := m.Scatter(rayIn, hit, rng)
		if !ok {
			sawAbsorb = true
			break
		}
	}
	if !sawAbsorb {
		t.Errorf("expected at least one absorbed fuzzy reflection over 500 draws")
	}
}
