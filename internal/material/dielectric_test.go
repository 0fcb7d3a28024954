package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-monte/pathtracer/internal/core"
	"github.com/go-monte/pathtracer/internal/vecmath"
)

func TestReflectanceAtNormalIncidenceMatchesGlassSchlick(t *testing.T) {
	// Seed scenario: normal-incidence Schlick reflectance for
	// glass (ior 1.5) should be approximately 0.04.
	got := Reflectance(1.0, 1.0/1.5)
	if math.Abs(got-0.04) > 0.005 {
		t.Errorf("Reflectance(1.0, 1/1.5) = %v, want ~0.04", got)
	}
}

func TestReflectanceIsOneAtGrazingAngle(t *testing.T) {
	got := Reflectance(0.0, 1.0/1.5)
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Reflectance(0, ratio) = %v, want 1.0", got)
	}
}

func TestDielectricScatterAlwaysOk(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	d := NewDielectric(1.5)

	for i := 0; i < 1000; i++ {
		hit := core.HitRecord{
			P:         vecmath.New(0, 0, 0),
			Normal:    vecmath.New(0, 1, 0),
			FrontFace: true,
		}
		rayIn := vecmath.NewRay(vecmath.New(0, 1, 0), vecmath.New(0.1, -1, 0))

		result, ok := d.Scatter(rayIn, hit, rng)
		if !ok {
			t.Fatalf("Dielectric.Scatter returned ok=false, want true")
		}
		if result.Attenuation != white {
			t.Errorf("attenuation = %v, want white", result.Attenuation)
		}
		if result.Scattered.Direction.NearZero() {
			t.Errorf("scattered direction is near-zero")
		}
	}
}

func TestDielectricTotalInternalReflection(t *testing.T) {
	// A steep exit angle from a denser medium (FrontFace=false means
	// refractionRatio = ior > 1) forces total internal reflection.
	rng := rand.New(rand.NewSource(5))
	d := NewDielectric(1.5)

	hit := core.HitRecord{
		P:         vecmath.New(0, 0, 0),
		Normal:    vecmath.New(0, 1, 0),
		FrontFace: false,
	}
	// Direction nearly parallel to the surface: large sinTheta.
	rayIn := vecmath.NewRay(vecmath.New(0, 0, 0), vecmath.New(1, -0.05, 0))

	result, ok := d.Scatter(rayIn, hit, rng)
	if !ok {
		t.Fatalf("Scatter returned ok=false")
	}
	reflected := vecmath.Reflect(rayIn.Direction.Normalize(), hit.Normal)
	if result.Scattered.Direction != reflected {
		t.Errorf("TIR direction = %v, want reflected %v", result.Scattered.Direction, reflected)
	}
}
