package core

import (
	"math/rand"
	"testing"

	"github.com/go-monte/pathtracer/internal/vecmath"
)

func TestSetFaceNormalInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 1000; i++ {
		dir := vecmath.RandomUnitVector(rng)
		outward := vecmath.RandomUnitVector(rng)
		ray := vecmath.NewRay(vecmath.New(0, 0, 0), dir)

		var rec HitRecord
		rec.SetFaceNormal(ray, outward)

		wantFront := dir.Dot(outward) < 0
		if rec.FrontFace != wantFront {
			t.Fatalf("FrontFace = %v, want %v", rec.FrontFace, wantFront)
		}
		if d := rec.Normal.Dot(dir); d >= 0 {
			t.Fatalf("stored normal must face the incoming ray: normal·dir = %v", d)
		}
	}
}
