package core

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-monte/pathtracer/internal/vecmath"
)

// bruteForceSlabHit tests existence of a t in the open interval
// (rayT.Min, rayT.Max) such that ray.At(t) lies in the box, by dense
// sampling — used to cross-check the analytic slab test.
func bruteForceSlabHit(box AABB, ray vecmath.Ray, rayT vecmath.Interval) bool {
	const steps = 20000
	lo, hi := rayT.Min, rayT.Max
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		lo, hi = -50, 50
	}
	for i := 0; i <= steps; i++ {
		t := lo + (hi-lo)*float64(i)/steps
		p := ray.At(t)
		if box.X.Contains(p.X) && box.Y.Contains(p.Y) && box.Z.Contains(p.Z) {
			return true
		}
	}
	return false
}

func TestAABBHitMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	box := NewAABB(vecmath.New(-1, -1, -1), vecmath.New(1, 1, 1))

	for i := 0; i < 200; i++ {
		origin := vecmath.RandomRange(rng, -3, 3)
		dir := vecmath.RandomUnitVector(rng)
		ray := vecmath.NewRay(origin, dir)
		rayT := vecmath.NewInterval(0.001, 1000)

		got := box.Hit(ray, rayT)
		want := bruteForceSlabHit(box, ray, rayT)
		if got != want {
			t.Errorf("ray %+v: Hit=%v, brute-force=%v", ray, got, want)
		}
	}
}

func TestAABBPadDegenerateAxis(t *testing.T) {
	// A planar quad's bounding box has zero extent on one axis.
	box := NewAABBFromPoints(
		vecmath.New(0, 0, 0),
		vecmath.New(1, 0, 0),
		vecmath.New(1, 1, 0),
		vecmath.New(0, 1, 0),
	)

	if box.Z.Size() <= 0 {
		t.Fatalf("expected padded Z extent to be positive, got %v", box.Z.Size())
	}

	ray := vecmath.NewRay(vecmath.New(0.5, 0.5, -1), vecmath.New(0, 0, 1))
	if !box.Hit(ray, vecmath.NewInterval(0.001, 1000)) {
		t.Error("ray straight through the planar box's face should hit after padding")
	}
}

func TestAABBUnionCommutativeAndAssociative(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	randBox := func() AABB {
		a := vecmath.RandomRange(rng, -5, 5)
		b := vecmath.RandomRange(rng, -5, 5)
		return NewAABB(a, b)
	}

	for i := 0; i < 100; i++ {
		a, b, c := randBox(), randBox(), randBox()

		ab := a.Union(b)
		ba := b.Union(a)
		if ab != ba {
			t.Fatalf("union not commutative:\n%+v\n%+v", ab, ba)
		}

		left := a.Union(b).Union(c)
		right := a.Union(b.Union(c))
		if left != right {
			t.Fatalf("union not associative:\n%+v\n%+v", left, right)
		}
	}
}

func TestAABBUnionFoldOrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	boxes := make([]AABB, 10)
	for i := range boxes {
		a := vecmath.RandomRange(rng, -5, 5)
		b := vecmath.RandomRange(rng, -5, 5)
		boxes[i] = NewAABB(a, b)
	}

	fold := func(order []int) AABB {
		acc := vecmath.EmptyInterval()
		result := AABB{X: acc, Y: acc, Z: acc}
		first := true
		for _, idx := range order {
			if first {
				result = boxes[idx]
				first = false
				continue
			}
			result = result.Union(boxes[idx])
		}
		return result
	}

	natural := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	reversed := []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	shuffled := rng.Perm(len(boxes))

	want := fold(natural)
	if got := fold(reversed); got != want {
		t.Errorf("fold order changed result: %+v vs %+v", got, want)
	}
	if got := fold(shuffled); got != want {
		t.Errorf("fold order changed result: %+v vs %+v", got, want)
	}
}
