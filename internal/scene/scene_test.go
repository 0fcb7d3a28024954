package scene

import (
	"math/rand"
	"testing"
)

func TestTwoSpheresBuildsBothShapes(t *testing.T) {
	s := TwoSpheres()
	if len(s.Shapes) != 2 {
		t.Fatalf("len(Shapes) = %d, want 2", len(s.Shapes))
	}
	world, bvh := s.Build()
	if world == nil || bvh == nil {
		t.Fatalf("Build returned nil")
	}
}

func TestRandomSpheresBuildsNonTrivialScene(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := RandomSpheres(rng, 4)
	// ground + up to (2*4)^2 small spheres (minus overlaps) + 3 big spheres.
	if len(s.Shapes) < 4 {
		t.Fatalf("expected a non-trivial scene, got %d shapes", len(s.Shapes))
	}
	world, bvh := s.Build()
	if world == nil || bvh == nil {
		t.Fatalf("Build returned nil")
	}
}

func TestCornellBoxHasSixSurfaces(t *testing.T) {
	s := CornellBox()
	if len(s.Shapes) != 6 {
		t.Errorf("len(Shapes) = %d, want 6 (5 walls + 1 light)", len(s.Shapes))
	}
	if s.CameraConfig.AspectRatio != 1.0 {
		t.Errorf("AspectRatio = %v, want 1.0 for a square Cornell box render", s.CameraConfig.AspectRatio)
	}
}
