// Package scene provides Go-native scene construction helpers (random
// spheres, two-sphere, Cornell box) and a YAML scene description loader.
// None of this is part of the render kernel — it only assembles
// primitives and a camera configuration for the kernel to consume.
package scene

import (
	"github.com/go-monte/pathtracer/internal/camera"
	"github.com/go-monte/pathtracer/internal/core"
)

// Scene bundles a flat primitive list with the camera configuration
// used to render it.
type Scene struct {
	Shapes       []core.Hittable
	CameraConfig camera.Config
}

// Build wraps the scene's shapes in a World and a BVH, ready for
// rendering.
func (s *Scene) Build() (*core.World, *core.BVHNode) {
	world := core.NewWorld(s.Shapes)
	return world, world.BuildBVH()
}
