package scene

import (
	"math/rand"

	"github.com/go-monte/pathtracer/internal/camera"
	"github.com/go-monte/pathtracer/internal/core"
	"github.com/go-monte/pathtracer/internal/material"
	"github.com/go-monte/pathtracer/internal/primitive"
	"github.com/go-monte/pathtracer/internal/vecmath"
)

// TwoSpheres builds the seed-scenario world: a large ground sphere and
// a small red Lambertian sphere at the origin.
func TwoSpheres() *Scene {
	ground := primitive.NewSphere(vecmath.New(0, -1000, 0), 1000, material.NewLambertianColor(vecmath.New(0.5, 0.5, 0.5)))
	small := primitive.NewSphere(vecmath.New(0, 0, 0), 1.0, material.NewLambertianColor(vecmath.New(0.65, 0.05, 0.05)))

	return &Scene{
		Shapes: []core.Hittable{ground, small},
		CameraConfig: camera.Config{
			AspectRatio: 16.0 / 9.0,
			ImageWidth:  400,
			LookFrom:    vecmath.New(0, 1, 4),
			LookAt:      vecmath.New(0, 0, 0),
			VUp:         vecmath.New(0, 1, 0),
			FOVDegrees:  40,
		},
	}
}

// RandomSpheres builds the classic "random spheres on a checkered
// ground" scene, with small spheres drawn as roughly 80% Lambertian,
// 15% Metal and 5% Dielectric.
func RandomSpheres(rng *rand.Rand, grid int) *Scene {
	checker := material.NewCheckerColors(0.32, vecmath.New(0.2, 0.3, 0.1), vecmath.New(0.9, 0.9, 0.9))
	ground := primitive.NewSphere(vecmath.New(0, -1000, 0), 1000, material.NewLambertian(checker))

	shapes := []core.Hittable{ground}

	for a := -grid; a < grid; a++ {
		for b := -grid; b < grid; b++ {
			center := vecmath.New(float64(a)+0.9*rng.Float64(), 0.2, float64(b)+0.9*rng.Float64())
			if center.Sub(vecmath.New(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			chooseMat := rng.Float64()
			var mat core.Material
			switch {
			case chooseMat < 0.8:
				albedo := vecmath.Random(rng).MulVec(vecmath.Random(rng))
				mat = material.NewLambertianColor(albedo)
			case chooseMat < 0.95:
				albedo := vecmath.RandomRange(rng, 0.5, 1)
				fuzz := rng.Float64() * 0.5
				mat = material.NewMetal(albedo, fuzz)
			default:
				mat = material.NewDielectric(1.5)
			}

			shapes = append(shapes, primitive.NewSphere(center, 0.2, mat))
		}
	}

	shapes = append(shapes,
		primitive.NewSphere(vecmath.New(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		primitive.NewSphere(vecmath.New(-4, 1, 0), 1.0, material.NewLambertianColor(vecmath.New(0.4, 0.2, 0.1))),
		primitive.NewSphere(vecmath.New(4, 1, 0), 1.0, material.NewMetal(vecmath.New(0.7, 0.6, 0.5), 0.0)),
	)

	return &Scene{
		Shapes: shapes,
		CameraConfig: camera.Config{
			AspectRatio: 16.0 / 9.0,
			ImageWidth:  800,
			LookFrom:    vecmath.New(13, 2, 3),
			LookAt:      vecmath.New(0, 0, 0),
			VUp:         vecmath.New(0, 1, 0),
			FOVDegrees:  20,
		},
	}
}

// CornellBox builds the classic 555-unit Cornell box: five quad walls
// (red/green/white) and a quad ceiling light, no objects inside.
func CornellBox() *Scene {
	const boxSize = 555.0

	white := material.NewLambertianColor(vecmath.New(0.73, 0.73, 0.73))
	red := material.NewLambertianColor(vecmath.New(0.65, 0.05, 0.05))
	green := material.NewLambertianColor(vecmath.New(0.12, 0.45, 0.15))
	light := material.NewEmissive(vecmath.New(1, 1, 1), 15.0)

	floor := primitive.NewQuad(vecmath.New(0, 0, 0), vecmath.New(boxSize, 0, 0), vecmath.New(0, 0, boxSize), white)
	ceiling := primitive.NewQuad(vecmath.New(0, boxSize, 0), vecmath.New(boxSize, 0, 0), vecmath.New(0, 0, boxSize), white)
	backWall := primitive.NewQuad(vecmath.New(0, 0, boxSize), vecmath.New(boxSize, 0, 0), vecmath.New(0, boxSize, 0), white)
	leftWall := primitive.NewQuad(vecmath.New(0, 0, 0), vecmath.New(0, 0, boxSize), vecmath.New(0, boxSize, 0), red)
	rightWall := primitive.NewQuad(vecmath.New(boxSize, 0, 0), vecmath.New(0, boxSize, 0), vecmath.New(0, 0, boxSize), green)

	const lightSize = 130.0
	const lightOffset = (boxSize - lightSize) / 2.0
	ceilingLight := primitive.NewQuad(
		vecmath.New(lightOffset, boxSize-1, lightOffset),
		vecmath.New(lightSize, 0, 0),
		vecmath.New(0, 0, lightSize),
		light,
	)

	return &Scene{
		Shapes: []core.Hittable{floor, ceiling, backWall, leftWall, rightWall, ceilingLight},
		CameraConfig: camera.Config{
			AspectRatio: 1.0,
			ImageWidth:  400,
			LookFrom:    vecmath.New(278, 278, -800),
			LookAt:      vecmath.New(278, 278, 0),
			VUp:         vecmath.New(0, 1, 0),
			FOVDegrees:  40,
		},
	}
}
