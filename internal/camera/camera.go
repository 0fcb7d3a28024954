// Package camera implements the camera ray generator, the recursive
// path-tracing integrator, and the data-parallel pixel render loop.
package camera

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/go-monte/pathtracer/internal/vecmath"
)

// Config holds the knobs a caller sets before deriving a Camera.
// New fills in zero SamplesPerPixel, MaxBounces, FOVDegrees and VUp
// with defaults; AspectRatio and ImageWidth must be set by the caller.
type Config struct {
	AspectRatio     float64
	ImageWidth      int
	SamplesPerPixel int // default 16
	MaxBounces      int // default 10
	FOVDegrees      float64 // default 80
	LookFrom        vecmath.Vec3
	LookAt          vecmath.Vec3
	VUp             vecmath.Vec3
}

// Camera holds the derived, immutable ray-generation state computed
// from a Config. Shared by reference across all render workers.
type Camera struct {
	ImageWidth      int
	ImageHeight     int
	SamplesPerPixel int
	MaxBounces      int

	center      vecmath.Vec3
	pixel00Loc  vecmath.Vec3
	pixelDeltaU vecmath.Vec3
	pixelDeltaV vecmath.Vec3
}

// New validates cfg and derives a Camera. Returns a configuration
// error (never a numerical-degeneracy one) if the aspect ratio or
// image width is non-positive.
func New(cfg Config) (*Camera, error) {
	if cfg.AspectRatio <= 0 {
		return nil, fmt.Errorf("camera: aspect ratio must be positive, got %v", cfg.AspectRatio)
	}
	if cfg.ImageWidth <= 0 {
		return nil, fmt.Errorf("camera: image width must be positive, got %d", cfg.ImageWidth)
	}

	samplesPerPixel := cfg.SamplesPerPixel
	if samplesPerPixel == 0 {
		samplesPerPixel = 16
	}
	maxBounces := cfg.MaxBounces
	if maxBounces == 0 {
		maxBounces = 10
	}
	fov := cfg.FOVDegrees
	if fov == 0 {
		fov = 80
	}
	vup := cfg.VUp
	if vup == (vecmath.Vec3{}) {
		vup = vecmath.New(0, 1, 0)
	}

	imageHeight := int(float64(cfg.ImageWidth) / cfg.AspectRatio)
	if imageHeight < 1 {
		imageHeight = 1
	}

	center := cfg.LookFrom
	focalLength := cfg.LookFrom.Sub(cfg.LookAt).Length()
	theta := fov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * focalLength
	viewportWidth := viewportHeight * (float64(cfg.ImageWidth) / float64(imageHeight))

	w := cfg.LookFrom.Sub(cfg.LookAt).Normalize()
	u := vup.Cross(w).Normalize()
	v := w.Cross(u)

	viewportU := u.Mul(viewportWidth)
	viewportV := v.Negate().Mul(viewportHeight)

	pixelDeltaU := viewportU.Div(float64(cfg.ImageWidth))
	pixelDeltaV := viewportV.Div(float64(imageHeight))

	viewportUpperLeft := center.
		Sub(w.Mul(focalLength)).
		Sub(viewportU.Div(2)).
		Sub(viewportV.Div(2))
	pixel00Loc := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Mul(0.5))

	return &Camera{
		ImageWidth:      cfg.ImageWidth,
		ImageHeight:     imageHeight,
		SamplesPerPixel: samplesPerPixel,
		MaxBounces:      maxBounces,
		center:          center,
		pixel00Loc:      pixel00Loc,
		pixelDeltaU:     pixelDeltaU,
		pixelDeltaV:     pixelDeltaV,
	}, nil
}

// GetRay returns a ray from the camera center through a stratified
// jittered sample within pixel (i, j).
func (c *Camera) GetRay(i, j int, rng *rand.Rand) vecmath.Ray {
	pixelCenter := c.pixel00Loc.
		Add(c.pixelDeltaU.Mul(float64(i))).
		Add(c.pixelDeltaV.Mul(float64(j)))

	jitter := c.pixelDeltaU.Mul(rng.Float64() - 0.5).
		Add(c.pixelDeltaV.Mul(rng.Float64() - 0.5))

	pixelSample := pixelCenter.Add(jitter)
	return vecmath.NewRay(c.center, pixelSample.Sub(c.center))
}
