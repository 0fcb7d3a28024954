// Package material implements the texture and BSDF model: solid,
// checker and image textures, and the Lambertian, Metal, Dielectric and
// Emissive materials that scatter rays against them.
package material

import (
	"image"
	"math"

	"github.com/go-monte/pathtracer/internal/vecmath"
)

// magenta is the diagnostic color returned when an image texture has
// no backing pixels, e.g. because the source image failed to decode.
var magenta = vecmath.New(1, 0, 1)

// Texture maps a surface hit (uv and world point) to a color.
type Texture interface {
	Value(u, v float64, p vecmath.Vec3) vecmath.Vec3
}

// Solid is a texture with a single constant color.
type Solid struct {
	Color vecmath.Vec3
}

// NewSolid creates a constant-color texture.
func NewSolid(c vecmath.Vec3) *Solid {
	return &Solid{Color: c}
}

// Value implements Texture.
func (s *Solid) Value(u, v float64, p vecmath.Vec3) vecmath.Vec3 {
	return s.Color
}

// Checker alternates between two sub-textures based on the parity of
// floor(scale*x)+floor(scale*y)+floor(scale*z), evaluated in world
// space rather than surface uv — this means it does not follow a
// sphere's curvature the way a uv-mapped checker would.
type Checker struct {
	Scale     float64
	Even, Odd Texture
}

// NewChecker creates a world-space checker texture.
func NewChecker(scale float64, even, odd Texture) *Checker {
	return &Checker{Scale: scale, Even: even, Odd: odd}
}

// NewCheckerColors is a convenience constructor taking two solid colors.
func NewCheckerColors(scale float64, even, odd vecmath.Vec3) *Checker {
	return NewChecker(scale, NewSolid(even), NewSolid(odd))
}

// Value implements Texture.
func (c *Checker) Value(u, v float64, p vecmath.Vec3) vecmath.Vec3 {
	xi := int(math.Floor(c.Scale * p.X))
	yi := int(math.Floor(c.Scale * p.Y))
	zi := int(math.Floor(c.Scale * p.Z))
	if (xi+yi+zi)%2 == 0 {
		return c.Even.Value(u, v, p)
	}
	return c.Odd.Value(u, v, p)
}

// Image samples a decoded RGB image, with (u, 1-v) sampling and
// clamping to [0,1] per spec. A nil Pixels means the backing image
// failed to load; Value then returns the magenta sentinel.
type Image struct {
	Pixels image.Image
}

// NewImageTexture wraps a decoded image as a texture. img may be nil
// to represent a missing/failed load.
func NewImageTexture(img image.Image) *Image {
	return &Image{Pixels: img}
}

// Value implements Texture.
func (im *Image) Value(u, v float64, p vecmath.Vec3) vecmath.Vec3 {
	if im.Pixels == nil {
		return magenta
	}

	u = clamp01(u)
	v = 1 - clamp01(v)

	bounds := im.Pixels.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return magenta
	}

	x := bounds.Min.X + int(u*float64(width))
	y := bounds.Min.Y + int(v*float64(height))
	if x >= bounds.Max.X {
		x = bounds.Max.X - 1
	}
	if y >= bounds.Max.Y {
		y = bounds.Max.Y - 1
	}

	r, g, b, _ := im.Pixels.At(x, y).RGBA()
	const scale = 1.0 / 0xffff
	return vecmath.New(float64(r)*scale, float64(g)*scale, float64(b)*scale)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
