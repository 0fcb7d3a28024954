// Package vecmath provides the vector algebra, rays and random-sampling
// helpers shared by every other package in the renderer.
package vecmath

import (
	"math"
	"math/rand"
)

// Vec3 is a 3-component vector used interchangeably as a point, a
// direction and an RGB color.
type Vec3 struct {
	X, Y, Z float64
}

// New creates a new Vec3.
func New(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the componentwise sum of two vectors.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the componentwise difference of two vectors.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Mul returns the vector scaled by a scalar.
func (v Vec3) Mul(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Div returns the vector divided by a scalar.
func (v Vec3) Div(s float64) Vec3 {
	return v.Mul(1.0 / s)
}

// MulVec returns the componentwise product of two vectors, used to
// apply attenuation to a color.
func (v Vec3) MulVec(o Vec3) Vec3 {
	return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product of two vectors.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// LengthSquared returns the squared magnitude of the vector.
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the magnitude of the vector.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Normalize returns a unit vector in the same direction. The zero
// vector normalizes to itself.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return v
	}
	return v.Div(length)
}

// Negate returns the negation of the vector.
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// NearZero reports whether every component is smaller than 1e-8 in
// absolute value.
func (v Vec3) NearZero() bool {
	const s = 1e-8
	return math.Abs(v.X) < s && math.Abs(v.Y) < s && math.Abs(v.Z) < s
}

// Map applies f to each component and returns the result.
func (v Vec3) Map(f func(float64) float64) Vec3 {
	return Vec3{f(v.X), f(v.Y), f(v.Z)}
}

// Clamp clamps each component to [lo, hi].
func (v Vec3) Clamp(lo, hi float64) Vec3 {
	clamp := func(x float64) float64 {
		if x < lo {
			return lo
		}
		if x > hi {
			return hi
		}
		return x
	}
	return v.Map(clamp)
}

// Sqrt returns the componentwise square root; used for gamma-2 correction.
func (v Vec3) Sqrt() Vec3 {
	return v.Map(math.Sqrt)
}

// Random returns a vector with components uniform in [0,1).
func Random(rng *rand.Rand) Vec3 {
	return Vec3{rng.Float64(), rng.Float64(), rng.Float64()}
}

// RandomRange returns a vector with components uniform in [min,max).
func RandomRange(rng *rand.Rand, min, max float64) Vec3 {
	r := func() float64 { return min + (max-min)*rng.Float64() }
	return Vec3{r(), r(), r()}
}

// RandomInUnitSphere returns a uniformly distributed point inside the
// unit ball via rejection sampling.
func RandomInUnitSphere(rng *rand.Rand) Vec3 {
	for {
		p := RandomRange(rng, -1, 1)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomUnitVector returns a uniformly distributed direction on the
// unit sphere.
func RandomUnitVector(rng *rand.Rand) Vec3 {
	return RandomInUnitSphere(rng).Normalize()
}

// RandomInUnitDisk returns a uniformly distributed point inside the
// unit disk in the XY plane, used by lens-sampling cameras.
func RandomInUnitDisk(rng *rand.Rand) Vec3 {
	for {
		p := Vec3{X: 2*rng.Float64() - 1, Y: 2*rng.Float64() - 1}
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// Reflect reflects v about a surface with (unit) normal n.
func Reflect(v, n Vec3) Vec3 {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// Refract refracts unit vector uv across a surface with unit normal n
// using Snell's law, given the ratio of the source to destination
// refractive indices.
func Refract(uv, n Vec3, etaiOverEtat float64) Vec3 {
	cosTheta := math.Min(-uv.Dot(n), 1.0)
	rOutPerp := uv.Add(n.Mul(cosTheta)).Mul(etaiOverEtat)
	rOutParallel := n.Mul(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}
