package core

import (
	"math"
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms.
// A Sampler is not safe for concurrent use; every goroutine owns its own.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own generator seeded with seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// RandomVec3 returns a vector with components in [0, 1)
func RandomVec3(sampler Sampler) Vec3 {
	return sampler.Get3D()
}

// RandomVec3InRange returns a vector with components in [min, max)
func RandomVec3InRange(sampler Sampler, min, max float64) Vec3 {
	return sampler.Get3D().Multiply(max - min).AddScalar(min)
}

// RandomUnitVector returns a uniformly distributed direction on the unit sphere.
// Points are rejection-sampled inside the unit ball and normalized; tiny samples are
// rejected so the normalization never divides by a value near zero.
func RandomUnitVector(sampler Sampler) Vec3 {
	for {
		p := RandomVec3InRange(sampler, -1, 1)
		lengthSquared := p.LengthSquared()
		if 1e-160 < lengthSquared && lengthSquared < 1 {
			return p.Divide(math.Sqrt(lengthSquared))
		}
	}
}

// RandomOnHemisphere returns a unit direction in the hemisphere around normal
func RandomOnHemisphere(normal Vec3, sampler Sampler) Vec3 {
	onUnitSphere := RandomUnitVector(sampler)
	if onUnitSphere.Dot(normal) > 0 {
		return onUnitSphere
	}
	return onUnitSphere.Negate()
}

// RandomInUnitDisk generates a random point in a unit disk (for depth of field)
func RandomInUnitDisk(sampler Sampler) Vec3 {
	for {
		// Generate random point in [-1,1] x [-1,1] square
		s := sampler.Get2D()
		p := NewVec3(2*s.X-1, 2*s.Y-1, 0)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}
