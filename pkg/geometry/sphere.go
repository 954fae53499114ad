package geometry

import (
	"math"

	"github.com/df07/go-monte-carlo-raytracer/pkg/core"
	"github.com/df07/go-monte-carlo-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Roots solves |origin + t*dir - center|^2 = r^2 for t.
// It returns the smaller root first; a tangent ray yields t0 == t1.
func (s *Sphere) Roots(ray core.Ray) (t0, t1 float64, ok bool) {
	// Vector from ray origin to sphere center
	oc := s.Center.Subtract(ray.Origin)

	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return 0, 0, false
	}

	sqrtD := math.Sqrt(discriminant)
	return (h - sqrtD) / a, (h + sqrtD) / a, true
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval[float64]) (*material.HitRecord, bool) {
	t0, t1, ok := s.Roots(ray)
	if !ok {
		return nil, false
	}

	// Try the closer intersection point first
	root := t0
	if !rayT.Surrounds(root) {
		root = t1
		if !rayT.Surrounds(root) {
			return nil, false
		}
	}

	// Outward normal from center to hit point
	outwardNormal := ray.At(root).Subtract(s.Center).Divide(s.Radius)
	return material.NewHitRecord(ray, root, outwardNormal, s.Material), true
}
