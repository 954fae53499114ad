package geometry

import (
	"math"

	"github.com/df07/go-monte-carlo-raytracer/pkg/core"
	"github.com/df07/go-monte-carlo-raytracer/pkg/material"
)

// parallelEpsilon is the smallest |dot(direction, normal)| treated as crossing the plane
const parallelEpsilon = 1e-6

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3         // A point on the plane
	Normal   core.Vec3         // Unit normal
	Material material.Material // Material of the plane
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, mat material.Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(),
		Material: mat,
	}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, rayT core.Interval[float64]) (*material.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Ray is parallel to the plane
	if math.Abs(denominator) < parallelEpsilon {
		return nil, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if !rayT.Surrounds(t) {
		return nil, false
	}

	return material.NewHitRecord(ray, t, p.Normal, p.Material), true
}
