package material

import (
	"github.com/df07/go-monte-carlo-raytracer/pkg/core"
)

// Material interface for objects that can scatter rays.
// Materials are immutable after construction and shared between shapes and goroutines.
type Material interface {
	// Scatter returns the attenuation and outgoing ray for an incoming ray at hit.
	// A false result means the ray was absorbed.
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray   // The scattered ray
	Attenuation core.Color // Per-channel factor applied to whatever the scattered ray returns
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit surface normal, always facing against the incoming ray
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether ray hit the front face
	Material  Material  // Material of the hit object
}

// NewHitRecord builds a hit record, orienting outwardNormal against the ray
func NewHitRecord(ray core.Ray, t float64, outwardNormal core.Vec3, mat Material) *HitRecord {
	hit := &HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: mat,
	}
	hit.SetFaceNormal(ray, outwardNormal)
	return hit
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
