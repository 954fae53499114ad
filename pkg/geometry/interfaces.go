package geometry

import (
	"github.com/df07/go-monte-carlo-raytracer/pkg/core"
	"github.com/df07/go-monte-carlo-raytracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
// Hit reports the nearest intersection whose t lies strictly inside rayT.
type Shape interface {
	Hit(ray core.Ray, rayT core.Interval[float64]) (*material.HitRecord, bool)
}
