package integrator

import (
	"github.com/df07/go-monte-carlo-raytracer/pkg/core"
	"github.com/df07/go-monte-carlo-raytracer/pkg/geometry"
)

var (
	backgroundBottom = core.NewColor(1.0, 1.0, 1.0)
	backgroundTop    = core.NewColor(0.5, 0.7, 1.0)
)

// Background returns the sky gradient seen by a ray that escapes the scene.
// It blends from white to sky blue with the normalized y of the direction.
func Background(ray core.Ray) core.Color {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return core.Lerp(backgroundBottom, backgroundTop, t)
}

// PathTracingIntegrator implements unidirectional path tracing with the sky as the only light
type PathTracingIntegrator struct{}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator() *PathTracingIntegrator {
	return &PathTracingIntegrator{}
}

// RayColor follows ray through the world, multiplying the attenuation of every bounce into
// the throughput. Each bounce consumes one unit of depth; a path that runs out of depth or
// is absorbed gathers no light.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, depth int, world geometry.Shape, sampler core.Sampler) core.Color {
	throughput := core.NewColor(1, 1, 1)

	for ; depth > 0; depth-- {
		hit, isHit := world.Hit(ray, core.HitRange)
		if !isHit {
			return throughput.MultiplyVec(Background(ray))
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			return core.Color{} // Material absorbed the ray
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	// If we've exceeded the ray bounce limit, no more light is gathered
	return core.Color{}
}
