package scene

import (
	"github.com/df07/go-monte-carlo-raytracer/pkg/core"
	"github.com/df07/go-monte-carlo-raytracer/pkg/geometry"
	"github.com/df07/go-monte-carlo-raytracer/pkg/log"
	"github.com/df07/go-monte-carlo-raytracer/pkg/material"
	"github.com/df07/go-monte-carlo-raytracer/pkg/renderer"
)

var logger = log.New("scene")

// Scene contains all the elements needed for rendering.
// It is fully built before rendering and never modified while a render runs.
type Scene struct {
	Name         string
	CameraConfig renderer.CameraConfig
	World        *geometry.ShapeList
}

// newScene creates an empty scene whose camera is defaults merged with the first override
func newScene(name string, defaults renderer.CameraConfig, cameraOverrides []renderer.CameraConfig) *Scene {
	cameraConfig := defaults
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(defaults, cameraOverrides[0])
	}

	return &Scene{
		Name:         name,
		CameraConfig: cameraConfig,
		World:        geometry.NewShapeList(),
	}
}

// Camera builds the camera described by the scene's configuration
func (s *Scene) Camera() *renderer.Camera {
	return renderer.NewCamera(s.CameraConfig)
}

// Add appends shapes to the scene's world
func (s *Scene) Add(shapes ...geometry.Shape) {
	for _, shape := range shapes {
		s.World.Add(shape)
	}
}

// AddSphere adds a sphere to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Material) {
	s.World.Add(geometry.NewSphere(center, radius, mat))
}

// AddHollowSphere adds a glass bubble: an outer sphere and an inner sphere with the inverted index
func (s *Scene) AddHollowSphere(center core.Vec3, radius, thickness, refractiveIndex float64) {
	s.World.Add(geometry.NewSphere(center, radius, material.NewDielectric(refractiveIndex)))
	s.World.Add(geometry.NewSphere(center, radius-thickness, material.NewDielectric(1.0/refractiveIndex)))
}

// NewRaytracer creates a raytracer for the scene
func (s *Scene) NewRaytracer(config renderer.RenderConfig, l core.Logger) (*renderer.Raytracer, error) {
	return renderer.NewRaytracer(s.World, s.Camera(), config, l)
}
