package scene

import (
	"github.com/df07/go-monte-carlo-raytracer/pkg/core"
	"github.com/df07/go-monte-carlo-raytracer/pkg/geometry"
	"github.com/df07/go-monte-carlo-raytracer/pkg/material"
	"github.com/df07/go-monte-carlo-raytracer/pkg/renderer"
)

// NewPlaneScene creates metal, glass and diffuse spheres above an infinite ground plane
// with a mirror wall behind them
func NewPlaneScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.DefaultCameraConfig()
	defaultCameraConfig.LookFrom = core.NewVec3(0, 0.75, 2)
	defaultCameraConfig.LookAt = core.NewVec3(0, 0, -1)
	defaultCameraConfig.VFov = 40
	defaultCameraConfig.FocusDistance = 3.1
	defaultCameraConfig.SamplesPerPixel = 50
	defaultCameraConfig.MaxDepth = 25

	s := newScene("plane", defaultCameraConfig, cameraOverrides)

	ground := material.NewLambertian(core.NewColor(0.8, 0.8, 0.0).Multiply(0.6))
	silver := material.NewMetal(core.NewColor(0.8, 0.8, 0.8), 0.0)
	gold := material.NewMetal(core.NewColor(0.8, 0.6, 0.2), 0.3)
	red := material.NewLambertian(core.NewColor(0.65, 0.25, 0.2))
	glass := material.NewDielectric(1.5)

	s.Add(geometry.NewPlane(core.NewVec3(0, -0.5, 0), core.NewVec3(0, 1, 0), ground))
	s.Add(geometry.NewPlane(core.NewVec3(0, 0, -4), core.NewVec3(0, 0, 1), material.NewMetal(core.NewColor(0.9, 0.9, 0.9), 0.05)))

	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, red)
	s.AddSphere(core.NewVec3(-1, 0, -1), 0.5, silver)
	s.AddSphere(core.NewVec3(1, 0, -1), 0.5, gold)
	s.AddSphere(core.NewVec3(0.5, -0.25, -0.5), 0.25, glass)

	return s
}
