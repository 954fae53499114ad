package scene

import (
	"github.com/df07/go-monte-carlo-raytracer/pkg/core"
	"github.com/df07/go-monte-carlo-raytracer/pkg/material"
	"github.com/df07/go-monte-carlo-raytracer/pkg/renderer"
)

// NewDefaultScene creates a diffuse sphere resting on a huge ground sphere
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	s := newScene("default", renderer.DefaultCameraConfig(), cameraOverrides)

	// Both spheres share one material
	gray := material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))

	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, gray)
	s.AddSphere(core.NewVec3(0, -100.5, -1), 100, gray)

	return s
}

// NewMaterialsScene shows every material side by side: glass bubble, diffuse and fuzzy metal
func NewMaterialsScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.DefaultCameraConfig()
	defaultCameraConfig.LookFrom = core.NewVec3(-2, 2, 1)
	defaultCameraConfig.LookAt = core.NewVec3(0, 0, -1)
	defaultCameraConfig.VFov = 20
	defaultCameraConfig.DefocusAngle = 10
	defaultCameraConfig.FocusDistance = 3.4
	defaultCameraConfig.SamplesPerPixel = 100
	defaultCameraConfig.MaxDepth = 50

	s := newScene("materials", defaultCameraConfig, cameraOverrides)

	ground := material.NewLambertian(core.NewColor(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewColor(0.1, 0.2, 0.5))
	right := material.NewMetal(core.NewColor(0.8, 0.6, 0.2), 1.0)

	s.AddSphere(core.NewVec3(0, -100.5, -1), 100, ground)
	s.AddSphere(core.NewVec3(0, 0, -1.2), 0.5, center)
	s.AddHollowSphere(core.NewVec3(-1, 0, -1), 0.5, 0.1, 1.5)
	s.AddSphere(core.NewVec3(1, 0, -1), 0.5, right)

	return s
}
