package scene

import (
	"github.com/df07/go-monte-carlo-raytracer/pkg/core"
	"github.com/df07/go-monte-carlo-raytracer/pkg/material"
	"github.com/df07/go-monte-carlo-raytracer/pkg/renderer"
)

// randomSceneSeed fixes the layout so the registered "random" scene is reproducible
const randomSceneSeed = 1

// NewRandomScene creates a field of small random spheres around three large ones.
// The layout depends only on seed.
func NewRandomScene(seed int64, cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		AspectRatio:     16.0 / 9.0,
		ImageWidth:      1200,
		VFov:            20,
		LookFrom:        core.NewVec3(13, 2, 3),
		LookAt:          core.NewVec3(0, 0, 0),
		Up:              core.NewVec3(0, 1, 0),
		DefocusAngle:    0.6,
		FocusDistance:   10.0,
		SamplesPerPixel: 500,
		MaxDepth:        50,
	}

	s := newScene("random", defaultCameraConfig, cameraOverrides)
	sampler := core.NewSeededSampler(seed)

	s.AddSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewColor(0.5, 0.5, 0.5)))

	// Small spheres share one glass material
	glass := material.NewDielectric(1.5)
	clearing := core.NewVec3(4, 0.2, 0)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(float64(a)+0.9*sampler.Get1D(), 0.2, float64(b)+0.9*sampler.Get1D())

			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := core.RandomVec3(sampler).MultiplyVec(core.RandomVec3(sampler))
				s.AddSphere(center, 0.2, material.NewLambertian(albedo))
			case chooseMat < 0.95:
				albedo := core.RandomVec3InRange(sampler, 0.5, 1)
				fuzz := 0.5 * sampler.Get1D()
				s.AddSphere(center, 0.2, material.NewMetal(albedo, fuzz))
			default:
				s.AddSphere(center, 0.2, glass)
			}
		}
	}

	s.AddSphere(core.NewVec3(0, 1, 0), 1.0, glass)
	s.AddSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewColor(0.4, 0.2, 0.1)))
	s.AddSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewColor(0.7, 0.6, 0.5), 0.0))

	return s
}
