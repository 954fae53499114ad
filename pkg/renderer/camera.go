package renderer

import (
	"math"

	"github.com/df07/go-monte-carlo-raytracer/pkg/core"
)

// CameraConfig contains all parameters needed to set up a camera
type CameraConfig struct {
	AspectRatio     float64   // Ratio of image width over height
	ImageWidth      int       // Rendered image width in pixels
	VFov            float64   // Vertical field of view in degrees
	LookFrom        core.Vec3 // Camera position
	LookAt          core.Vec3 // Point the camera looks at
	Up              core.Vec3 // Camera-relative up direction
	DefocusAngle    float64   // Variation angle of rays through each pixel, 0 for a pinhole
	FocusDistance   float64   // Distance from camera to the plane of perfect focus
	SamplesPerPixel int       // Number of random samples for each pixel
	MaxDepth        int       // Maximum number of ray bounces into the scene
}

// DefaultCameraConfig returns a 16:9 pinhole camera at the origin looking down -Z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio:     16.0 / 9.0,
		ImageWidth:      400,
		VFov:            90,
		LookFrom:        core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		Up:              core.NewVec3(0, 1, 0),
		DefocusAngle:    0,
		FocusDistance:   1,
		SamplesPerPixel: 10,
		MaxDepth:        10,
	}
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base

	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.ImageWidth != 0 {
		result.ImageWidth = override.ImageWidth
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if !override.LookFrom.Equals(core.Vec3{}) {
		result.LookFrom = override.LookFrom
	}
	if !override.LookAt.Equals(core.Vec3{}) {
		result.LookAt = override.LookAt
	}
	if !override.Up.Equals(core.Vec3{}) {
		result.Up = override.Up
	}
	if override.DefocusAngle != 0 {
		result.DefocusAngle = override.DefocusAngle
	}
	if override.FocusDistance != 0 {
		result.FocusDistance = override.FocusDistance
	}
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}

	return result
}

// Camera generates rays for rendering.
// Every field is derived once in NewCamera and never changes afterwards.
type Camera struct {
	ImageWidth      int
	ImageHeight     int
	SamplesPerPixel int
	MaxDepth        int

	center       core.Vec3 // Camera center
	pixel00      core.Vec3 // Location of pixel 0, 0
	pixelDeltaU  core.Vec3 // Offset to pixel to the right
	pixelDeltaV  core.Vec3 // Offset to pixel below
	u, v, w      core.Vec3 // Camera frame basis vectors
	defocusAngle float64
	defocusDiskU core.Vec3 // Defocus disk horizontal radius
	defocusDiskV core.Vec3 // Defocus disk vertical radius
}

// NewCamera creates a camera from configuration
func NewCamera(config CameraConfig) *Camera {
	width := max(1, config.ImageWidth)

	height := width
	if config.AspectRatio > 0 {
		height = max(1, int(math.Round(float64(width)/config.AspectRatio)))
	}

	center := config.LookFrom

	// Viewport dimensions from the vertical field of view at the focus plane
	theta := degreesToRadians(config.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * config.FocusDistance
	viewportWidth := viewportHeight * float64(width) / float64(height)

	// Orthonormal camera basis
	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Divide(float64(width))
	pixelDeltaV := viewportV.Divide(float64(height))

	viewportUpperLeft := center.
		Subtract(w.Multiply(config.FocusDistance)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))
	pixel00 := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := config.FocusDistance * math.Tan(degreesToRadians(config.DefocusAngle/2))

	return &Camera{
		ImageWidth:      width,
		ImageHeight:     height,
		SamplesPerPixel: max(1, config.SamplesPerPixel),
		MaxDepth:        config.MaxDepth,
		center:          center,
		pixel00:         pixel00,
		pixelDeltaU:     pixelDeltaU,
		pixelDeltaV:     pixelDeltaV,
		u:               u,
		v:               v,
		w:               w,
		defocusAngle:    config.DefocusAngle,
		defocusDiskU:    u.Multiply(defocusRadius),
		defocusDiskV:    v.Multiply(defocusRadius),
	}
}

// GetRay returns a camera ray through a randomly jittered point of pixel (row, col).
// With a positive defocus angle the origin is sampled on the defocus disk.
func (c *Camera) GetRay(row, col int, sampler core.Sampler) core.Ray {
	offset := sampler.Get2D()
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(col) + offset.X - 0.5)).
		Add(c.pixelDeltaV.Multiply(float64(row) + offset.Y - 0.5))

	origin := c.center
	if c.defocusAngle > 0 {
		origin = c.defocusDiskSample(sampler)
	}

	return core.NewRay(origin, pixelSample.Subtract(origin))
}

// PixelCenter returns the world-space center of pixel (row, col)
func (c *Camera) PixelCenter(row, col int) core.Vec3 {
	return c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(col))).
		Add(c.pixelDeltaV.Multiply(float64(row)))
}

// Center returns the camera position
func (c *Camera) Center() core.Vec3 {
	return c.center
}

// GetCameraForward returns the direction the camera looks in
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.w.Negate()
}

func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Vec3 {
	p := core.RandomInUnitDisk(sampler)
	return c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
