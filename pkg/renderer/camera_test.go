package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-monte-carlo-raytracer/pkg/core"
)

func TestCameraGetCameraForward(t *testing.T) {
	config := CameraConfig{
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		ImageWidth:    400,
		AspectRatio:   1.0,
		VFov:          45.0,
		FocusDistance: 1.0,
	}
	camera := NewCamera(config)

	forward := camera.GetCameraForward()
	expected := core.NewVec3(0, 0, -1)

	if forward.Subtract(expected).Length() > 1e-6 {
		t.Errorf("Expected forward direction %v, got %v", expected, forward)
	}
}

func TestCameraImageHeight(t *testing.T) {
	tests := []struct {
		name           string
		width          int
		aspectRatio    float64
		expectedWidth  int
		expectedHeight int
	}{
		{"16:9 at 400", 400, 16.0 / 9.0, 400, 225},
		{"rounds to nearest", 401, 16.0 / 9.0, 401, 226},
		{"square", 100, 1.0, 100, 100},
		{"height never below one", 10, 100.0, 10, 1},
		{"single pixel width", 1, 16.0 / 9.0, 1, 1},
		{"zero width coerced", 0, 16.0 / 9.0, 1, 1},
		{"negative width coerced", -5, 1.0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultCameraConfig()
			config.ImageWidth = tt.width
			config.AspectRatio = tt.aspectRatio
			camera := NewCamera(config)

			if camera.ImageWidth != tt.expectedWidth || camera.ImageHeight != tt.expectedHeight {
				t.Errorf("Expected %dx%d, got %dx%d",
					tt.expectedWidth, tt.expectedHeight, camera.ImageWidth, camera.ImageHeight)
			}
		})
	}
}

func TestCameraViewportGeometry(t *testing.T) {
	camera := NewCamera(DefaultCameraConfig())

	// The image center lies on the focus plane straight ahead
	first := camera.PixelCenter(0, 0)
	last := camera.PixelCenter(camera.ImageHeight-1, camera.ImageWidth-1)
	middle := first.Add(last).Multiply(0.5)
	if middle.Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-9 {
		t.Errorf("Expected viewport center (0, 0, -1), got %v", middle)
	}

	// Top-left pixel is up and to the left
	if first.X >= 0 || first.Y <= 0 {
		t.Errorf("Pixel (0, 0) should be in the upper left quadrant, got %v", first)
	}

	// 90 degree fov at focus distance 1 gives a viewport of height 2
	viewportHeight := camera.pixelDeltaV.Length() * float64(camera.ImageHeight)
	if math.Abs(viewportHeight-2.0) > 1e-9 {
		t.Errorf("Expected viewport height 2, got %f", viewportHeight)
	}

	// Square pixels
	if math.Abs(camera.pixelDeltaU.Length()-camera.pixelDeltaV.Length()) > 1e-12 {
		t.Errorf("Pixel deltas differ: u=%f v=%f", camera.pixelDeltaU.Length(), camera.pixelDeltaV.Length())
	}
}

func TestCameraBasisIsOrthonormal(t *testing.T) {
	config := DefaultCameraConfig()
	config.LookFrom = core.NewVec3(13, 2, 3)
	config.LookAt = core.NewVec3(0, 0, 0)
	config.VFov = 20
	camera := NewCamera(config)

	basis := []core.Vec3{camera.u, camera.v, camera.w}
	for i, a := range basis {
		if math.Abs(a.Length()-1) > 1e-12 {
			t.Errorf("Basis vector %d is not unit length: %v", i, a)
		}
		for j := i + 1; j < len(basis); j++ {
			if math.Abs(a.Dot(basis[j])) > 1e-12 {
				t.Errorf("Basis vectors %d and %d are not orthogonal", i, j)
			}
		}
	}
}

func TestCameraGetRay_Pinhole(t *testing.T) {
	camera := NewCamera(DefaultCameraConfig())
	sampler := core.NewSeededSampler(42)

	for i := 0; i < 100; i++ {
		row, col := i%camera.ImageHeight, (i*37)%camera.ImageWidth
		ray := camera.GetRay(row, col, sampler)

		if !ray.Origin.Equals(camera.Center()) {
			t.Fatalf("Pinhole ray should start at the camera center, got %v", ray.Origin)
		}

		// Jitter stays within half a pixel of the pixel center
		offset := ray.At(1).Subtract(camera.PixelCenter(row, col))
		if math.Abs(offset.X) > camera.pixelDeltaU.Length()/2+1e-12 ||
			math.Abs(offset.Y) > camera.pixelDeltaV.Length()/2+1e-12 {
			t.Fatalf("Jitter %v exceeds half a pixel", offset)
		}
	}
}

func TestCameraGetRay_Defocus(t *testing.T) {
	config := DefaultCameraConfig()
	config.DefocusAngle = 10
	config.FocusDistance = 3.4
	camera := NewCamera(config)
	sampler := core.NewSeededSampler(7)

	radius := config.FocusDistance * math.Tan(10*math.Pi/180/2)
	sawOffset := false

	for i := 0; i < 200; i++ {
		ray := camera.GetRay(100, 200, sampler)
		offset := ray.Origin.Subtract(camera.Center())
		if offset.Length() > radius+1e-12 {
			t.Fatalf("Lens sample %v outside disk of radius %f", offset, radius)
		}
		if math.Abs(offset.Dot(camera.w)) > 1e-12 {
			t.Fatalf("Lens sample %v should lie in the lens plane", offset)
		}
		if offset.Length() > 0 {
			sawOffset = true
		}
	}

	if !sawOffset {
		t.Error("Expected defocus to move ray origins off the camera center")
	}
}

func TestMergeCameraConfig(t *testing.T) {
	base := DefaultCameraConfig()
	override := CameraConfig{
		ImageWidth:      800,
		LookFrom:        core.NewVec3(-2, 2, 1),
		SamplesPerPixel: 100,
	}

	merged := MergeCameraConfig(base, override)

	if merged.ImageWidth != 800 || merged.SamplesPerPixel != 100 {
		t.Errorf("Overrides not applied: %+v", merged)
	}
	if !merged.LookFrom.Equals(core.NewVec3(-2, 2, 1)) {
		t.Errorf("Expected LookFrom override, got %v", merged.LookFrom)
	}
	if merged.AspectRatio != base.AspectRatio || merged.MaxDepth != base.MaxDepth || merged.VFov != base.VFov {
		t.Errorf("Zero fields should keep base values: %+v", merged)
	}
	if !merged.LookAt.Equals(base.LookAt) || !merged.Up.Equals(base.Up) {
		t.Errorf("Zero vectors should keep base values: %+v", merged)
	}
}
