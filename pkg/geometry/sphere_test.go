package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-monte-carlo-raytracer/pkg/core"
	"github.com/df07/go-monte-carlo-raytracer/pkg/material"
)

var defaultRange = core.NewInterval(0.001, 1000.0)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, DummyMaterial{})
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, defaultRange)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, DummyMaterial{})

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:           "unnormalized direction",
			rayOrigin:      core.NewVec3(0, 0, 3),
			rayDirection:   core.NewVec3(0, 0, -2),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, defaultRange)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}

			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}

			if hit.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_GlancingHit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, DummyMaterial{})
	ray := core.NewRay(core.NewVec3(1, 0, 2), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, defaultRange)
	if !isHit {
		t.Fatal("Expected glancing hit, but got miss")
	}

	expectedPoint := core.NewVec3(1, 0, 0)
	if hit.Point.Subtract(expectedPoint).Length() > 1e-9 {
		t.Errorf("Expected hit point %v, got %v", expectedPoint, hit.Point)
	}
}

func TestSphere_Roots(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -1), 0.5, DummyMaterial{})

	t.Run("through the center", func(t *testing.T) {
		t0, t1, ok := sphere.Roots(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)))
		if !ok {
			t.Fatal("Expected two roots")
		}
		if math.Abs(t0-0.5) > 1e-12 || math.Abs(t1-1.5) > 1e-12 {
			t.Errorf("Expected roots (0.5, 1.5), got (%f, %f)", t0, t1)
		}
		// symmetric about the center's parameter
		if math.Abs((t0+t1)/2-1.0) > 1e-12 {
			t.Errorf("Roots should be symmetric about t=1, got (%f, %f)", t0, t1)
		}
	})

	t.Run("tangent has a single root", func(t *testing.T) {
		t0, t1, ok := sphere.Roots(core.NewRay(core.NewVec3(0.5, 0, 0), core.NewVec3(0, 0, -1)))
		if !ok {
			t.Fatal("Expected a tangent root")
		}
		if t0 != t1 {
			t.Errorf("Tangent roots should coincide, got (%f, %f)", t0, t1)
		}
	})

	t.Run("miss", func(t *testing.T) {
		if _, _, ok := sphere.Roots(core.NewRay(core.NewVec3(0, 2, 0), core.NewVec3(0, 0, -1))); ok {
			t.Error("Expected no roots")
		}
	})
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, DummyMaterial{})
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	// Test tMax bound
	hit, isHit := sphere.Hit(ray, core.NewInterval(0.001, 0.5))
	if isHit {
		t.Errorf("Expected miss due to tMax bound, but got hit at t=%f", hit.T)
	}

	// Test tMin bound
	hit, isHit = sphere.Hit(ray, core.NewInterval(3.5, 1000.0))
	if isHit {
		t.Errorf("Expected miss due to tMin bound, but got hit at t=%f", hit.T)
	}

	// Bounds are exclusive
	hit, isHit = sphere.Hit(ray, core.NewInterval(0.001, 1.0))
	if isHit {
		t.Errorf("Expected miss at the exclusive tMax, but got hit at t=%f", hit.T)
	}

	// Near root excluded, far root accepted
	hit, isHit = sphere.Hit(ray, core.NewInterval(1.5, 1000.0))
	if !isHit || math.Abs(hit.T-3.0) > 1e-9 {
		t.Fatalf("Expected far root at t=3, got %v %v", hit, isHit)
	}
	if hit.FrontFace {
		t.Error("Far root should be a back face hit")
	}
}

func TestSphere_Hit_ClosestIntersection(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, DummyMaterial{})
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, defaultRange)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	expectedT := 1.0
	if math.Abs(hit.T-expectedT) > 1e-9 {
		t.Errorf("Expected closest intersection at t=%f, got t=%f", expectedT, hit.T)
	}

	if !hit.FrontFace {
		t.Error("Expected closest intersection to be front face")
	}
}

func TestSphere_Hit_CarriesMaterial(t *testing.T) {
	mat := material.NewLambertian(core.NewColor(0.1, 0.2, 0.5))
	sphere := NewSphere(core.NewVec3(0, 0, -1), 0.5, mat)

	hit, isHit := sphere.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), defaultRange)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if hit.Material != material.Material(mat) {
		t.Errorf("Hit record should reference the sphere's material")
	}
	if math.Abs(hit.Normal.Length()-1) > 1e-12 {
		t.Errorf("Normal should be unit length, got %f", hit.Normal.Length())
	}
}
