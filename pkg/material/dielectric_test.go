package material

import (
	"fmt"
	"math"
	"testing"

	"github.com/df07/go-monte-carlo-raytracer/pkg/core"
)

var upNormal = core.NewVec3(0, 1, 0)

// incidentAt returns the unit direction arriving at angle degrees from the upward normal
func incidentAt(degrees float64) core.Vec3 {
	theta := degrees * math.Pi / 180
	return core.NewVec3(math.Sin(theta), -math.Cos(theta), 0)
}

func scatterAt(t *testing.T, d *Dielectric, degrees float64, frontFace bool, sampler core.Sampler) core.Vec3 {
	t.Helper()
	incoming := incidentAt(degrees)
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: upNormal, FrontFace: frontFace}

	result, ok := d.Scatter(core.NewRay(incoming.Negate(), incoming), hit, sampler)
	if !ok {
		t.Fatalf("%v degrees, front face %v: dielectric absorbed the ray", degrees, frontFace)
	}
	if !result.Attenuation.Equals(core.NewColor(1, 1, 1)) {
		t.Fatalf("Attenuation should be white, got %v", result.Attenuation)
	}
	if !result.Scattered.Origin.Equals(hit.Point) {
		t.Fatalf("Scattered ray should start at the hit point, got %v", result.Scattered.Origin)
	}
	return result.Scattered.Direction
}

func TestDielectric_NeverAbsorbs(t *testing.T) {
	sampler := core.NewSeededSampler(21)

	for _, index := range []float64{1.0, 1.33, 1.5, 2.4} {
		for _, frontFace := range []bool{true, false} {
			t.Run(fmt.Sprintf("index %v front %v", index, frontFace), func(t *testing.T) {
				d := NewDielectric(index)
				for degrees := 0.0; degrees < 90; degrees += 2.5 {
					for i := 0; i < 20; i++ {
						direction := scatterAt(t, d, degrees, frontFace, sampler)
						if math.Abs(direction.Length()-1) > 1e-9 {
							t.Fatalf("%v degrees: expected a unit direction, got length %v", degrees, direction.Length())
						}
					}
				}
			})
		}
	}
}

func TestDielectric_ScatterIsMirrorOrSnellRefraction(t *testing.T) {
	sampler := core.NewSeededSampler(8)

	for _, frontFace := range []bool{true, false} {
		d := NewDielectric(1.5)
		ratio := 1.5
		if frontFace {
			ratio = 1 / 1.5
		}

		for degrees := 0.0; degrees < 90; degrees += 5 {
			incoming := incidentAt(degrees)
			sinIn := math.Sin(degrees * math.Pi / 180)

			for i := 0; i < 20; i++ {
				direction := scatterAt(t, d, degrees, frontFace, sampler)
				if direction.Dot(upNormal) > 0 {
					if mirror := incoming.Reflect(upNormal); direction.Subtract(mirror).Length() > 1e-9 {
						t.Fatalf("%v degrees: reflection %v is not the mirror direction %v", degrees, direction, mirror)
					}
					continue
				}

				// Transmitted rays stay in the plane of incidence on the same side
				if direction.Z != 0 || direction.X < 0 {
					t.Fatalf("%v degrees: refracted ray %v left the plane of incidence", degrees, direction)
				}
				if sinOut := direction.X; math.Abs(sinOut-ratio*sinIn) > 1e-9 {
					t.Fatalf("%v degrees: sin out %v, expected %v", degrees, sinOut, ratio*sinIn)
				}
			}
		}
	}
}

func TestDielectric_TotalInternalReflectionPastCriticalAngle(t *testing.T) {
	d := NewDielectric(1.5)
	critical := math.Asin(1/1.5) * 180 / math.Pi
	// A sample near 1 only reflects when refraction is impossible
	sampler := &fixedSampler{values: []float64{0.999999}}

	for degrees := 0.0; degrees < 90; degrees += 1 {
		if math.Abs(degrees-critical) < 0.5 {
			continue
		}
		direction := scatterAt(t, d, degrees, false, sampler)
		reflected := direction.Dot(upNormal) > 0

		if degrees > critical && !reflected {
			t.Errorf("%v degrees past the critical angle %.1f should reflect internally", degrees, critical)
		}
		if degrees < critical && reflected {
			t.Errorf("%v degrees under the critical angle %.1f should refract", degrees, critical)
		}
	}

	// Entering the denser medium never meets the critical angle
	for degrees := 0.0; degrees < 90; degrees += 1 {
		if direction := scatterAt(t, d, degrees, true, sampler); direction.Dot(upNormal) >= 0 {
			t.Errorf("%v degrees entering glass should refract, got %v", degrees, direction)
		}
	}
}

func TestDielectric_ReflectionRateMatchesReflectance(t *testing.T) {
	d := NewDielectric(1.5)
	sampler := core.NewSeededSampler(17)
	const degrees, trials = 75.0, 20000

	reflected := 0
	for i := 0; i < trials; i++ {
		if scatterAt(t, d, degrees, true, sampler).Dot(upNormal) > 0 {
			reflected++
		}
	}

	want := Reflectance(math.Cos(degrees*math.Pi/180), 1/1.5)
	if got := float64(reflected) / trials; math.Abs(got-want) > 0.02 {
		t.Errorf("Reflected fraction %.3f, expected about %.3f", got, want)
	}
}

func TestReflectance_Properties(t *testing.T) {
	for _, ratio := range []float64{0.5, 1 / 1.5, 1, 1.5, 2.4} {
		r0 := (1 - ratio) / (1 + ratio)
		r0 *= r0

		if got := Reflectance(1, ratio); math.Abs(got-r0) > 1e-12 {
			t.Errorf("ratio %v: head-on reflectance %v, expected %v", ratio, got, r0)
		}
		if got := Reflectance(0, ratio); math.Abs(got-1) > 1e-12 {
			t.Errorf("ratio %v: grazing reflectance %v, expected 1", ratio, got)
		}
		if got, inverse := Reflectance(0.4, ratio), Reflectance(0.4, 1/ratio); math.Abs(got-inverse) > 1e-12 {
			t.Errorf("ratio %v: reflectance %v differs from inverse ratio %v", ratio, got, inverse)
		}

		previous := Reflectance(0, ratio)
		for cosine := 0.01; cosine <= 1; cosine += 0.01 {
			current := Reflectance(cosine, ratio)
			if current > previous+1e-12 {
				t.Fatalf("ratio %v: reflectance rose from %v to %v at cos %v", ratio, previous, current, cosine)
			}
			previous = current
		}
	}
}
