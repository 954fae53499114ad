package core

import (
	"fmt"
	"math"
)

// nearZeroEpsilon is the per-component magnitude below which a vector is treated as zero
const nearZeroEpsilon = 1e-8

// Vec3 represents a 3D vector. It doubles as a point, a direction and a linear RGB color.
type Vec3 struct {
	X, Y, Z float64
}

// Color is a linear RGB color stored in a Vec3
type Color = Vec3

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// NewColor creates a new linear RGB color
func NewColor(r, g, b float64) Color {
	return Vec3{X: r, Y: g, Z: b}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// AddScalar adds s to every component
func (v Vec3) AddScalar(s float64) Vec3 {
	return Vec3{v.X + s, v.Y + s, v.Z + s}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// SubtractScalar subtracts s from every component
func (v Vec3) SubtractScalar(s float64) Vec3 {
	return Vec3{v.X - s, v.Y - s, v.Z - s}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
	}
}

// Divide returns the vector divided by a scalar
func (v Vec3) Divide(scalar float64) Vec3 {
	return Vec3{v.X / scalar, v.Y / scalar, v.Z / scalar}
}

// DivideVec returns component-wise division of two vectors
func (v Vec3) DivideVec(other Vec3) Vec3 {
	return Vec3{
		X: v.X / other.X,
		Y: v.Y / other.Y,
		Z: v.Z / other.Z,
	}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
	}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Normalize returns a unit vector in the same direction
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{0, 0, 0}
	}
	return v.Divide(length)
}

// NearZero reports whether every component is close to zero
func (v Vec3) NearZero() bool {
	return math.Abs(v.X) < nearZeroEpsilon &&
		math.Abs(v.Y) < nearZeroEpsilon &&
		math.Abs(v.Z) < nearZeroEpsilon
}

// Equals reports exact component equality
func (v Vec3) Equals(other Vec3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// Reflect mirrors v about the surface normal n: v - 2*dot(v,n)*n
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract bends the unit vector v through a surface with normal n using Snell's law.
// etaRatio is the ratio of the incident to the transmitted refractive index.
func (v Vec3) Refract(n Vec3, etaRatio float64) Vec3 {
	cosTheta := math.Min(v.Negate().Dot(n), 1.0)
	rOutPerp := v.Add(n.Multiply(cosTheta)).Multiply(etaRatio)
	// abs guards against tiny negative values at grazing angles
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// LinearToGamma applies gamma 2 encoding to a linear color
func (v Vec3) LinearToGamma() Vec3 {
	return Vec3{
		X: linearToGamma(v.X),
		Y: linearToGamma(v.Y),
		Z: linearToGamma(v.Z),
	}
}

func linearToGamma(component float64) float64 {
	if component > 0 {
		return math.Sqrt(component)
	}
	return 0
}

// Clamp returns a vector with components clamped to the interval
func (v Vec3) Clamp(interval Interval[float64]) Vec3 {
	return Vec3{
		X: interval.Clamp(v.X),
		Y: interval.Clamp(v.Y),
		Z: interval.Clamp(v.Z),
	}
}

// ToBytes gamma-encodes a linear color and quantizes each channel to [0, 255].
// Channels are clamped to [0, 0.999] first so the scaled value never reaches 256.
func (v Vec3) ToBytes() (r, g, b uint8) {
	c := v.LinearToGamma().Clamp(OutputIntensity)
	return uint8(c.X * 255.999), uint8(c.Y * 255.999), uint8(c.Z * 255.999)
}

// ToByteString formats the color as an "r g b" triple of 8-bit integers
func (v Vec3) ToByteString() string {
	r, g, b := v.ToBytes()
	return fmt.Sprintf("%d %d %d", r, g, b)
}

// String implements fmt.Stringer
func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// Lerp linearly interpolates from a to b: (1-t)*a + t*b
func Lerp(a, b Vec3, t float64) Vec3 {
	return a.Multiply(1.0 - t).Add(b.Multiply(t))
}

// Vec2 represents a 2D vector, mostly used for sample pairs
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a new Vec2
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}
