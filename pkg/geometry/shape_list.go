package geometry

import (
	"github.com/df07/go-monte-carlo-raytracer/pkg/core"
	"github.com/df07/go-monte-carlo-raytracer/pkg/material"
)

// ShapeList is a world made of shapes tested in order.
// It is built before rendering and only read afterwards, so it is safe to share between workers.
type ShapeList struct {
	shapes []Shape
}

// NewShapeList creates a list holding the given shapes
func NewShapeList(shapes ...Shape) *ShapeList {
	return &ShapeList{shapes: append([]Shape(nil), shapes...)}
}

// Add appends a shape to the list
func (l *ShapeList) Add(shape Shape) {
	l.shapes = append(l.shapes, shape)
}

// Len returns the number of shapes
func (l *ShapeList) Len() int {
	return len(l.shapes)
}

// Shapes returns the shapes in insertion order
func (l *ShapeList) Shapes() []Shape {
	return l.shapes
}

// Hit returns the closest hit across every shape.
// Each hit narrows the search interval so later shapes must be closer to win.
func (l *ShapeList) Hit(ray core.Ray, rayT core.Interval[float64]) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := rayT.Max

	for _, shape := range l.shapes {
		if hit, ok := shape.Hit(ray, rayT.WithMax(closestSoFar)); ok {
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, closest != nil
}
