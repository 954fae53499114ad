package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-monte-carlo-raytracer/pkg/core"
	"github.com/df07/go-monte-carlo-raytracer/pkg/geometry"
	"github.com/df07/go-monte-carlo-raytracer/pkg/material"
	"github.com/df07/go-monte-carlo-raytracer/pkg/renderer"
	"github.com/df07/go-monte-carlo-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType,omitempty"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// InspectResult contains the nearest hit of an inspection ray and the shape that produced it
type InspectResult struct {
	Hit       bool
	HitRecord *material.HitRecord
	Shape     geometry.Shape
}

func vec(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func hexColor(c core.Color) string {
	c = c.Clamp(core.NewInterval(0.0, 1.0)).Multiply(255)
	return fmt.Sprintf("#%02x%02x%02x", int(c.X), int(c.Y), int(c.Z))
}

// extractMaterialInfo describes a material with type assertions
func extractMaterialInfo(mat material.Material) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := mat.(type) {
	case *material.Lambertian:
		properties["albedo"] = vec(m.Albedo)
		properties["color"] = hexColor(m.Albedo)
		return "lambertian", properties

	case *material.Metal:
		properties["albedo"] = vec(m.Albedo)
		properties["color"] = hexColor(m.Albedo)
		properties["fuzzness"] = m.Fuzzness
		return "metal", properties

	case *material.Dielectric:
		properties["refractiveIndex"] = m.RefractiveIndex
		properties["color"] = "#ffffff" // Clear glass
		return "dielectric", properties

	default:
		return "unknown", properties
	}
}

// extractGeometryInfo describes a shape with type assertions
func extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = vec(geom.Center)
		properties["radius"] = geom.Radius
		return "sphere", properties

	case *geometry.Plane:
		properties["point"] = vec(geom.Point)
		properties["normal"] = vec(geom.Normal)
		return "plane", properties

	default:
		return "unknown", properties
	}
}

// inspectPixel casts an unjittered ray from the camera center through the center of pixel (row, col)
func inspectPixel(sceneObj *scene.Scene, row, col int) InspectResult {
	camera := sceneObj.Camera()
	origin := camera.Center()
	ray := core.NewRay(origin, camera.PixelCenter(row, col).Subtract(origin))

	// Same nearest-hit search as the world, keeping track of which shape won
	result := InspectResult{}
	rayT := core.HitRange
	for _, shape := range sceneObj.World.Shapes() {
		if hit, ok := shape.Hit(ray, rayT); ok {
			result = InspectResult{Hit: true, HitRecord: hit, Shape: shape}
			rayT = rayT.WithMax(hit.T)
		}
	}
	return result
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	sceneName := query.Get("scene")
	if sceneName == "" {
		sceneName = "default"
	}
	width, err := parseIntParam(query, "width", 0, minWidth, maxWidth)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(query.Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(query.Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	sceneObj, err := s.loadScene(sceneName, renderer.CameraConfig{ImageWidth: width})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	camera := sceneObj.Camera()
	if pixelX < 0 || pixelX >= camera.ImageWidth || pixelY < 0 || pixelY >= camera.ImageHeight {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	result := inspectPixel(sceneObj, pixelY, pixelX)
	if !result.Hit {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	materialType, materialProps := extractMaterialInfo(result.HitRecord.Material)
	geometryType, geometryProps := extractGeometryInfo(result.Shape)

	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		GeometryType: geometryType,
		Point:        vec(result.HitRecord.Point),
		Normal:       vec(result.HitRecord.Normal),
		Distance:     result.HitRecord.T,
		FrontFace:    result.HitRecord.FrontFace,
		Properties: map[string]interface{}{
			"material": materialProps,
			"geometry": geometryProps,
		},
	})
}
