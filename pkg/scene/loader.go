package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-monte-carlo-raytracer/pkg/core"
	"github.com/df07/go-monte-carlo-raytracer/pkg/geometry"
	"github.com/df07/go-monte-carlo-raytracer/pkg/material"
	"github.com/df07/go-monte-carlo-raytracer/pkg/renderer"
)

// vec3 is a JSON [x, y, z] triple
type vec3 [3]float64

func (v vec3) toVec3() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// sceneFile is the on-disk JSON scene description
type sceneFile struct {
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Group       string                  `json:"group"`
	Variant     string                  `json:"variant"`
	Camera      cameraFile              `json:"camera"`
	Materials   map[string]materialFile `json:"materials"`
	Objects     []objectFile            `json:"objects"`
}

// cameraFile holds camera settings. Fields absent from the file are nil and keep their defaults,
// so explicit zeros such as "lookAt": [0, 0, 0] are honoured.
type cameraFile struct {
	AspectRatio     *float64 `json:"aspectRatio"`
	ImageWidth      *int     `json:"imageWidth"`
	VFov            *float64 `json:"vfov"`
	LookFrom        *vec3    `json:"lookFrom"`
	LookAt          *vec3    `json:"lookAt"`
	Up              *vec3    `json:"up"`
	DefocusAngle    *float64 `json:"defocusAngle"`
	FocusDistance   *float64 `json:"focusDistance"`
	SamplesPerPixel *int     `json:"samplesPerPixel"`
	MaxDepth        *int     `json:"maxDepth"`
}

type materialFile struct {
	Type            string  `json:"type"` // lambertian, metal or dielectric
	Albedo          vec3    `json:"albedo"`
	Fuzz            float64 `json:"fuzz"`
	RefractiveIndex float64 `json:"refractiveIndex"`
}

type objectFile struct {
	Type     string  `json:"type"` // sphere or plane
	Material string  `json:"material"`
	Center   vec3    `json:"center"`
	Radius   float64 `json:"radius"`
	Point    vec3    `json:"point"`
	Normal   vec3    `json:"normal"`
}

// apply copies the settings present in the file over base
func (c cameraFile) apply(base renderer.CameraConfig) renderer.CameraConfig {
	config := base
	setFloat := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setInt := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	setVec := func(dst *core.Vec3, src *vec3) {
		if src != nil {
			*dst = src.toVec3()
		}
	}

	setFloat(&config.AspectRatio, c.AspectRatio)
	setInt(&config.ImageWidth, c.ImageWidth)
	setFloat(&config.VFov, c.VFov)
	setVec(&config.LookFrom, c.LookFrom)
	setVec(&config.LookAt, c.LookAt)
	setVec(&config.Up, c.Up)
	setFloat(&config.DefocusAngle, c.DefocusAngle)
	setFloat(&config.FocusDistance, c.FocusDistance)
	setInt(&config.SamplesPerPixel, c.SamplesPerPixel)
	setInt(&config.MaxDepth, c.MaxDepth)
	return config
}

// LoadSceneFile reads a JSON scene file. The scene is named after the file when the file has no name.
func LoadSceneFile(path string, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene file: %w", err)
	}
	defer file.Close()

	s, err := ParseScene(file, cameraOverrides...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// ParseScene builds a scene from its JSON description.
// Objects that name the same material share a single material instance.
func ParseScene(r io.Reader, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	var desc sceneFile
	if err := json.NewDecoder(r).Decode(&desc); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}

	defaults := desc.Camera.apply(renderer.DefaultCameraConfig())
	s := newScene(desc.Name, defaults, cameraOverrides)

	materials := make(map[string]material.Material, len(desc.Materials))
	for id, m := range desc.Materials {
		mat, err := m.build()
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", id, err)
		}
		materials[id] = mat
	}

	for i, obj := range desc.Objects {
		mat, ok := materials[obj.Material]
		if !ok {
			return nil, fmt.Errorf("object %d: %w %q", i, ErrUnknownMaterial, obj.Material)
		}

		shape, err := obj.build(mat)
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		s.Add(shape)
	}

	return s, nil
}

func (m materialFile) build() (material.Material, error) {
	switch strings.ToLower(m.Type) {
	case "lambertian":
		return material.NewLambertian(m.Albedo.toVec3()), nil
	case "metal":
		return material.NewMetal(m.Albedo.toVec3(), m.Fuzz), nil
	case "dielectric":
		if m.RefractiveIndex == 0 {
			return nil, fmt.Errorf("%w: dielectric needs a refractive index", ErrUnknownMaterial)
		}
		return material.NewDielectric(m.RefractiveIndex), nil
	default:
		return nil, fmt.Errorf("%w type %q", ErrUnknownMaterial, m.Type)
	}
}

func (o objectFile) build(mat material.Material) (geometry.Shape, error) {
	switch strings.ToLower(o.Type) {
	case "sphere":
		if o.Radius == 0 {
			return nil, fmt.Errorf("%w: sphere radius must be non-zero", ErrInvalidObject)
		}
		return geometry.NewSphere(o.Center.toVec3(), o.Radius, mat), nil
	case "plane":
		normal := o.Normal.toVec3()
		if normal.NearZero() {
			return nil, fmt.Errorf("%w: plane normal must be non-zero", ErrInvalidObject)
		}
		return geometry.NewPlane(o.Point.toVec3(), normal, mat), nil
	default:
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidObject, o.Type)
	}
}
