package scene

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/df07/go-monte-carlo-raytracer/pkg/renderer"
)

// Constructor builds a scene, applying the first camera override if one is given
type Constructor func(cameraOverrides ...renderer.CameraConfig) *Scene

type builtinScene struct {
	info        SceneInfo
	constructor Constructor
}

var builtins = []builtinScene{
	{
		info:        builtinInfo("default", "Default Scene", "Diffuse sphere on a huge ground sphere"),
		constructor: NewDefaultScene,
	},
	{
		info:        builtinInfo("materials", "Materials", "Glass bubble, diffuse and fuzzy metal spheres with depth of field"),
		constructor: NewMaterialsScene,
	},
	{
		info:        builtinInfo("plane", "Plane Ground", "Metal, glass and diffuse spheres on an infinite plane"),
		constructor: NewPlaneScene,
	},
	{
		info:        builtinInfo("spheregrid", "Sphere Grid", "10x10 grid of rainbow-colored spheres"),
		constructor: NewSphereGridScene,
	},
	{
		info: builtinInfo("random", "Random Spheres", "Hundreds of random small spheres around three large ones"),
		constructor: func(cameraOverrides ...renderer.CameraConfig) *Scene {
			return NewRandomScene(randomSceneSeed, cameraOverrides...)
		},
	},
}

func builtinInfo(id, name, description string) SceneInfo {
	return SceneInfo{
		ID:          id,
		Name:        name,
		DisplayName: name,
		Description: description,
		Group:       builtinGroup,
		Type:        "builtin",
	}
}

// BuiltinScenes returns metadata for every built-in scene in registration order
func BuiltinScenes() []SceneInfo {
	infos := make([]SceneInfo, 0, len(builtins))
	for _, b := range builtins {
		infos = append(infos, b.info)
	}
	return infos
}

// Load resolves a scene by built-in id, by "file:<name>" in the scenes directory,
// or by a path to a .json scene file.
func Load(id string, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	return LoadFrom("", id, cameraOverrides...)
}

// LoadFrom is Load with "file:" ids resolved against dir. An empty dir means FindScenesDir.
func LoadFrom(dir, id string, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	for _, b := range builtins {
		if b.info.ID == id {
			return b.constructor(cameraOverrides...), nil
		}
	}

	if strings.HasSuffix(id, ".json") {
		return LoadSceneFile(id, cameraOverrides...)
	}

	if name, ok := strings.CutPrefix(id, fileScenePrefix); ok {
		if dir == "" {
			dir = FindScenesDir()
		}
		if dir == "" {
			return nil, fmt.Errorf("%w %q: no scenes directory", ErrUnknownScene, id)
		}
		return LoadSceneFile(filepath.Join(dir, name+".json"), cameraOverrides...)
	}

	return nil, fmt.Errorf("%w %q", ErrUnknownScene, id)
}
