package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	builtinGroup    = "Built-in Scenes"
	fileGroup       = "Scene Files"
	fileScenePrefix = "file:"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Scene name
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Type        string `json:"type"`        // "builtin" or "file"
	FilePath    string `json:"filePath"`    // Path to scene file (file type only)
	Variant     string `json:"variant"`     // Variant name (optional)
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

// FindScenesDir returns the first existing scenes directory, or "" if there is none
func FindScenesDir() string {
	for _, path := range []string{"scenes", "../scenes"} {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return path
		}
	}
	return ""
}

// ListFileScenes scans dir for JSON scene files. An empty dir means FindScenesDir.
func ListFileScenes(dir string) ([]SceneInfo, error) {
	if dir == "" {
		dir = FindScenesDir()
	}
	if dir == "" {
		// No scenes directory found, return empty list
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := []SceneInfo{}
	for _, filePath := range files {
		sceneInfo, err := ParseSceneMetadata(filePath)
		if err != nil {
			logger.Warningf("failed to parse metadata for %s: %v", filePath, err)
			continue
		}
		scenes = append(scenes, sceneInfo)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})

	return scenes, nil
}

// ParseSceneMetadata extracts the name, description, group and variant of a scene file.
// A file that cannot be opened keeps the values derived from its filename.
func ParseSceneMetadata(filePath string) (SceneInfo, error) {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	sceneInfo := SceneInfo{
		ID:          fileScenePrefix + nameWithoutExt,
		Name:        titleCase(nameWithoutExt),
		DisplayName: titleCase(nameWithoutExt),
		Group:       fileGroup,
		Type:        "file",
		FilePath:    filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return sceneInfo, nil
	}

	var header struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Group       string `json:"group"`
		Variant     string `json:"variant"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return sceneInfo, fmt.Errorf("parse %s: %w", filePath, err)
	}

	if name := strings.TrimSpace(header.Name); name != "" {
		sceneInfo.Name = name
	}
	if group := strings.TrimSpace(header.Group); group != "" {
		sceneInfo.Group = group
	}
	sceneInfo.Description = strings.TrimSpace(header.Description)
	sceneInfo.Variant = strings.TrimSpace(header.Variant)

	if sceneInfo.Variant != "" {
		sceneInfo.DisplayName = fmt.Sprintf("%s - %s", sceneInfo.Name, sceneInfo.Variant)
	} else {
		sceneInfo.DisplayName = sceneInfo.Name
	}

	return sceneInfo, nil
}

// ListAllScenes returns both built-in and file scenes, grouped by category
func ListAllScenes(dir string) (ScenesResponse, error) {
	var response ScenesResponse

	fileScenes, err := ListFileScenes(dir)
	if err != nil {
		return response, fmt.Errorf("failed to list scene files: %w", err)
	}

	allScenes := append(BuiltinScenes(), fileScenes...)

	groupMap := make(map[string][]SceneInfo)
	for _, scene := range allScenes {
		groupMap[scene.Group] = append(groupMap[scene.Group], scene)
	}

	// Built-in first, then alphabetical
	var groupNames []string
	for groupName := range groupMap {
		if groupName != builtinGroup {
			groupNames = append(groupNames, groupName)
		}
	}
	sort.Strings(groupNames)

	if builtInGroup, exists := groupMap[builtinGroup]; exists {
		response.Groups = append(response.Groups, SceneGroup{
			Name:   builtinGroup,
			Scenes: builtInGroup,
		})
	}

	for _, groupName := range groupNames {
		response.Groups = append(response.Groups, SceneGroup{
			Name:   groupName,
			Scenes: groupMap[groupName],
		})
	}

	return response, nil
}

// titleCase converts a filename-style string to title case
// e.g., "glass-plane" -> "Glass Plane"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
