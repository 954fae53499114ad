package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync/atomic"

	"github.com/df07/go-monte-carlo-raytracer/pkg/log"
	"github.com/df07/go-monte-carlo-raytracer/pkg/renderer"
	"github.com/df07/go-monte-carlo-raytracer/pkg/scene"
)

var logger = log.New("server")

// Request limits shared by the render and inspect endpoints
const (
	minWidth   = 16
	maxWidth   = 2000
	maxSamples = 10000
	maxDepth   = 200
)

// Server handles web requests for the raytracer
type Server struct {
	port      int
	scenesDir string
	renders   atomic.Int64
}

// NewServer creates a new web server. An empty scenesDir searches ./scenes and ../scenes.
func NewServer(port int, scenesDir string) *Server {
	return &Server{port: port, scenesDir: scenesDir}
}

// Handler returns the routes served by the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	logger.Noticef("starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists built-in and file scenes grouped by category
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	response, err := scene.ListAllScenes(s.scenesDir)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// handleSceneConfig returns the camera configuration of a scene together with request limits
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = "default"
	}

	sceneObj, err := s.loadScene(sceneName)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	config := sceneObj.CameraConfig
	response := map[string]interface{}{
		"scene": sceneName,
		"defaults": map[string]interface{}{
			"width":           config.ImageWidth,
			"aspectRatio":     config.AspectRatio,
			"samplesPerPixel": config.SamplesPerPixel,
			"maxDepth":        config.MaxDepth,
			"vfov":            config.VFov,
			"defocusAngle":    config.DefocusAngle,
			"focusDistance":   config.FocusDistance,
		},
		"limits": map[string]interface{}{
			"width":           map[string]int{"min": minWidth, "max": maxWidth},
			"samplesPerPixel": map[string]int{"min": 1, "max": maxSamples},
			"maxDepth":        map[string]int{"min": 1, "max": maxDepth},
		},
	}

	writeJSON(w, http.StatusOK, response)
}

// loadScene resolves a scene id, looking up "file:" ids in the configured scenes directory
func (s *Server) loadScene(id string, overrides ...renderer.CameraConfig) (*scene.Scene, error) {
	return scene.LoadFrom(s.scenesDir, id, overrides...)
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseInt64Param parses an unbounded 64-bit integer parameter from URL query
func parseInt64Param(values url.Values, key string, defaultValue int64) (int64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warningf("failed to write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
