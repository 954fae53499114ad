package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/df07/go-monte-carlo-raytracer/pkg/renderer"
	"github.com/df07/go-monte-carlo-raytracer/pkg/scene"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene           string // Scene id (e.g., "default" or "file:glass-plane")
	Width           int    // Image width; the height follows the scene's aspect ratio. 0 keeps the scene's width
	SamplesPerPixel int    // Samples per pixel, 0 keeps the scene's value
	MaxDepth        int    // Maximum ray bounce depth, 0 keeps the scene's value
	Seed            int64  // Base random seed
	Format          string // "png" or "ppm"
}

var contentTypes = map[string]string{
	renderer.FormatPNG: "image/png",
	renderer.FormatPPM: "image/x-portable-pixmap",
}

// handleRender renders a scene to completion and responds with the encoded image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := s.loadScene(req.Scene, renderer.CameraConfig{
		ImageWidth:      req.Width,
		SamplesPerPixel: req.SamplesPerPixel,
		MaxDepth:        req.MaxDepth,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, scene.ErrUnknownScene) {
			status = http.StatusNotFound
		}
		writeError(w, status, err.Error())
		return
	}

	renderID := fmt.Sprintf("render-%d", s.renders.Add(1))
	raytracer, err := sceneObj.NewRaytracer(renderer.RenderConfig{Seed: req.Seed}, NewRenderLogger(renderID, logger))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	frame, stats, err := raytracer.Render()
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Render error: %v", err))
		return
	}
	logger.Infof("[%s] rendered %s at %dx%d in %s", renderID, sceneObj.Name, stats.Width, stats.Height, stats.Duration)

	var buf bytes.Buffer
	if err := frame.Encode(&buf, req.Format); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", contentTypes[req.Format])
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Id", renderID)
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	w.Header().Set("X-Render-Samples", strconv.Itoa(stats.TotalSamples))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logger.Warningf("[%s] failed to write image: %v", renderID, err)
	}
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: "default", Format: renderer.FormatPNG}

	if sceneName := query.Get("scene"); sceneName != "" {
		req.Scene = sceneName
	}
	if format := query.Get("format"); format != "" {
		req.Format = strings.ToLower(format)
	}
	if _, ok := contentTypes[req.Format]; !ok {
		return nil, fmt.Errorf("format must be png or ppm, got: %s", req.Format)
	}

	// Omitted values stay 0 so the scene's own camera settings apply
	var err error
	if req.Width, err = parseIntParam(query, "width", 0, minWidth, maxWidth); err != nil {
		return nil, err
	}
	if req.SamplesPerPixel, err = parseIntParam(query, "spp", 0, 1, maxSamples); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(query, "depth", 0, 1, maxDepth); err != nil {
		return nil, err
	}
	if req.Seed, err = parseInt64Param(query, "seed", renderer.DefaultRenderConfig().Seed); err != nil {
		return nil, err
	}

	// Performance warning
	if req.Width > 800 && req.SamplesPerPixel > 100 {
		logger.Warningf("large image with high samples may render slowly")
	}

	return req, nil
}
