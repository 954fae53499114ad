package server

import (
	"fmt"

	"github.com/df07/go-monte-carlo-raytracer/pkg/core"
)

// RenderLogger implements core.Logger by tagging every message with the render it belongs to
type RenderLogger struct {
	renderID string
	base     core.Logger
}

// NewRenderLogger creates a logger for a specific render
func NewRenderLogger(renderID string, base core.Logger) *RenderLogger {
	if base == nil {
		base = core.NopLogger{}
	}
	return &RenderLogger{
		renderID: renderID,
		base:     base,
	}
}

func (rl *RenderLogger) Debugf(format string, args ...interface{}) {
	rl.base.Debugf(rl.tag(format), args...)
}

func (rl *RenderLogger) Infof(format string, args ...interface{}) {
	rl.base.Infof(rl.tag(format), args...)
}

func (rl *RenderLogger) Noticef(format string, args ...interface{}) {
	rl.base.Noticef(rl.tag(format), args...)
}

func (rl *RenderLogger) Warningf(format string, args ...interface{}) {
	rl.base.Warningf(rl.tag(format), args...)
}

func (rl *RenderLogger) tag(format string) string {
	return fmt.Sprintf("[%s] %s", rl.renderID, format)
}
