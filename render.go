package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-monte-carlo-raytracer/pkg/log"
	"github.com/df07/go-monte-carlo-raytracer/pkg/renderer"
	"github.com/df07/go-monte-carlo-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli"
)

// Render a scene and save the frame.
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	format := strings.ToLower(ctx.String("format"))
	if format != renderer.FormatPPM && format != renderer.FormatPNG {
		return fmt.Errorf("%w %q: use ppm or png", renderer.ErrUnknownFormat, format)
	}

	sc, err := createScene(ctx.String("scene"), renderer.CameraConfig{
		ImageWidth:      ctx.Int("width"),
		SamplesPerPixel: ctx.Int("spp"),
		MaxDepth:        ctx.Int("depth"),
	})
	if err != nil {
		return err
	}

	rt, err := sc.NewRaytracer(renderer.RenderConfig{
		NumWorkers: ctx.Int("workers"),
		Seed:       ctx.Int64("seed"),
	}, log.New("renderer"))
	if err != nil {
		return err
	}

	camera := rt.Camera()
	logger.Noticef("rendering scene %q at %dx%d", sc.Name, camera.ImageWidth, camera.ImageHeight)

	var bar *progressbar.ProgressBar
	if !ctx.Bool("no-progress") {
		bar = newProgressBar(os.Stderr, camera.ImageHeight)
		rt.SetProgressCallback(func(done, total int) {
			_ = bar.Set(done)
		})
	}

	frame, stats, err := rt.Render()
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", sc.Name, err)
	}

	path := ctx.String("out")
	if path == "" {
		path = outputPath(sc.Name, format, time.Now())
	}
	if err := saveFrame(frame, path, format); err != nil {
		return err
	}

	displayRenderStats(stats)
	logger.Noticef("render saved as %s", path)
	return nil
}

// createScene resolves a scene id with optional camera overrides
func createScene(id string, overrides renderer.CameraConfig) (*scene.Scene, error) {
	if id == "" {
		return nil, errors.New("missing scene name")
	}
	return scene.Load(id, overrides)
}

// outputPath returns output/<scene>/render_<timestamp>.<format>
func outputPath(sceneName, format string, now time.Time) string {
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", dirName(sceneName), fmt.Sprintf("render_%s.%s", timestamp, format))
}

// dirName turns a scene name into a lower-case directory name
func dirName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '/', '\\', ':':
			return '-'
		}
		return r
	}, name)
	if name == "" {
		return "scene"
	}
	return name
}

// saveFrame creates the parent directory of path and writes the encoded frame
func saveFrame(frame *renderer.Frame, path, format string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	if err := frame.Encode(file, format); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func newProgressBar(w io.Writer, rows int) *progressbar.ProgressBar {
	return progressbar.NewOptions(rows,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("rendering rows"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

func displayRenderStats(stats renderer.RenderStats) {
	logger.Noticef("render statistics\n%s", formatRenderStats(stats))
}

func formatRenderStats(stats renderer.RenderStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Resolution", "Samples/pixel", "Max depth", "Workers", "Seed", "Samples", "Samples/s", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d", stats.SamplesPerPixel),
		fmt.Sprintf("%d", stats.MaxDepth),
		fmt.Sprintf("%d", stats.NumWorkers),
		fmt.Sprintf("%d", stats.Seed),
		fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%.0f", stats.SamplesPerSecond()),
		stats.Duration.Round(time.Millisecond).String(),
	})
	table.Render()
	return buf.String()
}
