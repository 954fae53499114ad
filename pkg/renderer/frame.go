package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/df07/go-monte-carlo-raytracer/pkg/core"
)

// Frame holds averaged linear pixel colors in row-major order, top row first
type Frame struct {
	Width  int
	Height int
	Pixels []core.Color
}

// NewFrame allocates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]core.Color, width*height),
	}
}

// Row returns the slice backing row y. Rows never overlap, so workers may fill distinct rows concurrently.
func (f *Frame) Row(y int) []core.Color {
	return f.Pixels[y*f.Width : (y+1)*f.Width]
}

// At returns the color of pixel (x, y)
func (f *Frame) At(x, y int) core.Color {
	return f.Pixels[y*f.Width+x]
}

// Set stores the color of pixel (x, y)
func (f *Frame) Set(x, y int, c core.Color) {
	f.Pixels[y*f.Width+x] = c
}

// WritePPM encodes the frame as a plain-text P3 image
func (f *Frame) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", f.Width, f.Height); err != nil {
		return fmt.Errorf("write ppm header: %w", err)
	}

	for _, pixel := range f.Pixels {
		if _, err := fmt.Fprintln(bw, pixel.ToByteString()); err != nil {
			return fmt.Errorf("write ppm pixel: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush ppm: %w", err)
	}
	return nil
}

// Image converts the frame to an RGBA image with the same gamma encoding as WritePPM
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			r, g, b := f.At(x, y).ToBytes()
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// Output formats accepted by Encode
const (
	FormatPPM = "ppm"
	FormatPNG = "png"
)

// Encode writes the frame in the named format
func (f *Frame) Encode(w io.Writer, format string) error {
	switch format {
	case FormatPPM:
		return f.WritePPM(w)
	case FormatPNG:
		if err := png.Encode(w, f.Image()); err != nil {
			return fmt.Errorf("encode png: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}
