package render

import (
	"fmt"
	"strings"

	"github.com/matzehuels/floorplan/pkg/floorplan"
)

// Format constants for output formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatPDF = "pdf"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG: true,
	FormatPNG: true,
	FormatPDF: true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: svg, png, pdf)", format)
	}
	return nil
}

// FormatFromPath infers the output format from a file extension.
func FormatFromPath(path string) (string, bool) {
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return "", false
	}
	ext := strings.ToLower(path[i+1:])
	return ext, ValidFormats[ext]
}

// Default drawing parameters.
const (
	DefaultScale      = 10
	DefaultMargin     = 10
	DefaultStroke     = "#333333"
	DefaultBackground = "#ffffff"
)

// DefaultPalette is cycled through by leaf label.
var DefaultPalette = []string{
	"#8dd3c7", "#ffffb3", "#bebada", "#fb8072", "#80b1d3",
	"#fdb462", "#b3de69", "#fccde5", "#d9d9d9", "#bc80bd",
}

// Scene is a placed floorplan ready to draw.
type Scene struct {
	Origin     floorplan.Point
	Size       floorplan.Size
	Placements []floorplan.Placement
}

// NewScene bundles the results of the dimension and coordinate passes.
func NewScene(size floorplan.Size, origin floorplan.Point, placements []floorplan.Placement) Scene {
	return Scene{Origin: origin, Size: size, Placements: placements}
}

// Box is a rectangle in image pixels, y growing downward.
type Box struct {
	X, Y, W, H int
}

// Frame maps p into image pixels for the given scale and margin.
func (s Scene) Frame(p floorplan.Placement, scale, margin int) Box {
	dx := p.X - s.Origin.X
	dy := p.Y - s.Origin.Y
	return Box{
		X: margin + dx*scale,
		Y: margin + (s.Size.Height-dy-p.Rect.Height)*scale,
		W: p.Rect.Width * scale,
		H: p.Rect.Height * scale,
	}
}

// Canvas returns the image size for the given scale and margin.
func (s Scene) Canvas(scale, margin int) (int, int) {
	return s.Size.Width*scale + 2*margin, s.Size.Height*scale + 2*margin
}

// Option configures rendering.
type Option func(*options)

type options struct {
	scale      int
	margin     int
	labels     bool
	stroke     string
	background string
	palette    []string
}

func newOptions(opts ...Option) options {
	o := options{
		scale:      DefaultScale,
		margin:     DefaultMargin,
		stroke:     DefaultStroke,
		background: DefaultBackground,
		palette:    DefaultPalette,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithScale sets the number of pixels per floorplan unit (default 10).
func WithScale(s int) Option {
	return func(o *options) {
		if s > 0 {
			o.scale = s
		}
	}
}

// WithMargin sets the blank border around the floorplan in pixels.
func WithMargin(m int) Option {
	return func(o *options) {
		if m >= 0 {
			o.margin = m
		}
	}
}

// WithLabels draws each leaf's label at its center.
func WithLabels() Option { return func(o *options) { o.labels = true } }

// WithStroke sets the outline color.
func WithStroke(c string) Option {
	return func(o *options) {
		if c != "" {
			o.stroke = c
		}
	}
}

// WithBackground sets the canvas color.
func WithBackground(c string) Option {
	return func(o *options) {
		if c != "" {
			o.background = c
		}
	}
}

// WithPalette sets the fill colors cycled through by leaf label.
func WithPalette(p []string) Option {
	return func(o *options) {
		if len(p) > 0 {
			o.palette = p
		}
	}
}

func (o options) fill(label int) string {
	if label < 0 {
		label = -label
	}
	return o.palette[label%len(o.palette)]
}
