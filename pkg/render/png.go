package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fogleman/gg"
)

// MaxPixels bounds the size of a rasterized floorplan.
const MaxPixels = 64 << 20

// RenderPNG rasterizes the scene and writes it to w as PNG.
func RenderPNG(w io.Writer, s Scene, opts ...Option) error {
	o := newOptions(opts...)
	width, height := s.Canvas(o.scale, o.margin)
	if width <= 0 || height <= 0 {
		return fmt.Errorf("empty canvas %dx%d", width, height)
	}
	if width*height > MaxPixels {
		return fmt.Errorf("canvas %dx%d exceeds %d pixels; lower the scale", width, height, MaxPixels)
	}

	dc := gg.NewContext(width, height)
	dc.SetHexColor(o.background)
	dc.Clear()

	dc.SetLineWidth(1)
	for _, p := range s.Placements {
		b := s.Frame(p, o.scale, o.margin)
		dc.DrawRectangle(float64(b.X), float64(b.Y), float64(b.W), float64(b.H))
		dc.SetHexColor(o.fill(p.Rect.Label))
		dc.FillPreserve()
		dc.SetHexColor(o.stroke)
		dc.Stroke()
		if o.labels {
			dc.DrawStringAnchored(strconv.Itoa(p.Rect.Label),
				float64(b.X)+float64(b.W)/2, float64(b.Y)+float64(b.H)/2, 0.5, 0.5)
		}
	}

	dc.SetLineWidth(2)
	dc.DrawRectangle(float64(o.margin), float64(o.margin),
		float64(s.Size.Width*o.scale), float64(s.Size.Height*o.scale))
	dc.Stroke()

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
