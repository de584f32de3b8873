package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo"
)

// RenderSVG writes the scene as an SVG document to w.
func RenderSVG(w io.Writer, s Scene, opts ...Option) error {
	o := newOptions(opts...)
	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)

	width, height := s.Canvas(o.scale, o.margin)
	canvas.Start(width, height)
	canvas.Title("floorplan")
	canvas.Rect(0, 0, width, height, "fill:"+o.background)

	canvas.Gid("leaves")
	for _, p := range s.Placements {
		b := s.Frame(p, o.scale, o.margin)
		style := fmt.Sprintf("fill:%s;stroke:%s;stroke-width:1", o.fill(p.Rect.Label), o.stroke)
		canvas.Rect(b.X, b.Y, b.W, b.H, `id="leaf-`+strconv.Itoa(p.Rect.Label)+`"`, style)
		if o.labels {
			canvas.Text(b.X+b.W/2, b.Y+b.H/2, strconv.Itoa(p.Rect.Label),
				"text-anchor:middle;dominant-baseline:central;font-family:monospace;font-size:12px;fill:"+o.stroke)
		}
	}
	canvas.Gend()

	bx, by := o.margin, o.margin
	canvas.Rect(bx, by, s.Size.Width*o.scale, s.Size.Height*o.scale,
		"fill:none;stroke:"+o.stroke+";stroke-width:2")
	canvas.End()

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}
