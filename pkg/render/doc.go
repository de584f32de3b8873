// Package render draws placed floorplans and slicing trees.
//
// # Overview
//
// This package turns the output of the coordinate pass into pictures:
//
//   - [RenderSVG] draws every leaf rectangle with github.com/ajstarks/svgo
//   - [RenderPNG] rasterizes the same scene with github.com/fogleman/gg
//   - [ToPDF] converts an SVG to PDF with the external rsvg-convert tool
//   - [ToDOT] and [RenderDOTSVG] draw the slicing tree itself with Graphviz
//
// # Coordinates
//
// Floorplan coordinates put the origin at the lower-left corner with y
// growing upward. Image coordinates grow downward, so every renderer flips
// the y axis through [Scene.Frame].
//
//	result, _ := runner.Layout(ctx, opts)
//	scene := render.NewScene(result.Size, opts.Origin, result.Placements)
//	var buf bytes.Buffer
//	err := render.RenderSVG(&buf, scene, render.WithScale(20), render.WithLabels())
package render
