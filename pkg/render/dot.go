package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/floorplan/pkg/floorplan"
)

// ToDOT returns a Graphviz DOT representation of the slicing tree.
//
// Node representation:
//   - Cuts: labeled with their kind, ellipse shape; measured cuts also show
//     their bounding box, e.g. "V (6,3)"
//   - Leaves: labeled label(width,height), rounded box shape, filled with the
//     palette color of their label
//
// Edges are labeled L and R so the child order survives layout.
func ToDOT(root floorplan.Node) string {
	var buf bytes.Buffer
	buf.WriteString("digraph Floorplan {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=14, style=filled, fillcolor=white];\n")
	buf.WriteString("  edge [arrowhead=none, fontsize=10];\n\n")

	if root != nil {
		writeDOTNode(&buf, root, 0)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeDOTNode(buf *bytes.Buffer, n floorplan.Node, id int) int {
	nodeID := fmt.Sprintf("n%d", id)
	next := id + 1

	switch n := n.(type) {
	case *floorplan.Leaf:
		fill := DefaultPalette[n.Rect.Label%len(DefaultPalette)]
		fmt.Fprintf(buf, "  %s [label=%q, shape=box, style=\"filled,rounded\", fillcolor=%q];\n", nodeID, n.Rect.String(), fill)

	case *floorplan.Cut:
		label := n.Kind.String()
		if bbox, ok := n.BBox(); ok {
			label += " " + bbox.Size().String()
		}
		fmt.Fprintf(buf, "  %s [label=%q, shape=ellipse];\n", nodeID, label)
		for _, c := range []struct {
			side  string
			child floorplan.Node
		}{{"L", n.Left}, {"R", n.Right}} {
			if c.child == nil {
				continue
			}
			fmt.Fprintf(buf, "  %s -> n%d [label=%q];\n", nodeID, next, c.side)
			next = writeDOTNode(buf, c.child, next)
		}
	}

	return next
}

// RenderDOTSVG renders a DOT graph to SVG using Graphviz.
func RenderDOTSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
