package floorplan

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// ErrMissingChild marks a cut with a nil child. The missing side contributes
// a zero size to the bounding box.
var ErrMissingChild = errors.New("cut has a missing child")

// Combine returns the bounding box of two subtrees joined by a cut of kind k.
func Combine(k Kind, left, right Size) Size {
	if k == Vertical {
		return Size{
			Width:  left.Width + right.Width,
			Height: max(left.Height, right.Height),
		}
	}
	return Size{
		Width:  max(left.Width, right.Width),
		Height: left.Height + right.Height,
	}
}

// ComputeDimensions computes, post-order, the bounding box of every cut
// under n and stores it on the cut. It returns the size of n itself.
//
// Running it again on the same tree stores identical boxes.
func ComputeDimensions(n Node) (Size, error) {
	d := dimensioner{}
	size := d.visit(n)
	return size, d.err
}

// WriteDimensions runs [ComputeDimensions] and writes one line per node in
// post-order: leaves as label(width,height), cuts as K(width,height).
func WriteDimensions(w io.Writer, n Node) (Size, error) {
	bw := bufio.NewWriter(w)
	d := dimensioner{emit: func(n Node, s Size) {
		switch n := n.(type) {
		case *Leaf:
			fmt.Fprintln(bw, n.Rect)
		case *Cut:
			fmt.Fprintf(bw, "%s%s\n", n.Kind, s)
		}
	}}
	size := d.visit(n)
	if err := bw.Flush(); err != nil {
		return size, fmt.Errorf("write dimensions: %w", err)
	}
	return size, d.err
}

type dimensioner struct {
	emit func(Node, Size)
	err  error
}

func (d *dimensioner) visit(n Node) Size {
	if isNil(n) {
		return Size{}
	}
	switch n := n.(type) {
	case *Leaf:
		s := n.Rect.Size()
		d.report(n, s)
		return s
	case *Cut:
		if isNil(n.Left) || isNil(n.Right) {
			d.fail(fmt.Errorf("%w: %s cut", ErrMissingChild, n.Kind))
		}
		left := d.visit(n.Left)
		right := d.visit(n.Right)
		s := Combine(n.Kind, left, right)
		n.bbox = &Rect{Label: NoLabel, Width: s.Width, Height: s.Height}
		d.report(n, s)
		return s
	}
	return Size{}
}

func (d *dimensioner) report(n Node, s Size) {
	if d.emit != nil {
		d.emit(n, s)
	}
}

func (d *dimensioner) fail(err error) {
	if d.err == nil {
		d.err = err
	}
}
