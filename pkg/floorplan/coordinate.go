package floorplan

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// ErrNotMeasured is returned when coordinates are requested for a cut that
// the dimension pass has not visited.
var ErrNotMeasured = errors.New("cut has no bounding box; run ComputeDimensions first")

// Placement is a leaf rectangle at its absolute lower-left origin.
type Placement struct {
	Rect Rect
	X    int
	Y    int
}

// Origin returns the placement origin as a point.
func (p Placement) Origin() Point { return Point{X: p.X, Y: p.Y} }

// Contains reports whether p lies entirely inside the box of size s at o.
func (p Placement) Contains(o Point, s Size) bool {
	return p.X >= o.X && p.Y >= o.Y &&
		p.X+p.Rect.Width <= o.X+s.Width &&
		p.Y+p.Rect.Height <= o.Y+s.Height
}

// Overlaps reports whether p and q share a region of positive area.
func (p Placement) Overlaps(q Placement) bool {
	return p.X < q.X+q.Rect.Width && q.X < p.X+p.Rect.Width &&
		p.Y < q.Y+q.Rect.Height && q.Y < p.Y+p.Rect.Height
}

// String formats p as label((width,height)(x,y)).
func (p Placement) String() string {
	return fmt.Sprintf("%d(%s%s)", p.Rect.Label, p.Rect.Size(), p.Origin())
}

// ChildOrigins returns the origins of the left and right subtrees of a cut
// of kind k placed at o. A vertical cut shifts the right child by the left
// width; a horizontal cut lifts the left child above the right one.
func ChildOrigins(k Kind, o Point, left, right Size) (Point, Point) {
	if k == Vertical {
		return o, Point{X: o.X + left.Width, Y: o.Y}
	}
	return Point{X: o.X, Y: o.Y + right.Height}, o
}

// ComputeCoordinates places every leaf under n, pre-order, with n's
// lower-left corner at origin. The dimension pass must have run.
//
// Children without a size (nil or unmeasured cuts) are skipped.
func ComputeCoordinates(n Node, origin Point) ([]Placement, error) {
	var out []Placement
	err := placeTree(n, origin, func(p Placement) { out = append(out, p) })
	return out, err
}

// WriteCoordinates writes label((width,height)(x,y)) for every leaf under n
// in pre-order.
func WriteCoordinates(w io.Writer, n Node, origin Point) error {
	bw := bufio.NewWriter(w)
	err := placeTree(n, origin, func(p Placement) { fmt.Fprintln(bw, p) })
	if err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write coordinates: %w", err)
	}
	return nil
}

func placeTree(n Node, origin Point, emit func(Placement)) error {
	if isNil(n) {
		return nil
	}
	if c, ok := n.(*Cut); ok && !c.Measured() {
		return ErrNotMeasured
	}
	place(n, origin, emit)
	return nil
}

func place(n Node, o Point, emit func(Placement)) {
	switch n := n.(type) {
	case *Leaf:
		emit(Placement{Rect: n.Rect, X: o.X, Y: o.Y})
	case *Cut:
		left, lok := SizeOf(n.Left)
		right, rok := SizeOf(n.Right)
		lo, ro := ChildOrigins(n.Kind, o, left, right)
		if lok {
			place(n.Left, lo, emit)
		}
		if rok {
			place(n.Right, ro, emit)
		}
	}
}
