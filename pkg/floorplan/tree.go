package floorplan

import "fmt"

// NoLabel is the label carried by synthesized bounding boxes.
const NoLabel = 0

// Kind is the orientation of a cut.
type Kind byte

const (
	// Vertical places the children side by side along the x axis.
	Vertical Kind = 'V'
	// Horizontal stacks the children along the y axis.
	Horizontal Kind = 'H'
)

// String returns the single-character marker used in the text format.
func (k Kind) String() string {
	switch k {
	case Vertical, Horizontal:
		return string(rune(k))
	default:
		return fmt.Sprintf("Kind(%d)", byte(k))
	}
}

// ParseKind reports the cut kind denoted by s, which must be exactly "V" or "H".
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "V":
		return Vertical, true
	case "H":
		return Horizontal, true
	}
	return 0, false
}

// Rect is a labeled rectangle. Leaf rectangles are created at parse time;
// cut bounding boxes are synthesized with [NoLabel].
type Rect struct {
	Label  int
	Width  int
	Height int
}

// Size returns the width and height of r.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// String formats r as label(width,height).
func (r Rect) String() string {
	return fmt.Sprintf("%d(%d,%d)", r.Label, r.Width, r.Height)
}

// Size is a width and height pair.
type Size struct {
	Width  int
	Height int
}

// String formats s as (width,height).
func (s Size) String() string {
	return fmt.Sprintf("(%d,%d)", s.Width, s.Height)
}

// Point is a lower-left placement origin.
type Point struct {
	X int
	Y int
}

// String formats p as (x,y).
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Node is a floorplan tree node: either a *[Leaf] or a *[Cut].
// The set of implementations is closed.
type Node interface {
	node()
}

// Leaf is a tree leaf owning a single rectangle.
type Leaf struct {
	Rect Rect
}

func (*Leaf) node() {}

// Cut is an internal node dividing its area between Left and Right.
type Cut struct {
	Kind  Kind
	Left  Node
	Right Node

	bbox *Rect
}

func (*Cut) node() {}

// NewLeaf returns a leaf holding label(width,height).
func NewLeaf(label, width, height int) *Leaf {
	return &Leaf{Rect: Rect{Label: label, Width: width, Height: height}}
}

// NewCut returns an unmeasured cut over left and right.
func NewCut(kind Kind, left, right Node) *Cut {
	return &Cut{Kind: kind, Left: left, Right: right}
}

// BBox returns the bounding box computed by the dimension pass.
// The boolean is false until [ComputeDimensions] has visited c.
func (c *Cut) BBox() (Rect, bool) {
	if c.bbox == nil {
		return Rect{}, false
	}
	return *c.bbox, true
}

// Measured reports whether the dimension pass has visited c.
func (c *Cut) Measured() bool { return c.bbox != nil }

// SizeOf returns the size of n: the rectangle of a leaf or the bounding box
// of a measured cut. It reports false for nil nodes and unmeasured cuts.
func SizeOf(n Node) (Size, bool) {
	switch n := n.(type) {
	case *Leaf:
		if n == nil {
			return Size{}, false
		}
		return n.Rect.Size(), true
	case *Cut:
		if n == nil || n.bbox == nil {
			return Size{}, false
		}
		return n.bbox.Size(), true
	}
	return Size{}, false
}

// Walk visits n and its descendants in pre-order. If fn returns false the
// children of that node are skipped.
func Walk(n Node, fn func(Node) bool) {
	if isNil(n) {
		return
	}
	if !fn(n) {
		return
	}
	if c, ok := n.(*Cut); ok {
		Walk(c.Left, fn)
		Walk(c.Right, fn)
	}
}

// Leaves returns the leaf rectangles of n in pre-order.
func Leaves(n Node) []Rect {
	var out []Rect
	Walk(n, func(n Node) bool {
		if l, ok := n.(*Leaf); ok {
			out = append(out, l.Rect)
		}
		return true
	})
	return out
}

// Count returns the number of cuts and leaves under n.
func Count(n Node) (cuts, leaves int) {
	Walk(n, func(n Node) bool {
		switch n.(type) {
		case *Cut:
			cuts++
		case *Leaf:
			leaves++
		}
		return true
	})
	return cuts, leaves
}

// Depth returns the number of nodes on the longest root-to-leaf path.
func Depth(n Node) int {
	switch n := n.(type) {
	case *Leaf:
		if n == nil {
			return 0
		}
		return 1
	case *Cut:
		if n == nil {
			return 0
		}
		return 1 + max(Depth(n.Left), Depth(n.Right))
	}
	return 0
}

// Equal reports whether a and b have the same shape, cut kinds and leaf
// rectangles. Bounding boxes are ignored.
func Equal(a, b Node) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	switch a := a.(type) {
	case *Leaf:
		bl, ok := b.(*Leaf)
		return ok && a.Rect == bl.Rect
	case *Cut:
		bc, ok := b.(*Cut)
		return ok && a.Kind == bc.Kind && Equal(a.Left, bc.Left) && Equal(a.Right, bc.Right)
	}
	return false
}

// isNil reports whether n is a nil interface or a typed nil pointer.
func isNil(n Node) bool {
	switch n := n.(type) {
	case nil:
		return true
	case *Leaf:
		return n == nil
	case *Cut:
		return n == nil
	}
	return false
}
