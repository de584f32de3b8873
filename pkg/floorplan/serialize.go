package floorplan

import (
	"bufio"
	"fmt"
	"io"
)

// WriteTree writes n in post-order: leaves as label(width,height), cuts as a
// bare V or H. Bounding boxes are not read, so it may run before or after the
// dimension pass. The output can be read back with [ParsePostOrder].
func WriteTree(w io.Writer, n Node) error {
	bw := bufio.NewWriter(w)
	writePostOrder(bw, n)
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write tree: %w", err)
	}
	return nil
}

func writePostOrder(w io.Writer, n Node) {
	if isNil(n) {
		return
	}
	switch n := n.(type) {
	case *Leaf:
		fmt.Fprintln(w, n.Rect)
	case *Cut:
		writePostOrder(w, n.Left)
		writePostOrder(w, n.Right)
		fmt.Fprintln(w, n.Kind)
	}
}

// WritePreOrder writes n in the pre-order input format accepted by [Parse].
func WritePreOrder(w io.Writer, n Node) error {
	bw := bufio.NewWriter(w)
	Walk(n, func(n Node) bool {
		switch n := n.(type) {
		case *Leaf:
			fmt.Fprintln(bw, n.Rect)
		case *Cut:
			fmt.Fprintln(bw, n.Kind)
		}
		return true
	})
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write tree: %w", err)
	}
	return nil
}
