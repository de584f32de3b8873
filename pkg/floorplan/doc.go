// Package floorplan models slicing floorplans and computes their geometry.
//
// A slicing floorplan is a rectangle recursively divided by vertical and
// horizontal cuts. It is represented as a strict binary tree: every internal
// [Cut] has exactly two children and every [Leaf] carries a labeled [Rect].
//
// # Input Format
//
// Trees are read in pre-order, one node per line:
//
//	V
//	1(2,3)
//	H
//	2(4,1)
//	3(2,2)
//
// A line holding exactly "V" or "H" is a cut whose left and right subtrees
// follow. Every other line must be label(width,height).
//
// # Passes
//
// Three passes run over a parsed tree:
//
//   - [WriteTree] echoes the structure in post-order.
//   - [ComputeDimensions] walks post-order and stores the bounding box of
//     every cut. [WriteDimensions] does the same and reports each node.
//   - [ComputeCoordinates] walks pre-order and places every leaf, using the
//     boxes stored by the dimension pass.
//
// A vertical cut places its children side by side (left, then right). A
// horizontal cut stacks them, the left child above the right one. Origins are
// lower-left corners with y growing upward.
//
// # Concurrency
//
// The dimension pass mutates cuts in place. A tree must not be shared between
// goroutines while [ComputeDimensions] or [WriteDimensions] runs; afterwards
// it is read-only and may be read concurrently.
package floorplan
