// Package io reads and writes floorplan text files.
//
// # Overview
//
// This package is the file boundary of the tool. It opens the input tree,
// creates the three output files and translates failures into coded errors
// from [github.com/matzehuels/floorplan/pkg/errors]:
//
//   - FILE_OPEN when a path cannot be opened or created
//   - FILE_WRITE when writing an output fails
//   - INVALID_FORMAT and TRUNCATED_INPUT for malformed tree text
//   - MALFORMED_TREE when a cut is missing a child
//
// # Import
//
// Use [ImportTree] to read a pre-order tree from a file path, or [ReadTree]
// to read from any io.Reader:
//
//	root, err := io.ImportTree("floorplan.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// [ImportPostOrder] reads the post-order form written by [ExportTree], so a
// serialized tree can be loaded again.
//
// # Export
//
// Each export function creates (or truncates) its file and runs one pass:
//
//	err := io.ExportTree(root, "tree.txt")
//	size, err := io.ExportDimensions(root, "dims.txt")
//	err = io.ExportCoordinates(root, floorplan.Point{}, "coords.txt")
//
// [ExportDimensions] annotates the tree in place, so it must run before
// [ExportCoordinates].
package io
