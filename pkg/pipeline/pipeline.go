// Package pipeline runs the floorplan passes end to end.
//
// This package implements the complete parse → serialize → dimensions →
// coordinates pipeline used by every CLI command. By centralizing this logic,
// the root command and the render, dot and view commands agree on how a
// floorplan file is loaded and measured.
//
// # Architecture
//
// The pipeline consists of four stages, always run in this order:
//
//  1. Parse: Build the tree from the pre-order input file
//  2. Tree: Echo the structure in post-order
//  3. Dimensions: Compute and store every cut's bounding box
//  4. Coordinates: Place every leaf
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:             "floorplan.txt",
//	    TreeOutput:        "tree.txt",
//	    DimensionsOutput:  "dims.txt",
//	    CoordinatesOutput: "coords.txt",
//	})
//
// [Runner.Layout] runs the same passes in memory for commands that only need
// the placements.
package pipeline

import (
	"time"

	fperrors "github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/floorplan"
)

// Options configures a pipeline run.
type Options struct {
	Input             string `json:"input"`
	TreeOutput        string `json:"tree_output,omitempty"`
	DimensionsOutput  string `json:"dimensions_output,omitempty"`
	CoordinatesOutput string `json:"coordinates_output,omitempty"`

	// Origin is the lower-left corner of the whole floorplan.
	Origin floorplan.Point `json:"origin"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Root is the parsed tree, annotated with bounding boxes. Nil for empty input.
	Root floorplan.Node

	// Size is the bounding box of the whole floorplan.
	Size floorplan.Size

	// Placements holds every leaf at its absolute origin, in pre-order.
	Placements []floorplan.Placement

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Cuts           int
	Leaves         int
	Depth          int
	ParseTime      time.Duration
	TreeTime       time.Duration
	DimensionTime  time.Duration
	CoordinateTime time.Duration
}

// Total returns the summed duration of all stages.
func (s Stats) Total() time.Duration {
	return s.ParseTime + s.TreeTime + s.DimensionTime + s.CoordinateTime
}

// Validate checks that an input and all three outputs are set.
func (o *Options) Validate() error {
	if err := o.ValidateInput(); err != nil {
		return err
	}
	for _, p := range []string{o.TreeOutput, o.DimensionsOutput, o.CoordinatesOutput} {
		if err := fperrors.ValidatePath(p); err != nil {
			return err
		}
	}
	return nil
}

// ValidateInput checks the input path.
func (o *Options) ValidateInput() error {
	if err := fperrors.ValidatePath(o.Input); err != nil {
		return fperrors.Wrap(fperrors.ErrCodeInvalidInput, err, "input")
	}
	return nil
}
