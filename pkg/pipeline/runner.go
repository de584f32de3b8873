package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/floorplan/pkg/floorplan"
	fpio "github.com/matzehuels/floorplan/pkg/io"
	"github.com/matzehuels/floorplan/pkg/observability"
)

// Runner executes pipeline stages and logs their progress.
//
// The Runner holds no per-run state, so one Runner may serve several runs
// in sequence. The trees it builds are not safe for concurrent mutation.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// stage runs fn between the start and completion hooks and returns its
// duration. Errors are wrapped with the stage name.
func (r *Runner) stage(ctx context.Context, s observability.Stage, fn func() error) (time.Duration, error) {
	hooks := observability.Pipeline()
	hooks.OnStageStart(ctx, s)
	start := time.Now()
	err := fn()
	d := time.Since(start)
	hooks.OnStageComplete(ctx, s, d, err)
	if err != nil {
		return d, fmt.Errorf("%s: %w", s, err)
	}
	return d, ctx.Err()
}

// Execute runs parse → tree → dimensions → coordinates, writing each output
// file in turn. A failure aborts the remaining stages; files written by
// earlier stages are left in place.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Parse
	if err := r.parse(ctx, opts, result); err != nil {
		return nil, err
	}

	// Stage 2: Tree
	var err error
	result.Stats.TreeTime, err = r.stage(ctx, observability.StageTree, func() error {
		return fpio.ExportTree(result.Root, opts.TreeOutput)
	})
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("wrote tree", "path", opts.TreeOutput, "duration", result.Stats.TreeTime)

	// Stage 3: Dimensions
	result.Stats.DimensionTime, err = r.stage(ctx, observability.StageDimensions, func() error {
		size, err := fpio.ExportDimensions(result.Root, opts.DimensionsOutput)
		result.Size = size
		return err
	})
	if err != nil {
		return nil, err
	}
	r.Logger.Info("computed dimensions",
		"width", result.Size.Width,
		"height", result.Size.Height,
		"path", opts.DimensionsOutput,
		"duration", result.Stats.DimensionTime)

	// Stage 4: Coordinates
	result.Stats.CoordinateTime, err = r.stage(ctx, observability.StageCoordinates, func() error {
		if err := fpio.ExportCoordinates(result.Root, opts.Origin, opts.CoordinatesOutput); err != nil {
			return err
		}
		placements, err := floorplan.ComputeCoordinates(result.Root, opts.Origin)
		result.Placements = placements
		return err
	})
	if err != nil {
		return nil, err
	}
	r.Logger.Info("computed coordinates",
		"placed", len(result.Placements),
		"path", opts.CoordinatesOutput,
		"duration", result.Stats.CoordinateTime)

	return result, nil
}

// Layout parses opts.Input and computes dimensions and placements in memory,
// without writing any output file.
func (r *Runner) Layout(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateInput(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}
	if err := r.parse(ctx, opts, result); err != nil {
		return nil, err
	}

	var err error
	result.Stats.DimensionTime, err = r.stage(ctx, observability.StageDimensions, func() error {
		size, err := floorplan.ComputeDimensions(result.Root)
		result.Size = size
		return err
	})
	if err != nil {
		return nil, err
	}

	result.Stats.CoordinateTime, err = r.stage(ctx, observability.StageCoordinates, func() error {
		placements, err := floorplan.ComputeCoordinates(result.Root, opts.Origin)
		result.Placements = placements
		return err
	})
	if err != nil {
		return nil, err
	}

	r.Logger.Debug("computed layout",
		"width", result.Size.Width,
		"height", result.Size.Height,
		"placed", len(result.Placements))

	return result, nil
}

func (r *Runner) parse(ctx context.Context, opts Options, result *Result) error {
	var err error
	result.Stats.ParseTime, err = r.stage(ctx, observability.StageParse, func() error {
		root, err := fpio.ImportTree(opts.Input)
		result.Root = root
		return err
	})
	if err != nil {
		return err
	}
	result.Stats.Cuts, result.Stats.Leaves = floorplan.Count(result.Root)
	result.Stats.Depth = floorplan.Depth(result.Root)

	if result.Root == nil {
		r.Logger.Warn("input is empty", "path", opts.Input)
	}
	r.Logger.Info("parsed floorplan",
		"cuts", result.Stats.Cuts,
		"leaves", result.Stats.Leaves,
		"depth", result.Stats.Depth,
		"duration", result.Stats.ParseTime)
	return nil
}
