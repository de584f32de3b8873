// Package cli implements the floorplan command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/floorplan/pkg/buildinfo"
	fperrors "github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/floorplan"
	"github.com/matzehuels/floorplan/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "floorplan"

	// rootArgs is the number of positional arguments of the root command.
	rootArgs = 4
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config

	configPath string
	origin     string
	quiet      bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: defaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "floorplan <input> <tree-out> <dims-out> <coords-out>",
		Short: "Floorplan computes the layout of a slicing floorplan",
		Long: `Floorplan reads a slicing tree in pre-order, one node per line:

  V          vertical cut (left child placed to the left)
  H          horizontal cut (left child placed on top)
  3(4,2)     leaf 3, 4 units wide and 2 units high

and writes three files: the tree in post-order, the bounding box of every
node in post-order, and the lower-left coordinates of every leaf.`,
		Example: `  floorplan input.txt tree.txt dims.txt coords.txt
  floorplan --origin 10,10 input.txt tree.txt dims.txt coords.txt`,
		Version:           buildinfo.Version,
		Args:              exactArgs(rootArgs),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFloorplan(cmd.Context(), cmd.OutOrStdout(), args)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/floorplan/config.toml)")
	root.PersistentFlags().StringVar(&c.origin, "origin", "0,0", "lower-left corner of the floorplan as x,y")
	root.Flags().BoolVarP(&c.quiet, "quiet", "q", false, "do not print a summary")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// exactArgs is cobra.ExactArgs with a coded error and the usage on failure.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == n {
			return nil
		}
		fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
		return fperrors.New(fperrors.ErrCodeArgumentCount, "accepts %d arg(s), received %d", n, len(args))
	}
}

// setup loads the config file and attaches the logger to the command context.
// A log level from the config applies unless --verbose was given.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg

	if f := cmd.Flags().Lookup("verbose"); (f == nil || !f.Changed) && cfg.Log.Level != "" {
		level, _ := log.ParseLevel(cfg.Log.Level)
		c.SetLogLevel(level)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, c.Logger))
	return nil
}

// =============================================================================
// Root Command
// =============================================================================

// runFloorplan runs every pass and writes the three output files.
func (c *CLI) runFloorplan(ctx context.Context, out io.Writer, args []string) error {
	origin, err := parseOrigin(c.origin)
	if err != nil {
		return err
	}

	opts := pipeline.Options{
		Input:             args[0],
		TreeOutput:        args[1],
		DimensionsOutput:  args[2],
		CoordinatesOutput: args[3],
		Origin:            origin,
	}

	prog := newProgress(loggerFromContext(ctx))
	result, err := c.newRunner().Execute(ctx, opts)
	if err != nil {
		return err
	}
	prog.done("Floorplan complete")

	if c.quiet {
		return nil
	}
	printSuccess(out, "Placed %s leaves", StyleNumber.Render(strconv.Itoa(result.Stats.Leaves)))
	printStats(out, result.Stats.Cuts, result.Stats.Leaves, result.Stats.Depth)
	printKeyValue(out, "bounding box", result.Size.String())
	printKeyValue(out, "origin", origin.String())
	for _, p := range []string{opts.TreeOutput, opts.DimensionsOutput, opts.CoordinatesOutput} {
		printFile(out, p)
	}
	return nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// layout parses and measures input in memory.
func (c *CLI) layout(ctx context.Context, input string) (*pipeline.Result, floorplan.Point, error) {
	origin, err := parseOrigin(c.origin)
	if err != nil {
		return nil, origin, err
	}
	result, err := c.newRunner().Layout(ctx, pipeline.Options{Input: input, Origin: origin})
	return result, origin, err
}

// parseOrigin parses an "x,y" pair of integers.
func parseOrigin(s string) (floorplan.Point, error) {
	if s == "" {
		return floorplan.Point{}, nil
	}
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return floorplan.Point{}, fperrors.New(fperrors.ErrCodeInvalidInput, "invalid origin %q: want x,y", s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return floorplan.Point{}, fperrors.New(fperrors.ErrCodeInvalidInput, "invalid origin %q: want x,y", s)
	}
	return floorplan.Point{X: x, Y: y}, nil
}
