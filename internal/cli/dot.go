package cli

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"

	fperrors "github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/observability"
	"github.com/matzehuels/floorplan/pkg/render"
)

// dotCommand creates the dot command for drawing the slicing tree.
func (c *CLI) dotCommand() *cobra.Command {
	var (
		output string
		svg    bool
	)

	cmd := &cobra.Command{
		Use:   "dot <input>",
		Short: "Export the slicing tree as Graphviz DOT",
		Long: `Export the slicing tree as Graphviz DOT.

Cuts are labeled with their kind and bounding box, leaves with their label
and size. With --svg the graph is laid out and rendered to SVG using the
embedded Graphviz engine.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDOT(cmd.Context(), args[0], output, svg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&svg, "svg", false, "render the graph to SVG")

	return cmd
}

// runDOT measures the tree so cuts carry their bounding box, then writes DOT
// or SVG to output, or to out when output is empty.
func (c *CLI) runDOT(ctx context.Context, input, output string, svg bool, out, errOut io.Writer) error {
	logger := loggerFromContext(ctx)

	result, _, err := c.layout(ctx, input)
	if err != nil {
		return err
	}

	dot := render.ToDOT(result.Root)
	data := []byte(dot)
	if svg {
		spinner := newSpinner(ctx, errOut, "Rendering tree...")
		spinner.Start()
		start := time.Now()
		data, err = render.RenderDOTSVG(ctx, dot)
		spinner.Stop()
		observability.Render().OnRender(ctx, "dot-svg", len(data), time.Since(start), err)
		if err != nil {
			return fperrors.Wrap(fperrors.ErrCodeInternal, err, "graphviz")
		}
	}
	logger.Debugf("Generated DOT graph: %d bytes", len(data))

	if output == "" {
		_, err := out.Write(data)
		return err
	}
	if err := writeOutput(output, data); err != nil {
		return err
	}
	printSuccess(out, "Exported tree of %d cuts and %d leaves", result.Stats.Cuts, result.Stats.Leaves)
	printFile(out, output)
	return nil
}
