package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	fperrors "github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/observability"
	"github.com/matzehuels/floorplan/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output string // output file path; derived from the input when empty
	format string // svg, png or pdf; inferred from output when empty
	scale  int    // pixels per floorplan unit; 0 uses the config value
	labels bool   // draw leaf labels
}

// renderCommand creates the render command for drawing a placed floorplan.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <input>",
		Short: "Draw the placed floorplan as SVG, PNG or PDF",
		Long: `Draw the placed floorplan as SVG, PNG or PDF.

Every leaf is drawn at its computed coordinates, with the y axis pointing up.
The format is taken from --format, then from the output extension, and
defaults to SVG. PDF export requires rsvg-convert (librsvg).`,
		Example: `  floorplan render input.txt -o plan.svg --labels
  floorplan render input.txt -o plan.png --scale 4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with format extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: svg (default), png, pdf")
	cmd.Flags().IntVar(&opts.scale, "scale", 0, fmt.Sprintf("pixels per unit (default %d, or render.scale from config)", render.DefaultScale))
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "draw leaf labels")

	return cmd
}

// runRender lays out input and writes the drawing to the output file.
func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts, out, errOut io.Writer) error {
	logger := loggerFromContext(ctx)

	format, err := resolveFormat(opts.format, opts.output)
	if err != nil {
		return err
	}
	output := opts.output
	if output == "" {
		output = basePath(input) + "." + format
	}
	if err := fperrors.ValidatePath(output); err != nil {
		return err
	}

	result, origin, err := c.layout(ctx, input)
	if err != nil {
		return err
	}
	if result.Root == nil {
		return fperrors.New(fperrors.ErrCodeInvalidInput, "%s: nothing to render", input)
	}

	ropts := c.Config.Render.options()
	if opts.scale > 0 {
		ropts = append(ropts, render.WithScale(opts.scale))
	}
	if opts.labels {
		ropts = append(ropts, render.WithLabels())
	}

	prog := newProgress(logger)
	scene := render.NewScene(result.Size, origin, result.Placements)
	start := time.Now()
	data, err := renderScene(ctx, scene, format, ropts, errOut)
	observability.Render().OnRender(ctx, format, len(data), time.Since(start), err)
	if err != nil {
		return err
	}
	logger.Debugf("Generated %s: %d bytes", format, len(data))

	if err := writeOutput(output, data); err != nil {
		return err
	}
	prog.done("Rendered " + format)

	printSuccess(out, "Rendered %s leaves as %s", StyleNumber.Render(fmt.Sprint(len(result.Placements))), strings.ToUpper(format))
	printFile(out, output)
	return nil
}

// renderScene draws the scene in the given format.
func renderScene(ctx context.Context, scene render.Scene, format string, opts []render.Option, errOut io.Writer) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case render.FormatSVG:
		if err := render.RenderSVG(&buf, scene, opts...); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case render.FormatPNG:
		if err := render.RenderPNG(&buf, scene, opts...); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case render.FormatPDF:
		if err := render.RenderSVG(&buf, scene, opts...); err != nil {
			return nil, err
		}
		spinner := newSpinner(ctx, errOut, "Converting to PDF...")
		spinner.Start()
		data, err := render.ToPDF(buf.Bytes())
		spinner.Stop()
		if err != nil {
			return nil, fperrors.Wrap(fperrors.ErrCodeUnsupported, err, "pdf export")
		}
		return data, nil
	default:
		return nil, fperrors.New(fperrors.ErrCodeUnsupported, "unknown format: %s", format)
	}
}

// resolveFormat picks the output format from the flag, then the output
// extension, then the SVG default.
func resolveFormat(format, output string) (string, error) {
	if format != "" {
		format = strings.ToLower(format)
		if err := render.ValidateFormat(format); err != nil {
			return "", fperrors.Wrap(fperrors.ErrCodeUnsupported, err, "format")
		}
		return format, nil
	}
	if output != "" && filepath.Ext(output) != "" {
		if f, ok := render.FormatFromPath(output); ok {
			return f, nil
		}
		return "", fperrors.New(fperrors.ErrCodeUnsupported,
			"cannot infer format from %q (use --format svg, png or pdf)", output)
	}
	return render.FormatSVG, nil
}

// basePath strips the extension from input.
func basePath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input))
}

// writeOutput writes data to path with coded errors.
func writeOutput(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fperrors.Wrap(fperrors.ErrCodeFileOpen, err, "create %s", path)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fperrors.Wrap(fperrors.ErrCodeFileWrite, err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		return fperrors.Wrap(fperrors.ErrCodeFileWrite, err, "close %s", path)
	}
	return nil
}
