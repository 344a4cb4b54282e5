package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gregorio-gerardi/circuitry/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	formats   []string
	output    string  // output file (single format) or base path (multiple)
	rankDir   string  // Graphviz layout direction
	scale     float64 // raster scale for PNG
	highlight bool    // run the circuit search and highlight the results
	minLen    int
	maxLen    int
	noCache   bool
}

// renderCommand creates the render command for turning graphs into DOT,
// SVG, or PNG output. With --highlight (the default) the circuit search
// runs first and every discovered circuit is emphasized in the drawing.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{rankDir: "TB", scale: pipeline.DefaultScale, highlight: true}

	var formatsStr string

	cmd := &cobra.Command{
		Use:   "render [graph.json|manifest]",
		Short: "Render a directed graph with its circuits highlighted",
		Long: `Render a directed graph to DOT, SVG, or PNG.

By default the circuit search runs first and discovered circuits are drawn
in red. Pass --highlight=false for a plain rendering of the graph.

Examples:
  circuitry render graph.json                   # graph.svg
  circuitry render graph.json -f dot            # DOT text
  circuitry render graph.json -f svg,png -o out # out.svg + out.png
  circuitry render go.mod --highlight=false`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if len(opts.formats) == 0 {
				opts.formats = []string{pipeline.FormatSVG}
			}
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot, png (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVar(&opts.rankDir, "rankdir", opts.rankDir, "layout direction: TB, LR, BT or RL")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "raster scale factor (png)")
	cmd.Flags().BoolVar(&opts.highlight, "highlight", opts.highlight, "highlight discovered circuits")
	cmd.Flags().IntVar(&opts.minLen, "min", 0, "minimum circuit length for highlighting")
	cmd.Flags().IntVar(&opts.maxLen, "max", 0, "maximum circuit length for highlighting")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

// runRender loads the graph, optionally searches for circuits, and renders
// the requested formats.
func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts) error {
	logger := loggerFromContext(ctx)

	prog := newProgress(logger)
	g, sourceFormat, err := pipeline.Load(ctx, input)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Loaded %s: %d vertices, %d edges", sourceFormat, g.Len(), g.EdgeCount()))

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	pipeOpts := pipeline.Options{
		Source:    input,
		MinLength: opts.minLen,
		MaxLength: opts.maxLen,
		Formats:   opts.formats,
		RankDir:   opts.rankDir,
		Scale:     opts.scale,
		Logger:    logger,
	}

	var circuits [][]string
	if opts.highlight {
		rep, err := runner.Search(ctx, g, pipeOpts)
		if err != nil {
			return err
		}
		circuits = rep.Circuits
		logger.Debugf("highlighting %d circuits", len(circuits))
	}

	spinner := newSpinnerWithContext(ctx, "Rendering...")
	spinner.Start()
	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, g, circuits, pipeOpts)
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return err
	}
	spinner.Stop()

	status := iconFresh
	if cacheHit {
		status = iconCached
	}
	printSuccess("Rendered %s (%s)", input, status)

	return writeOutputs(nil, artifacts, opts.formats, input, opts.output)
}
