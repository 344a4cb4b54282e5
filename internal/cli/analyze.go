package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gregorio-gerardi/circuitry/pkg/pipeline"
	"github.com/gregorio-gerardi/circuitry/pkg/report"
)

// formatJSON is the CLI-only output format that writes the full analysis
// report as a JSON document. The remaining formats are rendered by the
// pipeline.
const formatJSON = "json"

// defaultCircuitListing caps how many circuits the summary prints before
// referring to the interactive browser.
const defaultCircuitListing = 10

// analyzeOpts holds the command-line flags for the analyze command.
type analyzeOpts struct {
	minLen      int    // minimum circuit length (0 = unbounded)
	maxLen      int    // maximum circuit length (0 = unbounded)
	formats     []string
	output      string // output file (single format) or base path (multiple)
	noCache     bool
	refresh     bool
	interactive bool   // open the circuit browser after the search
	storeURI    string // MongoDB connection string for report persistence
	storeDB     string // MongoDB database name
}

// analyzeCommand creates the analyze command, the main entry point of the
// CLI. It loads a graph, enumerates its elementary circuits within the
// requested length bounds, and optionally renders and persists the result.
func (c *CLI) analyzeCommand() *cobra.Command {
	opts := analyzeOpts{storeDB: appName}

	var formatsStr string

	cmd := &cobra.Command{
		Use:   "analyze [graph.json|manifest]",
		Short: "Enumerate the elementary circuits of a directed graph",
		Long: `Enumerate the elementary circuits of a directed graph.

The input is either a JSON graph document or a dependency manifest
(go.mod, package.json, Cargo.toml). Results are cached locally, so
repeating an analysis over an unchanged graph is instant.

Examples:
  circuitry analyze graph.json                  # All circuits
  circuitry analyze graph.json --min 2 --max 5  # Bounded lengths
  circuitry analyze go.mod                      # Dependency manifest
  circuitry analyze graph.json -f svg -o out.svg
  circuitry analyze graph.json -f json,dot      # Report + DOT text
  circuitry analyze graph.json --interactive    # Browse circuits`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			for _, f := range opts.formats {
				if f == formatJSON {
					continue
				}
				if err := pipeline.ValidateFormat(f); err != nil {
					return err
				}
			}
			return c.runAnalyze(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().IntVar(&opts.minLen, "min", 0, "minimum circuit length (0 = no lower bound)")
	cmd.Flags().IntVar(&opts.maxLen, "max", 0, "maximum circuit length (0 = no upper bound)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): json, dot, svg, png (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cached results")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse discovered circuits interactively")
	cmd.Flags().StringVar(&opts.storeURI, "store", "", "MongoDB URI to persist the report (e.g. mongodb://localhost:27017)")
	cmd.Flags().StringVar(&opts.storeDB, "store-db", opts.storeDB, "MongoDB database for persisted reports")

	return cmd
}

// runAnalyze loads the input, runs the pipeline, and handles output.
func (c *CLI) runAnalyze(ctx context.Context, input string, opts analyzeOpts) error {
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
		Formats:   renderFormats(opts.formats),
		Refresh:   opts.refresh,
		Logger:    logger,
	}

	spinner := newSpinnerWithContext(ctx, "Searching for circuits...")
	spinner.Start()
	result, err := runner.Analyze(ctx, g, pipeOpts)
	if err != nil {
		spinner.StopWithError("Analysis failed")
		return err
	}
	spinner.Stop()

	rep := result.Report
	printSuccess("Found %d circuits in %s", len(rep.Circuits), input)
	printStats(result.Stats.VertexCount, result.Stats.EdgeCount, len(rep.Circuits), result.CacheInfo.SearchHit)
	listCircuits(rep.Circuits, opts.interactive)

	if opts.storeURI != "" {
		if err := storeReport(ctx, opts.storeURI, opts.storeDB, rep); err != nil {
			return err
		}
		printInfo("Stored report %s", rep.ID)
	}

	if err := writeOutputs(rep, result.Artifacts, opts.formats, input, opts.output); err != nil {
		return err
	}

	if opts.interactive && len(rep.Circuits) > 0 {
		return browseCircuits(rep.Circuits)
	}
	return nil
}

// listCircuits prints the first few circuits of the summary.
func listCircuits(circuits [][]string, interactive bool) {
	limit := len(circuits)
	if limit > defaultCircuitListing {
		limit = defaultCircuitListing
	}
	for i := 0; i < limit; i++ {
		printCircuit(i+1, circuits[i])
	}
	if rest := len(circuits) - limit; rest > 0 && !interactive {
		printDetail("… and %d more (use --interactive to browse)", rest)
	}
}

// storeReport persists the report to MongoDB.
func storeReport(ctx context.Context, uri, database string, rep *report.Report) error {
	store, err := report.NewMongoStore(ctx, uri, database)
	if err != nil {
		return fmt.Errorf("connect store: %w", err)
	}
	defer store.Close(ctx)
	return store.Save(ctx, rep)
}

// renderFormats filters the requested formats down to the ones the
// pipeline's render stage produces.
func renderFormats(formats []string) []string {
	var out []string
	for _, f := range formats {
		if f != formatJSON {
			out = append(out, f)
		}
	}
	return out
}

// writeOutputs writes every requested format. The json format serializes
// the report; the rest come from the pipeline's artifacts.
func writeOutputs(rep *report.Report, artifacts map[string][]byte, formats []string, input, output string) error {
	for _, format := range formats {
		data := artifacts[format]
		if format == formatJSON {
			var err error
			if data, err = json.MarshalIndent(rep, "", "  "); err != nil {
				return fmt.Errorf("encode report: %w", err)
			}
			data = append(data, '\n')
		}

		path := outputPath(format, input, output, len(formats))
		out, err := openOutput(path)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("write %s: %w", format, err)
		}
		if path != "" {
			printFile(path)
		}
	}
	return nil
}

// outputPath derives the file path for one format. With a single format
// the -o flag names the file directly ("-" or empty means stdout for json,
// derived for the rest); with multiple formats -o is a base path.
func outputPath(format, input, output string, formatCount int) string {
	if formatCount == 1 {
		if output == "-" || (output == "" && format == formatJSON) {
			return "" // stdout
		}
		if output != "" {
			return output
		}
		return basePath("", input) + suffix(format)
	}
	return basePath(output, input) + suffix(format)
}

// suffix returns the file suffix for a format, disambiguating the report
// document from graph documents.
func suffix(format string) string {
	if format == formatJSON {
		return ".report.json"
	}
	return "." + format
}

// basePath derives the base output path from the output and input paths.
// If output is empty, it strips the extension from input; a known format
// extension on output is stripped as well.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	trimmed := strings.TrimPrefix(ext, ".")
	if trimmed == formatJSON || pipeline.ValidFormats[trimmed] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// nopCloser wraps an io.Writer with a no-op Close method, making os.Stdout
// usable where an io.WriteCloser is required.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path, or stdout when the
// path is empty.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
