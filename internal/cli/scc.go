package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gregorio-gerardi/circuitry/pkg/digraph"
	"github.com/gregorio-gerardi/circuitry/pkg/digraph/scc"
	"github.com/gregorio-gerardi/circuitry/pkg/pipeline"
)

// sccOpts holds the command-line flags for the scc command.
type sccOpts struct {
	all    bool   // include acyclic singleton components
	asJSON bool   // emit the component list as JSON
	output string // output file (stdout if empty)
}

// sccCommand creates the scc command for inspecting strongly connected
// components. Components that can host circuits (two or more vertices, or
// a self-looped singleton) are listed by default; --all includes the rest.
func (c *CLI) sccCommand() *cobra.Command {
	var opts sccOpts

	cmd := &cobra.Command{
		Use:   "scc [graph.json|manifest]",
		Short: "List strongly connected components",
		Long: `List the strongly connected components of a directed graph.

By default only components that can host a circuit are shown: components
with two or more vertices, and single vertices carrying a self-loop. Pass
--all to include acyclic singletons.

Examples:
  circuitry scc graph.json
  circuitry scc graph.json --all
  circuitry scc go.mod --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSCC(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.all, "all", false, "include acyclic singleton components")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "emit the component list as JSON")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

// runSCC loads the graph and prints its component decomposition.
func runSCC(ctx context.Context, input string, opts sccOpts) error {
	logger := loggerFromContext(ctx)

	prog := newProgress(logger)
	g, sourceFormat, err := pipeline.Load(ctx, input)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Loaded %s: %d vertices, %d edges", sourceFormat, g.Len(), g.EdgeCount()))

	components := scc.Decompose(g)
	shown := make([][]string, 0, len(components))
	for _, comp := range components {
		if opts.all || cyclic(g, comp) {
			shown = append(shown, comp)
		}
	}

	if opts.asJSON {
		return writeComponentsJSON(shown, opts.output)
	}

	if len(shown) == 0 {
		printInfo("No strongly connected components with circuits")
		return nil
	}
	printSuccess("Found %d strongly connected components", len(shown))
	for i, comp := range shown {
		marker := ""
		if !cyclic(g, comp) {
			marker = StyleDim.Render(" (acyclic)")
		}
		fmt.Println(StyleDim.Render(fmt.Sprintf("  %3d ", i+1)) +
			StyleValue.Render(strings.Join(comp, ", ")) + marker)
	}
	return nil
}

// cyclic reports whether the component can host at least one circuit.
func cyclic(g *digraph.Digraph[string], comp []string) bool {
	return len(comp) > 1 || (len(comp) == 1 && g.HasEdge(comp[0], comp[0]))
}

// writeComponentsJSON emits the component list as a JSON document.
func writeComponentsJSON(components [][]string, output string) error {
	out, err := openOutput(output)
	if err != nil {
		return err
	}
	defer out.Close()

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Components [][]string `json:"components"`
	}{Components: components})
}
