package cli

import (
	"github.com/spf13/cobra"

	"github.com/gregorio-gerardi/circuitry/internal/server"
)

// serveCommand creates the serve command for running the HTTP analysis API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath string
		listen     string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP analysis API",
		Long: `Run the HTTP analysis API.

The server exposes circuit analysis over REST:

  POST /v1/analyses          Analyze a graph document
  GET  /v1/analyses          List recent reports
  GET  /v1/analyses/{id}     Fetch a stored report
  GET  /v1/analyses/{id}/svg Rendered graph with circuits highlighted
  GET  /healthz              Liveness probe

Without a config file the server listens on :8080 with an in-memory
report store and caching disabled. See the server package documentation
for the TOML configuration schema.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := server.DefaultConfig()
			if configPath != "" {
				loaded, err := server.LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if listen != "" {
				cfg.Listen = listen
			}

			srv, err := server.New(cmd.Context(), cfg, c.Logger)
			if err != nil {
				return err
			}
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "TOML configuration file")
	cmd.Flags().StringVar(&listen, "listen", "", "listen address (overrides config)")

	return cmd
}
