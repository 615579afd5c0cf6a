package commands

import (
	"fmt"

	"github.com/AmandaBirmingham/syndna/internal/cli/config"
	"github.com/AmandaBirmingham/syndna/internal/pool"
	"github.com/AmandaBirmingham/syndna/internal/server"
	"github.com/spf13/cobra"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the pool catalog over a read-only HTTP API",
		Long: `Start an HTTP server exposing the loaded catalog:

  GET /v1/pools           all pool ids
  GET /v1/pools/{pool_id} one pool's configuration
  GET /healthz            liveness
  GET /metrics            Prometheus metrics

With --watch the source document is watched and the whole store is
replaced atomically on change; a document that fails validation is
rejected and the previous catalog stays live.`,
		Example: `  # Serve the embedded stock pools
  syndna serve

  # Serve a document and reload it on change
  syndna serve --pools pools.yml --watch --addr :8609`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, cfg, err := loadStore(cmd)
			if err != nil {
				return err
			}
			logger := config.GetLogger(cmd.Context())

			// Local flags beat the layered config.
			if cmd.Flags().Changed("addr") {
				cfg.Addr, _ = cmd.Flags().GetString("addr")
			}
			if cmd.Flags().Changed("watch") {
				cfg.Watch, _ = cmd.Flags().GetBool("watch")
			}

			if cfg.Watch && cfg.PoolsPath == "" {
				return fmt.Errorf("--watch requires --pools (the embedded catalog cannot change)")
			}

			srv := server.New(server.Config{
				Handle:    pool.NewHandle(store),
				Addr:      cfg.Addr,
				PoolsPath: cfg.PoolsPath,
				Watch:     cfg.Watch,
				Logger:    logger,
			})
			return srv.Serve(cmd.Context())
		},
	}

	cmd.Flags().String("addr", "", "Listen address (default \":8609\")")
	cmd.Flags().Bool("watch", false, "Reload the pool document on change")

	return cmd
}
