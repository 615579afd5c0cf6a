// Package commands implements the syndna subcommands.
package commands

import (
	"fmt"

	"github.com/AmandaBirmingham/syndna/internal/cli/config"
	"github.com/AmandaBirmingham/syndna/internal/pool"
	"github.com/spf13/cobra"
)

// loadStore resolves the pool store for a command: the document named by
// --pools/config, or the embedded stock pools when none is configured.
func loadStore(cmd *cobra.Command) (*pool.Store, *config.Config, error) {
	cfg := config.FromContext(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	if cfg.PoolsPath == "" {
		logger.Debug("using embedded stock pools")
		return pool.Stock(), cfg, nil
	}

	logger.Debug("loading pool document", "path", cfg.PoolsPath)
	store, err := pool.LoadFile(cfg.PoolsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load pools: %w", err)
	}
	return store, cfg, nil
}
