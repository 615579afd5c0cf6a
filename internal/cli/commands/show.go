package commands

import (
	"github.com/spf13/cobra"
)

// NewShowCommand creates the show command.
func NewShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <pool_id>",
		Short: "Show one pool's concentrations and contributing fraction",
		Example: `  # Show the 16S rRNA pool
  syndna show pool1000

  # Show a pool from a custom document, as YAML
  syndna show pool0 --pools pools.yml --output yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cfg, err := loadStore(cmd)
			if err != nil {
				return err
			}

			poolCfg, err := store.Get(args[0])
			if err != nil {
				return err
			}
			return renderPool(cmd.OutOrStdout(), poolCfg, cfg.OutputFormat)
		},
	}
}
