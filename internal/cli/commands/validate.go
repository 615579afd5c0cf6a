package commands

import (
	"fmt"

	"github.com/AmandaBirmingham/syndna/internal/pool"
	"github.com/spf13/cobra"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a pool document",
		Long: `Load a pool document and report whether it satisfies the format:
unique pool ids, unique synDNA ids within each pool, strictly positive
concentrations, and a contributing fraction in (0, 1].`,
		Example: `  # Validate the configured document (or the embedded stock pools)
  syndna validate

  # Validate a specific file
  syndna validate pools.yml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				store *pool.Store
				err   error
			)
			if len(args) == 1 {
				store, err = pool.LoadFile(args[0])
			} else {
				store, _, err = loadStore(cmd)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "OK: %d pools\n", store.Len())
			return nil
		},
	}
}
