package commands

import (
	"github.com/spf13/cobra"
)

// NewPoolsCommand creates the pools command.
func NewPoolsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pools",
		Short: "List all pools in the catalog",
		Long:  `List every pool id with its synDNA count and contributing fraction.`,
		Example: `  # List pools from the embedded stock catalog
  syndna pools

  # List pools from a document, as JSON
  syndna pools --pools pools.yml --output json`,
		Aliases: []string{"list"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, cfg, err := loadStore(cmd)
			if err != nil {
				return err
			}
			return renderSummaries(cmd.OutOrStdout(), summarize(store), cfg.OutputFormat)
		},
	}
}
