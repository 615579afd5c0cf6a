package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the loaded catalog back in pool document form",
		Long: `Serialize the loaded store to the pool document format with pools and
synDNA ids in sorted order. Reloading the output yields an identical
catalog, so export is a normalizer for hand-edited documents.`,
		Example: `  # Print the embedded stock catalog
  syndna export

  # Normalize a document in place
  syndna export --pools pools.yml --out pools.yml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, _, err := loadStore(cmd)
			if err != nil {
				return err
			}

			doc, err := store.MarshalDocument()
			if err != nil {
				return err
			}

			if outPath == "" {
				_, err = cmd.OutOrStdout().Write(doc)
				return err
			}
			if err := os.WriteFile(outPath, doc, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d pools to %s\n", store.Len(), outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "Write to file instead of stdout")

	return cmd
}
