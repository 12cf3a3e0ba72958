package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/morg/internal/wire"
)

// SummaryCmd returns the summary command
func SummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show catalog totals",
		Long: `Show how many garments the catalog holds, how many are clean, the
breakdown by kind and rating, and how many sets have been recorded.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()
			asJSON, _ := cmd.Flags().GetBool("json")

			if !asJSON {
				_, err := wire.CatalogAdapter().Summary(ctx)
				return err
			}

			summary, err := wire.CatalogQueryService().Summary(ctx)
			if err != nil {
				return fmt.Errorf("failed to summarize catalog: %w", err)
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(summary)
		},
	}

	cmd.Flags().Bool("json", false, "Print as JSON")
	return cmd
}
