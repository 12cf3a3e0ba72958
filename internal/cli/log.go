package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/morg/internal/wire"
)

// LogCmd returns the log command
func LogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show recent catalog changes",
		Long:  "Show the change log: who created, updated, or deleted what, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			if limit <= 0 {
				limit = 50
			}
			_, err := wire.CatalogAdapter().Log(NewContext(), limit)
			return err
		},
	}

	cmd.Flags().IntP("limit", "n", 50, "Number of entries to show")
	return cmd
}
