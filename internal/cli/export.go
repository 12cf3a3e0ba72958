package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/morg/internal/wire"
)

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "export [garments|sets]",
		Short:     "Export garments or sets as CSV",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"garments", "sets"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()
			outPath, _ := cmd.Flags().GetString("output")

			var w io.Writer = os.Stdout
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", outPath, err)
				}
				defer f.Close()
				w = f
			}

			adapter := wire.CatalogAdapterWithOutput(os.Stderr)
			var (
				n   int
				err error
			)
			switch args[0] {
			case "garments":
				n, err = adapter.ExportGarments(ctx, w)
			case "sets":
				n, err = adapter.ExportHistory(ctx, w)
			default:
				return fmt.Errorf("unknown export %q (expected garments or sets)", args[0])
			}
			if err != nil {
				return err
			}

			if outPath != "" {
				fmt.Printf("✓ Exported %d %s to %s\n", n, args[0], outPath)
			}
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout")
	return cmd
}
