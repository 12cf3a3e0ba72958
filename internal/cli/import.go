package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/morg/internal/wire"
)

// ImportCmd returns the import-legacy command
func ImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import-legacy [path]",
		Short: "Import a wardrobe database from the old desktop app",
		Long: `Copy garments (ClothesData) and sets (HistoryData) from an old wardrobe
database into the catalog, keeping their IDs. Rows whose ID is already in the
catalog are skipped and invalid rows are counted, so the import can be re-run.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := wire.ImportService().ImportLegacy(NewContext(), args[0])
			if err != nil {
				return err
			}

			wire.CatalogAdapter().ImportResult(args[0], res)
			return nil
		},
	}
}
