package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/morg/internal/config"
	"github.com/example/morg/internal/db"
	"github.com/example/morg/internal/wire"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the morg catalog",
		Long: `Initialize the morg home directory ($MORG_HOME or ~/.morg): write a default
config.json if none exists, create the catalog database with the required
schema, and create the photo/ and sets/ directories.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewContext()
			seed, _ := cmd.Flags().GetBool("seed")

			home, err := config.Home()
			if err != nil {
				return err
			}

			if _, err := config.LoadConfig(home); errors.Is(err, fs.ErrNotExist) {
				if err := config.SaveConfig(home, config.DefaultConfig(home)); err != nil {
					return fmt.Errorf("failed to write config: %w", err)
				}
				fmt.Printf("✓ Config written to %s\n", filepath.Join(home, "config.json"))
			} else if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			cfg := wire.Config()
			fmt.Printf("Initializing morg catalog at %s\n", cfg.DatabasePath)

			version, err := db.CurrentVersion(wire.DB())
			if err != nil {
				return fmt.Errorf("failed to read schema version: %w", err)
			}
			fmt.Printf("✓ Database ready (schema version %d)\n", version)

			if err := wire.EnsurePhotoDirs(ctx); err != nil {
				return err
			}
			fmt.Printf("✓ Photo directories ready under %s\n", cfg.DataDir)

			if seed {
				summary, err := wire.CatalogQueryService().Summary(ctx)
				if err != nil {
					return err
				}
				if summary.Garments > 0 || summary.Sets > 0 {
					fmt.Println("Catalog is not empty, skipping sample data")
				} else {
					if err := db.SeedFixtures(wire.DB()); err != nil {
						return fmt.Errorf("failed to seed catalog: %w", err)
					}
					fmt.Println("✓ Sample wardrobe added")
				}
			}

			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  morg garment add \"Blue Hoodie\" --kind hoodies --color1 1e90ff")
			fmt.Println("  morg summary")

			return nil
		},
	}

	cmd.Flags().Bool("seed", false, "Add a small sample wardrobe to an empty catalog")
	return cmd
}
