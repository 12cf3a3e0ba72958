package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/morg/internal/apperr"
	"github.com/example/morg/internal/cli"
	"github.com/example/morg/internal/version"
	"github.com/example/morg/internal/wire"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "morg",
		Short:   "morg - wardrobe catalog",
		Version: version.String(),
		Long: `morg keeps a catalog of your garments and the outfits (sets) you wore,
with colours, ratings, clean flags, and photos.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.GarmentCmd())
	rootCmd.AddCommand(cli.SetCmd())
	rootCmd.AddCommand(cli.SummaryCmd())
	rootCmd.AddCommand(cli.LogCmd())
	rootCmd.AddCommand(cli.ExportCmd())
	rootCmd.AddCommand(cli.ImportCmd())
	rootCmd.AddCommand(cli.PhotoCmd())
	rootCmd.AddCommand(cli.ServeCmd())

	err := rootCmd.Execute()
	wire.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", apperr.UserMessage(err))
		os.Exit(1)
	}
}
