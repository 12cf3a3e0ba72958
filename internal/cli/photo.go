package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/morg/internal/ports/primary"
	"github.com/example/morg/internal/wire"
)

var photoCmd = &cobra.Command{
	Use:   "photo",
	Short: "Check and watch garment and set photos",
	Long: `Garment photos live at photo/<id>.jpg and set photos at
sets/Set_from_<DD_MM_YYYY>.png under the data directory.`,
}

var photoStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report missing photos",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")

		statuses, err := wire.PhotoService().Status(NewContext())
		if err != nil {
			return fmt.Errorf("failed to check photos: %w", err)
		}

		wire.CatalogAdapter().PhotoStatus(statuses, all)
		return nil
	},
}

var photoWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print photo changes as they happen (Ctrl-C to stop)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := newSignalContext()
		defer cancel()

		adapter := wire.CatalogAdapter()
		notices := make(chan primary.PhotoNotice)
		errCh := make(chan error, 1)
		go func() {
			errCh <- wire.PhotoService().Watch(ctx, notices)
		}()

		fmt.Printf("Watching photos under %s\n", wire.Config().DataDir)
		for {
			select {
			case n := <-notices:
				adapter.PhotoNotice(n)
			case err := <-errCh:
				return err
			}
		}
	},
}

func init() {
	photoStatusCmd.Flags().BoolP("all", "a", false, "Also list photos that are present")

	photoCmd.AddCommand(photoStatusCmd)
	photoCmd.AddCommand(photoWatchCmd)
}

// PhotoCmd returns the photo command
func PhotoCmd() *cobra.Command {
	return photoCmd
}
