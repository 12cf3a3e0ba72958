package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/morg/internal/core/history"
	"github.com/example/morg/internal/core/rating"
	"github.com/example/morg/internal/ports/primary"
	"github.com/example/morg/internal/wire"
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Manage recorded outfits (sets)",
	Long:  "Record, list, rate, and describe the outfits worn on each day",
}

var setAddCmd = &cobra.Command{
	Use:   "add [DD_MM_YYYY]",
	Short: "Record a set (defaults to today)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		description, _ := cmd.Flags().GetString("description")
		rate, _ := cmd.Flags().GetString("rate")

		date := history.FormatDate(time.Now())
		if len(args) == 1 {
			date = args[0]
		}

		_, err := wire.HistoryAdapter().Add(NewContext(), primary.HistoryDraft{
			Date:        date,
			Description: description,
			Rate:        rate,
		})
		return err
	},
}

var setShowCmd = &cobra.Command{
	Use:   "show [DD_MM_YYYY]",
	Short: "Show the set recorded on a date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.HistoryAdapter().Show(NewContext(), args[0])
		return err
	},
}

var setListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded sets",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.HistoryAdapter().List(NewContext())
		return err
	},
}

var setDatesCmd = &cobra.Command{
	Use:   "dates",
	Short: "Print recorded dates, one per line",
	RunE: func(cmd *cobra.Command, args []string) error {
		dates, err := wire.CatalogQueryService().ListAllDates(NewContext())
		if err != nil {
			return fmt.Errorf("failed to list dates: %w", err)
		}
		for _, d := range dates {
			fmt.Println(d)
		}
		return nil
	},
}

var setRateCmd = &cobra.Command{
	Use:   "rate [DD_MM_YYYY] [1-5|?]",
	Short: "Rate a set",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.HistoryAdapter().Rate(NewContext(), args[0], args[1])
	},
}

var setEditCmd = &cobra.Command{
	Use:   "edit [DD_MM_YYYY]",
	Short: "Change a set's description and rating",
	Long: `Change a set's description and rating.
Fields without a flag keep their current value.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext()
		date := args[0]

		current, err := wire.CatalogQueryService().FindByDate(ctx, date)
		if err != nil {
			return fmt.Errorf("failed to get set: %w", err)
		}
		if current == nil {
			return fmt.Errorf("no set recorded for %s", date)
		}

		edit := primary.HistoryEdit{
			Date:        date,
			Description: current.Description,
			Rate:        current.Rate,
		}
		if cmd.Flags().Changed("description") {
			edit.Description, _ = cmd.Flags().GetString("description")
		}
		if cmd.Flags().Changed("rate") {
			edit.Rate, _ = cmd.Flags().GetString("rate")
		}

		return wire.HistoryAdapter().Edit(ctx, edit)
	},
}

var setNextIDCmd = &cobra.Command{
	Use:   "next-id",
	Short: "Print the ID the next set will receive",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.HistoryAdapter().NextID(NewContext())
		return err
	},
}

func init() {
	setAddCmd.Flags().StringP("description", "d", "", "Description")
	setAddCmd.Flags().StringP("rate", "r", rating.Unrated, "Rating (1-5 or ?)")

	setEditCmd.Flags().StringP("description", "d", "", "New description")
	setEditCmd.Flags().StringP("rate", "r", "", "New rating (1-5 or ?)")

	setCmd.AddCommand(setAddCmd)
	setCmd.AddCommand(setShowCmd)
	setCmd.AddCommand(setListCmd)
	setCmd.AddCommand(setDatesCmd)
	setCmd.AddCommand(setRateCmd)
	setCmd.AddCommand(setEditCmd)
	setCmd.AddCommand(setNextIDCmd)
}

// SetCmd returns the set command
func SetCmd() *cobra.Command {
	return setCmd
}
