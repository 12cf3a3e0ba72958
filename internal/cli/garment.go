package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/morg/internal/core/garment"
	"github.com/example/morg/internal/ports/primary"
	"github.com/example/morg/internal/wire"
)

var garmentCmd = &cobra.Command{
	Use:     "garment",
	Aliases: []string{"g"},
	Short:   "Manage garments in the wardrobe",
	Long:    "Add, list, show, rate, and edit garments in the morg catalog",
}

var garmentAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a new garment",
	Long: `Add a new garment. Colours are 6 or 8 digit hex codes (RGB or ARGB),
with or without a leading #. New garments start dirty and unrated.

Kinds: ` + fmt.Sprint(garment.Kinds),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext()
		kind, _ := cmd.Flags().GetString("kind")
		color1, _ := cmd.Flags().GetString("color1")
		color2, _ := cmd.Flags().GetString("color2")
		color3, _ := cmd.Flags().GetString("color3")
		description, _ := cmd.Flags().GetString("description")
		exclusions, _ := cmd.Flags().GetString("exclusions")

		_, err := wire.GarmentAdapter().Add(ctx, primary.GarmentDraft{
			Name:        args[0],
			Color1:      color1,
			Color2:      color2,
			Color3:      color3,
			Description: description,
			Exclusions:  exclusions,
			Kind:        kind,
		})
		return err
	},
}

var garmentShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show garment details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.GarmentAdapter().Show(NewContext(), args[0])
		return err
	},
}

var garmentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List garments",
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, _ := cmd.Flags().GetString("kind")
		rate, _ := cmd.Flags().GetString("rate")
		clean, _ := cmd.Flags().GetBool("clean")
		dirty, _ := cmd.Flags().GetBool("dirty")

		if clean && dirty {
			return fmt.Errorf("--clean and --dirty are mutually exclusive")
		}

		filters := primary.GarmentFilters{Kind: kind, Rate: rate}
		switch {
		case clean:
			filters.Clear = garment.ClearTrue
		case dirty:
			filters.Clear = garment.ClearFalse
		}

		_, err := wire.GarmentAdapter().List(NewContext(), filters)
		return err
	},
}

var garmentNamesCmd = &cobra.Command{
	Use:   "names",
	Short: "Print garment names, one per line",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext()
		kind, _ := cmd.Flags().GetString("kind")
		rate, _ := cmd.Flags().GetString("rate")

		query := wire.CatalogQueryService()
		var (
			names []string
			err   error
		)
		switch {
		case kind != "" && rate != "":
			return fmt.Errorf("--kind and --rate are mutually exclusive")
		case kind != "":
			names, err = query.ListByKind(ctx, kind)
		case rate != "":
			names, err = query.ListByRate(ctx, rate)
		default:
			names, err = query.ListAllNames(ctx)
		}
		if err != nil {
			return fmt.Errorf("failed to list names: %w", err)
		}

		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

var garmentColorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "Show every garment with its colour swatches",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.GarmentAdapter().Colors(NewContext())
		return err
	},
}

var garmentRateCmd = &cobra.Command{
	Use:   "rate [name] [1-5|?]",
	Short: "Rate a garment",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.GarmentAdapter().Rate(NewContext(), args[0], args[1])
	},
}

var garmentCleanCmd = &cobra.Command{
	Use:   "clean [name]",
	Short: "Mark a garment clean",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.GarmentAdapter().SetClean(NewContext(), args[0], true)
	},
}

var garmentDirtyCmd = &cobra.Command{
	Use:   "dirty [name]",
	Short: "Mark a garment dirty",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.GarmentAdapter().SetClean(NewContext(), args[0], false)
	},
}

var garmentEditCmd = &cobra.Command{
	Use:   "edit [name]",
	Short: "Rename a garment or change its description and exclusions",
	Long: `Rename a garment or change its description and exclusions.
Fields without a flag keep their current value.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext()
		name := args[0]

		current, err := wire.CatalogQueryService().FindByName(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to get garment: %w", err)
		}
		if current == nil {
			return fmt.Errorf("garment %q not found", name)
		}

		edit := primary.IdentityEdit{
			OldName:     name,
			NewName:     current.Name,
			Description: current.Description,
			Exclusions:  current.Exclusions,
		}
		if cmd.Flags().Changed("name") {
			edit.NewName, _ = cmd.Flags().GetString("name")
		}
		if cmd.Flags().Changed("description") {
			edit.Description, _ = cmd.Flags().GetString("description")
		}
		if cmd.Flags().Changed("exclusions") {
			edit.Exclusions, _ = cmd.Flags().GetString("exclusions")
		}

		return wire.GarmentAdapter().Edit(ctx, edit)
	},
}

var garmentDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a garment by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid garment id %q", args[0])
		}
		_, err = wire.GarmentAdapter().Delete(NewContext(), id)
		return err
	},
}

var garmentNextIDCmd = &cobra.Command{
	Use:   "next-id",
	Short: "Print the ID the next garment will receive",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.GarmentAdapter().NextID(NewContext())
		return err
	},
}

func init() {
	// garment add flags
	garmentAddCmd.Flags().StringP("kind", "k", "", "Garment kind (required)")
	garmentAddCmd.Flags().String("color1", "", "Primary colour hex code")
	garmentAddCmd.Flags().String("color2", "", "Secondary colour hex code")
	garmentAddCmd.Flags().String("color3", "", "Tertiary colour hex code")
	garmentAddCmd.Flags().StringP("description", "d", "", "Description")
	garmentAddCmd.Flags().StringP("exclusions", "x", "", "Garments this should not be worn with")
	garmentAddCmd.MarkFlagRequired("kind")

	// garment list flags
	garmentListCmd.Flags().StringP("kind", "k", "", "Filter by kind")
	garmentListCmd.Flags().StringP("rate", "r", "", "Filter by rating (1-5 or ?)")
	garmentListCmd.Flags().Bool("clean", false, "Only clean garments")
	garmentListCmd.Flags().Bool("dirty", false, "Only dirty garments")

	// garment names flags
	garmentNamesCmd.Flags().StringP("kind", "k", "", "Only garments of this kind")
	garmentNamesCmd.Flags().StringP("rate", "r", "", "Only garments with this rating")

	// garment edit flags
	garmentEditCmd.Flags().String("name", "", "New name")
	garmentEditCmd.Flags().StringP("description", "d", "", "New description")
	garmentEditCmd.Flags().StringP("exclusions", "x", "", "New exclusions")

	garmentCmd.AddCommand(garmentAddCmd)
	garmentCmd.AddCommand(garmentShowCmd)
	garmentCmd.AddCommand(garmentListCmd)
	garmentCmd.AddCommand(garmentNamesCmd)
	garmentCmd.AddCommand(garmentColorsCmd)
	garmentCmd.AddCommand(garmentRateCmd)
	garmentCmd.AddCommand(garmentCleanCmd)
	garmentCmd.AddCommand(garmentDirtyCmd)
	garmentCmd.AddCommand(garmentEditCmd)
	garmentCmd.AddCommand(garmentDeleteCmd)
	garmentCmd.AddCommand(garmentNextIDCmd)
}

// GarmentCmd returns the garment command
func GarmentCmd() *cobra.Command {
	return garmentCmd
}
