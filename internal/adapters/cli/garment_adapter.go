package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/morg/internal/core/garment"
	"github.com/example/morg/internal/core/rating"
	"github.com/example/morg/internal/ports/primary"
)

// GarmentAdapter translates CLI garment operations to catalog service calls.
type GarmentAdapter struct {
	query    primary.CatalogQueryService
	mutation primary.CatalogMutationService
	out      io.Writer
}

// NewGarmentAdapter creates a new GarmentAdapter.
func NewGarmentAdapter(query primary.CatalogQueryService, mutation primary.CatalogMutationService, out io.Writer) *GarmentAdapter {
	return &GarmentAdapter{
		query:    query,
		mutation: mutation,
		out:      out,
	}
}

// List prints garments matching filters as a table.
func (a *GarmentAdapter) List(ctx context.Context, filters primary.GarmentFilters) ([]*primary.Garment, error) {
	garments, err := a.query.ListGarments(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list garments: %w", err)
	}

	if len(garments) == 0 {
		fmt.Fprintln(a.out, "No garments found.")
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Add your first garment:")
		fmt.Fprintln(a.out, "  morg garment add \"Blue Hoodie\" --kind hoodies --color1 1e90ff")
		return garments, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tKIND\tCOLORS\tCLEAN\tRATE")
	fmt.Fprintln(w, "--\t----\t----\t------\t-----\t----")

	for _, g := range garments {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			g.ID,
			g.Name,
			g.Kind,
			swatches(g.Color1, g.Color2, g.Color3),
			cleanMark(g.Clear),
			rating.Stars(g.Rate),
		)
	}

	w.Flush()
	return garments, nil
}

// Show prints the details of the garment with name.
func (a *GarmentAdapter) Show(ctx context.Context, name string) (*primary.Garment, error) {
	g, err := a.query.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get garment: %w", err)
	}
	if g == nil {
		return nil, fmt.Errorf("garment %q not found", name)
	}

	fmt.Fprintf(a.out, "\nGarment: %d\n", g.ID)
	fmt.Fprintf(a.out, "Name:        %s\n", g.Name)
	fmt.Fprintf(a.out, "Kind:        %s\n", g.Kind)
	fmt.Fprintf(a.out, "Colors:      %s\n", describeColors(g.Color1, g.Color2, g.Color3))
	fmt.Fprintf(a.out, "Clean:       %s\n", cleanMark(g.Clear))
	fmt.Fprintf(a.out, "Rate:        %s\n", rating.Stars(g.Rate))
	fmt.Fprintf(a.out, "Photo:       %s\n", g.PhotoReference)
	if g.Description != "" {
		fmt.Fprintf(a.out, "Description: %s\n", g.Description)
	}
	if g.Exclusions != "" {
		fmt.Fprintf(a.out, "Exclusions:  %s\n", g.Exclusions)
	}
	if g.CreatedAt != "" {
		fmt.Fprintf(a.out, "Created:     %s\n", g.CreatedAt)
	}
	fmt.Fprintln(a.out)

	return g, nil
}

// Colors prints every garment name with its colour swatches.
func (a *GarmentAdapter) Colors(ctx context.Context) ([]primary.NameColors, error) {
	triples, err := a.query.ListNameColorTriples(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list colors: %w", err)
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	for _, t := range triples {
		fmt.Fprintf(w, "%s\t%s\n", t.Name, describeColors(t.Color1, t.Color2, t.Color3))
	}
	w.Flush()
	return triples, nil
}

// Add inserts a garment and prints its ID and photo slot.
func (a *GarmentAdapter) Add(ctx context.Context, draft primary.GarmentDraft) (int, error) {
	id, err := a.mutation.InsertGarment(ctx, draft)
	if err != nil {
		return 0, err
	}

	fmt.Fprintf(a.out, "✓ Added garment %d: %s\n", id, draft.Name)
	fmt.Fprintf(a.out, "  Photo: %s\n", garment.PhotoPath(id))
	return id, nil
}

// Rate sets a garment's rating.
func (a *GarmentAdapter) Rate(ctx context.Context, name, rate string) error {
	if err := a.mutation.UpdateRateByName(ctx, name, rate); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Rated %s: %s\n", name, rating.Stars(rate))
	return nil
}

// SetClean sets a garment's clean flag.
func (a *GarmentAdapter) SetClean(ctx context.Context, name string, clean bool) error {
	if err := a.mutation.UpdateClear(ctx, name, garment.ClearValue(clean)); err != nil {
		return err
	}
	if clean {
		fmt.Fprintf(a.out, "✓ %s marked clean\n", name)
	} else {
		fmt.Fprintf(a.out, "✓ %s marked dirty\n", name)
	}
	return nil
}

// Edit renames a garment and replaces its description and exclusions.
func (a *GarmentAdapter) Edit(ctx context.Context, edit primary.IdentityEdit) error {
	if err := a.mutation.UpdateIdentity(ctx, edit); err != nil {
		return err
	}
	if edit.OldName != edit.NewName {
		fmt.Fprintf(a.out, "✓ Garment renamed\n")
		fmt.Fprintf(a.out, "  %s → %s\n", edit.OldName, edit.NewName)
	} else {
		fmt.Fprintf(a.out, "✓ Garment %s updated\n", edit.NewName)
	}
	return nil
}

// Delete removes a garment by ID.
func (a *GarmentAdapter) Delete(ctx context.Context, id int) (*primary.Garment, error) {
	g, err := a.query.GetGarment(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get garment: %w", err)
	}

	if err := a.mutation.DeleteGarment(ctx, id); err != nil {
		return nil, err
	}

	if g != nil {
		fmt.Fprintf(a.out, "✓ Deleted garment %d: %s\n", g.ID, g.Name)
	} else {
		fmt.Fprintf(a.out, "✓ Deleted garment %d\n", id)
	}
	return g, nil
}

// NextID prints the ID the next garment will receive.
func (a *GarmentAdapter) NextID(ctx context.Context) (int, error) {
	id, err := a.mutation.NextGarmentID(ctx)
	if err != nil {
		return 0, err
	}
	fmt.Fprintln(a.out, id)
	return id, nil
}

// swatches renders one truecolor block per non-empty colour code.
func swatches(colors ...string) string {
	var parts []string
	for _, c := range colors {
		if c == "" {
			continue
		}
		parts = append(parts, swatch(c))
	}
	return strings.Join(parts, "")
}

// describeColors renders each colour as a swatch followed by its code.
func describeColors(colors ...string) string {
	var parts []string
	for _, c := range colors {
		if c == "" {
			continue
		}
		parts = append(parts, swatch(c)+" "+c)
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, "  ")
}

func swatch(c string) string {
	r, g, b, ok := garment.RGB(c)
	if !ok {
		return "?"
	}
	// 48;2;r;g;b is the truecolor background escape.
	bg := color.New(color.Attribute(48), color.Attribute(2),
		color.Attribute(r), color.Attribute(g), color.Attribute(b))
	return bg.Sprint("  ")
}

func cleanMark(clear string) string {
	if garment.IsClean(clear) {
		return color.New(color.FgGreen).Sprint("clean")
	}
	return color.New(color.FgYellow).Sprint("dirty")
}
