package cli

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/morg/internal/core/garment"
	"github.com/example/morg/internal/ports/primary"
)

// CatalogAdapter prints whole-catalog views: summary, change log, exports,
// imports and photo status.
type CatalogAdapter struct {
	query primary.CatalogQueryService
	out   io.Writer
}

// NewCatalogAdapter creates a new CatalogAdapter.
func NewCatalogAdapter(query primary.CatalogQueryService, out io.Writer) *CatalogAdapter {
	return &CatalogAdapter{query: query, out: out}
}

// Summary prints catalog totals.
func (a *CatalogAdapter) Summary(ctx context.Context) (*primary.CatalogSummary, error) {
	s, err := a.query.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize catalog: %w", err)
	}

	fmt.Fprintf(a.out, "Garments: %d (%d clean, %d dirty)\n", s.Garments, s.Clean, s.Dirty)
	fmt.Fprintf(a.out, "Sets:     %d\n", s.Sets)
	if s.RatedAverage > 0 {
		fmt.Fprintf(a.out, "Average:  %.2f\n", s.RatedAverage)
	}

	if len(s.ByKind) > 0 {
		fmt.Fprintln(a.out)
		w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "KIND\tCOUNT")
		for _, kind := range garment.Kinds {
			if n := s.ByKind[kind]; n > 0 {
				fmt.Fprintf(w, "%s\t%d\n", kind, n)
			}
		}
		w.Flush()
	}

	if len(s.ByRate) > 0 {
		rates := make([]string, 0, len(s.ByRate))
		for r := range s.ByRate {
			rates = append(rates, r)
		}
		sort.Strings(rates)

		fmt.Fprintln(a.out)
		w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "RATE\tCOUNT")
		for _, r := range rates {
			fmt.Fprintf(w, "%s\t%d\n", r, s.ByRate[r])
		}
		w.Flush()
	}

	return s, nil
}

// Log prints the newest change log entries.
func (a *CatalogAdapter) Log(ctx context.Context, limit int) ([]*primary.ChangeLogEntry, error) {
	entries, err := a.query.RecentChanges(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read change log: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No changes recorded.")
		return entries, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "WHEN\tACTOR\tENTITY\tACTION\tCHANGE")
	for _, e := range entries {
		change := ""
		if e.FieldName != "" {
			change = fmt.Sprintf("%s: %q → %q", e.FieldName, e.OldValue, e.NewValue)
		}
		fmt.Fprintf(w, "%s\t%s\t%s %d\t%s\t%s\n",
			e.CreatedAt, e.Actor, e.EntityType, e.EntityID, actionLabel(e.Action), change)
	}
	w.Flush()
	return entries, nil
}

// ExportGarments writes every garment as CSV to w.
func (a *CatalogAdapter) ExportGarments(ctx context.Context, w io.Writer) (int, error) {
	garments, err := a.query.ListGarments(ctx, primary.GarmentFilters{})
	if err != nil {
		return 0, fmt.Errorf("failed to list garments: %w", err)
	}

	cw := csv.NewWriter(w)
	cw.Write([]string{"id", "name", "color1", "color2", "color3", "photo_reference", "description", "exclusions", "clear", "rate", "kind"})
	for _, g := range garments {
		cw.Write([]string{
			strconv.Itoa(g.ID), g.Name, g.Color1, g.Color2, g.Color3,
			g.PhotoReference, g.Description, g.Exclusions, g.Clear, g.Rate, g.Kind,
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("failed to write csv: %w", err)
	}
	return len(garments), nil
}

// ExportHistory writes every set as CSV to w.
func (a *CatalogAdapter) ExportHistory(ctx context.Context, w io.Writer) (int, error) {
	entries, err := a.query.ListHistory(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list sets: %w", err)
	}

	cw := csv.NewWriter(w)
	cw.Write([]string{"id", "date", "photo_reference", "description", "rate"})
	for _, e := range entries {
		cw.Write([]string{strconv.Itoa(e.ID), e.Date, e.PhotoReference, e.Description, e.Rate})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("failed to write csv: %w", err)
	}
	return len(entries), nil
}

// ImportResult prints what an import did.
func (a *CatalogAdapter) ImportResult(path string, res *primary.ImportResult) {
	fmt.Fprintf(a.out, "✓ Imported from %s\n", path)
	fmt.Fprintf(a.out, "  Garments: %d imported, %d skipped, %d invalid\n",
		res.GarmentsImported, res.GarmentsSkipped, res.GarmentsInvalid)
	fmt.Fprintf(a.out, "  Sets:     %d imported, %d skipped, %d invalid\n",
		res.HistoryImported, res.HistorySkipped, res.HistoryInvalid)
	for _, table := range res.MissingTables {
		fmt.Fprintf(a.out, "  %s %s table not found\n", color.New(color.FgYellow).Sprint("!"), table)
	}
}

// PhotoStatus prints which convention photos exist. Only missing photos are
// printed unless all is set.
func (a *CatalogAdapter) PhotoStatus(statuses []primary.PhotoStatus, all bool) (missing int) {
	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	for _, s := range statuses {
		if !s.Present {
			missing++
		}
		if s.Present && !all {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", presenceMark(s.Present), s.EntityType, s.Key, s.Ref)
	}
	w.Flush()

	fmt.Fprintf(a.out, "%d of %d photos present\n", len(statuses)-missing, len(statuses))
	return missing
}

// PhotoNotice prints one watched photo change.
func (a *CatalogAdapter) PhotoNotice(n primary.PhotoNotice) {
	if n.EntityType == "" {
		fmt.Fprintf(a.out, "%s %s (unmatched)\n", n.Op, n.Ref)
		return
	}
	fmt.Fprintf(a.out, "%s %s → %s %s\n", n.Op, n.Ref, n.EntityType, n.Key)
}

func presenceMark(present bool) string {
	if present {
		return color.New(color.FgGreen).Sprint("✓")
	}
	return color.New(color.FgRed).Sprint("MISSING")
}

func actionLabel(action string) string {
	switch action {
	case "create":
		return color.New(color.FgGreen).Sprint(action)
	case "delete":
		return color.New(color.FgRed).Sprint(action)
	default:
		return color.New(color.FgCyan).Sprint(action)
	}
}
