package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/example/morg/internal/core/history"
	"github.com/example/morg/internal/core/rating"
	"github.com/example/morg/internal/ports/primary"
)

// HistoryAdapter translates CLI set operations to catalog service calls.
type HistoryAdapter struct {
	query    primary.CatalogQueryService
	mutation primary.CatalogMutationService
	out      io.Writer
}

// NewHistoryAdapter creates a new HistoryAdapter.
func NewHistoryAdapter(query primary.CatalogQueryService, mutation primary.CatalogMutationService, out io.Writer) *HistoryAdapter {
	return &HistoryAdapter{
		query:    query,
		mutation: mutation,
		out:      out,
	}
}

// List prints every recorded set.
func (a *HistoryAdapter) List(ctx context.Context) ([]*primary.HistoryEntry, error) {
	entries, err := a.query.ListHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sets: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No sets recorded.")
		return entries, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tRATE\tDESCRIPTION")
	fmt.Fprintln(w, "--\t----\t----\t-----------")
	for _, e := range entries {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", e.ID, e.Date, rating.Stars(e.Rate), e.Description)
	}
	w.Flush()
	return entries, nil
}

// Show prints the set recorded on date.
func (a *HistoryAdapter) Show(ctx context.Context, date string) (*primary.HistoryEntry, error) {
	e, err := a.query.FindByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get set: %w", err)
	}
	if e == nil {
		return nil, fmt.Errorf("no set recorded for %s", date)
	}

	fmt.Fprintf(a.out, "\nSet: %d\n", e.ID)
	fmt.Fprintf(a.out, "Date:        %s\n", e.Date)
	fmt.Fprintf(a.out, "Rate:        %s\n", rating.Stars(e.Rate))
	fmt.Fprintf(a.out, "Photo:       %s\n", e.PhotoReference)
	if e.Description != "" {
		fmt.Fprintf(a.out, "Description: %s\n", e.Description)
	}
	fmt.Fprintln(a.out)
	return e, nil
}

// Add records a set.
func (a *HistoryAdapter) Add(ctx context.Context, draft primary.HistoryDraft) (int, error) {
	id, err := a.mutation.InsertHistoryEntry(ctx, draft)
	if err != nil {
		return 0, err
	}
	fmt.Fprintf(a.out, "✓ Recorded set %d for %s\n", id, draft.Date)
	fmt.Fprintf(a.out, "  Photo: %s\n", history.PhotoPath(draft.Date))
	return id, nil
}

// Rate sets the rating of the set recorded on date.
func (a *HistoryAdapter) Rate(ctx context.Context, date, rate string) error {
	if err := a.mutation.UpdateRateByDate(ctx, date, rate); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Rated set %s: %s\n", date, rating.Stars(rate))
	return nil
}

// Edit replaces a set's description and rating.
func (a *HistoryAdapter) Edit(ctx context.Context, edit primary.HistoryEdit) error {
	if err := a.mutation.UpdateDescriptionAndRateHistory(ctx, edit); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Set %s updated\n", edit.Date)
	return nil
}

// NextID prints the ID the next set will receive.
func (a *HistoryAdapter) NextID(ctx context.Context) (int, error) {
	id, err := a.mutation.NextHistoryID(ctx)
	if err != nil {
		return 0, err
	}
	fmt.Fprintln(a.out, id)
	return id, nil
}
