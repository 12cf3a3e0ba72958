package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/morg/internal/apperr"
	"github.com/example/morg/internal/ports/primary"
	"github.com/example/morg/internal/ports/secondary"
)

// CatalogQueryServiceImpl implements the CatalogQueryService interface.
type CatalogQueryServiceImpl struct {
	garmentRepo   secondary.GarmentRepository
	historyRepo   secondary.HistoryRepository
	changeLogRepo secondary.ChangeLogRepository
}

// NewCatalogQueryService creates a new CatalogQueryService with injected dependencies.
func NewCatalogQueryService(
	garmentRepo secondary.GarmentRepository,
	historyRepo secondary.HistoryRepository,
	changeLogRepo secondary.ChangeLogRepository,
) *CatalogQueryServiceImpl {
	return &CatalogQueryServiceImpl{
		garmentRepo:   garmentRepo,
		historyRepo:   historyRepo,
		changeLogRepo: changeLogRepo,
	}
}

// FindByName returns the lowest-id garment named name, or nil if none.
func (s *CatalogQueryServiceImpl) FindByName(ctx context.Context, name string) (*primary.Garment, error) {
	if strings.TrimSpace(name) == "" {
		return nil, nil
	}
	record, err := s.garmentRepo.GetByName(ctx, name)
	if apperr.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find garment: %w", err)
	}
	return recordToGarment(record), nil
}

// FindByDate returns the set recorded for date, or nil if none.
func (s *CatalogQueryServiceImpl) FindByDate(ctx context.Context, date string) (*primary.HistoryEntry, error) {
	if strings.TrimSpace(date) == "" {
		return nil, nil
	}
	record, err := s.historyRepo.GetByDate(ctx, date)
	if apperr.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find history entry: %w", err)
	}
	return recordToHistoryEntry(record), nil
}

// GetGarment returns a garment by ID, or nil if none.
func (s *CatalogQueryServiceImpl) GetGarment(ctx context.Context, id int) (*primary.Garment, error) {
	record, err := s.garmentRepo.GetByID(ctx, id)
	if apperr.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get garment: %w", err)
	}
	return recordToGarment(record), nil
}

// ListByKind returns names of garments of one kind. Unknown kinds yield an empty list.
func (s *CatalogQueryServiceImpl) ListByKind(ctx context.Context, kind string) ([]string, error) {
	return s.listNames(ctx, secondary.GarmentFilters{Kind: kind})
}

// ListByRate returns names of garments with one rating.
func (s *CatalogQueryServiceImpl) ListByRate(ctx context.Context, rate string) ([]string, error) {
	return s.listNames(ctx, secondary.GarmentFilters{Rate: rate})
}

// ListAllNames returns every garment name in id order.
func (s *CatalogQueryServiceImpl) ListAllNames(ctx context.Context) ([]string, error) {
	names := []string{}
	for record, err := range s.garmentRepo.Scan(ctx) {
		if err != nil {
			return nil, fmt.Errorf("failed to list garment names: %w", err)
		}
		names = append(names, record.Name)
	}
	return names, nil
}

// ListAllDates returns every history date in id order.
func (s *CatalogQueryServiceImpl) ListAllDates(ctx context.Context) ([]string, error) {
	dates := []string{}
	for record, err := range s.historyRepo.Scan(ctx) {
		if err != nil {
			return nil, fmt.Errorf("failed to list history dates: %w", err)
		}
		dates = append(dates, record.Date)
	}
	return dates, nil
}

// ListNameColorTriples returns each garment name with its three colours.
func (s *CatalogQueryServiceImpl) ListNameColorTriples(ctx context.Context) ([]primary.NameColors, error) {
	triples := []primary.NameColors{}
	for record, err := range s.garmentRepo.Scan(ctx) {
		if err != nil {
			return nil, fmt.Errorf("failed to list garment colors: %w", err)
		}
		triples = append(triples, primary.NameColors{
			Name:   record.Name,
			Color1: record.Color1,
			Color2: record.Color2,
			Color3: record.Color3,
		})
	}
	return triples, nil
}

// ListGarments returns full garment records matching filters.
func (s *CatalogQueryServiceImpl) ListGarments(ctx context.Context, filters primary.GarmentFilters) ([]*primary.Garment, error) {
	records, err := s.garmentRepo.List(ctx, secondary.GarmentFilters{
		Kind:  filters.Kind,
		Rate:  filters.Rate,
		Clear: filters.Clear,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list garments: %w", err)
	}

	garments := make([]*primary.Garment, len(records))
	for i, r := range records {
		garments[i] = recordToGarment(r)
	}
	return garments, nil
}

// ListHistory returns every history entry in id order.
func (s *CatalogQueryServiceImpl) ListHistory(ctx context.Context) ([]*primary.HistoryEntry, error) {
	records, err := s.historyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	entries := make([]*primary.HistoryEntry, len(records))
	for i, r := range records {
		entries[i] = recordToHistoryEntry(r)
	}
	return entries, nil
}

// Summary aggregates garment and set counts.
func (s *CatalogQueryServiceImpl) Summary(ctx context.Context) (*primary.CatalogSummary, error) {
	stats, err := s.garmentRepo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize garments: %w", err)
	}
	sets, err := s.historyRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count sets: %w", err)
	}

	return &primary.CatalogSummary{
		Garments:     stats.Total,
		Clean:        stats.Clean,
		Dirty:        stats.Total - stats.Clean,
		ByKind:       stats.ByKind,
		ByRate:       stats.ByRate,
		RatedAverage: stats.RatedAverage,
		Sets:         sets,
	}, nil
}

// RecentChanges returns up to limit change log entries, newest first.
func (s *CatalogQueryServiceImpl) RecentChanges(ctx context.Context, limit int) ([]*primary.ChangeLogEntry, error) {
	records, err := s.changeLogRepo.List(ctx, secondary.ChangeLogFilters{Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("failed to list changes: %w", err)
	}

	entries := make([]*primary.ChangeLogEntry, len(records))
	for i, r := range records {
		entries[i] = &primary.ChangeLogEntry{
			ID:         r.ID,
			Actor:      r.Actor,
			EntityType: r.EntityType,
			EntityID:   r.EntityID,
			Action:     r.Action,
			FieldName:  r.FieldName,
			OldValue:   r.OldValue,
			NewValue:   r.NewValue,
			CreatedAt:  r.CreatedAt,
		}
	}
	return entries, nil
}

func (s *CatalogQueryServiceImpl) listNames(ctx context.Context, filters secondary.GarmentFilters) ([]string, error) {
	records, err := s.garmentRepo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list garments: %w", err)
	}
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Name
	}
	return names, nil
}

// Helper methods

func recordToGarment(r *secondary.GarmentRecord) *primary.Garment {
	return &primary.Garment{
		ID:             r.ID,
		Name:           r.Name,
		Color1:         r.Color1,
		Color2:         r.Color2,
		Color3:         r.Color3,
		PhotoReference: r.PhotoReference,
		Description:    r.Description,
		Exclusions:     r.Exclusions,
		Clear:          r.Clear,
		Rate:           r.Rate,
		Kind:           r.Kind,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func recordToHistoryEntry(r *secondary.HistoryRecord) *primary.HistoryEntry {
	return &primary.HistoryEntry{
		ID:             r.ID,
		Date:           r.Date,
		PhotoReference: r.PhotoReference,
		Description:    r.Description,
		Rate:           r.Rate,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// Ensure CatalogQueryServiceImpl implements the interface
var _ primary.CatalogQueryService = (*CatalogQueryServiceImpl)(nil)
