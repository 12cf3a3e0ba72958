package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/example/morg/internal/apperr"
	"github.com/example/morg/internal/core/garment"
	"github.com/example/morg/internal/core/history"
	"github.com/example/morg/internal/core/rating"
	"github.com/example/morg/internal/logger"
	"github.com/example/morg/internal/ports/primary"
	"github.com/example/morg/internal/ports/secondary"
)

// CatalogMutationServiceImpl implements the CatalogMutationService interface.
type CatalogMutationServiceImpl struct {
	garmentRepo secondary.GarmentRepository
	historyRepo secondary.HistoryRepository
	query       primary.CatalogQueryService
	logWriter   secondary.LogWriter

	// insertMu holds next-id and create together so concurrent inserts
	// never compute the same ID.
	insertMu sync.Mutex
}

// NewCatalogMutationService creates a new CatalogMutationService with injected dependencies.
// Key-based updates resolve their target through query.
func NewCatalogMutationService(
	garmentRepo secondary.GarmentRepository,
	historyRepo secondary.HistoryRepository,
	query primary.CatalogQueryService,
	logWriter secondary.LogWriter,
) *CatalogMutationServiceImpl {
	return &CatalogMutationServiceImpl{
		garmentRepo: garmentRepo,
		historyRepo: historyRepo,
		query:       query,
		logWriter:   logWriter,
	}
}

// fieldChange is one field of an update, used for change logging.
type fieldChange struct {
	field              string
	oldValue, newValue string
}

// NextGarmentID returns the ID the next inserted garment will receive.
func (s *CatalogMutationServiceImpl) NextGarmentID(ctx context.Context) (int, error) {
	id, err := s.garmentRepo.GetNextID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get next garment id: %w", err)
	}
	return id, nil
}

// NextHistoryID returns the ID the next inserted history entry will receive.
func (s *CatalogMutationServiceImpl) NextHistoryID(ctx context.Context) (int, error) {
	id, err := s.historyRepo.GetNextID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get next history id: %w", err)
	}
	return id, nil
}

// InsertGarment creates an unrated, not-clean garment from draft.
func (s *CatalogMutationServiceImpl) InsertGarment(ctx context.Context, draft primary.GarmentDraft) (int, error) {
	colors := [3]string{
		garment.NormalizeColor(draft.Color1),
		garment.NormalizeColor(draft.Color2),
		garment.NormalizeColor(draft.Color3),
	}

	guardCtx := garment.CreateGarmentContext{
		Name:   draft.Name,
		Kind:   draft.Kind,
		Colors: colors,
	}
	if err := garment.CanCreateGarment(guardCtx).Error(); err != nil {
		return 0, err
	}

	s.insertMu.Lock()
	defer s.insertMu.Unlock()

	id, err := s.NextGarmentID(ctx)
	if err != nil {
		return 0, err
	}

	record := &secondary.GarmentRecord{
		ID:             id,
		Name:           draft.Name,
		Color1:         colors[0],
		Color2:         colors[1],
		Color3:         colors[2],
		PhotoReference: garment.PhotoPath(id),
		Description:    draft.Description,
		Exclusions:     draft.Exclusions,
		Clear:          garment.ClearFalse,
		Rate:           rating.Unrated,
		Kind:           draft.Kind,
	}
	if err := s.garmentRepo.Create(ctx, record); err != nil {
		return 0, fmt.Errorf("failed to create garment: %w", err)
	}

	s.logCreate(ctx, secondary.EntityGarment, id)
	logger.Info("garment created", "id", id, "name", draft.Name, "kind", draft.Kind)

	return id, nil
}

// InsertHistoryEntry records an outfit for draft.Date.
func (s *CatalogMutationServiceImpl) InsertHistoryEntry(ctx context.Context, draft primary.HistoryDraft) (int, error) {
	guardCtx := history.CreateEntryContext{
		Date: draft.Date,
		Rate: draft.Rate,
	}
	if err := history.CanCreateEntry(guardCtx).Error(); err != nil {
		return 0, err
	}

	s.insertMu.Lock()
	defer s.insertMu.Unlock()

	id, err := s.NextHistoryID(ctx)
	if err != nil {
		return 0, err
	}

	record := &secondary.HistoryRecord{
		ID:             id,
		Date:           draft.Date,
		PhotoReference: history.PhotoPath(draft.Date),
		Description:    draft.Description,
		Rate:           draft.Rate,
	}
	if err := s.historyRepo.Create(ctx, record); err != nil {
		return 0, fmt.Errorf("failed to create history entry: %w", err)
	}

	s.logCreate(ctx, secondary.EntityHistory, id)
	logger.Info("history entry created", "id", id, "date", draft.Date)

	return id, nil
}

// UpdateRateByName sets the rating of the garment named name.
func (s *CatalogMutationServiceImpl) UpdateRateByName(ctx context.Context, name, rate string) error {
	if err := garment.CanSetRate(rate).Error(); err != nil {
		return err
	}

	g, err := s.resolveGarment(ctx, name)
	if err != nil {
		return err
	}

	if err := s.garmentRepo.Update(ctx, g.ID, secondary.GarmentPatch{Rate: &rate}); err != nil {
		return fmt.Errorf("failed to update garment rate: %w", err)
	}

	s.logUpdates(ctx, secondary.EntityGarment, g.ID, []fieldChange{{"rate", g.Rate, rate}})
	logger.Info("garment rated", "id", g.ID, "name", name, "rate", rate)
	return nil
}

// UpdateRateByDate sets the rating of the set recorded on date.
func (s *CatalogMutationServiceImpl) UpdateRateByDate(ctx context.Context, date, rate string) error {
	if err := history.CanSetRate(rate).Error(); err != nil {
		return err
	}

	h, err := s.resolveHistory(ctx, date)
	if err != nil {
		return err
	}

	if err := s.historyRepo.Update(ctx, h.ID, secondary.HistoryPatch{Rate: &rate}); err != nil {
		return fmt.Errorf("failed to update set rate: %w", err)
	}

	s.logUpdates(ctx, secondary.EntityHistory, h.ID, []fieldChange{{"rate", h.Rate, rate}})
	logger.Info("set rated", "id", h.ID, "date", date, "rate", rate)
	return nil
}

// UpdateClear sets the clean flag of the garment named name.
func (s *CatalogMutationServiceImpl) UpdateClear(ctx context.Context, name, clear string) error {
	if err := garment.CanSetClear(clear).Error(); err != nil {
		return err
	}

	g, err := s.resolveGarment(ctx, name)
	if err != nil {
		return err
	}

	if err := s.garmentRepo.Update(ctx, g.ID, secondary.GarmentPatch{Clear: &clear}); err != nil {
		return fmt.Errorf("failed to update garment clear flag: %w", err)
	}

	s.logUpdates(ctx, secondary.EntityGarment, g.ID, []fieldChange{{"clear", g.Clear, clear}})
	logger.Info("garment clear flag updated", "id", g.ID, "name", name, "clear", clear)
	return nil
}

// UpdateDescriptionAndRateHistory replaces a set's description and rating.
func (s *CatalogMutationServiceImpl) UpdateDescriptionAndRateHistory(ctx context.Context, edit primary.HistoryEdit) error {
	if err := history.CanSetRate(edit.Rate).Error(); err != nil {
		return err
	}

	h, err := s.resolveHistory(ctx, edit.Date)
	if err != nil {
		return err
	}

	patch := secondary.HistoryPatch{
		Description: &edit.Description,
		Rate:        &edit.Rate,
	}
	if err := s.historyRepo.Update(ctx, h.ID, patch); err != nil {
		return fmt.Errorf("failed to update set: %w", err)
	}

	s.logUpdates(ctx, secondary.EntityHistory, h.ID, []fieldChange{
		{"description", h.Description, edit.Description},
		{"rate", h.Rate, edit.Rate},
	})
	logger.Info("set updated", "id", h.ID, "date", edit.Date)
	return nil
}

// UpdateIdentity renames a garment and replaces its description and exclusions
// in one store update.
func (s *CatalogMutationServiceImpl) UpdateIdentity(ctx context.Context, edit primary.IdentityEdit) error {
	if err := garment.CanRename(edit.NewName).Error(); err != nil {
		return err
	}

	g, err := s.resolveGarment(ctx, edit.OldName)
	if err != nil {
		return err
	}

	patch := secondary.GarmentPatch{
		Name:        &edit.NewName,
		Description: &edit.Description,
		Exclusions:  &edit.Exclusions,
	}
	if err := s.garmentRepo.Update(ctx, g.ID, patch); err != nil {
		return fmt.Errorf("failed to update garment: %w", err)
	}

	s.logUpdates(ctx, secondary.EntityGarment, g.ID, []fieldChange{
		{"name", g.Name, edit.NewName},
		{"description", g.Description, edit.Description},
		{"exclusions", g.Exclusions, edit.Exclusions},
	})
	logger.Info("garment updated", "id", g.ID, "old_name", edit.OldName, "new_name", edit.NewName)
	return nil
}

// DeleteGarment removes a garment by ID.
func (s *CatalogMutationServiceImpl) DeleteGarment(ctx context.Context, id int) error {
	if err := s.garmentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete garment: %w", err)
	}

	s.logDelete(ctx, secondary.EntityGarment, id)
	logger.Info("garment deleted", "id", id)
	return nil
}

// Helper methods

func (s *CatalogMutationServiceImpl) resolveGarment(ctx context.Context, name string) (*primary.Garment, error) {
	g, err := s.query.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, apperr.NotFound("garment %q not found", name)
	}
	return g, nil
}

func (s *CatalogMutationServiceImpl) resolveHistory(ctx context.Context, date string) (*primary.HistoryEntry, error) {
	h, err := s.query.FindByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, apperr.NotFound("no set recorded for %s", date)
	}
	return h, nil
}

// Change log failures never fail the write that triggered them.

func (s *CatalogMutationServiceImpl) logCreate(ctx context.Context, entityType string, id int) {
	if s.logWriter == nil {
		return
	}
	if err := s.logWriter.LogCreate(ctx, entityType, id); err != nil {
		logger.Warn("failed to write change log", "entity", entityType, "id", id, "action", "create", "error", err)
	}
}

func (s *CatalogMutationServiceImpl) logUpdates(ctx context.Context, entityType string, id int, changes []fieldChange) {
	if s.logWriter == nil {
		return
	}
	for _, c := range changes {
		if c.oldValue == c.newValue {
			continue
		}
		if err := s.logWriter.LogUpdate(ctx, entityType, id, c.field, c.oldValue, c.newValue); err != nil {
			logger.Warn("failed to write change log", "entity", entityType, "id", id, "field", c.field, "error", err)
		}
	}
}

func (s *CatalogMutationServiceImpl) logDelete(ctx context.Context, entityType string, id int) {
	if s.logWriter == nil {
		return
	}
	if err := s.logWriter.LogDelete(ctx, entityType, id); err != nil {
		logger.Warn("failed to write change log", "entity", entityType, "id", id, "action", "delete", "error", err)
	}
}

// Ensure CatalogMutationServiceImpl implements the interface
var _ primary.CatalogMutationService = (*CatalogMutationServiceImpl)(nil)
