package app

import (
	"context"
	"fmt"

	"github.com/example/morg/internal/core/garment"
	"github.com/example/morg/internal/core/history"
	"github.com/example/morg/internal/ctxutil"
	"github.com/example/morg/internal/logger"
	"github.com/example/morg/internal/ports/primary"
	"github.com/example/morg/internal/ports/secondary"
)

// LegacyOpener opens a legacy wardrobe database.
type LegacyOpener func(path string) (secondary.LegacyCatalogSource, error)

// ImportServiceImpl implements the ImportService interface.
type ImportServiceImpl struct {
	open        LegacyOpener
	garmentRepo secondary.GarmentRepository
	historyRepo secondary.HistoryRepository
	logWriter   secondary.LogWriter
}

// NewImportService creates a new ImportService with injected dependencies.
func NewImportService(
	open LegacyOpener,
	garmentRepo secondary.GarmentRepository,
	historyRepo secondary.HistoryRepository,
	logWriter secondary.LogWriter,
) *ImportServiceImpl {
	return &ImportServiceImpl{
		open:        open,
		garmentRepo: garmentRepo,
		historyRepo: historyRepo,
		logWriter:   logWriter,
	}
}

// ImportLegacy copies garments and sets from the legacy database at path.
func (s *ImportServiceImpl) ImportLegacy(ctx context.Context, path string) (*primary.ImportResult, error) {
	src, err := s.open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	ctx = ctxutil.WithActorID(ctx, ctxutil.ActorImport)
	result := &primary.ImportResult{}

	garments, found, err := src.ReadGarments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read legacy garments: %w", err)
	}
	if !found {
		result.MissingTables = append(result.MissingTables, "ClothesData")
	}
	for _, g := range garments {
		if err := s.importGarment(ctx, g, result); err != nil {
			return result, err
		}
	}

	entries, found, err := src.ReadHistory(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to read legacy history: %w", err)
	}
	if !found {
		result.MissingTables = append(result.MissingTables, "HistoryData")
	}
	for _, h := range entries {
		if err := s.importHistory(ctx, h, result); err != nil {
			return result, err
		}
	}

	logger.Info("legacy import finished",
		"path", path,
		"garments", result.GarmentsImported,
		"sets", result.HistoryImported,
		"skipped", result.GarmentsSkipped+result.HistorySkipped,
		"invalid", result.GarmentsInvalid+result.HistoryInvalid,
	)
	return result, nil
}

func (s *ImportServiceImpl) importGarment(ctx context.Context, g *secondary.GarmentRecord, result *primary.ImportResult) error {
	if g.ID <= 0 {
		result.GarmentsInvalid++
		return nil
	}

	exists, err := s.garmentRepo.Exists(ctx, g.ID)
	if err != nil {
		return err
	}
	if exists {
		result.GarmentsSkipped++
		return nil
	}

	g.Color1 = garment.NormalizeColor(g.Color1)
	g.Color2 = garment.NormalizeColor(g.Color2)
	g.Color3 = garment.NormalizeColor(g.Color3)

	guards := []garment.GuardResult{
		garment.CanCreateGarment(garment.CreateGarmentContext{
			Name:   g.Name,
			Kind:   g.Kind,
			Colors: [3]string{g.Color1, g.Color2, g.Color3},
		}),
		garment.CanSetClear(g.Clear),
		garment.CanSetRate(g.Rate),
	}
	for _, r := range guards {
		if !r.Allowed {
			logger.Warn("skipping legacy garment", "id", g.ID, "reason", r.Reason)
			result.GarmentsInvalid++
			return nil
		}
	}

	if g.PhotoReference == "" {
		g.PhotoReference = garment.PhotoPath(g.ID)
	}

	if err := s.garmentRepo.Create(ctx, g); err != nil {
		return fmt.Errorf("failed to import garment %d: %w", g.ID, err)
	}
	if s.logWriter != nil {
		if err := s.logWriter.LogCreate(ctx, secondary.EntityGarment, g.ID); err != nil {
			logger.Warn("failed to write change log", "entity", secondary.EntityGarment, "id", g.ID, "error", err)
		}
	}
	result.GarmentsImported++
	return nil
}

func (s *ImportServiceImpl) importHistory(ctx context.Context, h *secondary.HistoryRecord, result *primary.ImportResult) error {
	if h.ID <= 0 {
		result.HistoryInvalid++
		return nil
	}

	exists, err := s.historyRepo.Exists(ctx, h.ID)
	if err != nil {
		return err
	}
	if exists {
		result.HistorySkipped++
		return nil
	}

	guard := history.CanCreateEntry(history.CreateEntryContext{Date: h.Date, Rate: h.Rate})
	if !guard.Allowed {
		logger.Warn("skipping legacy set", "id", h.ID, "reason", guard.Reason)
		result.HistoryInvalid++
		return nil
	}

	if h.PhotoReference == "" {
		h.PhotoReference = history.PhotoPath(h.Date)
	}

	if err := s.historyRepo.Create(ctx, h); err != nil {
		return fmt.Errorf("failed to import set %d: %w", h.ID, err)
	}
	if s.logWriter != nil {
		if err := s.logWriter.LogCreate(ctx, secondary.EntityHistory, h.ID); err != nil {
			logger.Warn("failed to write change log", "entity", secondary.EntityHistory, "id", h.ID, "error", err)
		}
	}
	result.HistoryImported++
	return nil
}

// Ensure ImportServiceImpl implements the interface
var _ primary.ImportService = (*ImportServiceImpl)(nil)
