package app

import (
	"context"
	"fmt"

	"github.com/example/morg/internal/core/garment"
	"github.com/example/morg/internal/core/history"
	"github.com/example/morg/internal/ports/primary"
	"github.com/example/morg/internal/ports/secondary"
)

// PhotoServiceImpl implements the PhotoService interface.
type PhotoServiceImpl struct {
	query   primary.CatalogQueryService
	store   secondary.PhotoStore
	watcher secondary.PhotoWatcher
}

// NewPhotoService creates a new PhotoService with injected dependencies.
func NewPhotoService(query primary.CatalogQueryService, store secondary.PhotoStore, watcher secondary.PhotoWatcher) *PhotoServiceImpl {
	return &PhotoServiceImpl{
		query:   query,
		store:   store,
		watcher: watcher,
	}
}

// Status reports photo presence for every garment, then every set.
func (s *PhotoServiceImpl) Status(ctx context.Context) ([]primary.PhotoStatus, error) {
	garments, err := s.query.ListGarments(ctx, primary.GarmentFilters{})
	if err != nil {
		return nil, err
	}
	sets, err := s.query.ListHistory(ctx)
	if err != nil {
		return nil, err
	}

	statuses := make([]primary.PhotoStatus, 0, len(garments)+len(sets))
	for _, g := range garments {
		st, err := s.check(ctx, secondary.EntityGarment, g.Name, g.PhotoReference)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, st)
	}
	for _, h := range sets {
		st, err := s.check(ctx, secondary.EntityHistory, h.Date, h.PhotoReference)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, st)
	}
	return statuses, nil
}

// Watch forwards photo events as notices matched to garments and sets.
// It returns when ctx is cancelled or the watcher fails.
func (s *PhotoServiceImpl) Watch(ctx context.Context, notices chan<- primary.PhotoNotice) error {
	if err := s.store.EnsureDirs(ctx); err != nil {
		return err
	}

	events := make(chan secondary.PhotoEvent)
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.watcher.Watch(ctx, events)
	}()

	for {
		select {
		case <-ctx.Done():
			return <-errCh
		case err := <-errCh:
			return err
		case ev := <-events:
			notice := primary.PhotoNotice{Ref: ev.Ref, Op: ev.Op}
			s.match(ctx, &notice)
			select {
			case notices <- notice:
			case <-ctx.Done():
				return <-errCh
			}
		}
	}
}

func (s *PhotoServiceImpl) check(ctx context.Context, entityType, key, ref string) (primary.PhotoStatus, error) {
	st := primary.PhotoStatus{EntityType: entityType, Key: key, Ref: ref}
	path, err := s.store.Resolve(ref)
	if err != nil {
		// A malformed reference is reported as missing rather than failing the listing.
		return st, nil
	}
	st.Path = path
	present, err := s.store.Exists(ctx, ref)
	if err != nil {
		return st, fmt.Errorf("failed to check photo %s: %w", ref, err)
	}
	st.Present = present
	return st, nil
}

// match fills EntityType and Key when the reference follows a convention
// and the catalog has a matching row.
func (s *PhotoServiceImpl) match(ctx context.Context, notice *primary.PhotoNotice) {
	if id := garment.ParsePhotoID(notice.Ref); id > 0 {
		if g, err := s.query.GetGarment(ctx, id); err == nil && g != nil {
			notice.EntityType = secondary.EntityGarment
			notice.Key = g.Name
		}
		return
	}
	if date := history.ParsePhotoDate(notice.Ref); date != "" {
		if h, err := s.query.FindByDate(ctx, date); err == nil && h != nil {
			notice.EntityType = secondary.EntityHistory
			notice.Key = h.Date
		}
	}
}

// Ensure PhotoServiceImpl implements the interface
var _ primary.PhotoService = (*PhotoServiceImpl)(nil)
