package app

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/example/morg/internal/apperr"
	"github.com/example/morg/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockGarmentRepository implements secondary.GarmentRepository for testing.
type mockGarmentRepository struct {
	garments  map[int]*secondary.GarmentRecord
	highWater int
	createErr error
	getErr    error
	updateErr error
	listErr   error
}

func newMockGarmentRepository() *mockGarmentRepository {
	return &mockGarmentRepository{
		garments: make(map[int]*secondary.GarmentRecord),
	}
}

func (m *mockGarmentRepository) sortedIDs() []int {
	ids := make([]int, 0, len(m.garments))
	for id := range m.garments {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (m *mockGarmentRepository) Create(ctx context.Context, g *secondary.GarmentRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.garments[g.ID]; ok {
		return apperr.Store(errors.New("UNIQUE constraint failed"), "failed to create garment %d", g.ID)
	}
	copied := *g
	m.garments[g.ID] = &copied
	if g.ID > m.highWater {
		m.highWater = g.ID
	}
	return nil
}

func (m *mockGarmentRepository) GetByID(ctx context.Context, id int) (*secondary.GarmentRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if g, ok := m.garments[id]; ok {
		copied := *g
		return &copied, nil
	}
	return nil, apperr.NotFound("garment %d not found", id)
}

func (m *mockGarmentRepository) GetByName(ctx context.Context, name string) (*secondary.GarmentRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, id := range m.sortedIDs() {
		if m.garments[id].Name == name {
			copied := *m.garments[id]
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("garment %q not found", name)
}

func (m *mockGarmentRepository) List(ctx context.Context, filters secondary.GarmentFilters) ([]*secondary.GarmentRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*secondary.GarmentRecord
	for _, id := range m.sortedIDs() {
		g := m.garments[id]
		if filters.Kind != "" && g.Kind != filters.Kind {
			continue
		}
		if filters.Rate != "" && g.Rate != filters.Rate {
			continue
		}
		if filters.Clear != "" && g.Clear != filters.Clear {
			continue
		}
		result = append(result, g)
	}
	return result, nil
}

func (m *mockGarmentRepository) Scan(ctx context.Context) iter.Seq2[*secondary.GarmentRecord, error] {
	return func(yield func(*secondary.GarmentRecord, error) bool) {
		if m.listErr != nil {
			yield(nil, m.listErr)
			return
		}
		for _, id := range m.sortedIDs() {
			if !yield(m.garments[id], nil) {
				return
			}
		}
	}
}

func (m *mockGarmentRepository) Update(ctx context.Context, id int, patch secondary.GarmentPatch) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	g, ok := m.garments[id]
	if !ok {
		return apperr.NotFound("garment %d not found", id)
	}
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&g.Name, patch.Name)
	set(&g.Color1, patch.Color1)
	set(&g.Color2, patch.Color2)
	set(&g.Color3, patch.Color3)
	set(&g.PhotoReference, patch.PhotoReference)
	set(&g.Description, patch.Description)
	set(&g.Exclusions, patch.Exclusions)
	set(&g.Clear, patch.Clear)
	set(&g.Rate, patch.Rate)
	set(&g.Kind, patch.Kind)
	return nil
}

func (m *mockGarmentRepository) Delete(ctx context.Context, id int) error {
	if _, ok := m.garments[id]; !ok {
		return apperr.NotFound("garment %d not found", id)
	}
	delete(m.garments, id)
	return nil
}

func (m *mockGarmentRepository) GetNextID(ctx context.Context) (int, error) {
	return m.highWater + 1, nil
}

func (m *mockGarmentRepository) Exists(ctx context.Context, id int) (bool, error) {
	_, ok := m.garments[id]
	return ok, nil
}

func (m *mockGarmentRepository) Stats(ctx context.Context) (*secondary.GarmentStats, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	stats := &secondary.GarmentStats{ByKind: map[string]int{}, ByRate: map[string]int{}}
	sum, rated := 0, 0
	for _, g := range m.garments {
		stats.Total++
		if g.Clear == "True" {
			stats.Clean++
		}
		stats.ByKind[g.Kind]++
		stats.ByRate[g.Rate]++
		if g.Rate != "?" {
			sum += int(g.Rate[0] - '0')
			rated++
		}
	}
	if rated > 0 {
		stats.RatedAverage = float64(sum) / float64(rated)
	}
	return stats, nil
}

// mockHistoryRepository implements secondary.HistoryRepository for testing.
type mockHistoryRepository struct {
	entries   map[int]*secondary.HistoryRecord
	highWater int
	createErr error
	getErr    error
}

func newMockHistoryRepository() *mockHistoryRepository {
	return &mockHistoryRepository{
		entries: make(map[int]*secondary.HistoryRecord),
	}
}

func (m *mockHistoryRepository) sortedIDs() []int {
	ids := make([]int, 0, len(m.entries))
	for id := range m.entries {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (m *mockHistoryRepository) Create(ctx context.Context, h *secondary.HistoryRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	copied := *h
	m.entries[h.ID] = &copied
	if h.ID > m.highWater {
		m.highWater = h.ID
	}
	return nil
}

func (m *mockHistoryRepository) GetByID(ctx context.Context, id int) (*secondary.HistoryRecord, error) {
	if h, ok := m.entries[id]; ok {
		copied := *h
		return &copied, nil
	}
	return nil, apperr.NotFound("history entry %d not found", id)
}

func (m *mockHistoryRepository) GetByDate(ctx context.Context, date string) (*secondary.HistoryRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, id := range m.sortedIDs() {
		if m.entries[id].Date == date {
			copied := *m.entries[id]
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("history entry for %s not found", date)
}

func (m *mockHistoryRepository) List(ctx context.Context) ([]*secondary.HistoryRecord, error) {
	var result []*secondary.HistoryRecord
	for _, id := range m.sortedIDs() {
		result = append(result, m.entries[id])
	}
	return result, nil
}

func (m *mockHistoryRepository) Scan(ctx context.Context) iter.Seq2[*secondary.HistoryRecord, error] {
	return func(yield func(*secondary.HistoryRecord, error) bool) {
		for _, id := range m.sortedIDs() {
			if !yield(m.entries[id], nil) {
				return
			}
		}
	}
}

func (m *mockHistoryRepository) Update(ctx context.Context, id int, patch secondary.HistoryPatch) error {
	h, ok := m.entries[id]
	if !ok {
		return apperr.NotFound("history entry %d not found", id)
	}
	if patch.Date != nil {
		h.Date = *patch.Date
	}
	if patch.PhotoReference != nil {
		h.PhotoReference = *patch.PhotoReference
	}
	if patch.Description != nil {
		h.Description = *patch.Description
	}
	if patch.Rate != nil {
		h.Rate = *patch.Rate
	}
	return nil
}

func (m *mockHistoryRepository) GetNextID(ctx context.Context) (int, error) {
	return m.highWater + 1, nil
}

func (m *mockHistoryRepository) Exists(ctx context.Context, id int) (bool, error) {
	_, ok := m.entries[id]
	return ok, nil
}

func (m *mockHistoryRepository) Count(ctx context.Context) (int, error) {
	return len(m.entries), nil
}

// mockChangeLogRepository implements secondary.ChangeLogRepository for testing.
type mockChangeLogRepository struct {
	records []*secondary.ChangeLogRecord
}

func (m *mockChangeLogRepository) Create(ctx context.Context, r *secondary.ChangeLogRecord) error {
	m.records = append(m.records, r)
	return nil
}

func (m *mockChangeLogRepository) List(ctx context.Context, filters secondary.ChangeLogFilters) ([]*secondary.ChangeLogRecord, error) {
	var result []*secondary.ChangeLogRecord
	for i := len(m.records) - 1; i >= 0; i-- {
		result = append(result, m.records[i])
		if filters.Limit > 0 && len(result) == filters.Limit {
			break
		}
	}
	return result, nil
}

func (m *mockChangeLogRepository) GetNextID(ctx context.Context) (int, error) {
	return len(m.records) + 1, nil
}

// logCall records one LogWriter invocation.
type logCall struct {
	action     string
	entityType string
	entityID   int
	field      string
	oldValue   string
	newValue   string
}

// mockLogWriter implements secondary.LogWriter for testing.
type mockLogWriter struct {
	calls []logCall
	err   error
}

func (m *mockLogWriter) LogCreate(ctx context.Context, entityType string, entityID int) error {
	m.calls = append(m.calls, logCall{action: "create", entityType: entityType, entityID: entityID})
	return m.err
}

func (m *mockLogWriter) LogUpdate(ctx context.Context, entityType string, entityID int, fieldName, oldValue, newValue string) error {
	m.calls = append(m.calls, logCall{"update", entityType, entityID, fieldName, oldValue, newValue})
	return m.err
}

func (m *mockLogWriter) LogDelete(ctx context.Context, entityType string, entityID int) error {
	m.calls = append(m.calls, logCall{action: "delete", entityType: entityType, entityID: entityID})
	return m.err
}

// Ensure mocks implement the interfaces
var (
	_ secondary.GarmentRepository   = (*mockGarmentRepository)(nil)
	_ secondary.HistoryRepository   = (*mockHistoryRepository)(nil)
	_ secondary.ChangeLogRepository = (*mockChangeLogRepository)(nil)
	_ secondary.LogWriter           = (*mockLogWriter)(nil)
)

// ============================================================================
// Test Helpers
// ============================================================================

type testCatalog struct {
	query     *CatalogQueryServiceImpl
	mutation  *CatalogMutationServiceImpl
	garments  *mockGarmentRepository
	history   *mockHistoryRepository
	changeLog *mockChangeLogRepository
	logWriter *mockLogWriter
}

func newTestCatalog() *testCatalog {
	garments := newMockGarmentRepository()
	hist := newMockHistoryRepository()
	changeLog := &mockChangeLogRepository{}
	logWriter := &mockLogWriter{}
	query := NewCatalogQueryService(garments, hist, changeLog)
	return &testCatalog{
		query:     query,
		mutation:  NewCatalogMutationService(garments, hist, query, logWriter),
		garments:  garments,
		history:   hist,
		changeLog: changeLog,
		logWriter: logWriter,
	}
}

func (c *testCatalog) seedGarment(id int, name, kind string) *secondary.GarmentRecord {
	g := &secondary.GarmentRecord{
		ID:             id,
		Name:           name,
		Kind:           kind,
		Clear:          "False",
		Rate:           "?",
		PhotoReference: fmt.Sprintf("photo/%d.jpg", id),
	}
	c.garments.Create(context.Background(), g)
	return g
}

func (c *testCatalog) seedHistory(id int, date, rate string) *secondary.HistoryRecord {
	h := &secondary.HistoryRecord{
		ID:             id,
		Date:           date,
		Rate:           rate,
		PhotoReference: "sets/Set_from_" + date + ".png",
	}
	c.history.Create(context.Background(), h)
	return h
}
