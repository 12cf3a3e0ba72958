package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/morg/internal/adapters/sqlite"
	"github.com/example/morg/internal/apperr"
	"github.com/example/morg/internal/ports/secondary"
)

func newGarment(id int, name, kind string) *secondary.GarmentRecord {
	return &secondary.GarmentRecord{
		ID:             id,
		Name:           name,
		Color1:         "ff1f3a93",
		PhotoReference: "photo/1.jpg",
		Clear:          "False",
		Rate:           "?",
		Kind:           kind,
	}
}

func TestGarmentRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewGarmentRepository(db)
	ctx := context.Background()

	g := newGarment(1, "Blue Hoodie", "hoodies")
	g.Description = "Zip hoodie"
	g.Exclusions = "shorts"

	if err := repo.Create(ctx, g); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repo.GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "Blue Hoodie" {
		t.Errorf("expected name 'Blue Hoodie', got %q", got.Name)
	}
	if got.Color1 != "ff1f3a93" {
		t.Errorf("expected color1 'ff1f3a93', got %q", got.Color1)
	}
	if got.Description != "Zip hoodie" || got.Exclusions != "shorts" {
		t.Errorf("unexpected free text: %q / %q", got.Description, got.Exclusions)
	}
	if got.Clear != "False" || got.Rate != "?" {
		t.Errorf("unexpected clear/rate: %q / %q", got.Clear, got.Rate)
	}
	if got.CreatedAt == "" {
		t.Error("expected CreatedAt to be set")
	}
}

func TestGarmentRepository_Create_DuplicateID(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewGarmentRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, newGarment(1, "Blue Hoodie", "hoodies")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	err := repo.Create(ctx, newGarment(1, "Other", "hats"))
	if apperr.KindOf(err) != apperr.KindStore {
		t.Errorf("expected store error for duplicate id, got %v", err)
	}
}

func TestGarmentRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewGarmentRepository(db)

	_, err := repo.GetByID(context.Background(), 99)
	if !apperr.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestGarmentRepository_GetByName_FirstMatch(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewGarmentRepository(db)
	ctx := context.Background()

	seedGarment(t, db, 1, "Tee", "t_shirts")
	seedGarment(t, db, 2, "Jeans", "trousers")
	seedGarment(t, db, 3, "Tee", "tank_tops")

	got, err := repo.GetByName(ctx, "Tee")
	if err != nil {
		t.Fatalf("GetByName failed: %v", err)
	}
	if got.ID != 1 {
		t.Errorf("expected lowest id 1, got %d", got.ID)
	}

	if _, err := repo.GetByName(ctx, "tee"); !apperr.IsNotFound(err) {
		t.Errorf("expected case-sensitive lookup to miss, got %v", err)
	}
}

func TestGarmentRepository_List_Filters(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewGarmentRepository(db)
	ctx := context.Background()

	seedGarment(t, db, 1, "Blue Hoodie", "hoodies")
	seedGarment(t, db, 2, "Grey Hoodie", "hoodies")
	seedGarment(t, db, 3, "Jeans", "trousers")
	db.Exec("UPDATE garments SET rate = '4', clear = 'True' WHERE id = 2")

	tests := []struct {
		name    string
		filters secondary.GarmentFilters
		wantIDs []int
	}{
		{"no filters", secondary.GarmentFilters{}, []int{1, 2, 3}},
		{"by kind", secondary.GarmentFilters{Kind: "hoodies"}, []int{1, 2}},
		{"by rate", secondary.GarmentFilters{Rate: "4"}, []int{2}},
		{"by clear", secondary.GarmentFilters{Clear: "False"}, []int{1, 3}},
		{"unknown kind", secondary.GarmentFilters{Kind: "socks"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.List(ctx, tt.filters)
			if err != nil {
				t.Fatalf("List failed: %v", err)
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("expected %d garments, got %d", len(tt.wantIDs), len(got))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("position %d: expected id %d, got %d", i, id, got[i].ID)
				}
			}
		})
	}
}

func TestGarmentRepository_Scan(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewGarmentRepository(db)
	ctx := context.Background()

	seedGarment(t, db, 1, "A", "hats")
	seedGarment(t, db, 2, "B", "hats")
	seedGarment(t, db, 3, "C", "hats")

	seq := repo.Scan(ctx)

	var names []string
	for g, err := range seq {
		if err != nil {
			t.Fatalf("Scan yielded error: %v", err)
		}
		names = append(names, g.Name)
	}
	if len(names) != 3 || names[0] != "A" || names[2] != "C" {
		t.Errorf("unexpected scan order: %v", names)
	}

	// Restartable: ranging again re-queries and sees new rows.
	seedGarment(t, db, 4, "D", "hats")
	count := 0
	for _, err := range seq {
		if err != nil {
			t.Fatalf("Scan yielded error: %v", err)
		}
		count++
	}
	if count != 4 {
		t.Errorf("expected 4 rows on second range, got %d", count)
	}

	// Early break releases the cursor; the single connection is usable again.
	for range seq {
		break
	}
	if _, err := repo.GetByID(ctx, 1); err != nil {
		t.Errorf("expected connection to be free after break, got %v", err)
	}
}

func TestGarmentRepository_Update_Partial(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewGarmentRepository(db)
	ctx := context.Background()

	g := newGarment(1, "Blue Hoodie", "hoodies")
	g.Description = "Zip hoodie"
	if err := repo.Create(ctx, g); err != nil {
		t.Fatal(err)
	}

	rate := "4"
	if err := repo.Update(ctx, 1, secondary.GarmentPatch{Rate: &rate}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, _ := repo.GetByID(ctx, 1)
	if got.Rate != "4" {
		t.Errorf("expected rate 4, got %q", got.Rate)
	}
	if got.Name != "Blue Hoodie" || got.Description != "Zip hoodie" || got.Color1 != "ff1f3a93" {
		t.Errorf("partial update touched other fields: %+v", got)
	}
}

func TestGarmentRepository_Update_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewGarmentRepository(db)
	ctx := context.Background()

	rate := "2"
	if err := repo.Update(ctx, 5, secondary.GarmentPatch{Rate: &rate}); !apperr.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
	if err := repo.Update(ctx, 5, secondary.GarmentPatch{}); !apperr.IsNotFound(err) {
		t.Errorf("expected not found for empty patch, got %v", err)
	}

	seedGarment(t, db, 5, "Cap", "hats")
	if err := repo.Update(ctx, 5, secondary.GarmentPatch{}); err != nil {
		t.Errorf("expected empty patch on existing row to succeed, got %v", err)
	}
}

func TestGarmentRepository_Update_RejectsBadRate(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewGarmentRepository(db)
	ctx := context.Background()
	seedGarment(t, db, 1, "Cap", "hats")

	bad := "9"
	err := repo.Update(ctx, 1, secondary.GarmentPatch{Rate: &bad})
	if apperr.KindOf(err) != apperr.KindStore {
		t.Errorf("expected CHECK constraint to surface as store error, got %v", err)
	}
}

func TestGarmentRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewGarmentRepository(db)
	ctx := context.Background()
	seedGarment(t, db, 1, "Cap", "hats")

	if err := repo.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := repo.GetByID(ctx, 1); !apperr.IsNotFound(err) {
		t.Errorf("expected not found after delete, got %v", err)
	}
	if err := repo.Delete(ctx, 1); !apperr.IsNotFound(err) {
		t.Errorf("expected second delete to be not found, got %v", err)
	}
}

func TestGarmentRepository_GetNextID(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewGarmentRepository(db)
	ctx := context.Background()

	next, err := repo.GetNextID(ctx)
	if err != nil {
		t.Fatalf("GetNextID failed: %v", err)
	}
	if next != 1 {
		t.Errorf("expected 1 on empty table, got %d", next)
	}

	seedGarment(t, db, 1, "A", "hats")
	seedGarment(t, db, 2, "B", "hats")
	next, _ = repo.GetNextID(ctx)
	if next != 3 {
		t.Errorf("expected 3, got %d", next)
	}

	// Deleting the highest id must not let it be reissued.
	if err := repo.Delete(ctx, 2); err != nil {
		t.Fatal(err)
	}
	next, _ = repo.GetNextID(ctx)
	if next != 3 {
		t.Errorf("expected 3 after deleting max id, got %d", next)
	}
}

func TestGarmentRepository_Exists(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewGarmentRepository(db)
	ctx := context.Background()
	seedGarment(t, db, 7, "Ring", "rings")

	if ok, _ := repo.Exists(ctx, 7); !ok {
		t.Error("expected garment 7 to exist")
	}
	if ok, _ := repo.Exists(ctx, 8); ok {
		t.Error("expected garment 8 to be absent")
	}
}

func TestGarmentRepository_Stats(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewGarmentRepository(db)
	ctx := context.Background()

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Total != 0 || stats.RatedAverage != 0 {
		t.Errorf("expected empty stats, got %+v", stats)
	}

	seedGarment(t, db, 1, "A", "hoodies")
	seedGarment(t, db, 2, "B", "hoodies")
	seedGarment(t, db, 3, "C", "shoes")
	db.Exec("UPDATE garments SET rate = '4', clear = 'True' WHERE id = 1")
	db.Exec("UPDATE garments SET rate = '2' WHERE id = 2")

	stats, err = repo.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Total != 3 {
		t.Errorf("expected total 3, got %d", stats.Total)
	}
	if stats.Clean != 1 {
		t.Errorf("expected 1 clean, got %d", stats.Clean)
	}
	if stats.ByKind["hoodies"] != 2 || stats.ByKind["shoes"] != 1 {
		t.Errorf("unexpected ByKind: %v", stats.ByKind)
	}
	if stats.ByRate["?"] != 1 || stats.ByRate["4"] != 1 {
		t.Errorf("unexpected ByRate: %v", stats.ByRate)
	}
	if stats.RatedAverage != 3 {
		t.Errorf("expected rated average 3, got %v", stats.RatedAverage)
	}
}
