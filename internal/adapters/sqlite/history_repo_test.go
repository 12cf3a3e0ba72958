package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/morg/internal/adapters/sqlite"
	"github.com/example/morg/internal/apperr"
	"github.com/example/morg/internal/ports/secondary"
)

func TestHistoryRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewHistoryRepository(db)
	ctx := context.Background()

	entry := &secondary.HistoryRecord{
		ID:             1,
		Date:           "05_09_2024",
		PhotoReference: "sets/Set_from_05_09_2024.png",
		Description:    "laundry day",
		Rate:           "3",
	}
	if err := repo.Create(ctx, entry); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repo.GetByDate(ctx, "05_09_2024")
	if err != nil {
		t.Fatalf("GetByDate failed: %v", err)
	}
	if got.ID != 1 || got.Description != "laundry day" || got.Rate != "3" {
		t.Errorf("unexpected entry: %+v", got)
	}
	if got.PhotoReference != "sets/Set_from_05_09_2024.png" {
		t.Errorf("unexpected photo %q", got.PhotoReference)
	}

	byID, err := repo.GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if byID.Date != "05_09_2024" {
		t.Errorf("unexpected date %q", byID.Date)
	}
}

func TestHistoryRepository_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewHistoryRepository(db)
	ctx := context.Background()

	if _, err := repo.GetByID(ctx, 1); !apperr.IsNotFound(err) {
		t.Errorf("expected not found by id, got %v", err)
	}
	if _, err := repo.GetByDate(ctx, "01_01_2024"); !apperr.IsNotFound(err) {
		t.Errorf("expected not found by date, got %v", err)
	}
}

func TestHistoryRepository_GetByDate_FirstMatch(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewHistoryRepository(db)

	seedHistory(t, db, 4, "05_09_2024", "2")
	seedHistory(t, db, 9, "05_09_2024", "5")

	got, err := repo.GetByDate(context.Background(), "05_09_2024")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != 4 {
		t.Errorf("expected lowest id 4, got %d", got.ID)
	}
}

func TestHistoryRepository_ListAndScan(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewHistoryRepository(db)
	ctx := context.Background()

	seedHistory(t, db, 2, "02_09_2024", "3")
	seedHistory(t, db, 1, "01_09_2024", "?")

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 2 || list[0].ID != 1 || list[1].ID != 2 {
		t.Errorf("expected id order [1 2], got %+v", list)
	}

	var dates []string
	for h, err := range repo.Scan(ctx) {
		if err != nil {
			t.Fatal(err)
		}
		dates = append(dates, h.Date)
		break
	}
	if len(dates) != 1 || dates[0] != "01_09_2024" {
		t.Errorf("unexpected first scanned date: %v", dates)
	}

	count, err := repo.Count(ctx)
	if err != nil || count != 2 {
		t.Errorf("expected count 2, got %d (%v)", count, err)
	}
}

func TestHistoryRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewHistoryRepository(db)
	ctx := context.Background()
	seedHistory(t, db, 1, "05_09_2024", "3")

	desc := "rainy walk"
	if err := repo.Update(ctx, 1, secondary.HistoryPatch{Description: &desc}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, _ := repo.GetByID(ctx, 1)
	if got.Description != "rainy walk" {
		t.Errorf("expected description updated, got %q", got.Description)
	}
	if got.Rate != "3" || got.Date != "05_09_2024" {
		t.Errorf("partial update touched other fields: %+v", got)
	}

	rate := "5"
	if err := repo.Update(ctx, 2, secondary.HistoryPatch{Rate: &rate}); !apperr.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
	if err := repo.Update(ctx, 2, secondary.HistoryPatch{}); !apperr.IsNotFound(err) {
		t.Errorf("expected not found for empty patch, got %v", err)
	}
}

func TestHistoryRepository_GetNextID(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewHistoryRepository(db)
	ctx := context.Background()

	next, _ := repo.GetNextID(ctx)
	if next != 1 {
		t.Errorf("expected 1, got %d", next)
	}

	seedHistory(t, db, 1, "01_09_2024", "?")
	next, _ = repo.GetNextID(ctx)
	if next != 2 {
		t.Errorf("expected 2, got %d", next)
	}

	// Garment ids are an independent sequence.
	seedGarment(t, db, 10, "Cap", "hats")
	next, _ = repo.GetNextID(ctx)
	if next != 2 {
		t.Errorf("expected history sequence unaffected by garments, got %d", next)
	}
}
