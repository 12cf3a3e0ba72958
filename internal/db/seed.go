package db

import (
	"database/sql"
	"fmt"

	"github.com/example/morg/internal/core/garment"
	"github.com/example/morg/internal/core/history"
)

// SeedFixtures populates an empty catalog with a small sample wardrobe.
// Ids are left to the database so the high-water mark stays consistent.
func SeedFixtures(database *sql.DB) error {
	garments := []struct {
		name, c1, c2, c3, desc, excl, clear, rate, kind string
	}{
		{"Blue Hoodie", "ff1f3a93", "", "", "Zip hoodie", "", "True", "4", "hoodies"},
		{"White Tee", "ffffffff", "", "", "Plain cotton", "", "True", "3", "t_shirts"},
		{"Black Jeans", "ff111111", "ff2b2b2b", "", "Slim fit", "shorts", "False", "5", "trousers"},
		{"Red Sneakers", "ffcc2222", "ffffffff", "", "", "", "True", "?", "shoes"},
	}
	for _, g := range garments {
		res, err := database.Exec(
			`INSERT INTO garments (name, color1, color2, color3, description, exclusions, clear, rate, kind)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			g.name, g.c1, g.c2, g.c3, g.desc, g.excl, g.clear, g.rate, g.kind,
		)
		if err != nil {
			return fmt.Errorf("seed garments: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("seed garments: %w", err)
		}
		if _, err := database.Exec("UPDATE garments SET photo_reference = ? WHERE id = ?",
			garment.PhotoPath(int(id)), id); err != nil {
			return fmt.Errorf("seed garments: %w", err)
		}
	}

	sets := []struct{ date, desc, rate string }{
		{"02_09_2024", "Office day", "3"},
		{"05_09_2024", "laundry day", "3"},
	}
	for _, s := range sets {
		if _, err := database.Exec(
			"INSERT INTO history_entries (date, photo_reference, description, rate) VALUES (?, ?, ?, ?)",
			s.date, history.PhotoPath(s.date), s.desc, s.rate,
		); err != nil {
			return fmt.Errorf("seed history: %w", err)
		}
	}

	return nil
}
