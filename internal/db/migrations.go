package db

import (
	"database/sql"
	"fmt"

	"github.com/example/morg/internal/logger"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.Tx) error
}

// migrations is the list of all migrations in order
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_garments_and_history_entries",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "add_change_log",
		Up:      migrationV2,
	},
	{
		Version: 3,
		Name:    "add_lookup_indexes",
		Up:      migrationV3,
	},
}

func createVersionTable(database *sql.DB) error {
	_, err := database.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}

// RunMigrations executes all pending migrations
func RunMigrations(database *sql.DB) error {
	if err := createVersionTable(database); err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	// Get current schema version
	var currentVersion int
	err := database.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		logger.Info("running migration", "version", migration.Version, "name", migration.Name)

		tx, err := database.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", migration.Version, err)
		}

		if err := migration.Up(tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}

		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.Version); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}
	}

	return nil
}

// migrationV1 creates the two catalog tables.
func migrationV1(tx *sql.Tx) error {
	if _, err := tx.Exec(garmentsDDL); err != nil {
		return fmt.Errorf("failed to create garments: %w", err)
	}
	if _, err := tx.Exec(historyEntriesDDL); err != nil {
		return fmt.Errorf("failed to create history_entries: %w", err)
	}
	return nil
}

// migrationV2 adds the append-only change log.
func migrationV2(tx *sql.Tx) error {
	if _, err := tx.Exec(changeLogDDL); err != nil {
		return fmt.Errorf("failed to create change_log: %w", err)
	}
	return nil
}

// migrationV3 adds indexes for name, kind, rate and date lookups.
func migrationV3(tx *sql.Tx) error {
	if _, err := tx.Exec(indexesDDL); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
