package db

import (
	"context"
	"database/sql"

	"github.com/example/morg/internal/apperr"
)

// Table names owned by the catalog.
const (
	TableGarments       = "garments"
	TableHistoryEntries = "history_entries"
	TableChangeLog      = "change_log"
)

const garmentsDDL = `
CREATE TABLE IF NOT EXISTS garments (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	color1 TEXT NOT NULL DEFAULT '',
	color2 TEXT NOT NULL DEFAULT '',
	color3 TEXT NOT NULL DEFAULT '',
	photo_reference TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	exclusions TEXT NOT NULL DEFAULT '',
	clear TEXT NOT NULL CHECK(clear IN ('True', 'False')) DEFAULT 'False',
	rate TEXT NOT NULL CHECK(rate IN ('1', '2', '3', '4', '5', '?')) DEFAULT '?',
	kind TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

const historyEntriesDDL = `
CREATE TABLE IF NOT EXISTS history_entries (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	date TEXT NOT NULL,
	photo_reference TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	rate TEXT NOT NULL CHECK(rate IN ('1', '2', '3', '4', '5', '?')) DEFAULT '?',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

const changeLogDDL = `
CREATE TABLE IF NOT EXISTS change_log (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	actor TEXT NOT NULL,
	entity_type TEXT NOT NULL CHECK(entity_type IN ('garment', 'history')),
	entity_id INTEGER NOT NULL,
	action TEXT NOT NULL CHECK(action IN ('create', 'update', 'delete')),
	field_name TEXT,
	old_value TEXT,
	new_value TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

const indexesDDL = `
CREATE INDEX IF NOT EXISTS idx_garments_name ON garments(name);
CREATE INDEX IF NOT EXISTS idx_garments_kind ON garments(kind);
CREATE INDEX IF NOT EXISTS idx_garments_rate ON garments(rate);
CREATE INDEX IF NOT EXISTS idx_history_entries_date ON history_entries(date);
CREATE INDEX IF NOT EXISTS idx_change_log_entity ON change_log(entity_type, entity_id);
`

// SchemaSQL is the complete schema for fresh morg installs.
// This schema reflects the current state after all migrations.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. Repository
// tests load it through GetSchemaSQL() instead of hardcoding CREATE TABLE
// statements, so a column referenced by repository code but missing here
// fails immediately with "no such column".
//
// When adding new columns or tables:
//  1. Add a migration in migrations.go
//  2. Update the DDL constants here
//  3. Run `go test ./...` to verify alignment
var SchemaSQL = garmentsDDL + historyEntriesDDL + changeLogDDL + indexesDDL

// tableDDL maps each table to its idempotent create statement.
var tableDDL = map[string]string{
	TableGarments:       garmentsDDL,
	TableHistoryEntries: historyEntriesDDL,
	TableChangeLog:      changeLogDDL,
}

// CreateTable ensures the named table exists. Existing rows are never touched.
func CreateTable(ctx context.Context, database *sql.DB, table string) error {
	ddl, ok := tableDDL[table]
	if !ok {
		return apperr.Validation("unknown table %q", table)
	}
	if _, err := database.ExecContext(ctx, ddl); err != nil {
		return apperr.Store(err, "failed to create table %s", table)
	}
	return nil
}

// TableExists reports whether a table with the given name exists.
func TableExists(ctx context.Context, database *sql.DB, table string) (bool, error) {
	var count int
	err := database.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name = ?",
		table,
	).Scan(&count)
	if err != nil {
		return false, apperr.Store(err, "failed to inspect schema")
	}
	return count > 0, nil
}

// InitSchema creates the database schema
func InitSchema(database *sql.DB) error {
	// Check if schema_version table exists to determine if this is a fresh install
	var tableCount int
	err := database.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount > 0 {
		// schema_version table exists - run any pending migrations
		return RunMigrations(database)
	}

	// Tables created without version tracking get upgraded through migrations
	var catalogTables int
	err = database.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name IN ('garments', 'history_entries')").Scan(&catalogTables)
	if err != nil {
		return err
	}
	if catalogTables > 0 {
		return RunMigrations(database)
	}

	// Completely fresh install - create current schema directly
	if _, err := database.Exec(SchemaSQL); err != nil {
		return err
	}
	if err := createVersionTable(database); err != nil {
		return err
	}
	// Mark all migrations as applied for fresh installs
	for _, m := range migrations {
		if _, err := database.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
			return err
		}
	}
	return nil
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}

// CurrentVersion returns the highest applied migration version.
func CurrentVersion(database *sql.DB) (int, error) {
	exists, err := TableExists(context.Background(), database, "schema_version")
	if err != nil || !exists {
		return 0, err
	}
	var v int
	err = database.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&v)
	return v, err
}
