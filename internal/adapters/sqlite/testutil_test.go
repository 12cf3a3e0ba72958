// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All test setup functions use db.GetSchemaSQL() to ensure tests run against
// the authoritative schema, preventing drift between test and production.
//
// DO NOT hardcode CREATE TABLE statements for catalog tables in test files.
// Use setupTestDB() and the seed* helpers instead.
package sqlite_test

import (
	"database/sql"
	"strconv"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/morg/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
// A single connection keeps every query on the same in-memory database, so
// tests must not issue queries while ranging over a Scan.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	testDB.SetMaxOpenConns(1)

	// Use the authoritative schema from schema.go
	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedGarment inserts a garment with the given id, name and kind.
func seedGarment(t *testing.T, db *sql.DB, id int, name, kind string) int {
	t.Helper()
	_, err := db.Exec(
		"INSERT INTO garments (id, name, kind, photo_reference) VALUES (?, ?, ?, ?)",
		id, name, kind, "photo/"+strconv.Itoa(id)+".jpg",
	)
	if err != nil {
		t.Fatalf("failed to seed garment: %v", err)
	}
	return id
}

// seedHistory inserts a history entry with the given id and date.
func seedHistory(t *testing.T, db *sql.DB, id int, date, rate string) int {
	t.Helper()
	_, err := db.Exec(
		"INSERT INTO history_entries (id, date, photo_reference, rate) VALUES (?, ?, ?, ?)",
		id, date, "sets/Set_from_"+date+".png", rate,
	)
	if err != nil {
		t.Fatalf("failed to seed history entry: %v", err)
	}
	return id
}
