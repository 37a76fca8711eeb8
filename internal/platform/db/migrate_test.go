package db

import (
	"os"
	"path/filepath"
	"testing"
)

func writeMigration(t *testing.T, dir, name, sql string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(sql), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestMigratorLoad_SortedByVersion(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "002_indexes.sql", "CREATE INDEX x ON y(z);")
	writeMigration(t, dir, "001_core.sql", "CREATE TABLE y (z INT);")
	writeMigration(t, dir, "010_later.sql", "ALTER TABLE y ADD w INT;")

	m := NewMigrator(nil, dir)
	migrations, err := m.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(migrations) != 3 {
		t.Fatalf("expected 3 migrations, got %d", len(migrations))
	}
	if migrations[0].Version != 1 || migrations[1].Version != 2 || migrations[2].Version != 10 {
		t.Errorf("not sorted by version: %+v", migrations)
	}
	if migrations[0].Name != "001_core.sql" {
		t.Errorf("wrong name: %s", migrations[0].Name)
	}
	if migrations[0].SQL != "CREATE TABLE y (z INT);" {
		t.Errorf("file content not loaded")
	}
}

func TestMigratorLoad_SkipsNonMigrations(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "001_core.sql", "CREATE TABLE y (z INT);")
	writeMigration(t, dir, "README.md", "notes")
	writeMigration(t, dir, "notaversion_core.sql", "SELECT 1;")
	writeMigration(t, dir, "noversion.sql", "SELECT 1;")

	m := NewMigrator(nil, dir)
	migrations, err := m.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(migrations) != 1 {
		t.Errorf("expected only the versioned .sql file, got %d", len(migrations))
	}
}

func TestMigratorLoad_MissingDir(t *testing.T) {
	m := NewMigrator(nil, filepath.Join(t.TempDir(), "nope"))
	if _, err := m.Load(); err == nil {
		t.Errorf("expected error for missing directory")
	}
}
