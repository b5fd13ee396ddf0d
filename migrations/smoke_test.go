package migrations_test

import (
	"context"
	"database/sql"
	"io/fs"
	"sort"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/goliatone/go-immunization/internal/testdb"
	"github.com/goliatone/go-immunization/migrations"
)

func TestMigrationsApplyToSQLite(t *testing.T) {
	t.Parallel()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = db.Close()
	})

	ctx := context.Background()
	registered := migrations.Filesystems()
	if len(registered) == 0 {
		t.Fatal("expected the core migrations to be registered")
	}
	for _, fsys := range registered {
		if err := applyFilesystem(ctx, db, fsys); err != nil {
			t.Fatalf("failed to apply migrations: %v", err)
		}
	}

	for _, table := range []string{"individuals", "vaccinations"} {
		var name string
		if err := db.QueryRowContext(ctx, "SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name); err != nil {
			t.Fatalf("failed to verify %s table: %v", table, err)
		}
		if name != table {
			t.Fatalf("expected %s table, got %q", table, name)
		}
	}
}

func TestMigrationsDownDropTables(t *testing.T) {
	t.Parallel()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = db.Close()
	})

	ctx := context.Background()
	for _, fsys := range migrations.Filesystems() {
		if err := applyFilesystem(ctx, db, fsys); err != nil {
			t.Fatalf("failed to apply migrations: %v", err)
		}
		if err := applyPattern(ctx, db, fsys, "sqlite/*.down.sql", true); err != nil {
			t.Fatalf("failed to roll back migrations: %v", err)
		}
	}

	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name IN ('individuals','vaccinations')").Scan(&count); err != nil {
		t.Fatalf("failed to count tables: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected tables to be dropped, found %d", count)
	}
}

func applyFilesystem(ctx context.Context, db *sql.DB, filesystem fs.FS) error {
	return applyPattern(ctx, db, filesystem, "sqlite/*.up.sql", false)
}

func applyPattern(ctx context.Context, db *sql.DB, filesystem fs.FS, pattern string, reverse bool) error {
	entries, err := fs.Glob(filesystem, pattern)
	if err != nil {
		return err
	}
	sort.Strings(entries)
	if reverse {
		sort.Sort(sort.Reverse(sort.StringSlice(entries)))
	}
	for _, entry := range entries {
		sqlBytes, err := fs.ReadFile(filesystem, entry)
		if err != nil {
			return err
		}
		for _, stmt := range testdb.SplitStatements(string(sqlBytes)) {
			if strings.TrimSpace(stmt) == "" {
				continue
			}
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}
	}
	return nil
}
