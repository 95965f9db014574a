//go:build integration

package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schemaFile = "internal/adapter/postgres/migrations/001_initial.sql"

// SetupTestDB opens a pool against TEST_DATABASE_URL and ensures the schema
// exists, skipping the test when no test database is configured. All callers
// share one database; tests isolate themselves with unique agent ids.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		t.Fatalf("connect test db: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		t.Fatalf("ping test db: %v", err)
	}
	t.Cleanup(pool.Close)

	schema, err := os.ReadFile(filepath.Join(moduleRoot(t), schemaFile))
	if err != nil {
		t.Fatalf("read schema %s: %v", schemaFile, err)
	}
	// The schema is idempotent (IF NOT EXISTS throughout), so reapplying on a
	// populated database is harmless.
	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return pool
}

// moduleRoot walks up from the test's working directory to the directory
// containing go.mod, so adapter packages can locate the schema file.
func moduleRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("go.mod not found above test directory")
		}
		dir = parent
	}
}
