//go:build integration

package db

import (
	"context"
	"os"
	"testing"
	"time"
)

// getTestDB connects to TEST_DATABASE_URL and applies the schema.
// Skipped if TEST_DATABASE_URL is not set.
func getTestDB(t *testing.T) *DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := Connect(ctx, dsn)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := db.Migrate(ctx); err != nil {
		db.Close()
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

func TestIntegration_Store(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()

	runStoreSuite(t, db)
}

func TestIntegration_MigrateIsIdempotent(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("second Migrate failed: %v", err)
	}
}
