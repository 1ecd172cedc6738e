package migrate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateDirAcceptsShippedMigrations(t *testing.T) {
	t.Parallel()

	if err := ValidateDir("migrations"); err != nil {
		t.Fatalf("shipped migrations failed validation: %v", err)
	}
}

func TestValidateDirRejectsBadFilename(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	bad := filepath.Join(dir, "001_bad_version.sql")
	if err := os.WriteFile(bad, []byte("-- +goose Up\n-- +goose Down\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	err := ValidateDir(dir)
	if err == nil || !strings.Contains(err.Error(), "invalid migration filename") {
		t.Fatalf("expected filename error, got %v", err)
	}
}

func TestCreateSQLMigration(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path, err := CreateSQLMigration(dir, "Add Product Badges!")
	if err != nil {
		t.Fatalf("create migration: %v", err)
	}
	if !strings.HasSuffix(path, "_add_product_badges.sql") {
		t.Fatalf("unexpected migration path %q", path)
	}
	if err := ValidateDir(dir); err != nil {
		t.Fatalf("created migration failed validation: %v", err)
	}
}
