package db_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lojf/ecaplanner/internal/db"
)

func openTest(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.Open(filepath.Join(t.TempDir(), "test.db"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	return gdb
}

// TestWALMode verifies that the DSN parameters enable WAL journal mode.
func TestWALMode(t *testing.T) {
	gdb := openTest(t)

	var mode string
	gdb.Raw("PRAGMA journal_mode").Scan(&mode)
	if mode != "wal" {
		t.Errorf("expected journal_mode=wal, got %q", mode)
	}

	var fk int
	gdb.Raw("PRAGMA foreign_keys").Scan(&fk)
	if fk != 1 {
		t.Errorf("expected foreign_keys=1, got %d", fk)
	}
}

func TestDSN(t *testing.T) {
	if got := db.DSN("a.db"); got != "a.db?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on" {
		t.Errorf("DSN(a.db) = %q", got)
	}
	if got := db.DSN("file:a.db?cache=shared"); got != "file:a.db?cache=shared&_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on" {
		t.Errorf("DSN with query = %q", got)
	}
}

func TestOpen_EmptyPath(t *testing.T) {
	if _, err := db.Open("  ", nil); err == nil {
		t.Fatal("expected error for empty path")
	}
}

// TestOpen_CreatesIndexes verifies the composite indexes GORM does not create.
func TestOpen_CreatesIndexes(t *testing.T) {
	gdb := openTest(t)
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}

	if !indexNames(t, sqlDB, "children")["idx_child_guardian_campus"] {
		t.Error("idx_child_guardian_campus missing")
	}
	sel := indexNames(t, sqlDB, "selections")
	for _, want := range []string{"idx_sel_child_position", "idx_sel_child_activity"} {
		if !sel[want] {
			t.Errorf("index %q missing from selections; found: %v", want, sel)
		}
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	gdb := openTest(t)
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}

func indexNames(t *testing.T, sqlDB *sql.DB, table string) map[string]bool {
	t.Helper()
	rows, err := sqlDB.Query("PRAGMA index_list(" + table + ")")
	if err != nil {
		t.Fatalf("PRAGMA index_list: %v", err)
	}
	defer rows.Close()

	out := make(map[string]bool)
	for rows.Next() {
		var seq int
		var name string
		var unique bool
		var origin, partial string
		if err := rows.Scan(&seq, &name, &unique, &origin, &partial); err != nil {
			t.Fatalf("scan: %v", err)
		}
		out[name] = true
	}
	return out
}
