package db

import (
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lojf/ecaplanner/internal/models"
)

const dsnParams = "_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"

// Open connects to the sqlite file at path, migrates the schema and returns
// the handle. A nil cfg uses a warn-level gorm logger.
func Open(path string, cfg *gorm.Config) (*gorm.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("db: empty path")
	}
	if cfg == nil {
		cfg = &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}
	}
	conn, err := gorm.Open(sqlite.Open(DSN(path)), cfg)
	if err != nil {
		return nil, fmt.Errorf("db.open(%s): %w", path, err)
	}

	// SQLite works best with a single writer; cap the pool accordingly.
	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := Migrate(conn); err != nil {
		return nil, err
	}
	return conn, nil
}

// DSN appends the WAL, busy timeout and foreign key parameters to path.
func DSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + dsnParams
}

func Migrate(conn *gorm.DB) error {
	if err := conn.AutoMigrate(
		&models.Guardian{},
		&models.Child{},
		&models.Selection{},
	); err != nil {
		return fmt.Errorf("db.automigrate: %w", err)
	}

	// Composite indexes that GORM doesn't auto-create from struct tags.
	for _, stmt := range []string{
		"CREATE INDEX IF NOT EXISTS idx_child_guardian_campus ON children(guardian_id, campus)",
		"CREATE INDEX IF NOT EXISTS idx_sel_child_position    ON selections(child_id, position)",
	} {
		if err := conn.Exec(stmt).Error; err != nil {
			return fmt.Errorf("db.index: %w", err)
		}
	}
	return nil
}
