// Package infra wires the relational store.
package infra

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	infrarepo "github.com/pennypilote/pennypilote/infra/repository"
	"github.com/pennypilote/pennypilote/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDBConnection opens the configured store (sqlite file by default,
// postgres via DSN) and ensures the schema exists. Migration is
// idempotent: running it against an initialized store is a no-op.
func NewDBConnection(cnf config.DB, appEnv string) (*gorm.DB, error) {
	var logMode logger.LogLevel
	if appEnv == "development" {
		logMode = logger.Info
	} else {
		logMode = logger.Silent
	}

	gormCfg := &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	}

	var (
		db  *gorm.DB
		err error
	)
	switch cnf.Driver {
	case "postgres":
		if cnf.URL == "" {
			return nil, fmt.Errorf("DATABASE_URL is not set")
		}
		db, err = gorm.Open(postgres.Open(cnf.URL), gormCfg)
	case "sqlite":
		if dir := filepath.Dir(cnf.SQLitePath); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create db directory: %w", err)
			}
		}
		db, err = gorm.Open(sqlite.Open(cnf.SQLitePath), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cnf.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if cnf.Driver == "sqlite" {
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("enable foreign keys: %w", err)
		}
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	return db, nil
}

// Migrate creates or updates the three entity tables. Safe to call more
// than once.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&infrarepo.User{},
		&infrarepo.Category{},
		&infrarepo.Transaction{},
	); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
