// Package testutils provides shared helpers for tests that need a real
// store: an in-memory sqlite database exercises the actual constraint
// behavior the invariants are about.
package testutils

import (
	"testing"

	"github.com/pennypilote/pennypilote/infra"
	infrarepo "github.com/pennypilote/pennypilote/infra/repository"
	"github.com/pennypilote/pennypilote/pkg/service/ledger"
	"github.com/pennypilote/pennypilote/pkg/service/report"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a fresh in-memory sqlite database with the schema
// migrated. The connection pool is capped at one so the in-memory store
// is not silently duplicated per connection.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}
	if err := infra.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

// NewServices builds the ledger and report services over a fresh test
// store.
func NewServices(t *testing.T) (*ledger.Service, *report.Service) {
	t.Helper()
	uow := infrarepo.NewUoW(NewTestDB(t))
	return ledger.New(uow), report.New(uow)
}
