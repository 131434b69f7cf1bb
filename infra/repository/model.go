package repository

import (
	"time"

	"github.com/google/uuid"
)

// User is the persisted account record. Email is globally unique.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:255;not null"`
	Email     string    `gorm:"uniqueIndex;size:255;not null"`
	CreatedAt time.Time
}

// TableName keeps the historical table name from the first schema.
func (User) TableName() string { return "accounts" }

// Category is the persisted category record. Name is globally unique.
type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"uniqueIndex;size:255;not null"`
	Description *string   `gorm:"size:255"`
	CreatedAt   time.Time
}

func (Category) TableName() string { return "categories" }

// Transaction is the persisted ledger entry. CategoryID is nullable:
// uncategorized entries are legal. Cascade deletes are explicit
// statements in the unit of work, not schema metadata.
type Transaction struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Amount      float64    `gorm:"not null"`
	Date        time.Time  `gorm:"not null;index"`
	Description *string    `gorm:"size:255"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time
}

func (Transaction) TableName() string { return "transactions" }
