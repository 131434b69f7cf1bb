// Package dto holds the data transfer shapes exchanged between the
// service layer and the repositories.
package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserCreate carries the fields persisted for a new user.
type UserCreate struct {
	ID    uuid.UUID
	Name  string
	Email string
}

// UserRead is a user row hydrated from the store.
type UserRead struct {
	ID        uuid.UUID
	Name      string
	Email     string
	CreatedAt time.Time
}

// CategoryCreate carries the fields persisted for a new category.
type CategoryCreate struct {
	ID          uuid.UUID
	Name        string
	Description *string
}

// CategoryRead is a category row hydrated from the store.
type CategoryRead struct {
	ID          uuid.UUID
	Name        string
	Description *string
	CreatedAt   time.Time
}

// TransactionCreate carries the fields persisted for a new transaction.
type TransactionCreate struct {
	ID          uuid.UUID
	Amount      float64
	Date        time.Time
	Description *string
	UserID      uuid.UUID
	CategoryID  *uuid.UUID
}

// TransactionRead is a transaction row resolved with its owning user
// name and category name for display. CategoryName carries the
// uncategorized sentinel when CategoryID is nil; this join-and-attach is
// part of the engine contract, not left to callers.
type TransactionRead struct {
	ID           uuid.UUID
	Amount       float64
	Date         time.Time
	Description  *string
	UserID       uuid.UUID
	CategoryID   *uuid.UUID
	UserName     string
	CategoryName string
}

// TransactionFilter selects transactions; all set predicates are
// conjunctive. Date bounds are inclusive and may be one-sided. A
// nonexistent UserID or CategoryID yields an empty result, not an error.
type TransactionFilter struct {
	UserID     *uuid.UUID
	CategoryID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	Keyword    string
}

// SummaryFilter scopes a category summary. Year and Month restrict to a
// calendar month when both are set; zero values mean no month window.
type SummaryFilter struct {
	UserID *uuid.UUID
	Year   int
	Month  int
}
