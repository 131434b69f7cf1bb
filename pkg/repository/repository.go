// Package repository declares the persistence interfaces the services
// program against. Implementations live in infra/repository.
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pennypilote/pennypilote/pkg/dto"
)

// UserRepository persists users.
type UserRepository interface {
	Create(ctx context.Context, create *dto.UserCreate) error
	Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error)
	// List returns all users in insertion order.
	List(ctx context.Context) ([]*dto.UserRead, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Delete removes the user row only; cascading to owned transactions
	// is orchestrated by the service inside one unit of work.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryRepository persists categories.
type CategoryRepository interface {
	Create(ctx context.Context, create *dto.CategoryCreate) error
	Get(ctx context.Context, id uuid.UUID) (*dto.CategoryRead, error)
	// List returns all categories in insertion order.
	List(ctx context.Context) ([]*dto.CategoryRead, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TransactionRepository persists transactions and runs the aggregation
// and filter queries every surface depends on.
type TransactionRepository interface {
	Create(ctx context.Context, create *dto.TransactionCreate) error
	Get(ctx context.Context, id uuid.UUID) (*dto.TransactionRead, error)
	// Search applies the filter conjunctively and returns matches in
	// date-descending order, each resolved with user and category names.
	Search(ctx context.Context, filter dto.TransactionFilter) ([]*dto.TransactionRead, error)
	// SumByCategory groups matching transactions by category name and
	// sums amounts. Categories with no matches are omitted; null
	// categories group under the uncategorized sentinel.
	SumByCategory(ctx context.Context, filter dto.SummaryFilter) (map[string]float64, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
	DeleteByCategory(ctx context.Context, categoryID uuid.UUID) error
}

// UnitOfWork provides transaction boundaries and repository access.
// Repositories obtained inside Do share one database transaction, so a
// cascade delete either fully applies or not at all. Repositories
// obtained outside Do run against the base session, which is sufficient
// for reads.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error
	Users() UserRepository
	Categories() CategoryRepository
	Transactions() TransactionRepository
}
