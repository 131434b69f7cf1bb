package repository

import (
	"context"

	"github.com/pennypilote/pennypilote/pkg/repository"
	"gorm.io/gorm"
)

// UoW provides transaction boundaries and repository access in one
// abstraction. Repositories handed out inside Do share the transaction
// session, so multi-statement mutations such as cascade deletes are
// atomic. Outside Do the base session is used, which is fine for reads.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db, tx: db}
}

// Do runs fn inside a database transaction, providing a UoW whose
// repositories use that transaction.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
}

// Users returns a UserRepository bound to the current session.
func (u *UoW) Users() repository.UserRepository {
	return NewUserRepository(u.tx)
}

// Categories returns a CategoryRepository bound to the current session.
func (u *UoW) Categories() repository.CategoryRepository {
	return NewCategoryRepository(u.tx)
}

// Transactions returns a TransactionRepository bound to the current
// session.
func (u *UoW) Transactions() repository.TransactionRepository {
	return NewTransactionRepository(u.tx)
}

var _ repository.UnitOfWork = (*UoW)(nil)
