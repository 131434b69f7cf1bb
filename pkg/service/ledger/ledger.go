// Package ledger provides the mutation and listing operations shared by
// every surface: create, lookup, list, and cascade delete for users,
// categories, and transactions. It enforces uniqueness and
// referential-integrity rules before touching the store and returns
// typed domain errors; translating them is the caller's concern.
package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pennypilote/pennypilote/pkg/domain"
	"github.com/pennypilote/pennypilote/pkg/domain/category"
	"github.com/pennypilote/pennypilote/pkg/domain/transaction"
	"github.com/pennypilote/pennypilote/pkg/domain/user"
	"github.com/pennypilote/pennypilote/pkg/dto"
	"github.com/pennypilote/pennypilote/pkg/repository"
)

// Service exposes the repository operations behind unit-of-work
// boundaries. Every mutation either fully applies or not at all.
type Service struct {
	uow repository.UnitOfWork
}

// New creates a ledger Service.
func New(uow repository.UnitOfWork) *Service {
	return &Service{uow: uow}
}

// CreateUser creates a user. A duplicate email fails with a constraint
// violation and leaves the store untouched.
func (s *Service) CreateUser(ctx context.Context, name, email string) (*dto.UserRead, error) {
	u, err := user.New(name, email)
	if err != nil {
		return nil, err
	}
	var created *dto.UserRead
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users := uow.Users()
		taken, err := users.ExistsByEmail(ctx, u.Email)
		if err != nil {
			return err
		}
		if taken {
			return domain.NewConstraintError("email", "already exists")
		}
		if err := users.Create(ctx, &dto.UserCreate{ID: u.ID, Name: u.Name, Email: u.Email}); err != nil {
			return err
		}
		created, err = users.Get(ctx, u.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetUser looks a user up by id.
func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*dto.UserRead, error) {
	return s.uow.Users().Get(ctx, id)
}

// ListUsers returns all users in insertion order.
func (s *Service) ListUsers(ctx context.Context) ([]*dto.UserRead, error) {
	return s.uow.Users().List(ctx)
}

// DeleteUser removes a user and every transaction it owns in one atomic
// unit. The cascade is an explicit code path, not schema metadata.
func (s *Service) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		exists, err := uow.Users().Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrNotFound
		}
		if err := uow.Transactions().DeleteByUser(ctx, id); err != nil {
			return err
		}
		return uow.Users().Delete(ctx, id)
	})
}

// CreateCategory creates a category. A duplicate name fails with a
// constraint violation.
func (s *Service) CreateCategory(ctx context.Context, name string, description *string) (*dto.CategoryRead, error) {
	c, err := category.New(name, description)
	if err != nil {
		return nil, err
	}
	var created *dto.CategoryRead
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		categories := uow.Categories()
		taken, err := categories.ExistsByName(ctx, c.Name)
		if err != nil {
			return err
		}
		if taken {
			return domain.NewConstraintError("name", "already exists")
		}
		if err := categories.Create(ctx, &dto.CategoryCreate{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
		}); err != nil {
			return err
		}
		created, err = categories.Get(ctx, c.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetCategory looks a category up by id.
func (s *Service) GetCategory(ctx context.Context, id uuid.UUID) (*dto.CategoryRead, error) {
	return s.uow.Categories().Get(ctx, id)
}

// ListCategories returns all categories in insertion order.
func (s *Service) ListCategories(ctx context.Context) ([]*dto.CategoryRead, error) {
	return s.uow.Categories().List(ctx)
}

// DeleteCategory removes a category and its transactions in one atomic
// unit.
func (s *Service) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		exists, err := uow.Categories().Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrNotFound
		}
		if err := uow.Transactions().DeleteByCategory(ctx, id); err != nil {
			return err
		}
		return uow.Categories().Delete(ctx, id)
	})
}

// CreateTransaction records a transaction. The owning user must exist;
// the category, when given, must exist. Both are checked inside the
// insert's unit of work so no orphan row can appear.
func (s *Service) CreateTransaction(
	ctx context.Context,
	amount float64,
	date time.Time,
	description *string,
	userID uuid.UUID,
	categoryID *uuid.UUID,
) (*dto.TransactionRead, error) {
	t, err := transaction.New(amount, date, description, userID, categoryID)
	if err != nil {
		return nil, err
	}
	var created *dto.TransactionRead
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		owner, err := uow.Users().Exists(ctx, t.UserID)
		if err != nil {
			return err
		}
		if !owner {
			return domain.NewConstraintError("user_id", "references a nonexistent user")
		}
		if t.CategoryID != nil {
			known, err := uow.Categories().Exists(ctx, *t.CategoryID)
			if err != nil {
				return err
			}
			if !known {
				return domain.NewConstraintError("category_id", "references a nonexistent category")
			}
		}
		if err := uow.Transactions().Create(ctx, &dto.TransactionCreate{
			ID:          t.ID,
			Amount:      t.Amount,
			Date:        t.Date,
			Description: t.Description,
			UserID:      t.UserID,
			CategoryID:  t.CategoryID,
		}); err != nil {
			return err
		}
		created, err = uow.Transactions().Get(ctx, t.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetTransaction looks a transaction up by id, resolved with its user
// and category names.
func (s *Service) GetTransaction(ctx context.Context, id uuid.UUID) (*dto.TransactionRead, error) {
	return s.uow.Transactions().Get(ctx, id)
}
