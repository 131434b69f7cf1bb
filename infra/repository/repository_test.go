package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	infrarepo "github.com/pennypilote/pennypilote/infra/repository"
	"github.com/pennypilote/pennypilote/pkg/domain"
	"github.com/pennypilote/pennypilote/pkg/dto"
	"github.com/pennypilote/pennypilote/pkg/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepositoryUniqueEmail(t *testing.T) {
	ctx := context.Background()
	repo := infrarepo.NewUserRepository(testutils.NewTestDB(t))

	first := &dto.UserCreate{ID: uuid.New(), Name: "Ann", Email: "a@x.com"}
	require.NoError(t, repo.Create(ctx, first))

	dup := &dto.UserCreate{ID: uuid.New(), Name: "Other Ann", Email: "a@x.com"}
	err := repo.Create(ctx, dup)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserRepositoryGetNotFound(t *testing.T) {
	ctx := context.Background()
	repo := infrarepo.NewUserRepository(testutils.NewTestDB(t))

	_, err := repo.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserRepositoryListInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := infrarepo.NewUserRepository(testutils.NewTestDB(t))

	for _, name := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(ctx, &dto.UserCreate{
			ID:    uuid.New(),
			Name:  name,
			Email: name + "@x.com",
		}))
		// keep created_at strictly increasing
		time.Sleep(2 * time.Millisecond)
	}

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "first", users[0].Name)
	assert.Equal(t, "second", users[1].Name)
	assert.Equal(t, "third", users[2].Name)
}

func TestCategoryRepositoryUniqueName(t *testing.T) {
	ctx := context.Background()
	repo := infrarepo.NewCategoryRepository(testutils.NewTestDB(t))

	require.NoError(t, repo.Create(ctx, &dto.CategoryCreate{ID: uuid.New(), Name: "Food"}))
	err := repo.Create(ctx, &dto.CategoryCreate{ID: uuid.New(), Name: "Food"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)
}

func TestTransactionRepositoryResolvesNames(t *testing.T) {
	ctx := context.Background()
	db := testutils.NewTestDB(t)
	users := infrarepo.NewUserRepository(db)
	categories := infrarepo.NewCategoryRepository(db)
	transactions := infrarepo.NewTransactionRepository(db)

	userID := uuid.New()
	categoryID := uuid.New()
	require.NoError(t, users.Create(ctx, &dto.UserCreate{ID: userID, Name: "Ann", Email: "a@x.com"}))
	require.NoError(t, categories.Create(ctx, &dto.CategoryCreate{ID: categoryID, Name: "Food"}))

	txID := uuid.New()
	require.NoError(t, transactions.Create(ctx, &dto.TransactionCreate{
		ID:         txID,
		Amount:     -20.50,
		Date:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		UserID:     userID,
		CategoryID: &categoryID,
	}))

	got, err := transactions.Get(ctx, txID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.UserName)
	assert.Equal(t, "Food", got.CategoryName)

	uncatID := uuid.New()
	require.NoError(t, transactions.Create(ctx, &dto.TransactionCreate{
		ID:     uncatID,
		Amount: 5,
		Date:   time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		UserID: userID,
	}))
	uncat, err := transactions.Get(ctx, uncatID)
	require.NoError(t, err)
	assert.Equal(t, "Uncategorized", uncat.CategoryName)
	assert.Nil(t, uncat.CategoryID)
}
