package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pennypilote/pennypilote/pkg/domain/transaction"
	"github.com/pennypilote/pennypilote/pkg/dto"
	"github.com/pennypilote/pennypilote/pkg/repository"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository returns a gorm-backed TransactionRepository
// bound to the given session.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, create *dto.TransactionCreate) error {
	row := &Transaction{
		ID:          create.ID,
		Amount:      create.Amount,
		Date:        create.Date,
		Description: create.Description,
		UserID:      create.UserID,
		CategoryID:  create.CategoryID,
	}
	return MapGormErrorToDomain(r.db.WithContext(ctx).Create(row).Error)
}

// searchRow is the scan target for the resolved transaction query.
type searchRow struct {
	ID           uuid.UUID
	Amount       float64
	Date         time.Time
	Description  *string
	UserID       uuid.UUID
	CategoryID   *uuid.UUID
	UserName     string
	CategoryName *string
}

func (r *transactionRepository) resolved(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("transactions").
		Select("transactions.id, transactions.amount, transactions.date, " +
			"transactions.description, transactions.user_id, transactions.category_id, " +
			"accounts.name AS user_name, categories.name AS category_name").
		Joins("JOIN accounts ON accounts.id = transactions.user_id").
		Joins("LEFT JOIN categories ON categories.id = transactions.category_id")
}

func (r *transactionRepository) Get(ctx context.Context, id uuid.UUID) (*dto.TransactionRead, error) {
	var row searchRow
	q := r.resolved(ctx).Where("transactions.id = ?", id)
	res := q.Scan(&row)
	if res.Error != nil {
		return nil, MapGormErrorToDomain(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, MapGormErrorToDomain(gorm.ErrRecordNotFound)
	}
	return mapRowToDTO(&row), nil
}

func (r *transactionRepository) Search(ctx context.Context, filter dto.TransactionFilter) ([]*dto.TransactionRead, error) {
	q := r.resolved(ctx)
	if filter.UserID != nil {
		q = q.Where("transactions.user_id = ?", *filter.UserID)
	}
	if filter.CategoryID != nil {
		q = q.Where("transactions.category_id = ?", *filter.CategoryID)
	}
	if filter.StartDate != nil {
		q = q.Where("transactions.date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		// Inclusive: dates are stored at midnight.
		q = q.Where("transactions.date <= ?", *filter.EndDate)
	}
	if filter.Keyword != "" {
		// NULL descriptions never match.
		kw := "%" + strings.ToLower(filter.Keyword) + "%"
		q = q.Where("LOWER(transactions.description) LIKE ?", kw)
	}

	var rows []searchRow
	if err := q.Order("transactions.date DESC").Scan(&rows).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	result := make([]*dto.TransactionRead, 0, len(rows))
	for i := range rows {
		result = append(result, mapRowToDTO(&rows[i]))
	}
	return result, nil
}

func (r *transactionRepository) SumByCategory(ctx context.Context, filter dto.SummaryFilter) (map[string]float64, error) {
	q := r.db.WithContext(ctx).
		Table("transactions").
		Select("COALESCE(categories.name, ?) AS name, SUM(transactions.amount) AS total",
			transaction.UncategorizedLabel).
		Joins("LEFT JOIN categories ON categories.id = transactions.category_id").
		Group("categories.name")
	if filter.UserID != nil {
		q = q.Where("transactions.user_id = ?", *filter.UserID)
	}
	if filter.Year != 0 && filter.Month != 0 {
		start := time.Date(filter.Year, time.Month(filter.Month), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)
		q = q.Where("transactions.date >= ? AND transactions.date < ?", start, end)
	}

	var rows []struct {
		Name  string
		Total float64
	}
	if err := q.Scan(&rows).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	summary := make(map[string]float64, len(rows))
	for _, row := range rows {
		summary[row.Name] = row.Total
	}
	return summary, nil
}

func (r *transactionRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	return MapGormErrorToDomain(
		r.db.WithContext(ctx).Delete(&Transaction{}, "user_id = ?", userID).Error,
	)
}

func (r *transactionRepository) DeleteByCategory(ctx context.Context, categoryID uuid.UUID) error {
	return MapGormErrorToDomain(
		r.db.WithContext(ctx).Delete(&Transaction{}, "category_id = ?", categoryID).Error,
	)
}

func mapRowToDTO(row *searchRow) *dto.TransactionRead {
	name := transaction.UncategorizedLabel
	if row.CategoryName != nil {
		name = *row.CategoryName
	}
	return &dto.TransactionRead{
		ID:           row.ID,
		Amount:       row.Amount,
		Date:         row.Date,
		Description:  row.Description,
		UserID:       row.UserID,
		CategoryID:   row.CategoryID,
		UserName:     row.UserName,
		CategoryName: name,
	}
}

var _ repository.TransactionRepository = (*transactionRepository)(nil)
