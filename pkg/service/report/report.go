// Package report provides the aggregation and filter engine: grouped
// sum-by-category summaries and multi-predicate transaction search.
package report

import (
	"context"

	"github.com/pennypilote/pennypilote/pkg/domain"
	"github.com/pennypilote/pennypilote/pkg/dto"
	"github.com/pennypilote/pennypilote/pkg/repository"
)

// Service answers read-only reporting queries. Referencing a
// nonexistent user or category in a filter is not an error; it yields
// an empty result.
type Service struct {
	uow repository.UnitOfWork
}

// New creates a report Service.
func New(uow repository.UnitOfWork) *Service {
	return &Service{uow: uow}
}

// SummarizeByCategory groups transactions by category name and sums
// amounts. Categories with no matching transactions are omitted;
// transactions without a category group under the uncategorized
// sentinel. Year and Month, when both set, restrict to that calendar
// month inclusive; Month must be 1 through 12.
func (s *Service) SummarizeByCategory(ctx context.Context, filter dto.SummaryFilter) (map[string]float64, error) {
	if filter.Year != 0 || filter.Month != 0 {
		if filter.Month < 1 || filter.Month > 12 {
			return nil, domain.ErrValidation
		}
		if filter.Year < 1 {
			return nil, domain.ErrValidation
		}
	}
	return s.uow.Transactions().SumByCategory(ctx, filter)
}

// SearchTransactions applies all set predicates conjunctively and
// returns matches in date-descending order, each resolved with its
// owning user name and category name. Date bounds are inclusive; a
// one-sided range is unbounded on the missing side.
func (s *Service) SearchTransactions(ctx context.Context, filter dto.TransactionFilter) ([]*dto.TransactionRead, error) {
	return s.uow.Transactions().Search(ctx, filter)
}
