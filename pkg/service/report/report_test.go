package report_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pennypilote/pennypilote/pkg/domain"
	"github.com/pennypilote/pennypilote/pkg/dto"
	"github.com/pennypilote/pennypilote/pkg/service/ledger"
	"github.com/pennypilote/pennypilote/pkg/service/report"
	"github.com/pennypilote/pennypilote/pkg/testutils"
	"github.com/stretchr/testify/suite"
)

type ReportTestSuite struct {
	suite.Suite
	ctx    context.Context
	ledger *ledger.Service
	report *report.Service

	ann  *dto.UserRead
	ben  *dto.UserRead
	food *dto.CategoryRead
	rent *dto.CategoryRead
}

func TestReportTestSuite(t *testing.T) {
	suite.Run(t, new(ReportTestSuite))
}

func (s *ReportTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ledger, s.report = testutils.NewServices(s.T())

	var err error
	s.ann, err = s.ledger.CreateUser(s.ctx, "Ann", "a@x.com")
	s.Require().NoError(err)
	s.ben, err = s.ledger.CreateUser(s.ctx, "Ben", "b@x.com")
	s.Require().NoError(err)
	s.food, err = s.ledger.CreateCategory(s.ctx, "Food", nil)
	s.Require().NoError(err)
	s.rent, err = s.ledger.CreateCategory(s.ctx, "Rent", nil)
	s.Require().NoError(err)
}

func (s *ReportTestSuite) add(amount float64, date string, desc string, user *dto.UserRead, cat *dto.CategoryRead) *dto.TransactionRead {
	parsed, err := domain.ParseDate(date)
	s.Require().NoError(err)
	var description *string
	if desc != "" {
		description = &desc
	}
	var categoryID *uuid.UUID
	if cat != nil {
		categoryID = &cat.ID
	}
	created, err := s.ledger.CreateTransaction(s.ctx, amount, parsed, description, user.ID, categoryID)
	s.Require().NoError(err)
	return created
}

func (s *ReportTestSuite) TestSummarizeByUser() {
	s.add(-20.50, "2024-03-01", "groceries", s.ann, s.food)
	s.add(1500.00, "2024-03-05", "refund", s.ann, s.food)
	s.add(-999.99, "2024-03-02", "ben's rent", s.ben, s.rent)

	summary, err := s.report.SummarizeByCategory(s.ctx, dto.SummaryFilter{UserID: &s.ann.ID})
	s.Require().NoError(err)
	s.Require().Len(summary, 1)
	s.InDelta(1479.50, summary["Food"], 1e-9)
}

func (s *ReportTestSuite) TestSummaryTotalsMatchTransactionSum() {
	amounts := []float64{-20.50, 1500.00, -3.25, 42.00}
	dates := []string{"2024-03-01", "2024-03-05", "2024-04-01", "2024-04-02"}
	cats := []*dto.CategoryRead{s.food, s.food, s.rent, s.rent}
	var want float64
	for i := range amounts {
		s.add(amounts[i], dates[i], "", s.ann, cats[i])
		want += amounts[i]
	}
	// uncategorized rows group under the sentinel and count too
	s.add(7.75, "2024-04-03", "", s.ann, nil)
	want += 7.75

	summary, err := s.report.SummarizeByCategory(s.ctx, dto.SummaryFilter{})
	s.Require().NoError(err)

	var got float64
	for _, total := range summary {
		got += total
	}
	s.InDelta(want, got, 1e-9)
	s.Contains(summary, "Uncategorized")
}

func (s *ReportTestSuite) TestSummaryOmitsEmptyCategories() {
	s.add(-20.50, "2024-03-01", "", s.ann, s.food)

	summary, err := s.report.SummarizeByCategory(s.ctx, dto.SummaryFilter{})
	s.Require().NoError(err)
	s.Contains(summary, "Food")
	s.NotContains(summary, "Rent")
}

func (s *ReportTestSuite) TestSummaryMonthWindow() {
	s.add(-10, "2024-03-01", "", s.ann, s.food)
	s.add(-20, "2024-03-31", "", s.ann, s.food)
	s.add(-40, "2024-04-01", "", s.ann, s.food)

	summary, err := s.report.SummarizeByCategory(s.ctx, dto.SummaryFilter{
		UserID: &s.ann.ID,
		Year:   2024,
		Month:  3,
	})
	s.Require().NoError(err)
	s.InDelta(-30, summary["Food"], 1e-9)
}

func (s *ReportTestSuite) TestSummaryNonexistentUserIsEmpty() {
	s.add(-10, "2024-03-01", "", s.ann, s.food)

	ghost := uuid.New()
	summary, err := s.report.SummarizeByCategory(s.ctx, dto.SummaryFilter{UserID: &ghost})
	s.Require().NoError(err)
	s.Empty(summary)
}

func (s *ReportTestSuite) TestSummaryRejectsBadMonth() {
	_, err := s.report.SummarizeByCategory(s.ctx, dto.SummaryFilter{Year: 2024, Month: 13})
	s.ErrorIs(err, domain.ErrValidation)
}

func (s *ReportTestSuite) TestSearchNoFiltersReturnsAllDateDescending() {
	s.add(-1, "2024-03-03", "", s.ann, s.food)
	s.add(-2, "2024-03-01", "", s.ann, s.food)
	s.add(-3, "2024-03-05", "", s.ben, nil)

	results, err := s.report.SearchTransactions(s.ctx, dto.TransactionFilter{})
	s.Require().NoError(err)
	s.Require().Len(results, 3)
	s.Equal("2024-03-05", domain.FormatDate(results[0].Date))
	s.Equal("2024-03-03", domain.FormatDate(results[1].Date))
	s.Equal("2024-03-01", domain.FormatDate(results[2].Date))
}

func (s *ReportTestSuite) TestSearchKeyword() {
	s.add(-1, "2024-03-01", "Weekly Groceries", s.ann, s.food)
	s.add(-2, "2024-03-02", "bus ticket", s.ann, nil)
	s.add(-3, "2024-03-03", "", s.ann, nil) // null description never matches

	results, err := s.report.SearchTransactions(s.ctx, dto.TransactionFilter{Keyword: "GROCER"})
	s.Require().NoError(err)
	s.Require().Len(results, 1)
	s.Equal("Ann", results[0].UserName)
	s.Equal("Food", results[0].CategoryName)

	none, err := s.report.SearchTransactions(s.ctx, dto.TransactionFilter{Keyword: "nope"})
	s.Require().NoError(err)
	s.Empty(none)
}

func (s *ReportTestSuite) TestSearchConjunctivePredicates() {
	s.add(-1, "2024-03-01", "coffee", s.ann, s.food)
	s.add(-2, "2024-03-02", "coffee", s.ben, s.food)
	s.add(-3, "2024-03-03", "coffee", s.ann, s.rent)

	results, err := s.report.SearchTransactions(s.ctx, dto.TransactionFilter{
		UserID:     &s.ann.ID,
		CategoryID: &s.food.ID,
		Keyword:    "coffee",
	})
	s.Require().NoError(err)
	s.Require().Len(results, 1)
	s.InDelta(-1, results[0].Amount, 1e-9)
}

func (s *ReportTestSuite) TestSearchDateRangeInclusive() {
	s.add(-1, "2024-03-01", "", s.ann, nil)
	s.add(-2, "2024-03-10", "", s.ann, nil)
	s.add(-3, "2024-03-20", "", s.ann, nil)

	start, err := domain.ParseDate("2024-03-01")
	s.Require().NoError(err)
	end, err := domain.ParseDate("2024-03-10")
	s.Require().NoError(err)

	both, err := s.report.SearchTransactions(s.ctx, dto.TransactionFilter{
		StartDate: &start,
		EndDate:   &end,
	})
	s.Require().NoError(err)
	s.Len(both, 2)

	// one-sided ranges are unbounded on the missing side
	after, err := s.report.SearchTransactions(s.ctx, dto.TransactionFilter{StartDate: &end})
	s.Require().NoError(err)
	s.Len(after, 2)

	until, err := s.report.SearchTransactions(s.ctx, dto.TransactionFilter{EndDate: &end})
	s.Require().NoError(err)
	s.Len(until, 2)
}

func (s *ReportTestSuite) TestSearchNonexistentCategoryIsEmpty() {
	s.add(-1, "2024-03-01", "", s.ann, s.food)

	ghost := uuid.New()
	results, err := s.report.SearchTransactions(s.ctx, dto.TransactionFilter{CategoryID: &ghost})
	s.Require().NoError(err)
	s.Empty(results)
}
