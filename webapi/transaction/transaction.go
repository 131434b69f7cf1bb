// Package transaction exposes the transaction, summary, and filter
// endpoints of the JSON API.
package transaction

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pennypilote/pennypilote/pkg/domain"
	"github.com/pennypilote/pennypilote/pkg/dto"
	"github.com/pennypilote/pennypilote/pkg/service/ledger"
	"github.com/pennypilote/pennypilote/pkg/service/report"
	"github.com/pennypilote/pennypilote/webapi/common"
)

// Routes mounts the transaction endpoints.
func Routes(app *fiber.App, ledgerSvc *ledger.Service, reportSvc *report.Service) {
	app.Post("/transactions", CreateTransaction(ledgerSvc))
	app.Get("/transactions", ListTransactions(reportSvc))
	app.Post("/transactions/filter", FilterTransactions(reportSvc))
	app.Get("/summary/:user_id/:year/:month", MonthlySummary(reportSvc))
}

// CreateTransaction handles POST /transactions. When no date is given
// the current date is passed explicitly.
func CreateTransaction(ledgerSvc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[NewTransaction](c)
		if input == nil {
			return err
		}
		accountID, err := uuid.Parse(input.AccountID)
		if err != nil {
			return common.DomainErrorJSON(c, "Invalid account id", domain.ErrValidation)
		}
		var categoryID *uuid.UUID
		if input.CategoryID != nil {
			id, err := uuid.Parse(*input.CategoryID)
			if err != nil {
				return common.DomainErrorJSON(c, "Invalid category id", domain.ErrValidation)
			}
			categoryID = &id
		}
		date := domain.Today()
		if input.Date != "" {
			date, err = domain.ParseDate(input.Date)
			if err != nil {
				return common.DomainErrorJSON(c, "Invalid date", err)
			}
		}
		created, err := ledgerSvc.CreateTransaction(
			c.Context(), *input.Amount, date, input.Description, accountID, categoryID,
		)
		if err != nil {
			return common.DomainErrorJSON(c, "Couldn't record transaction", err)
		}
		return c.Status(fiber.StatusCreated).JSON(NewTransactionResponse{
			TransactionID: created.ID.String(),
		})
	}
}

// ListTransactions handles GET /transactions, returning all
// transactions date-descending.
func ListTransactions(reportSvc *report.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		transactions, err := reportSvc.SearchTransactions(c.Context(), dto.TransactionFilter{})
		if err != nil {
			return common.DomainErrorJSON(c, "Couldn't list transactions", err)
		}
		return c.JSON(toResponses(transactions))
	}
}

// FilterTransactions handles POST /transactions/filter.
func FilterTransactions(reportSvc *report.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[FilterRequest](c)
		if input == nil {
			return err
		}
		var filter dto.TransactionFilter
		if input.UserID != nil {
			id, err := uuid.Parse(*input.UserID)
			if err != nil {
				return common.DomainErrorJSON(c, "Invalid user id", domain.ErrValidation)
			}
			filter.UserID = &id
		}
		if input.CategoryID != nil {
			id, err := uuid.Parse(*input.CategoryID)
			if err != nil {
				return common.DomainErrorJSON(c, "Invalid category id", domain.ErrValidation)
			}
			filter.CategoryID = &id
		}
		if input.StartDate != nil {
			start, err := domain.ParseDate(*input.StartDate)
			if err != nil {
				return common.DomainErrorJSON(c, "Invalid start date", err)
			}
			filter.StartDate = &start
		}
		if input.EndDate != nil {
			end, err := domain.ParseDate(*input.EndDate)
			if err != nil {
				return common.DomainErrorJSON(c, "Invalid end date", err)
			}
			filter.EndDate = &end
		}
		filter.Keyword = input.Keyword

		transactions, err := reportSvc.SearchTransactions(c.Context(), filter)
		if err != nil {
			return common.DomainErrorJSON(c, "Couldn't filter transactions", err)
		}
		return c.JSON(toResponses(transactions))
	}
}

// MonthlySummary handles GET /summary/:user_id/:year/:month.
func MonthlySummary(reportSvc *report.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := uuid.Parse(c.Params("user_id"))
		if err != nil {
			return common.DomainErrorJSON(c, "Invalid user id", domain.ErrValidation)
		}
		year, err := c.ParamsInt("year")
		if err != nil {
			return common.DomainErrorJSON(c, "Invalid year", domain.ErrValidation)
		}
		month, err := c.ParamsInt("month")
		if err != nil {
			return common.DomainErrorJSON(c, "Invalid month", domain.ErrValidation)
		}
		summary, err := reportSvc.SummarizeByCategory(c.Context(), dto.SummaryFilter{
			UserID: &userID,
			Year:   year,
			Month:  month,
		})
		if err != nil {
			return common.DomainErrorJSON(c, "Couldn't build summary", err)
		}
		return c.JSON(summary)
	}
}

func toResponses(transactions []*dto.TransactionRead) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		var category *string
		if t.CategoryID != nil {
			name := t.CategoryName
			category = &name
		}
		out = append(out, TransactionResponse{
			ID:          t.ID.String(),
			Amount:      t.Amount,
			Date:        domain.FormatDate(t.Date),
			Description: t.Description,
			AccountID:   t.UserID.String(),
			Category:    category,
		})
	}
	return out
}
