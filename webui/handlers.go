package webui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pennypilote/pennypilote/pkg/domain"
	"github.com/pennypilote/pennypilote/pkg/dto"
	"github.com/pennypilote/pennypilote/pkg/service/ledger"
	"github.com/pennypilote/pennypilote/pkg/service/report"
)

type handlers struct {
	ledger *ledger.Service
	report *report.Service
}

type summaryRow struct {
	Name  string
	Total string
	Class string
}

type transactionRow struct {
	Date        string
	UserName    string
	Category    string
	Amount      string
	Class       string
	Description string
}

func (h *handlers) dashboard(c *fiber.Ctx) error {
	summary, err := h.report.SummarizeByCategory(c.Context(), dto.SummaryFilter{})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	names := make([]string, 0, len(summary))
	for name := range summary {
		names = append(names, name)
	}
	sort.Strings(names)
	rows := make([]summaryRow, 0, len(names))
	for _, name := range names {
		rows = append(rows, summaryRow{
			Name:  name,
			Total: fmt.Sprintf("%.2f", summary[name]),
			Class: amountClass(summary[name]),
		})
	}
	return c.Render("dashboard", fiber.Map{"Summary": rows}, "layouts/main")
}

func (h *handlers) usersPage(c *fiber.Ctx) error {
	return h.renderUsers(c, "")
}

func (h *handlers) renderUsers(c *fiber.Ctx, errMsg string) error {
	users, err := h.ledger.ListUsers(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.Render("users", fiber.Map{"Users": users, "Error": errMsg}, "layouts/main")
}

func (h *handlers) createUser(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.FormValue("name"))
	email := strings.TrimSpace(c.FormValue("email"))
	if _, err := h.ledger.CreateUser(c.Context(), name, email); err != nil {
		return h.renderUsers(c, err.Error())
	}
	return c.Redirect("/users", fiber.StatusFound)
}

func (h *handlers) categoriesPage(c *fiber.Ctx) error {
	return h.renderCategories(c, "")
}

func (h *handlers) renderCategories(c *fiber.Ctx, errMsg string) error {
	categories, err := h.ledger.ListCategories(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.Render("categories", fiber.Map{"Categories": categories, "Error": errMsg}, "layouts/main")
}

func (h *handlers) createCategory(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.FormValue("name"))
	var description *string
	if desc := strings.TrimSpace(c.FormValue("desc")); desc != "" {
		description = &desc
	}
	if _, err := h.ledger.CreateCategory(c.Context(), name, description); err != nil {
		return h.renderCategories(c, err.Error())
	}
	return c.Redirect("/categories", fiber.StatusFound)
}

func (h *handlers) transactionsPage(c *fiber.Ctx) error {
	return h.renderTransactions(c, "")
}

func (h *handlers) renderTransactions(c *fiber.Ctx, errMsg string) error {
	users, err := h.ledger.ListUsers(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	categories, err := h.ledger.ListCategories(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	transactions, err := h.report.SearchTransactions(c.Context(), dto.TransactionFilter{})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	rows := make([]transactionRow, 0, len(transactions))
	for _, t := range transactions {
		desc := ""
		if t.Description != nil {
			desc = *t.Description
		}
		rows = append(rows, transactionRow{
			Date:        domain.FormatDate(t.Date),
			UserName:    t.UserName,
			Category:    t.CategoryName,
			Amount:      fmt.Sprintf("%.2f", t.Amount),
			Class:       amountClass(t.Amount),
			Description: desc,
		})
	}
	return c.Render("transactions", fiber.Map{
		"Users":        users,
		"Categories":   categories,
		"Transactions": rows,
		"Error":        errMsg,
	}, "layouts/main")
}

func (h *handlers) createTransaction(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.FormValue("user_id"))
	if err != nil {
		return h.renderTransactions(c, "select a valid user")
	}
	var categoryID *uuid.UUID
	if raw := c.FormValue("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return h.renderTransactions(c, "select a valid category")
		}
		categoryID = &id
	}
	amount, err := strconv.ParseFloat(c.FormValue("amount"), 64)
	if err != nil {
		return h.renderTransactions(c, "amount must be a number")
	}
	date, err := domain.ParseDate(c.FormValue("date"))
	if err != nil {
		return h.renderTransactions(c, "date must be YYYY-MM-DD")
	}
	var description *string
	if desc := strings.TrimSpace(c.FormValue("desc")); desc != "" {
		description = &desc
	}
	if _, err := h.ledger.CreateTransaction(
		c.Context(), amount, date, description, userID, categoryID,
	); err != nil {
		return h.renderTransactions(c, err.Error())
	}
	return c.Redirect("/transactions", fiber.StatusFound)
}

func amountClass(amount float64) string {
	if amount < 0 {
		return "expense"
	}
	return "income"
}
