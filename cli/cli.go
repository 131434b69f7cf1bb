// Package cli is the interactive menu surface. It collects the same
// field sets as the other surfaces through text prompts and translates
// domain errors into messages and retry prompts; the retry loop for
// invalid dates lives here, never in the core.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/pennypilote/pennypilote/pkg/domain"
	"github.com/pennypilote/pennypilote/pkg/dto"
	"github.com/pennypilote/pennypilote/pkg/service/ledger"
	"github.com/pennypilote/pennypilote/pkg/service/report"
)

var (
	errText     = color.New(color.FgRed).SprintFunc()
	okText      = color.New(color.FgGreen).SprintFunc()
	incomeText  = color.New(color.FgGreen).SprintFunc()
	expenseText = color.New(color.FgRed).SprintFunc()
)

// CLI drives the interactive menu over the given reader and writer.
type CLI struct {
	ledger *ledger.Service
	report *report.Service
	in     *bufio.Scanner
	out    io.Writer
}

// New creates a CLI bound to in and out.
func New(ledgerSvc *ledger.Service, reportSvc *report.Service, in io.Reader, out io.Writer) *CLI {
	return &CLI{
		ledger: ledgerSvc,
		report: reportSvc,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// Run loops the main menu until the user exits or input ends.
func (c *CLI) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "=== PennyPilote CLI ===")
		fmt.Fprintln(c.out, "1. Create User")
		fmt.Fprintln(c.out, "2. Manage Categories")
		fmt.Fprintln(c.out, "3. Add Transaction")
		fmt.Fprintln(c.out, "4. View Summary Reports")
		fmt.Fprintln(c.out, "5. List/Search Transactions")
		fmt.Fprintln(c.out, "6. Exit")

		choice, ok := c.readLine("Select an option: ")
		if !ok {
			return nil
		}
		switch strings.TrimSpace(choice) {
		case "1":
			c.createUser(ctx)
		case "2":
			c.manageCategories(ctx)
		case "3":
			c.addTransaction(ctx)
		case "4":
			c.viewSummary(ctx)
		case "5":
			c.listTransactions(ctx)
		case "6":
			fmt.Fprintln(c.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(c.out, errText("Invalid choice."))
		}
	}
}

func (c *CLI) createUser(ctx context.Context) {
	fmt.Fprintln(c.out, "\n--- Create New User ---")
	name, ok := c.readLine("Enter Name: ")
	if !ok {
		return
	}
	email, ok := c.readLine("Enter Email: ")
	if !ok {
		return
	}
	created, err := c.ledger.CreateUser(ctx, name, email)
	if err != nil {
		fmt.Fprintln(c.out, errText("Error: "+err.Error()))
		return
	}
	fmt.Fprintln(c.out, okText(fmt.Sprintf("User %s created successfully!", created.Name)))
}

func (c *CLI) manageCategories(ctx context.Context) {
	fmt.Fprintln(c.out, "\n--- Manage Categories ---")
	name, ok := c.readLine("Enter Category Name (e.g., Food, Rent, Salary): ")
	if !ok {
		return
	}
	desc, ok := c.readLine("Enter Description (optional): ")
	if !ok {
		return
	}
	var description *string
	if strings.TrimSpace(desc) != "" {
		trimmed := strings.TrimSpace(desc)
		description = &trimmed
	}
	created, err := c.ledger.CreateCategory(ctx, name, description)
	if err != nil {
		fmt.Fprintln(c.out, errText("Error: "+err.Error()))
		return
	}
	fmt.Fprintln(c.out, okText(fmt.Sprintf("Category %q added.", created.Name)))
}

func (c *CLI) addTransaction(ctx context.Context) {
	fmt.Fprintln(c.out, "\n--- Add Transaction ---")

	users, err := c.ledger.ListUsers(ctx)
	if err != nil {
		fmt.Fprintln(c.out, errText("Error: "+err.Error()))
		return
	}
	if len(users) == 0 {
		fmt.Fprintln(c.out, "No users found. Create a user first.")
		return
	}
	for i, u := range users {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, u.Name)
	}
	userID, ok := c.pickUser(users)
	if !ok {
		return
	}

	categories, err := c.ledger.ListCategories(ctx)
	if err != nil {
		fmt.Fprintln(c.out, errText("Error: "+err.Error()))
		return
	}
	if len(categories) == 0 {
		fmt.Fprintln(c.out, "No categories found. Create one first.")
		return
	}
	for i, cat := range categories {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, cat.Name)
	}
	categoryID, ok := c.pickCategory(categories)
	if !ok {
		return
	}

	amountRaw, ok := c.readLine("Enter Amount (positive for income, negative for expense): ")
	if !ok {
		return
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(amountRaw), 64)
	if err != nil {
		fmt.Fprintln(c.out, errText(domain.ErrValidation.Error()+": amount must be a number"))
		return
	}
	desc, ok := c.readLine("Description: ")
	if !ok {
		return
	}
	var description *string
	if strings.TrimSpace(desc) != "" {
		trimmed := strings.TrimSpace(desc)
		description = &trimmed
	}
	date, ok := c.readDate()
	if !ok {
		return
	}

	if _, err := c.ledger.CreateTransaction(ctx, amount, date, description, userID, categoryID); err != nil {
		fmt.Fprintln(c.out, errText("Error: "+err.Error()))
		return
	}
	fmt.Fprintln(c.out, okText("Transaction recorded!"))
}

func (c *CLI) viewSummary(ctx context.Context) {
	fmt.Fprintln(c.out, "\n--- Spending Summary & Analytics ---")
	users, err := c.ledger.ListUsers(ctx)
	if err != nil {
		fmt.Fprintln(c.out, errText("Error: "+err.Error()))
		return
	}
	for i, u := range users {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, u.Name)
	}

	var filter dto.SummaryFilter
	raw, ok := c.readLine("Select User # to view (or press Enter for all): ")
	if !ok {
		return
	}
	if strings.TrimSpace(raw) != "" {
		idx, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || idx < 1 || idx > len(users) {
			fmt.Fprintln(c.out, errText(domain.ErrValidation.Error()+": no such user"))
			return
		}
		filter.UserID = &users[idx-1].ID
	}

	summary, err := c.report.SummarizeByCategory(ctx, filter)
	if err != nil {
		fmt.Fprintln(c.out, errText("Error: "+err.Error()))
		return
	}
	fmt.Fprintf(c.out, "\n%-20s | %-10s\n", "Category", "Total")
	fmt.Fprintln(c.out, strings.Repeat("-", 35))
	for name, total := range summary {
		fmt.Fprintf(c.out, "%-20s | %s\n", name, colorAmount(total))
	}
}

func (c *CLI) listTransactions(ctx context.Context) {
	fmt.Fprintln(c.out, "\n--- List Transactions ---")
	keyword, ok := c.readLine("Search keyword (optional): ")
	if !ok {
		return
	}
	transactions, err := c.report.SearchTransactions(ctx, dto.TransactionFilter{
		Keyword: strings.TrimSpace(keyword),
	})
	if err != nil {
		fmt.Fprintln(c.out, errText("Error: "+err.Error()))
		return
	}
	fmt.Fprintf(c.out, "\n%-12s | %-10s | %-12s | %-10s | %s\n",
		"Date", "User", "Category", "Amount", "Desc")
	fmt.Fprintln(c.out, strings.Repeat("-", 60))
	for _, t := range transactions {
		desc := ""
		if t.Description != nil {
			desc = *t.Description
		}
		fmt.Fprintf(c.out, "%-12s | %-10s | %-12s | %-10s | %s\n",
			domain.FormatDate(t.Date), t.UserName, t.CategoryName, colorAmount(t.Amount), desc)
	}
}

// readDate prompts until a valid YYYY-MM-DD date is entered or input
// ends.
func (c *CLI) readDate() (time.Time, bool) {
	for {
		raw, ok := c.readLine("Enter date (YYYY-MM-DD): ")
		if !ok {
			return time.Time{}, false
		}
		date, err := domain.ParseDate(strings.TrimSpace(raw))
		if err == nil {
			return date, true
		}
		fmt.Fprintln(c.out, errText("Invalid format. Please use YYYY-MM-DD."))
	}
}

func (c *CLI) pickUser(users []*dto.UserRead) (uuid.UUID, bool) {
	raw, ok := c.readLine("Select User #: ")
	if !ok {
		return uuid.Nil, false
	}
	idx, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || idx < 1 || idx > len(users) {
		fmt.Fprintln(c.out, errText(domain.ErrValidation.Error()+": no such user"))
		return uuid.Nil, false
	}
	return users[idx-1].ID, true
}

func (c *CLI) pickCategory(categories []*dto.CategoryRead) (*uuid.UUID, bool) {
	raw, ok := c.readLine("Select Category # (or press Enter for uncategorized): ")
	if !ok {
		return nil, false
	}
	if strings.TrimSpace(raw) == "" {
		return nil, true
	}
	idx, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || idx < 1 || idx > len(categories) {
		fmt.Fprintln(c.out, errText(domain.ErrValidation.Error()+": no such category"))
		return nil, false
	}
	return &categories[idx-1].ID, true
}

func (c *CLI) readLine(prompt string) (string, bool) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

func colorAmount(amount float64) string {
	s := fmt.Sprintf("$%.2f", amount)
	if amount < 0 {
		return expenseText(s)
	}
	return incomeText(s)
}
