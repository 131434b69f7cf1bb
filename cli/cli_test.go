package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pennypilote/pennypilote/cli"
	"github.com/pennypilote/pennypilote/pkg/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runSession feeds a scripted session to the CLI and returns everything
// it printed.
func runSession(t *testing.T, lines ...string) string {
	t.Helper()
	ledgerSvc, reportSvc := testutils.NewServices(t)

	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	c := cli.New(ledgerSvc, reportSvc, in, &out)
	require.NoError(t, c.Run(context.Background()))
	return out.String()
}

func TestRunExitsOnOptionSix(t *testing.T) {
	out := runSession(t, "6")
	assert.Contains(t, out, "=== PennyPilote CLI ===")
	assert.Contains(t, out, "Goodbye!")
}

func TestRunExitsWhenInputEnds(t *testing.T) {
	// no trailing exit choice, the scanner just runs dry
	out := runSession(t, "totally not a menu option")
	assert.Contains(t, out, "Invalid choice.")
}

func TestCreateUserFlow(t *testing.T) {
	out := runSession(t,
		"1", "Ann", "a@x.com",
		"1", "Impostor", "a@x.com",
		"6",
	)
	assert.Contains(t, out, "User Ann created successfully!")
	assert.Contains(t, out, "already exists")
}

func TestAddTransactionRetriesInvalidDate(t *testing.T) {
	out := runSession(t,
		"1", "Ann", "a@x.com",
		"2", "Food", "",
		"3",
		"1",          // user
		"1",          // category
		"-20.50",     // amount
		"groceries",  // description
		"01-03-2024", // rejected, prompt repeats
		"garbage",    // rejected again
		"2024-03-01", // accepted
		"6",
	)
	assert.Equal(t, 2, strings.Count(out, "Invalid format. Please use YYYY-MM-DD."))
	assert.Contains(t, out, "Transaction recorded!")
}

func TestAddTransactionUncategorized(t *testing.T) {
	out := runSession(t,
		"1", "Ann", "a@x.com",
		"2", "Food", "",
		"3",
		"1",  // user
		"",   // blank category keeps it uncategorized
		"15", // amount
		"",   // no description
		"2024-03-01",
		"5", "", // list with no keyword
		"6",
	)
	assert.Contains(t, out, "Transaction recorded!")
	assert.Contains(t, out, "Uncategorized")
}

func TestAddTransactionRejectsBadOrdinal(t *testing.T) {
	out := runSession(t,
		"1", "Ann", "a@x.com",
		"2", "Food", "",
		"3", "9",
		"6",
	)
	assert.Contains(t, out, "no such user")
	assert.NotContains(t, out, "Transaction recorded!")
}

func TestAddTransactionNeedsUsers(t *testing.T) {
	out := runSession(t, "3", "6")
	assert.Contains(t, out, "No users found. Create a user first.")
}

func TestViewSummary(t *testing.T) {
	out := runSession(t,
		"1", "Ann", "a@x.com",
		"2", "Food", "",
		"3", "1", "1", "-20.50", "", "2024-03-01",
		"3", "1", "1", "1500.00", "", "2024-03-05",
		"4", "1",
		"6",
	)
	assert.Contains(t, out, "Category")
	assert.Contains(t, out, "Food")
	assert.Contains(t, out, "$1479.50")
}

func TestListTransactionsKeyword(t *testing.T) {
	out := runSession(t,
		"1", "Ann", "a@x.com",
		"2", "Food", "",
		"3", "1", "1", "-20.50", "weekly groceries", "2024-03-01",
		"3", "1", "1", "-4.00", "bus ticket", "2024-03-02",
		"5", "groceries",
		"6",
	)
	assert.Contains(t, out, "weekly groceries")
	assert.NotContains(t, out, "bus ticket")
}
