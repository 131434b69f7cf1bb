package webui_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pennypilote/pennypilote/pkg/testutils"
	"github.com/pennypilote/pennypilote/webui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	ledgerSvc, reportSvc := testutils.NewServices(t)
	return webui.NewApp(ledgerSvc, reportSvc)
}

func get(t *testing.T, app *fiber.App, path string) (int, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestDashboardRenders(t *testing.T) {
	app := newApp(t)
	status, body := get(t, app, "/")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "PennyPilote")
}

func TestCreateUserRedirectsAndLists(t *testing.T) {
	app := newApp(t)

	status, _ := postForm(t, app, "/users", url.Values{
		"name":  {"Ann"},
		"email": {"a@x.com"},
	})
	assert.Equal(t, http.StatusFound, status)

	status, body := get(t, app, "/users")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Ann")
	assert.Contains(t, body, "a@x.com")
}

func TestCreateUserDuplicateRerendersWithError(t *testing.T) {
	app := newApp(t)

	form := url.Values{"name": {"Ann"}, "email": {"a@x.com"}}
	status, _ := postForm(t, app, "/users", form)
	require.Equal(t, http.StatusFound, status)

	status, body := postForm(t, app, "/users", form)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "already exists")
}

func TestCreateTransactionBadDateRerendersWithError(t *testing.T) {
	app := newApp(t)

	status, _ := postForm(t, app, "/users", url.Values{
		"name":  {"Ann"},
		"email": {"a@x.com"},
	})
	require.Equal(t, http.StatusFound, status)

	_, usersBody := get(t, app, "/transactions")
	userID := extractOptionValue(t, usersBody)

	status, body := postForm(t, app, "/transactions", url.Values{
		"user_id": {userID},
		"amount":  {"-20.50"},
		"date":    {"01-03-2024"},
	})
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "date must be YYYY-MM-DD")
}

// extractOptionValue pulls the first non-empty option value out of a
// rendered select, which is how the form identifies users.
func extractOptionValue(t *testing.T, body string) string {
	t.Helper()
	const marker = `<option value="`
	idx := strings.Index(body, marker)
	require.GreaterOrEqual(t, idx, 0)
	rest := body[idx+len(marker):]
	end := strings.Index(rest, `"`)
	require.Greater(t, end, 0)
	if rest[:end] == "" {
		return extractOptionValue(t, rest)
	}
	return rest[:end]
}
