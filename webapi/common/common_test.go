package common_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pennypilote/pennypilote/pkg/domain"
	"github.com/pennypilote/pennypilote/webapi/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorToStatusCode(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: domain.ErrNotFound, want: fiber.StatusNotFound},
		{name: "constraint violation", err: domain.ErrConstraintViolation, want: fiber.StatusConflict},
		{name: "wrapped constraint violation", err: domain.NewConstraintError("email", "already exists"), want: fiber.StatusConflict},
		{name: "invalid date", err: domain.ErrInvalidDate, want: fiber.StatusBadRequest},
		{name: "validation", err: domain.ErrValidation, want: fiber.StatusUnprocessableEntity},
		{name: "unknown", err: errors.New("boom"), want: fiber.StatusInternalServerError},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, common.ErrorToStatusCode(tc.err))
		})
	}
}

func TestDomainErrorJSONWritesProblemDetails(t *testing.T) {
	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return common.DomainErrorJSON(c, "Couldn't create user", domain.NewConstraintError("email", "already exists"))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "application/problem+json", resp.Header.Get(fiber.HeaderContentType))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var pd common.ProblemDetails
	require.NoError(t, json.Unmarshal(body, &pd))
	assert.Equal(t, "Couldn't create user", pd.Title)
	assert.Equal(t, fiber.StatusConflict, pd.Status)
	assert.Contains(t, pd.Detail, "email")
	assert.Equal(t, "/boom", pd.Instance)
}
