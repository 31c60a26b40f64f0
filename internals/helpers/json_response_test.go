package helper

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFiberErrorPassesThroughFiberErrors(t *testing.T) {
	app := fiber.New()
	app.Get("/missing", func(c *fiber.Ctx) error {
		return FromFiberError(c, fiber.NewError(fiber.StatusNotFound, "Week not found"))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Week not found")
	assert.Contains(t, string(body), "NOT_FOUND")
}

func TestFromFiberErrorHidesUnknownErrors(t *testing.T) {
	opaque := "pq: connection to host db-prod refused"
	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return FromFiberError(c, errors.New(opaque))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(body), "pq:"), "driver detail must not reach the client")
	assert.Contains(t, string(body), fiber.ErrInternalServerError.Message)
	assert.Contains(t, string(body), "INTERNAL_ERROR")
}
