package presenters

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, handler fiber.Handler) (int, Response, string) {
	t.Helper()

	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body Response
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body, string(raw)
}

func TestSuccessResponse(t *testing.T) {
	status, body, _ := doRequest(t, func(c *fiber.Ctx) error {
		return SuccessResponse(c, fiber.Map{"id": 1}, fiber.StatusCreated, "created")
	})

	assert.Equal(t, fiber.StatusCreated, status)
	assert.True(t, body.Success)
	assert.Equal(t, "created", body.Message)
}

func TestFailedResponseCarriesNoErrorDetail(t *testing.T) {
	status, body, _ := doRequest(t, func(c *fiber.Ctx) error {
		return FailedResponse(c, fiber.StatusNotFound, "Recipe not found")
	})

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.False(t, body.Success)
	assert.Equal(t, "Recipe not found", body.Message)
	assert.Empty(t, body.Error)
}

func TestInternalErrorResponseHidesUnderlyingError(t *testing.T) {
	dbErr := errors.New(`pq: connection to host "db-internal" failed`)

	status, body, raw := doRequest(t, func(c *fiber.Ctx) error {
		return InternalErrorResponse(c, "failed to get recipes", dbErr)
	})

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.False(t, body.Success)
	assert.Equal(t, "failed to get recipes", body.Message)
	assert.Empty(t, body.Error)
	assert.False(t, strings.Contains(raw, "pq:"))
	assert.False(t, strings.Contains(raw, "db-internal"))
}
