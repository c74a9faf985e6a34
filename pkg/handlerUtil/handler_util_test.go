package handlerUtil

import (
	"blogapi/pkg/response"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, fail error) (*http.Response, ErrorResponse, *test.Hook) {
	t.Helper()

	logger, hook := test.NewNullLogger()
	h := New(logger)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return h.Handle(c, "req-1", fail, c.Path(), "test")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body, hook
}

func TestHandle_DomainError(t *testing.T) {
	resp, body, hook := serve(t, response.Conflict("email already exists"))

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "email already exists", body.Error)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "req-1", hook.LastEntry().Data["request_id"])
}

func TestHandle_InternalDomainErrorLogsAtErrorLevel(t *testing.T) {
	resp, body, hook := serve(t, response.Internal("failed to fetch blogs"))

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "failed to fetch blogs", body.Error)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestHandle_UnknownErrorIsHidden(t *testing.T) {
	resp, body, _ := serve(t, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "An unexpected error occurred", body.Error)
}
