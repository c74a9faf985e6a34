package config

import (
	"blogapi/pkg/response"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiberErrorHandler(t *testing.T) {
	logger, _ := test.NewNullLogger()
	app := NewFiber(logger)

	app.Get("/conflict", func(c *fiber.Ctx) error {
		return response.Conflict("email already exists")
	})
	app.Get("/internal", func(c *fiber.Ctx) error {
		return response.Internal("failed to fetch blogs")
	})
	app.Get("/raw", func(c *fiber.Ctx) error {
		return errors.New("pq: connection refused")
	})
	app.Get("/teapot", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})

	tests := []struct {
		path    string
		code    int
		message string
	}{
		{path: "/conflict", code: http.StatusConflict, message: "email already exists"},
		{path: "/internal", code: http.StatusInternalServerError, message: "failed to fetch blogs"},
		{path: "/raw", code: http.StatusInternalServerError, message: "An unexpected error occurred"},
		{path: "/teapot", code: http.StatusTeapot, message: "short and stout"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

			assert.Equal(t, tt.code, resp.StatusCode)
			assert.Equal(t, tt.message, body["error"])
		})
	}
}
