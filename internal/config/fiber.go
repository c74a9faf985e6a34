package config

import (
	"blogapi/pkg/handlerUtil"
	"blogapi/pkg/response"
	"errors"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

func NewFiber(logger *logrus.Logger) *fiber.App {
	app := fiber.New(
		fiber.Config{
			AppName:               "Blog API",
			BodyLimit:             1 * 1024 * 1024,
			DisableKeepalive:      false,
			StrictRouting:         false,
			CaseSensitive:         true,
			DisableStartupMessage: true,
			JSONEncoder:           jsoniter.Marshal,
			JSONDecoder:           jsoniter.Unmarshal,
			ErrorHandler:          newErrorHandler(logger),
		})

	return app
}

// newErrorHandler renders errors that escape the handlers, such as unknown routes
// or domain errors returned as is, in the same {"error": ...} shape the handlers use.
func newErrorHandler(logger *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := response.StatusOf(err)
		msg := "An unexpected error occurred"

		var fiberErr *fiber.Error
		var respErr *response.Error
		switch {
		case errors.As(err, &fiberErr):
			code = fiberErr.Code
			msg = fiberErr.Message
		case errors.As(err, &respErr):
			msg = respErr.Error()
		}

		logger.WithFields(logrus.Fields{
			"path":   c.Path(),
			"status": code,
			"error":  err.Error(),
		}).Warn("Unhandled request error")

		return c.Status(code).JSON(handlerUtil.ErrorResponse{Error: msg})
	}
}
