package middleware

import (
	"blogapi/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type Middleware interface {
	NewRateLimiter(ctx *fiber.Ctx) error
	NewLoggingMiddleware(ctx *fiber.Ctx) error
	NewRequestIDMiddleware() fiber.Handler
	GetRequestID(ctx *fiber.Ctx) string
}

type middleware struct {
	rateLimitter        *rateLimiter
	loggingMiddleware   *loggingMiddleware
	requestIDMiddleware fiber.Handler
	log                 *logrus.Logger
}

// Option tunes the middleware set built by New.
type Option func(*options)

type options struct {
	rate  rate.Limit
	burst int
}

// WithRateLimit overrides the per-IP limit of 50 req/s with bursts of 100.
func WithRateLimit(r rate.Limit, burst int) Option {
	return func(o *options) {
		o.rate = r
		o.burst = burst
	}
}

func New(logger *logrus.Logger, opts ...Option) Middleware {
	o := options{rate: 50, burst: 100}
	for _, opt := range opts {
		opt(&o)
	}

	rateLimit := newRateLimiter(o.rate, o.burst)
	logging := newLoggingMiddleware(logger)
	requestID := newRequestIDMiddleware(utils.New())

	return &middleware{
		rateLimitter:        rateLimit,
		loggingMiddleware:   logging,
		requestIDMiddleware: requestID,
		log:                 logger,
	}
}

func (m *middleware) NewRequestIDMiddleware() fiber.Handler {
	return m.requestIDMiddleware
}
