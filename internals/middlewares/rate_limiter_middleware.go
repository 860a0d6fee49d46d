package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "gradebook_backend/internals/helpers"
)

const (
	globalMaxPerMinute = 100
	loginMaxPerMinute  = 5
)

// newLimiter counts requests per client IP inside a fixed window. Keys are
// namespaced so the login bucket never shares a counter with the global one.
func newLimiter(bucket string, max int, window time.Duration, message string, skip func(*fiber.Ctx) bool) fiber.Handler {
	return limiter.New(limiter.Config{
		Next:       skip,
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return bucket + ":" + c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			c.Set(fiber.HeaderRetryAfter, "60")
			return helper.JsonError(c, fiber.StatusTooManyRequests, message)
		},
	})
}

// GlobalRateLimiter guards every route except the health probe.
func GlobalRateLimiter() fiber.Handler {
	return newLimiter("global", globalMaxPerMinute, time.Minute,
		"Too many requests, try again later",
		func(c *fiber.Ctx) bool { return c.Path() == "/health" },
	)
}

// LoginRateLimiter is the tighter bucket in front of POST /auth/login.
func LoginRateLimiter() fiber.Handler {
	return newLimiter("login", loginMaxPerMinute, time.Minute,
		"Too many login attempts, try again shortly", nil)
}
