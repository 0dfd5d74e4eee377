package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/co2-watch/site/config"
)

// RateLimiter is the global rate limiter middleware. It reads the limits
// when called, after configuration has been loaded.
func RateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        config.ServerRateLimitMax,
		Expiration: config.ServerRateLimitExp,
	})
}

// AdminRateLimiter caps admin requests per IP to slow password guessing.
var AdminRateLimiter = limiter.New(limiter.Config{
	Max:        20,
	Expiration: config.ServerRateLimitExp,
	KeyGenerator: func(c *fiber.Ctx) string {
		return c.IP()
	},
	LimitReached: func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusTooManyRequests).
			SendString("Too many admin requests. " +
				"Please try again later.")
	},
})
