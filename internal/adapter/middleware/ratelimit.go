package middleware

import (
	"context"
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// How long a single counter round-trip may take before the request fails.
const storeTimeout = 2 * time.Second

// RateLimit allows at most limit requests per client IP and route in each
// fixed window. Counters live in Redis so every instance shares them.
// Safe methods are never counted.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			switch req.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				return next(c)
			}

			now := nowUTC()
			start := windowStart(now, window)
			key := buildKey(req.Method, c.Path(), c.RealIP(), start)

			ctx, cancel := context.WithTimeout(req.Context(), storeTimeout)
			defer cancel()

			count, err := hit(ctx, rdb, key, window)
			if err != nil {
				log.Printf("rate limit store unavailable for %s: %v", key, err)
				return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "rate limit store unavailable"})
			}

			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(limit))
			h.Set("X-RateLimit-Remaining", strconv.FormatInt(max(int64(limit)-count, 0), 10))

			if count > int64(limit) {
				retry := start.Add(window).Sub(now)
				h.Set("Retry-After", strconv.Itoa(int(math.Ceil(retry.Seconds()))))
				return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "too many requests"})
			}
			return next(c)
		}
	}
}
