package server

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// requestID assigns a UUID request id to every request, honoring one already
// supplied by the client, and echoes it back on the response.
func requestID() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	})
}

// requestLogger logs one line per request and stamps the response with the
// processing time.
func (s *Server) requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			elapsed := time.Since(start)

			c.Response().Header().Set("X-Process-Time", fmt.Sprintf("%.4f", elapsed.Seconds()))

			req := c.Request()
			s.logger.Info("request handled",
				"method", req.Method,
				"path", req.URL.Path,
				"status", c.Response().Status,
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
				"duration", elapsed,
			)
			return err
		}
	}
}

// rateLimiter throttles per client IP using a token bucket sized to allow
// calls requests per period.
func rateLimiter(calls int, period time.Duration) echo.MiddlewareFunc {
	limit := rate.Limit(float64(calls) / period.Seconds())
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      limit,
			Burst:     calls,
			ExpiresIn: period,
		}),
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			c.Response().Header().Set("Retry-After", strconv.Itoa(int(period.Seconds())))
			return c.JSON(http.StatusTooManyRequests, map[string]string{
				"error": "rate limit exceeded",
			})
		},
	})
}
