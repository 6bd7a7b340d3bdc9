package middleware

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"fincalc/pkg/id"
)

// RequestID tags every request with a 32-hex id. A well-formed incoming
// X-Request-Id is kept; anything else is replaced.
func RequestID() echo.MiddlewareFunc {
	rid := echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: id.NewID32})
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		h := rid(next)
		return func(c echo.Context) error {
			req := c.Request()
			if v := req.Header.Get(echo.HeaderXRequestID); v != "" && !id.Valid32(v) {
				req.Header.Del(echo.HeaderXRequestID)
			}
			return h(c)
		}
	}
}
