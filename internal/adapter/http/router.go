package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Route is one entry of the routing table. Limited routes run behind the
// rate limiter when one is configured.
type Route struct {
	Method  string
	Path    string
	Handler echo.HandlerFunc
	Limited bool
}

func Routes(h *Handler, loans *LoanHandler, invest *InvestHandler) []Route {
	return []Route{
		{Method: http.MethodGet, Path: "/health", Handler: h.Health},
		{Method: http.MethodGet, Path: "/", Handler: h.Index},
		{Method: http.MethodGet, Path: "/loan", Handler: loans.Form},
		{Method: http.MethodPost, Path: "/loan", Handler: loans.Calculate, Limited: true},
		{Method: http.MethodGet, Path: "/invest", Handler: invest.Form},
		{Method: http.MethodPost, Path: "/invest", Handler: invest.Calculate, Limited: true},
	}
}

// Register adds routes to e. limit may be nil.
func Register(e *echo.Echo, routes []Route, limit echo.MiddlewareFunc) {
	for _, r := range routes {
		var mw []echo.MiddlewareFunc
		if r.Limited && limit != nil {
			mw = append(mw, limit)
		}
		e.Add(r.Method, r.Path, r.Handler, mw...)
	}
}
