package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"fincalc/pkg/id"
)

func serveWithRequestID(incoming string) string {
	e := echo.New()
	e.Use(RequestID())
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incoming != "" {
		req.Header.Set(echo.HeaderXRequestID, incoming)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec.Header().Get(echo.HeaderXRequestID)
}

func TestRequestID_Generated(t *testing.T) {
	if got := serveWithRequestID(""); !id.Valid32(got) {
		t.Fatalf("generated id %q is not 32-hex", got)
	}
}

func TestRequestID_KeepsValidIncoming(t *testing.T) {
	in := strings.Repeat("ab", 16)
	if got := serveWithRequestID(in); got != in {
		t.Fatalf("id = %q, want %q", got, in)
	}
}

func TestRequestID_ReplacesMalformedIncoming(t *testing.T) {
	got := serveWithRequestID("<script>")
	if got == "<script>" || !id.Valid32(got) {
		t.Fatalf("malformed id not replaced: %q", got)
	}
}
