package http

import (
	"encoding/base64"
	"encoding/json"
	"image/png"
	stdhttp "net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"fincalc/internal/adapter/middleware"
	"fincalc/internal/infrastructure/chart"
	"fincalc/internal/usecase/investment"
	"fincalc/internal/usecase/loan"
)

func newServer(limit echo.MiddlewareFunc) *echo.Echo {
	r := chart.NewRenderer(320, 240)
	e := newEchoWithValidator()
	Register(e, Routes(
		NewHandler(),
		NewLoanHandler(loan.NewUsecase(r)),
		NewInvestHandler(investment.NewUsecase(r)),
	), limit)
	return e
}

func post(e *echo.Echo, path string, v url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(stdhttp.MethodPost, path, strings.NewReader(v.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func assertPNG(t *testing.T, b64 string) {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		t.Fatalf("chart is not base64: %v", err)
	}
	if _, err := png.Decode(strings.NewReader(string(raw))); err != nil {
		t.Fatalf("chart is not a png: %v", err)
	}
}

func TestRoutes_Table(t *testing.T) {
	routes := Routes(NewHandler(), NewLoanHandler(nil), NewInvestHandler(nil))
	limited := map[string]bool{}
	for _, r := range routes {
		if r.Handler == nil {
			t.Fatalf("%s %s has no handler", r.Method, r.Path)
		}
		if r.Limited {
			limited[r.Method+" "+r.Path] = true
		}
	}
	if len(limited) != 2 || !limited["POST /loan"] || !limited["POST /invest"] {
		t.Fatalf("limited routes = %v", limited)
	}
}

func TestServer_LoanEndToEnd(t *testing.T) {
	e := newServer(nil)

	rec := post(e, "/loan", loanForm())
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d; body=%s", rec.Code, rec.Body.String())
	}
	var got loan.LoanDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	assertPNG(t, got.Chart)
	if !strings.HasPrefix(got.ChartSrc, "data:image/png;base64,") {
		t.Fatalf("chart_src = %.40s", got.ChartSrc)
	}

	// same input, same image
	var again loan.LoanDTO
	_ = json.Unmarshal(post(e, "/loan", loanForm()).Body.Bytes(), &again)
	if again.Chart != got.Chart {
		t.Fatal("loan chart differs between identical requests")
	}
}

func TestServer_InvestEndToEnd(t *testing.T) {
	e := newServer(nil)

	v := url.Values{"initialDeposit": {"2500"}, "monthlyDeposit": {"150"}, "interestRate": {"7"}, "years": {"30"}}
	rec := post(e, "/invest", v)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d; body=%s", rec.Code, rec.Body.String())
	}
	var got investment.InvestDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.Total != "189,060.05" || len(got.ReturnsEachYear) != 30 {
		t.Fatalf("unexpected dto: total=%s years=%d", got.Total, len(got.ReturnsEachYear))
	}
	assertPNG(t, got.Chart)
}

func TestServer_FormRoutes(t *testing.T) {
	e := newServer(nil)
	for _, path := range []string{"/", "/loan", "/invest", "/health"} {
		req := httptest.NewRequest(stdhttp.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != stdhttp.StatusOK {
			t.Fatalf("GET %s = %d", path, rec.Code)
		}
	}
}

func TestServer_RateLimitedRoutes(t *testing.T) {
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	e := newServer(middleware.RateLimit(rdb, 1, time.Minute))

	if rec := post(e, "/loan", loanForm()); rec.Code != stdhttp.StatusOK {
		t.Fatalf("first POST /loan = %d", rec.Code)
	}
	if rec := post(e, "/loan", loanForm()); rec.Code != stdhttp.StatusTooManyRequests {
		t.Fatalf("second POST /loan = %d, want 429", rec.Code)
	}
	// GET routes are not wrapped
	req := httptest.NewRequest(stdhttp.MethodGet, "/loan", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("GET /loan = %d", rec.Code)
	}
}
