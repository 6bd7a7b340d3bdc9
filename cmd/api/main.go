package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "fincalc/internal/adapter/http"
	mw "fincalc/internal/adapter/middleware"
	"fincalc/internal/config"
	"fincalc/internal/infrastructure/cache"
	"fincalc/internal/infrastructure/chart"
	"fincalc/internal/usecase/investment"
	"fincalc/internal/usecase/loan"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	renderer := chart.NewRenderer(cfg.ChartWidth, cfg.ChartHeight)
	routes := httpadp.Routes(
		httpadp.NewHandler(),
		httpadp.NewLoanHandler(loan.NewUsecase(renderer)),
		httpadp.NewInvestHandler(investment.NewUsecase(renderer)),
	)

	var limit echo.MiddlewareFunc
	if cfg.RateLimited() {
		rdb, err := cache.OpenRedis(cache.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB})
		if err != nil {
			log.Fatalf("redis %s: %v", cfg.RedisAddr, err)
		}
		defer rdb.Close()
		limit = mw.RateLimit(rdb, cfg.RateLimitPerMinute, time.Minute)
		log.Printf("rate limit: %d req/min per client via %s", cfg.RateLimitPerMinute, cfg.RedisAddr)
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(mw.RequestID(), middleware.Logger(), middleware.Recover())

	httpadp.Register(e, routes, limit)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
