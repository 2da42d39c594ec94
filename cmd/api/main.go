package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	_ "modernc.org/sqlite"

	"dashboard-analytics-service/internal/config"
	dashboardHttp "dashboard-analytics-service/internal/dashboard/adapters/http/fiber"
	dashboardUsecase "dashboard-analytics-service/internal/dashboard/core/usecase"
	"dashboard-analytics-service/internal/logging"
	"dashboard-analytics-service/internal/telemetry"
	seriesHttp "dashboard-analytics-service/internal/timeseries/adapters/http/fiber"
	"dashboard-analytics-service/internal/timeseries/adapters/sqlstore"
	"dashboard-analytics-service/internal/timeseries/core/domain"
	"dashboard-analytics-service/internal/timeseries/core/filter"
	"dashboard-analytics-service/internal/timeseries/core/ports"
	seriesUsecase "dashboard-analytics-service/internal/timeseries/core/usecase"

	_ "dashboard-analytics-service/docs"
)

// @title Dashboard Analytics API
// @version 1.0
// @description Time-series and summary endpoints for the recruitment dashboard.
// @BasePath /
func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		// logger is not configured yet
		bootstrap := logging.New(config.LoggingConfig{Level: "info"})
		bootstrap.Fatal().Err(err).Msg("failed to load config")
	}

	log := logging.New(cfg.Logging)
	loc := cfg.Location()

	// DB connection
	db, err := sql.Open(cfg.Store.Driver, cfg.Store.DSN)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("failed to open record store")
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Store.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Store.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Store.ConnMaxLifetime)

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := db.PingContext(pingCtx); err != nil {
		cancelPing()
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("failed to ping record store")
	}
	cancelPing()

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := telemetry.New(reg)

	// Repository
	recordStore := sqlstore.NewRepository(
		sqlstore.NewSQLDB(db, sqlstore.WithSlowQueryLog(log, cfg.Store.SlowQuery)),
		sqlstore.Dialect(cfg.Store.Driver),
		log,
		metrics,
	)

	// Collections
	candidates := ports.Collection{
		Name:           "candidates",
		Table:          cfg.Collections.Candidates.Table,
		TimestampField: cfg.Collections.Candidates.TimestampField,
		Attributes:     filter.CandidateAttributes,
	}
	transactions := ports.Collection{
		Name:           "transactions",
		Table:          cfg.Collections.Transactions.Table,
		TimestampField: cfg.Collections.Transactions.TimestampField,
	}
	recruiters := ports.Collection{
		Name:           "recruiters",
		Table:          cfg.Collections.Recruiters.Table,
		TimestampField: cfg.Collections.Recruiters.TimestampField,
	}

	bids := ports.Collection{
		Name:           "bids",
		Table:          cfg.Collections.Bids.Table,
		TimestampField: cfg.Collections.Bids.TimestampField,
		Attributes:     filter.BidAttributes,
	}

	// Usecases
	now := func() time.Time { return time.Now().In(loc) }
	candidateSeriesUC := seriesUsecase.NewGetSeriesUseCase(recordStore, candidates, now, log)
	transactionSeriesUC := seriesUsecase.NewGetSeriesUseCase(recordStore, transactions, now, log)
	summaryUC := dashboardUsecase.NewSummaryUseCase(recordStore, dashboardUsecase.Collections{
		Candidates: candidates,
		Recruiters: recruiters,
		Bids:       bids,
	}, now, log)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{
		AppName:      "dashboard-analytics",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logging.RequestLogger(log))
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.Server.CORSOrigins}))
	app.Use(metrics.Middleware())

	// time series endpoints
	defaultRange := domain.TimeRange(cfg.TimeSeries.DefaultRange)
	candidateSeries := seriesHttp.NewSeriesHandler(candidateSeriesUC, seriesHttp.SeriesConfig{
		Entity:        "candidates",
		ParseFilters:  seriesHttp.ParseCandidateFilter,
		DefaultRange:  defaultRange,
		MaxHourlySpan: time.Duration(cfg.TimeSeries.MaxHourlyDays) * 24 * time.Hour,
		Observer:      metrics,
		Logger:        log,
	})
	transactionSeries := seriesHttp.NewSeriesHandler(transactionSeriesUC, seriesHttp.SeriesConfig{
		Entity:        "transactions",
		ParseFilters:  seriesHttp.ParseTransactionFilter,
		DefaultRange:  defaultRange,
		MaxHourlySpan: time.Duration(cfg.TimeSeries.MaxHourlyDays) * 24 * time.Hour,
		Observer:      metrics,
		Logger:        log,
	})
	app.Get("/candidates/time-series", candidateSeries.GetSeries)
	app.Get("/transactions/time-series", transactionSeries.GetSeries)

	// dashboard summary endpoints
	dashboardHandler := dashboardHttp.NewDashboardHandler(summaryUC, log)
	app.Get("/candidates/filter-options", dashboardHandler.GetFilterOptions)
	app.Get("/candidates/price-summary", dashboardHandler.GetPriceSummary)
	app.Get("/candidates/average-profile-aging", dashboardHandler.GetProfileAging)
	app.Get("/counts", dashboardHandler.GetCounts)
	app.Get("/bids/metrics", dashboardHandler.GetBidMetrics)

	// Prometheus
	app.Get("/internal/metrics", telemetry.Handler(reg))

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.Server.Addr); err != nil {
			log.Error().Err(err).Msg("fiber stopped")
		}
	}()

	log.Info().
		Str("addr", cfg.Server.Addr).
		Str("store", cfg.Store.Driver).
		Str("location", loc.String()).
		Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("fiber shutdown error")
	}

	log.Info().Msg("server exiting")
}
