package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/pedidos-fdv/pedidos-fdv/internal/app"
	"github.com/pedidos-fdv/pedidos-fdv/internal/erp"
	"github.com/pedidos-fdv/pedidos-fdv/internal/observability"
	"github.com/pedidos-fdv/pedidos-fdv/internal/orders"
	"github.com/pedidos-fdv/pedidos-fdv/internal/platform/cache"
	"github.com/pedidos-fdv/pedidos-fdv/internal/platform/db"
	"github.com/pedidos-fdv/pedidos-fdv/internal/shared"
	"github.com/pedidos-fdv/pedidos-fdv/internal/summary"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	sessionManager := shared.NewSessionManager(redisClient, "fdv_session", cfg.SessionSecret, cfg.SessionTTL, cfg.IsProduction())
	syncKey := shared.NewSyncKeyVerifier(cfg.SyncAPIKeyHash)

	ordersRepo := orders.NewRepository(pool)
	ordersService := orders.NewService(ordersRepo, logger)
	ordersHandler := orders.NewHandler(logger, ordersService, syncKey)

	summaryCache := summary.NewCache(redisClient, cfg.SummaryCacheTTL)
	summaryService := summary.NewService(summary.NewRepository(pool), summaryCache, logger)
	summaryHandler := summary.NewHandler(logger, summaryService)

	sankhya := erp.NewClient(cfg.SankhyaBaseURL, cfg.SankhyaToken)
	if err := sankhya.Ping(ctx); err != nil {
		logger.Warn("sankhya gateway unreachable", slog.Any("error", err))
	}

	metrics := observability.NewMetrics()

	router := app.NewRouter(app.RouterParams{
		Logger:         logger,
		Config:         cfg,
		SessionManager: sessionManager,
		OrdersHandler:  ordersHandler,
		SummaryHandler: summaryHandler,
		Metrics:        metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
