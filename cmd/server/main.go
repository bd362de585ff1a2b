package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"student-wellness-api/internal/config"
	"student-wellness-api/internal/handler"
	"student-wellness-api/internal/middleware"
	"student-wellness-api/internal/store"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		logger.Error("JWT_SECRET is required")
		os.Exit(1)
	}

	// database
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("db", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()
	if err := pool.Ping(context.Background()); err != nil {
		logger.Error("db ping", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("connected to postgres")

	if err := store.Migrate(context.Background(), pool); err != nil {
		logger.Error("migrate", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("schema up to date")

	st := store.New(pool)
	h := handler.New(st, cfg.JWTSecret, logger)
	rl := middleware.NewRateLimiter(float64(cfg.RateLimitRPS), cfg.RateLimitBurst)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h.Routes(rl, strings.Split(cfg.CORSOrigins, ",")),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http listening", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http", slog.String("error", err.Error()))
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", slog.String("error", err.Error()))
	}
}
