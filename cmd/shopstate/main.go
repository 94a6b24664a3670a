// Package main запускает HTTP-сервер сервиса состояния магазина.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mmeshcher/shopstate/internal/config"
	"github.com/mmeshcher/shopstate/internal/handler"
	"github.com/mmeshcher/shopstate/internal/model"
	"github.com/mmeshcher/shopstate/internal/repository"
	"github.com/mmeshcher/shopstate/internal/service"
	"github.com/mmeshcher/shopstate/internal/theme"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	sugar := logger.Sugar()

	cfg, err := config.Parse()
	if err != nil {
		sugar.Fatalw("configuration error", "error", err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, err := openRepository(ctx, cfg, logger)
	if err != nil {
		sugar.Fatalw("storage initialization error", "error", err.Error())
	}

	svc := service.NewService(repo, theme.NewBroadcaster(model.ColorSchemeLight), logger, cfg.WriteTimeout)
	if err := svc.Init(ctx); err != nil {
		sugar.Fatalw("state restore error", "error", err.Error())
	}

	h := handler.NewHandler(svc, logger)

	server := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: h.SetupRouter(),
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sugar.Infow("starting shopstate server", "addr", cfg.RunAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Завершение по сигналу: сначала HTTP-сервер, затем очередь записи и хранилище
	g.Go(func() error {
		<-ctx.Done()
		sugar.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		if err := svc.Close(shutdownCtx); err != nil {
			return fmt.Errorf("state close error: %w", err)
		}
		sugar.Info("server stopped gracefully")
		return nil
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalw("application terminated with error", "error", err)
	}
}

// openRepository выбирает хранилище: PostgreSQL, затем Redis, иначе память процесса.
func openRepository(ctx context.Context, cfg *config.Config, logger *zap.Logger) (service.Repository, error) {
	switch {
	case cfg.DatabaseURI != "":
		logger.Info("using postgres storage")
		return repository.NewPostgresKV(cfg.DatabaseURI)
	case cfg.RedisAddress != "":
		logger.Info("using redis storage", zap.String("addr", cfg.RedisAddress))
		repo := repository.NewRedisKV(cfg.RedisAddress, cfg.RedisPassword)
		if err := repo.Ping(ctx); err != nil {
			repo.Close()
			return nil, err
		}
		return repo, nil
	default:
		logger.Warn("no storage configured, state will not survive restart")
		return repository.NewMemoryKV(), nil
	}
}
