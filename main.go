package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nikolayk812/jewelshop/internal/config"
	"github.com/nikolayk812/jewelshop/internal/httpapi"
	"github.com/nikolayk812/jewelshop/internal/logger"
	"github.com/nikolayk812/jewelshop/internal/repository"
	"github.com/nikolayk812/jewelshop/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config.Load: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

func run(ctx context.Context, cfg config.Config, log *logrus.Logger) error {
	pool, err := repository.Connect(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		return fmt.Errorf("repository.Connect: %w", err)
	}
	defer pool.Close()

	if cfg.AutoMigrate {
		if err := repository.Migrate(ctx, pool); err != nil {
			return fmt.Errorf("repository.Migrate: %w", err)
		}
		log.Info("database schema applied")
	}

	tokens, err := service.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiry)
	if err != nil {
		return fmt.Errorf("service.NewTokenIssuer: %w", err)
	}

	cur := cfg.StoreCurrency()
	txm := repository.NewTxManager(pool)
	products := repository.NewProduct(pool)

	handler := httpapi.NewHandler(httpapi.Services{
		Auth:    service.NewAuthService(repository.NewUser(pool), tokens, log),
		Catalog: service.NewCatalogService(products, cur, log),
		Carts:   service.NewCartService(repository.NewCart(pool), products, txm, cur, log),
		Orders:  service.NewOrderService(repository.NewOrder(pool), txm, cur, log),
		DB:      pool,
	}, log)

	gin.SetMode(cfg.GinMode)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: httpapi.NewRouter(handler, cfg.CORSOrigins),
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.HTTPAddr).Info("http server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("srv.ListenAndServe: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("srv.Shutdown: %w", err)
	}

	return nil
}
