package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/gallery-shop/internal/config"
	"github.com/nikolayk812/gallery-shop/internal/domain"
	"github.com/nikolayk812/gallery-shop/internal/event"
	"github.com/nikolayk812/gallery-shop/internal/httpapi"
	"github.com/nikolayk812/gallery-shop/internal/port"
	"github.com/nikolayk812/gallery-shop/internal/repository"
	"github.com/nikolayk812/gallery-shop/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load("./config", ".")
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	unit, err := cfg.CurrencyUnit()
	if err != nil {
		return err
	}
	shippingCost, err := cfg.ShippingCost()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("pgxpool.New: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("pool.Ping: %w", err)
	}

	events, closeEvents, err := newPublisher(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeEvents(); err != nil {
			logger.Error("closing event publisher", "error", err)
		}
	}()

	carts := repository.NewCart(pool)
	products := repository.NewProduct(pool)
	orders := repository.NewOrder(pool)
	settings := service.NewSettings(repository.NewSetting(pool))
	shipping := service.NewSettingShipping(settings, domain.NewFlatShipping(shippingCost, unit))

	app := httpapi.New(httpapi.Services{
		Checkout: service.NewCheckout(carts, orders, shipping, events, logger),
		Cart:     service.NewCart(carts, products, unit),
		Catalog:  service.NewCatalog(products, unit),
		Orders:   service.NewOrders(orders, logger),
		Settings: settings,
	}, httpapi.Options{
		AdminAPIKey:   cfg.Admin.APIKey,
		SecureCookies: cfg.HTTP.SecureCookies,
		Logger:        logger,
	})

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", cfg.HTTP.Addr)
		errCh <- app.Listen(cfg.HTTP.Addr)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("app.Listen: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("app.ShutdownWithContext: %w", err)
	}

	return nil
}

func newPublisher(cfg *config.Config, logger *slog.Logger) (port.OrderEventPublisher, func() error, error) {
	if len(cfg.Kafka.Brokers) == 0 {
		logger.Info("kafka brokers not configured, order events are disabled")
		return event.NewNop(), func() error { return nil }, nil
	}

	publisher, closeFn, err := event.NewKafka(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("event.NewKafka: %w", err)
	}

	return publisher, closeFn, nil
}
