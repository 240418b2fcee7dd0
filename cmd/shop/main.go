package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/shop-console-go/internal/cart"
	"github.com/andreasstove999/ecommerce-system/shop-console-go/internal/catalog"
	"github.com/andreasstove999/ecommerce-system/shop-console-go/internal/checkout"
	"github.com/andreasstove999/ecommerce-system/shop-console-go/internal/config"
	"github.com/andreasstove999/ecommerce-system/shop-console-go/internal/console"
	"github.com/andreasstove999/ecommerce-system/shop-console-go/internal/events"
	"github.com/andreasstove999/ecommerce-system/shop-console-go/internal/obs"
	"github.com/andreasstove999/ecommerce-system/shop-console-go/internal/orderlog"
)

type publisher interface {
	checkout.EventPublisher
	Close() error
}

func main() {
	cfg := config.Load()

	logger, err := obs.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	sessionID := uuid.NewString()
	logger = logger.With(zap.String("session_id", sessionID))

	cat := catalog.Seed()
	shoppingCart := cart.New()
	orders := orderlog.NewFileLog(cfg.OrdersFile)

	pub := newPublisher(cfg, sessionID, logger)
	defer func() {
		if err := pub.Close(); err != nil {
			logger.Warn("publisher close", zap.Error(err))
		}
	}()

	svc := checkout.NewService(cat, shoppingCart, orders, checkout.Options{
		Publisher: pub,
		Logger:    logger,
	})

	ctrl := console.NewController(console.Deps{
		Catalog:  cat,
		Cart:     shoppingCart,
		Checkout: svc,
		History:  orders,
		Logger:   logger,
	}, os.Stdin, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The controller blocks on stdin, so it runs apart from the signal wait.
	errCh := make(chan error, 1)
	go func() {
		errCh <- ctrl.Run(ctx)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		fmt.Fprintln(os.Stdout)
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("console stopped", zap.Error(err))
		}
	}
}

func newPublisher(cfg config.Config, sessionID string, logger *zap.Logger) publisher {
	if !cfg.PublishEvents {
		return events.NopPublisher{}
	}

	conn, err := events.Dial(cfg.RabbitMQURL)
	if err != nil {
		logger.Warn("event publishing disabled", zap.Error(err))
		return events.NopPublisher{}
	}

	p, err := events.NewRabbitPublisher(conn, events.NewSequencer(), events.PublisherOptions{
		Meta: events.EventMeta{
			CorrelationID: sessionID,
			PartitionKey:  sessionID,
		},
	})
	if err != nil {
		_ = conn.Close()
		logger.Warn("event publishing disabled", zap.Error(err))
		return events.NopPublisher{}
	}
	return &connPublisher{RabbitPublisher: p, closeConn: conn.Close}
}

// connPublisher also closes the broker connection it owns.
type connPublisher struct {
	*events.RabbitPublisher
	closeConn func() error
}

func (p *connPublisher) Close() error {
	return errors.Join(p.RabbitPublisher.Close(), p.closeConn())
}
