package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/ordersvc/pkg/app"
	"github.com/ghuser/ordersvc/pkg/cache"
	"github.com/ghuser/ordersvc/pkg/config"
	"github.com/ghuser/ordersvc/pkg/database"
	"github.com/ghuser/ordersvc/pkg/events"
	"github.com/ghuser/ordersvc/pkg/logger"
	"github.com/ghuser/ordersvc/pkg/telemetry"
	orderservices "github.com/ghuser/ordersvc/services/order/application/services"
	orderEvents "github.com/ghuser/ordersvc/services/order/domain/events"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("worker exited with error", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	log.Info("worker stopped")
}

// run wires the worker's dependencies and blocks until ctx is cancelled.
// Deferred Close calls run in reverse order; EventBus.Close waits up to 30s
// for in-flight handlers.
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		return fmt.Errorf("setup otel: %w", err)
	}
	defer otelShutdown(context.WithoutCancel(ctx)) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close() //nolint:errcheck

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		return fmt.Errorf("setup event bus: %w", err)
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer redisClient.Close() //nolint:errcheck

	a := &app.Application{
		Config:   cfg,
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	if err := registerSubscribers(ctx, a); err != nil {
		return fmt.Errorf("register subscribers: %w", err)
	}

	<-ctx.Done()
	log.Info("shutting down worker...")
	return nil
}

// orderWarmer refreshes the cached read model of one order.
// *orderservices.OrderService implements it.
type orderWarmer interface {
	Warm(ctx context.Context, id int64) error
}

type subscription struct {
	topic   string
	handler events.Handler
}

func subscriptions(a *app.Application) []subscription {
	orders := orderservices.New(a).Order
	return []subscription{
		{topic: orderEvents.TopicOrderPlaced, handler: handleOrderPlaced(orders, a.Logger)},
	}
}

// registerSubscribers subscribes every handler and drains its error channel
// in the background.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	subs := subscriptions(a)
	topics := make([]string, 0, len(subs))
	for _, sub := range subs {
		errCh, err := a.EventBus.Subscribe(ctx, sub.topic, sub.handler)
		if err != nil {
			return err
		}
		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}(sub.topic)
		topics = append(topics, sub.topic)
	}

	a.Logger.Info("event subscribers registered", "topics", topics)
	return nil
}

// handleOrderPlaced caches the order named by the event so GET /pedidos/{id}
// is served from Redis. The order is read from Postgres rather than taken from
// the payload: events arrive late, and an order deleted or changed since then
// must not be cached.
func handleOrderPlaced(orders orderWarmer, log logger.Logger) events.Handler {
	return func(ctx context.Context, msg *message.Message) error {
		var evt orderEvents.OrderPlacedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := orders.Warm(ctx, evt.OrderID); err != nil {
			// Best-effort: the API warms the entry again on the next read.
			log.WarnContext(ctx, "cache warm failed for order.placed",
				"order_id", evt.OrderID, "error", err)
			return nil
		}

		log.InfoContext(ctx, "cache warmed",
			"order_id", evt.OrderID, "customer_id", evt.CustomerID, "event_id", evt.EventID)
		return nil
	}
}
