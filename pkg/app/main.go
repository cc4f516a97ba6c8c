package app

import (
	"github.com/gorilla/sessions"

	"github.com/ghuser/ordersvc/pkg/cache"
	"github.com/ghuser/ordersvc/pkg/config"
	"github.com/ghuser/ordersvc/pkg/database"
	"github.com/ghuser/ordersvc/pkg/events"
	"github.com/ghuser/ordersvc/pkg/logger"
	"github.com/ghuser/ordersvc/pkg/mailer"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to every bounded context's route function during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler. Use slog's context
// methods and trace_id, span_id and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "order processed", "order_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config       *config.Config
	Db           *database.Database
	Logger       logger.Logger
	EventBus     *events.EventBus
	Redis        *cache.RedisClient // nil disables the order read model
	Mailer       mailer.Sender
	SessionStore sessions.Store // nil in the worker process
}
