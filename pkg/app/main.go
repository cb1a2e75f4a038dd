package app

import (
	"github.com/ghuser/menuboard/pkg/cache"
	"github.com/ghuser/menuboard/pkg/config"
	"github.com/ghuser/menuboard/pkg/database"
	"github.com/ghuser/menuboard/pkg/events"
	"github.com/ghuser/menuboard/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass it to each service's Routes function during server initialization.
//
// Db, Redis and EventBus are nil when the configuration does not use them.
//
// Logging: app.Logger is backed by a trace-aware handler; use the context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "menu item created", "item_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config   *config.Config
	Db       *database.Database
	Logger   logger.Logger
	EventBus *events.EventBus
	Redis    *cache.RedisClient
}
