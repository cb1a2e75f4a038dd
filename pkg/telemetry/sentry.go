package telemetry

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/ghuser/menuboard/pkg/config"
)

// Sentry tags stamped on every event so failures can be split by the storage
// and event transport the process was running with.
const (
	TagMenuBackend   = "menu_backend"
	TagEventsBackend = "events_backend"
	TagErrorKind     = "error_kind"
)

// SetupSentry initializes the Sentry SDK. No-ops if DSN is empty.
func SetupSentry(cfg *config.Config) error {
	if cfg.SentryDSN == "" {
		return nil
	}
	if err := sentry.Init(sentryOptions(cfg)); err != nil {
		return fmt.Errorf("sentry init: %w", err)
	}
	return nil
}

func sentryOptions(cfg *config.Config) sentry.ClientOptions {
	return sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.Environment,
		Release:          cfg.ServiceName + "@" + cfg.ServiceVersion,
		ServerName:       cfg.ServiceName,
		AttachStacktrace: true,
		TracesSampleRate: 0.2,
		Tags: map[string]string{
			TagMenuBackend:   cfg.MenuBackend,
			TagEventsBackend: cfg.EventsBackend,
		},
	}
}

// SentryFlush flushes buffered events before process exit.
func SentryFlush() {
	sentry.Flush(2 * time.Second)
}

// SentryMiddleware returns a net/http middleware that clones a hub per request
// and captures panics. Repanic: true so the outer Recovery middleware still
// writes the 500 response.
func SentryMiddleware() func(http.Handler) http.Handler {
	h := sentryhttp.New(sentryhttp.Options{Repanic: true})
	return h.Handle
}

// CaptureError reports err on the request's hub, falling back to the global
// hub outside a request. kind is recorded as the error_kind tag. Without a
// configured client the call does nothing and returns nil.
func CaptureError(ctx context.Context, err error, kind string) *sentry.EventID {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	if hub.Client() == nil {
		return nil
	}
	var id *sentry.EventID
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag(TagErrorKind, kind)
		id = hub.CaptureException(err)
	})
	return id
}
