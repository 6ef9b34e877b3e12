// Package router sets up HTTP routes for the UI server.
package router

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	genieFeature "github.com/leapstack-labs/querygenie/internal/ui/features/genie"
	"github.com/leapstack-labs/querygenie/internal/ui/notifier"
	"github.com/leapstack-labs/querygenie/internal/ui/resources"
	"github.com/starfederation/datastar-go/datastar"
)

// SetupRoutes configures all routes for the UI server.
func SetupRoutes(
	router chi.Router,
	sessionStore sessions.Store,
	notify *notifier.Notifier,
	settings genieFeature.Settings,
	logger *slog.Logger,
	isDev bool,
) error {
	// Hot reload endpoint for dev mode
	if isDev {
		setupReload(router, notify)
	}

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	// Static assets
	router.Handle(resources.StaticPrefix+"*", resources.Handler())

	// Feature routes
	if err := genieFeature.SetupRoutes(router, sessionStore, settings, logger, isDev); err != nil {
		return err
	}

	return nil
}

// setupReload wires the browser reload stream. The first connection after
// the server starts reloads immediately so a restarted binary is picked up;
// later reloads follow notifier events.
func setupReload(router chi.Router, notify *notifier.Notifier) {
	var hotReloadOnce sync.Once

	router.Get("/reload", func(w http.ResponseWriter, r *http.Request) {
		sse := datastar.NewSSE(w, r)
		reload := func() { _ = sse.ExecuteScript("window.location.reload()") }
		hotReloadOnce.Do(reload)

		events := notify.Subscribe()
		defer notify.Unsubscribe(events)

		select {
		case <-events:
			reload()
		case <-r.Context().Done():
		}
	})

	// External build tools hit this after rebuilding assets.
	router.Get("/hotreload", func(w http.ResponseWriter, _ *http.Request) {
		notify.Broadcast(notifier.Event{})
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
}
