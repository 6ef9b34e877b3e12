// Package genie provides the query/formula generator page.
package genie

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
)

// SetupRoutes configures routes for the generator feature.
func SetupRoutes(
	router chi.Router,
	sessionStore sessions.Store,
	settings Settings,
	logger *slog.Logger,
	isDev bool,
) error {
	handlers := NewHandlers(sessionStore, settings, logger, isDev)

	router.Get("/", handlers.GeniePage)
	router.Post("/genie", handlers.GenerateForm)
	router.Post("/genie/generate", handlers.GenerateSSE)
	router.Post("/genie/copy", handlers.CopySSE)

	return nil
}
