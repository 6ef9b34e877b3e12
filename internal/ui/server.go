// Package ui provides the web front-end for Query Genie.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	genieFeature "github.com/leapstack-labs/querygenie/internal/ui/features/genie"
	"github.com/leapstack-labs/querygenie/internal/ui/notifier"
	"github.com/leapstack-labs/querygenie/internal/ui/resources"
	"github.com/leapstack-labs/querygenie/internal/ui/router"
	"golang.org/x/sync/errgroup"
)

// DefaultPort is the port the UI listens on when none is configured.
const DefaultPort = 8765

// Server is the main UI server.
type Server struct {
	sessionStore *sessions.CookieStore
	settings     genieFeature.Settings
	port         int
	watch        bool
	dev          bool
	watchDir     string
	logger       *slog.Logger
	notifier     *notifier.Notifier

	// listening is closed once the listener is bound.
	listening chan struct{}
	addr      net.Addr
}

// Config holds configuration for the UI server.
type Config struct {
	Port          int
	Watch         bool
	Dev           bool
	SessionSecret string
	Logger        *slog.Logger
	Settings      genieFeature.Settings
	// WatchDir overrides the directory watched for asset changes.
	WatchDir string
}

// NewServer creates a new UI server instance.
func NewServer(cfg Config) *Server {
	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	sessionStore.MaxAge(86400 * 30) // 30 days
	sessionStore.Options.Path = "/"
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	watchDir := cfg.WatchDir
	if watchDir == "" {
		watchDir = resources.Dir()
	}

	return &Server{
		sessionStore: sessionStore,
		settings:     cfg.Settings,
		port:         cfg.Port,
		watch:        cfg.Watch,
		dev:          cfg.Dev,
		watchDir:     watchDir,
		logger:       logger,
		notifier:     notifier.New(),
		listening:    make(chan struct{}),
	}
}

// Handler builds the HTTP handler with middleware and all routes.
func (s *Server) Handler() (http.Handler, error) {
	r := chi.NewMux()
	r.Use(
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
	)

	if err := router.SetupRoutes(r, s.sessionStore, s.notifier, s.settings, s.logger, s.IsDev()); err != nil {
		return nil, fmt.Errorf("failed to setup routes: %w", err)
	}
	return r, nil
}

// Serve starts the UI server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	handler, err := s.Handler()
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", s.port, err)
	}
	s.addr = ln.Addr()
	close(s.listening)

	s.logger.Info("starting UI server", "addr", s.URL())

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Handler: handler,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start file watcher if enabled
	if s.watch && s.watchDir != "" {
		eg.Go(func() error {
			return s.watchFiles(egctx)
		})
	}

	// Start HTTP server
	eg.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down UI server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// Listening returns a channel closed once the server accepts connections.
func (s *Server) Listening() <-chan struct{} {
	return s.listening
}

// URL returns the base URL of the running server.
func (s *Server) URL() string {
	port := s.port
	if tcp, ok := s.addr.(*net.TCPAddr); ok {
		port = tcp.Port
	}
	return fmt.Sprintf("http://localhost:%d", port)
}

// IsDev returns true if running in development mode.
func (s *Server) IsDev() bool {
	return s.dev
}

// Notifier returns the server's notifier for reload events.
func (s *Server) Notifier() *notifier.Notifier {
	return s.notifier
}

// watchFiles watches static assets and tells connected browsers to reload.
func (s *Server) watchFiles(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	if err := watchDirRecursive(watcher, s.watchDir); err != nil {
		s.logger.Error("failed to watch asset directory", "dir", s.watchDir, "error", err)
	}

	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !watchedExt(event.Name) {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			name := event.Name
			debounceTimer = time.AfterFunc(100*time.Millisecond, func() {
				s.logger.Debug("asset changed, reloading clients", "file", name)
				s.notifier.Broadcast(notifier.Event{Path: name})
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Error("watcher error", "error", err)
		}
	}
}

func watchedExt(name string) bool {
	switch filepath.Ext(name) {
	case ".css", ".js", ".html", ".svg":
		return true
	}
	return false
}

// watchDirRecursive adds a directory and all subdirectories to the watcher.
func watchDirRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}
