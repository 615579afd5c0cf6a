// Package server exposes the pool catalog over a read-only HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/AmandaBirmingham/syndna/internal/pool"
	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

// reloadDebounce coalesces editor write bursts into one reload.
const reloadDebounce = 100 * time.Millisecond

// Config holds configuration for the API server.
type Config struct {
	// Handle serves the catalog; reloads swap it atomically.
	Handle *pool.Handle

	Addr string

	// PoolsPath is the source document, required when Watch is set.
	PoolsPath string

	Watch  bool
	Logger *slog.Logger

	// Registry receives the server metrics. Nil means a private registry.
	Registry *prometheus.Registry
}

// Server is the read-only pool catalog API server.
type Server struct {
	handle    *pool.Handle
	addr      string
	poolsPath string
	watch     bool
	logger    *slog.Logger
	registry  *prometheus.Registry
	metrics   *Metrics
}

// New creates a new API server instance.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	s := &Server{
		handle:    cfg.Handle,
		addr:      cfg.Addr,
		poolsPath: cfg.PoolsPath,
		watch:     cfg.Watch,
		logger:    logger,
		registry:  registry,
		metrics:   NewMetrics(registry),
	}
	s.metrics.pools.Set(float64(s.handle.Current().Len()))
	return s
}

// Serve starts the server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("starting pool API server", "addr", s.addr, "pools", s.handle.Current().Len())

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.Routes(),
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.watch {
		eg.Go(func() error {
			return s.watchDocument(egctx)
		})
	}

	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down pool API server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// Routes builds the chi router. Exposed for handler tests.
func (s *Server) Routes() http.Handler {
	r := chi.NewMux()
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
	)

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	r.Route("/v1", func(r chi.Router) {
		r.Get("/pools", s.handleListPools)
		r.Get("/pools/{poolID}", s.handleGetPool)
	})
	return r
}

// watchDocument reloads the source document when it changes. A reload that
// fails validation keeps the previous catalog in place.
func (s *Server) watchDocument(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(s.poolsPath); err != nil {
		return fmt.Errorf("failed to watch %s: %w", s.poolsPath, err)
	}

	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			return nil

		case event := <-watcher.Events:
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(reloadDebounce, func() {
				s.reload()
			})

		case err := <-watcher.Errors:
			s.logger.Error("watcher error", "error", err)
		}
	}
}

func (s *Server) reload() {
	if err := s.handle.ReloadFile(s.poolsPath); err != nil {
		s.metrics.reloads.WithLabelValues("error").Inc()
		s.logger.Error("reload rejected, keeping previous catalog", "path", s.poolsPath, "error", err)
		return
	}
	store := s.handle.Current()
	s.metrics.reloads.WithLabelValues("ok").Inc()
	s.metrics.pools.Set(float64(store.Len()))
	s.logger.Info("pool document reloaded", "path", s.poolsPath, "pools", store.Len())
}
