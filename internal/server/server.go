// Package server implements the circuitry HTTP API.
//
// The API exposes circuit analysis over REST:
//
//	POST /v1/analyses          Analyze a graph document
//	GET  /v1/analyses          List recent reports
//	GET  /v1/analyses/{id}     Fetch a stored report
//	GET  /v1/analyses/{id}/svg Rendered graph with circuits highlighted
//	GET  /healthz              Liveness probe
//
// Reports are persisted through the configured report store (in-memory or
// MongoDB) and analysis results are cached through the configured cache
// backend (none, file, or Redis). See [Config] for the TOML schema.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gregorio-gerardi/circuitry/pkg/cache"
	"github.com/gregorio-gerardi/circuitry/pkg/pipeline"
	"github.com/gregorio-gerardi/circuitry/pkg/report"
)

// Server ties the HTTP surface to the pipeline, store, and cache.
type Server struct {
	cfg    Config
	logger *log.Logger
	store  report.Store
	runner *pipeline.Runner
}

// New builds a server from configuration, connecting the configured store
// and cache backends. The context bounds backend connection attempts.
func New(ctx context.Context, cfg Config, logger *log.Logger) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}

	store, err := newStore(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}
	c, err := newCache(cfg.Cache)
	if err != nil {
		_ = store.Close(ctx)
		return nil, err
	}

	return NewWithBackends(cfg, logger, store, c), nil
}

// NewWithBackends builds a server around explicit backends. Used by New
// and by tests that inject in-memory implementations.
func NewWithBackends(cfg Config, logger *log.Logger, store report.Store, c cache.Cache) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		cfg:    cfg,
		logger: logger,
		store:  store,
		runner: pipeline.NewRunner(c, nil, logger),
	}
}

// newStore connects the configured report store.
func newStore(ctx context.Context, cfg StoreConfig) (report.Store, error) {
	switch cfg.Backend {
	case StoreMongo:
		return report.NewMongoStore(ctx, cfg.URI, cfg.Database)
	default:
		return report.NewMemoryStore(), nil
	}
}

// newCache connects the configured cache backend.
func newCache(cfg CacheConfig) (cache.Cache, error) {
	switch cfg.Backend {
	case CacheFile:
		dir := cfg.Dir
		if dir == "" {
			base, err := os.UserCacheDir()
			if err != nil {
				return nil, err
			}
			dir = filepath.Join(base, "circuitry")
		}
		return cache.NewFileCache(dir)
	case CacheRedis:
		return cache.NewRedisCache(cfg.URL)
	default:
		return cache.NewNullCache(), nil
	}
}

// Router assembles the chi router with the standard middleware stack.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(time.Duration(s.cfg.WriteTimeout)))
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1/analyses", func(r chi.Router) {
		r.Post("/", s.handleAnalyze)
		r.Get("/", s.handleList)
		r.Get("/{id}", s.handleGet)
		if s.cfg.Render {
			r.Get("/{id}/svg", s.handleSVG)
		}
	})

	return r
}

// Run serves HTTP until the context is cancelled, then shuts down
// gracefully and closes the backends.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Listen,
		Handler:      s.Router(),
		ReadTimeout:  time.Duration(s.cfg.ReadTimeout),
		WriteTimeout: time.Duration(s.cfg.WriteTimeout),
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "config", s.cfg.String())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		s.closeBackends(shutdownCtx)
		if err != nil {
			return err
		}
		return ctx.Err()
	case err := <-errCh:
		s.closeBackends(context.Background())
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// closeBackends releases the store and the cache.
func (s *Server) closeBackends(ctx context.Context) {
	if err := s.store.Close(ctx); err != nil {
		s.logger.Warn("close store", "err", err)
	}
	if err := s.runner.Close(); err != nil {
		s.logger.Warn("close cache", "err", err)
	}
}
