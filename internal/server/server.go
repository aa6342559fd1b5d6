// Package server implements the chart HTTP API.
//
// The API has two halves. One-shot rendering turns a request into artifacts
// and forgets about it. Live charts are server-side instances: each one owns
// an in-memory surface holding its latest frame, and clients mutate it with
// reconfigure, data reload, and resize calls.
//
// # Endpoints
//
//	GET    /healthz                  liveness probe
//	POST   /api/render               one-shot render
//	POST   /api/charts               create a live chart instance
//	GET    /api/charts/{id}          fetch the current frame (SVG)
//	GET    /api/charts/{id}/options  fetch the effective options
//	PATCH  /api/charts/{id}          merge new options into the instance
//	POST   /api/charts/{id}/data     replace the series (inline or by locator)
//	POST   /api/charts/{id}/resize   resize the backing surface
//	DELETE /api/charts/{id}          tear the instance down
package server

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/chartwright/chartwright/pkg/chart"
	"github.com/chartwright/chartwright/pkg/pipeline"
)

// shutdownTimeout bounds graceful shutdown once the serve context is
// cancelled.
const shutdownTimeout = 10 * time.Second

// Server holds the pipeline runner and the live chart instances.
type Server struct {
	runner   *pipeline.Runner
	logger   *log.Logger
	registry *chart.Registry

	mu        sync.RWMutex
	instances map[string]*liveChart
}

// liveChart pairs an instance with the surface it draws on. The surface is
// registered in the registry under the chart id.
type liveChart struct {
	id      string
	surface *chart.MemorySurface
	inst    *chart.Instance
}

// New creates a server around the given runner. A nil logger discards output.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		runner:    runner,
		logger:    logger,
		registry:  chart.NewRegistry(),
		instances: make(map[string]*liveChart),
	}
}

// Handler builds the chi router for the API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/render", s.handleRender)
		r.Route("/charts", func(r chi.Router) {
			r.Post("/", s.handleCreateChart)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetFrame)
				r.Get("/options", s.handleGetOptions)
				r.Patch("/", s.handleConfigure)
				r.Post("/data", s.handleSetData)
				r.Post("/resize", s.handleResize)
				r.Delete("/", s.handleDelete)
			})
		})
	})
	return r
}

// ListenAndServe runs the server until the context is cancelled or the
// listener fails. Cancellation triggers a graceful shutdown.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Infof("serving on %s", addr)
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.closeAll()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// closeAll tears down every live chart. Used during shutdown.
func (s *Server) closeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, lc := range s.instances {
		if err := lc.inst.Close(); err != nil {
			s.logger.Warnf("closing chart %s: %v", id, err)
		}
		s.registry.Remove(id)
		delete(s.instances, id)
	}
}

// lookup returns the live chart registered under id.
func (s *Server) lookup(id string) (*liveChart, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lc, ok := s.instances[id]
	return lc, ok
}

// logRequests logs one line per request with method, path, status and timing.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).Round(time.Microsecond))
	})
}
