// Package server implements the HTTP API for template storage and layout
// resolution.
//
// # Endpoints
//
//	GET    /healthz                     liveness probe
//	POST   /v1/resolve                  resolve an inline template
//	GET    /v1/templates                list stored template names
//	PUT    /v1/templates/{name}         save a template
//	GET    /v1/templates/{name}         fetch a template
//	DELETE /v1/templates/{name}         delete a template
//	POST   /v1/templates/{name}/resolve resolve a stored template
//
// Errors are returned as a JSON envelope carrying the structured error
// code, so clients can branch on codes instead of parsing messages:
//
//	{"error": {"code": "TEMPLATE_NOT_FOUND", "message": "..."}}
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/cardframe/pkg/pipeline"
	"github.com/matzehuels/cardframe/pkg/store"
)

// Server is the HTTP API server. Create one with New and run it with
// ListenAndServe, or mount Handler into an existing mux.
type Server struct {
	runner *pipeline.Runner
	store  store.Store
	logger *log.Logger
	router chi.Router
}

// New creates a server around a resolution runner and a template store.
// A nil logger falls back to the default logger.
func New(runner *pipeline.Runner, st store.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner: runner,
		store:  st,
		logger: logger,
	}
	s.router = s.routes()
	return s
}

// Handler returns the server's HTTP handler for mounting or testing.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(s.requestID)
	r.Use(s.recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/resolve", s.handleResolve)

		r.Route("/templates", func(r chi.Router) {
			r.Get("/", s.handleListTemplates)
			r.Put("/{name}", s.handlePutTemplate)
			r.Get("/{name}", s.handleGetTemplate)
			r.Delete("/{name}", s.handleDeleteTemplate)
			r.Post("/{name}/resolve", s.handleResolveStored)
		})
	})

	return r
}

// ListenAndServe starts the server on addr and blocks until ctx is
// cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
