// Package web serves a loaded table read-only over HTTP as JSON, so the
// inferred types and data can be inspected from a browser or scripts
// while the command keeps running.
package web

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/JonMunkholm/typetab"
	"github.com/JonMunkholm/typetab/internal/config"
)

// Server exposes one table over HTTP. The table is never mutated, so no
// locking is needed; concurrent readers are safe.
type Server struct {
	table  typetab.Table
	router *chi.Mux
	server *http.Server
}

// NewServer creates a Server for the given table.
func NewServer(t typetab.Table, cfg *config.Config) *Server {
	s := &Server{
		table:  t,
		router: chi.NewRouter(),
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(30 * time.Second))

	s.router.Get("/healthz", s.handleHealth)
	s.router.Route("/api", func(r chi.Router) {
		r.Get("/table", s.handleTable)
		r.Get("/columns", s.handleColumns)
		r.Get("/columns/{name}", s.handleColumn)
		r.Get("/frequencies/{name}", s.handleFrequencies)
	})

	s.server = &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	return s
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Start runs the server until it is shut down or fails.
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
