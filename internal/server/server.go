package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ziadkadry99/webstarter/internal/db"
	"github.com/ziadkadry99/webstarter/internal/live"
	"github.com/ziadkadry99/webstarter/internal/playground"
	"github.com/ziadkadry99/webstarter/internal/search"
	"github.com/ziadkadry99/webstarter/internal/site"
	"github.com/ziadkadry99/webstarter/internal/theme"
)

// Config holds server configuration.
type Config struct {
	Port           int
	AllowAll       bool    // allow all CORS origins (dev mode)
	RateLimitRPS   float64 // requests per second per client on /api; 0 disables
	RateLimitBurst int
	MinQueryLength int
}

// Deps are the feature components the server mounts.
type Deps struct {
	Site  *site.Holder
	Index []search.Document
	Cache *search.Cache
	Live  *live.Hub
}

// Server serves the site, its APIs and the live channel.
type Server struct {
	cfg        Config
	db         *db.DB
	deps       Deps
	prefs      *theme.Store
	router     chi.Router
	httpServer *http.Server
}

// New creates a server with all dependencies.
func New(cfg Config, database *db.DB, deps Deps) *Server {
	if deps.Index == nil {
		deps.Index = search.BuildIndex()
	}
	if deps.Cache == nil {
		// Size 0 selects the default size, which never fails.
		deps.Cache, _ = search.NewCache(0)
	}
	s := &Server{
		cfg:   cfg,
		db:    database,
		deps:  deps,
		prefs: theme.NewStore(database),
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// The live channel outlives any request timeout.
	if s.deps.Live != nil {
		s.deps.Live.RegisterRoutes(r)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.Group(func(r chi.Router) {
			if s.cfg.RateLimitRPS > 0 {
				r.Use(newRateLimiter(s.cfg.RateLimitRPS, s.cfg.RateLimitBurst, 0).Middleware)
			}
			search.RegisterRoutes(r, s.deps.Index, s.deps.Cache, s.cfg.MinQueryLength)
			playground.RegisterRoutes(r)
			theme.RegisterRoutes(r, s.prefs)
		})

		if s.deps.Site != nil {
			site.RegisterRoutes(r, s.deps.Site, s.prefs)
		}
	})

	return r
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Database returns the database connection.
func (s *Server) Database() *db.DB { return s.db }

// Preferences returns the visitor theme store.
func (s *Server) Preferences() *theme.Store { return s.prefs }

// ServerConfig returns the server configuration.
func (s *Server) ServerConfig() Config { return s.cfg }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("webstarter server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
