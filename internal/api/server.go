package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/typedoc/internal/config"
	"github.com/dgallion1/typedoc/internal/schema"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server serves generated type documentation over HTTP.
type Server struct {
	router chi.Router
	reg    *schema.Registry
	log    *slog.Logger
	cfg    config.Config
}

// NewServer creates and configures the HTTP server around a registry of
// documentable types.
func NewServer(reg *schema.Registry, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		reg: reg,
		log: log,
		cfg: cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Documentation endpoints; authenticated only when an API key is set.
	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}
		r.Get("/api/types", s.handleListTypes)
		r.Get("/api/types/{name}/doc", s.handleTypeDoc)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
