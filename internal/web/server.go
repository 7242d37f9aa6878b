package web

import (
	"bytes"
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ale-ignas/linkboard/internal/config"
	"github.com/ale-ignas/linkboard/internal/models"
	"github.com/ale-ignas/linkboard/internal/presenter"
	"github.com/ale-ignas/linkboard/internal/view"
)

// Server serves one immutable dataset. Every request gets its own presenter,
// so filter state is never shared between requests.
type Server struct {
	cfg     *config.AppConfig
	entries []models.Entry
	views   map[presenter.Variant]*view.HTML
}

// NewServer creates a Server over an already loaded dataset
func NewServer(cfg *config.AppConfig, entries []models.Entry) *Server {
	return &Server{
		cfg:     cfg,
		entries: entries,
		views: map[presenter.Variant]*view.HTML{
			presenter.VariantSelect: view.SelectControls(),
			presenter.VariantTags:   view.TagControls(),
		},
	}
}

// Routes configures all routes and returns the router
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Get("/", s.handleIndex)
	r.Get("/health", handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Use(s.basicAuth)
		r.Get("/entries", s.handleAPIEntries)
		r.Get("/domains", s.handleAPIDomains)
	})

	return r
}

// ListenAndServe serves the routes on addr until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// basicAuth protects a handler with HTTP Basic Authentication when credentials are configured
func (s *Server) basicAuth(next http.Handler) http.Handler {
	username := s.cfg.Server.Username
	password := s.cfg.Server.Password

	if username == "" || password == "" {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()

		userMatch := subtle.ConstantTimeCompare([]byte(user), []byte(username)) == 1
		passMatch := subtle.ConstantTimeCompare([]byte(pass), []byte(password)) == 1

		if !ok || !userMatch || !passMatch {
			w.Header().Set("WWW-Authenticate", `Basic realm="linkboard"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// presenterFor builds a presenter for the request's variant and query state
func (s *Server) presenterFor(r *http.Request) *presenter.Presenter {
	q := r.URL.Query()

	variant, ok := presenter.ParseVariant(q.Get("variant"))
	if !ok {
		variant = s.cfg.Variant()
	}

	p := presenter.New(s.entries, s.cfg.PresenterOptions(variant), s.views[variant])
	p.Apply(presenter.ParseState(q.Get("category"), q.Get("resource"), q.Get("sort")))
	return p
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	p := s.presenterFor(r)

	var buf bytes.Buffer
	if err := p.Render(&buf); err != nil {
		log.Printf("Error rendering page: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	buf.WriteTo(w)
}

func (s *Server) handleAPIEntries(w http.ResponseWriter, r *http.Request) {
	p := s.presenterFor(r)

	response := struct {
		State   presenter.State `json:"state"`
		Total   int             `json:"total"`
		Entries []models.Entry  `json:"entries"`
	}{
		State:   p.State(),
		Entries: p.Visible(),
	}
	response.Total = len(response.Entries)

	respondJSON(w, http.StatusOK, response)
}

func (s *Server) handleAPIDomains(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, presenter.DeriveDomains(s.entries))
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON: %v", err)
	}
}
