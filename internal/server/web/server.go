// Package web is the HTTP transport: it gates every page behind the
// session verifier, applies the cookie lifecycle rules for each
// verification outcome, and delegates rendering to embedded templates.
package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/quickjot/quickjot/internal/logging"
	"github.com/quickjot/quickjot/internal/server/auth"
	"github.com/quickjot/quickjot/internal/server/notes"
)

// sessionService is the slice of the auth service the transport needs.
type sessionService interface {
	Verify(ctx context.Context, username, token string) auth.Outcome
	Revoke(ctx context.Context, token string) error
}

// noteService is the slice of the notes service the transport needs.
type noteService interface {
	List(ctx context.Context, username string) ([]notes.Note, error)
	Create(ctx context.Context, username, body string) (*notes.Note, error)
	Update(ctx context.Context, username string, id uuid.UUID, body string) (*notes.Note, error)
	Delete(ctx context.Context, username string, id uuid.UUID) error
}

type Server struct {
	address        string
	logger         logging.Logger
	sessions       sessionService
	notes          noteService
	health         func(ctx context.Context) error
	renderer       *Renderer
	requestTimeout time.Duration
}

func NewServer(addr string, l logging.Logger, sessions sessionService, ns noteService,
	health func(ctx context.Context) error, requestTimeout time.Duration) (*Server, error) {

	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	return &Server{
		address:        addr,
		logger:         l.With("module", "http_server"),
		sessions:       sessions,
		notes:          ns,
		health:         health,
		renderer:       renderer,
		requestTimeout: requestTimeout,
	}, nil
}

// Handler builds the router. Exposed separately from Run for tests.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.requestTimeout))

	r.Get("/", s.handleRoot)
	r.Get("/healthz", s.handleHealthz)

	r.Post("/session", s.handleStartSession)
	r.Post("/logout", s.handleLogout)

	r.Post("/notes", s.handleCreateNote)
	r.Post("/notes/{id}", s.handleUpdateNote)
	r.Post("/notes/{id}/delete", s.handleDeleteNote)

	return r
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
