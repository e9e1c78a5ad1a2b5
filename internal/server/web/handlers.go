package web

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/quickjot/quickjot/internal/server/auth"
	"github.com/quickjot/quickjot/internal/shared"
)

const (
	msgSessionInvalid = "Found an outdated or invalid session. Sign in again."
	msgInternalError  = "An internal server error occurred."
	msgNoteNotFound   = "That note does not exist."
)

// handleRoot is the verification gate. Absent cookies short-circuit to the
// entry form before any store access; otherwise the outcome drives both
// the response and the cookie lifecycle.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	username, token, ok := sessionCookies(r)
	if !ok {
		s.renderer.Login(w, http.StatusOK, false)
		return
	}

	switch s.sessions.Verify(r.Context(), username, token) {
	case auth.OutcomeAuthenticated:
		s.renderApp(w, r, username)
	case auth.OutcomeRejected:
		clearSessionCookies(w)
		s.renderer.Notice(w, http.StatusUnauthorized, msgSessionInvalid, true)
	default:
		// Store failure: the cookies may still be valid once the backend
		// recovers, so they stay untouched.
		s.renderer.Notice(w, http.StatusInternalServerError, msgInternalError, false)
	}
}

func (s *Server) renderApp(w http.ResponseWriter, r *http.Request, username string) {
	list, err := s.notes.List(r.Context(), username)
	if err != nil {
		s.logger.Error(r.Context(), "listing notes failed", "username", username, "error", err)
		s.renderer.Notice(w, http.StatusInternalServerError, msgInternalError, false)
		return
	}
	s.renderer.App(w, username, list)
}

// handleStartSession installs a pre-issued (username, token) pair as
// cookies, but only after it verifies exactly like any other request.
func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	username := r.PostFormValue("username")
	token := r.PostFormValue("token")
	if username == "" || token == "" {
		s.renderer.Login(w, http.StatusBadRequest, true)
		return
	}

	switch s.sessions.Verify(r.Context(), username, token) {
	case auth.OutcomeAuthenticated:
		setSessionCookies(w, username, token)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	case auth.OutcomeRejected:
		s.renderer.Login(w, http.StatusUnauthorized, true)
	default:
		s.renderer.Notice(w, http.StatusInternalServerError, msgInternalError, false)
	}
}

// handleLogout revokes the token record and discards the cookies. If the
// store cannot be reached the cookies stay, same rule as everywhere else.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	_, token, ok := sessionCookies(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if err := s.sessions.Revoke(r.Context(), token); err != nil {
		s.logger.Error(r.Context(), "revoking session failed", "error", err)
		s.renderer.Notice(w, http.StatusInternalServerError, msgInternalError, false)
		return
	}

	clearSessionCookies(w)
	s.renderer.Notice(w, http.StatusOK, "Signed out. See you soon.", true)
}

// requireSession gates the note mutations. It returns the verified
// username, or "" after writing the response itself.
func (s *Server) requireSession(w http.ResponseWriter, r *http.Request) string {
	username, token, ok := sessionCookies(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return ""
	}

	switch s.sessions.Verify(r.Context(), username, token) {
	case auth.OutcomeAuthenticated:
		return username
	case auth.OutcomeRejected:
		clearSessionCookies(w)
		s.renderer.Notice(w, http.StatusUnauthorized, msgSessionInvalid, true)
	default:
		s.renderer.Notice(w, http.StatusInternalServerError, msgInternalError, false)
	}
	return ""
}

func (s *Server) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	username := s.requireSession(w, r)
	if username == "" {
		return
	}

	if _, err := s.notes.Create(r.Context(), username, r.PostFormValue("body")); err != nil {
		s.renderNoteError(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	username := s.requireSession(w, r)
	if username == "" {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		s.renderer.Notice(w, http.StatusNotFound, msgNoteNotFound, true)
		return
	}

	if _, err := s.notes.Update(r.Context(), username, id, r.PostFormValue("body")); err != nil {
		s.renderNoteError(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	username := s.requireSession(w, r)
	if username == "" {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		s.renderer.Notice(w, http.StatusNotFound, msgNoteNotFound, true)
		return
	}

	if err := s.notes.Delete(r.Context(), username, id); err != nil {
		s.renderNoteError(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) renderNoteError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, shared.ErrNotFound):
		s.renderer.Notice(w, http.StatusNotFound, msgNoteNotFound, true)
	case errors.Is(err, shared.ErrEmptyBody):
		s.renderer.Notice(w, http.StatusBadRequest, "A note needs a body.", true)
	default:
		s.logger.Error(r.Context(), "note operation failed", "error", err)
		s.renderer.Notice(w, http.StatusInternalServerError, msgInternalError, false)
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if err := s.health(r.Context()); err != nil {
		s.logger.Error(r.Context(), "health check failed", "error", err)
		http.Error(w, "unhealthy", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
