package web

import (
	"bytes"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/custodia-labs/benefits-portal/internal/core/domain"
	"github.com/custodia-labs/benefits-portal/internal/logger"
)

// Wizard form actions.
const (
	actionNext     = "next"
	actionPrevious = "previous"
	actionExit     = "exit"
)

// handleCatalog renders the landing page. An unknown category shows every service.
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	category, err := domain.ParseCategory(r.URL.Query().Get("category"))
	if err != nil {
		category = domain.CategoryAll
	}

	page, err := s.ports.Catalog.Browse(term, category)
	if err != nil {
		s.renderError(w, err)
		return
	}
	s.render(w, http.StatusOK, pageCatalog, newCatalogView(page))
}

// handleStart opens a wizard session for the service and redirects to its first step.
func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	session, err := s.ports.Applications.Start(r.Context(), r.PathValue("id"))
	if err != nil {
		s.renderError(w, err)
		return
	}
	setSessionCookie(w, session.ID)
	http.Redirect(w, r, "/apply", http.StatusSeeOther)
}

// currentSession loads the session named by the cookie. When there is none
// it redirects to the catalog and returns nil.
func (s *Server) currentSession(w http.ResponseWriter, r *http.Request) *domain.Session {
	id := sessionID(r)
	if id == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return nil
	}

	session, err := s.ports.Applications.Get(r.Context(), id)
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		clearSessionCookie(w)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return nil
	case err != nil:
		s.renderError(w, err)
		return nil
	}
	return session
}

// handleApply renders the current wizard step.
func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	session := s.currentSession(w, r)
	if session == nil {
		return
	}

	title := ""
	if svc, err := s.ports.Catalog.Get(session.ServiceID); err == nil {
		title = svc.Title
	}
	s.render(w, http.StatusOK, pageApply, newApplyView(session, title))
}

// handleApplySubmit records the posted fields of the current step, then
// moves the wizard according to the action button pressed.
func (s *Server) handleApplySubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.renderError(w, domain.ErrInvalidInput)
		return
	}

	session := s.currentSession(w, r)
	if session == nil {
		return
	}

	action := r.PostForm.Get("action")
	if action == actionExit {
		s.exit(w, r, session.ID)
		return
	}

	ctx := r.Context()
	if !session.Submitted {
		for _, spec := range session.Step.Fields() {
			values, ok := r.PostForm[spec.Field.String()]
			if !ok {
				continue
			}
			if _, err := s.ports.Applications.UpdateField(ctx, session.ID, spec.Field, values[0]); err != nil {
				s.renderError(w, err)
				return
			}
		}
	}

	var err error
	switch action {
	case actionPrevious:
		_, err = s.ports.Applications.Previous(ctx, session.ID)
	default:
		_, err = s.ports.Applications.Next(ctx, session.ID)
	}
	if err != nil {
		s.renderError(w, err)
		return
	}
	http.Redirect(w, r, "/apply", http.StatusSeeOther)
}

// handleExit abandons the wizard and returns to the catalog.
func (s *Server) handleExit(w http.ResponseWriter, r *http.Request) {
	s.exit(w, r, sessionID(r))
}

func (s *Server) exit(w http.ResponseWriter, r *http.Request, id string) {
	if id != "" {
		if err := s.ports.Applications.Exit(r.Context(), id); err != nil {
			s.renderError(w, err)
			return
		}
	}
	clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) render(w http.ResponseWriter, status int, page string, data any) {
	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, page, data); err != nil {
		logger.L().Error("render page", zap.String("page", page), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Server) renderError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.L().Error("request failed", zap.Error(err))
		msg = "Sorry, there is a problem with the service. Try again later."
	}
	s.render(w, status, pageError, errorView{
		Title:   http.StatusText(status),
		Status:  status,
		Message: msg,
	})
}
