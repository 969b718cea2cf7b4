package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/custodia-labs/benefits-portal/internal/core/domain"
)

// fieldUpdate is the body of PUT /api/session/fields/{field}.
type fieldUpdate struct {
	Value string `json:"value"`
}

func (s *Server) apiServices(w http.ResponseWriter, r *http.Request) {
	category, err := domain.ParseCategory(r.URL.Query().Get("category"))
	if err != nil {
		writeJSONError(w, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err))
		return
	}

	page, err := s.ports.Catalog.Browse(r.URL.Query().Get("q"), category)
	if err != nil {
		writeJSONError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (s *Server) apiCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.ports.Catalog.Categories())
}

func (s *Server) apiService(w http.ResponseWriter, r *http.Request) {
	svc, err := s.ports.Catalog.Get(r.PathValue("id"))
	if err != nil {
		writeJSONError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

// apiSessionID returns the cookie session ID or writes a 404.
func apiSessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := sessionID(r)
	if id == "" {
		writeJSONError(w, domain.ErrSessionNotFound)
		return "", false
	}
	return id, true
}

func (s *Server) apiSession(w http.ResponseWriter, r *http.Request) {
	id, ok := apiSessionID(w, r)
	if !ok {
		return
	}
	session, err := s.ports.Applications.Get(r.Context(), id)
	if err != nil {
		writeJSONError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (s *Server) apiUpdateField(w http.ResponseWriter, r *http.Request) {
	id, ok := apiSessionID(w, r)
	if !ok {
		return
	}

	var body fieldUpdate
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSONError(w, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
		return
	}

	session, err := s.ports.Applications.UpdateField(r.Context(), id, domain.Field(r.PathValue("field")), body.Value)
	if err != nil {
		writeJSONError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (s *Server) apiNext(w http.ResponseWriter, r *http.Request) {
	id, ok := apiSessionID(w, r)
	if !ok {
		return
	}
	session, err := s.ports.Applications.Next(r.Context(), id)
	if err != nil {
		writeJSONError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (s *Server) apiPrevious(w http.ResponseWriter, r *http.Request) {
	id, ok := apiSessionID(w, r)
	if !ok {
		return
	}
	session, err := s.ports.Applications.Previous(r.Context(), id)
	if err != nil {
		writeJSONError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (s *Server) apiExit(w http.ResponseWriter, r *http.Request) {
	if id := sessionID(r); id != "" {
		if err := s.ports.Applications.Exit(r.Context(), id); err != nil {
			writeJSONError(w, err)
			return
		}
	}
	clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
