package http

import (
	"net/http"

	"github.com/fwojciec/devdocs"
)

type stateResponse struct {
	State devdocs.BrowserState `json:"state"`
	View  devdocs.View         `json:"view"`
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	c, err := s.docs.Catalog(r.Context())
	if err != nil {
		Error(w, r, s.logger, err)
		return
	}

	s.mu.Lock()
	state := s.currentState(c)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, stateResponse{State: state, View: devdocs.ViewOf(state, c)})
}

// handleAction applies one action to the shared browser state.
func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	var action devdocs.Action
	if err := decodeJSON(r, &action); err != nil {
		Error(w, r, s.logger, err)
		return
	}

	c, err := s.docs.Catalog(r.Context())
	if err != nil {
		Error(w, r, s.logger, err)
		return
	}

	s.mu.Lock()
	next, err := devdocs.Reduce(s.currentState(c), action, c)
	if err == nil {
		s.state = &next
	}
	s.mu.Unlock()

	if err != nil {
		Error(w, r, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, stateResponse{State: next, View: devdocs.ViewOf(next, c)})
}

// currentState returns the shared state, creating it on first use.
// s.mu must be held.
func (s *Server) currentState(c *devdocs.Catalog) devdocs.BrowserState {
	if s.state == nil {
		initial := devdocs.NewBrowserState(c)
		s.state = &initial
	}
	return *s.state
}
