package main

import "net/http"

func (s *server) handleListHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := s.scenarios.ListHistory(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	if err := s.scenarios.ClearHistory(r.Context()); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
