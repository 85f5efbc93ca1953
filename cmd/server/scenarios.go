package main

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Simplici0/landedcost/internal/pricing"
	"github.com/Simplici0/landedcost/internal/scenario"
)

type createScenarioRequest struct {
	Name  string               `json:"name"`
	Input pricing.PricingInput `json:"input"`
}

type renameScenarioRequest struct {
	Name string `json:"name"`
}

func (s *server) handleListScenarios(w http.ResponseWriter, r *http.Request) {
	scenarios, err := s.scenarios.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, scenarios)
}

func (s *server) handleCreateScenario(w http.ResponseWriter, r *http.Request) {
	var req createScenarioRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		s.writeError(w, r, badRequest("name is required"))
		return
	}

	breakdown, err := pricing.CalculateChecked(req.Input)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	sc := scenario.New(req.Name, req.Input, breakdown)
	if err := s.scenarios.Save(r.Context(), sc); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, sc)
}

func (s *server) handleGetScenario(w http.ResponseWriter, r *http.Request) {
	sc, err := s.scenarios.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sc)
}

func (s *server) handleRenameScenario(w http.ResponseWriter, r *http.Request) {
	var req renameScenarioRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		s.writeError(w, r, badRequest("name is required"))
		return
	}

	id := chi.URLParam(r, "id")
	if err := s.scenarios.Rename(r.Context(), id, req.Name); err != nil {
		s.writeError(w, r, err)
		return
	}

	sc, err := s.scenarios.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sc)
}

func (s *server) handleDeleteScenario(w http.ResponseWriter, r *http.Request) {
	if err := s.scenarios.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) handleScenarioText(w http.ResponseWriter, r *http.Request) {
	sc, err := s.scenarios.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeText(w, http.StatusOK, sc.Text())
}

func (s *server) handleCompareScenario(w http.ResponseWriter, r *http.Request) {
	sc, err := s.scenarios.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var current pricing.PricingInput
	if err := decodeJSON(w, r, &current); err != nil {
		s.writeError(w, r, err)
		return
	}
	breakdown, err := pricing.CalculateChecked(current)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sc.CompareWith(breakdown))
}
