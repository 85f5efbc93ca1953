package main

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Simplici0/landedcost/internal/catalog"
)

func (s *server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.catalog.Load(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (s *server) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	var settings catalog.Settings
	if err := decodeJSON(w, r, &settings); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := settings.Validate(); err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.catalog.Save(r.Context(), settings); err != nil {
		s.writeError(w, r, err)
		return
	}

	saved, err := s.catalog.Load(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (s *server) handleResetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.catalog.Reset(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (s *server) handleWeightGains(w http.ResponseWriter, r *http.Request) {
	settings, err := s.catalog.Load(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settings.WeightGainTable)
}

// editCatalog loads the catalog, applies edit, validates and saves it.
func (s *server) editCatalog(ctx context.Context, edit func(catalog.Settings) (catalog.Settings, error)) error {
	settings, err := s.catalog.Load(ctx)
	if err != nil {
		return err
	}
	if settings, err = edit(settings); err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return err
	}
	return s.catalog.Save(ctx, settings)
}

func (s *server) handlePutSupplier(w http.ResponseWriter, r *http.Request) {
	var sup catalog.Supplier
	if err := decodeJSON(w, r, &sup); err != nil {
		s.writeError(w, r, err)
		return
	}
	sup.ID = chi.URLParam(r, "id")

	err := s.editCatalog(r.Context(), func(c catalog.Settings) (catalog.Settings, error) {
		return c.UpsertSupplier(sup), nil
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sup)
}

func (s *server) handleDeleteSupplier(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.editCatalog(r.Context(), func(c catalog.Settings) (catalog.Settings, error) {
		return c.RemoveSupplier(id)
	}); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) handlePutCustomer(w http.ResponseWriter, r *http.Request) {
	var c catalog.Customer
	if err := decodeJSON(w, r, &c); err != nil {
		s.writeError(w, r, err)
		return
	}
	c.ID = chi.URLParam(r, "id")

	err := s.editCatalog(r.Context(), func(settings catalog.Settings) (catalog.Settings, error) {
		return settings.UpsertCustomer(c), nil
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *server) handleDeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.editCatalog(r.Context(), func(c catalog.Settings) (catalog.Settings, error) {
		return c.RemoveCustomer(id)
	}); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) handlePutPort(w http.ResponseWriter, r *http.Request) {
	var p catalog.Port
	if err := decodeJSON(w, r, &p); err != nil {
		s.writeError(w, r, err)
		return
	}
	p.ID = chi.URLParam(r, "id")

	err := s.editCatalog(r.Context(), func(c catalog.Settings) (catalog.Settings, error) {
		return c.UpsertPort(p), nil
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *server) handleDeletePort(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.editCatalog(r.Context(), func(c catalog.Settings) (catalog.Settings, error) {
		return c.RemovePort(id)
	}); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
