package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/Simplici0/landedcost/internal/catalog"
	"github.com/Simplici0/landedcost/internal/pricing"
	"github.com/Simplici0/landedcost/internal/scenario"
)

const maxBodyBytes = 1 << 20

var errBadRequest = errors.New("bad request")

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// writeJSON encodes v before touching the response, so an encoding failure
// (NaN, Inf) becomes a 500 instead of a success status with an empty body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		body, _ = json.Marshal(errorResponse{Error: "failed to encode response"})
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func badRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errBadRequest, fmt.Sprintf(format, args...))
}

// decodeJSON reads a single JSON value from the request body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return badRequest("request body is empty")
		}
		return badRequest("invalid JSON body: %v", err)
	}
	return nil
}

// writeError maps domain errors to status codes. Anything unrecognised is
// logged and reported as a 500 without details.
func (s *server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		inputErr    *pricing.InvalidInputError
		settingsErr *catalog.SettingsError
	)

	switch {
	case errors.As(err, &inputErr):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: inputErr.Reason, Field: inputErr.Field})
	case errors.As(err, &settingsErr):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: settingsErr.Reason, Field: settingsErr.Field})
	case errors.Is(err, pricing.ErrZeroPrice):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Field: "price"})
	case errors.Is(err, scenario.ErrNotFound), errors.Is(err, catalog.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, errBadRequest):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		s.log.Error().
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("request failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
