package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"sonicseer/internal/distribution"
	"sonicseer/internal/forecast"
	"sonicseer/internal/params"
	"sonicseer/internal/simulation"
)

const maxBodyBytes = 1 << 20

type indexData struct {
	Title   string
	Version string
}

type optionsResponse struct {
	Genres        []string       `json:"genres"`
	Regions       []string       `json:"regions"`
	Ranges        []params.Range `json:"ranges"`
	Defaults      params.Vector  `json:"defaults"`
	ChartsEnabled bool           `json:"charts_enabled"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.index.Execute(&buf, indexData{Title: "SonicSeer", Version: s.opts.Version}); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to render dashboard", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleScript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(s.script)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": s.opts.Version,
	})
}

func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, optionsResponse{
		Genres:        params.Genres(),
		Regions:       params.Regions(),
		Ranges:        params.Ranges(),
		Defaults:      s.defaults(),
		ChartsEnabled: s.opts.Charts,
	})
}

// handleForecast runs the pipeline for the posted parameters. Omitted fields keep their defaults.
func (s *Server) handleForecast(w http.ResponseWriter, r *http.Request) {
	req := forecast.Request{Parameters: s.defaults()}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	report, err := s.forecaster.Run(r.Context(), req)
	if err != nil {
		respondWithError(w, errorStatus(err), err.Error(), err)
		return
	}
	respondWithJSON(w, http.StatusOK, report)
}

func (s *Server) defaults() params.Vector {
	v := params.Defaults()
	if s.opts.DaysBack > 0 {
		v.DaysBack = s.opts.DaysBack
	}
	return v
}

// errorStatus maps pipeline errors onto HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, params.ErrInvalidParameter):
		return http.StatusBadRequest
	case errors.Is(err, simulation.ErrEmptyForecast), errors.Is(err, distribution.ErrUndefinedDistribution):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("Failed to marshal response"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string, err error) {
	if err != nil && code >= 500 {
		log.Error().Err(err).Int("code", code).Str("message", message).Msg("HTTP error")
	}
	respondWithJSON(w, code, map[string]string{"error": message})
}
