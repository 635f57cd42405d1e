package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nexus-sb/club-site-backend/errs"
	"github.com/rs/zerolog"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) WriteJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	// Marshal the data first so a marshal failure never produces a
	// half-written body
	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteError maps an error to its HTTP response. Anything that is not an
// ApiErr is treated as an unexpected server error: logged with full detail,
// reported to the caller with a generic message only.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr

	if !errors.As(err, &apiErr) {
		r.logger.Error().Msg(err.Error())
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		r.WriteJSON(w, errorBody{Error: "Internal Server Error"})
		return
	}

	logEvent := r.logger.Error().Int("status", apiErr.StatusCode)
	if apiErr.Cause != nil {
		logEvent = logEvent.Str("cause", apiErr.GetFullError())
	}
	if apiErr.Details != "" {
		logEvent = logEvent.Str("details", apiErr.Details)
	}
	logEvent.Msg(apiErr.Error())

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(apiErr.StatusCode)
	r.WriteJSON(w, errorBody{Error: apiErr.Error(), Field: apiErr.Field})
}

// errorBody is the wire shape for every error response
type errorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}
