package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/nexus-sb/club-site-backend/database"
	"github.com/nexus-sb/club-site-backend/errs"
	"github.com/nexus-sb/club-site-backend/models"
	"github.com/nexus-sb/club-site-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type applyHandler struct {
	responder       Responder
	logger          zerolog.Logger
	applicationRepo *database.ApplicationRepo
	notifier        *services.ApplicationNotifier
}

func newApplyHandler(applicationRepo *database.ApplicationRepo, notifier *services.ApplicationNotifier) applyHandler {
	logger := log.With().Str("handlerName", "applyHandler").Logger()

	return applyHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		applicationRepo: applicationRepo,
		notifier:        notifier,
	}
}

// applicationRequest carries exactly the form fields we accept; decoding
// into it drops anything else a caller sends.
type applicationRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	PRN        string `json:"prn"`
	Branch     string `json:"branch"`
	Year       string `json:"year"`
	Motivation string `json:"motivation"`
	Experience string `json:"experience"`
}

type applicationResponse struct {
	Message string             `json:"message"`
	Data    models.Application `json:"data"`
}

// submitApplication validates and inserts one membership application.
// Validation failures map to 400, store failures to 500 with the store's
// message surfaced: a silently lost application is unacceptable.
func (h applyHandler) submitApplication() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewServerError(err))
			return
		}

		var request applicationRequest
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&request); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode application request body")
			h.responder.WriteError(w, errs.NewServerError(err))
			return
		}

		if request.Name == "" || request.Email == "" || request.PRN == "" || request.Branch == "" {
			h.responder.WriteError(w, errs.NewMissingFieldsError())
			return
		}

		application := models.Application{
			Name:       request.Name,
			Email:      request.Email,
			Phone:      request.Phone,
			PRN:        request.PRN,
			Branch:     request.Branch,
			Year:       request.Year,
			Motivation: request.Motivation,
			Experience: request.Experience,
		}

		if err := h.applicationRepo.Add(r.Context(), &application); err != nil {
			h.responder.WriteError(w, errs.NewStorageError("insert application", err))
			return
		}

		if h.notifier != nil {
			go func(application models.Application) {
				if err := h.notifier.Notify(application); err != nil {
					h.logger.Warn().Err(err).Str("applicant", application.Email).Msg("Failed to send application notification")
				}
			}(application)
		}

		h.responder.WriteJSON(w, applicationResponse{
			Message: "Application submitted successfully",
			Data:    application,
		})
	}
}
