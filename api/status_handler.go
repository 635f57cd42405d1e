package api

import (
	"net/http"
	"time"

	"github.com/nexus-sb/club-site-backend/database"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// enrollmentFlagKey is the site_config row gating the application form
const enrollmentFlagKey = "enrollment_open"

type statusHandler struct {
	responder      Responder
	logger         zerolog.Logger
	siteConfigRepo *database.SiteConfigRepo
}

func newStatusHandler(siteConfigRepo *database.SiteConfigRepo) statusHandler {
	logger := log.With().Str("handlerName", "statusHandler").Logger()

	return statusHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		siteConfigRepo: siteConfigRepo,
	}
}

// getButtonStatus reports whether enrollment is open. Any read failure,
// including a missing row, answers enabled=false: the form defaults to
// closed rather than erroring.
func (h statusHandler) getButtonStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		enabled, err := h.siteConfigRepo.FindBool(r.Context(), enrollmentFlagKey)
		if err != nil {
			h.logger.Warn().Err(err).Str("key", enrollmentFlagKey).Msg("enrollment flag unavailable, reporting disabled")
			h.responder.WriteJSON(w, buttonStatusResponse{Enabled: false})
			return
		}

		h.responder.WriteJSON(w, buttonStatusResponse{Enabled: enabled})
	}
}

type healthHandler struct {
	responder   Responder
	startupTime time.Time
}

func newHealthHandler(startupTime time.Time) healthHandler {
	return healthHandler{
		responder:   NewResponder(log.With().Str("handlerName", "healthHandler").Logger()),
		startupTime: startupTime,
	}
}

func (h healthHandler) getHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, map[string]string{
			"status": "ok",
			"uptime": time.Since(h.startupTime).Round(time.Second).String(),
		})
	}
}
