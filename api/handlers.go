package api

import (
	"time"

	"github.com/nexus-sb/club-site-backend/database"
	"github.com/nexus-sb/club-site-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, notifier *services.ApplicationNotifier, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		contentHandler: newContentHandler(database),
		applyHandler:   newApplyHandler(database.ApplicationRepo(), notifier),
		statusHandler:  newStatusHandler(database.SiteConfigRepo()),
		healthHandler:  newHealthHandler(startupTime),
	}
}
