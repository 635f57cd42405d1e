package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	contentHandler contentHandler
	applyHandler   applyHandler
	statusHandler  statusHandler
	healthHandler  healthHandler
}
