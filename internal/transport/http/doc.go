// Package http implements the HTTP handlers of the dashboard API.
//
// Handlers stay thin: they parse the request, call a service and render the
// result with go-chi/render. Every error response is an RFC 7807 problem
// produced by errors.ErrorHandler.
//
// Routes mounted by the application:
//
//	GET /api/views                list of views with row counts
//	GET /api/views/{view}         one view table
//	GET /api/geo/departments      department boundary document
//	GET /api/health               health check
//	GET /api/health/live          liveness
//	GET /api/health/ready         readiness
//	GET /api/version              version information
//	GET /metrics                  Prometheus metrics
package http
