// Package services implements the business logic layer between the HTTP
// handlers and the aggregation pipeline.
//
// # Available Services
//
//	- DashboardService: loads the inputs and computes every view once
//	- ViewsService: read-only access to the computed views and boundaries
//	- HealthService: liveness, readiness and version information
//
// Services receive their *slog.Logger through the constructor and never read
// global state. Errors are returned as *errors.AppError so that handlers can
// convert them to RFC 7807 responses.
package services
