// Package middleware provides observability middleware for the
// preview server: Prometheus request/render metrics and OpenTelemetry
// request tracing.
package middleware
