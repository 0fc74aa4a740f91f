package middleware

import (
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/medialogapp/medialog-server/internal/server"
)

// Middlewares groups all middleware components used by the HTTP
// server, so routing code has a single place to pull them from.
type Middlewares struct {
	// Global holds common middleware used across the whole API:
	// CORS, request logging, recovery, secure headers, and the global
	// error handler.
	Global *GlobalMiddlewares

	// Auth resolves session tokens into a user id on the request
	// context.
	Auth *AuthMiddleware

	// ContextEnhancer enriches each request with a request-scoped
	// logger (request_id, method, path, ip, optional trace metadata).
	ContextEnhancer *ContextEnhancer

	// Tracing provides New Relic middleware and helpers to attach
	// custom attributes and notice errors on transactions.
	Tracing *TracingMiddleware

	// RateLimit throttles credential endpoints and records rate limit
	// telemetry.
	RateLimit *RateLimitMiddleware
}

// NewMiddlewares constructs all middleware components. When New Relic
// is not configured, nrApp is nil and tracing degrades to a no-op.
func NewMiddlewares(s *server.Server, sessions SessionResolver) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		Auth:            NewAuthMiddleware(s, sessions),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
		RateLimit:       NewRateLimitMiddleware(s),
	}
}
