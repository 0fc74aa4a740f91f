// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns such as
// request logging, CORS, rate limiting, session identification, and
// panic recovery.
package middleware
