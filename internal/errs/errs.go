// Package errs defines the error types returned to API clients.
//
// Every failure that reaches a client is expressed as an *HTTPError
// carrying an HTTP status, a machine-readable code, and one or more
// human-readable messages. Handlers, services, and repositories return
// these errors; the global error handler serializes them into the
// common {"errors": [...]} envelope.
package errs
