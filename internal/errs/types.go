package errs

import "strings"

// Machine-readable error codes. These never reach the response body;
// they are logged and exposed to middleware so it can pick a status and
// record telemetry without string-matching messages.
const (
	CodeMalformedInput      = "MALFORMED_INPUT"
	CodeMissingField        = "MISSING_FIELD"
	CodeInvalidID           = "INVALID_ID"
	CodeInvalidRating       = "INVALID_RATING"
	CodeNotFound            = "NOT_FOUND"
	CodeForeignKeyViolation = "FOREIGN_KEY_VIOLATION"
	CodeConstraintViolation = "CONSTRAINT_VIOLATION"
	CodeAuthentication      = "AUTHENTICATION_ERROR"
	CodeServerFault         = "SERVER_FAULT"
)

// HTTPError is the error type for API responses.
//
// Only Errors is serialized; clients always receive the same shape:
//
//	{"errors": ["Rating must be between 1 and 5"]}
//
// Status and Code stay server-side for the error handler and logs.
type HTTPError struct {
	Status int      `json:"-"`
	Code   string   `json:"-"`
	Errors []string `json:"errors"`
}

// Error satisfies the error interface. Multiple messages are joined so
// logs show the full set of failures for a request.
func (e *HTTPError) Error() string {
	return strings.Join(e.Errors, "; ")
}

// Is makes errors.Is(err, &HTTPError{}) match any *HTTPError,
// regardless of code or status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// MakeUpperCaseWithUnderscores converts HTTP status text into a stable
// fallback code, e.g. "Bad Request" -> "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
