package errs

import "net/http"

// NewBadRequest creates a 400 HTTPError with the given taxonomy code.
// Pass every message at once: validation reports all failures together
// instead of stopping at the first one.
func NewBadRequest(code string, messages ...string) *HTTPError {
	if code == "" {
		code = MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))
	}
	return &HTTPError{
		Status: http.StatusBadRequest,
		Code:   code,
		Errors: messages,
	}
}

// NewNotFound creates a 404 HTTPError.
func NewNotFound(message string) *HTTPError {
	return &HTTPError{
		Status: http.StatusNotFound,
		Code:   CodeNotFound,
		Errors: []string{message},
	}
}

// NewConflict creates a 409 HTTPError for duplicate unique values.
func NewConflict(message string) *HTTPError {
	return &HTTPError{
		Status: http.StatusConflict,
		Code:   CodeConstraintViolation,
		Errors: []string{message},
	}
}

// NewUnauthorized creates a 401 HTTPError. Callers must keep the
// message generic so it does not reveal which credential was wrong.
func NewUnauthorized(message string) *HTTPError {
	return &HTTPError{
		Status: http.StatusUnauthorized,
		Code:   CodeAuthentication,
		Errors: []string{message},
	}
}

// NewInternalServer creates a 500 HTTPError with a generic message.
// The underlying cause belongs in logs, not in the response.
func NewInternalServer() *HTTPError {
	return &HTTPError{
		Status: http.StatusInternalServerError,
		Code:   CodeServerFault,
		Errors: []string{"Internal server error"},
	}
}
