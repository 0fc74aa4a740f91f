package errs

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNewBadRequestCollectsAllMessages(t *testing.T) {
	err := NewBadRequest(CodeMissingField,
		"Missing or empty field: username",
		"Missing or empty field: password",
	)

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, CodeMissingField, err.Code)
	assert.Len(t, err.Errors, 2)
	assert.Equal(t, "Missing or empty field: username; Missing or empty field: password", err.Error())
}

func TestNewBadRequestDefaultsCode(t *testing.T) {
	err := NewBadRequest("", "something went wrong")

	assert.Equal(t, "BAD_REQUEST", err.Code)
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *HTTPError
		status int
		code   string
	}{
		{"not found", NewNotFound("Item with id 3 not found"), http.StatusNotFound, CodeNotFound},
		{"conflict", NewConflict("Username already taken"), http.StatusConflict, CodeConstraintViolation},
		{"unauthorized", NewUnauthorized("Invalid username or password"), http.StatusUnauthorized, CodeAuthentication},
		{"internal", NewInternalServer(), http.StatusInternalServerError, CodeServerFault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.code, tt.err.Code)
			assert.NotEmpty(t, tt.err.Errors)
		})
	}
}

func TestErrorsAsThroughWrap(t *testing.T) {
	wrapped := errors.Wrap(NewNotFound("gone"), "loading record")

	var httpErr *HTTPError
	assert.ErrorAs(t, wrapped, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "INTERNAL_SERVER_ERROR", MakeUpperCaseWithUnderscores("Internal Server Error"))
}
