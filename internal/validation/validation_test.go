package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medialogapp/medialog-server/internal/errs"
)

type signupPayload struct {
	Username string `json:"username" validate:"required,notblank"`
	Password string `json:"password" validate:"required,notblank"`
	Email    string `json:"email" validate:"omitempty,email"`
}

func (p *signupPayload) Validate() error {
	return Struct(p)
}

func bind(t *testing.T, body string, payload Validatable) error {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	return BindAndValidate(c, payload)
}

func TestBindAndValidateInvalidJSON(t *testing.T) {
	err := bind(t, `{"username": `, &signupPayload{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, errs.CodeMalformedInput, httpErr.Code)
	assert.Equal(t, []string{"Invalid JSON body"}, httpErr.Errors)
}

func TestBindAndValidateReportsEveryMissingField(t *testing.T) {
	err := bind(t, `{}`, &signupPayload{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, errs.CodeMissingField, httpErr.Code)
	assert.Equal(t, []string{
		"Missing or empty field: username",
		"Missing or empty field: password",
	}, httpErr.Errors)
}

func TestBindAndValidateBlankCountsAsMissing(t *testing.T) {
	err := bind(t, `{"username": "   ", "password": "secret"}`, &signupPayload{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, []string{"Missing or empty field: username"}, httpErr.Errors)
}

func TestBindAndValidateEmailFormat(t *testing.T) {
	err := bind(t, `{"username": "ada", "password": "secret", "email": "nope"}`, &signupPayload{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, errs.CodeMalformedInput, httpErr.Code)
	assert.Equal(t, []string{"email must be a valid email address"}, httpErr.Errors)
}

func TestBindAndValidateOK(t *testing.T) {
	payload := &signupPayload{}
	err := bind(t, `{"username": "ada", "password": "secret"}`, payload)

	require.NoError(t, err)
	assert.Equal(t, "ada", payload.Username)
}

func TestStructReturnsHTTPError(t *testing.T) {
	err := Struct(&signupPayload{Password: "secret"})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, errs.CodeMissingField, httpErr.Code)
	assert.Equal(t, []string{"Missing or empty field: username"}, httpErr.Errors)
}

func TestParseID(t *testing.T) {
	id, err := ParseID("id", "42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	tests := []struct {
		raw  string
		want string
	}{
		{"abc", "id must be an integer"},
		{"1.5", "id must be an integer"},
		{"0", "id must be a positive integer"},
		{"-3", "id must be a positive integer"},
	}

	for _, tt := range tests {
		_, err := ParseID("id", tt.raw)
		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr, tt.raw)
		assert.Equal(t, errs.CodeInvalidID, httpErr.Code)
		assert.Equal(t, []string{tt.want}, httpErr.Errors)
	}
}

func TestRequirePositiveInt(t *testing.T) {
	assert.NoError(t, RequirePositiveInt("user_id", 1))

	err := RequirePositiveInt("user_id", 0)
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, []string{"user_id must be a positive integer"}, httpErr.Errors)
}

func TestParseOptionalRating(t *testing.T) {
	rating, err := ParseOptionalRating(nil)
	require.NoError(t, err)
	assert.Nil(t, rating)

	for _, valid := range []int{1, 2, 3, 4, 5} {
		v := valid
		rating, err := ParseOptionalRating(&v)
		require.NoError(t, err)
		require.NotNil(t, rating)
		assert.Equal(t, valid, *rating)
	}

	for _, invalid := range []int{0, 6, -1, 100} {
		v := invalid
		_, err := ParseOptionalRating(&v)
		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr, v)
		assert.Equal(t, errs.CodeInvalidRating, httpErr.Code)
		assert.Equal(t, []string{"Rating must be between 1 and 5"}, httpErr.Errors)
	}
}
