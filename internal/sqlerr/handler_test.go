package sqlerr

import (
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medialogapp/medialog-server/internal/errs"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	return httpErr
}

func TestHandleErrorUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           sqlstateUniqueViolation,
		Severity:       "ERROR",
		TableName:      "users",
		ConstraintName: "users_username_key",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))

	assert.Equal(t, http.StatusConflict, httpErr.Status)
	assert.Equal(t, errs.CodeConstraintViolation, httpErr.Code)
	assert.Equal(t, []string{"User with this username already exists"}, httpErr.Errors)
}

func TestHandleErrorForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:       sqlstateForeignKeyViolation,
		Severity:   "ERROR",
		TableName:  "items",
		ColumnName: "category_id",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, errs.CodeForeignKeyViolation, httpErr.Code)
	assert.Equal(t, []string{"Category does not exist"}, httpErr.Errors)
}

func TestHandleErrorNotNullViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:       sqlstateNotNullViolation,
		Severity:   "ERROR",
		TableName:  "items",
		ColumnName: "title",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, errs.CodeMissingField, httpErr.Code)
	assert.Equal(t, []string{"Missing or empty field: title"}, httpErr.Errors)
}

func TestHandleErrorCheckViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:       sqlstateCheckViolation,
		Severity:   "ERROR",
		TableName:  "reviews",
		ColumnName: "rating",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, errs.CodeConstraintViolation, httpErr.Code)
	assert.Equal(t, []string{"The Rating value does not meet required conditions"}, httpErr.Errors)
}

func TestHandleErrorWrappedPgError(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           sqlstateUniqueViolation,
		Severity:       "ERROR",
		TableName:      "tags",
		ConstraintName: "tags_name_key",
	}

	httpErr := asHTTPError(t, HandleError(errors.Wrap(pgErr, "insert tag")))

	assert.Equal(t, http.StatusConflict, httpErr.Status)
	assert.Equal(t, []string{"Tag with this name already exists"}, httpErr.Errors)
}

func TestHandleErrorNoRows(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(errors.Wrap(pgx.ErrNoRows, "select item by id")))

	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, errs.CodeNotFound, httpErr.Code)
	assert.Equal(t, []string{"Resource not found"}, httpErr.Errors)
}

func TestHandleErrorUnknown(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(errors.New("connection reset")))

	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, errs.CodeServerFault, httpErr.Code)
	assert.Equal(t, []string{"Internal server error"}, httpErr.Errors)
}

func TestHandleErrorPassesThroughHTTPError(t *testing.T) {
	original := errs.NewNotFound("Item with id 7 not found")

	result := HandleError(original)

	assert.Same(t, original, asHTTPError(t, result))
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	tests := []struct {
		constraint string
		want       string
	}{
		{"users_username_key", "username"},
		{"users_email_key", "email"},
		{"tags_name_key", "name"},
		{"unique_users_email", "email"},
		{"some_custom_constraint", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, extractColumnForUniqueViolation(tt.constraint), tt.constraint)
	}
}
