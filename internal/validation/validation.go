// Package validation contains the logic for validating request data.
//
// Request payload types declare rules through `validate` struct tags
// (enforced by the validator library) and implement Validatable.
// Failures are collected into plain messages a client can understand:
// every missing field is reported, not just the first one found.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/medialogapp/medialog-server/internal/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to
// validate themselves. Typically Validate calls validation.Struct after
// any field normalization (trimming, defaulting).
type Validatable interface {
	Validate() error
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their JSON name so messages match the wire
	// payload ("category_id", not "CategoryID").
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// notblank treats whitespace-only strings as empty, matching the
	// "present and non-empty" contract for required string fields.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
}

// Struct runs tag-based validation on a request payload. Failures come
// back as an *errs.HTTPError listing every violated field, so Validate
// implementations return client-ready errors directly.
func Struct(v any) error {
	if err := validate.Struct(v); err != nil {
		return extractValidationError(err)
	}
	return nil
}

// BindAndValidate binds the request body into payload and validates it.
//
// A body that is not valid JSON (or does not match the payload types)
// yields MalformedInput; rule failures yield a 400 listing every
// violated field. payload must be a pointer so Bind can populate it.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequest(errs.CodeMalformedInput, "Invalid JSON body")
	}

	if err := payload.Validate(); err != nil {
		return extractValidationError(err)
	}

	return nil
}

// extractValidationError converts validator failures into an
// *errs.HTTPError with one message per violated field.
func extractValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	ok := false
	if validationErrors, ok = err.(validator.ValidationErrors); !ok {
		// Validate returned something other than tag failures; pass
		// application errors through and wrap the rest.
		var httpErr *errs.HTTPError
		if e, isHTTP := err.(*errs.HTTPError); isHTTP {
			httpErr = e
			return httpErr
		}
		return errs.NewBadRequest("", err.Error())
	}

	messages := make([]string, 0, len(validationErrors))
	allMissing := true

	for _, fieldErr := range validationErrors {
		field := fieldErr.Field()

		switch fieldErr.Tag() {
		case "required", "notblank":
			messages = append(messages, fmt.Sprintf("Missing or empty field: %s", field))

		case "email":
			allMissing = false
			messages = append(messages, fmt.Sprintf("%s must be a valid email address", field))

		case "min":
			allMissing = false
			if fieldErr.Type().Kind() == reflect.String {
				messages = append(messages, fmt.Sprintf("%s must be at least %s characters", field, fieldErr.Param()))
			} else {
				messages = append(messages, fmt.Sprintf("%s must be at least %s", field, fieldErr.Param()))
			}

		case "max":
			allMissing = false
			if fieldErr.Type().Kind() == reflect.String {
				messages = append(messages, fmt.Sprintf("%s must not exceed %s characters", field, fieldErr.Param()))
			} else {
				messages = append(messages, fmt.Sprintf("%s must not exceed %s", field, fieldErr.Param()))
			}

		default:
			allMissing = false
			if fieldErr.Param() != "" {
				messages = append(messages, fmt.Sprintf("%s: %s:%s", field, fieldErr.Tag(), fieldErr.Param()))
			} else {
				messages = append(messages, fmt.Sprintf("%s: %s", field, fieldErr.Tag()))
			}
		}
	}

	code := errs.CodeMalformedInput
	if allMissing {
		code = errs.CodeMissingField
	}
	return errs.NewBadRequest(code, messages...)
}
