package validation

import (
	"fmt"
	"strconv"

	"github.com/medialogapp/medialog-server/internal/errs"
)

// ParseID parses a path parameter that must be a positive integer
// identifier. Malformed or non-positive values yield InvalidId.
func ParseID(name, raw string) (int64, error) {
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errs.NewBadRequest(errs.CodeInvalidID, fmt.Sprintf("%s must be an integer", name))
	}
	return value, RequirePositiveInt(name, value)
}

// RequirePositiveInt validates a body-supplied identifier (already
// bound as an integer) is positive.
func RequirePositiveInt(name string, value int64) error {
	if value <= 0 {
		return errs.NewBadRequest(errs.CodeInvalidID, fmt.Sprintf("%s must be a positive integer", name))
	}
	return nil
}

// ParseOptionalRating validates an optional rating field. A nil rating
// is absent, not an error; callers that require a rating handle nil
// themselves. Supplied values must land in the closed range [1,5].
func ParseOptionalRating(rating *int) (*int, error) {
	if rating == nil {
		return nil, nil
	}
	if *rating < 1 || *rating > 5 {
		return nil, errs.NewBadRequest(errs.CodeInvalidRating, "Rating must be between 1 and 5")
	}
	return rating, nil
}
