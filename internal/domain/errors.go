package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the referenced event does not exist.
var ErrNotFound = errors.New("event not found")

// ValidationError names the first rule an input failed. It is returned before
// any write is attempted, so a failed create or update never leaves a
// partially applied record.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
