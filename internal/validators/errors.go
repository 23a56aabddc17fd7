package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// FieldError reports that one named field of an entity failed validation.
// It blocks the save action in an editor until the field is corrected; it
// never affects persisted state.
type FieldError struct {
	// Field is one of the Field* constants of this package.
	Field string

	// Reason is a human-readable description shown next to the field.
	Reason string
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NewFieldError constructs a *FieldError for field with the given reason.
func NewFieldError(field, reason string) *FieldError {
	return &FieldError{Field: field, Reason: reason}
}

// AsFieldError unwraps err into a *FieldError when possible.
func AsFieldError(err error) (*FieldError, bool) {
	var fe *FieldError
	ok := errors.As(err, &fe)
	return fe, ok
}
