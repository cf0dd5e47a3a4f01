package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidField matches any *InvalidFieldError via errors.Is.
	ErrInvalidField = errors.New("invalid field")
	// ErrUnknownOperation is returned by Execute for an unrecognised QuerySpec.Operation.
	ErrUnknownOperation = errors.New("unknown operation")
	// ErrZeroFactor is returned by Execute when OpDivisibleID is asked to divide by zero.
	ErrZeroFactor = errors.New("factor must be non-zero")
)

// InvalidFieldError reports a field selector that does not name a Creature attribute.
type InvalidFieldError struct {
	Field string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid field %q: want one of %v", e.Field, FieldNames())
}

// Is lets errors.Is(err, ErrInvalidField) match.
func (e *InvalidFieldError) Is(target error) bool {
	return target == ErrInvalidField
}
