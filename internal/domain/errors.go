package domain

import (
	"errors"
	"strings"
)

// InvalidInputError reports every precondition violated by a calculation
// input. Calculators validate exhaustively before computing anything, so a
// single error carries the full list of violations.
type InvalidInputError struct {
	Violations []string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + strings.Join(e.Violations, "; ")
}

// NewInvalidInput builds an InvalidInputError from the accumulated
// violations, or returns nil when there are none.
func NewInvalidInput(violations []string) error {
	if len(violations) == 0 {
		return nil
	}
	return &InvalidInputError{Violations: violations}
}

// IsInvalidInput reports whether err is (or wraps) an InvalidInputError.
func IsInvalidInput(err error) bool {
	var iie *InvalidInputError
	return errors.As(err, &iie)
}
