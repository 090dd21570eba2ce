package views

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingValue is returned when an optional value is read while unset,
	// such as form data on a GET request or a view without config.
	ErrMissingValue = errors.New("views: missing value")

	// ErrUnexpectedMethod is returned when a form view receives a method other
	// than GET or POST.
	ErrUnexpectedMethod = errors.New("views: unexpected method")
)

// Value dereferences ptr or fails with ErrMissingValue.
func Value[T any](ptr *T, what string) (T, error) {
	if ptr == nil {
		var zero T
		return zero, fmt.Errorf("%w: %s", ErrMissingValue, what)
	}
	return *ptr, nil
}
