package services

import (
	"errors"
	"fmt"
)

// ErrPlaceNotFound is returned when an operation references a place id that
// matches nothing in storage.
var ErrPlaceNotFound = errors.New("place_not_found")

// ValidationError reports a malformed request. It is raised at the service
// boundary, before any storage call happens.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s", e.Reason)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
