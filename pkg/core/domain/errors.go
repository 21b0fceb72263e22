package domain

import (
	"errors"
	"fmt"
)

// APIError is a failure response from the portal backend. Callers use the
// status code to tell expected conditions (404 on an empty bookmark list)
// from real failures.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("portal api: status %d", e.Status)
	}
	return fmt.Sprintf("portal api: status %d: %s", e.Status, e.Message)
}

// IsNotFound reports whether err is an APIError with a 404 status.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == 404
}
