package gymapi

import (
	"errors"
	"fmt"
)

// APIError is a business rejection reported by the gym API (class full,
// membership ineligible, conflicting booking). Message carries the server's
// wording verbatim so the user sees what the server said.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gym api: %s (status %d)", e.Message, e.Status)
}

// IsDomainRejection distinguishes a server-reported business error from a
// transport failure.
func IsDomainRejection(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// RejectionMessage extracts the server's message, or falls back when the
// failure was transport-level or the server sent no message.
func RejectionMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
