package connecting

import (
	"errors"
	"fmt"
)

var (
	// Validation errors
	ErrMissingCredentials  = errors.New("missing credentials")
	ErrUnsupportedProvider = errors.New("provider is not supported")
	ErrConnectionNotFound  = errors.New("connection not found")
	ErrCredentialsRejected = errors.New("provider rejected the credentials")

	// External service errors
	ErrProviderUnavailable = errors.New("could not reach provider")

	// Database errors
	ErrDatabaseOperation = errors.New("database operation error")
	ErrGenerateID        = errors.New("error generating id")
)

// ConnectionError carries the API code of a failed connection operation.
type ConnectionError struct {
	Err      error
	Code     string
	Provider string
	Details  string
}

func (e *ConnectionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

func NewConnectionError(err error, code string, provider string, details string) *ConnectionError {
	return &ConnectionError{
		Err:      err,
		Code:     code,
		Provider: provider,
		Details:  details,
	}
}
