package collecting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/cloud-cost-api/infrastructure/integrator"
	"github.com/vfg2006/cloud-cost-api/pkg/apiErrors"
	"github.com/vfg2006/cloud-cost-api/pkg/utils"
)

var (
	// Validation errors
	ErrConnectionNotFound  = errors.New("no active connection for provider")
	ErrUnsupportedProvider = errors.New("provider is not supported")
	ErrInvalidPeriod       = errors.New("invalid cost period")
	ErrInvalidCredentials  = errors.New("stored credentials are incomplete")
	ErrUpstreamRejected    = errors.New("provider rejected the request")
	ErrCostsNotFetched     = errors.New("costs were not fetched yet")

	// External service errors
	ErrProviderUnavailable = errors.New("provider request failed")

	// Database errors
	ErrDatabaseOperation = errors.New("database operation error")
	ErrGenerateID        = errors.New("error generating id")
)

// CollectError carries the API code of a failed collection or cost fetch.
type CollectError struct {
	Err      error
	Code     string
	Provider string
	Details  string
}

func (e *CollectError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CollectError) Unwrap() error {
	return e.Err
}

func NewCollectError(err error, code string, provider string, details string) *CollectError {
	return &CollectError{
		Err:      err,
		Code:     code,
		Provider: provider,
		Details:  details,
	}
}

// upstreamError classifies a vendor failure: rejected credentials and 4xx
// answers are the caller's problem, everything else is ours.
func upstreamError(err error, provider string) *CollectError {
	if errors.Is(err, integrator.ErrInvalidCredentials) {
		return NewCollectError(ErrInvalidCredentials, apiErrors.ErrMissingRequiredData, provider, err.Error())
	}

	var httpErr *utils.HTTPError
	if errors.As(err, &httpErr) && httpErr.IsClientError() {
		return NewCollectError(ErrUpstreamRejected, apiErrors.ErrUpstreamRejected, provider, err.Error())
	}

	return NewCollectError(ErrProviderUnavailable, apiErrors.ErrExternalService, provider, err.Error())
}
