package recommending

import (
	"errors"
	"fmt"
)

var (
	// Validation errors
	ErrInvalidResource  = errors.New("invalid resource")
	ErrNoAnalysisData   = errors.New("no cost or resource data to analyze")
	ErrUpstreamRejected = errors.New("text generation request rejected")

	// Configuration errors
	ErrMissingConfig = errors.New("text generation is not configured")

	// External service errors
	ErrGeneration = errors.New("text generation failed")

	// Database errors
	ErrDatabaseOperation = errors.New("database operation error")
)

// RecommendationError carries the API code of a failed recommendation run.
type RecommendationError struct {
	Err     error
	Code    string
	Details string
}

func (e *RecommendationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *RecommendationError) Unwrap() error {
	return e.Err
}

func NewRecommendationError(err error, code string, details string) *RecommendationError {
	return &RecommendationError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
