package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Authentication (AUTH)
	ErrMissingToken          = "AUTH_001"
	ErrInvalidToken          = "AUTH_002"
	ErrExpiredToken          = "AUTH_003"
	ErrInsufficientPrivilege = "AUTH_004"

	// Validation (VAL)
	ErrInvalidRequest      = "VAL_001"
	ErrMissingRequiredData = "VAL_002"
	ErrInvalidFormat       = "VAL_003"
	ErrUnknownProvider     = "VAL_004"
	ErrConnectionNotFound  = "VAL_005"
	ErrUpstreamRejected    = "VAL_006" // vendor or model rejected the request (4xx)
	ErrNotFound            = "VAL_007"

	// Server (SRV)
	ErrInternalServer     = "SRV_001"
	ErrDatabaseOperation  = "SRV_002"
	ErrExternalService    = "SRV_003"
	ErrMissingConfig      = "SRV_004"
	ErrRateLimitExceeded  = "SRV_005"
	ErrServiceUnavailable = "SRV_006"
)

var httpStatusMap = map[string]int{
	ErrMissingToken:          http.StatusUnauthorized,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrUnknownProvider:       http.StatusBadRequest,
	ErrConnectionNotFound:    http.StatusBadRequest,
	ErrUpstreamRejected:      http.StatusBadRequest,
	ErrNotFound:              http.StatusNotFound,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusInternalServerError,
	ErrMissingConfig:         http.StatusInternalServerError,
	ErrRateLimitExceeded:     http.StatusTooManyRequests,
	ErrServiceUnavailable:    http.StatusServiceUnavailable,
}

// APIError is the body of every error response.
type APIError struct {
	Message string `json:"error"`
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

func (e APIError) Error() string {
	return e.Message
}

// Status returns the HTTP status for code, 500 for unknown codes.
func Status(code string) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// WriteError writes the standard error body for code.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(Status(code))
	_ = json.NewEncoder(w).Encode(apiErr)
}
