package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/cloud-cost-api/internal/domain"
	"github.com/vfg2006/cloud-cost-api/internal/usecases/collecting"
	"github.com/vfg2006/cloud-cost-api/internal/usecases/connecting"
	"github.com/vfg2006/cloud-cost-api/internal/usecases/recommending"
	"github.com/vfg2006/cloud-cost-api/pkg/apiErrors"
	"github.com/vfg2006/cloud-cost-api/pkg/log"
	"github.com/vfg2006/cloud-cost-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("Failed to encode response")
	}
}

// currentUser returns the token subject, writing a 401 when there is none.
func currentUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok || claims.UserID() == "" {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "User is not authenticated", nil)
		return "", false
	}
	return claims.UserID(), true
}

// providerParam reads the :provider path parameter, writing a 400 when it is unknown.
func providerParam(w http.ResponseWriter, r *http.Request) (domain.Provider, bool) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("provider")

	provider, err := domain.ParseProvider(raw)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrUnknownProvider, err.Error(), map[string]any{
			"supported": domain.Providers,
		})
		return "", false
	}
	return provider, true
}

// writeUseCaseError maps a use case error to its API code. Errors without a
// code become fallbackMessage with a 500.
func writeUseCaseError(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string) {
	logger := log.ForContext(r.Context()).WithError(err)

	var (
		recommendationErr *recommending.RecommendationError
		collectErr        *collecting.CollectError
		connectionErr     *connecting.ConnectionError
	)

	switch {
	case errors.As(err, &recommendationErr):
		logUseCaseError(logger, recommendationErr.Code)
		apiErrors.WriteError(w, recommendationErr.Code, recommendationErr.Error(), nil)

	case errors.As(err, &collectErr):
		logUseCaseError(logger, collectErr.Code)
		apiErrors.WriteError(w, collectErr.Code, collectErr.Error(), providerDetails(collectErr.Provider))

	case errors.As(err, &connectionErr):
		logUseCaseError(logger, connectionErr.Code)
		apiErrors.WriteError(w, connectionErr.Code, connectionErr.Error(), providerDetails(connectionErr.Provider))

	default:
		logger.Error(fallbackMessage)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallbackMessage, nil)
	}
}

func logUseCaseError(logger log.Logger, code string) {
	if apiErrors.Status(code) >= http.StatusInternalServerError {
		logger.Error("Request failed")
		return
	}
	logger.Warn("Request rejected")
}

func providerDetails(provider string) map[string]any {
	if provider == "" {
		return nil
	}
	return map[string]any{"provider": provider}
}
