package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/vfg2006/cloud-cost-api/internal/domain"
	"github.com/vfg2006/cloud-cost-api/internal/usecases/recommending"
	"github.com/vfg2006/cloud-cost-api/pkg/apiErrors"
)

type resourceRecommendationRequest struct {
	Resource *domain.ResourceInput `json:"resource"`
}

type recommendationsResponse struct {
	Success         bool                     `json:"success"`
	Recommendations []*domain.Recommendation `json:"recommendations"`
}

func writeRecommendations(w http.ResponseWriter, recommendations []*domain.Recommendation) {
	if recommendations == nil {
		recommendations = []*domain.Recommendation{}
	}

	writeJSON(w, http.StatusOK, recommendationsResponse{
		Success:         true,
		Recommendations: recommendations,
	})
}

// GenerateResourceRecommendations analyzes the single resource in the body and
// replaces the caller's recommendations for the provider.
func GenerateResourceRecommendations(service recommending.Recommender) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		provider, ok := providerParam(w, r)
		if !ok {
			return
		}

		var req resourceRecommendationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body: "+err.Error(), nil)
			return
		}

		if req.Resource == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "resource is required", nil)
			return
		}

		recommendations, err := service.GenerateForResource(r.Context(), userID, provider, *req.Resource)
		if err != nil {
			writeUseCaseError(w, r, err, "Error generating recommendations")
			return
		}

		writeRecommendations(w, recommendations)
	})
}

// AnalyzeRecommendations runs the bulk analysis. An empty body analyzes the
// stored resource summaries and cost snapshot instead.
func AnalyzeRecommendations(service recommending.Recommender) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		provider, ok := providerParam(w, r)
		if !ok {
			return
		}

		var input domain.AnalysisInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil && !errors.Is(err, io.EOF) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body: "+err.Error(), nil)
			return
		}

		recommendations, err := service.GenerateFromAnalysis(r.Context(), userID, provider, input)
		if err != nil {
			writeUseCaseError(w, r, err, "Error generating recommendations")
			return
		}

		writeRecommendations(w, recommendations)
	})
}

// ListRecommendations returns the caller's recommendations, optionally
// filtered by the provider query parameter.
func ListRecommendations(service recommending.Recommender) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		var filter *domain.Provider
		if raw := r.URL.Query().Get("provider"); raw != "" {
			provider, err := domain.ParseProvider(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrUnknownProvider, err.Error(), nil)
				return
			}
			filter = &provider
		}

		recommendations, err := service.ListRecommendations(r.Context(), userID, filter)
		if err != nil {
			writeUseCaseError(w, r, err, "Error listing recommendations")
			return
		}

		writeRecommendations(w, recommendations)
	})
}
