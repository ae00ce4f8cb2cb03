package handler

import (
	"net/http"

	"github.com/vfg2006/cloud-cost-api/internal/domain"
	"github.com/vfg2006/cloud-cost-api/internal/usecases/collecting"
)

// CollectResources refreshes the resource summaries of the provider.
func CollectResources(service collecting.Collector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		provider, ok := providerParam(w, r)
		if !ok {
			return
		}

		summaries, err := service.CollectResources(r.Context(), userID, provider)
		if err != nil {
			writeUseCaseError(w, r, err, "Error collecting resources")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success":   true,
			"resources": nonNilSummaries(summaries),
		})
	})
}

func ListResources(service collecting.Collector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		provider, ok := providerParam(w, r)
		if !ok {
			return
		}

		summaries, err := service.ListResources(r.Context(), userID, provider)
		if err != nil {
			writeUseCaseError(w, r, err, "Error listing resources")
			return
		}

		writeJSON(w, http.StatusOK, nonNilSummaries(summaries))
	})
}

func nonNilSummaries(summaries []*domain.ResourceSummary) []*domain.ResourceSummary {
	if summaries == nil {
		return []*domain.ResourceSummary{}
	}
	return summaries
}
