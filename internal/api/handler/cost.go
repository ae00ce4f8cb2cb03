package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/vfg2006/cloud-cost-api/internal/domain"
	"github.com/vfg2006/cloud-cost-api/internal/usecases/collecting"
	"github.com/vfg2006/cloud-cost-api/pkg/apiErrors"
	"github.com/vfg2006/cloud-cost-api/pkg/utils"
)

const defaultCostLookbackDays = 30

// FetchCosts pulls the daily costs of the from..to period (YYYY-MM-DD, both
// inclusive). Missing bounds default to the last 30 days.
func FetchCosts(service collecting.Collector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		provider, ok := providerParam(w, r)
		if !ok {
			return
		}

		period, err := costPeriod(r, time.Now())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid period, expected from <= to as YYYY-MM-DD: "+err.Error(), nil)
			return
		}

		snapshot, err := service.FetchCosts(r.Context(), userID, provider, period)
		if err != nil {
			writeUseCaseError(w, r, err, "Error fetching costs")
			return
		}

		writeJSON(w, http.StatusOK, snapshot)
	})
}

func GetCosts(service collecting.Collector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		provider, ok := providerParam(w, r)
		if !ok {
			return
		}

		snapshot, err := service.GetCosts(r.Context(), userID, provider)
		if err != nil {
			writeUseCaseError(w, r, err, "Error reading costs")
			return
		}

		writeJSON(w, http.StatusOK, snapshot)
	})
}

func costPeriod(r *http.Request, now time.Time) (domain.CostPeriod, error) {
	period := domain.LastDays(now, defaultCostLookbackDays)

	from, err := utils.ParseDate(r.URL.Query().Get("from"))
	if err != nil {
		return domain.CostPeriod{}, err
	}

	to, err := utils.ParseDate(r.URL.Query().Get("to"))
	if err != nil {
		return domain.CostPeriod{}, err
	}

	if from != nil {
		period.Start = *from
	}
	if to != nil {
		period.End = *to
	}

	if period.Start.After(period.End) {
		return domain.CostPeriod{}, fmt.Errorf("from %s is after to %s",
			period.Start.Format(time.DateOnly), period.End.Format(time.DateOnly))
	}

	return period, nil
}
