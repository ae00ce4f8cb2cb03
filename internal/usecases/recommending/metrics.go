package recommending

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess          = "success"
	outcomeGenerationError  = "generation_error"
	outcomePersistenceError = "persistence_error"
)

var (
	recommendationRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cloudcost_recommendation_runs_total",
			Help: "Total number of recommendation runs by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	recommendationsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cloudcost_recommendations_generated_total",
			Help: "Total number of recommendations stored",
		},
		[]string{"provider"},
	)
)
