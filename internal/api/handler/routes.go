package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/cloud-cost-api/internal/api/handler/router"
	"github.com/vfg2006/cloud-cost-api/internal/usecases/collecting"
	"github.com/vfg2006/cloud-cost-api/internal/usecases/connecting"
	"github.com/vfg2006/cloud-cost-api/internal/usecases/recommending"
	"github.com/vfg2006/cloud-cost-api/pkg/middleware"
	"golang.org/x/time/rate"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Connections(service connecting.ConnectionService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/connections",
			Method:  http.MethodGet,
			Handler: ListConnections(service),
		},
		{
			Path:    "/v1/connections/:provider",
			Method:  http.MethodPut,
			Handler: Connect(service),
		},
		{
			Path:    "/v1/connections/:provider",
			Method:  http.MethodDelete,
			Handler: Disconnect(service),
		},
	}
}

func Resources(service collecting.Collector) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/providers/:provider/resources/collect",
			Method:  http.MethodPost,
			Handler: CollectResources(service),
		},
		{
			Path:    "/v1/providers/:provider/resources",
			Method:  http.MethodGet,
			Handler: ListResources(service),
		},
	}
}

func Costs(service collecting.Collector) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/providers/:provider/costs/fetch",
			Method:  http.MethodPost,
			Handler: FetchCosts(service),
		},
		{
			Path:    "/v1/providers/:provider/costs",
			Method:  http.MethodGet,
			Handler: GetCosts(service),
		},
	}
}

// Recommendations shares limiter between both generation routes.
func Recommendations(service recommending.Recommender, limiter *rate.Limiter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/providers/:provider/recommendations/resource",
			Method:      http.MethodPost,
			Handler:     GenerateResourceRecommendations(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RateLimit(limiter)},
		},
		{
			Path:        "/v1/providers/:provider/recommendations/analyze",
			Method:      http.MethodPost,
			Handler:     AnalyzeRecommendations(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RateLimit(limiter)},
		},
		{
			Path:    "/v1/recommendations",
			Method:  http.MethodGet,
			Handler: ListRecommendations(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
