package handler

import (
	"net/http"

	"github.com/vfg2006/ads-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/ads-optimizer-api/internal/api/handler/router"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Recommendations(runRepo repository.OptimizationRunRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts/:id/recommendations/latest",
			Method:  http.MethodGet,
			Handler: GetLatestRecommendations(runRepo),
		},
		{
			Path:    "/v1/accounts/:id/recommendations",
			Method:  http.MethodGet,
			Handler: ListRecommendations(runRepo),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
