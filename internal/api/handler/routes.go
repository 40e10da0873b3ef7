package handler

import (
	"net/http"

	"github.com/brislydeals/deals-pipeline/internal/api/handler/router"
	"github.com/brislydeals/deals-pipeline/internal/usecases/reporting"
	"github.com/brislydeals/deals-pipeline/pkg/middleware"
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

func WeeklyReport(service reporting.ReportService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/weekly",
			Method:      http.MethodGet,
			Handler:     GetWeeklySummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.OperatorOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.OperatorOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.OperatorOnly()},
		},
	}
}
