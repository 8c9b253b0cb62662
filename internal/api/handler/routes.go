package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/cv-report-api/internal/api/handler/router"
	"github.com/vfg2006/cv-report-api/internal/usecases/analyzing"
	"github.com/vfg2006/cv-report-api/internal/usecases/cvroutes"
	"github.com/vfg2006/cv-report-api/internal/usecases/manualcv"
	"github.com/vfg2006/cv-report-api/internal/usecases/reviewing"
	"github.com/vfg2006/cv-report-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func CVRoutes(service cvroutes.RouteService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cv/routes",
			Method:  http.MethodGet,
			Handler: GetCVRoutes(service),
		},
		{
			Path:    "/v1/cv/routes",
			Method:  http.MethodPost,
			Handler: SaveCVRoutes(service),
		},
	}
}

func ManualCV(service manualcv.ManualCVService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cv/manual",
			Method:  http.MethodGet,
			Handler: GetManualCV(service),
		},
		{
			Path:    "/v1/cv/manual",
			Method:  http.MethodPost,
			Handler: SaveManualCV(service),
		},
	}
}

func CVReview(service reviewing.ReviewService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cv/review",
			Method:  http.MethodGet,
			Handler: GetCVReview(service),
		},
		{
			Path:        "/v1/cv/review/update",
			Method:      http.MethodPost,
			Handler:     UpdateCVReviewRow(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Inspector()},
		},
		{
			Path:        "/v1/cv/review/bulk-update",
			Method:      http.MethodPost,
			Handler:     BulkUpdateCVReview(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Inspector()},
		},
	}
}

func CVAnalysis(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cv/analysis",
			Method:  http.MethodGet,
			Handler: GetCVAnalysis(service),
		},
		{
			Path:    "/v1/cv/allocation",
			Method:  http.MethodGet,
			Handler: GetCVAllocation(service),
		},
		{
			Path:    "/v1/cv/snapshots",
			Method:  http.MethodGet,
			Handler: GetMonthlySnapshots(service),
		},
		{
			Path:    "/v1/cv/snapshots/periods",
			Method:  http.MethodGet,
			Handler: GetAvailablePeriods(service),
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
