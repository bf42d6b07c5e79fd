package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/campaign-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/campaign-dashboard-api/pkg/metrics"
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

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Dashboard(service dashboarding.Dashboarder, loc *time.Location) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service, loc),
		},
		{
			Path:    "/v1/dashboard/totals",
			Method:  http.MethodGet,
			Handler: GetTotals(service, loc),
		},
		{
			Path:    "/v1/dashboard/top-creatives",
			Method:  http.MethodGet,
			Handler: GetTopCreatives(service, loc),
		},
		{
			Path:    "/v1/dashboard/trends",
			Method:  http.MethodGet,
			Handler: GetTrends(service),
		},
		{
			Path:    "/v1/dashboard/records",
			Method:  http.MethodGet,
			Handler: GetRecords(service, loc),
		},
		{
			Path:    "/v1/dashboard/export",
			Method:  http.MethodGet,
			Handler: ExportDashboard(service, loc),
		},
	}
}

func Dataset(service dashboarding.Dashboarder, reloader Reloader) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/reload",
			Method:  http.MethodPost,
			Handler: ReloadDataset(service, reloader),
		},
		{
			Path:    "/v1/dashboard/status",
			Method:  http.MethodGet,
			Handler: GetDatasetStatus(service, reloader),
		},
	}
}
