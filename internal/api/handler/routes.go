package handler

import (
	"net/http"

	"github.com/vfg2006/retail-sales-insights-api/internal/api/handler/router"
	"github.com/vfg2006/retail-sales-insights-api/internal/config"
	"github.com/vfg2006/retail-sales-insights-api/internal/usecases/analytics"
	"github.com/vfg2006/retail-sales-insights-api/internal/usecases/forecasting"
	"github.com/vfg2006/retail-sales-insights-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Metrics(metricsHandler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metricsHandler,
		},
	}
}

func Forecasts(service forecasting.Forecaster, snapshots SnapshotReader, cfg config.Forecast) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/forecasts",
			Method:      http.MethodGet,
			Handler:     GetForecasts(service, cfg),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/forecasts/export",
			Method:      http.MethodGet,
			Handler:     ExportForecasts(service, cfg),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/forecasts/snapshots/latest",
			Method:      http.MethodGet,
			Handler:     GetLatestSnapshot(snapshots),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Analytics(service analytics.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/analytics/overview",
			Method:      http.MethodGet,
			Handler:     GetSalesOverview(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/monthly-trend",
			Method:      http.MethodGet,
			Handler:     GetMonthlyTrend(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/categories",
			Method:      http.MethodGet,
			Handler:     GetSalesByCategory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/regions",
			Method:      http.MethodGet,
			Handler:     GetSalesByRegion(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/customers/top",
			Method:      http.MethodGet,
			Handler:     GetTopCustomers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/products/top",
			Method:      http.MethodGet,
			Handler:     GetTopProducts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/customers/segments",
			Method:      http.MethodGet,
			Handler:     GetCustomerSegments(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/customers/lifetime-value",
			Method:      http.MethodGet,
			Handler:     GetCustomerLifetimeValue(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/cohorts",
			Method:      http.MethodGet,
			Handler:     GetCohortRetention(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/sales",
			Method:      http.MethodGet,
			Handler:     GetFilteredSales(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
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
