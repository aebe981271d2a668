package handler

import (
	"net/http"

	"github.com/vfg2006/kpi-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/kpi-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/kpi-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/kpi-dashboard-api/pkg/middleware"
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

func Root(version string) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: Index(version),
		},
	}
}

func KPIs(service reporting.Reporter) []router.Route {
	return []router.Route{
		{Path: "/v1/kpis/dashboard", Method: http.MethodGet, Handler: GetDashboard(service)},
		{Path: "/v1/kpis/production", Method: http.MethodGet, Handler: GetProduction(service)},
		{Path: "/v1/kpis/quality", Method: http.MethodGet, Handler: GetQuality(service)},
		{Path: "/v1/kpis/logistics", Method: http.MethodGet, Handler: GetLogistics(service)},
		{Path: "/v1/kpis/sales", Method: http.MethodGet, Handler: GetSales(service)},
		{Path: "/v1/kpis/failures-by-equipment", Method: http.MethodGet, Handler: GetFailuresByEquipment(service)},
		{Path: "/v1/kpis/periods", Method: http.MethodGet, Handler: GetAvailablePeriods(service)},
	}
}

func Aggregates(service reporting.Reporter) []router.Route {
	return []router.Route{
		{Path: "/v1/kpis/aggregates/availability-by-year", Method: http.MethodGet, Handler: GetAvailabilityByYear(service)},
		{Path: "/v1/kpis/aggregates/service-level-by-year", Method: http.MethodGet, Handler: GetServiceLevelByYear(service)},
		{Path: "/v1/kpis/aggregates/defect-free-by-year", Method: http.MethodGet, Handler: GetDefectFreeByYear(service)},
		{Path: "/v1/kpis/aggregates/recent-unit-cost", Method: http.MethodGet, Handler: GetRecentUnitCost(service)},
		{Path: "/v1/kpis/aggregates/late-deliveries", Method: http.MethodGet, Handler: GetLateDeliveries(service)},
	}
}

func PrometheusMetrics(service reporting.Reporter, targets reporting.TargetsProvider) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: Metrics(service, targets),
		},
	}
}

func DataAudit(auditor DataAuditor, authenticator authenticating.Authenticator) []router.Route {
	adminOnly := []func(http.Handler) http.Handler{
		middleware.AuthMiddleware(authenticator),
		middleware.AdminOnly(),
	}

	return []router.Route{
		{
			Path:        "/v1/audit/run",
			Method:      http.MethodPost,
			Handler:     RunDataAudit(auditor),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/audit/status",
			Method:      http.MethodGet,
			Handler:     GetDataAuditStatus(auditor),
			Middlewares: adminOnly,
		},
	}
}
