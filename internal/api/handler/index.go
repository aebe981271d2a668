package handler

import (
	"net/http"

	"github.com/vfg2006/kpi-dashboard-api/pkg/log"
)

type IndexResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// Index descreve a API e lista os endpoints de indicadores
func Index(version string) http.Handler {
	response := IndexResponse{
		Message: "API de KPIs funcionando corretamente",
		Version: version,
		Endpoints: map[string]string{
			"dashboard":             "/v1/kpis/dashboard",
			"production":            "/v1/kpis/production",
			"quality":               "/v1/kpis/quality",
			"logistics":             "/v1/kpis/logistics",
			"sales":                 "/v1/kpis/sales",
			"failures_by_equipment": "/v1/kpis/failures-by-equipment",
			"periods":               "/v1/kpis/periods",
			"availability_by_year":  "/v1/kpis/aggregates/availability-by-year",
			"service_level_by_year": "/v1/kpis/aggregates/service-level-by-year",
			"defect_free_by_year":   "/v1/kpis/aggregates/defect-free-by-year",
			"recent_unit_cost":      "/v1/kpis/aggregates/recent-unit-cost",
			"late_deliveries":       "/v1/kpis/aggregates/late-deliveries",
			"metrics":               "/metrics",
		},
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, log.ForContext(r.Context()), http.StatusOK, response)
	})
}
