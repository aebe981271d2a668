package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
	"github.com/vfg2006/kpi-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/kpi-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/kpi-dashboard-api/pkg/log"
)

// kpiHandler lê os filtros, chama o serviço e devolve a lista como JSON
func kpiHandler[T any](endpoint string, fetch func(ctx context.Context, filters domain.KPIFilters) ([]T, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context()).WithField("endpoint", endpoint)

		filters, err := parseKPIFilters(r)
		if err != nil {
			logger.WithError(err).Warn("filtros inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		result, err := fetch(r.Context(), filters)
		if err != nil {
			logger.WithError(err).Error("erro ao calcular indicadores")
			writeServiceError(w, err)
			return
		}

		logger.WithField("records", len(result)).Debug("indicadores calculados")
		writeJSON(w, logger, http.StatusOK, result)
	})
}

func GetDashboard(service reporting.Reporter) http.Handler {
	return kpiHandler("kpis-dashboard", service.GetDashboard)
}

func GetProduction(service reporting.Reporter) http.Handler {
	return kpiHandler("kpis-production", service.GetProduction)
}

func GetQuality(service reporting.Reporter) http.Handler {
	return kpiHandler("kpis-quality", service.GetQuality)
}

func GetLogistics(service reporting.Reporter) http.Handler {
	return kpiHandler("kpis-logistics", service.GetLogistics)
}

func GetSales(service reporting.Reporter) http.Handler {
	return kpiHandler("kpis-sales", service.GetSales)
}

func GetFailuresByEquipment(service reporting.Reporter) http.Handler {
	return kpiHandler("kpis-failures-by-equipment", service.GetFailuresByEquipment)
}

func GetAvailabilityByYear(service reporting.Reporter) http.Handler {
	return kpiHandler("aggregates-availability-by-year", service.GetAvailabilityByYear)
}

func GetServiceLevelByYear(service reporting.Reporter) http.Handler {
	return kpiHandler("aggregates-service-level-by-year", service.GetServiceLevelByYear)
}

func GetDefectFreeByYear(service reporting.Reporter) http.Handler {
	return kpiHandler("aggregates-defect-free-by-year", service.GetDefectFreeByYear)
}

// GetRecentUnitCost aceita ?months=N, sem o parâmetro vale a meta configurada
func GetRecentUnitCost(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		months, err := parsePositiveInt(r, "months")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		kpiHandler("aggregates-recent-unit-cost", func(ctx context.Context, filters domain.KPIFilters) ([]domain.MonthlyValue, error) {
			return service.GetRecentUnitCost(ctx, filters, months)
		}).ServeHTTP(w, r)
	})
}

// GetLateDeliveries aceita ?threshold_days=D, sem o parâmetro vale a meta configurada
func GetLateDeliveries(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		threshold, err := parseOptionalFloat(r, "threshold_days")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		kpiHandler("aggregates-late-deliveries", func(ctx context.Context, filters domain.KPIFilters) ([]domain.MonthlyValue, error) {
			return service.GetLateDeliveries(ctx, filters, threshold)
		}).ServeHTTP(w, r)
	})
}

// GetAvailablePeriods retorna os períodos (meses e anos) disponíveis no banco
func GetAvailablePeriods(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context()).WithField("endpoint", "kpis-periods")

		periods, err := service.GetAvailablePeriods(r.Context())
		if err != nil {
			logger.WithError(err).Error("erro ao buscar períodos disponíveis")
			writeServiceError(w, err)
			return
		}

		logger.WithField("records", len(periods.Periods)).Debug("períodos disponíveis recuperados")
		writeJSON(w, logger, http.StatusOK, periods)
	})
}
