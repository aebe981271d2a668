package handler

import (
	"bytes"
	"net/http"
	"sort"
	"strconv"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
	"github.com/vfg2006/kpi-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/kpi-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/kpi-dashboard-api/pkg/log"
	"github.com/vfg2006/kpi-dashboard-api/pkg/utils"
)

const (
	MetricLatestValue  = "kpi_dashboard_latest_value"
	MetricLatestPeriod = "kpi_dashboard_latest_period"
	MetricGoal         = "kpi_dashboard_goal"
)

// Metrics expõe os indicadores do mês mais recente e as metas no formato texto do Prometheus
func Metrics(service reporting.Reporter, targets reporting.TargetsProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context()).WithField("endpoint", "metrics")

		latest, err := service.GetLatestDashboard(r.Context())
		if err != nil {
			logger.WithError(err).Error("erro ao buscar indicadores do último mês")
			writeServiceError(w, err)
			return
		}

		families := BuildMetricFamilies(latest, targets.Current().Goals)

		var buf bytes.Buffer
		for _, mf := range families {
			if _, err := expfmt.MetricFamilyToText(&buf, mf); err != nil {
				logger.WithError(err).Error("erro ao codificar métricas")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar métricas", nil)
				return
			}
		}

		w.Header().Set("Content-Type", string(expfmt.NewFormat(expfmt.TypeTextPlain)))
		if _, err := w.Write(buf.Bytes()); err != nil {
			logger.WithError(err).Warn("erro ao escrever métricas")
		}
	})
}

// BuildMetricFamilies monta as famílias de gauges. Indicadores nulos não geram amostra.
func BuildMetricFamilies(latest *domain.DashboardKPI, goals map[string]float64) []*dto.MetricFamily {
	families := make([]*dto.MetricFamily, 0, 3)

	if latest != nil {
		values := &dto.MetricFamily{
			Name: utils.StringPtr(MetricLatestValue),
			Help: utils.StringPtr("Valor do indicador no mês mais recente com dados"),
			Type: dto.MetricType_GAUGE.Enum(),
		}
		for _, item := range dashboardValues(latest) {
			if item.value == nil {
				continue
			}
			values.Metric = append(values.Metric, gauge(*item.value, labelPair("metric", item.name)))
		}
		if len(values.Metric) > 0 {
			families = append(families, values)
		}

		families = append(families, &dto.MetricFamily{
			Name: utils.StringPtr(MetricLatestPeriod),
			Help: utils.StringPtr("Período do mês mais recente com dados"),
			Type: dto.MetricType_GAUGE.Enum(),
			Metric: []*dto.Metric{
				gauge(1,
					labelPair("month", strconv.Itoa(latest.Month)),
					labelPair("year", strconv.Itoa(latest.Year)),
				),
			},
		})
	}

	if len(goals) > 0 {
		names := make([]string, 0, len(goals))
		for name := range goals {
			names = append(names, name)
		}
		sort.Strings(names)

		goalFamily := &dto.MetricFamily{
			Name: utils.StringPtr(MetricGoal),
			Help: utils.StringPtr("Meta configurada para o indicador"),
			Type: dto.MetricType_GAUGE.Enum(),
		}
		for _, name := range names {
			goalFamily.Metric = append(goalFamily.Metric, gauge(goals[name], labelPair("metric", name)))
		}
		families = append(families, goalFamily)
	}

	return families
}

type namedValue struct {
	name  string
	value *float64
}

func dashboardValues(d *domain.DashboardKPI) []namedValue {
	return []namedValue{
		{"availability_pct", d.AvailabilityPct},
		{"unit_production_cost", d.UnitProductionCost},
		{"units_produced", d.UnitsProduced},
		{"pct_units_without_defects", d.PctUnitsWithoutDefects},
		{"pct_nonconforming", d.PctNonconforming},
		{"avg_resolution_hours", d.AvgResolutionHours},
		{"service_level_pct", d.ServiceLevelPct},
		{"delivery_time_days", d.DeliveryTimeDays},
		{"logistics_cost_per_unit", d.LogisticsCostPerUnit},
		{"total_sales", d.TotalSales},
		{"margin_pct", d.MarginPct},
		{"avg_unit_price", d.AvgUnitPrice},
		{"customer_growth_pct", d.CustomerGrowthPct},
		{"sales_per_active_customer", d.SalesPerActiveCustomer},
	}
}

func gauge(value float64, labels ...*dto.LabelPair) *dto.Metric {
	return &dto.Metric{
		Label: labels,
		Gauge: &dto.Gauge{Value: utils.Float64Ptr(value)},
	}
}

func labelPair(name, value string) *dto.LabelPair {
	return &dto.LabelPair{Name: utils.StringPtr(name), Value: utils.StringPtr(value)}
}
