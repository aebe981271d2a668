package reporting

//go:generate mockgen -source=interfaces.go -destination=mocks/reporter_mock.go -package=mocks

import (
	"context"

	"github.com/vfg2006/kpi-dashboard-api/internal/config"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
)

// Reporter expõe os indicadores mensais e as agregações consumidas pelo painel
type Reporter interface {
	// GetDashboard devolve a visão combinada de todos os domínios, um item por mês
	GetDashboard(ctx context.Context, filters domain.KPIFilters) ([]domain.DashboardKPI, error)
	GetProduction(ctx context.Context, filters domain.KPIFilters) ([]domain.ProductionKPI, error)
	GetQuality(ctx context.Context, filters domain.KPIFilters) ([]domain.QualityKPI, error)
	GetLogistics(ctx context.Context, filters domain.KPIFilters) ([]domain.LogisticsKPI, error)
	GetSales(ctx context.Context, filters domain.KPIFilters) ([]domain.SalesKPI, error)

	// GetFailuresByEquipment agrupa todas as linhas de produção pelo equipamento com falhas
	GetFailuresByEquipment(ctx context.Context, filters domain.KPIFilters) ([]domain.EquipmentFailureSummary, error)

	GetAvailabilityByYear(ctx context.Context, filters domain.KPIFilters) ([]domain.YearlyMean, error)
	GetServiceLevelByYear(ctx context.Context, filters domain.KPIFilters) ([]domain.YearlyMean, error)
	GetDefectFreeByYear(ctx context.Context, filters domain.KPIFilters) ([]domain.YearlyWeightedRatio, error)

	// GetRecentUnitCost usa a quantidade de meses das metas quando months <= 0
	GetRecentUnitCost(ctx context.Context, filters domain.KPIFilters, months int) ([]domain.MonthlyValue, error)

	// GetLateDeliveries usa o limite das metas quando thresholdDays é nil
	GetLateDeliveries(ctx context.Context, filters domain.KPIFilters, thresholdDays *float64) ([]domain.MonthlyValue, error)

	GetAvailablePeriods(ctx context.Context) (*domain.AvailablePeriods, error)

	// GetLatestDashboard devolve o mês mais recente, ou nil quando não há dados
	GetLatestDashboard(ctx context.Context) (*domain.DashboardKPI, error)
}

// TargetsProvider fornece as metas atuais dos indicadores
type TargetsProvider interface {
	Current() config.KPITargets
}
