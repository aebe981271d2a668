package reporting

import (
	"context"
	"fmt"

	"github.com/vfg2006/kpi-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
	"github.com/vfg2006/kpi-dashboard-api/internal/kpi"
	"github.com/vfg2006/kpi-dashboard-api/pkg/log"
)

type Service struct {
	kpiRepository repository.KPIRepository
	targets       TargetsProvider
}

func NewService(kpiRepository repository.KPIRepository, targets TargetsProvider) Reporter {
	return &Service{
		kpiRepository: kpiRepository,
		targets:       targets,
	}
}

// ValidateFilters garante que mês só seja usado junto com ano e dentro de 1..12
func ValidateFilters(filters domain.KPIFilters) error {
	if filters.Month != nil && filters.Year == nil {
		return fmt.Errorf("%w: mês informado sem ano", ErrInvalidFilters)
	}

	if filters.Month != nil && (*filters.Month < 1 || *filters.Month > 12) {
		return fmt.Errorf("%w: mês fora do intervalo 1-12: %d", ErrInvalidFilters, *filters.Month)
	}

	return nil
}

// monthlyRecords busca os registros unidos por mês. Erros do repositório voltam sem alteração.
func (s *Service) monthlyRecords(ctx context.Context, filters domain.KPIFilters) ([]domain.RawMonthlyRecord, error) {
	if err := ValidateFilters(filters); err != nil {
		return nil, err
	}

	records, err := s.kpiRepository.ListMonthlyRecords(ctx, filters)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar registros mensais")
		return nil, err
	}

	log.ForContext(ctx).WithField("records", len(records)).Debug("Registros mensais carregados")

	return records, nil
}

func (s *Service) GetDashboard(ctx context.Context, filters domain.KPIFilters) ([]domain.DashboardKPI, error) {
	records, err := s.monthlyRecords(ctx, filters)
	if err != nil {
		return nil, err
	}
	return kpi.Dashboard(records), nil
}

func (s *Service) GetProduction(ctx context.Context, filters domain.KPIFilters) ([]domain.ProductionKPI, error) {
	records, err := s.monthlyRecords(ctx, filters)
	if err != nil {
		return nil, err
	}
	return kpi.Production(records), nil
}

func (s *Service) GetQuality(ctx context.Context, filters domain.KPIFilters) ([]domain.QualityKPI, error) {
	records, err := s.monthlyRecords(ctx, filters)
	if err != nil {
		return nil, err
	}
	return kpi.Quality(records), nil
}

func (s *Service) GetLogistics(ctx context.Context, filters domain.KPIFilters) ([]domain.LogisticsKPI, error) {
	records, err := s.monthlyRecords(ctx, filters)
	if err != nil {
		return nil, err
	}
	return kpi.Logistics(records), nil
}

func (s *Service) GetSales(ctx context.Context, filters domain.KPIFilters) ([]domain.SalesKPI, error) {
	records, err := s.monthlyRecords(ctx, filters)
	if err != nil {
		return nil, err
	}
	return kpi.Sales(records), nil
}

func (s *Service) GetFailuresByEquipment(ctx context.Context, filters domain.KPIFilters) ([]domain.EquipmentFailureSummary, error) {
	if err := ValidateFilters(filters); err != nil {
		return nil, err
	}

	rows, err := s.kpiRepository.ListProductionRows(ctx, filters)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar linhas de produção")
		return nil, err
	}

	return kpi.FailuresByEquipment(rows), nil
}

func (s *Service) GetAvailabilityByYear(ctx context.Context, filters domain.KPIFilters) ([]domain.YearlyMean, error) {
	records, err := s.monthlyRecords(ctx, filters)
	if err != nil {
		return nil, err
	}
	return kpi.AvailabilityByYear(kpi.DeriveAll(records)), nil
}

func (s *Service) GetServiceLevelByYear(ctx context.Context, filters domain.KPIFilters) ([]domain.YearlyMean, error) {
	records, err := s.monthlyRecords(ctx, filters)
	if err != nil {
		return nil, err
	}
	return kpi.ServiceLevelByYear(kpi.DeriveAll(records)), nil
}

func (s *Service) GetDefectFreeByYear(ctx context.Context, filters domain.KPIFilters) ([]domain.YearlyWeightedRatio, error) {
	records, err := s.monthlyRecords(ctx, filters)
	if err != nil {
		return nil, err
	}
	return kpi.DefectFreeByYear(records), nil
}

func (s *Service) GetRecentUnitCost(ctx context.Context, filters domain.KPIFilters, months int) ([]domain.MonthlyValue, error) {
	if months <= 0 {
		months = s.targets.Current().RecentUnitCostMonths
	}

	records, err := s.monthlyRecords(ctx, filters)
	if err != nil {
		return nil, err
	}
	return kpi.RecentUnitCost(kpi.DeriveAll(records), months), nil
}

func (s *Service) GetLateDeliveries(ctx context.Context, filters domain.KPIFilters, thresholdDays *float64) ([]domain.MonthlyValue, error) {
	var threshold float64
	if thresholdDays != nil {
		threshold = *thresholdDays
	} else {
		threshold = s.targets.Current().LateDeliveryDays
	}

	records, err := s.monthlyRecords(ctx, filters)
	if err != nil {
		return nil, err
	}
	return kpi.LateDeliveries(records, threshold), nil
}

func (s *Service) GetAvailablePeriods(ctx context.Context) (*domain.AvailablePeriods, error) {
	periods, err := s.kpiRepository.ListAvailablePeriods(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar períodos disponíveis")
		return nil, err
	}
	return periods, nil
}

func (s *Service) GetLatestDashboard(ctx context.Context) (*domain.DashboardKPI, error) {
	records, err := s.monthlyRecords(ctx, domain.KPIFilters{})
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, nil
	}

	latest := records[len(records)-1]
	dashboard := kpi.ProjectDashboard(latest, kpi.Derive(latest))
	return &dashboard, nil
}
