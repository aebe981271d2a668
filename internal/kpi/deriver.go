// Package kpi calcula os indicadores derivados a partir dos registros mensais brutos.
// Todas as funções são puras: não fazem I/O e não compartilham estado entre chamadas.
package kpi

import (
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
	"github.com/vfg2006/kpi-dashboard-api/pkg/utils"
)

// Derive calcula os indicadores de um único mês. Domínios ausentes são tratados como vazios,
// então os indicadores que dependem deles ficam nil.
func Derive(r domain.RawMonthlyRecord) domain.DerivedMetrics {
	prod := r.ProductionOrEmpty()
	cal := r.QualityOrEmpty()
	lg := r.LogisticsOrEmpty()
	sale := r.SalesOrEmpty()

	return domain.DerivedMetrics{
		Year:  r.Year,
		Month: r.Month,

		AvailabilityPct:    percent(difference(prod.HoursWorked, prod.HoursUnproductive), prod.HoursWorked),
		UnitProductionCost: ratio(prod.TotalProductionCost, prod.UnitsProduced),

		PctUnitsWithoutDefects: percent(prod.UnitsWithoutDefects, prod.UnitsProduced),
		PctNonconforming:       percent(cal.UnitsNonconforming, cal.UnitsInspected),
		AvgResolutionHours:     ratio(cal.ResolutionHoursTotal, cal.ComplaintsReceived),

		ServiceLevelPct:      percent(lg.OrdersOnTime, lg.TotalOrders),
		LogisticsCostPerUnit: ratio(lg.TotalLogisticsCost, lg.UnitsShipped),

		MarginPct:              percent(difference(sale.TotalSales, sale.SalesCost), sale.TotalSales),
		AvgUnitPrice:           ratio(sale.TotalSales, sale.UnitsSold),
		CustomerGrowthPct:      percent(sale.NewCustomers, sale.ActiveCustomers),
		SalesPerActiveCustomer: ratio(sale.TotalSales, sale.ActiveCustomers),
	}
}

// DeriveAll aplica Derive a cada registro mantendo a ordem de entrada
func DeriveAll(records []domain.RawMonthlyRecord) []domain.DerivedMetrics {
	result := make([]domain.DerivedMetrics, 0, len(records))
	for _, r := range records {
		result = append(result, Derive(r))
	}
	return result
}

func ProjectProduction(r domain.RawMonthlyRecord, d domain.DerivedMetrics) domain.ProductionKPI {
	prod := r.ProductionOrEmpty()
	return domain.ProductionKPI{
		Year:                  r.Year,
		Month:                 r.Month,
		HoursWorked:           prod.HoursWorked,
		HoursUnproductive:     prod.HoursUnproductive,
		AvailabilityPct:       d.AvailabilityPct,
		UnitProductionCost:    d.UnitProductionCost,
		UnitsProduced:         prod.UnitsProduced,
		EquipmentWithFailures: prod.EquipmentWithFailures,
	}
}

func ProjectQuality(r domain.RawMonthlyRecord, d domain.DerivedMetrics) domain.QualityKPI {
	prod := r.ProductionOrEmpty()
	return domain.QualityKPI{
		Year:                   r.Year,
		Month:                  r.Month,
		EquipmentWithFailures:  prod.EquipmentWithFailures,
		UnitsProduced:          prod.UnitsProduced,
		PctUnitsWithoutDefects: d.PctUnitsWithoutDefects,
		PctNonconforming:       d.PctNonconforming,
		AvgResolutionHours:     d.AvgResolutionHours,
	}
}

func ProjectLogistics(r domain.RawMonthlyRecord, d domain.DerivedMetrics) domain.LogisticsKPI {
	lg := r.LogisticsOrEmpty()
	return domain.LogisticsKPI{
		Year:                 r.Year,
		Month:                r.Month,
		TotalOrders:          lg.TotalOrders,
		OrdersOnTime:         lg.OrdersOnTime,
		ServiceLevelPct:      d.ServiceLevelPct,
		DeliveryTimeDays:     lg.DeliveryTimeDays,
		LogisticsCostPerUnit: d.LogisticsCostPerUnit,
	}
}

func ProjectSales(r domain.RawMonthlyRecord, d domain.DerivedMetrics) domain.SalesKPI {
	sale := r.SalesOrEmpty()
	return domain.SalesKPI{
		Year:                   r.Year,
		Month:                  r.Month,
		TotalSales:             sale.TotalSales,
		UnitsSold:              sale.UnitsSold,
		MarginPct:              d.MarginPct,
		AvgUnitPrice:           d.AvgUnitPrice,
		CustomerGrowthPct:      d.CustomerGrowthPct,
		SalesPerActiveCustomer: d.SalesPerActiveCustomer,
	}
}

func ProjectDashboard(r domain.RawMonthlyRecord, d domain.DerivedMetrics) domain.DashboardKPI {
	prod := r.ProductionOrEmpty()
	lg := r.LogisticsOrEmpty()
	sale := r.SalesOrEmpty()

	return domain.DashboardKPI{
		Year:  r.Year,
		Month: r.Month,

		AvailabilityPct:       d.AvailabilityPct,
		UnitProductionCost:    d.UnitProductionCost,
		UnitsProduced:         prod.UnitsProduced,
		EquipmentWithFailures: prod.EquipmentWithFailures,

		PctUnitsWithoutDefects: d.PctUnitsWithoutDefects,
		PctNonconforming:       d.PctNonconforming,
		AvgResolutionHours:     d.AvgResolutionHours,

		ServiceLevelPct:      d.ServiceLevelPct,
		DeliveryTimeDays:     lg.DeliveryTimeDays,
		LogisticsCostPerUnit: d.LogisticsCostPerUnit,

		TotalSales:             sale.TotalSales,
		MarginPct:              d.MarginPct,
		AvgUnitPrice:           d.AvgUnitPrice,
		CustomerGrowthPct:      d.CustomerGrowthPct,
		SalesPerActiveCustomer: d.SalesPerActiveCustomer,
	}
}

func Production(records []domain.RawMonthlyRecord) []domain.ProductionKPI {
	return project(records, ProjectProduction)
}

func Quality(records []domain.RawMonthlyRecord) []domain.QualityKPI {
	return project(records, ProjectQuality)
}

func Logistics(records []domain.RawMonthlyRecord) []domain.LogisticsKPI {
	return project(records, ProjectLogistics)
}

func Sales(records []domain.RawMonthlyRecord) []domain.SalesKPI {
	return project(records, ProjectSales)
}

func Dashboard(records []domain.RawMonthlyRecord) []domain.DashboardKPI {
	return project(records, ProjectDashboard)
}

func project[T any](records []domain.RawMonthlyRecord, fn func(domain.RawMonthlyRecord, domain.DerivedMetrics) T) []T {
	result := make([]T, 0, len(records))
	for _, r := range records {
		result = append(result, fn(r, Derive(r)))
	}
	return result
}

// falsy replica a guarda original: zero e ausente são tratados da mesma forma
func falsy(v *float64) bool {
	return v == nil || *v == 0
}

// ratio e percent devolvem nil quando o quociente não é finito (valores extremos, Infinity ou NaN vindos do banco)
func ratio(num, den *float64) *float64 {
	if falsy(den) || num == nil {
		return nil
	}
	return utils.RoundedPtr(*num / *den)
}

func percent(num, den *float64) *float64 {
	if falsy(den) || num == nil {
		return nil
	}
	return utils.RoundedPtr((*num / *den) * 100)
}

func difference(a, b *float64) *float64 {
	if a == nil || b == nil {
		return nil
	}
	return utils.Float64Ptr(*a - *b)
}
