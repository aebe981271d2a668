package kpi

import (
	"sort"

	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
	"github.com/vfg2006/kpi-dashboard-api/pkg/utils"
)

// Nomes dos indicadores usados nas agregações por ano
const (
	MetricAvailabilityPct = "availability_pct"
	MetricServiceLevelPct = "service_level_pct"
)

type meanAccumulator struct {
	sum   float64
	count int
}

// MeanByYear calcula a média simples de um indicador por ano, ignorando valores nil.
// Um ano sem nenhum valor aparece com Mean nil. Resultado em ordem crescente de ano.
func MeanByYear(metric string, records []domain.DerivedMetrics, value func(domain.DerivedMetrics) *float64) []domain.YearlyMean {
	byYear := make(map[int]*meanAccumulator)
	years := make([]int, 0)

	for _, r := range records {
		acc, exists := byYear[r.Year]
		if !exists {
			acc = &meanAccumulator{}
			byYear[r.Year] = acc
			years = append(years, r.Year)
		}

		if v := value(r); v != nil {
			acc.sum += *v
			acc.count++
		}
	}

	sort.Ints(years)

	result := make([]domain.YearlyMean, 0, len(years))
	for _, year := range years {
		acc := byYear[year]
		result = append(result, domain.YearlyMean{
			Year:    year,
			Metric:  metric,
			Mean:    mean(acc.sum, acc.count),
			Samples: acc.count,
		})
	}

	return result
}

// AvailabilityByYear é a média simples de availability_pct por ano
func AvailabilityByYear(records []domain.DerivedMetrics) []domain.YearlyMean {
	return MeanByYear(MetricAvailabilityPct, records, func(d domain.DerivedMetrics) *float64 {
		return d.AvailabilityPct
	})
}

// ServiceLevelByYear é a média simples de service_level_pct por ano
func ServiceLevelByYear(records []domain.DerivedMetrics) []domain.YearlyMean {
	return MeanByYear(MetricServiceLevelPct, records, func(d domain.DerivedMetrics) *float64 {
		return d.ServiceLevelPct
	})
}

// DefectFreeByYear calcula Σ unidades sem defeito / Σ unidades produzidas por ano.
// É uma média ponderada pelo volume, não a média dos percentuais mensais.
func DefectFreeByYear(records []domain.RawMonthlyRecord) []domain.YearlyWeightedRatio {
	byYear := make(map[int]*domain.YearlyWeightedRatio)
	years := make([]int, 0)

	for _, r := range records {
		acc, exists := byYear[r.Year]
		if !exists {
			acc = &domain.YearlyWeightedRatio{Year: r.Year}
			byYear[r.Year] = acc
			years = append(years, r.Year)
		}

		prod := r.ProductionOrEmpty()
		if prod.UnitsWithoutDefects == nil || prod.UnitsProduced == nil {
			continue
		}

		acc.UnitsWithoutDefects += *prod.UnitsWithoutDefects
		acc.UnitsProduced += *prod.UnitsProduced
	}

	sort.Ints(years)

	result := make([]domain.YearlyWeightedRatio, 0, len(years))
	for _, year := range years {
		acc := byYear[year]
		acc.Pct = percent(&acc.UnitsWithoutDefects, &acc.UnitsProduced)
		result = append(result, *acc)
	}

	return result
}

type equipmentAccumulator struct {
	label             *string
	count             int
	unproductiveHours meanAccumulator
	pctWithoutDefects meanAccumulator
}

// FailuresByEquipment agrupa as linhas de produção pelo equipamento com falhas.
// Ordena por quantidade de ocorrências decrescente; empates mantêm a ordem de aparição.
func FailuresByEquipment(records []domain.RawMonthlyRecord) []domain.EquipmentFailureSummary {
	groups := make([]*equipmentAccumulator, 0)
	index := make(map[string]*equipmentAccumulator)
	var nullGroup *equipmentAccumulator
	total := 0

	for _, r := range records {
		if r.Production == nil {
			continue
		}
		prod := *r.Production

		var acc *equipmentAccumulator
		if prod.EquipmentWithFailures == nil {
			if nullGroup == nil {
				nullGroup = &equipmentAccumulator{}
				groups = append(groups, nullGroup)
			}
			acc = nullGroup
		} else {
			acc = index[*prod.EquipmentWithFailures]
			if acc == nil {
				acc = &equipmentAccumulator{label: prod.EquipmentWithFailures}
				index[*prod.EquipmentWithFailures] = acc
				groups = append(groups, acc)
			}
		}

		acc.count++
		total++

		if prod.HoursUnproductive != nil {
			acc.unproductiveHours.sum += *prod.HoursUnproductive
			acc.unproductiveHours.count++
		}

		// Percentual por linha sem arredondamento, como na soma original
		if !falsy(prod.UnitsProduced) && prod.UnitsWithoutDefects != nil {
			acc.pctWithoutDefects.sum += (*prod.UnitsWithoutDefects / *prod.UnitsProduced) * 100
			acc.pctWithoutDefects.count++
		}
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].count > groups[j].count
	})

	result := make([]domain.EquipmentFailureSummary, 0, len(groups))
	for _, g := range groups {
		result = append(result, domain.EquipmentFailureSummary{
			EquipmentWithFailures:     g.label,
			TotalFailures:             g.count,
			AvgHoursUnproductive:      mean(g.unproductiveHours.sum, g.unproductiveHours.count),
			AvgPctUnitsWithoutDefects: mean(g.pctWithoutDefects.sum, g.pctWithoutDefects.count),
			SharePct:                  utils.RoundWithTwoDecimalPlace(float64(g.count) / float64(total) * 100),
		})
	}

	return result
}

// RecentUnitCost devolve os últimos n meses do ano mais recente com o custo unitário de produção
func RecentUnitCost(records []domain.DerivedMetrics, n int) []domain.MonthlyValue {
	result := make([]domain.MonthlyValue, 0)
	if len(records) == 0 || n <= 0 {
		return result
	}

	latestYear := records[0].Year
	for _, r := range records {
		if r.Year > latestYear {
			latestYear = r.Year
		}
	}

	for _, r := range records {
		if r.Year != latestYear {
			continue
		}
		result = append(result, domain.MonthlyValue{Year: r.Year, Month: r.Month, Value: r.UnitProductionCost})
	}

	if len(result) > n {
		result = result[len(result)-n:]
	}

	return result
}

// LateDeliveries devolve os meses com tempo de entrega estritamente maior que o limite em dias
func LateDeliveries(records []domain.RawMonthlyRecord, thresholdDays float64) []domain.MonthlyValue {
	result := make([]domain.MonthlyValue, 0)
	for _, r := range records {
		lg := r.LogisticsOrEmpty()
		if lg.DeliveryTimeDays == nil || *lg.DeliveryTimeDays <= thresholdDays {
			continue
		}
		result = append(result, domain.MonthlyValue{Year: r.Year, Month: r.Month, Value: lg.DeliveryTimeDays})
	}
	return result
}

func mean(sum float64, count int) *float64 {
	if count == 0 {
		return nil
	}
	return utils.RoundedPtr(sum / float64(count))
}
