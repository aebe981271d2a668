package kpi

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
)

func productionRow(year, month int, equipment *string, unproductive, produced, withoutDefects *float64) domain.RawMonthlyRecord {
	return domain.RawMonthlyRecord{
		Year:  year,
		Month: month,
		Production: &domain.ProductionData{
			HoursWorked:           f(100),
			HoursUnproductive:     unproductive,
			UnitsProduced:         produced,
			UnitsWithoutDefects:   withoutDefects,
			EquipmentWithFailures: equipment,
		},
	}
}

func TestMeanByYear(t *testing.T) {
	derived := []domain.DerivedMetrics{
		{Year: 2023, Month: 1, AvailabilityPct: f(80)},
		{Year: 2023, Month: 2, AvailabilityPct: f(90)},
		{Year: 2023, Month: 3, AvailabilityPct: f(95)},
		{Year: 2024, Month: 1, AvailabilityPct: f(70)},
		{Year: 2024, Month: 2, AvailabilityPct: nil},
		{Year: 2025, Month: 1, AvailabilityPct: nil},
	}

	result := AvailabilityByYear(derived)

	require.Len(t, result, 3)
	assert.Equal(t, 2023, result[0].Year)
	assert.Equal(t, MetricAvailabilityPct, result[0].Metric)
	assert.Equal(t, 88.33, *result[0].Mean)
	assert.Equal(t, 3, result[0].Samples)

	assert.Equal(t, 2024, result[1].Year)
	assert.Equal(t, 70.0, *result[1].Mean)
	assert.Equal(t, 1, result[1].Samples)

	assert.Equal(t, 2025, result[2].Year)
	assert.Nil(t, result[2].Mean)
	assert.Equal(t, 0, result[2].Samples)
}

func TestMeanByYear_SortsYears(t *testing.T) {
	derived := []domain.DerivedMetrics{
		{Year: 2024, ServiceLevelPct: f(90)},
		{Year: 2022, ServiceLevelPct: f(85)},
		{Year: 2024, ServiceLevelPct: f(95)},
	}

	result := ServiceLevelByYear(derived)

	require.Len(t, result, 2)
	assert.Equal(t, 2022, result[0].Year)
	assert.Equal(t, 2024, result[1].Year)
	assert.Equal(t, 92.5, *result[1].Mean)
	assert.Equal(t, MetricServiceLevelPct, result[1].Metric)
}

func TestDefectFreeByYear_WeightedDiffersFromMeanOfPercentages(t *testing.T) {
	records := []domain.RawMonthlyRecord{
		productionRow(2023, 1, nil, nil, f(100), f(90)),  // 90%
		productionRow(2023, 2, nil, nil, f(900), f(450)), // 50%
		productionRow(2024, 1, nil, nil, f(200), f(200)), // 100%
		productionRow(2024, 2, nil, nil, f(800), f(400)), // 50%
	}

	result := DefectFreeByYear(records)
	require.Len(t, result, 2)

	naiveMeans := map[int]float64{}
	perRecord := DeriveAll(records)
	for _, year := range []int{2023, 2024} {
		sum, count := 0.0, 0
		for _, d := range perRecord {
			if d.Year == year {
				sum += *d.PctUnitsWithoutDefects
				count++
			}
		}
		naiveMeans[year] = sum / float64(count)
	}

	assert.Equal(t, 2023, result[0].Year)
	assert.Equal(t, 540.0, result[0].UnitsWithoutDefects)
	assert.Equal(t, 1000.0, result[0].UnitsProduced)
	assert.Equal(t, 54.0, *result[0].Pct)
	assert.Equal(t, 70.0, naiveMeans[2023])
	assert.NotEqual(t, naiveMeans[2023], *result[0].Pct)

	assert.Equal(t, 2024, result[1].Year)
	assert.Equal(t, 60.0, *result[1].Pct)
	assert.Equal(t, 75.0, naiveMeans[2024])
	assert.NotEqual(t, naiveMeans[2024], *result[1].Pct)
}

func TestDefectFreeByYear_NoProduction(t *testing.T) {
	result := DefectFreeByYear([]domain.RawMonthlyRecord{
		{Year: 2024, Month: 1},
		productionRow(2024, 2, nil, nil, f(0), f(0)),
	})

	require.Len(t, result, 1)
	assert.Equal(t, 0.0, result[0].UnitsProduced)
	assert.Nil(t, result[0].Pct)
}

func TestFailuresByEquipment_Scenario(t *testing.T) {
	records := []domain.RawMonthlyRecord{
		productionRow(2024, 1, s("A"), f(10), f(100), f(90)),
		productionRow(2024, 2, s("B"), f(4), f(200), f(150)),
		productionRow(2024, 3, s("A"), f(20), f(100), f(80)),
	}

	result := FailuresByEquipment(records)

	require.Len(t, result, 2)
	assert.Equal(t, "A", *result[0].EquipmentWithFailures)
	assert.Equal(t, 2, result[0].TotalFailures)
	assert.Equal(t, 66.67, result[0].SharePct)
	assert.Equal(t, 15.0, *result[0].AvgHoursUnproductive)
	assert.Equal(t, 85.0, *result[0].AvgPctUnitsWithoutDefects)

	assert.Equal(t, "B", *result[1].EquipmentWithFailures)
	assert.Equal(t, 1, result[1].TotalFailures)
	assert.Equal(t, 33.33, result[1].SharePct)
	assert.Equal(t, 4.0, *result[1].AvgHoursUnproductive)
	assert.Equal(t, 75.0, *result[1].AvgPctUnitsWithoutDefects)
}

func TestFailuresByEquipment_StableOnTies(t *testing.T) {
	records := []domain.RawMonthlyRecord{
		productionRow(2024, 1, s("Torno"), f(1), f(10), f(10)),
		productionRow(2024, 2, s("Fresa"), f(1), f(10), f(10)),
		productionRow(2024, 3, s("Prensa"), f(1), f(10), f(10)),
		productionRow(2024, 4, s("Fresa"), f(1), f(10), f(10)),
		productionRow(2024, 5, nil, f(1), f(10), f(10)),
	}

	result := FailuresByEquipment(records)

	require.Len(t, result, 4)
	assert.Equal(t, "Fresa", *result[0].EquipmentWithFailures)
	assert.Equal(t, "Torno", *result[1].EquipmentWithFailures)
	assert.Equal(t, "Prensa", *result[2].EquipmentWithFailures)
	assert.Nil(t, result[3].EquipmentWithFailures)
	assert.Equal(t, 1, result[3].TotalFailures)
}

func TestFailuresByEquipment_SkipsNullsInMeans(t *testing.T) {
	records := []domain.RawMonthlyRecord{
		productionRow(2024, 1, s("A"), nil, f(0), f(0)),
		productionRow(2024, 2, s("A"), f(6), f(50), f(25)),
		{Year: 2024, Month: 3},
	}

	result := FailuresByEquipment(records)

	require.Len(t, result, 1)
	assert.Equal(t, 2, result[0].TotalFailures)
	assert.Equal(t, 100.0, result[0].SharePct)
	assert.Equal(t, 6.0, *result[0].AvgHoursUnproductive)
	assert.Equal(t, 50.0, *result[0].AvgPctUnitsWithoutDefects)
}

func TestRecentUnitCost(t *testing.T) {
	derived := []domain.DerivedMetrics{
		{Year: 2023, Month: 11, UnitProductionCost: f(9)},
		{Year: 2023, Month: 12, UnitProductionCost: f(10)},
		{Year: 2024, Month: 1, UnitProductionCost: f(11)},
		{Year: 2024, Month: 2, UnitProductionCost: f(12)},
		{Year: 2024, Month: 3, UnitProductionCost: nil},
	}

	result := RecentUnitCost(derived, 2)
	require.Len(t, result, 2)
	assert.Equal(t, domain.MonthlyValue{Year: 2024, Month: 2, Value: f(12)}, result[0])
	assert.Equal(t, 3, result[1].Month)
	assert.Nil(t, result[1].Value)

	result = RecentUnitCost(derived, 4)
	assert.Len(t, result, 3)

	assert.Empty(t, RecentUnitCost(derived, 0))
}

func TestLateDeliveries(t *testing.T) {
	records := []domain.RawMonthlyRecord{
		{Year: 2024, Month: 1, Logistics: &domain.LogisticsData{DeliveryTimeDays: f(3)}},
		{Year: 2024, Month: 2, Logistics: &domain.LogisticsData{DeliveryTimeDays: f(4)}},
		{Year: 2024, Month: 3, Logistics: &domain.LogisticsData{DeliveryTimeDays: f(5.5)}},
		{Year: 2024, Month: 4},
	}

	result := LateDeliveries(records, 4)

	require.Len(t, result, 1)
	assert.Equal(t, 3, result[0].Month)
	assert.Equal(t, 5.5, *result[0].Value)
}

func TestAggregates_EmptyInput(t *testing.T) {
	assert.Equal(t, []domain.YearlyMean{}, AvailabilityByYear(nil))
	assert.Equal(t, []domain.YearlyMean{}, ServiceLevelByYear([]domain.DerivedMetrics{}))
	assert.Equal(t, []domain.YearlyWeightedRatio{}, DefectFreeByYear(nil))
	assert.Equal(t, []domain.EquipmentFailureSummary{}, FailuresByEquipment(nil))
	assert.Equal(t, []domain.MonthlyValue{}, RecentUnitCost(nil, 4))
	assert.Equal(t, []domain.MonthlyValue{}, LateDeliveries(nil, 4))
}

func TestConcurrentInvocationsDoNotInterfere(t *testing.T) {
	records := []domain.RawMonthlyRecord{
		fullRecord(),
		productionRow(2024, 4, s("A"), f(10), f(100), f(90)),
		productionRow(2024, 5, s("B"), f(20), f(300), f(240)),
		productionRow(2025, 1, s("A"), f(5), f(50), f(49)),
	}

	wantDashboard := Dashboard(records)
	wantFailures := FailuresByEquipment(records)
	wantDefects := DefectFreeByYear(records)
	wantAvailability := AvailabilityByYear(DeriveAll(records))

	const workers = 32
	wg := sync.WaitGroup{}
	wg.Add(workers)

	dashboards := make([][]domain.DashboardKPI, workers)
	failures := make([][]domain.EquipmentFailureSummary, workers)
	defects := make([][]domain.YearlyWeightedRatio, workers)
	availability := make([][]domain.YearlyMean, workers)

	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			dashboards[i] = Dashboard(records)
			failures[i] = FailuresByEquipment(records)
			defects[i] = DefectFreeByYear(records)
			availability[i] = AvailabilityByYear(DeriveAll(records))
		}(i)
	}

	wg.Wait()

	for i := 0; i < workers; i++ {
		assert.Equal(t, wantDashboard, dashboards[i])
		assert.Equal(t, wantFailures, failures[i])
		assert.Equal(t, wantDefects, defects[i])
		assert.Equal(t, wantAvailability, availability[i])
	}
}

func TestMeanByYear_NonFiniteSumIsNull(t *testing.T) {
	records := []domain.DerivedMetrics{
		{Year: 2024, Month: 1, AvailabilityPct: f(math.MaxFloat64)},
		{Year: 2024, Month: 2, AvailabilityPct: f(math.MaxFloat64)},
	}

	var result []domain.YearlyMean
	require.NotPanics(t, func() { result = AvailabilityByYear(records) })
	require.Len(t, result, 1)
	assert.Nil(t, result[0].Mean)
}
