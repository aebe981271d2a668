package domain

// YearlyMean é a média simples de um indicador derivado dentro de um ano
type YearlyMean struct {
	Year    int      `json:"year"`
	Metric  string   `json:"metric"`
	Mean    *float64 `json:"mean"`
	Samples int      `json:"samples"` // Registros com valor não nulo que entraram na média
}

// YearlyWeightedRatio é a razão ponderada Σnumerador / Σdenominador de um ano
type YearlyWeightedRatio struct {
	Year                int      `json:"year"`
	UnitsWithoutDefects float64  `json:"units_without_defects"`
	UnitsProduced       float64  `json:"units_produced"`
	Pct                 *float64 `json:"pct"`
}

// EquipmentFailureSummary resume as ocorrências de falha de um equipamento
type EquipmentFailureSummary struct {
	EquipmentWithFailures     *string  `json:"equipment_with_failures"`
	TotalFailures             int      `json:"total_failures"`
	AvgHoursUnproductive      *float64 `json:"avg_hours_unproductive"`
	AvgPctUnitsWithoutDefects *float64 `json:"avg_pct_units_without_defects"`
	SharePct                  float64  `json:"share_pct"`
}

// MonthlyValue é um valor pontual de um indicador em um mês
type MonthlyValue struct {
	Year  int      `json:"year"`
	Month int      `json:"month"`
	Value *float64 `json:"value"`
}
