package domain

// DerivedMetrics contém todos os indicadores derivados de um RawMonthlyRecord.
// Um campo nil é serializado como null: denominador zero/ausente ou operando ausente.
type DerivedMetrics struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	// Produção
	AvailabilityPct    *float64 `json:"availability_pct"`
	UnitProductionCost *float64 `json:"unit_production_cost"`

	// Qualidade
	PctUnitsWithoutDefects *float64 `json:"pct_units_without_defects"`
	PctNonconforming       *float64 `json:"pct_nonconforming"`
	AvgResolutionHours     *float64 `json:"avg_resolution_hours"`

	// Logística
	ServiceLevelPct      *float64 `json:"service_level_pct"`
	LogisticsCostPerUnit *float64 `json:"logistics_cost_per_unit"`

	// Vendas
	MarginPct              *float64 `json:"margin_pct"`
	AvgUnitPrice           *float64 `json:"avg_unit_price"`
	CustomerGrowthPct      *float64 `json:"customer_growth_pct"`
	SalesPerActiveCustomer *float64 `json:"sales_per_active_customer"`
}

type ProductionKPI struct {
	Year                  int      `json:"year"`
	Month                 int      `json:"month"`
	HoursWorked           *float64 `json:"hours_worked"`
	HoursUnproductive     *float64 `json:"hours_unproductive"`
	AvailabilityPct       *float64 `json:"availability_pct"`
	UnitProductionCost    *float64 `json:"unit_production_cost"`
	UnitsProduced         *float64 `json:"units_produced"`
	EquipmentWithFailures *string  `json:"equipment_with_failures"`
}

type QualityKPI struct {
	Year                   int      `json:"year"`
	Month                  int      `json:"month"`
	EquipmentWithFailures  *string  `json:"equipment_with_failures"`
	UnitsProduced          *float64 `json:"units_produced"`
	PctUnitsWithoutDefects *float64 `json:"pct_units_without_defects"`
	PctNonconforming       *float64 `json:"pct_nonconforming"`
	AvgResolutionHours     *float64 `json:"avg_resolution_hours"`
}

type LogisticsKPI struct {
	Year                 int      `json:"year"`
	Month                int      `json:"month"`
	TotalOrders          *float64 `json:"total_orders"`
	OrdersOnTime         *float64 `json:"orders_on_time"`
	ServiceLevelPct      *float64 `json:"service_level_pct"`
	DeliveryTimeDays     *float64 `json:"delivery_time_days"`
	LogisticsCostPerUnit *float64 `json:"logistics_cost_per_unit"`
}

type SalesKPI struct {
	Year                   int      `json:"year"`
	Month                  int      `json:"month"`
	TotalSales             *float64 `json:"total_sales"`
	UnitsSold              *float64 `json:"units_sold"`
	MarginPct              *float64 `json:"margin_pct"`
	AvgUnitPrice           *float64 `json:"avg_unit_price"`
	CustomerGrowthPct      *float64 `json:"customer_growth_pct"`
	SalesPerActiveCustomer *float64 `json:"sales_per_active_customer"`
}

// DashboardKPI é a visão combinada de todos os domínios para um mês
type DashboardKPI struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	// Produção
	AvailabilityPct       *float64 `json:"availability_pct"`
	UnitProductionCost    *float64 `json:"unit_production_cost"`
	UnitsProduced         *float64 `json:"units_produced"`
	EquipmentWithFailures *string  `json:"equipment_with_failures"`

	// Qualidade
	PctUnitsWithoutDefects *float64 `json:"pct_units_without_defects"`
	PctNonconforming       *float64 `json:"pct_nonconforming"`
	AvgResolutionHours     *float64 `json:"avg_resolution_hours"`

	// Logística
	ServiceLevelPct      *float64 `json:"service_level_pct"`
	DeliveryTimeDays     *float64 `json:"delivery_time_days"`
	LogisticsCostPerUnit *float64 `json:"logistics_cost_per_unit"`

	// Vendas
	TotalSales             *float64 `json:"total_sales"`
	MarginPct              *float64 `json:"margin_pct"`
	AvgUnitPrice           *float64 `json:"avg_unit_price"`
	CustomerGrowthPct      *float64 `json:"customer_growth_pct"`
	SalesPerActiveCustomer *float64 `json:"sales_per_active_customer"`
}
