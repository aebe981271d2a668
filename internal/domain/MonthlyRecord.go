// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// RawMonthlyRecord representa o registro mensal bruto, com os contadores dos quatro domínios
// unidos pelo período. Qualquer domínio pode estar ausente no mês (ponteiro nil).
type RawMonthlyRecord struct {
	Year       int             `json:"year"`
	Month      int             `json:"month"` // 1-12
	Production *ProductionData `json:"production,omitempty"`
	Quality    *QualityData    `json:"quality,omitempty"`
	Logistics  *LogisticsData  `json:"logistics,omitempty"`
	Sales      *SalesData      `json:"sales,omitempty"`
}

type ProductionData struct {
	HoursWorked           *float64 `json:"hours_worked"`
	HoursUnproductive     *float64 `json:"hours_unproductive"`
	UnitsProduced         *float64 `json:"units_produced"`
	TotalProductionCost   *float64 `json:"total_production_cost"`
	UnitsWithoutDefects   *float64 `json:"units_without_defects"`
	EquipmentWithFailures *string  `json:"equipment_with_failures"`
}

type QualityData struct {
	UnitsInspected       *float64 `json:"units_inspected"`
	UnitsNonconforming   *float64 `json:"units_nonconforming"`
	ComplaintsReceived   *float64 `json:"complaints_received"`
	ResolutionHoursTotal *float64 `json:"resolution_hours_total"`
}

type LogisticsData struct {
	TotalOrders        *float64 `json:"total_orders"`
	OrdersOnTime       *float64 `json:"orders_on_time"`
	DeliveryTimeDays   *float64 `json:"delivery_time_days"`
	UnitsShipped       *float64 `json:"units_shipped"`
	TotalLogisticsCost *float64 `json:"total_logistics_cost"`
}

type SalesData struct {
	TotalSales      *float64 `json:"total_sales"`
	SalesCost       *float64 `json:"sales_cost"`
	UnitsSold       *float64 `json:"units_sold"`
	ActiveCustomers *float64 `json:"active_customers"`
	NewCustomers    *float64 `json:"new_customers"`
}

// ProductionOrEmpty devolve os dados de produção ou um bloco vazio quando o mês não tem produção
func (r RawMonthlyRecord) ProductionOrEmpty() ProductionData {
	if r.Production == nil {
		return ProductionData{}
	}
	return *r.Production
}

func (r RawMonthlyRecord) QualityOrEmpty() QualityData {
	if r.Quality == nil {
		return QualityData{}
	}
	return *r.Quality
}

func (r RawMonthlyRecord) LogisticsOrEmpty() LogisticsData {
	if r.Logistics == nil {
		return LogisticsData{}
	}
	return *r.Logistics
}

func (r RawMonthlyRecord) SalesOrEmpty() SalesData {
	if r.Sales == nil {
		return SalesData{}
	}
	return *r.Sales
}
