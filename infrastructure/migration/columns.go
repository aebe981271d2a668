package migration

import "github.com/vfg2006/kpi-dashboard-api/internal/domain"

const timeTable = "tiempo"

type column struct {
	field string // nome do campo no CSV e no RawMonthlyRecord
	name  string // nome da coluna no banco
	text  bool
}

type domainTable struct {
	domain  string
	table   string
	idName  string
	columns []column
}

var domainTables = []domainTable{
	{
		domain: domain.DomainProduction,
		table:  "produccion",
		idName: "id_produccion",
		columns: []column{
			{field: "hours_worked", name: "horas_produccion"},
			{field: "hours_unproductive", name: "horas_improductivas"},
			{field: "units_produced", name: "unidades_producidas"},
			{field: "total_production_cost", name: "costo_total_produccion"},
			{field: "units_without_defects", name: "unidades_sin_defectos"},
			{field: "equipment_with_failures", name: "equipo_con_fallas", text: true},
		},
	},
	{
		domain: domain.DomainQuality,
		table:  "calidad",
		idName: "id_calidad",
		columns: []column{
			{field: "units_inspected", name: "productos_inspeccionados"},
			{field: "units_nonconforming", name: "productos_no_conformes"},
			{field: "complaints_received", name: "reclamos_recibidos"},
			{field: "resolution_hours_total", name: "tiempo_resolucion_horas"},
		},
	},
	{
		domain: domain.DomainLogistics,
		table:  "logistica",
		idName: "id_logistica",
		columns: []column{
			{field: "total_orders", name: "total_pedidos"},
			{field: "orders_on_time", name: "pedidos_entregados_a_tiempo"},
			{field: "delivery_time_days", name: "tiempo_entrega_dias"},
			{field: "units_shipped", name: "unidades_enviadas"},
			{field: "total_logistics_cost", name: "costo_logistico_total"},
		},
	},
	{
		domain: domain.DomainSales,
		table:  "ventas",
		idName: "id_venta",
		columns: []column{
			{field: "total_sales", name: "ventas_totales"},
			{field: "sales_cost", name: "costo_ventas"},
			{field: "units_sold", name: "unidades_vendidas"},
			{field: "active_customers", name: "clientes_activos"},
			{field: "new_customers", name: "nuevos_clientes"},
		},
	},
}

// TimeID é a chave do período na tabela tiempo: 202403 para março de 2024
func TimeID(year, month int) int64 {
	return int64(year*100 + month)
}

// domainValues devolve os valores do domínio na ordem de columns, ou nil quando o domínio está ausente
func domainValues(record domain.RawMonthlyRecord, name string) []any {
	switch name {
	case domain.DomainProduction:
		if p := record.Production; p != nil {
			return []any{p.HoursWorked, p.HoursUnproductive, p.UnitsProduced, p.TotalProductionCost,
				p.UnitsWithoutDefects, p.EquipmentWithFailures}
		}
	case domain.DomainQuality:
		if q := record.Quality; q != nil {
			return []any{q.UnitsInspected, q.UnitsNonconforming, q.ComplaintsReceived, q.ResolutionHoursTotal}
		}
	case domain.DomainLogistics:
		if l := record.Logistics; l != nil {
			return []any{l.TotalOrders, l.OrdersOnTime, l.DeliveryTimeDays, l.UnitsShipped, l.TotalLogisticsCost}
		}
	case domain.DomainSales:
		if s := record.Sales; s != nil {
			return []any{s.TotalSales, s.SalesCost, s.UnitsSold, s.ActiveCustomers, s.NewCustomers}
		}
	}
	return nil
}
