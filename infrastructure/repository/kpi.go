package repository

//go:generate mockgen -source=kpi.go -destination=mocks/kpi_repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/database"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
)

const (
	timeTable       = "tiempo t"
	productionTable = "produccion"
	qualityTable    = "calidad"
	logisticsTable  = "logistica"
	salesTable      = "ventas"
)

type KPIRepository interface {
	ListMonthlyRecords(ctx context.Context, filters domain.KPIFilters) ([]domain.RawMonthlyRecord, error)
	ListProductionRows(ctx context.Context, filters domain.KPIFilters) ([]domain.RawMonthlyRecord, error)
	ListAvailablePeriods(ctx context.Context) (*domain.AvailablePeriods, error)
	ListAmbiguousMonths(ctx context.Context) ([]domain.AmbiguousMonth, error)
}

type kpiRepository struct {
	conn database.Conn
}

func NewKPIRepository(conn database.Conn) KPIRepository {
	return &kpiRepository{
		conn: conn,
	}
}

func (r *kpiRepository) ListMonthlyRecords(ctx context.Context, filters domain.KPIFilters) ([]domain.RawMonthlyRecord, error) {
	times, err := r.listTimes(ctx, filters)
	if err != nil {
		return nil, err
	}

	if len(times) == 0 {
		return []domain.RawMonthlyRecord{}, nil
	}

	ids := make([]int64, 0, len(times))
	for _, t := range times {
		ids = append(ids, t.ID)
	}

	production, err := r.listProduction(ctx, ids)
	if err != nil {
		return nil, err
	}

	quality, err := r.listQuality(ctx, ids)
	if err != nil {
		return nil, err
	}

	logistics, err := r.listLogistics(ctx, ids)
	if err != nil {
		return nil, err
	}

	sales, err := r.listSales(ctx, ids)
	if err != nil {
		return nil, err
	}

	return JoinMonthly(times, production, quality, logistics, sales), nil
}

func (r *kpiRepository) ListProductionRows(ctx context.Context, filters domain.KPIFilters) ([]domain.RawMonthlyRecord, error) {
	query, args, err := applyFilters(
		squirrel.
			Select("t.anio", "t.mes", "p.horas_produccion", "p.horas_improductivas", "p.unidades_producidas",
				"p.costo_total_produccion", "p.unidades_sin_defectos", "p.equipo_con_fallas").
			From(productionTable+" p").
			Join("tiempo t ON t.id_tiempo = p.id_tiempo"),
		filters,
	).
		OrderBy("t.anio ASC", "t.mes ASC", "p.id_produccion ASC").
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query de produção: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar linhas de produção: %w", err)
	}
	defer rows.Close()

	records := make([]domain.RawMonthlyRecord, 0)
	for rows.Next() {
		var record domain.RawMonthlyRecord
		var data productionColumns
		if err := rows.Scan(&record.Year, &record.Month, &data.hoursWorked, &data.hoursUnproductive,
			&data.unitsProduced, &data.totalCost, &data.withoutDefects, &data.equipment); err != nil {
			return nil, fmt.Errorf("erro ao escanear linha de produção: %w", err)
		}
		production := data.toDomain()
		record.Production = &production
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *kpiRepository) ListAvailablePeriods(ctx context.Context) (*domain.AvailablePeriods, error) {
	times, err := r.listTimes(ctx, domain.KPIFilters{})
	if err != nil {
		return nil, err
	}

	periods := make([]domain.Period, 0, len(times))
	for _, t := range times {
		periods = append(periods, domain.Period{Year: t.Year, Month: t.Month})
	}

	return BuildAvailablePeriods(periods), nil
}

func (r *kpiRepository) ListAmbiguousMonths(ctx context.Context) ([]domain.AmbiguousMonth, error) {
	tables := []struct {
		name  string
		table string
	}{
		{domain.DomainProduction, productionTable},
		{domain.DomainQuality, qualityTable},
		{domain.DomainLogistics, logisticsTable},
		{domain.DomainSales, salesTable},
	}

	findings := make([]domain.AmbiguousMonth, 0)
	for _, tb := range tables {
		query, args, err := squirrel.
			Select("t.anio", "t.mes", "COUNT(*)").
			From(tb.table + " d").
			Join("tiempo t ON t.id_tiempo = d.id_tiempo").
			GroupBy("t.anio", "t.mes").
			Having("COUNT(*) > 1").
			OrderBy("t.anio ASC", "t.mes ASC").
			PlaceholderFormat(r.conn.Placeholder()).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("erro ao construir a query de auditoria (%s): %w", tb.table, err)
		}

		rows, err := r.conn.Query(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("erro ao auditar tabela %s: %w", tb.table, err)
		}

		for rows.Next() {
			finding := domain.AmbiguousMonth{Domain: tb.name}
			if err := rows.Scan(&finding.Year, &finding.Month, &finding.Rows); err != nil {
				rows.Close()
				return nil, fmt.Errorf("erro ao escanear auditoria (%s): %w", tb.table, err)
			}
			findings = append(findings, finding)
		}

		err = rows.Err()
		rows.Close()
		if err != nil {
			return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
		}
	}

	return findings, nil
}

func (r *kpiRepository) listTimes(ctx context.Context, filters domain.KPIFilters) ([]TimeRow, error) {
	query, args, err := applyFilters(
		squirrel.Select("t.id_tiempo", "t.anio", "t.mes").From(timeTable),
		filters,
	).
		OrderBy("t.anio ASC", "t.mes ASC").
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query de períodos: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar períodos: %w", err)
	}
	defer rows.Close()

	times := make([]TimeRow, 0)
	for rows.Next() {
		var t TimeRow
		if err := rows.Scan(&t.ID, &t.Year, &t.Month); err != nil {
			return nil, fmt.Errorf("erro ao escanear período: %w", err)
		}
		times = append(times, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return times, nil
}

func (r *kpiRepository) listProduction(ctx context.Context, ids []int64) ([]ProductionRow, error) {
	result := make([]ProductionRow, 0)
	err := r.queryByTimeIDs(ctx, productionTable, "id_produccion", ids,
		[]string{"id_tiempo", "horas_produccion", "horas_improductivas", "unidades_producidas",
			"costo_total_produccion", "unidades_sin_defectos", "equipo_con_fallas"},
		func(rows *sql.Rows) error {
			var row ProductionRow
			var data productionColumns
			if err := rows.Scan(&row.TimeID, &data.hoursWorked, &data.hoursUnproductive, &data.unitsProduced,
				&data.totalCost, &data.withoutDefects, &data.equipment); err != nil {
				return err
			}
			row.Data = data.toDomain()
			result = append(result, row)
			return nil
		})
	return result, err
}

func (r *kpiRepository) listQuality(ctx context.Context, ids []int64) ([]QualityRow, error) {
	result := make([]QualityRow, 0)
	err := r.queryByTimeIDs(ctx, qualityTable, "id_calidad", ids,
		[]string{"id_tiempo", "productos_inspeccionados", "productos_no_conformes", "reclamos_recibidos",
			"tiempo_resolucion_horas"},
		func(rows *sql.Rows) error {
			var row QualityRow
			var inspected, nonconforming, complaints, hours sql.NullFloat64
			if err := rows.Scan(&row.TimeID, &inspected, &nonconforming, &complaints, &hours); err != nil {
				return err
			}
			row.Data = domain.QualityData{
				UnitsInspected:       nullFloat(inspected),
				UnitsNonconforming:   nullFloat(nonconforming),
				ComplaintsReceived:   nullFloat(complaints),
				ResolutionHoursTotal: nullFloat(hours),
			}
			result = append(result, row)
			return nil
		})
	return result, err
}

func (r *kpiRepository) listLogistics(ctx context.Context, ids []int64) ([]LogisticsRow, error) {
	result := make([]LogisticsRow, 0)
	err := r.queryByTimeIDs(ctx, logisticsTable, "id_logistica", ids,
		[]string{"id_tiempo", "total_pedidos", "pedidos_entregados_a_tiempo", "tiempo_entrega_dias",
			"unidades_enviadas", "costo_logistico_total"},
		func(rows *sql.Rows) error {
			var row LogisticsRow
			var orders, onTime, days, shipped, cost sql.NullFloat64
			if err := rows.Scan(&row.TimeID, &orders, &onTime, &days, &shipped, &cost); err != nil {
				return err
			}
			row.Data = domain.LogisticsData{
				TotalOrders:        nullFloat(orders),
				OrdersOnTime:       nullFloat(onTime),
				DeliveryTimeDays:   nullFloat(days),
				UnitsShipped:       nullFloat(shipped),
				TotalLogisticsCost: nullFloat(cost),
			}
			result = append(result, row)
			return nil
		})
	return result, err
}

func (r *kpiRepository) listSales(ctx context.Context, ids []int64) ([]SalesRow, error) {
	result := make([]SalesRow, 0)
	err := r.queryByTimeIDs(ctx, salesTable, "id_venta", ids,
		[]string{"id_tiempo", "ventas_totales", "costo_ventas", "unidades_vendidas", "clientes_activos",
			"nuevos_clientes"},
		func(rows *sql.Rows) error {
			var row SalesRow
			var total, cost, sold, active, newCustomers sql.NullFloat64
			if err := rows.Scan(&row.TimeID, &total, &cost, &sold, &active, &newCustomers); err != nil {
				return err
			}
			row.Data = domain.SalesData{
				TotalSales:      nullFloat(total),
				SalesCost:       nullFloat(cost),
				UnitsSold:       nullFloat(sold),
				ActiveCustomers: nullFloat(active),
				NewCustomers:    nullFloat(newCustomers),
			}
			result = append(result, row)
			return nil
		})
	return result, err
}

// queryByTimeIDs busca as linhas de uma tabela de domínio dos períodos informados,
// ordenadas por período e id da linha
func (r *kpiRepository) queryByTimeIDs(
	ctx context.Context,
	table, idColumn string,
	ids []int64,
	columns []string,
	scan func(*sql.Rows) error,
) error {
	query, args, err := squirrel.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id_tiempo": ids}).
		OrderBy("id_tiempo ASC", idColumn+" ASC").
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query (%s): %w", table, err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao buscar dados de %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return fmt.Errorf("erro ao escanear linha de %s: %w", table, err)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("erro durante a iteração de linhas (%s): %w", table, err)
	}

	return nil
}

func applyFilters(builder squirrel.SelectBuilder, filters domain.KPIFilters) squirrel.SelectBuilder {
	if len(filters.Years) > 0 {
		builder = builder.Where(squirrel.Eq{"t.anio": filters.Years})
	}
	if filters.Year != nil {
		builder = builder.Where(squirrel.Eq{"t.anio": *filters.Year})
	}
	if filters.Month != nil {
		builder = builder.Where(squirrel.Eq{"t.mes": *filters.Month})
	}
	return builder
}

// BuildAvailablePeriods ordena os períodos e extrai anos e meses únicos
func BuildAvailablePeriods(periods []domain.Period) *domain.AvailablePeriods {
	sorted := make([]domain.Period, 0, len(periods))
	seen := make(map[domain.Period]bool)
	years := make(map[int]bool)
	months := make(map[int]bool)

	for _, p := range periods {
		if seen[p] {
			continue
		}
		seen[p] = true
		sorted = append(sorted, p)
		years[p.Year] = true
		months[p.Month] = true
	}

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Year != sorted[j].Year {
			return sorted[i].Year < sorted[j].Year
		}
		return sorted[i].Month < sorted[j].Month
	})

	return &domain.AvailablePeriods{
		Periods: sorted,
		Years:   sortedKeys(years),
		Months:  sortedKeys(months),
	}
}

func sortedKeys(m map[int]bool) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
