package repository

import (
	"database/sql"

	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
)

// TimeRow é uma linha da tabela tiempo
type TimeRow struct {
	ID    int64
	Year  int
	Month int
}

type ProductionRow struct {
	TimeID int64
	Data   domain.ProductionData
}

type QualityRow struct {
	TimeID int64
	Data   domain.QualityData
}

type LogisticsRow struct {
	TimeID int64
	Data   domain.LogisticsData
}

type SalesRow struct {
	TimeID int64
	Data   domain.SalesData
}

// JoinMonthly monta um registro mensal por linha de tiempo, na ordem recebida.
// Quando um domínio tem mais de uma linha para o mesmo período vale a primeira.
func JoinMonthly(
	times []TimeRow,
	production []ProductionRow,
	quality []QualityRow,
	logistics []LogisticsRow,
	sales []SalesRow,
) []domain.RawMonthlyRecord {
	prodByTime := firstByTime(production, func(r ProductionRow) (int64, domain.ProductionData) { return r.TimeID, r.Data })
	qualityByTime := firstByTime(quality, func(r QualityRow) (int64, domain.QualityData) { return r.TimeID, r.Data })
	logisticsByTime := firstByTime(logistics, func(r LogisticsRow) (int64, domain.LogisticsData) { return r.TimeID, r.Data })
	salesByTime := firstByTime(sales, func(r SalesRow) (int64, domain.SalesData) { return r.TimeID, r.Data })

	records := make([]domain.RawMonthlyRecord, 0, len(times))
	for _, t := range times {
		records = append(records, domain.RawMonthlyRecord{
			Year:       t.Year,
			Month:      t.Month,
			Production: prodByTime[t.ID],
			Quality:    qualityByTime[t.ID],
			Logistics:  logisticsByTime[t.ID],
			Sales:      salesByTime[t.ID],
		})
	}

	return records
}

func firstByTime[R any, D any](rows []R, split func(R) (int64, D)) map[int64]*D {
	result := make(map[int64]*D, len(rows))
	for _, row := range rows {
		timeID, data := split(row)
		if _, exists := result[timeID]; exists {
			continue
		}
		d := data
		result[timeID] = &d
	}
	return result
}

type productionColumns struct {
	hoursWorked       sql.NullFloat64
	hoursUnproductive sql.NullFloat64
	unitsProduced     sql.NullFloat64
	totalCost         sql.NullFloat64
	withoutDefects    sql.NullFloat64
	equipment         sql.NullString
}

func (c productionColumns) toDomain() domain.ProductionData {
	return domain.ProductionData{
		HoursWorked:           nullFloat(c.hoursWorked),
		HoursUnproductive:     nullFloat(c.hoursUnproductive),
		UnitsProduced:         nullFloat(c.unitsProduced),
		TotalProductionCost:   nullFloat(c.totalCost),
		UnitsWithoutDefects:   nullFloat(c.withoutDefects),
		EquipmentWithFailures: nullString(c.equipment),
	}
}

func nullFloat(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}

func nullString(n sql.NullString) *string {
	if !n.Valid {
		return nil
	}
	v := n.String
	return &v
}
