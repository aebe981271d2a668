package migration

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/database"
	"github.com/vfg2006/kpi-dashboard-api/internal/config"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
)

type Statement struct {
	SQL  string
	Args []any
}

// SchemaStatements devolve o DDL das tabelas de período e dos quatro domínios
func SchemaStatements(driver string) []string {
	idType := "SERIAL PRIMARY KEY"
	floatType := "DOUBLE PRECISION"
	if driver == config.DriverMySQL {
		idType = "INT AUTO_INCREMENT PRIMARY KEY"
		floatType = "DOUBLE"
	}

	statements := []string{
		fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (id_tiempo INTEGER PRIMARY KEY, anio INTEGER NOT NULL, mes INTEGER NOT NULL, UNIQUE (anio, mes))", timeTable),
	}

	for _, t := range domainTables {
		defs := []string{
			fmt.Sprintf("%s %s", t.idName, idType),
			"id_tiempo INTEGER NOT NULL",
		}
		for _, c := range t.columns {
			colType := floatType
			if c.text {
				colType = "VARCHAR(255)"
			}
			defs = append(defs, fmt.Sprintf("%s %s", c.name, colType))
		}
		defs = append(defs, fmt.Sprintf("FOREIGN KEY (id_tiempo) REFERENCES %s (id_tiempo)", timeTable))

		statements = append(statements,
			fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", t.table, strings.Join(defs, ", ")))
	}

	return statements
}

// BuildTimeLookup monta a busca do id_tiempo já existente para o período
func BuildTimeLookup(year, month int, driver string) (Statement, error) {
	query, args, err := squirrel.
		Select("id_tiempo").
		From(timeTable).
		Where(squirrel.Eq{"anio": year, "mes": month}).
		OrderBy("id_tiempo ASC").
		Limit(1).
		PlaceholderFormat(database.PlaceholderFor(driver)).
		ToSql()
	if err != nil {
		return Statement{}, fmt.Errorf("erro ao construir busca de período: %w", err)
	}
	return Statement{SQL: query, Args: args}, nil
}

// BuildInserts monta os INSERTs de um registro: o período e uma linha por domínio presente.
// Com existingTimeID o período já cadastrado é reaproveitado e não é inserido de novo;
// sem ele o período novo recebe o id TimeID(ano, mês).
func BuildInserts(record domain.RawMonthlyRecord, driver string, existingTimeID *int64) ([]Statement, error) {
	placeholder := database.PlaceholderFor(driver)
	statements := make([]Statement, 0, len(domainTables)+1)

	timeID := TimeID(record.Year, record.Month)
	if existingTimeID != nil {
		timeID = *existingTimeID
	} else {
		query, args, err := squirrel.
			Insert(timeTable).
			Columns("id_tiempo", "anio", "mes").
			Values(timeID, record.Year, record.Month).
			PlaceholderFormat(placeholder).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("erro ao construir insert de período: %w", err)
		}
		statements = append(statements, Statement{SQL: query, Args: args})
	}

	for _, t := range domainTables {
		values := domainValues(record, t.domain)
		if values == nil {
			continue
		}

		columns := []string{"id_tiempo"}
		for _, c := range t.columns {
			columns = append(columns, c.name)
		}

		query, args, err := squirrel.
			Insert(t.table).
			Columns(columns...).
			Values(append([]any{timeID}, values...)...).
			PlaceholderFormat(placeholder).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("erro ao construir insert de %s: %w", t.domain, err)
		}
		statements = append(statements, Statement{SQL: query, Args: args})
	}

	return statements, nil
}

type Seeder struct {
	conn   database.Conn
	driver string
}

func NewSeeder(conn database.Conn, driver string) *Seeder {
	return &Seeder{conn: conn, driver: driver}
}

// CreateSchema cria as tabelas que ainda não existem
func (s *Seeder) CreateSchema(ctx context.Context) error {
	return s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, stmt := range SchemaStatements(s.driver) {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("erro ao criar schema: %w", err)
			}
		}
		return nil
	})
}

// Seed insere todos os registros em uma única transação. onProgress é chamado a cada registro.
func (s *Seeder) Seed(ctx context.Context, records []domain.RawMonthlyRecord, onProgress func()) error {
	return s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, record := range records {
			existingTimeID, err := s.findTimeID(ctx, tx, record.Year, record.Month)
			if err != nil {
				return err
			}

			statements, err := BuildInserts(record, s.driver, existingTimeID)
			if err != nil {
				return err
			}

			for _, stmt := range statements {
				if _, err := tx.ExecContext(ctx, stmt.SQL, stmt.Args...); err != nil {
					logrus.WithFields(logrus.Fields{
						"year":  record.Year,
						"month": record.Month,
					}).WithError(err).Error("Erro ao inserir registro mensal")
					return fmt.Errorf("erro ao inserir %d-%02d: %w", record.Year, record.Month, err)
				}
			}

			if onProgress != nil {
				onProgress()
			}
		}
		return nil
	})
}

// findTimeID devolve o id_tiempo já cadastrado para (anio, mes), ou nil quando o período é novo
func (s *Seeder) findTimeID(ctx context.Context, tx *sql.Tx, year, month int) (*int64, error) {
	lookup, err := BuildTimeLookup(year, month, s.driver)
	if err != nil {
		return nil, err
	}

	var id int64
	err = tx.QueryRowContext(ctx, lookup.SQL, lookup.Args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar período %d-%02d: %w", year, month, err)
	}
	return &id, nil
}
