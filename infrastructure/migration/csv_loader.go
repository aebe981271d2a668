package migration

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
	"github.com/vfg2006/kpi-dashboard-api/pkg/utils"
)

// LoadCSV lê o arquivo de registros mensais
func LoadCSV(filename string) ([]domain.RawMonthlyRecord, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir arquivo %s: %w", filename, err)
	}
	defer file.Close()

	return ParseCSV(file)
}

// ParseCSV interpreta o CSV com cabeçalho year,month seguido dos campos dos domínios.
// Célula vazia vira NULL e um domínio com todas as células vazias fica ausente no mês.
func ParseCSV(r io.Reader) ([]domain.RawMonthlyRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("erro ao ler CSV: %w", err)
	}

	if len(rows) < 1 {
		return nil, fmt.Errorf("CSV vazio: o cabeçalho é obrigatório")
	}

	header, err := parseHeader(rows[0])
	if err != nil {
		return nil, err
	}

	records := make([]domain.RawMonthlyRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		line := i + 2
		if len(row) != len(rows[0]) {
			return nil, fmt.Errorf("linha %d: esperado %d colunas, recebido %d", line, len(rows[0]), len(row))
		}

		record, err := parseRecord(header, row)
		if err != nil {
			return nil, fmt.Errorf("linha %d: %w", line, err)
		}
		records = append(records, record)
	}

	return records, nil
}

type headerIndex struct {
	year, month int
	// posição no CSV de cada coluna, por domínio
	fields map[string]map[string]int
}

func parseHeader(header []string) (headerIndex, error) {
	known := make(map[string]string)
	for _, t := range domainTables {
		for _, c := range t.columns {
			known[c.field] = t.domain
		}
	}

	index := headerIndex{year: -1, month: -1, fields: make(map[string]map[string]int)}
	for i, raw := range header {
		name := strings.ToLower(strings.TrimSpace(raw))
		switch name {
		case "year":
			index.year = i
			continue
		case "month":
			index.month = i
			continue
		}

		domainName, ok := known[name]
		if !ok {
			return index, fmt.Errorf("coluna desconhecida no cabeçalho: %q", raw)
		}
		if index.fields[domainName] == nil {
			index.fields[domainName] = make(map[string]int)
		}
		if _, dup := index.fields[domainName][name]; dup {
			return index, fmt.Errorf("coluna duplicada no cabeçalho: %q", raw)
		}
		index.fields[domainName][name] = i
	}

	if index.year < 0 || index.month < 0 {
		return index, fmt.Errorf("o cabeçalho deve conter as colunas year e month")
	}

	return index, nil
}

func parseRecord(header headerIndex, row []string) (domain.RawMonthlyRecord, error) {
	record := domain.RawMonthlyRecord{}

	year, err := utils.ParseYear(strings.TrimSpace(row[header.year]))
	if err != nil {
		return record, err
	}
	month, err := utils.ParseMonth(strings.TrimSpace(row[header.month]))
	if err != nil {
		return record, err
	}
	record.Year = year
	record.Month = month

	for _, t := range domainTables {
		values, err := cellValues(t, header.fields[t.domain], row)
		if err != nil {
			return record, err
		}
		if len(values) == 0 {
			continue
		}

		switch t.domain {
		case domain.DomainProduction:
			record.Production = &domain.ProductionData{}
			err = decodeDomain(values, record.Production)
		case domain.DomainQuality:
			record.Quality = &domain.QualityData{}
			err = decodeDomain(values, record.Quality)
		case domain.DomainLogistics:
			record.Logistics = &domain.LogisticsData{}
			err = decodeDomain(values, record.Logistics)
		case domain.DomainSales:
			record.Sales = &domain.SalesData{}
			err = decodeDomain(values, record.Sales)
		}
		if err != nil {
			return record, fmt.Errorf("erro ao montar dados de %s: %w", t.domain, err)
		}
	}

	return record, nil
}

// cellValues devolve só as células preenchidas, já convertidas
func cellValues(t domainTable, positions map[string]int, row []string) (map[string]any, error) {
	values := make(map[string]any)
	for _, c := range t.columns {
		pos, ok := positions[c.field]
		if !ok {
			continue
		}

		cell := strings.TrimSpace(row[pos])
		if cell == "" {
			continue
		}

		if c.text {
			values[c.field] = cell
			continue
		}

		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("valor inválido em %s: %q", c.field, cell)
		}
		values[c.field] = v
	}
	return values, nil
}

func decodeDomain(values map[string]any, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "json",
		ErrorUnused: true,
		Result:      target,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(values)
}
