package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
	"github.com/vfg2006/kpi-dashboard-api/pkg/utils"
)

// parseKPIFilters lê years=2023,2024 ou year=2024&month=3 da query string
func parseKPIFilters(r *http.Request) (domain.KPIFilters, error) {
	query := r.URL.Query()
	filters := domain.KPIFilters{}

	if raw := query.Get("years"); raw != "" {
		years, err := utils.ParseIntList(raw)
		if err != nil {
			return filters, fmt.Errorf("parâmetro years inválido: %w", err)
		}
		for _, y := range years {
			if _, err := utils.ParseYear(strconv.Itoa(y)); err != nil {
				return filters, fmt.Errorf("parâmetro years inválido: %w", err)
			}
		}
		filters.Years = years
	}

	if raw := query.Get("year"); raw != "" {
		year, err := utils.ParseYear(raw)
		if err != nil {
			return filters, fmt.Errorf("parâmetro year inválido: %w", err)
		}
		filters.Year = &year
	}

	if raw := query.Get("month"); raw != "" {
		if filters.Year == nil {
			return filters, fmt.Errorf("o parâmetro month exige o parâmetro year")
		}
		month, err := utils.ParseMonth(raw)
		if err != nil {
			return filters, fmt.Errorf("parâmetro month inválido: %w", err)
		}
		filters.Month = &month
	}

	return filters, nil
}

func parsePositiveInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("parâmetro %s inválido: use um inteiro positivo", name)
	}
	return n, nil
}

func parseOptionalFloat(r *http.Request, name string) (*float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return nil, fmt.Errorf("parâmetro %s inválido: use um número não negativo", name)
	}
	return &v, nil
}
