package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseIntList converte uma lista separada por vírgulas ("2023,2024") em inteiros
func ParseIntList(value string) ([]int, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}

	parts := strings.Split(value, ",")
	result := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("valor inválido %q: %w", part, err)
		}
		result = append(result, n)
	}

	return result, nil
}

// ParseYear valida um ano com quatro dígitos
func ParseYear(value string) (int, error) {
	if len(value) != 4 {
		return 0, fmt.Errorf("ano inválido %q: use quatro dígitos", value)
	}

	year, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("ano inválido %q: %w", value, err)
	}

	return year, nil
}

// ParseMonth valida um mês entre 1 e 12
func ParseMonth(value string) (int, error) {
	month, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("mês inválido %q: %w", value, err)
	}

	if month < 1 || month > 12 {
		return 0, fmt.Errorf("mês inválido %d: use valores entre 1 e 12", month)
	}

	return month, nil
}
