package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

// RoundWithTwoDecimalPlace arredonda para duas casas, metade para longe do zero,
// sobre a representação decimal mais curta do float (1.005 vira 1.01).
// Infinito e NaN voltam sem alteração.
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 || !IsFinite(f) {
		return f
	}

	rounded, _ := decimal.NewFromFloat(f).Round(2).Float64()
	return rounded
}

// Float64Ptr devolve um ponteiro para o valor informado
func Float64Ptr(f float64) *float64 {
	return &f
}

// StringPtr devolve um ponteiro para o valor informado
func StringPtr(s string) *string {
	return &s
}

func IsFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// RoundedPtr arredonda para duas casas; valores não finitos viram nil
func RoundedPtr(f float64) *float64 {
	if !IsFinite(f) {
		return nil
	}
	return Float64Ptr(RoundWithTwoDecimalPlace(f))
}
