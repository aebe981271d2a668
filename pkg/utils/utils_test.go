package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "zero", in: 0, want: 0},
		{name: "sem arredondamento", in: 80, want: 80},
		{name: "meio para cima", in: 1.005, want: 1.01},
		{name: "dízima", in: 200.0 / 3.0, want: 66.67},
		{name: "negativo", in: -12.345, want: -12.35},
		{name: "trunca para baixo", in: 33.333333, want: 33.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundWithTwoDecimalPlace(tt.in))
		})
	}
}

func TestRoundedPtr_NonFinite(t *testing.T) {
	assert.Nil(t, RoundedPtr(math.Inf(1)))
	assert.Nil(t, RoundedPtr(math.Inf(-1)))
	assert.Nil(t, RoundedPtr(math.NaN()))
	assert.Equal(t, Float64Ptr(66.67), RoundedPtr(200.0/3.0))

	assert.NotPanics(t, func() {
		assert.True(t, math.IsInf(RoundWithTwoDecimalPlace(math.Inf(1)), 1))
		assert.True(t, math.IsNaN(RoundWithTwoDecimalPlace(math.NaN())))
	})
}

func TestParseIntList(t *testing.T) {
	years, err := ParseIntList("2023, 2024,,2025")
	require.NoError(t, err)
	assert.Equal(t, []int{2023, 2024, 2025}, years)

	years, err = ParseIntList("")
	require.NoError(t, err)
	assert.Nil(t, years)

	_, err = ParseIntList("2023,abc")
	assert.Error(t, err)
}

func TestParseYearAndMonth(t *testing.T) {
	year, err := ParseYear("2024")
	require.NoError(t, err)
	assert.Equal(t, 2024, year)

	_, err = ParseYear("24")
	assert.Error(t, err)

	month, err := ParseMonth("03")
	require.NoError(t, err)
	assert.Equal(t, 3, month)

	_, err = ParseMonth("13")
	assert.Error(t, err)
	_, err = ParseMonth("0")
	assert.Error(t, err)
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, 10)
}

func TestPrettyJson(t *testing.T) {
	out := PrettyJson(map[string]int{"a": 1})
	assert.Equal(t, "{\n\t\"a\": 1\n}", out)

	out = PrettyJson([]byte(`{"b":2}`))
	assert.Equal(t, "{\n\t\"b\": 2\n}", out)
}
