package database

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/kpi-dashboard-api/internal/config"
)

func TestPlaceholderFor(t *testing.T) {
	query, _, err := squirrel.Select("1").From("tiempo").
		Where(squirrel.Eq{"anio": 2024}).
		PlaceholderFormat(PlaceholderFor(config.DriverPostgres)).
		ToSql()
	assert.NoError(t, err)
	assert.Contains(t, query, "anio = $1")

	query, _, err = squirrel.Select("1").From("tiempo").
		Where(squirrel.Eq{"anio": 2024}).
		PlaceholderFormat(PlaceholderFor(config.DriverMySQL)).
		ToSql()
	assert.NoError(t, err)
	assert.Contains(t, query, "anio = ?")

	assert.Equal(t, squirrel.Dollar, PlaceholderFor(""))
}
