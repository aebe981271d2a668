package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := &bytes.Buffer{}
	previous := logrus.StandardLogger().Out
	logrus.SetOutput(buf)
	logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true})
	t.Cleanup(func() { logrus.SetOutput(previous) })

	return buf
}

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestWithFieldsDevelopmentFiltersNoise(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	buf := captureOutput(t)

	L.WithFields(Fields{"path": "/v1/kpis/dashboard", "internal_detail": "x"}).Info("teste")

	assert.Contains(t, buf.String(), "path=/v1/kpis/dashboard")
	assert.NotContains(t, buf.String(), "internal_detail")
}

func TestWithFieldsProductionKeepsEverything(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	buf := captureOutput(t)

	ctx, id := WithCorrelationID(context.Background())
	ForContext(ctx).WithFields(Fields{"internal_detail": "x"}).Info("teste")

	assert.Contains(t, buf.String(), "internal_detail=x")
	assert.Contains(t, buf.String(), id)
}
