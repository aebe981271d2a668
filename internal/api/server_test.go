package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/kpi-dashboard-api/internal/config"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
	"github.com/vfg2006/kpi-dashboard-api/internal/usecases/authenticating"
	reportingMocks "github.com/vfg2006/kpi-dashboard-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/kpi-dashboard-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

type stubAuditor struct{}

func (stubAuditor) TriggerManualRun() bool { return true }

func (stubAuditor) GetStatus() map[string]any { return map[string]any{} }

func testConfig() *config.Config {
	return &config.Config{
		App:  config.App{Version: "test"},
		Auth: config.Auth{Secret: "segredo-de-teste"},
		Cors: config.Cors{AllowedOrigins: []string{"http://painel.local"}},
	}
}

func TestNewHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	mockReporter := reportingMocks.NewMockReporter(ctrl)
	mockTargets := reportingMocks.NewMockTargetsProvider(ctrl)
	authenticator := authenticating.NewService(cfg.Auth)

	h := NewHandler(cfg, mockReporter, mockTargets, authenticator, stubAuditor{}, nil)

	t.Run("rotas de indicadores são públicas e recebem CORS", func(t *testing.T) {
		mockReporter.EXPECT().GetQuality(gomock.Any(), domain.KPIFilters{}).Return([]domain.QualityKPI{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/kpis/quality", nil)
		req.Header.Set("Origin", "http://painel.local")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "http://painel.local", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.NotEmpty(t, rr.Header().Get(middleware.CorrelationIDHeader))
	})

	t.Run("auditoria exige token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/v1/audit/run", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("auditoria exige administrador", func(t *testing.T) {
		token, err := authenticator.GenerateToken(7, "leitor", middleware.RoleViewer)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/v1/audit/run", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("administrador dispara auditoria", func(t *testing.T) {
		token, err := authenticator.GenerateToken(1, "admin", middleware.RoleAdmin)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/v1/audit/run", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusAccepted, rr.Code)
	})
}

func TestNew_RequiresServices(t *testing.T) {
	_, err := New(testConfig(), nil, nil, nil, nil, nil)
	assert.Error(t, err)
}
