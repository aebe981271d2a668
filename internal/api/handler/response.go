package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/kpi-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/kpi-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/kpi-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, logger log.Logger, status int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		logger.WithError(err).Error("erro ao codificar resposta")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logger.WithError(err).Warn("erro ao escrever resposta")
	}
}

// writeServiceError traduz os erros do serviço de relatórios para o envelope da API
func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, reporting.ErrInvalidFilters) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar os dados de indicadores", nil)
}
