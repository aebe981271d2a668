package handler

import (
	"net/http"

	"github.com/vfg2006/kpi-dashboard-api/pkg/log"
)

// DataAuditor dispara e consulta a auditoria de meses com linhas duplicadas
type DataAuditor interface {
	TriggerManualRun() bool
	GetStatus() map[string]any
}

// RunDataAudit dispara a auditoria em background
func RunDataAudit(auditor DataAuditor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context()).WithField("endpoint", "audit-run")

		if !auditor.TriggerManualRun() {
			logger.Info("auditoria já em andamento")
			writeJSON(w, logger, http.StatusConflict, map[string]any{
				"message": "Auditoria de dados já em andamento",
			})
			return
		}

		logger.Info("auditoria de dados iniciada manualmente")
		writeJSON(w, logger, http.StatusAccepted, map[string]any{
			"message": "Auditoria de dados iniciada com sucesso",
		})
	})
}

// GetDataAuditStatus retorna o status e o último relatório da auditoria
func GetDataAuditStatus(auditor DataAuditor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, log.ForContext(r.Context()), http.StatusOK, auditor.GetStatus())
	})
}
