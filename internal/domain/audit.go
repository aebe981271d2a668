package domain

import "time"

// Domínios de dados unidos por mês
const (
	DomainProduction = "production"
	DomainQuality    = "quality"
	DomainLogistics  = "logistics"
	DomainSales      = "sales"
)

// AmbiguousMonth aponta um mês em que um domínio possui mais de uma linha.
// Apenas a primeira é usada no cálculo dos indicadores.
type AmbiguousMonth struct {
	Year   int    `json:"year"`
	Month  int    `json:"month"`
	Domain string `json:"domain"`
	Rows   int    `json:"rows"`
}

// DataAuditReport é o resultado de uma execução da auditoria de dados
type DataAuditReport struct {
	RunID      string           `json:"run_id"`
	StartedAt  time.Time        `json:"started_at"`
	FinishedAt time.Time        `json:"finished_at"`
	Findings   []AmbiguousMonth `json:"findings"`
	Error      string           `json:"error,omitempty"`
}
