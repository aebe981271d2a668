package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/kpi-dashboard-api/internal/config"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
	"github.com/vfg2006/kpi-dashboard-api/pkg/utils"
)

var ErrAuditRunning = errors.New("auditoria de dados já em andamento")

// DataAuditService procura meses em que um domínio tem mais de uma linha.
// Só a primeira linha entra nos indicadores, as demais são descartadas em silêncio.
type DataAuditService struct {
	scheduler  *gocron.Scheduler
	config     config.DataAudit
	kpiRepo    repository.KPIRepository
	running    bool
	mutex      sync.Mutex
	lastReport *domain.DataAuditReport
}

func NewDataAuditService(kpiRepo repository.KPIRepository, cfg config.DataAudit) *DataAuditService {
	logrus.WithFields(logrus.Fields{
		"audit_cron":    cfg.CronSchedule,
		"audit_enabled": cfg.Enabled,
	}).Info("Configuração da auditoria de dados carregada")

	return &DataAuditService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    cfg,
		kpiRepo:   kpiRepo,
	}
}

// Start agenda a auditoria e para o agendador quando o ctx for cancelado
func (s *DataAuditService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Auditoria de dados desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador da auditoria de dados")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunAudit(ctx); err != nil && !errors.Is(err, ErrAuditRunning) {
			logrus.WithError(err).Error("Auditoria agendada terminou com erro")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar auditoria de dados: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador da auditoria de dados")
		s.scheduler.Stop()
	}()

	return nil
}

// RunAudit executa a auditoria de forma síncrona. Devolve ErrAuditRunning se já houver uma em curso.
func (s *DataAuditService) RunAudit(ctx context.Context) (*domain.DataAuditReport, error) {
	if !s.tryAcquire() {
		logrus.Info("Auditoria de dados já em andamento, ignorando")
		return nil, ErrAuditRunning
	}
	defer s.release()

	return s.runAudit(ctx)
}

// tryAcquire marca a auditoria como em curso. Devolve false se já houver uma.
func (s *DataAuditService) tryAcquire() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.running {
		return false
	}
	s.running = true
	return true
}

func (s *DataAuditService) release() {
	s.mutex.Lock()
	s.running = false
	s.mutex.Unlock()
}

// runAudit executa a auditoria. Quem chama precisa ter obtido a execução com tryAcquire.
func (s *DataAuditService) runAudit(ctx context.Context) (*domain.DataAuditReport, error) {
	runID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id da auditoria: %w", err)
	}

	report := &domain.DataAuditReport{
		RunID:     runID,
		StartedAt: time.Now(),
		Findings:  []domain.AmbiguousMonth{},
	}
	logger := logrus.WithField("audit_run_id", runID)
	logger.Info("Iniciando auditoria de dados")

	findings, err := s.kpiRepo.ListAmbiguousMonths(ctx)
	report.FinishedAt = time.Now()
	if err != nil {
		report.Error = err.Error()
		s.storeReport(report)
		logger.WithError(err).Error("Erro ao auditar meses com linhas duplicadas")
		return report, err
	}

	if findings != nil {
		report.Findings = findings
	}

	for _, f := range findings {
		logger.WithFields(logrus.Fields{
			"year":   f.Year,
			"month":  f.Month,
			"domain": f.Domain,
			"rows":   f.Rows,
		}).Warn("Mês com mais de uma linha no domínio, apenas a primeira é usada")
	}

	s.storeReport(report)

	logger.WithFields(logrus.Fields{
		"duration": report.FinishedAt.Sub(report.StartedAt).String(),
		"findings": len(report.Findings),
	}).Info("Auditoria de dados concluída")

	return report, nil
}

// TriggerManualRun dispara a auditoria em background. Devolve false se já houver uma em curso.
func (s *DataAuditService) TriggerManualRun() bool {
	if !s.tryAcquire() {
		logrus.Info("Auditoria de dados já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando auditoria manual de dados")
	go func() {
		defer s.release()

		if _, err := s.runAudit(context.Background()); err != nil {
			logrus.WithError(err).Error("Auditoria manual terminou com erro")
		}
	}()

	return true
}

func (s *DataAuditService) LastReport() *domain.DataAuditReport {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.lastReport
}

// GetStatus retorna o status atual da auditoria
func (s *DataAuditService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return map[string]any{
		"audit_running": s.running,
		"audit_cron":    s.config.CronSchedule,
		"audit_enabled": s.config.Enabled,
		"last_run":      s.lastReport,
	}
}

func (s *DataAuditService) storeReport(report *domain.DataAuditReport) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.lastReport = report
}
