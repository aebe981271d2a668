package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/kpi-dashboard-api/internal/config"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestDataAuditService_RunAudit(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(repo *mocks.MockKPIRepository)
		wantErr  bool
		validate func(t *testing.T, report *domain.DataAuditReport)
	}{
		{
			name: "Meses duplicados são reportados",
			setup: func(repo *mocks.MockKPIRepository) {
				repo.EXPECT().ListAmbiguousMonths(gomock.Any()).Return([]domain.AmbiguousMonth{
					{Year: 2024, Month: 3, Domain: domain.DomainProduction, Rows: 2},
					{Year: 2024, Month: 5, Domain: domain.DomainSales, Rows: 3},
				}, nil)
			},
			validate: func(t *testing.T, report *domain.DataAuditReport) {
				assert.Len(t, report.RunID, 10)
				assert.Len(t, report.Findings, 2)
				assert.Equal(t, domain.DomainSales, report.Findings[1].Domain)
				assert.Empty(t, report.Error)
				assert.False(t, report.FinishedAt.Before(report.StartedAt))
			},
		},
		{
			name: "Sem duplicidades devolve lista vazia",
			setup: func(repo *mocks.MockKPIRepository) {
				repo.EXPECT().ListAmbiguousMonths(gomock.Any()).Return(nil, nil)
			},
			validate: func(t *testing.T, report *domain.DataAuditReport) {
				assert.NotNil(t, report.Findings)
				assert.Empty(t, report.Findings)
			},
		},
		{
			name: "Erro do banco fica registrado no relatório",
			setup: func(repo *mocks.MockKPIRepository) {
				repo.EXPECT().ListAmbiguousMonths(gomock.Any()).Return(nil, errors.New("conexão recusada"))
			},
			wantErr: true,
			validate: func(t *testing.T, report *domain.DataAuditReport) {
				assert.Equal(t, "conexão recusada", report.Error)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockKPIRepository(ctrl)
			tt.setup(repo)

			service := NewDataAuditService(repo, config.DataAudit{CronSchedule: "0 2 * * *"})

			report, err := service.RunAudit(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			require.NotNil(t, report)
			tt.validate(t, report)
			assert.Same(t, report, service.LastReport())
			assert.Equal(t, false, service.GetStatus()["audit_running"])
		})
	}
}

func TestDataAuditService_SingleRunAtATime(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockKPIRepository(ctrl)

	started := make(chan struct{})
	release := make(chan struct{})
	repo.EXPECT().ListAmbiguousMonths(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]domain.AmbiguousMonth, error) {
		close(started)
		<-release
		return []domain.AmbiguousMonth{}, nil
	})

	service := NewDataAuditService(repo, config.DataAudit{})

	done := make(chan error, 1)
	go func() {
		_, err := service.RunAudit(context.Background())
		done <- err
	}()

	<-started
	assert.Equal(t, true, service.GetStatus()["audit_running"])

	_, err := service.RunAudit(context.Background())
	assert.ErrorIs(t, err, ErrAuditRunning)
	assert.False(t, service.TriggerManualRun())

	close(release)
	require.NoError(t, <-done)
	assert.NotNil(t, service.LastReport())
}

func TestDataAuditService_TriggerManualRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockKPIRepository(ctrl)

	repo.EXPECT().ListAmbiguousMonths(gomock.Any()).Return([]domain.AmbiguousMonth{}, nil)

	service := NewDataAuditService(repo, config.DataAudit{})

	assert.True(t, service.TriggerManualRun())

	assert.Eventually(t, func() bool {
		return service.LastReport() != nil
	}, 2*time.Second, 10*time.Millisecond)
}

func TestDataAuditService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockKPIRepository(ctrl)

	service := NewDataAuditService(repo, config.DataAudit{Enabled: false, CronSchedule: "0 2 * * *"})

	assert.NoError(t, service.Start(context.Background()))
}

func TestDataAuditService_StartInvalidCron(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockKPIRepository(ctrl)

	service := NewDataAuditService(repo, config.DataAudit{Enabled: true, CronSchedule: "isso não é cron"})

	assert.Error(t, service.Start(context.Background()))
}

func TestDataAuditService_TriggerManualRunReservesExecution(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockKPIRepository(ctrl)

	release := make(chan struct{})
	repo.EXPECT().ListAmbiguousMonths(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]domain.AmbiguousMonth, error) {
		<-release
		return []domain.AmbiguousMonth{}, nil
	}).Times(1)

	service := NewDataAuditService(repo, config.DataAudit{})

	require.True(t, service.TriggerManualRun())

	// A execução manual já está reservada quando o disparo retorna, antes da goroutine rodar
	assert.Equal(t, true, service.GetStatus()["audit_running"])
	_, err := service.RunAudit(context.Background())
	assert.ErrorIs(t, err, ErrAuditRunning)
	assert.False(t, service.TriggerManualRun())

	close(release)
	assert.Eventually(t, func() bool {
		return service.LastReport() != nil && service.GetStatus()["audit_running"] == false
	}, 2*time.Second, 10*time.Millisecond)
}
