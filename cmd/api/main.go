package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/database"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/kpi-dashboard-api/internal/api"
	"github.com/vfg2006/kpi-dashboard-api/internal/config"
	"github.com/vfg2006/kpi-dashboard-api/internal/scheduler"
	"github.com/vfg2006/kpi-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/kpi-dashboard-api/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn := dbconn(ctx, cfg.Database)
	defer conn.Close()

	kpiRepo := repository.NewKPIRepository(conn)

	targets, err := config.LoadKPITargets(cfg.Targets.File)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao carregar metas dos indicadores, usando valores padrão")
		targets = config.DefaultKPITargets()
	}
	targetStore := config.NewTargetStore(targets)

	if cfg.Targets.File != "" && cfg.Targets.Watch {
		go func() {
			err := config.WatchKPITargets(ctx, cfg.Targets.File, targetStore.Set)
			if err != nil {
				logrus.WithError(err).Error("Erro ao observar o arquivo de metas")
			}
		}()
	}

	reportingService := reporting.NewService(kpiRepo, targetStore)
	authenticator := authenticating.NewService(cfg.Auth)

	dataAuditService := scheduler.NewDataAuditService(kpiRepo, cfg.DataAudit)
	if err := dataAuditService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de auditoria de dados")
	}

	server, err := api.New(
		cfg,
		reportingService,
		targetStore,
		authenticator,
		dataAuditService,
		conn,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// dbconn abre a conexão com o banco configurado
func dbconn(ctx context.Context, dbConfig config.Database) *database.Connection {
	conn, err := database.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).WithField("driver", dbConfig.Driver).Fatal("Erro ao conectar ao banco de dados")
	}

	logrus.WithField("driver", dbConfig.Driver).Info("Conexão com o banco de dados estabelecida com sucesso")
	return conn
}
