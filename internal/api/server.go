package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kpi-dashboard-api/internal/api/handler"
	"github.com/vfg2006/kpi-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/kpi-dashboard-api/internal/config"
	"github.com/vfg2006/kpi-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/kpi-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/kpi-dashboard-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// NewHandler monta o router com todas as rotas e a cadeia global de middlewares
func NewHandler(
	cfg *config.Config,
	reporter reporting.Reporter,
	targets reporting.TargetsProvider,
	authenticator authenticating.Authenticator,
	auditor handler.DataAuditor,
	db handler.Pinger,
) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Root(cfg.App.Version)...),
		router.WithRoutes(handler.Healthcheck(db)...),
		router.WithRoutes(handler.KPIs(reporter)...),
		router.WithRoutes(handler.Aggregates(reporter)...),
		router.WithRoutes(handler.PrometheusMetrics(reporter, targets)...),
		router.WithRoutes(handler.DataAudit(auditor, authenticator)...),
	)

	logrus.WithField("routes", rt.Routes()).Debug("Rotas registradas")

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Cors.AllowedOrigins),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(
	cfg *config.Config,
	reporter reporting.Reporter,
	targets reporting.TargetsProvider,
	authenticator authenticating.Authenticator,
	auditor handler.DataAuditor,
	db handler.Pinger,
) (*Server, error) {
	if reporter == nil || targets == nil || authenticator == nil || auditor == nil {
		return nil, fmt.Errorf("serviços obrigatórios do servidor não informados")
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, reporter, targets, authenticator, auditor, db),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
