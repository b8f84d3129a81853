package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/yossefJiy/agency-ops-api/internal/api/handler"
	"github.com/yossefJiy/agency-ops-api/internal/api/handler/router"
	"github.com/yossefJiy/agency-ops-api/internal/config"
	"github.com/yossefJiy/agency-ops-api/internal/scheduler"
	"github.com/yossefJiy/agency-ops-api/internal/usecases/agreeing"
	"github.com/yossefJiy/agency-ops-api/internal/usecases/authenticating"
	"github.com/yossefJiy/agency-ops-api/internal/usecases/billing"
	"github.com/yossefJiy/agency-ops-api/internal/usecases/clienting"
	"github.com/yossefJiy/agency-ops-api/internal/usecases/commissioning"
	"github.com/yossefJiy/agency-ops-api/internal/usecases/reconciling"
	"github.com/yossefJiy/agency-ops-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	clientService clienting.ClientService,
	commissionService commissioning.CommissionService,
	billingService billing.BillingService,
	reconciliationService reconciling.ReconciliationService,
	agreementService agreeing.AgreementService,
	authenticator authenticating.Authenticator,
	analyticsSyncService *scheduler.AnalyticsSyncService,
	offlineRevenueSyncService *scheduler.OfflineRevenueSyncService,
) (*Server, error) {
	// Inicializar o struct com os serviços de cron jobs
	cronServices := handler.CronJobServices{
		AnalyticsSyncService:      analyticsSyncService,
		OfflineRevenueSyncService: offlineRevenueSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.User(authenticator)...),
		router.WithRoutes(handler.UserClients(authenticator)...),
		router.WithRoutes(handler.Clients(clientService)...),
		router.WithRoutes(handler.CommissionPlans(commissionService)...),
		router.WithRoutes(handler.ServiceCatalog(billingService)...),
		router.WithRoutes(handler.ServiceLines(billingService)...),
		router.WithRoutes(handler.Projects(billingService)...),
		router.WithRoutes(handler.Reconciliation(reconciliationService)...),
		router.WithRoutes(handler.Agreements(agreementService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
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

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
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
	logrus.Info("Executando operações de limpeza antes do desligamento")

	// Aqui você pode adicionar operações de limpeza adicionais
	// como fechar conexões com bancos de dados, limpar recursos, etc.

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
