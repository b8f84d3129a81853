package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yossefJiy/agency-ops-api/infrastructure/database/postgres"
	"github.com/yossefJiy/agency-ops-api/infrastructure/integrator/icount"
	"github.com/yossefJiy/agency-ops-api/infrastructure/integrator/icount/icountclient"
	"github.com/yossefJiy/agency-ops-api/infrastructure/integrator/poconverto"
	"github.com/yossefJiy/agency-ops-api/infrastructure/integrator/poconverto/poconvertoclient"
	"github.com/yossefJiy/agency-ops-api/infrastructure/repository"
	"github.com/yossefJiy/agency-ops-api/internal/api"
	"github.com/yossefJiy/agency-ops-api/internal/config"
	"github.com/yossefJiy/agency-ops-api/internal/scheduler"
	"github.com/yossefJiy/agency-ops-api/internal/usecases/agreeing"
	"github.com/yossefJiy/agency-ops-api/internal/usecases/authenticating"
	"github.com/yossefJiy/agency-ops-api/internal/usecases/billing"
	"github.com/yossefJiy/agency-ops-api/internal/usecases/clienting"
	"github.com/yossefJiy/agency-ops-api/internal/usecases/commissioning"
	"github.com/yossefJiy/agency-ops-api/internal/usecases/reconciling"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	clientRepo := repository.NewClientRepository(pgConn)
	integrationRepo := repository.NewIntegrationRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	planRepo := repository.NewCommissionPlanRepository(pgConn)
	snapshotRepo := repository.NewAnalyticsSnapshotRepository(pgConn)
	offlineRepo := repository.NewOfflineRevenueRepository(pgConn)
	catalogRepo := repository.NewServiceCatalogRepository(pgConn)
	lineRepo := repository.NewMonthlyServiceLineRepository(pgConn)
	projectRepo := repository.NewProjectRepository(pgConn)
	agreementRepo := repository.NewAgreementRepository(pgConn)
	payoutRepo := repository.NewPayoutRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, clientRepo, cfg)

	poconvertoClient := poconvertoclient.NewClient(cfg)
	poconvertoIntegrator := poconverto.New(cfg, poconvertoClient)

	icountClient := icountclient.NewClient(cfg)
	icountIntegrator := icount.New(cfg, icountClient)

	clientService := clienting.NewService(clientRepo, integrationRepo, poconvertoIntegrator, icountIntegrator)
	commissionService := commissioning.NewService(planRepo, snapshotRepo)
	billingService := billing.NewService(catalogRepo, lineRepo, projectRepo, clientRepo)
	reconciliationService := reconciling.NewService(clientRepo, snapshotRepo, offlineRepo, lineRepo, planRepo)
	agreementService := agreeing.NewService(clientRepo, agreementRepo, payoutRepo, lineRepo)

	// Inicializa os agendadores de sincronização separados
	analyticsSyncService := scheduler.NewAnalyticsSyncService(
		integrationRepo,
		snapshotRepo,
		poconvertoIntegrator,
		cfg,
	)

	offlineRevenueSyncService := scheduler.NewOfflineRevenueSyncService(
		integrationRepo,
		offlineRepo,
		icountIntegrator,
		cfg,
	)

	// Inicia os agendadores em background
	if err := analyticsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de analytics")
	} else {
		logrus.Info("Agendador de sincronização de analytics iniciado com sucesso")
	}

	if err := offlineRevenueSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de receita offline")
	} else {
		logrus.Info("Agendador de sincronização de receita offline iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		clientService,
		commissionService,
		billingService,
		reconciliationService,
		agreementService,
		authenticator,
		analyticsSyncService,
		offlineRevenueSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
