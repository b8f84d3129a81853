package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/yossefJiy/agency-ops-api/infrastructure/integrator/poconverto"
	poconvertodomain "github.com/yossefJiy/agency-ops-api/infrastructure/integrator/poconverto/domain"
	"github.com/yossefJiy/agency-ops-api/infrastructure/repository"
	"github.com/yossefJiy/agency-ops-api/internal/config"
	"github.com/yossefJiy/agency-ops-api/internal/domain"
	"github.com/yossefJiy/agency-ops-api/pkg/utils"
)

// AnalyticsSyncConfig representa a configuração do agendador de snapshots de analytics
type AnalyticsSyncConfig struct {
	CronSchedule        string
	MonthLookback       int
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// AnalyticsSyncService gerencia o agendamento e execução da sincronização de
// snapshots mensais do Poconverto
type AnalyticsSyncService struct {
	scheduler           *gocron.Scheduler
	config              AnalyticsSyncConfig
	appConfig           *config.Config
	integrationRepo     repository.IntegrationRepository
	snapshotRepo        repository.AnalyticsSnapshotRepository
	poconvertoService   poconverto.PoconvertoIntegrator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewAnalyticsSyncService cria uma nova instância do serviço de sincronização de analytics
func NewAnalyticsSyncService(
	integrationRepo repository.IntegrationRepository,
	snapshotRepo repository.AnalyticsSnapshotRepository,
	poconvertoService poconverto.PoconvertoIntegrator,
	appConfig *config.Config,
) *AnalyticsSyncService {
	syncConfig := AnalyticsSyncConfig{
		CronSchedule:        appConfig.AnalyticsSync.CronSchedule,
		MonthLookback:       appConfig.AnalyticsSync.MonthLookback,
		RequestDelaySeconds: appConfig.AnalyticsSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.AnalyticsSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.AnalyticsSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"month_lookback":        syncConfig.MonthLookback,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots de analytics carregada")

	return &AnalyticsSyncService{
		scheduler:         scheduler,
		config:            syncConfig,
		appConfig:         appConfig,
		integrationRepo:   integrationRepo,
		snapshotRepo:      snapshotRepo,
		poconvertoService: poconvertoService,
		syncRunning:       false,
	}
}

// Start inicia o agendador
func (s *AnalyticsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de snapshots de analytics desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de snapshots de analytics")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncSnapshots()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de snapshots: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de snapshots de analytics")
		s.scheduler.Stop()
	}()

	return nil
}

// syncSnapshots sincroniza os snapshots de todos os clientes com integração configurada
func (s *AnalyticsSyncService) syncSnapshots() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de snapshots para todos os clientes integrados")

	integrations, err := s.integrationRepo.ListWithPoconvertoKey()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar integrações para sincronização de snapshots")
		return
	}

	if len(integrations) == 0 {
		logrus.Info("Nenhum cliente com integração Poconverto configurada")
		return
	}

	// Janela de competências: do mês corrente até N meses atrás
	now := time.Now()
	from := now.AddDate(0, -s.config.MonthLookback, 0)
	fromMonth := utils.YearMonth(from.Year(), int(from.Month()))
	toMonth := utils.YearMonth(now.Year(), int(now.Month()))

	logrus.WithFields(logrus.Fields{
		"from": fromMonth,
		"to":   toMonth,
	}).Info("Período para sincronização de snapshots")

	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, integration := range integrations {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(integ *domain.ClientIntegration) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			if err := s.processClient(integ, fromMonth, toMonth); err != nil {
				logrus.WithError(err).WithField("client_id", integ.ClientID).Error("Erro ao sincronizar snapshots do cliente")
			}

			// Aguardar antes do próximo cliente para evitar excesso de requisições
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}(integration)
	}

	wg.Wait()

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"clients":  len(integrations),
	}).Info("Sincronização de snapshots concluída")

	s.lastSyncCompletedAt = time.Now()
}

// processClient busca e persiste os snapshots de um cliente na janela informada
func (s *AnalyticsSyncService) processClient(integration *domain.ClientIntegration, fromMonth, toMonth string) error {
	if integration.PoconvertoClientKey == nil || *integration.PoconvertoClientKey == "" {
		return fmt.Errorf("integração sem chave do Poconverto")
	}

	shopDomain := ""
	if integration.ShopDomain != nil {
		shopDomain = *integration.ShopDomain
	}

	snapshots, err := s.poconvertoService.GetMonthlySnapshots(integration.ClientID, poconvertodomain.GetMetricsParams{
		ClientKey:  *integration.PoconvertoClientKey,
		ShopDomain: shopDomain,
		FromMonth:  fromMonth,
		ToMonth:    toMonth,
	})
	if err != nil {
		return fmt.Errorf("erro ao obter métricas do Poconverto: %w", err)
	}

	for _, snapshot := range snapshots {
		if err := s.snapshotRepo.SaveOrUpdate(snapshot); err != nil {
			return fmt.Errorf("erro ao salvar snapshot %04d-%02d: %w", snapshot.Year, snapshot.Month, err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"client_id": integration.ClientID,
		"snapshots": len(snapshots),
	}).Info("Snapshots do cliente salvos com sucesso")

	return nil
}

// TriggerManualSync inicia manualmente uma sincronização de snapshots
func (s *AnalyticsSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de snapshots")
	go s.syncSnapshots()
}

// GetStatus retorna o status atual da sincronização
func (s *AnalyticsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
