package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/yossefJiy/agency-ops-api/infrastructure/integrator/icount"
	"github.com/yossefJiy/agency-ops-api/infrastructure/repository"
	"github.com/yossefJiy/agency-ops-api/internal/config"
	"github.com/yossefJiy/agency-ops-api/internal/domain"
)

// OfflineRevenueSyncConfig representa a configuração do agendador de receita offline
type OfflineRevenueSyncConfig struct {
	CronSchedule        string
	MonthLookback       int
	RequestDelaySeconds int
	SyncEnabled         bool
}

// OfflineRevenueSyncService gerencia o agendamento e execução da sincronização
// de receita offline via iCount
type OfflineRevenueSyncService struct {
	scheduler           *gocron.Scheduler
	config              OfflineRevenueSyncConfig
	appConfig           *config.Config
	integrationRepo     repository.IntegrationRepository
	offlineRepo         repository.OfflineRevenueRepository
	icountService       icount.IcountIntegrator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewOfflineRevenueSyncService cria uma nova instância do serviço de sincronização de receita offline
func NewOfflineRevenueSyncService(
	integrationRepo repository.IntegrationRepository,
	offlineRepo repository.OfflineRevenueRepository,
	icountService icount.IcountIntegrator,
	appConfig *config.Config,
) *OfflineRevenueSyncService {
	syncConfig := OfflineRevenueSyncConfig{
		CronSchedule:        appConfig.OfflineRevenueSync.CronSchedule,
		MonthLookback:       appConfig.OfflineRevenueSync.MonthLookback,
		RequestDelaySeconds: appConfig.OfflineRevenueSync.RequestDelaySeconds,
		SyncEnabled:         appConfig.OfflineRevenueSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"month_lookback":        syncConfig.MonthLookback,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de receita offline carregada")

	return &OfflineRevenueSyncService{
		scheduler:       scheduler,
		config:          syncConfig,
		appConfig:       appConfig,
		integrationRepo: integrationRepo,
		offlineRepo:     offlineRepo,
		icountService:   icountService,
		syncRunning:     false,
	}
}

// Start inicia o agendador
func (s *OfflineRevenueSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de receita offline desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de receita offline")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncOfflineRevenue()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de receita offline: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de receita offline")
		s.scheduler.Stop()
	}()

	return nil
}

// syncOfflineRevenue sincroniza a receita offline de todos os clientes com iCount configurado
func (s *OfflineRevenueSyncService) syncOfflineRevenue() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de receita offline já em andamento, ignorando")
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

	logrus.Info("Iniciando sincronização de receita offline para todos os clientes integrados")

	integrations, err := s.integrationRepo.ListWithIcountToken()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar integrações para sincronização de receita offline")
		return
	}

	if len(integrations) == 0 {
		logrus.Info("Nenhum cliente com integração iCount configurada")
		return
	}

	// Sequencial de propósito: a API do iCount limita a frequência de chamadas
	for _, integration := range integrations {
		for i := 0; i <= s.config.MonthLookback; i++ {
			month := time.Now().AddDate(0, -i, 0)

			if err := s.processClientMonth(integration, month.Year(), int(month.Month())); err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"client_id": integration.ClientID,
					"year":      month.Year(),
					"month":     int(month.Month()),
				}).Error("Erro ao sincronizar receita offline do cliente")
			}

			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"clients":  len(integrations),
	}).Info("Sincronização de receita offline concluída")

	s.lastSyncCompletedAt = time.Now()
}

// processClientMonth busca o total faturado no iCount e grava a entrada do mês
func (s *OfflineRevenueSyncService) processClientMonth(integration *domain.ClientIntegration, year, month int) error {
	if integration.IcountAPIToken == nil || *integration.IcountAPIToken == "" {
		return fmt.Errorf("integração sem token do iCount")
	}

	companyID := ""
	if integration.IcountCompanyID != nil {
		companyID = *integration.IcountCompanyID
	}

	total, err := s.icountService.GetMonthlyOfflineRevenue(icount.GetMonthlyRevenueParams{
		CompanyID: companyID,
		APIToken:  *integration.IcountAPIToken,
		Year:      year,
		Month:     month,
	})
	if err != nil {
		return fmt.Errorf("erro ao obter receita do iCount: %w", err)
	}

	entry := &domain.OfflineRevenueEntry{
		ClientID:    integration.ClientID,
		Year:        year,
		Month:       month,
		Source:      domain.OfflineSourceIcountOther,
		AmountGross: total,
	}

	if err := s.offlineRepo.Upsert(entry); err != nil {
		return fmt.Errorf("erro ao salvar receita offline: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"client_id": integration.ClientID,
		"year":      year,
		"month":     month,
		"total":     total,
	}).Info("Receita offline do cliente salva com sucesso")

	return nil
}

// TriggerManualSync inicia manualmente uma sincronização de receita offline
func (s *OfflineRevenueSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de receita offline já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de receita offline")
	go s.syncOfflineRevenue()
}

// GetStatus retorna o status atual da sincronização
func (s *OfflineRevenueSyncService) GetStatus() map[string]any {
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
