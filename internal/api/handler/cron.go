package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/yossefJiy/agency-ops-api/internal/domain"
	"github.com/yossefJiy/agency-ops-api/internal/scheduler"
	"github.com/yossefJiy/agency-ops-api/pkg/apiErrors"
	"github.com/yossefJiy/agency-ops-api/pkg/middleware"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeAnalytics      = "analytics"
	CronJobTypeOfflineRevenue = "offline-revenue"
	CronJobTypeAll            = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	AnalyticsSyncService      *scheduler.AnalyticsSyncService
	OfflineRevenueSyncService *scheduler.OfflineRevenueSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Apenas administradores podem executar cron jobs
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != domain.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeAnalytics:
			if services.AnalyticsSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de analytics não disponível", nil)
				return
			}
			services.AnalyticsSyncService.TriggerManualSync()

		case CronJobTypeOfflineRevenue:
			if services.OfflineRevenueSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de receita offline não disponível", nil)
				return
			}
			services.OfflineRevenueSyncService.TriggerManualSync()

		case CronJobTypeAll:
			if services.AnalyticsSyncService != nil {
				services.AnalyticsSyncService.TriggerManualSync()
			}
			if services.OfflineRevenueSyncService != nil {
				services.OfflineRevenueSyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: analytics, offline-revenue, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != domain.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		status := map[string]any{
			"analytics":       services.AnalyticsSyncService.GetStatus(),
			"offline-revenue": services.OfflineRevenueSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
