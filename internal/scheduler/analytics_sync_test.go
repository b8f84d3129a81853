package scheduler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	poconvertodomain "github.com/yossefJiy/agency-ops-api/infrastructure/integrator/poconverto/domain"
	poconvertomocks "github.com/yossefJiy/agency-ops-api/infrastructure/integrator/poconverto/mocks"
	"github.com/yossefJiy/agency-ops-api/infrastructure/repository/mocks"
	"github.com/yossefJiy/agency-ops-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestAnalyticsSyncService_processClient(t *testing.T) {
	tests := []struct {
		name        string
		integration *domain.ClientIntegration
		setup       func(poconvertoService *poconvertomocks.MockPoconvertoIntegrator, snapshotRepo *mocks.MockAnalyticsSnapshotRepository)
		wantErr     bool
	}{
		{
			name: "Cliente integrado - snapshots obtidos e persistidos",
			integration: &domain.ClientIntegration{
				ClientID:            "CLI001",
				PoconvertoClientKey: stringPtr("pk_live_abc"),
				ShopDomain:          stringPtr("loja-exemplo.myshopify.com"),
			},
			setup: func(poconvertoService *poconvertomocks.MockPoconvertoIntegrator, snapshotRepo *mocks.MockAnalyticsSnapshotRepository) {
				poconvertoService.EXPECT().
					GetMonthlySnapshots("CLI001", poconvertodomain.GetMetricsParams{
						ClientKey:  "pk_live_abc",
						ShopDomain: "loja-exemplo.myshopify.com",
						FromMonth:  "2025-01",
						ToMonth:    "2025-03",
					}).
					Return([]*domain.MonthlyAnalyticsSnapshot{
						{ClientID: "CLI001", Year: 2025, Month: 2, NetSales: 80000},
						{ClientID: "CLI001", Year: 2025, Month: 3, NetSales: 95000},
					}, nil)

				snapshotRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil).Times(2)
			},
			wantErr: false,
		},
		{
			name: "Integração sem chave do Poconverto",
			integration: &domain.ClientIntegration{
				ClientID: "CLI002",
			},
			setup:   func(poconvertoService *poconvertomocks.MockPoconvertoIntegrator, snapshotRepo *mocks.MockAnalyticsSnapshotRepository) {},
			wantErr: true,
		},
		{
			name: "Erro na API do Poconverto",
			integration: &domain.ClientIntegration{
				ClientID:            "CLI003",
				PoconvertoClientKey: stringPtr("pk_live_def"),
			},
			setup: func(poconvertoService *poconvertomocks.MockPoconvertoIntegrator, snapshotRepo *mocks.MockAnalyticsSnapshotRepository) {
				poconvertoService.EXPECT().
					GetMonthlySnapshots("CLI003", gomock.Any()).
					Return(nil, errors.New("timeout"))
			},
			wantErr: true,
		},
		{
			name: "Erro ao persistir snapshot interrompe o cliente",
			integration: &domain.ClientIntegration{
				ClientID:            "CLI004",
				PoconvertoClientKey: stringPtr("pk_live_ghi"),
			},
			setup: func(poconvertoService *poconvertomocks.MockPoconvertoIntegrator, snapshotRepo *mocks.MockAnalyticsSnapshotRepository) {
				poconvertoService.EXPECT().
					GetMonthlySnapshots("CLI004", gomock.Any()).
					Return([]*domain.MonthlyAnalyticsSnapshot{
						{ClientID: "CLI004", Year: 2025, Month: 2},
						{ClientID: "CLI004", Year: 2025, Month: 3},
					}, nil)

				snapshotRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					Return(errors.New("unique violation"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			integrationRepo := mocks.NewMockIntegrationRepository(ctrl)
			snapshotRepo := mocks.NewMockAnalyticsSnapshotRepository(ctrl)
			poconvertoService := poconvertomocks.NewMockPoconvertoIntegrator(ctrl)

			tt.setup(poconvertoService, snapshotRepo)

			service := &AnalyticsSyncService{
				integrationRepo:   integrationRepo,
				snapshotRepo:      snapshotRepo,
				poconvertoService: poconvertoService,
			}

			err := service.processClient(tt.integration, "2025-01", "2025-03")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAnalyticsSyncService_GetStatus(t *testing.T) {
	service := &AnalyticsSyncService{
		config: AnalyticsSyncConfig{
			CronSchedule: "0 3 * * *",
			SyncEnabled:  true,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, "0 3 * * *", status["sync_cron"])
	assert.Equal(t, true, status["sync_enabled"])
}

func stringPtr(s string) *string {
	return &s
}
