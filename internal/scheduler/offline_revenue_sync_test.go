package scheduler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yossefJiy/agency-ops-api/infrastructure/integrator/icount"
	icountmocks "github.com/yossefJiy/agency-ops-api/infrastructure/integrator/icount/mocks"
	"github.com/yossefJiy/agency-ops-api/infrastructure/repository/mocks"
	"github.com/yossefJiy/agency-ops-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestOfflineRevenueSyncService_processClientMonth(t *testing.T) {
	tests := []struct {
		name        string
		integration *domain.ClientIntegration
		setup       func(icountService *icountmocks.MockIcountIntegrator, offlineRepo *mocks.MockOfflineRevenueRepository)
		wantErr     bool
	}{
		{
			name: "Cliente integrado - total do mês gravado como icount_other",
			integration: &domain.ClientIntegration{
				ClientID:        "CLI001",
				IcountCompanyID: stringPtr("empresa-01"),
				IcountAPIToken:  stringPtr("tok_abc"),
			},
			setup: func(icountService *icountmocks.MockIcountIntegrator, offlineRepo *mocks.MockOfflineRevenueRepository) {
				icountService.EXPECT().
					GetMonthlyOfflineRevenue(icount.GetMonthlyRevenueParams{
						CompanyID: "empresa-01",
						APIToken:  "tok_abc",
						Year:      2025,
						Month:     3,
					}).
					Return(12500.0, nil)

				offlineRepo.EXPECT().
					Upsert(gomock.Any()).
					DoAndReturn(func(entry *domain.OfflineRevenueEntry) error {
						assert.Equal(t, "CLI001", entry.ClientID)
						assert.Equal(t, 2025, entry.Year)
						assert.Equal(t, 3, entry.Month)
						assert.Equal(t, domain.OfflineSourceIcountOther, entry.Source)
						assert.Equal(t, 12500.0, entry.AmountGross)
						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "Integração sem token do iCount",
			integration: &domain.ClientIntegration{
				ClientID: "CLI002",
			},
			setup:   func(icountService *icountmocks.MockIcountIntegrator, offlineRepo *mocks.MockOfflineRevenueRepository) {},
			wantErr: true,
		},
		{
			name: "Erro na API do iCount",
			integration: &domain.ClientIntegration{
				ClientID:       "CLI003",
				IcountAPIToken: stringPtr("tok_def"),
			},
			setup: func(icountService *icountmocks.MockIcountIntegrator, offlineRepo *mocks.MockOfflineRevenueRepository) {
				icountService.EXPECT().
					GetMonthlyOfflineRevenue(gomock.Any()).
					Return(0.0, errors.New("unauthorized"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			integrationRepo := mocks.NewMockIntegrationRepository(ctrl)
			offlineRepo := mocks.NewMockOfflineRevenueRepository(ctrl)
			icountService := icountmocks.NewMockIcountIntegrator(ctrl)

			tt.setup(icountService, offlineRepo)

			service := &OfflineRevenueSyncService{
				integrationRepo: integrationRepo,
				offlineRepo:     offlineRepo,
				icountService:   icountService,
			}

			err := service.processClientMonth(tt.integration, 2025, 3)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
