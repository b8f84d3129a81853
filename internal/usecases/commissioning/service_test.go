package commissioning

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yossefJiy/agency-ops-api/infrastructure/repository/mocks"
	"github.com/yossefJiy/agency-ops-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_CommissionForMonth(t *testing.T) {
	plan := &domain.CommissionPlan{
		ID:         "PLAN01",
		ClientID:   "CLI001",
		MinimumFee: 4350,
		Base:       domain.CommissionBaseNetSales,
		IsActive:   true,
		Tiers: []*domain.CommissionTier{
			{ID: "T1", ThresholdSales: 60000, RatePercent: 14, OrderIndex: 1},
			{ID: "T2", ThresholdSales: 80000, RatePercent: 13, OrderIndex: 2},
		},
	}

	tests := []struct {
		name     string
		setup    func(planRepo *mocks.MockCommissionPlanRepository, snapshotRepo *mocks.MockAnalyticsSnapshotRepository)
		validate func(t *testing.T, result *domain.CommissionResult, err error)
	}{
		{
			name: "Mês com plano e snapshot - comissão calculada",
			setup: func(planRepo *mocks.MockCommissionPlanRepository, snapshotRepo *mocks.MockAnalyticsSnapshotRepository) {
				planRepo.EXPECT().GetActivePlanByClient("CLI001").Return(plan, nil)
				snapshotRepo.EXPECT().GetByClientAndYear("CLI001", 2025).Return([]*domain.MonthlyAnalyticsSnapshot{
					{ClientID: "CLI001", Year: 2025, Month: 2, NetSales: 40000},
					{ClientID: "CLI001", Year: 2025, Month: 3, NetSales: 95000},
				}, nil)
			},
			validate: func(t *testing.T, result *domain.CommissionResult, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Equal(t, "T2", result.TierUsed.ID)
				assert.Equal(t, 12350.0, result.FinalDue)
				assert.False(t, result.IsMinimum)
			},
		},
		{
			name: "Cliente sem plano ativo - resultado nil, não zero",
			setup: func(planRepo *mocks.MockCommissionPlanRepository, snapshotRepo *mocks.MockAnalyticsSnapshotRepository) {
				planRepo.EXPECT().GetActivePlanByClient("CLI001").Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.CommissionResult, err error) {
				assert.NoError(t, err)
				assert.Nil(t, result)
			},
		},
		{
			name: "Mês sem snapshot sincronizado - resultado nil, não zero",
			setup: func(planRepo *mocks.MockCommissionPlanRepository, snapshotRepo *mocks.MockAnalyticsSnapshotRepository) {
				planRepo.EXPECT().GetActivePlanByClient("CLI001").Return(plan, nil)
				snapshotRepo.EXPECT().GetByClientAndYear("CLI001", 2025).Return([]*domain.MonthlyAnalyticsSnapshot{
					{ClientID: "CLI001", Year: 2025, Month: 2, NetSales: 40000},
				}, nil)
			},
			validate: func(t *testing.T, result *domain.CommissionResult, err error) {
				assert.NoError(t, err)
				assert.Nil(t, result)
			},
		},
		{
			name: "Plano com base em vendas brutas",
			setup: func(planRepo *mocks.MockCommissionPlanRepository, snapshotRepo *mocks.MockAnalyticsSnapshotRepository) {
				grossPlan := &domain.CommissionPlan{
					ID:         "PLAN02",
					ClientID:   "CLI001",
					MinimumFee: 4350,
					Base:       domain.CommissionBaseGrossSales,
					Tiers:      plan.Tiers,
				}
				planRepo.EXPECT().GetActivePlanByClient("CLI001").Return(grossPlan, nil)
				snapshotRepo.EXPECT().GetByClientAndYear("CLI001", 2025).Return([]*domain.MonthlyAnalyticsSnapshot{
					{ClientID: "CLI001", Year: 2025, Month: 3, GrossSales: 100000, NetSales: 70000},
				}, nil)
			},
			validate: func(t *testing.T, result *domain.CommissionResult, err error) {
				assert.NoError(t, err)
				// 100000 brutos na faixa de 13%, ignorando os 70000 líquidos
				assert.Equal(t, 13000.0, result.Commission)
			},
		},
		{
			name: "Falha ao consultar plano",
			setup: func(planRepo *mocks.MockCommissionPlanRepository, snapshotRepo *mocks.MockAnalyticsSnapshotRepository) {
				planRepo.EXPECT().GetActivePlanByClient("CLI001").Return(nil, errors.New("connection refused"))
			},
			validate: func(t *testing.T, result *domain.CommissionResult, err error) {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, ErrDatabaseOperation)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			planRepo := mocks.NewMockCommissionPlanRepository(ctrl)
			snapshotRepo := mocks.NewMockAnalyticsSnapshotRepository(ctrl)
			tt.setup(planRepo, snapshotRepo)

			service := &Service{
				planRepository:     planRepo,
				snapshotRepository: snapshotRepo,
			}

			result, err := service.CommissionForMonth("CLI001", 2025, 3)
			tt.validate(t, result, err)
		})
	}
}

func TestService_CreatePlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	planRepo := mocks.NewMockCommissionPlanRepository(ctrl)
	snapshotRepo := mocks.NewMockAnalyticsSnapshotRepository(ctrl)

	service := &Service{
		planRepository:     planRepo,
		snapshotRepository: snapshotRepo,
	}

	planRepo.EXPECT().
		CreatePlan(gomock.Any()).
		DoAndReturn(func(plan *domain.CommissionPlan) (*domain.CommissionPlan, error) {
			assert.Equal(t, "CLI001", plan.ClientID)
			assert.Equal(t, 4350.0, plan.MinimumFee)
			assert.Len(t, plan.Tiers, 2)
			assert.Equal(t, 60000.0, plan.Tiers[0].ThresholdSales)
			plan.ID = "PLAN01"
			return plan, nil
		})

	created, err := service.CreatePlan(&domain.CreateCommissionPlanRequest{
		ClientID:   "CLI001",
		Name:       "Plano padrão",
		MinimumFee: 4350,
		IsActive:   true,
		Tiers: []*domain.CreateCommissionTierInline{
			{ThresholdSales: 60000, RatePercent: 14, OrderIndex: 1},
			{ThresholdSales: 80000, RatePercent: 13, OrderIndex: 2},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, "PLAN01", created.ID)
}

func TestService_CreatePlan_SemClientID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := &Service{
		planRepository:     mocks.NewMockCommissionPlanRepository(ctrl),
		snapshotRepository: mocks.NewMockAnalyticsSnapshotRepository(ctrl),
	}

	created, err := service.CreatePlan(&domain.CreateCommissionPlanRequest{Name: "Plano sem cliente"})

	assert.Nil(t, created)
	assert.ErrorIs(t, err, ErrClientIDRequired)
}
