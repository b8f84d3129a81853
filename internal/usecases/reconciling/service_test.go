package reconciling

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/yossefJiy/agency-ops-api/infrastructure/repository/mocks"
	"github.com/yossefJiy/agency-ops-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newServiceWithMocks(ctrl *gomock.Controller) (
	*Service,
	*mocks.MockClientRepository,
	*mocks.MockAnalyticsSnapshotRepository,
	*mocks.MockOfflineRevenueRepository,
	*mocks.MockMonthlyServiceLineRepository,
	*mocks.MockCommissionPlanRepository,
) {
	clientRepo := mocks.NewMockClientRepository(ctrl)
	snapshotRepo := mocks.NewMockAnalyticsSnapshotRepository(ctrl)
	offlineRepo := mocks.NewMockOfflineRevenueRepository(ctrl)
	lineRepo := mocks.NewMockMonthlyServiceLineRepository(ctrl)
	planRepo := mocks.NewMockCommissionPlanRepository(ctrl)

	service := &Service{
		clientRepository:   clientRepo,
		snapshotRepository: snapshotRepo,
		offlineRepository:  offlineRepo,
		lineRepository:     lineRepo,
		planRepository:     planRepo,
	}

	return service, clientRepo, snapshotRepo, offlineRepo, lineRepo, planRepo
}

func TestService_BuildYearReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, clientRepo, snapshotRepo, offlineRepo, lineRepo, planRepo := newServiceWithMocks(ctrl)

	// Ano fechado (passado) para o bloco de KPIs do mês corrente não entrar
	year := time.Now().Year() - 1

	client := &domain.Client{ID: "CLI001", Name: "Loja Exemplo", PlanType: domain.PlanTypeCommission}

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

	clientRepo.EXPECT().GetClientByID("CLI001").Return(client, nil)

	// Snapshot de março do ano do relatório e de março do ano anterior (YoY)
	snapshotRepo.EXPECT().
		GetByClientAndYears("CLI001", []int{year, year - 1}).
		Return([]*domain.MonthlyAnalyticsSnapshot{
			{
				ClientID:     "CLI001",
				Year:         year,
				Month:        3,
				GrossSales:   110000,
				NetSales:     95000,
				Orders:       42,
				Sessions:     2100,
				AdSpendTotal: 19000,
			},
			{
				ClientID: "CLI001",
				Year:     year - 1,
				Month:    3,
				NetSales: 76000,
			},
		}, nil)

	offlineRepo.EXPECT().
		GetByClientAndYear("CLI001", year).
		Return([]*domain.OfflineRevenueEntry{
			{ClientID: "CLI001", Year: year, Month: 3, Source: domain.OfflineSourceIcountOther, AmountGross: 12000},
			{ClientID: "CLI001", Year: year, Month: 3, Source: domain.OfflineSourcePhone, AmountGross: 3000},
			{ClientID: "CLI001", Year: year, Month: 7, Source: domain.OfflineSourceIcountOther, AmountGross: 5000},
		}, nil)

	lineRepo.EXPECT().
		GetByClientAndYear("CLI001", year).
		Return([]*domain.MonthlyServiceLine{
			{ClientID: "CLI001", Year: year, Month: 3, UnitPrice: floatPtr(2900), Quantity: 2},
			{ClientID: "CLI001", Year: year, Month: 3, MonthlyFee: 1800},
		}, nil)

	planRepo.EXPECT().GetActivePlanByClient("CLI001").Return(plan, nil)

	report, err := service.BuildYearReport("CLI001", year)

	assert.NoError(t, err)
	assert.NotNil(t, report)
	assert.Equal(t, "CLI001", report.ClientID)
	assert.Equal(t, year, report.Year)
	assert.Len(t, report.Rows, 12)
	assert.Nil(t, report.Current)

	// Março: mês com dados completos
	march := report.Rows[2]
	assert.Equal(t, 3, march.Month)
	assert.Equal(t, 95000.0, *march.NetSales)
	assert.Equal(t, 15000.0, march.OfflineRevenue)
	assert.Equal(t, 7600.0, march.ServiceFees)
	assert.InDelta(t, 5.0, *march.MER, 0.0001)
	assert.InDelta(t, 2.0, *march.ConversionRate, 0.0001)
	assert.InDelta(t, 25.0, *march.NetSalesYoY, 0.0001)

	// Comissão de março: 95000 na faixa de 13% = 12350
	assert.NotNil(t, march.Commission)
	assert.Equal(t, "T2", march.Commission.TierUsed.ID)
	assert.Equal(t, 12350.0, march.Commission.FinalDue)
	assert.False(t, march.Commission.IsMinimum)

	// Janeiro: mês sem snapshot aparece vazio, não zerado
	january := report.Rows[0]
	assert.Equal(t, 1, january.Month)
	assert.Nil(t, january.NetSales)
	assert.Nil(t, january.MER)
	assert.Nil(t, january.Commission)
	assert.Equal(t, 0.0, january.OfflineRevenue)

	// Julho: só receita offline
	july := report.Rows[6]
	assert.Nil(t, july.NetSales)
	assert.Equal(t, 5000.0, july.OfflineRevenue)

	// Rodapé: só março contribui com vendas; offline soma março e julho
	assert.Equal(t, 95000.0, report.Totals.NetSales)
	assert.Equal(t, 110000.0, report.Totals.GrossSales)
	assert.Equal(t, 42, report.Totals.Orders)
	assert.Equal(t, 2100, report.Totals.Sessions)
	assert.Equal(t, 20000.0, report.Totals.OfflineRevenue)
	assert.Equal(t, 7600.0, report.Totals.ServiceFees)
	assert.Equal(t, 12350.0, report.Totals.CommissionDue)
}

func TestService_BuildYearReport_SemPlanoAtivo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, clientRepo, snapshotRepo, offlineRepo, lineRepo, planRepo := newServiceWithMocks(ctrl)

	year := time.Now().Year() - 1

	clientRepo.EXPECT().GetClientByID("CLI002").Return(&domain.Client{ID: "CLI002"}, nil)
	snapshotRepo.EXPECT().
		GetByClientAndYears("CLI002", []int{year, year - 1}).
		Return([]*domain.MonthlyAnalyticsSnapshot{
			{ClientID: "CLI002", Year: year, Month: 5, NetSales: 50000},
		}, nil)
	offlineRepo.EXPECT().GetByClientAndYear("CLI002", year).Return(nil, nil)
	lineRepo.EXPECT().GetByClientAndYear("CLI002", year).Return(nil, nil)
	planRepo.EXPECT().GetActivePlanByClient("CLI002").Return(nil, nil)

	report, err := service.BuildYearReport("CLI002", year)

	assert.NoError(t, err)
	assert.Nil(t, report.Rows[4].Commission)
	assert.Equal(t, 0.0, report.Totals.CommissionDue)
}

func TestService_BuildYearReport_ClienteNaoEncontrado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, clientRepo, _, _, _, _ := newServiceWithMocks(ctrl)

	clientRepo.EXPECT().GetClientByID("CLI404").Return(nil, nil)

	report, err := service.BuildYearReport("CLI404", 2025)

	assert.Nil(t, report)

	var reconciliationErr *ReconciliationError
	assert.ErrorAs(t, err, &reconciliationErr)
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestService_BuildYearReport_ErroEmConsulta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, clientRepo, snapshotRepo, offlineRepo, lineRepo, planRepo := newServiceWithMocks(ctrl)

	year := time.Now().Year() - 1

	clientRepo.EXPECT().GetClientByID("CLI001").Return(&domain.Client{ID: "CLI001"}, nil)
	snapshotRepo.EXPECT().
		GetByClientAndYears("CLI001", []int{year, year - 1}).
		Return(nil, errors.New("connection refused"))
	offlineRepo.EXPECT().GetByClientAndYear("CLI001", year).Return(nil, nil)
	lineRepo.EXPECT().GetByClientAndYear("CLI001", year).Return(nil, nil)
	planRepo.EXPECT().GetActivePlanByClient("CLI001").Return(nil, nil)

	report, err := service.BuildYearReport("CLI001", year)

	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrDatabaseOperation)
}

func TestService_UpsertOfflineRevenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, clientRepo, _, offlineRepo, _, _ := newServiceWithMocks(ctrl)

	clientRepo.EXPECT().GetClientByID("CLI001").Return(&domain.Client{ID: "CLI001"}, nil)
	offlineRepo.EXPECT().
		Upsert(gomock.Any()).
		DoAndReturn(func(entry *domain.OfflineRevenueEntry) error {
			assert.Equal(t, "CLI001", entry.ClientID)
			assert.Equal(t, 2025, entry.Year)
			assert.Equal(t, 4, entry.Month)
			// Origem ausente cai para "other"
			assert.Equal(t, domain.OfflineSourceOther, entry.Source)
			assert.Equal(t, 12000.0, entry.AmountGross)
			return nil
		})

	entry, err := service.UpsertOfflineRevenue(&domain.UpsertOfflineRevenueRequest{
		ClientID:    "CLI001",
		Year:        2025,
		Month:       4,
		AmountGross: 12000,
	})

	assert.NoError(t, err)
	assert.NotNil(t, entry)
	assert.Equal(t, domain.OfflineSourceOther, entry.Source)
}

func TestService_UpsertOfflineRevenue_MesInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, _, _, _ := newServiceWithMocks(ctrl)

	entry, err := service.UpsertOfflineRevenue(&domain.UpsertOfflineRevenueRequest{
		ClientID:    "CLI001",
		Year:        2025,
		Month:       13,
		AmountGross: 12000,
	})

	assert.Nil(t, entry)
	assert.ErrorIs(t, err, ErrInvalidMonth)
}

func floatPtr(f float64) *float64 {
	return &f
}
