package agreeing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yossefJiy/agency-ops-api/infrastructure/repository/mocks"
	"github.com/yossefJiy/agency-ops-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newServiceWithMocks(ctrl *gomock.Controller) (
	*Service,
	*mocks.MockClientRepository,
	*mocks.MockAgreementRepository,
	*mocks.MockPayoutRepository,
	*mocks.MockMonthlyServiceLineRepository,
) {
	clientRepo := mocks.NewMockClientRepository(ctrl)
	agreementRepo := mocks.NewMockAgreementRepository(ctrl)
	payoutRepo := mocks.NewMockPayoutRepository(ctrl)
	lineRepo := mocks.NewMockMonthlyServiceLineRepository(ctrl)

	service := &Service{
		clientRepository:    clientRepo,
		agreementRepository: agreementRepo,
		payoutRepository:    payoutRepo,
		lineRepository:      lineRepo,
	}

	return service, clientRepo, agreementRepo, payoutRepo, lineRepo
}

func TestService_CreateAgreement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, clientRepo, agreementRepo, _, _ := newServiceWithMocks(ctrl)

	clientRepo.EXPECT().GetClientByID("CLI001").Return(&domain.Client{ID: "CLI001"}, nil)
	agreementRepo.EXPECT().
		CreateAgreement(gomock.Any()).
		DoAndReturn(func(agreement *domain.PercentAgreement) (*domain.PercentAgreement, error) {
			assert.Equal(t, "CLI001", agreement.ClientID)
			assert.Equal(t, 10.0, agreement.PercentRate)
			assert.Equal(t, "icount", agreement.RevenueSource)
			assert.Equal(t, 2025, agreement.StartYear)
			assert.Equal(t, 6, agreement.StartMonth)
			// Status ausente nasce ativo
			assert.Equal(t, domain.AgreementStatusActive, agreement.Status)

			agreement.ID = "AGR001"
			return agreement, nil
		})

	agreement, err := service.CreateAgreement(&domain.CreatePercentAgreementRequest{
		ClientID:      "CLI001",
		PercentRate:   10,
		RevenueSource: "icount",
		StartYear:     2025,
		StartMonth:    6,
	})

	assert.NoError(t, err)
	assert.NotNil(t, agreement)
	assert.Equal(t, "AGR001", agreement.ID)
}

func TestService_CreateAgreement_Validacao(t *testing.T) {
	tests := []struct {
		name    string
		request *domain.CreatePercentAgreementRequest
		wantErr error
	}{
		{
			name: "Sem percentual",
			request: &domain.CreatePercentAgreementRequest{
				ClientID:      "CLI001",
				RevenueSource: "icount",
				StartYear:     2025,
				StartMonth:    6,
			},
			wantErr: ErrRateRequired,
		},
		{
			name: "Sem origem de receita",
			request: &domain.CreatePercentAgreementRequest{
				ClientID:    "CLI001",
				PercentRate: 10,
				StartYear:   2025,
				StartMonth:  6,
			},
			wantErr: ErrRevenueSourceRequired,
		},
		{
			name: "Mês de início inválido",
			request: &domain.CreatePercentAgreementRequest{
				ClientID:      "CLI001",
				PercentRate:   10,
				RevenueSource: "icount",
				StartYear:     2025,
				StartMonth:    13,
			},
			wantErr: ErrInvalidMonth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, _, _, _, _ := newServiceWithMocks(ctrl)

			agreement, err := service.CreateAgreement(tt.request)

			assert.Nil(t, agreement)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_CreateAgreement_ClienteNaoEncontrado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, clientRepo, _, _, _ := newServiceWithMocks(ctrl)

	clientRepo.EXPECT().GetClientByID("CLI404").Return(nil, nil)

	agreement, err := service.CreateAgreement(&domain.CreatePercentAgreementRequest{
		ClientID:      "CLI404",
		PercentRate:   10,
		RevenueSource: "icount",
		StartYear:     2025,
		StartMonth:    6,
	})

	assert.Nil(t, agreement)
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestService_UpdateAgreement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, agreementRepo, _, _ := newServiceWithMocks(ctrl)

	agreementRepo.EXPECT().
		GetAgreementByID("AGR001").
		Return(&domain.PercentAgreement{ID: "AGR001", ClientID: "CLI001"}, nil)

	request := &domain.UpdatePercentAgreementRequest{
		ID:          "AGR001",
		PercentRate: floatPtr(12),
		Status:      stringPtr(string(domain.AgreementStatusPaused)),
	}

	agreementRepo.EXPECT().UpdateAgreement(request).Return(nil)

	assert.NoError(t, service.UpdateAgreement(request))
}

func TestService_UpdateAgreement_NaoEncontrado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, agreementRepo, _, _ := newServiceWithMocks(ctrl)

	agreementRepo.EXPECT().GetAgreementByID("AGR404").Return(nil, nil)

	err := service.UpdateAgreement(&domain.UpdatePercentAgreementRequest{ID: "AGR404"})

	assert.ErrorIs(t, err, ErrAgreementNotFound)
}

func TestService_UpsertPayout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, clientRepo, agreementRepo, payoutRepo, _ := newServiceWithMocks(ctrl)

	clientRepo.EXPECT().GetClientByID("CLI001").Return(&domain.Client{ID: "CLI001"}, nil)
	agreementRepo.EXPECT().
		GetAgreementByID("AGR001").
		Return(&domain.PercentAgreement{ID: "AGR001", ClientID: "CLI001"}, nil)
	payoutRepo.EXPECT().
		Upsert(gomock.Any()).
		DoAndReturn(func(payout *domain.Payout) error {
			assert.Equal(t, "CLI001", payout.ClientID)
			assert.Equal(t, "AGR001", *payout.AgreementID)
			assert.Equal(t, 2025, payout.Year)
			assert.Equal(t, 4, payout.Month)
			assert.Equal(t, 8500.0, payout.Amount)
			return nil
		})

	payout, err := service.UpsertPayout(&domain.UpsertPayoutRequest{
		ClientID:    "CLI001",
		AgreementID: stringPtr("AGR001"),
		Year:        2025,
		Month:       4,
		Amount:      8500,
	})

	assert.NoError(t, err)
	assert.NotNil(t, payout)
}

func TestService_UpsertPayout_MesInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, _, _ := newServiceWithMocks(ctrl)

	payout, err := service.UpsertPayout(&domain.UpsertPayoutRequest{
		ClientID: "CLI001",
		Year:     2025,
		Month:    0,
		Amount:   8500,
	})

	assert.Nil(t, payout)
	assert.ErrorIs(t, err, ErrInvalidMonth)
}

func TestService_UpsertPayout_AcordoNaoEncontrado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, clientRepo, agreementRepo, payoutRepo, _ := newServiceWithMocks(ctrl)

	clientRepo.EXPECT().GetClientByID("CLI001").Return(&domain.Client{ID: "CLI001"}, nil)
	agreementRepo.EXPECT().GetAgreementByID("AGR404").Return(nil, nil)
	payoutRepo.EXPECT().Upsert(gomock.Any()).Times(0)

	payout, err := service.UpsertPayout(&domain.UpsertPayoutRequest{
		ClientID:    "CLI001",
		AgreementID: stringPtr("AGR404"),
		Year:        2025,
		Month:       4,
		Amount:      8500,
	})

	assert.Nil(t, payout)
	assert.ErrorIs(t, err, ErrAgreementNotFound)
}

func TestService_BuildPayoutSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, clientRepo, _, payoutRepo, lineRepo := newServiceWithMocks(ctrl)

	clientRepo.EXPECT().GetClientByID("CLI001").Return(&domain.Client{ID: "CLI001"}, nil)
	payoutRepo.EXPECT().
		GetByClientAndYear("CLI001", 2025).
		Return([]*domain.Payout{
			{ClientID: "CLI001", Year: 2025, Month: 3, Amount: 9000},
			{ClientID: "CLI001", Year: 2025, Month: 3, Amount: 1500},
			{ClientID: "CLI001", Year: 2025, Month: 7, Amount: 4000},
		}, nil)
	lineRepo.EXPECT().
		GetByClientAndYear("CLI001", 2025).
		Return([]*domain.MonthlyServiceLine{
			{ClientID: "CLI001", Year: 2025, Month: 3, UnitPrice: floatPtr(2900), Quantity: 2},
			{ClientID: "CLI001", Year: 2025, Month: 3, MonthlyFee: 1800},
		}, nil)

	summary, err := service.BuildPayoutSummary("CLI001", 2025)

	assert.NoError(t, err)
	assert.NotNil(t, summary)
	assert.Len(t, summary.Rows, 12)

	// Março: repasses somados contra os honorários do mês
	march := summary.Rows[2]
	assert.Equal(t, 3, march.Month)
	assert.Equal(t, 10500.0, march.PayoutTotal)
	assert.Equal(t, 7600.0, march.ServiceFees)
	assert.Equal(t, 2900.0, march.Delta)

	// Julho: só repasse, sem honorários
	july := summary.Rows[6]
	assert.Equal(t, 4000.0, july.PayoutTotal)
	assert.Equal(t, 0.0, july.ServiceFees)
	assert.Equal(t, 4000.0, july.Delta)

	// Janeiro: mês vazio zera as três colunas
	january := summary.Rows[0]
	assert.Equal(t, 0.0, january.PayoutTotal)
	assert.Equal(t, 0.0, january.ServiceFees)
	assert.Equal(t, 0.0, january.Delta)

	assert.Equal(t, 14500.0, summary.TotalPayouts)
	assert.Equal(t, 7600.0, summary.TotalServiceFees)
	assert.Equal(t, 6900.0, summary.TotalDelta)
}

func TestService_BuildPayoutSummary_ErroEmConsulta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, clientRepo, _, payoutRepo, lineRepo := newServiceWithMocks(ctrl)

	clientRepo.EXPECT().GetClientByID("CLI001").Return(&domain.Client{ID: "CLI001"}, nil)
	payoutRepo.EXPECT().GetByClientAndYear("CLI001", 2025).Return(nil, errors.New("connection refused"))
	lineRepo.EXPECT().GetByClientAndYear("CLI001", 2025).Return(nil, nil)

	summary, err := service.BuildPayoutSummary("CLI001", 2025)

	assert.Nil(t, summary)
	assert.ErrorIs(t, err, ErrDatabaseOperation)
}

func floatPtr(f float64) *float64 {
	return &f
}

func stringPtr(s string) *string {
	return &s
}
