package clienting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	icountmocks "github.com/yossefJiy/agency-ops-api/infrastructure/integrator/icount/mocks"
	poconvertodomain "github.com/yossefJiy/agency-ops-api/infrastructure/integrator/poconverto/domain"
	poconvertomocks "github.com/yossefJiy/agency-ops-api/infrastructure/integrator/poconverto/mocks"
	"github.com/yossefJiy/agency-ops-api/infrastructure/repository/mocks"
	"github.com/yossefJiy/agency-ops-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newServiceWithMocks(ctrl *gomock.Controller) (
	*Service,
	*mocks.MockClientRepository,
	*mocks.MockIntegrationRepository,
	*poconvertomocks.MockPoconvertoIntegrator,
	*icountmocks.MockIcountIntegrator,
) {
	clientRepo := mocks.NewMockClientRepository(ctrl)
	integrationRepo := mocks.NewMockIntegrationRepository(ctrl)
	poconvertoService := poconvertomocks.NewMockPoconvertoIntegrator(ctrl)
	icountService := icountmocks.NewMockIcountIntegrator(ctrl)

	service := &Service{
		clientRepository:      clientRepo,
		integrationRepository: integrationRepo,
		poconvertoService:     poconvertoService,
		icountService:         icountService,
	}

	return service, clientRepo, integrationRepo, poconvertoService, icountService
}

func TestService_CreateClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, clientRepo, _, _, _ := newServiceWithMocks(ctrl)

	clientRepo.EXPECT().
		CreateClient(gomock.Any()).
		DoAndReturn(func(client *domain.Client) (*domain.Client, error) {
			assert.Equal(t, "Loja Exemplo", client.Name)
			// Sem tipo de plano informado, o cliente nasce como regular e ativo
			assert.Equal(t, domain.PlanTypeRegular, client.PlanType)
			assert.Equal(t, domain.ClientStatusActive, client.Status)
			client.ID = "CLI001"
			return client, nil
		})

	created, err := service.CreateClient(&domain.CreateClientRequest{Name: "Loja Exemplo"})

	assert.NoError(t, err)
	assert.Equal(t, "CLI001", created.ID)
}

func TestService_CreateClient_SemNome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, _, _ := newServiceWithMocks(ctrl)

	created, err := service.CreateClient(&domain.CreateClientRequest{})

	assert.Nil(t, created)
	assert.ErrorIs(t, err, ErrClientNameRequired)
}

func TestService_GetClient_NaoEncontrado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, clientRepo, _, _, _ := newServiceWithMocks(ctrl)

	clientRepo.EXPECT().GetClientByID("CLI404").Return(nil, nil)

	client, err := service.GetClient("CLI404")

	assert.Nil(t, client)
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestService_UpsertIntegration(t *testing.T) {
	tests := []struct {
		name        string
		integration *domain.ClientIntegration
		setup       func(
			clientRepo *mocks.MockClientRepository,
			integrationRepo *mocks.MockIntegrationRepository,
			poconvertoService *poconvertomocks.MockPoconvertoIntegrator,
			icountService *icountmocks.MockIcountIntegrator,
		)
		validate func(t *testing.T, status *domain.IntegrationStatus, err error)
	}{
		{
			name: "Credenciais das duas plataformas - testa as duas conexões",
			integration: &domain.ClientIntegration{
				ClientID:            "CLI001",
				PoconvertoClientKey: stringPtr("pk_live_abc"),
				ShopDomain:          stringPtr("loja-exemplo.myshopify.com"),
				IcountCompanyID:     stringPtr("empresa-01"),
				IcountAPIToken:      stringPtr("tok_abc"),
			},
			setup: func(
				clientRepo *mocks.MockClientRepository,
				integrationRepo *mocks.MockIntegrationRepository,
				poconvertoService *poconvertomocks.MockPoconvertoIntegrator,
				icountService *icountmocks.MockIcountIntegrator,
			) {
				clientRepo.EXPECT().GetClientByID("CLI001").Return(&domain.Client{ID: "CLI001"}, nil)
				integrationRepo.EXPECT().Upsert(gomock.Any()).Return(nil)
				poconvertoService.EXPECT().
					CheckConnection(poconvertodomain.CheckConnectionParams{
						ClientKey:  "pk_live_abc",
						ShopDomain: "loja-exemplo.myshopify.com",
					}).
					Return(true, nil)
				icountService.EXPECT().CheckConnection("empresa-01", "tok_abc").Return(false, nil)
			},
			validate: func(t *testing.T, status *domain.IntegrationStatus, err error) {
				assert.NoError(t, err)
				assert.True(t, *status.PoconvertoConnected)
				assert.False(t, *status.IcountConnected)
			},
		},
		{
			name: "Só Poconverto configurado - iCount fica nil, não false",
			integration: &domain.ClientIntegration{
				ClientID:            "CLI001",
				PoconvertoClientKey: stringPtr("pk_live_abc"),
			},
			setup: func(
				clientRepo *mocks.MockClientRepository,
				integrationRepo *mocks.MockIntegrationRepository,
				poconvertoService *poconvertomocks.MockPoconvertoIntegrator,
				icountService *icountmocks.MockIcountIntegrator,
			) {
				clientRepo.EXPECT().GetClientByID("CLI001").Return(&domain.Client{ID: "CLI001"}, nil)
				integrationRepo.EXPECT().Upsert(gomock.Any()).Return(nil)
				poconvertoService.EXPECT().CheckConnection(gomock.Any()).Return(true, nil)
			},
			validate: func(t *testing.T, status *domain.IntegrationStatus, err error) {
				assert.NoError(t, err)
				assert.True(t, *status.PoconvertoConnected)
				assert.Nil(t, status.IcountConnected)
			},
		},
		{
			name: "Cliente inexistente - não grava credenciais",
			integration: &domain.ClientIntegration{
				ClientID: "CLI404",
			},
			setup: func(
				clientRepo *mocks.MockClientRepository,
				integrationRepo *mocks.MockIntegrationRepository,
				poconvertoService *poconvertomocks.MockPoconvertoIntegrator,
				icountService *icountmocks.MockIcountIntegrator,
			) {
				clientRepo.EXPECT().GetClientByID("CLI404").Return(nil, nil)
			},
			validate: func(t *testing.T, status *domain.IntegrationStatus, err error) {
				assert.Nil(t, status)
				assert.ErrorIs(t, err, ErrClientNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, clientRepo, integrationRepo, poconvertoService, icountService := newServiceWithMocks(ctrl)
			tt.setup(clientRepo, integrationRepo, poconvertoService, icountService)

			status, err := service.UpsertIntegration(tt.integration)
			tt.validate(t, status, err)
		})
	}
}

func stringPtr(s string) *string {
	return &s
}
