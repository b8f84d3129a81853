package billing

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
	*mocks.MockServiceCatalogRepository,
	*mocks.MockMonthlyServiceLineRepository,
	*mocks.MockProjectRepository,
	*mocks.MockClientRepository,
) {
	catalogRepo := mocks.NewMockServiceCatalogRepository(ctrl)
	lineRepo := mocks.NewMockMonthlyServiceLineRepository(ctrl)
	projectRepo := mocks.NewMockProjectRepository(ctrl)
	clientRepo := mocks.NewMockClientRepository(ctrl)

	service := &Service{
		catalogRepository: catalogRepo,
		lineRepository:    lineRepo,
		projectRepository: projectRepo,
		clientRepository:  clientRepo,
	}

	return service, catalogRepo, lineRepo, projectRepo, clientRepo
}

func trafficService() *domain.ServiceCatalogItem {
	return &domain.ServiceCatalogItem{
		ID:               "SRV001",
		Name:             "Gestão de tráfego pago",
		RegularUnitPrice: floatPtr(3500),
		PlanUnitPrice:    floatPtr(2900),
		Active:           true,
	}
}

func TestService_QuickAddLine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, catalogRepo, lineRepo, _, clientRepo := newServiceWithMocks(ctrl)

	clientRepo.EXPECT().
		GetClientByID("CLI001").
		Return(&domain.Client{ID: "CLI001", PlanType: domain.PlanTypeCommission}, nil)
	catalogRepo.EXPECT().GetServiceByID("SRV001").Return(trafficService(), nil)
	lineRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(line *domain.MonthlyServiceLine) (*domain.MonthlyServiceLine, error) {
			// Cliente em plano de comissão paga o preço de plano
			assert.Equal(t, 2900.0, *line.UnitPrice)
			assert.Equal(t, domain.PricingBasisPlan, *line.PricingBasis)
			assert.Equal(t, 1.0, line.Quantity)
			assert.Equal(t, 2900.0, line.MonthlyFee)
			line.ID = "LINE01"
			return line, nil
		})

	line, err := service.QuickAddLine("CLI001", 2025, 4, "SRV001")

	assert.NoError(t, err)
	assert.Equal(t, "LINE01", line.ID)
	assert.Equal(t, "Gestão de tráfego pago", *line.ServiceName)
}

func TestService_QuickAddLine_Validacoes(t *testing.T) {
	tests := []struct {
		name      string
		month     int
		serviceID string
		setup     func(catalogRepo *mocks.MockServiceCatalogRepository, clientRepo *mocks.MockClientRepository)
		expected  error
	}{
		{
			name:      "Mês fora do intervalo",
			month:     13,
			serviceID: "SRV001",
			setup:     func(catalogRepo *mocks.MockServiceCatalogRepository, clientRepo *mocks.MockClientRepository) {},
			expected:  ErrInvalidPeriod,
		},
		{
			name:      "Serviço sem ID",
			month:     4,
			serviceID: "",
			setup:     func(catalogRepo *mocks.MockServiceCatalogRepository, clientRepo *mocks.MockClientRepository) {},
			expected:  ErrServiceIDRequired,
		},
		{
			name:      "Serviço inexistente no catálogo",
			month:     4,
			serviceID: "SRV404",
			setup: func(catalogRepo *mocks.MockServiceCatalogRepository, clientRepo *mocks.MockClientRepository) {
				clientRepo.EXPECT().GetClientByID("CLI001").Return(&domain.Client{ID: "CLI001"}, nil)
				catalogRepo.EXPECT().GetServiceByID("SRV404").Return(nil, nil)
			},
			expected: ErrServiceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, catalogRepo, _, _, clientRepo := newServiceWithMocks(ctrl)
			tt.setup(catalogRepo, clientRepo)

			line, err := service.QuickAddLine("CLI001", 2025, tt.month, tt.serviceID)

			assert.Nil(t, line)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestService_UpdateLine_OverrideDePreco(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, lineRepo, _, _ := newServiceWithMocks(ctrl)

	basis := domain.PricingBasisPlan
	existing := &domain.MonthlyServiceLine{
		ID:           "LINE01",
		ClientID:     "CLI001",
		Year:         2025,
		Month:        4,
		UnitPrice:    floatPtr(2900),
		Quantity:     1,
		MonthlyFee:   2900,
		PricingBasis: &basis,
	}

	lineRepo.EXPECT().GetByID("LINE01").Return(existing, nil)
	lineRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(line *domain.MonthlyServiceLine) error {
			// Edição manual do preço marca a linha como override
			assert.Equal(t, 2500.0, *line.UnitPrice)
			assert.Equal(t, domain.PricingBasisOverride, *line.PricingBasis)
			return nil
		})

	updated, err := service.UpdateLine(&domain.UpdateMonthlyServiceLineRequest{
		ID:        "LINE01",
		UnitPrice: floatPtr(2500),
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.PricingBasisOverride, *updated.PricingBasis)
}

func TestService_UpdateLine_SemOverrideQuandoPrecoNaoMuda(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, lineRepo, _, _ := newServiceWithMocks(ctrl)

	basis := domain.PricingBasisPlan
	existing := &domain.MonthlyServiceLine{
		ID:           "LINE01",
		UnitPrice:    floatPtr(2900),
		Quantity:     1,
		MonthlyFee:   2900,
		PricingBasis: &basis,
	}

	lineRepo.EXPECT().GetByID("LINE01").Return(existing, nil)
	lineRepo.EXPECT().Update(gomock.Any()).Return(nil)

	status := string(domain.ServiceLineStatusDelivered)
	updated, err := service.UpdateLine(&domain.UpdateMonthlyServiceLineRequest{
		ID:     "LINE01",
		Status: &status,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.PricingBasisPlan, *updated.PricingBasis)
	assert.Equal(t, domain.ServiceLineStatusDelivered, updated.Status)
}

func TestService_GenerateProjectServiceLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, lineRepo, projectRepo, clientRepo := newServiceWithMocks(ctrl)

	project := &domain.Project{ID: "PRJ001", ClientID: "CLI001", Name: "Lançamento loja nova"}

	photoService := &domain.ServiceCatalogItem{
		ID:               "SRV002",
		Name:             "Produção de fotos",
		RegularUnitPrice: floatPtr(450),
		PlanUnitPrice:    floatPtr(380),
		Active:           true,
	}

	projectRepo.EXPECT().GetProjectByID("PRJ001").Return(project, nil)
	clientRepo.EXPECT().
		GetClientByID("CLI001").
		Return(&domain.Client{ID: "CLI001", PlanType: domain.PlanTypeCommission}, nil)
	projectRepo.EXPECT().GetRequiredServices("PRJ001").Return([]*domain.ProjectRequiredService{
		{ID: "REQ001", ProjectID: "PRJ001", ServiceID: "SRV001", DefaultQuantity: 1, Service: trafficService()},
		{ID: "REQ002", ProjectID: "PRJ001", ServiceID: "SRV002", DefaultQuantity: 20, Service: photoService},
	}, nil)

	// Primeiro serviço já gerado numa rodada anterior: pulado
	lineRepo.EXPECT().ExistsForKey("CLI001", 2025, 4, "SRV001", "PRJ001").Return(true, nil)
	lineRepo.EXPECT().ExistsForKey("CLI001", 2025, 4, "SRV002", "PRJ001").Return(false, nil)

	lineRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(line *domain.MonthlyServiceLine) (*domain.MonthlyServiceLine, error) {
			assert.Equal(t, "CLI001", line.ClientID)
			assert.Equal(t, "SRV002", *line.ServiceID)
			assert.Equal(t, "PRJ001", *line.LinkedProjectID)
			assert.Equal(t, 380.0, *line.UnitPrice)
			assert.Equal(t, 20.0, line.Quantity)
			assert.Equal(t, 7600.0, line.MonthlyFee)
			assert.Equal(t, domain.ServiceLineStatusPlanned, line.Status)
			return line, nil
		})

	response, err := service.GenerateProjectServiceLines(&domain.GenerateServiceLinesRequest{
		ProjectID: "PRJ001",
		Year:      2025,
		Month:     4,
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, response.Created)
	assert.Equal(t, 1, response.Skipped)
}

func TestService_GenerateProjectServiceLines_Idempotente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, lineRepo, projectRepo, clientRepo := newServiceWithMocks(ctrl)

	projectRepo.EXPECT().
		GetProjectByID("PRJ001").
		Return(&domain.Project{ID: "PRJ001", ClientID: "CLI001"}, nil)
	clientRepo.EXPECT().
		GetClientByID("CLI001").
		Return(&domain.Client{ID: "CLI001", PlanType: domain.PlanTypeRegular}, nil)
	projectRepo.EXPECT().GetRequiredServices("PRJ001").Return([]*domain.ProjectRequiredService{
		{ID: "REQ001", ProjectID: "PRJ001", ServiceID: "SRV001", DefaultQuantity: 1, Service: trafficService()},
	}, nil)

	// Segunda rodada completa: tudo já existe, nada é criado
	lineRepo.EXPECT().ExistsForKey("CLI001", 2025, 4, "SRV001", "PRJ001").Return(true, nil)

	response, err := service.GenerateProjectServiceLines(&domain.GenerateServiceLinesRequest{
		ProjectID: "PRJ001",
		Year:      2025,
		Month:     4,
	})

	assert.NoError(t, err)
	assert.Equal(t, 0, response.Created)
	assert.Equal(t, 1, response.Skipped)
}

func TestService_GenerateProjectServiceLines_ErroDeEscritaAborta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, lineRepo, projectRepo, clientRepo := newServiceWithMocks(ctrl)

	projectRepo.EXPECT().
		GetProjectByID("PRJ001").
		Return(&domain.Project{ID: "PRJ001", ClientID: "CLI001"}, nil)
	clientRepo.EXPECT().
		GetClientByID("CLI001").
		Return(&domain.Client{ID: "CLI001", PlanType: domain.PlanTypeRegular}, nil)
	projectRepo.EXPECT().GetRequiredServices("PRJ001").Return([]*domain.ProjectRequiredService{
		{ID: "REQ001", ProjectID: "PRJ001", ServiceID: "SRV001", DefaultQuantity: 1, Service: trafficService()},
		{ID: "REQ002", ProjectID: "PRJ001", ServiceID: "SRV002", DefaultQuantity: 1},
	}, nil)

	lineRepo.EXPECT().ExistsForKey("CLI001", 2025, 4, "SRV001", "PRJ001").Return(false, nil)
	lineRepo.EXPECT().Create(gomock.Any()).Return(nil, errors.New("unique violation"))

	response, err := service.GenerateProjectServiceLines(&domain.GenerateServiceLinesRequest{
		ProjectID: "PRJ001",
		Year:      2025,
		Month:     4,
	})

	assert.Nil(t, response)
	assert.ErrorIs(t, err, ErrDatabaseOperation)
}

func TestService_GenerateProjectServiceLines_ErroNaVerificacaoDeDuplicadaAborta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, lineRepo, projectRepo, clientRepo := newServiceWithMocks(ctrl)

	projectRepo.EXPECT().
		GetProjectByID("PRJ001").
		Return(&domain.Project{ID: "PRJ001", ClientID: "CLI001"}, nil)
	clientRepo.EXPECT().
		GetClientByID("CLI001").
		Return(&domain.Client{ID: "CLI001", PlanType: domain.PlanTypeRegular}, nil)
	projectRepo.EXPECT().GetRequiredServices("PRJ001").Return([]*domain.ProjectRequiredService{
		{ID: "REQ001", ProjectID: "PRJ001", ServiceID: "SRV001", DefaultQuantity: 1, Service: trafficService()},
	}, nil)

	// Falha na leitura de duplicidade aborta sem tentar criar a linha às cegas
	lineRepo.EXPECT().
		ExistsForKey("CLI001", 2025, 4, "SRV001", "PRJ001").
		Return(false, errors.New("connection reset"))
	lineRepo.EXPECT().Create(gomock.Any()).Times(0)

	response, err := service.GenerateProjectServiceLines(&domain.GenerateServiceLinesRequest{
		ProjectID: "PRJ001",
		Year:      2025,
		Month:     4,
	})

	assert.Nil(t, response)
	assert.ErrorIs(t, err, ErrDatabaseOperation)
}

func TestService_GenerateProjectServiceLines_ServicoRemovidoDoCatalogo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, catalogRepo, lineRepo, projectRepo, clientRepo := newServiceWithMocks(ctrl)

	projectRepo.EXPECT().
		GetProjectByID("PRJ001").
		Return(&domain.Project{ID: "PRJ001", ClientID: "CLI001"}, nil)
	clientRepo.EXPECT().
		GetClientByID("CLI001").
		Return(&domain.Client{ID: "CLI001", PlanType: domain.PlanTypeRegular}, nil)
	projectRepo.EXPECT().GetRequiredServices("PRJ001").Return([]*domain.ProjectRequiredService{
		{ID: "REQ001", ProjectID: "PRJ001", ServiceID: "SRV999", DefaultQuantity: 1},
		{ID: "REQ002", ProjectID: "PRJ001", ServiceID: "SRV001", DefaultQuantity: 1, Service: trafficService()},
	}, nil)

	lineRepo.EXPECT().ExistsForKey("CLI001", 2025, 4, "SRV999", "PRJ001").Return(false, nil)
	lineRepo.EXPECT().ExistsForKey("CLI001", 2025, 4, "SRV001", "PRJ001").Return(false, nil)

	// Template aponta para serviço que saiu do catálogo: a linha é ignorada
	// e a geração segue para as demais
	catalogRepo.EXPECT().GetServiceByID("SRV999").Return(nil, nil)
	lineRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(line *domain.MonthlyServiceLine) (*domain.MonthlyServiceLine, error) {
			assert.Equal(t, "SRV001", *line.ServiceID)
			return line, nil
		})

	response, err := service.GenerateProjectServiceLines(&domain.GenerateServiceLinesRequest{
		ProjectID: "PRJ001",
		Year:      2025,
		Month:     4,
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, response.Created)
	assert.Equal(t, 1, response.Skipped)
}

func TestService_GenerateProjectServiceLines_ProjetoNaoEncontrado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, projectRepo, _ := newServiceWithMocks(ctrl)

	projectRepo.EXPECT().GetProjectByID("PRJ404").Return(nil, nil)

	response, err := service.GenerateProjectServiceLines(&domain.GenerateServiceLinesRequest{
		ProjectID: "PRJ404",
		Year:      2025,
		Month:     4,
	})

	assert.Nil(t, response)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func floatPtr(f float64) *float64 {
	return &f
}
