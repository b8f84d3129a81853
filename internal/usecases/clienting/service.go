package clienting

import (
	"github.com/sirupsen/logrus"
	"github.com/yossefJiy/agency-ops-api/infrastructure/integrator/icount"
	"github.com/yossefJiy/agency-ops-api/infrastructure/integrator/poconverto"
	poconvertodomain "github.com/yossefJiy/agency-ops-api/infrastructure/integrator/poconverto/domain"
	"github.com/yossefJiy/agency-ops-api/infrastructure/repository"
	"github.com/yossefJiy/agency-ops-api/internal/domain"
	"github.com/yossefJiy/agency-ops-api/pkg/apiErrors"
)

type ClientService interface {
	CreateClient(request *domain.CreateClientRequest) (*domain.Client, error)
	UpdateClient(request *domain.UpdateClientRequest) error
	GetClient(clientID string) (*domain.Client, error)
	ListClients() ([]*domain.Client, error)
	ArchiveClient(clientID string) error
	DeleteClient(clientID string) error
	GetIntegration(clientID string) (*domain.ClientIntegration, error)
	UpsertIntegration(integration *domain.ClientIntegration) (*domain.IntegrationStatus, error)
	GetIntegrationSettings() (map[string]string, error)
	UpdateIntegrationSettings(settings map[string]string) error
}

type Service struct {
	clientRepository      repository.ClientRepository
	integrationRepository repository.IntegrationRepository
	poconvertoService     poconverto.PoconvertoIntegrator
	icountService         icount.IcountIntegrator
}

func NewService(
	clientRepository repository.ClientRepository,
	integrationRepository repository.IntegrationRepository,
	poconvertoService poconverto.PoconvertoIntegrator,
	icountService icount.IcountIntegrator,
) ClientService {
	return &Service{
		clientRepository:      clientRepository,
		integrationRepository: integrationRepository,
		poconvertoService:     poconvertoService,
		icountService:         icountService,
	}
}

func (s *Service) CreateClient(request *domain.CreateClientRequest) (*domain.Client, error) {
	if request.Name == "" {
		return nil, NewClientError(ErrClientNameRequired, apiErrors.ErrMissingRequiredData, "O nome do cliente é obrigatório")
	}

	planType := request.PlanType
	if planType == "" {
		planType = domain.PlanTypeRegular
	}

	if planType != domain.PlanTypeRegular && planType != domain.PlanTypeCommission {
		return nil, NewClientError(ErrInvalidPlanType, apiErrors.ErrInvalidFormat, "Tipo de plano desconhecido: "+planType)
	}

	client := &domain.Client{
		Name:         request.Name,
		ContactName:  request.ContactName,
		ContactEmail: request.ContactEmail,
		ContactPhone: request.ContactPhone,
		PlanType:     planType,
		Status:       domain.ClientStatusActive,
		Notes:        request.Notes,
	}

	created, err := s.clientRepository.CreateClient(client)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar cliente no banco de dados")
		return nil, NewClientError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar cliente")
	}

	return created, nil
}

func (s *Service) UpdateClient(request *domain.UpdateClientRequest) error {
	existing, err := s.clientRepository.GetClientByID(request.ID)
	if err != nil {
		return NewClientError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar cliente")
	}
	if existing == nil {
		return NewClientError(ErrClientNotFound, apiErrors.ErrClientNotFound, "Cliente não encontrado: "+request.ID)
	}

	if request.PlanType != nil &&
		*request.PlanType != domain.PlanTypeRegular &&
		*request.PlanType != domain.PlanTypeCommission {
		return NewClientError(ErrInvalidPlanType, apiErrors.ErrInvalidFormat, "Tipo de plano desconhecido: "+*request.PlanType)
	}

	if err := s.clientRepository.UpdateClient(request); err != nil {
		logrus.WithError(err).Error("Erro ao atualizar cliente no banco de dados")
		return NewClientError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao atualizar cliente")
	}

	return nil
}

func (s *Service) GetClient(clientID string) (*domain.Client, error) {
	client, err := s.clientRepository.GetClientByID(clientID)
	if err != nil {
		return nil, NewClientError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar cliente")
	}
	if client == nil {
		return nil, NewClientError(ErrClientNotFound, apiErrors.ErrClientNotFound, "Cliente não encontrado: "+clientID)
	}

	return client, nil
}

func (s *Service) ListClients() ([]*domain.Client, error) {
	clients, err := s.clientRepository.ListClients()
	if err != nil {
		return nil, NewClientError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar clientes")
	}

	return clients, nil
}

// ArchiveClient arquiva o cliente. O histórico financeiro permanece no banco;
// apenas o status muda para fora das listagens ativas
func (s *Service) ArchiveClient(clientID string) error {
	existing, err := s.clientRepository.GetClientByID(clientID)
	if err != nil {
		return NewClientError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar cliente")
	}
	if existing == nil {
		return NewClientError(ErrClientNotFound, apiErrors.ErrClientNotFound, "Cliente não encontrado: "+clientID)
	}

	status := string(domain.ClientStatusArchived)
	return s.UpdateClient(&domain.UpdateClientRequest{
		ID:     clientID,
		Status: &status,
	})
}

// DeleteClient remove o cliente definitivamente. Diferente do arquivamento,
// as tabelas dependentes caem junto via ON DELETE CASCADE
func (s *Service) DeleteClient(clientID string) error {
	existing, err := s.clientRepository.GetClientByID(clientID)
	if err != nil {
		return NewClientError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar cliente")
	}
	if existing == nil {
		return NewClientError(ErrClientNotFound, apiErrors.ErrClientNotFound, "Cliente não encontrado: "+clientID)
	}

	if err := s.clientRepository.DeleteClient(clientID); err != nil {
		logrus.WithError(err).WithField("client_id", clientID).Error("Erro ao remover cliente")
		return NewClientError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao remover cliente")
	}

	return nil
}

func (s *Service) GetIntegration(clientID string) (*domain.ClientIntegration, error) {
	integration, err := s.integrationRepository.GetByClientID(clientID)
	if err != nil {
		return nil, NewClientError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar integração do cliente")
	}

	return integration, nil
}

// UpsertIntegration grava as credenciais de integração do cliente e testa as
// conexões configuradas. Falha de conexão não impede a gravação: o status de
// cada plataforma volta na resposta para o painel sinalizar
func (s *Service) UpsertIntegration(integration *domain.ClientIntegration) (*domain.IntegrationStatus, error) {
	client, err := s.clientRepository.GetClientByID(integration.ClientID)
	if err != nil {
		return nil, NewClientError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar cliente")
	}
	if client == nil {
		return nil, NewClientError(ErrClientNotFound, apiErrors.ErrClientNotFound, "Cliente não encontrado: "+integration.ClientID)
	}

	if err := s.integrationRepository.Upsert(integration); err != nil {
		logrus.WithError(err).Error("Erro ao salvar integração do cliente")
		return nil, NewClientError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar integração do cliente")
	}

	status := &domain.IntegrationStatus{ClientID: integration.ClientID}

	if integration.PoconvertoClientKey != nil && *integration.PoconvertoClientKey != "" {
		shopDomain := ""
		if integration.ShopDomain != nil {
			shopDomain = *integration.ShopDomain
		}

		ok, err := s.poconvertoService.CheckConnection(poconvertodomain.CheckConnectionParams{
			ClientKey:  *integration.PoconvertoClientKey,
			ShopDomain: shopDomain,
		})
		if err != nil {
			logrus.WithError(err).Warn("Falha ao validar conexão com o Poconverto")
		}
		status.PoconvertoConnected = &ok
	}

	if integration.IcountAPIToken != nil && *integration.IcountAPIToken != "" {
		companyID := ""
		if integration.IcountCompanyID != nil {
			companyID = *integration.IcountCompanyID
		}

		ok, err := s.icountService.CheckConnection(companyID, *integration.IcountAPIToken)
		if err != nil {
			logrus.WithError(err).Warn("Falha ao validar conexão com o iCount")
		}
		status.IcountConnected = &ok
	}

	return status, nil
}

// GetIntegrationSettings retorna as configurações globais de integração
// (URLs base e chaves de API compartilhadas pelas sincronizações)
func (s *Service) GetIntegrationSettings() (map[string]string, error) {
	settings, err := s.integrationRepository.GetSettings()
	if err != nil {
		return nil, NewClientError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar configurações de integração")
	}

	return settings, nil
}

// UpdateIntegrationSettings grava as configurações globais chave a chave
func (s *Service) UpdateIntegrationSettings(settings map[string]string) error {
	for key, value := range settings {
		if err := s.integrationRepository.UpsertSetting(key, value); err != nil {
			logrus.WithError(err).WithField("key", key).Error("Erro ao salvar configuração de integração")
			return NewClientError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar configuração de integração")
		}
	}

	return nil
}
