package billing

import (
	"github.com/sirupsen/logrus"
	"github.com/yossefJiy/agency-ops-api/infrastructure/repository"
	"github.com/yossefJiy/agency-ops-api/internal/domain"
	"github.com/yossefJiy/agency-ops-api/pkg/apiErrors"
)

type BillingService interface {
	ListServices() ([]*domain.ServiceCatalogItem, error)
	CreateService(request *domain.UpsertServiceCatalogItemRequest) (*domain.ServiceCatalogItem, error)
	UpdateService(item *domain.ServiceCatalogItem) error

	ListLines(clientID string, year int) ([]*domain.MonthlyServiceLine, error)
	ListLinesForMonth(clientID string, year, month int) ([]*domain.MonthlyServiceLine, error)
	CreateLine(request *domain.CreateMonthlyServiceLineRequest) (*domain.MonthlyServiceLine, error)
	QuickAddLine(clientID string, year, month int, serviceID string) (*domain.MonthlyServiceLine, error)
	UpdateLine(request *domain.UpdateMonthlyServiceLineRequest) (*domain.MonthlyServiceLine, error)
	DeleteLine(lineID string) error

	ListProjects() ([]*domain.Project, error)
	CreateProject(request *domain.CreateProjectRequest) (*domain.Project, error)
	GetProjectTemplate(projectID string) ([]*domain.ProjectRequiredService, error)
	AddRequiredService(request *domain.CreateProjectRequiredServiceRequest) (*domain.ProjectRequiredService, error)
	RemoveRequiredService(itemID string) error

	GenerateProjectServiceLines(request *domain.GenerateServiceLinesRequest) (*domain.GenerateServiceLinesResponse, error)
}

type Service struct {
	catalogRepository repository.ServiceCatalogRepository
	lineRepository    repository.MonthlyServiceLineRepository
	projectRepository repository.ProjectRepository
	clientRepository  repository.ClientRepository
}

func NewService(
	catalogRepository repository.ServiceCatalogRepository,
	lineRepository repository.MonthlyServiceLineRepository,
	projectRepository repository.ProjectRepository,
	clientRepository repository.ClientRepository,
) BillingService {
	return &Service{
		catalogRepository: catalogRepository,
		lineRepository:    lineRepository,
		projectRepository: projectRepository,
		clientRepository:  clientRepository,
	}
}

func (s *Service) ListServices() ([]*domain.ServiceCatalogItem, error) {
	services, err := s.catalogRepository.ListServices()
	if err != nil {
		return nil, NewBillingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar o catálogo de serviços")
	}

	return services, nil
}

func (s *Service) CreateService(request *domain.UpsertServiceCatalogItemRequest) (*domain.ServiceCatalogItem, error) {
	item := &domain.ServiceCatalogItem{
		Name:              request.Name,
		Description:       request.Description,
		RegularUnitPrice:  request.RegularUnitPrice,
		PlanUnitPrice:     request.PlanUnitPrice,
		DefaultMonthlyFee: request.DefaultMonthlyFee,
		Active:            true,
	}

	created, err := s.catalogRepository.CreateService(item)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar serviço no catálogo")
		return nil, NewBillingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar serviço no catálogo")
	}

	return created, nil
}

func (s *Service) UpdateService(item *domain.ServiceCatalogItem) error {
	if err := s.catalogRepository.UpdateService(item); err != nil {
		logrus.WithError(err).Error("Erro ao atualizar serviço do catálogo")
		return NewBillingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao atualizar serviço do catálogo")
	}

	return nil
}

func (s *Service) ListLines(clientID string, year int) ([]*domain.MonthlyServiceLine, error) {
	lines, err := s.lineRepository.GetByClientAndYear(clientID, year)
	if err != nil {
		return nil, NewBillingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar linhas de serviço")
	}

	return lines, nil
}

func (s *Service) ListLinesForMonth(clientID string, year, month int) ([]*domain.MonthlyServiceLine, error) {
	if month < 1 || month > 12 {
		return nil, NewBillingError(ErrInvalidPeriod, apiErrors.ErrInvalidFormat, "Mês fora do intervalo 1..12")
	}

	lines, err := s.lineRepository.GetByClientYearMonth(clientID, year, month)
	if err != nil {
		return nil, NewBillingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar linhas de serviço")
	}

	return lines, nil
}

func (s *Service) CreateLine(request *domain.CreateMonthlyServiceLineRequest) (*domain.MonthlyServiceLine, error) {
	if request.Month < 1 || request.Month > 12 {
		return nil, NewBillingError(ErrInvalidPeriod, apiErrors.ErrInvalidFormat, "Mês fora do intervalo 1..12")
	}

	line := &domain.MonthlyServiceLine{
		ClientID:      request.ClientID,
		Year:          request.Year,
		Month:         request.Month,
		ServiceID:     request.ServiceID,
		ServiceName:   request.ServiceName,
		MonthlyFee:    request.MonthlyFee,
		UnitPrice:     request.UnitPrice,
		DeliveryNotes: request.DeliveryNotes,
	}

	if request.Quantity != nil {
		line.Quantity = *request.Quantity
	}

	if request.Status != nil {
		line.Status = domain.ServiceLineStatus(*request.Status)
	}

	created, err := s.lineRepository.Create(line)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar linha de serviço")
		return nil, NewBillingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar linha de serviço")
	}

	return created, nil
}

// QuickAddLine cria uma linha mensal a partir de um serviço do catálogo,
// resolvendo o preço conforme o tipo de plano do cliente
func (s *Service) QuickAddLine(clientID string, year, month int, serviceID string) (*domain.MonthlyServiceLine, error) {
	if month < 1 || month > 12 {
		return nil, NewBillingError(ErrInvalidPeriod, apiErrors.ErrInvalidFormat, "Mês fora do intervalo 1..12")
	}
	if serviceID == "" {
		return nil, NewBillingError(ErrServiceIDRequired, apiErrors.ErrMissingRequiredData, "O ID do serviço é obrigatório")
	}

	client, err := s.clientRepository.GetClientByID(clientID)
	if err != nil {
		return nil, NewBillingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar cliente")
	}
	if client == nil {
		return nil, NewBillingError(ErrLineNotFound, apiErrors.ErrClientNotFound, "Cliente não encontrado: "+clientID)
	}

	item, err := s.catalogRepository.GetServiceByID(serviceID)
	if err != nil {
		return nil, NewBillingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar serviço do catálogo")
	}
	if item == nil {
		return nil, NewBillingError(ErrServiceNotFound, apiErrors.ErrServiceNotFound, "Serviço não encontrado: "+serviceID)
	}

	resolved := domain.ResolveServicePrice(client.PlanType, item)

	line := &domain.MonthlyServiceLine{
		ClientID:     clientID,
		Year:         year,
		Month:        month,
		ServiceID:    &item.ID,
		ServiceName:  &item.Name,
		UnitPrice:    &resolved.UnitPrice,
		Quantity:     1,
		MonthlyFee:   resolved.UnitPrice,
		PricingBasis: &resolved.PricingBasis,
	}

	created, err := s.lineRepository.Create(line)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar linha de serviço")
		return nil, NewBillingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar linha de serviço")
	}

	return created, nil
}

// UpdateLine atualiza uma linha mensal. Edição manual do preço unitário marca
// a linha como override: ela deixa de acompanhar o catálogo dali em diante
func (s *Service) UpdateLine(request *domain.UpdateMonthlyServiceLineRequest) (*domain.MonthlyServiceLine, error) {
	line, err := s.lineRepository.GetByID(request.ID)
	if err != nil {
		return nil, NewBillingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar linha de serviço")
	}
	if line == nil {
		return nil, NewBillingError(ErrLineNotFound, apiErrors.ErrInvalidRequest, "Linha de serviço não encontrada: "+request.ID)
	}

	if request.UnitPrice != nil {
		line.UnitPrice = request.UnitPrice
		override := domain.PricingBasisOverride
		line.PricingBasis = &override
	}

	if request.Quantity != nil {
		line.Quantity = *request.Quantity
	}

	if request.MonthlyFee != nil {
		line.MonthlyFee = *request.MonthlyFee
	}

	if request.Status != nil {
		line.Status = domain.ServiceLineStatus(*request.Status)
	}

	if request.DeliveryNotes != nil {
		line.DeliveryNotes = request.DeliveryNotes
	}

	if err := s.lineRepository.Update(line); err != nil {
		logrus.WithError(err).Error("Erro ao atualizar linha de serviço")
		return nil, NewBillingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao atualizar linha de serviço")
	}

	return line, nil
}

func (s *Service) DeleteLine(lineID string) error {
	if err := s.lineRepository.Delete(lineID); err != nil {
		return NewBillingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao remover linha de serviço")
	}

	return nil
}

func (s *Service) ListProjects() ([]*domain.Project, error) {
	projects, err := s.projectRepository.ListProjects()
	if err != nil {
		return nil, NewBillingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar projetos")
	}

	return projects, nil
}

func (s *Service) CreateProject(request *domain.CreateProjectRequest) (*domain.Project, error) {
	project := &domain.Project{
		ClientID: request.ClientID,
		Name:     request.Name,
		Status:   domain.ProjectStatusPlanned,
		Notes:    request.Notes,
	}

	if request.Status != nil {
		project.Status = domain.ProjectStatus(*request.Status)
	}

	created, err := s.projectRepository.CreateProject(project)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar projeto")
		return nil, NewBillingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar projeto")
	}

	return created, nil
}

func (s *Service) GetProjectTemplate(projectID string) ([]*domain.ProjectRequiredService, error) {
	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return nil, NewBillingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar projeto")
	}
	if project == nil {
		return nil, NewBillingError(ErrProjectNotFound, apiErrors.ErrProjectNotFound, "Projeto não encontrado: "+projectID)
	}

	required, err := s.projectRepository.GetRequiredServices(projectID)
	if err != nil {
		return nil, NewBillingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar template do projeto")
	}

	return required, nil
}

func (s *Service) AddRequiredService(request *domain.CreateProjectRequiredServiceRequest) (*domain.ProjectRequiredService, error) {
	item, err := s.catalogRepository.GetServiceByID(request.ServiceID)
	if err != nil {
		return nil, NewBillingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar serviço do catálogo")
	}
	if item == nil {
		return nil, NewBillingError(ErrServiceNotFound, apiErrors.ErrServiceNotFound, "Serviço não encontrado: "+request.ServiceID)
	}

	required := &domain.ProjectRequiredService{
		ProjectID:        request.ProjectID,
		ServiceID:        request.ServiceID,
		QuantityUnitNote: request.QuantityUnitNote,
		WhenApplied:      request.WhenApplied,
	}

	if request.DefaultQuantity != nil {
		required.DefaultQuantity = *request.DefaultQuantity
	}

	created, err := s.projectRepository.CreateRequiredService(required)
	if err != nil {
		logrus.WithError(err).Error("Erro ao adicionar serviço ao template do projeto")
		return nil, NewBillingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao adicionar serviço ao template do projeto")
	}

	return created, nil
}

func (s *Service) RemoveRequiredService(itemID string) error {
	if err := s.projectRepository.DeleteRequiredService(itemID); err != nil {
		return NewBillingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao remover serviço do template do projeto")
	}

	return nil
}

// GenerateProjectServiceLines materializa o template de serviços de um projeto
// em linhas mensais de cobrança. A geração é idempotente pela chave
// (cliente, ano, mês, serviço, projeto): linhas já existentes são puladas.
// Qualquer erro de escrita aborta a rodada, deixando as linhas já criadas
func (s *Service) GenerateProjectServiceLines(request *domain.GenerateServiceLinesRequest) (*domain.GenerateServiceLinesResponse, error) {
	if request.Month < 1 || request.Month > 12 {
		return nil, NewBillingError(ErrInvalidPeriod, apiErrors.ErrInvalidFormat, "Mês fora do intervalo 1..12")
	}

	project, err := s.projectRepository.GetProjectByID(request.ProjectID)
	if err != nil {
		return nil, NewBillingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar projeto")
	}
	if project == nil {
		return nil, NewBillingError(ErrProjectNotFound, apiErrors.ErrProjectNotFound, "Projeto não encontrado: "+request.ProjectID)
	}

	clientID := request.ClientID
	if clientID == "" {
		clientID = project.ClientID
	}

	planType := request.PlanType
	if planType == "" {
		client, err := s.clientRepository.GetClientByID(clientID)
		if err != nil {
			return nil, NewBillingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar cliente")
		}
		if client == nil {
			return nil, NewBillingError(ErrLineNotFound, apiErrors.ErrClientNotFound, "Cliente não encontrado: "+clientID)
		}
		planType = client.PlanType
	}

	required, err := s.projectRepository.GetRequiredServices(request.ProjectID)
	if err != nil {
		return nil, NewBillingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar template do projeto")
	}

	response := &domain.GenerateServiceLinesResponse{}

	for _, req := range required {
		exists, err := s.lineRepository.ExistsForKey(clientID, request.Year, request.Month, req.ServiceID, request.ProjectID)
		if err != nil {
			return nil, NewBillingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao verificar linha existente")
		}
		if exists {
			response.Skipped++
			continue
		}

		item := req.Service
		if item == nil {
			item, err = s.catalogRepository.GetServiceByID(req.ServiceID)
			if err != nil {
				return nil, NewBillingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar serviço do catálogo")
			}
			if item == nil {
				// Linha de template apontando para serviço removido do catálogo
				// não impede a geração das demais
				logrus.WithFields(logrus.Fields{
					"project_id": request.ProjectID,
					"service_id": req.ServiceID,
				}).Warn("Serviço do template não existe mais no catálogo, linha ignorada")
				response.Skipped++
				continue
			}
		}

		resolved := domain.ResolveServicePrice(planType, item)

		quantity := req.DefaultQuantity
		if quantity == 0 {
			quantity = 1
		}

		line := &domain.MonthlyServiceLine{
			ClientID:        clientID,
			Year:            request.Year,
			Month:           request.Month,
			ServiceID:       &item.ID,
			ServiceName:     &item.Name,
			UnitPrice:       &resolved.UnitPrice,
			Quantity:        quantity,
			MonthlyFee:      resolved.UnitPrice * quantity,
			PricingBasis:    &resolved.PricingBasis,
			LinkedProjectID: &request.ProjectID,
			Status:          domain.ServiceLineStatusPlanned,
		}

		if _, err := s.lineRepository.Create(line); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"client_id":  clientID,
				"project_id": request.ProjectID,
				"service_id": req.ServiceID,
			}).Error("Erro ao criar linha gerada pelo template")
			return nil, NewBillingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar linha gerada pelo template")
		}

		response.Created++
	}

	return response, nil
}
