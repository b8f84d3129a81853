package commissioning

import (
	"github.com/sirupsen/logrus"
	"github.com/yossefJiy/agency-ops-api/infrastructure/repository"
	"github.com/yossefJiy/agency-ops-api/internal/domain"
	"github.com/yossefJiy/agency-ops-api/pkg/apiErrors"
)

type CommissionService interface {
	CreatePlan(request *domain.CreateCommissionPlanRequest) (*domain.CommissionPlan, error)
	UpdatePlan(request *domain.UpdateCommissionPlanRequest) error
	ListPlans(clientID string) ([]*domain.CommissionPlan, error)
	GetActivePlan(clientID string) (*domain.CommissionPlan, error)
	AddTier(tier *domain.CommissionTier) (*domain.CommissionTier, error)
	UpdateTier(tier *domain.CommissionTier) error
	DeleteTier(tierID string) error
	CommissionForMonth(clientID string, year, month int) (*domain.CommissionResult, error)
}

type Service struct {
	planRepository     repository.CommissionPlanRepository
	snapshotRepository repository.AnalyticsSnapshotRepository
}

func NewService(
	planRepository repository.CommissionPlanRepository,
	snapshotRepository repository.AnalyticsSnapshotRepository,
) CommissionService {
	return &Service{
		planRepository:     planRepository,
		snapshotRepository: snapshotRepository,
	}
}

func (s *Service) CreatePlan(request *domain.CreateCommissionPlanRequest) (*domain.CommissionPlan, error) {
	if request.ClientID == "" {
		return nil, NewCommissionError(ErrClientIDRequired, apiErrors.ErrMissingRequiredData, "O ID do cliente é obrigatório")
	}

	plan := &domain.CommissionPlan{
		ClientID:   request.ClientID,
		Name:       request.Name,
		MinimumFee: request.MinimumFee,
		Currency:   request.Currency,
		Base:       request.Base,
		IsActive:   request.IsActive,
	}

	for _, tier := range request.Tiers {
		plan.Tiers = append(plan.Tiers, &domain.CommissionTier{
			ThresholdSales: tier.ThresholdSales,
			RatePercent:    tier.RatePercent,
			OrderIndex:     tier.OrderIndex,
		})
	}

	// Faixas fora de ordem não bloqueiam o cadastro, mas quase sempre são
	// erro de configuração; fica o aviso no log
	if problems := domain.ValidateTiers(plan.Tiers); len(problems) > 0 {
		logrus.WithFields(logrus.Fields{
			"client_id": request.ClientID,
			"problems":  problems,
		}).Warn("Plano de comissão cadastrado com faixas suspeitas")
	}

	created, err := s.planRepository.CreatePlan(plan)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar plano de comissão")
		return nil, NewCommissionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar plano de comissão")
	}

	return created, nil
}

func (s *Service) UpdatePlan(request *domain.UpdateCommissionPlanRequest) error {
	if err := s.planRepository.UpdatePlan(request); err != nil {
		logrus.WithError(err).Error("Erro ao atualizar plano de comissão")
		return NewCommissionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao atualizar plano de comissão")
	}

	return nil
}

func (s *Service) ListPlans(clientID string) ([]*domain.CommissionPlan, error) {
	plans, err := s.planRepository.GetPlansByClient(clientID)
	if err != nil {
		return nil, NewCommissionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar planos de comissão")
	}

	return plans, nil
}

func (s *Service) GetActivePlan(clientID string) (*domain.CommissionPlan, error) {
	plan, err := s.planRepository.GetActivePlanByClient(clientID)
	if err != nil {
		return nil, NewCommissionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar plano ativo")
	}

	return plan, nil
}

func (s *Service) AddTier(tier *domain.CommissionTier) (*domain.CommissionTier, error) {
	created, err := s.planRepository.CreateTier(tier)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar faixa de comissão")
		return nil, NewCommissionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar faixa de comissão")
	}

	return created, nil
}

func (s *Service) UpdateTier(tier *domain.CommissionTier) error {
	if err := s.planRepository.UpdateTier(tier); err != nil {
		return NewCommissionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao atualizar faixa de comissão")
	}

	return nil
}

func (s *Service) DeleteTier(tierID string) error {
	if err := s.planRepository.DeleteTier(tierID); err != nil {
		return NewCommissionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao remover faixa de comissão")
	}

	return nil
}

// CommissionForMonth calcula a comissão devida por um cliente na competência.
// Sem plano ativo ou sem snapshot do mês o resultado é nil: comissão ausente
// não é comissão zero
func (s *Service) CommissionForMonth(clientID string, year, month int) (*domain.CommissionResult, error) {
	plan, err := s.planRepository.GetActivePlanByClient(clientID)
	if err != nil {
		return nil, NewCommissionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar plano ativo")
	}
	if plan == nil {
		return nil, nil
	}

	snapshots, err := s.snapshotRepository.GetByClientAndYear(clientID, year)
	if err != nil {
		return nil, NewCommissionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar snapshots do cliente")
	}

	var snapshot *domain.MonthlyAnalyticsSnapshot
	for _, s := range snapshots {
		if s.Month == month {
			snapshot = s
			break
		}
	}
	if snapshot == nil {
		return nil, nil
	}

	periodSales := plan.PeriodSales(snapshot)
	return domain.CalculateCommission(periodSales, plan.Tiers, plan.MinimumFee), nil
}
