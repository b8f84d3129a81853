package agreeing

import (
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/yossefJiy/agency-ops-api/infrastructure/repository"
	"github.com/yossefJiy/agency-ops-api/internal/domain"
	"github.com/yossefJiy/agency-ops-api/pkg/apiErrors"
)

type AgreementService interface {
	ListAgreements(clientID string) ([]*domain.PercentAgreement, error)
	CreateAgreement(request *domain.CreatePercentAgreementRequest) (*domain.PercentAgreement, error)
	UpdateAgreement(request *domain.UpdatePercentAgreementRequest) error
	DeleteAgreement(agreementID string) error
	ListPayouts(clientID string, year int) ([]*domain.Payout, error)
	UpsertPayout(request *domain.UpsertPayoutRequest) (*domain.Payout, error)
	BuildPayoutSummary(clientID string, year int) (*domain.PayoutSummary, error)
}

type Service struct {
	clientRepository    repository.ClientRepository
	agreementRepository repository.AgreementRepository
	payoutRepository    repository.PayoutRepository
	lineRepository      repository.MonthlyServiceLineRepository
}

func NewService(
	clientRepository repository.ClientRepository,
	agreementRepository repository.AgreementRepository,
	payoutRepository repository.PayoutRepository,
	lineRepository repository.MonthlyServiceLineRepository,
) AgreementService {
	return &Service{
		clientRepository:    clientRepository,
		agreementRepository: agreementRepository,
		payoutRepository:    payoutRepository,
		lineRepository:      lineRepository,
	}
}

// ListAgreements lista os acordos percentuais de um cliente, do mais recente
// para o mais antigo
func (s *Service) ListAgreements(clientID string) ([]*domain.PercentAgreement, error) {
	agreements, err := s.agreementRepository.GetAgreementsByClient(clientID)
	if err != nil {
		return nil, NewAgreementError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar acordos do cliente")
	}

	return agreements, nil
}

// CreateAgreement registra um acordo percentual para um cliente. Percentual e
// origem de receita são obrigatórios; o status nasce ativo quando não informado
func (s *Service) CreateAgreement(request *domain.CreatePercentAgreementRequest) (*domain.PercentAgreement, error) {
	if request.PercentRate <= 0 {
		return nil, NewAgreementError(ErrRateRequired, apiErrors.ErrMissingRequiredData, "Percentual do acordo é obrigatório")
	}

	if request.RevenueSource == "" {
		return nil, NewAgreementError(ErrRevenueSourceRequired, apiErrors.ErrMissingRequiredData, "Origem de receita do acordo é obrigatória")
	}

	if request.StartMonth < 1 || request.StartMonth > 12 {
		return nil, NewAgreementError(ErrInvalidMonth, apiErrors.ErrInvalidFormat, "Mês de início inválido para o acordo")
	}

	client, err := s.clientRepository.GetClientByID(request.ClientID)
	if err != nil {
		return nil, NewAgreementError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar cliente")
	}
	if client == nil {
		return nil, NewAgreementError(ErrClientNotFound, apiErrors.ErrClientNotFound, "Cliente não encontrado: "+request.ClientID)
	}

	status := domain.AgreementStatusActive
	if request.Status != nil {
		status = domain.AgreementStatus(*request.Status)
	}

	agreement := &domain.PercentAgreement{
		ClientID:      request.ClientID,
		PercentRate:   request.PercentRate,
		RevenueSource: request.RevenueSource,
		StartYear:     request.StartYear,
		StartMonth:    request.StartMonth,
		EndYear:       request.EndYear,
		EndMonth:      request.EndMonth,
		Status:        status,
		Notes:         request.Notes,
	}

	created, err := s.agreementRepository.CreateAgreement(agreement)
	if err != nil {
		logrus.WithError(err).WithField("client_id", request.ClientID).Error("Erro ao criar acordo percentual")
		return nil, NewAgreementError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar acordo")
	}

	return created, nil
}

// UpdateAgreement altera campos de um acordo existente
func (s *Service) UpdateAgreement(request *domain.UpdatePercentAgreementRequest) error {
	agreement, err := s.agreementRepository.GetAgreementByID(request.ID)
	if err != nil {
		return NewAgreementError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar acordo")
	}
	if agreement == nil {
		return NewAgreementError(ErrAgreementNotFound, apiErrors.ErrAgreementNotFound, "Acordo não encontrado: "+request.ID)
	}

	if request.StartMonth != nil && (*request.StartMonth < 1 || *request.StartMonth > 12) {
		return NewAgreementError(ErrInvalidMonth, apiErrors.ErrInvalidFormat, "Mês de início inválido para o acordo")
	}

	if err := s.agreementRepository.UpdateAgreement(request); err != nil {
		logrus.WithError(err).WithField("agreement_id", request.ID).Error("Erro ao atualizar acordo percentual")
		return NewAgreementError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao atualizar acordo")
	}

	return nil
}

// DeleteAgreement remove um acordo percentual
func (s *Service) DeleteAgreement(agreementID string) error {
	if err := s.agreementRepository.DeleteAgreement(agreementID); err != nil {
		return NewAgreementError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao remover acordo")
	}

	return nil
}

// ListPayouts lista os repasses de um cliente em um ano, em ordem de mês
func (s *Service) ListPayouts(clientID string, year int) ([]*domain.Payout, error) {
	payouts, err := s.payoutRepository.GetByClientAndYear(clientID, year)
	if err != nil {
		return nil, NewAgreementError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar repasses do cliente")
	}

	return payouts, nil
}

// UpsertPayout grava o repasse de um mês. A chave é (cliente, acordo, ano,
// mês): regravar o mesmo mês substitui o valor em vez de duplicar o repasse
func (s *Service) UpsertPayout(request *domain.UpsertPayoutRequest) (*domain.Payout, error) {
	if request.Month < 1 || request.Month > 12 {
		return nil, NewAgreementError(ErrInvalidMonth, apiErrors.ErrInvalidFormat, "Mês inválido para o repasse")
	}

	client, err := s.clientRepository.GetClientByID(request.ClientID)
	if err != nil {
		return nil, NewAgreementError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar cliente")
	}
	if client == nil {
		return nil, NewAgreementError(ErrClientNotFound, apiErrors.ErrClientNotFound, "Cliente não encontrado: "+request.ClientID)
	}

	if request.AgreementID != nil {
		agreement, err := s.agreementRepository.GetAgreementByID(*request.AgreementID)
		if err != nil {
			return nil, NewAgreementError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar acordo")
		}
		if agreement == nil {
			return nil, NewAgreementError(ErrAgreementNotFound, apiErrors.ErrAgreementNotFound, "Acordo não encontrado: "+*request.AgreementID)
		}
	}

	payout := &domain.Payout{
		ClientID:    request.ClientID,
		AgreementID: request.AgreementID,
		Year:        request.Year,
		Month:       request.Month,
		Amount:      request.Amount,
		Notes:       request.Notes,
	}

	if err := s.payoutRepository.Upsert(payout); err != nil {
		logrus.WithError(err).WithField("client_id", request.ClientID).Error("Erro ao gravar repasse")
		return nil, NewAgreementError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao gravar repasse")
	}

	return payout, nil
}

// BuildPayoutSummary monta o resumo anual de repasses de um cliente: doze
// linhas mensais comparando o total repassado com os honorários de serviços do
// mesmo mês, mais os totais do ano. As duas consultas rodam em paralelo
func (s *Service) BuildPayoutSummary(clientID string, year int) (*domain.PayoutSummary, error) {
	client, err := s.clientRepository.GetClientByID(clientID)
	if err != nil {
		return nil, NewAgreementError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar cliente")
	}
	if client == nil {
		return nil, NewAgreementError(ErrClientNotFound, apiErrors.ErrClientNotFound, "Cliente não encontrado: "+clientID)
	}

	var (
		payouts     []*domain.Payout
		lines       []*domain.MonthlyServiceLine
		payoutError error
		linesError  error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		payouts, payoutError = s.payoutRepository.GetByClientAndYear(clientID, year)
	}()

	go func() {
		defer wg.Done()
		lines, linesError = s.lineRepository.GetByClientAndYear(clientID, year)
	}()

	wg.Wait()

	for _, err := range []error{payoutError, linesError} {
		if err != nil {
			logrus.WithError(err).WithField("client_id", clientID).Error("Erro ao carregar dados do resumo de repasses")
			return nil, NewAgreementError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao carregar dados do resumo de repasses")
		}
	}

	payoutsByMonth := make(map[int]float64)
	for _, payout := range payouts {
		payoutsByMonth[payout.Month] += payout.Amount
	}

	feesByMonth := make(map[int]float64)
	for _, line := range lines {
		feesByMonth[line.Month] += line.FeeTotal()
	}

	summary := &domain.PayoutSummary{
		ClientID: clientID,
		Year:     year,
		Rows:     make([]*domain.PayoutSummaryRow, 0, 12),
	}

	for month := 1; month <= 12; month++ {
		row := &domain.PayoutSummaryRow{
			Month:       month,
			PayoutTotal: payoutsByMonth[month],
			ServiceFees: feesByMonth[month],
		}
		row.Delta = row.PayoutTotal - row.ServiceFees

		summary.Rows = append(summary.Rows, row)
		summary.TotalPayouts += row.PayoutTotal
		summary.TotalServiceFees += row.ServiceFees
		summary.TotalDelta += row.Delta
	}

	return summary, nil
}
