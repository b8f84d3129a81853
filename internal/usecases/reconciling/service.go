package reconciling

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yossefJiy/agency-ops-api/infrastructure/repository"
	"github.com/yossefJiy/agency-ops-api/internal/domain"
	"github.com/yossefJiy/agency-ops-api/pkg/apiErrors"
)

type ReconciliationService interface {
	BuildYearReport(clientID string, year int) (*domain.ReconciliationReport, error)
	ListSnapshots(clientID string, year int) ([]*domain.MonthlyAnalyticsSnapshot, error)
	ListOfflineRevenue(clientID string, year int) ([]*domain.OfflineRevenueEntry, error)
	UpsertOfflineRevenue(request *domain.UpsertOfflineRevenueRequest) (*domain.OfflineRevenueEntry, error)
	DeleteOfflineRevenue(entryID string) error
}

type Service struct {
	clientRepository   repository.ClientRepository
	snapshotRepository repository.AnalyticsSnapshotRepository
	offlineRepository  repository.OfflineRevenueRepository
	lineRepository     repository.MonthlyServiceLineRepository
	planRepository     repository.CommissionPlanRepository
}

func NewService(
	clientRepository repository.ClientRepository,
	snapshotRepository repository.AnalyticsSnapshotRepository,
	offlineRepository repository.OfflineRevenueRepository,
	lineRepository repository.MonthlyServiceLineRepository,
	planRepository repository.CommissionPlanRepository,
) ReconciliationService {
	return &Service{
		clientRepository:   clientRepository,
		snapshotRepository: snapshotRepository,
		offlineRepository:  offlineRepository,
		lineRepository:     lineRepository,
		planRepository:     planRepository,
	}
}

// BuildYearReport monta o relatório anual de conciliação de um cliente: doze
// linhas mensais juntando snapshot de analytics (ano corrente e anterior para
// o YoY), receita offline, honorários de serviços e comissão calculada, mais
// o rodapé de totais e o bloco de KPIs do mês corrente.
//
// As quatro consultas ao banco são independentes e rodam em paralelo. Meses
// sem dado aparecem com campos nil nas linhas e contribuem com zero no rodapé
func (s *Service) BuildYearReport(clientID string, year int) (*domain.ReconciliationReport, error) {
	client, err := s.clientRepository.GetClientByID(clientID)
	if err != nil {
		return nil, NewReconciliationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar cliente")
	}
	if client == nil {
		return nil, NewReconciliationError(ErrClientNotFound, apiErrors.ErrClientNotFound, "Cliente não encontrado: "+clientID)
	}

	var (
		snapshots     []*domain.MonthlyAnalyticsSnapshot
		offline       []*domain.OfflineRevenueEntry
		lines         []*domain.MonthlyServiceLine
		plan          *domain.CommissionPlan
		snapshotError error
		offlineError  error
		linesError    error
		planError     error
	)

	wg := sync.WaitGroup{}
	wg.Add(4)

	go func() {
		defer wg.Done()
		snapshots, snapshotError = s.snapshotRepository.GetByClientAndYears(clientID, []int{year, year - 1})
	}()

	go func() {
		defer wg.Done()
		offline, offlineError = s.offlineRepository.GetByClientAndYear(clientID, year)
	}()

	go func() {
		defer wg.Done()
		lines, linesError = s.lineRepository.GetByClientAndYear(clientID, year)
	}()

	go func() {
		defer wg.Done()
		plan, planError = s.planRepository.GetActivePlanByClient(clientID)
	}()

	wg.Wait()

	for _, err := range []error{snapshotError, offlineError, linesError, planError} {
		if err != nil {
			logrus.WithError(err).WithField("client_id", clientID).Error("Erro ao carregar dados da conciliação")
			return nil, NewReconciliationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao carregar dados da conciliação")
		}
	}

	currentByMonth := make(map[int]*domain.MonthlyAnalyticsSnapshot)
	previousByMonth := make(map[int]*domain.MonthlyAnalyticsSnapshot)
	for _, snapshot := range snapshots {
		switch snapshot.Year {
		case year:
			currentByMonth[snapshot.Month] = snapshot
		case year - 1:
			previousByMonth[snapshot.Month] = snapshot
		}
	}

	offlineByMonth := make(map[int]float64)
	for _, entry := range offline {
		offlineByMonth[entry.Month] += entry.AmountGross
	}

	feesByMonth := make(map[int]float64)
	for _, line := range lines {
		feesByMonth[line.Month] += line.FeeTotal()
	}

	report := &domain.ReconciliationReport{
		ClientID: clientID,
		Year:     year,
		Rows:     make([]*domain.ReconciliationRow, 0, 12),
		Totals:   &domain.ReconciliationTotals{},
	}

	for month := 1; month <= 12; month++ {
		row := s.buildRow(month, currentByMonth[month], previousByMonth[month], offlineByMonth[month], feesByMonth[month], plan)
		report.Rows = append(report.Rows, row)
		accumulate(report.Totals, row)
	}

	now := time.Now()
	if year == now.Year() {
		report.Current = s.buildCurrentKPIs(int(now.Month()), currentByMonth, previousByMonth, offlineByMonth, plan)
	}

	return report, nil
}

func (s *Service) buildRow(
	month int,
	snapshot *domain.MonthlyAnalyticsSnapshot,
	previous *domain.MonthlyAnalyticsSnapshot,
	offlineRevenue float64,
	serviceFees float64,
	plan *domain.CommissionPlan,
) *domain.ReconciliationRow {
	row := &domain.ReconciliationRow{
		Month:          month,
		OfflineRevenue: offlineRevenue,
		ServiceFees:    serviceFees,
	}

	if snapshot == nil {
		return row
	}

	row.GrossSales = &snapshot.GrossSales
	row.Discounts = &snapshot.Discounts
	row.Refunds = &snapshot.Refunds
	row.NetSales = &snapshot.NetSales
	row.Orders = &snapshot.Orders
	row.Sessions = &snapshot.Sessions
	row.AdSpendTotal = &snapshot.AdSpendTotal
	row.MER = snapshot.MER()
	row.ConversionRate = snapshot.ConversionRate()

	if previous != nil {
		row.NetSalesYoY = domain.YoYDelta(&snapshot.NetSales, &previous.NetSales)
	}

	if plan != nil {
		periodSales := plan.PeriodSales(snapshot)
		row.Commission = domain.CalculateCommission(periodSales, plan.Tiers, plan.MinimumFee)
	}

	return row
}

func (s *Service) buildCurrentKPIs(
	month int,
	currentByMonth map[int]*domain.MonthlyAnalyticsSnapshot,
	previousByMonth map[int]*domain.MonthlyAnalyticsSnapshot,
	offlineByMonth map[int]float64,
	plan *domain.CommissionPlan,
) *domain.MonthKPIs {
	kpis := &domain.MonthKPIs{
		Month:          month,
		OfflineRevenue: offlineByMonth[month],
	}

	snapshot := currentByMonth[month]
	if snapshot == nil {
		return kpis
	}

	kpis.NetSales = &snapshot.NetSales
	kpis.GrossSales = &snapshot.GrossSales
	kpis.Discounts = &snapshot.Discounts
	kpis.Refunds = &snapshot.Refunds
	kpis.AdSpendMeta = &snapshot.AdSpendMeta
	kpis.AdSpendGoogle = &snapshot.AdSpendGoogle
	kpis.AdSpendTiktok = &snapshot.AdSpendTiktok
	kpis.AdSpendTotal = &snapshot.AdSpendTotal
	kpis.Orders = &snapshot.Orders
	kpis.Sessions = &snapshot.Sessions
	kpis.MER = snapshot.MER()
	kpis.ConversionRate = snapshot.ConversionRate()

	if previous := previousByMonth[month]; previous != nil {
		kpis.NetSalesYoY = domain.YoYDelta(&snapshot.NetSales, &previous.NetSales)
	}

	if plan != nil {
		periodSales := plan.PeriodSales(snapshot)
		kpis.Commission = domain.CalculateCommission(periodSales, plan.Tiers, plan.MinimumFee)
	}

	return kpis
}

// ListSnapshots lista os snapshots mensais de analytics de um cliente em um ano
func (s *Service) ListSnapshots(clientID string, year int) ([]*domain.MonthlyAnalyticsSnapshot, error) {
	snapshots, err := s.snapshotRepository.GetByClientAndYear(clientID, year)
	if err != nil {
		return nil, NewReconciliationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar snapshots do cliente")
	}

	return snapshots, nil
}

// ListOfflineRevenue lista as entradas de receita offline de um cliente em um ano
func (s *Service) ListOfflineRevenue(clientID string, year int) ([]*domain.OfflineRevenueEntry, error) {
	entries, err := s.offlineRepository.GetByClientAndYear(clientID, year)
	if err != nil {
		return nil, NewReconciliationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar receita offline")
	}

	return entries, nil
}

// UpsertOfflineRevenue grava uma entrada manual de receita offline. A chave é
// (cliente, ano, mês, origem): gravar duas vezes a mesma chave substitui o
// valor, não duplica a entrada
func (s *Service) UpsertOfflineRevenue(request *domain.UpsertOfflineRevenueRequest) (*domain.OfflineRevenueEntry, error) {
	if request.Month < 1 || request.Month > 12 {
		return nil, NewReconciliationError(ErrInvalidMonth, apiErrors.ErrInvalidFormat, "Mês inválido para receita offline")
	}

	client, err := s.clientRepository.GetClientByID(request.ClientID)
	if err != nil {
		return nil, NewReconciliationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar cliente")
	}
	if client == nil {
		return nil, NewReconciliationError(ErrClientNotFound, apiErrors.ErrClientNotFound, "Cliente não encontrado: "+request.ClientID)
	}

	source := request.Source
	if source == "" {
		source = domain.OfflineSourceOther
	}

	entry := &domain.OfflineRevenueEntry{
		ClientID:    request.ClientID,
		Year:        request.Year,
		Month:       request.Month,
		Source:      source,
		AmountGross: request.AmountGross,
		AmountNet:   request.AmountNet,
		Notes:       request.Notes,
	}

	if err := s.offlineRepository.Upsert(entry); err != nil {
		logrus.WithError(err).WithField("client_id", request.ClientID).Error("Erro ao gravar receita offline")
		return nil, NewReconciliationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao gravar receita offline")
	}

	return entry, nil
}

// DeleteOfflineRevenue remove uma entrada de receita offline
func (s *Service) DeleteOfflineRevenue(entryID string) error {
	if err := s.offlineRepository.Delete(entryID); err != nil {
		return NewReconciliationError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao remover receita offline")
	}

	return nil
}

// accumulate soma a linha no rodapé anual, degradando ausências para zero
func accumulate(totals *domain.ReconciliationTotals, row *domain.ReconciliationRow) {
	if row.GrossSales != nil {
		totals.GrossSales += *row.GrossSales
	}
	if row.Discounts != nil {
		totals.Discounts += *row.Discounts
	}
	if row.Refunds != nil {
		totals.Refunds += *row.Refunds
	}
	if row.NetSales != nil {
		totals.NetSales += *row.NetSales
	}
	if row.Orders != nil {
		totals.Orders += *row.Orders
	}
	if row.Sessions != nil {
		totals.Sessions += *row.Sessions
	}
	if row.AdSpendTotal != nil {
		totals.AdSpendTotal += *row.AdSpendTotal
	}
	if row.Commission != nil {
		totals.CommissionDue += row.Commission.FinalDue
	}

	totals.OfflineRevenue += row.OfflineRevenue
	totals.ServiceFees += row.ServiceFees
}
