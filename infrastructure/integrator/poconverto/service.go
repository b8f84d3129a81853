package poconverto

import (
	"strconv"
	"strings"

	poconvertodomain "github.com/yossefJiy/agency-ops-api/infrastructure/integrator/poconverto/domain"
	"github.com/yossefJiy/agency-ops-api/infrastructure/integrator/poconverto/poconvertoclient"
	"github.com/yossefJiy/agency-ops-api/internal/config"
	"github.com/yossefJiy/agency-ops-api/internal/domain"
	"github.com/yossefJiy/agency-ops-api/pkg/utils"
)

type PoconvertoIntegrator interface {
	GetMonthlySnapshots(clientID string, params poconvertodomain.GetMetricsParams) ([]*domain.MonthlyAnalyticsSnapshot, error)
	CheckConnection(params poconvertodomain.CheckConnectionParams) (bool, error)
}

type PoconvertoService struct {
	cfg    *config.Config
	Client poconvertoclient.Client
}

func New(cfg *config.Config, client poconvertoclient.Client) PoconvertoIntegrator {
	return &PoconvertoService{
		cfg:    cfg,
		Client: client,
	}
}

// GetMonthlySnapshots busca as métricas mensais da loja e as normaliza para o
// formato interno de snapshot. Linhas com competência ilegível são ignoradas
func (s *PoconvertoService) GetMonthlySnapshots(clientID string, params poconvertodomain.GetMetricsParams) ([]*domain.MonthlyAnalyticsSnapshot, error) {
	paramsClient := poconvertoclient.MetricsConsultationParams{
		ClientKey:  params.ClientKey,
		ShopDomain: params.ShopDomain,
		FromMonth:  params.FromMonth,
		ToMonth:    params.ToMonth,
	}

	resp, err := s.Client.GetMonthlyMetrics(paramsClient)
	if err != nil {
		return nil, err
	}

	snapshots := make([]*domain.MonthlyAnalyticsSnapshot, 0, len(resp))
	for _, row := range resp {
		year, month, ok := parseMonth(row.Month)
		if !ok {
			continue
		}

		snapshots = append(snapshots, &domain.MonthlyAnalyticsSnapshot{
			ClientID:      clientID,
			Year:          year,
			Month:         month,
			GrossSales:    row.GrossSales,
			Discounts:     row.Discounts,
			Refunds:       row.Refunds,
			NetSales:      row.NetSales,
			Orders:        row.Orders,
			Sessions:      row.Sessions,
			AdSpendMeta:   utils.RoundWithTwoDecimalPlace(row.AdSpendMeta),
			AdSpendGoogle: utils.RoundWithTwoDecimalPlace(row.AdSpendGoogle),
			AdSpendTiktok: utils.RoundWithTwoDecimalPlace(row.AdSpendTiktok),
			AdSpendTotal:  utils.RoundWithTwoDecimalPlace(row.AdSpendTotal),
		})
	}

	return snapshots, nil
}

// CheckConnection valida a chave de integração consultando a competência atual
func (s *PoconvertoService) CheckConnection(params poconvertodomain.CheckConnectionParams) (bool, error) {
	now := utils.CurrentYearMonth()

	_, err := s.Client.GetMonthlyMetrics(poconvertoclient.MetricsConsultationParams{
		ClientKey:  params.ClientKey,
		ShopDomain: params.ShopDomain,
		FromMonth:  now,
		ToMonth:    now,
	})
	if err != nil {
		return false, err
	}

	return true, nil
}

func parseMonth(value string) (int, int, bool) {
	parts := strings.SplitN(value, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}

	return year, month, true
}
