package icount

import (
	"time"

	icountdomain "github.com/yossefJiy/agency-ops-api/infrastructure/integrator/icount/domain"
	"github.com/yossefJiy/agency-ops-api/infrastructure/integrator/icount/icountclient"
	"github.com/yossefJiy/agency-ops-api/internal/config"
	"github.com/yossefJiy/agency-ops-api/pkg/utils"
)

type GetMonthlyRevenueParams struct {
	CompanyID string
	APIToken  string
	Year      int
	Month     int
}

type IcountIntegrator interface {
	GetMonthlyOfflineRevenue(params GetMonthlyRevenueParams) (float64, error)
	CheckConnection(companyID, apiToken string) (bool, error)
}

type IcountService struct {
	cfg    *config.Config
	Client icountclient.Client
}

func New(cfg *config.Config, client icountclient.Client) IcountIntegrator {
	return &IcountService{
		cfg:    cfg,
		Client: client,
	}
}

// GetMonthlyOfflineRevenue soma os totais de notas, recibos e nota-recibo
// emitidos na competência. Qualquer pesquisa com erro aborta a soma, para não
// gravar um mês parcial como se fosse completo
func (s *IcountService) GetMonthlyOfflineRevenue(params GetMonthlyRevenueParams) (float64, error) {
	first, last := utils.MonthRange(params.Year, params.Month)

	searchParams := icountdomain.SearchParams{
		CompanyID: params.CompanyID,
		APIToken:  params.APIToken,
		FromDate:  first.Format(time.DateOnly),
		ToDate:    last.Format(time.DateOnly),
	}

	var total float64
	for _, doctype := range icountdomain.SearchedDocTypes {
		docs, err := s.Client.SearchDocuments(doctype, searchParams)
		if err != nil {
			return 0, err
		}

		for _, doc := range docs {
			total += doc.Total
		}
	}

	return utils.RoundWithTwoDecimalPlace(total), nil
}

func (s *IcountService) CheckConnection(companyID, apiToken string) (bool, error) {
	now := time.Now()
	first, last := utils.MonthRange(now.Year(), int(now.Month()))

	_, err := s.Client.SearchDocuments(icountdomain.DocTypeInvoice, icountdomain.SearchParams{
		CompanyID: companyID,
		APIToken:  apiToken,
		FromDate:  first.Format(time.DateOnly),
		ToDate:    last.Format(time.DateOnly),
	})
	if err != nil {
		return false, err
	}

	return true, nil
}
