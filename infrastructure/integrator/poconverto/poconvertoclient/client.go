package poconvertoclient

import (
	"net/http"
	"time"

	poconvertodomain "github.com/yossefJiy/agency-ops-api/infrastructure/integrator/poconverto/domain"
	"github.com/yossefJiy/agency-ops-api/internal/config"
)

type Client interface {
	GetMonthlyMetrics(params MetricsConsultationParams) (MetricsConsultationResponse, error)
}

type PoconvertoClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &PoconvertoClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

type MetricsConsultationParams struct {
	ClientKey  string
	ShopDomain string
	FromMonth  string
	ToMonth    string
}

type MetricsConsultationResponse []poconvertodomain.MonthlyMetrics
