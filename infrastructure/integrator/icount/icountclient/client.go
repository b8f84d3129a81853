package icountclient

import (
	"net/http"
	"time"

	icountdomain "github.com/yossefJiy/agency-ops-api/infrastructure/integrator/icount/domain"
	"github.com/yossefJiy/agency-ops-api/internal/config"
)

type Client interface {
	SearchDocuments(doctype string, params icountdomain.SearchParams) ([]icountdomain.Document, error)
}

type IcountClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &IcountClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
