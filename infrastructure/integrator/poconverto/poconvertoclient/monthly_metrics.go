package poconvertoclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/pkg/errors"
)

// GetMonthlyMetrics consulta as métricas mensais agregadas de uma loja no
// Poconverto dentro do intervalo de competências informado
func (c *PoconvertoClient) GetMonthlyMetrics(params MetricsConsultationParams) (MetricsConsultationResponse, error) {
	var response MetricsConsultationResponse

	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	endpoint, err := url.Parse(c.config.Poconverto.BaseURL)
	if err != nil {
		return response, errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, "/api/analytics/monthly")

	query := endpoint.Query()
	query.Set("client_key", params.ClientKey)
	query.Set("from", params.FromMonth)
	query.Set("to", params.ToMonth)
	if params.ShopDomain != "" {
		query.Set("shop", params.ShopDomain)
	}
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return response, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Authorization", "Bearer "+c.config.Poconverto.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return response, errors.Errorf("requisição falhou com status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return response, errors.Wrap(err, "erro ao decodificar a resposta")
	}

	return response, nil
}
